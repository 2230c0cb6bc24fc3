// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/vulnsentinel/vulnsentinel/ent/agentrun"
	"github.com/vulnsentinel/vulnsentinel/ent/agenttoolcall"
)

// AgentToolCall is the model entity for the AgentToolCall schema.
type AgentToolCall struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// AgentRunID holds the value of the "agent_run_id" field.
	AgentRunID string `json:"agent_run_id,omitempty"`
	// Position within the run, 1-based
	Seq int `json:"seq,omitempty"`
	// ToolName holds the value of the "tool_name" field.
	ToolName string `json:"tool_name,omitempty"`
	// JSON arguments as sent by the model
	Arguments string `json:"arguments,omitempty"`
	// OutputBytes holds the value of the "output_bytes" field.
	OutputBytes int `json:"output_bytes,omitempty"`
	// DurationMs holds the value of the "duration_ms" field.
	DurationMs int64 `json:"duration_ms,omitempty"`
	// IsError holds the value of the "is_error" field.
	IsError bool `json:"is_error,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AgentToolCallQuery when eager-loading is set.
	Edges        AgentToolCallEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AgentToolCallEdges holds the relations/edges for other nodes in the graph.
type AgentToolCallEdges struct {
	// Run holds the value of the run edge.
	Run *AgentRun `json:"run,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RunOrErr returns the Run value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AgentToolCallEdges) RunOrErr() (*AgentRun, error) {
	if e.Run != nil {
		return e.Run, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: agentrun.Label}
	}
	return nil, &NotLoadedError{edge: "run"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AgentToolCall) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case agenttoolcall.FieldIsError:
			values[i] = new(sql.NullBool)
		case agenttoolcall.FieldSeq, agenttoolcall.FieldOutputBytes, agenttoolcall.FieldDurationMs:
			values[i] = new(sql.NullInt64)
		case agenttoolcall.FieldID, agenttoolcall.FieldAgentRunID, agenttoolcall.FieldToolName, agenttoolcall.FieldArguments:
			values[i] = new(sql.NullString)
		case agenttoolcall.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AgentToolCall fields.
func (_m *AgentToolCall) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case agenttoolcall.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case agenttoolcall.FieldAgentRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_run_id", values[i])
			} else if value.Valid {
				_m.AgentRunID = value.String
			}
		case agenttoolcall.FieldSeq:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field seq", values[i])
			} else if value.Valid {
				_m.Seq = int(value.Int64)
			}
		case agenttoolcall.FieldToolName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tool_name", values[i])
			} else if value.Valid {
				_m.ToolName = value.String
			}
		case agenttoolcall.FieldArguments:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field arguments", values[i])
			} else if value.Valid {
				_m.Arguments = value.String
			}
		case agenttoolcall.FieldOutputBytes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field output_bytes", values[i])
			} else if value.Valid {
				_m.OutputBytes = int(value.Int64)
			}
		case agenttoolcall.FieldDurationMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_ms", values[i])
			} else if value.Valid {
				_m.DurationMs = value.Int64
			}
		case agenttoolcall.FieldIsError:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_error", values[i])
			} else if value.Valid {
				_m.IsError = value.Bool
			}
		case agenttoolcall.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AgentToolCall.
// This includes values selected through modifiers, order, etc.
func (_m *AgentToolCall) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRun queries the "run" edge of the AgentToolCall entity.
func (_m *AgentToolCall) QueryRun() *AgentRunQuery {
	return NewAgentToolCallClient(_m.config).QueryRun(_m)
}

// Update returns a builder for updating this AgentToolCall.
// Note that you need to call AgentToolCall.Unwrap() before calling this method if this AgentToolCall
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AgentToolCall) Update() *AgentToolCallUpdateOne {
	return NewAgentToolCallClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AgentToolCall entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AgentToolCall) Unwrap() *AgentToolCall {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AgentToolCall is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AgentToolCall) String() string {
	var builder strings.Builder
	builder.WriteString("AgentToolCall(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("agent_run_id=")
	builder.WriteString(_m.AgentRunID)
	builder.WriteString(", ")
	builder.WriteString("seq=")
	builder.WriteString(fmt.Sprintf("%v", _m.Seq))
	builder.WriteString(", ")
	builder.WriteString("tool_name=")
	builder.WriteString(_m.ToolName)
	builder.WriteString(", ")
	builder.WriteString("arguments=")
	builder.WriteString(_m.Arguments)
	builder.WriteString(", ")
	builder.WriteString("output_bytes=")
	builder.WriteString(fmt.Sprintf("%v", _m.OutputBytes))
	builder.WriteString(", ")
	builder.WriteString("duration_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationMs))
	builder.WriteString(", ")
	builder.WriteString("is_error=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsError))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AgentToolCalls is a parsable slice of AgentToolCall.
type AgentToolCalls []*AgentToolCall
