// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/vulnsentinel/vulnsentinel/ent/agentrun"
)

// AgentRun is the model entity for the AgentRun schema.
type AgentRun struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// classifier | analyzer
	AgentType string `json:"agent_type,omitempty"`
	// Model holds the value of the "model" field.
	Model string `json:"model,omitempty"`
	// Entity the run operated on (event or vuln id)
	TargetID string `json:"target_id,omitempty"`
	// Turns holds the value of the "turns" field.
	Turns int `json:"turns,omitempty"`
	// InputTokens holds the value of the "input_tokens" field.
	InputTokens int `json:"input_tokens,omitempty"`
	// OutputTokens holds the value of the "output_tokens" field.
	OutputTokens int `json:"output_tokens,omitempty"`
	// EstimatedCostUsd holds the value of the "estimated_cost_usd" field.
	EstimatedCostUsd float64 `json:"estimated_cost_usd,omitempty"`
	// DurationMs holds the value of the "duration_ms" field.
	DurationMs int64 `json:"duration_ms,omitempty"`
	// Status holds the value of the "status" field.
	Status agentrun.Status `json:"status,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AgentRunQuery when eager-loading is set.
	Edges        AgentRunEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AgentRunEdges holds the relations/edges for other nodes in the graph.
type AgentRunEdges struct {
	// ToolCalls holds the value of the tool_calls edge.
	ToolCalls []*AgentToolCall `json:"tool_calls,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ToolCallsOrErr returns the ToolCalls value or an error if the edge
// was not loaded in eager-loading.
func (e AgentRunEdges) ToolCallsOrErr() ([]*AgentToolCall, error) {
	if e.loadedTypes[0] {
		return e.ToolCalls, nil
	}
	return nil, &NotLoadedError{edge: "tool_calls"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AgentRun) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case agentrun.FieldEstimatedCostUsd:
			values[i] = new(sql.NullFloat64)
		case agentrun.FieldTurns, agentrun.FieldInputTokens, agentrun.FieldOutputTokens, agentrun.FieldDurationMs:
			values[i] = new(sql.NullInt64)
		case agentrun.FieldID, agentrun.FieldAgentType, agentrun.FieldModel, agentrun.FieldTargetID, agentrun.FieldStatus, agentrun.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case agentrun.FieldCreatedAt, agentrun.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AgentRun fields.
func (_m *AgentRun) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case agentrun.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case agentrun.FieldAgentType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_type", values[i])
			} else if value.Valid {
				_m.AgentType = value.String
			}
		case agentrun.FieldModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model", values[i])
			} else if value.Valid {
				_m.Model = value.String
			}
		case agentrun.FieldTargetID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field target_id", values[i])
			} else if value.Valid {
				_m.TargetID = value.String
			}
		case agentrun.FieldTurns:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field turns", values[i])
			} else if value.Valid {
				_m.Turns = int(value.Int64)
			}
		case agentrun.FieldInputTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field input_tokens", values[i])
			} else if value.Valid {
				_m.InputTokens = int(value.Int64)
			}
		case agentrun.FieldOutputTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field output_tokens", values[i])
			} else if value.Valid {
				_m.OutputTokens = int(value.Int64)
			}
		case agentrun.FieldEstimatedCostUsd:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field estimated_cost_usd", values[i])
			} else if value.Valid {
				_m.EstimatedCostUsd = value.Float64
			}
		case agentrun.FieldDurationMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_ms", values[i])
			} else if value.Valid {
				_m.DurationMs = value.Int64
			}
		case agentrun.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = agentrun.Status(value.String)
			}
		case agentrun.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case agentrun.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case agentrun.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AgentRun.
// This includes values selected through modifiers, order, etc.
func (_m *AgentRun) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryToolCalls queries the "tool_calls" edge of the AgentRun entity.
func (_m *AgentRun) QueryToolCalls() *AgentToolCallQuery {
	return NewAgentRunClient(_m.config).QueryToolCalls(_m)
}

// Update returns a builder for updating this AgentRun.
// Note that you need to call AgentRun.Unwrap() before calling this method if this AgentRun
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AgentRun) Update() *AgentRunUpdateOne {
	return NewAgentRunClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AgentRun entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AgentRun) Unwrap() *AgentRun {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AgentRun is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AgentRun) String() string {
	var builder strings.Builder
	builder.WriteString("AgentRun(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("agent_type=")
	builder.WriteString(_m.AgentType)
	builder.WriteString(", ")
	builder.WriteString("model=")
	builder.WriteString(_m.Model)
	builder.WriteString(", ")
	builder.WriteString("target_id=")
	builder.WriteString(_m.TargetID)
	builder.WriteString(", ")
	builder.WriteString("turns=")
	builder.WriteString(fmt.Sprintf("%v", _m.Turns))
	builder.WriteString(", ")
	builder.WriteString("input_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.InputTokens))
	builder.WriteString(", ")
	builder.WriteString("output_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.OutputTokens))
	builder.WriteString(", ")
	builder.WriteString("estimated_cost_usd=")
	builder.WriteString(fmt.Sprintf("%v", _m.EstimatedCostUsd))
	builder.WriteString(", ")
	builder.WriteString("duration_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationMs))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AgentRuns is a parsable slice of AgentRun.
type AgentRuns []*AgentRun
