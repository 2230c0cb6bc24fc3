// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/vulnsentinel/vulnsentinel/ent/event"
	"github.com/vulnsentinel/vulnsentinel/ent/library"
	"github.com/vulnsentinel/vulnsentinel/ent/upstreamvuln"
)

// UpstreamVuln is the model entity for the UpstreamVuln schema.
type UpstreamVuln struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// EventID holds the value of the "event_id" field.
	EventID string `json:"event_id,omitempty"`
	// LibraryID holds the value of the "library_id" field.
	LibraryID string `json:"library_id,omitempty"`
	// CommitSha holds the value of the "commit_sha" field.
	CommitSha string `json:"commit_sha,omitempty"`
	// One of the canonical vulnerability types
	VulnType *string `json:"vuln_type,omitempty"`
	// Severity holds the value of the "severity" field.
	Severity *upstreamvuln.Severity `json:"severity,omitempty"`
	// Affected version range expression
	AffectedVersions *string `json:"affected_versions,omitempty"`
	// Summary holds the value of the "summary" field.
	Summary *string `json:"summary,omitempty"`
	// Reasoning holds the value of the "reasoning" field.
	Reasoning *string `json:"reasoning,omitempty"`
	// LLM-produced proof-of-concept material; shape may drift
	UpstreamPoc map[string]interface{} `json:"upstream_poc,omitempty"`
	// AffectedFunctions holds the value of the "affected_functions" field.
	AffectedFunctions []string `json:"affected_functions,omitempty"`
	// Status holds the value of the "status" field.
	Status upstreamvuln.Status `json:"status,omitempty"`
	// PublishedAt holds the value of the "published_at" field.
	PublishedAt *time.Time `json:"published_at,omitempty"`
	// Set when analysis failed; row stays as a placeholder
	ErrorMessage *string `json:"error_message,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the UpstreamVulnQuery when eager-loading is set.
	Edges        UpstreamVulnEdges `json:"edges"`
	selectValues sql.SelectValues
}

// UpstreamVulnEdges holds the relations/edges for other nodes in the graph.
type UpstreamVulnEdges struct {
	// Event holds the value of the event edge.
	Event *Event `json:"event,omitempty"`
	// Library holds the value of the library edge.
	Library *Library `json:"library,omitempty"`
	// ClientVulns holds the value of the client_vulns edge.
	ClientVulns []*ClientVuln `json:"client_vulns,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// EventOrErr returns the Event value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e UpstreamVulnEdges) EventOrErr() (*Event, error) {
	if e.Event != nil {
		return e.Event, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: event.Label}
	}
	return nil, &NotLoadedError{edge: "event"}
}

// LibraryOrErr returns the Library value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e UpstreamVulnEdges) LibraryOrErr() (*Library, error) {
	if e.Library != nil {
		return e.Library, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: library.Label}
	}
	return nil, &NotLoadedError{edge: "library"}
}

// ClientVulnsOrErr returns the ClientVulns value or an error if the edge
// was not loaded in eager-loading.
func (e UpstreamVulnEdges) ClientVulnsOrErr() ([]*ClientVuln, error) {
	if e.loadedTypes[2] {
		return e.ClientVulns, nil
	}
	return nil, &NotLoadedError{edge: "client_vulns"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*UpstreamVuln) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case upstreamvuln.FieldUpstreamPoc, upstreamvuln.FieldAffectedFunctions:
			values[i] = new([]byte)
		case upstreamvuln.FieldID, upstreamvuln.FieldEventID, upstreamvuln.FieldLibraryID, upstreamvuln.FieldCommitSha, upstreamvuln.FieldVulnType, upstreamvuln.FieldSeverity, upstreamvuln.FieldAffectedVersions, upstreamvuln.FieldSummary, upstreamvuln.FieldReasoning, upstreamvuln.FieldStatus, upstreamvuln.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case upstreamvuln.FieldPublishedAt, upstreamvuln.FieldCreatedAt, upstreamvuln.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the UpstreamVuln fields.
func (_m *UpstreamVuln) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case upstreamvuln.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case upstreamvuln.FieldEventID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_id", values[i])
			} else if value.Valid {
				_m.EventID = value.String
			}
		case upstreamvuln.FieldLibraryID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field library_id", values[i])
			} else if value.Valid {
				_m.LibraryID = value.String
			}
		case upstreamvuln.FieldCommitSha:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field commit_sha", values[i])
			} else if value.Valid {
				_m.CommitSha = value.String
			}
		case upstreamvuln.FieldVulnType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field vuln_type", values[i])
			} else if value.Valid {
				_m.VulnType = new(string)
				*_m.VulnType = value.String
			}
		case upstreamvuln.FieldSeverity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field severity", values[i])
			} else if value.Valid {
				_m.Severity = new(upstreamvuln.Severity)
				*_m.Severity = upstreamvuln.Severity(value.String)
			}
		case upstreamvuln.FieldAffectedVersions:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field affected_versions", values[i])
			} else if value.Valid {
				_m.AffectedVersions = new(string)
				*_m.AffectedVersions = value.String
			}
		case upstreamvuln.FieldSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field summary", values[i])
			} else if value.Valid {
				_m.Summary = new(string)
				*_m.Summary = value.String
			}
		case upstreamvuln.FieldReasoning:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reasoning", values[i])
			} else if value.Valid {
				_m.Reasoning = new(string)
				*_m.Reasoning = value.String
			}
		case upstreamvuln.FieldUpstreamPoc:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field upstream_poc", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.UpstreamPoc); err != nil {
					return fmt.Errorf("unmarshal field upstream_poc: %w", err)
				}
			}
		case upstreamvuln.FieldAffectedFunctions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field affected_functions", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AffectedFunctions); err != nil {
					return fmt.Errorf("unmarshal field affected_functions: %w", err)
				}
			}
		case upstreamvuln.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = upstreamvuln.Status(value.String)
			}
		case upstreamvuln.FieldPublishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field published_at", values[i])
			} else if value.Valid {
				_m.PublishedAt = new(time.Time)
				*_m.PublishedAt = value.Time
			}
		case upstreamvuln.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case upstreamvuln.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case upstreamvuln.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the UpstreamVuln.
// This includes values selected through modifiers, order, etc.
func (_m *UpstreamVuln) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryEvent queries the "event" edge of the UpstreamVuln entity.
func (_m *UpstreamVuln) QueryEvent() *EventQuery {
	return NewUpstreamVulnClient(_m.config).QueryEvent(_m)
}

// QueryLibrary queries the "library" edge of the UpstreamVuln entity.
func (_m *UpstreamVuln) QueryLibrary() *LibraryQuery {
	return NewUpstreamVulnClient(_m.config).QueryLibrary(_m)
}

// QueryClientVulns queries the "client_vulns" edge of the UpstreamVuln entity.
func (_m *UpstreamVuln) QueryClientVulns() *ClientVulnQuery {
	return NewUpstreamVulnClient(_m.config).QueryClientVulns(_m)
}

// Update returns a builder for updating this UpstreamVuln.
// Note that you need to call UpstreamVuln.Unwrap() before calling this method if this UpstreamVuln
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *UpstreamVuln) Update() *UpstreamVulnUpdateOne {
	return NewUpstreamVulnClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the UpstreamVuln entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *UpstreamVuln) Unwrap() *UpstreamVuln {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: UpstreamVuln is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *UpstreamVuln) String() string {
	var builder strings.Builder
	builder.WriteString("UpstreamVuln(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("event_id=")
	builder.WriteString(_m.EventID)
	builder.WriteString(", ")
	builder.WriteString("library_id=")
	builder.WriteString(_m.LibraryID)
	builder.WriteString(", ")
	builder.WriteString("commit_sha=")
	builder.WriteString(_m.CommitSha)
	builder.WriteString(", ")
	if v := _m.VulnType; v != nil {
		builder.WriteString("vuln_type=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Severity; v != nil {
		builder.WriteString("severity=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.AffectedVersions; v != nil {
		builder.WriteString("affected_versions=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Summary; v != nil {
		builder.WriteString("summary=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Reasoning; v != nil {
		builder.WriteString("reasoning=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("upstream_poc=")
	builder.WriteString(fmt.Sprintf("%v", _m.UpstreamPoc))
	builder.WriteString(", ")
	builder.WriteString("affected_functions=")
	builder.WriteString(fmt.Sprintf("%v", _m.AffectedFunctions))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.PublishedAt; v != nil {
		builder.WriteString("published_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
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

// UpstreamVulns is a parsable slice of UpstreamVuln.
type UpstreamVulns []*UpstreamVuln
