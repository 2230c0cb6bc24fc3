// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/vulnsentinel/vulnsentinel/ent/event"
	"github.com/vulnsentinel/vulnsentinel/ent/library"
)

// Event is the model entity for the Event schema.
type Event struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// LibraryID holds the value of the "library_id" field.
	LibraryID string `json:"library_id,omitempty"`
	// Type holds the value of the "type" field.
	Type event.Type `json:"type,omitempty"`
	// Commit SHA, PR number, tag name, or issue number
	Ref string `json:"ref,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Message holds the value of the "message" field.
	Message string `json:"message,omitempty"`
	// Author holds the value of the "author" field.
	Author string `json:"author,omitempty"`
	// Issue number extracted from 'Fixes #N' style references
	RelatedIssueRef *string `json:"related_issue_ref,omitempty"`
	// PR number extracted from the '(#N)' title suffix
	RelatedPrRef *string `json:"related_pr_ref,omitempty"`
	// RelatedCommitSha holds the value of the "related_commit_sha" field.
	RelatedCommitSha *string `json:"related_commit_sha,omitempty"`
	// Null until the classifier has run
	Classification *event.Classification `json:"classification,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence *float64 `json:"confidence,omitempty"`
	// Derived: true iff classification = security_bugfix
	IsBugfix bool `json:"is_bugfix,omitempty"`
	// Upstream timestamp (commit date, merge time, ...)
	OccurredAt *time.Time `json:"occurred_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the EventQuery when eager-loading is set.
	Edges        EventEdges `json:"edges"`
	selectValues sql.SelectValues
}

// EventEdges holds the relations/edges for other nodes in the graph.
type EventEdges struct {
	// Library holds the value of the library edge.
	Library *Library `json:"library,omitempty"`
	// UpstreamVulns holds the value of the upstream_vulns edge.
	UpstreamVulns []*UpstreamVuln `json:"upstream_vulns,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// LibraryOrErr returns the Library value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e EventEdges) LibraryOrErr() (*Library, error) {
	if e.Library != nil {
		return e.Library, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: library.Label}
	}
	return nil, &NotLoadedError{edge: "library"}
}

// UpstreamVulnsOrErr returns the UpstreamVulns value or an error if the edge
// was not loaded in eager-loading.
func (e EventEdges) UpstreamVulnsOrErr() ([]*UpstreamVuln, error) {
	if e.loadedTypes[1] {
		return e.UpstreamVulns, nil
	}
	return nil, &NotLoadedError{edge: "upstream_vulns"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Event) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case event.FieldIsBugfix:
			values[i] = new(sql.NullBool)
		case event.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case event.FieldID, event.FieldLibraryID, event.FieldType, event.FieldRef, event.FieldTitle, event.FieldMessage, event.FieldAuthor, event.FieldRelatedIssueRef, event.FieldRelatedPrRef, event.FieldRelatedCommitSha, event.FieldClassification:
			values[i] = new(sql.NullString)
		case event.FieldOccurredAt, event.FieldCreatedAt, event.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Event fields.
func (_m *Event) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case event.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case event.FieldLibraryID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field library_id", values[i])
			} else if value.Valid {
				_m.LibraryID = value.String
			}
		case event.FieldType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field type", values[i])
			} else if value.Valid {
				_m.Type = event.Type(value.String)
			}
		case event.FieldRef:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ref", values[i])
			} else if value.Valid {
				_m.Ref = value.String
			}
		case event.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case event.FieldMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field message", values[i])
			} else if value.Valid {
				_m.Message = value.String
			}
		case event.FieldAuthor:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field author", values[i])
			} else if value.Valid {
				_m.Author = value.String
			}
		case event.FieldRelatedIssueRef:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field related_issue_ref", values[i])
			} else if value.Valid {
				_m.RelatedIssueRef = new(string)
				*_m.RelatedIssueRef = value.String
			}
		case event.FieldRelatedPrRef:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field related_pr_ref", values[i])
			} else if value.Valid {
				_m.RelatedPrRef = new(string)
				*_m.RelatedPrRef = value.String
			}
		case event.FieldRelatedCommitSha:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field related_commit_sha", values[i])
			} else if value.Valid {
				_m.RelatedCommitSha = new(string)
				*_m.RelatedCommitSha = value.String
			}
		case event.FieldClassification:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field classification", values[i])
			} else if value.Valid {
				_m.Classification = new(event.Classification)
				*_m.Classification = event.Classification(value.String)
			}
		case event.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = new(float64)
				*_m.Confidence = value.Float64
			}
		case event.FieldIsBugfix:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_bugfix", values[i])
			} else if value.Valid {
				_m.IsBugfix = value.Bool
			}
		case event.FieldOccurredAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field occurred_at", values[i])
			} else if value.Valid {
				_m.OccurredAt = new(time.Time)
				*_m.OccurredAt = value.Time
			}
		case event.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case event.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Event.
// This includes values selected through modifiers, order, etc.
func (_m *Event) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryLibrary queries the "library" edge of the Event entity.
func (_m *Event) QueryLibrary() *LibraryQuery {
	return NewEventClient(_m.config).QueryLibrary(_m)
}

// QueryUpstreamVulns queries the "upstream_vulns" edge of the Event entity.
func (_m *Event) QueryUpstreamVulns() *UpstreamVulnQuery {
	return NewEventClient(_m.config).QueryUpstreamVulns(_m)
}

// Update returns a builder for updating this Event.
// Note that you need to call Event.Unwrap() before calling this method if this Event
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Event) Update() *EventUpdateOne {
	return NewEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Event entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Event) Unwrap() *Event {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Event is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Event) String() string {
	var builder strings.Builder
	builder.WriteString("Event(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("library_id=")
	builder.WriteString(_m.LibraryID)
	builder.WriteString(", ")
	builder.WriteString("type=")
	builder.WriteString(fmt.Sprintf("%v", _m.Type))
	builder.WriteString(", ")
	builder.WriteString("ref=")
	builder.WriteString(_m.Ref)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("message=")
	builder.WriteString(_m.Message)
	builder.WriteString(", ")
	builder.WriteString("author=")
	builder.WriteString(_m.Author)
	builder.WriteString(", ")
	if v := _m.RelatedIssueRef; v != nil {
		builder.WriteString("related_issue_ref=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.RelatedPrRef; v != nil {
		builder.WriteString("related_pr_ref=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.RelatedCommitSha; v != nil {
		builder.WriteString("related_commit_sha=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Classification; v != nil {
		builder.WriteString("classification=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Confidence; v != nil {
		builder.WriteString("confidence=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("is_bugfix=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsBugfix))
	builder.WriteString(", ")
	if v := _m.OccurredAt; v != nil {
		builder.WriteString("occurred_at=")
		builder.WriteString(v.Format(time.ANSIC))
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

// Events is a parsable slice of Event.
type Events []*Event
