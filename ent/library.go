// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/vulnsentinel/vulnsentinel/ent/library"
)

// Library is the model entity for the Library schema.
type Library struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Canonical library name; fork protection key
	Name string `json:"name,omitempty"`
	// RepoURL holds the value of the "repo_url" field.
	RepoURL string `json:"repo_url,omitempty"`
	// Platform holds the value of the "platform" field.
	Platform string `json:"platform,omitempty"`
	// Package ecosystem tag (e.g., 'conan')
	Ecosystem string `json:"ecosystem,omitempty"`
	// DefaultBranch holds the value of the "default_branch" field.
	DefaultBranch string `json:"default_branch,omitempty"`
	// Collector watermark for the commits source
	LastCommitSha *string `json:"last_commit_sha,omitempty"`
	// Collector watermark for the tags source
	LastTagName *string `json:"last_tag_name,omitempty"`
	// LastScannedAt holds the value of the "last_scanned_at" field.
	LastScannedAt *time.Time `json:"last_scanned_at,omitempty"`
	// CollectorHealth holds the value of the "collector_health" field.
	CollectorHealth library.CollectorHealth `json:"collector_health,omitempty"`
	// Per-source status map: commits|prs|tags|issues|ghsa -> status
	CollectorDetail map[string]string `json:"collector_detail,omitempty"`
	// CollectorError holds the value of the "collector_error" field.
	CollectorError *string `json:"collector_error,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the LibraryQuery when eager-loading is set.
	Edges        LibraryEdges `json:"edges"`
	selectValues sql.SelectValues
}

// LibraryEdges holds the relations/edges for other nodes in the graph.
type LibraryEdges struct {
	// Events holds the value of the events edge.
	Events []*Event `json:"events,omitempty"`
	// UpstreamVulns holds the value of the upstream_vulns edge.
	UpstreamVulns []*UpstreamVuln `json:"upstream_vulns,omitempty"`
	// Dependencies holds the value of the dependencies edge.
	Dependencies []*ProjectDependency `json:"dependencies,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// EventsOrErr returns the Events value or an error if the edge
// was not loaded in eager-loading.
func (e LibraryEdges) EventsOrErr() ([]*Event, error) {
	if e.loadedTypes[0] {
		return e.Events, nil
	}
	return nil, &NotLoadedError{edge: "events"}
}

// UpstreamVulnsOrErr returns the UpstreamVulns value or an error if the edge
// was not loaded in eager-loading.
func (e LibraryEdges) UpstreamVulnsOrErr() ([]*UpstreamVuln, error) {
	if e.loadedTypes[1] {
		return e.UpstreamVulns, nil
	}
	return nil, &NotLoadedError{edge: "upstream_vulns"}
}

// DependenciesOrErr returns the Dependencies value or an error if the edge
// was not loaded in eager-loading.
func (e LibraryEdges) DependenciesOrErr() ([]*ProjectDependency, error) {
	if e.loadedTypes[2] {
		return e.Dependencies, nil
	}
	return nil, &NotLoadedError{edge: "dependencies"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Library) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case library.FieldCollectorDetail:
			values[i] = new([]byte)
		case library.FieldID, library.FieldName, library.FieldRepoURL, library.FieldPlatform, library.FieldEcosystem, library.FieldDefaultBranch, library.FieldLastCommitSha, library.FieldLastTagName, library.FieldCollectorHealth, library.FieldCollectorError:
			values[i] = new(sql.NullString)
		case library.FieldLastScannedAt, library.FieldCreatedAt, library.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Library fields.
func (_m *Library) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case library.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case library.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case library.FieldRepoURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field repo_url", values[i])
			} else if value.Valid {
				_m.RepoURL = value.String
			}
		case library.FieldPlatform:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field platform", values[i])
			} else if value.Valid {
				_m.Platform = value.String
			}
		case library.FieldEcosystem:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ecosystem", values[i])
			} else if value.Valid {
				_m.Ecosystem = value.String
			}
		case library.FieldDefaultBranch:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field default_branch", values[i])
			} else if value.Valid {
				_m.DefaultBranch = value.String
			}
		case library.FieldLastCommitSha:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_commit_sha", values[i])
			} else if value.Valid {
				_m.LastCommitSha = new(string)
				*_m.LastCommitSha = value.String
			}
		case library.FieldLastTagName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_tag_name", values[i])
			} else if value.Valid {
				_m.LastTagName = new(string)
				*_m.LastTagName = value.String
			}
		case library.FieldLastScannedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_scanned_at", values[i])
			} else if value.Valid {
				_m.LastScannedAt = new(time.Time)
				*_m.LastScannedAt = value.Time
			}
		case library.FieldCollectorHealth:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field collector_health", values[i])
			} else if value.Valid {
				_m.CollectorHealth = library.CollectorHealth(value.String)
			}
		case library.FieldCollectorDetail:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field collector_detail", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CollectorDetail); err != nil {
					return fmt.Errorf("unmarshal field collector_detail: %w", err)
				}
			}
		case library.FieldCollectorError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field collector_error", values[i])
			} else if value.Valid {
				_m.CollectorError = new(string)
				*_m.CollectorError = value.String
			}
		case library.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case library.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Library.
// This includes values selected through modifiers, order, etc.
func (_m *Library) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryEvents queries the "events" edge of the Library entity.
func (_m *Library) QueryEvents() *EventQuery {
	return NewLibraryClient(_m.config).QueryEvents(_m)
}

// QueryUpstreamVulns queries the "upstream_vulns" edge of the Library entity.
func (_m *Library) QueryUpstreamVulns() *UpstreamVulnQuery {
	return NewLibraryClient(_m.config).QueryUpstreamVulns(_m)
}

// QueryDependencies queries the "dependencies" edge of the Library entity.
func (_m *Library) QueryDependencies() *ProjectDependencyQuery {
	return NewLibraryClient(_m.config).QueryDependencies(_m)
}

// Update returns a builder for updating this Library.
// Note that you need to call Library.Unwrap() before calling this method if this Library
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Library) Update() *LibraryUpdateOne {
	return NewLibraryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Library entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Library) Unwrap() *Library {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Library is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Library) String() string {
	var builder strings.Builder
	builder.WriteString("Library(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("repo_url=")
	builder.WriteString(_m.RepoURL)
	builder.WriteString(", ")
	builder.WriteString("platform=")
	builder.WriteString(_m.Platform)
	builder.WriteString(", ")
	builder.WriteString("ecosystem=")
	builder.WriteString(_m.Ecosystem)
	builder.WriteString(", ")
	builder.WriteString("default_branch=")
	builder.WriteString(_m.DefaultBranch)
	builder.WriteString(", ")
	if v := _m.LastCommitSha; v != nil {
		builder.WriteString("last_commit_sha=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LastTagName; v != nil {
		builder.WriteString("last_tag_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LastScannedAt; v != nil {
		builder.WriteString("last_scanned_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("collector_health=")
	builder.WriteString(fmt.Sprintf("%v", _m.CollectorHealth))
	builder.WriteString(", ")
	builder.WriteString("collector_detail=")
	builder.WriteString(fmt.Sprintf("%v", _m.CollectorDetail))
	builder.WriteString(", ")
	if v := _m.CollectorError; v != nil {
		builder.WriteString("collector_error=")
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

// Libraries is a parsable slice of Library.
type Libraries []*Library
