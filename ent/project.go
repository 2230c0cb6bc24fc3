// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/vulnsentinel/vulnsentinel/ent/project"
)

// Project is the model entity for the Project schema.
type Project struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Organization holds the value of the "organization" field.
	Organization string `json:"organization,omitempty"`
	// RepoURL holds the value of the "repo_url" field.
	RepoURL string `json:"repo_url,omitempty"`
	// DefaultBranch holds the value of the "default_branch" field.
	DefaultBranch string `json:"default_branch,omitempty"`
	// Version pointer used for client call-graph snapshots
	CurrentVersion *string `json:"current_version,omitempty"`
	// When set, dependency scanning is frozen at this ref
	PinnedRef *string `json:"pinned_ref,omitempty"`
	// AutoSyncDeps holds the value of the "auto_sync_deps" field.
	AutoSyncDeps bool `json:"auto_sync_deps,omitempty"`
	// ScanStatus holds the value of the "scan_status" field.
	ScanStatus string `json:"scan_status,omitempty"`
	// ScanError holds the value of the "scan_error" field.
	ScanError *string `json:"scan_error,omitempty"`
	// LastScannedAt holds the value of the "last_scanned_at" field.
	LastScannedAt *time.Time `json:"last_scanned_at,omitempty"`
	// Maintainer contact for notifications
	ContactEmail string `json:"contact_email,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ProjectQuery when eager-loading is set.
	Edges        ProjectEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ProjectEdges holds the relations/edges for other nodes in the graph.
type ProjectEdges struct {
	// Dependencies holds the value of the dependencies edge.
	Dependencies []*ProjectDependency `json:"dependencies,omitempty"`
	// ClientVulns holds the value of the client_vulns edge.
	ClientVulns []*ClientVuln `json:"client_vulns,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// DependenciesOrErr returns the Dependencies value or an error if the edge
// was not loaded in eager-loading.
func (e ProjectEdges) DependenciesOrErr() ([]*ProjectDependency, error) {
	if e.loadedTypes[0] {
		return e.Dependencies, nil
	}
	return nil, &NotLoadedError{edge: "dependencies"}
}

// ClientVulnsOrErr returns the ClientVulns value or an error if the edge
// was not loaded in eager-loading.
func (e ProjectEdges) ClientVulnsOrErr() ([]*ClientVuln, error) {
	if e.loadedTypes[1] {
		return e.ClientVulns, nil
	}
	return nil, &NotLoadedError{edge: "client_vulns"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Project) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case project.FieldAutoSyncDeps:
			values[i] = new(sql.NullBool)
		case project.FieldID, project.FieldName, project.FieldOrganization, project.FieldRepoURL, project.FieldDefaultBranch, project.FieldCurrentVersion, project.FieldPinnedRef, project.FieldScanStatus, project.FieldScanError, project.FieldContactEmail:
			values[i] = new(sql.NullString)
		case project.FieldLastScannedAt, project.FieldCreatedAt, project.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Project fields.
func (_m *Project) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case project.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case project.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case project.FieldOrganization:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field organization", values[i])
			} else if value.Valid {
				_m.Organization = value.String
			}
		case project.FieldRepoURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field repo_url", values[i])
			} else if value.Valid {
				_m.RepoURL = value.String
			}
		case project.FieldDefaultBranch:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field default_branch", values[i])
			} else if value.Valid {
				_m.DefaultBranch = value.String
			}
		case project.FieldCurrentVersion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field current_version", values[i])
			} else if value.Valid {
				_m.CurrentVersion = new(string)
				*_m.CurrentVersion = value.String
			}
		case project.FieldPinnedRef:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pinned_ref", values[i])
			} else if value.Valid {
				_m.PinnedRef = new(string)
				*_m.PinnedRef = value.String
			}
		case project.FieldAutoSyncDeps:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field auto_sync_deps", values[i])
			} else if value.Valid {
				_m.AutoSyncDeps = value.Bool
			}
		case project.FieldScanStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field scan_status", values[i])
			} else if value.Valid {
				_m.ScanStatus = value.String
			}
		case project.FieldScanError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field scan_error", values[i])
			} else if value.Valid {
				_m.ScanError = new(string)
				*_m.ScanError = value.String
			}
		case project.FieldLastScannedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_scanned_at", values[i])
			} else if value.Valid {
				_m.LastScannedAt = new(time.Time)
				*_m.LastScannedAt = value.Time
			}
		case project.FieldContactEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field contact_email", values[i])
			} else if value.Valid {
				_m.ContactEmail = value.String
			}
		case project.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case project.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Project.
// This includes values selected through modifiers, order, etc.
func (_m *Project) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDependencies queries the "dependencies" edge of the Project entity.
func (_m *Project) QueryDependencies() *ProjectDependencyQuery {
	return NewProjectClient(_m.config).QueryDependencies(_m)
}

// QueryClientVulns queries the "client_vulns" edge of the Project entity.
func (_m *Project) QueryClientVulns() *ClientVulnQuery {
	return NewProjectClient(_m.config).QueryClientVulns(_m)
}

// Update returns a builder for updating this Project.
// Note that you need to call Project.Unwrap() before calling this method if this Project
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Project) Update() *ProjectUpdateOne {
	return NewProjectClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Project entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Project) Unwrap() *Project {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Project is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Project) String() string {
	var builder strings.Builder
	builder.WriteString("Project(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("organization=")
	builder.WriteString(_m.Organization)
	builder.WriteString(", ")
	builder.WriteString("repo_url=")
	builder.WriteString(_m.RepoURL)
	builder.WriteString(", ")
	builder.WriteString("default_branch=")
	builder.WriteString(_m.DefaultBranch)
	builder.WriteString(", ")
	if v := _m.CurrentVersion; v != nil {
		builder.WriteString("current_version=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PinnedRef; v != nil {
		builder.WriteString("pinned_ref=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("auto_sync_deps=")
	builder.WriteString(fmt.Sprintf("%v", _m.AutoSyncDeps))
	builder.WriteString(", ")
	builder.WriteString("scan_status=")
	builder.WriteString(_m.ScanStatus)
	builder.WriteString(", ")
	if v := _m.ScanError; v != nil {
		builder.WriteString("scan_error=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LastScannedAt; v != nil {
		builder.WriteString("last_scanned_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("contact_email=")
	builder.WriteString(_m.ContactEmail)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Projects is a parsable slice of Project.
type Projects []*Project
