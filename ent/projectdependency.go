// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/vulnsentinel/vulnsentinel/ent/library"
	"github.com/vulnsentinel/vulnsentinel/ent/project"
	"github.com/vulnsentinel/vulnsentinel/ent/projectdependency"
)

// ProjectDependency is the model entity for the ProjectDependency schema.
type ProjectDependency struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ProjectID holds the value of the "project_id" field.
	ProjectID string `json:"project_id,omitempty"`
	// LibraryID holds the value of the "library_id" field.
	LibraryID string `json:"library_id,omitempty"`
	// Version range expression, e.g. '>=1.2 <2.0'
	ConstraintExpr string `json:"constraint_expr,omitempty"`
	// ResolvedVersion holds the value of the "resolved_version" field.
	ResolvedVersion *string `json:"resolved_version,omitempty"`
	// manual | conanfile.txt | CMakeLists.txt | scan
	ConstraintSource string `json:"constraint_source,omitempty"`
	// NotifyEnabled holds the value of the "notify_enabled" field.
	NotifyEnabled bool `json:"notify_enabled,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ProjectDependencyQuery when eager-loading is set.
	Edges        ProjectDependencyEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ProjectDependencyEdges holds the relations/edges for other nodes in the graph.
type ProjectDependencyEdges struct {
	// Project holds the value of the project edge.
	Project *Project `json:"project,omitempty"`
	// Library holds the value of the library edge.
	Library *Library `json:"library,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ProjectOrErr returns the Project value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ProjectDependencyEdges) ProjectOrErr() (*Project, error) {
	if e.Project != nil {
		return e.Project, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: project.Label}
	}
	return nil, &NotLoadedError{edge: "project"}
}

// LibraryOrErr returns the Library value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ProjectDependencyEdges) LibraryOrErr() (*Library, error) {
	if e.Library != nil {
		return e.Library, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: library.Label}
	}
	return nil, &NotLoadedError{edge: "library"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ProjectDependency) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case projectdependency.FieldNotifyEnabled:
			values[i] = new(sql.NullBool)
		case projectdependency.FieldID, projectdependency.FieldProjectID, projectdependency.FieldLibraryID, projectdependency.FieldConstraintExpr, projectdependency.FieldResolvedVersion, projectdependency.FieldConstraintSource:
			values[i] = new(sql.NullString)
		case projectdependency.FieldCreatedAt, projectdependency.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ProjectDependency fields.
func (_m *ProjectDependency) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case projectdependency.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case projectdependency.FieldProjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field project_id", values[i])
			} else if value.Valid {
				_m.ProjectID = value.String
			}
		case projectdependency.FieldLibraryID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field library_id", values[i])
			} else if value.Valid {
				_m.LibraryID = value.String
			}
		case projectdependency.FieldConstraintExpr:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field constraint_expr", values[i])
			} else if value.Valid {
				_m.ConstraintExpr = value.String
			}
		case projectdependency.FieldResolvedVersion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field resolved_version", values[i])
			} else if value.Valid {
				_m.ResolvedVersion = new(string)
				*_m.ResolvedVersion = value.String
			}
		case projectdependency.FieldConstraintSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field constraint_source", values[i])
			} else if value.Valid {
				_m.ConstraintSource = value.String
			}
		case projectdependency.FieldNotifyEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field notify_enabled", values[i])
			} else if value.Valid {
				_m.NotifyEnabled = value.Bool
			}
		case projectdependency.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case projectdependency.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ProjectDependency.
// This includes values selected through modifiers, order, etc.
func (_m *ProjectDependency) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProject queries the "project" edge of the ProjectDependency entity.
func (_m *ProjectDependency) QueryProject() *ProjectQuery {
	return NewProjectDependencyClient(_m.config).QueryProject(_m)
}

// QueryLibrary queries the "library" edge of the ProjectDependency entity.
func (_m *ProjectDependency) QueryLibrary() *LibraryQuery {
	return NewProjectDependencyClient(_m.config).QueryLibrary(_m)
}

// Update returns a builder for updating this ProjectDependency.
// Note that you need to call ProjectDependency.Unwrap() before calling this method if this ProjectDependency
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ProjectDependency) Update() *ProjectDependencyUpdateOne {
	return NewProjectDependencyClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ProjectDependency entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ProjectDependency) Unwrap() *ProjectDependency {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ProjectDependency is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ProjectDependency) String() string {
	var builder strings.Builder
	builder.WriteString("ProjectDependency(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("project_id=")
	builder.WriteString(_m.ProjectID)
	builder.WriteString(", ")
	builder.WriteString("library_id=")
	builder.WriteString(_m.LibraryID)
	builder.WriteString(", ")
	builder.WriteString("constraint_expr=")
	builder.WriteString(_m.ConstraintExpr)
	builder.WriteString(", ")
	if v := _m.ResolvedVersion; v != nil {
		builder.WriteString("resolved_version=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("constraint_source=")
	builder.WriteString(_m.ConstraintSource)
	builder.WriteString(", ")
	builder.WriteString("notify_enabled=")
	builder.WriteString(fmt.Sprintf("%v", _m.NotifyEnabled))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ProjectDependencies is a parsable slice of ProjectDependency.
type ProjectDependencies []*ProjectDependency
