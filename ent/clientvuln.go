// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/vulnsentinel/vulnsentinel/ent/clientvuln"
	"github.com/vulnsentinel/vulnsentinel/ent/project"
	"github.com/vulnsentinel/vulnsentinel/ent/upstreamvuln"
)

// ClientVuln is the model entity for the ClientVuln schema.
type ClientVuln struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// UpstreamVulnID holds the value of the "upstream_vuln_id" field.
	UpstreamVulnID string `json:"upstream_vuln_id,omitempty"`
	// ProjectID holds the value of the "project_id" field.
	ProjectID string `json:"project_id,omitempty"`
	// PipelineStatus holds the value of the "pipeline_status" field.
	PipelineStatus clientvuln.PipelineStatus `json:"pipeline_status,omitempty"`
	// Customer-facing status; null until reachability finalizes
	Status *clientvuln.Status `json:"status,omitempty"`
	// IsAffected holds the value of the "is_affected" field.
	IsAffected *bool `json:"is_affected,omitempty"`
	// Denormalized from the owning ProjectDependency
	ConstraintExpr string `json:"constraint_expr,omitempty"`
	// ConstraintSource holds the value of the "constraint_source" field.
	ConstraintSource string `json:"constraint_source,omitempty"`
	// ResolvedVersion holds the value of the "resolved_version" field.
	ResolvedVersion *string `json:"resolved_version,omitempty"`
	// ReachablePath holds the value of the "reachable_path" field.
	ReachablePath map[string]interface{} `json:"reachable_path,omitempty"`
	// PocResults holds the value of the "poc_results" field.
	PocResults map[string]interface{} `json:"poc_results,omitempty"`
	// Rendered notification record, e.g. {type:'email', to, subject}
	Report map[string]interface{} `json:"report,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// AnalysisCompletedAt holds the value of the "analysis_completed_at" field.
	AnalysisCompletedAt *time.Time `json:"analysis_completed_at,omitempty"`
	// RecordedAt holds the value of the "recorded_at" field.
	RecordedAt *time.Time `json:"recorded_at,omitempty"`
	// ReportedAt holds the value of the "reported_at" field.
	ReportedAt *time.Time `json:"reported_at,omitempty"`
	// ConfirmedAt holds the value of the "confirmed_at" field.
	ConfirmedAt *time.Time `json:"confirmed_at,omitempty"`
	// FixedAt holds the value of the "fixed_at" field.
	FixedAt *time.Time `json:"fixed_at,omitempty"`
	// NotAffectAt holds the value of the "not_affect_at" field.
	NotAffectAt *time.Time `json:"not_affect_at,omitempty"`
	// ConfirmedMsg holds the value of the "confirmed_msg" field.
	ConfirmedMsg *string `json:"confirmed_msg,omitempty"`
	// FixedMsg holds the value of the "fixed_msg" field.
	FixedMsg *string `json:"fixed_msg,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ClientVulnQuery when eager-loading is set.
	Edges        ClientVulnEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ClientVulnEdges holds the relations/edges for other nodes in the graph.
type ClientVulnEdges struct {
	// UpstreamVuln holds the value of the upstream_vuln edge.
	UpstreamVuln *UpstreamVuln `json:"upstream_vuln,omitempty"`
	// Project holds the value of the project edge.
	Project *Project `json:"project,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// UpstreamVulnOrErr returns the UpstreamVuln value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ClientVulnEdges) UpstreamVulnOrErr() (*UpstreamVuln, error) {
	if e.UpstreamVuln != nil {
		return e.UpstreamVuln, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: upstreamvuln.Label}
	}
	return nil, &NotLoadedError{edge: "upstream_vuln"}
}

// ProjectOrErr returns the Project value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ClientVulnEdges) ProjectOrErr() (*Project, error) {
	if e.Project != nil {
		return e.Project, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: project.Label}
	}
	return nil, &NotLoadedError{edge: "project"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ClientVuln) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case clientvuln.FieldReachablePath, clientvuln.FieldPocResults, clientvuln.FieldReport:
			values[i] = new([]byte)
		case clientvuln.FieldIsAffected:
			values[i] = new(sql.NullBool)
		case clientvuln.FieldID, clientvuln.FieldUpstreamVulnID, clientvuln.FieldProjectID, clientvuln.FieldPipelineStatus, clientvuln.FieldStatus, clientvuln.FieldConstraintExpr, clientvuln.FieldConstraintSource, clientvuln.FieldResolvedVersion, clientvuln.FieldErrorMessage, clientvuln.FieldConfirmedMsg, clientvuln.FieldFixedMsg:
			values[i] = new(sql.NullString)
		case clientvuln.FieldAnalysisCompletedAt, clientvuln.FieldRecordedAt, clientvuln.FieldReportedAt, clientvuln.FieldConfirmedAt, clientvuln.FieldFixedAt, clientvuln.FieldNotAffectAt, clientvuln.FieldCreatedAt, clientvuln.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ClientVuln fields.
func (_m *ClientVuln) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case clientvuln.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case clientvuln.FieldUpstreamVulnID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field upstream_vuln_id", values[i])
			} else if value.Valid {
				_m.UpstreamVulnID = value.String
			}
		case clientvuln.FieldProjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field project_id", values[i])
			} else if value.Valid {
				_m.ProjectID = value.String
			}
		case clientvuln.FieldPipelineStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pipeline_status", values[i])
			} else if value.Valid {
				_m.PipelineStatus = clientvuln.PipelineStatus(value.String)
			}
		case clientvuln.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = new(clientvuln.Status)
				*_m.Status = clientvuln.Status(value.String)
			}
		case clientvuln.FieldIsAffected:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_affected", values[i])
			} else if value.Valid {
				_m.IsAffected = new(bool)
				*_m.IsAffected = value.Bool
			}
		case clientvuln.FieldConstraintExpr:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field constraint_expr", values[i])
			} else if value.Valid {
				_m.ConstraintExpr = value.String
			}
		case clientvuln.FieldConstraintSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field constraint_source", values[i])
			} else if value.Valid {
				_m.ConstraintSource = value.String
			}
		case clientvuln.FieldResolvedVersion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field resolved_version", values[i])
			} else if value.Valid {
				_m.ResolvedVersion = new(string)
				*_m.ResolvedVersion = value.String
			}
		case clientvuln.FieldReachablePath:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field reachable_path", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ReachablePath); err != nil {
					return fmt.Errorf("unmarshal field reachable_path: %w", err)
				}
			}
		case clientvuln.FieldPocResults:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field poc_results", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.PocResults); err != nil {
					return fmt.Errorf("unmarshal field poc_results: %w", err)
				}
			}
		case clientvuln.FieldReport:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field report", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Report); err != nil {
					return fmt.Errorf("unmarshal field report: %w", err)
				}
			}
		case clientvuln.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case clientvuln.FieldAnalysisCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field analysis_completed_at", values[i])
			} else if value.Valid {
				_m.AnalysisCompletedAt = new(time.Time)
				*_m.AnalysisCompletedAt = value.Time
			}
		case clientvuln.FieldRecordedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field recorded_at", values[i])
			} else if value.Valid {
				_m.RecordedAt = new(time.Time)
				*_m.RecordedAt = value.Time
			}
		case clientvuln.FieldReportedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field reported_at", values[i])
			} else if value.Valid {
				_m.ReportedAt = new(time.Time)
				*_m.ReportedAt = value.Time
			}
		case clientvuln.FieldConfirmedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field confirmed_at", values[i])
			} else if value.Valid {
				_m.ConfirmedAt = new(time.Time)
				*_m.ConfirmedAt = value.Time
			}
		case clientvuln.FieldFixedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field fixed_at", values[i])
			} else if value.Valid {
				_m.FixedAt = new(time.Time)
				*_m.FixedAt = value.Time
			}
		case clientvuln.FieldNotAffectAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field not_affect_at", values[i])
			} else if value.Valid {
				_m.NotAffectAt = new(time.Time)
				*_m.NotAffectAt = value.Time
			}
		case clientvuln.FieldConfirmedMsg:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field confirmed_msg", values[i])
			} else if value.Valid {
				_m.ConfirmedMsg = new(string)
				*_m.ConfirmedMsg = value.String
			}
		case clientvuln.FieldFixedMsg:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field fixed_msg", values[i])
			} else if value.Valid {
				_m.FixedMsg = new(string)
				*_m.FixedMsg = value.String
			}
		case clientvuln.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case clientvuln.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ClientVuln.
// This includes values selected through modifiers, order, etc.
func (_m *ClientVuln) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUpstreamVuln queries the "upstream_vuln" edge of the ClientVuln entity.
func (_m *ClientVuln) QueryUpstreamVuln() *UpstreamVulnQuery {
	return NewClientVulnClient(_m.config).QueryUpstreamVuln(_m)
}

// QueryProject queries the "project" edge of the ClientVuln entity.
func (_m *ClientVuln) QueryProject() *ProjectQuery {
	return NewClientVulnClient(_m.config).QueryProject(_m)
}

// Update returns a builder for updating this ClientVuln.
// Note that you need to call ClientVuln.Unwrap() before calling this method if this ClientVuln
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ClientVuln) Update() *ClientVulnUpdateOne {
	return NewClientVulnClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ClientVuln entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ClientVuln) Unwrap() *ClientVuln {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ClientVuln is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ClientVuln) String() string {
	var builder strings.Builder
	builder.WriteString("ClientVuln(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("upstream_vuln_id=")
	builder.WriteString(_m.UpstreamVulnID)
	builder.WriteString(", ")
	builder.WriteString("project_id=")
	builder.WriteString(_m.ProjectID)
	builder.WriteString(", ")
	builder.WriteString("pipeline_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.PipelineStatus))
	builder.WriteString(", ")
	if v := _m.Status; v != nil {
		builder.WriteString("status=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.IsAffected; v != nil {
		builder.WriteString("is_affected=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("constraint_expr=")
	builder.WriteString(_m.ConstraintExpr)
	builder.WriteString(", ")
	builder.WriteString("constraint_source=")
	builder.WriteString(_m.ConstraintSource)
	builder.WriteString(", ")
	if v := _m.ResolvedVersion; v != nil {
		builder.WriteString("resolved_version=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("reachable_path=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReachablePath))
	builder.WriteString(", ")
	builder.WriteString("poc_results=")
	builder.WriteString(fmt.Sprintf("%v", _m.PocResults))
	builder.WriteString(", ")
	builder.WriteString("report=")
	builder.WriteString(fmt.Sprintf("%v", _m.Report))
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.AnalysisCompletedAt; v != nil {
		builder.WriteString("analysis_completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.RecordedAt; v != nil {
		builder.WriteString("recorded_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ReportedAt; v != nil {
		builder.WriteString("reported_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ConfirmedAt; v != nil {
		builder.WriteString("confirmed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.FixedAt; v != nil {
		builder.WriteString("fixed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.NotAffectAt; v != nil {
		builder.WriteString("not_affect_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ConfirmedMsg; v != nil {
		builder.WriteString("confirmed_msg=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.FixedMsg; v != nil {
		builder.WriteString("fixed_msg=")
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

// ClientVulns is a parsable slice of ClientVuln.
type ClientVulns []*ClientVuln
