// Code generated by ent, DO NOT EDIT.

package clientvuln

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the clientvuln type in the database.
	Label = "client_vuln"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUpstreamVulnID holds the string denoting the upstream_vuln_id field in the database.
	FieldUpstreamVulnID = "upstream_vuln_id"
	// FieldProjectID holds the string denoting the project_id field in the database.
	FieldProjectID = "project_id"
	// FieldPipelineStatus holds the string denoting the pipeline_status field in the database.
	FieldPipelineStatus = "pipeline_status"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldIsAffected holds the string denoting the is_affected field in the database.
	FieldIsAffected = "is_affected"
	// FieldConstraintExpr holds the string denoting the constraint_expr field in the database.
	FieldConstraintExpr = "constraint_expr"
	// FieldConstraintSource holds the string denoting the constraint_source field in the database.
	FieldConstraintSource = "constraint_source"
	// FieldResolvedVersion holds the string denoting the resolved_version field in the database.
	FieldResolvedVersion = "resolved_version"
	// FieldReachablePath holds the string denoting the reachable_path field in the database.
	FieldReachablePath = "reachable_path"
	// FieldPocResults holds the string denoting the poc_results field in the database.
	FieldPocResults = "poc_results"
	// FieldReport holds the string denoting the report field in the database.
	FieldReport = "report"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldAnalysisCompletedAt holds the string denoting the analysis_completed_at field in the database.
	FieldAnalysisCompletedAt = "analysis_completed_at"
	// FieldRecordedAt holds the string denoting the recorded_at field in the database.
	FieldRecordedAt = "recorded_at"
	// FieldReportedAt holds the string denoting the reported_at field in the database.
	FieldReportedAt = "reported_at"
	// FieldConfirmedAt holds the string denoting the confirmed_at field in the database.
	FieldConfirmedAt = "confirmed_at"
	// FieldFixedAt holds the string denoting the fixed_at field in the database.
	FieldFixedAt = "fixed_at"
	// FieldNotAffectAt holds the string denoting the not_affect_at field in the database.
	FieldNotAffectAt = "not_affect_at"
	// FieldConfirmedMsg holds the string denoting the confirmed_msg field in the database.
	FieldConfirmedMsg = "confirmed_msg"
	// FieldFixedMsg holds the string denoting the fixed_msg field in the database.
	FieldFixedMsg = "fixed_msg"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeUpstreamVuln holds the string denoting the upstream_vuln edge name in mutations.
	EdgeUpstreamVuln = "upstream_vuln"
	// EdgeProject holds the string denoting the project edge name in mutations.
	EdgeProject = "project"
	// Table holds the table name of the clientvuln in the database.
	Table = "client_vulns"
	// UpstreamVulnTable is the table that holds the upstream_vuln relation/edge.
	UpstreamVulnTable = "client_vulns"
	// UpstreamVulnInverseTable is the table name for the UpstreamVuln entity.
	// It exists in this package in order to avoid circular dependency with the "upstreamvuln" package.
	UpstreamVulnInverseTable = "upstream_vulns"
	// UpstreamVulnColumn is the table column denoting the upstream_vuln relation/edge.
	UpstreamVulnColumn = "upstream_vuln_id"
	// ProjectTable is the table that holds the project relation/edge.
	ProjectTable = "client_vulns"
	// ProjectInverseTable is the table name for the Project entity.
	// It exists in this package in order to avoid circular dependency with the "project" package.
	ProjectInverseTable = "projects"
	// ProjectColumn is the table column denoting the project relation/edge.
	ProjectColumn = "project_id"
)

// Columns holds all SQL columns for clientvuln fields.
var Columns = []string{
	FieldID,
	FieldUpstreamVulnID,
	FieldProjectID,
	FieldPipelineStatus,
	FieldStatus,
	FieldIsAffected,
	FieldConstraintExpr,
	FieldConstraintSource,
	FieldResolvedVersion,
	FieldReachablePath,
	FieldPocResults,
	FieldReport,
	FieldErrorMessage,
	FieldAnalysisCompletedAt,
	FieldRecordedAt,
	FieldReportedAt,
	FieldConfirmedAt,
	FieldFixedAt,
	FieldNotAffectAt,
	FieldConfirmedMsg,
	FieldFixedMsg,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() string
)

// PipelineStatus defines the type for the "pipeline_status" enum field.
type PipelineStatus string

// PipelineStatusPending is the default value of the PipelineStatus enum.
const DefaultPipelineStatus = PipelineStatusPending

// PipelineStatus values.
const (
	PipelineStatusPending       PipelineStatus = "pending"
	PipelineStatusPathSearching PipelineStatus = "path_searching"
	PipelineStatusPocGenerating PipelineStatus = "poc_generating"
	PipelineStatusVerified      PipelineStatus = "verified"
	PipelineStatusNotAffect     PipelineStatus = "not_affect"
)

func (ps PipelineStatus) String() string {
	return string(ps)
}

// PipelineStatusValidator is a validator for the "pipeline_status" field enum values. It is called by the builders before save.
func PipelineStatusValidator(ps PipelineStatus) error {
	switch ps {
	case PipelineStatusPending, PipelineStatusPathSearching, PipelineStatusPocGenerating, PipelineStatusVerified, PipelineStatusNotAffect:
		return nil
	default:
		return fmt.Errorf("clientvuln: invalid enum value for pipeline_status field: %q", ps)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// Status values.
const (
	StatusRecorded  Status = "recorded"
	StatusReported  Status = "reported"
	StatusConfirmed Status = "confirmed"
	StatusFixed     Status = "fixed"
	StatusNotAffect Status = "not_affect"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusRecorded, StatusReported, StatusConfirmed, StatusFixed, StatusNotAffect:
		return nil
	default:
		return fmt.Errorf("clientvuln: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the ClientVuln queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUpstreamVulnID orders the results by the upstream_vuln_id field.
func ByUpstreamVulnID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpstreamVulnID, opts...).ToFunc()
}

// ByProjectID orders the results by the project_id field.
func ByProjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProjectID, opts...).ToFunc()
}

// ByPipelineStatus orders the results by the pipeline_status field.
func ByPipelineStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPipelineStatus, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByIsAffected orders the results by the is_affected field.
func ByIsAffected(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsAffected, opts...).ToFunc()
}

// ByConstraintExpr orders the results by the constraint_expr field.
func ByConstraintExpr(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConstraintExpr, opts...).ToFunc()
}

// ByConstraintSource orders the results by the constraint_source field.
func ByConstraintSource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConstraintSource, opts...).ToFunc()
}

// ByResolvedVersion orders the results by the resolved_version field.
func ByResolvedVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResolvedVersion, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByAnalysisCompletedAt orders the results by the analysis_completed_at field.
func ByAnalysisCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnalysisCompletedAt, opts...).ToFunc()
}

// ByRecordedAt orders the results by the recorded_at field.
func ByRecordedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecordedAt, opts...).ToFunc()
}

// ByReportedAt orders the results by the reported_at field.
func ByReportedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReportedAt, opts...).ToFunc()
}

// ByConfirmedAt orders the results by the confirmed_at field.
func ByConfirmedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfirmedAt, opts...).ToFunc()
}

// ByFixedAt orders the results by the fixed_at field.
func ByFixedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFixedAt, opts...).ToFunc()
}

// ByNotAffectAt orders the results by the not_affect_at field.
func ByNotAffectAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotAffectAt, opts...).ToFunc()
}

// ByConfirmedMsg orders the results by the confirmed_msg field.
func ByConfirmedMsg(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfirmedMsg, opts...).ToFunc()
}

// ByFixedMsg orders the results by the fixed_msg field.
func ByFixedMsg(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFixedMsg, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByUpstreamVulnField orders the results by upstream_vuln field.
func ByUpstreamVulnField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newUpstreamVulnStep(), sql.OrderByField(field, opts...))
	}
}

// ByProjectField orders the results by project field.
func ByProjectField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newProjectStep(), sql.OrderByField(field, opts...))
	}
}
func newUpstreamVulnStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(UpstreamVulnInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, UpstreamVulnTable, UpstreamVulnColumn),
	)
}
func newProjectStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProjectInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
	)
}
