// Code generated by ent, DO NOT EDIT.

package clientvuln

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/vulnsentinel/vulnsentinel/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldContainsFold(FieldID, id))
}

// UpstreamVulnID applies equality check predicate on the "upstream_vuln_id" field. It's identical to UpstreamVulnIDEQ.
func UpstreamVulnID(v string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldEQ(FieldUpstreamVulnID, v))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldEQ(FieldProjectID, v))
}

// IsAffected applies equality check predicate on the "is_affected" field. It's identical to IsAffectedEQ.
func IsAffected(v bool) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldEQ(FieldIsAffected, v))
}

// ConstraintExpr applies equality check predicate on the "constraint_expr" field. It's identical to ConstraintExprEQ.
func ConstraintExpr(v string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldEQ(FieldConstraintExpr, v))
}

// ConstraintSource applies equality check predicate on the "constraint_source" field. It's identical to ConstraintSourceEQ.
func ConstraintSource(v string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldEQ(FieldConstraintSource, v))
}

// ResolvedVersion applies equality check predicate on the "resolved_version" field. It's identical to ResolvedVersionEQ.
func ResolvedVersion(v string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldEQ(FieldResolvedVersion, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldEQ(FieldErrorMessage, v))
}

// AnalysisCompletedAt applies equality check predicate on the "analysis_completed_at" field. It's identical to AnalysisCompletedAtEQ.
func AnalysisCompletedAt(v time.Time) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldEQ(FieldAnalysisCompletedAt, v))
}

// RecordedAt applies equality check predicate on the "recorded_at" field. It's identical to RecordedAtEQ.
func RecordedAt(v time.Time) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldEQ(FieldRecordedAt, v))
}

// ReportedAt applies equality check predicate on the "reported_at" field. It's identical to ReportedAtEQ.
func ReportedAt(v time.Time) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldEQ(FieldReportedAt, v))
}

// ConfirmedAt applies equality check predicate on the "confirmed_at" field. It's identical to ConfirmedAtEQ.
func ConfirmedAt(v time.Time) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldEQ(FieldConfirmedAt, v))
}

// FixedAt applies equality check predicate on the "fixed_at" field. It's identical to FixedAtEQ.
func FixedAt(v time.Time) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldEQ(FieldFixedAt, v))
}

// NotAffectAt applies equality check predicate on the "not_affect_at" field. It's identical to NotAffectAtEQ.
func NotAffectAt(v time.Time) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldEQ(FieldNotAffectAt, v))
}

// ConfirmedMsg applies equality check predicate on the "confirmed_msg" field. It's identical to ConfirmedMsgEQ.
func ConfirmedMsg(v string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldEQ(FieldConfirmedMsg, v))
}

// FixedMsg applies equality check predicate on the "fixed_msg" field. It's identical to FixedMsgEQ.
func FixedMsg(v string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldEQ(FieldFixedMsg, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpstreamVulnIDEQ applies the EQ predicate on the "upstream_vuln_id" field.
func UpstreamVulnIDEQ(v string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldEQ(FieldUpstreamVulnID, v))
}

// UpstreamVulnIDNEQ applies the NEQ predicate on the "upstream_vuln_id" field.
func UpstreamVulnIDNEQ(v string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldNEQ(FieldUpstreamVulnID, v))
}

// UpstreamVulnIDIn applies the In predicate on the "upstream_vuln_id" field.
func UpstreamVulnIDIn(vs ...string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldIn(FieldUpstreamVulnID, vs...))
}

// UpstreamVulnIDNotIn applies the NotIn predicate on the "upstream_vuln_id" field.
func UpstreamVulnIDNotIn(vs ...string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldNotIn(FieldUpstreamVulnID, vs...))
}

// UpstreamVulnIDGT applies the GT predicate on the "upstream_vuln_id" field.
func UpstreamVulnIDGT(v string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldGT(FieldUpstreamVulnID, v))
}

// UpstreamVulnIDGTE applies the GTE predicate on the "upstream_vuln_id" field.
func UpstreamVulnIDGTE(v string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldGTE(FieldUpstreamVulnID, v))
}

// UpstreamVulnIDLT applies the LT predicate on the "upstream_vuln_id" field.
func UpstreamVulnIDLT(v string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldLT(FieldUpstreamVulnID, v))
}

// UpstreamVulnIDLTE applies the LTE predicate on the "upstream_vuln_id" field.
func UpstreamVulnIDLTE(v string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldLTE(FieldUpstreamVulnID, v))
}

// UpstreamVulnIDContains applies the Contains predicate on the "upstream_vuln_id" field.
func UpstreamVulnIDContains(v string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldContains(FieldUpstreamVulnID, v))
}

// UpstreamVulnIDHasPrefix applies the HasPrefix predicate on the "upstream_vuln_id" field.
func UpstreamVulnIDHasPrefix(v string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldHasPrefix(FieldUpstreamVulnID, v))
}

// UpstreamVulnIDHasSuffix applies the HasSuffix predicate on the "upstream_vuln_id" field.
func UpstreamVulnIDHasSuffix(v string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldHasSuffix(FieldUpstreamVulnID, v))
}

// UpstreamVulnIDEqualFold applies the EqualFold predicate on the "upstream_vuln_id" field.
func UpstreamVulnIDEqualFold(v string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldEqualFold(FieldUpstreamVulnID, v))
}

// UpstreamVulnIDContainsFold applies the ContainsFold predicate on the "upstream_vuln_id" field.
func UpstreamVulnIDContainsFold(v string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldContainsFold(FieldUpstreamVulnID, v))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldNotIn(FieldProjectID, vs...))
}

// ProjectIDGT applies the GT predicate on the "project_id" field.
func ProjectIDGT(v string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldGT(FieldProjectID, v))
}

// ProjectIDGTE applies the GTE predicate on the "project_id" field.
func ProjectIDGTE(v string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldGTE(FieldProjectID, v))
}

// ProjectIDLT applies the LT predicate on the "project_id" field.
func ProjectIDLT(v string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldLT(FieldProjectID, v))
}

// ProjectIDLTE applies the LTE predicate on the "project_id" field.
func ProjectIDLTE(v string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldLTE(FieldProjectID, v))
}

// ProjectIDContains applies the Contains predicate on the "project_id" field.
func ProjectIDContains(v string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldContains(FieldProjectID, v))
}

// ProjectIDHasPrefix applies the HasPrefix predicate on the "project_id" field.
func ProjectIDHasPrefix(v string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldHasPrefix(FieldProjectID, v))
}

// ProjectIDHasSuffix applies the HasSuffix predicate on the "project_id" field.
func ProjectIDHasSuffix(v string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldHasSuffix(FieldProjectID, v))
}

// ProjectIDEqualFold applies the EqualFold predicate on the "project_id" field.
func ProjectIDEqualFold(v string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldEqualFold(FieldProjectID, v))
}

// ProjectIDContainsFold applies the ContainsFold predicate on the "project_id" field.
func ProjectIDContainsFold(v string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldContainsFold(FieldProjectID, v))
}

// PipelineStatusEQ applies the EQ predicate on the "pipeline_status" field.
func PipelineStatusEQ(v PipelineStatus) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldEQ(FieldPipelineStatus, v))
}

// PipelineStatusNEQ applies the NEQ predicate on the "pipeline_status" field.
func PipelineStatusNEQ(v PipelineStatus) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldNEQ(FieldPipelineStatus, v))
}

// PipelineStatusIn applies the In predicate on the "pipeline_status" field.
func PipelineStatusIn(vs ...PipelineStatus) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldIn(FieldPipelineStatus, vs...))
}

// PipelineStatusNotIn applies the NotIn predicate on the "pipeline_status" field.
func PipelineStatusNotIn(vs ...PipelineStatus) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldNotIn(FieldPipelineStatus, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusIsNil applies the IsNil predicate on the "status" field.
func StatusIsNil() predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldIsNull(FieldStatus))
}

// StatusNotNil applies the NotNil predicate on the "status" field.
func StatusNotNil() predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldNotNull(FieldStatus))
}

// IsAffectedEQ applies the EQ predicate on the "is_affected" field.
func IsAffectedEQ(v bool) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldEQ(FieldIsAffected, v))
}

// IsAffectedNEQ applies the NEQ predicate on the "is_affected" field.
func IsAffectedNEQ(v bool) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldNEQ(FieldIsAffected, v))
}

// IsAffectedIsNil applies the IsNil predicate on the "is_affected" field.
func IsAffectedIsNil() predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldIsNull(FieldIsAffected))
}

// IsAffectedNotNil applies the NotNil predicate on the "is_affected" field.
func IsAffectedNotNil() predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldNotNull(FieldIsAffected))
}

// ConstraintExprEQ applies the EQ predicate on the "constraint_expr" field.
func ConstraintExprEQ(v string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldEQ(FieldConstraintExpr, v))
}

// ConstraintExprNEQ applies the NEQ predicate on the "constraint_expr" field.
func ConstraintExprNEQ(v string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldNEQ(FieldConstraintExpr, v))
}

// ConstraintExprIn applies the In predicate on the "constraint_expr" field.
func ConstraintExprIn(vs ...string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldIn(FieldConstraintExpr, vs...))
}

// ConstraintExprNotIn applies the NotIn predicate on the "constraint_expr" field.
func ConstraintExprNotIn(vs ...string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldNotIn(FieldConstraintExpr, vs...))
}

// ConstraintExprGT applies the GT predicate on the "constraint_expr" field.
func ConstraintExprGT(v string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldGT(FieldConstraintExpr, v))
}

// ConstraintExprGTE applies the GTE predicate on the "constraint_expr" field.
func ConstraintExprGTE(v string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldGTE(FieldConstraintExpr, v))
}

// ConstraintExprLT applies the LT predicate on the "constraint_expr" field.
func ConstraintExprLT(v string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldLT(FieldConstraintExpr, v))
}

// ConstraintExprLTE applies the LTE predicate on the "constraint_expr" field.
func ConstraintExprLTE(v string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldLTE(FieldConstraintExpr, v))
}

// ConstraintExprContains applies the Contains predicate on the "constraint_expr" field.
func ConstraintExprContains(v string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldContains(FieldConstraintExpr, v))
}

// ConstraintExprHasPrefix applies the HasPrefix predicate on the "constraint_expr" field.
func ConstraintExprHasPrefix(v string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldHasPrefix(FieldConstraintExpr, v))
}

// ConstraintExprHasSuffix applies the HasSuffix predicate on the "constraint_expr" field.
func ConstraintExprHasSuffix(v string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldHasSuffix(FieldConstraintExpr, v))
}

// ConstraintExprIsNil applies the IsNil predicate on the "constraint_expr" field.
func ConstraintExprIsNil() predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldIsNull(FieldConstraintExpr))
}

// ConstraintExprNotNil applies the NotNil predicate on the "constraint_expr" field.
func ConstraintExprNotNil() predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldNotNull(FieldConstraintExpr))
}

// ConstraintExprEqualFold applies the EqualFold predicate on the "constraint_expr" field.
func ConstraintExprEqualFold(v string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldEqualFold(FieldConstraintExpr, v))
}

// ConstraintExprContainsFold applies the ContainsFold predicate on the "constraint_expr" field.
func ConstraintExprContainsFold(v string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldContainsFold(FieldConstraintExpr, v))
}

// ConstraintSourceEQ applies the EQ predicate on the "constraint_source" field.
func ConstraintSourceEQ(v string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldEQ(FieldConstraintSource, v))
}

// ConstraintSourceNEQ applies the NEQ predicate on the "constraint_source" field.
func ConstraintSourceNEQ(v string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldNEQ(FieldConstraintSource, v))
}

// ConstraintSourceIn applies the In predicate on the "constraint_source" field.
func ConstraintSourceIn(vs ...string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldIn(FieldConstraintSource, vs...))
}

// ConstraintSourceNotIn applies the NotIn predicate on the "constraint_source" field.
func ConstraintSourceNotIn(vs ...string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldNotIn(FieldConstraintSource, vs...))
}

// ConstraintSourceGT applies the GT predicate on the "constraint_source" field.
func ConstraintSourceGT(v string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldGT(FieldConstraintSource, v))
}

// ConstraintSourceGTE applies the GTE predicate on the "constraint_source" field.
func ConstraintSourceGTE(v string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldGTE(FieldConstraintSource, v))
}

// ConstraintSourceLT applies the LT predicate on the "constraint_source" field.
func ConstraintSourceLT(v string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldLT(FieldConstraintSource, v))
}

// ConstraintSourceLTE applies the LTE predicate on the "constraint_source" field.
func ConstraintSourceLTE(v string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldLTE(FieldConstraintSource, v))
}

// ConstraintSourceContains applies the Contains predicate on the "constraint_source" field.
func ConstraintSourceContains(v string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldContains(FieldConstraintSource, v))
}

// ConstraintSourceHasPrefix applies the HasPrefix predicate on the "constraint_source" field.
func ConstraintSourceHasPrefix(v string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldHasPrefix(FieldConstraintSource, v))
}

// ConstraintSourceHasSuffix applies the HasSuffix predicate on the "constraint_source" field.
func ConstraintSourceHasSuffix(v string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldHasSuffix(FieldConstraintSource, v))
}

// ConstraintSourceIsNil applies the IsNil predicate on the "constraint_source" field.
func ConstraintSourceIsNil() predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldIsNull(FieldConstraintSource))
}

// ConstraintSourceNotNil applies the NotNil predicate on the "constraint_source" field.
func ConstraintSourceNotNil() predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldNotNull(FieldConstraintSource))
}

// ConstraintSourceEqualFold applies the EqualFold predicate on the "constraint_source" field.
func ConstraintSourceEqualFold(v string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldEqualFold(FieldConstraintSource, v))
}

// ConstraintSourceContainsFold applies the ContainsFold predicate on the "constraint_source" field.
func ConstraintSourceContainsFold(v string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldContainsFold(FieldConstraintSource, v))
}

// ResolvedVersionEQ applies the EQ predicate on the "resolved_version" field.
func ResolvedVersionEQ(v string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldEQ(FieldResolvedVersion, v))
}

// ResolvedVersionNEQ applies the NEQ predicate on the "resolved_version" field.
func ResolvedVersionNEQ(v string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldNEQ(FieldResolvedVersion, v))
}

// ResolvedVersionIn applies the In predicate on the "resolved_version" field.
func ResolvedVersionIn(vs ...string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldIn(FieldResolvedVersion, vs...))
}

// ResolvedVersionNotIn applies the NotIn predicate on the "resolved_version" field.
func ResolvedVersionNotIn(vs ...string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldNotIn(FieldResolvedVersion, vs...))
}

// ResolvedVersionGT applies the GT predicate on the "resolved_version" field.
func ResolvedVersionGT(v string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldGT(FieldResolvedVersion, v))
}

// ResolvedVersionGTE applies the GTE predicate on the "resolved_version" field.
func ResolvedVersionGTE(v string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldGTE(FieldResolvedVersion, v))
}

// ResolvedVersionLT applies the LT predicate on the "resolved_version" field.
func ResolvedVersionLT(v string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldLT(FieldResolvedVersion, v))
}

// ResolvedVersionLTE applies the LTE predicate on the "resolved_version" field.
func ResolvedVersionLTE(v string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldLTE(FieldResolvedVersion, v))
}

// ResolvedVersionContains applies the Contains predicate on the "resolved_version" field.
func ResolvedVersionContains(v string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldContains(FieldResolvedVersion, v))
}

// ResolvedVersionHasPrefix applies the HasPrefix predicate on the "resolved_version" field.
func ResolvedVersionHasPrefix(v string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldHasPrefix(FieldResolvedVersion, v))
}

// ResolvedVersionHasSuffix applies the HasSuffix predicate on the "resolved_version" field.
func ResolvedVersionHasSuffix(v string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldHasSuffix(FieldResolvedVersion, v))
}

// ResolvedVersionIsNil applies the IsNil predicate on the "resolved_version" field.
func ResolvedVersionIsNil() predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldIsNull(FieldResolvedVersion))
}

// ResolvedVersionNotNil applies the NotNil predicate on the "resolved_version" field.
func ResolvedVersionNotNil() predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldNotNull(FieldResolvedVersion))
}

// ResolvedVersionEqualFold applies the EqualFold predicate on the "resolved_version" field.
func ResolvedVersionEqualFold(v string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldEqualFold(FieldResolvedVersion, v))
}

// ResolvedVersionContainsFold applies the ContainsFold predicate on the "resolved_version" field.
func ResolvedVersionContainsFold(v string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldContainsFold(FieldResolvedVersion, v))
}

// ReachablePathIsNil applies the IsNil predicate on the "reachable_path" field.
func ReachablePathIsNil() predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldIsNull(FieldReachablePath))
}

// ReachablePathNotNil applies the NotNil predicate on the "reachable_path" field.
func ReachablePathNotNil() predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldNotNull(FieldReachablePath))
}

// PocResultsIsNil applies the IsNil predicate on the "poc_results" field.
func PocResultsIsNil() predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldIsNull(FieldPocResults))
}

// PocResultsNotNil applies the NotNil predicate on the "poc_results" field.
func PocResultsNotNil() predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldNotNull(FieldPocResults))
}

// ReportIsNil applies the IsNil predicate on the "report" field.
func ReportIsNil() predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldIsNull(FieldReport))
}

// ReportNotNil applies the NotNil predicate on the "report" field.
func ReportNotNil() predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldNotNull(FieldReport))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldContainsFold(FieldErrorMessage, v))
}

// AnalysisCompletedAtEQ applies the EQ predicate on the "analysis_completed_at" field.
func AnalysisCompletedAtEQ(v time.Time) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldEQ(FieldAnalysisCompletedAt, v))
}

// AnalysisCompletedAtNEQ applies the NEQ predicate on the "analysis_completed_at" field.
func AnalysisCompletedAtNEQ(v time.Time) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldNEQ(FieldAnalysisCompletedAt, v))
}

// AnalysisCompletedAtIn applies the In predicate on the "analysis_completed_at" field.
func AnalysisCompletedAtIn(vs ...time.Time) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldIn(FieldAnalysisCompletedAt, vs...))
}

// AnalysisCompletedAtNotIn applies the NotIn predicate on the "analysis_completed_at" field.
func AnalysisCompletedAtNotIn(vs ...time.Time) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldNotIn(FieldAnalysisCompletedAt, vs...))
}

// AnalysisCompletedAtGT applies the GT predicate on the "analysis_completed_at" field.
func AnalysisCompletedAtGT(v time.Time) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldGT(FieldAnalysisCompletedAt, v))
}

// AnalysisCompletedAtGTE applies the GTE predicate on the "analysis_completed_at" field.
func AnalysisCompletedAtGTE(v time.Time) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldGTE(FieldAnalysisCompletedAt, v))
}

// AnalysisCompletedAtLT applies the LT predicate on the "analysis_completed_at" field.
func AnalysisCompletedAtLT(v time.Time) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldLT(FieldAnalysisCompletedAt, v))
}

// AnalysisCompletedAtLTE applies the LTE predicate on the "analysis_completed_at" field.
func AnalysisCompletedAtLTE(v time.Time) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldLTE(FieldAnalysisCompletedAt, v))
}

// AnalysisCompletedAtIsNil applies the IsNil predicate on the "analysis_completed_at" field.
func AnalysisCompletedAtIsNil() predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldIsNull(FieldAnalysisCompletedAt))
}

// AnalysisCompletedAtNotNil applies the NotNil predicate on the "analysis_completed_at" field.
func AnalysisCompletedAtNotNil() predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldNotNull(FieldAnalysisCompletedAt))
}

// RecordedAtEQ applies the EQ predicate on the "recorded_at" field.
func RecordedAtEQ(v time.Time) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldEQ(FieldRecordedAt, v))
}

// RecordedAtNEQ applies the NEQ predicate on the "recorded_at" field.
func RecordedAtNEQ(v time.Time) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldNEQ(FieldRecordedAt, v))
}

// RecordedAtIn applies the In predicate on the "recorded_at" field.
func RecordedAtIn(vs ...time.Time) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldIn(FieldRecordedAt, vs...))
}

// RecordedAtNotIn applies the NotIn predicate on the "recorded_at" field.
func RecordedAtNotIn(vs ...time.Time) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldNotIn(FieldRecordedAt, vs...))
}

// RecordedAtGT applies the GT predicate on the "recorded_at" field.
func RecordedAtGT(v time.Time) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldGT(FieldRecordedAt, v))
}

// RecordedAtGTE applies the GTE predicate on the "recorded_at" field.
func RecordedAtGTE(v time.Time) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldGTE(FieldRecordedAt, v))
}

// RecordedAtLT applies the LT predicate on the "recorded_at" field.
func RecordedAtLT(v time.Time) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldLT(FieldRecordedAt, v))
}

// RecordedAtLTE applies the LTE predicate on the "recorded_at" field.
func RecordedAtLTE(v time.Time) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldLTE(FieldRecordedAt, v))
}

// RecordedAtIsNil applies the IsNil predicate on the "recorded_at" field.
func RecordedAtIsNil() predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldIsNull(FieldRecordedAt))
}

// RecordedAtNotNil applies the NotNil predicate on the "recorded_at" field.
func RecordedAtNotNil() predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldNotNull(FieldRecordedAt))
}

// ReportedAtEQ applies the EQ predicate on the "reported_at" field.
func ReportedAtEQ(v time.Time) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldEQ(FieldReportedAt, v))
}

// ReportedAtNEQ applies the NEQ predicate on the "reported_at" field.
func ReportedAtNEQ(v time.Time) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldNEQ(FieldReportedAt, v))
}

// ReportedAtIn applies the In predicate on the "reported_at" field.
func ReportedAtIn(vs ...time.Time) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldIn(FieldReportedAt, vs...))
}

// ReportedAtNotIn applies the NotIn predicate on the "reported_at" field.
func ReportedAtNotIn(vs ...time.Time) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldNotIn(FieldReportedAt, vs...))
}

// ReportedAtGT applies the GT predicate on the "reported_at" field.
func ReportedAtGT(v time.Time) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldGT(FieldReportedAt, v))
}

// ReportedAtGTE applies the GTE predicate on the "reported_at" field.
func ReportedAtGTE(v time.Time) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldGTE(FieldReportedAt, v))
}

// ReportedAtLT applies the LT predicate on the "reported_at" field.
func ReportedAtLT(v time.Time) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldLT(FieldReportedAt, v))
}

// ReportedAtLTE applies the LTE predicate on the "reported_at" field.
func ReportedAtLTE(v time.Time) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldLTE(FieldReportedAt, v))
}

// ReportedAtIsNil applies the IsNil predicate on the "reported_at" field.
func ReportedAtIsNil() predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldIsNull(FieldReportedAt))
}

// ReportedAtNotNil applies the NotNil predicate on the "reported_at" field.
func ReportedAtNotNil() predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldNotNull(FieldReportedAt))
}

// ConfirmedAtEQ applies the EQ predicate on the "confirmed_at" field.
func ConfirmedAtEQ(v time.Time) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldEQ(FieldConfirmedAt, v))
}

// ConfirmedAtNEQ applies the NEQ predicate on the "confirmed_at" field.
func ConfirmedAtNEQ(v time.Time) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldNEQ(FieldConfirmedAt, v))
}

// ConfirmedAtIn applies the In predicate on the "confirmed_at" field.
func ConfirmedAtIn(vs ...time.Time) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldIn(FieldConfirmedAt, vs...))
}

// ConfirmedAtNotIn applies the NotIn predicate on the "confirmed_at" field.
func ConfirmedAtNotIn(vs ...time.Time) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldNotIn(FieldConfirmedAt, vs...))
}

// ConfirmedAtGT applies the GT predicate on the "confirmed_at" field.
func ConfirmedAtGT(v time.Time) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldGT(FieldConfirmedAt, v))
}

// ConfirmedAtGTE applies the GTE predicate on the "confirmed_at" field.
func ConfirmedAtGTE(v time.Time) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldGTE(FieldConfirmedAt, v))
}

// ConfirmedAtLT applies the LT predicate on the "confirmed_at" field.
func ConfirmedAtLT(v time.Time) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldLT(FieldConfirmedAt, v))
}

// ConfirmedAtLTE applies the LTE predicate on the "confirmed_at" field.
func ConfirmedAtLTE(v time.Time) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldLTE(FieldConfirmedAt, v))
}

// ConfirmedAtIsNil applies the IsNil predicate on the "confirmed_at" field.
func ConfirmedAtIsNil() predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldIsNull(FieldConfirmedAt))
}

// ConfirmedAtNotNil applies the NotNil predicate on the "confirmed_at" field.
func ConfirmedAtNotNil() predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldNotNull(FieldConfirmedAt))
}

// FixedAtEQ applies the EQ predicate on the "fixed_at" field.
func FixedAtEQ(v time.Time) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldEQ(FieldFixedAt, v))
}

// FixedAtNEQ applies the NEQ predicate on the "fixed_at" field.
func FixedAtNEQ(v time.Time) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldNEQ(FieldFixedAt, v))
}

// FixedAtIn applies the In predicate on the "fixed_at" field.
func FixedAtIn(vs ...time.Time) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldIn(FieldFixedAt, vs...))
}

// FixedAtNotIn applies the NotIn predicate on the "fixed_at" field.
func FixedAtNotIn(vs ...time.Time) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldNotIn(FieldFixedAt, vs...))
}

// FixedAtGT applies the GT predicate on the "fixed_at" field.
func FixedAtGT(v time.Time) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldGT(FieldFixedAt, v))
}

// FixedAtGTE applies the GTE predicate on the "fixed_at" field.
func FixedAtGTE(v time.Time) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldGTE(FieldFixedAt, v))
}

// FixedAtLT applies the LT predicate on the "fixed_at" field.
func FixedAtLT(v time.Time) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldLT(FieldFixedAt, v))
}

// FixedAtLTE applies the LTE predicate on the "fixed_at" field.
func FixedAtLTE(v time.Time) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldLTE(FieldFixedAt, v))
}

// FixedAtIsNil applies the IsNil predicate on the "fixed_at" field.
func FixedAtIsNil() predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldIsNull(FieldFixedAt))
}

// FixedAtNotNil applies the NotNil predicate on the "fixed_at" field.
func FixedAtNotNil() predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldNotNull(FieldFixedAt))
}

// NotAffectAtEQ applies the EQ predicate on the "not_affect_at" field.
func NotAffectAtEQ(v time.Time) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldEQ(FieldNotAffectAt, v))
}

// NotAffectAtNEQ applies the NEQ predicate on the "not_affect_at" field.
func NotAffectAtNEQ(v time.Time) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldNEQ(FieldNotAffectAt, v))
}

// NotAffectAtIn applies the In predicate on the "not_affect_at" field.
func NotAffectAtIn(vs ...time.Time) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldIn(FieldNotAffectAt, vs...))
}

// NotAffectAtNotIn applies the NotIn predicate on the "not_affect_at" field.
func NotAffectAtNotIn(vs ...time.Time) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldNotIn(FieldNotAffectAt, vs...))
}

// NotAffectAtGT applies the GT predicate on the "not_affect_at" field.
func NotAffectAtGT(v time.Time) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldGT(FieldNotAffectAt, v))
}

// NotAffectAtGTE applies the GTE predicate on the "not_affect_at" field.
func NotAffectAtGTE(v time.Time) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldGTE(FieldNotAffectAt, v))
}

// NotAffectAtLT applies the LT predicate on the "not_affect_at" field.
func NotAffectAtLT(v time.Time) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldLT(FieldNotAffectAt, v))
}

// NotAffectAtLTE applies the LTE predicate on the "not_affect_at" field.
func NotAffectAtLTE(v time.Time) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldLTE(FieldNotAffectAt, v))
}

// NotAffectAtIsNil applies the IsNil predicate on the "not_affect_at" field.
func NotAffectAtIsNil() predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldIsNull(FieldNotAffectAt))
}

// NotAffectAtNotNil applies the NotNil predicate on the "not_affect_at" field.
func NotAffectAtNotNil() predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldNotNull(FieldNotAffectAt))
}

// ConfirmedMsgEQ applies the EQ predicate on the "confirmed_msg" field.
func ConfirmedMsgEQ(v string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldEQ(FieldConfirmedMsg, v))
}

// ConfirmedMsgNEQ applies the NEQ predicate on the "confirmed_msg" field.
func ConfirmedMsgNEQ(v string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldNEQ(FieldConfirmedMsg, v))
}

// ConfirmedMsgIn applies the In predicate on the "confirmed_msg" field.
func ConfirmedMsgIn(vs ...string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldIn(FieldConfirmedMsg, vs...))
}

// ConfirmedMsgNotIn applies the NotIn predicate on the "confirmed_msg" field.
func ConfirmedMsgNotIn(vs ...string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldNotIn(FieldConfirmedMsg, vs...))
}

// ConfirmedMsgGT applies the GT predicate on the "confirmed_msg" field.
func ConfirmedMsgGT(v string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldGT(FieldConfirmedMsg, v))
}

// ConfirmedMsgGTE applies the GTE predicate on the "confirmed_msg" field.
func ConfirmedMsgGTE(v string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldGTE(FieldConfirmedMsg, v))
}

// ConfirmedMsgLT applies the LT predicate on the "confirmed_msg" field.
func ConfirmedMsgLT(v string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldLT(FieldConfirmedMsg, v))
}

// ConfirmedMsgLTE applies the LTE predicate on the "confirmed_msg" field.
func ConfirmedMsgLTE(v string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldLTE(FieldConfirmedMsg, v))
}

// ConfirmedMsgContains applies the Contains predicate on the "confirmed_msg" field.
func ConfirmedMsgContains(v string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldContains(FieldConfirmedMsg, v))
}

// ConfirmedMsgHasPrefix applies the HasPrefix predicate on the "confirmed_msg" field.
func ConfirmedMsgHasPrefix(v string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldHasPrefix(FieldConfirmedMsg, v))
}

// ConfirmedMsgHasSuffix applies the HasSuffix predicate on the "confirmed_msg" field.
func ConfirmedMsgHasSuffix(v string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldHasSuffix(FieldConfirmedMsg, v))
}

// ConfirmedMsgIsNil applies the IsNil predicate on the "confirmed_msg" field.
func ConfirmedMsgIsNil() predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldIsNull(FieldConfirmedMsg))
}

// ConfirmedMsgNotNil applies the NotNil predicate on the "confirmed_msg" field.
func ConfirmedMsgNotNil() predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldNotNull(FieldConfirmedMsg))
}

// ConfirmedMsgEqualFold applies the EqualFold predicate on the "confirmed_msg" field.
func ConfirmedMsgEqualFold(v string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldEqualFold(FieldConfirmedMsg, v))
}

// ConfirmedMsgContainsFold applies the ContainsFold predicate on the "confirmed_msg" field.
func ConfirmedMsgContainsFold(v string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldContainsFold(FieldConfirmedMsg, v))
}

// FixedMsgEQ applies the EQ predicate on the "fixed_msg" field.
func FixedMsgEQ(v string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldEQ(FieldFixedMsg, v))
}

// FixedMsgNEQ applies the NEQ predicate on the "fixed_msg" field.
func FixedMsgNEQ(v string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldNEQ(FieldFixedMsg, v))
}

// FixedMsgIn applies the In predicate on the "fixed_msg" field.
func FixedMsgIn(vs ...string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldIn(FieldFixedMsg, vs...))
}

// FixedMsgNotIn applies the NotIn predicate on the "fixed_msg" field.
func FixedMsgNotIn(vs ...string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldNotIn(FieldFixedMsg, vs...))
}

// FixedMsgGT applies the GT predicate on the "fixed_msg" field.
func FixedMsgGT(v string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldGT(FieldFixedMsg, v))
}

// FixedMsgGTE applies the GTE predicate on the "fixed_msg" field.
func FixedMsgGTE(v string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldGTE(FieldFixedMsg, v))
}

// FixedMsgLT applies the LT predicate on the "fixed_msg" field.
func FixedMsgLT(v string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldLT(FieldFixedMsg, v))
}

// FixedMsgLTE applies the LTE predicate on the "fixed_msg" field.
func FixedMsgLTE(v string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldLTE(FieldFixedMsg, v))
}

// FixedMsgContains applies the Contains predicate on the "fixed_msg" field.
func FixedMsgContains(v string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldContains(FieldFixedMsg, v))
}

// FixedMsgHasPrefix applies the HasPrefix predicate on the "fixed_msg" field.
func FixedMsgHasPrefix(v string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldHasPrefix(FieldFixedMsg, v))
}

// FixedMsgHasSuffix applies the HasSuffix predicate on the "fixed_msg" field.
func FixedMsgHasSuffix(v string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldHasSuffix(FieldFixedMsg, v))
}

// FixedMsgIsNil applies the IsNil predicate on the "fixed_msg" field.
func FixedMsgIsNil() predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldIsNull(FieldFixedMsg))
}

// FixedMsgNotNil applies the NotNil predicate on the "fixed_msg" field.
func FixedMsgNotNil() predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldNotNull(FieldFixedMsg))
}

// FixedMsgEqualFold applies the EqualFold predicate on the "fixed_msg" field.
func FixedMsgEqualFold(v string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldEqualFold(FieldFixedMsg, v))
}

// FixedMsgContainsFold applies the ContainsFold predicate on the "fixed_msg" field.
func FixedMsgContainsFold(v string) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldContainsFold(FieldFixedMsg, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ClientVuln {
	return predicate.ClientVuln(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasUpstreamVuln applies the HasEdge predicate on the "upstream_vuln" edge.
func HasUpstreamVuln() predicate.ClientVuln {
	return predicate.ClientVuln(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, UpstreamVulnTable, UpstreamVulnColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUpstreamVulnWith applies the HasEdge predicate on the "upstream_vuln" edge with a given conditions (other predicates).
func HasUpstreamVulnWith(preds ...predicate.UpstreamVuln) predicate.ClientVuln {
	return predicate.ClientVuln(func(s *sql.Selector) {
		step := newUpstreamVulnStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasProject applies the HasEdge predicate on the "project" edge.
func HasProject() predicate.ClientVuln {
	return predicate.ClientVuln(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProjectWith applies the HasEdge predicate on the "project" edge with a given conditions (other predicates).
func HasProjectWith(preds ...predicate.Project) predicate.ClientVuln {
	return predicate.ClientVuln(func(s *sql.Selector) {
		step := newProjectStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ClientVuln) predicate.ClientVuln {
	return predicate.ClientVuln(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ClientVuln) predicate.ClientVuln {
	return predicate.ClientVuln(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ClientVuln) predicate.ClientVuln {
	return predicate.ClientVuln(sql.NotPredicates(p))
}
