// Code generated by ent, DO NOT EDIT.

package upstreamvuln

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/vulnsentinel/vulnsentinel/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldContainsFold(FieldID, id))
}

// EventID applies equality check predicate on the "event_id" field. It's identical to EventIDEQ.
func EventID(v string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldEQ(FieldEventID, v))
}

// LibraryID applies equality check predicate on the "library_id" field. It's identical to LibraryIDEQ.
func LibraryID(v string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldEQ(FieldLibraryID, v))
}

// CommitSha applies equality check predicate on the "commit_sha" field. It's identical to CommitShaEQ.
func CommitSha(v string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldEQ(FieldCommitSha, v))
}

// VulnType applies equality check predicate on the "vuln_type" field. It's identical to VulnTypeEQ.
func VulnType(v string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldEQ(FieldVulnType, v))
}

// AffectedVersions applies equality check predicate on the "affected_versions" field. It's identical to AffectedVersionsEQ.
func AffectedVersions(v string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldEQ(FieldAffectedVersions, v))
}

// Summary applies equality check predicate on the "summary" field. It's identical to SummaryEQ.
func Summary(v string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldEQ(FieldSummary, v))
}

// Reasoning applies equality check predicate on the "reasoning" field. It's identical to ReasoningEQ.
func Reasoning(v string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldEQ(FieldReasoning, v))
}

// PublishedAt applies equality check predicate on the "published_at" field. It's identical to PublishedAtEQ.
func PublishedAt(v time.Time) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldEQ(FieldPublishedAt, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldEQ(FieldErrorMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldEQ(FieldUpdatedAt, v))
}

// EventIDEQ applies the EQ predicate on the "event_id" field.
func EventIDEQ(v string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldEQ(FieldEventID, v))
}

// EventIDNEQ applies the NEQ predicate on the "event_id" field.
func EventIDNEQ(v string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldNEQ(FieldEventID, v))
}

// EventIDIn applies the In predicate on the "event_id" field.
func EventIDIn(vs ...string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldIn(FieldEventID, vs...))
}

// EventIDNotIn applies the NotIn predicate on the "event_id" field.
func EventIDNotIn(vs ...string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldNotIn(FieldEventID, vs...))
}

// EventIDGT applies the GT predicate on the "event_id" field.
func EventIDGT(v string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldGT(FieldEventID, v))
}

// EventIDGTE applies the GTE predicate on the "event_id" field.
func EventIDGTE(v string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldGTE(FieldEventID, v))
}

// EventIDLT applies the LT predicate on the "event_id" field.
func EventIDLT(v string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldLT(FieldEventID, v))
}

// EventIDLTE applies the LTE predicate on the "event_id" field.
func EventIDLTE(v string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldLTE(FieldEventID, v))
}

// EventIDContains applies the Contains predicate on the "event_id" field.
func EventIDContains(v string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldContains(FieldEventID, v))
}

// EventIDHasPrefix applies the HasPrefix predicate on the "event_id" field.
func EventIDHasPrefix(v string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldHasPrefix(FieldEventID, v))
}

// EventIDHasSuffix applies the HasSuffix predicate on the "event_id" field.
func EventIDHasSuffix(v string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldHasSuffix(FieldEventID, v))
}

// EventIDEqualFold applies the EqualFold predicate on the "event_id" field.
func EventIDEqualFold(v string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldEqualFold(FieldEventID, v))
}

// EventIDContainsFold applies the ContainsFold predicate on the "event_id" field.
func EventIDContainsFold(v string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldContainsFold(FieldEventID, v))
}

// LibraryIDEQ applies the EQ predicate on the "library_id" field.
func LibraryIDEQ(v string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldEQ(FieldLibraryID, v))
}

// LibraryIDNEQ applies the NEQ predicate on the "library_id" field.
func LibraryIDNEQ(v string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldNEQ(FieldLibraryID, v))
}

// LibraryIDIn applies the In predicate on the "library_id" field.
func LibraryIDIn(vs ...string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldIn(FieldLibraryID, vs...))
}

// LibraryIDNotIn applies the NotIn predicate on the "library_id" field.
func LibraryIDNotIn(vs ...string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldNotIn(FieldLibraryID, vs...))
}

// LibraryIDGT applies the GT predicate on the "library_id" field.
func LibraryIDGT(v string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldGT(FieldLibraryID, v))
}

// LibraryIDGTE applies the GTE predicate on the "library_id" field.
func LibraryIDGTE(v string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldGTE(FieldLibraryID, v))
}

// LibraryIDLT applies the LT predicate on the "library_id" field.
func LibraryIDLT(v string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldLT(FieldLibraryID, v))
}

// LibraryIDLTE applies the LTE predicate on the "library_id" field.
func LibraryIDLTE(v string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldLTE(FieldLibraryID, v))
}

// LibraryIDContains applies the Contains predicate on the "library_id" field.
func LibraryIDContains(v string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldContains(FieldLibraryID, v))
}

// LibraryIDHasPrefix applies the HasPrefix predicate on the "library_id" field.
func LibraryIDHasPrefix(v string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldHasPrefix(FieldLibraryID, v))
}

// LibraryIDHasSuffix applies the HasSuffix predicate on the "library_id" field.
func LibraryIDHasSuffix(v string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldHasSuffix(FieldLibraryID, v))
}

// LibraryIDEqualFold applies the EqualFold predicate on the "library_id" field.
func LibraryIDEqualFold(v string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldEqualFold(FieldLibraryID, v))
}

// LibraryIDContainsFold applies the ContainsFold predicate on the "library_id" field.
func LibraryIDContainsFold(v string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldContainsFold(FieldLibraryID, v))
}

// CommitShaEQ applies the EQ predicate on the "commit_sha" field.
func CommitShaEQ(v string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldEQ(FieldCommitSha, v))
}

// CommitShaNEQ applies the NEQ predicate on the "commit_sha" field.
func CommitShaNEQ(v string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldNEQ(FieldCommitSha, v))
}

// CommitShaIn applies the In predicate on the "commit_sha" field.
func CommitShaIn(vs ...string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldIn(FieldCommitSha, vs...))
}

// CommitShaNotIn applies the NotIn predicate on the "commit_sha" field.
func CommitShaNotIn(vs ...string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldNotIn(FieldCommitSha, vs...))
}

// CommitShaGT applies the GT predicate on the "commit_sha" field.
func CommitShaGT(v string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldGT(FieldCommitSha, v))
}

// CommitShaGTE applies the GTE predicate on the "commit_sha" field.
func CommitShaGTE(v string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldGTE(FieldCommitSha, v))
}

// CommitShaLT applies the LT predicate on the "commit_sha" field.
func CommitShaLT(v string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldLT(FieldCommitSha, v))
}

// CommitShaLTE applies the LTE predicate on the "commit_sha" field.
func CommitShaLTE(v string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldLTE(FieldCommitSha, v))
}

// CommitShaContains applies the Contains predicate on the "commit_sha" field.
func CommitShaContains(v string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldContains(FieldCommitSha, v))
}

// CommitShaHasPrefix applies the HasPrefix predicate on the "commit_sha" field.
func CommitShaHasPrefix(v string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldHasPrefix(FieldCommitSha, v))
}

// CommitShaHasSuffix applies the HasSuffix predicate on the "commit_sha" field.
func CommitShaHasSuffix(v string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldHasSuffix(FieldCommitSha, v))
}

// CommitShaIsNil applies the IsNil predicate on the "commit_sha" field.
func CommitShaIsNil() predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldIsNull(FieldCommitSha))
}

// CommitShaNotNil applies the NotNil predicate on the "commit_sha" field.
func CommitShaNotNil() predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldNotNull(FieldCommitSha))
}

// CommitShaEqualFold applies the EqualFold predicate on the "commit_sha" field.
func CommitShaEqualFold(v string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldEqualFold(FieldCommitSha, v))
}

// CommitShaContainsFold applies the ContainsFold predicate on the "commit_sha" field.
func CommitShaContainsFold(v string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldContainsFold(FieldCommitSha, v))
}

// VulnTypeEQ applies the EQ predicate on the "vuln_type" field.
func VulnTypeEQ(v string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldEQ(FieldVulnType, v))
}

// VulnTypeNEQ applies the NEQ predicate on the "vuln_type" field.
func VulnTypeNEQ(v string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldNEQ(FieldVulnType, v))
}

// VulnTypeIn applies the In predicate on the "vuln_type" field.
func VulnTypeIn(vs ...string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldIn(FieldVulnType, vs...))
}

// VulnTypeNotIn applies the NotIn predicate on the "vuln_type" field.
func VulnTypeNotIn(vs ...string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldNotIn(FieldVulnType, vs...))
}

// VulnTypeGT applies the GT predicate on the "vuln_type" field.
func VulnTypeGT(v string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldGT(FieldVulnType, v))
}

// VulnTypeGTE applies the GTE predicate on the "vuln_type" field.
func VulnTypeGTE(v string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldGTE(FieldVulnType, v))
}

// VulnTypeLT applies the LT predicate on the "vuln_type" field.
func VulnTypeLT(v string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldLT(FieldVulnType, v))
}

// VulnTypeLTE applies the LTE predicate on the "vuln_type" field.
func VulnTypeLTE(v string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldLTE(FieldVulnType, v))
}

// VulnTypeContains applies the Contains predicate on the "vuln_type" field.
func VulnTypeContains(v string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldContains(FieldVulnType, v))
}

// VulnTypeHasPrefix applies the HasPrefix predicate on the "vuln_type" field.
func VulnTypeHasPrefix(v string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldHasPrefix(FieldVulnType, v))
}

// VulnTypeHasSuffix applies the HasSuffix predicate on the "vuln_type" field.
func VulnTypeHasSuffix(v string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldHasSuffix(FieldVulnType, v))
}

// VulnTypeIsNil applies the IsNil predicate on the "vuln_type" field.
func VulnTypeIsNil() predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldIsNull(FieldVulnType))
}

// VulnTypeNotNil applies the NotNil predicate on the "vuln_type" field.
func VulnTypeNotNil() predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldNotNull(FieldVulnType))
}

// VulnTypeEqualFold applies the EqualFold predicate on the "vuln_type" field.
func VulnTypeEqualFold(v string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldEqualFold(FieldVulnType, v))
}

// VulnTypeContainsFold applies the ContainsFold predicate on the "vuln_type" field.
func VulnTypeContainsFold(v string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldContainsFold(FieldVulnType, v))
}

// SeverityEQ applies the EQ predicate on the "severity" field.
func SeverityEQ(v Severity) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldEQ(FieldSeverity, v))
}

// SeverityNEQ applies the NEQ predicate on the "severity" field.
func SeverityNEQ(v Severity) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldNEQ(FieldSeverity, v))
}

// SeverityIn applies the In predicate on the "severity" field.
func SeverityIn(vs ...Severity) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldIn(FieldSeverity, vs...))
}

// SeverityNotIn applies the NotIn predicate on the "severity" field.
func SeverityNotIn(vs ...Severity) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldNotIn(FieldSeverity, vs...))
}

// SeverityIsNil applies the IsNil predicate on the "severity" field.
func SeverityIsNil() predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldIsNull(FieldSeverity))
}

// SeverityNotNil applies the NotNil predicate on the "severity" field.
func SeverityNotNil() predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldNotNull(FieldSeverity))
}

// AffectedVersionsEQ applies the EQ predicate on the "affected_versions" field.
func AffectedVersionsEQ(v string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldEQ(FieldAffectedVersions, v))
}

// AffectedVersionsNEQ applies the NEQ predicate on the "affected_versions" field.
func AffectedVersionsNEQ(v string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldNEQ(FieldAffectedVersions, v))
}

// AffectedVersionsIn applies the In predicate on the "affected_versions" field.
func AffectedVersionsIn(vs ...string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldIn(FieldAffectedVersions, vs...))
}

// AffectedVersionsNotIn applies the NotIn predicate on the "affected_versions" field.
func AffectedVersionsNotIn(vs ...string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldNotIn(FieldAffectedVersions, vs...))
}

// AffectedVersionsGT applies the GT predicate on the "affected_versions" field.
func AffectedVersionsGT(v string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldGT(FieldAffectedVersions, v))
}

// AffectedVersionsGTE applies the GTE predicate on the "affected_versions" field.
func AffectedVersionsGTE(v string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldGTE(FieldAffectedVersions, v))
}

// AffectedVersionsLT applies the LT predicate on the "affected_versions" field.
func AffectedVersionsLT(v string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldLT(FieldAffectedVersions, v))
}

// AffectedVersionsLTE applies the LTE predicate on the "affected_versions" field.
func AffectedVersionsLTE(v string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldLTE(FieldAffectedVersions, v))
}

// AffectedVersionsContains applies the Contains predicate on the "affected_versions" field.
func AffectedVersionsContains(v string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldContains(FieldAffectedVersions, v))
}

// AffectedVersionsHasPrefix applies the HasPrefix predicate on the "affected_versions" field.
func AffectedVersionsHasPrefix(v string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldHasPrefix(FieldAffectedVersions, v))
}

// AffectedVersionsHasSuffix applies the HasSuffix predicate on the "affected_versions" field.
func AffectedVersionsHasSuffix(v string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldHasSuffix(FieldAffectedVersions, v))
}

// AffectedVersionsIsNil applies the IsNil predicate on the "affected_versions" field.
func AffectedVersionsIsNil() predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldIsNull(FieldAffectedVersions))
}

// AffectedVersionsNotNil applies the NotNil predicate on the "affected_versions" field.
func AffectedVersionsNotNil() predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldNotNull(FieldAffectedVersions))
}

// AffectedVersionsEqualFold applies the EqualFold predicate on the "affected_versions" field.
func AffectedVersionsEqualFold(v string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldEqualFold(FieldAffectedVersions, v))
}

// AffectedVersionsContainsFold applies the ContainsFold predicate on the "affected_versions" field.
func AffectedVersionsContainsFold(v string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldContainsFold(FieldAffectedVersions, v))
}

// SummaryEQ applies the EQ predicate on the "summary" field.
func SummaryEQ(v string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldEQ(FieldSummary, v))
}

// SummaryNEQ applies the NEQ predicate on the "summary" field.
func SummaryNEQ(v string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldNEQ(FieldSummary, v))
}

// SummaryIn applies the In predicate on the "summary" field.
func SummaryIn(vs ...string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldIn(FieldSummary, vs...))
}

// SummaryNotIn applies the NotIn predicate on the "summary" field.
func SummaryNotIn(vs ...string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldNotIn(FieldSummary, vs...))
}

// SummaryGT applies the GT predicate on the "summary" field.
func SummaryGT(v string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldGT(FieldSummary, v))
}

// SummaryGTE applies the GTE predicate on the "summary" field.
func SummaryGTE(v string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldGTE(FieldSummary, v))
}

// SummaryLT applies the LT predicate on the "summary" field.
func SummaryLT(v string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldLT(FieldSummary, v))
}

// SummaryLTE applies the LTE predicate on the "summary" field.
func SummaryLTE(v string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldLTE(FieldSummary, v))
}

// SummaryContains applies the Contains predicate on the "summary" field.
func SummaryContains(v string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldContains(FieldSummary, v))
}

// SummaryHasPrefix applies the HasPrefix predicate on the "summary" field.
func SummaryHasPrefix(v string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldHasPrefix(FieldSummary, v))
}

// SummaryHasSuffix applies the HasSuffix predicate on the "summary" field.
func SummaryHasSuffix(v string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldHasSuffix(FieldSummary, v))
}

// SummaryIsNil applies the IsNil predicate on the "summary" field.
func SummaryIsNil() predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldIsNull(FieldSummary))
}

// SummaryNotNil applies the NotNil predicate on the "summary" field.
func SummaryNotNil() predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldNotNull(FieldSummary))
}

// SummaryEqualFold applies the EqualFold predicate on the "summary" field.
func SummaryEqualFold(v string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldEqualFold(FieldSummary, v))
}

// SummaryContainsFold applies the ContainsFold predicate on the "summary" field.
func SummaryContainsFold(v string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldContainsFold(FieldSummary, v))
}

// ReasoningEQ applies the EQ predicate on the "reasoning" field.
func ReasoningEQ(v string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldEQ(FieldReasoning, v))
}

// ReasoningNEQ applies the NEQ predicate on the "reasoning" field.
func ReasoningNEQ(v string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldNEQ(FieldReasoning, v))
}

// ReasoningIn applies the In predicate on the "reasoning" field.
func ReasoningIn(vs ...string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldIn(FieldReasoning, vs...))
}

// ReasoningNotIn applies the NotIn predicate on the "reasoning" field.
func ReasoningNotIn(vs ...string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldNotIn(FieldReasoning, vs...))
}

// ReasoningGT applies the GT predicate on the "reasoning" field.
func ReasoningGT(v string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldGT(FieldReasoning, v))
}

// ReasoningGTE applies the GTE predicate on the "reasoning" field.
func ReasoningGTE(v string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldGTE(FieldReasoning, v))
}

// ReasoningLT applies the LT predicate on the "reasoning" field.
func ReasoningLT(v string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldLT(FieldReasoning, v))
}

// ReasoningLTE applies the LTE predicate on the "reasoning" field.
func ReasoningLTE(v string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldLTE(FieldReasoning, v))
}

// ReasoningContains applies the Contains predicate on the "reasoning" field.
func ReasoningContains(v string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldContains(FieldReasoning, v))
}

// ReasoningHasPrefix applies the HasPrefix predicate on the "reasoning" field.
func ReasoningHasPrefix(v string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldHasPrefix(FieldReasoning, v))
}

// ReasoningHasSuffix applies the HasSuffix predicate on the "reasoning" field.
func ReasoningHasSuffix(v string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldHasSuffix(FieldReasoning, v))
}

// ReasoningIsNil applies the IsNil predicate on the "reasoning" field.
func ReasoningIsNil() predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldIsNull(FieldReasoning))
}

// ReasoningNotNil applies the NotNil predicate on the "reasoning" field.
func ReasoningNotNil() predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldNotNull(FieldReasoning))
}

// ReasoningEqualFold applies the EqualFold predicate on the "reasoning" field.
func ReasoningEqualFold(v string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldEqualFold(FieldReasoning, v))
}

// ReasoningContainsFold applies the ContainsFold predicate on the "reasoning" field.
func ReasoningContainsFold(v string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldContainsFold(FieldReasoning, v))
}

// UpstreamPocIsNil applies the IsNil predicate on the "upstream_poc" field.
func UpstreamPocIsNil() predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldIsNull(FieldUpstreamPoc))
}

// UpstreamPocNotNil applies the NotNil predicate on the "upstream_poc" field.
func UpstreamPocNotNil() predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldNotNull(FieldUpstreamPoc))
}

// AffectedFunctionsIsNil applies the IsNil predicate on the "affected_functions" field.
func AffectedFunctionsIsNil() predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldIsNull(FieldAffectedFunctions))
}

// AffectedFunctionsNotNil applies the NotNil predicate on the "affected_functions" field.
func AffectedFunctionsNotNil() predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldNotNull(FieldAffectedFunctions))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldNotIn(FieldStatus, vs...))
}

// PublishedAtEQ applies the EQ predicate on the "published_at" field.
func PublishedAtEQ(v time.Time) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldEQ(FieldPublishedAt, v))
}

// PublishedAtNEQ applies the NEQ predicate on the "published_at" field.
func PublishedAtNEQ(v time.Time) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldNEQ(FieldPublishedAt, v))
}

// PublishedAtIn applies the In predicate on the "published_at" field.
func PublishedAtIn(vs ...time.Time) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldIn(FieldPublishedAt, vs...))
}

// PublishedAtNotIn applies the NotIn predicate on the "published_at" field.
func PublishedAtNotIn(vs ...time.Time) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldNotIn(FieldPublishedAt, vs...))
}

// PublishedAtGT applies the GT predicate on the "published_at" field.
func PublishedAtGT(v time.Time) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldGT(FieldPublishedAt, v))
}

// PublishedAtGTE applies the GTE predicate on the "published_at" field.
func PublishedAtGTE(v time.Time) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldGTE(FieldPublishedAt, v))
}

// PublishedAtLT applies the LT predicate on the "published_at" field.
func PublishedAtLT(v time.Time) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldLT(FieldPublishedAt, v))
}

// PublishedAtLTE applies the LTE predicate on the "published_at" field.
func PublishedAtLTE(v time.Time) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldLTE(FieldPublishedAt, v))
}

// PublishedAtIsNil applies the IsNil predicate on the "published_at" field.
func PublishedAtIsNil() predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldIsNull(FieldPublishedAt))
}

// PublishedAtNotNil applies the NotNil predicate on the "published_at" field.
func PublishedAtNotNil() predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldNotNull(FieldPublishedAt))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasEvent applies the HasEdge predicate on the "event" edge.
func HasEvent() predicate.UpstreamVuln {
	return predicate.UpstreamVuln(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, EventTable, EventColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEventWith applies the HasEdge predicate on the "event" edge with a given conditions (other predicates).
func HasEventWith(preds ...predicate.Event) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(func(s *sql.Selector) {
		step := newEventStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasLibrary applies the HasEdge predicate on the "library" edge.
func HasLibrary() predicate.UpstreamVuln {
	return predicate.UpstreamVuln(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, LibraryTable, LibraryColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLibraryWith applies the HasEdge predicate on the "library" edge with a given conditions (other predicates).
func HasLibraryWith(preds ...predicate.Library) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(func(s *sql.Selector) {
		step := newLibraryStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasClientVulns applies the HasEdge predicate on the "client_vulns" edge.
func HasClientVulns() predicate.UpstreamVuln {
	return predicate.UpstreamVuln(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ClientVulnsTable, ClientVulnsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasClientVulnsWith applies the HasEdge predicate on the "client_vulns" edge with a given conditions (other predicates).
func HasClientVulnsWith(preds ...predicate.ClientVuln) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(func(s *sql.Selector) {
		step := newClientVulnsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.UpstreamVuln) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.UpstreamVuln) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.UpstreamVuln) predicate.UpstreamVuln {
	return predicate.UpstreamVuln(sql.NotPredicates(p))
}
