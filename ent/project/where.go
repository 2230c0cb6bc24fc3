// Code generated by ent, DO NOT EDIT.

package project

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/vulnsentinel/vulnsentinel/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldName, v))
}

// Organization applies equality check predicate on the "organization" field. It's identical to OrganizationEQ.
func Organization(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldOrganization, v))
}

// RepoURL applies equality check predicate on the "repo_url" field. It's identical to RepoURLEQ.
func RepoURL(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldRepoURL, v))
}

// DefaultBranch applies equality check predicate on the "default_branch" field. It's identical to DefaultBranchEQ.
func DefaultBranch(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldDefaultBranch, v))
}

// CurrentVersion applies equality check predicate on the "current_version" field. It's identical to CurrentVersionEQ.
func CurrentVersion(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldCurrentVersion, v))
}

// PinnedRef applies equality check predicate on the "pinned_ref" field. It's identical to PinnedRefEQ.
func PinnedRef(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldPinnedRef, v))
}

// AutoSyncDeps applies equality check predicate on the "auto_sync_deps" field. It's identical to AutoSyncDepsEQ.
func AutoSyncDeps(v bool) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldAutoSyncDeps, v))
}

// ScanStatus applies equality check predicate on the "scan_status" field. It's identical to ScanStatusEQ.
func ScanStatus(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldScanStatus, v))
}

// ScanError applies equality check predicate on the "scan_error" field. It's identical to ScanErrorEQ.
func ScanError(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldScanError, v))
}

// LastScannedAt applies equality check predicate on the "last_scanned_at" field. It's identical to LastScannedAtEQ.
func LastScannedAt(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldLastScannedAt, v))
}

// ContactEmail applies equality check predicate on the "contact_email" field. It's identical to ContactEmailEQ.
func ContactEmail(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldContactEmail, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Project {
	return predicate.Project(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldName, v))
}

// OrganizationEQ applies the EQ predicate on the "organization" field.
func OrganizationEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldOrganization, v))
}

// OrganizationNEQ applies the NEQ predicate on the "organization" field.
func OrganizationNEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldOrganization, v))
}

// OrganizationIn applies the In predicate on the "organization" field.
func OrganizationIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldOrganization, vs...))
}

// OrganizationNotIn applies the NotIn predicate on the "organization" field.
func OrganizationNotIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldOrganization, vs...))
}

// OrganizationGT applies the GT predicate on the "organization" field.
func OrganizationGT(v string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldOrganization, v))
}

// OrganizationGTE applies the GTE predicate on the "organization" field.
func OrganizationGTE(v string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldOrganization, v))
}

// OrganizationLT applies the LT predicate on the "organization" field.
func OrganizationLT(v string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldOrganization, v))
}

// OrganizationLTE applies the LTE predicate on the "organization" field.
func OrganizationLTE(v string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldOrganization, v))
}

// OrganizationContains applies the Contains predicate on the "organization" field.
func OrganizationContains(v string) predicate.Project {
	return predicate.Project(sql.FieldContains(FieldOrganization, v))
}

// OrganizationHasPrefix applies the HasPrefix predicate on the "organization" field.
func OrganizationHasPrefix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasPrefix(FieldOrganization, v))
}

// OrganizationHasSuffix applies the HasSuffix predicate on the "organization" field.
func OrganizationHasSuffix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasSuffix(FieldOrganization, v))
}

// OrganizationIsNil applies the IsNil predicate on the "organization" field.
func OrganizationIsNil() predicate.Project {
	return predicate.Project(sql.FieldIsNull(FieldOrganization))
}

// OrganizationNotNil applies the NotNil predicate on the "organization" field.
func OrganizationNotNil() predicate.Project {
	return predicate.Project(sql.FieldNotNull(FieldOrganization))
}

// OrganizationEqualFold applies the EqualFold predicate on the "organization" field.
func OrganizationEqualFold(v string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldOrganization, v))
}

// OrganizationContainsFold applies the ContainsFold predicate on the "organization" field.
func OrganizationContainsFold(v string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldOrganization, v))
}

// RepoURLEQ applies the EQ predicate on the "repo_url" field.
func RepoURLEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldRepoURL, v))
}

// RepoURLNEQ applies the NEQ predicate on the "repo_url" field.
func RepoURLNEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldRepoURL, v))
}

// RepoURLIn applies the In predicate on the "repo_url" field.
func RepoURLIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldRepoURL, vs...))
}

// RepoURLNotIn applies the NotIn predicate on the "repo_url" field.
func RepoURLNotIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldRepoURL, vs...))
}

// RepoURLGT applies the GT predicate on the "repo_url" field.
func RepoURLGT(v string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldRepoURL, v))
}

// RepoURLGTE applies the GTE predicate on the "repo_url" field.
func RepoURLGTE(v string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldRepoURL, v))
}

// RepoURLLT applies the LT predicate on the "repo_url" field.
func RepoURLLT(v string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldRepoURL, v))
}

// RepoURLLTE applies the LTE predicate on the "repo_url" field.
func RepoURLLTE(v string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldRepoURL, v))
}

// RepoURLContains applies the Contains predicate on the "repo_url" field.
func RepoURLContains(v string) predicate.Project {
	return predicate.Project(sql.FieldContains(FieldRepoURL, v))
}

// RepoURLHasPrefix applies the HasPrefix predicate on the "repo_url" field.
func RepoURLHasPrefix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasPrefix(FieldRepoURL, v))
}

// RepoURLHasSuffix applies the HasSuffix predicate on the "repo_url" field.
func RepoURLHasSuffix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasSuffix(FieldRepoURL, v))
}

// RepoURLEqualFold applies the EqualFold predicate on the "repo_url" field.
func RepoURLEqualFold(v string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldRepoURL, v))
}

// RepoURLContainsFold applies the ContainsFold predicate on the "repo_url" field.
func RepoURLContainsFold(v string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldRepoURL, v))
}

// DefaultBranchEQ applies the EQ predicate on the "default_branch" field.
func DefaultBranchEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldDefaultBranch, v))
}

// DefaultBranchNEQ applies the NEQ predicate on the "default_branch" field.
func DefaultBranchNEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldDefaultBranch, v))
}

// DefaultBranchIn applies the In predicate on the "default_branch" field.
func DefaultBranchIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldDefaultBranch, vs...))
}

// DefaultBranchNotIn applies the NotIn predicate on the "default_branch" field.
func DefaultBranchNotIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldDefaultBranch, vs...))
}

// DefaultBranchGT applies the GT predicate on the "default_branch" field.
func DefaultBranchGT(v string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldDefaultBranch, v))
}

// DefaultBranchGTE applies the GTE predicate on the "default_branch" field.
func DefaultBranchGTE(v string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldDefaultBranch, v))
}

// DefaultBranchLT applies the LT predicate on the "default_branch" field.
func DefaultBranchLT(v string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldDefaultBranch, v))
}

// DefaultBranchLTE applies the LTE predicate on the "default_branch" field.
func DefaultBranchLTE(v string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldDefaultBranch, v))
}

// DefaultBranchContains applies the Contains predicate on the "default_branch" field.
func DefaultBranchContains(v string) predicate.Project {
	return predicate.Project(sql.FieldContains(FieldDefaultBranch, v))
}

// DefaultBranchHasPrefix applies the HasPrefix predicate on the "default_branch" field.
func DefaultBranchHasPrefix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasPrefix(FieldDefaultBranch, v))
}

// DefaultBranchHasSuffix applies the HasSuffix predicate on the "default_branch" field.
func DefaultBranchHasSuffix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasSuffix(FieldDefaultBranch, v))
}

// DefaultBranchEqualFold applies the EqualFold predicate on the "default_branch" field.
func DefaultBranchEqualFold(v string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldDefaultBranch, v))
}

// DefaultBranchContainsFold applies the ContainsFold predicate on the "default_branch" field.
func DefaultBranchContainsFold(v string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldDefaultBranch, v))
}

// CurrentVersionEQ applies the EQ predicate on the "current_version" field.
func CurrentVersionEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldCurrentVersion, v))
}

// CurrentVersionNEQ applies the NEQ predicate on the "current_version" field.
func CurrentVersionNEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldCurrentVersion, v))
}

// CurrentVersionIn applies the In predicate on the "current_version" field.
func CurrentVersionIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldCurrentVersion, vs...))
}

// CurrentVersionNotIn applies the NotIn predicate on the "current_version" field.
func CurrentVersionNotIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldCurrentVersion, vs...))
}

// CurrentVersionGT applies the GT predicate on the "current_version" field.
func CurrentVersionGT(v string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldCurrentVersion, v))
}

// CurrentVersionGTE applies the GTE predicate on the "current_version" field.
func CurrentVersionGTE(v string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldCurrentVersion, v))
}

// CurrentVersionLT applies the LT predicate on the "current_version" field.
func CurrentVersionLT(v string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldCurrentVersion, v))
}

// CurrentVersionLTE applies the LTE predicate on the "current_version" field.
func CurrentVersionLTE(v string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldCurrentVersion, v))
}

// CurrentVersionContains applies the Contains predicate on the "current_version" field.
func CurrentVersionContains(v string) predicate.Project {
	return predicate.Project(sql.FieldContains(FieldCurrentVersion, v))
}

// CurrentVersionHasPrefix applies the HasPrefix predicate on the "current_version" field.
func CurrentVersionHasPrefix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasPrefix(FieldCurrentVersion, v))
}

// CurrentVersionHasSuffix applies the HasSuffix predicate on the "current_version" field.
func CurrentVersionHasSuffix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasSuffix(FieldCurrentVersion, v))
}

// CurrentVersionIsNil applies the IsNil predicate on the "current_version" field.
func CurrentVersionIsNil() predicate.Project {
	return predicate.Project(sql.FieldIsNull(FieldCurrentVersion))
}

// CurrentVersionNotNil applies the NotNil predicate on the "current_version" field.
func CurrentVersionNotNil() predicate.Project {
	return predicate.Project(sql.FieldNotNull(FieldCurrentVersion))
}

// CurrentVersionEqualFold applies the EqualFold predicate on the "current_version" field.
func CurrentVersionEqualFold(v string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldCurrentVersion, v))
}

// CurrentVersionContainsFold applies the ContainsFold predicate on the "current_version" field.
func CurrentVersionContainsFold(v string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldCurrentVersion, v))
}

// PinnedRefEQ applies the EQ predicate on the "pinned_ref" field.
func PinnedRefEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldPinnedRef, v))
}

// PinnedRefNEQ applies the NEQ predicate on the "pinned_ref" field.
func PinnedRefNEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldPinnedRef, v))
}

// PinnedRefIn applies the In predicate on the "pinned_ref" field.
func PinnedRefIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldPinnedRef, vs...))
}

// PinnedRefNotIn applies the NotIn predicate on the "pinned_ref" field.
func PinnedRefNotIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldPinnedRef, vs...))
}

// PinnedRefGT applies the GT predicate on the "pinned_ref" field.
func PinnedRefGT(v string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldPinnedRef, v))
}

// PinnedRefGTE applies the GTE predicate on the "pinned_ref" field.
func PinnedRefGTE(v string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldPinnedRef, v))
}

// PinnedRefLT applies the LT predicate on the "pinned_ref" field.
func PinnedRefLT(v string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldPinnedRef, v))
}

// PinnedRefLTE applies the LTE predicate on the "pinned_ref" field.
func PinnedRefLTE(v string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldPinnedRef, v))
}

// PinnedRefContains applies the Contains predicate on the "pinned_ref" field.
func PinnedRefContains(v string) predicate.Project {
	return predicate.Project(sql.FieldContains(FieldPinnedRef, v))
}

// PinnedRefHasPrefix applies the HasPrefix predicate on the "pinned_ref" field.
func PinnedRefHasPrefix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasPrefix(FieldPinnedRef, v))
}

// PinnedRefHasSuffix applies the HasSuffix predicate on the "pinned_ref" field.
func PinnedRefHasSuffix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasSuffix(FieldPinnedRef, v))
}

// PinnedRefIsNil applies the IsNil predicate on the "pinned_ref" field.
func PinnedRefIsNil() predicate.Project {
	return predicate.Project(sql.FieldIsNull(FieldPinnedRef))
}

// PinnedRefNotNil applies the NotNil predicate on the "pinned_ref" field.
func PinnedRefNotNil() predicate.Project {
	return predicate.Project(sql.FieldNotNull(FieldPinnedRef))
}

// PinnedRefEqualFold applies the EqualFold predicate on the "pinned_ref" field.
func PinnedRefEqualFold(v string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldPinnedRef, v))
}

// PinnedRefContainsFold applies the ContainsFold predicate on the "pinned_ref" field.
func PinnedRefContainsFold(v string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldPinnedRef, v))
}

// AutoSyncDepsEQ applies the EQ predicate on the "auto_sync_deps" field.
func AutoSyncDepsEQ(v bool) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldAutoSyncDeps, v))
}

// AutoSyncDepsNEQ applies the NEQ predicate on the "auto_sync_deps" field.
func AutoSyncDepsNEQ(v bool) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldAutoSyncDeps, v))
}

// ScanStatusEQ applies the EQ predicate on the "scan_status" field.
func ScanStatusEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldScanStatus, v))
}

// ScanStatusNEQ applies the NEQ predicate on the "scan_status" field.
func ScanStatusNEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldScanStatus, v))
}

// ScanStatusIn applies the In predicate on the "scan_status" field.
func ScanStatusIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldScanStatus, vs...))
}

// ScanStatusNotIn applies the NotIn predicate on the "scan_status" field.
func ScanStatusNotIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldScanStatus, vs...))
}

// ScanStatusGT applies the GT predicate on the "scan_status" field.
func ScanStatusGT(v string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldScanStatus, v))
}

// ScanStatusGTE applies the GTE predicate on the "scan_status" field.
func ScanStatusGTE(v string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldScanStatus, v))
}

// ScanStatusLT applies the LT predicate on the "scan_status" field.
func ScanStatusLT(v string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldScanStatus, v))
}

// ScanStatusLTE applies the LTE predicate on the "scan_status" field.
func ScanStatusLTE(v string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldScanStatus, v))
}

// ScanStatusContains applies the Contains predicate on the "scan_status" field.
func ScanStatusContains(v string) predicate.Project {
	return predicate.Project(sql.FieldContains(FieldScanStatus, v))
}

// ScanStatusHasPrefix applies the HasPrefix predicate on the "scan_status" field.
func ScanStatusHasPrefix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasPrefix(FieldScanStatus, v))
}

// ScanStatusHasSuffix applies the HasSuffix predicate on the "scan_status" field.
func ScanStatusHasSuffix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasSuffix(FieldScanStatus, v))
}

// ScanStatusIsNil applies the IsNil predicate on the "scan_status" field.
func ScanStatusIsNil() predicate.Project {
	return predicate.Project(sql.FieldIsNull(FieldScanStatus))
}

// ScanStatusNotNil applies the NotNil predicate on the "scan_status" field.
func ScanStatusNotNil() predicate.Project {
	return predicate.Project(sql.FieldNotNull(FieldScanStatus))
}

// ScanStatusEqualFold applies the EqualFold predicate on the "scan_status" field.
func ScanStatusEqualFold(v string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldScanStatus, v))
}

// ScanStatusContainsFold applies the ContainsFold predicate on the "scan_status" field.
func ScanStatusContainsFold(v string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldScanStatus, v))
}

// ScanErrorEQ applies the EQ predicate on the "scan_error" field.
func ScanErrorEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldScanError, v))
}

// ScanErrorNEQ applies the NEQ predicate on the "scan_error" field.
func ScanErrorNEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldScanError, v))
}

// ScanErrorIn applies the In predicate on the "scan_error" field.
func ScanErrorIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldScanError, vs...))
}

// ScanErrorNotIn applies the NotIn predicate on the "scan_error" field.
func ScanErrorNotIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldScanError, vs...))
}

// ScanErrorGT applies the GT predicate on the "scan_error" field.
func ScanErrorGT(v string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldScanError, v))
}

// ScanErrorGTE applies the GTE predicate on the "scan_error" field.
func ScanErrorGTE(v string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldScanError, v))
}

// ScanErrorLT applies the LT predicate on the "scan_error" field.
func ScanErrorLT(v string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldScanError, v))
}

// ScanErrorLTE applies the LTE predicate on the "scan_error" field.
func ScanErrorLTE(v string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldScanError, v))
}

// ScanErrorContains applies the Contains predicate on the "scan_error" field.
func ScanErrorContains(v string) predicate.Project {
	return predicate.Project(sql.FieldContains(FieldScanError, v))
}

// ScanErrorHasPrefix applies the HasPrefix predicate on the "scan_error" field.
func ScanErrorHasPrefix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasPrefix(FieldScanError, v))
}

// ScanErrorHasSuffix applies the HasSuffix predicate on the "scan_error" field.
func ScanErrorHasSuffix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasSuffix(FieldScanError, v))
}

// ScanErrorIsNil applies the IsNil predicate on the "scan_error" field.
func ScanErrorIsNil() predicate.Project {
	return predicate.Project(sql.FieldIsNull(FieldScanError))
}

// ScanErrorNotNil applies the NotNil predicate on the "scan_error" field.
func ScanErrorNotNil() predicate.Project {
	return predicate.Project(sql.FieldNotNull(FieldScanError))
}

// ScanErrorEqualFold applies the EqualFold predicate on the "scan_error" field.
func ScanErrorEqualFold(v string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldScanError, v))
}

// ScanErrorContainsFold applies the ContainsFold predicate on the "scan_error" field.
func ScanErrorContainsFold(v string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldScanError, v))
}

// LastScannedAtEQ applies the EQ predicate on the "last_scanned_at" field.
func LastScannedAtEQ(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldLastScannedAt, v))
}

// LastScannedAtNEQ applies the NEQ predicate on the "last_scanned_at" field.
func LastScannedAtNEQ(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldLastScannedAt, v))
}

// LastScannedAtIn applies the In predicate on the "last_scanned_at" field.
func LastScannedAtIn(vs ...time.Time) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldLastScannedAt, vs...))
}

// LastScannedAtNotIn applies the NotIn predicate on the "last_scanned_at" field.
func LastScannedAtNotIn(vs ...time.Time) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldLastScannedAt, vs...))
}

// LastScannedAtGT applies the GT predicate on the "last_scanned_at" field.
func LastScannedAtGT(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldLastScannedAt, v))
}

// LastScannedAtGTE applies the GTE predicate on the "last_scanned_at" field.
func LastScannedAtGTE(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldLastScannedAt, v))
}

// LastScannedAtLT applies the LT predicate on the "last_scanned_at" field.
func LastScannedAtLT(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldLastScannedAt, v))
}

// LastScannedAtLTE applies the LTE predicate on the "last_scanned_at" field.
func LastScannedAtLTE(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldLastScannedAt, v))
}

// LastScannedAtIsNil applies the IsNil predicate on the "last_scanned_at" field.
func LastScannedAtIsNil() predicate.Project {
	return predicate.Project(sql.FieldIsNull(FieldLastScannedAt))
}

// LastScannedAtNotNil applies the NotNil predicate on the "last_scanned_at" field.
func LastScannedAtNotNil() predicate.Project {
	return predicate.Project(sql.FieldNotNull(FieldLastScannedAt))
}

// ContactEmailEQ applies the EQ predicate on the "contact_email" field.
func ContactEmailEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldContactEmail, v))
}

// ContactEmailNEQ applies the NEQ predicate on the "contact_email" field.
func ContactEmailNEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldContactEmail, v))
}

// ContactEmailIn applies the In predicate on the "contact_email" field.
func ContactEmailIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldContactEmail, vs...))
}

// ContactEmailNotIn applies the NotIn predicate on the "contact_email" field.
func ContactEmailNotIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldContactEmail, vs...))
}

// ContactEmailGT applies the GT predicate on the "contact_email" field.
func ContactEmailGT(v string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldContactEmail, v))
}

// ContactEmailGTE applies the GTE predicate on the "contact_email" field.
func ContactEmailGTE(v string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldContactEmail, v))
}

// ContactEmailLT applies the LT predicate on the "contact_email" field.
func ContactEmailLT(v string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldContactEmail, v))
}

// ContactEmailLTE applies the LTE predicate on the "contact_email" field.
func ContactEmailLTE(v string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldContactEmail, v))
}

// ContactEmailContains applies the Contains predicate on the "contact_email" field.
func ContactEmailContains(v string) predicate.Project {
	return predicate.Project(sql.FieldContains(FieldContactEmail, v))
}

// ContactEmailHasPrefix applies the HasPrefix predicate on the "contact_email" field.
func ContactEmailHasPrefix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasPrefix(FieldContactEmail, v))
}

// ContactEmailHasSuffix applies the HasSuffix predicate on the "contact_email" field.
func ContactEmailHasSuffix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasSuffix(FieldContactEmail, v))
}

// ContactEmailIsNil applies the IsNil predicate on the "contact_email" field.
func ContactEmailIsNil() predicate.Project {
	return predicate.Project(sql.FieldIsNull(FieldContactEmail))
}

// ContactEmailNotNil applies the NotNil predicate on the "contact_email" field.
func ContactEmailNotNil() predicate.Project {
	return predicate.Project(sql.FieldNotNull(FieldContactEmail))
}

// ContactEmailEqualFold applies the EqualFold predicate on the "contact_email" field.
func ContactEmailEqualFold(v string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldContactEmail, v))
}

// ContactEmailContainsFold applies the ContainsFold predicate on the "contact_email" field.
func ContactEmailContainsFold(v string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldContactEmail, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasDependencies applies the HasEdge predicate on the "dependencies" edge.
func HasDependencies() predicate.Project {
	return predicate.Project(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, DependenciesTable, DependenciesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDependenciesWith applies the HasEdge predicate on the "dependencies" edge with a given conditions (other predicates).
func HasDependenciesWith(preds ...predicate.ProjectDependency) predicate.Project {
	return predicate.Project(func(s *sql.Selector) {
		step := newDependenciesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasClientVulns applies the HasEdge predicate on the "client_vulns" edge.
func HasClientVulns() predicate.Project {
	return predicate.Project(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ClientVulnsTable, ClientVulnsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasClientVulnsWith applies the HasEdge predicate on the "client_vulns" edge with a given conditions (other predicates).
func HasClientVulnsWith(preds ...predicate.ClientVuln) predicate.Project {
	return predicate.Project(func(s *sql.Selector) {
		step := newClientVulnsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Project) predicate.Project {
	return predicate.Project(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Project) predicate.Project {
	return predicate.Project(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Project) predicate.Project {
	return predicate.Project(sql.NotPredicates(p))
}
