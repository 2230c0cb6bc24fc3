// Code generated by ent, DO NOT EDIT.

package library

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/vulnsentinel/vulnsentinel/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Library {
	return predicate.Library(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Library {
	return predicate.Library(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Library {
	return predicate.Library(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Library {
	return predicate.Library(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Library {
	return predicate.Library(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Library {
	return predicate.Library(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Library {
	return predicate.Library(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Library {
	return predicate.Library(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Library {
	return predicate.Library(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Library {
	return predicate.Library(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Library {
	return predicate.Library(sql.FieldContainsFold(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Library {
	return predicate.Library(sql.FieldEQ(FieldName, v))
}

// RepoURL applies equality check predicate on the "repo_url" field. It's identical to RepoURLEQ.
func RepoURL(v string) predicate.Library {
	return predicate.Library(sql.FieldEQ(FieldRepoURL, v))
}

// Platform applies equality check predicate on the "platform" field. It's identical to PlatformEQ.
func Platform(v string) predicate.Library {
	return predicate.Library(sql.FieldEQ(FieldPlatform, v))
}

// Ecosystem applies equality check predicate on the "ecosystem" field. It's identical to EcosystemEQ.
func Ecosystem(v string) predicate.Library {
	return predicate.Library(sql.FieldEQ(FieldEcosystem, v))
}

// DefaultBranch applies equality check predicate on the "default_branch" field. It's identical to DefaultBranchEQ.
func DefaultBranch(v string) predicate.Library {
	return predicate.Library(sql.FieldEQ(FieldDefaultBranch, v))
}

// LastCommitSha applies equality check predicate on the "last_commit_sha" field. It's identical to LastCommitShaEQ.
func LastCommitSha(v string) predicate.Library {
	return predicate.Library(sql.FieldEQ(FieldLastCommitSha, v))
}

// LastTagName applies equality check predicate on the "last_tag_name" field. It's identical to LastTagNameEQ.
func LastTagName(v string) predicate.Library {
	return predicate.Library(sql.FieldEQ(FieldLastTagName, v))
}

// LastScannedAt applies equality check predicate on the "last_scanned_at" field. It's identical to LastScannedAtEQ.
func LastScannedAt(v time.Time) predicate.Library {
	return predicate.Library(sql.FieldEQ(FieldLastScannedAt, v))
}

// CollectorError applies equality check predicate on the "collector_error" field. It's identical to CollectorErrorEQ.
func CollectorError(v string) predicate.Library {
	return predicate.Library(sql.FieldEQ(FieldCollectorError, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Library {
	return predicate.Library(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Library {
	return predicate.Library(sql.FieldEQ(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Library {
	return predicate.Library(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Library {
	return predicate.Library(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Library {
	return predicate.Library(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Library {
	return predicate.Library(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Library {
	return predicate.Library(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Library {
	return predicate.Library(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Library {
	return predicate.Library(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Library {
	return predicate.Library(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Library {
	return predicate.Library(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Library {
	return predicate.Library(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Library {
	return predicate.Library(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Library {
	return predicate.Library(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Library {
	return predicate.Library(sql.FieldContainsFold(FieldName, v))
}

// RepoURLEQ applies the EQ predicate on the "repo_url" field.
func RepoURLEQ(v string) predicate.Library {
	return predicate.Library(sql.FieldEQ(FieldRepoURL, v))
}

// RepoURLNEQ applies the NEQ predicate on the "repo_url" field.
func RepoURLNEQ(v string) predicate.Library {
	return predicate.Library(sql.FieldNEQ(FieldRepoURL, v))
}

// RepoURLIn applies the In predicate on the "repo_url" field.
func RepoURLIn(vs ...string) predicate.Library {
	return predicate.Library(sql.FieldIn(FieldRepoURL, vs...))
}

// RepoURLNotIn applies the NotIn predicate on the "repo_url" field.
func RepoURLNotIn(vs ...string) predicate.Library {
	return predicate.Library(sql.FieldNotIn(FieldRepoURL, vs...))
}

// RepoURLGT applies the GT predicate on the "repo_url" field.
func RepoURLGT(v string) predicate.Library {
	return predicate.Library(sql.FieldGT(FieldRepoURL, v))
}

// RepoURLGTE applies the GTE predicate on the "repo_url" field.
func RepoURLGTE(v string) predicate.Library {
	return predicate.Library(sql.FieldGTE(FieldRepoURL, v))
}

// RepoURLLT applies the LT predicate on the "repo_url" field.
func RepoURLLT(v string) predicate.Library {
	return predicate.Library(sql.FieldLT(FieldRepoURL, v))
}

// RepoURLLTE applies the LTE predicate on the "repo_url" field.
func RepoURLLTE(v string) predicate.Library {
	return predicate.Library(sql.FieldLTE(FieldRepoURL, v))
}

// RepoURLContains applies the Contains predicate on the "repo_url" field.
func RepoURLContains(v string) predicate.Library {
	return predicate.Library(sql.FieldContains(FieldRepoURL, v))
}

// RepoURLHasPrefix applies the HasPrefix predicate on the "repo_url" field.
func RepoURLHasPrefix(v string) predicate.Library {
	return predicate.Library(sql.FieldHasPrefix(FieldRepoURL, v))
}

// RepoURLHasSuffix applies the HasSuffix predicate on the "repo_url" field.
func RepoURLHasSuffix(v string) predicate.Library {
	return predicate.Library(sql.FieldHasSuffix(FieldRepoURL, v))
}

// RepoURLEqualFold applies the EqualFold predicate on the "repo_url" field.
func RepoURLEqualFold(v string) predicate.Library {
	return predicate.Library(sql.FieldEqualFold(FieldRepoURL, v))
}

// RepoURLContainsFold applies the ContainsFold predicate on the "repo_url" field.
func RepoURLContainsFold(v string) predicate.Library {
	return predicate.Library(sql.FieldContainsFold(FieldRepoURL, v))
}

// PlatformEQ applies the EQ predicate on the "platform" field.
func PlatformEQ(v string) predicate.Library {
	return predicate.Library(sql.FieldEQ(FieldPlatform, v))
}

// PlatformNEQ applies the NEQ predicate on the "platform" field.
func PlatformNEQ(v string) predicate.Library {
	return predicate.Library(sql.FieldNEQ(FieldPlatform, v))
}

// PlatformIn applies the In predicate on the "platform" field.
func PlatformIn(vs ...string) predicate.Library {
	return predicate.Library(sql.FieldIn(FieldPlatform, vs...))
}

// PlatformNotIn applies the NotIn predicate on the "platform" field.
func PlatformNotIn(vs ...string) predicate.Library {
	return predicate.Library(sql.FieldNotIn(FieldPlatform, vs...))
}

// PlatformGT applies the GT predicate on the "platform" field.
func PlatformGT(v string) predicate.Library {
	return predicate.Library(sql.FieldGT(FieldPlatform, v))
}

// PlatformGTE applies the GTE predicate on the "platform" field.
func PlatformGTE(v string) predicate.Library {
	return predicate.Library(sql.FieldGTE(FieldPlatform, v))
}

// PlatformLT applies the LT predicate on the "platform" field.
func PlatformLT(v string) predicate.Library {
	return predicate.Library(sql.FieldLT(FieldPlatform, v))
}

// PlatformLTE applies the LTE predicate on the "platform" field.
func PlatformLTE(v string) predicate.Library {
	return predicate.Library(sql.FieldLTE(FieldPlatform, v))
}

// PlatformContains applies the Contains predicate on the "platform" field.
func PlatformContains(v string) predicate.Library {
	return predicate.Library(sql.FieldContains(FieldPlatform, v))
}

// PlatformHasPrefix applies the HasPrefix predicate on the "platform" field.
func PlatformHasPrefix(v string) predicate.Library {
	return predicate.Library(sql.FieldHasPrefix(FieldPlatform, v))
}

// PlatformHasSuffix applies the HasSuffix predicate on the "platform" field.
func PlatformHasSuffix(v string) predicate.Library {
	return predicate.Library(sql.FieldHasSuffix(FieldPlatform, v))
}

// PlatformEqualFold applies the EqualFold predicate on the "platform" field.
func PlatformEqualFold(v string) predicate.Library {
	return predicate.Library(sql.FieldEqualFold(FieldPlatform, v))
}

// PlatformContainsFold applies the ContainsFold predicate on the "platform" field.
func PlatformContainsFold(v string) predicate.Library {
	return predicate.Library(sql.FieldContainsFold(FieldPlatform, v))
}

// EcosystemEQ applies the EQ predicate on the "ecosystem" field.
func EcosystemEQ(v string) predicate.Library {
	return predicate.Library(sql.FieldEQ(FieldEcosystem, v))
}

// EcosystemNEQ applies the NEQ predicate on the "ecosystem" field.
func EcosystemNEQ(v string) predicate.Library {
	return predicate.Library(sql.FieldNEQ(FieldEcosystem, v))
}

// EcosystemIn applies the In predicate on the "ecosystem" field.
func EcosystemIn(vs ...string) predicate.Library {
	return predicate.Library(sql.FieldIn(FieldEcosystem, vs...))
}

// EcosystemNotIn applies the NotIn predicate on the "ecosystem" field.
func EcosystemNotIn(vs ...string) predicate.Library {
	return predicate.Library(sql.FieldNotIn(FieldEcosystem, vs...))
}

// EcosystemGT applies the GT predicate on the "ecosystem" field.
func EcosystemGT(v string) predicate.Library {
	return predicate.Library(sql.FieldGT(FieldEcosystem, v))
}

// EcosystemGTE applies the GTE predicate on the "ecosystem" field.
func EcosystemGTE(v string) predicate.Library {
	return predicate.Library(sql.FieldGTE(FieldEcosystem, v))
}

// EcosystemLT applies the LT predicate on the "ecosystem" field.
func EcosystemLT(v string) predicate.Library {
	return predicate.Library(sql.FieldLT(FieldEcosystem, v))
}

// EcosystemLTE applies the LTE predicate on the "ecosystem" field.
func EcosystemLTE(v string) predicate.Library {
	return predicate.Library(sql.FieldLTE(FieldEcosystem, v))
}

// EcosystemContains applies the Contains predicate on the "ecosystem" field.
func EcosystemContains(v string) predicate.Library {
	return predicate.Library(sql.FieldContains(FieldEcosystem, v))
}

// EcosystemHasPrefix applies the HasPrefix predicate on the "ecosystem" field.
func EcosystemHasPrefix(v string) predicate.Library {
	return predicate.Library(sql.FieldHasPrefix(FieldEcosystem, v))
}

// EcosystemHasSuffix applies the HasSuffix predicate on the "ecosystem" field.
func EcosystemHasSuffix(v string) predicate.Library {
	return predicate.Library(sql.FieldHasSuffix(FieldEcosystem, v))
}

// EcosystemIsNil applies the IsNil predicate on the "ecosystem" field.
func EcosystemIsNil() predicate.Library {
	return predicate.Library(sql.FieldIsNull(FieldEcosystem))
}

// EcosystemNotNil applies the NotNil predicate on the "ecosystem" field.
func EcosystemNotNil() predicate.Library {
	return predicate.Library(sql.FieldNotNull(FieldEcosystem))
}

// EcosystemEqualFold applies the EqualFold predicate on the "ecosystem" field.
func EcosystemEqualFold(v string) predicate.Library {
	return predicate.Library(sql.FieldEqualFold(FieldEcosystem, v))
}

// EcosystemContainsFold applies the ContainsFold predicate on the "ecosystem" field.
func EcosystemContainsFold(v string) predicate.Library {
	return predicate.Library(sql.FieldContainsFold(FieldEcosystem, v))
}

// DefaultBranchEQ applies the EQ predicate on the "default_branch" field.
func DefaultBranchEQ(v string) predicate.Library {
	return predicate.Library(sql.FieldEQ(FieldDefaultBranch, v))
}

// DefaultBranchNEQ applies the NEQ predicate on the "default_branch" field.
func DefaultBranchNEQ(v string) predicate.Library {
	return predicate.Library(sql.FieldNEQ(FieldDefaultBranch, v))
}

// DefaultBranchIn applies the In predicate on the "default_branch" field.
func DefaultBranchIn(vs ...string) predicate.Library {
	return predicate.Library(sql.FieldIn(FieldDefaultBranch, vs...))
}

// DefaultBranchNotIn applies the NotIn predicate on the "default_branch" field.
func DefaultBranchNotIn(vs ...string) predicate.Library {
	return predicate.Library(sql.FieldNotIn(FieldDefaultBranch, vs...))
}

// DefaultBranchGT applies the GT predicate on the "default_branch" field.
func DefaultBranchGT(v string) predicate.Library {
	return predicate.Library(sql.FieldGT(FieldDefaultBranch, v))
}

// DefaultBranchGTE applies the GTE predicate on the "default_branch" field.
func DefaultBranchGTE(v string) predicate.Library {
	return predicate.Library(sql.FieldGTE(FieldDefaultBranch, v))
}

// DefaultBranchLT applies the LT predicate on the "default_branch" field.
func DefaultBranchLT(v string) predicate.Library {
	return predicate.Library(sql.FieldLT(FieldDefaultBranch, v))
}

// DefaultBranchLTE applies the LTE predicate on the "default_branch" field.
func DefaultBranchLTE(v string) predicate.Library {
	return predicate.Library(sql.FieldLTE(FieldDefaultBranch, v))
}

// DefaultBranchContains applies the Contains predicate on the "default_branch" field.
func DefaultBranchContains(v string) predicate.Library {
	return predicate.Library(sql.FieldContains(FieldDefaultBranch, v))
}

// DefaultBranchHasPrefix applies the HasPrefix predicate on the "default_branch" field.
func DefaultBranchHasPrefix(v string) predicate.Library {
	return predicate.Library(sql.FieldHasPrefix(FieldDefaultBranch, v))
}

// DefaultBranchHasSuffix applies the HasSuffix predicate on the "default_branch" field.
func DefaultBranchHasSuffix(v string) predicate.Library {
	return predicate.Library(sql.FieldHasSuffix(FieldDefaultBranch, v))
}

// DefaultBranchEqualFold applies the EqualFold predicate on the "default_branch" field.
func DefaultBranchEqualFold(v string) predicate.Library {
	return predicate.Library(sql.FieldEqualFold(FieldDefaultBranch, v))
}

// DefaultBranchContainsFold applies the ContainsFold predicate on the "default_branch" field.
func DefaultBranchContainsFold(v string) predicate.Library {
	return predicate.Library(sql.FieldContainsFold(FieldDefaultBranch, v))
}

// LastCommitShaEQ applies the EQ predicate on the "last_commit_sha" field.
func LastCommitShaEQ(v string) predicate.Library {
	return predicate.Library(sql.FieldEQ(FieldLastCommitSha, v))
}

// LastCommitShaNEQ applies the NEQ predicate on the "last_commit_sha" field.
func LastCommitShaNEQ(v string) predicate.Library {
	return predicate.Library(sql.FieldNEQ(FieldLastCommitSha, v))
}

// LastCommitShaIn applies the In predicate on the "last_commit_sha" field.
func LastCommitShaIn(vs ...string) predicate.Library {
	return predicate.Library(sql.FieldIn(FieldLastCommitSha, vs...))
}

// LastCommitShaNotIn applies the NotIn predicate on the "last_commit_sha" field.
func LastCommitShaNotIn(vs ...string) predicate.Library {
	return predicate.Library(sql.FieldNotIn(FieldLastCommitSha, vs...))
}

// LastCommitShaGT applies the GT predicate on the "last_commit_sha" field.
func LastCommitShaGT(v string) predicate.Library {
	return predicate.Library(sql.FieldGT(FieldLastCommitSha, v))
}

// LastCommitShaGTE applies the GTE predicate on the "last_commit_sha" field.
func LastCommitShaGTE(v string) predicate.Library {
	return predicate.Library(sql.FieldGTE(FieldLastCommitSha, v))
}

// LastCommitShaLT applies the LT predicate on the "last_commit_sha" field.
func LastCommitShaLT(v string) predicate.Library {
	return predicate.Library(sql.FieldLT(FieldLastCommitSha, v))
}

// LastCommitShaLTE applies the LTE predicate on the "last_commit_sha" field.
func LastCommitShaLTE(v string) predicate.Library {
	return predicate.Library(sql.FieldLTE(FieldLastCommitSha, v))
}

// LastCommitShaContains applies the Contains predicate on the "last_commit_sha" field.
func LastCommitShaContains(v string) predicate.Library {
	return predicate.Library(sql.FieldContains(FieldLastCommitSha, v))
}

// LastCommitShaHasPrefix applies the HasPrefix predicate on the "last_commit_sha" field.
func LastCommitShaHasPrefix(v string) predicate.Library {
	return predicate.Library(sql.FieldHasPrefix(FieldLastCommitSha, v))
}

// LastCommitShaHasSuffix applies the HasSuffix predicate on the "last_commit_sha" field.
func LastCommitShaHasSuffix(v string) predicate.Library {
	return predicate.Library(sql.FieldHasSuffix(FieldLastCommitSha, v))
}

// LastCommitShaIsNil applies the IsNil predicate on the "last_commit_sha" field.
func LastCommitShaIsNil() predicate.Library {
	return predicate.Library(sql.FieldIsNull(FieldLastCommitSha))
}

// LastCommitShaNotNil applies the NotNil predicate on the "last_commit_sha" field.
func LastCommitShaNotNil() predicate.Library {
	return predicate.Library(sql.FieldNotNull(FieldLastCommitSha))
}

// LastCommitShaEqualFold applies the EqualFold predicate on the "last_commit_sha" field.
func LastCommitShaEqualFold(v string) predicate.Library {
	return predicate.Library(sql.FieldEqualFold(FieldLastCommitSha, v))
}

// LastCommitShaContainsFold applies the ContainsFold predicate on the "last_commit_sha" field.
func LastCommitShaContainsFold(v string) predicate.Library {
	return predicate.Library(sql.FieldContainsFold(FieldLastCommitSha, v))
}

// LastTagNameEQ applies the EQ predicate on the "last_tag_name" field.
func LastTagNameEQ(v string) predicate.Library {
	return predicate.Library(sql.FieldEQ(FieldLastTagName, v))
}

// LastTagNameNEQ applies the NEQ predicate on the "last_tag_name" field.
func LastTagNameNEQ(v string) predicate.Library {
	return predicate.Library(sql.FieldNEQ(FieldLastTagName, v))
}

// LastTagNameIn applies the In predicate on the "last_tag_name" field.
func LastTagNameIn(vs ...string) predicate.Library {
	return predicate.Library(sql.FieldIn(FieldLastTagName, vs...))
}

// LastTagNameNotIn applies the NotIn predicate on the "last_tag_name" field.
func LastTagNameNotIn(vs ...string) predicate.Library {
	return predicate.Library(sql.FieldNotIn(FieldLastTagName, vs...))
}

// LastTagNameGT applies the GT predicate on the "last_tag_name" field.
func LastTagNameGT(v string) predicate.Library {
	return predicate.Library(sql.FieldGT(FieldLastTagName, v))
}

// LastTagNameGTE applies the GTE predicate on the "last_tag_name" field.
func LastTagNameGTE(v string) predicate.Library {
	return predicate.Library(sql.FieldGTE(FieldLastTagName, v))
}

// LastTagNameLT applies the LT predicate on the "last_tag_name" field.
func LastTagNameLT(v string) predicate.Library {
	return predicate.Library(sql.FieldLT(FieldLastTagName, v))
}

// LastTagNameLTE applies the LTE predicate on the "last_tag_name" field.
func LastTagNameLTE(v string) predicate.Library {
	return predicate.Library(sql.FieldLTE(FieldLastTagName, v))
}

// LastTagNameContains applies the Contains predicate on the "last_tag_name" field.
func LastTagNameContains(v string) predicate.Library {
	return predicate.Library(sql.FieldContains(FieldLastTagName, v))
}

// LastTagNameHasPrefix applies the HasPrefix predicate on the "last_tag_name" field.
func LastTagNameHasPrefix(v string) predicate.Library {
	return predicate.Library(sql.FieldHasPrefix(FieldLastTagName, v))
}

// LastTagNameHasSuffix applies the HasSuffix predicate on the "last_tag_name" field.
func LastTagNameHasSuffix(v string) predicate.Library {
	return predicate.Library(sql.FieldHasSuffix(FieldLastTagName, v))
}

// LastTagNameIsNil applies the IsNil predicate on the "last_tag_name" field.
func LastTagNameIsNil() predicate.Library {
	return predicate.Library(sql.FieldIsNull(FieldLastTagName))
}

// LastTagNameNotNil applies the NotNil predicate on the "last_tag_name" field.
func LastTagNameNotNil() predicate.Library {
	return predicate.Library(sql.FieldNotNull(FieldLastTagName))
}

// LastTagNameEqualFold applies the EqualFold predicate on the "last_tag_name" field.
func LastTagNameEqualFold(v string) predicate.Library {
	return predicate.Library(sql.FieldEqualFold(FieldLastTagName, v))
}

// LastTagNameContainsFold applies the ContainsFold predicate on the "last_tag_name" field.
func LastTagNameContainsFold(v string) predicate.Library {
	return predicate.Library(sql.FieldContainsFold(FieldLastTagName, v))
}

// LastScannedAtEQ applies the EQ predicate on the "last_scanned_at" field.
func LastScannedAtEQ(v time.Time) predicate.Library {
	return predicate.Library(sql.FieldEQ(FieldLastScannedAt, v))
}

// LastScannedAtNEQ applies the NEQ predicate on the "last_scanned_at" field.
func LastScannedAtNEQ(v time.Time) predicate.Library {
	return predicate.Library(sql.FieldNEQ(FieldLastScannedAt, v))
}

// LastScannedAtIn applies the In predicate on the "last_scanned_at" field.
func LastScannedAtIn(vs ...time.Time) predicate.Library {
	return predicate.Library(sql.FieldIn(FieldLastScannedAt, vs...))
}

// LastScannedAtNotIn applies the NotIn predicate on the "last_scanned_at" field.
func LastScannedAtNotIn(vs ...time.Time) predicate.Library {
	return predicate.Library(sql.FieldNotIn(FieldLastScannedAt, vs...))
}

// LastScannedAtGT applies the GT predicate on the "last_scanned_at" field.
func LastScannedAtGT(v time.Time) predicate.Library {
	return predicate.Library(sql.FieldGT(FieldLastScannedAt, v))
}

// LastScannedAtGTE applies the GTE predicate on the "last_scanned_at" field.
func LastScannedAtGTE(v time.Time) predicate.Library {
	return predicate.Library(sql.FieldGTE(FieldLastScannedAt, v))
}

// LastScannedAtLT applies the LT predicate on the "last_scanned_at" field.
func LastScannedAtLT(v time.Time) predicate.Library {
	return predicate.Library(sql.FieldLT(FieldLastScannedAt, v))
}

// LastScannedAtLTE applies the LTE predicate on the "last_scanned_at" field.
func LastScannedAtLTE(v time.Time) predicate.Library {
	return predicate.Library(sql.FieldLTE(FieldLastScannedAt, v))
}

// LastScannedAtIsNil applies the IsNil predicate on the "last_scanned_at" field.
func LastScannedAtIsNil() predicate.Library {
	return predicate.Library(sql.FieldIsNull(FieldLastScannedAt))
}

// LastScannedAtNotNil applies the NotNil predicate on the "last_scanned_at" field.
func LastScannedAtNotNil() predicate.Library {
	return predicate.Library(sql.FieldNotNull(FieldLastScannedAt))
}

// CollectorHealthEQ applies the EQ predicate on the "collector_health" field.
func CollectorHealthEQ(v CollectorHealth) predicate.Library {
	return predicate.Library(sql.FieldEQ(FieldCollectorHealth, v))
}

// CollectorHealthNEQ applies the NEQ predicate on the "collector_health" field.
func CollectorHealthNEQ(v CollectorHealth) predicate.Library {
	return predicate.Library(sql.FieldNEQ(FieldCollectorHealth, v))
}

// CollectorHealthIn applies the In predicate on the "collector_health" field.
func CollectorHealthIn(vs ...CollectorHealth) predicate.Library {
	return predicate.Library(sql.FieldIn(FieldCollectorHealth, vs...))
}

// CollectorHealthNotIn applies the NotIn predicate on the "collector_health" field.
func CollectorHealthNotIn(vs ...CollectorHealth) predicate.Library {
	return predicate.Library(sql.FieldNotIn(FieldCollectorHealth, vs...))
}

// CollectorDetailIsNil applies the IsNil predicate on the "collector_detail" field.
func CollectorDetailIsNil() predicate.Library {
	return predicate.Library(sql.FieldIsNull(FieldCollectorDetail))
}

// CollectorDetailNotNil applies the NotNil predicate on the "collector_detail" field.
func CollectorDetailNotNil() predicate.Library {
	return predicate.Library(sql.FieldNotNull(FieldCollectorDetail))
}

// CollectorErrorEQ applies the EQ predicate on the "collector_error" field.
func CollectorErrorEQ(v string) predicate.Library {
	return predicate.Library(sql.FieldEQ(FieldCollectorError, v))
}

// CollectorErrorNEQ applies the NEQ predicate on the "collector_error" field.
func CollectorErrorNEQ(v string) predicate.Library {
	return predicate.Library(sql.FieldNEQ(FieldCollectorError, v))
}

// CollectorErrorIn applies the In predicate on the "collector_error" field.
func CollectorErrorIn(vs ...string) predicate.Library {
	return predicate.Library(sql.FieldIn(FieldCollectorError, vs...))
}

// CollectorErrorNotIn applies the NotIn predicate on the "collector_error" field.
func CollectorErrorNotIn(vs ...string) predicate.Library {
	return predicate.Library(sql.FieldNotIn(FieldCollectorError, vs...))
}

// CollectorErrorGT applies the GT predicate on the "collector_error" field.
func CollectorErrorGT(v string) predicate.Library {
	return predicate.Library(sql.FieldGT(FieldCollectorError, v))
}

// CollectorErrorGTE applies the GTE predicate on the "collector_error" field.
func CollectorErrorGTE(v string) predicate.Library {
	return predicate.Library(sql.FieldGTE(FieldCollectorError, v))
}

// CollectorErrorLT applies the LT predicate on the "collector_error" field.
func CollectorErrorLT(v string) predicate.Library {
	return predicate.Library(sql.FieldLT(FieldCollectorError, v))
}

// CollectorErrorLTE applies the LTE predicate on the "collector_error" field.
func CollectorErrorLTE(v string) predicate.Library {
	return predicate.Library(sql.FieldLTE(FieldCollectorError, v))
}

// CollectorErrorContains applies the Contains predicate on the "collector_error" field.
func CollectorErrorContains(v string) predicate.Library {
	return predicate.Library(sql.FieldContains(FieldCollectorError, v))
}

// CollectorErrorHasPrefix applies the HasPrefix predicate on the "collector_error" field.
func CollectorErrorHasPrefix(v string) predicate.Library {
	return predicate.Library(sql.FieldHasPrefix(FieldCollectorError, v))
}

// CollectorErrorHasSuffix applies the HasSuffix predicate on the "collector_error" field.
func CollectorErrorHasSuffix(v string) predicate.Library {
	return predicate.Library(sql.FieldHasSuffix(FieldCollectorError, v))
}

// CollectorErrorIsNil applies the IsNil predicate on the "collector_error" field.
func CollectorErrorIsNil() predicate.Library {
	return predicate.Library(sql.FieldIsNull(FieldCollectorError))
}

// CollectorErrorNotNil applies the NotNil predicate on the "collector_error" field.
func CollectorErrorNotNil() predicate.Library {
	return predicate.Library(sql.FieldNotNull(FieldCollectorError))
}

// CollectorErrorEqualFold applies the EqualFold predicate on the "collector_error" field.
func CollectorErrorEqualFold(v string) predicate.Library {
	return predicate.Library(sql.FieldEqualFold(FieldCollectorError, v))
}

// CollectorErrorContainsFold applies the ContainsFold predicate on the "collector_error" field.
func CollectorErrorContainsFold(v string) predicate.Library {
	return predicate.Library(sql.FieldContainsFold(FieldCollectorError, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Library {
	return predicate.Library(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Library {
	return predicate.Library(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Library {
	return predicate.Library(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Library {
	return predicate.Library(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Library {
	return predicate.Library(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Library {
	return predicate.Library(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Library {
	return predicate.Library(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Library {
	return predicate.Library(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Library {
	return predicate.Library(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Library {
	return predicate.Library(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Library {
	return predicate.Library(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Library {
	return predicate.Library(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Library {
	return predicate.Library(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Library {
	return predicate.Library(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Library {
	return predicate.Library(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Library {
	return predicate.Library(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasEvents applies the HasEdge predicate on the "events" edge.
func HasEvents() predicate.Library {
	return predicate.Library(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEventsWith applies the HasEdge predicate on the "events" edge with a given conditions (other predicates).
func HasEventsWith(preds ...predicate.Event) predicate.Library {
	return predicate.Library(func(s *sql.Selector) {
		step := newEventsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasUpstreamVulns applies the HasEdge predicate on the "upstream_vulns" edge.
func HasUpstreamVulns() predicate.Library {
	return predicate.Library(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, UpstreamVulnsTable, UpstreamVulnsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUpstreamVulnsWith applies the HasEdge predicate on the "upstream_vulns" edge with a given conditions (other predicates).
func HasUpstreamVulnsWith(preds ...predicate.UpstreamVuln) predicate.Library {
	return predicate.Library(func(s *sql.Selector) {
		step := newUpstreamVulnsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasDependencies applies the HasEdge predicate on the "dependencies" edge.
func HasDependencies() predicate.Library {
	return predicate.Library(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, DependenciesTable, DependenciesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDependenciesWith applies the HasEdge predicate on the "dependencies" edge with a given conditions (other predicates).
func HasDependenciesWith(preds ...predicate.ProjectDependency) predicate.Library {
	return predicate.Library(func(s *sql.Selector) {
		step := newDependenciesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Library) predicate.Library {
	return predicate.Library(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Library) predicate.Library {
	return predicate.Library(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Library) predicate.Library {
	return predicate.Library(sql.NotPredicates(p))
}
