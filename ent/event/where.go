// Code generated by ent, DO NOT EDIT.

package event

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/vulnsentinel/vulnsentinel/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldID, id))
}

// LibraryID applies equality check predicate on the "library_id" field. It's identical to LibraryIDEQ.
func LibraryID(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldLibraryID, v))
}

// Ref applies equality check predicate on the "ref" field. It's identical to RefEQ.
func Ref(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldRef, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldTitle, v))
}

// Message applies equality check predicate on the "message" field. It's identical to MessageEQ.
func Message(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldMessage, v))
}

// Author applies equality check predicate on the "author" field. It's identical to AuthorEQ.
func Author(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldAuthor, v))
}

// RelatedIssueRef applies equality check predicate on the "related_issue_ref" field. It's identical to RelatedIssueRefEQ.
func RelatedIssueRef(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldRelatedIssueRef, v))
}

// RelatedPrRef applies equality check predicate on the "related_pr_ref" field. It's identical to RelatedPrRefEQ.
func RelatedPrRef(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldRelatedPrRef, v))
}

// RelatedCommitSha applies equality check predicate on the "related_commit_sha" field. It's identical to RelatedCommitShaEQ.
func RelatedCommitSha(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldRelatedCommitSha, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldConfidence, v))
}

// IsBugfix applies equality check predicate on the "is_bugfix" field. It's identical to IsBugfixEQ.
func IsBugfix(v bool) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldIsBugfix, v))
}

// OccurredAt applies equality check predicate on the "occurred_at" field. It's identical to OccurredAtEQ.
func OccurredAt(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldOccurredAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldUpdatedAt, v))
}

// LibraryIDEQ applies the EQ predicate on the "library_id" field.
func LibraryIDEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldLibraryID, v))
}

// LibraryIDNEQ applies the NEQ predicate on the "library_id" field.
func LibraryIDNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldLibraryID, v))
}

// LibraryIDIn applies the In predicate on the "library_id" field.
func LibraryIDIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldLibraryID, vs...))
}

// LibraryIDNotIn applies the NotIn predicate on the "library_id" field.
func LibraryIDNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldLibraryID, vs...))
}

// LibraryIDGT applies the GT predicate on the "library_id" field.
func LibraryIDGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldLibraryID, v))
}

// LibraryIDGTE applies the GTE predicate on the "library_id" field.
func LibraryIDGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldLibraryID, v))
}

// LibraryIDLT applies the LT predicate on the "library_id" field.
func LibraryIDLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldLibraryID, v))
}

// LibraryIDLTE applies the LTE predicate on the "library_id" field.
func LibraryIDLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldLibraryID, v))
}

// LibraryIDContains applies the Contains predicate on the "library_id" field.
func LibraryIDContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldLibraryID, v))
}

// LibraryIDHasPrefix applies the HasPrefix predicate on the "library_id" field.
func LibraryIDHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldLibraryID, v))
}

// LibraryIDHasSuffix applies the HasSuffix predicate on the "library_id" field.
func LibraryIDHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldLibraryID, v))
}

// LibraryIDEqualFold applies the EqualFold predicate on the "library_id" field.
func LibraryIDEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldLibraryID, v))
}

// LibraryIDContainsFold applies the ContainsFold predicate on the "library_id" field.
func LibraryIDContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldLibraryID, v))
}

// TypeEQ applies the EQ predicate on the "type" field.
func TypeEQ(v Type) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldType, v))
}

// TypeNEQ applies the NEQ predicate on the "type" field.
func TypeNEQ(v Type) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldType, v))
}

// TypeIn applies the In predicate on the "type" field.
func TypeIn(vs ...Type) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldType, vs...))
}

// TypeNotIn applies the NotIn predicate on the "type" field.
func TypeNotIn(vs ...Type) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldType, vs...))
}

// RefEQ applies the EQ predicate on the "ref" field.
func RefEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldRef, v))
}

// RefNEQ applies the NEQ predicate on the "ref" field.
func RefNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldRef, v))
}

// RefIn applies the In predicate on the "ref" field.
func RefIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldRef, vs...))
}

// RefNotIn applies the NotIn predicate on the "ref" field.
func RefNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldRef, vs...))
}

// RefGT applies the GT predicate on the "ref" field.
func RefGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldRef, v))
}

// RefGTE applies the GTE predicate on the "ref" field.
func RefGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldRef, v))
}

// RefLT applies the LT predicate on the "ref" field.
func RefLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldRef, v))
}

// RefLTE applies the LTE predicate on the "ref" field.
func RefLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldRef, v))
}

// RefContains applies the Contains predicate on the "ref" field.
func RefContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldRef, v))
}

// RefHasPrefix applies the HasPrefix predicate on the "ref" field.
func RefHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldRef, v))
}

// RefHasSuffix applies the HasSuffix predicate on the "ref" field.
func RefHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldRef, v))
}

// RefEqualFold applies the EqualFold predicate on the "ref" field.
func RefEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldRef, v))
}

// RefContainsFold applies the ContainsFold predicate on the "ref" field.
func RefContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldRef, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldTitle, v))
}

// MessageEQ applies the EQ predicate on the "message" field.
func MessageEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldMessage, v))
}

// MessageNEQ applies the NEQ predicate on the "message" field.
func MessageNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldMessage, v))
}

// MessageIn applies the In predicate on the "message" field.
func MessageIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldMessage, vs...))
}

// MessageNotIn applies the NotIn predicate on the "message" field.
func MessageNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldMessage, vs...))
}

// MessageGT applies the GT predicate on the "message" field.
func MessageGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldMessage, v))
}

// MessageGTE applies the GTE predicate on the "message" field.
func MessageGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldMessage, v))
}

// MessageLT applies the LT predicate on the "message" field.
func MessageLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldMessage, v))
}

// MessageLTE applies the LTE predicate on the "message" field.
func MessageLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldMessage, v))
}

// MessageContains applies the Contains predicate on the "message" field.
func MessageContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldMessage, v))
}

// MessageHasPrefix applies the HasPrefix predicate on the "message" field.
func MessageHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldMessage, v))
}

// MessageHasSuffix applies the HasSuffix predicate on the "message" field.
func MessageHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldMessage, v))
}

// MessageIsNil applies the IsNil predicate on the "message" field.
func MessageIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldMessage))
}

// MessageNotNil applies the NotNil predicate on the "message" field.
func MessageNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldMessage))
}

// MessageEqualFold applies the EqualFold predicate on the "message" field.
func MessageEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldMessage, v))
}

// MessageContainsFold applies the ContainsFold predicate on the "message" field.
func MessageContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldMessage, v))
}

// AuthorEQ applies the EQ predicate on the "author" field.
func AuthorEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldAuthor, v))
}

// AuthorNEQ applies the NEQ predicate on the "author" field.
func AuthorNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldAuthor, v))
}

// AuthorIn applies the In predicate on the "author" field.
func AuthorIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldAuthor, vs...))
}

// AuthorNotIn applies the NotIn predicate on the "author" field.
func AuthorNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldAuthor, vs...))
}

// AuthorGT applies the GT predicate on the "author" field.
func AuthorGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldAuthor, v))
}

// AuthorGTE applies the GTE predicate on the "author" field.
func AuthorGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldAuthor, v))
}

// AuthorLT applies the LT predicate on the "author" field.
func AuthorLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldAuthor, v))
}

// AuthorLTE applies the LTE predicate on the "author" field.
func AuthorLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldAuthor, v))
}

// AuthorContains applies the Contains predicate on the "author" field.
func AuthorContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldAuthor, v))
}

// AuthorHasPrefix applies the HasPrefix predicate on the "author" field.
func AuthorHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldAuthor, v))
}

// AuthorHasSuffix applies the HasSuffix predicate on the "author" field.
func AuthorHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldAuthor, v))
}

// AuthorIsNil applies the IsNil predicate on the "author" field.
func AuthorIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldAuthor))
}

// AuthorNotNil applies the NotNil predicate on the "author" field.
func AuthorNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldAuthor))
}

// AuthorEqualFold applies the EqualFold predicate on the "author" field.
func AuthorEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldAuthor, v))
}

// AuthorContainsFold applies the ContainsFold predicate on the "author" field.
func AuthorContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldAuthor, v))
}

// RelatedIssueRefEQ applies the EQ predicate on the "related_issue_ref" field.
func RelatedIssueRefEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldRelatedIssueRef, v))
}

// RelatedIssueRefNEQ applies the NEQ predicate on the "related_issue_ref" field.
func RelatedIssueRefNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldRelatedIssueRef, v))
}

// RelatedIssueRefIn applies the In predicate on the "related_issue_ref" field.
func RelatedIssueRefIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldRelatedIssueRef, vs...))
}

// RelatedIssueRefNotIn applies the NotIn predicate on the "related_issue_ref" field.
func RelatedIssueRefNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldRelatedIssueRef, vs...))
}

// RelatedIssueRefGT applies the GT predicate on the "related_issue_ref" field.
func RelatedIssueRefGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldRelatedIssueRef, v))
}

// RelatedIssueRefGTE applies the GTE predicate on the "related_issue_ref" field.
func RelatedIssueRefGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldRelatedIssueRef, v))
}

// RelatedIssueRefLT applies the LT predicate on the "related_issue_ref" field.
func RelatedIssueRefLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldRelatedIssueRef, v))
}

// RelatedIssueRefLTE applies the LTE predicate on the "related_issue_ref" field.
func RelatedIssueRefLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldRelatedIssueRef, v))
}

// RelatedIssueRefContains applies the Contains predicate on the "related_issue_ref" field.
func RelatedIssueRefContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldRelatedIssueRef, v))
}

// RelatedIssueRefHasPrefix applies the HasPrefix predicate on the "related_issue_ref" field.
func RelatedIssueRefHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldRelatedIssueRef, v))
}

// RelatedIssueRefHasSuffix applies the HasSuffix predicate on the "related_issue_ref" field.
func RelatedIssueRefHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldRelatedIssueRef, v))
}

// RelatedIssueRefIsNil applies the IsNil predicate on the "related_issue_ref" field.
func RelatedIssueRefIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldRelatedIssueRef))
}

// RelatedIssueRefNotNil applies the NotNil predicate on the "related_issue_ref" field.
func RelatedIssueRefNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldRelatedIssueRef))
}

// RelatedIssueRefEqualFold applies the EqualFold predicate on the "related_issue_ref" field.
func RelatedIssueRefEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldRelatedIssueRef, v))
}

// RelatedIssueRefContainsFold applies the ContainsFold predicate on the "related_issue_ref" field.
func RelatedIssueRefContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldRelatedIssueRef, v))
}

// RelatedPrRefEQ applies the EQ predicate on the "related_pr_ref" field.
func RelatedPrRefEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldRelatedPrRef, v))
}

// RelatedPrRefNEQ applies the NEQ predicate on the "related_pr_ref" field.
func RelatedPrRefNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldRelatedPrRef, v))
}

// RelatedPrRefIn applies the In predicate on the "related_pr_ref" field.
func RelatedPrRefIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldRelatedPrRef, vs...))
}

// RelatedPrRefNotIn applies the NotIn predicate on the "related_pr_ref" field.
func RelatedPrRefNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldRelatedPrRef, vs...))
}

// RelatedPrRefGT applies the GT predicate on the "related_pr_ref" field.
func RelatedPrRefGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldRelatedPrRef, v))
}

// RelatedPrRefGTE applies the GTE predicate on the "related_pr_ref" field.
func RelatedPrRefGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldRelatedPrRef, v))
}

// RelatedPrRefLT applies the LT predicate on the "related_pr_ref" field.
func RelatedPrRefLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldRelatedPrRef, v))
}

// RelatedPrRefLTE applies the LTE predicate on the "related_pr_ref" field.
func RelatedPrRefLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldRelatedPrRef, v))
}

// RelatedPrRefContains applies the Contains predicate on the "related_pr_ref" field.
func RelatedPrRefContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldRelatedPrRef, v))
}

// RelatedPrRefHasPrefix applies the HasPrefix predicate on the "related_pr_ref" field.
func RelatedPrRefHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldRelatedPrRef, v))
}

// RelatedPrRefHasSuffix applies the HasSuffix predicate on the "related_pr_ref" field.
func RelatedPrRefHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldRelatedPrRef, v))
}

// RelatedPrRefIsNil applies the IsNil predicate on the "related_pr_ref" field.
func RelatedPrRefIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldRelatedPrRef))
}

// RelatedPrRefNotNil applies the NotNil predicate on the "related_pr_ref" field.
func RelatedPrRefNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldRelatedPrRef))
}

// RelatedPrRefEqualFold applies the EqualFold predicate on the "related_pr_ref" field.
func RelatedPrRefEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldRelatedPrRef, v))
}

// RelatedPrRefContainsFold applies the ContainsFold predicate on the "related_pr_ref" field.
func RelatedPrRefContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldRelatedPrRef, v))
}

// RelatedCommitShaEQ applies the EQ predicate on the "related_commit_sha" field.
func RelatedCommitShaEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldRelatedCommitSha, v))
}

// RelatedCommitShaNEQ applies the NEQ predicate on the "related_commit_sha" field.
func RelatedCommitShaNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldRelatedCommitSha, v))
}

// RelatedCommitShaIn applies the In predicate on the "related_commit_sha" field.
func RelatedCommitShaIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldRelatedCommitSha, vs...))
}

// RelatedCommitShaNotIn applies the NotIn predicate on the "related_commit_sha" field.
func RelatedCommitShaNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldRelatedCommitSha, vs...))
}

// RelatedCommitShaGT applies the GT predicate on the "related_commit_sha" field.
func RelatedCommitShaGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldRelatedCommitSha, v))
}

// RelatedCommitShaGTE applies the GTE predicate on the "related_commit_sha" field.
func RelatedCommitShaGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldRelatedCommitSha, v))
}

// RelatedCommitShaLT applies the LT predicate on the "related_commit_sha" field.
func RelatedCommitShaLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldRelatedCommitSha, v))
}

// RelatedCommitShaLTE applies the LTE predicate on the "related_commit_sha" field.
func RelatedCommitShaLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldRelatedCommitSha, v))
}

// RelatedCommitShaContains applies the Contains predicate on the "related_commit_sha" field.
func RelatedCommitShaContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldRelatedCommitSha, v))
}

// RelatedCommitShaHasPrefix applies the HasPrefix predicate on the "related_commit_sha" field.
func RelatedCommitShaHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldRelatedCommitSha, v))
}

// RelatedCommitShaHasSuffix applies the HasSuffix predicate on the "related_commit_sha" field.
func RelatedCommitShaHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldRelatedCommitSha, v))
}

// RelatedCommitShaIsNil applies the IsNil predicate on the "related_commit_sha" field.
func RelatedCommitShaIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldRelatedCommitSha))
}

// RelatedCommitShaNotNil applies the NotNil predicate on the "related_commit_sha" field.
func RelatedCommitShaNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldRelatedCommitSha))
}

// RelatedCommitShaEqualFold applies the EqualFold predicate on the "related_commit_sha" field.
func RelatedCommitShaEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldRelatedCommitSha, v))
}

// RelatedCommitShaContainsFold applies the ContainsFold predicate on the "related_commit_sha" field.
func RelatedCommitShaContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldRelatedCommitSha, v))
}

// ClassificationEQ applies the EQ predicate on the "classification" field.
func ClassificationEQ(v Classification) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldClassification, v))
}

// ClassificationNEQ applies the NEQ predicate on the "classification" field.
func ClassificationNEQ(v Classification) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldClassification, v))
}

// ClassificationIn applies the In predicate on the "classification" field.
func ClassificationIn(vs ...Classification) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldClassification, vs...))
}

// ClassificationNotIn applies the NotIn predicate on the "classification" field.
func ClassificationNotIn(vs ...Classification) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldClassification, vs...))
}

// ClassificationIsNil applies the IsNil predicate on the "classification" field.
func ClassificationIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldClassification))
}

// ClassificationNotNil applies the NotNil predicate on the "classification" field.
func ClassificationNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldClassification))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldConfidence, v))
}

// ConfidenceIsNil applies the IsNil predicate on the "confidence" field.
func ConfidenceIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldConfidence))
}

// ConfidenceNotNil applies the NotNil predicate on the "confidence" field.
func ConfidenceNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldConfidence))
}

// IsBugfixEQ applies the EQ predicate on the "is_bugfix" field.
func IsBugfixEQ(v bool) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldIsBugfix, v))
}

// IsBugfixNEQ applies the NEQ predicate on the "is_bugfix" field.
func IsBugfixNEQ(v bool) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldIsBugfix, v))
}

// OccurredAtEQ applies the EQ predicate on the "occurred_at" field.
func OccurredAtEQ(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldOccurredAt, v))
}

// OccurredAtNEQ applies the NEQ predicate on the "occurred_at" field.
func OccurredAtNEQ(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldOccurredAt, v))
}

// OccurredAtIn applies the In predicate on the "occurred_at" field.
func OccurredAtIn(vs ...time.Time) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldOccurredAt, vs...))
}

// OccurredAtNotIn applies the NotIn predicate on the "occurred_at" field.
func OccurredAtNotIn(vs ...time.Time) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldOccurredAt, vs...))
}

// OccurredAtGT applies the GT predicate on the "occurred_at" field.
func OccurredAtGT(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldOccurredAt, v))
}

// OccurredAtGTE applies the GTE predicate on the "occurred_at" field.
func OccurredAtGTE(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldOccurredAt, v))
}

// OccurredAtLT applies the LT predicate on the "occurred_at" field.
func OccurredAtLT(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldOccurredAt, v))
}

// OccurredAtLTE applies the LTE predicate on the "occurred_at" field.
func OccurredAtLTE(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldOccurredAt, v))
}

// OccurredAtIsNil applies the IsNil predicate on the "occurred_at" field.
func OccurredAtIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldOccurredAt))
}

// OccurredAtNotNil applies the NotNil predicate on the "occurred_at" field.
func OccurredAtNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldOccurredAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasLibrary applies the HasEdge predicate on the "library" edge.
func HasLibrary() predicate.Event {
	return predicate.Event(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, LibraryTable, LibraryColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLibraryWith applies the HasEdge predicate on the "library" edge with a given conditions (other predicates).
func HasLibraryWith(preds ...predicate.Library) predicate.Event {
	return predicate.Event(func(s *sql.Selector) {
		step := newLibraryStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasUpstreamVulns applies the HasEdge predicate on the "upstream_vulns" edge.
func HasUpstreamVulns() predicate.Event {
	return predicate.Event(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, UpstreamVulnsTable, UpstreamVulnsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUpstreamVulnsWith applies the HasEdge predicate on the "upstream_vulns" edge with a given conditions (other predicates).
func HasUpstreamVulnsWith(preds ...predicate.UpstreamVuln) predicate.Event {
	return predicate.Event(func(s *sql.Selector) {
		step := newUpstreamVulnsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Event) predicate.Event {
	return predicate.Event(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Event) predicate.Event {
	return predicate.Event(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Event) predicate.Event {
	return predicate.Event(sql.NotPredicates(p))
}
