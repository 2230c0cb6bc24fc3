// Code generated by ent, DO NOT EDIT.

package event

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the event type in the database.
	Label = "event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldLibraryID holds the string denoting the library_id field in the database.
	FieldLibraryID = "library_id"
	// FieldType holds the string denoting the type field in the database.
	FieldType = "type"
	// FieldRef holds the string denoting the ref field in the database.
	FieldRef = "ref"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldMessage holds the string denoting the message field in the database.
	FieldMessage = "message"
	// FieldAuthor holds the string denoting the author field in the database.
	FieldAuthor = "author"
	// FieldRelatedIssueRef holds the string denoting the related_issue_ref field in the database.
	FieldRelatedIssueRef = "related_issue_ref"
	// FieldRelatedPrRef holds the string denoting the related_pr_ref field in the database.
	FieldRelatedPrRef = "related_pr_ref"
	// FieldRelatedCommitSha holds the string denoting the related_commit_sha field in the database.
	FieldRelatedCommitSha = "related_commit_sha"
	// FieldClassification holds the string denoting the classification field in the database.
	FieldClassification = "classification"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldIsBugfix holds the string denoting the is_bugfix field in the database.
	FieldIsBugfix = "is_bugfix"
	// FieldOccurredAt holds the string denoting the occurred_at field in the database.
	FieldOccurredAt = "occurred_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeLibrary holds the string denoting the library edge name in mutations.
	EdgeLibrary = "library"
	// EdgeUpstreamVulns holds the string denoting the upstream_vulns edge name in mutations.
	EdgeUpstreamVulns = "upstream_vulns"
	// Table holds the table name of the event in the database.
	Table = "events"
	// LibraryTable is the table that holds the library relation/edge.
	LibraryTable = "events"
	// LibraryInverseTable is the table name for the Library entity.
	// It exists in this package in order to avoid circular dependency with the "library" package.
	LibraryInverseTable = "libraries"
	// LibraryColumn is the table column denoting the library relation/edge.
	LibraryColumn = "library_id"
	// UpstreamVulnsTable is the table that holds the upstream_vulns relation/edge.
	UpstreamVulnsTable = "upstream_vulns"
	// UpstreamVulnsInverseTable is the table name for the UpstreamVuln entity.
	// It exists in this package in order to avoid circular dependency with the "upstreamvuln" package.
	UpstreamVulnsInverseTable = "upstream_vulns"
	// UpstreamVulnsColumn is the table column denoting the upstream_vulns relation/edge.
	UpstreamVulnsColumn = "event_id"
)

// Columns holds all SQL columns for event fields.
var Columns = []string{
	FieldID,
	FieldLibraryID,
	FieldType,
	FieldRef,
	FieldTitle,
	FieldMessage,
	FieldAuthor,
	FieldRelatedIssueRef,
	FieldRelatedPrRef,
	FieldRelatedCommitSha,
	FieldClassification,
	FieldConfidence,
	FieldIsBugfix,
	FieldOccurredAt,
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
	// DefaultIsBugfix holds the default value on creation for the "is_bugfix" field.
	DefaultIsBugfix bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() string
)

// Type defines the type for the "type" enum field.
type Type string

// Type values.
const (
	TypeCommit   Type = "commit"
	TypePrMerge  Type = "pr_merge"
	TypeTag      Type = "tag"
	TypeBugIssue Type = "bug_issue"
)

func (_type Type) String() string {
	return string(_type)
}

// TypeValidator is a validator for the "type" field enum values. It is called by the builders before save.
func TypeValidator(_type Type) error {
	switch _type {
	case TypeCommit, TypePrMerge, TypeTag, TypeBugIssue:
		return nil
	default:
		return fmt.Errorf("event: invalid enum value for type field: %q", _type)
	}
}

// Classification defines the type for the "classification" enum field.
type Classification string

// Classification values.
const (
	ClassificationSecurityBugfix Classification = "security_bugfix"
	ClassificationNormalBugfix   Classification = "normal_bugfix"
	ClassificationRefactor       Classification = "refactor"
	ClassificationFeature        Classification = "feature"
	ClassificationOther          Classification = "other"
)

func (c Classification) String() string {
	return string(c)
}

// ClassificationValidator is a validator for the "classification" field enum values. It is called by the builders before save.
func ClassificationValidator(c Classification) error {
	switch c {
	case ClassificationSecurityBugfix, ClassificationNormalBugfix, ClassificationRefactor, ClassificationFeature, ClassificationOther:
		return nil
	default:
		return fmt.Errorf("event: invalid enum value for classification field: %q", c)
	}
}

// OrderOption defines the ordering options for the Event queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByLibraryID orders the results by the library_id field.
func ByLibraryID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLibraryID, opts...).ToFunc()
}

// ByType orders the results by the type field.
func ByType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldType, opts...).ToFunc()
}

// ByRef orders the results by the ref field.
func ByRef(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRef, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByMessage orders the results by the message field.
func ByMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessage, opts...).ToFunc()
}

// ByAuthor orders the results by the author field.
func ByAuthor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAuthor, opts...).ToFunc()
}

// ByRelatedIssueRef orders the results by the related_issue_ref field.
func ByRelatedIssueRef(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRelatedIssueRef, opts...).ToFunc()
}

// ByRelatedPrRef orders the results by the related_pr_ref field.
func ByRelatedPrRef(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRelatedPrRef, opts...).ToFunc()
}

// ByRelatedCommitSha orders the results by the related_commit_sha field.
func ByRelatedCommitSha(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRelatedCommitSha, opts...).ToFunc()
}

// ByClassification orders the results by the classification field.
func ByClassification(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClassification, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByIsBugfix orders the results by the is_bugfix field.
func ByIsBugfix(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsBugfix, opts...).ToFunc()
}

// ByOccurredAt orders the results by the occurred_at field.
func ByOccurredAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOccurredAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByLibraryField orders the results by library field.
func ByLibraryField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newLibraryStep(), sql.OrderByField(field, opts...))
	}
}

// ByUpstreamVulnsCount orders the results by upstream_vulns count.
func ByUpstreamVulnsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newUpstreamVulnsStep(), opts...)
	}
}

// ByUpstreamVulns orders the results by upstream_vulns terms.
func ByUpstreamVulns(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newUpstreamVulnsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newLibraryStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(LibraryInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, LibraryTable, LibraryColumn),
	)
}
func newUpstreamVulnsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(UpstreamVulnsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, UpstreamVulnsTable, UpstreamVulnsColumn),
	)
}
