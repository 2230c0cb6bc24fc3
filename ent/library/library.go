// Code generated by ent, DO NOT EDIT.

package library

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the library type in the database.
	Label = "library"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldRepoURL holds the string denoting the repo_url field in the database.
	FieldRepoURL = "repo_url"
	// FieldPlatform holds the string denoting the platform field in the database.
	FieldPlatform = "platform"
	// FieldEcosystem holds the string denoting the ecosystem field in the database.
	FieldEcosystem = "ecosystem"
	// FieldDefaultBranch holds the string denoting the default_branch field in the database.
	FieldDefaultBranch = "default_branch"
	// FieldLastCommitSha holds the string denoting the last_commit_sha field in the database.
	FieldLastCommitSha = "last_commit_sha"
	// FieldLastTagName holds the string denoting the last_tag_name field in the database.
	FieldLastTagName = "last_tag_name"
	// FieldLastScannedAt holds the string denoting the last_scanned_at field in the database.
	FieldLastScannedAt = "last_scanned_at"
	// FieldCollectorHealth holds the string denoting the collector_health field in the database.
	FieldCollectorHealth = "collector_health"
	// FieldCollectorDetail holds the string denoting the collector_detail field in the database.
	FieldCollectorDetail = "collector_detail"
	// FieldCollectorError holds the string denoting the collector_error field in the database.
	FieldCollectorError = "collector_error"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeEvents holds the string denoting the events edge name in mutations.
	EdgeEvents = "events"
	// EdgeUpstreamVulns holds the string denoting the upstream_vulns edge name in mutations.
	EdgeUpstreamVulns = "upstream_vulns"
	// EdgeDependencies holds the string denoting the dependencies edge name in mutations.
	EdgeDependencies = "dependencies"
	// Table holds the table name of the library in the database.
	Table = "libraries"
	// EventsTable is the table that holds the events relation/edge.
	EventsTable = "events"
	// EventsInverseTable is the table name for the Event entity.
	// It exists in this package in order to avoid circular dependency with the "event" package.
	EventsInverseTable = "events"
	// EventsColumn is the table column denoting the events relation/edge.
	EventsColumn = "library_id"
	// UpstreamVulnsTable is the table that holds the upstream_vulns relation/edge.
	UpstreamVulnsTable = "upstream_vulns"
	// UpstreamVulnsInverseTable is the table name for the UpstreamVuln entity.
	// It exists in this package in order to avoid circular dependency with the "upstreamvuln" package.
	UpstreamVulnsInverseTable = "upstream_vulns"
	// UpstreamVulnsColumn is the table column denoting the upstream_vulns relation/edge.
	UpstreamVulnsColumn = "library_id"
	// DependenciesTable is the table that holds the dependencies relation/edge.
	DependenciesTable = "project_dependencies"
	// DependenciesInverseTable is the table name for the ProjectDependency entity.
	// It exists in this package in order to avoid circular dependency with the "projectdependency" package.
	DependenciesInverseTable = "project_dependencies"
	// DependenciesColumn is the table column denoting the dependencies relation/edge.
	DependenciesColumn = "library_id"
)

// Columns holds all SQL columns for library fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldRepoURL,
	FieldPlatform,
	FieldEcosystem,
	FieldDefaultBranch,
	FieldLastCommitSha,
	FieldLastTagName,
	FieldLastScannedAt,
	FieldCollectorHealth,
	FieldCollectorDetail,
	FieldCollectorError,
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
	// DefaultPlatform holds the default value on creation for the "platform" field.
	DefaultPlatform string
	// DefaultDefaultBranch holds the default value on creation for the "default_branch" field.
	DefaultDefaultBranch string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() string
)

// CollectorHealth defines the type for the "collector_health" enum field.
type CollectorHealth string

// CollectorHealthHealthy is the default value of the CollectorHealth enum.
const DefaultCollectorHealth = CollectorHealthHealthy

// CollectorHealth values.
const (
	CollectorHealthHealthy   CollectorHealth = "healthy"
	CollectorHealthUnhealthy CollectorHealth = "unhealthy"
)

func (ch CollectorHealth) String() string {
	return string(ch)
}

// CollectorHealthValidator is a validator for the "collector_health" field enum values. It is called by the builders before save.
func CollectorHealthValidator(ch CollectorHealth) error {
	switch ch {
	case CollectorHealthHealthy, CollectorHealthUnhealthy:
		return nil
	default:
		return fmt.Errorf("library: invalid enum value for collector_health field: %q", ch)
	}
}

// OrderOption defines the ordering options for the Library queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByRepoURL orders the results by the repo_url field.
func ByRepoURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRepoURL, opts...).ToFunc()
}

// ByPlatform orders the results by the platform field.
func ByPlatform(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlatform, opts...).ToFunc()
}

// ByEcosystem orders the results by the ecosystem field.
func ByEcosystem(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEcosystem, opts...).ToFunc()
}

// ByDefaultBranch orders the results by the default_branch field.
func ByDefaultBranch(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDefaultBranch, opts...).ToFunc()
}

// ByLastCommitSha orders the results by the last_commit_sha field.
func ByLastCommitSha(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastCommitSha, opts...).ToFunc()
}

// ByLastTagName orders the results by the last_tag_name field.
func ByLastTagName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastTagName, opts...).ToFunc()
}

// ByLastScannedAt orders the results by the last_scanned_at field.
func ByLastScannedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastScannedAt, opts...).ToFunc()
}

// ByCollectorHealth orders the results by the collector_health field.
func ByCollectorHealth(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCollectorHealth, opts...).ToFunc()
}

// ByCollectorError orders the results by the collector_error field.
func ByCollectorError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCollectorError, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByEventsCount orders the results by events count.
func ByEventsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newEventsStep(), opts...)
	}
}

// ByEvents orders the results by events terms.
func ByEvents(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEventsStep(), append([]sql.OrderTerm{term}, terms...)...)
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

// ByDependenciesCount orders the results by dependencies count.
func ByDependenciesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newDependenciesStep(), opts...)
	}
}

// ByDependencies orders the results by dependencies terms.
func ByDependencies(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDependenciesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newEventsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EventsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
	)
}
func newUpstreamVulnsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(UpstreamVulnsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, UpstreamVulnsTable, UpstreamVulnsColumn),
	)
}
func newDependenciesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DependenciesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, DependenciesTable, DependenciesColumn),
	)
}
