// Code generated by ent, DO NOT EDIT.

package project

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the project type in the database.
	Label = "project"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldOrganization holds the string denoting the organization field in the database.
	FieldOrganization = "organization"
	// FieldRepoURL holds the string denoting the repo_url field in the database.
	FieldRepoURL = "repo_url"
	// FieldDefaultBranch holds the string denoting the default_branch field in the database.
	FieldDefaultBranch = "default_branch"
	// FieldCurrentVersion holds the string denoting the current_version field in the database.
	FieldCurrentVersion = "current_version"
	// FieldPinnedRef holds the string denoting the pinned_ref field in the database.
	FieldPinnedRef = "pinned_ref"
	// FieldAutoSyncDeps holds the string denoting the auto_sync_deps field in the database.
	FieldAutoSyncDeps = "auto_sync_deps"
	// FieldScanStatus holds the string denoting the scan_status field in the database.
	FieldScanStatus = "scan_status"
	// FieldScanError holds the string denoting the scan_error field in the database.
	FieldScanError = "scan_error"
	// FieldLastScannedAt holds the string denoting the last_scanned_at field in the database.
	FieldLastScannedAt = "last_scanned_at"
	// FieldContactEmail holds the string denoting the contact_email field in the database.
	FieldContactEmail = "contact_email"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeDependencies holds the string denoting the dependencies edge name in mutations.
	EdgeDependencies = "dependencies"
	// EdgeClientVulns holds the string denoting the client_vulns edge name in mutations.
	EdgeClientVulns = "client_vulns"
	// Table holds the table name of the project in the database.
	Table = "projects"
	// DependenciesTable is the table that holds the dependencies relation/edge.
	DependenciesTable = "project_dependencies"
	// DependenciesInverseTable is the table name for the ProjectDependency entity.
	// It exists in this package in order to avoid circular dependency with the "projectdependency" package.
	DependenciesInverseTable = "project_dependencies"
	// DependenciesColumn is the table column denoting the dependencies relation/edge.
	DependenciesColumn = "project_id"
	// ClientVulnsTable is the table that holds the client_vulns relation/edge.
	ClientVulnsTable = "client_vulns"
	// ClientVulnsInverseTable is the table name for the ClientVuln entity.
	// It exists in this package in order to avoid circular dependency with the "clientvuln" package.
	ClientVulnsInverseTable = "client_vulns"
	// ClientVulnsColumn is the table column denoting the client_vulns relation/edge.
	ClientVulnsColumn = "project_id"
)

// Columns holds all SQL columns for project fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldOrganization,
	FieldRepoURL,
	FieldDefaultBranch,
	FieldCurrentVersion,
	FieldPinnedRef,
	FieldAutoSyncDeps,
	FieldScanStatus,
	FieldScanError,
	FieldLastScannedAt,
	FieldContactEmail,
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
	// DefaultDefaultBranch holds the default value on creation for the "default_branch" field.
	DefaultDefaultBranch string
	// DefaultAutoSyncDeps holds the default value on creation for the "auto_sync_deps" field.
	DefaultAutoSyncDeps bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() string
)

// OrderOption defines the ordering options for the Project queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByOrganization orders the results by the organization field.
func ByOrganization(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrganization, opts...).ToFunc()
}

// ByRepoURL orders the results by the repo_url field.
func ByRepoURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRepoURL, opts...).ToFunc()
}

// ByDefaultBranch orders the results by the default_branch field.
func ByDefaultBranch(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDefaultBranch, opts...).ToFunc()
}

// ByCurrentVersion orders the results by the current_version field.
func ByCurrentVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentVersion, opts...).ToFunc()
}

// ByPinnedRef orders the results by the pinned_ref field.
func ByPinnedRef(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPinnedRef, opts...).ToFunc()
}

// ByAutoSyncDeps orders the results by the auto_sync_deps field.
func ByAutoSyncDeps(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAutoSyncDeps, opts...).ToFunc()
}

// ByScanStatus orders the results by the scan_status field.
func ByScanStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScanStatus, opts...).ToFunc()
}

// ByScanError orders the results by the scan_error field.
func ByScanError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScanError, opts...).ToFunc()
}

// ByLastScannedAt orders the results by the last_scanned_at field.
func ByLastScannedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastScannedAt, opts...).ToFunc()
}

// ByContactEmail orders the results by the contact_email field.
func ByContactEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContactEmail, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
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

// ByClientVulnsCount orders the results by client_vulns count.
func ByClientVulnsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newClientVulnsStep(), opts...)
	}
}

// ByClientVulns orders the results by client_vulns terms.
func ByClientVulns(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newClientVulnsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newDependenciesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DependenciesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, DependenciesTable, DependenciesColumn),
	)
}
func newClientVulnsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ClientVulnsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ClientVulnsTable, ClientVulnsColumn),
	)
}
