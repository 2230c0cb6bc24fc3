// Code generated by ent, DO NOT EDIT.

package projectdependency

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the projectdependency type in the database.
	Label = "project_dependency"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldProjectID holds the string denoting the project_id field in the database.
	FieldProjectID = "project_id"
	// FieldLibraryID holds the string denoting the library_id field in the database.
	FieldLibraryID = "library_id"
	// FieldConstraintExpr holds the string denoting the constraint_expr field in the database.
	FieldConstraintExpr = "constraint_expr"
	// FieldResolvedVersion holds the string denoting the resolved_version field in the database.
	FieldResolvedVersion = "resolved_version"
	// FieldConstraintSource holds the string denoting the constraint_source field in the database.
	FieldConstraintSource = "constraint_source"
	// FieldNotifyEnabled holds the string denoting the notify_enabled field in the database.
	FieldNotifyEnabled = "notify_enabled"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeProject holds the string denoting the project edge name in mutations.
	EdgeProject = "project"
	// EdgeLibrary holds the string denoting the library edge name in mutations.
	EdgeLibrary = "library"
	// Table holds the table name of the projectdependency in the database.
	Table = "project_dependencies"
	// ProjectTable is the table that holds the project relation/edge.
	ProjectTable = "project_dependencies"
	// ProjectInverseTable is the table name for the Project entity.
	// It exists in this package in order to avoid circular dependency with the "project" package.
	ProjectInverseTable = "projects"
	// ProjectColumn is the table column denoting the project relation/edge.
	ProjectColumn = "project_id"
	// LibraryTable is the table that holds the library relation/edge.
	LibraryTable = "project_dependencies"
	// LibraryInverseTable is the table name for the Library entity.
	// It exists in this package in order to avoid circular dependency with the "library" package.
	LibraryInverseTable = "libraries"
	// LibraryColumn is the table column denoting the library relation/edge.
	LibraryColumn = "library_id"
)

// Columns holds all SQL columns for projectdependency fields.
var Columns = []string{
	FieldID,
	FieldProjectID,
	FieldLibraryID,
	FieldConstraintExpr,
	FieldResolvedVersion,
	FieldConstraintSource,
	FieldNotifyEnabled,
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
	// DefaultConstraintSource holds the default value on creation for the "constraint_source" field.
	DefaultConstraintSource string
	// DefaultNotifyEnabled holds the default value on creation for the "notify_enabled" field.
	DefaultNotifyEnabled bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() string
)

// OrderOption defines the ordering options for the ProjectDependency queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByProjectID orders the results by the project_id field.
func ByProjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProjectID, opts...).ToFunc()
}

// ByLibraryID orders the results by the library_id field.
func ByLibraryID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLibraryID, opts...).ToFunc()
}

// ByConstraintExpr orders the results by the constraint_expr field.
func ByConstraintExpr(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConstraintExpr, opts...).ToFunc()
}

// ByResolvedVersion orders the results by the resolved_version field.
func ByResolvedVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResolvedVersion, opts...).ToFunc()
}

// ByConstraintSource orders the results by the constraint_source field.
func ByConstraintSource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConstraintSource, opts...).ToFunc()
}

// ByNotifyEnabled orders the results by the notify_enabled field.
func ByNotifyEnabled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotifyEnabled, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByProjectField orders the results by project field.
func ByProjectField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newProjectStep(), sql.OrderByField(field, opts...))
	}
}

// ByLibraryField orders the results by library field.
func ByLibraryField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newLibraryStep(), sql.OrderByField(field, opts...))
	}
}
func newProjectStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProjectInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
	)
}
func newLibraryStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(LibraryInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, LibraryTable, LibraryColumn),
	)
}
