// Code generated by ent, DO NOT EDIT.

package agenttoolcall

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the agenttoolcall type in the database.
	Label = "agent_tool_call"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldAgentRunID holds the string denoting the agent_run_id field in the database.
	FieldAgentRunID = "agent_run_id"
	// FieldSeq holds the string denoting the seq field in the database.
	FieldSeq = "seq"
	// FieldToolName holds the string denoting the tool_name field in the database.
	FieldToolName = "tool_name"
	// FieldArguments holds the string denoting the arguments field in the database.
	FieldArguments = "arguments"
	// FieldOutputBytes holds the string denoting the output_bytes field in the database.
	FieldOutputBytes = "output_bytes"
	// FieldDurationMs holds the string denoting the duration_ms field in the database.
	FieldDurationMs = "duration_ms"
	// FieldIsError holds the string denoting the is_error field in the database.
	FieldIsError = "is_error"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeRun holds the string denoting the run edge name in mutations.
	EdgeRun = "run"
	// Table holds the table name of the agenttoolcall in the database.
	Table = "agent_tool_calls"
	// RunTable is the table that holds the run relation/edge.
	RunTable = "agent_tool_calls"
	// RunInverseTable is the table name for the AgentRun entity.
	// It exists in this package in order to avoid circular dependency with the "agentrun" package.
	RunInverseTable = "agent_runs"
	// RunColumn is the table column denoting the run relation/edge.
	RunColumn = "agent_run_id"
)

// Columns holds all SQL columns for agenttoolcall fields.
var Columns = []string{
	FieldID,
	FieldAgentRunID,
	FieldSeq,
	FieldToolName,
	FieldArguments,
	FieldOutputBytes,
	FieldDurationMs,
	FieldIsError,
	FieldCreatedAt,
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
	// DefaultOutputBytes holds the default value on creation for the "output_bytes" field.
	DefaultOutputBytes int
	// DefaultDurationMs holds the default value on creation for the "duration_ms" field.
	DefaultDurationMs int64
	// DefaultIsError holds the default value on creation for the "is_error" field.
	DefaultIsError bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() string
)

// OrderOption defines the ordering options for the AgentToolCall queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAgentRunID orders the results by the agent_run_id field.
func ByAgentRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentRunID, opts...).ToFunc()
}

// BySeq orders the results by the seq field.
func BySeq(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeq, opts...).ToFunc()
}

// ByToolName orders the results by the tool_name field.
func ByToolName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldToolName, opts...).ToFunc()
}

// ByArguments orders the results by the arguments field.
func ByArguments(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldArguments, opts...).ToFunc()
}

// ByOutputBytes orders the results by the output_bytes field.
func ByOutputBytes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutputBytes, opts...).ToFunc()
}

// ByDurationMs orders the results by the duration_ms field.
func ByDurationMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationMs, opts...).ToFunc()
}

// ByIsError orders the results by the is_error field.
func ByIsError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsError, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByRunField orders the results by run field.
func ByRunField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRunStep(), sql.OrderByField(field, opts...))
	}
}
func newRunStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RunInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, RunTable, RunColumn),
	)
}
