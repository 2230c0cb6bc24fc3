// Code generated by ent, DO NOT EDIT.

package agenttoolcall

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/vulnsentinel/vulnsentinel/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AgentToolCall {
	return predicate.AgentToolCall(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AgentToolCall {
	return predicate.AgentToolCall(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AgentToolCall {
	return predicate.AgentToolCall(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AgentToolCall {
	return predicate.AgentToolCall(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AgentToolCall {
	return predicate.AgentToolCall(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AgentToolCall {
	return predicate.AgentToolCall(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AgentToolCall {
	return predicate.AgentToolCall(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AgentToolCall {
	return predicate.AgentToolCall(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AgentToolCall {
	return predicate.AgentToolCall(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AgentToolCall {
	return predicate.AgentToolCall(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AgentToolCall {
	return predicate.AgentToolCall(sql.FieldContainsFold(FieldID, id))
}

// AgentRunID applies equality check predicate on the "agent_run_id" field. It's identical to AgentRunIDEQ.
func AgentRunID(v string) predicate.AgentToolCall {
	return predicate.AgentToolCall(sql.FieldEQ(FieldAgentRunID, v))
}

// Seq applies equality check predicate on the "seq" field. It's identical to SeqEQ.
func Seq(v int) predicate.AgentToolCall {
	return predicate.AgentToolCall(sql.FieldEQ(FieldSeq, v))
}

// ToolName applies equality check predicate on the "tool_name" field. It's identical to ToolNameEQ.
func ToolName(v string) predicate.AgentToolCall {
	return predicate.AgentToolCall(sql.FieldEQ(FieldToolName, v))
}

// Arguments applies equality check predicate on the "arguments" field. It's identical to ArgumentsEQ.
func Arguments(v string) predicate.AgentToolCall {
	return predicate.AgentToolCall(sql.FieldEQ(FieldArguments, v))
}

// OutputBytes applies equality check predicate on the "output_bytes" field. It's identical to OutputBytesEQ.
func OutputBytes(v int) predicate.AgentToolCall {
	return predicate.AgentToolCall(sql.FieldEQ(FieldOutputBytes, v))
}

// DurationMs applies equality check predicate on the "duration_ms" field. It's identical to DurationMsEQ.
func DurationMs(v int64) predicate.AgentToolCall {
	return predicate.AgentToolCall(sql.FieldEQ(FieldDurationMs, v))
}

// IsError applies equality check predicate on the "is_error" field. It's identical to IsErrorEQ.
func IsError(v bool) predicate.AgentToolCall {
	return predicate.AgentToolCall(sql.FieldEQ(FieldIsError, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AgentToolCall {
	return predicate.AgentToolCall(sql.FieldEQ(FieldCreatedAt, v))
}

// AgentRunIDEQ applies the EQ predicate on the "agent_run_id" field.
func AgentRunIDEQ(v string) predicate.AgentToolCall {
	return predicate.AgentToolCall(sql.FieldEQ(FieldAgentRunID, v))
}

// AgentRunIDNEQ applies the NEQ predicate on the "agent_run_id" field.
func AgentRunIDNEQ(v string) predicate.AgentToolCall {
	return predicate.AgentToolCall(sql.FieldNEQ(FieldAgentRunID, v))
}

// AgentRunIDIn applies the In predicate on the "agent_run_id" field.
func AgentRunIDIn(vs ...string) predicate.AgentToolCall {
	return predicate.AgentToolCall(sql.FieldIn(FieldAgentRunID, vs...))
}

// AgentRunIDNotIn applies the NotIn predicate on the "agent_run_id" field.
func AgentRunIDNotIn(vs ...string) predicate.AgentToolCall {
	return predicate.AgentToolCall(sql.FieldNotIn(FieldAgentRunID, vs...))
}

// AgentRunIDGT applies the GT predicate on the "agent_run_id" field.
func AgentRunIDGT(v string) predicate.AgentToolCall {
	return predicate.AgentToolCall(sql.FieldGT(FieldAgentRunID, v))
}

// AgentRunIDGTE applies the GTE predicate on the "agent_run_id" field.
func AgentRunIDGTE(v string) predicate.AgentToolCall {
	return predicate.AgentToolCall(sql.FieldGTE(FieldAgentRunID, v))
}

// AgentRunIDLT applies the LT predicate on the "agent_run_id" field.
func AgentRunIDLT(v string) predicate.AgentToolCall {
	return predicate.AgentToolCall(sql.FieldLT(FieldAgentRunID, v))
}

// AgentRunIDLTE applies the LTE predicate on the "agent_run_id" field.
func AgentRunIDLTE(v string) predicate.AgentToolCall {
	return predicate.AgentToolCall(sql.FieldLTE(FieldAgentRunID, v))
}

// AgentRunIDContains applies the Contains predicate on the "agent_run_id" field.
func AgentRunIDContains(v string) predicate.AgentToolCall {
	return predicate.AgentToolCall(sql.FieldContains(FieldAgentRunID, v))
}

// AgentRunIDHasPrefix applies the HasPrefix predicate on the "agent_run_id" field.
func AgentRunIDHasPrefix(v string) predicate.AgentToolCall {
	return predicate.AgentToolCall(sql.FieldHasPrefix(FieldAgentRunID, v))
}

// AgentRunIDHasSuffix applies the HasSuffix predicate on the "agent_run_id" field.
func AgentRunIDHasSuffix(v string) predicate.AgentToolCall {
	return predicate.AgentToolCall(sql.FieldHasSuffix(FieldAgentRunID, v))
}

// AgentRunIDEqualFold applies the EqualFold predicate on the "agent_run_id" field.
func AgentRunIDEqualFold(v string) predicate.AgentToolCall {
	return predicate.AgentToolCall(sql.FieldEqualFold(FieldAgentRunID, v))
}

// AgentRunIDContainsFold applies the ContainsFold predicate on the "agent_run_id" field.
func AgentRunIDContainsFold(v string) predicate.AgentToolCall {
	return predicate.AgentToolCall(sql.FieldContainsFold(FieldAgentRunID, v))
}

// SeqEQ applies the EQ predicate on the "seq" field.
func SeqEQ(v int) predicate.AgentToolCall {
	return predicate.AgentToolCall(sql.FieldEQ(FieldSeq, v))
}

// SeqNEQ applies the NEQ predicate on the "seq" field.
func SeqNEQ(v int) predicate.AgentToolCall {
	return predicate.AgentToolCall(sql.FieldNEQ(FieldSeq, v))
}

// SeqIn applies the In predicate on the "seq" field.
func SeqIn(vs ...int) predicate.AgentToolCall {
	return predicate.AgentToolCall(sql.FieldIn(FieldSeq, vs...))
}

// SeqNotIn applies the NotIn predicate on the "seq" field.
func SeqNotIn(vs ...int) predicate.AgentToolCall {
	return predicate.AgentToolCall(sql.FieldNotIn(FieldSeq, vs...))
}

// SeqGT applies the GT predicate on the "seq" field.
func SeqGT(v int) predicate.AgentToolCall {
	return predicate.AgentToolCall(sql.FieldGT(FieldSeq, v))
}

// SeqGTE applies the GTE predicate on the "seq" field.
func SeqGTE(v int) predicate.AgentToolCall {
	return predicate.AgentToolCall(sql.FieldGTE(FieldSeq, v))
}

// SeqLT applies the LT predicate on the "seq" field.
func SeqLT(v int) predicate.AgentToolCall {
	return predicate.AgentToolCall(sql.FieldLT(FieldSeq, v))
}

// SeqLTE applies the LTE predicate on the "seq" field.
func SeqLTE(v int) predicate.AgentToolCall {
	return predicate.AgentToolCall(sql.FieldLTE(FieldSeq, v))
}

// ToolNameEQ applies the EQ predicate on the "tool_name" field.
func ToolNameEQ(v string) predicate.AgentToolCall {
	return predicate.AgentToolCall(sql.FieldEQ(FieldToolName, v))
}

// ToolNameNEQ applies the NEQ predicate on the "tool_name" field.
func ToolNameNEQ(v string) predicate.AgentToolCall {
	return predicate.AgentToolCall(sql.FieldNEQ(FieldToolName, v))
}

// ToolNameIn applies the In predicate on the "tool_name" field.
func ToolNameIn(vs ...string) predicate.AgentToolCall {
	return predicate.AgentToolCall(sql.FieldIn(FieldToolName, vs...))
}

// ToolNameNotIn applies the NotIn predicate on the "tool_name" field.
func ToolNameNotIn(vs ...string) predicate.AgentToolCall {
	return predicate.AgentToolCall(sql.FieldNotIn(FieldToolName, vs...))
}

// ToolNameGT applies the GT predicate on the "tool_name" field.
func ToolNameGT(v string) predicate.AgentToolCall {
	return predicate.AgentToolCall(sql.FieldGT(FieldToolName, v))
}

// ToolNameGTE applies the GTE predicate on the "tool_name" field.
func ToolNameGTE(v string) predicate.AgentToolCall {
	return predicate.AgentToolCall(sql.FieldGTE(FieldToolName, v))
}

// ToolNameLT applies the LT predicate on the "tool_name" field.
func ToolNameLT(v string) predicate.AgentToolCall {
	return predicate.AgentToolCall(sql.FieldLT(FieldToolName, v))
}

// ToolNameLTE applies the LTE predicate on the "tool_name" field.
func ToolNameLTE(v string) predicate.AgentToolCall {
	return predicate.AgentToolCall(sql.FieldLTE(FieldToolName, v))
}

// ToolNameContains applies the Contains predicate on the "tool_name" field.
func ToolNameContains(v string) predicate.AgentToolCall {
	return predicate.AgentToolCall(sql.FieldContains(FieldToolName, v))
}

// ToolNameHasPrefix applies the HasPrefix predicate on the "tool_name" field.
func ToolNameHasPrefix(v string) predicate.AgentToolCall {
	return predicate.AgentToolCall(sql.FieldHasPrefix(FieldToolName, v))
}

// ToolNameHasSuffix applies the HasSuffix predicate on the "tool_name" field.
func ToolNameHasSuffix(v string) predicate.AgentToolCall {
	return predicate.AgentToolCall(sql.FieldHasSuffix(FieldToolName, v))
}

// ToolNameEqualFold applies the EqualFold predicate on the "tool_name" field.
func ToolNameEqualFold(v string) predicate.AgentToolCall {
	return predicate.AgentToolCall(sql.FieldEqualFold(FieldToolName, v))
}

// ToolNameContainsFold applies the ContainsFold predicate on the "tool_name" field.
func ToolNameContainsFold(v string) predicate.AgentToolCall {
	return predicate.AgentToolCall(sql.FieldContainsFold(FieldToolName, v))
}

// ArgumentsEQ applies the EQ predicate on the "arguments" field.
func ArgumentsEQ(v string) predicate.AgentToolCall {
	return predicate.AgentToolCall(sql.FieldEQ(FieldArguments, v))
}

// ArgumentsNEQ applies the NEQ predicate on the "arguments" field.
func ArgumentsNEQ(v string) predicate.AgentToolCall {
	return predicate.AgentToolCall(sql.FieldNEQ(FieldArguments, v))
}

// ArgumentsIn applies the In predicate on the "arguments" field.
func ArgumentsIn(vs ...string) predicate.AgentToolCall {
	return predicate.AgentToolCall(sql.FieldIn(FieldArguments, vs...))
}

// ArgumentsNotIn applies the NotIn predicate on the "arguments" field.
func ArgumentsNotIn(vs ...string) predicate.AgentToolCall {
	return predicate.AgentToolCall(sql.FieldNotIn(FieldArguments, vs...))
}

// ArgumentsGT applies the GT predicate on the "arguments" field.
func ArgumentsGT(v string) predicate.AgentToolCall {
	return predicate.AgentToolCall(sql.FieldGT(FieldArguments, v))
}

// ArgumentsGTE applies the GTE predicate on the "arguments" field.
func ArgumentsGTE(v string) predicate.AgentToolCall {
	return predicate.AgentToolCall(sql.FieldGTE(FieldArguments, v))
}

// ArgumentsLT applies the LT predicate on the "arguments" field.
func ArgumentsLT(v string) predicate.AgentToolCall {
	return predicate.AgentToolCall(sql.FieldLT(FieldArguments, v))
}

// ArgumentsLTE applies the LTE predicate on the "arguments" field.
func ArgumentsLTE(v string) predicate.AgentToolCall {
	return predicate.AgentToolCall(sql.FieldLTE(FieldArguments, v))
}

// ArgumentsContains applies the Contains predicate on the "arguments" field.
func ArgumentsContains(v string) predicate.AgentToolCall {
	return predicate.AgentToolCall(sql.FieldContains(FieldArguments, v))
}

// ArgumentsHasPrefix applies the HasPrefix predicate on the "arguments" field.
func ArgumentsHasPrefix(v string) predicate.AgentToolCall {
	return predicate.AgentToolCall(sql.FieldHasPrefix(FieldArguments, v))
}

// ArgumentsHasSuffix applies the HasSuffix predicate on the "arguments" field.
func ArgumentsHasSuffix(v string) predicate.AgentToolCall {
	return predicate.AgentToolCall(sql.FieldHasSuffix(FieldArguments, v))
}

// ArgumentsIsNil applies the IsNil predicate on the "arguments" field.
func ArgumentsIsNil() predicate.AgentToolCall {
	return predicate.AgentToolCall(sql.FieldIsNull(FieldArguments))
}

// ArgumentsNotNil applies the NotNil predicate on the "arguments" field.
func ArgumentsNotNil() predicate.AgentToolCall {
	return predicate.AgentToolCall(sql.FieldNotNull(FieldArguments))
}

// ArgumentsEqualFold applies the EqualFold predicate on the "arguments" field.
func ArgumentsEqualFold(v string) predicate.AgentToolCall {
	return predicate.AgentToolCall(sql.FieldEqualFold(FieldArguments, v))
}

// ArgumentsContainsFold applies the ContainsFold predicate on the "arguments" field.
func ArgumentsContainsFold(v string) predicate.AgentToolCall {
	return predicate.AgentToolCall(sql.FieldContainsFold(FieldArguments, v))
}

// OutputBytesEQ applies the EQ predicate on the "output_bytes" field.
func OutputBytesEQ(v int) predicate.AgentToolCall {
	return predicate.AgentToolCall(sql.FieldEQ(FieldOutputBytes, v))
}

// OutputBytesNEQ applies the NEQ predicate on the "output_bytes" field.
func OutputBytesNEQ(v int) predicate.AgentToolCall {
	return predicate.AgentToolCall(sql.FieldNEQ(FieldOutputBytes, v))
}

// OutputBytesIn applies the In predicate on the "output_bytes" field.
func OutputBytesIn(vs ...int) predicate.AgentToolCall {
	return predicate.AgentToolCall(sql.FieldIn(FieldOutputBytes, vs...))
}

// OutputBytesNotIn applies the NotIn predicate on the "output_bytes" field.
func OutputBytesNotIn(vs ...int) predicate.AgentToolCall {
	return predicate.AgentToolCall(sql.FieldNotIn(FieldOutputBytes, vs...))
}

// OutputBytesGT applies the GT predicate on the "output_bytes" field.
func OutputBytesGT(v int) predicate.AgentToolCall {
	return predicate.AgentToolCall(sql.FieldGT(FieldOutputBytes, v))
}

// OutputBytesGTE applies the GTE predicate on the "output_bytes" field.
func OutputBytesGTE(v int) predicate.AgentToolCall {
	return predicate.AgentToolCall(sql.FieldGTE(FieldOutputBytes, v))
}

// OutputBytesLT applies the LT predicate on the "output_bytes" field.
func OutputBytesLT(v int) predicate.AgentToolCall {
	return predicate.AgentToolCall(sql.FieldLT(FieldOutputBytes, v))
}

// OutputBytesLTE applies the LTE predicate on the "output_bytes" field.
func OutputBytesLTE(v int) predicate.AgentToolCall {
	return predicate.AgentToolCall(sql.FieldLTE(FieldOutputBytes, v))
}

// DurationMsEQ applies the EQ predicate on the "duration_ms" field.
func DurationMsEQ(v int64) predicate.AgentToolCall {
	return predicate.AgentToolCall(sql.FieldEQ(FieldDurationMs, v))
}

// DurationMsNEQ applies the NEQ predicate on the "duration_ms" field.
func DurationMsNEQ(v int64) predicate.AgentToolCall {
	return predicate.AgentToolCall(sql.FieldNEQ(FieldDurationMs, v))
}

// DurationMsIn applies the In predicate on the "duration_ms" field.
func DurationMsIn(vs ...int64) predicate.AgentToolCall {
	return predicate.AgentToolCall(sql.FieldIn(FieldDurationMs, vs...))
}

// DurationMsNotIn applies the NotIn predicate on the "duration_ms" field.
func DurationMsNotIn(vs ...int64) predicate.AgentToolCall {
	return predicate.AgentToolCall(sql.FieldNotIn(FieldDurationMs, vs...))
}

// DurationMsGT applies the GT predicate on the "duration_ms" field.
func DurationMsGT(v int64) predicate.AgentToolCall {
	return predicate.AgentToolCall(sql.FieldGT(FieldDurationMs, v))
}

// DurationMsGTE applies the GTE predicate on the "duration_ms" field.
func DurationMsGTE(v int64) predicate.AgentToolCall {
	return predicate.AgentToolCall(sql.FieldGTE(FieldDurationMs, v))
}

// DurationMsLT applies the LT predicate on the "duration_ms" field.
func DurationMsLT(v int64) predicate.AgentToolCall {
	return predicate.AgentToolCall(sql.FieldLT(FieldDurationMs, v))
}

// DurationMsLTE applies the LTE predicate on the "duration_ms" field.
func DurationMsLTE(v int64) predicate.AgentToolCall {
	return predicate.AgentToolCall(sql.FieldLTE(FieldDurationMs, v))
}

// IsErrorEQ applies the EQ predicate on the "is_error" field.
func IsErrorEQ(v bool) predicate.AgentToolCall {
	return predicate.AgentToolCall(sql.FieldEQ(FieldIsError, v))
}

// IsErrorNEQ applies the NEQ predicate on the "is_error" field.
func IsErrorNEQ(v bool) predicate.AgentToolCall {
	return predicate.AgentToolCall(sql.FieldNEQ(FieldIsError, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AgentToolCall {
	return predicate.AgentToolCall(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AgentToolCall {
	return predicate.AgentToolCall(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AgentToolCall {
	return predicate.AgentToolCall(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AgentToolCall {
	return predicate.AgentToolCall(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AgentToolCall {
	return predicate.AgentToolCall(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AgentToolCall {
	return predicate.AgentToolCall(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AgentToolCall {
	return predicate.AgentToolCall(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AgentToolCall {
	return predicate.AgentToolCall(sql.FieldLTE(FieldCreatedAt, v))
}

// HasRun applies the HasEdge predicate on the "run" edge.
func HasRun() predicate.AgentToolCall {
	return predicate.AgentToolCall(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RunTable, RunColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRunWith applies the HasEdge predicate on the "run" edge with a given conditions (other predicates).
func HasRunWith(preds ...predicate.AgentRun) predicate.AgentToolCall {
	return predicate.AgentToolCall(func(s *sql.Selector) {
		step := newRunStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AgentToolCall) predicate.AgentToolCall {
	return predicate.AgentToolCall(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AgentToolCall) predicate.AgentToolCall {
	return predicate.AgentToolCall(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AgentToolCall) predicate.AgentToolCall {
	return predicate.AgentToolCall(sql.NotPredicates(p))
}
