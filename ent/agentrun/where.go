// Code generated by ent, DO NOT EDIT.

package agentrun

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/vulnsentinel/vulnsentinel/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldContainsFold(FieldID, id))
}

// AgentType applies equality check predicate on the "agent_type" field. It's identical to AgentTypeEQ.
func AgentType(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEQ(FieldAgentType, v))
}

// Model applies equality check predicate on the "model" field. It's identical to ModelEQ.
func Model(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEQ(FieldModel, v))
}

// TargetID applies equality check predicate on the "target_id" field. It's identical to TargetIDEQ.
func TargetID(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEQ(FieldTargetID, v))
}

// Turns applies equality check predicate on the "turns" field. It's identical to TurnsEQ.
func Turns(v int) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEQ(FieldTurns, v))
}

// InputTokens applies equality check predicate on the "input_tokens" field. It's identical to InputTokensEQ.
func InputTokens(v int) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEQ(FieldInputTokens, v))
}

// OutputTokens applies equality check predicate on the "output_tokens" field. It's identical to OutputTokensEQ.
func OutputTokens(v int) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEQ(FieldOutputTokens, v))
}

// EstimatedCostUsd applies equality check predicate on the "estimated_cost_usd" field. It's identical to EstimatedCostUsdEQ.
func EstimatedCostUsd(v float64) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEQ(FieldEstimatedCostUsd, v))
}

// DurationMs applies equality check predicate on the "duration_ms" field. It's identical to DurationMsEQ.
func DurationMs(v int64) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEQ(FieldDurationMs, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEQ(FieldErrorMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEQ(FieldUpdatedAt, v))
}

// AgentTypeEQ applies the EQ predicate on the "agent_type" field.
func AgentTypeEQ(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEQ(FieldAgentType, v))
}

// AgentTypeNEQ applies the NEQ predicate on the "agent_type" field.
func AgentTypeNEQ(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNEQ(FieldAgentType, v))
}

// AgentTypeIn applies the In predicate on the "agent_type" field.
func AgentTypeIn(vs ...string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldIn(FieldAgentType, vs...))
}

// AgentTypeNotIn applies the NotIn predicate on the "agent_type" field.
func AgentTypeNotIn(vs ...string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNotIn(FieldAgentType, vs...))
}

// AgentTypeGT applies the GT predicate on the "agent_type" field.
func AgentTypeGT(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldGT(FieldAgentType, v))
}

// AgentTypeGTE applies the GTE predicate on the "agent_type" field.
func AgentTypeGTE(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldGTE(FieldAgentType, v))
}

// AgentTypeLT applies the LT predicate on the "agent_type" field.
func AgentTypeLT(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldLT(FieldAgentType, v))
}

// AgentTypeLTE applies the LTE predicate on the "agent_type" field.
func AgentTypeLTE(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldLTE(FieldAgentType, v))
}

// AgentTypeContains applies the Contains predicate on the "agent_type" field.
func AgentTypeContains(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldContains(FieldAgentType, v))
}

// AgentTypeHasPrefix applies the HasPrefix predicate on the "agent_type" field.
func AgentTypeHasPrefix(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldHasPrefix(FieldAgentType, v))
}

// AgentTypeHasSuffix applies the HasSuffix predicate on the "agent_type" field.
func AgentTypeHasSuffix(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldHasSuffix(FieldAgentType, v))
}

// AgentTypeEqualFold applies the EqualFold predicate on the "agent_type" field.
func AgentTypeEqualFold(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEqualFold(FieldAgentType, v))
}

// AgentTypeContainsFold applies the ContainsFold predicate on the "agent_type" field.
func AgentTypeContainsFold(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldContainsFold(FieldAgentType, v))
}

// ModelEQ applies the EQ predicate on the "model" field.
func ModelEQ(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEQ(FieldModel, v))
}

// ModelNEQ applies the NEQ predicate on the "model" field.
func ModelNEQ(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNEQ(FieldModel, v))
}

// ModelIn applies the In predicate on the "model" field.
func ModelIn(vs ...string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldIn(FieldModel, vs...))
}

// ModelNotIn applies the NotIn predicate on the "model" field.
func ModelNotIn(vs ...string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNotIn(FieldModel, vs...))
}

// ModelGT applies the GT predicate on the "model" field.
func ModelGT(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldGT(FieldModel, v))
}

// ModelGTE applies the GTE predicate on the "model" field.
func ModelGTE(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldGTE(FieldModel, v))
}

// ModelLT applies the LT predicate on the "model" field.
func ModelLT(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldLT(FieldModel, v))
}

// ModelLTE applies the LTE predicate on the "model" field.
func ModelLTE(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldLTE(FieldModel, v))
}

// ModelContains applies the Contains predicate on the "model" field.
func ModelContains(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldContains(FieldModel, v))
}

// ModelHasPrefix applies the HasPrefix predicate on the "model" field.
func ModelHasPrefix(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldHasPrefix(FieldModel, v))
}

// ModelHasSuffix applies the HasSuffix predicate on the "model" field.
func ModelHasSuffix(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldHasSuffix(FieldModel, v))
}

// ModelEqualFold applies the EqualFold predicate on the "model" field.
func ModelEqualFold(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEqualFold(FieldModel, v))
}

// ModelContainsFold applies the ContainsFold predicate on the "model" field.
func ModelContainsFold(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldContainsFold(FieldModel, v))
}

// TargetIDEQ applies the EQ predicate on the "target_id" field.
func TargetIDEQ(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEQ(FieldTargetID, v))
}

// TargetIDNEQ applies the NEQ predicate on the "target_id" field.
func TargetIDNEQ(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNEQ(FieldTargetID, v))
}

// TargetIDIn applies the In predicate on the "target_id" field.
func TargetIDIn(vs ...string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldIn(FieldTargetID, vs...))
}

// TargetIDNotIn applies the NotIn predicate on the "target_id" field.
func TargetIDNotIn(vs ...string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNotIn(FieldTargetID, vs...))
}

// TargetIDGT applies the GT predicate on the "target_id" field.
func TargetIDGT(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldGT(FieldTargetID, v))
}

// TargetIDGTE applies the GTE predicate on the "target_id" field.
func TargetIDGTE(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldGTE(FieldTargetID, v))
}

// TargetIDLT applies the LT predicate on the "target_id" field.
func TargetIDLT(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldLT(FieldTargetID, v))
}

// TargetIDLTE applies the LTE predicate on the "target_id" field.
func TargetIDLTE(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldLTE(FieldTargetID, v))
}

// TargetIDContains applies the Contains predicate on the "target_id" field.
func TargetIDContains(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldContains(FieldTargetID, v))
}

// TargetIDHasPrefix applies the HasPrefix predicate on the "target_id" field.
func TargetIDHasPrefix(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldHasPrefix(FieldTargetID, v))
}

// TargetIDHasSuffix applies the HasSuffix predicate on the "target_id" field.
func TargetIDHasSuffix(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldHasSuffix(FieldTargetID, v))
}

// TargetIDEqualFold applies the EqualFold predicate on the "target_id" field.
func TargetIDEqualFold(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEqualFold(FieldTargetID, v))
}

// TargetIDContainsFold applies the ContainsFold predicate on the "target_id" field.
func TargetIDContainsFold(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldContainsFold(FieldTargetID, v))
}

// TurnsEQ applies the EQ predicate on the "turns" field.
func TurnsEQ(v int) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEQ(FieldTurns, v))
}

// TurnsNEQ applies the NEQ predicate on the "turns" field.
func TurnsNEQ(v int) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNEQ(FieldTurns, v))
}

// TurnsIn applies the In predicate on the "turns" field.
func TurnsIn(vs ...int) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldIn(FieldTurns, vs...))
}

// TurnsNotIn applies the NotIn predicate on the "turns" field.
func TurnsNotIn(vs ...int) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNotIn(FieldTurns, vs...))
}

// TurnsGT applies the GT predicate on the "turns" field.
func TurnsGT(v int) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldGT(FieldTurns, v))
}

// TurnsGTE applies the GTE predicate on the "turns" field.
func TurnsGTE(v int) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldGTE(FieldTurns, v))
}

// TurnsLT applies the LT predicate on the "turns" field.
func TurnsLT(v int) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldLT(FieldTurns, v))
}

// TurnsLTE applies the LTE predicate on the "turns" field.
func TurnsLTE(v int) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldLTE(FieldTurns, v))
}

// InputTokensEQ applies the EQ predicate on the "input_tokens" field.
func InputTokensEQ(v int) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEQ(FieldInputTokens, v))
}

// InputTokensNEQ applies the NEQ predicate on the "input_tokens" field.
func InputTokensNEQ(v int) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNEQ(FieldInputTokens, v))
}

// InputTokensIn applies the In predicate on the "input_tokens" field.
func InputTokensIn(vs ...int) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldIn(FieldInputTokens, vs...))
}

// InputTokensNotIn applies the NotIn predicate on the "input_tokens" field.
func InputTokensNotIn(vs ...int) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNotIn(FieldInputTokens, vs...))
}

// InputTokensGT applies the GT predicate on the "input_tokens" field.
func InputTokensGT(v int) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldGT(FieldInputTokens, v))
}

// InputTokensGTE applies the GTE predicate on the "input_tokens" field.
func InputTokensGTE(v int) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldGTE(FieldInputTokens, v))
}

// InputTokensLT applies the LT predicate on the "input_tokens" field.
func InputTokensLT(v int) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldLT(FieldInputTokens, v))
}

// InputTokensLTE applies the LTE predicate on the "input_tokens" field.
func InputTokensLTE(v int) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldLTE(FieldInputTokens, v))
}

// OutputTokensEQ applies the EQ predicate on the "output_tokens" field.
func OutputTokensEQ(v int) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEQ(FieldOutputTokens, v))
}

// OutputTokensNEQ applies the NEQ predicate on the "output_tokens" field.
func OutputTokensNEQ(v int) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNEQ(FieldOutputTokens, v))
}

// OutputTokensIn applies the In predicate on the "output_tokens" field.
func OutputTokensIn(vs ...int) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldIn(FieldOutputTokens, vs...))
}

// OutputTokensNotIn applies the NotIn predicate on the "output_tokens" field.
func OutputTokensNotIn(vs ...int) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNotIn(FieldOutputTokens, vs...))
}

// OutputTokensGT applies the GT predicate on the "output_tokens" field.
func OutputTokensGT(v int) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldGT(FieldOutputTokens, v))
}

// OutputTokensGTE applies the GTE predicate on the "output_tokens" field.
func OutputTokensGTE(v int) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldGTE(FieldOutputTokens, v))
}

// OutputTokensLT applies the LT predicate on the "output_tokens" field.
func OutputTokensLT(v int) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldLT(FieldOutputTokens, v))
}

// OutputTokensLTE applies the LTE predicate on the "output_tokens" field.
func OutputTokensLTE(v int) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldLTE(FieldOutputTokens, v))
}

// EstimatedCostUsdEQ applies the EQ predicate on the "estimated_cost_usd" field.
func EstimatedCostUsdEQ(v float64) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEQ(FieldEstimatedCostUsd, v))
}

// EstimatedCostUsdNEQ applies the NEQ predicate on the "estimated_cost_usd" field.
func EstimatedCostUsdNEQ(v float64) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNEQ(FieldEstimatedCostUsd, v))
}

// EstimatedCostUsdIn applies the In predicate on the "estimated_cost_usd" field.
func EstimatedCostUsdIn(vs ...float64) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldIn(FieldEstimatedCostUsd, vs...))
}

// EstimatedCostUsdNotIn applies the NotIn predicate on the "estimated_cost_usd" field.
func EstimatedCostUsdNotIn(vs ...float64) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNotIn(FieldEstimatedCostUsd, vs...))
}

// EstimatedCostUsdGT applies the GT predicate on the "estimated_cost_usd" field.
func EstimatedCostUsdGT(v float64) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldGT(FieldEstimatedCostUsd, v))
}

// EstimatedCostUsdGTE applies the GTE predicate on the "estimated_cost_usd" field.
func EstimatedCostUsdGTE(v float64) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldGTE(FieldEstimatedCostUsd, v))
}

// EstimatedCostUsdLT applies the LT predicate on the "estimated_cost_usd" field.
func EstimatedCostUsdLT(v float64) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldLT(FieldEstimatedCostUsd, v))
}

// EstimatedCostUsdLTE applies the LTE predicate on the "estimated_cost_usd" field.
func EstimatedCostUsdLTE(v float64) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldLTE(FieldEstimatedCostUsd, v))
}

// DurationMsEQ applies the EQ predicate on the "duration_ms" field.
func DurationMsEQ(v int64) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEQ(FieldDurationMs, v))
}

// DurationMsNEQ applies the NEQ predicate on the "duration_ms" field.
func DurationMsNEQ(v int64) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNEQ(FieldDurationMs, v))
}

// DurationMsIn applies the In predicate on the "duration_ms" field.
func DurationMsIn(vs ...int64) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldIn(FieldDurationMs, vs...))
}

// DurationMsNotIn applies the NotIn predicate on the "duration_ms" field.
func DurationMsNotIn(vs ...int64) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNotIn(FieldDurationMs, vs...))
}

// DurationMsGT applies the GT predicate on the "duration_ms" field.
func DurationMsGT(v int64) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldGT(FieldDurationMs, v))
}

// DurationMsGTE applies the GTE predicate on the "duration_ms" field.
func DurationMsGTE(v int64) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldGTE(FieldDurationMs, v))
}

// DurationMsLT applies the LT predicate on the "duration_ms" field.
func DurationMsLT(v int64) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldLT(FieldDurationMs, v))
}

// DurationMsLTE applies the LTE predicate on the "duration_ms" field.
func DurationMsLTE(v int64) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldLTE(FieldDurationMs, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNotIn(FieldStatus, vs...))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.AgentRun {
	return predicate.AgentRun(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasToolCalls applies the HasEdge predicate on the "tool_calls" edge.
func HasToolCalls() predicate.AgentRun {
	return predicate.AgentRun(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ToolCallsTable, ToolCallsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasToolCallsWith applies the HasEdge predicate on the "tool_calls" edge with a given conditions (other predicates).
func HasToolCallsWith(preds ...predicate.AgentToolCall) predicate.AgentRun {
	return predicate.AgentRun(func(s *sql.Selector) {
		step := newToolCallsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AgentRun) predicate.AgentRun {
	return predicate.AgentRun(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AgentRun) predicate.AgentRun {
	return predicate.AgentRun(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AgentRun) predicate.AgentRun {
	return predicate.AgentRun(sql.NotPredicates(p))
}
