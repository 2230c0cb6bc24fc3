// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/vulnsentinel/vulnsentinel/ent/agentrun"
	"github.com/vulnsentinel/vulnsentinel/ent/agenttoolcall"
	"github.com/vulnsentinel/vulnsentinel/ent/predicate"
)

// AgentRunUpdate is the builder for updating AgentRun entities.
type AgentRunUpdate struct {
	config
	hooks    []Hook
	mutation *AgentRunMutation
}

// Where appends a list predicates to the AgentRunUpdate builder.
func (_u *AgentRunUpdate) Where(ps ...predicate.AgentRun) *AgentRunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAgentType sets the "agent_type" field.
func (_u *AgentRunUpdate) SetAgentType(v string) *AgentRunUpdate {
	_u.mutation.SetAgentType(v)
	return _u
}

// SetNillableAgentType sets the "agent_type" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableAgentType(v *string) *AgentRunUpdate {
	if v != nil {
		_u.SetAgentType(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *AgentRunUpdate) SetModel(v string) *AgentRunUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableModel(v *string) *AgentRunUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetTargetID sets the "target_id" field.
func (_u *AgentRunUpdate) SetTargetID(v string) *AgentRunUpdate {
	_u.mutation.SetTargetID(v)
	return _u
}

// SetNillableTargetID sets the "target_id" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableTargetID(v *string) *AgentRunUpdate {
	if v != nil {
		_u.SetTargetID(*v)
	}
	return _u
}

// SetTurns sets the "turns" field.
func (_u *AgentRunUpdate) SetTurns(v int) *AgentRunUpdate {
	_u.mutation.ResetTurns()
	_u.mutation.SetTurns(v)
	return _u
}

// SetNillableTurns sets the "turns" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableTurns(v *int) *AgentRunUpdate {
	if v != nil {
		_u.SetTurns(*v)
	}
	return _u
}

// AddTurns adds value to the "turns" field.
func (_u *AgentRunUpdate) AddTurns(v int) *AgentRunUpdate {
	_u.mutation.AddTurns(v)
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *AgentRunUpdate) SetInputTokens(v int) *AgentRunUpdate {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableInputTokens(v *int) *AgentRunUpdate {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *AgentRunUpdate) AddInputTokens(v int) *AgentRunUpdate {
	_u.mutation.AddInputTokens(v)
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *AgentRunUpdate) SetOutputTokens(v int) *AgentRunUpdate {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableOutputTokens(v *int) *AgentRunUpdate {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *AgentRunUpdate) AddOutputTokens(v int) *AgentRunUpdate {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// SetEstimatedCostUsd sets the "estimated_cost_usd" field.
func (_u *AgentRunUpdate) SetEstimatedCostUsd(v float64) *AgentRunUpdate {
	_u.mutation.ResetEstimatedCostUsd()
	_u.mutation.SetEstimatedCostUsd(v)
	return _u
}

// SetNillableEstimatedCostUsd sets the "estimated_cost_usd" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableEstimatedCostUsd(v *float64) *AgentRunUpdate {
	if v != nil {
		_u.SetEstimatedCostUsd(*v)
	}
	return _u
}

// AddEstimatedCostUsd adds value to the "estimated_cost_usd" field.
func (_u *AgentRunUpdate) AddEstimatedCostUsd(v float64) *AgentRunUpdate {
	_u.mutation.AddEstimatedCostUsd(v)
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *AgentRunUpdate) SetDurationMs(v int64) *AgentRunUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableDurationMs(v *int64) *AgentRunUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *AgentRunUpdate) AddDurationMs(v int64) *AgentRunUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentRunUpdate) SetStatus(v agentrun.Status) *AgentRunUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableStatus(v *agentrun.Status) *AgentRunUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AgentRunUpdate) SetErrorMessage(v string) *AgentRunUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableErrorMessage(v *string) *AgentRunUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *AgentRunUpdate) ClearErrorMessage() *AgentRunUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentRunUpdate) SetUpdatedAt(v time.Time) *AgentRunUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddToolCallIDs adds the "tool_calls" edge to the AgentToolCall entity by IDs.
func (_u *AgentRunUpdate) AddToolCallIDs(ids ...string) *AgentRunUpdate {
	_u.mutation.AddToolCallIDs(ids...)
	return _u
}

// AddToolCalls adds the "tool_calls" edges to the AgentToolCall entity.
func (_u *AgentRunUpdate) AddToolCalls(v ...*AgentToolCall) *AgentRunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddToolCallIDs(ids...)
}

// Mutation returns the AgentRunMutation object of the builder.
func (_u *AgentRunUpdate) Mutation() *AgentRunMutation {
	return _u.mutation
}

// ClearToolCalls clears all "tool_calls" edges to the AgentToolCall entity.
func (_u *AgentRunUpdate) ClearToolCalls() *AgentRunUpdate {
	_u.mutation.ClearToolCalls()
	return _u
}

// RemoveToolCallIDs removes the "tool_calls" edge to AgentToolCall entities by IDs.
func (_u *AgentRunUpdate) RemoveToolCallIDs(ids ...string) *AgentRunUpdate {
	_u.mutation.RemoveToolCallIDs(ids...)
	return _u
}

// RemoveToolCalls removes "tool_calls" edges to AgentToolCall entities.
func (_u *AgentRunUpdate) RemoveToolCalls(v ...*AgentToolCall) *AgentRunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveToolCallIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentRunUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentRunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentRunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentRunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentRunUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agentrun.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentRunUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := agentrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentRun.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AgentRunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentrun.Table, agentrun.Columns, sqlgraph.NewFieldSpec(agentrun.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AgentType(); ok {
		_spec.SetField(agentrun.FieldAgentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(agentrun.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetID(); ok {
		_spec.SetField(agentrun.FieldTargetID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Turns(); ok {
		_spec.SetField(agentrun.FieldTurns, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTurns(); ok {
		_spec.AddField(agentrun.FieldTurns, field.TypeInt, value)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(agentrun.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(agentrun.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(agentrun.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(agentrun.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EstimatedCostUsd(); ok {
		_spec.SetField(agentrun.FieldEstimatedCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEstimatedCostUsd(); ok {
		_spec.AddField(agentrun.FieldEstimatedCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(agentrun.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(agentrun.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agentrun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(agentrun.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(agentrun.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agentrun.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ToolCallsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentrun.ToolCallsTable,
			Columns: []string{agentrun.ToolCallsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agenttoolcall.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedToolCallsIDs(); len(nodes) > 0 && !_u.mutation.ToolCallsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentrun.ToolCallsTable,
			Columns: []string{agentrun.ToolCallsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agenttoolcall.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ToolCallsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentrun.ToolCallsTable,
			Columns: []string{agentrun.ToolCallsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agenttoolcall.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentRunUpdateOne is the builder for updating a single AgentRun entity.
type AgentRunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentRunMutation
}

// SetAgentType sets the "agent_type" field.
func (_u *AgentRunUpdateOne) SetAgentType(v string) *AgentRunUpdateOne {
	_u.mutation.SetAgentType(v)
	return _u
}

// SetNillableAgentType sets the "agent_type" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableAgentType(v *string) *AgentRunUpdateOne {
	if v != nil {
		_u.SetAgentType(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *AgentRunUpdateOne) SetModel(v string) *AgentRunUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableModel(v *string) *AgentRunUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetTargetID sets the "target_id" field.
func (_u *AgentRunUpdateOne) SetTargetID(v string) *AgentRunUpdateOne {
	_u.mutation.SetTargetID(v)
	return _u
}

// SetNillableTargetID sets the "target_id" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableTargetID(v *string) *AgentRunUpdateOne {
	if v != nil {
		_u.SetTargetID(*v)
	}
	return _u
}

// SetTurns sets the "turns" field.
func (_u *AgentRunUpdateOne) SetTurns(v int) *AgentRunUpdateOne {
	_u.mutation.ResetTurns()
	_u.mutation.SetTurns(v)
	return _u
}

// SetNillableTurns sets the "turns" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableTurns(v *int) *AgentRunUpdateOne {
	if v != nil {
		_u.SetTurns(*v)
	}
	return _u
}

// AddTurns adds value to the "turns" field.
func (_u *AgentRunUpdateOne) AddTurns(v int) *AgentRunUpdateOne {
	_u.mutation.AddTurns(v)
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *AgentRunUpdateOne) SetInputTokens(v int) *AgentRunUpdateOne {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableInputTokens(v *int) *AgentRunUpdateOne {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *AgentRunUpdateOne) AddInputTokens(v int) *AgentRunUpdateOne {
	_u.mutation.AddInputTokens(v)
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *AgentRunUpdateOne) SetOutputTokens(v int) *AgentRunUpdateOne {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableOutputTokens(v *int) *AgentRunUpdateOne {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *AgentRunUpdateOne) AddOutputTokens(v int) *AgentRunUpdateOne {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// SetEstimatedCostUsd sets the "estimated_cost_usd" field.
func (_u *AgentRunUpdateOne) SetEstimatedCostUsd(v float64) *AgentRunUpdateOne {
	_u.mutation.ResetEstimatedCostUsd()
	_u.mutation.SetEstimatedCostUsd(v)
	return _u
}

// SetNillableEstimatedCostUsd sets the "estimated_cost_usd" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableEstimatedCostUsd(v *float64) *AgentRunUpdateOne {
	if v != nil {
		_u.SetEstimatedCostUsd(*v)
	}
	return _u
}

// AddEstimatedCostUsd adds value to the "estimated_cost_usd" field.
func (_u *AgentRunUpdateOne) AddEstimatedCostUsd(v float64) *AgentRunUpdateOne {
	_u.mutation.AddEstimatedCostUsd(v)
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *AgentRunUpdateOne) SetDurationMs(v int64) *AgentRunUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableDurationMs(v *int64) *AgentRunUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *AgentRunUpdateOne) AddDurationMs(v int64) *AgentRunUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentRunUpdateOne) SetStatus(v agentrun.Status) *AgentRunUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableStatus(v *agentrun.Status) *AgentRunUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AgentRunUpdateOne) SetErrorMessage(v string) *AgentRunUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableErrorMessage(v *string) *AgentRunUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *AgentRunUpdateOne) ClearErrorMessage() *AgentRunUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentRunUpdateOne) SetUpdatedAt(v time.Time) *AgentRunUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddToolCallIDs adds the "tool_calls" edge to the AgentToolCall entity by IDs.
func (_u *AgentRunUpdateOne) AddToolCallIDs(ids ...string) *AgentRunUpdateOne {
	_u.mutation.AddToolCallIDs(ids...)
	return _u
}

// AddToolCalls adds the "tool_calls" edges to the AgentToolCall entity.
func (_u *AgentRunUpdateOne) AddToolCalls(v ...*AgentToolCall) *AgentRunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddToolCallIDs(ids...)
}

// Mutation returns the AgentRunMutation object of the builder.
func (_u *AgentRunUpdateOne) Mutation() *AgentRunMutation {
	return _u.mutation
}

// ClearToolCalls clears all "tool_calls" edges to the AgentToolCall entity.
func (_u *AgentRunUpdateOne) ClearToolCalls() *AgentRunUpdateOne {
	_u.mutation.ClearToolCalls()
	return _u
}

// RemoveToolCallIDs removes the "tool_calls" edge to AgentToolCall entities by IDs.
func (_u *AgentRunUpdateOne) RemoveToolCallIDs(ids ...string) *AgentRunUpdateOne {
	_u.mutation.RemoveToolCallIDs(ids...)
	return _u
}

// RemoveToolCalls removes "tool_calls" edges to AgentToolCall entities.
func (_u *AgentRunUpdateOne) RemoveToolCalls(v ...*AgentToolCall) *AgentRunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveToolCallIDs(ids...)
}

// Where appends a list predicates to the AgentRunUpdate builder.
func (_u *AgentRunUpdateOne) Where(ps ...predicate.AgentRun) *AgentRunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentRunUpdateOne) Select(field string, fields ...string) *AgentRunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentRun entity.
func (_u *AgentRunUpdateOne) Save(ctx context.Context) (*AgentRun, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentRunUpdateOne) SaveX(ctx context.Context) *AgentRun {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentRunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentRunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentRunUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agentrun.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentRunUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := agentrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentRun.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AgentRunUpdateOne) sqlSave(ctx context.Context) (_node *AgentRun, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentrun.Table, agentrun.Columns, sqlgraph.NewFieldSpec(agentrun.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentRun.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentrun.FieldID)
		for _, f := range fields {
			if !agentrun.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agentrun.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AgentType(); ok {
		_spec.SetField(agentrun.FieldAgentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(agentrun.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetID(); ok {
		_spec.SetField(agentrun.FieldTargetID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Turns(); ok {
		_spec.SetField(agentrun.FieldTurns, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTurns(); ok {
		_spec.AddField(agentrun.FieldTurns, field.TypeInt, value)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(agentrun.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(agentrun.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(agentrun.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(agentrun.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EstimatedCostUsd(); ok {
		_spec.SetField(agentrun.FieldEstimatedCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEstimatedCostUsd(); ok {
		_spec.AddField(agentrun.FieldEstimatedCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(agentrun.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(agentrun.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agentrun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(agentrun.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(agentrun.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agentrun.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ToolCallsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentrun.ToolCallsTable,
			Columns: []string{agentrun.ToolCallsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agenttoolcall.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedToolCallsIDs(); len(nodes) > 0 && !_u.mutation.ToolCallsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentrun.ToolCallsTable,
			Columns: []string{agentrun.ToolCallsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agenttoolcall.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ToolCallsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentrun.ToolCallsTable,
			Columns: []string{agentrun.ToolCallsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agenttoolcall.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &AgentRun{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
