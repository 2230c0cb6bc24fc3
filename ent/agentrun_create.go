// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/vulnsentinel/vulnsentinel/ent/agentrun"
	"github.com/vulnsentinel/vulnsentinel/ent/agenttoolcall"
)

// AgentRunCreate is the builder for creating a AgentRun entity.
type AgentRunCreate struct {
	config
	mutation *AgentRunMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetAgentType sets the "agent_type" field.
func (_c *AgentRunCreate) SetAgentType(v string) *AgentRunCreate {
	_c.mutation.SetAgentType(v)
	return _c
}

// SetModel sets the "model" field.
func (_c *AgentRunCreate) SetModel(v string) *AgentRunCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetTargetID sets the "target_id" field.
func (_c *AgentRunCreate) SetTargetID(v string) *AgentRunCreate {
	_c.mutation.SetTargetID(v)
	return _c
}

// SetTurns sets the "turns" field.
func (_c *AgentRunCreate) SetTurns(v int) *AgentRunCreate {
	_c.mutation.SetTurns(v)
	return _c
}

// SetNillableTurns sets the "turns" field if the given value is not nil.
func (_c *AgentRunCreate) SetNillableTurns(v *int) *AgentRunCreate {
	if v != nil {
		_c.SetTurns(*v)
	}
	return _c
}

// SetInputTokens sets the "input_tokens" field.
func (_c *AgentRunCreate) SetInputTokens(v int) *AgentRunCreate {
	_c.mutation.SetInputTokens(v)
	return _c
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_c *AgentRunCreate) SetNillableInputTokens(v *int) *AgentRunCreate {
	if v != nil {
		_c.SetInputTokens(*v)
	}
	return _c
}

// SetOutputTokens sets the "output_tokens" field.
func (_c *AgentRunCreate) SetOutputTokens(v int) *AgentRunCreate {
	_c.mutation.SetOutputTokens(v)
	return _c
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_c *AgentRunCreate) SetNillableOutputTokens(v *int) *AgentRunCreate {
	if v != nil {
		_c.SetOutputTokens(*v)
	}
	return _c
}

// SetEstimatedCostUsd sets the "estimated_cost_usd" field.
func (_c *AgentRunCreate) SetEstimatedCostUsd(v float64) *AgentRunCreate {
	_c.mutation.SetEstimatedCostUsd(v)
	return _c
}

// SetNillableEstimatedCostUsd sets the "estimated_cost_usd" field if the given value is not nil.
func (_c *AgentRunCreate) SetNillableEstimatedCostUsd(v *float64) *AgentRunCreate {
	if v != nil {
		_c.SetEstimatedCostUsd(*v)
	}
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *AgentRunCreate) SetDurationMs(v int64) *AgentRunCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *AgentRunCreate) SetNillableDurationMs(v *int64) *AgentRunCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *AgentRunCreate) SetStatus(v agentrun.Status) *AgentRunCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AgentRunCreate) SetNillableStatus(v *agentrun.Status) *AgentRunCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *AgentRunCreate) SetErrorMessage(v string) *AgentRunCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *AgentRunCreate) SetNillableErrorMessage(v *string) *AgentRunCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AgentRunCreate) SetCreatedAt(v time.Time) *AgentRunCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AgentRunCreate) SetNillableCreatedAt(v *time.Time) *AgentRunCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AgentRunCreate) SetUpdatedAt(v time.Time) *AgentRunCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AgentRunCreate) SetNillableUpdatedAt(v *time.Time) *AgentRunCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AgentRunCreate) SetID(v string) *AgentRunCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *AgentRunCreate) SetNillableID(v *string) *AgentRunCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddToolCallIDs adds the "tool_calls" edge to the AgentToolCall entity by IDs.
func (_c *AgentRunCreate) AddToolCallIDs(ids ...string) *AgentRunCreate {
	_c.mutation.AddToolCallIDs(ids...)
	return _c
}

// AddToolCalls adds the "tool_calls" edges to the AgentToolCall entity.
func (_c *AgentRunCreate) AddToolCalls(v ...*AgentToolCall) *AgentRunCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddToolCallIDs(ids...)
}

// Mutation returns the AgentRunMutation object of the builder.
func (_c *AgentRunCreate) Mutation() *AgentRunMutation {
	return _c.mutation
}

// Save creates the AgentRun in the database.
func (_c *AgentRunCreate) Save(ctx context.Context) (*AgentRun, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentRunCreate) SaveX(ctx context.Context) *AgentRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentRunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentRunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentRunCreate) defaults() {
	if _, ok := _c.mutation.Turns(); !ok {
		v := agentrun.DefaultTurns
		_c.mutation.SetTurns(v)
	}
	if _, ok := _c.mutation.InputTokens(); !ok {
		v := agentrun.DefaultInputTokens
		_c.mutation.SetInputTokens(v)
	}
	if _, ok := _c.mutation.OutputTokens(); !ok {
		v := agentrun.DefaultOutputTokens
		_c.mutation.SetOutputTokens(v)
	}
	if _, ok := _c.mutation.EstimatedCostUsd(); !ok {
		v := agentrun.DefaultEstimatedCostUsd
		_c.mutation.SetEstimatedCostUsd(v)
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		v := agentrun.DefaultDurationMs
		_c.mutation.SetDurationMs(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := agentrun.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := agentrun.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := agentrun.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := agentrun.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentRunCreate) check() error {
	if _, ok := _c.mutation.AgentType(); !ok {
		return &ValidationError{Name: "agent_type", err: errors.New(`ent: missing required field "AgentRun.agent_type"`)}
	}
	if _, ok := _c.mutation.Model(); !ok {
		return &ValidationError{Name: "model", err: errors.New(`ent: missing required field "AgentRun.model"`)}
	}
	if _, ok := _c.mutation.TargetID(); !ok {
		return &ValidationError{Name: "target_id", err: errors.New(`ent: missing required field "AgentRun.target_id"`)}
	}
	if _, ok := _c.mutation.Turns(); !ok {
		return &ValidationError{Name: "turns", err: errors.New(`ent: missing required field "AgentRun.turns"`)}
	}
	if _, ok := _c.mutation.InputTokens(); !ok {
		return &ValidationError{Name: "input_tokens", err: errors.New(`ent: missing required field "AgentRun.input_tokens"`)}
	}
	if _, ok := _c.mutation.OutputTokens(); !ok {
		return &ValidationError{Name: "output_tokens", err: errors.New(`ent: missing required field "AgentRun.output_tokens"`)}
	}
	if _, ok := _c.mutation.EstimatedCostUsd(); !ok {
		return &ValidationError{Name: "estimated_cost_usd", err: errors.New(`ent: missing required field "AgentRun.estimated_cost_usd"`)}
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		return &ValidationError{Name: "duration_ms", err: errors.New(`ent: missing required field "AgentRun.duration_ms"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "AgentRun.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := agentrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentRun.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AgentRun.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "AgentRun.updated_at"`)}
	}
	return nil
}

func (_c *AgentRunCreate) sqlSave(ctx context.Context) (*AgentRun, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected AgentRun.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AgentRunCreate) createSpec() (*AgentRun, *sqlgraph.CreateSpec) {
	var (
		_node = &AgentRun{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agentrun.Table, sqlgraph.NewFieldSpec(agentrun.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.AgentType(); ok {
		_spec.SetField(agentrun.FieldAgentType, field.TypeString, value)
		_node.AgentType = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(agentrun.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.TargetID(); ok {
		_spec.SetField(agentrun.FieldTargetID, field.TypeString, value)
		_node.TargetID = value
	}
	if value, ok := _c.mutation.Turns(); ok {
		_spec.SetField(agentrun.FieldTurns, field.TypeInt, value)
		_node.Turns = value
	}
	if value, ok := _c.mutation.InputTokens(); ok {
		_spec.SetField(agentrun.FieldInputTokens, field.TypeInt, value)
		_node.InputTokens = value
	}
	if value, ok := _c.mutation.OutputTokens(); ok {
		_spec.SetField(agentrun.FieldOutputTokens, field.TypeInt, value)
		_node.OutputTokens = value
	}
	if value, ok := _c.mutation.EstimatedCostUsd(); ok {
		_spec.SetField(agentrun.FieldEstimatedCostUsd, field.TypeFloat64, value)
		_node.EstimatedCostUsd = value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(agentrun.FieldDurationMs, field.TypeInt64, value)
		_node.DurationMs = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(agentrun.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(agentrun.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(agentrun.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(agentrun.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ToolCallsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AgentRun.Create().
//		SetAgentType(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AgentRunUpsert) {
//			SetAgentType(v+v).
//		}).
//		Exec(ctx)
func (_c *AgentRunCreate) OnConflict(opts ...sql.ConflictOption) *AgentRunUpsertOne {
	_c.conflict = opts
	return &AgentRunUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AgentRun.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AgentRunCreate) OnConflictColumns(columns ...string) *AgentRunUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AgentRunUpsertOne{
		create: _c,
	}
}

type (
	// AgentRunUpsertOne is the builder for "upsert"-ing
	//  one AgentRun node.
	AgentRunUpsertOne struct {
		create *AgentRunCreate
	}

	// AgentRunUpsert is the "OnConflict" setter.
	AgentRunUpsert struct {
		*sql.UpdateSet
	}
)

// SetAgentType sets the "agent_type" field.
func (u *AgentRunUpsert) SetAgentType(v string) *AgentRunUpsert {
	u.Set(agentrun.FieldAgentType, v)
	return u
}

// UpdateAgentType sets the "agent_type" field to the value that was provided on create.
func (u *AgentRunUpsert) UpdateAgentType() *AgentRunUpsert {
	u.SetExcluded(agentrun.FieldAgentType)
	return u
}

// SetModel sets the "model" field.
func (u *AgentRunUpsert) SetModel(v string) *AgentRunUpsert {
	u.Set(agentrun.FieldModel, v)
	return u
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *AgentRunUpsert) UpdateModel() *AgentRunUpsert {
	u.SetExcluded(agentrun.FieldModel)
	return u
}

// SetTargetID sets the "target_id" field.
func (u *AgentRunUpsert) SetTargetID(v string) *AgentRunUpsert {
	u.Set(agentrun.FieldTargetID, v)
	return u
}

// UpdateTargetID sets the "target_id" field to the value that was provided on create.
func (u *AgentRunUpsert) UpdateTargetID() *AgentRunUpsert {
	u.SetExcluded(agentrun.FieldTargetID)
	return u
}

// SetTurns sets the "turns" field.
func (u *AgentRunUpsert) SetTurns(v int) *AgentRunUpsert {
	u.Set(agentrun.FieldTurns, v)
	return u
}

// UpdateTurns sets the "turns" field to the value that was provided on create.
func (u *AgentRunUpsert) UpdateTurns() *AgentRunUpsert {
	u.SetExcluded(agentrun.FieldTurns)
	return u
}

// AddTurns adds v to the "turns" field.
func (u *AgentRunUpsert) AddTurns(v int) *AgentRunUpsert {
	u.Add(agentrun.FieldTurns, v)
	return u
}

// SetInputTokens sets the "input_tokens" field.
func (u *AgentRunUpsert) SetInputTokens(v int) *AgentRunUpsert {
	u.Set(agentrun.FieldInputTokens, v)
	return u
}

// UpdateInputTokens sets the "input_tokens" field to the value that was provided on create.
func (u *AgentRunUpsert) UpdateInputTokens() *AgentRunUpsert {
	u.SetExcluded(agentrun.FieldInputTokens)
	return u
}

// AddInputTokens adds v to the "input_tokens" field.
func (u *AgentRunUpsert) AddInputTokens(v int) *AgentRunUpsert {
	u.Add(agentrun.FieldInputTokens, v)
	return u
}

// SetOutputTokens sets the "output_tokens" field.
func (u *AgentRunUpsert) SetOutputTokens(v int) *AgentRunUpsert {
	u.Set(agentrun.FieldOutputTokens, v)
	return u
}

// UpdateOutputTokens sets the "output_tokens" field to the value that was provided on create.
func (u *AgentRunUpsert) UpdateOutputTokens() *AgentRunUpsert {
	u.SetExcluded(agentrun.FieldOutputTokens)
	return u
}

// AddOutputTokens adds v to the "output_tokens" field.
func (u *AgentRunUpsert) AddOutputTokens(v int) *AgentRunUpsert {
	u.Add(agentrun.FieldOutputTokens, v)
	return u
}

// SetEstimatedCostUsd sets the "estimated_cost_usd" field.
func (u *AgentRunUpsert) SetEstimatedCostUsd(v float64) *AgentRunUpsert {
	u.Set(agentrun.FieldEstimatedCostUsd, v)
	return u
}

// UpdateEstimatedCostUsd sets the "estimated_cost_usd" field to the value that was provided on create.
func (u *AgentRunUpsert) UpdateEstimatedCostUsd() *AgentRunUpsert {
	u.SetExcluded(agentrun.FieldEstimatedCostUsd)
	return u
}

// AddEstimatedCostUsd adds v to the "estimated_cost_usd" field.
func (u *AgentRunUpsert) AddEstimatedCostUsd(v float64) *AgentRunUpsert {
	u.Add(agentrun.FieldEstimatedCostUsd, v)
	return u
}

// SetDurationMs sets the "duration_ms" field.
func (u *AgentRunUpsert) SetDurationMs(v int64) *AgentRunUpsert {
	u.Set(agentrun.FieldDurationMs, v)
	return u
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *AgentRunUpsert) UpdateDurationMs() *AgentRunUpsert {
	u.SetExcluded(agentrun.FieldDurationMs)
	return u
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *AgentRunUpsert) AddDurationMs(v int64) *AgentRunUpsert {
	u.Add(agentrun.FieldDurationMs, v)
	return u
}

// SetStatus sets the "status" field.
func (u *AgentRunUpsert) SetStatus(v agentrun.Status) *AgentRunUpsert {
	u.Set(agentrun.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AgentRunUpsert) UpdateStatus() *AgentRunUpsert {
	u.SetExcluded(agentrun.FieldStatus)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *AgentRunUpsert) SetErrorMessage(v string) *AgentRunUpsert {
	u.Set(agentrun.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *AgentRunUpsert) UpdateErrorMessage() *AgentRunUpsert {
	u.SetExcluded(agentrun.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *AgentRunUpsert) ClearErrorMessage() *AgentRunUpsert {
	u.SetNull(agentrun.FieldErrorMessage)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AgentRunUpsert) SetUpdatedAt(v time.Time) *AgentRunUpsert {
	u.Set(agentrun.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AgentRunUpsert) UpdateUpdatedAt() *AgentRunUpsert {
	u.SetExcluded(agentrun.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.AgentRun.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(agentrun.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AgentRunUpsertOne) UpdateNewValues() *AgentRunUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(agentrun.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(agentrun.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AgentRun.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AgentRunUpsertOne) Ignore() *AgentRunUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AgentRunUpsertOne) DoNothing() *AgentRunUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AgentRunCreate.OnConflict
// documentation for more info.
func (u *AgentRunUpsertOne) Update(set func(*AgentRunUpsert)) *AgentRunUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AgentRunUpsert{UpdateSet: update})
	}))
	return u
}

// SetAgentType sets the "agent_type" field.
func (u *AgentRunUpsertOne) SetAgentType(v string) *AgentRunUpsertOne {
	return u.Update(func(s *AgentRunUpsert) {
		s.SetAgentType(v)
	})
}

// UpdateAgentType sets the "agent_type" field to the value that was provided on create.
func (u *AgentRunUpsertOne) UpdateAgentType() *AgentRunUpsertOne {
	return u.Update(func(s *AgentRunUpsert) {
		s.UpdateAgentType()
	})
}

// SetModel sets the "model" field.
func (u *AgentRunUpsertOne) SetModel(v string) *AgentRunUpsertOne {
	return u.Update(func(s *AgentRunUpsert) {
		s.SetModel(v)
	})
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *AgentRunUpsertOne) UpdateModel() *AgentRunUpsertOne {
	return u.Update(func(s *AgentRunUpsert) {
		s.UpdateModel()
	})
}

// SetTargetID sets the "target_id" field.
func (u *AgentRunUpsertOne) SetTargetID(v string) *AgentRunUpsertOne {
	return u.Update(func(s *AgentRunUpsert) {
		s.SetTargetID(v)
	})
}

// UpdateTargetID sets the "target_id" field to the value that was provided on create.
func (u *AgentRunUpsertOne) UpdateTargetID() *AgentRunUpsertOne {
	return u.Update(func(s *AgentRunUpsert) {
		s.UpdateTargetID()
	})
}

// SetTurns sets the "turns" field.
func (u *AgentRunUpsertOne) SetTurns(v int) *AgentRunUpsertOne {
	return u.Update(func(s *AgentRunUpsert) {
		s.SetTurns(v)
	})
}

// AddTurns adds v to the "turns" field.
func (u *AgentRunUpsertOne) AddTurns(v int) *AgentRunUpsertOne {
	return u.Update(func(s *AgentRunUpsert) {
		s.AddTurns(v)
	})
}

// UpdateTurns sets the "turns" field to the value that was provided on create.
func (u *AgentRunUpsertOne) UpdateTurns() *AgentRunUpsertOne {
	return u.Update(func(s *AgentRunUpsert) {
		s.UpdateTurns()
	})
}

// SetInputTokens sets the "input_tokens" field.
func (u *AgentRunUpsertOne) SetInputTokens(v int) *AgentRunUpsertOne {
	return u.Update(func(s *AgentRunUpsert) {
		s.SetInputTokens(v)
	})
}

// AddInputTokens adds v to the "input_tokens" field.
func (u *AgentRunUpsertOne) AddInputTokens(v int) *AgentRunUpsertOne {
	return u.Update(func(s *AgentRunUpsert) {
		s.AddInputTokens(v)
	})
}

// UpdateInputTokens sets the "input_tokens" field to the value that was provided on create.
func (u *AgentRunUpsertOne) UpdateInputTokens() *AgentRunUpsertOne {
	return u.Update(func(s *AgentRunUpsert) {
		s.UpdateInputTokens()
	})
}

// SetOutputTokens sets the "output_tokens" field.
func (u *AgentRunUpsertOne) SetOutputTokens(v int) *AgentRunUpsertOne {
	return u.Update(func(s *AgentRunUpsert) {
		s.SetOutputTokens(v)
	})
}

// AddOutputTokens adds v to the "output_tokens" field.
func (u *AgentRunUpsertOne) AddOutputTokens(v int) *AgentRunUpsertOne {
	return u.Update(func(s *AgentRunUpsert) {
		s.AddOutputTokens(v)
	})
}

// UpdateOutputTokens sets the "output_tokens" field to the value that was provided on create.
func (u *AgentRunUpsertOne) UpdateOutputTokens() *AgentRunUpsertOne {
	return u.Update(func(s *AgentRunUpsert) {
		s.UpdateOutputTokens()
	})
}

// SetEstimatedCostUsd sets the "estimated_cost_usd" field.
func (u *AgentRunUpsertOne) SetEstimatedCostUsd(v float64) *AgentRunUpsertOne {
	return u.Update(func(s *AgentRunUpsert) {
		s.SetEstimatedCostUsd(v)
	})
}

// AddEstimatedCostUsd adds v to the "estimated_cost_usd" field.
func (u *AgentRunUpsertOne) AddEstimatedCostUsd(v float64) *AgentRunUpsertOne {
	return u.Update(func(s *AgentRunUpsert) {
		s.AddEstimatedCostUsd(v)
	})
}

// UpdateEstimatedCostUsd sets the "estimated_cost_usd" field to the value that was provided on create.
func (u *AgentRunUpsertOne) UpdateEstimatedCostUsd() *AgentRunUpsertOne {
	return u.Update(func(s *AgentRunUpsert) {
		s.UpdateEstimatedCostUsd()
	})
}

// SetDurationMs sets the "duration_ms" field.
func (u *AgentRunUpsertOne) SetDurationMs(v int64) *AgentRunUpsertOne {
	return u.Update(func(s *AgentRunUpsert) {
		s.SetDurationMs(v)
	})
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *AgentRunUpsertOne) AddDurationMs(v int64) *AgentRunUpsertOne {
	return u.Update(func(s *AgentRunUpsert) {
		s.AddDurationMs(v)
	})
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *AgentRunUpsertOne) UpdateDurationMs() *AgentRunUpsertOne {
	return u.Update(func(s *AgentRunUpsert) {
		s.UpdateDurationMs()
	})
}

// SetStatus sets the "status" field.
func (u *AgentRunUpsertOne) SetStatus(v agentrun.Status) *AgentRunUpsertOne {
	return u.Update(func(s *AgentRunUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AgentRunUpsertOne) UpdateStatus() *AgentRunUpsertOne {
	return u.Update(func(s *AgentRunUpsert) {
		s.UpdateStatus()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *AgentRunUpsertOne) SetErrorMessage(v string) *AgentRunUpsertOne {
	return u.Update(func(s *AgentRunUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *AgentRunUpsertOne) UpdateErrorMessage() *AgentRunUpsertOne {
	return u.Update(func(s *AgentRunUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *AgentRunUpsertOne) ClearErrorMessage() *AgentRunUpsertOne {
	return u.Update(func(s *AgentRunUpsert) {
		s.ClearErrorMessage()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AgentRunUpsertOne) SetUpdatedAt(v time.Time) *AgentRunUpsertOne {
	return u.Update(func(s *AgentRunUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AgentRunUpsertOne) UpdateUpdatedAt() *AgentRunUpsertOne {
	return u.Update(func(s *AgentRunUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *AgentRunUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AgentRunCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AgentRunUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AgentRunUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: AgentRunUpsertOne.ID is not supported by MySQL driver. Use AgentRunUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AgentRunUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AgentRunCreateBulk is the builder for creating many AgentRun entities in bulk.
type AgentRunCreateBulk struct {
	config
	err      error
	builders []*AgentRunCreate
	conflict []sql.ConflictOption
}

// Save creates the AgentRun entities in the database.
func (_c *AgentRunCreateBulk) Save(ctx context.Context) ([]*AgentRun, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AgentRun, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentRunMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AgentRunCreateBulk) SaveX(ctx context.Context) []*AgentRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentRunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentRunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AgentRun.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AgentRunUpsert) {
//			SetAgentType(v+v).
//		}).
//		Exec(ctx)
func (_c *AgentRunCreateBulk) OnConflict(opts ...sql.ConflictOption) *AgentRunUpsertBulk {
	_c.conflict = opts
	return &AgentRunUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AgentRun.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AgentRunCreateBulk) OnConflictColumns(columns ...string) *AgentRunUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AgentRunUpsertBulk{
		create: _c,
	}
}

// AgentRunUpsertBulk is the builder for "upsert"-ing
// a bulk of AgentRun nodes.
type AgentRunUpsertBulk struct {
	create *AgentRunCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AgentRun.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(agentrun.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AgentRunUpsertBulk) UpdateNewValues() *AgentRunUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(agentrun.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(agentrun.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AgentRun.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AgentRunUpsertBulk) Ignore() *AgentRunUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AgentRunUpsertBulk) DoNothing() *AgentRunUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AgentRunCreateBulk.OnConflict
// documentation for more info.
func (u *AgentRunUpsertBulk) Update(set func(*AgentRunUpsert)) *AgentRunUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AgentRunUpsert{UpdateSet: update})
	}))
	return u
}

// SetAgentType sets the "agent_type" field.
func (u *AgentRunUpsertBulk) SetAgentType(v string) *AgentRunUpsertBulk {
	return u.Update(func(s *AgentRunUpsert) {
		s.SetAgentType(v)
	})
}

// UpdateAgentType sets the "agent_type" field to the value that was provided on create.
func (u *AgentRunUpsertBulk) UpdateAgentType() *AgentRunUpsertBulk {
	return u.Update(func(s *AgentRunUpsert) {
		s.UpdateAgentType()
	})
}

// SetModel sets the "model" field.
func (u *AgentRunUpsertBulk) SetModel(v string) *AgentRunUpsertBulk {
	return u.Update(func(s *AgentRunUpsert) {
		s.SetModel(v)
	})
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *AgentRunUpsertBulk) UpdateModel() *AgentRunUpsertBulk {
	return u.Update(func(s *AgentRunUpsert) {
		s.UpdateModel()
	})
}

// SetTargetID sets the "target_id" field.
func (u *AgentRunUpsertBulk) SetTargetID(v string) *AgentRunUpsertBulk {
	return u.Update(func(s *AgentRunUpsert) {
		s.SetTargetID(v)
	})
}

// UpdateTargetID sets the "target_id" field to the value that was provided on create.
func (u *AgentRunUpsertBulk) UpdateTargetID() *AgentRunUpsertBulk {
	return u.Update(func(s *AgentRunUpsert) {
		s.UpdateTargetID()
	})
}

// SetTurns sets the "turns" field.
func (u *AgentRunUpsertBulk) SetTurns(v int) *AgentRunUpsertBulk {
	return u.Update(func(s *AgentRunUpsert) {
		s.SetTurns(v)
	})
}

// AddTurns adds v to the "turns" field.
func (u *AgentRunUpsertBulk) AddTurns(v int) *AgentRunUpsertBulk {
	return u.Update(func(s *AgentRunUpsert) {
		s.AddTurns(v)
	})
}

// UpdateTurns sets the "turns" field to the value that was provided on create.
func (u *AgentRunUpsertBulk) UpdateTurns() *AgentRunUpsertBulk {
	return u.Update(func(s *AgentRunUpsert) {
		s.UpdateTurns()
	})
}

// SetInputTokens sets the "input_tokens" field.
func (u *AgentRunUpsertBulk) SetInputTokens(v int) *AgentRunUpsertBulk {
	return u.Update(func(s *AgentRunUpsert) {
		s.SetInputTokens(v)
	})
}

// AddInputTokens adds v to the "input_tokens" field.
func (u *AgentRunUpsertBulk) AddInputTokens(v int) *AgentRunUpsertBulk {
	return u.Update(func(s *AgentRunUpsert) {
		s.AddInputTokens(v)
	})
}

// UpdateInputTokens sets the "input_tokens" field to the value that was provided on create.
func (u *AgentRunUpsertBulk) UpdateInputTokens() *AgentRunUpsertBulk {
	return u.Update(func(s *AgentRunUpsert) {
		s.UpdateInputTokens()
	})
}

// SetOutputTokens sets the "output_tokens" field.
func (u *AgentRunUpsertBulk) SetOutputTokens(v int) *AgentRunUpsertBulk {
	return u.Update(func(s *AgentRunUpsert) {
		s.SetOutputTokens(v)
	})
}

// AddOutputTokens adds v to the "output_tokens" field.
func (u *AgentRunUpsertBulk) AddOutputTokens(v int) *AgentRunUpsertBulk {
	return u.Update(func(s *AgentRunUpsert) {
		s.AddOutputTokens(v)
	})
}

// UpdateOutputTokens sets the "output_tokens" field to the value that was provided on create.
func (u *AgentRunUpsertBulk) UpdateOutputTokens() *AgentRunUpsertBulk {
	return u.Update(func(s *AgentRunUpsert) {
		s.UpdateOutputTokens()
	})
}

// SetEstimatedCostUsd sets the "estimated_cost_usd" field.
func (u *AgentRunUpsertBulk) SetEstimatedCostUsd(v float64) *AgentRunUpsertBulk {
	return u.Update(func(s *AgentRunUpsert) {
		s.SetEstimatedCostUsd(v)
	})
}

// AddEstimatedCostUsd adds v to the "estimated_cost_usd" field.
func (u *AgentRunUpsertBulk) AddEstimatedCostUsd(v float64) *AgentRunUpsertBulk {
	return u.Update(func(s *AgentRunUpsert) {
		s.AddEstimatedCostUsd(v)
	})
}

// UpdateEstimatedCostUsd sets the "estimated_cost_usd" field to the value that was provided on create.
func (u *AgentRunUpsertBulk) UpdateEstimatedCostUsd() *AgentRunUpsertBulk {
	return u.Update(func(s *AgentRunUpsert) {
		s.UpdateEstimatedCostUsd()
	})
}

// SetDurationMs sets the "duration_ms" field.
func (u *AgentRunUpsertBulk) SetDurationMs(v int64) *AgentRunUpsertBulk {
	return u.Update(func(s *AgentRunUpsert) {
		s.SetDurationMs(v)
	})
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *AgentRunUpsertBulk) AddDurationMs(v int64) *AgentRunUpsertBulk {
	return u.Update(func(s *AgentRunUpsert) {
		s.AddDurationMs(v)
	})
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *AgentRunUpsertBulk) UpdateDurationMs() *AgentRunUpsertBulk {
	return u.Update(func(s *AgentRunUpsert) {
		s.UpdateDurationMs()
	})
}

// SetStatus sets the "status" field.
func (u *AgentRunUpsertBulk) SetStatus(v agentrun.Status) *AgentRunUpsertBulk {
	return u.Update(func(s *AgentRunUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AgentRunUpsertBulk) UpdateStatus() *AgentRunUpsertBulk {
	return u.Update(func(s *AgentRunUpsert) {
		s.UpdateStatus()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *AgentRunUpsertBulk) SetErrorMessage(v string) *AgentRunUpsertBulk {
	return u.Update(func(s *AgentRunUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *AgentRunUpsertBulk) UpdateErrorMessage() *AgentRunUpsertBulk {
	return u.Update(func(s *AgentRunUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *AgentRunUpsertBulk) ClearErrorMessage() *AgentRunUpsertBulk {
	return u.Update(func(s *AgentRunUpsert) {
		s.ClearErrorMessage()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AgentRunUpsertBulk) SetUpdatedAt(v time.Time) *AgentRunUpsertBulk {
	return u.Update(func(s *AgentRunUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AgentRunUpsertBulk) UpdateUpdatedAt() *AgentRunUpsertBulk {
	return u.Update(func(s *AgentRunUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *AgentRunUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AgentRunCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AgentRunCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AgentRunUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
