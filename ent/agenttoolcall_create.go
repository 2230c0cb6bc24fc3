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

// AgentToolCallCreate is the builder for creating a AgentToolCall entity.
type AgentToolCallCreate struct {
	config
	mutation *AgentToolCallMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetAgentRunID sets the "agent_run_id" field.
func (_c *AgentToolCallCreate) SetAgentRunID(v string) *AgentToolCallCreate {
	_c.mutation.SetAgentRunID(v)
	return _c
}

// SetSeq sets the "seq" field.
func (_c *AgentToolCallCreate) SetSeq(v int) *AgentToolCallCreate {
	_c.mutation.SetSeq(v)
	return _c
}

// SetToolName sets the "tool_name" field.
func (_c *AgentToolCallCreate) SetToolName(v string) *AgentToolCallCreate {
	_c.mutation.SetToolName(v)
	return _c
}

// SetArguments sets the "arguments" field.
func (_c *AgentToolCallCreate) SetArguments(v string) *AgentToolCallCreate {
	_c.mutation.SetArguments(v)
	return _c
}

// SetNillableArguments sets the "arguments" field if the given value is not nil.
func (_c *AgentToolCallCreate) SetNillableArguments(v *string) *AgentToolCallCreate {
	if v != nil {
		_c.SetArguments(*v)
	}
	return _c
}

// SetOutputBytes sets the "output_bytes" field.
func (_c *AgentToolCallCreate) SetOutputBytes(v int) *AgentToolCallCreate {
	_c.mutation.SetOutputBytes(v)
	return _c
}

// SetNillableOutputBytes sets the "output_bytes" field if the given value is not nil.
func (_c *AgentToolCallCreate) SetNillableOutputBytes(v *int) *AgentToolCallCreate {
	if v != nil {
		_c.SetOutputBytes(*v)
	}
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *AgentToolCallCreate) SetDurationMs(v int64) *AgentToolCallCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *AgentToolCallCreate) SetNillableDurationMs(v *int64) *AgentToolCallCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// SetIsError sets the "is_error" field.
func (_c *AgentToolCallCreate) SetIsError(v bool) *AgentToolCallCreate {
	_c.mutation.SetIsError(v)
	return _c
}

// SetNillableIsError sets the "is_error" field if the given value is not nil.
func (_c *AgentToolCallCreate) SetNillableIsError(v *bool) *AgentToolCallCreate {
	if v != nil {
		_c.SetIsError(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AgentToolCallCreate) SetCreatedAt(v time.Time) *AgentToolCallCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AgentToolCallCreate) SetNillableCreatedAt(v *time.Time) *AgentToolCallCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AgentToolCallCreate) SetID(v string) *AgentToolCallCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *AgentToolCallCreate) SetNillableID(v *string) *AgentToolCallCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetRunID sets the "run" edge to the AgentRun entity by ID.
func (_c *AgentToolCallCreate) SetRunID(id string) *AgentToolCallCreate {
	_c.mutation.SetRunID(id)
	return _c
}

// SetRun sets the "run" edge to the AgentRun entity.
func (_c *AgentToolCallCreate) SetRun(v *AgentRun) *AgentToolCallCreate {
	return _c.SetRunID(v.ID)
}

// Mutation returns the AgentToolCallMutation object of the builder.
func (_c *AgentToolCallCreate) Mutation() *AgentToolCallMutation {
	return _c.mutation
}

// Save creates the AgentToolCall in the database.
func (_c *AgentToolCallCreate) Save(ctx context.Context) (*AgentToolCall, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentToolCallCreate) SaveX(ctx context.Context) *AgentToolCall {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentToolCallCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentToolCallCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentToolCallCreate) defaults() {
	if _, ok := _c.mutation.OutputBytes(); !ok {
		v := agenttoolcall.DefaultOutputBytes
		_c.mutation.SetOutputBytes(v)
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		v := agenttoolcall.DefaultDurationMs
		_c.mutation.SetDurationMs(v)
	}
	if _, ok := _c.mutation.IsError(); !ok {
		v := agenttoolcall.DefaultIsError
		_c.mutation.SetIsError(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := agenttoolcall.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := agenttoolcall.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentToolCallCreate) check() error {
	if _, ok := _c.mutation.AgentRunID(); !ok {
		return &ValidationError{Name: "agent_run_id", err: errors.New(`ent: missing required field "AgentToolCall.agent_run_id"`)}
	}
	if _, ok := _c.mutation.Seq(); !ok {
		return &ValidationError{Name: "seq", err: errors.New(`ent: missing required field "AgentToolCall.seq"`)}
	}
	if _, ok := _c.mutation.ToolName(); !ok {
		return &ValidationError{Name: "tool_name", err: errors.New(`ent: missing required field "AgentToolCall.tool_name"`)}
	}
	if _, ok := _c.mutation.OutputBytes(); !ok {
		return &ValidationError{Name: "output_bytes", err: errors.New(`ent: missing required field "AgentToolCall.output_bytes"`)}
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		return &ValidationError{Name: "duration_ms", err: errors.New(`ent: missing required field "AgentToolCall.duration_ms"`)}
	}
	if _, ok := _c.mutation.IsError(); !ok {
		return &ValidationError{Name: "is_error", err: errors.New(`ent: missing required field "AgentToolCall.is_error"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AgentToolCall.created_at"`)}
	}
	if len(_c.mutation.RunIDs()) == 0 {
		return &ValidationError{Name: "run", err: errors.New(`ent: missing required edge "AgentToolCall.run"`)}
	}
	return nil
}

func (_c *AgentToolCallCreate) sqlSave(ctx context.Context) (*AgentToolCall, error) {
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
			return nil, fmt.Errorf("unexpected AgentToolCall.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AgentToolCallCreate) createSpec() (*AgentToolCall, *sqlgraph.CreateSpec) {
	var (
		_node = &AgentToolCall{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agenttoolcall.Table, sqlgraph.NewFieldSpec(agenttoolcall.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Seq(); ok {
		_spec.SetField(agenttoolcall.FieldSeq, field.TypeInt, value)
		_node.Seq = value
	}
	if value, ok := _c.mutation.ToolName(); ok {
		_spec.SetField(agenttoolcall.FieldToolName, field.TypeString, value)
		_node.ToolName = value
	}
	if value, ok := _c.mutation.Arguments(); ok {
		_spec.SetField(agenttoolcall.FieldArguments, field.TypeString, value)
		_node.Arguments = value
	}
	if value, ok := _c.mutation.OutputBytes(); ok {
		_spec.SetField(agenttoolcall.FieldOutputBytes, field.TypeInt, value)
		_node.OutputBytes = value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(agenttoolcall.FieldDurationMs, field.TypeInt64, value)
		_node.DurationMs = value
	}
	if value, ok := _c.mutation.IsError(); ok {
		_spec.SetField(agenttoolcall.FieldIsError, field.TypeBool, value)
		_node.IsError = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(agenttoolcall.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.RunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agenttoolcall.RunTable,
			Columns: []string{agenttoolcall.RunColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentrun.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.AgentRunID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AgentToolCall.Create().
//		SetAgentRunID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AgentToolCallUpsert) {
//			SetAgentRunID(v+v).
//		}).
//		Exec(ctx)
func (_c *AgentToolCallCreate) OnConflict(opts ...sql.ConflictOption) *AgentToolCallUpsertOne {
	_c.conflict = opts
	return &AgentToolCallUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AgentToolCall.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AgentToolCallCreate) OnConflictColumns(columns ...string) *AgentToolCallUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AgentToolCallUpsertOne{
		create: _c,
	}
}

type (
	// AgentToolCallUpsertOne is the builder for "upsert"-ing
	//  one AgentToolCall node.
	AgentToolCallUpsertOne struct {
		create *AgentToolCallCreate
	}

	// AgentToolCallUpsert is the "OnConflict" setter.
	AgentToolCallUpsert struct {
		*sql.UpdateSet
	}
)

// SetAgentRunID sets the "agent_run_id" field.
func (u *AgentToolCallUpsert) SetAgentRunID(v string) *AgentToolCallUpsert {
	u.Set(agenttoolcall.FieldAgentRunID, v)
	return u
}

// UpdateAgentRunID sets the "agent_run_id" field to the value that was provided on create.
func (u *AgentToolCallUpsert) UpdateAgentRunID() *AgentToolCallUpsert {
	u.SetExcluded(agenttoolcall.FieldAgentRunID)
	return u
}

// SetSeq sets the "seq" field.
func (u *AgentToolCallUpsert) SetSeq(v int) *AgentToolCallUpsert {
	u.Set(agenttoolcall.FieldSeq, v)
	return u
}

// UpdateSeq sets the "seq" field to the value that was provided on create.
func (u *AgentToolCallUpsert) UpdateSeq() *AgentToolCallUpsert {
	u.SetExcluded(agenttoolcall.FieldSeq)
	return u
}

// AddSeq adds v to the "seq" field.
func (u *AgentToolCallUpsert) AddSeq(v int) *AgentToolCallUpsert {
	u.Add(agenttoolcall.FieldSeq, v)
	return u
}

// SetToolName sets the "tool_name" field.
func (u *AgentToolCallUpsert) SetToolName(v string) *AgentToolCallUpsert {
	u.Set(agenttoolcall.FieldToolName, v)
	return u
}

// UpdateToolName sets the "tool_name" field to the value that was provided on create.
func (u *AgentToolCallUpsert) UpdateToolName() *AgentToolCallUpsert {
	u.SetExcluded(agenttoolcall.FieldToolName)
	return u
}

// SetArguments sets the "arguments" field.
func (u *AgentToolCallUpsert) SetArguments(v string) *AgentToolCallUpsert {
	u.Set(agenttoolcall.FieldArguments, v)
	return u
}

// UpdateArguments sets the "arguments" field to the value that was provided on create.
func (u *AgentToolCallUpsert) UpdateArguments() *AgentToolCallUpsert {
	u.SetExcluded(agenttoolcall.FieldArguments)
	return u
}

// ClearArguments clears the value of the "arguments" field.
func (u *AgentToolCallUpsert) ClearArguments() *AgentToolCallUpsert {
	u.SetNull(agenttoolcall.FieldArguments)
	return u
}

// SetOutputBytes sets the "output_bytes" field.
func (u *AgentToolCallUpsert) SetOutputBytes(v int) *AgentToolCallUpsert {
	u.Set(agenttoolcall.FieldOutputBytes, v)
	return u
}

// UpdateOutputBytes sets the "output_bytes" field to the value that was provided on create.
func (u *AgentToolCallUpsert) UpdateOutputBytes() *AgentToolCallUpsert {
	u.SetExcluded(agenttoolcall.FieldOutputBytes)
	return u
}

// AddOutputBytes adds v to the "output_bytes" field.
func (u *AgentToolCallUpsert) AddOutputBytes(v int) *AgentToolCallUpsert {
	u.Add(agenttoolcall.FieldOutputBytes, v)
	return u
}

// SetDurationMs sets the "duration_ms" field.
func (u *AgentToolCallUpsert) SetDurationMs(v int64) *AgentToolCallUpsert {
	u.Set(agenttoolcall.FieldDurationMs, v)
	return u
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *AgentToolCallUpsert) UpdateDurationMs() *AgentToolCallUpsert {
	u.SetExcluded(agenttoolcall.FieldDurationMs)
	return u
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *AgentToolCallUpsert) AddDurationMs(v int64) *AgentToolCallUpsert {
	u.Add(agenttoolcall.FieldDurationMs, v)
	return u
}

// SetIsError sets the "is_error" field.
func (u *AgentToolCallUpsert) SetIsError(v bool) *AgentToolCallUpsert {
	u.Set(agenttoolcall.FieldIsError, v)
	return u
}

// UpdateIsError sets the "is_error" field to the value that was provided on create.
func (u *AgentToolCallUpsert) UpdateIsError() *AgentToolCallUpsert {
	u.SetExcluded(agenttoolcall.FieldIsError)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.AgentToolCall.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(agenttoolcall.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AgentToolCallUpsertOne) UpdateNewValues() *AgentToolCallUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(agenttoolcall.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(agenttoolcall.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AgentToolCall.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AgentToolCallUpsertOne) Ignore() *AgentToolCallUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AgentToolCallUpsertOne) DoNothing() *AgentToolCallUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AgentToolCallCreate.OnConflict
// documentation for more info.
func (u *AgentToolCallUpsertOne) Update(set func(*AgentToolCallUpsert)) *AgentToolCallUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AgentToolCallUpsert{UpdateSet: update})
	}))
	return u
}

// SetAgentRunID sets the "agent_run_id" field.
func (u *AgentToolCallUpsertOne) SetAgentRunID(v string) *AgentToolCallUpsertOne {
	return u.Update(func(s *AgentToolCallUpsert) {
		s.SetAgentRunID(v)
	})
}

// UpdateAgentRunID sets the "agent_run_id" field to the value that was provided on create.
func (u *AgentToolCallUpsertOne) UpdateAgentRunID() *AgentToolCallUpsertOne {
	return u.Update(func(s *AgentToolCallUpsert) {
		s.UpdateAgentRunID()
	})
}

// SetSeq sets the "seq" field.
func (u *AgentToolCallUpsertOne) SetSeq(v int) *AgentToolCallUpsertOne {
	return u.Update(func(s *AgentToolCallUpsert) {
		s.SetSeq(v)
	})
}

// AddSeq adds v to the "seq" field.
func (u *AgentToolCallUpsertOne) AddSeq(v int) *AgentToolCallUpsertOne {
	return u.Update(func(s *AgentToolCallUpsert) {
		s.AddSeq(v)
	})
}

// UpdateSeq sets the "seq" field to the value that was provided on create.
func (u *AgentToolCallUpsertOne) UpdateSeq() *AgentToolCallUpsertOne {
	return u.Update(func(s *AgentToolCallUpsert) {
		s.UpdateSeq()
	})
}

// SetToolName sets the "tool_name" field.
func (u *AgentToolCallUpsertOne) SetToolName(v string) *AgentToolCallUpsertOne {
	return u.Update(func(s *AgentToolCallUpsert) {
		s.SetToolName(v)
	})
}

// UpdateToolName sets the "tool_name" field to the value that was provided on create.
func (u *AgentToolCallUpsertOne) UpdateToolName() *AgentToolCallUpsertOne {
	return u.Update(func(s *AgentToolCallUpsert) {
		s.UpdateToolName()
	})
}

// SetArguments sets the "arguments" field.
func (u *AgentToolCallUpsertOne) SetArguments(v string) *AgentToolCallUpsertOne {
	return u.Update(func(s *AgentToolCallUpsert) {
		s.SetArguments(v)
	})
}

// UpdateArguments sets the "arguments" field to the value that was provided on create.
func (u *AgentToolCallUpsertOne) UpdateArguments() *AgentToolCallUpsertOne {
	return u.Update(func(s *AgentToolCallUpsert) {
		s.UpdateArguments()
	})
}

// ClearArguments clears the value of the "arguments" field.
func (u *AgentToolCallUpsertOne) ClearArguments() *AgentToolCallUpsertOne {
	return u.Update(func(s *AgentToolCallUpsert) {
		s.ClearArguments()
	})
}

// SetOutputBytes sets the "output_bytes" field.
func (u *AgentToolCallUpsertOne) SetOutputBytes(v int) *AgentToolCallUpsertOne {
	return u.Update(func(s *AgentToolCallUpsert) {
		s.SetOutputBytes(v)
	})
}

// AddOutputBytes adds v to the "output_bytes" field.
func (u *AgentToolCallUpsertOne) AddOutputBytes(v int) *AgentToolCallUpsertOne {
	return u.Update(func(s *AgentToolCallUpsert) {
		s.AddOutputBytes(v)
	})
}

// UpdateOutputBytes sets the "output_bytes" field to the value that was provided on create.
func (u *AgentToolCallUpsertOne) UpdateOutputBytes() *AgentToolCallUpsertOne {
	return u.Update(func(s *AgentToolCallUpsert) {
		s.UpdateOutputBytes()
	})
}

// SetDurationMs sets the "duration_ms" field.
func (u *AgentToolCallUpsertOne) SetDurationMs(v int64) *AgentToolCallUpsertOne {
	return u.Update(func(s *AgentToolCallUpsert) {
		s.SetDurationMs(v)
	})
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *AgentToolCallUpsertOne) AddDurationMs(v int64) *AgentToolCallUpsertOne {
	return u.Update(func(s *AgentToolCallUpsert) {
		s.AddDurationMs(v)
	})
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *AgentToolCallUpsertOne) UpdateDurationMs() *AgentToolCallUpsertOne {
	return u.Update(func(s *AgentToolCallUpsert) {
		s.UpdateDurationMs()
	})
}

// SetIsError sets the "is_error" field.
func (u *AgentToolCallUpsertOne) SetIsError(v bool) *AgentToolCallUpsertOne {
	return u.Update(func(s *AgentToolCallUpsert) {
		s.SetIsError(v)
	})
}

// UpdateIsError sets the "is_error" field to the value that was provided on create.
func (u *AgentToolCallUpsertOne) UpdateIsError() *AgentToolCallUpsertOne {
	return u.Update(func(s *AgentToolCallUpsert) {
		s.UpdateIsError()
	})
}

// Exec executes the query.
func (u *AgentToolCallUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AgentToolCallCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AgentToolCallUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AgentToolCallUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: AgentToolCallUpsertOne.ID is not supported by MySQL driver. Use AgentToolCallUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AgentToolCallUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AgentToolCallCreateBulk is the builder for creating many AgentToolCall entities in bulk.
type AgentToolCallCreateBulk struct {
	config
	err      error
	builders []*AgentToolCallCreate
	conflict []sql.ConflictOption
}

// Save creates the AgentToolCall entities in the database.
func (_c *AgentToolCallCreateBulk) Save(ctx context.Context) ([]*AgentToolCall, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AgentToolCall, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentToolCallMutation)
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
func (_c *AgentToolCallCreateBulk) SaveX(ctx context.Context) []*AgentToolCall {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentToolCallCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentToolCallCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AgentToolCall.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AgentToolCallUpsert) {
//			SetAgentRunID(v+v).
//		}).
//		Exec(ctx)
func (_c *AgentToolCallCreateBulk) OnConflict(opts ...sql.ConflictOption) *AgentToolCallUpsertBulk {
	_c.conflict = opts
	return &AgentToolCallUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AgentToolCall.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AgentToolCallCreateBulk) OnConflictColumns(columns ...string) *AgentToolCallUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AgentToolCallUpsertBulk{
		create: _c,
	}
}

// AgentToolCallUpsertBulk is the builder for "upsert"-ing
// a bulk of AgentToolCall nodes.
type AgentToolCallUpsertBulk struct {
	create *AgentToolCallCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AgentToolCall.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(agenttoolcall.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AgentToolCallUpsertBulk) UpdateNewValues() *AgentToolCallUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(agenttoolcall.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(agenttoolcall.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AgentToolCall.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AgentToolCallUpsertBulk) Ignore() *AgentToolCallUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AgentToolCallUpsertBulk) DoNothing() *AgentToolCallUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AgentToolCallCreateBulk.OnConflict
// documentation for more info.
func (u *AgentToolCallUpsertBulk) Update(set func(*AgentToolCallUpsert)) *AgentToolCallUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AgentToolCallUpsert{UpdateSet: update})
	}))
	return u
}

// SetAgentRunID sets the "agent_run_id" field.
func (u *AgentToolCallUpsertBulk) SetAgentRunID(v string) *AgentToolCallUpsertBulk {
	return u.Update(func(s *AgentToolCallUpsert) {
		s.SetAgentRunID(v)
	})
}

// UpdateAgentRunID sets the "agent_run_id" field to the value that was provided on create.
func (u *AgentToolCallUpsertBulk) UpdateAgentRunID() *AgentToolCallUpsertBulk {
	return u.Update(func(s *AgentToolCallUpsert) {
		s.UpdateAgentRunID()
	})
}

// SetSeq sets the "seq" field.
func (u *AgentToolCallUpsertBulk) SetSeq(v int) *AgentToolCallUpsertBulk {
	return u.Update(func(s *AgentToolCallUpsert) {
		s.SetSeq(v)
	})
}

// AddSeq adds v to the "seq" field.
func (u *AgentToolCallUpsertBulk) AddSeq(v int) *AgentToolCallUpsertBulk {
	return u.Update(func(s *AgentToolCallUpsert) {
		s.AddSeq(v)
	})
}

// UpdateSeq sets the "seq" field to the value that was provided on create.
func (u *AgentToolCallUpsertBulk) UpdateSeq() *AgentToolCallUpsertBulk {
	return u.Update(func(s *AgentToolCallUpsert) {
		s.UpdateSeq()
	})
}

// SetToolName sets the "tool_name" field.
func (u *AgentToolCallUpsertBulk) SetToolName(v string) *AgentToolCallUpsertBulk {
	return u.Update(func(s *AgentToolCallUpsert) {
		s.SetToolName(v)
	})
}

// UpdateToolName sets the "tool_name" field to the value that was provided on create.
func (u *AgentToolCallUpsertBulk) UpdateToolName() *AgentToolCallUpsertBulk {
	return u.Update(func(s *AgentToolCallUpsert) {
		s.UpdateToolName()
	})
}

// SetArguments sets the "arguments" field.
func (u *AgentToolCallUpsertBulk) SetArguments(v string) *AgentToolCallUpsertBulk {
	return u.Update(func(s *AgentToolCallUpsert) {
		s.SetArguments(v)
	})
}

// UpdateArguments sets the "arguments" field to the value that was provided on create.
func (u *AgentToolCallUpsertBulk) UpdateArguments() *AgentToolCallUpsertBulk {
	return u.Update(func(s *AgentToolCallUpsert) {
		s.UpdateArguments()
	})
}

// ClearArguments clears the value of the "arguments" field.
func (u *AgentToolCallUpsertBulk) ClearArguments() *AgentToolCallUpsertBulk {
	return u.Update(func(s *AgentToolCallUpsert) {
		s.ClearArguments()
	})
}

// SetOutputBytes sets the "output_bytes" field.
func (u *AgentToolCallUpsertBulk) SetOutputBytes(v int) *AgentToolCallUpsertBulk {
	return u.Update(func(s *AgentToolCallUpsert) {
		s.SetOutputBytes(v)
	})
}

// AddOutputBytes adds v to the "output_bytes" field.
func (u *AgentToolCallUpsertBulk) AddOutputBytes(v int) *AgentToolCallUpsertBulk {
	return u.Update(func(s *AgentToolCallUpsert) {
		s.AddOutputBytes(v)
	})
}

// UpdateOutputBytes sets the "output_bytes" field to the value that was provided on create.
func (u *AgentToolCallUpsertBulk) UpdateOutputBytes() *AgentToolCallUpsertBulk {
	return u.Update(func(s *AgentToolCallUpsert) {
		s.UpdateOutputBytes()
	})
}

// SetDurationMs sets the "duration_ms" field.
func (u *AgentToolCallUpsertBulk) SetDurationMs(v int64) *AgentToolCallUpsertBulk {
	return u.Update(func(s *AgentToolCallUpsert) {
		s.SetDurationMs(v)
	})
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *AgentToolCallUpsertBulk) AddDurationMs(v int64) *AgentToolCallUpsertBulk {
	return u.Update(func(s *AgentToolCallUpsert) {
		s.AddDurationMs(v)
	})
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *AgentToolCallUpsertBulk) UpdateDurationMs() *AgentToolCallUpsertBulk {
	return u.Update(func(s *AgentToolCallUpsert) {
		s.UpdateDurationMs()
	})
}

// SetIsError sets the "is_error" field.
func (u *AgentToolCallUpsertBulk) SetIsError(v bool) *AgentToolCallUpsertBulk {
	return u.Update(func(s *AgentToolCallUpsert) {
		s.SetIsError(v)
	})
}

// UpdateIsError sets the "is_error" field to the value that was provided on create.
func (u *AgentToolCallUpsertBulk) UpdateIsError() *AgentToolCallUpsertBulk {
	return u.Update(func(s *AgentToolCallUpsert) {
		s.UpdateIsError()
	})
}

// Exec executes the query.
func (u *AgentToolCallUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AgentToolCallCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AgentToolCallCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AgentToolCallUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
