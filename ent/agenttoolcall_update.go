// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/vulnsentinel/vulnsentinel/ent/agentrun"
	"github.com/vulnsentinel/vulnsentinel/ent/agenttoolcall"
	"github.com/vulnsentinel/vulnsentinel/ent/predicate"
)

// AgentToolCallUpdate is the builder for updating AgentToolCall entities.
type AgentToolCallUpdate struct {
	config
	hooks    []Hook
	mutation *AgentToolCallMutation
}

// Where appends a list predicates to the AgentToolCallUpdate builder.
func (_u *AgentToolCallUpdate) Where(ps ...predicate.AgentToolCall) *AgentToolCallUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAgentRunID sets the "agent_run_id" field.
func (_u *AgentToolCallUpdate) SetAgentRunID(v string) *AgentToolCallUpdate {
	_u.mutation.SetAgentRunID(v)
	return _u
}

// SetNillableAgentRunID sets the "agent_run_id" field if the given value is not nil.
func (_u *AgentToolCallUpdate) SetNillableAgentRunID(v *string) *AgentToolCallUpdate {
	if v != nil {
		_u.SetAgentRunID(*v)
	}
	return _u
}

// SetSeq sets the "seq" field.
func (_u *AgentToolCallUpdate) SetSeq(v int) *AgentToolCallUpdate {
	_u.mutation.ResetSeq()
	_u.mutation.SetSeq(v)
	return _u
}

// SetNillableSeq sets the "seq" field if the given value is not nil.
func (_u *AgentToolCallUpdate) SetNillableSeq(v *int) *AgentToolCallUpdate {
	if v != nil {
		_u.SetSeq(*v)
	}
	return _u
}

// AddSeq adds value to the "seq" field.
func (_u *AgentToolCallUpdate) AddSeq(v int) *AgentToolCallUpdate {
	_u.mutation.AddSeq(v)
	return _u
}

// SetToolName sets the "tool_name" field.
func (_u *AgentToolCallUpdate) SetToolName(v string) *AgentToolCallUpdate {
	_u.mutation.SetToolName(v)
	return _u
}

// SetNillableToolName sets the "tool_name" field if the given value is not nil.
func (_u *AgentToolCallUpdate) SetNillableToolName(v *string) *AgentToolCallUpdate {
	if v != nil {
		_u.SetToolName(*v)
	}
	return _u
}

// SetArguments sets the "arguments" field.
func (_u *AgentToolCallUpdate) SetArguments(v string) *AgentToolCallUpdate {
	_u.mutation.SetArguments(v)
	return _u
}

// SetNillableArguments sets the "arguments" field if the given value is not nil.
func (_u *AgentToolCallUpdate) SetNillableArguments(v *string) *AgentToolCallUpdate {
	if v != nil {
		_u.SetArguments(*v)
	}
	return _u
}

// ClearArguments clears the value of the "arguments" field.
func (_u *AgentToolCallUpdate) ClearArguments() *AgentToolCallUpdate {
	_u.mutation.ClearArguments()
	return _u
}

// SetOutputBytes sets the "output_bytes" field.
func (_u *AgentToolCallUpdate) SetOutputBytes(v int) *AgentToolCallUpdate {
	_u.mutation.ResetOutputBytes()
	_u.mutation.SetOutputBytes(v)
	return _u
}

// SetNillableOutputBytes sets the "output_bytes" field if the given value is not nil.
func (_u *AgentToolCallUpdate) SetNillableOutputBytes(v *int) *AgentToolCallUpdate {
	if v != nil {
		_u.SetOutputBytes(*v)
	}
	return _u
}

// AddOutputBytes adds value to the "output_bytes" field.
func (_u *AgentToolCallUpdate) AddOutputBytes(v int) *AgentToolCallUpdate {
	_u.mutation.AddOutputBytes(v)
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *AgentToolCallUpdate) SetDurationMs(v int64) *AgentToolCallUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *AgentToolCallUpdate) SetNillableDurationMs(v *int64) *AgentToolCallUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *AgentToolCallUpdate) AddDurationMs(v int64) *AgentToolCallUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// SetIsError sets the "is_error" field.
func (_u *AgentToolCallUpdate) SetIsError(v bool) *AgentToolCallUpdate {
	_u.mutation.SetIsError(v)
	return _u
}

// SetNillableIsError sets the "is_error" field if the given value is not nil.
func (_u *AgentToolCallUpdate) SetNillableIsError(v *bool) *AgentToolCallUpdate {
	if v != nil {
		_u.SetIsError(*v)
	}
	return _u
}

// SetRunID sets the "run" edge to the AgentRun entity by ID.
func (_u *AgentToolCallUpdate) SetRunID(id string) *AgentToolCallUpdate {
	_u.mutation.SetRunID(id)
	return _u
}

// SetRun sets the "run" edge to the AgentRun entity.
func (_u *AgentToolCallUpdate) SetRun(v *AgentRun) *AgentToolCallUpdate {
	return _u.SetRunID(v.ID)
}

// Mutation returns the AgentToolCallMutation object of the builder.
func (_u *AgentToolCallUpdate) Mutation() *AgentToolCallMutation {
	return _u.mutation
}

// ClearRun clears the "run" edge to the AgentRun entity.
func (_u *AgentToolCallUpdate) ClearRun() *AgentToolCallUpdate {
	_u.mutation.ClearRun()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentToolCallUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentToolCallUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentToolCallUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentToolCallUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentToolCallUpdate) check() error {
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentToolCall.run"`)
	}
	return nil
}

func (_u *AgentToolCallUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agenttoolcall.Table, agenttoolcall.Columns, sqlgraph.NewFieldSpec(agenttoolcall.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Seq(); ok {
		_spec.SetField(agenttoolcall.FieldSeq, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSeq(); ok {
		_spec.AddField(agenttoolcall.FieldSeq, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ToolName(); ok {
		_spec.SetField(agenttoolcall.FieldToolName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Arguments(); ok {
		_spec.SetField(agenttoolcall.FieldArguments, field.TypeString, value)
	}
	if _u.mutation.ArgumentsCleared() {
		_spec.ClearField(agenttoolcall.FieldArguments, field.TypeString)
	}
	if value, ok := _u.mutation.OutputBytes(); ok {
		_spec.SetField(agenttoolcall.FieldOutputBytes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputBytes(); ok {
		_spec.AddField(agenttoolcall.FieldOutputBytes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(agenttoolcall.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(agenttoolcall.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.IsError(); ok {
		_spec.SetField(agenttoolcall.FieldIsError, field.TypeBool, value)
	}
	if _u.mutation.RunCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RunIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agenttoolcall.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentToolCallUpdateOne is the builder for updating a single AgentToolCall entity.
type AgentToolCallUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentToolCallMutation
}

// SetAgentRunID sets the "agent_run_id" field.
func (_u *AgentToolCallUpdateOne) SetAgentRunID(v string) *AgentToolCallUpdateOne {
	_u.mutation.SetAgentRunID(v)
	return _u
}

// SetNillableAgentRunID sets the "agent_run_id" field if the given value is not nil.
func (_u *AgentToolCallUpdateOne) SetNillableAgentRunID(v *string) *AgentToolCallUpdateOne {
	if v != nil {
		_u.SetAgentRunID(*v)
	}
	return _u
}

// SetSeq sets the "seq" field.
func (_u *AgentToolCallUpdateOne) SetSeq(v int) *AgentToolCallUpdateOne {
	_u.mutation.ResetSeq()
	_u.mutation.SetSeq(v)
	return _u
}

// SetNillableSeq sets the "seq" field if the given value is not nil.
func (_u *AgentToolCallUpdateOne) SetNillableSeq(v *int) *AgentToolCallUpdateOne {
	if v != nil {
		_u.SetSeq(*v)
	}
	return _u
}

// AddSeq adds value to the "seq" field.
func (_u *AgentToolCallUpdateOne) AddSeq(v int) *AgentToolCallUpdateOne {
	_u.mutation.AddSeq(v)
	return _u
}

// SetToolName sets the "tool_name" field.
func (_u *AgentToolCallUpdateOne) SetToolName(v string) *AgentToolCallUpdateOne {
	_u.mutation.SetToolName(v)
	return _u
}

// SetNillableToolName sets the "tool_name" field if the given value is not nil.
func (_u *AgentToolCallUpdateOne) SetNillableToolName(v *string) *AgentToolCallUpdateOne {
	if v != nil {
		_u.SetToolName(*v)
	}
	return _u
}

// SetArguments sets the "arguments" field.
func (_u *AgentToolCallUpdateOne) SetArguments(v string) *AgentToolCallUpdateOne {
	_u.mutation.SetArguments(v)
	return _u
}

// SetNillableArguments sets the "arguments" field if the given value is not nil.
func (_u *AgentToolCallUpdateOne) SetNillableArguments(v *string) *AgentToolCallUpdateOne {
	if v != nil {
		_u.SetArguments(*v)
	}
	return _u
}

// ClearArguments clears the value of the "arguments" field.
func (_u *AgentToolCallUpdateOne) ClearArguments() *AgentToolCallUpdateOne {
	_u.mutation.ClearArguments()
	return _u
}

// SetOutputBytes sets the "output_bytes" field.
func (_u *AgentToolCallUpdateOne) SetOutputBytes(v int) *AgentToolCallUpdateOne {
	_u.mutation.ResetOutputBytes()
	_u.mutation.SetOutputBytes(v)
	return _u
}

// SetNillableOutputBytes sets the "output_bytes" field if the given value is not nil.
func (_u *AgentToolCallUpdateOne) SetNillableOutputBytes(v *int) *AgentToolCallUpdateOne {
	if v != nil {
		_u.SetOutputBytes(*v)
	}
	return _u
}

// AddOutputBytes adds value to the "output_bytes" field.
func (_u *AgentToolCallUpdateOne) AddOutputBytes(v int) *AgentToolCallUpdateOne {
	_u.mutation.AddOutputBytes(v)
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *AgentToolCallUpdateOne) SetDurationMs(v int64) *AgentToolCallUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *AgentToolCallUpdateOne) SetNillableDurationMs(v *int64) *AgentToolCallUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *AgentToolCallUpdateOne) AddDurationMs(v int64) *AgentToolCallUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// SetIsError sets the "is_error" field.
func (_u *AgentToolCallUpdateOne) SetIsError(v bool) *AgentToolCallUpdateOne {
	_u.mutation.SetIsError(v)
	return _u
}

// SetNillableIsError sets the "is_error" field if the given value is not nil.
func (_u *AgentToolCallUpdateOne) SetNillableIsError(v *bool) *AgentToolCallUpdateOne {
	if v != nil {
		_u.SetIsError(*v)
	}
	return _u
}

// SetRunID sets the "run" edge to the AgentRun entity by ID.
func (_u *AgentToolCallUpdateOne) SetRunID(id string) *AgentToolCallUpdateOne {
	_u.mutation.SetRunID(id)
	return _u
}

// SetRun sets the "run" edge to the AgentRun entity.
func (_u *AgentToolCallUpdateOne) SetRun(v *AgentRun) *AgentToolCallUpdateOne {
	return _u.SetRunID(v.ID)
}

// Mutation returns the AgentToolCallMutation object of the builder.
func (_u *AgentToolCallUpdateOne) Mutation() *AgentToolCallMutation {
	return _u.mutation
}

// ClearRun clears the "run" edge to the AgentRun entity.
func (_u *AgentToolCallUpdateOne) ClearRun() *AgentToolCallUpdateOne {
	_u.mutation.ClearRun()
	return _u
}

// Where appends a list predicates to the AgentToolCallUpdate builder.
func (_u *AgentToolCallUpdateOne) Where(ps ...predicate.AgentToolCall) *AgentToolCallUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentToolCallUpdateOne) Select(field string, fields ...string) *AgentToolCallUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentToolCall entity.
func (_u *AgentToolCallUpdateOne) Save(ctx context.Context) (*AgentToolCall, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentToolCallUpdateOne) SaveX(ctx context.Context) *AgentToolCall {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentToolCallUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentToolCallUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentToolCallUpdateOne) check() error {
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentToolCall.run"`)
	}
	return nil
}

func (_u *AgentToolCallUpdateOne) sqlSave(ctx context.Context) (_node *AgentToolCall, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agenttoolcall.Table, agenttoolcall.Columns, sqlgraph.NewFieldSpec(agenttoolcall.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentToolCall.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agenttoolcall.FieldID)
		for _, f := range fields {
			if !agenttoolcall.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agenttoolcall.FieldID {
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
	if value, ok := _u.mutation.Seq(); ok {
		_spec.SetField(agenttoolcall.FieldSeq, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSeq(); ok {
		_spec.AddField(agenttoolcall.FieldSeq, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ToolName(); ok {
		_spec.SetField(agenttoolcall.FieldToolName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Arguments(); ok {
		_spec.SetField(agenttoolcall.FieldArguments, field.TypeString, value)
	}
	if _u.mutation.ArgumentsCleared() {
		_spec.ClearField(agenttoolcall.FieldArguments, field.TypeString)
	}
	if value, ok := _u.mutation.OutputBytes(); ok {
		_spec.SetField(agenttoolcall.FieldOutputBytes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputBytes(); ok {
		_spec.AddField(agenttoolcall.FieldOutputBytes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(agenttoolcall.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(agenttoolcall.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.IsError(); ok {
		_spec.SetField(agenttoolcall.FieldIsError, field.TypeBool, value)
	}
	if _u.mutation.RunCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RunIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &AgentToolCall{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agenttoolcall.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
