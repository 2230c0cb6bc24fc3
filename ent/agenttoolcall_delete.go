// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/vulnsentinel/vulnsentinel/ent/agenttoolcall"
	"github.com/vulnsentinel/vulnsentinel/ent/predicate"
)

// AgentToolCallDelete is the builder for deleting a AgentToolCall entity.
type AgentToolCallDelete struct {
	config
	hooks    []Hook
	mutation *AgentToolCallMutation
}

// Where appends a list predicates to the AgentToolCallDelete builder.
func (_d *AgentToolCallDelete) Where(ps ...predicate.AgentToolCall) *AgentToolCallDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *AgentToolCallDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AgentToolCallDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *AgentToolCallDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(agenttoolcall.Table, sqlgraph.NewFieldSpec(agenttoolcall.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// AgentToolCallDeleteOne is the builder for deleting a single AgentToolCall entity.
type AgentToolCallDeleteOne struct {
	_d *AgentToolCallDelete
}

// Where appends a list predicates to the AgentToolCallDelete builder.
func (_d *AgentToolCallDeleteOne) Where(ps ...predicate.AgentToolCall) *AgentToolCallDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *AgentToolCallDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{agenttoolcall.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AgentToolCallDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
