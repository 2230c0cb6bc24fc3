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
	"github.com/vulnsentinel/vulnsentinel/ent/event"
	"github.com/vulnsentinel/vulnsentinel/ent/library"
	"github.com/vulnsentinel/vulnsentinel/ent/predicate"
	"github.com/vulnsentinel/vulnsentinel/ent/projectdependency"
	"github.com/vulnsentinel/vulnsentinel/ent/upstreamvuln"
)

// LibraryUpdate is the builder for updating Library entities.
type LibraryUpdate struct {
	config
	hooks    []Hook
	mutation *LibraryMutation
}

// Where appends a list predicates to the LibraryUpdate builder.
func (_u *LibraryUpdate) Where(ps ...predicate.Library) *LibraryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *LibraryUpdate) SetName(v string) *LibraryUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *LibraryUpdate) SetNillableName(v *string) *LibraryUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetRepoURL sets the "repo_url" field.
func (_u *LibraryUpdate) SetRepoURL(v string) *LibraryUpdate {
	_u.mutation.SetRepoURL(v)
	return _u
}

// SetNillableRepoURL sets the "repo_url" field if the given value is not nil.
func (_u *LibraryUpdate) SetNillableRepoURL(v *string) *LibraryUpdate {
	if v != nil {
		_u.SetRepoURL(*v)
	}
	return _u
}

// SetPlatform sets the "platform" field.
func (_u *LibraryUpdate) SetPlatform(v string) *LibraryUpdate {
	_u.mutation.SetPlatform(v)
	return _u
}

// SetNillablePlatform sets the "platform" field if the given value is not nil.
func (_u *LibraryUpdate) SetNillablePlatform(v *string) *LibraryUpdate {
	if v != nil {
		_u.SetPlatform(*v)
	}
	return _u
}

// SetEcosystem sets the "ecosystem" field.
func (_u *LibraryUpdate) SetEcosystem(v string) *LibraryUpdate {
	_u.mutation.SetEcosystem(v)
	return _u
}

// SetNillableEcosystem sets the "ecosystem" field if the given value is not nil.
func (_u *LibraryUpdate) SetNillableEcosystem(v *string) *LibraryUpdate {
	if v != nil {
		_u.SetEcosystem(*v)
	}
	return _u
}

// ClearEcosystem clears the value of the "ecosystem" field.
func (_u *LibraryUpdate) ClearEcosystem() *LibraryUpdate {
	_u.mutation.ClearEcosystem()
	return _u
}

// SetDefaultBranch sets the "default_branch" field.
func (_u *LibraryUpdate) SetDefaultBranch(v string) *LibraryUpdate {
	_u.mutation.SetDefaultBranch(v)
	return _u
}

// SetNillableDefaultBranch sets the "default_branch" field if the given value is not nil.
func (_u *LibraryUpdate) SetNillableDefaultBranch(v *string) *LibraryUpdate {
	if v != nil {
		_u.SetDefaultBranch(*v)
	}
	return _u
}

// SetLastCommitSha sets the "last_commit_sha" field.
func (_u *LibraryUpdate) SetLastCommitSha(v string) *LibraryUpdate {
	_u.mutation.SetLastCommitSha(v)
	return _u
}

// SetNillableLastCommitSha sets the "last_commit_sha" field if the given value is not nil.
func (_u *LibraryUpdate) SetNillableLastCommitSha(v *string) *LibraryUpdate {
	if v != nil {
		_u.SetLastCommitSha(*v)
	}
	return _u
}

// ClearLastCommitSha clears the value of the "last_commit_sha" field.
func (_u *LibraryUpdate) ClearLastCommitSha() *LibraryUpdate {
	_u.mutation.ClearLastCommitSha()
	return _u
}

// SetLastTagName sets the "last_tag_name" field.
func (_u *LibraryUpdate) SetLastTagName(v string) *LibraryUpdate {
	_u.mutation.SetLastTagName(v)
	return _u
}

// SetNillableLastTagName sets the "last_tag_name" field if the given value is not nil.
func (_u *LibraryUpdate) SetNillableLastTagName(v *string) *LibraryUpdate {
	if v != nil {
		_u.SetLastTagName(*v)
	}
	return _u
}

// ClearLastTagName clears the value of the "last_tag_name" field.
func (_u *LibraryUpdate) ClearLastTagName() *LibraryUpdate {
	_u.mutation.ClearLastTagName()
	return _u
}

// SetLastScannedAt sets the "last_scanned_at" field.
func (_u *LibraryUpdate) SetLastScannedAt(v time.Time) *LibraryUpdate {
	_u.mutation.SetLastScannedAt(v)
	return _u
}

// SetNillableLastScannedAt sets the "last_scanned_at" field if the given value is not nil.
func (_u *LibraryUpdate) SetNillableLastScannedAt(v *time.Time) *LibraryUpdate {
	if v != nil {
		_u.SetLastScannedAt(*v)
	}
	return _u
}

// ClearLastScannedAt clears the value of the "last_scanned_at" field.
func (_u *LibraryUpdate) ClearLastScannedAt() *LibraryUpdate {
	_u.mutation.ClearLastScannedAt()
	return _u
}

// SetCollectorHealth sets the "collector_health" field.
func (_u *LibraryUpdate) SetCollectorHealth(v library.CollectorHealth) *LibraryUpdate {
	_u.mutation.SetCollectorHealth(v)
	return _u
}

// SetNillableCollectorHealth sets the "collector_health" field if the given value is not nil.
func (_u *LibraryUpdate) SetNillableCollectorHealth(v *library.CollectorHealth) *LibraryUpdate {
	if v != nil {
		_u.SetCollectorHealth(*v)
	}
	return _u
}

// SetCollectorDetail sets the "collector_detail" field.
func (_u *LibraryUpdate) SetCollectorDetail(v map[string]string) *LibraryUpdate {
	_u.mutation.SetCollectorDetail(v)
	return _u
}

// ClearCollectorDetail clears the value of the "collector_detail" field.
func (_u *LibraryUpdate) ClearCollectorDetail() *LibraryUpdate {
	_u.mutation.ClearCollectorDetail()
	return _u
}

// SetCollectorError sets the "collector_error" field.
func (_u *LibraryUpdate) SetCollectorError(v string) *LibraryUpdate {
	_u.mutation.SetCollectorError(v)
	return _u
}

// SetNillableCollectorError sets the "collector_error" field if the given value is not nil.
func (_u *LibraryUpdate) SetNillableCollectorError(v *string) *LibraryUpdate {
	if v != nil {
		_u.SetCollectorError(*v)
	}
	return _u
}

// ClearCollectorError clears the value of the "collector_error" field.
func (_u *LibraryUpdate) ClearCollectorError() *LibraryUpdate {
	_u.mutation.ClearCollectorError()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LibraryUpdate) SetUpdatedAt(v time.Time) *LibraryUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_u *LibraryUpdate) AddEventIDs(ids ...string) *LibraryUpdate {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the Event entity.
func (_u *LibraryUpdate) AddEvents(v ...*Event) *LibraryUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// AddUpstreamVulnIDs adds the "upstream_vulns" edge to the UpstreamVuln entity by IDs.
func (_u *LibraryUpdate) AddUpstreamVulnIDs(ids ...string) *LibraryUpdate {
	_u.mutation.AddUpstreamVulnIDs(ids...)
	return _u
}

// AddUpstreamVulns adds the "upstream_vulns" edges to the UpstreamVuln entity.
func (_u *LibraryUpdate) AddUpstreamVulns(v ...*UpstreamVuln) *LibraryUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddUpstreamVulnIDs(ids...)
}

// AddDependencyIDs adds the "dependencies" edge to the ProjectDependency entity by IDs.
func (_u *LibraryUpdate) AddDependencyIDs(ids ...string) *LibraryUpdate {
	_u.mutation.AddDependencyIDs(ids...)
	return _u
}

// AddDependencies adds the "dependencies" edges to the ProjectDependency entity.
func (_u *LibraryUpdate) AddDependencies(v ...*ProjectDependency) *LibraryUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDependencyIDs(ids...)
}

// Mutation returns the LibraryMutation object of the builder.
func (_u *LibraryUpdate) Mutation() *LibraryMutation {
	return _u.mutation
}

// ClearEvents clears all "events" edges to the Event entity.
func (_u *LibraryUpdate) ClearEvents() *LibraryUpdate {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to Event entities by IDs.
func (_u *LibraryUpdate) RemoveEventIDs(ids ...string) *LibraryUpdate {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to Event entities.
func (_u *LibraryUpdate) RemoveEvents(v ...*Event) *LibraryUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// ClearUpstreamVulns clears all "upstream_vulns" edges to the UpstreamVuln entity.
func (_u *LibraryUpdate) ClearUpstreamVulns() *LibraryUpdate {
	_u.mutation.ClearUpstreamVulns()
	return _u
}

// RemoveUpstreamVulnIDs removes the "upstream_vulns" edge to UpstreamVuln entities by IDs.
func (_u *LibraryUpdate) RemoveUpstreamVulnIDs(ids ...string) *LibraryUpdate {
	_u.mutation.RemoveUpstreamVulnIDs(ids...)
	return _u
}

// RemoveUpstreamVulns removes "upstream_vulns" edges to UpstreamVuln entities.
func (_u *LibraryUpdate) RemoveUpstreamVulns(v ...*UpstreamVuln) *LibraryUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveUpstreamVulnIDs(ids...)
}

// ClearDependencies clears all "dependencies" edges to the ProjectDependency entity.
func (_u *LibraryUpdate) ClearDependencies() *LibraryUpdate {
	_u.mutation.ClearDependencies()
	return _u
}

// RemoveDependencyIDs removes the "dependencies" edge to ProjectDependency entities by IDs.
func (_u *LibraryUpdate) RemoveDependencyIDs(ids ...string) *LibraryUpdate {
	_u.mutation.RemoveDependencyIDs(ids...)
	return _u
}

// RemoveDependencies removes "dependencies" edges to ProjectDependency entities.
func (_u *LibraryUpdate) RemoveDependencies(v ...*ProjectDependency) *LibraryUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDependencyIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LibraryUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LibraryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LibraryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LibraryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LibraryUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := library.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LibraryUpdate) check() error {
	if v, ok := _u.mutation.CollectorHealth(); ok {
		if err := library.CollectorHealthValidator(v); err != nil {
			return &ValidationError{Name: "collector_health", err: fmt.Errorf(`ent: validator failed for field "Library.collector_health": %w`, err)}
		}
	}
	return nil
}

func (_u *LibraryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(library.Table, library.Columns, sqlgraph.NewFieldSpec(library.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(library.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.RepoURL(); ok {
		_spec.SetField(library.FieldRepoURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Platform(); ok {
		_spec.SetField(library.FieldPlatform, field.TypeString, value)
	}
	if value, ok := _u.mutation.Ecosystem(); ok {
		_spec.SetField(library.FieldEcosystem, field.TypeString, value)
	}
	if _u.mutation.EcosystemCleared() {
		_spec.ClearField(library.FieldEcosystem, field.TypeString)
	}
	if value, ok := _u.mutation.DefaultBranch(); ok {
		_spec.SetField(library.FieldDefaultBranch, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastCommitSha(); ok {
		_spec.SetField(library.FieldLastCommitSha, field.TypeString, value)
	}
	if _u.mutation.LastCommitShaCleared() {
		_spec.ClearField(library.FieldLastCommitSha, field.TypeString)
	}
	if value, ok := _u.mutation.LastTagName(); ok {
		_spec.SetField(library.FieldLastTagName, field.TypeString, value)
	}
	if _u.mutation.LastTagNameCleared() {
		_spec.ClearField(library.FieldLastTagName, field.TypeString)
	}
	if value, ok := _u.mutation.LastScannedAt(); ok {
		_spec.SetField(library.FieldLastScannedAt, field.TypeTime, value)
	}
	if _u.mutation.LastScannedAtCleared() {
		_spec.ClearField(library.FieldLastScannedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CollectorHealth(); ok {
		_spec.SetField(library.FieldCollectorHealth, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CollectorDetail(); ok {
		_spec.SetField(library.FieldCollectorDetail, field.TypeJSON, value)
	}
	if _u.mutation.CollectorDetailCleared() {
		_spec.ClearField(library.FieldCollectorDetail, field.TypeJSON)
	}
	if value, ok := _u.mutation.CollectorError(); ok {
		_spec.SetField(library.FieldCollectorError, field.TypeString, value)
	}
	if _u.mutation.CollectorErrorCleared() {
		_spec.ClearField(library.FieldCollectorError, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(library.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   library.EventsTable,
			Columns: []string{library.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   library.EventsTable,
			Columns: []string{library.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   library.EventsTable,
			Columns: []string{library.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.UpstreamVulnsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   library.UpstreamVulnsTable,
			Columns: []string{library.UpstreamVulnsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(upstreamvuln.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedUpstreamVulnsIDs(); len(nodes) > 0 && !_u.mutation.UpstreamVulnsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   library.UpstreamVulnsTable,
			Columns: []string{library.UpstreamVulnsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(upstreamvuln.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UpstreamVulnsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   library.UpstreamVulnsTable,
			Columns: []string{library.UpstreamVulnsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(upstreamvuln.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DependenciesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   library.DependenciesTable,
			Columns: []string{library.DependenciesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(projectdependency.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDependenciesIDs(); len(nodes) > 0 && !_u.mutation.DependenciesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   library.DependenciesTable,
			Columns: []string{library.DependenciesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(projectdependency.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DependenciesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   library.DependenciesTable,
			Columns: []string{library.DependenciesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(projectdependency.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{library.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LibraryUpdateOne is the builder for updating a single Library entity.
type LibraryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LibraryMutation
}

// SetName sets the "name" field.
func (_u *LibraryUpdateOne) SetName(v string) *LibraryUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *LibraryUpdateOne) SetNillableName(v *string) *LibraryUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetRepoURL sets the "repo_url" field.
func (_u *LibraryUpdateOne) SetRepoURL(v string) *LibraryUpdateOne {
	_u.mutation.SetRepoURL(v)
	return _u
}

// SetNillableRepoURL sets the "repo_url" field if the given value is not nil.
func (_u *LibraryUpdateOne) SetNillableRepoURL(v *string) *LibraryUpdateOne {
	if v != nil {
		_u.SetRepoURL(*v)
	}
	return _u
}

// SetPlatform sets the "platform" field.
func (_u *LibraryUpdateOne) SetPlatform(v string) *LibraryUpdateOne {
	_u.mutation.SetPlatform(v)
	return _u
}

// SetNillablePlatform sets the "platform" field if the given value is not nil.
func (_u *LibraryUpdateOne) SetNillablePlatform(v *string) *LibraryUpdateOne {
	if v != nil {
		_u.SetPlatform(*v)
	}
	return _u
}

// SetEcosystem sets the "ecosystem" field.
func (_u *LibraryUpdateOne) SetEcosystem(v string) *LibraryUpdateOne {
	_u.mutation.SetEcosystem(v)
	return _u
}

// SetNillableEcosystem sets the "ecosystem" field if the given value is not nil.
func (_u *LibraryUpdateOne) SetNillableEcosystem(v *string) *LibraryUpdateOne {
	if v != nil {
		_u.SetEcosystem(*v)
	}
	return _u
}

// ClearEcosystem clears the value of the "ecosystem" field.
func (_u *LibraryUpdateOne) ClearEcosystem() *LibraryUpdateOne {
	_u.mutation.ClearEcosystem()
	return _u
}

// SetDefaultBranch sets the "default_branch" field.
func (_u *LibraryUpdateOne) SetDefaultBranch(v string) *LibraryUpdateOne {
	_u.mutation.SetDefaultBranch(v)
	return _u
}

// SetNillableDefaultBranch sets the "default_branch" field if the given value is not nil.
func (_u *LibraryUpdateOne) SetNillableDefaultBranch(v *string) *LibraryUpdateOne {
	if v != nil {
		_u.SetDefaultBranch(*v)
	}
	return _u
}

// SetLastCommitSha sets the "last_commit_sha" field.
func (_u *LibraryUpdateOne) SetLastCommitSha(v string) *LibraryUpdateOne {
	_u.mutation.SetLastCommitSha(v)
	return _u
}

// SetNillableLastCommitSha sets the "last_commit_sha" field if the given value is not nil.
func (_u *LibraryUpdateOne) SetNillableLastCommitSha(v *string) *LibraryUpdateOne {
	if v != nil {
		_u.SetLastCommitSha(*v)
	}
	return _u
}

// ClearLastCommitSha clears the value of the "last_commit_sha" field.
func (_u *LibraryUpdateOne) ClearLastCommitSha() *LibraryUpdateOne {
	_u.mutation.ClearLastCommitSha()
	return _u
}

// SetLastTagName sets the "last_tag_name" field.
func (_u *LibraryUpdateOne) SetLastTagName(v string) *LibraryUpdateOne {
	_u.mutation.SetLastTagName(v)
	return _u
}

// SetNillableLastTagName sets the "last_tag_name" field if the given value is not nil.
func (_u *LibraryUpdateOne) SetNillableLastTagName(v *string) *LibraryUpdateOne {
	if v != nil {
		_u.SetLastTagName(*v)
	}
	return _u
}

// ClearLastTagName clears the value of the "last_tag_name" field.
func (_u *LibraryUpdateOne) ClearLastTagName() *LibraryUpdateOne {
	_u.mutation.ClearLastTagName()
	return _u
}

// SetLastScannedAt sets the "last_scanned_at" field.
func (_u *LibraryUpdateOne) SetLastScannedAt(v time.Time) *LibraryUpdateOne {
	_u.mutation.SetLastScannedAt(v)
	return _u
}

// SetNillableLastScannedAt sets the "last_scanned_at" field if the given value is not nil.
func (_u *LibraryUpdateOne) SetNillableLastScannedAt(v *time.Time) *LibraryUpdateOne {
	if v != nil {
		_u.SetLastScannedAt(*v)
	}
	return _u
}

// ClearLastScannedAt clears the value of the "last_scanned_at" field.
func (_u *LibraryUpdateOne) ClearLastScannedAt() *LibraryUpdateOne {
	_u.mutation.ClearLastScannedAt()
	return _u
}

// SetCollectorHealth sets the "collector_health" field.
func (_u *LibraryUpdateOne) SetCollectorHealth(v library.CollectorHealth) *LibraryUpdateOne {
	_u.mutation.SetCollectorHealth(v)
	return _u
}

// SetNillableCollectorHealth sets the "collector_health" field if the given value is not nil.
func (_u *LibraryUpdateOne) SetNillableCollectorHealth(v *library.CollectorHealth) *LibraryUpdateOne {
	if v != nil {
		_u.SetCollectorHealth(*v)
	}
	return _u
}

// SetCollectorDetail sets the "collector_detail" field.
func (_u *LibraryUpdateOne) SetCollectorDetail(v map[string]string) *LibraryUpdateOne {
	_u.mutation.SetCollectorDetail(v)
	return _u
}

// ClearCollectorDetail clears the value of the "collector_detail" field.
func (_u *LibraryUpdateOne) ClearCollectorDetail() *LibraryUpdateOne {
	_u.mutation.ClearCollectorDetail()
	return _u
}

// SetCollectorError sets the "collector_error" field.
func (_u *LibraryUpdateOne) SetCollectorError(v string) *LibraryUpdateOne {
	_u.mutation.SetCollectorError(v)
	return _u
}

// SetNillableCollectorError sets the "collector_error" field if the given value is not nil.
func (_u *LibraryUpdateOne) SetNillableCollectorError(v *string) *LibraryUpdateOne {
	if v != nil {
		_u.SetCollectorError(*v)
	}
	return _u
}

// ClearCollectorError clears the value of the "collector_error" field.
func (_u *LibraryUpdateOne) ClearCollectorError() *LibraryUpdateOne {
	_u.mutation.ClearCollectorError()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LibraryUpdateOne) SetUpdatedAt(v time.Time) *LibraryUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_u *LibraryUpdateOne) AddEventIDs(ids ...string) *LibraryUpdateOne {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the Event entity.
func (_u *LibraryUpdateOne) AddEvents(v ...*Event) *LibraryUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// AddUpstreamVulnIDs adds the "upstream_vulns" edge to the UpstreamVuln entity by IDs.
func (_u *LibraryUpdateOne) AddUpstreamVulnIDs(ids ...string) *LibraryUpdateOne {
	_u.mutation.AddUpstreamVulnIDs(ids...)
	return _u
}

// AddUpstreamVulns adds the "upstream_vulns" edges to the UpstreamVuln entity.
func (_u *LibraryUpdateOne) AddUpstreamVulns(v ...*UpstreamVuln) *LibraryUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddUpstreamVulnIDs(ids...)
}

// AddDependencyIDs adds the "dependencies" edge to the ProjectDependency entity by IDs.
func (_u *LibraryUpdateOne) AddDependencyIDs(ids ...string) *LibraryUpdateOne {
	_u.mutation.AddDependencyIDs(ids...)
	return _u
}

// AddDependencies adds the "dependencies" edges to the ProjectDependency entity.
func (_u *LibraryUpdateOne) AddDependencies(v ...*ProjectDependency) *LibraryUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDependencyIDs(ids...)
}

// Mutation returns the LibraryMutation object of the builder.
func (_u *LibraryUpdateOne) Mutation() *LibraryMutation {
	return _u.mutation
}

// ClearEvents clears all "events" edges to the Event entity.
func (_u *LibraryUpdateOne) ClearEvents() *LibraryUpdateOne {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to Event entities by IDs.
func (_u *LibraryUpdateOne) RemoveEventIDs(ids ...string) *LibraryUpdateOne {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to Event entities.
func (_u *LibraryUpdateOne) RemoveEvents(v ...*Event) *LibraryUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// ClearUpstreamVulns clears all "upstream_vulns" edges to the UpstreamVuln entity.
func (_u *LibraryUpdateOne) ClearUpstreamVulns() *LibraryUpdateOne {
	_u.mutation.ClearUpstreamVulns()
	return _u
}

// RemoveUpstreamVulnIDs removes the "upstream_vulns" edge to UpstreamVuln entities by IDs.
func (_u *LibraryUpdateOne) RemoveUpstreamVulnIDs(ids ...string) *LibraryUpdateOne {
	_u.mutation.RemoveUpstreamVulnIDs(ids...)
	return _u
}

// RemoveUpstreamVulns removes "upstream_vulns" edges to UpstreamVuln entities.
func (_u *LibraryUpdateOne) RemoveUpstreamVulns(v ...*UpstreamVuln) *LibraryUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveUpstreamVulnIDs(ids...)
}

// ClearDependencies clears all "dependencies" edges to the ProjectDependency entity.
func (_u *LibraryUpdateOne) ClearDependencies() *LibraryUpdateOne {
	_u.mutation.ClearDependencies()
	return _u
}

// RemoveDependencyIDs removes the "dependencies" edge to ProjectDependency entities by IDs.
func (_u *LibraryUpdateOne) RemoveDependencyIDs(ids ...string) *LibraryUpdateOne {
	_u.mutation.RemoveDependencyIDs(ids...)
	return _u
}

// RemoveDependencies removes "dependencies" edges to ProjectDependency entities.
func (_u *LibraryUpdateOne) RemoveDependencies(v ...*ProjectDependency) *LibraryUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDependencyIDs(ids...)
}

// Where appends a list predicates to the LibraryUpdate builder.
func (_u *LibraryUpdateOne) Where(ps ...predicate.Library) *LibraryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LibraryUpdateOne) Select(field string, fields ...string) *LibraryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Library entity.
func (_u *LibraryUpdateOne) Save(ctx context.Context) (*Library, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LibraryUpdateOne) SaveX(ctx context.Context) *Library {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LibraryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LibraryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LibraryUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := library.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LibraryUpdateOne) check() error {
	if v, ok := _u.mutation.CollectorHealth(); ok {
		if err := library.CollectorHealthValidator(v); err != nil {
			return &ValidationError{Name: "collector_health", err: fmt.Errorf(`ent: validator failed for field "Library.collector_health": %w`, err)}
		}
	}
	return nil
}

func (_u *LibraryUpdateOne) sqlSave(ctx context.Context) (_node *Library, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(library.Table, library.Columns, sqlgraph.NewFieldSpec(library.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Library.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, library.FieldID)
		for _, f := range fields {
			if !library.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != library.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(library.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.RepoURL(); ok {
		_spec.SetField(library.FieldRepoURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Platform(); ok {
		_spec.SetField(library.FieldPlatform, field.TypeString, value)
	}
	if value, ok := _u.mutation.Ecosystem(); ok {
		_spec.SetField(library.FieldEcosystem, field.TypeString, value)
	}
	if _u.mutation.EcosystemCleared() {
		_spec.ClearField(library.FieldEcosystem, field.TypeString)
	}
	if value, ok := _u.mutation.DefaultBranch(); ok {
		_spec.SetField(library.FieldDefaultBranch, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastCommitSha(); ok {
		_spec.SetField(library.FieldLastCommitSha, field.TypeString, value)
	}
	if _u.mutation.LastCommitShaCleared() {
		_spec.ClearField(library.FieldLastCommitSha, field.TypeString)
	}
	if value, ok := _u.mutation.LastTagName(); ok {
		_spec.SetField(library.FieldLastTagName, field.TypeString, value)
	}
	if _u.mutation.LastTagNameCleared() {
		_spec.ClearField(library.FieldLastTagName, field.TypeString)
	}
	if value, ok := _u.mutation.LastScannedAt(); ok {
		_spec.SetField(library.FieldLastScannedAt, field.TypeTime, value)
	}
	if _u.mutation.LastScannedAtCleared() {
		_spec.ClearField(library.FieldLastScannedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CollectorHealth(); ok {
		_spec.SetField(library.FieldCollectorHealth, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CollectorDetail(); ok {
		_spec.SetField(library.FieldCollectorDetail, field.TypeJSON, value)
	}
	if _u.mutation.CollectorDetailCleared() {
		_spec.ClearField(library.FieldCollectorDetail, field.TypeJSON)
	}
	if value, ok := _u.mutation.CollectorError(); ok {
		_spec.SetField(library.FieldCollectorError, field.TypeString, value)
	}
	if _u.mutation.CollectorErrorCleared() {
		_spec.ClearField(library.FieldCollectorError, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(library.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   library.EventsTable,
			Columns: []string{library.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   library.EventsTable,
			Columns: []string{library.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   library.EventsTable,
			Columns: []string{library.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.UpstreamVulnsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   library.UpstreamVulnsTable,
			Columns: []string{library.UpstreamVulnsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(upstreamvuln.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedUpstreamVulnsIDs(); len(nodes) > 0 && !_u.mutation.UpstreamVulnsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   library.UpstreamVulnsTable,
			Columns: []string{library.UpstreamVulnsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(upstreamvuln.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UpstreamVulnsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   library.UpstreamVulnsTable,
			Columns: []string{library.UpstreamVulnsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(upstreamvuln.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DependenciesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   library.DependenciesTable,
			Columns: []string{library.DependenciesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(projectdependency.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDependenciesIDs(); len(nodes) > 0 && !_u.mutation.DependenciesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   library.DependenciesTable,
			Columns: []string{library.DependenciesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(projectdependency.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DependenciesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   library.DependenciesTable,
			Columns: []string{library.DependenciesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(projectdependency.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Library{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{library.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
