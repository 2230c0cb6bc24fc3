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
	"github.com/vulnsentinel/vulnsentinel/ent/event"
	"github.com/vulnsentinel/vulnsentinel/ent/library"
	"github.com/vulnsentinel/vulnsentinel/ent/projectdependency"
	"github.com/vulnsentinel/vulnsentinel/ent/upstreamvuln"
)

// LibraryCreate is the builder for creating a Library entity.
type LibraryCreate struct {
	config
	mutation *LibraryMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetName sets the "name" field.
func (_c *LibraryCreate) SetName(v string) *LibraryCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetRepoURL sets the "repo_url" field.
func (_c *LibraryCreate) SetRepoURL(v string) *LibraryCreate {
	_c.mutation.SetRepoURL(v)
	return _c
}

// SetPlatform sets the "platform" field.
func (_c *LibraryCreate) SetPlatform(v string) *LibraryCreate {
	_c.mutation.SetPlatform(v)
	return _c
}

// SetNillablePlatform sets the "platform" field if the given value is not nil.
func (_c *LibraryCreate) SetNillablePlatform(v *string) *LibraryCreate {
	if v != nil {
		_c.SetPlatform(*v)
	}
	return _c
}

// SetEcosystem sets the "ecosystem" field.
func (_c *LibraryCreate) SetEcosystem(v string) *LibraryCreate {
	_c.mutation.SetEcosystem(v)
	return _c
}

// SetNillableEcosystem sets the "ecosystem" field if the given value is not nil.
func (_c *LibraryCreate) SetNillableEcosystem(v *string) *LibraryCreate {
	if v != nil {
		_c.SetEcosystem(*v)
	}
	return _c
}

// SetDefaultBranch sets the "default_branch" field.
func (_c *LibraryCreate) SetDefaultBranch(v string) *LibraryCreate {
	_c.mutation.SetDefaultBranch(v)
	return _c
}

// SetNillableDefaultBranch sets the "default_branch" field if the given value is not nil.
func (_c *LibraryCreate) SetNillableDefaultBranch(v *string) *LibraryCreate {
	if v != nil {
		_c.SetDefaultBranch(*v)
	}
	return _c
}

// SetLastCommitSha sets the "last_commit_sha" field.
func (_c *LibraryCreate) SetLastCommitSha(v string) *LibraryCreate {
	_c.mutation.SetLastCommitSha(v)
	return _c
}

// SetNillableLastCommitSha sets the "last_commit_sha" field if the given value is not nil.
func (_c *LibraryCreate) SetNillableLastCommitSha(v *string) *LibraryCreate {
	if v != nil {
		_c.SetLastCommitSha(*v)
	}
	return _c
}

// SetLastTagName sets the "last_tag_name" field.
func (_c *LibraryCreate) SetLastTagName(v string) *LibraryCreate {
	_c.mutation.SetLastTagName(v)
	return _c
}

// SetNillableLastTagName sets the "last_tag_name" field if the given value is not nil.
func (_c *LibraryCreate) SetNillableLastTagName(v *string) *LibraryCreate {
	if v != nil {
		_c.SetLastTagName(*v)
	}
	return _c
}

// SetLastScannedAt sets the "last_scanned_at" field.
func (_c *LibraryCreate) SetLastScannedAt(v time.Time) *LibraryCreate {
	_c.mutation.SetLastScannedAt(v)
	return _c
}

// SetNillableLastScannedAt sets the "last_scanned_at" field if the given value is not nil.
func (_c *LibraryCreate) SetNillableLastScannedAt(v *time.Time) *LibraryCreate {
	if v != nil {
		_c.SetLastScannedAt(*v)
	}
	return _c
}

// SetCollectorHealth sets the "collector_health" field.
func (_c *LibraryCreate) SetCollectorHealth(v library.CollectorHealth) *LibraryCreate {
	_c.mutation.SetCollectorHealth(v)
	return _c
}

// SetNillableCollectorHealth sets the "collector_health" field if the given value is not nil.
func (_c *LibraryCreate) SetNillableCollectorHealth(v *library.CollectorHealth) *LibraryCreate {
	if v != nil {
		_c.SetCollectorHealth(*v)
	}
	return _c
}

// SetCollectorDetail sets the "collector_detail" field.
func (_c *LibraryCreate) SetCollectorDetail(v map[string]string) *LibraryCreate {
	_c.mutation.SetCollectorDetail(v)
	return _c
}

// SetCollectorError sets the "collector_error" field.
func (_c *LibraryCreate) SetCollectorError(v string) *LibraryCreate {
	_c.mutation.SetCollectorError(v)
	return _c
}

// SetNillableCollectorError sets the "collector_error" field if the given value is not nil.
func (_c *LibraryCreate) SetNillableCollectorError(v *string) *LibraryCreate {
	if v != nil {
		_c.SetCollectorError(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LibraryCreate) SetCreatedAt(v time.Time) *LibraryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LibraryCreate) SetNillableCreatedAt(v *time.Time) *LibraryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *LibraryCreate) SetUpdatedAt(v time.Time) *LibraryCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *LibraryCreate) SetNillableUpdatedAt(v *time.Time) *LibraryCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *LibraryCreate) SetID(v string) *LibraryCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *LibraryCreate) SetNillableID(v *string) *LibraryCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_c *LibraryCreate) AddEventIDs(ids ...string) *LibraryCreate {
	_c.mutation.AddEventIDs(ids...)
	return _c
}

// AddEvents adds the "events" edges to the Event entity.
func (_c *LibraryCreate) AddEvents(v ...*Event) *LibraryCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEventIDs(ids...)
}

// AddUpstreamVulnIDs adds the "upstream_vulns" edge to the UpstreamVuln entity by IDs.
func (_c *LibraryCreate) AddUpstreamVulnIDs(ids ...string) *LibraryCreate {
	_c.mutation.AddUpstreamVulnIDs(ids...)
	return _c
}

// AddUpstreamVulns adds the "upstream_vulns" edges to the UpstreamVuln entity.
func (_c *LibraryCreate) AddUpstreamVulns(v ...*UpstreamVuln) *LibraryCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddUpstreamVulnIDs(ids...)
}

// AddDependencyIDs adds the "dependencies" edge to the ProjectDependency entity by IDs.
func (_c *LibraryCreate) AddDependencyIDs(ids ...string) *LibraryCreate {
	_c.mutation.AddDependencyIDs(ids...)
	return _c
}

// AddDependencies adds the "dependencies" edges to the ProjectDependency entity.
func (_c *LibraryCreate) AddDependencies(v ...*ProjectDependency) *LibraryCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDependencyIDs(ids...)
}

// Mutation returns the LibraryMutation object of the builder.
func (_c *LibraryCreate) Mutation() *LibraryMutation {
	return _c.mutation
}

// Save creates the Library in the database.
func (_c *LibraryCreate) Save(ctx context.Context) (*Library, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LibraryCreate) SaveX(ctx context.Context) *Library {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LibraryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LibraryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LibraryCreate) defaults() {
	if _, ok := _c.mutation.Platform(); !ok {
		v := library.DefaultPlatform
		_c.mutation.SetPlatform(v)
	}
	if _, ok := _c.mutation.DefaultBranch(); !ok {
		v := library.DefaultDefaultBranch
		_c.mutation.SetDefaultBranch(v)
	}
	if _, ok := _c.mutation.CollectorHealth(); !ok {
		v := library.DefaultCollectorHealth
		_c.mutation.SetCollectorHealth(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := library.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := library.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := library.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LibraryCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Library.name"`)}
	}
	if _, ok := _c.mutation.RepoURL(); !ok {
		return &ValidationError{Name: "repo_url", err: errors.New(`ent: missing required field "Library.repo_url"`)}
	}
	if _, ok := _c.mutation.Platform(); !ok {
		return &ValidationError{Name: "platform", err: errors.New(`ent: missing required field "Library.platform"`)}
	}
	if _, ok := _c.mutation.DefaultBranch(); !ok {
		return &ValidationError{Name: "default_branch", err: errors.New(`ent: missing required field "Library.default_branch"`)}
	}
	if _, ok := _c.mutation.CollectorHealth(); !ok {
		return &ValidationError{Name: "collector_health", err: errors.New(`ent: missing required field "Library.collector_health"`)}
	}
	if v, ok := _c.mutation.CollectorHealth(); ok {
		if err := library.CollectorHealthValidator(v); err != nil {
			return &ValidationError{Name: "collector_health", err: fmt.Errorf(`ent: validator failed for field "Library.collector_health": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Library.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Library.updated_at"`)}
	}
	return nil
}

func (_c *LibraryCreate) sqlSave(ctx context.Context) (*Library, error) {
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
			return nil, fmt.Errorf("unexpected Library.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LibraryCreate) createSpec() (*Library, *sqlgraph.CreateSpec) {
	var (
		_node = &Library{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(library.Table, sqlgraph.NewFieldSpec(library.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(library.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.RepoURL(); ok {
		_spec.SetField(library.FieldRepoURL, field.TypeString, value)
		_node.RepoURL = value
	}
	if value, ok := _c.mutation.Platform(); ok {
		_spec.SetField(library.FieldPlatform, field.TypeString, value)
		_node.Platform = value
	}
	if value, ok := _c.mutation.Ecosystem(); ok {
		_spec.SetField(library.FieldEcosystem, field.TypeString, value)
		_node.Ecosystem = value
	}
	if value, ok := _c.mutation.DefaultBranch(); ok {
		_spec.SetField(library.FieldDefaultBranch, field.TypeString, value)
		_node.DefaultBranch = value
	}
	if value, ok := _c.mutation.LastCommitSha(); ok {
		_spec.SetField(library.FieldLastCommitSha, field.TypeString, value)
		_node.LastCommitSha = &value
	}
	if value, ok := _c.mutation.LastTagName(); ok {
		_spec.SetField(library.FieldLastTagName, field.TypeString, value)
		_node.LastTagName = &value
	}
	if value, ok := _c.mutation.LastScannedAt(); ok {
		_spec.SetField(library.FieldLastScannedAt, field.TypeTime, value)
		_node.LastScannedAt = &value
	}
	if value, ok := _c.mutation.CollectorHealth(); ok {
		_spec.SetField(library.FieldCollectorHealth, field.TypeEnum, value)
		_node.CollectorHealth = value
	}
	if value, ok := _c.mutation.CollectorDetail(); ok {
		_spec.SetField(library.FieldCollectorDetail, field.TypeJSON, value)
		_node.CollectorDetail = value
	}
	if value, ok := _c.mutation.CollectorError(); ok {
		_spec.SetField(library.FieldCollectorError, field.TypeString, value)
		_node.CollectorError = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(library.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(library.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.UpstreamVulnsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.DependenciesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Library.Create().
//		SetName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LibraryUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *LibraryCreate) OnConflict(opts ...sql.ConflictOption) *LibraryUpsertOne {
	_c.conflict = opts
	return &LibraryUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Library.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LibraryCreate) OnConflictColumns(columns ...string) *LibraryUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LibraryUpsertOne{
		create: _c,
	}
}

type (
	// LibraryUpsertOne is the builder for "upsert"-ing
	//  one Library node.
	LibraryUpsertOne struct {
		create *LibraryCreate
	}

	// LibraryUpsert is the "OnConflict" setter.
	LibraryUpsert struct {
		*sql.UpdateSet
	}
)

// SetName sets the "name" field.
func (u *LibraryUpsert) SetName(v string) *LibraryUpsert {
	u.Set(library.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *LibraryUpsert) UpdateName() *LibraryUpsert {
	u.SetExcluded(library.FieldName)
	return u
}

// SetRepoURL sets the "repo_url" field.
func (u *LibraryUpsert) SetRepoURL(v string) *LibraryUpsert {
	u.Set(library.FieldRepoURL, v)
	return u
}

// UpdateRepoURL sets the "repo_url" field to the value that was provided on create.
func (u *LibraryUpsert) UpdateRepoURL() *LibraryUpsert {
	u.SetExcluded(library.FieldRepoURL)
	return u
}

// SetPlatform sets the "platform" field.
func (u *LibraryUpsert) SetPlatform(v string) *LibraryUpsert {
	u.Set(library.FieldPlatform, v)
	return u
}

// UpdatePlatform sets the "platform" field to the value that was provided on create.
func (u *LibraryUpsert) UpdatePlatform() *LibraryUpsert {
	u.SetExcluded(library.FieldPlatform)
	return u
}

// SetEcosystem sets the "ecosystem" field.
func (u *LibraryUpsert) SetEcosystem(v string) *LibraryUpsert {
	u.Set(library.FieldEcosystem, v)
	return u
}

// UpdateEcosystem sets the "ecosystem" field to the value that was provided on create.
func (u *LibraryUpsert) UpdateEcosystem() *LibraryUpsert {
	u.SetExcluded(library.FieldEcosystem)
	return u
}

// ClearEcosystem clears the value of the "ecosystem" field.
func (u *LibraryUpsert) ClearEcosystem() *LibraryUpsert {
	u.SetNull(library.FieldEcosystem)
	return u
}

// SetDefaultBranch sets the "default_branch" field.
func (u *LibraryUpsert) SetDefaultBranch(v string) *LibraryUpsert {
	u.Set(library.FieldDefaultBranch, v)
	return u
}

// UpdateDefaultBranch sets the "default_branch" field to the value that was provided on create.
func (u *LibraryUpsert) UpdateDefaultBranch() *LibraryUpsert {
	u.SetExcluded(library.FieldDefaultBranch)
	return u
}

// SetLastCommitSha sets the "last_commit_sha" field.
func (u *LibraryUpsert) SetLastCommitSha(v string) *LibraryUpsert {
	u.Set(library.FieldLastCommitSha, v)
	return u
}

// UpdateLastCommitSha sets the "last_commit_sha" field to the value that was provided on create.
func (u *LibraryUpsert) UpdateLastCommitSha() *LibraryUpsert {
	u.SetExcluded(library.FieldLastCommitSha)
	return u
}

// ClearLastCommitSha clears the value of the "last_commit_sha" field.
func (u *LibraryUpsert) ClearLastCommitSha() *LibraryUpsert {
	u.SetNull(library.FieldLastCommitSha)
	return u
}

// SetLastTagName sets the "last_tag_name" field.
func (u *LibraryUpsert) SetLastTagName(v string) *LibraryUpsert {
	u.Set(library.FieldLastTagName, v)
	return u
}

// UpdateLastTagName sets the "last_tag_name" field to the value that was provided on create.
func (u *LibraryUpsert) UpdateLastTagName() *LibraryUpsert {
	u.SetExcluded(library.FieldLastTagName)
	return u
}

// ClearLastTagName clears the value of the "last_tag_name" field.
func (u *LibraryUpsert) ClearLastTagName() *LibraryUpsert {
	u.SetNull(library.FieldLastTagName)
	return u
}

// SetLastScannedAt sets the "last_scanned_at" field.
func (u *LibraryUpsert) SetLastScannedAt(v time.Time) *LibraryUpsert {
	u.Set(library.FieldLastScannedAt, v)
	return u
}

// UpdateLastScannedAt sets the "last_scanned_at" field to the value that was provided on create.
func (u *LibraryUpsert) UpdateLastScannedAt() *LibraryUpsert {
	u.SetExcluded(library.FieldLastScannedAt)
	return u
}

// ClearLastScannedAt clears the value of the "last_scanned_at" field.
func (u *LibraryUpsert) ClearLastScannedAt() *LibraryUpsert {
	u.SetNull(library.FieldLastScannedAt)
	return u
}

// SetCollectorHealth sets the "collector_health" field.
func (u *LibraryUpsert) SetCollectorHealth(v library.CollectorHealth) *LibraryUpsert {
	u.Set(library.FieldCollectorHealth, v)
	return u
}

// UpdateCollectorHealth sets the "collector_health" field to the value that was provided on create.
func (u *LibraryUpsert) UpdateCollectorHealth() *LibraryUpsert {
	u.SetExcluded(library.FieldCollectorHealth)
	return u
}

// SetCollectorDetail sets the "collector_detail" field.
func (u *LibraryUpsert) SetCollectorDetail(v map[string]string) *LibraryUpsert {
	u.Set(library.FieldCollectorDetail, v)
	return u
}

// UpdateCollectorDetail sets the "collector_detail" field to the value that was provided on create.
func (u *LibraryUpsert) UpdateCollectorDetail() *LibraryUpsert {
	u.SetExcluded(library.FieldCollectorDetail)
	return u
}

// ClearCollectorDetail clears the value of the "collector_detail" field.
func (u *LibraryUpsert) ClearCollectorDetail() *LibraryUpsert {
	u.SetNull(library.FieldCollectorDetail)
	return u
}

// SetCollectorError sets the "collector_error" field.
func (u *LibraryUpsert) SetCollectorError(v string) *LibraryUpsert {
	u.Set(library.FieldCollectorError, v)
	return u
}

// UpdateCollectorError sets the "collector_error" field to the value that was provided on create.
func (u *LibraryUpsert) UpdateCollectorError() *LibraryUpsert {
	u.SetExcluded(library.FieldCollectorError)
	return u
}

// ClearCollectorError clears the value of the "collector_error" field.
func (u *LibraryUpsert) ClearCollectorError() *LibraryUpsert {
	u.SetNull(library.FieldCollectorError)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *LibraryUpsert) SetUpdatedAt(v time.Time) *LibraryUpsert {
	u.Set(library.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *LibraryUpsert) UpdateUpdatedAt() *LibraryUpsert {
	u.SetExcluded(library.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Library.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(library.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *LibraryUpsertOne) UpdateNewValues() *LibraryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(library.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(library.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Library.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *LibraryUpsertOne) Ignore() *LibraryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LibraryUpsertOne) DoNothing() *LibraryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LibraryCreate.OnConflict
// documentation for more info.
func (u *LibraryUpsertOne) Update(set func(*LibraryUpsert)) *LibraryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LibraryUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *LibraryUpsertOne) SetName(v string) *LibraryUpsertOne {
	return u.Update(func(s *LibraryUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *LibraryUpsertOne) UpdateName() *LibraryUpsertOne {
	return u.Update(func(s *LibraryUpsert) {
		s.UpdateName()
	})
}

// SetRepoURL sets the "repo_url" field.
func (u *LibraryUpsertOne) SetRepoURL(v string) *LibraryUpsertOne {
	return u.Update(func(s *LibraryUpsert) {
		s.SetRepoURL(v)
	})
}

// UpdateRepoURL sets the "repo_url" field to the value that was provided on create.
func (u *LibraryUpsertOne) UpdateRepoURL() *LibraryUpsertOne {
	return u.Update(func(s *LibraryUpsert) {
		s.UpdateRepoURL()
	})
}

// SetPlatform sets the "platform" field.
func (u *LibraryUpsertOne) SetPlatform(v string) *LibraryUpsertOne {
	return u.Update(func(s *LibraryUpsert) {
		s.SetPlatform(v)
	})
}

// UpdatePlatform sets the "platform" field to the value that was provided on create.
func (u *LibraryUpsertOne) UpdatePlatform() *LibraryUpsertOne {
	return u.Update(func(s *LibraryUpsert) {
		s.UpdatePlatform()
	})
}

// SetEcosystem sets the "ecosystem" field.
func (u *LibraryUpsertOne) SetEcosystem(v string) *LibraryUpsertOne {
	return u.Update(func(s *LibraryUpsert) {
		s.SetEcosystem(v)
	})
}

// UpdateEcosystem sets the "ecosystem" field to the value that was provided on create.
func (u *LibraryUpsertOne) UpdateEcosystem() *LibraryUpsertOne {
	return u.Update(func(s *LibraryUpsert) {
		s.UpdateEcosystem()
	})
}

// ClearEcosystem clears the value of the "ecosystem" field.
func (u *LibraryUpsertOne) ClearEcosystem() *LibraryUpsertOne {
	return u.Update(func(s *LibraryUpsert) {
		s.ClearEcosystem()
	})
}

// SetDefaultBranch sets the "default_branch" field.
func (u *LibraryUpsertOne) SetDefaultBranch(v string) *LibraryUpsertOne {
	return u.Update(func(s *LibraryUpsert) {
		s.SetDefaultBranch(v)
	})
}

// UpdateDefaultBranch sets the "default_branch" field to the value that was provided on create.
func (u *LibraryUpsertOne) UpdateDefaultBranch() *LibraryUpsertOne {
	return u.Update(func(s *LibraryUpsert) {
		s.UpdateDefaultBranch()
	})
}

// SetLastCommitSha sets the "last_commit_sha" field.
func (u *LibraryUpsertOne) SetLastCommitSha(v string) *LibraryUpsertOne {
	return u.Update(func(s *LibraryUpsert) {
		s.SetLastCommitSha(v)
	})
}

// UpdateLastCommitSha sets the "last_commit_sha" field to the value that was provided on create.
func (u *LibraryUpsertOne) UpdateLastCommitSha() *LibraryUpsertOne {
	return u.Update(func(s *LibraryUpsert) {
		s.UpdateLastCommitSha()
	})
}

// ClearLastCommitSha clears the value of the "last_commit_sha" field.
func (u *LibraryUpsertOne) ClearLastCommitSha() *LibraryUpsertOne {
	return u.Update(func(s *LibraryUpsert) {
		s.ClearLastCommitSha()
	})
}

// SetLastTagName sets the "last_tag_name" field.
func (u *LibraryUpsertOne) SetLastTagName(v string) *LibraryUpsertOne {
	return u.Update(func(s *LibraryUpsert) {
		s.SetLastTagName(v)
	})
}

// UpdateLastTagName sets the "last_tag_name" field to the value that was provided on create.
func (u *LibraryUpsertOne) UpdateLastTagName() *LibraryUpsertOne {
	return u.Update(func(s *LibraryUpsert) {
		s.UpdateLastTagName()
	})
}

// ClearLastTagName clears the value of the "last_tag_name" field.
func (u *LibraryUpsertOne) ClearLastTagName() *LibraryUpsertOne {
	return u.Update(func(s *LibraryUpsert) {
		s.ClearLastTagName()
	})
}

// SetLastScannedAt sets the "last_scanned_at" field.
func (u *LibraryUpsertOne) SetLastScannedAt(v time.Time) *LibraryUpsertOne {
	return u.Update(func(s *LibraryUpsert) {
		s.SetLastScannedAt(v)
	})
}

// UpdateLastScannedAt sets the "last_scanned_at" field to the value that was provided on create.
func (u *LibraryUpsertOne) UpdateLastScannedAt() *LibraryUpsertOne {
	return u.Update(func(s *LibraryUpsert) {
		s.UpdateLastScannedAt()
	})
}

// ClearLastScannedAt clears the value of the "last_scanned_at" field.
func (u *LibraryUpsertOne) ClearLastScannedAt() *LibraryUpsertOne {
	return u.Update(func(s *LibraryUpsert) {
		s.ClearLastScannedAt()
	})
}

// SetCollectorHealth sets the "collector_health" field.
func (u *LibraryUpsertOne) SetCollectorHealth(v library.CollectorHealth) *LibraryUpsertOne {
	return u.Update(func(s *LibraryUpsert) {
		s.SetCollectorHealth(v)
	})
}

// UpdateCollectorHealth sets the "collector_health" field to the value that was provided on create.
func (u *LibraryUpsertOne) UpdateCollectorHealth() *LibraryUpsertOne {
	return u.Update(func(s *LibraryUpsert) {
		s.UpdateCollectorHealth()
	})
}

// SetCollectorDetail sets the "collector_detail" field.
func (u *LibraryUpsertOne) SetCollectorDetail(v map[string]string) *LibraryUpsertOne {
	return u.Update(func(s *LibraryUpsert) {
		s.SetCollectorDetail(v)
	})
}

// UpdateCollectorDetail sets the "collector_detail" field to the value that was provided on create.
func (u *LibraryUpsertOne) UpdateCollectorDetail() *LibraryUpsertOne {
	return u.Update(func(s *LibraryUpsert) {
		s.UpdateCollectorDetail()
	})
}

// ClearCollectorDetail clears the value of the "collector_detail" field.
func (u *LibraryUpsertOne) ClearCollectorDetail() *LibraryUpsertOne {
	return u.Update(func(s *LibraryUpsert) {
		s.ClearCollectorDetail()
	})
}

// SetCollectorError sets the "collector_error" field.
func (u *LibraryUpsertOne) SetCollectorError(v string) *LibraryUpsertOne {
	return u.Update(func(s *LibraryUpsert) {
		s.SetCollectorError(v)
	})
}

// UpdateCollectorError sets the "collector_error" field to the value that was provided on create.
func (u *LibraryUpsertOne) UpdateCollectorError() *LibraryUpsertOne {
	return u.Update(func(s *LibraryUpsert) {
		s.UpdateCollectorError()
	})
}

// ClearCollectorError clears the value of the "collector_error" field.
func (u *LibraryUpsertOne) ClearCollectorError() *LibraryUpsertOne {
	return u.Update(func(s *LibraryUpsert) {
		s.ClearCollectorError()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *LibraryUpsertOne) SetUpdatedAt(v time.Time) *LibraryUpsertOne {
	return u.Update(func(s *LibraryUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *LibraryUpsertOne) UpdateUpdatedAt() *LibraryUpsertOne {
	return u.Update(func(s *LibraryUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *LibraryUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LibraryCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LibraryUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *LibraryUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: LibraryUpsertOne.ID is not supported by MySQL driver. Use LibraryUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *LibraryUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// LibraryCreateBulk is the builder for creating many Library entities in bulk.
type LibraryCreateBulk struct {
	config
	err      error
	builders []*LibraryCreate
	conflict []sql.ConflictOption
}

// Save creates the Library entities in the database.
func (_c *LibraryCreateBulk) Save(ctx context.Context) ([]*Library, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Library, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LibraryMutation)
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
func (_c *LibraryCreateBulk) SaveX(ctx context.Context) []*Library {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LibraryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LibraryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Library.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LibraryUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *LibraryCreateBulk) OnConflict(opts ...sql.ConflictOption) *LibraryUpsertBulk {
	_c.conflict = opts
	return &LibraryUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Library.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LibraryCreateBulk) OnConflictColumns(columns ...string) *LibraryUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LibraryUpsertBulk{
		create: _c,
	}
}

// LibraryUpsertBulk is the builder for "upsert"-ing
// a bulk of Library nodes.
type LibraryUpsertBulk struct {
	create *LibraryCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Library.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(library.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *LibraryUpsertBulk) UpdateNewValues() *LibraryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(library.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(library.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Library.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *LibraryUpsertBulk) Ignore() *LibraryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LibraryUpsertBulk) DoNothing() *LibraryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LibraryCreateBulk.OnConflict
// documentation for more info.
func (u *LibraryUpsertBulk) Update(set func(*LibraryUpsert)) *LibraryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LibraryUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *LibraryUpsertBulk) SetName(v string) *LibraryUpsertBulk {
	return u.Update(func(s *LibraryUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *LibraryUpsertBulk) UpdateName() *LibraryUpsertBulk {
	return u.Update(func(s *LibraryUpsert) {
		s.UpdateName()
	})
}

// SetRepoURL sets the "repo_url" field.
func (u *LibraryUpsertBulk) SetRepoURL(v string) *LibraryUpsertBulk {
	return u.Update(func(s *LibraryUpsert) {
		s.SetRepoURL(v)
	})
}

// UpdateRepoURL sets the "repo_url" field to the value that was provided on create.
func (u *LibraryUpsertBulk) UpdateRepoURL() *LibraryUpsertBulk {
	return u.Update(func(s *LibraryUpsert) {
		s.UpdateRepoURL()
	})
}

// SetPlatform sets the "platform" field.
func (u *LibraryUpsertBulk) SetPlatform(v string) *LibraryUpsertBulk {
	return u.Update(func(s *LibraryUpsert) {
		s.SetPlatform(v)
	})
}

// UpdatePlatform sets the "platform" field to the value that was provided on create.
func (u *LibraryUpsertBulk) UpdatePlatform() *LibraryUpsertBulk {
	return u.Update(func(s *LibraryUpsert) {
		s.UpdatePlatform()
	})
}

// SetEcosystem sets the "ecosystem" field.
func (u *LibraryUpsertBulk) SetEcosystem(v string) *LibraryUpsertBulk {
	return u.Update(func(s *LibraryUpsert) {
		s.SetEcosystem(v)
	})
}

// UpdateEcosystem sets the "ecosystem" field to the value that was provided on create.
func (u *LibraryUpsertBulk) UpdateEcosystem() *LibraryUpsertBulk {
	return u.Update(func(s *LibraryUpsert) {
		s.UpdateEcosystem()
	})
}

// ClearEcosystem clears the value of the "ecosystem" field.
func (u *LibraryUpsertBulk) ClearEcosystem() *LibraryUpsertBulk {
	return u.Update(func(s *LibraryUpsert) {
		s.ClearEcosystem()
	})
}

// SetDefaultBranch sets the "default_branch" field.
func (u *LibraryUpsertBulk) SetDefaultBranch(v string) *LibraryUpsertBulk {
	return u.Update(func(s *LibraryUpsert) {
		s.SetDefaultBranch(v)
	})
}

// UpdateDefaultBranch sets the "default_branch" field to the value that was provided on create.
func (u *LibraryUpsertBulk) UpdateDefaultBranch() *LibraryUpsertBulk {
	return u.Update(func(s *LibraryUpsert) {
		s.UpdateDefaultBranch()
	})
}

// SetLastCommitSha sets the "last_commit_sha" field.
func (u *LibraryUpsertBulk) SetLastCommitSha(v string) *LibraryUpsertBulk {
	return u.Update(func(s *LibraryUpsert) {
		s.SetLastCommitSha(v)
	})
}

// UpdateLastCommitSha sets the "last_commit_sha" field to the value that was provided on create.
func (u *LibraryUpsertBulk) UpdateLastCommitSha() *LibraryUpsertBulk {
	return u.Update(func(s *LibraryUpsert) {
		s.UpdateLastCommitSha()
	})
}

// ClearLastCommitSha clears the value of the "last_commit_sha" field.
func (u *LibraryUpsertBulk) ClearLastCommitSha() *LibraryUpsertBulk {
	return u.Update(func(s *LibraryUpsert) {
		s.ClearLastCommitSha()
	})
}

// SetLastTagName sets the "last_tag_name" field.
func (u *LibraryUpsertBulk) SetLastTagName(v string) *LibraryUpsertBulk {
	return u.Update(func(s *LibraryUpsert) {
		s.SetLastTagName(v)
	})
}

// UpdateLastTagName sets the "last_tag_name" field to the value that was provided on create.
func (u *LibraryUpsertBulk) UpdateLastTagName() *LibraryUpsertBulk {
	return u.Update(func(s *LibraryUpsert) {
		s.UpdateLastTagName()
	})
}

// ClearLastTagName clears the value of the "last_tag_name" field.
func (u *LibraryUpsertBulk) ClearLastTagName() *LibraryUpsertBulk {
	return u.Update(func(s *LibraryUpsert) {
		s.ClearLastTagName()
	})
}

// SetLastScannedAt sets the "last_scanned_at" field.
func (u *LibraryUpsertBulk) SetLastScannedAt(v time.Time) *LibraryUpsertBulk {
	return u.Update(func(s *LibraryUpsert) {
		s.SetLastScannedAt(v)
	})
}

// UpdateLastScannedAt sets the "last_scanned_at" field to the value that was provided on create.
func (u *LibraryUpsertBulk) UpdateLastScannedAt() *LibraryUpsertBulk {
	return u.Update(func(s *LibraryUpsert) {
		s.UpdateLastScannedAt()
	})
}

// ClearLastScannedAt clears the value of the "last_scanned_at" field.
func (u *LibraryUpsertBulk) ClearLastScannedAt() *LibraryUpsertBulk {
	return u.Update(func(s *LibraryUpsert) {
		s.ClearLastScannedAt()
	})
}

// SetCollectorHealth sets the "collector_health" field.
func (u *LibraryUpsertBulk) SetCollectorHealth(v library.CollectorHealth) *LibraryUpsertBulk {
	return u.Update(func(s *LibraryUpsert) {
		s.SetCollectorHealth(v)
	})
}

// UpdateCollectorHealth sets the "collector_health" field to the value that was provided on create.
func (u *LibraryUpsertBulk) UpdateCollectorHealth() *LibraryUpsertBulk {
	return u.Update(func(s *LibraryUpsert) {
		s.UpdateCollectorHealth()
	})
}

// SetCollectorDetail sets the "collector_detail" field.
func (u *LibraryUpsertBulk) SetCollectorDetail(v map[string]string) *LibraryUpsertBulk {
	return u.Update(func(s *LibraryUpsert) {
		s.SetCollectorDetail(v)
	})
}

// UpdateCollectorDetail sets the "collector_detail" field to the value that was provided on create.
func (u *LibraryUpsertBulk) UpdateCollectorDetail() *LibraryUpsertBulk {
	return u.Update(func(s *LibraryUpsert) {
		s.UpdateCollectorDetail()
	})
}

// ClearCollectorDetail clears the value of the "collector_detail" field.
func (u *LibraryUpsertBulk) ClearCollectorDetail() *LibraryUpsertBulk {
	return u.Update(func(s *LibraryUpsert) {
		s.ClearCollectorDetail()
	})
}

// SetCollectorError sets the "collector_error" field.
func (u *LibraryUpsertBulk) SetCollectorError(v string) *LibraryUpsertBulk {
	return u.Update(func(s *LibraryUpsert) {
		s.SetCollectorError(v)
	})
}

// UpdateCollectorError sets the "collector_error" field to the value that was provided on create.
func (u *LibraryUpsertBulk) UpdateCollectorError() *LibraryUpsertBulk {
	return u.Update(func(s *LibraryUpsert) {
		s.UpdateCollectorError()
	})
}

// ClearCollectorError clears the value of the "collector_error" field.
func (u *LibraryUpsertBulk) ClearCollectorError() *LibraryUpsertBulk {
	return u.Update(func(s *LibraryUpsert) {
		s.ClearCollectorError()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *LibraryUpsertBulk) SetUpdatedAt(v time.Time) *LibraryUpsertBulk {
	return u.Update(func(s *LibraryUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *LibraryUpsertBulk) UpdateUpdatedAt() *LibraryUpsertBulk {
	return u.Update(func(s *LibraryUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *LibraryUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the LibraryCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LibraryCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LibraryUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
