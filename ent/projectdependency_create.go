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
	"github.com/vulnsentinel/vulnsentinel/ent/library"
	"github.com/vulnsentinel/vulnsentinel/ent/project"
	"github.com/vulnsentinel/vulnsentinel/ent/projectdependency"
)

// ProjectDependencyCreate is the builder for creating a ProjectDependency entity.
type ProjectDependencyCreate struct {
	config
	mutation *ProjectDependencyMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetProjectID sets the "project_id" field.
func (_c *ProjectDependencyCreate) SetProjectID(v string) *ProjectDependencyCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetLibraryID sets the "library_id" field.
func (_c *ProjectDependencyCreate) SetLibraryID(v string) *ProjectDependencyCreate {
	_c.mutation.SetLibraryID(v)
	return _c
}

// SetConstraintExpr sets the "constraint_expr" field.
func (_c *ProjectDependencyCreate) SetConstraintExpr(v string) *ProjectDependencyCreate {
	_c.mutation.SetConstraintExpr(v)
	return _c
}

// SetResolvedVersion sets the "resolved_version" field.
func (_c *ProjectDependencyCreate) SetResolvedVersion(v string) *ProjectDependencyCreate {
	_c.mutation.SetResolvedVersion(v)
	return _c
}

// SetNillableResolvedVersion sets the "resolved_version" field if the given value is not nil.
func (_c *ProjectDependencyCreate) SetNillableResolvedVersion(v *string) *ProjectDependencyCreate {
	if v != nil {
		_c.SetResolvedVersion(*v)
	}
	return _c
}

// SetConstraintSource sets the "constraint_source" field.
func (_c *ProjectDependencyCreate) SetConstraintSource(v string) *ProjectDependencyCreate {
	_c.mutation.SetConstraintSource(v)
	return _c
}

// SetNillableConstraintSource sets the "constraint_source" field if the given value is not nil.
func (_c *ProjectDependencyCreate) SetNillableConstraintSource(v *string) *ProjectDependencyCreate {
	if v != nil {
		_c.SetConstraintSource(*v)
	}
	return _c
}

// SetNotifyEnabled sets the "notify_enabled" field.
func (_c *ProjectDependencyCreate) SetNotifyEnabled(v bool) *ProjectDependencyCreate {
	_c.mutation.SetNotifyEnabled(v)
	return _c
}

// SetNillableNotifyEnabled sets the "notify_enabled" field if the given value is not nil.
func (_c *ProjectDependencyCreate) SetNillableNotifyEnabled(v *bool) *ProjectDependencyCreate {
	if v != nil {
		_c.SetNotifyEnabled(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ProjectDependencyCreate) SetCreatedAt(v time.Time) *ProjectDependencyCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ProjectDependencyCreate) SetNillableCreatedAt(v *time.Time) *ProjectDependencyCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ProjectDependencyCreate) SetUpdatedAt(v time.Time) *ProjectDependencyCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ProjectDependencyCreate) SetNillableUpdatedAt(v *time.Time) *ProjectDependencyCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ProjectDependencyCreate) SetID(v string) *ProjectDependencyCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ProjectDependencyCreate) SetNillableID(v *string) *ProjectDependencyCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetProject sets the "project" edge to the Project entity.
func (_c *ProjectDependencyCreate) SetProject(v *Project) *ProjectDependencyCreate {
	return _c.SetProjectID(v.ID)
}

// SetLibrary sets the "library" edge to the Library entity.
func (_c *ProjectDependencyCreate) SetLibrary(v *Library) *ProjectDependencyCreate {
	return _c.SetLibraryID(v.ID)
}

// Mutation returns the ProjectDependencyMutation object of the builder.
func (_c *ProjectDependencyCreate) Mutation() *ProjectDependencyMutation {
	return _c.mutation
}

// Save creates the ProjectDependency in the database.
func (_c *ProjectDependencyCreate) Save(ctx context.Context) (*ProjectDependency, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProjectDependencyCreate) SaveX(ctx context.Context) *ProjectDependency {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProjectDependencyCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProjectDependencyCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProjectDependencyCreate) defaults() {
	if _, ok := _c.mutation.ConstraintSource(); !ok {
		v := projectdependency.DefaultConstraintSource
		_c.mutation.SetConstraintSource(v)
	}
	if _, ok := _c.mutation.NotifyEnabled(); !ok {
		v := projectdependency.DefaultNotifyEnabled
		_c.mutation.SetNotifyEnabled(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := projectdependency.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := projectdependency.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := projectdependency.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProjectDependencyCreate) check() error {
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "ProjectDependency.project_id"`)}
	}
	if _, ok := _c.mutation.LibraryID(); !ok {
		return &ValidationError{Name: "library_id", err: errors.New(`ent: missing required field "ProjectDependency.library_id"`)}
	}
	if _, ok := _c.mutation.ConstraintExpr(); !ok {
		return &ValidationError{Name: "constraint_expr", err: errors.New(`ent: missing required field "ProjectDependency.constraint_expr"`)}
	}
	if _, ok := _c.mutation.ConstraintSource(); !ok {
		return &ValidationError{Name: "constraint_source", err: errors.New(`ent: missing required field "ProjectDependency.constraint_source"`)}
	}
	if _, ok := _c.mutation.NotifyEnabled(); !ok {
		return &ValidationError{Name: "notify_enabled", err: errors.New(`ent: missing required field "ProjectDependency.notify_enabled"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ProjectDependency.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ProjectDependency.updated_at"`)}
	}
	if len(_c.mutation.ProjectIDs()) == 0 {
		return &ValidationError{Name: "project", err: errors.New(`ent: missing required edge "ProjectDependency.project"`)}
	}
	if len(_c.mutation.LibraryIDs()) == 0 {
		return &ValidationError{Name: "library", err: errors.New(`ent: missing required edge "ProjectDependency.library"`)}
	}
	return nil
}

func (_c *ProjectDependencyCreate) sqlSave(ctx context.Context) (*ProjectDependency, error) {
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
			return nil, fmt.Errorf("unexpected ProjectDependency.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ProjectDependencyCreate) createSpec() (*ProjectDependency, *sqlgraph.CreateSpec) {
	var (
		_node = &ProjectDependency{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(projectdependency.Table, sqlgraph.NewFieldSpec(projectdependency.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ConstraintExpr(); ok {
		_spec.SetField(projectdependency.FieldConstraintExpr, field.TypeString, value)
		_node.ConstraintExpr = value
	}
	if value, ok := _c.mutation.ResolvedVersion(); ok {
		_spec.SetField(projectdependency.FieldResolvedVersion, field.TypeString, value)
		_node.ResolvedVersion = &value
	}
	if value, ok := _c.mutation.ConstraintSource(); ok {
		_spec.SetField(projectdependency.FieldConstraintSource, field.TypeString, value)
		_node.ConstraintSource = value
	}
	if value, ok := _c.mutation.NotifyEnabled(); ok {
		_spec.SetField(projectdependency.FieldNotifyEnabled, field.TypeBool, value)
		_node.NotifyEnabled = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(projectdependency.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(projectdependency.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   projectdependency.ProjectTable,
			Columns: []string{projectdependency.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ProjectID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.LibraryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   projectdependency.LibraryTable,
			Columns: []string{projectdependency.LibraryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(library.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.LibraryID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ProjectDependency.Create().
//		SetProjectID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ProjectDependencyUpsert) {
//			SetProjectID(v+v).
//		}).
//		Exec(ctx)
func (_c *ProjectDependencyCreate) OnConflict(opts ...sql.ConflictOption) *ProjectDependencyUpsertOne {
	_c.conflict = opts
	return &ProjectDependencyUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ProjectDependency.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ProjectDependencyCreate) OnConflictColumns(columns ...string) *ProjectDependencyUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ProjectDependencyUpsertOne{
		create: _c,
	}
}

type (
	// ProjectDependencyUpsertOne is the builder for "upsert"-ing
	//  one ProjectDependency node.
	ProjectDependencyUpsertOne struct {
		create *ProjectDependencyCreate
	}

	// ProjectDependencyUpsert is the "OnConflict" setter.
	ProjectDependencyUpsert struct {
		*sql.UpdateSet
	}
)

// SetProjectID sets the "project_id" field.
func (u *ProjectDependencyUpsert) SetProjectID(v string) *ProjectDependencyUpsert {
	u.Set(projectdependency.FieldProjectID, v)
	return u
}

// UpdateProjectID sets the "project_id" field to the value that was provided on create.
func (u *ProjectDependencyUpsert) UpdateProjectID() *ProjectDependencyUpsert {
	u.SetExcluded(projectdependency.FieldProjectID)
	return u
}

// SetLibraryID sets the "library_id" field.
func (u *ProjectDependencyUpsert) SetLibraryID(v string) *ProjectDependencyUpsert {
	u.Set(projectdependency.FieldLibraryID, v)
	return u
}

// UpdateLibraryID sets the "library_id" field to the value that was provided on create.
func (u *ProjectDependencyUpsert) UpdateLibraryID() *ProjectDependencyUpsert {
	u.SetExcluded(projectdependency.FieldLibraryID)
	return u
}

// SetConstraintExpr sets the "constraint_expr" field.
func (u *ProjectDependencyUpsert) SetConstraintExpr(v string) *ProjectDependencyUpsert {
	u.Set(projectdependency.FieldConstraintExpr, v)
	return u
}

// UpdateConstraintExpr sets the "constraint_expr" field to the value that was provided on create.
func (u *ProjectDependencyUpsert) UpdateConstraintExpr() *ProjectDependencyUpsert {
	u.SetExcluded(projectdependency.FieldConstraintExpr)
	return u
}

// SetResolvedVersion sets the "resolved_version" field.
func (u *ProjectDependencyUpsert) SetResolvedVersion(v string) *ProjectDependencyUpsert {
	u.Set(projectdependency.FieldResolvedVersion, v)
	return u
}

// UpdateResolvedVersion sets the "resolved_version" field to the value that was provided on create.
func (u *ProjectDependencyUpsert) UpdateResolvedVersion() *ProjectDependencyUpsert {
	u.SetExcluded(projectdependency.FieldResolvedVersion)
	return u
}

// ClearResolvedVersion clears the value of the "resolved_version" field.
func (u *ProjectDependencyUpsert) ClearResolvedVersion() *ProjectDependencyUpsert {
	u.SetNull(projectdependency.FieldResolvedVersion)
	return u
}

// SetConstraintSource sets the "constraint_source" field.
func (u *ProjectDependencyUpsert) SetConstraintSource(v string) *ProjectDependencyUpsert {
	u.Set(projectdependency.FieldConstraintSource, v)
	return u
}

// UpdateConstraintSource sets the "constraint_source" field to the value that was provided on create.
func (u *ProjectDependencyUpsert) UpdateConstraintSource() *ProjectDependencyUpsert {
	u.SetExcluded(projectdependency.FieldConstraintSource)
	return u
}

// SetNotifyEnabled sets the "notify_enabled" field.
func (u *ProjectDependencyUpsert) SetNotifyEnabled(v bool) *ProjectDependencyUpsert {
	u.Set(projectdependency.FieldNotifyEnabled, v)
	return u
}

// UpdateNotifyEnabled sets the "notify_enabled" field to the value that was provided on create.
func (u *ProjectDependencyUpsert) UpdateNotifyEnabled() *ProjectDependencyUpsert {
	u.SetExcluded(projectdependency.FieldNotifyEnabled)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ProjectDependencyUpsert) SetUpdatedAt(v time.Time) *ProjectDependencyUpsert {
	u.Set(projectdependency.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ProjectDependencyUpsert) UpdateUpdatedAt() *ProjectDependencyUpsert {
	u.SetExcluded(projectdependency.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ProjectDependency.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(projectdependency.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ProjectDependencyUpsertOne) UpdateNewValues() *ProjectDependencyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(projectdependency.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(projectdependency.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ProjectDependency.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ProjectDependencyUpsertOne) Ignore() *ProjectDependencyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ProjectDependencyUpsertOne) DoNothing() *ProjectDependencyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ProjectDependencyCreate.OnConflict
// documentation for more info.
func (u *ProjectDependencyUpsertOne) Update(set func(*ProjectDependencyUpsert)) *ProjectDependencyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ProjectDependencyUpsert{UpdateSet: update})
	}))
	return u
}

// SetProjectID sets the "project_id" field.
func (u *ProjectDependencyUpsertOne) SetProjectID(v string) *ProjectDependencyUpsertOne {
	return u.Update(func(s *ProjectDependencyUpsert) {
		s.SetProjectID(v)
	})
}

// UpdateProjectID sets the "project_id" field to the value that was provided on create.
func (u *ProjectDependencyUpsertOne) UpdateProjectID() *ProjectDependencyUpsertOne {
	return u.Update(func(s *ProjectDependencyUpsert) {
		s.UpdateProjectID()
	})
}

// SetLibraryID sets the "library_id" field.
func (u *ProjectDependencyUpsertOne) SetLibraryID(v string) *ProjectDependencyUpsertOne {
	return u.Update(func(s *ProjectDependencyUpsert) {
		s.SetLibraryID(v)
	})
}

// UpdateLibraryID sets the "library_id" field to the value that was provided on create.
func (u *ProjectDependencyUpsertOne) UpdateLibraryID() *ProjectDependencyUpsertOne {
	return u.Update(func(s *ProjectDependencyUpsert) {
		s.UpdateLibraryID()
	})
}

// SetConstraintExpr sets the "constraint_expr" field.
func (u *ProjectDependencyUpsertOne) SetConstraintExpr(v string) *ProjectDependencyUpsertOne {
	return u.Update(func(s *ProjectDependencyUpsert) {
		s.SetConstraintExpr(v)
	})
}

// UpdateConstraintExpr sets the "constraint_expr" field to the value that was provided on create.
func (u *ProjectDependencyUpsertOne) UpdateConstraintExpr() *ProjectDependencyUpsertOne {
	return u.Update(func(s *ProjectDependencyUpsert) {
		s.UpdateConstraintExpr()
	})
}

// SetResolvedVersion sets the "resolved_version" field.
func (u *ProjectDependencyUpsertOne) SetResolvedVersion(v string) *ProjectDependencyUpsertOne {
	return u.Update(func(s *ProjectDependencyUpsert) {
		s.SetResolvedVersion(v)
	})
}

// UpdateResolvedVersion sets the "resolved_version" field to the value that was provided on create.
func (u *ProjectDependencyUpsertOne) UpdateResolvedVersion() *ProjectDependencyUpsertOne {
	return u.Update(func(s *ProjectDependencyUpsert) {
		s.UpdateResolvedVersion()
	})
}

// ClearResolvedVersion clears the value of the "resolved_version" field.
func (u *ProjectDependencyUpsertOne) ClearResolvedVersion() *ProjectDependencyUpsertOne {
	return u.Update(func(s *ProjectDependencyUpsert) {
		s.ClearResolvedVersion()
	})
}

// SetConstraintSource sets the "constraint_source" field.
func (u *ProjectDependencyUpsertOne) SetConstraintSource(v string) *ProjectDependencyUpsertOne {
	return u.Update(func(s *ProjectDependencyUpsert) {
		s.SetConstraintSource(v)
	})
}

// UpdateConstraintSource sets the "constraint_source" field to the value that was provided on create.
func (u *ProjectDependencyUpsertOne) UpdateConstraintSource() *ProjectDependencyUpsertOne {
	return u.Update(func(s *ProjectDependencyUpsert) {
		s.UpdateConstraintSource()
	})
}

// SetNotifyEnabled sets the "notify_enabled" field.
func (u *ProjectDependencyUpsertOne) SetNotifyEnabled(v bool) *ProjectDependencyUpsertOne {
	return u.Update(func(s *ProjectDependencyUpsert) {
		s.SetNotifyEnabled(v)
	})
}

// UpdateNotifyEnabled sets the "notify_enabled" field to the value that was provided on create.
func (u *ProjectDependencyUpsertOne) UpdateNotifyEnabled() *ProjectDependencyUpsertOne {
	return u.Update(func(s *ProjectDependencyUpsert) {
		s.UpdateNotifyEnabled()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ProjectDependencyUpsertOne) SetUpdatedAt(v time.Time) *ProjectDependencyUpsertOne {
	return u.Update(func(s *ProjectDependencyUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ProjectDependencyUpsertOne) UpdateUpdatedAt() *ProjectDependencyUpsertOne {
	return u.Update(func(s *ProjectDependencyUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ProjectDependencyUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ProjectDependencyCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ProjectDependencyUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ProjectDependencyUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ProjectDependencyUpsertOne.ID is not supported by MySQL driver. Use ProjectDependencyUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ProjectDependencyUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ProjectDependencyCreateBulk is the builder for creating many ProjectDependency entities in bulk.
type ProjectDependencyCreateBulk struct {
	config
	err      error
	builders []*ProjectDependencyCreate
	conflict []sql.ConflictOption
}

// Save creates the ProjectDependency entities in the database.
func (_c *ProjectDependencyCreateBulk) Save(ctx context.Context) ([]*ProjectDependency, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProjectDependency, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProjectDependencyMutation)
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
func (_c *ProjectDependencyCreateBulk) SaveX(ctx context.Context) []*ProjectDependency {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProjectDependencyCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProjectDependencyCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ProjectDependency.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ProjectDependencyUpsert) {
//			SetProjectID(v+v).
//		}).
//		Exec(ctx)
func (_c *ProjectDependencyCreateBulk) OnConflict(opts ...sql.ConflictOption) *ProjectDependencyUpsertBulk {
	_c.conflict = opts
	return &ProjectDependencyUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ProjectDependency.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ProjectDependencyCreateBulk) OnConflictColumns(columns ...string) *ProjectDependencyUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ProjectDependencyUpsertBulk{
		create: _c,
	}
}

// ProjectDependencyUpsertBulk is the builder for "upsert"-ing
// a bulk of ProjectDependency nodes.
type ProjectDependencyUpsertBulk struct {
	create *ProjectDependencyCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ProjectDependency.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(projectdependency.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ProjectDependencyUpsertBulk) UpdateNewValues() *ProjectDependencyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(projectdependency.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(projectdependency.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ProjectDependency.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ProjectDependencyUpsertBulk) Ignore() *ProjectDependencyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ProjectDependencyUpsertBulk) DoNothing() *ProjectDependencyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ProjectDependencyCreateBulk.OnConflict
// documentation for more info.
func (u *ProjectDependencyUpsertBulk) Update(set func(*ProjectDependencyUpsert)) *ProjectDependencyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ProjectDependencyUpsert{UpdateSet: update})
	}))
	return u
}

// SetProjectID sets the "project_id" field.
func (u *ProjectDependencyUpsertBulk) SetProjectID(v string) *ProjectDependencyUpsertBulk {
	return u.Update(func(s *ProjectDependencyUpsert) {
		s.SetProjectID(v)
	})
}

// UpdateProjectID sets the "project_id" field to the value that was provided on create.
func (u *ProjectDependencyUpsertBulk) UpdateProjectID() *ProjectDependencyUpsertBulk {
	return u.Update(func(s *ProjectDependencyUpsert) {
		s.UpdateProjectID()
	})
}

// SetLibraryID sets the "library_id" field.
func (u *ProjectDependencyUpsertBulk) SetLibraryID(v string) *ProjectDependencyUpsertBulk {
	return u.Update(func(s *ProjectDependencyUpsert) {
		s.SetLibraryID(v)
	})
}

// UpdateLibraryID sets the "library_id" field to the value that was provided on create.
func (u *ProjectDependencyUpsertBulk) UpdateLibraryID() *ProjectDependencyUpsertBulk {
	return u.Update(func(s *ProjectDependencyUpsert) {
		s.UpdateLibraryID()
	})
}

// SetConstraintExpr sets the "constraint_expr" field.
func (u *ProjectDependencyUpsertBulk) SetConstraintExpr(v string) *ProjectDependencyUpsertBulk {
	return u.Update(func(s *ProjectDependencyUpsert) {
		s.SetConstraintExpr(v)
	})
}

// UpdateConstraintExpr sets the "constraint_expr" field to the value that was provided on create.
func (u *ProjectDependencyUpsertBulk) UpdateConstraintExpr() *ProjectDependencyUpsertBulk {
	return u.Update(func(s *ProjectDependencyUpsert) {
		s.UpdateConstraintExpr()
	})
}

// SetResolvedVersion sets the "resolved_version" field.
func (u *ProjectDependencyUpsertBulk) SetResolvedVersion(v string) *ProjectDependencyUpsertBulk {
	return u.Update(func(s *ProjectDependencyUpsert) {
		s.SetResolvedVersion(v)
	})
}

// UpdateResolvedVersion sets the "resolved_version" field to the value that was provided on create.
func (u *ProjectDependencyUpsertBulk) UpdateResolvedVersion() *ProjectDependencyUpsertBulk {
	return u.Update(func(s *ProjectDependencyUpsert) {
		s.UpdateResolvedVersion()
	})
}

// ClearResolvedVersion clears the value of the "resolved_version" field.
func (u *ProjectDependencyUpsertBulk) ClearResolvedVersion() *ProjectDependencyUpsertBulk {
	return u.Update(func(s *ProjectDependencyUpsert) {
		s.ClearResolvedVersion()
	})
}

// SetConstraintSource sets the "constraint_source" field.
func (u *ProjectDependencyUpsertBulk) SetConstraintSource(v string) *ProjectDependencyUpsertBulk {
	return u.Update(func(s *ProjectDependencyUpsert) {
		s.SetConstraintSource(v)
	})
}

// UpdateConstraintSource sets the "constraint_source" field to the value that was provided on create.
func (u *ProjectDependencyUpsertBulk) UpdateConstraintSource() *ProjectDependencyUpsertBulk {
	return u.Update(func(s *ProjectDependencyUpsert) {
		s.UpdateConstraintSource()
	})
}

// SetNotifyEnabled sets the "notify_enabled" field.
func (u *ProjectDependencyUpsertBulk) SetNotifyEnabled(v bool) *ProjectDependencyUpsertBulk {
	return u.Update(func(s *ProjectDependencyUpsert) {
		s.SetNotifyEnabled(v)
	})
}

// UpdateNotifyEnabled sets the "notify_enabled" field to the value that was provided on create.
func (u *ProjectDependencyUpsertBulk) UpdateNotifyEnabled() *ProjectDependencyUpsertBulk {
	return u.Update(func(s *ProjectDependencyUpsert) {
		s.UpdateNotifyEnabled()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ProjectDependencyUpsertBulk) SetUpdatedAt(v time.Time) *ProjectDependencyUpsertBulk {
	return u.Update(func(s *ProjectDependencyUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ProjectDependencyUpsertBulk) UpdateUpdatedAt() *ProjectDependencyUpsertBulk {
	return u.Update(func(s *ProjectDependencyUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ProjectDependencyUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ProjectDependencyCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ProjectDependencyCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ProjectDependencyUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
