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
	"github.com/vulnsentinel/vulnsentinel/ent/library"
	"github.com/vulnsentinel/vulnsentinel/ent/predicate"
	"github.com/vulnsentinel/vulnsentinel/ent/project"
	"github.com/vulnsentinel/vulnsentinel/ent/projectdependency"
)

// ProjectDependencyUpdate is the builder for updating ProjectDependency entities.
type ProjectDependencyUpdate struct {
	config
	hooks    []Hook
	mutation *ProjectDependencyMutation
}

// Where appends a list predicates to the ProjectDependencyUpdate builder.
func (_u *ProjectDependencyUpdate) Where(ps ...predicate.ProjectDependency) *ProjectDependencyUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *ProjectDependencyUpdate) SetProjectID(v string) *ProjectDependencyUpdate {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *ProjectDependencyUpdate) SetNillableProjectID(v *string) *ProjectDependencyUpdate {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetLibraryID sets the "library_id" field.
func (_u *ProjectDependencyUpdate) SetLibraryID(v string) *ProjectDependencyUpdate {
	_u.mutation.SetLibraryID(v)
	return _u
}

// SetNillableLibraryID sets the "library_id" field if the given value is not nil.
func (_u *ProjectDependencyUpdate) SetNillableLibraryID(v *string) *ProjectDependencyUpdate {
	if v != nil {
		_u.SetLibraryID(*v)
	}
	return _u
}

// SetConstraintExpr sets the "constraint_expr" field.
func (_u *ProjectDependencyUpdate) SetConstraintExpr(v string) *ProjectDependencyUpdate {
	_u.mutation.SetConstraintExpr(v)
	return _u
}

// SetNillableConstraintExpr sets the "constraint_expr" field if the given value is not nil.
func (_u *ProjectDependencyUpdate) SetNillableConstraintExpr(v *string) *ProjectDependencyUpdate {
	if v != nil {
		_u.SetConstraintExpr(*v)
	}
	return _u
}

// SetResolvedVersion sets the "resolved_version" field.
func (_u *ProjectDependencyUpdate) SetResolvedVersion(v string) *ProjectDependencyUpdate {
	_u.mutation.SetResolvedVersion(v)
	return _u
}

// SetNillableResolvedVersion sets the "resolved_version" field if the given value is not nil.
func (_u *ProjectDependencyUpdate) SetNillableResolvedVersion(v *string) *ProjectDependencyUpdate {
	if v != nil {
		_u.SetResolvedVersion(*v)
	}
	return _u
}

// ClearResolvedVersion clears the value of the "resolved_version" field.
func (_u *ProjectDependencyUpdate) ClearResolvedVersion() *ProjectDependencyUpdate {
	_u.mutation.ClearResolvedVersion()
	return _u
}

// SetConstraintSource sets the "constraint_source" field.
func (_u *ProjectDependencyUpdate) SetConstraintSource(v string) *ProjectDependencyUpdate {
	_u.mutation.SetConstraintSource(v)
	return _u
}

// SetNillableConstraintSource sets the "constraint_source" field if the given value is not nil.
func (_u *ProjectDependencyUpdate) SetNillableConstraintSource(v *string) *ProjectDependencyUpdate {
	if v != nil {
		_u.SetConstraintSource(*v)
	}
	return _u
}

// SetNotifyEnabled sets the "notify_enabled" field.
func (_u *ProjectDependencyUpdate) SetNotifyEnabled(v bool) *ProjectDependencyUpdate {
	_u.mutation.SetNotifyEnabled(v)
	return _u
}

// SetNillableNotifyEnabled sets the "notify_enabled" field if the given value is not nil.
func (_u *ProjectDependencyUpdate) SetNillableNotifyEnabled(v *bool) *ProjectDependencyUpdate {
	if v != nil {
		_u.SetNotifyEnabled(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProjectDependencyUpdate) SetUpdatedAt(v time.Time) *ProjectDependencyUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProject sets the "project" edge to the Project entity.
func (_u *ProjectDependencyUpdate) SetProject(v *Project) *ProjectDependencyUpdate {
	return _u.SetProjectID(v.ID)
}

// SetLibrary sets the "library" edge to the Library entity.
func (_u *ProjectDependencyUpdate) SetLibrary(v *Library) *ProjectDependencyUpdate {
	return _u.SetLibraryID(v.ID)
}

// Mutation returns the ProjectDependencyMutation object of the builder.
func (_u *ProjectDependencyUpdate) Mutation() *ProjectDependencyMutation {
	return _u.mutation
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *ProjectDependencyUpdate) ClearProject() *ProjectDependencyUpdate {
	_u.mutation.ClearProject()
	return _u
}

// ClearLibrary clears the "library" edge to the Library entity.
func (_u *ProjectDependencyUpdate) ClearLibrary() *ProjectDependencyUpdate {
	_u.mutation.ClearLibrary()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProjectDependencyUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProjectDependencyUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProjectDependencyUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProjectDependencyUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProjectDependencyUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := projectdependency.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProjectDependencyUpdate) check() error {
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ProjectDependency.project"`)
	}
	if _u.mutation.LibraryCleared() && len(_u.mutation.LibraryIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ProjectDependency.library"`)
	}
	return nil
}

func (_u *ProjectDependencyUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(projectdependency.Table, projectdependency.Columns, sqlgraph.NewFieldSpec(projectdependency.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ConstraintExpr(); ok {
		_spec.SetField(projectdependency.FieldConstraintExpr, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResolvedVersion(); ok {
		_spec.SetField(projectdependency.FieldResolvedVersion, field.TypeString, value)
	}
	if _u.mutation.ResolvedVersionCleared() {
		_spec.ClearField(projectdependency.FieldResolvedVersion, field.TypeString)
	}
	if value, ok := _u.mutation.ConstraintSource(); ok {
		_spec.SetField(projectdependency.FieldConstraintSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.NotifyEnabled(); ok {
		_spec.SetField(projectdependency.FieldNotifyEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(projectdependency.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProjectCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProjectIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LibraryCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LibraryIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{projectdependency.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProjectDependencyUpdateOne is the builder for updating a single ProjectDependency entity.
type ProjectDependencyUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProjectDependencyMutation
}

// SetProjectID sets the "project_id" field.
func (_u *ProjectDependencyUpdateOne) SetProjectID(v string) *ProjectDependencyUpdateOne {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *ProjectDependencyUpdateOne) SetNillableProjectID(v *string) *ProjectDependencyUpdateOne {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetLibraryID sets the "library_id" field.
func (_u *ProjectDependencyUpdateOne) SetLibraryID(v string) *ProjectDependencyUpdateOne {
	_u.mutation.SetLibraryID(v)
	return _u
}

// SetNillableLibraryID sets the "library_id" field if the given value is not nil.
func (_u *ProjectDependencyUpdateOne) SetNillableLibraryID(v *string) *ProjectDependencyUpdateOne {
	if v != nil {
		_u.SetLibraryID(*v)
	}
	return _u
}

// SetConstraintExpr sets the "constraint_expr" field.
func (_u *ProjectDependencyUpdateOne) SetConstraintExpr(v string) *ProjectDependencyUpdateOne {
	_u.mutation.SetConstraintExpr(v)
	return _u
}

// SetNillableConstraintExpr sets the "constraint_expr" field if the given value is not nil.
func (_u *ProjectDependencyUpdateOne) SetNillableConstraintExpr(v *string) *ProjectDependencyUpdateOne {
	if v != nil {
		_u.SetConstraintExpr(*v)
	}
	return _u
}

// SetResolvedVersion sets the "resolved_version" field.
func (_u *ProjectDependencyUpdateOne) SetResolvedVersion(v string) *ProjectDependencyUpdateOne {
	_u.mutation.SetResolvedVersion(v)
	return _u
}

// SetNillableResolvedVersion sets the "resolved_version" field if the given value is not nil.
func (_u *ProjectDependencyUpdateOne) SetNillableResolvedVersion(v *string) *ProjectDependencyUpdateOne {
	if v != nil {
		_u.SetResolvedVersion(*v)
	}
	return _u
}

// ClearResolvedVersion clears the value of the "resolved_version" field.
func (_u *ProjectDependencyUpdateOne) ClearResolvedVersion() *ProjectDependencyUpdateOne {
	_u.mutation.ClearResolvedVersion()
	return _u
}

// SetConstraintSource sets the "constraint_source" field.
func (_u *ProjectDependencyUpdateOne) SetConstraintSource(v string) *ProjectDependencyUpdateOne {
	_u.mutation.SetConstraintSource(v)
	return _u
}

// SetNillableConstraintSource sets the "constraint_source" field if the given value is not nil.
func (_u *ProjectDependencyUpdateOne) SetNillableConstraintSource(v *string) *ProjectDependencyUpdateOne {
	if v != nil {
		_u.SetConstraintSource(*v)
	}
	return _u
}

// SetNotifyEnabled sets the "notify_enabled" field.
func (_u *ProjectDependencyUpdateOne) SetNotifyEnabled(v bool) *ProjectDependencyUpdateOne {
	_u.mutation.SetNotifyEnabled(v)
	return _u
}

// SetNillableNotifyEnabled sets the "notify_enabled" field if the given value is not nil.
func (_u *ProjectDependencyUpdateOne) SetNillableNotifyEnabled(v *bool) *ProjectDependencyUpdateOne {
	if v != nil {
		_u.SetNotifyEnabled(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProjectDependencyUpdateOne) SetUpdatedAt(v time.Time) *ProjectDependencyUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProject sets the "project" edge to the Project entity.
func (_u *ProjectDependencyUpdateOne) SetProject(v *Project) *ProjectDependencyUpdateOne {
	return _u.SetProjectID(v.ID)
}

// SetLibrary sets the "library" edge to the Library entity.
func (_u *ProjectDependencyUpdateOne) SetLibrary(v *Library) *ProjectDependencyUpdateOne {
	return _u.SetLibraryID(v.ID)
}

// Mutation returns the ProjectDependencyMutation object of the builder.
func (_u *ProjectDependencyUpdateOne) Mutation() *ProjectDependencyMutation {
	return _u.mutation
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *ProjectDependencyUpdateOne) ClearProject() *ProjectDependencyUpdateOne {
	_u.mutation.ClearProject()
	return _u
}

// ClearLibrary clears the "library" edge to the Library entity.
func (_u *ProjectDependencyUpdateOne) ClearLibrary() *ProjectDependencyUpdateOne {
	_u.mutation.ClearLibrary()
	return _u
}

// Where appends a list predicates to the ProjectDependencyUpdate builder.
func (_u *ProjectDependencyUpdateOne) Where(ps ...predicate.ProjectDependency) *ProjectDependencyUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProjectDependencyUpdateOne) Select(field string, fields ...string) *ProjectDependencyUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProjectDependency entity.
func (_u *ProjectDependencyUpdateOne) Save(ctx context.Context) (*ProjectDependency, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProjectDependencyUpdateOne) SaveX(ctx context.Context) *ProjectDependency {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProjectDependencyUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProjectDependencyUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProjectDependencyUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := projectdependency.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProjectDependencyUpdateOne) check() error {
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ProjectDependency.project"`)
	}
	if _u.mutation.LibraryCleared() && len(_u.mutation.LibraryIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ProjectDependency.library"`)
	}
	return nil
}

func (_u *ProjectDependencyUpdateOne) sqlSave(ctx context.Context) (_node *ProjectDependency, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(projectdependency.Table, projectdependency.Columns, sqlgraph.NewFieldSpec(projectdependency.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProjectDependency.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, projectdependency.FieldID)
		for _, f := range fields {
			if !projectdependency.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != projectdependency.FieldID {
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
	if value, ok := _u.mutation.ConstraintExpr(); ok {
		_spec.SetField(projectdependency.FieldConstraintExpr, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResolvedVersion(); ok {
		_spec.SetField(projectdependency.FieldResolvedVersion, field.TypeString, value)
	}
	if _u.mutation.ResolvedVersionCleared() {
		_spec.ClearField(projectdependency.FieldResolvedVersion, field.TypeString)
	}
	if value, ok := _u.mutation.ConstraintSource(); ok {
		_spec.SetField(projectdependency.FieldConstraintSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.NotifyEnabled(); ok {
		_spec.SetField(projectdependency.FieldNotifyEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(projectdependency.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProjectCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProjectIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LibraryCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LibraryIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ProjectDependency{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{projectdependency.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
