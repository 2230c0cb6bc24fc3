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
	"github.com/vulnsentinel/vulnsentinel/ent/clientvuln"
	"github.com/vulnsentinel/vulnsentinel/ent/project"
	"github.com/vulnsentinel/vulnsentinel/ent/projectdependency"
)

// ProjectCreate is the builder for creating a Project entity.
type ProjectCreate struct {
	config
	mutation *ProjectMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetName sets the "name" field.
func (_c *ProjectCreate) SetName(v string) *ProjectCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetOrganization sets the "organization" field.
func (_c *ProjectCreate) SetOrganization(v string) *ProjectCreate {
	_c.mutation.SetOrganization(v)
	return _c
}

// SetNillableOrganization sets the "organization" field if the given value is not nil.
func (_c *ProjectCreate) SetNillableOrganization(v *string) *ProjectCreate {
	if v != nil {
		_c.SetOrganization(*v)
	}
	return _c
}

// SetRepoURL sets the "repo_url" field.
func (_c *ProjectCreate) SetRepoURL(v string) *ProjectCreate {
	_c.mutation.SetRepoURL(v)
	return _c
}

// SetDefaultBranch sets the "default_branch" field.
func (_c *ProjectCreate) SetDefaultBranch(v string) *ProjectCreate {
	_c.mutation.SetDefaultBranch(v)
	return _c
}

// SetNillableDefaultBranch sets the "default_branch" field if the given value is not nil.
func (_c *ProjectCreate) SetNillableDefaultBranch(v *string) *ProjectCreate {
	if v != nil {
		_c.SetDefaultBranch(*v)
	}
	return _c
}

// SetCurrentVersion sets the "current_version" field.
func (_c *ProjectCreate) SetCurrentVersion(v string) *ProjectCreate {
	_c.mutation.SetCurrentVersion(v)
	return _c
}

// SetNillableCurrentVersion sets the "current_version" field if the given value is not nil.
func (_c *ProjectCreate) SetNillableCurrentVersion(v *string) *ProjectCreate {
	if v != nil {
		_c.SetCurrentVersion(*v)
	}
	return _c
}

// SetPinnedRef sets the "pinned_ref" field.
func (_c *ProjectCreate) SetPinnedRef(v string) *ProjectCreate {
	_c.mutation.SetPinnedRef(v)
	return _c
}

// SetNillablePinnedRef sets the "pinned_ref" field if the given value is not nil.
func (_c *ProjectCreate) SetNillablePinnedRef(v *string) *ProjectCreate {
	if v != nil {
		_c.SetPinnedRef(*v)
	}
	return _c
}

// SetAutoSyncDeps sets the "auto_sync_deps" field.
func (_c *ProjectCreate) SetAutoSyncDeps(v bool) *ProjectCreate {
	_c.mutation.SetAutoSyncDeps(v)
	return _c
}

// SetNillableAutoSyncDeps sets the "auto_sync_deps" field if the given value is not nil.
func (_c *ProjectCreate) SetNillableAutoSyncDeps(v *bool) *ProjectCreate {
	if v != nil {
		_c.SetAutoSyncDeps(*v)
	}
	return _c
}

// SetScanStatus sets the "scan_status" field.
func (_c *ProjectCreate) SetScanStatus(v string) *ProjectCreate {
	_c.mutation.SetScanStatus(v)
	return _c
}

// SetNillableScanStatus sets the "scan_status" field if the given value is not nil.
func (_c *ProjectCreate) SetNillableScanStatus(v *string) *ProjectCreate {
	if v != nil {
		_c.SetScanStatus(*v)
	}
	return _c
}

// SetScanError sets the "scan_error" field.
func (_c *ProjectCreate) SetScanError(v string) *ProjectCreate {
	_c.mutation.SetScanError(v)
	return _c
}

// SetNillableScanError sets the "scan_error" field if the given value is not nil.
func (_c *ProjectCreate) SetNillableScanError(v *string) *ProjectCreate {
	if v != nil {
		_c.SetScanError(*v)
	}
	return _c
}

// SetLastScannedAt sets the "last_scanned_at" field.
func (_c *ProjectCreate) SetLastScannedAt(v time.Time) *ProjectCreate {
	_c.mutation.SetLastScannedAt(v)
	return _c
}

// SetNillableLastScannedAt sets the "last_scanned_at" field if the given value is not nil.
func (_c *ProjectCreate) SetNillableLastScannedAt(v *time.Time) *ProjectCreate {
	if v != nil {
		_c.SetLastScannedAt(*v)
	}
	return _c
}

// SetContactEmail sets the "contact_email" field.
func (_c *ProjectCreate) SetContactEmail(v string) *ProjectCreate {
	_c.mutation.SetContactEmail(v)
	return _c
}

// SetNillableContactEmail sets the "contact_email" field if the given value is not nil.
func (_c *ProjectCreate) SetNillableContactEmail(v *string) *ProjectCreate {
	if v != nil {
		_c.SetContactEmail(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ProjectCreate) SetCreatedAt(v time.Time) *ProjectCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ProjectCreate) SetNillableCreatedAt(v *time.Time) *ProjectCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ProjectCreate) SetUpdatedAt(v time.Time) *ProjectCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ProjectCreate) SetNillableUpdatedAt(v *time.Time) *ProjectCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ProjectCreate) SetID(v string) *ProjectCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ProjectCreate) SetNillableID(v *string) *ProjectCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddDependencyIDs adds the "dependencies" edge to the ProjectDependency entity by IDs.
func (_c *ProjectCreate) AddDependencyIDs(ids ...string) *ProjectCreate {
	_c.mutation.AddDependencyIDs(ids...)
	return _c
}

// AddDependencies adds the "dependencies" edges to the ProjectDependency entity.
func (_c *ProjectCreate) AddDependencies(v ...*ProjectDependency) *ProjectCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDependencyIDs(ids...)
}

// AddClientVulnIDs adds the "client_vulns" edge to the ClientVuln entity by IDs.
func (_c *ProjectCreate) AddClientVulnIDs(ids ...string) *ProjectCreate {
	_c.mutation.AddClientVulnIDs(ids...)
	return _c
}

// AddClientVulns adds the "client_vulns" edges to the ClientVuln entity.
func (_c *ProjectCreate) AddClientVulns(v ...*ClientVuln) *ProjectCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddClientVulnIDs(ids...)
}

// Mutation returns the ProjectMutation object of the builder.
func (_c *ProjectCreate) Mutation() *ProjectMutation {
	return _c.mutation
}

// Save creates the Project in the database.
func (_c *ProjectCreate) Save(ctx context.Context) (*Project, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProjectCreate) SaveX(ctx context.Context) *Project {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProjectCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProjectCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProjectCreate) defaults() {
	if _, ok := _c.mutation.DefaultBranch(); !ok {
		v := project.DefaultDefaultBranch
		_c.mutation.SetDefaultBranch(v)
	}
	if _, ok := _c.mutation.AutoSyncDeps(); !ok {
		v := project.DefaultAutoSyncDeps
		_c.mutation.SetAutoSyncDeps(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := project.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := project.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := project.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProjectCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Project.name"`)}
	}
	if _, ok := _c.mutation.RepoURL(); !ok {
		return &ValidationError{Name: "repo_url", err: errors.New(`ent: missing required field "Project.repo_url"`)}
	}
	if _, ok := _c.mutation.DefaultBranch(); !ok {
		return &ValidationError{Name: "default_branch", err: errors.New(`ent: missing required field "Project.default_branch"`)}
	}
	if _, ok := _c.mutation.AutoSyncDeps(); !ok {
		return &ValidationError{Name: "auto_sync_deps", err: errors.New(`ent: missing required field "Project.auto_sync_deps"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Project.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Project.updated_at"`)}
	}
	return nil
}

func (_c *ProjectCreate) sqlSave(ctx context.Context) (*Project, error) {
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
			return nil, fmt.Errorf("unexpected Project.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ProjectCreate) createSpec() (*Project, *sqlgraph.CreateSpec) {
	var (
		_node = &Project{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(project.Table, sqlgraph.NewFieldSpec(project.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(project.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Organization(); ok {
		_spec.SetField(project.FieldOrganization, field.TypeString, value)
		_node.Organization = value
	}
	if value, ok := _c.mutation.RepoURL(); ok {
		_spec.SetField(project.FieldRepoURL, field.TypeString, value)
		_node.RepoURL = value
	}
	if value, ok := _c.mutation.DefaultBranch(); ok {
		_spec.SetField(project.FieldDefaultBranch, field.TypeString, value)
		_node.DefaultBranch = value
	}
	if value, ok := _c.mutation.CurrentVersion(); ok {
		_spec.SetField(project.FieldCurrentVersion, field.TypeString, value)
		_node.CurrentVersion = &value
	}
	if value, ok := _c.mutation.PinnedRef(); ok {
		_spec.SetField(project.FieldPinnedRef, field.TypeString, value)
		_node.PinnedRef = &value
	}
	if value, ok := _c.mutation.AutoSyncDeps(); ok {
		_spec.SetField(project.FieldAutoSyncDeps, field.TypeBool, value)
		_node.AutoSyncDeps = value
	}
	if value, ok := _c.mutation.ScanStatus(); ok {
		_spec.SetField(project.FieldScanStatus, field.TypeString, value)
		_node.ScanStatus = value
	}
	if value, ok := _c.mutation.ScanError(); ok {
		_spec.SetField(project.FieldScanError, field.TypeString, value)
		_node.ScanError = &value
	}
	if value, ok := _c.mutation.LastScannedAt(); ok {
		_spec.SetField(project.FieldLastScannedAt, field.TypeTime, value)
		_node.LastScannedAt = &value
	}
	if value, ok := _c.mutation.ContactEmail(); ok {
		_spec.SetField(project.FieldContactEmail, field.TypeString, value)
		_node.ContactEmail = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(project.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(project.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.DependenciesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.DependenciesTable,
			Columns: []string{project.DependenciesColumn},
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
	if nodes := _c.mutation.ClientVulnsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.ClientVulnsTable,
			Columns: []string{project.ClientVulnsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(clientvuln.FieldID, field.TypeString),
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
//	client.Project.Create().
//		SetName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ProjectUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *ProjectCreate) OnConflict(opts ...sql.ConflictOption) *ProjectUpsertOne {
	_c.conflict = opts
	return &ProjectUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Project.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ProjectCreate) OnConflictColumns(columns ...string) *ProjectUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ProjectUpsertOne{
		create: _c,
	}
}

type (
	// ProjectUpsertOne is the builder for "upsert"-ing
	//  one Project node.
	ProjectUpsertOne struct {
		create *ProjectCreate
	}

	// ProjectUpsert is the "OnConflict" setter.
	ProjectUpsert struct {
		*sql.UpdateSet
	}
)

// SetName sets the "name" field.
func (u *ProjectUpsert) SetName(v string) *ProjectUpsert {
	u.Set(project.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ProjectUpsert) UpdateName() *ProjectUpsert {
	u.SetExcluded(project.FieldName)
	return u
}

// SetOrganization sets the "organization" field.
func (u *ProjectUpsert) SetOrganization(v string) *ProjectUpsert {
	u.Set(project.FieldOrganization, v)
	return u
}

// UpdateOrganization sets the "organization" field to the value that was provided on create.
func (u *ProjectUpsert) UpdateOrganization() *ProjectUpsert {
	u.SetExcluded(project.FieldOrganization)
	return u
}

// ClearOrganization clears the value of the "organization" field.
func (u *ProjectUpsert) ClearOrganization() *ProjectUpsert {
	u.SetNull(project.FieldOrganization)
	return u
}

// SetRepoURL sets the "repo_url" field.
func (u *ProjectUpsert) SetRepoURL(v string) *ProjectUpsert {
	u.Set(project.FieldRepoURL, v)
	return u
}

// UpdateRepoURL sets the "repo_url" field to the value that was provided on create.
func (u *ProjectUpsert) UpdateRepoURL() *ProjectUpsert {
	u.SetExcluded(project.FieldRepoURL)
	return u
}

// SetDefaultBranch sets the "default_branch" field.
func (u *ProjectUpsert) SetDefaultBranch(v string) *ProjectUpsert {
	u.Set(project.FieldDefaultBranch, v)
	return u
}

// UpdateDefaultBranch sets the "default_branch" field to the value that was provided on create.
func (u *ProjectUpsert) UpdateDefaultBranch() *ProjectUpsert {
	u.SetExcluded(project.FieldDefaultBranch)
	return u
}

// SetCurrentVersion sets the "current_version" field.
func (u *ProjectUpsert) SetCurrentVersion(v string) *ProjectUpsert {
	u.Set(project.FieldCurrentVersion, v)
	return u
}

// UpdateCurrentVersion sets the "current_version" field to the value that was provided on create.
func (u *ProjectUpsert) UpdateCurrentVersion() *ProjectUpsert {
	u.SetExcluded(project.FieldCurrentVersion)
	return u
}

// ClearCurrentVersion clears the value of the "current_version" field.
func (u *ProjectUpsert) ClearCurrentVersion() *ProjectUpsert {
	u.SetNull(project.FieldCurrentVersion)
	return u
}

// SetPinnedRef sets the "pinned_ref" field.
func (u *ProjectUpsert) SetPinnedRef(v string) *ProjectUpsert {
	u.Set(project.FieldPinnedRef, v)
	return u
}

// UpdatePinnedRef sets the "pinned_ref" field to the value that was provided on create.
func (u *ProjectUpsert) UpdatePinnedRef() *ProjectUpsert {
	u.SetExcluded(project.FieldPinnedRef)
	return u
}

// ClearPinnedRef clears the value of the "pinned_ref" field.
func (u *ProjectUpsert) ClearPinnedRef() *ProjectUpsert {
	u.SetNull(project.FieldPinnedRef)
	return u
}

// SetAutoSyncDeps sets the "auto_sync_deps" field.
func (u *ProjectUpsert) SetAutoSyncDeps(v bool) *ProjectUpsert {
	u.Set(project.FieldAutoSyncDeps, v)
	return u
}

// UpdateAutoSyncDeps sets the "auto_sync_deps" field to the value that was provided on create.
func (u *ProjectUpsert) UpdateAutoSyncDeps() *ProjectUpsert {
	u.SetExcluded(project.FieldAutoSyncDeps)
	return u
}

// SetScanStatus sets the "scan_status" field.
func (u *ProjectUpsert) SetScanStatus(v string) *ProjectUpsert {
	u.Set(project.FieldScanStatus, v)
	return u
}

// UpdateScanStatus sets the "scan_status" field to the value that was provided on create.
func (u *ProjectUpsert) UpdateScanStatus() *ProjectUpsert {
	u.SetExcluded(project.FieldScanStatus)
	return u
}

// ClearScanStatus clears the value of the "scan_status" field.
func (u *ProjectUpsert) ClearScanStatus() *ProjectUpsert {
	u.SetNull(project.FieldScanStatus)
	return u
}

// SetScanError sets the "scan_error" field.
func (u *ProjectUpsert) SetScanError(v string) *ProjectUpsert {
	u.Set(project.FieldScanError, v)
	return u
}

// UpdateScanError sets the "scan_error" field to the value that was provided on create.
func (u *ProjectUpsert) UpdateScanError() *ProjectUpsert {
	u.SetExcluded(project.FieldScanError)
	return u
}

// ClearScanError clears the value of the "scan_error" field.
func (u *ProjectUpsert) ClearScanError() *ProjectUpsert {
	u.SetNull(project.FieldScanError)
	return u
}

// SetLastScannedAt sets the "last_scanned_at" field.
func (u *ProjectUpsert) SetLastScannedAt(v time.Time) *ProjectUpsert {
	u.Set(project.FieldLastScannedAt, v)
	return u
}

// UpdateLastScannedAt sets the "last_scanned_at" field to the value that was provided on create.
func (u *ProjectUpsert) UpdateLastScannedAt() *ProjectUpsert {
	u.SetExcluded(project.FieldLastScannedAt)
	return u
}

// ClearLastScannedAt clears the value of the "last_scanned_at" field.
func (u *ProjectUpsert) ClearLastScannedAt() *ProjectUpsert {
	u.SetNull(project.FieldLastScannedAt)
	return u
}

// SetContactEmail sets the "contact_email" field.
func (u *ProjectUpsert) SetContactEmail(v string) *ProjectUpsert {
	u.Set(project.FieldContactEmail, v)
	return u
}

// UpdateContactEmail sets the "contact_email" field to the value that was provided on create.
func (u *ProjectUpsert) UpdateContactEmail() *ProjectUpsert {
	u.SetExcluded(project.FieldContactEmail)
	return u
}

// ClearContactEmail clears the value of the "contact_email" field.
func (u *ProjectUpsert) ClearContactEmail() *ProjectUpsert {
	u.SetNull(project.FieldContactEmail)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ProjectUpsert) SetUpdatedAt(v time.Time) *ProjectUpsert {
	u.Set(project.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ProjectUpsert) UpdateUpdatedAt() *ProjectUpsert {
	u.SetExcluded(project.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Project.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(project.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ProjectUpsertOne) UpdateNewValues() *ProjectUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(project.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(project.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Project.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ProjectUpsertOne) Ignore() *ProjectUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ProjectUpsertOne) DoNothing() *ProjectUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ProjectCreate.OnConflict
// documentation for more info.
func (u *ProjectUpsertOne) Update(set func(*ProjectUpsert)) *ProjectUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ProjectUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *ProjectUpsertOne) SetName(v string) *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ProjectUpsertOne) UpdateName() *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateName()
	})
}

// SetOrganization sets the "organization" field.
func (u *ProjectUpsertOne) SetOrganization(v string) *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.SetOrganization(v)
	})
}

// UpdateOrganization sets the "organization" field to the value that was provided on create.
func (u *ProjectUpsertOne) UpdateOrganization() *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateOrganization()
	})
}

// ClearOrganization clears the value of the "organization" field.
func (u *ProjectUpsertOne) ClearOrganization() *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.ClearOrganization()
	})
}

// SetRepoURL sets the "repo_url" field.
func (u *ProjectUpsertOne) SetRepoURL(v string) *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.SetRepoURL(v)
	})
}

// UpdateRepoURL sets the "repo_url" field to the value that was provided on create.
func (u *ProjectUpsertOne) UpdateRepoURL() *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateRepoURL()
	})
}

// SetDefaultBranch sets the "default_branch" field.
func (u *ProjectUpsertOne) SetDefaultBranch(v string) *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.SetDefaultBranch(v)
	})
}

// UpdateDefaultBranch sets the "default_branch" field to the value that was provided on create.
func (u *ProjectUpsertOne) UpdateDefaultBranch() *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateDefaultBranch()
	})
}

// SetCurrentVersion sets the "current_version" field.
func (u *ProjectUpsertOne) SetCurrentVersion(v string) *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.SetCurrentVersion(v)
	})
}

// UpdateCurrentVersion sets the "current_version" field to the value that was provided on create.
func (u *ProjectUpsertOne) UpdateCurrentVersion() *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateCurrentVersion()
	})
}

// ClearCurrentVersion clears the value of the "current_version" field.
func (u *ProjectUpsertOne) ClearCurrentVersion() *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.ClearCurrentVersion()
	})
}

// SetPinnedRef sets the "pinned_ref" field.
func (u *ProjectUpsertOne) SetPinnedRef(v string) *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.SetPinnedRef(v)
	})
}

// UpdatePinnedRef sets the "pinned_ref" field to the value that was provided on create.
func (u *ProjectUpsertOne) UpdatePinnedRef() *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdatePinnedRef()
	})
}

// ClearPinnedRef clears the value of the "pinned_ref" field.
func (u *ProjectUpsertOne) ClearPinnedRef() *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.ClearPinnedRef()
	})
}

// SetAutoSyncDeps sets the "auto_sync_deps" field.
func (u *ProjectUpsertOne) SetAutoSyncDeps(v bool) *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.SetAutoSyncDeps(v)
	})
}

// UpdateAutoSyncDeps sets the "auto_sync_deps" field to the value that was provided on create.
func (u *ProjectUpsertOne) UpdateAutoSyncDeps() *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateAutoSyncDeps()
	})
}

// SetScanStatus sets the "scan_status" field.
func (u *ProjectUpsertOne) SetScanStatus(v string) *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.SetScanStatus(v)
	})
}

// UpdateScanStatus sets the "scan_status" field to the value that was provided on create.
func (u *ProjectUpsertOne) UpdateScanStatus() *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateScanStatus()
	})
}

// ClearScanStatus clears the value of the "scan_status" field.
func (u *ProjectUpsertOne) ClearScanStatus() *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.ClearScanStatus()
	})
}

// SetScanError sets the "scan_error" field.
func (u *ProjectUpsertOne) SetScanError(v string) *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.SetScanError(v)
	})
}

// UpdateScanError sets the "scan_error" field to the value that was provided on create.
func (u *ProjectUpsertOne) UpdateScanError() *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateScanError()
	})
}

// ClearScanError clears the value of the "scan_error" field.
func (u *ProjectUpsertOne) ClearScanError() *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.ClearScanError()
	})
}

// SetLastScannedAt sets the "last_scanned_at" field.
func (u *ProjectUpsertOne) SetLastScannedAt(v time.Time) *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.SetLastScannedAt(v)
	})
}

// UpdateLastScannedAt sets the "last_scanned_at" field to the value that was provided on create.
func (u *ProjectUpsertOne) UpdateLastScannedAt() *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateLastScannedAt()
	})
}

// ClearLastScannedAt clears the value of the "last_scanned_at" field.
func (u *ProjectUpsertOne) ClearLastScannedAt() *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.ClearLastScannedAt()
	})
}

// SetContactEmail sets the "contact_email" field.
func (u *ProjectUpsertOne) SetContactEmail(v string) *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.SetContactEmail(v)
	})
}

// UpdateContactEmail sets the "contact_email" field to the value that was provided on create.
func (u *ProjectUpsertOne) UpdateContactEmail() *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateContactEmail()
	})
}

// ClearContactEmail clears the value of the "contact_email" field.
func (u *ProjectUpsertOne) ClearContactEmail() *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.ClearContactEmail()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ProjectUpsertOne) SetUpdatedAt(v time.Time) *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ProjectUpsertOne) UpdateUpdatedAt() *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ProjectUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ProjectCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ProjectUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ProjectUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ProjectUpsertOne.ID is not supported by MySQL driver. Use ProjectUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ProjectUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ProjectCreateBulk is the builder for creating many Project entities in bulk.
type ProjectCreateBulk struct {
	config
	err      error
	builders []*ProjectCreate
	conflict []sql.ConflictOption
}

// Save creates the Project entities in the database.
func (_c *ProjectCreateBulk) Save(ctx context.Context) ([]*Project, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Project, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProjectMutation)
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
func (_c *ProjectCreateBulk) SaveX(ctx context.Context) []*Project {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProjectCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProjectCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Project.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ProjectUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *ProjectCreateBulk) OnConflict(opts ...sql.ConflictOption) *ProjectUpsertBulk {
	_c.conflict = opts
	return &ProjectUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Project.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ProjectCreateBulk) OnConflictColumns(columns ...string) *ProjectUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ProjectUpsertBulk{
		create: _c,
	}
}

// ProjectUpsertBulk is the builder for "upsert"-ing
// a bulk of Project nodes.
type ProjectUpsertBulk struct {
	create *ProjectCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Project.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(project.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ProjectUpsertBulk) UpdateNewValues() *ProjectUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(project.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(project.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Project.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ProjectUpsertBulk) Ignore() *ProjectUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ProjectUpsertBulk) DoNothing() *ProjectUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ProjectCreateBulk.OnConflict
// documentation for more info.
func (u *ProjectUpsertBulk) Update(set func(*ProjectUpsert)) *ProjectUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ProjectUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *ProjectUpsertBulk) SetName(v string) *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ProjectUpsertBulk) UpdateName() *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateName()
	})
}

// SetOrganization sets the "organization" field.
func (u *ProjectUpsertBulk) SetOrganization(v string) *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.SetOrganization(v)
	})
}

// UpdateOrganization sets the "organization" field to the value that was provided on create.
func (u *ProjectUpsertBulk) UpdateOrganization() *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateOrganization()
	})
}

// ClearOrganization clears the value of the "organization" field.
func (u *ProjectUpsertBulk) ClearOrganization() *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.ClearOrganization()
	})
}

// SetRepoURL sets the "repo_url" field.
func (u *ProjectUpsertBulk) SetRepoURL(v string) *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.SetRepoURL(v)
	})
}

// UpdateRepoURL sets the "repo_url" field to the value that was provided on create.
func (u *ProjectUpsertBulk) UpdateRepoURL() *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateRepoURL()
	})
}

// SetDefaultBranch sets the "default_branch" field.
func (u *ProjectUpsertBulk) SetDefaultBranch(v string) *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.SetDefaultBranch(v)
	})
}

// UpdateDefaultBranch sets the "default_branch" field to the value that was provided on create.
func (u *ProjectUpsertBulk) UpdateDefaultBranch() *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateDefaultBranch()
	})
}

// SetCurrentVersion sets the "current_version" field.
func (u *ProjectUpsertBulk) SetCurrentVersion(v string) *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.SetCurrentVersion(v)
	})
}

// UpdateCurrentVersion sets the "current_version" field to the value that was provided on create.
func (u *ProjectUpsertBulk) UpdateCurrentVersion() *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateCurrentVersion()
	})
}

// ClearCurrentVersion clears the value of the "current_version" field.
func (u *ProjectUpsertBulk) ClearCurrentVersion() *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.ClearCurrentVersion()
	})
}

// SetPinnedRef sets the "pinned_ref" field.
func (u *ProjectUpsertBulk) SetPinnedRef(v string) *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.SetPinnedRef(v)
	})
}

// UpdatePinnedRef sets the "pinned_ref" field to the value that was provided on create.
func (u *ProjectUpsertBulk) UpdatePinnedRef() *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdatePinnedRef()
	})
}

// ClearPinnedRef clears the value of the "pinned_ref" field.
func (u *ProjectUpsertBulk) ClearPinnedRef() *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.ClearPinnedRef()
	})
}

// SetAutoSyncDeps sets the "auto_sync_deps" field.
func (u *ProjectUpsertBulk) SetAutoSyncDeps(v bool) *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.SetAutoSyncDeps(v)
	})
}

// UpdateAutoSyncDeps sets the "auto_sync_deps" field to the value that was provided on create.
func (u *ProjectUpsertBulk) UpdateAutoSyncDeps() *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateAutoSyncDeps()
	})
}

// SetScanStatus sets the "scan_status" field.
func (u *ProjectUpsertBulk) SetScanStatus(v string) *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.SetScanStatus(v)
	})
}

// UpdateScanStatus sets the "scan_status" field to the value that was provided on create.
func (u *ProjectUpsertBulk) UpdateScanStatus() *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateScanStatus()
	})
}

// ClearScanStatus clears the value of the "scan_status" field.
func (u *ProjectUpsertBulk) ClearScanStatus() *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.ClearScanStatus()
	})
}

// SetScanError sets the "scan_error" field.
func (u *ProjectUpsertBulk) SetScanError(v string) *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.SetScanError(v)
	})
}

// UpdateScanError sets the "scan_error" field to the value that was provided on create.
func (u *ProjectUpsertBulk) UpdateScanError() *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateScanError()
	})
}

// ClearScanError clears the value of the "scan_error" field.
func (u *ProjectUpsertBulk) ClearScanError() *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.ClearScanError()
	})
}

// SetLastScannedAt sets the "last_scanned_at" field.
func (u *ProjectUpsertBulk) SetLastScannedAt(v time.Time) *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.SetLastScannedAt(v)
	})
}

// UpdateLastScannedAt sets the "last_scanned_at" field to the value that was provided on create.
func (u *ProjectUpsertBulk) UpdateLastScannedAt() *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateLastScannedAt()
	})
}

// ClearLastScannedAt clears the value of the "last_scanned_at" field.
func (u *ProjectUpsertBulk) ClearLastScannedAt() *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.ClearLastScannedAt()
	})
}

// SetContactEmail sets the "contact_email" field.
func (u *ProjectUpsertBulk) SetContactEmail(v string) *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.SetContactEmail(v)
	})
}

// UpdateContactEmail sets the "contact_email" field to the value that was provided on create.
func (u *ProjectUpsertBulk) UpdateContactEmail() *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateContactEmail()
	})
}

// ClearContactEmail clears the value of the "contact_email" field.
func (u *ProjectUpsertBulk) ClearContactEmail() *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.ClearContactEmail()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ProjectUpsertBulk) SetUpdatedAt(v time.Time) *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ProjectUpsertBulk) UpdateUpdatedAt() *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ProjectUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ProjectCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ProjectCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ProjectUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
