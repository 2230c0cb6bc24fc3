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
	"github.com/vulnsentinel/vulnsentinel/ent/clientvuln"
	"github.com/vulnsentinel/vulnsentinel/ent/predicate"
	"github.com/vulnsentinel/vulnsentinel/ent/project"
	"github.com/vulnsentinel/vulnsentinel/ent/projectdependency"
)

// ProjectUpdate is the builder for updating Project entities.
type ProjectUpdate struct {
	config
	hooks    []Hook
	mutation *ProjectMutation
}

// Where appends a list predicates to the ProjectUpdate builder.
func (_u *ProjectUpdate) Where(ps ...predicate.Project) *ProjectUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *ProjectUpdate) SetName(v string) *ProjectUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableName(v *string) *ProjectUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetOrganization sets the "organization" field.
func (_u *ProjectUpdate) SetOrganization(v string) *ProjectUpdate {
	_u.mutation.SetOrganization(v)
	return _u
}

// SetNillableOrganization sets the "organization" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableOrganization(v *string) *ProjectUpdate {
	if v != nil {
		_u.SetOrganization(*v)
	}
	return _u
}

// ClearOrganization clears the value of the "organization" field.
func (_u *ProjectUpdate) ClearOrganization() *ProjectUpdate {
	_u.mutation.ClearOrganization()
	return _u
}

// SetRepoURL sets the "repo_url" field.
func (_u *ProjectUpdate) SetRepoURL(v string) *ProjectUpdate {
	_u.mutation.SetRepoURL(v)
	return _u
}

// SetNillableRepoURL sets the "repo_url" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableRepoURL(v *string) *ProjectUpdate {
	if v != nil {
		_u.SetRepoURL(*v)
	}
	return _u
}

// SetDefaultBranch sets the "default_branch" field.
func (_u *ProjectUpdate) SetDefaultBranch(v string) *ProjectUpdate {
	_u.mutation.SetDefaultBranch(v)
	return _u
}

// SetNillableDefaultBranch sets the "default_branch" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableDefaultBranch(v *string) *ProjectUpdate {
	if v != nil {
		_u.SetDefaultBranch(*v)
	}
	return _u
}

// SetCurrentVersion sets the "current_version" field.
func (_u *ProjectUpdate) SetCurrentVersion(v string) *ProjectUpdate {
	_u.mutation.SetCurrentVersion(v)
	return _u
}

// SetNillableCurrentVersion sets the "current_version" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableCurrentVersion(v *string) *ProjectUpdate {
	if v != nil {
		_u.SetCurrentVersion(*v)
	}
	return _u
}

// ClearCurrentVersion clears the value of the "current_version" field.
func (_u *ProjectUpdate) ClearCurrentVersion() *ProjectUpdate {
	_u.mutation.ClearCurrentVersion()
	return _u
}

// SetPinnedRef sets the "pinned_ref" field.
func (_u *ProjectUpdate) SetPinnedRef(v string) *ProjectUpdate {
	_u.mutation.SetPinnedRef(v)
	return _u
}

// SetNillablePinnedRef sets the "pinned_ref" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillablePinnedRef(v *string) *ProjectUpdate {
	if v != nil {
		_u.SetPinnedRef(*v)
	}
	return _u
}

// ClearPinnedRef clears the value of the "pinned_ref" field.
func (_u *ProjectUpdate) ClearPinnedRef() *ProjectUpdate {
	_u.mutation.ClearPinnedRef()
	return _u
}

// SetAutoSyncDeps sets the "auto_sync_deps" field.
func (_u *ProjectUpdate) SetAutoSyncDeps(v bool) *ProjectUpdate {
	_u.mutation.SetAutoSyncDeps(v)
	return _u
}

// SetNillableAutoSyncDeps sets the "auto_sync_deps" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableAutoSyncDeps(v *bool) *ProjectUpdate {
	if v != nil {
		_u.SetAutoSyncDeps(*v)
	}
	return _u
}

// SetScanStatus sets the "scan_status" field.
func (_u *ProjectUpdate) SetScanStatus(v string) *ProjectUpdate {
	_u.mutation.SetScanStatus(v)
	return _u
}

// SetNillableScanStatus sets the "scan_status" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableScanStatus(v *string) *ProjectUpdate {
	if v != nil {
		_u.SetScanStatus(*v)
	}
	return _u
}

// ClearScanStatus clears the value of the "scan_status" field.
func (_u *ProjectUpdate) ClearScanStatus() *ProjectUpdate {
	_u.mutation.ClearScanStatus()
	return _u
}

// SetScanError sets the "scan_error" field.
func (_u *ProjectUpdate) SetScanError(v string) *ProjectUpdate {
	_u.mutation.SetScanError(v)
	return _u
}

// SetNillableScanError sets the "scan_error" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableScanError(v *string) *ProjectUpdate {
	if v != nil {
		_u.SetScanError(*v)
	}
	return _u
}

// ClearScanError clears the value of the "scan_error" field.
func (_u *ProjectUpdate) ClearScanError() *ProjectUpdate {
	_u.mutation.ClearScanError()
	return _u
}

// SetLastScannedAt sets the "last_scanned_at" field.
func (_u *ProjectUpdate) SetLastScannedAt(v time.Time) *ProjectUpdate {
	_u.mutation.SetLastScannedAt(v)
	return _u
}

// SetNillableLastScannedAt sets the "last_scanned_at" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableLastScannedAt(v *time.Time) *ProjectUpdate {
	if v != nil {
		_u.SetLastScannedAt(*v)
	}
	return _u
}

// ClearLastScannedAt clears the value of the "last_scanned_at" field.
func (_u *ProjectUpdate) ClearLastScannedAt() *ProjectUpdate {
	_u.mutation.ClearLastScannedAt()
	return _u
}

// SetContactEmail sets the "contact_email" field.
func (_u *ProjectUpdate) SetContactEmail(v string) *ProjectUpdate {
	_u.mutation.SetContactEmail(v)
	return _u
}

// SetNillableContactEmail sets the "contact_email" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableContactEmail(v *string) *ProjectUpdate {
	if v != nil {
		_u.SetContactEmail(*v)
	}
	return _u
}

// ClearContactEmail clears the value of the "contact_email" field.
func (_u *ProjectUpdate) ClearContactEmail() *ProjectUpdate {
	_u.mutation.ClearContactEmail()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProjectUpdate) SetUpdatedAt(v time.Time) *ProjectUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddDependencyIDs adds the "dependencies" edge to the ProjectDependency entity by IDs.
func (_u *ProjectUpdate) AddDependencyIDs(ids ...string) *ProjectUpdate {
	_u.mutation.AddDependencyIDs(ids...)
	return _u
}

// AddDependencies adds the "dependencies" edges to the ProjectDependency entity.
func (_u *ProjectUpdate) AddDependencies(v ...*ProjectDependency) *ProjectUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDependencyIDs(ids...)
}

// AddClientVulnIDs adds the "client_vulns" edge to the ClientVuln entity by IDs.
func (_u *ProjectUpdate) AddClientVulnIDs(ids ...string) *ProjectUpdate {
	_u.mutation.AddClientVulnIDs(ids...)
	return _u
}

// AddClientVulns adds the "client_vulns" edges to the ClientVuln entity.
func (_u *ProjectUpdate) AddClientVulns(v ...*ClientVuln) *ProjectUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddClientVulnIDs(ids...)
}

// Mutation returns the ProjectMutation object of the builder.
func (_u *ProjectUpdate) Mutation() *ProjectMutation {
	return _u.mutation
}

// ClearDependencies clears all "dependencies" edges to the ProjectDependency entity.
func (_u *ProjectUpdate) ClearDependencies() *ProjectUpdate {
	_u.mutation.ClearDependencies()
	return _u
}

// RemoveDependencyIDs removes the "dependencies" edge to ProjectDependency entities by IDs.
func (_u *ProjectUpdate) RemoveDependencyIDs(ids ...string) *ProjectUpdate {
	_u.mutation.RemoveDependencyIDs(ids...)
	return _u
}

// RemoveDependencies removes "dependencies" edges to ProjectDependency entities.
func (_u *ProjectUpdate) RemoveDependencies(v ...*ProjectDependency) *ProjectUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDependencyIDs(ids...)
}

// ClearClientVulns clears all "client_vulns" edges to the ClientVuln entity.
func (_u *ProjectUpdate) ClearClientVulns() *ProjectUpdate {
	_u.mutation.ClearClientVulns()
	return _u
}

// RemoveClientVulnIDs removes the "client_vulns" edge to ClientVuln entities by IDs.
func (_u *ProjectUpdate) RemoveClientVulnIDs(ids ...string) *ProjectUpdate {
	_u.mutation.RemoveClientVulnIDs(ids...)
	return _u
}

// RemoveClientVulns removes "client_vulns" edges to ClientVuln entities.
func (_u *ProjectUpdate) RemoveClientVulns(v ...*ClientVuln) *ProjectUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveClientVulnIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProjectUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProjectUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProjectUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProjectUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProjectUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := project.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ProjectUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(project.Table, project.Columns, sqlgraph.NewFieldSpec(project.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(project.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Organization(); ok {
		_spec.SetField(project.FieldOrganization, field.TypeString, value)
	}
	if _u.mutation.OrganizationCleared() {
		_spec.ClearField(project.FieldOrganization, field.TypeString)
	}
	if value, ok := _u.mutation.RepoURL(); ok {
		_spec.SetField(project.FieldRepoURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.DefaultBranch(); ok {
		_spec.SetField(project.FieldDefaultBranch, field.TypeString, value)
	}
	if value, ok := _u.mutation.CurrentVersion(); ok {
		_spec.SetField(project.FieldCurrentVersion, field.TypeString, value)
	}
	if _u.mutation.CurrentVersionCleared() {
		_spec.ClearField(project.FieldCurrentVersion, field.TypeString)
	}
	if value, ok := _u.mutation.PinnedRef(); ok {
		_spec.SetField(project.FieldPinnedRef, field.TypeString, value)
	}
	if _u.mutation.PinnedRefCleared() {
		_spec.ClearField(project.FieldPinnedRef, field.TypeString)
	}
	if value, ok := _u.mutation.AutoSyncDeps(); ok {
		_spec.SetField(project.FieldAutoSyncDeps, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ScanStatus(); ok {
		_spec.SetField(project.FieldScanStatus, field.TypeString, value)
	}
	if _u.mutation.ScanStatusCleared() {
		_spec.ClearField(project.FieldScanStatus, field.TypeString)
	}
	if value, ok := _u.mutation.ScanError(); ok {
		_spec.SetField(project.FieldScanError, field.TypeString, value)
	}
	if _u.mutation.ScanErrorCleared() {
		_spec.ClearField(project.FieldScanError, field.TypeString)
	}
	if value, ok := _u.mutation.LastScannedAt(); ok {
		_spec.SetField(project.FieldLastScannedAt, field.TypeTime, value)
	}
	if _u.mutation.LastScannedAtCleared() {
		_spec.ClearField(project.FieldLastScannedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ContactEmail(); ok {
		_spec.SetField(project.FieldContactEmail, field.TypeString, value)
	}
	if _u.mutation.ContactEmailCleared() {
		_spec.ClearField(project.FieldContactEmail, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(project.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.DependenciesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDependenciesIDs(); len(nodes) > 0 && !_u.mutation.DependenciesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DependenciesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ClientVulnsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedClientVulnsIDs(); len(nodes) > 0 && !_u.mutation.ClientVulnsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClientVulnsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{project.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProjectUpdateOne is the builder for updating a single Project entity.
type ProjectUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProjectMutation
}

// SetName sets the "name" field.
func (_u *ProjectUpdateOne) SetName(v string) *ProjectUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableName(v *string) *ProjectUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetOrganization sets the "organization" field.
func (_u *ProjectUpdateOne) SetOrganization(v string) *ProjectUpdateOne {
	_u.mutation.SetOrganization(v)
	return _u
}

// SetNillableOrganization sets the "organization" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableOrganization(v *string) *ProjectUpdateOne {
	if v != nil {
		_u.SetOrganization(*v)
	}
	return _u
}

// ClearOrganization clears the value of the "organization" field.
func (_u *ProjectUpdateOne) ClearOrganization() *ProjectUpdateOne {
	_u.mutation.ClearOrganization()
	return _u
}

// SetRepoURL sets the "repo_url" field.
func (_u *ProjectUpdateOne) SetRepoURL(v string) *ProjectUpdateOne {
	_u.mutation.SetRepoURL(v)
	return _u
}

// SetNillableRepoURL sets the "repo_url" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableRepoURL(v *string) *ProjectUpdateOne {
	if v != nil {
		_u.SetRepoURL(*v)
	}
	return _u
}

// SetDefaultBranch sets the "default_branch" field.
func (_u *ProjectUpdateOne) SetDefaultBranch(v string) *ProjectUpdateOne {
	_u.mutation.SetDefaultBranch(v)
	return _u
}

// SetNillableDefaultBranch sets the "default_branch" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableDefaultBranch(v *string) *ProjectUpdateOne {
	if v != nil {
		_u.SetDefaultBranch(*v)
	}
	return _u
}

// SetCurrentVersion sets the "current_version" field.
func (_u *ProjectUpdateOne) SetCurrentVersion(v string) *ProjectUpdateOne {
	_u.mutation.SetCurrentVersion(v)
	return _u
}

// SetNillableCurrentVersion sets the "current_version" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableCurrentVersion(v *string) *ProjectUpdateOne {
	if v != nil {
		_u.SetCurrentVersion(*v)
	}
	return _u
}

// ClearCurrentVersion clears the value of the "current_version" field.
func (_u *ProjectUpdateOne) ClearCurrentVersion() *ProjectUpdateOne {
	_u.mutation.ClearCurrentVersion()
	return _u
}

// SetPinnedRef sets the "pinned_ref" field.
func (_u *ProjectUpdateOne) SetPinnedRef(v string) *ProjectUpdateOne {
	_u.mutation.SetPinnedRef(v)
	return _u
}

// SetNillablePinnedRef sets the "pinned_ref" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillablePinnedRef(v *string) *ProjectUpdateOne {
	if v != nil {
		_u.SetPinnedRef(*v)
	}
	return _u
}

// ClearPinnedRef clears the value of the "pinned_ref" field.
func (_u *ProjectUpdateOne) ClearPinnedRef() *ProjectUpdateOne {
	_u.mutation.ClearPinnedRef()
	return _u
}

// SetAutoSyncDeps sets the "auto_sync_deps" field.
func (_u *ProjectUpdateOne) SetAutoSyncDeps(v bool) *ProjectUpdateOne {
	_u.mutation.SetAutoSyncDeps(v)
	return _u
}

// SetNillableAutoSyncDeps sets the "auto_sync_deps" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableAutoSyncDeps(v *bool) *ProjectUpdateOne {
	if v != nil {
		_u.SetAutoSyncDeps(*v)
	}
	return _u
}

// SetScanStatus sets the "scan_status" field.
func (_u *ProjectUpdateOne) SetScanStatus(v string) *ProjectUpdateOne {
	_u.mutation.SetScanStatus(v)
	return _u
}

// SetNillableScanStatus sets the "scan_status" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableScanStatus(v *string) *ProjectUpdateOne {
	if v != nil {
		_u.SetScanStatus(*v)
	}
	return _u
}

// ClearScanStatus clears the value of the "scan_status" field.
func (_u *ProjectUpdateOne) ClearScanStatus() *ProjectUpdateOne {
	_u.mutation.ClearScanStatus()
	return _u
}

// SetScanError sets the "scan_error" field.
func (_u *ProjectUpdateOne) SetScanError(v string) *ProjectUpdateOne {
	_u.mutation.SetScanError(v)
	return _u
}

// SetNillableScanError sets the "scan_error" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableScanError(v *string) *ProjectUpdateOne {
	if v != nil {
		_u.SetScanError(*v)
	}
	return _u
}

// ClearScanError clears the value of the "scan_error" field.
func (_u *ProjectUpdateOne) ClearScanError() *ProjectUpdateOne {
	_u.mutation.ClearScanError()
	return _u
}

// SetLastScannedAt sets the "last_scanned_at" field.
func (_u *ProjectUpdateOne) SetLastScannedAt(v time.Time) *ProjectUpdateOne {
	_u.mutation.SetLastScannedAt(v)
	return _u
}

// SetNillableLastScannedAt sets the "last_scanned_at" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableLastScannedAt(v *time.Time) *ProjectUpdateOne {
	if v != nil {
		_u.SetLastScannedAt(*v)
	}
	return _u
}

// ClearLastScannedAt clears the value of the "last_scanned_at" field.
func (_u *ProjectUpdateOne) ClearLastScannedAt() *ProjectUpdateOne {
	_u.mutation.ClearLastScannedAt()
	return _u
}

// SetContactEmail sets the "contact_email" field.
func (_u *ProjectUpdateOne) SetContactEmail(v string) *ProjectUpdateOne {
	_u.mutation.SetContactEmail(v)
	return _u
}

// SetNillableContactEmail sets the "contact_email" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableContactEmail(v *string) *ProjectUpdateOne {
	if v != nil {
		_u.SetContactEmail(*v)
	}
	return _u
}

// ClearContactEmail clears the value of the "contact_email" field.
func (_u *ProjectUpdateOne) ClearContactEmail() *ProjectUpdateOne {
	_u.mutation.ClearContactEmail()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProjectUpdateOne) SetUpdatedAt(v time.Time) *ProjectUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddDependencyIDs adds the "dependencies" edge to the ProjectDependency entity by IDs.
func (_u *ProjectUpdateOne) AddDependencyIDs(ids ...string) *ProjectUpdateOne {
	_u.mutation.AddDependencyIDs(ids...)
	return _u
}

// AddDependencies adds the "dependencies" edges to the ProjectDependency entity.
func (_u *ProjectUpdateOne) AddDependencies(v ...*ProjectDependency) *ProjectUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDependencyIDs(ids...)
}

// AddClientVulnIDs adds the "client_vulns" edge to the ClientVuln entity by IDs.
func (_u *ProjectUpdateOne) AddClientVulnIDs(ids ...string) *ProjectUpdateOne {
	_u.mutation.AddClientVulnIDs(ids...)
	return _u
}

// AddClientVulns adds the "client_vulns" edges to the ClientVuln entity.
func (_u *ProjectUpdateOne) AddClientVulns(v ...*ClientVuln) *ProjectUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddClientVulnIDs(ids...)
}

// Mutation returns the ProjectMutation object of the builder.
func (_u *ProjectUpdateOne) Mutation() *ProjectMutation {
	return _u.mutation
}

// ClearDependencies clears all "dependencies" edges to the ProjectDependency entity.
func (_u *ProjectUpdateOne) ClearDependencies() *ProjectUpdateOne {
	_u.mutation.ClearDependencies()
	return _u
}

// RemoveDependencyIDs removes the "dependencies" edge to ProjectDependency entities by IDs.
func (_u *ProjectUpdateOne) RemoveDependencyIDs(ids ...string) *ProjectUpdateOne {
	_u.mutation.RemoveDependencyIDs(ids...)
	return _u
}

// RemoveDependencies removes "dependencies" edges to ProjectDependency entities.
func (_u *ProjectUpdateOne) RemoveDependencies(v ...*ProjectDependency) *ProjectUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDependencyIDs(ids...)
}

// ClearClientVulns clears all "client_vulns" edges to the ClientVuln entity.
func (_u *ProjectUpdateOne) ClearClientVulns() *ProjectUpdateOne {
	_u.mutation.ClearClientVulns()
	return _u
}

// RemoveClientVulnIDs removes the "client_vulns" edge to ClientVuln entities by IDs.
func (_u *ProjectUpdateOne) RemoveClientVulnIDs(ids ...string) *ProjectUpdateOne {
	_u.mutation.RemoveClientVulnIDs(ids...)
	return _u
}

// RemoveClientVulns removes "client_vulns" edges to ClientVuln entities.
func (_u *ProjectUpdateOne) RemoveClientVulns(v ...*ClientVuln) *ProjectUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveClientVulnIDs(ids...)
}

// Where appends a list predicates to the ProjectUpdate builder.
func (_u *ProjectUpdateOne) Where(ps ...predicate.Project) *ProjectUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProjectUpdateOne) Select(field string, fields ...string) *ProjectUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Project entity.
func (_u *ProjectUpdateOne) Save(ctx context.Context) (*Project, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProjectUpdateOne) SaveX(ctx context.Context) *Project {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProjectUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProjectUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProjectUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := project.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ProjectUpdateOne) sqlSave(ctx context.Context) (_node *Project, err error) {
	_spec := sqlgraph.NewUpdateSpec(project.Table, project.Columns, sqlgraph.NewFieldSpec(project.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Project.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, project.FieldID)
		for _, f := range fields {
			if !project.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != project.FieldID {
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
		_spec.SetField(project.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Organization(); ok {
		_spec.SetField(project.FieldOrganization, field.TypeString, value)
	}
	if _u.mutation.OrganizationCleared() {
		_spec.ClearField(project.FieldOrganization, field.TypeString)
	}
	if value, ok := _u.mutation.RepoURL(); ok {
		_spec.SetField(project.FieldRepoURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.DefaultBranch(); ok {
		_spec.SetField(project.FieldDefaultBranch, field.TypeString, value)
	}
	if value, ok := _u.mutation.CurrentVersion(); ok {
		_spec.SetField(project.FieldCurrentVersion, field.TypeString, value)
	}
	if _u.mutation.CurrentVersionCleared() {
		_spec.ClearField(project.FieldCurrentVersion, field.TypeString)
	}
	if value, ok := _u.mutation.PinnedRef(); ok {
		_spec.SetField(project.FieldPinnedRef, field.TypeString, value)
	}
	if _u.mutation.PinnedRefCleared() {
		_spec.ClearField(project.FieldPinnedRef, field.TypeString)
	}
	if value, ok := _u.mutation.AutoSyncDeps(); ok {
		_spec.SetField(project.FieldAutoSyncDeps, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ScanStatus(); ok {
		_spec.SetField(project.FieldScanStatus, field.TypeString, value)
	}
	if _u.mutation.ScanStatusCleared() {
		_spec.ClearField(project.FieldScanStatus, field.TypeString)
	}
	if value, ok := _u.mutation.ScanError(); ok {
		_spec.SetField(project.FieldScanError, field.TypeString, value)
	}
	if _u.mutation.ScanErrorCleared() {
		_spec.ClearField(project.FieldScanError, field.TypeString)
	}
	if value, ok := _u.mutation.LastScannedAt(); ok {
		_spec.SetField(project.FieldLastScannedAt, field.TypeTime, value)
	}
	if _u.mutation.LastScannedAtCleared() {
		_spec.ClearField(project.FieldLastScannedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ContactEmail(); ok {
		_spec.SetField(project.FieldContactEmail, field.TypeString, value)
	}
	if _u.mutation.ContactEmailCleared() {
		_spec.ClearField(project.FieldContactEmail, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(project.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.DependenciesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDependenciesIDs(); len(nodes) > 0 && !_u.mutation.DependenciesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DependenciesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ClientVulnsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedClientVulnsIDs(); len(nodes) > 0 && !_u.mutation.ClientVulnsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClientVulnsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Project{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{project.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
