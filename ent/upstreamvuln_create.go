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
	"github.com/vulnsentinel/vulnsentinel/ent/event"
	"github.com/vulnsentinel/vulnsentinel/ent/library"
	"github.com/vulnsentinel/vulnsentinel/ent/upstreamvuln"
)

// UpstreamVulnCreate is the builder for creating a UpstreamVuln entity.
type UpstreamVulnCreate struct {
	config
	mutation *UpstreamVulnMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetEventID sets the "event_id" field.
func (_c *UpstreamVulnCreate) SetEventID(v string) *UpstreamVulnCreate {
	_c.mutation.SetEventID(v)
	return _c
}

// SetLibraryID sets the "library_id" field.
func (_c *UpstreamVulnCreate) SetLibraryID(v string) *UpstreamVulnCreate {
	_c.mutation.SetLibraryID(v)
	return _c
}

// SetCommitSha sets the "commit_sha" field.
func (_c *UpstreamVulnCreate) SetCommitSha(v string) *UpstreamVulnCreate {
	_c.mutation.SetCommitSha(v)
	return _c
}

// SetNillableCommitSha sets the "commit_sha" field if the given value is not nil.
func (_c *UpstreamVulnCreate) SetNillableCommitSha(v *string) *UpstreamVulnCreate {
	if v != nil {
		_c.SetCommitSha(*v)
	}
	return _c
}

// SetVulnType sets the "vuln_type" field.
func (_c *UpstreamVulnCreate) SetVulnType(v string) *UpstreamVulnCreate {
	_c.mutation.SetVulnType(v)
	return _c
}

// SetNillableVulnType sets the "vuln_type" field if the given value is not nil.
func (_c *UpstreamVulnCreate) SetNillableVulnType(v *string) *UpstreamVulnCreate {
	if v != nil {
		_c.SetVulnType(*v)
	}
	return _c
}

// SetSeverity sets the "severity" field.
func (_c *UpstreamVulnCreate) SetSeverity(v upstreamvuln.Severity) *UpstreamVulnCreate {
	_c.mutation.SetSeverity(v)
	return _c
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_c *UpstreamVulnCreate) SetNillableSeverity(v *upstreamvuln.Severity) *UpstreamVulnCreate {
	if v != nil {
		_c.SetSeverity(*v)
	}
	return _c
}

// SetAffectedVersions sets the "affected_versions" field.
func (_c *UpstreamVulnCreate) SetAffectedVersions(v string) *UpstreamVulnCreate {
	_c.mutation.SetAffectedVersions(v)
	return _c
}

// SetNillableAffectedVersions sets the "affected_versions" field if the given value is not nil.
func (_c *UpstreamVulnCreate) SetNillableAffectedVersions(v *string) *UpstreamVulnCreate {
	if v != nil {
		_c.SetAffectedVersions(*v)
	}
	return _c
}

// SetSummary sets the "summary" field.
func (_c *UpstreamVulnCreate) SetSummary(v string) *UpstreamVulnCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_c *UpstreamVulnCreate) SetNillableSummary(v *string) *UpstreamVulnCreate {
	if v != nil {
		_c.SetSummary(*v)
	}
	return _c
}

// SetReasoning sets the "reasoning" field.
func (_c *UpstreamVulnCreate) SetReasoning(v string) *UpstreamVulnCreate {
	_c.mutation.SetReasoning(v)
	return _c
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_c *UpstreamVulnCreate) SetNillableReasoning(v *string) *UpstreamVulnCreate {
	if v != nil {
		_c.SetReasoning(*v)
	}
	return _c
}

// SetUpstreamPoc sets the "upstream_poc" field.
func (_c *UpstreamVulnCreate) SetUpstreamPoc(v map[string]interface{}) *UpstreamVulnCreate {
	_c.mutation.SetUpstreamPoc(v)
	return _c
}

// SetAffectedFunctions sets the "affected_functions" field.
func (_c *UpstreamVulnCreate) SetAffectedFunctions(v []string) *UpstreamVulnCreate {
	_c.mutation.SetAffectedFunctions(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *UpstreamVulnCreate) SetStatus(v upstreamvuln.Status) *UpstreamVulnCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *UpstreamVulnCreate) SetNillableStatus(v *upstreamvuln.Status) *UpstreamVulnCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetPublishedAt sets the "published_at" field.
func (_c *UpstreamVulnCreate) SetPublishedAt(v time.Time) *UpstreamVulnCreate {
	_c.mutation.SetPublishedAt(v)
	return _c
}

// SetNillablePublishedAt sets the "published_at" field if the given value is not nil.
func (_c *UpstreamVulnCreate) SetNillablePublishedAt(v *time.Time) *UpstreamVulnCreate {
	if v != nil {
		_c.SetPublishedAt(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *UpstreamVulnCreate) SetErrorMessage(v string) *UpstreamVulnCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *UpstreamVulnCreate) SetNillableErrorMessage(v *string) *UpstreamVulnCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *UpstreamVulnCreate) SetCreatedAt(v time.Time) *UpstreamVulnCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *UpstreamVulnCreate) SetNillableCreatedAt(v *time.Time) *UpstreamVulnCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *UpstreamVulnCreate) SetUpdatedAt(v time.Time) *UpstreamVulnCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *UpstreamVulnCreate) SetNillableUpdatedAt(v *time.Time) *UpstreamVulnCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *UpstreamVulnCreate) SetID(v string) *UpstreamVulnCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *UpstreamVulnCreate) SetNillableID(v *string) *UpstreamVulnCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetEvent sets the "event" edge to the Event entity.
func (_c *UpstreamVulnCreate) SetEvent(v *Event) *UpstreamVulnCreate {
	return _c.SetEventID(v.ID)
}

// SetLibrary sets the "library" edge to the Library entity.
func (_c *UpstreamVulnCreate) SetLibrary(v *Library) *UpstreamVulnCreate {
	return _c.SetLibraryID(v.ID)
}

// AddClientVulnIDs adds the "client_vulns" edge to the ClientVuln entity by IDs.
func (_c *UpstreamVulnCreate) AddClientVulnIDs(ids ...string) *UpstreamVulnCreate {
	_c.mutation.AddClientVulnIDs(ids...)
	return _c
}

// AddClientVulns adds the "client_vulns" edges to the ClientVuln entity.
func (_c *UpstreamVulnCreate) AddClientVulns(v ...*ClientVuln) *UpstreamVulnCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddClientVulnIDs(ids...)
}

// Mutation returns the UpstreamVulnMutation object of the builder.
func (_c *UpstreamVulnCreate) Mutation() *UpstreamVulnMutation {
	return _c.mutation
}

// Save creates the UpstreamVuln in the database.
func (_c *UpstreamVulnCreate) Save(ctx context.Context) (*UpstreamVuln, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UpstreamVulnCreate) SaveX(ctx context.Context) *UpstreamVuln {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UpstreamVulnCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UpstreamVulnCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UpstreamVulnCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := upstreamvuln.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := upstreamvuln.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := upstreamvuln.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := upstreamvuln.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UpstreamVulnCreate) check() error {
	if _, ok := _c.mutation.EventID(); !ok {
		return &ValidationError{Name: "event_id", err: errors.New(`ent: missing required field "UpstreamVuln.event_id"`)}
	}
	if _, ok := _c.mutation.LibraryID(); !ok {
		return &ValidationError{Name: "library_id", err: errors.New(`ent: missing required field "UpstreamVuln.library_id"`)}
	}
	if v, ok := _c.mutation.Severity(); ok {
		if err := upstreamvuln.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "UpstreamVuln.severity": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "UpstreamVuln.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := upstreamvuln.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "UpstreamVuln.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "UpstreamVuln.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "UpstreamVuln.updated_at"`)}
	}
	if len(_c.mutation.EventIDs()) == 0 {
		return &ValidationError{Name: "event", err: errors.New(`ent: missing required edge "UpstreamVuln.event"`)}
	}
	if len(_c.mutation.LibraryIDs()) == 0 {
		return &ValidationError{Name: "library", err: errors.New(`ent: missing required edge "UpstreamVuln.library"`)}
	}
	return nil
}

func (_c *UpstreamVulnCreate) sqlSave(ctx context.Context) (*UpstreamVuln, error) {
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
			return nil, fmt.Errorf("unexpected UpstreamVuln.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *UpstreamVulnCreate) createSpec() (*UpstreamVuln, *sqlgraph.CreateSpec) {
	var (
		_node = &UpstreamVuln{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(upstreamvuln.Table, sqlgraph.NewFieldSpec(upstreamvuln.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CommitSha(); ok {
		_spec.SetField(upstreamvuln.FieldCommitSha, field.TypeString, value)
		_node.CommitSha = value
	}
	if value, ok := _c.mutation.VulnType(); ok {
		_spec.SetField(upstreamvuln.FieldVulnType, field.TypeString, value)
		_node.VulnType = &value
	}
	if value, ok := _c.mutation.Severity(); ok {
		_spec.SetField(upstreamvuln.FieldSeverity, field.TypeEnum, value)
		_node.Severity = &value
	}
	if value, ok := _c.mutation.AffectedVersions(); ok {
		_spec.SetField(upstreamvuln.FieldAffectedVersions, field.TypeString, value)
		_node.AffectedVersions = &value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(upstreamvuln.FieldSummary, field.TypeString, value)
		_node.Summary = &value
	}
	if value, ok := _c.mutation.Reasoning(); ok {
		_spec.SetField(upstreamvuln.FieldReasoning, field.TypeString, value)
		_node.Reasoning = &value
	}
	if value, ok := _c.mutation.UpstreamPoc(); ok {
		_spec.SetField(upstreamvuln.FieldUpstreamPoc, field.TypeJSON, value)
		_node.UpstreamPoc = value
	}
	if value, ok := _c.mutation.AffectedFunctions(); ok {
		_spec.SetField(upstreamvuln.FieldAffectedFunctions, field.TypeJSON, value)
		_node.AffectedFunctions = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(upstreamvuln.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.PublishedAt(); ok {
		_spec.SetField(upstreamvuln.FieldPublishedAt, field.TypeTime, value)
		_node.PublishedAt = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(upstreamvuln.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(upstreamvuln.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(upstreamvuln.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.EventIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   upstreamvuln.EventTable,
			Columns: []string{upstreamvuln.EventColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.EventID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.LibraryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   upstreamvuln.LibraryTable,
			Columns: []string{upstreamvuln.LibraryColumn},
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
	if nodes := _c.mutation.ClientVulnsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   upstreamvuln.ClientVulnsTable,
			Columns: []string{upstreamvuln.ClientVulnsColumn},
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
//	client.UpstreamVuln.Create().
//		SetEventID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.UpstreamVulnUpsert) {
//			SetEventID(v+v).
//		}).
//		Exec(ctx)
func (_c *UpstreamVulnCreate) OnConflict(opts ...sql.ConflictOption) *UpstreamVulnUpsertOne {
	_c.conflict = opts
	return &UpstreamVulnUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.UpstreamVuln.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *UpstreamVulnCreate) OnConflictColumns(columns ...string) *UpstreamVulnUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &UpstreamVulnUpsertOne{
		create: _c,
	}
}

type (
	// UpstreamVulnUpsertOne is the builder for "upsert"-ing
	//  one UpstreamVuln node.
	UpstreamVulnUpsertOne struct {
		create *UpstreamVulnCreate
	}

	// UpstreamVulnUpsert is the "OnConflict" setter.
	UpstreamVulnUpsert struct {
		*sql.UpdateSet
	}
)

// SetEventID sets the "event_id" field.
func (u *UpstreamVulnUpsert) SetEventID(v string) *UpstreamVulnUpsert {
	u.Set(upstreamvuln.FieldEventID, v)
	return u
}

// UpdateEventID sets the "event_id" field to the value that was provided on create.
func (u *UpstreamVulnUpsert) UpdateEventID() *UpstreamVulnUpsert {
	u.SetExcluded(upstreamvuln.FieldEventID)
	return u
}

// SetLibraryID sets the "library_id" field.
func (u *UpstreamVulnUpsert) SetLibraryID(v string) *UpstreamVulnUpsert {
	u.Set(upstreamvuln.FieldLibraryID, v)
	return u
}

// UpdateLibraryID sets the "library_id" field to the value that was provided on create.
func (u *UpstreamVulnUpsert) UpdateLibraryID() *UpstreamVulnUpsert {
	u.SetExcluded(upstreamvuln.FieldLibraryID)
	return u
}

// SetCommitSha sets the "commit_sha" field.
func (u *UpstreamVulnUpsert) SetCommitSha(v string) *UpstreamVulnUpsert {
	u.Set(upstreamvuln.FieldCommitSha, v)
	return u
}

// UpdateCommitSha sets the "commit_sha" field to the value that was provided on create.
func (u *UpstreamVulnUpsert) UpdateCommitSha() *UpstreamVulnUpsert {
	u.SetExcluded(upstreamvuln.FieldCommitSha)
	return u
}

// ClearCommitSha clears the value of the "commit_sha" field.
func (u *UpstreamVulnUpsert) ClearCommitSha() *UpstreamVulnUpsert {
	u.SetNull(upstreamvuln.FieldCommitSha)
	return u
}

// SetVulnType sets the "vuln_type" field.
func (u *UpstreamVulnUpsert) SetVulnType(v string) *UpstreamVulnUpsert {
	u.Set(upstreamvuln.FieldVulnType, v)
	return u
}

// UpdateVulnType sets the "vuln_type" field to the value that was provided on create.
func (u *UpstreamVulnUpsert) UpdateVulnType() *UpstreamVulnUpsert {
	u.SetExcluded(upstreamvuln.FieldVulnType)
	return u
}

// ClearVulnType clears the value of the "vuln_type" field.
func (u *UpstreamVulnUpsert) ClearVulnType() *UpstreamVulnUpsert {
	u.SetNull(upstreamvuln.FieldVulnType)
	return u
}

// SetSeverity sets the "severity" field.
func (u *UpstreamVulnUpsert) SetSeverity(v upstreamvuln.Severity) *UpstreamVulnUpsert {
	u.Set(upstreamvuln.FieldSeverity, v)
	return u
}

// UpdateSeverity sets the "severity" field to the value that was provided on create.
func (u *UpstreamVulnUpsert) UpdateSeverity() *UpstreamVulnUpsert {
	u.SetExcluded(upstreamvuln.FieldSeverity)
	return u
}

// ClearSeverity clears the value of the "severity" field.
func (u *UpstreamVulnUpsert) ClearSeverity() *UpstreamVulnUpsert {
	u.SetNull(upstreamvuln.FieldSeverity)
	return u
}

// SetAffectedVersions sets the "affected_versions" field.
func (u *UpstreamVulnUpsert) SetAffectedVersions(v string) *UpstreamVulnUpsert {
	u.Set(upstreamvuln.FieldAffectedVersions, v)
	return u
}

// UpdateAffectedVersions sets the "affected_versions" field to the value that was provided on create.
func (u *UpstreamVulnUpsert) UpdateAffectedVersions() *UpstreamVulnUpsert {
	u.SetExcluded(upstreamvuln.FieldAffectedVersions)
	return u
}

// ClearAffectedVersions clears the value of the "affected_versions" field.
func (u *UpstreamVulnUpsert) ClearAffectedVersions() *UpstreamVulnUpsert {
	u.SetNull(upstreamvuln.FieldAffectedVersions)
	return u
}

// SetSummary sets the "summary" field.
func (u *UpstreamVulnUpsert) SetSummary(v string) *UpstreamVulnUpsert {
	u.Set(upstreamvuln.FieldSummary, v)
	return u
}

// UpdateSummary sets the "summary" field to the value that was provided on create.
func (u *UpstreamVulnUpsert) UpdateSummary() *UpstreamVulnUpsert {
	u.SetExcluded(upstreamvuln.FieldSummary)
	return u
}

// ClearSummary clears the value of the "summary" field.
func (u *UpstreamVulnUpsert) ClearSummary() *UpstreamVulnUpsert {
	u.SetNull(upstreamvuln.FieldSummary)
	return u
}

// SetReasoning sets the "reasoning" field.
func (u *UpstreamVulnUpsert) SetReasoning(v string) *UpstreamVulnUpsert {
	u.Set(upstreamvuln.FieldReasoning, v)
	return u
}

// UpdateReasoning sets the "reasoning" field to the value that was provided on create.
func (u *UpstreamVulnUpsert) UpdateReasoning() *UpstreamVulnUpsert {
	u.SetExcluded(upstreamvuln.FieldReasoning)
	return u
}

// ClearReasoning clears the value of the "reasoning" field.
func (u *UpstreamVulnUpsert) ClearReasoning() *UpstreamVulnUpsert {
	u.SetNull(upstreamvuln.FieldReasoning)
	return u
}

// SetUpstreamPoc sets the "upstream_poc" field.
func (u *UpstreamVulnUpsert) SetUpstreamPoc(v map[string]interface{}) *UpstreamVulnUpsert {
	u.Set(upstreamvuln.FieldUpstreamPoc, v)
	return u
}

// UpdateUpstreamPoc sets the "upstream_poc" field to the value that was provided on create.
func (u *UpstreamVulnUpsert) UpdateUpstreamPoc() *UpstreamVulnUpsert {
	u.SetExcluded(upstreamvuln.FieldUpstreamPoc)
	return u
}

// ClearUpstreamPoc clears the value of the "upstream_poc" field.
func (u *UpstreamVulnUpsert) ClearUpstreamPoc() *UpstreamVulnUpsert {
	u.SetNull(upstreamvuln.FieldUpstreamPoc)
	return u
}

// SetAffectedFunctions sets the "affected_functions" field.
func (u *UpstreamVulnUpsert) SetAffectedFunctions(v []string) *UpstreamVulnUpsert {
	u.Set(upstreamvuln.FieldAffectedFunctions, v)
	return u
}

// UpdateAffectedFunctions sets the "affected_functions" field to the value that was provided on create.
func (u *UpstreamVulnUpsert) UpdateAffectedFunctions() *UpstreamVulnUpsert {
	u.SetExcluded(upstreamvuln.FieldAffectedFunctions)
	return u
}

// ClearAffectedFunctions clears the value of the "affected_functions" field.
func (u *UpstreamVulnUpsert) ClearAffectedFunctions() *UpstreamVulnUpsert {
	u.SetNull(upstreamvuln.FieldAffectedFunctions)
	return u
}

// SetStatus sets the "status" field.
func (u *UpstreamVulnUpsert) SetStatus(v upstreamvuln.Status) *UpstreamVulnUpsert {
	u.Set(upstreamvuln.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *UpstreamVulnUpsert) UpdateStatus() *UpstreamVulnUpsert {
	u.SetExcluded(upstreamvuln.FieldStatus)
	return u
}

// SetPublishedAt sets the "published_at" field.
func (u *UpstreamVulnUpsert) SetPublishedAt(v time.Time) *UpstreamVulnUpsert {
	u.Set(upstreamvuln.FieldPublishedAt, v)
	return u
}

// UpdatePublishedAt sets the "published_at" field to the value that was provided on create.
func (u *UpstreamVulnUpsert) UpdatePublishedAt() *UpstreamVulnUpsert {
	u.SetExcluded(upstreamvuln.FieldPublishedAt)
	return u
}

// ClearPublishedAt clears the value of the "published_at" field.
func (u *UpstreamVulnUpsert) ClearPublishedAt() *UpstreamVulnUpsert {
	u.SetNull(upstreamvuln.FieldPublishedAt)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *UpstreamVulnUpsert) SetErrorMessage(v string) *UpstreamVulnUpsert {
	u.Set(upstreamvuln.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *UpstreamVulnUpsert) UpdateErrorMessage() *UpstreamVulnUpsert {
	u.SetExcluded(upstreamvuln.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *UpstreamVulnUpsert) ClearErrorMessage() *UpstreamVulnUpsert {
	u.SetNull(upstreamvuln.FieldErrorMessage)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *UpstreamVulnUpsert) SetUpdatedAt(v time.Time) *UpstreamVulnUpsert {
	u.Set(upstreamvuln.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *UpstreamVulnUpsert) UpdateUpdatedAt() *UpstreamVulnUpsert {
	u.SetExcluded(upstreamvuln.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.UpstreamVuln.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(upstreamvuln.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *UpstreamVulnUpsertOne) UpdateNewValues() *UpstreamVulnUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(upstreamvuln.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(upstreamvuln.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.UpstreamVuln.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *UpstreamVulnUpsertOne) Ignore() *UpstreamVulnUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *UpstreamVulnUpsertOne) DoNothing() *UpstreamVulnUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the UpstreamVulnCreate.OnConflict
// documentation for more info.
func (u *UpstreamVulnUpsertOne) Update(set func(*UpstreamVulnUpsert)) *UpstreamVulnUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&UpstreamVulnUpsert{UpdateSet: update})
	}))
	return u
}

// SetEventID sets the "event_id" field.
func (u *UpstreamVulnUpsertOne) SetEventID(v string) *UpstreamVulnUpsertOne {
	return u.Update(func(s *UpstreamVulnUpsert) {
		s.SetEventID(v)
	})
}

// UpdateEventID sets the "event_id" field to the value that was provided on create.
func (u *UpstreamVulnUpsertOne) UpdateEventID() *UpstreamVulnUpsertOne {
	return u.Update(func(s *UpstreamVulnUpsert) {
		s.UpdateEventID()
	})
}

// SetLibraryID sets the "library_id" field.
func (u *UpstreamVulnUpsertOne) SetLibraryID(v string) *UpstreamVulnUpsertOne {
	return u.Update(func(s *UpstreamVulnUpsert) {
		s.SetLibraryID(v)
	})
}

// UpdateLibraryID sets the "library_id" field to the value that was provided on create.
func (u *UpstreamVulnUpsertOne) UpdateLibraryID() *UpstreamVulnUpsertOne {
	return u.Update(func(s *UpstreamVulnUpsert) {
		s.UpdateLibraryID()
	})
}

// SetCommitSha sets the "commit_sha" field.
func (u *UpstreamVulnUpsertOne) SetCommitSha(v string) *UpstreamVulnUpsertOne {
	return u.Update(func(s *UpstreamVulnUpsert) {
		s.SetCommitSha(v)
	})
}

// UpdateCommitSha sets the "commit_sha" field to the value that was provided on create.
func (u *UpstreamVulnUpsertOne) UpdateCommitSha() *UpstreamVulnUpsertOne {
	return u.Update(func(s *UpstreamVulnUpsert) {
		s.UpdateCommitSha()
	})
}

// ClearCommitSha clears the value of the "commit_sha" field.
func (u *UpstreamVulnUpsertOne) ClearCommitSha() *UpstreamVulnUpsertOne {
	return u.Update(func(s *UpstreamVulnUpsert) {
		s.ClearCommitSha()
	})
}

// SetVulnType sets the "vuln_type" field.
func (u *UpstreamVulnUpsertOne) SetVulnType(v string) *UpstreamVulnUpsertOne {
	return u.Update(func(s *UpstreamVulnUpsert) {
		s.SetVulnType(v)
	})
}

// UpdateVulnType sets the "vuln_type" field to the value that was provided on create.
func (u *UpstreamVulnUpsertOne) UpdateVulnType() *UpstreamVulnUpsertOne {
	return u.Update(func(s *UpstreamVulnUpsert) {
		s.UpdateVulnType()
	})
}

// ClearVulnType clears the value of the "vuln_type" field.
func (u *UpstreamVulnUpsertOne) ClearVulnType() *UpstreamVulnUpsertOne {
	return u.Update(func(s *UpstreamVulnUpsert) {
		s.ClearVulnType()
	})
}

// SetSeverity sets the "severity" field.
func (u *UpstreamVulnUpsertOne) SetSeverity(v upstreamvuln.Severity) *UpstreamVulnUpsertOne {
	return u.Update(func(s *UpstreamVulnUpsert) {
		s.SetSeverity(v)
	})
}

// UpdateSeverity sets the "severity" field to the value that was provided on create.
func (u *UpstreamVulnUpsertOne) UpdateSeverity() *UpstreamVulnUpsertOne {
	return u.Update(func(s *UpstreamVulnUpsert) {
		s.UpdateSeverity()
	})
}

// ClearSeverity clears the value of the "severity" field.
func (u *UpstreamVulnUpsertOne) ClearSeverity() *UpstreamVulnUpsertOne {
	return u.Update(func(s *UpstreamVulnUpsert) {
		s.ClearSeverity()
	})
}

// SetAffectedVersions sets the "affected_versions" field.
func (u *UpstreamVulnUpsertOne) SetAffectedVersions(v string) *UpstreamVulnUpsertOne {
	return u.Update(func(s *UpstreamVulnUpsert) {
		s.SetAffectedVersions(v)
	})
}

// UpdateAffectedVersions sets the "affected_versions" field to the value that was provided on create.
func (u *UpstreamVulnUpsertOne) UpdateAffectedVersions() *UpstreamVulnUpsertOne {
	return u.Update(func(s *UpstreamVulnUpsert) {
		s.UpdateAffectedVersions()
	})
}

// ClearAffectedVersions clears the value of the "affected_versions" field.
func (u *UpstreamVulnUpsertOne) ClearAffectedVersions() *UpstreamVulnUpsertOne {
	return u.Update(func(s *UpstreamVulnUpsert) {
		s.ClearAffectedVersions()
	})
}

// SetSummary sets the "summary" field.
func (u *UpstreamVulnUpsertOne) SetSummary(v string) *UpstreamVulnUpsertOne {
	return u.Update(func(s *UpstreamVulnUpsert) {
		s.SetSummary(v)
	})
}

// UpdateSummary sets the "summary" field to the value that was provided on create.
func (u *UpstreamVulnUpsertOne) UpdateSummary() *UpstreamVulnUpsertOne {
	return u.Update(func(s *UpstreamVulnUpsert) {
		s.UpdateSummary()
	})
}

// ClearSummary clears the value of the "summary" field.
func (u *UpstreamVulnUpsertOne) ClearSummary() *UpstreamVulnUpsertOne {
	return u.Update(func(s *UpstreamVulnUpsert) {
		s.ClearSummary()
	})
}

// SetReasoning sets the "reasoning" field.
func (u *UpstreamVulnUpsertOne) SetReasoning(v string) *UpstreamVulnUpsertOne {
	return u.Update(func(s *UpstreamVulnUpsert) {
		s.SetReasoning(v)
	})
}

// UpdateReasoning sets the "reasoning" field to the value that was provided on create.
func (u *UpstreamVulnUpsertOne) UpdateReasoning() *UpstreamVulnUpsertOne {
	return u.Update(func(s *UpstreamVulnUpsert) {
		s.UpdateReasoning()
	})
}

// ClearReasoning clears the value of the "reasoning" field.
func (u *UpstreamVulnUpsertOne) ClearReasoning() *UpstreamVulnUpsertOne {
	return u.Update(func(s *UpstreamVulnUpsert) {
		s.ClearReasoning()
	})
}

// SetUpstreamPoc sets the "upstream_poc" field.
func (u *UpstreamVulnUpsertOne) SetUpstreamPoc(v map[string]interface{}) *UpstreamVulnUpsertOne {
	return u.Update(func(s *UpstreamVulnUpsert) {
		s.SetUpstreamPoc(v)
	})
}

// UpdateUpstreamPoc sets the "upstream_poc" field to the value that was provided on create.
func (u *UpstreamVulnUpsertOne) UpdateUpstreamPoc() *UpstreamVulnUpsertOne {
	return u.Update(func(s *UpstreamVulnUpsert) {
		s.UpdateUpstreamPoc()
	})
}

// ClearUpstreamPoc clears the value of the "upstream_poc" field.
func (u *UpstreamVulnUpsertOne) ClearUpstreamPoc() *UpstreamVulnUpsertOne {
	return u.Update(func(s *UpstreamVulnUpsert) {
		s.ClearUpstreamPoc()
	})
}

// SetAffectedFunctions sets the "affected_functions" field.
func (u *UpstreamVulnUpsertOne) SetAffectedFunctions(v []string) *UpstreamVulnUpsertOne {
	return u.Update(func(s *UpstreamVulnUpsert) {
		s.SetAffectedFunctions(v)
	})
}

// UpdateAffectedFunctions sets the "affected_functions" field to the value that was provided on create.
func (u *UpstreamVulnUpsertOne) UpdateAffectedFunctions() *UpstreamVulnUpsertOne {
	return u.Update(func(s *UpstreamVulnUpsert) {
		s.UpdateAffectedFunctions()
	})
}

// ClearAffectedFunctions clears the value of the "affected_functions" field.
func (u *UpstreamVulnUpsertOne) ClearAffectedFunctions() *UpstreamVulnUpsertOne {
	return u.Update(func(s *UpstreamVulnUpsert) {
		s.ClearAffectedFunctions()
	})
}

// SetStatus sets the "status" field.
func (u *UpstreamVulnUpsertOne) SetStatus(v upstreamvuln.Status) *UpstreamVulnUpsertOne {
	return u.Update(func(s *UpstreamVulnUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *UpstreamVulnUpsertOne) UpdateStatus() *UpstreamVulnUpsertOne {
	return u.Update(func(s *UpstreamVulnUpsert) {
		s.UpdateStatus()
	})
}

// SetPublishedAt sets the "published_at" field.
func (u *UpstreamVulnUpsertOne) SetPublishedAt(v time.Time) *UpstreamVulnUpsertOne {
	return u.Update(func(s *UpstreamVulnUpsert) {
		s.SetPublishedAt(v)
	})
}

// UpdatePublishedAt sets the "published_at" field to the value that was provided on create.
func (u *UpstreamVulnUpsertOne) UpdatePublishedAt() *UpstreamVulnUpsertOne {
	return u.Update(func(s *UpstreamVulnUpsert) {
		s.UpdatePublishedAt()
	})
}

// ClearPublishedAt clears the value of the "published_at" field.
func (u *UpstreamVulnUpsertOne) ClearPublishedAt() *UpstreamVulnUpsertOne {
	return u.Update(func(s *UpstreamVulnUpsert) {
		s.ClearPublishedAt()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *UpstreamVulnUpsertOne) SetErrorMessage(v string) *UpstreamVulnUpsertOne {
	return u.Update(func(s *UpstreamVulnUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *UpstreamVulnUpsertOne) UpdateErrorMessage() *UpstreamVulnUpsertOne {
	return u.Update(func(s *UpstreamVulnUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *UpstreamVulnUpsertOne) ClearErrorMessage() *UpstreamVulnUpsertOne {
	return u.Update(func(s *UpstreamVulnUpsert) {
		s.ClearErrorMessage()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *UpstreamVulnUpsertOne) SetUpdatedAt(v time.Time) *UpstreamVulnUpsertOne {
	return u.Update(func(s *UpstreamVulnUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *UpstreamVulnUpsertOne) UpdateUpdatedAt() *UpstreamVulnUpsertOne {
	return u.Update(func(s *UpstreamVulnUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *UpstreamVulnUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for UpstreamVulnCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *UpstreamVulnUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *UpstreamVulnUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: UpstreamVulnUpsertOne.ID is not supported by MySQL driver. Use UpstreamVulnUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *UpstreamVulnUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// UpstreamVulnCreateBulk is the builder for creating many UpstreamVuln entities in bulk.
type UpstreamVulnCreateBulk struct {
	config
	err      error
	builders []*UpstreamVulnCreate
	conflict []sql.ConflictOption
}

// Save creates the UpstreamVuln entities in the database.
func (_c *UpstreamVulnCreateBulk) Save(ctx context.Context) ([]*UpstreamVuln, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UpstreamVuln, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UpstreamVulnMutation)
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
func (_c *UpstreamVulnCreateBulk) SaveX(ctx context.Context) []*UpstreamVuln {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UpstreamVulnCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UpstreamVulnCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.UpstreamVuln.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.UpstreamVulnUpsert) {
//			SetEventID(v+v).
//		}).
//		Exec(ctx)
func (_c *UpstreamVulnCreateBulk) OnConflict(opts ...sql.ConflictOption) *UpstreamVulnUpsertBulk {
	_c.conflict = opts
	return &UpstreamVulnUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.UpstreamVuln.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *UpstreamVulnCreateBulk) OnConflictColumns(columns ...string) *UpstreamVulnUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &UpstreamVulnUpsertBulk{
		create: _c,
	}
}

// UpstreamVulnUpsertBulk is the builder for "upsert"-ing
// a bulk of UpstreamVuln nodes.
type UpstreamVulnUpsertBulk struct {
	create *UpstreamVulnCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.UpstreamVuln.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(upstreamvuln.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *UpstreamVulnUpsertBulk) UpdateNewValues() *UpstreamVulnUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(upstreamvuln.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(upstreamvuln.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.UpstreamVuln.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *UpstreamVulnUpsertBulk) Ignore() *UpstreamVulnUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *UpstreamVulnUpsertBulk) DoNothing() *UpstreamVulnUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the UpstreamVulnCreateBulk.OnConflict
// documentation for more info.
func (u *UpstreamVulnUpsertBulk) Update(set func(*UpstreamVulnUpsert)) *UpstreamVulnUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&UpstreamVulnUpsert{UpdateSet: update})
	}))
	return u
}

// SetEventID sets the "event_id" field.
func (u *UpstreamVulnUpsertBulk) SetEventID(v string) *UpstreamVulnUpsertBulk {
	return u.Update(func(s *UpstreamVulnUpsert) {
		s.SetEventID(v)
	})
}

// UpdateEventID sets the "event_id" field to the value that was provided on create.
func (u *UpstreamVulnUpsertBulk) UpdateEventID() *UpstreamVulnUpsertBulk {
	return u.Update(func(s *UpstreamVulnUpsert) {
		s.UpdateEventID()
	})
}

// SetLibraryID sets the "library_id" field.
func (u *UpstreamVulnUpsertBulk) SetLibraryID(v string) *UpstreamVulnUpsertBulk {
	return u.Update(func(s *UpstreamVulnUpsert) {
		s.SetLibraryID(v)
	})
}

// UpdateLibraryID sets the "library_id" field to the value that was provided on create.
func (u *UpstreamVulnUpsertBulk) UpdateLibraryID() *UpstreamVulnUpsertBulk {
	return u.Update(func(s *UpstreamVulnUpsert) {
		s.UpdateLibraryID()
	})
}

// SetCommitSha sets the "commit_sha" field.
func (u *UpstreamVulnUpsertBulk) SetCommitSha(v string) *UpstreamVulnUpsertBulk {
	return u.Update(func(s *UpstreamVulnUpsert) {
		s.SetCommitSha(v)
	})
}

// UpdateCommitSha sets the "commit_sha" field to the value that was provided on create.
func (u *UpstreamVulnUpsertBulk) UpdateCommitSha() *UpstreamVulnUpsertBulk {
	return u.Update(func(s *UpstreamVulnUpsert) {
		s.UpdateCommitSha()
	})
}

// ClearCommitSha clears the value of the "commit_sha" field.
func (u *UpstreamVulnUpsertBulk) ClearCommitSha() *UpstreamVulnUpsertBulk {
	return u.Update(func(s *UpstreamVulnUpsert) {
		s.ClearCommitSha()
	})
}

// SetVulnType sets the "vuln_type" field.
func (u *UpstreamVulnUpsertBulk) SetVulnType(v string) *UpstreamVulnUpsertBulk {
	return u.Update(func(s *UpstreamVulnUpsert) {
		s.SetVulnType(v)
	})
}

// UpdateVulnType sets the "vuln_type" field to the value that was provided on create.
func (u *UpstreamVulnUpsertBulk) UpdateVulnType() *UpstreamVulnUpsertBulk {
	return u.Update(func(s *UpstreamVulnUpsert) {
		s.UpdateVulnType()
	})
}

// ClearVulnType clears the value of the "vuln_type" field.
func (u *UpstreamVulnUpsertBulk) ClearVulnType() *UpstreamVulnUpsertBulk {
	return u.Update(func(s *UpstreamVulnUpsert) {
		s.ClearVulnType()
	})
}

// SetSeverity sets the "severity" field.
func (u *UpstreamVulnUpsertBulk) SetSeverity(v upstreamvuln.Severity) *UpstreamVulnUpsertBulk {
	return u.Update(func(s *UpstreamVulnUpsert) {
		s.SetSeverity(v)
	})
}

// UpdateSeverity sets the "severity" field to the value that was provided on create.
func (u *UpstreamVulnUpsertBulk) UpdateSeverity() *UpstreamVulnUpsertBulk {
	return u.Update(func(s *UpstreamVulnUpsert) {
		s.UpdateSeverity()
	})
}

// ClearSeverity clears the value of the "severity" field.
func (u *UpstreamVulnUpsertBulk) ClearSeverity() *UpstreamVulnUpsertBulk {
	return u.Update(func(s *UpstreamVulnUpsert) {
		s.ClearSeverity()
	})
}

// SetAffectedVersions sets the "affected_versions" field.
func (u *UpstreamVulnUpsertBulk) SetAffectedVersions(v string) *UpstreamVulnUpsertBulk {
	return u.Update(func(s *UpstreamVulnUpsert) {
		s.SetAffectedVersions(v)
	})
}

// UpdateAffectedVersions sets the "affected_versions" field to the value that was provided on create.
func (u *UpstreamVulnUpsertBulk) UpdateAffectedVersions() *UpstreamVulnUpsertBulk {
	return u.Update(func(s *UpstreamVulnUpsert) {
		s.UpdateAffectedVersions()
	})
}

// ClearAffectedVersions clears the value of the "affected_versions" field.
func (u *UpstreamVulnUpsertBulk) ClearAffectedVersions() *UpstreamVulnUpsertBulk {
	return u.Update(func(s *UpstreamVulnUpsert) {
		s.ClearAffectedVersions()
	})
}

// SetSummary sets the "summary" field.
func (u *UpstreamVulnUpsertBulk) SetSummary(v string) *UpstreamVulnUpsertBulk {
	return u.Update(func(s *UpstreamVulnUpsert) {
		s.SetSummary(v)
	})
}

// UpdateSummary sets the "summary" field to the value that was provided on create.
func (u *UpstreamVulnUpsertBulk) UpdateSummary() *UpstreamVulnUpsertBulk {
	return u.Update(func(s *UpstreamVulnUpsert) {
		s.UpdateSummary()
	})
}

// ClearSummary clears the value of the "summary" field.
func (u *UpstreamVulnUpsertBulk) ClearSummary() *UpstreamVulnUpsertBulk {
	return u.Update(func(s *UpstreamVulnUpsert) {
		s.ClearSummary()
	})
}

// SetReasoning sets the "reasoning" field.
func (u *UpstreamVulnUpsertBulk) SetReasoning(v string) *UpstreamVulnUpsertBulk {
	return u.Update(func(s *UpstreamVulnUpsert) {
		s.SetReasoning(v)
	})
}

// UpdateReasoning sets the "reasoning" field to the value that was provided on create.
func (u *UpstreamVulnUpsertBulk) UpdateReasoning() *UpstreamVulnUpsertBulk {
	return u.Update(func(s *UpstreamVulnUpsert) {
		s.UpdateReasoning()
	})
}

// ClearReasoning clears the value of the "reasoning" field.
func (u *UpstreamVulnUpsertBulk) ClearReasoning() *UpstreamVulnUpsertBulk {
	return u.Update(func(s *UpstreamVulnUpsert) {
		s.ClearReasoning()
	})
}

// SetUpstreamPoc sets the "upstream_poc" field.
func (u *UpstreamVulnUpsertBulk) SetUpstreamPoc(v map[string]interface{}) *UpstreamVulnUpsertBulk {
	return u.Update(func(s *UpstreamVulnUpsert) {
		s.SetUpstreamPoc(v)
	})
}

// UpdateUpstreamPoc sets the "upstream_poc" field to the value that was provided on create.
func (u *UpstreamVulnUpsertBulk) UpdateUpstreamPoc() *UpstreamVulnUpsertBulk {
	return u.Update(func(s *UpstreamVulnUpsert) {
		s.UpdateUpstreamPoc()
	})
}

// ClearUpstreamPoc clears the value of the "upstream_poc" field.
func (u *UpstreamVulnUpsertBulk) ClearUpstreamPoc() *UpstreamVulnUpsertBulk {
	return u.Update(func(s *UpstreamVulnUpsert) {
		s.ClearUpstreamPoc()
	})
}

// SetAffectedFunctions sets the "affected_functions" field.
func (u *UpstreamVulnUpsertBulk) SetAffectedFunctions(v []string) *UpstreamVulnUpsertBulk {
	return u.Update(func(s *UpstreamVulnUpsert) {
		s.SetAffectedFunctions(v)
	})
}

// UpdateAffectedFunctions sets the "affected_functions" field to the value that was provided on create.
func (u *UpstreamVulnUpsertBulk) UpdateAffectedFunctions() *UpstreamVulnUpsertBulk {
	return u.Update(func(s *UpstreamVulnUpsert) {
		s.UpdateAffectedFunctions()
	})
}

// ClearAffectedFunctions clears the value of the "affected_functions" field.
func (u *UpstreamVulnUpsertBulk) ClearAffectedFunctions() *UpstreamVulnUpsertBulk {
	return u.Update(func(s *UpstreamVulnUpsert) {
		s.ClearAffectedFunctions()
	})
}

// SetStatus sets the "status" field.
func (u *UpstreamVulnUpsertBulk) SetStatus(v upstreamvuln.Status) *UpstreamVulnUpsertBulk {
	return u.Update(func(s *UpstreamVulnUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *UpstreamVulnUpsertBulk) UpdateStatus() *UpstreamVulnUpsertBulk {
	return u.Update(func(s *UpstreamVulnUpsert) {
		s.UpdateStatus()
	})
}

// SetPublishedAt sets the "published_at" field.
func (u *UpstreamVulnUpsertBulk) SetPublishedAt(v time.Time) *UpstreamVulnUpsertBulk {
	return u.Update(func(s *UpstreamVulnUpsert) {
		s.SetPublishedAt(v)
	})
}

// UpdatePublishedAt sets the "published_at" field to the value that was provided on create.
func (u *UpstreamVulnUpsertBulk) UpdatePublishedAt() *UpstreamVulnUpsertBulk {
	return u.Update(func(s *UpstreamVulnUpsert) {
		s.UpdatePublishedAt()
	})
}

// ClearPublishedAt clears the value of the "published_at" field.
func (u *UpstreamVulnUpsertBulk) ClearPublishedAt() *UpstreamVulnUpsertBulk {
	return u.Update(func(s *UpstreamVulnUpsert) {
		s.ClearPublishedAt()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *UpstreamVulnUpsertBulk) SetErrorMessage(v string) *UpstreamVulnUpsertBulk {
	return u.Update(func(s *UpstreamVulnUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *UpstreamVulnUpsertBulk) UpdateErrorMessage() *UpstreamVulnUpsertBulk {
	return u.Update(func(s *UpstreamVulnUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *UpstreamVulnUpsertBulk) ClearErrorMessage() *UpstreamVulnUpsertBulk {
	return u.Update(func(s *UpstreamVulnUpsert) {
		s.ClearErrorMessage()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *UpstreamVulnUpsertBulk) SetUpdatedAt(v time.Time) *UpstreamVulnUpsertBulk {
	return u.Update(func(s *UpstreamVulnUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *UpstreamVulnUpsertBulk) UpdateUpdatedAt() *UpstreamVulnUpsertBulk {
	return u.Update(func(s *UpstreamVulnUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *UpstreamVulnUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the UpstreamVulnCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for UpstreamVulnCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *UpstreamVulnUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
