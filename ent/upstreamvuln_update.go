// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/vulnsentinel/vulnsentinel/ent/clientvuln"
	"github.com/vulnsentinel/vulnsentinel/ent/event"
	"github.com/vulnsentinel/vulnsentinel/ent/library"
	"github.com/vulnsentinel/vulnsentinel/ent/predicate"
	"github.com/vulnsentinel/vulnsentinel/ent/upstreamvuln"
)

// UpstreamVulnUpdate is the builder for updating UpstreamVuln entities.
type UpstreamVulnUpdate struct {
	config
	hooks    []Hook
	mutation *UpstreamVulnMutation
}

// Where appends a list predicates to the UpstreamVulnUpdate builder.
func (_u *UpstreamVulnUpdate) Where(ps ...predicate.UpstreamVuln) *UpstreamVulnUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEventID sets the "event_id" field.
func (_u *UpstreamVulnUpdate) SetEventID(v string) *UpstreamVulnUpdate {
	_u.mutation.SetEventID(v)
	return _u
}

// SetNillableEventID sets the "event_id" field if the given value is not nil.
func (_u *UpstreamVulnUpdate) SetNillableEventID(v *string) *UpstreamVulnUpdate {
	if v != nil {
		_u.SetEventID(*v)
	}
	return _u
}

// SetLibraryID sets the "library_id" field.
func (_u *UpstreamVulnUpdate) SetLibraryID(v string) *UpstreamVulnUpdate {
	_u.mutation.SetLibraryID(v)
	return _u
}

// SetNillableLibraryID sets the "library_id" field if the given value is not nil.
func (_u *UpstreamVulnUpdate) SetNillableLibraryID(v *string) *UpstreamVulnUpdate {
	if v != nil {
		_u.SetLibraryID(*v)
	}
	return _u
}

// SetCommitSha sets the "commit_sha" field.
func (_u *UpstreamVulnUpdate) SetCommitSha(v string) *UpstreamVulnUpdate {
	_u.mutation.SetCommitSha(v)
	return _u
}

// SetNillableCommitSha sets the "commit_sha" field if the given value is not nil.
func (_u *UpstreamVulnUpdate) SetNillableCommitSha(v *string) *UpstreamVulnUpdate {
	if v != nil {
		_u.SetCommitSha(*v)
	}
	return _u
}

// ClearCommitSha clears the value of the "commit_sha" field.
func (_u *UpstreamVulnUpdate) ClearCommitSha() *UpstreamVulnUpdate {
	_u.mutation.ClearCommitSha()
	return _u
}

// SetVulnType sets the "vuln_type" field.
func (_u *UpstreamVulnUpdate) SetVulnType(v string) *UpstreamVulnUpdate {
	_u.mutation.SetVulnType(v)
	return _u
}

// SetNillableVulnType sets the "vuln_type" field if the given value is not nil.
func (_u *UpstreamVulnUpdate) SetNillableVulnType(v *string) *UpstreamVulnUpdate {
	if v != nil {
		_u.SetVulnType(*v)
	}
	return _u
}

// ClearVulnType clears the value of the "vuln_type" field.
func (_u *UpstreamVulnUpdate) ClearVulnType() *UpstreamVulnUpdate {
	_u.mutation.ClearVulnType()
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *UpstreamVulnUpdate) SetSeverity(v upstreamvuln.Severity) *UpstreamVulnUpdate {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *UpstreamVulnUpdate) SetNillableSeverity(v *upstreamvuln.Severity) *UpstreamVulnUpdate {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// ClearSeverity clears the value of the "severity" field.
func (_u *UpstreamVulnUpdate) ClearSeverity() *UpstreamVulnUpdate {
	_u.mutation.ClearSeverity()
	return _u
}

// SetAffectedVersions sets the "affected_versions" field.
func (_u *UpstreamVulnUpdate) SetAffectedVersions(v string) *UpstreamVulnUpdate {
	_u.mutation.SetAffectedVersions(v)
	return _u
}

// SetNillableAffectedVersions sets the "affected_versions" field if the given value is not nil.
func (_u *UpstreamVulnUpdate) SetNillableAffectedVersions(v *string) *UpstreamVulnUpdate {
	if v != nil {
		_u.SetAffectedVersions(*v)
	}
	return _u
}

// ClearAffectedVersions clears the value of the "affected_versions" field.
func (_u *UpstreamVulnUpdate) ClearAffectedVersions() *UpstreamVulnUpdate {
	_u.mutation.ClearAffectedVersions()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *UpstreamVulnUpdate) SetSummary(v string) *UpstreamVulnUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *UpstreamVulnUpdate) SetNillableSummary(v *string) *UpstreamVulnUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *UpstreamVulnUpdate) ClearSummary() *UpstreamVulnUpdate {
	_u.mutation.ClearSummary()
	return _u
}

// SetReasoning sets the "reasoning" field.
func (_u *UpstreamVulnUpdate) SetReasoning(v string) *UpstreamVulnUpdate {
	_u.mutation.SetReasoning(v)
	return _u
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_u *UpstreamVulnUpdate) SetNillableReasoning(v *string) *UpstreamVulnUpdate {
	if v != nil {
		_u.SetReasoning(*v)
	}
	return _u
}

// ClearReasoning clears the value of the "reasoning" field.
func (_u *UpstreamVulnUpdate) ClearReasoning() *UpstreamVulnUpdate {
	_u.mutation.ClearReasoning()
	return _u
}

// SetUpstreamPoc sets the "upstream_poc" field.
func (_u *UpstreamVulnUpdate) SetUpstreamPoc(v map[string]interface{}) *UpstreamVulnUpdate {
	_u.mutation.SetUpstreamPoc(v)
	return _u
}

// ClearUpstreamPoc clears the value of the "upstream_poc" field.
func (_u *UpstreamVulnUpdate) ClearUpstreamPoc() *UpstreamVulnUpdate {
	_u.mutation.ClearUpstreamPoc()
	return _u
}

// SetAffectedFunctions sets the "affected_functions" field.
func (_u *UpstreamVulnUpdate) SetAffectedFunctions(v []string) *UpstreamVulnUpdate {
	_u.mutation.SetAffectedFunctions(v)
	return _u
}

// AppendAffectedFunctions appends value to the "affected_functions" field.
func (_u *UpstreamVulnUpdate) AppendAffectedFunctions(v []string) *UpstreamVulnUpdate {
	_u.mutation.AppendAffectedFunctions(v)
	return _u
}

// ClearAffectedFunctions clears the value of the "affected_functions" field.
func (_u *UpstreamVulnUpdate) ClearAffectedFunctions() *UpstreamVulnUpdate {
	_u.mutation.ClearAffectedFunctions()
	return _u
}

// SetStatus sets the "status" field.
func (_u *UpstreamVulnUpdate) SetStatus(v upstreamvuln.Status) *UpstreamVulnUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *UpstreamVulnUpdate) SetNillableStatus(v *upstreamvuln.Status) *UpstreamVulnUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPublishedAt sets the "published_at" field.
func (_u *UpstreamVulnUpdate) SetPublishedAt(v time.Time) *UpstreamVulnUpdate {
	_u.mutation.SetPublishedAt(v)
	return _u
}

// SetNillablePublishedAt sets the "published_at" field if the given value is not nil.
func (_u *UpstreamVulnUpdate) SetNillablePublishedAt(v *time.Time) *UpstreamVulnUpdate {
	if v != nil {
		_u.SetPublishedAt(*v)
	}
	return _u
}

// ClearPublishedAt clears the value of the "published_at" field.
func (_u *UpstreamVulnUpdate) ClearPublishedAt() *UpstreamVulnUpdate {
	_u.mutation.ClearPublishedAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *UpstreamVulnUpdate) SetErrorMessage(v string) *UpstreamVulnUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *UpstreamVulnUpdate) SetNillableErrorMessage(v *string) *UpstreamVulnUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *UpstreamVulnUpdate) ClearErrorMessage() *UpstreamVulnUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UpstreamVulnUpdate) SetUpdatedAt(v time.Time) *UpstreamVulnUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetEvent sets the "event" edge to the Event entity.
func (_u *UpstreamVulnUpdate) SetEvent(v *Event) *UpstreamVulnUpdate {
	return _u.SetEventID(v.ID)
}

// SetLibrary sets the "library" edge to the Library entity.
func (_u *UpstreamVulnUpdate) SetLibrary(v *Library) *UpstreamVulnUpdate {
	return _u.SetLibraryID(v.ID)
}

// AddClientVulnIDs adds the "client_vulns" edge to the ClientVuln entity by IDs.
func (_u *UpstreamVulnUpdate) AddClientVulnIDs(ids ...string) *UpstreamVulnUpdate {
	_u.mutation.AddClientVulnIDs(ids...)
	return _u
}

// AddClientVulns adds the "client_vulns" edges to the ClientVuln entity.
func (_u *UpstreamVulnUpdate) AddClientVulns(v ...*ClientVuln) *UpstreamVulnUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddClientVulnIDs(ids...)
}

// Mutation returns the UpstreamVulnMutation object of the builder.
func (_u *UpstreamVulnUpdate) Mutation() *UpstreamVulnMutation {
	return _u.mutation
}

// ClearEvent clears the "event" edge to the Event entity.
func (_u *UpstreamVulnUpdate) ClearEvent() *UpstreamVulnUpdate {
	_u.mutation.ClearEvent()
	return _u
}

// ClearLibrary clears the "library" edge to the Library entity.
func (_u *UpstreamVulnUpdate) ClearLibrary() *UpstreamVulnUpdate {
	_u.mutation.ClearLibrary()
	return _u
}

// ClearClientVulns clears all "client_vulns" edges to the ClientVuln entity.
func (_u *UpstreamVulnUpdate) ClearClientVulns() *UpstreamVulnUpdate {
	_u.mutation.ClearClientVulns()
	return _u
}

// RemoveClientVulnIDs removes the "client_vulns" edge to ClientVuln entities by IDs.
func (_u *UpstreamVulnUpdate) RemoveClientVulnIDs(ids ...string) *UpstreamVulnUpdate {
	_u.mutation.RemoveClientVulnIDs(ids...)
	return _u
}

// RemoveClientVulns removes "client_vulns" edges to ClientVuln entities.
func (_u *UpstreamVulnUpdate) RemoveClientVulns(v ...*ClientVuln) *UpstreamVulnUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveClientVulnIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UpstreamVulnUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UpstreamVulnUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UpstreamVulnUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UpstreamVulnUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UpstreamVulnUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := upstreamvuln.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UpstreamVulnUpdate) check() error {
	if v, ok := _u.mutation.Severity(); ok {
		if err := upstreamvuln.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "UpstreamVuln.severity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := upstreamvuln.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "UpstreamVuln.status": %w`, err)}
		}
	}
	if _u.mutation.EventCleared() && len(_u.mutation.EventIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "UpstreamVuln.event"`)
	}
	if _u.mutation.LibraryCleared() && len(_u.mutation.LibraryIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "UpstreamVuln.library"`)
	}
	return nil
}

func (_u *UpstreamVulnUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(upstreamvuln.Table, upstreamvuln.Columns, sqlgraph.NewFieldSpec(upstreamvuln.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CommitSha(); ok {
		_spec.SetField(upstreamvuln.FieldCommitSha, field.TypeString, value)
	}
	if _u.mutation.CommitShaCleared() {
		_spec.ClearField(upstreamvuln.FieldCommitSha, field.TypeString)
	}
	if value, ok := _u.mutation.VulnType(); ok {
		_spec.SetField(upstreamvuln.FieldVulnType, field.TypeString, value)
	}
	if _u.mutation.VulnTypeCleared() {
		_spec.ClearField(upstreamvuln.FieldVulnType, field.TypeString)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(upstreamvuln.FieldSeverity, field.TypeEnum, value)
	}
	if _u.mutation.SeverityCleared() {
		_spec.ClearField(upstreamvuln.FieldSeverity, field.TypeEnum)
	}
	if value, ok := _u.mutation.AffectedVersions(); ok {
		_spec.SetField(upstreamvuln.FieldAffectedVersions, field.TypeString, value)
	}
	if _u.mutation.AffectedVersionsCleared() {
		_spec.ClearField(upstreamvuln.FieldAffectedVersions, field.TypeString)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(upstreamvuln.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(upstreamvuln.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.Reasoning(); ok {
		_spec.SetField(upstreamvuln.FieldReasoning, field.TypeString, value)
	}
	if _u.mutation.ReasoningCleared() {
		_spec.ClearField(upstreamvuln.FieldReasoning, field.TypeString)
	}
	if value, ok := _u.mutation.UpstreamPoc(); ok {
		_spec.SetField(upstreamvuln.FieldUpstreamPoc, field.TypeJSON, value)
	}
	if _u.mutation.UpstreamPocCleared() {
		_spec.ClearField(upstreamvuln.FieldUpstreamPoc, field.TypeJSON)
	}
	if value, ok := _u.mutation.AffectedFunctions(); ok {
		_spec.SetField(upstreamvuln.FieldAffectedFunctions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAffectedFunctions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, upstreamvuln.FieldAffectedFunctions, value)
		})
	}
	if _u.mutation.AffectedFunctionsCleared() {
		_spec.ClearField(upstreamvuln.FieldAffectedFunctions, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(upstreamvuln.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PublishedAt(); ok {
		_spec.SetField(upstreamvuln.FieldPublishedAt, field.TypeTime, value)
	}
	if _u.mutation.PublishedAtCleared() {
		_spec.ClearField(upstreamvuln.FieldPublishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(upstreamvuln.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(upstreamvuln.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(upstreamvuln.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.EventCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LibraryCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LibraryIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ClientVulnsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedClientVulnsIDs(); len(nodes) > 0 && !_u.mutation.ClientVulnsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClientVulnsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{upstreamvuln.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UpstreamVulnUpdateOne is the builder for updating a single UpstreamVuln entity.
type UpstreamVulnUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UpstreamVulnMutation
}

// SetEventID sets the "event_id" field.
func (_u *UpstreamVulnUpdateOne) SetEventID(v string) *UpstreamVulnUpdateOne {
	_u.mutation.SetEventID(v)
	return _u
}

// SetNillableEventID sets the "event_id" field if the given value is not nil.
func (_u *UpstreamVulnUpdateOne) SetNillableEventID(v *string) *UpstreamVulnUpdateOne {
	if v != nil {
		_u.SetEventID(*v)
	}
	return _u
}

// SetLibraryID sets the "library_id" field.
func (_u *UpstreamVulnUpdateOne) SetLibraryID(v string) *UpstreamVulnUpdateOne {
	_u.mutation.SetLibraryID(v)
	return _u
}

// SetNillableLibraryID sets the "library_id" field if the given value is not nil.
func (_u *UpstreamVulnUpdateOne) SetNillableLibraryID(v *string) *UpstreamVulnUpdateOne {
	if v != nil {
		_u.SetLibraryID(*v)
	}
	return _u
}

// SetCommitSha sets the "commit_sha" field.
func (_u *UpstreamVulnUpdateOne) SetCommitSha(v string) *UpstreamVulnUpdateOne {
	_u.mutation.SetCommitSha(v)
	return _u
}

// SetNillableCommitSha sets the "commit_sha" field if the given value is not nil.
func (_u *UpstreamVulnUpdateOne) SetNillableCommitSha(v *string) *UpstreamVulnUpdateOne {
	if v != nil {
		_u.SetCommitSha(*v)
	}
	return _u
}

// ClearCommitSha clears the value of the "commit_sha" field.
func (_u *UpstreamVulnUpdateOne) ClearCommitSha() *UpstreamVulnUpdateOne {
	_u.mutation.ClearCommitSha()
	return _u
}

// SetVulnType sets the "vuln_type" field.
func (_u *UpstreamVulnUpdateOne) SetVulnType(v string) *UpstreamVulnUpdateOne {
	_u.mutation.SetVulnType(v)
	return _u
}

// SetNillableVulnType sets the "vuln_type" field if the given value is not nil.
func (_u *UpstreamVulnUpdateOne) SetNillableVulnType(v *string) *UpstreamVulnUpdateOne {
	if v != nil {
		_u.SetVulnType(*v)
	}
	return _u
}

// ClearVulnType clears the value of the "vuln_type" field.
func (_u *UpstreamVulnUpdateOne) ClearVulnType() *UpstreamVulnUpdateOne {
	_u.mutation.ClearVulnType()
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *UpstreamVulnUpdateOne) SetSeverity(v upstreamvuln.Severity) *UpstreamVulnUpdateOne {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *UpstreamVulnUpdateOne) SetNillableSeverity(v *upstreamvuln.Severity) *UpstreamVulnUpdateOne {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// ClearSeverity clears the value of the "severity" field.
func (_u *UpstreamVulnUpdateOne) ClearSeverity() *UpstreamVulnUpdateOne {
	_u.mutation.ClearSeverity()
	return _u
}

// SetAffectedVersions sets the "affected_versions" field.
func (_u *UpstreamVulnUpdateOne) SetAffectedVersions(v string) *UpstreamVulnUpdateOne {
	_u.mutation.SetAffectedVersions(v)
	return _u
}

// SetNillableAffectedVersions sets the "affected_versions" field if the given value is not nil.
func (_u *UpstreamVulnUpdateOne) SetNillableAffectedVersions(v *string) *UpstreamVulnUpdateOne {
	if v != nil {
		_u.SetAffectedVersions(*v)
	}
	return _u
}

// ClearAffectedVersions clears the value of the "affected_versions" field.
func (_u *UpstreamVulnUpdateOne) ClearAffectedVersions() *UpstreamVulnUpdateOne {
	_u.mutation.ClearAffectedVersions()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *UpstreamVulnUpdateOne) SetSummary(v string) *UpstreamVulnUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *UpstreamVulnUpdateOne) SetNillableSummary(v *string) *UpstreamVulnUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *UpstreamVulnUpdateOne) ClearSummary() *UpstreamVulnUpdateOne {
	_u.mutation.ClearSummary()
	return _u
}

// SetReasoning sets the "reasoning" field.
func (_u *UpstreamVulnUpdateOne) SetReasoning(v string) *UpstreamVulnUpdateOne {
	_u.mutation.SetReasoning(v)
	return _u
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_u *UpstreamVulnUpdateOne) SetNillableReasoning(v *string) *UpstreamVulnUpdateOne {
	if v != nil {
		_u.SetReasoning(*v)
	}
	return _u
}

// ClearReasoning clears the value of the "reasoning" field.
func (_u *UpstreamVulnUpdateOne) ClearReasoning() *UpstreamVulnUpdateOne {
	_u.mutation.ClearReasoning()
	return _u
}

// SetUpstreamPoc sets the "upstream_poc" field.
func (_u *UpstreamVulnUpdateOne) SetUpstreamPoc(v map[string]interface{}) *UpstreamVulnUpdateOne {
	_u.mutation.SetUpstreamPoc(v)
	return _u
}

// ClearUpstreamPoc clears the value of the "upstream_poc" field.
func (_u *UpstreamVulnUpdateOne) ClearUpstreamPoc() *UpstreamVulnUpdateOne {
	_u.mutation.ClearUpstreamPoc()
	return _u
}

// SetAffectedFunctions sets the "affected_functions" field.
func (_u *UpstreamVulnUpdateOne) SetAffectedFunctions(v []string) *UpstreamVulnUpdateOne {
	_u.mutation.SetAffectedFunctions(v)
	return _u
}

// AppendAffectedFunctions appends value to the "affected_functions" field.
func (_u *UpstreamVulnUpdateOne) AppendAffectedFunctions(v []string) *UpstreamVulnUpdateOne {
	_u.mutation.AppendAffectedFunctions(v)
	return _u
}

// ClearAffectedFunctions clears the value of the "affected_functions" field.
func (_u *UpstreamVulnUpdateOne) ClearAffectedFunctions() *UpstreamVulnUpdateOne {
	_u.mutation.ClearAffectedFunctions()
	return _u
}

// SetStatus sets the "status" field.
func (_u *UpstreamVulnUpdateOne) SetStatus(v upstreamvuln.Status) *UpstreamVulnUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *UpstreamVulnUpdateOne) SetNillableStatus(v *upstreamvuln.Status) *UpstreamVulnUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPublishedAt sets the "published_at" field.
func (_u *UpstreamVulnUpdateOne) SetPublishedAt(v time.Time) *UpstreamVulnUpdateOne {
	_u.mutation.SetPublishedAt(v)
	return _u
}

// SetNillablePublishedAt sets the "published_at" field if the given value is not nil.
func (_u *UpstreamVulnUpdateOne) SetNillablePublishedAt(v *time.Time) *UpstreamVulnUpdateOne {
	if v != nil {
		_u.SetPublishedAt(*v)
	}
	return _u
}

// ClearPublishedAt clears the value of the "published_at" field.
func (_u *UpstreamVulnUpdateOne) ClearPublishedAt() *UpstreamVulnUpdateOne {
	_u.mutation.ClearPublishedAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *UpstreamVulnUpdateOne) SetErrorMessage(v string) *UpstreamVulnUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *UpstreamVulnUpdateOne) SetNillableErrorMessage(v *string) *UpstreamVulnUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *UpstreamVulnUpdateOne) ClearErrorMessage() *UpstreamVulnUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UpstreamVulnUpdateOne) SetUpdatedAt(v time.Time) *UpstreamVulnUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetEvent sets the "event" edge to the Event entity.
func (_u *UpstreamVulnUpdateOne) SetEvent(v *Event) *UpstreamVulnUpdateOne {
	return _u.SetEventID(v.ID)
}

// SetLibrary sets the "library" edge to the Library entity.
func (_u *UpstreamVulnUpdateOne) SetLibrary(v *Library) *UpstreamVulnUpdateOne {
	return _u.SetLibraryID(v.ID)
}

// AddClientVulnIDs adds the "client_vulns" edge to the ClientVuln entity by IDs.
func (_u *UpstreamVulnUpdateOne) AddClientVulnIDs(ids ...string) *UpstreamVulnUpdateOne {
	_u.mutation.AddClientVulnIDs(ids...)
	return _u
}

// AddClientVulns adds the "client_vulns" edges to the ClientVuln entity.
func (_u *UpstreamVulnUpdateOne) AddClientVulns(v ...*ClientVuln) *UpstreamVulnUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddClientVulnIDs(ids...)
}

// Mutation returns the UpstreamVulnMutation object of the builder.
func (_u *UpstreamVulnUpdateOne) Mutation() *UpstreamVulnMutation {
	return _u.mutation
}

// ClearEvent clears the "event" edge to the Event entity.
func (_u *UpstreamVulnUpdateOne) ClearEvent() *UpstreamVulnUpdateOne {
	_u.mutation.ClearEvent()
	return _u
}

// ClearLibrary clears the "library" edge to the Library entity.
func (_u *UpstreamVulnUpdateOne) ClearLibrary() *UpstreamVulnUpdateOne {
	_u.mutation.ClearLibrary()
	return _u
}

// ClearClientVulns clears all "client_vulns" edges to the ClientVuln entity.
func (_u *UpstreamVulnUpdateOne) ClearClientVulns() *UpstreamVulnUpdateOne {
	_u.mutation.ClearClientVulns()
	return _u
}

// RemoveClientVulnIDs removes the "client_vulns" edge to ClientVuln entities by IDs.
func (_u *UpstreamVulnUpdateOne) RemoveClientVulnIDs(ids ...string) *UpstreamVulnUpdateOne {
	_u.mutation.RemoveClientVulnIDs(ids...)
	return _u
}

// RemoveClientVulns removes "client_vulns" edges to ClientVuln entities.
func (_u *UpstreamVulnUpdateOne) RemoveClientVulns(v ...*ClientVuln) *UpstreamVulnUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveClientVulnIDs(ids...)
}

// Where appends a list predicates to the UpstreamVulnUpdate builder.
func (_u *UpstreamVulnUpdateOne) Where(ps ...predicate.UpstreamVuln) *UpstreamVulnUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UpstreamVulnUpdateOne) Select(field string, fields ...string) *UpstreamVulnUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UpstreamVuln entity.
func (_u *UpstreamVulnUpdateOne) Save(ctx context.Context) (*UpstreamVuln, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UpstreamVulnUpdateOne) SaveX(ctx context.Context) *UpstreamVuln {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UpstreamVulnUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UpstreamVulnUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UpstreamVulnUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := upstreamvuln.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UpstreamVulnUpdateOne) check() error {
	if v, ok := _u.mutation.Severity(); ok {
		if err := upstreamvuln.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "UpstreamVuln.severity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := upstreamvuln.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "UpstreamVuln.status": %w`, err)}
		}
	}
	if _u.mutation.EventCleared() && len(_u.mutation.EventIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "UpstreamVuln.event"`)
	}
	if _u.mutation.LibraryCleared() && len(_u.mutation.LibraryIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "UpstreamVuln.library"`)
	}
	return nil
}

func (_u *UpstreamVulnUpdateOne) sqlSave(ctx context.Context) (_node *UpstreamVuln, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(upstreamvuln.Table, upstreamvuln.Columns, sqlgraph.NewFieldSpec(upstreamvuln.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UpstreamVuln.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, upstreamvuln.FieldID)
		for _, f := range fields {
			if !upstreamvuln.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != upstreamvuln.FieldID {
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
	if value, ok := _u.mutation.CommitSha(); ok {
		_spec.SetField(upstreamvuln.FieldCommitSha, field.TypeString, value)
	}
	if _u.mutation.CommitShaCleared() {
		_spec.ClearField(upstreamvuln.FieldCommitSha, field.TypeString)
	}
	if value, ok := _u.mutation.VulnType(); ok {
		_spec.SetField(upstreamvuln.FieldVulnType, field.TypeString, value)
	}
	if _u.mutation.VulnTypeCleared() {
		_spec.ClearField(upstreamvuln.FieldVulnType, field.TypeString)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(upstreamvuln.FieldSeverity, field.TypeEnum, value)
	}
	if _u.mutation.SeverityCleared() {
		_spec.ClearField(upstreamvuln.FieldSeverity, field.TypeEnum)
	}
	if value, ok := _u.mutation.AffectedVersions(); ok {
		_spec.SetField(upstreamvuln.FieldAffectedVersions, field.TypeString, value)
	}
	if _u.mutation.AffectedVersionsCleared() {
		_spec.ClearField(upstreamvuln.FieldAffectedVersions, field.TypeString)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(upstreamvuln.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(upstreamvuln.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.Reasoning(); ok {
		_spec.SetField(upstreamvuln.FieldReasoning, field.TypeString, value)
	}
	if _u.mutation.ReasoningCleared() {
		_spec.ClearField(upstreamvuln.FieldReasoning, field.TypeString)
	}
	if value, ok := _u.mutation.UpstreamPoc(); ok {
		_spec.SetField(upstreamvuln.FieldUpstreamPoc, field.TypeJSON, value)
	}
	if _u.mutation.UpstreamPocCleared() {
		_spec.ClearField(upstreamvuln.FieldUpstreamPoc, field.TypeJSON)
	}
	if value, ok := _u.mutation.AffectedFunctions(); ok {
		_spec.SetField(upstreamvuln.FieldAffectedFunctions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAffectedFunctions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, upstreamvuln.FieldAffectedFunctions, value)
		})
	}
	if _u.mutation.AffectedFunctionsCleared() {
		_spec.ClearField(upstreamvuln.FieldAffectedFunctions, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(upstreamvuln.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PublishedAt(); ok {
		_spec.SetField(upstreamvuln.FieldPublishedAt, field.TypeTime, value)
	}
	if _u.mutation.PublishedAtCleared() {
		_spec.ClearField(upstreamvuln.FieldPublishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(upstreamvuln.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(upstreamvuln.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(upstreamvuln.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.EventCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LibraryCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LibraryIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ClientVulnsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedClientVulnsIDs(); len(nodes) > 0 && !_u.mutation.ClientVulnsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClientVulnsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &UpstreamVuln{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{upstreamvuln.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
