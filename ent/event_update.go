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
	"github.com/vulnsentinel/vulnsentinel/ent/upstreamvuln"
)

// EventUpdate is the builder for updating Event entities.
type EventUpdate struct {
	config
	hooks    []Hook
	mutation *EventMutation
}

// Where appends a list predicates to the EventUpdate builder.
func (_u *EventUpdate) Where(ps ...predicate.Event) *EventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLibraryID sets the "library_id" field.
func (_u *EventUpdate) SetLibraryID(v string) *EventUpdate {
	_u.mutation.SetLibraryID(v)
	return _u
}

// SetNillableLibraryID sets the "library_id" field if the given value is not nil.
func (_u *EventUpdate) SetNillableLibraryID(v *string) *EventUpdate {
	if v != nil {
		_u.SetLibraryID(*v)
	}
	return _u
}

// SetType sets the "type" field.
func (_u *EventUpdate) SetType(v event.Type) *EventUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *EventUpdate) SetNillableType(v *event.Type) *EventUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetRef sets the "ref" field.
func (_u *EventUpdate) SetRef(v string) *EventUpdate {
	_u.mutation.SetRef(v)
	return _u
}

// SetNillableRef sets the "ref" field if the given value is not nil.
func (_u *EventUpdate) SetNillableRef(v *string) *EventUpdate {
	if v != nil {
		_u.SetRef(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *EventUpdate) SetTitle(v string) *EventUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *EventUpdate) SetNillableTitle(v *string) *EventUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *EventUpdate) SetMessage(v string) *EventUpdate {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *EventUpdate) SetNillableMessage(v *string) *EventUpdate {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// ClearMessage clears the value of the "message" field.
func (_u *EventUpdate) ClearMessage() *EventUpdate {
	_u.mutation.ClearMessage()
	return _u
}

// SetAuthor sets the "author" field.
func (_u *EventUpdate) SetAuthor(v string) *EventUpdate {
	_u.mutation.SetAuthor(v)
	return _u
}

// SetNillableAuthor sets the "author" field if the given value is not nil.
func (_u *EventUpdate) SetNillableAuthor(v *string) *EventUpdate {
	if v != nil {
		_u.SetAuthor(*v)
	}
	return _u
}

// ClearAuthor clears the value of the "author" field.
func (_u *EventUpdate) ClearAuthor() *EventUpdate {
	_u.mutation.ClearAuthor()
	return _u
}

// SetRelatedIssueRef sets the "related_issue_ref" field.
func (_u *EventUpdate) SetRelatedIssueRef(v string) *EventUpdate {
	_u.mutation.SetRelatedIssueRef(v)
	return _u
}

// SetNillableRelatedIssueRef sets the "related_issue_ref" field if the given value is not nil.
func (_u *EventUpdate) SetNillableRelatedIssueRef(v *string) *EventUpdate {
	if v != nil {
		_u.SetRelatedIssueRef(*v)
	}
	return _u
}

// ClearRelatedIssueRef clears the value of the "related_issue_ref" field.
func (_u *EventUpdate) ClearRelatedIssueRef() *EventUpdate {
	_u.mutation.ClearRelatedIssueRef()
	return _u
}

// SetRelatedPrRef sets the "related_pr_ref" field.
func (_u *EventUpdate) SetRelatedPrRef(v string) *EventUpdate {
	_u.mutation.SetRelatedPrRef(v)
	return _u
}

// SetNillableRelatedPrRef sets the "related_pr_ref" field if the given value is not nil.
func (_u *EventUpdate) SetNillableRelatedPrRef(v *string) *EventUpdate {
	if v != nil {
		_u.SetRelatedPrRef(*v)
	}
	return _u
}

// ClearRelatedPrRef clears the value of the "related_pr_ref" field.
func (_u *EventUpdate) ClearRelatedPrRef() *EventUpdate {
	_u.mutation.ClearRelatedPrRef()
	return _u
}

// SetRelatedCommitSha sets the "related_commit_sha" field.
func (_u *EventUpdate) SetRelatedCommitSha(v string) *EventUpdate {
	_u.mutation.SetRelatedCommitSha(v)
	return _u
}

// SetNillableRelatedCommitSha sets the "related_commit_sha" field if the given value is not nil.
func (_u *EventUpdate) SetNillableRelatedCommitSha(v *string) *EventUpdate {
	if v != nil {
		_u.SetRelatedCommitSha(*v)
	}
	return _u
}

// ClearRelatedCommitSha clears the value of the "related_commit_sha" field.
func (_u *EventUpdate) ClearRelatedCommitSha() *EventUpdate {
	_u.mutation.ClearRelatedCommitSha()
	return _u
}

// SetClassification sets the "classification" field.
func (_u *EventUpdate) SetClassification(v event.Classification) *EventUpdate {
	_u.mutation.SetClassification(v)
	return _u
}

// SetNillableClassification sets the "classification" field if the given value is not nil.
func (_u *EventUpdate) SetNillableClassification(v *event.Classification) *EventUpdate {
	if v != nil {
		_u.SetClassification(*v)
	}
	return _u
}

// ClearClassification clears the value of the "classification" field.
func (_u *EventUpdate) ClearClassification() *EventUpdate {
	_u.mutation.ClearClassification()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *EventUpdate) SetConfidence(v float64) *EventUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *EventUpdate) SetNillableConfidence(v *float64) *EventUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *EventUpdate) AddConfidence(v float64) *EventUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *EventUpdate) ClearConfidence() *EventUpdate {
	_u.mutation.ClearConfidence()
	return _u
}

// SetIsBugfix sets the "is_bugfix" field.
func (_u *EventUpdate) SetIsBugfix(v bool) *EventUpdate {
	_u.mutation.SetIsBugfix(v)
	return _u
}

// SetNillableIsBugfix sets the "is_bugfix" field if the given value is not nil.
func (_u *EventUpdate) SetNillableIsBugfix(v *bool) *EventUpdate {
	if v != nil {
		_u.SetIsBugfix(*v)
	}
	return _u
}

// SetOccurredAt sets the "occurred_at" field.
func (_u *EventUpdate) SetOccurredAt(v time.Time) *EventUpdate {
	_u.mutation.SetOccurredAt(v)
	return _u
}

// SetNillableOccurredAt sets the "occurred_at" field if the given value is not nil.
func (_u *EventUpdate) SetNillableOccurredAt(v *time.Time) *EventUpdate {
	if v != nil {
		_u.SetOccurredAt(*v)
	}
	return _u
}

// ClearOccurredAt clears the value of the "occurred_at" field.
func (_u *EventUpdate) ClearOccurredAt() *EventUpdate {
	_u.mutation.ClearOccurredAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EventUpdate) SetUpdatedAt(v time.Time) *EventUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetLibrary sets the "library" edge to the Library entity.
func (_u *EventUpdate) SetLibrary(v *Library) *EventUpdate {
	return _u.SetLibraryID(v.ID)
}

// AddUpstreamVulnIDs adds the "upstream_vulns" edge to the UpstreamVuln entity by IDs.
func (_u *EventUpdate) AddUpstreamVulnIDs(ids ...string) *EventUpdate {
	_u.mutation.AddUpstreamVulnIDs(ids...)
	return _u
}

// AddUpstreamVulns adds the "upstream_vulns" edges to the UpstreamVuln entity.
func (_u *EventUpdate) AddUpstreamVulns(v ...*UpstreamVuln) *EventUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddUpstreamVulnIDs(ids...)
}

// Mutation returns the EventMutation object of the builder.
func (_u *EventUpdate) Mutation() *EventMutation {
	return _u.mutation
}

// ClearLibrary clears the "library" edge to the Library entity.
func (_u *EventUpdate) ClearLibrary() *EventUpdate {
	_u.mutation.ClearLibrary()
	return _u
}

// ClearUpstreamVulns clears all "upstream_vulns" edges to the UpstreamVuln entity.
func (_u *EventUpdate) ClearUpstreamVulns() *EventUpdate {
	_u.mutation.ClearUpstreamVulns()
	return _u
}

// RemoveUpstreamVulnIDs removes the "upstream_vulns" edge to UpstreamVuln entities by IDs.
func (_u *EventUpdate) RemoveUpstreamVulnIDs(ids ...string) *EventUpdate {
	_u.mutation.RemoveUpstreamVulnIDs(ids...)
	return _u
}

// RemoveUpstreamVulns removes "upstream_vulns" edges to UpstreamVuln entities.
func (_u *EventUpdate) RemoveUpstreamVulns(v ...*UpstreamVuln) *EventUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveUpstreamVulnIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EventUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EventUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := event.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EventUpdate) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := event.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Event.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Classification(); ok {
		if err := event.ClassificationValidator(v); err != nil {
			return &ValidationError{Name: "classification", err: fmt.Errorf(`ent: validator failed for field "Event.classification": %w`, err)}
		}
	}
	if _u.mutation.LibraryCleared() && len(_u.mutation.LibraryIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Event.library"`)
	}
	return nil
}

func (_u *EventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(event.Table, event.Columns, sqlgraph.NewFieldSpec(event.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(event.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Ref(); ok {
		_spec.SetField(event.FieldRef, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(event.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(event.FieldMessage, field.TypeString, value)
	}
	if _u.mutation.MessageCleared() {
		_spec.ClearField(event.FieldMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Author(); ok {
		_spec.SetField(event.FieldAuthor, field.TypeString, value)
	}
	if _u.mutation.AuthorCleared() {
		_spec.ClearField(event.FieldAuthor, field.TypeString)
	}
	if value, ok := _u.mutation.RelatedIssueRef(); ok {
		_spec.SetField(event.FieldRelatedIssueRef, field.TypeString, value)
	}
	if _u.mutation.RelatedIssueRefCleared() {
		_spec.ClearField(event.FieldRelatedIssueRef, field.TypeString)
	}
	if value, ok := _u.mutation.RelatedPrRef(); ok {
		_spec.SetField(event.FieldRelatedPrRef, field.TypeString, value)
	}
	if _u.mutation.RelatedPrRefCleared() {
		_spec.ClearField(event.FieldRelatedPrRef, field.TypeString)
	}
	if value, ok := _u.mutation.RelatedCommitSha(); ok {
		_spec.SetField(event.FieldRelatedCommitSha, field.TypeString, value)
	}
	if _u.mutation.RelatedCommitShaCleared() {
		_spec.ClearField(event.FieldRelatedCommitSha, field.TypeString)
	}
	if value, ok := _u.mutation.Classification(); ok {
		_spec.SetField(event.FieldClassification, field.TypeEnum, value)
	}
	if _u.mutation.ClassificationCleared() {
		_spec.ClearField(event.FieldClassification, field.TypeEnum)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(event.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(event.FieldConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(event.FieldConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.IsBugfix(); ok {
		_spec.SetField(event.FieldIsBugfix, field.TypeBool, value)
	}
	if value, ok := _u.mutation.OccurredAt(); ok {
		_spec.SetField(event.FieldOccurredAt, field.TypeTime, value)
	}
	if _u.mutation.OccurredAtCleared() {
		_spec.ClearField(event.FieldOccurredAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(event.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.LibraryCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   event.LibraryTable,
			Columns: []string{event.LibraryColumn},
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
			Table:   event.LibraryTable,
			Columns: []string{event.LibraryColumn},
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
	if _u.mutation.UpstreamVulnsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   event.UpstreamVulnsTable,
			Columns: []string{event.UpstreamVulnsColumn},
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
			Table:   event.UpstreamVulnsTable,
			Columns: []string{event.UpstreamVulnsColumn},
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
			Table:   event.UpstreamVulnsTable,
			Columns: []string{event.UpstreamVulnsColumn},
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
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{event.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EventUpdateOne is the builder for updating a single Event entity.
type EventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EventMutation
}

// SetLibraryID sets the "library_id" field.
func (_u *EventUpdateOne) SetLibraryID(v string) *EventUpdateOne {
	_u.mutation.SetLibraryID(v)
	return _u
}

// SetNillableLibraryID sets the "library_id" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableLibraryID(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetLibraryID(*v)
	}
	return _u
}

// SetType sets the "type" field.
func (_u *EventUpdateOne) SetType(v event.Type) *EventUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableType(v *event.Type) *EventUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetRef sets the "ref" field.
func (_u *EventUpdateOne) SetRef(v string) *EventUpdateOne {
	_u.mutation.SetRef(v)
	return _u
}

// SetNillableRef sets the "ref" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableRef(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetRef(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *EventUpdateOne) SetTitle(v string) *EventUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableTitle(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *EventUpdateOne) SetMessage(v string) *EventUpdateOne {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableMessage(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// ClearMessage clears the value of the "message" field.
func (_u *EventUpdateOne) ClearMessage() *EventUpdateOne {
	_u.mutation.ClearMessage()
	return _u
}

// SetAuthor sets the "author" field.
func (_u *EventUpdateOne) SetAuthor(v string) *EventUpdateOne {
	_u.mutation.SetAuthor(v)
	return _u
}

// SetNillableAuthor sets the "author" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableAuthor(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetAuthor(*v)
	}
	return _u
}

// ClearAuthor clears the value of the "author" field.
func (_u *EventUpdateOne) ClearAuthor() *EventUpdateOne {
	_u.mutation.ClearAuthor()
	return _u
}

// SetRelatedIssueRef sets the "related_issue_ref" field.
func (_u *EventUpdateOne) SetRelatedIssueRef(v string) *EventUpdateOne {
	_u.mutation.SetRelatedIssueRef(v)
	return _u
}

// SetNillableRelatedIssueRef sets the "related_issue_ref" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableRelatedIssueRef(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetRelatedIssueRef(*v)
	}
	return _u
}

// ClearRelatedIssueRef clears the value of the "related_issue_ref" field.
func (_u *EventUpdateOne) ClearRelatedIssueRef() *EventUpdateOne {
	_u.mutation.ClearRelatedIssueRef()
	return _u
}

// SetRelatedPrRef sets the "related_pr_ref" field.
func (_u *EventUpdateOne) SetRelatedPrRef(v string) *EventUpdateOne {
	_u.mutation.SetRelatedPrRef(v)
	return _u
}

// SetNillableRelatedPrRef sets the "related_pr_ref" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableRelatedPrRef(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetRelatedPrRef(*v)
	}
	return _u
}

// ClearRelatedPrRef clears the value of the "related_pr_ref" field.
func (_u *EventUpdateOne) ClearRelatedPrRef() *EventUpdateOne {
	_u.mutation.ClearRelatedPrRef()
	return _u
}

// SetRelatedCommitSha sets the "related_commit_sha" field.
func (_u *EventUpdateOne) SetRelatedCommitSha(v string) *EventUpdateOne {
	_u.mutation.SetRelatedCommitSha(v)
	return _u
}

// SetNillableRelatedCommitSha sets the "related_commit_sha" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableRelatedCommitSha(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetRelatedCommitSha(*v)
	}
	return _u
}

// ClearRelatedCommitSha clears the value of the "related_commit_sha" field.
func (_u *EventUpdateOne) ClearRelatedCommitSha() *EventUpdateOne {
	_u.mutation.ClearRelatedCommitSha()
	return _u
}

// SetClassification sets the "classification" field.
func (_u *EventUpdateOne) SetClassification(v event.Classification) *EventUpdateOne {
	_u.mutation.SetClassification(v)
	return _u
}

// SetNillableClassification sets the "classification" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableClassification(v *event.Classification) *EventUpdateOne {
	if v != nil {
		_u.SetClassification(*v)
	}
	return _u
}

// ClearClassification clears the value of the "classification" field.
func (_u *EventUpdateOne) ClearClassification() *EventUpdateOne {
	_u.mutation.ClearClassification()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *EventUpdateOne) SetConfidence(v float64) *EventUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableConfidence(v *float64) *EventUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *EventUpdateOne) AddConfidence(v float64) *EventUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *EventUpdateOne) ClearConfidence() *EventUpdateOne {
	_u.mutation.ClearConfidence()
	return _u
}

// SetIsBugfix sets the "is_bugfix" field.
func (_u *EventUpdateOne) SetIsBugfix(v bool) *EventUpdateOne {
	_u.mutation.SetIsBugfix(v)
	return _u
}

// SetNillableIsBugfix sets the "is_bugfix" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableIsBugfix(v *bool) *EventUpdateOne {
	if v != nil {
		_u.SetIsBugfix(*v)
	}
	return _u
}

// SetOccurredAt sets the "occurred_at" field.
func (_u *EventUpdateOne) SetOccurredAt(v time.Time) *EventUpdateOne {
	_u.mutation.SetOccurredAt(v)
	return _u
}

// SetNillableOccurredAt sets the "occurred_at" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableOccurredAt(v *time.Time) *EventUpdateOne {
	if v != nil {
		_u.SetOccurredAt(*v)
	}
	return _u
}

// ClearOccurredAt clears the value of the "occurred_at" field.
func (_u *EventUpdateOne) ClearOccurredAt() *EventUpdateOne {
	_u.mutation.ClearOccurredAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EventUpdateOne) SetUpdatedAt(v time.Time) *EventUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetLibrary sets the "library" edge to the Library entity.
func (_u *EventUpdateOne) SetLibrary(v *Library) *EventUpdateOne {
	return _u.SetLibraryID(v.ID)
}

// AddUpstreamVulnIDs adds the "upstream_vulns" edge to the UpstreamVuln entity by IDs.
func (_u *EventUpdateOne) AddUpstreamVulnIDs(ids ...string) *EventUpdateOne {
	_u.mutation.AddUpstreamVulnIDs(ids...)
	return _u
}

// AddUpstreamVulns adds the "upstream_vulns" edges to the UpstreamVuln entity.
func (_u *EventUpdateOne) AddUpstreamVulns(v ...*UpstreamVuln) *EventUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddUpstreamVulnIDs(ids...)
}

// Mutation returns the EventMutation object of the builder.
func (_u *EventUpdateOne) Mutation() *EventMutation {
	return _u.mutation
}

// ClearLibrary clears the "library" edge to the Library entity.
func (_u *EventUpdateOne) ClearLibrary() *EventUpdateOne {
	_u.mutation.ClearLibrary()
	return _u
}

// ClearUpstreamVulns clears all "upstream_vulns" edges to the UpstreamVuln entity.
func (_u *EventUpdateOne) ClearUpstreamVulns() *EventUpdateOne {
	_u.mutation.ClearUpstreamVulns()
	return _u
}

// RemoveUpstreamVulnIDs removes the "upstream_vulns" edge to UpstreamVuln entities by IDs.
func (_u *EventUpdateOne) RemoveUpstreamVulnIDs(ids ...string) *EventUpdateOne {
	_u.mutation.RemoveUpstreamVulnIDs(ids...)
	return _u
}

// RemoveUpstreamVulns removes "upstream_vulns" edges to UpstreamVuln entities.
func (_u *EventUpdateOne) RemoveUpstreamVulns(v ...*UpstreamVuln) *EventUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveUpstreamVulnIDs(ids...)
}

// Where appends a list predicates to the EventUpdate builder.
func (_u *EventUpdateOne) Where(ps ...predicate.Event) *EventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EventUpdateOne) Select(field string, fields ...string) *EventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Event entity.
func (_u *EventUpdateOne) Save(ctx context.Context) (*Event, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EventUpdateOne) SaveX(ctx context.Context) *Event {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EventUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := event.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EventUpdateOne) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := event.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Event.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Classification(); ok {
		if err := event.ClassificationValidator(v); err != nil {
			return &ValidationError{Name: "classification", err: fmt.Errorf(`ent: validator failed for field "Event.classification": %w`, err)}
		}
	}
	if _u.mutation.LibraryCleared() && len(_u.mutation.LibraryIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Event.library"`)
	}
	return nil
}

func (_u *EventUpdateOne) sqlSave(ctx context.Context) (_node *Event, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(event.Table, event.Columns, sqlgraph.NewFieldSpec(event.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Event.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, event.FieldID)
		for _, f := range fields {
			if !event.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != event.FieldID {
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
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(event.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Ref(); ok {
		_spec.SetField(event.FieldRef, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(event.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(event.FieldMessage, field.TypeString, value)
	}
	if _u.mutation.MessageCleared() {
		_spec.ClearField(event.FieldMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Author(); ok {
		_spec.SetField(event.FieldAuthor, field.TypeString, value)
	}
	if _u.mutation.AuthorCleared() {
		_spec.ClearField(event.FieldAuthor, field.TypeString)
	}
	if value, ok := _u.mutation.RelatedIssueRef(); ok {
		_spec.SetField(event.FieldRelatedIssueRef, field.TypeString, value)
	}
	if _u.mutation.RelatedIssueRefCleared() {
		_spec.ClearField(event.FieldRelatedIssueRef, field.TypeString)
	}
	if value, ok := _u.mutation.RelatedPrRef(); ok {
		_spec.SetField(event.FieldRelatedPrRef, field.TypeString, value)
	}
	if _u.mutation.RelatedPrRefCleared() {
		_spec.ClearField(event.FieldRelatedPrRef, field.TypeString)
	}
	if value, ok := _u.mutation.RelatedCommitSha(); ok {
		_spec.SetField(event.FieldRelatedCommitSha, field.TypeString, value)
	}
	if _u.mutation.RelatedCommitShaCleared() {
		_spec.ClearField(event.FieldRelatedCommitSha, field.TypeString)
	}
	if value, ok := _u.mutation.Classification(); ok {
		_spec.SetField(event.FieldClassification, field.TypeEnum, value)
	}
	if _u.mutation.ClassificationCleared() {
		_spec.ClearField(event.FieldClassification, field.TypeEnum)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(event.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(event.FieldConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(event.FieldConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.IsBugfix(); ok {
		_spec.SetField(event.FieldIsBugfix, field.TypeBool, value)
	}
	if value, ok := _u.mutation.OccurredAt(); ok {
		_spec.SetField(event.FieldOccurredAt, field.TypeTime, value)
	}
	if _u.mutation.OccurredAtCleared() {
		_spec.ClearField(event.FieldOccurredAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(event.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.LibraryCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   event.LibraryTable,
			Columns: []string{event.LibraryColumn},
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
			Table:   event.LibraryTable,
			Columns: []string{event.LibraryColumn},
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
	if _u.mutation.UpstreamVulnsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   event.UpstreamVulnsTable,
			Columns: []string{event.UpstreamVulnsColumn},
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
			Table:   event.UpstreamVulnsTable,
			Columns: []string{event.UpstreamVulnsColumn},
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
			Table:   event.UpstreamVulnsTable,
			Columns: []string{event.UpstreamVulnsColumn},
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
	_node = &Event{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{event.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
