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
	"github.com/vulnsentinel/vulnsentinel/ent/upstreamvuln"
)

// EventCreate is the builder for creating a Event entity.
type EventCreate struct {
	config
	mutation *EventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetLibraryID sets the "library_id" field.
func (_c *EventCreate) SetLibraryID(v string) *EventCreate {
	_c.mutation.SetLibraryID(v)
	return _c
}

// SetType sets the "type" field.
func (_c *EventCreate) SetType(v event.Type) *EventCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetRef sets the "ref" field.
func (_c *EventCreate) SetRef(v string) *EventCreate {
	_c.mutation.SetRef(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *EventCreate) SetTitle(v string) *EventCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetMessage sets the "message" field.
func (_c *EventCreate) SetMessage(v string) *EventCreate {
	_c.mutation.SetMessage(v)
	return _c
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_c *EventCreate) SetNillableMessage(v *string) *EventCreate {
	if v != nil {
		_c.SetMessage(*v)
	}
	return _c
}

// SetAuthor sets the "author" field.
func (_c *EventCreate) SetAuthor(v string) *EventCreate {
	_c.mutation.SetAuthor(v)
	return _c
}

// SetNillableAuthor sets the "author" field if the given value is not nil.
func (_c *EventCreate) SetNillableAuthor(v *string) *EventCreate {
	if v != nil {
		_c.SetAuthor(*v)
	}
	return _c
}

// SetRelatedIssueRef sets the "related_issue_ref" field.
func (_c *EventCreate) SetRelatedIssueRef(v string) *EventCreate {
	_c.mutation.SetRelatedIssueRef(v)
	return _c
}

// SetNillableRelatedIssueRef sets the "related_issue_ref" field if the given value is not nil.
func (_c *EventCreate) SetNillableRelatedIssueRef(v *string) *EventCreate {
	if v != nil {
		_c.SetRelatedIssueRef(*v)
	}
	return _c
}

// SetRelatedPrRef sets the "related_pr_ref" field.
func (_c *EventCreate) SetRelatedPrRef(v string) *EventCreate {
	_c.mutation.SetRelatedPrRef(v)
	return _c
}

// SetNillableRelatedPrRef sets the "related_pr_ref" field if the given value is not nil.
func (_c *EventCreate) SetNillableRelatedPrRef(v *string) *EventCreate {
	if v != nil {
		_c.SetRelatedPrRef(*v)
	}
	return _c
}

// SetRelatedCommitSha sets the "related_commit_sha" field.
func (_c *EventCreate) SetRelatedCommitSha(v string) *EventCreate {
	_c.mutation.SetRelatedCommitSha(v)
	return _c
}

// SetNillableRelatedCommitSha sets the "related_commit_sha" field if the given value is not nil.
func (_c *EventCreate) SetNillableRelatedCommitSha(v *string) *EventCreate {
	if v != nil {
		_c.SetRelatedCommitSha(*v)
	}
	return _c
}

// SetClassification sets the "classification" field.
func (_c *EventCreate) SetClassification(v event.Classification) *EventCreate {
	_c.mutation.SetClassification(v)
	return _c
}

// SetNillableClassification sets the "classification" field if the given value is not nil.
func (_c *EventCreate) SetNillableClassification(v *event.Classification) *EventCreate {
	if v != nil {
		_c.SetClassification(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *EventCreate) SetConfidence(v float64) *EventCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *EventCreate) SetNillableConfidence(v *float64) *EventCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetIsBugfix sets the "is_bugfix" field.
func (_c *EventCreate) SetIsBugfix(v bool) *EventCreate {
	_c.mutation.SetIsBugfix(v)
	return _c
}

// SetNillableIsBugfix sets the "is_bugfix" field if the given value is not nil.
func (_c *EventCreate) SetNillableIsBugfix(v *bool) *EventCreate {
	if v != nil {
		_c.SetIsBugfix(*v)
	}
	return _c
}

// SetOccurredAt sets the "occurred_at" field.
func (_c *EventCreate) SetOccurredAt(v time.Time) *EventCreate {
	_c.mutation.SetOccurredAt(v)
	return _c
}

// SetNillableOccurredAt sets the "occurred_at" field if the given value is not nil.
func (_c *EventCreate) SetNillableOccurredAt(v *time.Time) *EventCreate {
	if v != nil {
		_c.SetOccurredAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *EventCreate) SetCreatedAt(v time.Time) *EventCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EventCreate) SetNillableCreatedAt(v *time.Time) *EventCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *EventCreate) SetUpdatedAt(v time.Time) *EventCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *EventCreate) SetNillableUpdatedAt(v *time.Time) *EventCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EventCreate) SetID(v string) *EventCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *EventCreate) SetNillableID(v *string) *EventCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetLibrary sets the "library" edge to the Library entity.
func (_c *EventCreate) SetLibrary(v *Library) *EventCreate {
	return _c.SetLibraryID(v.ID)
}

// AddUpstreamVulnIDs adds the "upstream_vulns" edge to the UpstreamVuln entity by IDs.
func (_c *EventCreate) AddUpstreamVulnIDs(ids ...string) *EventCreate {
	_c.mutation.AddUpstreamVulnIDs(ids...)
	return _c
}

// AddUpstreamVulns adds the "upstream_vulns" edges to the UpstreamVuln entity.
func (_c *EventCreate) AddUpstreamVulns(v ...*UpstreamVuln) *EventCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddUpstreamVulnIDs(ids...)
}

// Mutation returns the EventMutation object of the builder.
func (_c *EventCreate) Mutation() *EventMutation {
	return _c.mutation
}

// Save creates the Event in the database.
func (_c *EventCreate) Save(ctx context.Context) (*Event, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EventCreate) SaveX(ctx context.Context) *Event {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EventCreate) defaults() {
	if _, ok := _c.mutation.IsBugfix(); !ok {
		v := event.DefaultIsBugfix
		_c.mutation.SetIsBugfix(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := event.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := event.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := event.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EventCreate) check() error {
	if _, ok := _c.mutation.LibraryID(); !ok {
		return &ValidationError{Name: "library_id", err: errors.New(`ent: missing required field "Event.library_id"`)}
	}
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`ent: missing required field "Event.type"`)}
	}
	if v, ok := _c.mutation.GetType(); ok {
		if err := event.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Event.type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Ref(); !ok {
		return &ValidationError{Name: "ref", err: errors.New(`ent: missing required field "Event.ref"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Event.title"`)}
	}
	if v, ok := _c.mutation.Classification(); ok {
		if err := event.ClassificationValidator(v); err != nil {
			return &ValidationError{Name: "classification", err: fmt.Errorf(`ent: validator failed for field "Event.classification": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsBugfix(); !ok {
		return &ValidationError{Name: "is_bugfix", err: errors.New(`ent: missing required field "Event.is_bugfix"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Event.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Event.updated_at"`)}
	}
	if len(_c.mutation.LibraryIDs()) == 0 {
		return &ValidationError{Name: "library", err: errors.New(`ent: missing required edge "Event.library"`)}
	}
	return nil
}

func (_c *EventCreate) sqlSave(ctx context.Context) (*Event, error) {
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
			return nil, fmt.Errorf("unexpected Event.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EventCreate) createSpec() (*Event, *sqlgraph.CreateSpec) {
	var (
		_node = &Event{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(event.Table, sqlgraph.NewFieldSpec(event.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(event.FieldType, field.TypeEnum, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.Ref(); ok {
		_spec.SetField(event.FieldRef, field.TypeString, value)
		_node.Ref = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(event.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Message(); ok {
		_spec.SetField(event.FieldMessage, field.TypeString, value)
		_node.Message = value
	}
	if value, ok := _c.mutation.Author(); ok {
		_spec.SetField(event.FieldAuthor, field.TypeString, value)
		_node.Author = value
	}
	if value, ok := _c.mutation.RelatedIssueRef(); ok {
		_spec.SetField(event.FieldRelatedIssueRef, field.TypeString, value)
		_node.RelatedIssueRef = &value
	}
	if value, ok := _c.mutation.RelatedPrRef(); ok {
		_spec.SetField(event.FieldRelatedPrRef, field.TypeString, value)
		_node.RelatedPrRef = &value
	}
	if value, ok := _c.mutation.RelatedCommitSha(); ok {
		_spec.SetField(event.FieldRelatedCommitSha, field.TypeString, value)
		_node.RelatedCommitSha = &value
	}
	if value, ok := _c.mutation.Classification(); ok {
		_spec.SetField(event.FieldClassification, field.TypeEnum, value)
		_node.Classification = &value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(event.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = &value
	}
	if value, ok := _c.mutation.IsBugfix(); ok {
		_spec.SetField(event.FieldIsBugfix, field.TypeBool, value)
		_node.IsBugfix = value
	}
	if value, ok := _c.mutation.OccurredAt(); ok {
		_spec.SetField(event.FieldOccurredAt, field.TypeTime, value)
		_node.OccurredAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(event.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(event.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.LibraryIDs(); len(nodes) > 0 {
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
		_node.LibraryID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.UpstreamVulnsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Event.Create().
//		SetLibraryID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EventUpsert) {
//			SetLibraryID(v+v).
//		}).
//		Exec(ctx)
func (_c *EventCreate) OnConflict(opts ...sql.ConflictOption) *EventUpsertOne {
	_c.conflict = opts
	return &EventUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Event.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EventCreate) OnConflictColumns(columns ...string) *EventUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EventUpsertOne{
		create: _c,
	}
}

type (
	// EventUpsertOne is the builder for "upsert"-ing
	//  one Event node.
	EventUpsertOne struct {
		create *EventCreate
	}

	// EventUpsert is the "OnConflict" setter.
	EventUpsert struct {
		*sql.UpdateSet
	}
)

// SetLibraryID sets the "library_id" field.
func (u *EventUpsert) SetLibraryID(v string) *EventUpsert {
	u.Set(event.FieldLibraryID, v)
	return u
}

// UpdateLibraryID sets the "library_id" field to the value that was provided on create.
func (u *EventUpsert) UpdateLibraryID() *EventUpsert {
	u.SetExcluded(event.FieldLibraryID)
	return u
}

// SetType sets the "type" field.
func (u *EventUpsert) SetType(v event.Type) *EventUpsert {
	u.Set(event.FieldType, v)
	return u
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *EventUpsert) UpdateType() *EventUpsert {
	u.SetExcluded(event.FieldType)
	return u
}

// SetRef sets the "ref" field.
func (u *EventUpsert) SetRef(v string) *EventUpsert {
	u.Set(event.FieldRef, v)
	return u
}

// UpdateRef sets the "ref" field to the value that was provided on create.
func (u *EventUpsert) UpdateRef() *EventUpsert {
	u.SetExcluded(event.FieldRef)
	return u
}

// SetTitle sets the "title" field.
func (u *EventUpsert) SetTitle(v string) *EventUpsert {
	u.Set(event.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *EventUpsert) UpdateTitle() *EventUpsert {
	u.SetExcluded(event.FieldTitle)
	return u
}

// SetMessage sets the "message" field.
func (u *EventUpsert) SetMessage(v string) *EventUpsert {
	u.Set(event.FieldMessage, v)
	return u
}

// UpdateMessage sets the "message" field to the value that was provided on create.
func (u *EventUpsert) UpdateMessage() *EventUpsert {
	u.SetExcluded(event.FieldMessage)
	return u
}

// ClearMessage clears the value of the "message" field.
func (u *EventUpsert) ClearMessage() *EventUpsert {
	u.SetNull(event.FieldMessage)
	return u
}

// SetAuthor sets the "author" field.
func (u *EventUpsert) SetAuthor(v string) *EventUpsert {
	u.Set(event.FieldAuthor, v)
	return u
}

// UpdateAuthor sets the "author" field to the value that was provided on create.
func (u *EventUpsert) UpdateAuthor() *EventUpsert {
	u.SetExcluded(event.FieldAuthor)
	return u
}

// ClearAuthor clears the value of the "author" field.
func (u *EventUpsert) ClearAuthor() *EventUpsert {
	u.SetNull(event.FieldAuthor)
	return u
}

// SetRelatedIssueRef sets the "related_issue_ref" field.
func (u *EventUpsert) SetRelatedIssueRef(v string) *EventUpsert {
	u.Set(event.FieldRelatedIssueRef, v)
	return u
}

// UpdateRelatedIssueRef sets the "related_issue_ref" field to the value that was provided on create.
func (u *EventUpsert) UpdateRelatedIssueRef() *EventUpsert {
	u.SetExcluded(event.FieldRelatedIssueRef)
	return u
}

// ClearRelatedIssueRef clears the value of the "related_issue_ref" field.
func (u *EventUpsert) ClearRelatedIssueRef() *EventUpsert {
	u.SetNull(event.FieldRelatedIssueRef)
	return u
}

// SetRelatedPrRef sets the "related_pr_ref" field.
func (u *EventUpsert) SetRelatedPrRef(v string) *EventUpsert {
	u.Set(event.FieldRelatedPrRef, v)
	return u
}

// UpdateRelatedPrRef sets the "related_pr_ref" field to the value that was provided on create.
func (u *EventUpsert) UpdateRelatedPrRef() *EventUpsert {
	u.SetExcluded(event.FieldRelatedPrRef)
	return u
}

// ClearRelatedPrRef clears the value of the "related_pr_ref" field.
func (u *EventUpsert) ClearRelatedPrRef() *EventUpsert {
	u.SetNull(event.FieldRelatedPrRef)
	return u
}

// SetRelatedCommitSha sets the "related_commit_sha" field.
func (u *EventUpsert) SetRelatedCommitSha(v string) *EventUpsert {
	u.Set(event.FieldRelatedCommitSha, v)
	return u
}

// UpdateRelatedCommitSha sets the "related_commit_sha" field to the value that was provided on create.
func (u *EventUpsert) UpdateRelatedCommitSha() *EventUpsert {
	u.SetExcluded(event.FieldRelatedCommitSha)
	return u
}

// ClearRelatedCommitSha clears the value of the "related_commit_sha" field.
func (u *EventUpsert) ClearRelatedCommitSha() *EventUpsert {
	u.SetNull(event.FieldRelatedCommitSha)
	return u
}

// SetClassification sets the "classification" field.
func (u *EventUpsert) SetClassification(v event.Classification) *EventUpsert {
	u.Set(event.FieldClassification, v)
	return u
}

// UpdateClassification sets the "classification" field to the value that was provided on create.
func (u *EventUpsert) UpdateClassification() *EventUpsert {
	u.SetExcluded(event.FieldClassification)
	return u
}

// ClearClassification clears the value of the "classification" field.
func (u *EventUpsert) ClearClassification() *EventUpsert {
	u.SetNull(event.FieldClassification)
	return u
}

// SetConfidence sets the "confidence" field.
func (u *EventUpsert) SetConfidence(v float64) *EventUpsert {
	u.Set(event.FieldConfidence, v)
	return u
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *EventUpsert) UpdateConfidence() *EventUpsert {
	u.SetExcluded(event.FieldConfidence)
	return u
}

// AddConfidence adds v to the "confidence" field.
func (u *EventUpsert) AddConfidence(v float64) *EventUpsert {
	u.Add(event.FieldConfidence, v)
	return u
}

// ClearConfidence clears the value of the "confidence" field.
func (u *EventUpsert) ClearConfidence() *EventUpsert {
	u.SetNull(event.FieldConfidence)
	return u
}

// SetIsBugfix sets the "is_bugfix" field.
func (u *EventUpsert) SetIsBugfix(v bool) *EventUpsert {
	u.Set(event.FieldIsBugfix, v)
	return u
}

// UpdateIsBugfix sets the "is_bugfix" field to the value that was provided on create.
func (u *EventUpsert) UpdateIsBugfix() *EventUpsert {
	u.SetExcluded(event.FieldIsBugfix)
	return u
}

// SetOccurredAt sets the "occurred_at" field.
func (u *EventUpsert) SetOccurredAt(v time.Time) *EventUpsert {
	u.Set(event.FieldOccurredAt, v)
	return u
}

// UpdateOccurredAt sets the "occurred_at" field to the value that was provided on create.
func (u *EventUpsert) UpdateOccurredAt() *EventUpsert {
	u.SetExcluded(event.FieldOccurredAt)
	return u
}

// ClearOccurredAt clears the value of the "occurred_at" field.
func (u *EventUpsert) ClearOccurredAt() *EventUpsert {
	u.SetNull(event.FieldOccurredAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *EventUpsert) SetUpdatedAt(v time.Time) *EventUpsert {
	u.Set(event.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *EventUpsert) UpdateUpdatedAt() *EventUpsert {
	u.SetExcluded(event.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Event.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(event.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EventUpsertOne) UpdateNewValues() *EventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(event.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(event.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Event.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *EventUpsertOne) Ignore() *EventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EventUpsertOne) DoNothing() *EventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EventCreate.OnConflict
// documentation for more info.
func (u *EventUpsertOne) Update(set func(*EventUpsert)) *EventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EventUpsert{UpdateSet: update})
	}))
	return u
}

// SetLibraryID sets the "library_id" field.
func (u *EventUpsertOne) SetLibraryID(v string) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetLibraryID(v)
	})
}

// UpdateLibraryID sets the "library_id" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateLibraryID() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateLibraryID()
	})
}

// SetType sets the "type" field.
func (u *EventUpsertOne) SetType(v event.Type) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetType(v)
	})
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateType() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateType()
	})
}

// SetRef sets the "ref" field.
func (u *EventUpsertOne) SetRef(v string) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetRef(v)
	})
}

// UpdateRef sets the "ref" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateRef() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateRef()
	})
}

// SetTitle sets the "title" field.
func (u *EventUpsertOne) SetTitle(v string) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateTitle() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateTitle()
	})
}

// SetMessage sets the "message" field.
func (u *EventUpsertOne) SetMessage(v string) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetMessage(v)
	})
}

// UpdateMessage sets the "message" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateMessage() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateMessage()
	})
}

// ClearMessage clears the value of the "message" field.
func (u *EventUpsertOne) ClearMessage() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.ClearMessage()
	})
}

// SetAuthor sets the "author" field.
func (u *EventUpsertOne) SetAuthor(v string) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetAuthor(v)
	})
}

// UpdateAuthor sets the "author" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateAuthor() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateAuthor()
	})
}

// ClearAuthor clears the value of the "author" field.
func (u *EventUpsertOne) ClearAuthor() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.ClearAuthor()
	})
}

// SetRelatedIssueRef sets the "related_issue_ref" field.
func (u *EventUpsertOne) SetRelatedIssueRef(v string) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetRelatedIssueRef(v)
	})
}

// UpdateRelatedIssueRef sets the "related_issue_ref" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateRelatedIssueRef() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateRelatedIssueRef()
	})
}

// ClearRelatedIssueRef clears the value of the "related_issue_ref" field.
func (u *EventUpsertOne) ClearRelatedIssueRef() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.ClearRelatedIssueRef()
	})
}

// SetRelatedPrRef sets the "related_pr_ref" field.
func (u *EventUpsertOne) SetRelatedPrRef(v string) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetRelatedPrRef(v)
	})
}

// UpdateRelatedPrRef sets the "related_pr_ref" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateRelatedPrRef() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateRelatedPrRef()
	})
}

// ClearRelatedPrRef clears the value of the "related_pr_ref" field.
func (u *EventUpsertOne) ClearRelatedPrRef() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.ClearRelatedPrRef()
	})
}

// SetRelatedCommitSha sets the "related_commit_sha" field.
func (u *EventUpsertOne) SetRelatedCommitSha(v string) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetRelatedCommitSha(v)
	})
}

// UpdateRelatedCommitSha sets the "related_commit_sha" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateRelatedCommitSha() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateRelatedCommitSha()
	})
}

// ClearRelatedCommitSha clears the value of the "related_commit_sha" field.
func (u *EventUpsertOne) ClearRelatedCommitSha() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.ClearRelatedCommitSha()
	})
}

// SetClassification sets the "classification" field.
func (u *EventUpsertOne) SetClassification(v event.Classification) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetClassification(v)
	})
}

// UpdateClassification sets the "classification" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateClassification() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateClassification()
	})
}

// ClearClassification clears the value of the "classification" field.
func (u *EventUpsertOne) ClearClassification() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.ClearClassification()
	})
}

// SetConfidence sets the "confidence" field.
func (u *EventUpsertOne) SetConfidence(v float64) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetConfidence(v)
	})
}

// AddConfidence adds v to the "confidence" field.
func (u *EventUpsertOne) AddConfidence(v float64) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.AddConfidence(v)
	})
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateConfidence() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateConfidence()
	})
}

// ClearConfidence clears the value of the "confidence" field.
func (u *EventUpsertOne) ClearConfidence() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.ClearConfidence()
	})
}

// SetIsBugfix sets the "is_bugfix" field.
func (u *EventUpsertOne) SetIsBugfix(v bool) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetIsBugfix(v)
	})
}

// UpdateIsBugfix sets the "is_bugfix" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateIsBugfix() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateIsBugfix()
	})
}

// SetOccurredAt sets the "occurred_at" field.
func (u *EventUpsertOne) SetOccurredAt(v time.Time) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetOccurredAt(v)
	})
}

// UpdateOccurredAt sets the "occurred_at" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateOccurredAt() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateOccurredAt()
	})
}

// ClearOccurredAt clears the value of the "occurred_at" field.
func (u *EventUpsertOne) ClearOccurredAt() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.ClearOccurredAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *EventUpsertOne) SetUpdatedAt(v time.Time) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateUpdatedAt() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *EventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *EventUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: EventUpsertOne.ID is not supported by MySQL driver. Use EventUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *EventUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// EventCreateBulk is the builder for creating many Event entities in bulk.
type EventCreateBulk struct {
	config
	err      error
	builders []*EventCreate
	conflict []sql.ConflictOption
}

// Save creates the Event entities in the database.
func (_c *EventCreateBulk) Save(ctx context.Context) ([]*Event, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Event, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EventMutation)
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
func (_c *EventCreateBulk) SaveX(ctx context.Context) []*Event {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Event.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EventUpsert) {
//			SetLibraryID(v+v).
//		}).
//		Exec(ctx)
func (_c *EventCreateBulk) OnConflict(opts ...sql.ConflictOption) *EventUpsertBulk {
	_c.conflict = opts
	return &EventUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Event.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EventCreateBulk) OnConflictColumns(columns ...string) *EventUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EventUpsertBulk{
		create: _c,
	}
}

// EventUpsertBulk is the builder for "upsert"-ing
// a bulk of Event nodes.
type EventUpsertBulk struct {
	create *EventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Event.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(event.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EventUpsertBulk) UpdateNewValues() *EventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(event.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(event.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Event.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *EventUpsertBulk) Ignore() *EventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EventUpsertBulk) DoNothing() *EventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EventCreateBulk.OnConflict
// documentation for more info.
func (u *EventUpsertBulk) Update(set func(*EventUpsert)) *EventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EventUpsert{UpdateSet: update})
	}))
	return u
}

// SetLibraryID sets the "library_id" field.
func (u *EventUpsertBulk) SetLibraryID(v string) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetLibraryID(v)
	})
}

// UpdateLibraryID sets the "library_id" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateLibraryID() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateLibraryID()
	})
}

// SetType sets the "type" field.
func (u *EventUpsertBulk) SetType(v event.Type) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetType(v)
	})
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateType() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateType()
	})
}

// SetRef sets the "ref" field.
func (u *EventUpsertBulk) SetRef(v string) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetRef(v)
	})
}

// UpdateRef sets the "ref" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateRef() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateRef()
	})
}

// SetTitle sets the "title" field.
func (u *EventUpsertBulk) SetTitle(v string) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateTitle() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateTitle()
	})
}

// SetMessage sets the "message" field.
func (u *EventUpsertBulk) SetMessage(v string) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetMessage(v)
	})
}

// UpdateMessage sets the "message" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateMessage() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateMessage()
	})
}

// ClearMessage clears the value of the "message" field.
func (u *EventUpsertBulk) ClearMessage() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.ClearMessage()
	})
}

// SetAuthor sets the "author" field.
func (u *EventUpsertBulk) SetAuthor(v string) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetAuthor(v)
	})
}

// UpdateAuthor sets the "author" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateAuthor() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateAuthor()
	})
}

// ClearAuthor clears the value of the "author" field.
func (u *EventUpsertBulk) ClearAuthor() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.ClearAuthor()
	})
}

// SetRelatedIssueRef sets the "related_issue_ref" field.
func (u *EventUpsertBulk) SetRelatedIssueRef(v string) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetRelatedIssueRef(v)
	})
}

// UpdateRelatedIssueRef sets the "related_issue_ref" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateRelatedIssueRef() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateRelatedIssueRef()
	})
}

// ClearRelatedIssueRef clears the value of the "related_issue_ref" field.
func (u *EventUpsertBulk) ClearRelatedIssueRef() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.ClearRelatedIssueRef()
	})
}

// SetRelatedPrRef sets the "related_pr_ref" field.
func (u *EventUpsertBulk) SetRelatedPrRef(v string) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetRelatedPrRef(v)
	})
}

// UpdateRelatedPrRef sets the "related_pr_ref" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateRelatedPrRef() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateRelatedPrRef()
	})
}

// ClearRelatedPrRef clears the value of the "related_pr_ref" field.
func (u *EventUpsertBulk) ClearRelatedPrRef() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.ClearRelatedPrRef()
	})
}

// SetRelatedCommitSha sets the "related_commit_sha" field.
func (u *EventUpsertBulk) SetRelatedCommitSha(v string) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetRelatedCommitSha(v)
	})
}

// UpdateRelatedCommitSha sets the "related_commit_sha" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateRelatedCommitSha() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateRelatedCommitSha()
	})
}

// ClearRelatedCommitSha clears the value of the "related_commit_sha" field.
func (u *EventUpsertBulk) ClearRelatedCommitSha() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.ClearRelatedCommitSha()
	})
}

// SetClassification sets the "classification" field.
func (u *EventUpsertBulk) SetClassification(v event.Classification) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetClassification(v)
	})
}

// UpdateClassification sets the "classification" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateClassification() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateClassification()
	})
}

// ClearClassification clears the value of the "classification" field.
func (u *EventUpsertBulk) ClearClassification() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.ClearClassification()
	})
}

// SetConfidence sets the "confidence" field.
func (u *EventUpsertBulk) SetConfidence(v float64) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetConfidence(v)
	})
}

// AddConfidence adds v to the "confidence" field.
func (u *EventUpsertBulk) AddConfidence(v float64) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.AddConfidence(v)
	})
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateConfidence() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateConfidence()
	})
}

// ClearConfidence clears the value of the "confidence" field.
func (u *EventUpsertBulk) ClearConfidence() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.ClearConfidence()
	})
}

// SetIsBugfix sets the "is_bugfix" field.
func (u *EventUpsertBulk) SetIsBugfix(v bool) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetIsBugfix(v)
	})
}

// UpdateIsBugfix sets the "is_bugfix" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateIsBugfix() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateIsBugfix()
	})
}

// SetOccurredAt sets the "occurred_at" field.
func (u *EventUpsertBulk) SetOccurredAt(v time.Time) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetOccurredAt(v)
	})
}

// UpdateOccurredAt sets the "occurred_at" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateOccurredAt() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateOccurredAt()
	})
}

// ClearOccurredAt clears the value of the "occurred_at" field.
func (u *EventUpsertBulk) ClearOccurredAt() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.ClearOccurredAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *EventUpsertBulk) SetUpdatedAt(v time.Time) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateUpdatedAt() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *EventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the EventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
