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
	"github.com/vulnsentinel/vulnsentinel/ent/upstreamvuln"
)

// ClientVulnCreate is the builder for creating a ClientVuln entity.
type ClientVulnCreate struct {
	config
	mutation *ClientVulnMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUpstreamVulnID sets the "upstream_vuln_id" field.
func (_c *ClientVulnCreate) SetUpstreamVulnID(v string) *ClientVulnCreate {
	_c.mutation.SetUpstreamVulnID(v)
	return _c
}

// SetProjectID sets the "project_id" field.
func (_c *ClientVulnCreate) SetProjectID(v string) *ClientVulnCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetPipelineStatus sets the "pipeline_status" field.
func (_c *ClientVulnCreate) SetPipelineStatus(v clientvuln.PipelineStatus) *ClientVulnCreate {
	_c.mutation.SetPipelineStatus(v)
	return _c
}

// SetNillablePipelineStatus sets the "pipeline_status" field if the given value is not nil.
func (_c *ClientVulnCreate) SetNillablePipelineStatus(v *clientvuln.PipelineStatus) *ClientVulnCreate {
	if v != nil {
		_c.SetPipelineStatus(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ClientVulnCreate) SetStatus(v clientvuln.Status) *ClientVulnCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ClientVulnCreate) SetNillableStatus(v *clientvuln.Status) *ClientVulnCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetIsAffected sets the "is_affected" field.
func (_c *ClientVulnCreate) SetIsAffected(v bool) *ClientVulnCreate {
	_c.mutation.SetIsAffected(v)
	return _c
}

// SetNillableIsAffected sets the "is_affected" field if the given value is not nil.
func (_c *ClientVulnCreate) SetNillableIsAffected(v *bool) *ClientVulnCreate {
	if v != nil {
		_c.SetIsAffected(*v)
	}
	return _c
}

// SetConstraintExpr sets the "constraint_expr" field.
func (_c *ClientVulnCreate) SetConstraintExpr(v string) *ClientVulnCreate {
	_c.mutation.SetConstraintExpr(v)
	return _c
}

// SetNillableConstraintExpr sets the "constraint_expr" field if the given value is not nil.
func (_c *ClientVulnCreate) SetNillableConstraintExpr(v *string) *ClientVulnCreate {
	if v != nil {
		_c.SetConstraintExpr(*v)
	}
	return _c
}

// SetConstraintSource sets the "constraint_source" field.
func (_c *ClientVulnCreate) SetConstraintSource(v string) *ClientVulnCreate {
	_c.mutation.SetConstraintSource(v)
	return _c
}

// SetNillableConstraintSource sets the "constraint_source" field if the given value is not nil.
func (_c *ClientVulnCreate) SetNillableConstraintSource(v *string) *ClientVulnCreate {
	if v != nil {
		_c.SetConstraintSource(*v)
	}
	return _c
}

// SetResolvedVersion sets the "resolved_version" field.
func (_c *ClientVulnCreate) SetResolvedVersion(v string) *ClientVulnCreate {
	_c.mutation.SetResolvedVersion(v)
	return _c
}

// SetNillableResolvedVersion sets the "resolved_version" field if the given value is not nil.
func (_c *ClientVulnCreate) SetNillableResolvedVersion(v *string) *ClientVulnCreate {
	if v != nil {
		_c.SetResolvedVersion(*v)
	}
	return _c
}

// SetReachablePath sets the "reachable_path" field.
func (_c *ClientVulnCreate) SetReachablePath(v map[string]interface{}) *ClientVulnCreate {
	_c.mutation.SetReachablePath(v)
	return _c
}

// SetPocResults sets the "poc_results" field.
func (_c *ClientVulnCreate) SetPocResults(v map[string]interface{}) *ClientVulnCreate {
	_c.mutation.SetPocResults(v)
	return _c
}

// SetReport sets the "report" field.
func (_c *ClientVulnCreate) SetReport(v map[string]interface{}) *ClientVulnCreate {
	_c.mutation.SetReport(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *ClientVulnCreate) SetErrorMessage(v string) *ClientVulnCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *ClientVulnCreate) SetNillableErrorMessage(v *string) *ClientVulnCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetAnalysisCompletedAt sets the "analysis_completed_at" field.
func (_c *ClientVulnCreate) SetAnalysisCompletedAt(v time.Time) *ClientVulnCreate {
	_c.mutation.SetAnalysisCompletedAt(v)
	return _c
}

// SetNillableAnalysisCompletedAt sets the "analysis_completed_at" field if the given value is not nil.
func (_c *ClientVulnCreate) SetNillableAnalysisCompletedAt(v *time.Time) *ClientVulnCreate {
	if v != nil {
		_c.SetAnalysisCompletedAt(*v)
	}
	return _c
}

// SetRecordedAt sets the "recorded_at" field.
func (_c *ClientVulnCreate) SetRecordedAt(v time.Time) *ClientVulnCreate {
	_c.mutation.SetRecordedAt(v)
	return _c
}

// SetNillableRecordedAt sets the "recorded_at" field if the given value is not nil.
func (_c *ClientVulnCreate) SetNillableRecordedAt(v *time.Time) *ClientVulnCreate {
	if v != nil {
		_c.SetRecordedAt(*v)
	}
	return _c
}

// SetReportedAt sets the "reported_at" field.
func (_c *ClientVulnCreate) SetReportedAt(v time.Time) *ClientVulnCreate {
	_c.mutation.SetReportedAt(v)
	return _c
}

// SetNillableReportedAt sets the "reported_at" field if the given value is not nil.
func (_c *ClientVulnCreate) SetNillableReportedAt(v *time.Time) *ClientVulnCreate {
	if v != nil {
		_c.SetReportedAt(*v)
	}
	return _c
}

// SetConfirmedAt sets the "confirmed_at" field.
func (_c *ClientVulnCreate) SetConfirmedAt(v time.Time) *ClientVulnCreate {
	_c.mutation.SetConfirmedAt(v)
	return _c
}

// SetNillableConfirmedAt sets the "confirmed_at" field if the given value is not nil.
func (_c *ClientVulnCreate) SetNillableConfirmedAt(v *time.Time) *ClientVulnCreate {
	if v != nil {
		_c.SetConfirmedAt(*v)
	}
	return _c
}

// SetFixedAt sets the "fixed_at" field.
func (_c *ClientVulnCreate) SetFixedAt(v time.Time) *ClientVulnCreate {
	_c.mutation.SetFixedAt(v)
	return _c
}

// SetNillableFixedAt sets the "fixed_at" field if the given value is not nil.
func (_c *ClientVulnCreate) SetNillableFixedAt(v *time.Time) *ClientVulnCreate {
	if v != nil {
		_c.SetFixedAt(*v)
	}
	return _c
}

// SetNotAffectAt sets the "not_affect_at" field.
func (_c *ClientVulnCreate) SetNotAffectAt(v time.Time) *ClientVulnCreate {
	_c.mutation.SetNotAffectAt(v)
	return _c
}

// SetNillableNotAffectAt sets the "not_affect_at" field if the given value is not nil.
func (_c *ClientVulnCreate) SetNillableNotAffectAt(v *time.Time) *ClientVulnCreate {
	if v != nil {
		_c.SetNotAffectAt(*v)
	}
	return _c
}

// SetConfirmedMsg sets the "confirmed_msg" field.
func (_c *ClientVulnCreate) SetConfirmedMsg(v string) *ClientVulnCreate {
	_c.mutation.SetConfirmedMsg(v)
	return _c
}

// SetNillableConfirmedMsg sets the "confirmed_msg" field if the given value is not nil.
func (_c *ClientVulnCreate) SetNillableConfirmedMsg(v *string) *ClientVulnCreate {
	if v != nil {
		_c.SetConfirmedMsg(*v)
	}
	return _c
}

// SetFixedMsg sets the "fixed_msg" field.
func (_c *ClientVulnCreate) SetFixedMsg(v string) *ClientVulnCreate {
	_c.mutation.SetFixedMsg(v)
	return _c
}

// SetNillableFixedMsg sets the "fixed_msg" field if the given value is not nil.
func (_c *ClientVulnCreate) SetNillableFixedMsg(v *string) *ClientVulnCreate {
	if v != nil {
		_c.SetFixedMsg(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ClientVulnCreate) SetCreatedAt(v time.Time) *ClientVulnCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ClientVulnCreate) SetNillableCreatedAt(v *time.Time) *ClientVulnCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ClientVulnCreate) SetUpdatedAt(v time.Time) *ClientVulnCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ClientVulnCreate) SetNillableUpdatedAt(v *time.Time) *ClientVulnCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ClientVulnCreate) SetID(v string) *ClientVulnCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ClientVulnCreate) SetNillableID(v *string) *ClientVulnCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetUpstreamVuln sets the "upstream_vuln" edge to the UpstreamVuln entity.
func (_c *ClientVulnCreate) SetUpstreamVuln(v *UpstreamVuln) *ClientVulnCreate {
	return _c.SetUpstreamVulnID(v.ID)
}

// SetProject sets the "project" edge to the Project entity.
func (_c *ClientVulnCreate) SetProject(v *Project) *ClientVulnCreate {
	return _c.SetProjectID(v.ID)
}

// Mutation returns the ClientVulnMutation object of the builder.
func (_c *ClientVulnCreate) Mutation() *ClientVulnMutation {
	return _c.mutation
}

// Save creates the ClientVuln in the database.
func (_c *ClientVulnCreate) Save(ctx context.Context) (*ClientVuln, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ClientVulnCreate) SaveX(ctx context.Context) *ClientVuln {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClientVulnCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClientVulnCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ClientVulnCreate) defaults() {
	if _, ok := _c.mutation.PipelineStatus(); !ok {
		v := clientvuln.DefaultPipelineStatus
		_c.mutation.SetPipelineStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := clientvuln.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := clientvuln.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := clientvuln.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ClientVulnCreate) check() error {
	if _, ok := _c.mutation.UpstreamVulnID(); !ok {
		return &ValidationError{Name: "upstream_vuln_id", err: errors.New(`ent: missing required field "ClientVuln.upstream_vuln_id"`)}
	}
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "ClientVuln.project_id"`)}
	}
	if _, ok := _c.mutation.PipelineStatus(); !ok {
		return &ValidationError{Name: "pipeline_status", err: errors.New(`ent: missing required field "ClientVuln.pipeline_status"`)}
	}
	if v, ok := _c.mutation.PipelineStatus(); ok {
		if err := clientvuln.PipelineStatusValidator(v); err != nil {
			return &ValidationError{Name: "pipeline_status", err: fmt.Errorf(`ent: validator failed for field "ClientVuln.pipeline_status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := clientvuln.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ClientVuln.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ClientVuln.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ClientVuln.updated_at"`)}
	}
	if len(_c.mutation.UpstreamVulnIDs()) == 0 {
		return &ValidationError{Name: "upstream_vuln", err: errors.New(`ent: missing required edge "ClientVuln.upstream_vuln"`)}
	}
	if len(_c.mutation.ProjectIDs()) == 0 {
		return &ValidationError{Name: "project", err: errors.New(`ent: missing required edge "ClientVuln.project"`)}
	}
	return nil
}

func (_c *ClientVulnCreate) sqlSave(ctx context.Context) (*ClientVuln, error) {
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
			return nil, fmt.Errorf("unexpected ClientVuln.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ClientVulnCreate) createSpec() (*ClientVuln, *sqlgraph.CreateSpec) {
	var (
		_node = &ClientVuln{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(clientvuln.Table, sqlgraph.NewFieldSpec(clientvuln.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.PipelineStatus(); ok {
		_spec.SetField(clientvuln.FieldPipelineStatus, field.TypeEnum, value)
		_node.PipelineStatus = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(clientvuln.FieldStatus, field.TypeEnum, value)
		_node.Status = &value
	}
	if value, ok := _c.mutation.IsAffected(); ok {
		_spec.SetField(clientvuln.FieldIsAffected, field.TypeBool, value)
		_node.IsAffected = &value
	}
	if value, ok := _c.mutation.ConstraintExpr(); ok {
		_spec.SetField(clientvuln.FieldConstraintExpr, field.TypeString, value)
		_node.ConstraintExpr = value
	}
	if value, ok := _c.mutation.ConstraintSource(); ok {
		_spec.SetField(clientvuln.FieldConstraintSource, field.TypeString, value)
		_node.ConstraintSource = value
	}
	if value, ok := _c.mutation.ResolvedVersion(); ok {
		_spec.SetField(clientvuln.FieldResolvedVersion, field.TypeString, value)
		_node.ResolvedVersion = &value
	}
	if value, ok := _c.mutation.ReachablePath(); ok {
		_spec.SetField(clientvuln.FieldReachablePath, field.TypeJSON, value)
		_node.ReachablePath = value
	}
	if value, ok := _c.mutation.PocResults(); ok {
		_spec.SetField(clientvuln.FieldPocResults, field.TypeJSON, value)
		_node.PocResults = value
	}
	if value, ok := _c.mutation.Report(); ok {
		_spec.SetField(clientvuln.FieldReport, field.TypeJSON, value)
		_node.Report = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(clientvuln.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.AnalysisCompletedAt(); ok {
		_spec.SetField(clientvuln.FieldAnalysisCompletedAt, field.TypeTime, value)
		_node.AnalysisCompletedAt = &value
	}
	if value, ok := _c.mutation.RecordedAt(); ok {
		_spec.SetField(clientvuln.FieldRecordedAt, field.TypeTime, value)
		_node.RecordedAt = &value
	}
	if value, ok := _c.mutation.ReportedAt(); ok {
		_spec.SetField(clientvuln.FieldReportedAt, field.TypeTime, value)
		_node.ReportedAt = &value
	}
	if value, ok := _c.mutation.ConfirmedAt(); ok {
		_spec.SetField(clientvuln.FieldConfirmedAt, field.TypeTime, value)
		_node.ConfirmedAt = &value
	}
	if value, ok := _c.mutation.FixedAt(); ok {
		_spec.SetField(clientvuln.FieldFixedAt, field.TypeTime, value)
		_node.FixedAt = &value
	}
	if value, ok := _c.mutation.NotAffectAt(); ok {
		_spec.SetField(clientvuln.FieldNotAffectAt, field.TypeTime, value)
		_node.NotAffectAt = &value
	}
	if value, ok := _c.mutation.ConfirmedMsg(); ok {
		_spec.SetField(clientvuln.FieldConfirmedMsg, field.TypeString, value)
		_node.ConfirmedMsg = &value
	}
	if value, ok := _c.mutation.FixedMsg(); ok {
		_spec.SetField(clientvuln.FieldFixedMsg, field.TypeString, value)
		_node.FixedMsg = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(clientvuln.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(clientvuln.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.UpstreamVulnIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   clientvuln.UpstreamVulnTable,
			Columns: []string{clientvuln.UpstreamVulnColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(upstreamvuln.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.UpstreamVulnID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   clientvuln.ProjectTable,
			Columns: []string{clientvuln.ProjectColumn},
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
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ClientVuln.Create().
//		SetUpstreamVulnID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ClientVulnUpsert) {
//			SetUpstreamVulnID(v+v).
//		}).
//		Exec(ctx)
func (_c *ClientVulnCreate) OnConflict(opts ...sql.ConflictOption) *ClientVulnUpsertOne {
	_c.conflict = opts
	return &ClientVulnUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ClientVuln.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ClientVulnCreate) OnConflictColumns(columns ...string) *ClientVulnUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ClientVulnUpsertOne{
		create: _c,
	}
}

type (
	// ClientVulnUpsertOne is the builder for "upsert"-ing
	//  one ClientVuln node.
	ClientVulnUpsertOne struct {
		create *ClientVulnCreate
	}

	// ClientVulnUpsert is the "OnConflict" setter.
	ClientVulnUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpstreamVulnID sets the "upstream_vuln_id" field.
func (u *ClientVulnUpsert) SetUpstreamVulnID(v string) *ClientVulnUpsert {
	u.Set(clientvuln.FieldUpstreamVulnID, v)
	return u
}

// UpdateUpstreamVulnID sets the "upstream_vuln_id" field to the value that was provided on create.
func (u *ClientVulnUpsert) UpdateUpstreamVulnID() *ClientVulnUpsert {
	u.SetExcluded(clientvuln.FieldUpstreamVulnID)
	return u
}

// SetProjectID sets the "project_id" field.
func (u *ClientVulnUpsert) SetProjectID(v string) *ClientVulnUpsert {
	u.Set(clientvuln.FieldProjectID, v)
	return u
}

// UpdateProjectID sets the "project_id" field to the value that was provided on create.
func (u *ClientVulnUpsert) UpdateProjectID() *ClientVulnUpsert {
	u.SetExcluded(clientvuln.FieldProjectID)
	return u
}

// SetPipelineStatus sets the "pipeline_status" field.
func (u *ClientVulnUpsert) SetPipelineStatus(v clientvuln.PipelineStatus) *ClientVulnUpsert {
	u.Set(clientvuln.FieldPipelineStatus, v)
	return u
}

// UpdatePipelineStatus sets the "pipeline_status" field to the value that was provided on create.
func (u *ClientVulnUpsert) UpdatePipelineStatus() *ClientVulnUpsert {
	u.SetExcluded(clientvuln.FieldPipelineStatus)
	return u
}

// SetStatus sets the "status" field.
func (u *ClientVulnUpsert) SetStatus(v clientvuln.Status) *ClientVulnUpsert {
	u.Set(clientvuln.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ClientVulnUpsert) UpdateStatus() *ClientVulnUpsert {
	u.SetExcluded(clientvuln.FieldStatus)
	return u
}

// ClearStatus clears the value of the "status" field.
func (u *ClientVulnUpsert) ClearStatus() *ClientVulnUpsert {
	u.SetNull(clientvuln.FieldStatus)
	return u
}

// SetIsAffected sets the "is_affected" field.
func (u *ClientVulnUpsert) SetIsAffected(v bool) *ClientVulnUpsert {
	u.Set(clientvuln.FieldIsAffected, v)
	return u
}

// UpdateIsAffected sets the "is_affected" field to the value that was provided on create.
func (u *ClientVulnUpsert) UpdateIsAffected() *ClientVulnUpsert {
	u.SetExcluded(clientvuln.FieldIsAffected)
	return u
}

// ClearIsAffected clears the value of the "is_affected" field.
func (u *ClientVulnUpsert) ClearIsAffected() *ClientVulnUpsert {
	u.SetNull(clientvuln.FieldIsAffected)
	return u
}

// SetConstraintExpr sets the "constraint_expr" field.
func (u *ClientVulnUpsert) SetConstraintExpr(v string) *ClientVulnUpsert {
	u.Set(clientvuln.FieldConstraintExpr, v)
	return u
}

// UpdateConstraintExpr sets the "constraint_expr" field to the value that was provided on create.
func (u *ClientVulnUpsert) UpdateConstraintExpr() *ClientVulnUpsert {
	u.SetExcluded(clientvuln.FieldConstraintExpr)
	return u
}

// ClearConstraintExpr clears the value of the "constraint_expr" field.
func (u *ClientVulnUpsert) ClearConstraintExpr() *ClientVulnUpsert {
	u.SetNull(clientvuln.FieldConstraintExpr)
	return u
}

// SetConstraintSource sets the "constraint_source" field.
func (u *ClientVulnUpsert) SetConstraintSource(v string) *ClientVulnUpsert {
	u.Set(clientvuln.FieldConstraintSource, v)
	return u
}

// UpdateConstraintSource sets the "constraint_source" field to the value that was provided on create.
func (u *ClientVulnUpsert) UpdateConstraintSource() *ClientVulnUpsert {
	u.SetExcluded(clientvuln.FieldConstraintSource)
	return u
}

// ClearConstraintSource clears the value of the "constraint_source" field.
func (u *ClientVulnUpsert) ClearConstraintSource() *ClientVulnUpsert {
	u.SetNull(clientvuln.FieldConstraintSource)
	return u
}

// SetResolvedVersion sets the "resolved_version" field.
func (u *ClientVulnUpsert) SetResolvedVersion(v string) *ClientVulnUpsert {
	u.Set(clientvuln.FieldResolvedVersion, v)
	return u
}

// UpdateResolvedVersion sets the "resolved_version" field to the value that was provided on create.
func (u *ClientVulnUpsert) UpdateResolvedVersion() *ClientVulnUpsert {
	u.SetExcluded(clientvuln.FieldResolvedVersion)
	return u
}

// ClearResolvedVersion clears the value of the "resolved_version" field.
func (u *ClientVulnUpsert) ClearResolvedVersion() *ClientVulnUpsert {
	u.SetNull(clientvuln.FieldResolvedVersion)
	return u
}

// SetReachablePath sets the "reachable_path" field.
func (u *ClientVulnUpsert) SetReachablePath(v map[string]interface{}) *ClientVulnUpsert {
	u.Set(clientvuln.FieldReachablePath, v)
	return u
}

// UpdateReachablePath sets the "reachable_path" field to the value that was provided on create.
func (u *ClientVulnUpsert) UpdateReachablePath() *ClientVulnUpsert {
	u.SetExcluded(clientvuln.FieldReachablePath)
	return u
}

// ClearReachablePath clears the value of the "reachable_path" field.
func (u *ClientVulnUpsert) ClearReachablePath() *ClientVulnUpsert {
	u.SetNull(clientvuln.FieldReachablePath)
	return u
}

// SetPocResults sets the "poc_results" field.
func (u *ClientVulnUpsert) SetPocResults(v map[string]interface{}) *ClientVulnUpsert {
	u.Set(clientvuln.FieldPocResults, v)
	return u
}

// UpdatePocResults sets the "poc_results" field to the value that was provided on create.
func (u *ClientVulnUpsert) UpdatePocResults() *ClientVulnUpsert {
	u.SetExcluded(clientvuln.FieldPocResults)
	return u
}

// ClearPocResults clears the value of the "poc_results" field.
func (u *ClientVulnUpsert) ClearPocResults() *ClientVulnUpsert {
	u.SetNull(clientvuln.FieldPocResults)
	return u
}

// SetReport sets the "report" field.
func (u *ClientVulnUpsert) SetReport(v map[string]interface{}) *ClientVulnUpsert {
	u.Set(clientvuln.FieldReport, v)
	return u
}

// UpdateReport sets the "report" field to the value that was provided on create.
func (u *ClientVulnUpsert) UpdateReport() *ClientVulnUpsert {
	u.SetExcluded(clientvuln.FieldReport)
	return u
}

// ClearReport clears the value of the "report" field.
func (u *ClientVulnUpsert) ClearReport() *ClientVulnUpsert {
	u.SetNull(clientvuln.FieldReport)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *ClientVulnUpsert) SetErrorMessage(v string) *ClientVulnUpsert {
	u.Set(clientvuln.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *ClientVulnUpsert) UpdateErrorMessage() *ClientVulnUpsert {
	u.SetExcluded(clientvuln.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *ClientVulnUpsert) ClearErrorMessage() *ClientVulnUpsert {
	u.SetNull(clientvuln.FieldErrorMessage)
	return u
}

// SetAnalysisCompletedAt sets the "analysis_completed_at" field.
func (u *ClientVulnUpsert) SetAnalysisCompletedAt(v time.Time) *ClientVulnUpsert {
	u.Set(clientvuln.FieldAnalysisCompletedAt, v)
	return u
}

// UpdateAnalysisCompletedAt sets the "analysis_completed_at" field to the value that was provided on create.
func (u *ClientVulnUpsert) UpdateAnalysisCompletedAt() *ClientVulnUpsert {
	u.SetExcluded(clientvuln.FieldAnalysisCompletedAt)
	return u
}

// ClearAnalysisCompletedAt clears the value of the "analysis_completed_at" field.
func (u *ClientVulnUpsert) ClearAnalysisCompletedAt() *ClientVulnUpsert {
	u.SetNull(clientvuln.FieldAnalysisCompletedAt)
	return u
}

// SetRecordedAt sets the "recorded_at" field.
func (u *ClientVulnUpsert) SetRecordedAt(v time.Time) *ClientVulnUpsert {
	u.Set(clientvuln.FieldRecordedAt, v)
	return u
}

// UpdateRecordedAt sets the "recorded_at" field to the value that was provided on create.
func (u *ClientVulnUpsert) UpdateRecordedAt() *ClientVulnUpsert {
	u.SetExcluded(clientvuln.FieldRecordedAt)
	return u
}

// ClearRecordedAt clears the value of the "recorded_at" field.
func (u *ClientVulnUpsert) ClearRecordedAt() *ClientVulnUpsert {
	u.SetNull(clientvuln.FieldRecordedAt)
	return u
}

// SetReportedAt sets the "reported_at" field.
func (u *ClientVulnUpsert) SetReportedAt(v time.Time) *ClientVulnUpsert {
	u.Set(clientvuln.FieldReportedAt, v)
	return u
}

// UpdateReportedAt sets the "reported_at" field to the value that was provided on create.
func (u *ClientVulnUpsert) UpdateReportedAt() *ClientVulnUpsert {
	u.SetExcluded(clientvuln.FieldReportedAt)
	return u
}

// ClearReportedAt clears the value of the "reported_at" field.
func (u *ClientVulnUpsert) ClearReportedAt() *ClientVulnUpsert {
	u.SetNull(clientvuln.FieldReportedAt)
	return u
}

// SetConfirmedAt sets the "confirmed_at" field.
func (u *ClientVulnUpsert) SetConfirmedAt(v time.Time) *ClientVulnUpsert {
	u.Set(clientvuln.FieldConfirmedAt, v)
	return u
}

// UpdateConfirmedAt sets the "confirmed_at" field to the value that was provided on create.
func (u *ClientVulnUpsert) UpdateConfirmedAt() *ClientVulnUpsert {
	u.SetExcluded(clientvuln.FieldConfirmedAt)
	return u
}

// ClearConfirmedAt clears the value of the "confirmed_at" field.
func (u *ClientVulnUpsert) ClearConfirmedAt() *ClientVulnUpsert {
	u.SetNull(clientvuln.FieldConfirmedAt)
	return u
}

// SetFixedAt sets the "fixed_at" field.
func (u *ClientVulnUpsert) SetFixedAt(v time.Time) *ClientVulnUpsert {
	u.Set(clientvuln.FieldFixedAt, v)
	return u
}

// UpdateFixedAt sets the "fixed_at" field to the value that was provided on create.
func (u *ClientVulnUpsert) UpdateFixedAt() *ClientVulnUpsert {
	u.SetExcluded(clientvuln.FieldFixedAt)
	return u
}

// ClearFixedAt clears the value of the "fixed_at" field.
func (u *ClientVulnUpsert) ClearFixedAt() *ClientVulnUpsert {
	u.SetNull(clientvuln.FieldFixedAt)
	return u
}

// SetNotAffectAt sets the "not_affect_at" field.
func (u *ClientVulnUpsert) SetNotAffectAt(v time.Time) *ClientVulnUpsert {
	u.Set(clientvuln.FieldNotAffectAt, v)
	return u
}

// UpdateNotAffectAt sets the "not_affect_at" field to the value that was provided on create.
func (u *ClientVulnUpsert) UpdateNotAffectAt() *ClientVulnUpsert {
	u.SetExcluded(clientvuln.FieldNotAffectAt)
	return u
}

// ClearNotAffectAt clears the value of the "not_affect_at" field.
func (u *ClientVulnUpsert) ClearNotAffectAt() *ClientVulnUpsert {
	u.SetNull(clientvuln.FieldNotAffectAt)
	return u
}

// SetConfirmedMsg sets the "confirmed_msg" field.
func (u *ClientVulnUpsert) SetConfirmedMsg(v string) *ClientVulnUpsert {
	u.Set(clientvuln.FieldConfirmedMsg, v)
	return u
}

// UpdateConfirmedMsg sets the "confirmed_msg" field to the value that was provided on create.
func (u *ClientVulnUpsert) UpdateConfirmedMsg() *ClientVulnUpsert {
	u.SetExcluded(clientvuln.FieldConfirmedMsg)
	return u
}

// ClearConfirmedMsg clears the value of the "confirmed_msg" field.
func (u *ClientVulnUpsert) ClearConfirmedMsg() *ClientVulnUpsert {
	u.SetNull(clientvuln.FieldConfirmedMsg)
	return u
}

// SetFixedMsg sets the "fixed_msg" field.
func (u *ClientVulnUpsert) SetFixedMsg(v string) *ClientVulnUpsert {
	u.Set(clientvuln.FieldFixedMsg, v)
	return u
}

// UpdateFixedMsg sets the "fixed_msg" field to the value that was provided on create.
func (u *ClientVulnUpsert) UpdateFixedMsg() *ClientVulnUpsert {
	u.SetExcluded(clientvuln.FieldFixedMsg)
	return u
}

// ClearFixedMsg clears the value of the "fixed_msg" field.
func (u *ClientVulnUpsert) ClearFixedMsg() *ClientVulnUpsert {
	u.SetNull(clientvuln.FieldFixedMsg)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ClientVulnUpsert) SetUpdatedAt(v time.Time) *ClientVulnUpsert {
	u.Set(clientvuln.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ClientVulnUpsert) UpdateUpdatedAt() *ClientVulnUpsert {
	u.SetExcluded(clientvuln.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ClientVuln.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(clientvuln.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ClientVulnUpsertOne) UpdateNewValues() *ClientVulnUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(clientvuln.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(clientvuln.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ClientVuln.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ClientVulnUpsertOne) Ignore() *ClientVulnUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ClientVulnUpsertOne) DoNothing() *ClientVulnUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ClientVulnCreate.OnConflict
// documentation for more info.
func (u *ClientVulnUpsertOne) Update(set func(*ClientVulnUpsert)) *ClientVulnUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ClientVulnUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpstreamVulnID sets the "upstream_vuln_id" field.
func (u *ClientVulnUpsertOne) SetUpstreamVulnID(v string) *ClientVulnUpsertOne {
	return u.Update(func(s *ClientVulnUpsert) {
		s.SetUpstreamVulnID(v)
	})
}

// UpdateUpstreamVulnID sets the "upstream_vuln_id" field to the value that was provided on create.
func (u *ClientVulnUpsertOne) UpdateUpstreamVulnID() *ClientVulnUpsertOne {
	return u.Update(func(s *ClientVulnUpsert) {
		s.UpdateUpstreamVulnID()
	})
}

// SetProjectID sets the "project_id" field.
func (u *ClientVulnUpsertOne) SetProjectID(v string) *ClientVulnUpsertOne {
	return u.Update(func(s *ClientVulnUpsert) {
		s.SetProjectID(v)
	})
}

// UpdateProjectID sets the "project_id" field to the value that was provided on create.
func (u *ClientVulnUpsertOne) UpdateProjectID() *ClientVulnUpsertOne {
	return u.Update(func(s *ClientVulnUpsert) {
		s.UpdateProjectID()
	})
}

// SetPipelineStatus sets the "pipeline_status" field.
func (u *ClientVulnUpsertOne) SetPipelineStatus(v clientvuln.PipelineStatus) *ClientVulnUpsertOne {
	return u.Update(func(s *ClientVulnUpsert) {
		s.SetPipelineStatus(v)
	})
}

// UpdatePipelineStatus sets the "pipeline_status" field to the value that was provided on create.
func (u *ClientVulnUpsertOne) UpdatePipelineStatus() *ClientVulnUpsertOne {
	return u.Update(func(s *ClientVulnUpsert) {
		s.UpdatePipelineStatus()
	})
}

// SetStatus sets the "status" field.
func (u *ClientVulnUpsertOne) SetStatus(v clientvuln.Status) *ClientVulnUpsertOne {
	return u.Update(func(s *ClientVulnUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ClientVulnUpsertOne) UpdateStatus() *ClientVulnUpsertOne {
	return u.Update(func(s *ClientVulnUpsert) {
		s.UpdateStatus()
	})
}

// ClearStatus clears the value of the "status" field.
func (u *ClientVulnUpsertOne) ClearStatus() *ClientVulnUpsertOne {
	return u.Update(func(s *ClientVulnUpsert) {
		s.ClearStatus()
	})
}

// SetIsAffected sets the "is_affected" field.
func (u *ClientVulnUpsertOne) SetIsAffected(v bool) *ClientVulnUpsertOne {
	return u.Update(func(s *ClientVulnUpsert) {
		s.SetIsAffected(v)
	})
}

// UpdateIsAffected sets the "is_affected" field to the value that was provided on create.
func (u *ClientVulnUpsertOne) UpdateIsAffected() *ClientVulnUpsertOne {
	return u.Update(func(s *ClientVulnUpsert) {
		s.UpdateIsAffected()
	})
}

// ClearIsAffected clears the value of the "is_affected" field.
func (u *ClientVulnUpsertOne) ClearIsAffected() *ClientVulnUpsertOne {
	return u.Update(func(s *ClientVulnUpsert) {
		s.ClearIsAffected()
	})
}

// SetConstraintExpr sets the "constraint_expr" field.
func (u *ClientVulnUpsertOne) SetConstraintExpr(v string) *ClientVulnUpsertOne {
	return u.Update(func(s *ClientVulnUpsert) {
		s.SetConstraintExpr(v)
	})
}

// UpdateConstraintExpr sets the "constraint_expr" field to the value that was provided on create.
func (u *ClientVulnUpsertOne) UpdateConstraintExpr() *ClientVulnUpsertOne {
	return u.Update(func(s *ClientVulnUpsert) {
		s.UpdateConstraintExpr()
	})
}

// ClearConstraintExpr clears the value of the "constraint_expr" field.
func (u *ClientVulnUpsertOne) ClearConstraintExpr() *ClientVulnUpsertOne {
	return u.Update(func(s *ClientVulnUpsert) {
		s.ClearConstraintExpr()
	})
}

// SetConstraintSource sets the "constraint_source" field.
func (u *ClientVulnUpsertOne) SetConstraintSource(v string) *ClientVulnUpsertOne {
	return u.Update(func(s *ClientVulnUpsert) {
		s.SetConstraintSource(v)
	})
}

// UpdateConstraintSource sets the "constraint_source" field to the value that was provided on create.
func (u *ClientVulnUpsertOne) UpdateConstraintSource() *ClientVulnUpsertOne {
	return u.Update(func(s *ClientVulnUpsert) {
		s.UpdateConstraintSource()
	})
}

// ClearConstraintSource clears the value of the "constraint_source" field.
func (u *ClientVulnUpsertOne) ClearConstraintSource() *ClientVulnUpsertOne {
	return u.Update(func(s *ClientVulnUpsert) {
		s.ClearConstraintSource()
	})
}

// SetResolvedVersion sets the "resolved_version" field.
func (u *ClientVulnUpsertOne) SetResolvedVersion(v string) *ClientVulnUpsertOne {
	return u.Update(func(s *ClientVulnUpsert) {
		s.SetResolvedVersion(v)
	})
}

// UpdateResolvedVersion sets the "resolved_version" field to the value that was provided on create.
func (u *ClientVulnUpsertOne) UpdateResolvedVersion() *ClientVulnUpsertOne {
	return u.Update(func(s *ClientVulnUpsert) {
		s.UpdateResolvedVersion()
	})
}

// ClearResolvedVersion clears the value of the "resolved_version" field.
func (u *ClientVulnUpsertOne) ClearResolvedVersion() *ClientVulnUpsertOne {
	return u.Update(func(s *ClientVulnUpsert) {
		s.ClearResolvedVersion()
	})
}

// SetReachablePath sets the "reachable_path" field.
func (u *ClientVulnUpsertOne) SetReachablePath(v map[string]interface{}) *ClientVulnUpsertOne {
	return u.Update(func(s *ClientVulnUpsert) {
		s.SetReachablePath(v)
	})
}

// UpdateReachablePath sets the "reachable_path" field to the value that was provided on create.
func (u *ClientVulnUpsertOne) UpdateReachablePath() *ClientVulnUpsertOne {
	return u.Update(func(s *ClientVulnUpsert) {
		s.UpdateReachablePath()
	})
}

// ClearReachablePath clears the value of the "reachable_path" field.
func (u *ClientVulnUpsertOne) ClearReachablePath() *ClientVulnUpsertOne {
	return u.Update(func(s *ClientVulnUpsert) {
		s.ClearReachablePath()
	})
}

// SetPocResults sets the "poc_results" field.
func (u *ClientVulnUpsertOne) SetPocResults(v map[string]interface{}) *ClientVulnUpsertOne {
	return u.Update(func(s *ClientVulnUpsert) {
		s.SetPocResults(v)
	})
}

// UpdatePocResults sets the "poc_results" field to the value that was provided on create.
func (u *ClientVulnUpsertOne) UpdatePocResults() *ClientVulnUpsertOne {
	return u.Update(func(s *ClientVulnUpsert) {
		s.UpdatePocResults()
	})
}

// ClearPocResults clears the value of the "poc_results" field.
func (u *ClientVulnUpsertOne) ClearPocResults() *ClientVulnUpsertOne {
	return u.Update(func(s *ClientVulnUpsert) {
		s.ClearPocResults()
	})
}

// SetReport sets the "report" field.
func (u *ClientVulnUpsertOne) SetReport(v map[string]interface{}) *ClientVulnUpsertOne {
	return u.Update(func(s *ClientVulnUpsert) {
		s.SetReport(v)
	})
}

// UpdateReport sets the "report" field to the value that was provided on create.
func (u *ClientVulnUpsertOne) UpdateReport() *ClientVulnUpsertOne {
	return u.Update(func(s *ClientVulnUpsert) {
		s.UpdateReport()
	})
}

// ClearReport clears the value of the "report" field.
func (u *ClientVulnUpsertOne) ClearReport() *ClientVulnUpsertOne {
	return u.Update(func(s *ClientVulnUpsert) {
		s.ClearReport()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *ClientVulnUpsertOne) SetErrorMessage(v string) *ClientVulnUpsertOne {
	return u.Update(func(s *ClientVulnUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *ClientVulnUpsertOne) UpdateErrorMessage() *ClientVulnUpsertOne {
	return u.Update(func(s *ClientVulnUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *ClientVulnUpsertOne) ClearErrorMessage() *ClientVulnUpsertOne {
	return u.Update(func(s *ClientVulnUpsert) {
		s.ClearErrorMessage()
	})
}

// SetAnalysisCompletedAt sets the "analysis_completed_at" field.
func (u *ClientVulnUpsertOne) SetAnalysisCompletedAt(v time.Time) *ClientVulnUpsertOne {
	return u.Update(func(s *ClientVulnUpsert) {
		s.SetAnalysisCompletedAt(v)
	})
}

// UpdateAnalysisCompletedAt sets the "analysis_completed_at" field to the value that was provided on create.
func (u *ClientVulnUpsertOne) UpdateAnalysisCompletedAt() *ClientVulnUpsertOne {
	return u.Update(func(s *ClientVulnUpsert) {
		s.UpdateAnalysisCompletedAt()
	})
}

// ClearAnalysisCompletedAt clears the value of the "analysis_completed_at" field.
func (u *ClientVulnUpsertOne) ClearAnalysisCompletedAt() *ClientVulnUpsertOne {
	return u.Update(func(s *ClientVulnUpsert) {
		s.ClearAnalysisCompletedAt()
	})
}

// SetRecordedAt sets the "recorded_at" field.
func (u *ClientVulnUpsertOne) SetRecordedAt(v time.Time) *ClientVulnUpsertOne {
	return u.Update(func(s *ClientVulnUpsert) {
		s.SetRecordedAt(v)
	})
}

// UpdateRecordedAt sets the "recorded_at" field to the value that was provided on create.
func (u *ClientVulnUpsertOne) UpdateRecordedAt() *ClientVulnUpsertOne {
	return u.Update(func(s *ClientVulnUpsert) {
		s.UpdateRecordedAt()
	})
}

// ClearRecordedAt clears the value of the "recorded_at" field.
func (u *ClientVulnUpsertOne) ClearRecordedAt() *ClientVulnUpsertOne {
	return u.Update(func(s *ClientVulnUpsert) {
		s.ClearRecordedAt()
	})
}

// SetReportedAt sets the "reported_at" field.
func (u *ClientVulnUpsertOne) SetReportedAt(v time.Time) *ClientVulnUpsertOne {
	return u.Update(func(s *ClientVulnUpsert) {
		s.SetReportedAt(v)
	})
}

// UpdateReportedAt sets the "reported_at" field to the value that was provided on create.
func (u *ClientVulnUpsertOne) UpdateReportedAt() *ClientVulnUpsertOne {
	return u.Update(func(s *ClientVulnUpsert) {
		s.UpdateReportedAt()
	})
}

// ClearReportedAt clears the value of the "reported_at" field.
func (u *ClientVulnUpsertOne) ClearReportedAt() *ClientVulnUpsertOne {
	return u.Update(func(s *ClientVulnUpsert) {
		s.ClearReportedAt()
	})
}

// SetConfirmedAt sets the "confirmed_at" field.
func (u *ClientVulnUpsertOne) SetConfirmedAt(v time.Time) *ClientVulnUpsertOne {
	return u.Update(func(s *ClientVulnUpsert) {
		s.SetConfirmedAt(v)
	})
}

// UpdateConfirmedAt sets the "confirmed_at" field to the value that was provided on create.
func (u *ClientVulnUpsertOne) UpdateConfirmedAt() *ClientVulnUpsertOne {
	return u.Update(func(s *ClientVulnUpsert) {
		s.UpdateConfirmedAt()
	})
}

// ClearConfirmedAt clears the value of the "confirmed_at" field.
func (u *ClientVulnUpsertOne) ClearConfirmedAt() *ClientVulnUpsertOne {
	return u.Update(func(s *ClientVulnUpsert) {
		s.ClearConfirmedAt()
	})
}

// SetFixedAt sets the "fixed_at" field.
func (u *ClientVulnUpsertOne) SetFixedAt(v time.Time) *ClientVulnUpsertOne {
	return u.Update(func(s *ClientVulnUpsert) {
		s.SetFixedAt(v)
	})
}

// UpdateFixedAt sets the "fixed_at" field to the value that was provided on create.
func (u *ClientVulnUpsertOne) UpdateFixedAt() *ClientVulnUpsertOne {
	return u.Update(func(s *ClientVulnUpsert) {
		s.UpdateFixedAt()
	})
}

// ClearFixedAt clears the value of the "fixed_at" field.
func (u *ClientVulnUpsertOne) ClearFixedAt() *ClientVulnUpsertOne {
	return u.Update(func(s *ClientVulnUpsert) {
		s.ClearFixedAt()
	})
}

// SetNotAffectAt sets the "not_affect_at" field.
func (u *ClientVulnUpsertOne) SetNotAffectAt(v time.Time) *ClientVulnUpsertOne {
	return u.Update(func(s *ClientVulnUpsert) {
		s.SetNotAffectAt(v)
	})
}

// UpdateNotAffectAt sets the "not_affect_at" field to the value that was provided on create.
func (u *ClientVulnUpsertOne) UpdateNotAffectAt() *ClientVulnUpsertOne {
	return u.Update(func(s *ClientVulnUpsert) {
		s.UpdateNotAffectAt()
	})
}

// ClearNotAffectAt clears the value of the "not_affect_at" field.
func (u *ClientVulnUpsertOne) ClearNotAffectAt() *ClientVulnUpsertOne {
	return u.Update(func(s *ClientVulnUpsert) {
		s.ClearNotAffectAt()
	})
}

// SetConfirmedMsg sets the "confirmed_msg" field.
func (u *ClientVulnUpsertOne) SetConfirmedMsg(v string) *ClientVulnUpsertOne {
	return u.Update(func(s *ClientVulnUpsert) {
		s.SetConfirmedMsg(v)
	})
}

// UpdateConfirmedMsg sets the "confirmed_msg" field to the value that was provided on create.
func (u *ClientVulnUpsertOne) UpdateConfirmedMsg() *ClientVulnUpsertOne {
	return u.Update(func(s *ClientVulnUpsert) {
		s.UpdateConfirmedMsg()
	})
}

// ClearConfirmedMsg clears the value of the "confirmed_msg" field.
func (u *ClientVulnUpsertOne) ClearConfirmedMsg() *ClientVulnUpsertOne {
	return u.Update(func(s *ClientVulnUpsert) {
		s.ClearConfirmedMsg()
	})
}

// SetFixedMsg sets the "fixed_msg" field.
func (u *ClientVulnUpsertOne) SetFixedMsg(v string) *ClientVulnUpsertOne {
	return u.Update(func(s *ClientVulnUpsert) {
		s.SetFixedMsg(v)
	})
}

// UpdateFixedMsg sets the "fixed_msg" field to the value that was provided on create.
func (u *ClientVulnUpsertOne) UpdateFixedMsg() *ClientVulnUpsertOne {
	return u.Update(func(s *ClientVulnUpsert) {
		s.UpdateFixedMsg()
	})
}

// ClearFixedMsg clears the value of the "fixed_msg" field.
func (u *ClientVulnUpsertOne) ClearFixedMsg() *ClientVulnUpsertOne {
	return u.Update(func(s *ClientVulnUpsert) {
		s.ClearFixedMsg()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ClientVulnUpsertOne) SetUpdatedAt(v time.Time) *ClientVulnUpsertOne {
	return u.Update(func(s *ClientVulnUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ClientVulnUpsertOne) UpdateUpdatedAt() *ClientVulnUpsertOne {
	return u.Update(func(s *ClientVulnUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ClientVulnUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ClientVulnCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ClientVulnUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ClientVulnUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ClientVulnUpsertOne.ID is not supported by MySQL driver. Use ClientVulnUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ClientVulnUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ClientVulnCreateBulk is the builder for creating many ClientVuln entities in bulk.
type ClientVulnCreateBulk struct {
	config
	err      error
	builders []*ClientVulnCreate
	conflict []sql.ConflictOption
}

// Save creates the ClientVuln entities in the database.
func (_c *ClientVulnCreateBulk) Save(ctx context.Context) ([]*ClientVuln, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ClientVuln, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ClientVulnMutation)
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
func (_c *ClientVulnCreateBulk) SaveX(ctx context.Context) []*ClientVuln {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClientVulnCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClientVulnCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ClientVuln.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ClientVulnUpsert) {
//			SetUpstreamVulnID(v+v).
//		}).
//		Exec(ctx)
func (_c *ClientVulnCreateBulk) OnConflict(opts ...sql.ConflictOption) *ClientVulnUpsertBulk {
	_c.conflict = opts
	return &ClientVulnUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ClientVuln.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ClientVulnCreateBulk) OnConflictColumns(columns ...string) *ClientVulnUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ClientVulnUpsertBulk{
		create: _c,
	}
}

// ClientVulnUpsertBulk is the builder for "upsert"-ing
// a bulk of ClientVuln nodes.
type ClientVulnUpsertBulk struct {
	create *ClientVulnCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ClientVuln.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(clientvuln.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ClientVulnUpsertBulk) UpdateNewValues() *ClientVulnUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(clientvuln.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(clientvuln.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ClientVuln.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ClientVulnUpsertBulk) Ignore() *ClientVulnUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ClientVulnUpsertBulk) DoNothing() *ClientVulnUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ClientVulnCreateBulk.OnConflict
// documentation for more info.
func (u *ClientVulnUpsertBulk) Update(set func(*ClientVulnUpsert)) *ClientVulnUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ClientVulnUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpstreamVulnID sets the "upstream_vuln_id" field.
func (u *ClientVulnUpsertBulk) SetUpstreamVulnID(v string) *ClientVulnUpsertBulk {
	return u.Update(func(s *ClientVulnUpsert) {
		s.SetUpstreamVulnID(v)
	})
}

// UpdateUpstreamVulnID sets the "upstream_vuln_id" field to the value that was provided on create.
func (u *ClientVulnUpsertBulk) UpdateUpstreamVulnID() *ClientVulnUpsertBulk {
	return u.Update(func(s *ClientVulnUpsert) {
		s.UpdateUpstreamVulnID()
	})
}

// SetProjectID sets the "project_id" field.
func (u *ClientVulnUpsertBulk) SetProjectID(v string) *ClientVulnUpsertBulk {
	return u.Update(func(s *ClientVulnUpsert) {
		s.SetProjectID(v)
	})
}

// UpdateProjectID sets the "project_id" field to the value that was provided on create.
func (u *ClientVulnUpsertBulk) UpdateProjectID() *ClientVulnUpsertBulk {
	return u.Update(func(s *ClientVulnUpsert) {
		s.UpdateProjectID()
	})
}

// SetPipelineStatus sets the "pipeline_status" field.
func (u *ClientVulnUpsertBulk) SetPipelineStatus(v clientvuln.PipelineStatus) *ClientVulnUpsertBulk {
	return u.Update(func(s *ClientVulnUpsert) {
		s.SetPipelineStatus(v)
	})
}

// UpdatePipelineStatus sets the "pipeline_status" field to the value that was provided on create.
func (u *ClientVulnUpsertBulk) UpdatePipelineStatus() *ClientVulnUpsertBulk {
	return u.Update(func(s *ClientVulnUpsert) {
		s.UpdatePipelineStatus()
	})
}

// SetStatus sets the "status" field.
func (u *ClientVulnUpsertBulk) SetStatus(v clientvuln.Status) *ClientVulnUpsertBulk {
	return u.Update(func(s *ClientVulnUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ClientVulnUpsertBulk) UpdateStatus() *ClientVulnUpsertBulk {
	return u.Update(func(s *ClientVulnUpsert) {
		s.UpdateStatus()
	})
}

// ClearStatus clears the value of the "status" field.
func (u *ClientVulnUpsertBulk) ClearStatus() *ClientVulnUpsertBulk {
	return u.Update(func(s *ClientVulnUpsert) {
		s.ClearStatus()
	})
}

// SetIsAffected sets the "is_affected" field.
func (u *ClientVulnUpsertBulk) SetIsAffected(v bool) *ClientVulnUpsertBulk {
	return u.Update(func(s *ClientVulnUpsert) {
		s.SetIsAffected(v)
	})
}

// UpdateIsAffected sets the "is_affected" field to the value that was provided on create.
func (u *ClientVulnUpsertBulk) UpdateIsAffected() *ClientVulnUpsertBulk {
	return u.Update(func(s *ClientVulnUpsert) {
		s.UpdateIsAffected()
	})
}

// ClearIsAffected clears the value of the "is_affected" field.
func (u *ClientVulnUpsertBulk) ClearIsAffected() *ClientVulnUpsertBulk {
	return u.Update(func(s *ClientVulnUpsert) {
		s.ClearIsAffected()
	})
}

// SetConstraintExpr sets the "constraint_expr" field.
func (u *ClientVulnUpsertBulk) SetConstraintExpr(v string) *ClientVulnUpsertBulk {
	return u.Update(func(s *ClientVulnUpsert) {
		s.SetConstraintExpr(v)
	})
}

// UpdateConstraintExpr sets the "constraint_expr" field to the value that was provided on create.
func (u *ClientVulnUpsertBulk) UpdateConstraintExpr() *ClientVulnUpsertBulk {
	return u.Update(func(s *ClientVulnUpsert) {
		s.UpdateConstraintExpr()
	})
}

// ClearConstraintExpr clears the value of the "constraint_expr" field.
func (u *ClientVulnUpsertBulk) ClearConstraintExpr() *ClientVulnUpsertBulk {
	return u.Update(func(s *ClientVulnUpsert) {
		s.ClearConstraintExpr()
	})
}

// SetConstraintSource sets the "constraint_source" field.
func (u *ClientVulnUpsertBulk) SetConstraintSource(v string) *ClientVulnUpsertBulk {
	return u.Update(func(s *ClientVulnUpsert) {
		s.SetConstraintSource(v)
	})
}

// UpdateConstraintSource sets the "constraint_source" field to the value that was provided on create.
func (u *ClientVulnUpsertBulk) UpdateConstraintSource() *ClientVulnUpsertBulk {
	return u.Update(func(s *ClientVulnUpsert) {
		s.UpdateConstraintSource()
	})
}

// ClearConstraintSource clears the value of the "constraint_source" field.
func (u *ClientVulnUpsertBulk) ClearConstraintSource() *ClientVulnUpsertBulk {
	return u.Update(func(s *ClientVulnUpsert) {
		s.ClearConstraintSource()
	})
}

// SetResolvedVersion sets the "resolved_version" field.
func (u *ClientVulnUpsertBulk) SetResolvedVersion(v string) *ClientVulnUpsertBulk {
	return u.Update(func(s *ClientVulnUpsert) {
		s.SetResolvedVersion(v)
	})
}

// UpdateResolvedVersion sets the "resolved_version" field to the value that was provided on create.
func (u *ClientVulnUpsertBulk) UpdateResolvedVersion() *ClientVulnUpsertBulk {
	return u.Update(func(s *ClientVulnUpsert) {
		s.UpdateResolvedVersion()
	})
}

// ClearResolvedVersion clears the value of the "resolved_version" field.
func (u *ClientVulnUpsertBulk) ClearResolvedVersion() *ClientVulnUpsertBulk {
	return u.Update(func(s *ClientVulnUpsert) {
		s.ClearResolvedVersion()
	})
}

// SetReachablePath sets the "reachable_path" field.
func (u *ClientVulnUpsertBulk) SetReachablePath(v map[string]interface{}) *ClientVulnUpsertBulk {
	return u.Update(func(s *ClientVulnUpsert) {
		s.SetReachablePath(v)
	})
}

// UpdateReachablePath sets the "reachable_path" field to the value that was provided on create.
func (u *ClientVulnUpsertBulk) UpdateReachablePath() *ClientVulnUpsertBulk {
	return u.Update(func(s *ClientVulnUpsert) {
		s.UpdateReachablePath()
	})
}

// ClearReachablePath clears the value of the "reachable_path" field.
func (u *ClientVulnUpsertBulk) ClearReachablePath() *ClientVulnUpsertBulk {
	return u.Update(func(s *ClientVulnUpsert) {
		s.ClearReachablePath()
	})
}

// SetPocResults sets the "poc_results" field.
func (u *ClientVulnUpsertBulk) SetPocResults(v map[string]interface{}) *ClientVulnUpsertBulk {
	return u.Update(func(s *ClientVulnUpsert) {
		s.SetPocResults(v)
	})
}

// UpdatePocResults sets the "poc_results" field to the value that was provided on create.
func (u *ClientVulnUpsertBulk) UpdatePocResults() *ClientVulnUpsertBulk {
	return u.Update(func(s *ClientVulnUpsert) {
		s.UpdatePocResults()
	})
}

// ClearPocResults clears the value of the "poc_results" field.
func (u *ClientVulnUpsertBulk) ClearPocResults() *ClientVulnUpsertBulk {
	return u.Update(func(s *ClientVulnUpsert) {
		s.ClearPocResults()
	})
}

// SetReport sets the "report" field.
func (u *ClientVulnUpsertBulk) SetReport(v map[string]interface{}) *ClientVulnUpsertBulk {
	return u.Update(func(s *ClientVulnUpsert) {
		s.SetReport(v)
	})
}

// UpdateReport sets the "report" field to the value that was provided on create.
func (u *ClientVulnUpsertBulk) UpdateReport() *ClientVulnUpsertBulk {
	return u.Update(func(s *ClientVulnUpsert) {
		s.UpdateReport()
	})
}

// ClearReport clears the value of the "report" field.
func (u *ClientVulnUpsertBulk) ClearReport() *ClientVulnUpsertBulk {
	return u.Update(func(s *ClientVulnUpsert) {
		s.ClearReport()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *ClientVulnUpsertBulk) SetErrorMessage(v string) *ClientVulnUpsertBulk {
	return u.Update(func(s *ClientVulnUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *ClientVulnUpsertBulk) UpdateErrorMessage() *ClientVulnUpsertBulk {
	return u.Update(func(s *ClientVulnUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *ClientVulnUpsertBulk) ClearErrorMessage() *ClientVulnUpsertBulk {
	return u.Update(func(s *ClientVulnUpsert) {
		s.ClearErrorMessage()
	})
}

// SetAnalysisCompletedAt sets the "analysis_completed_at" field.
func (u *ClientVulnUpsertBulk) SetAnalysisCompletedAt(v time.Time) *ClientVulnUpsertBulk {
	return u.Update(func(s *ClientVulnUpsert) {
		s.SetAnalysisCompletedAt(v)
	})
}

// UpdateAnalysisCompletedAt sets the "analysis_completed_at" field to the value that was provided on create.
func (u *ClientVulnUpsertBulk) UpdateAnalysisCompletedAt() *ClientVulnUpsertBulk {
	return u.Update(func(s *ClientVulnUpsert) {
		s.UpdateAnalysisCompletedAt()
	})
}

// ClearAnalysisCompletedAt clears the value of the "analysis_completed_at" field.
func (u *ClientVulnUpsertBulk) ClearAnalysisCompletedAt() *ClientVulnUpsertBulk {
	return u.Update(func(s *ClientVulnUpsert) {
		s.ClearAnalysisCompletedAt()
	})
}

// SetRecordedAt sets the "recorded_at" field.
func (u *ClientVulnUpsertBulk) SetRecordedAt(v time.Time) *ClientVulnUpsertBulk {
	return u.Update(func(s *ClientVulnUpsert) {
		s.SetRecordedAt(v)
	})
}

// UpdateRecordedAt sets the "recorded_at" field to the value that was provided on create.
func (u *ClientVulnUpsertBulk) UpdateRecordedAt() *ClientVulnUpsertBulk {
	return u.Update(func(s *ClientVulnUpsert) {
		s.UpdateRecordedAt()
	})
}

// ClearRecordedAt clears the value of the "recorded_at" field.
func (u *ClientVulnUpsertBulk) ClearRecordedAt() *ClientVulnUpsertBulk {
	return u.Update(func(s *ClientVulnUpsert) {
		s.ClearRecordedAt()
	})
}

// SetReportedAt sets the "reported_at" field.
func (u *ClientVulnUpsertBulk) SetReportedAt(v time.Time) *ClientVulnUpsertBulk {
	return u.Update(func(s *ClientVulnUpsert) {
		s.SetReportedAt(v)
	})
}

// UpdateReportedAt sets the "reported_at" field to the value that was provided on create.
func (u *ClientVulnUpsertBulk) UpdateReportedAt() *ClientVulnUpsertBulk {
	return u.Update(func(s *ClientVulnUpsert) {
		s.UpdateReportedAt()
	})
}

// ClearReportedAt clears the value of the "reported_at" field.
func (u *ClientVulnUpsertBulk) ClearReportedAt() *ClientVulnUpsertBulk {
	return u.Update(func(s *ClientVulnUpsert) {
		s.ClearReportedAt()
	})
}

// SetConfirmedAt sets the "confirmed_at" field.
func (u *ClientVulnUpsertBulk) SetConfirmedAt(v time.Time) *ClientVulnUpsertBulk {
	return u.Update(func(s *ClientVulnUpsert) {
		s.SetConfirmedAt(v)
	})
}

// UpdateConfirmedAt sets the "confirmed_at" field to the value that was provided on create.
func (u *ClientVulnUpsertBulk) UpdateConfirmedAt() *ClientVulnUpsertBulk {
	return u.Update(func(s *ClientVulnUpsert) {
		s.UpdateConfirmedAt()
	})
}

// ClearConfirmedAt clears the value of the "confirmed_at" field.
func (u *ClientVulnUpsertBulk) ClearConfirmedAt() *ClientVulnUpsertBulk {
	return u.Update(func(s *ClientVulnUpsert) {
		s.ClearConfirmedAt()
	})
}

// SetFixedAt sets the "fixed_at" field.
func (u *ClientVulnUpsertBulk) SetFixedAt(v time.Time) *ClientVulnUpsertBulk {
	return u.Update(func(s *ClientVulnUpsert) {
		s.SetFixedAt(v)
	})
}

// UpdateFixedAt sets the "fixed_at" field to the value that was provided on create.
func (u *ClientVulnUpsertBulk) UpdateFixedAt() *ClientVulnUpsertBulk {
	return u.Update(func(s *ClientVulnUpsert) {
		s.UpdateFixedAt()
	})
}

// ClearFixedAt clears the value of the "fixed_at" field.
func (u *ClientVulnUpsertBulk) ClearFixedAt() *ClientVulnUpsertBulk {
	return u.Update(func(s *ClientVulnUpsert) {
		s.ClearFixedAt()
	})
}

// SetNotAffectAt sets the "not_affect_at" field.
func (u *ClientVulnUpsertBulk) SetNotAffectAt(v time.Time) *ClientVulnUpsertBulk {
	return u.Update(func(s *ClientVulnUpsert) {
		s.SetNotAffectAt(v)
	})
}

// UpdateNotAffectAt sets the "not_affect_at" field to the value that was provided on create.
func (u *ClientVulnUpsertBulk) UpdateNotAffectAt() *ClientVulnUpsertBulk {
	return u.Update(func(s *ClientVulnUpsert) {
		s.UpdateNotAffectAt()
	})
}

// ClearNotAffectAt clears the value of the "not_affect_at" field.
func (u *ClientVulnUpsertBulk) ClearNotAffectAt() *ClientVulnUpsertBulk {
	return u.Update(func(s *ClientVulnUpsert) {
		s.ClearNotAffectAt()
	})
}

// SetConfirmedMsg sets the "confirmed_msg" field.
func (u *ClientVulnUpsertBulk) SetConfirmedMsg(v string) *ClientVulnUpsertBulk {
	return u.Update(func(s *ClientVulnUpsert) {
		s.SetConfirmedMsg(v)
	})
}

// UpdateConfirmedMsg sets the "confirmed_msg" field to the value that was provided on create.
func (u *ClientVulnUpsertBulk) UpdateConfirmedMsg() *ClientVulnUpsertBulk {
	return u.Update(func(s *ClientVulnUpsert) {
		s.UpdateConfirmedMsg()
	})
}

// ClearConfirmedMsg clears the value of the "confirmed_msg" field.
func (u *ClientVulnUpsertBulk) ClearConfirmedMsg() *ClientVulnUpsertBulk {
	return u.Update(func(s *ClientVulnUpsert) {
		s.ClearConfirmedMsg()
	})
}

// SetFixedMsg sets the "fixed_msg" field.
func (u *ClientVulnUpsertBulk) SetFixedMsg(v string) *ClientVulnUpsertBulk {
	return u.Update(func(s *ClientVulnUpsert) {
		s.SetFixedMsg(v)
	})
}

// UpdateFixedMsg sets the "fixed_msg" field to the value that was provided on create.
func (u *ClientVulnUpsertBulk) UpdateFixedMsg() *ClientVulnUpsertBulk {
	return u.Update(func(s *ClientVulnUpsert) {
		s.UpdateFixedMsg()
	})
}

// ClearFixedMsg clears the value of the "fixed_msg" field.
func (u *ClientVulnUpsertBulk) ClearFixedMsg() *ClientVulnUpsertBulk {
	return u.Update(func(s *ClientVulnUpsert) {
		s.ClearFixedMsg()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ClientVulnUpsertBulk) SetUpdatedAt(v time.Time) *ClientVulnUpsertBulk {
	return u.Update(func(s *ClientVulnUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ClientVulnUpsertBulk) UpdateUpdatedAt() *ClientVulnUpsertBulk {
	return u.Update(func(s *ClientVulnUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ClientVulnUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ClientVulnCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ClientVulnCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ClientVulnUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
