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
	"github.com/vulnsentinel/vulnsentinel/ent/upstreamvuln"
)

// ClientVulnUpdate is the builder for updating ClientVuln entities.
type ClientVulnUpdate struct {
	config
	hooks    []Hook
	mutation *ClientVulnMutation
}

// Where appends a list predicates to the ClientVulnUpdate builder.
func (_u *ClientVulnUpdate) Where(ps ...predicate.ClientVuln) *ClientVulnUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpstreamVulnID sets the "upstream_vuln_id" field.
func (_u *ClientVulnUpdate) SetUpstreamVulnID(v string) *ClientVulnUpdate {
	_u.mutation.SetUpstreamVulnID(v)
	return _u
}

// SetNillableUpstreamVulnID sets the "upstream_vuln_id" field if the given value is not nil.
func (_u *ClientVulnUpdate) SetNillableUpstreamVulnID(v *string) *ClientVulnUpdate {
	if v != nil {
		_u.SetUpstreamVulnID(*v)
	}
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *ClientVulnUpdate) SetProjectID(v string) *ClientVulnUpdate {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *ClientVulnUpdate) SetNillableProjectID(v *string) *ClientVulnUpdate {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetPipelineStatus sets the "pipeline_status" field.
func (_u *ClientVulnUpdate) SetPipelineStatus(v clientvuln.PipelineStatus) *ClientVulnUpdate {
	_u.mutation.SetPipelineStatus(v)
	return _u
}

// SetNillablePipelineStatus sets the "pipeline_status" field if the given value is not nil.
func (_u *ClientVulnUpdate) SetNillablePipelineStatus(v *clientvuln.PipelineStatus) *ClientVulnUpdate {
	if v != nil {
		_u.SetPipelineStatus(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ClientVulnUpdate) SetStatus(v clientvuln.Status) *ClientVulnUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ClientVulnUpdate) SetNillableStatus(v *clientvuln.Status) *ClientVulnUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// ClearStatus clears the value of the "status" field.
func (_u *ClientVulnUpdate) ClearStatus() *ClientVulnUpdate {
	_u.mutation.ClearStatus()
	return _u
}

// SetIsAffected sets the "is_affected" field.
func (_u *ClientVulnUpdate) SetIsAffected(v bool) *ClientVulnUpdate {
	_u.mutation.SetIsAffected(v)
	return _u
}

// SetNillableIsAffected sets the "is_affected" field if the given value is not nil.
func (_u *ClientVulnUpdate) SetNillableIsAffected(v *bool) *ClientVulnUpdate {
	if v != nil {
		_u.SetIsAffected(*v)
	}
	return _u
}

// ClearIsAffected clears the value of the "is_affected" field.
func (_u *ClientVulnUpdate) ClearIsAffected() *ClientVulnUpdate {
	_u.mutation.ClearIsAffected()
	return _u
}

// SetConstraintExpr sets the "constraint_expr" field.
func (_u *ClientVulnUpdate) SetConstraintExpr(v string) *ClientVulnUpdate {
	_u.mutation.SetConstraintExpr(v)
	return _u
}

// SetNillableConstraintExpr sets the "constraint_expr" field if the given value is not nil.
func (_u *ClientVulnUpdate) SetNillableConstraintExpr(v *string) *ClientVulnUpdate {
	if v != nil {
		_u.SetConstraintExpr(*v)
	}
	return _u
}

// ClearConstraintExpr clears the value of the "constraint_expr" field.
func (_u *ClientVulnUpdate) ClearConstraintExpr() *ClientVulnUpdate {
	_u.mutation.ClearConstraintExpr()
	return _u
}

// SetConstraintSource sets the "constraint_source" field.
func (_u *ClientVulnUpdate) SetConstraintSource(v string) *ClientVulnUpdate {
	_u.mutation.SetConstraintSource(v)
	return _u
}

// SetNillableConstraintSource sets the "constraint_source" field if the given value is not nil.
func (_u *ClientVulnUpdate) SetNillableConstraintSource(v *string) *ClientVulnUpdate {
	if v != nil {
		_u.SetConstraintSource(*v)
	}
	return _u
}

// ClearConstraintSource clears the value of the "constraint_source" field.
func (_u *ClientVulnUpdate) ClearConstraintSource() *ClientVulnUpdate {
	_u.mutation.ClearConstraintSource()
	return _u
}

// SetResolvedVersion sets the "resolved_version" field.
func (_u *ClientVulnUpdate) SetResolvedVersion(v string) *ClientVulnUpdate {
	_u.mutation.SetResolvedVersion(v)
	return _u
}

// SetNillableResolvedVersion sets the "resolved_version" field if the given value is not nil.
func (_u *ClientVulnUpdate) SetNillableResolvedVersion(v *string) *ClientVulnUpdate {
	if v != nil {
		_u.SetResolvedVersion(*v)
	}
	return _u
}

// ClearResolvedVersion clears the value of the "resolved_version" field.
func (_u *ClientVulnUpdate) ClearResolvedVersion() *ClientVulnUpdate {
	_u.mutation.ClearResolvedVersion()
	return _u
}

// SetReachablePath sets the "reachable_path" field.
func (_u *ClientVulnUpdate) SetReachablePath(v map[string]interface{}) *ClientVulnUpdate {
	_u.mutation.SetReachablePath(v)
	return _u
}

// ClearReachablePath clears the value of the "reachable_path" field.
func (_u *ClientVulnUpdate) ClearReachablePath() *ClientVulnUpdate {
	_u.mutation.ClearReachablePath()
	return _u
}

// SetPocResults sets the "poc_results" field.
func (_u *ClientVulnUpdate) SetPocResults(v map[string]interface{}) *ClientVulnUpdate {
	_u.mutation.SetPocResults(v)
	return _u
}

// ClearPocResults clears the value of the "poc_results" field.
func (_u *ClientVulnUpdate) ClearPocResults() *ClientVulnUpdate {
	_u.mutation.ClearPocResults()
	return _u
}

// SetReport sets the "report" field.
func (_u *ClientVulnUpdate) SetReport(v map[string]interface{}) *ClientVulnUpdate {
	_u.mutation.SetReport(v)
	return _u
}

// ClearReport clears the value of the "report" field.
func (_u *ClientVulnUpdate) ClearReport() *ClientVulnUpdate {
	_u.mutation.ClearReport()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ClientVulnUpdate) SetErrorMessage(v string) *ClientVulnUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ClientVulnUpdate) SetNillableErrorMessage(v *string) *ClientVulnUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ClientVulnUpdate) ClearErrorMessage() *ClientVulnUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetAnalysisCompletedAt sets the "analysis_completed_at" field.
func (_u *ClientVulnUpdate) SetAnalysisCompletedAt(v time.Time) *ClientVulnUpdate {
	_u.mutation.SetAnalysisCompletedAt(v)
	return _u
}

// SetNillableAnalysisCompletedAt sets the "analysis_completed_at" field if the given value is not nil.
func (_u *ClientVulnUpdate) SetNillableAnalysisCompletedAt(v *time.Time) *ClientVulnUpdate {
	if v != nil {
		_u.SetAnalysisCompletedAt(*v)
	}
	return _u
}

// ClearAnalysisCompletedAt clears the value of the "analysis_completed_at" field.
func (_u *ClientVulnUpdate) ClearAnalysisCompletedAt() *ClientVulnUpdate {
	_u.mutation.ClearAnalysisCompletedAt()
	return _u
}

// SetRecordedAt sets the "recorded_at" field.
func (_u *ClientVulnUpdate) SetRecordedAt(v time.Time) *ClientVulnUpdate {
	_u.mutation.SetRecordedAt(v)
	return _u
}

// SetNillableRecordedAt sets the "recorded_at" field if the given value is not nil.
func (_u *ClientVulnUpdate) SetNillableRecordedAt(v *time.Time) *ClientVulnUpdate {
	if v != nil {
		_u.SetRecordedAt(*v)
	}
	return _u
}

// ClearRecordedAt clears the value of the "recorded_at" field.
func (_u *ClientVulnUpdate) ClearRecordedAt() *ClientVulnUpdate {
	_u.mutation.ClearRecordedAt()
	return _u
}

// SetReportedAt sets the "reported_at" field.
func (_u *ClientVulnUpdate) SetReportedAt(v time.Time) *ClientVulnUpdate {
	_u.mutation.SetReportedAt(v)
	return _u
}

// SetNillableReportedAt sets the "reported_at" field if the given value is not nil.
func (_u *ClientVulnUpdate) SetNillableReportedAt(v *time.Time) *ClientVulnUpdate {
	if v != nil {
		_u.SetReportedAt(*v)
	}
	return _u
}

// ClearReportedAt clears the value of the "reported_at" field.
func (_u *ClientVulnUpdate) ClearReportedAt() *ClientVulnUpdate {
	_u.mutation.ClearReportedAt()
	return _u
}

// SetConfirmedAt sets the "confirmed_at" field.
func (_u *ClientVulnUpdate) SetConfirmedAt(v time.Time) *ClientVulnUpdate {
	_u.mutation.SetConfirmedAt(v)
	return _u
}

// SetNillableConfirmedAt sets the "confirmed_at" field if the given value is not nil.
func (_u *ClientVulnUpdate) SetNillableConfirmedAt(v *time.Time) *ClientVulnUpdate {
	if v != nil {
		_u.SetConfirmedAt(*v)
	}
	return _u
}

// ClearConfirmedAt clears the value of the "confirmed_at" field.
func (_u *ClientVulnUpdate) ClearConfirmedAt() *ClientVulnUpdate {
	_u.mutation.ClearConfirmedAt()
	return _u
}

// SetFixedAt sets the "fixed_at" field.
func (_u *ClientVulnUpdate) SetFixedAt(v time.Time) *ClientVulnUpdate {
	_u.mutation.SetFixedAt(v)
	return _u
}

// SetNillableFixedAt sets the "fixed_at" field if the given value is not nil.
func (_u *ClientVulnUpdate) SetNillableFixedAt(v *time.Time) *ClientVulnUpdate {
	if v != nil {
		_u.SetFixedAt(*v)
	}
	return _u
}

// ClearFixedAt clears the value of the "fixed_at" field.
func (_u *ClientVulnUpdate) ClearFixedAt() *ClientVulnUpdate {
	_u.mutation.ClearFixedAt()
	return _u
}

// SetNotAffectAt sets the "not_affect_at" field.
func (_u *ClientVulnUpdate) SetNotAffectAt(v time.Time) *ClientVulnUpdate {
	_u.mutation.SetNotAffectAt(v)
	return _u
}

// SetNillableNotAffectAt sets the "not_affect_at" field if the given value is not nil.
func (_u *ClientVulnUpdate) SetNillableNotAffectAt(v *time.Time) *ClientVulnUpdate {
	if v != nil {
		_u.SetNotAffectAt(*v)
	}
	return _u
}

// ClearNotAffectAt clears the value of the "not_affect_at" field.
func (_u *ClientVulnUpdate) ClearNotAffectAt() *ClientVulnUpdate {
	_u.mutation.ClearNotAffectAt()
	return _u
}

// SetConfirmedMsg sets the "confirmed_msg" field.
func (_u *ClientVulnUpdate) SetConfirmedMsg(v string) *ClientVulnUpdate {
	_u.mutation.SetConfirmedMsg(v)
	return _u
}

// SetNillableConfirmedMsg sets the "confirmed_msg" field if the given value is not nil.
func (_u *ClientVulnUpdate) SetNillableConfirmedMsg(v *string) *ClientVulnUpdate {
	if v != nil {
		_u.SetConfirmedMsg(*v)
	}
	return _u
}

// ClearConfirmedMsg clears the value of the "confirmed_msg" field.
func (_u *ClientVulnUpdate) ClearConfirmedMsg() *ClientVulnUpdate {
	_u.mutation.ClearConfirmedMsg()
	return _u
}

// SetFixedMsg sets the "fixed_msg" field.
func (_u *ClientVulnUpdate) SetFixedMsg(v string) *ClientVulnUpdate {
	_u.mutation.SetFixedMsg(v)
	return _u
}

// SetNillableFixedMsg sets the "fixed_msg" field if the given value is not nil.
func (_u *ClientVulnUpdate) SetNillableFixedMsg(v *string) *ClientVulnUpdate {
	if v != nil {
		_u.SetFixedMsg(*v)
	}
	return _u
}

// ClearFixedMsg clears the value of the "fixed_msg" field.
func (_u *ClientVulnUpdate) ClearFixedMsg() *ClientVulnUpdate {
	_u.mutation.ClearFixedMsg()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ClientVulnUpdate) SetUpdatedAt(v time.Time) *ClientVulnUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUpstreamVuln sets the "upstream_vuln" edge to the UpstreamVuln entity.
func (_u *ClientVulnUpdate) SetUpstreamVuln(v *UpstreamVuln) *ClientVulnUpdate {
	return _u.SetUpstreamVulnID(v.ID)
}

// SetProject sets the "project" edge to the Project entity.
func (_u *ClientVulnUpdate) SetProject(v *Project) *ClientVulnUpdate {
	return _u.SetProjectID(v.ID)
}

// Mutation returns the ClientVulnMutation object of the builder.
func (_u *ClientVulnUpdate) Mutation() *ClientVulnMutation {
	return _u.mutation
}

// ClearUpstreamVuln clears the "upstream_vuln" edge to the UpstreamVuln entity.
func (_u *ClientVulnUpdate) ClearUpstreamVuln() *ClientVulnUpdate {
	_u.mutation.ClearUpstreamVuln()
	return _u
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *ClientVulnUpdate) ClearProject() *ClientVulnUpdate {
	_u.mutation.ClearProject()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ClientVulnUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClientVulnUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ClientVulnUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClientVulnUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ClientVulnUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := clientvuln.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ClientVulnUpdate) check() error {
	if v, ok := _u.mutation.PipelineStatus(); ok {
		if err := clientvuln.PipelineStatusValidator(v); err != nil {
			return &ValidationError{Name: "pipeline_status", err: fmt.Errorf(`ent: validator failed for field "ClientVuln.pipeline_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := clientvuln.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ClientVuln.status": %w`, err)}
		}
	}
	if _u.mutation.UpstreamVulnCleared() && len(_u.mutation.UpstreamVulnIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ClientVuln.upstream_vuln"`)
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ClientVuln.project"`)
	}
	return nil
}

func (_u *ClientVulnUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(clientvuln.Table, clientvuln.Columns, sqlgraph.NewFieldSpec(clientvuln.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PipelineStatus(); ok {
		_spec.SetField(clientvuln.FieldPipelineStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(clientvuln.FieldStatus, field.TypeEnum, value)
	}
	if _u.mutation.StatusCleared() {
		_spec.ClearField(clientvuln.FieldStatus, field.TypeEnum)
	}
	if value, ok := _u.mutation.IsAffected(); ok {
		_spec.SetField(clientvuln.FieldIsAffected, field.TypeBool, value)
	}
	if _u.mutation.IsAffectedCleared() {
		_spec.ClearField(clientvuln.FieldIsAffected, field.TypeBool)
	}
	if value, ok := _u.mutation.ConstraintExpr(); ok {
		_spec.SetField(clientvuln.FieldConstraintExpr, field.TypeString, value)
	}
	if _u.mutation.ConstraintExprCleared() {
		_spec.ClearField(clientvuln.FieldConstraintExpr, field.TypeString)
	}
	if value, ok := _u.mutation.ConstraintSource(); ok {
		_spec.SetField(clientvuln.FieldConstraintSource, field.TypeString, value)
	}
	if _u.mutation.ConstraintSourceCleared() {
		_spec.ClearField(clientvuln.FieldConstraintSource, field.TypeString)
	}
	if value, ok := _u.mutation.ResolvedVersion(); ok {
		_spec.SetField(clientvuln.FieldResolvedVersion, field.TypeString, value)
	}
	if _u.mutation.ResolvedVersionCleared() {
		_spec.ClearField(clientvuln.FieldResolvedVersion, field.TypeString)
	}
	if value, ok := _u.mutation.ReachablePath(); ok {
		_spec.SetField(clientvuln.FieldReachablePath, field.TypeJSON, value)
	}
	if _u.mutation.ReachablePathCleared() {
		_spec.ClearField(clientvuln.FieldReachablePath, field.TypeJSON)
	}
	if value, ok := _u.mutation.PocResults(); ok {
		_spec.SetField(clientvuln.FieldPocResults, field.TypeJSON, value)
	}
	if _u.mutation.PocResultsCleared() {
		_spec.ClearField(clientvuln.FieldPocResults, field.TypeJSON)
	}
	if value, ok := _u.mutation.Report(); ok {
		_spec.SetField(clientvuln.FieldReport, field.TypeJSON, value)
	}
	if _u.mutation.ReportCleared() {
		_spec.ClearField(clientvuln.FieldReport, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(clientvuln.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(clientvuln.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.AnalysisCompletedAt(); ok {
		_spec.SetField(clientvuln.FieldAnalysisCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.AnalysisCompletedAtCleared() {
		_spec.ClearField(clientvuln.FieldAnalysisCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RecordedAt(); ok {
		_spec.SetField(clientvuln.FieldRecordedAt, field.TypeTime, value)
	}
	if _u.mutation.RecordedAtCleared() {
		_spec.ClearField(clientvuln.FieldRecordedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ReportedAt(); ok {
		_spec.SetField(clientvuln.FieldReportedAt, field.TypeTime, value)
	}
	if _u.mutation.ReportedAtCleared() {
		_spec.ClearField(clientvuln.FieldReportedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ConfirmedAt(); ok {
		_spec.SetField(clientvuln.FieldConfirmedAt, field.TypeTime, value)
	}
	if _u.mutation.ConfirmedAtCleared() {
		_spec.ClearField(clientvuln.FieldConfirmedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FixedAt(); ok {
		_spec.SetField(clientvuln.FieldFixedAt, field.TypeTime, value)
	}
	if _u.mutation.FixedAtCleared() {
		_spec.ClearField(clientvuln.FieldFixedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.NotAffectAt(); ok {
		_spec.SetField(clientvuln.FieldNotAffectAt, field.TypeTime, value)
	}
	if _u.mutation.NotAffectAtCleared() {
		_spec.ClearField(clientvuln.FieldNotAffectAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ConfirmedMsg(); ok {
		_spec.SetField(clientvuln.FieldConfirmedMsg, field.TypeString, value)
	}
	if _u.mutation.ConfirmedMsgCleared() {
		_spec.ClearField(clientvuln.FieldConfirmedMsg, field.TypeString)
	}
	if value, ok := _u.mutation.FixedMsg(); ok {
		_spec.SetField(clientvuln.FieldFixedMsg, field.TypeString, value)
	}
	if _u.mutation.FixedMsgCleared() {
		_spec.ClearField(clientvuln.FieldFixedMsg, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(clientvuln.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.UpstreamVulnCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UpstreamVulnIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ProjectCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProjectIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{clientvuln.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ClientVulnUpdateOne is the builder for updating a single ClientVuln entity.
type ClientVulnUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ClientVulnMutation
}

// SetUpstreamVulnID sets the "upstream_vuln_id" field.
func (_u *ClientVulnUpdateOne) SetUpstreamVulnID(v string) *ClientVulnUpdateOne {
	_u.mutation.SetUpstreamVulnID(v)
	return _u
}

// SetNillableUpstreamVulnID sets the "upstream_vuln_id" field if the given value is not nil.
func (_u *ClientVulnUpdateOne) SetNillableUpstreamVulnID(v *string) *ClientVulnUpdateOne {
	if v != nil {
		_u.SetUpstreamVulnID(*v)
	}
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *ClientVulnUpdateOne) SetProjectID(v string) *ClientVulnUpdateOne {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *ClientVulnUpdateOne) SetNillableProjectID(v *string) *ClientVulnUpdateOne {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetPipelineStatus sets the "pipeline_status" field.
func (_u *ClientVulnUpdateOne) SetPipelineStatus(v clientvuln.PipelineStatus) *ClientVulnUpdateOne {
	_u.mutation.SetPipelineStatus(v)
	return _u
}

// SetNillablePipelineStatus sets the "pipeline_status" field if the given value is not nil.
func (_u *ClientVulnUpdateOne) SetNillablePipelineStatus(v *clientvuln.PipelineStatus) *ClientVulnUpdateOne {
	if v != nil {
		_u.SetPipelineStatus(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ClientVulnUpdateOne) SetStatus(v clientvuln.Status) *ClientVulnUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ClientVulnUpdateOne) SetNillableStatus(v *clientvuln.Status) *ClientVulnUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// ClearStatus clears the value of the "status" field.
func (_u *ClientVulnUpdateOne) ClearStatus() *ClientVulnUpdateOne {
	_u.mutation.ClearStatus()
	return _u
}

// SetIsAffected sets the "is_affected" field.
func (_u *ClientVulnUpdateOne) SetIsAffected(v bool) *ClientVulnUpdateOne {
	_u.mutation.SetIsAffected(v)
	return _u
}

// SetNillableIsAffected sets the "is_affected" field if the given value is not nil.
func (_u *ClientVulnUpdateOne) SetNillableIsAffected(v *bool) *ClientVulnUpdateOne {
	if v != nil {
		_u.SetIsAffected(*v)
	}
	return _u
}

// ClearIsAffected clears the value of the "is_affected" field.
func (_u *ClientVulnUpdateOne) ClearIsAffected() *ClientVulnUpdateOne {
	_u.mutation.ClearIsAffected()
	return _u
}

// SetConstraintExpr sets the "constraint_expr" field.
func (_u *ClientVulnUpdateOne) SetConstraintExpr(v string) *ClientVulnUpdateOne {
	_u.mutation.SetConstraintExpr(v)
	return _u
}

// SetNillableConstraintExpr sets the "constraint_expr" field if the given value is not nil.
func (_u *ClientVulnUpdateOne) SetNillableConstraintExpr(v *string) *ClientVulnUpdateOne {
	if v != nil {
		_u.SetConstraintExpr(*v)
	}
	return _u
}

// ClearConstraintExpr clears the value of the "constraint_expr" field.
func (_u *ClientVulnUpdateOne) ClearConstraintExpr() *ClientVulnUpdateOne {
	_u.mutation.ClearConstraintExpr()
	return _u
}

// SetConstraintSource sets the "constraint_source" field.
func (_u *ClientVulnUpdateOne) SetConstraintSource(v string) *ClientVulnUpdateOne {
	_u.mutation.SetConstraintSource(v)
	return _u
}

// SetNillableConstraintSource sets the "constraint_source" field if the given value is not nil.
func (_u *ClientVulnUpdateOne) SetNillableConstraintSource(v *string) *ClientVulnUpdateOne {
	if v != nil {
		_u.SetConstraintSource(*v)
	}
	return _u
}

// ClearConstraintSource clears the value of the "constraint_source" field.
func (_u *ClientVulnUpdateOne) ClearConstraintSource() *ClientVulnUpdateOne {
	_u.mutation.ClearConstraintSource()
	return _u
}

// SetResolvedVersion sets the "resolved_version" field.
func (_u *ClientVulnUpdateOne) SetResolvedVersion(v string) *ClientVulnUpdateOne {
	_u.mutation.SetResolvedVersion(v)
	return _u
}

// SetNillableResolvedVersion sets the "resolved_version" field if the given value is not nil.
func (_u *ClientVulnUpdateOne) SetNillableResolvedVersion(v *string) *ClientVulnUpdateOne {
	if v != nil {
		_u.SetResolvedVersion(*v)
	}
	return _u
}

// ClearResolvedVersion clears the value of the "resolved_version" field.
func (_u *ClientVulnUpdateOne) ClearResolvedVersion() *ClientVulnUpdateOne {
	_u.mutation.ClearResolvedVersion()
	return _u
}

// SetReachablePath sets the "reachable_path" field.
func (_u *ClientVulnUpdateOne) SetReachablePath(v map[string]interface{}) *ClientVulnUpdateOne {
	_u.mutation.SetReachablePath(v)
	return _u
}

// ClearReachablePath clears the value of the "reachable_path" field.
func (_u *ClientVulnUpdateOne) ClearReachablePath() *ClientVulnUpdateOne {
	_u.mutation.ClearReachablePath()
	return _u
}

// SetPocResults sets the "poc_results" field.
func (_u *ClientVulnUpdateOne) SetPocResults(v map[string]interface{}) *ClientVulnUpdateOne {
	_u.mutation.SetPocResults(v)
	return _u
}

// ClearPocResults clears the value of the "poc_results" field.
func (_u *ClientVulnUpdateOne) ClearPocResults() *ClientVulnUpdateOne {
	_u.mutation.ClearPocResults()
	return _u
}

// SetReport sets the "report" field.
func (_u *ClientVulnUpdateOne) SetReport(v map[string]interface{}) *ClientVulnUpdateOne {
	_u.mutation.SetReport(v)
	return _u
}

// ClearReport clears the value of the "report" field.
func (_u *ClientVulnUpdateOne) ClearReport() *ClientVulnUpdateOne {
	_u.mutation.ClearReport()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ClientVulnUpdateOne) SetErrorMessage(v string) *ClientVulnUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ClientVulnUpdateOne) SetNillableErrorMessage(v *string) *ClientVulnUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ClientVulnUpdateOne) ClearErrorMessage() *ClientVulnUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetAnalysisCompletedAt sets the "analysis_completed_at" field.
func (_u *ClientVulnUpdateOne) SetAnalysisCompletedAt(v time.Time) *ClientVulnUpdateOne {
	_u.mutation.SetAnalysisCompletedAt(v)
	return _u
}

// SetNillableAnalysisCompletedAt sets the "analysis_completed_at" field if the given value is not nil.
func (_u *ClientVulnUpdateOne) SetNillableAnalysisCompletedAt(v *time.Time) *ClientVulnUpdateOne {
	if v != nil {
		_u.SetAnalysisCompletedAt(*v)
	}
	return _u
}

// ClearAnalysisCompletedAt clears the value of the "analysis_completed_at" field.
func (_u *ClientVulnUpdateOne) ClearAnalysisCompletedAt() *ClientVulnUpdateOne {
	_u.mutation.ClearAnalysisCompletedAt()
	return _u
}

// SetRecordedAt sets the "recorded_at" field.
func (_u *ClientVulnUpdateOne) SetRecordedAt(v time.Time) *ClientVulnUpdateOne {
	_u.mutation.SetRecordedAt(v)
	return _u
}

// SetNillableRecordedAt sets the "recorded_at" field if the given value is not nil.
func (_u *ClientVulnUpdateOne) SetNillableRecordedAt(v *time.Time) *ClientVulnUpdateOne {
	if v != nil {
		_u.SetRecordedAt(*v)
	}
	return _u
}

// ClearRecordedAt clears the value of the "recorded_at" field.
func (_u *ClientVulnUpdateOne) ClearRecordedAt() *ClientVulnUpdateOne {
	_u.mutation.ClearRecordedAt()
	return _u
}

// SetReportedAt sets the "reported_at" field.
func (_u *ClientVulnUpdateOne) SetReportedAt(v time.Time) *ClientVulnUpdateOne {
	_u.mutation.SetReportedAt(v)
	return _u
}

// SetNillableReportedAt sets the "reported_at" field if the given value is not nil.
func (_u *ClientVulnUpdateOne) SetNillableReportedAt(v *time.Time) *ClientVulnUpdateOne {
	if v != nil {
		_u.SetReportedAt(*v)
	}
	return _u
}

// ClearReportedAt clears the value of the "reported_at" field.
func (_u *ClientVulnUpdateOne) ClearReportedAt() *ClientVulnUpdateOne {
	_u.mutation.ClearReportedAt()
	return _u
}

// SetConfirmedAt sets the "confirmed_at" field.
func (_u *ClientVulnUpdateOne) SetConfirmedAt(v time.Time) *ClientVulnUpdateOne {
	_u.mutation.SetConfirmedAt(v)
	return _u
}

// SetNillableConfirmedAt sets the "confirmed_at" field if the given value is not nil.
func (_u *ClientVulnUpdateOne) SetNillableConfirmedAt(v *time.Time) *ClientVulnUpdateOne {
	if v != nil {
		_u.SetConfirmedAt(*v)
	}
	return _u
}

// ClearConfirmedAt clears the value of the "confirmed_at" field.
func (_u *ClientVulnUpdateOne) ClearConfirmedAt() *ClientVulnUpdateOne {
	_u.mutation.ClearConfirmedAt()
	return _u
}

// SetFixedAt sets the "fixed_at" field.
func (_u *ClientVulnUpdateOne) SetFixedAt(v time.Time) *ClientVulnUpdateOne {
	_u.mutation.SetFixedAt(v)
	return _u
}

// SetNillableFixedAt sets the "fixed_at" field if the given value is not nil.
func (_u *ClientVulnUpdateOne) SetNillableFixedAt(v *time.Time) *ClientVulnUpdateOne {
	if v != nil {
		_u.SetFixedAt(*v)
	}
	return _u
}

// ClearFixedAt clears the value of the "fixed_at" field.
func (_u *ClientVulnUpdateOne) ClearFixedAt() *ClientVulnUpdateOne {
	_u.mutation.ClearFixedAt()
	return _u
}

// SetNotAffectAt sets the "not_affect_at" field.
func (_u *ClientVulnUpdateOne) SetNotAffectAt(v time.Time) *ClientVulnUpdateOne {
	_u.mutation.SetNotAffectAt(v)
	return _u
}

// SetNillableNotAffectAt sets the "not_affect_at" field if the given value is not nil.
func (_u *ClientVulnUpdateOne) SetNillableNotAffectAt(v *time.Time) *ClientVulnUpdateOne {
	if v != nil {
		_u.SetNotAffectAt(*v)
	}
	return _u
}

// ClearNotAffectAt clears the value of the "not_affect_at" field.
func (_u *ClientVulnUpdateOne) ClearNotAffectAt() *ClientVulnUpdateOne {
	_u.mutation.ClearNotAffectAt()
	return _u
}

// SetConfirmedMsg sets the "confirmed_msg" field.
func (_u *ClientVulnUpdateOne) SetConfirmedMsg(v string) *ClientVulnUpdateOne {
	_u.mutation.SetConfirmedMsg(v)
	return _u
}

// SetNillableConfirmedMsg sets the "confirmed_msg" field if the given value is not nil.
func (_u *ClientVulnUpdateOne) SetNillableConfirmedMsg(v *string) *ClientVulnUpdateOne {
	if v != nil {
		_u.SetConfirmedMsg(*v)
	}
	return _u
}

// ClearConfirmedMsg clears the value of the "confirmed_msg" field.
func (_u *ClientVulnUpdateOne) ClearConfirmedMsg() *ClientVulnUpdateOne {
	_u.mutation.ClearConfirmedMsg()
	return _u
}

// SetFixedMsg sets the "fixed_msg" field.
func (_u *ClientVulnUpdateOne) SetFixedMsg(v string) *ClientVulnUpdateOne {
	_u.mutation.SetFixedMsg(v)
	return _u
}

// SetNillableFixedMsg sets the "fixed_msg" field if the given value is not nil.
func (_u *ClientVulnUpdateOne) SetNillableFixedMsg(v *string) *ClientVulnUpdateOne {
	if v != nil {
		_u.SetFixedMsg(*v)
	}
	return _u
}

// ClearFixedMsg clears the value of the "fixed_msg" field.
func (_u *ClientVulnUpdateOne) ClearFixedMsg() *ClientVulnUpdateOne {
	_u.mutation.ClearFixedMsg()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ClientVulnUpdateOne) SetUpdatedAt(v time.Time) *ClientVulnUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUpstreamVuln sets the "upstream_vuln" edge to the UpstreamVuln entity.
func (_u *ClientVulnUpdateOne) SetUpstreamVuln(v *UpstreamVuln) *ClientVulnUpdateOne {
	return _u.SetUpstreamVulnID(v.ID)
}

// SetProject sets the "project" edge to the Project entity.
func (_u *ClientVulnUpdateOne) SetProject(v *Project) *ClientVulnUpdateOne {
	return _u.SetProjectID(v.ID)
}

// Mutation returns the ClientVulnMutation object of the builder.
func (_u *ClientVulnUpdateOne) Mutation() *ClientVulnMutation {
	return _u.mutation
}

// ClearUpstreamVuln clears the "upstream_vuln" edge to the UpstreamVuln entity.
func (_u *ClientVulnUpdateOne) ClearUpstreamVuln() *ClientVulnUpdateOne {
	_u.mutation.ClearUpstreamVuln()
	return _u
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *ClientVulnUpdateOne) ClearProject() *ClientVulnUpdateOne {
	_u.mutation.ClearProject()
	return _u
}

// Where appends a list predicates to the ClientVulnUpdate builder.
func (_u *ClientVulnUpdateOne) Where(ps ...predicate.ClientVuln) *ClientVulnUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ClientVulnUpdateOne) Select(field string, fields ...string) *ClientVulnUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ClientVuln entity.
func (_u *ClientVulnUpdateOne) Save(ctx context.Context) (*ClientVuln, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClientVulnUpdateOne) SaveX(ctx context.Context) *ClientVuln {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ClientVulnUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClientVulnUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ClientVulnUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := clientvuln.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ClientVulnUpdateOne) check() error {
	if v, ok := _u.mutation.PipelineStatus(); ok {
		if err := clientvuln.PipelineStatusValidator(v); err != nil {
			return &ValidationError{Name: "pipeline_status", err: fmt.Errorf(`ent: validator failed for field "ClientVuln.pipeline_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := clientvuln.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ClientVuln.status": %w`, err)}
		}
	}
	if _u.mutation.UpstreamVulnCleared() && len(_u.mutation.UpstreamVulnIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ClientVuln.upstream_vuln"`)
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ClientVuln.project"`)
	}
	return nil
}

func (_u *ClientVulnUpdateOne) sqlSave(ctx context.Context) (_node *ClientVuln, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(clientvuln.Table, clientvuln.Columns, sqlgraph.NewFieldSpec(clientvuln.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ClientVuln.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, clientvuln.FieldID)
		for _, f := range fields {
			if !clientvuln.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != clientvuln.FieldID {
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
	if value, ok := _u.mutation.PipelineStatus(); ok {
		_spec.SetField(clientvuln.FieldPipelineStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(clientvuln.FieldStatus, field.TypeEnum, value)
	}
	if _u.mutation.StatusCleared() {
		_spec.ClearField(clientvuln.FieldStatus, field.TypeEnum)
	}
	if value, ok := _u.mutation.IsAffected(); ok {
		_spec.SetField(clientvuln.FieldIsAffected, field.TypeBool, value)
	}
	if _u.mutation.IsAffectedCleared() {
		_spec.ClearField(clientvuln.FieldIsAffected, field.TypeBool)
	}
	if value, ok := _u.mutation.ConstraintExpr(); ok {
		_spec.SetField(clientvuln.FieldConstraintExpr, field.TypeString, value)
	}
	if _u.mutation.ConstraintExprCleared() {
		_spec.ClearField(clientvuln.FieldConstraintExpr, field.TypeString)
	}
	if value, ok := _u.mutation.ConstraintSource(); ok {
		_spec.SetField(clientvuln.FieldConstraintSource, field.TypeString, value)
	}
	if _u.mutation.ConstraintSourceCleared() {
		_spec.ClearField(clientvuln.FieldConstraintSource, field.TypeString)
	}
	if value, ok := _u.mutation.ResolvedVersion(); ok {
		_spec.SetField(clientvuln.FieldResolvedVersion, field.TypeString, value)
	}
	if _u.mutation.ResolvedVersionCleared() {
		_spec.ClearField(clientvuln.FieldResolvedVersion, field.TypeString)
	}
	if value, ok := _u.mutation.ReachablePath(); ok {
		_spec.SetField(clientvuln.FieldReachablePath, field.TypeJSON, value)
	}
	if _u.mutation.ReachablePathCleared() {
		_spec.ClearField(clientvuln.FieldReachablePath, field.TypeJSON)
	}
	if value, ok := _u.mutation.PocResults(); ok {
		_spec.SetField(clientvuln.FieldPocResults, field.TypeJSON, value)
	}
	if _u.mutation.PocResultsCleared() {
		_spec.ClearField(clientvuln.FieldPocResults, field.TypeJSON)
	}
	if value, ok := _u.mutation.Report(); ok {
		_spec.SetField(clientvuln.FieldReport, field.TypeJSON, value)
	}
	if _u.mutation.ReportCleared() {
		_spec.ClearField(clientvuln.FieldReport, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(clientvuln.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(clientvuln.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.AnalysisCompletedAt(); ok {
		_spec.SetField(clientvuln.FieldAnalysisCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.AnalysisCompletedAtCleared() {
		_spec.ClearField(clientvuln.FieldAnalysisCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RecordedAt(); ok {
		_spec.SetField(clientvuln.FieldRecordedAt, field.TypeTime, value)
	}
	if _u.mutation.RecordedAtCleared() {
		_spec.ClearField(clientvuln.FieldRecordedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ReportedAt(); ok {
		_spec.SetField(clientvuln.FieldReportedAt, field.TypeTime, value)
	}
	if _u.mutation.ReportedAtCleared() {
		_spec.ClearField(clientvuln.FieldReportedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ConfirmedAt(); ok {
		_spec.SetField(clientvuln.FieldConfirmedAt, field.TypeTime, value)
	}
	if _u.mutation.ConfirmedAtCleared() {
		_spec.ClearField(clientvuln.FieldConfirmedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FixedAt(); ok {
		_spec.SetField(clientvuln.FieldFixedAt, field.TypeTime, value)
	}
	if _u.mutation.FixedAtCleared() {
		_spec.ClearField(clientvuln.FieldFixedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.NotAffectAt(); ok {
		_spec.SetField(clientvuln.FieldNotAffectAt, field.TypeTime, value)
	}
	if _u.mutation.NotAffectAtCleared() {
		_spec.ClearField(clientvuln.FieldNotAffectAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ConfirmedMsg(); ok {
		_spec.SetField(clientvuln.FieldConfirmedMsg, field.TypeString, value)
	}
	if _u.mutation.ConfirmedMsgCleared() {
		_spec.ClearField(clientvuln.FieldConfirmedMsg, field.TypeString)
	}
	if value, ok := _u.mutation.FixedMsg(); ok {
		_spec.SetField(clientvuln.FieldFixedMsg, field.TypeString, value)
	}
	if _u.mutation.FixedMsgCleared() {
		_spec.ClearField(clientvuln.FieldFixedMsg, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(clientvuln.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.UpstreamVulnCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UpstreamVulnIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ProjectCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProjectIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ClientVuln{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{clientvuln.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
