// Code generated by ent, DO NOT EDIT.

package projectdependency

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/vulnsentinel/vulnsentinel/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldContainsFold(FieldID, id))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v string) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldEQ(FieldProjectID, v))
}

// LibraryID applies equality check predicate on the "library_id" field. It's identical to LibraryIDEQ.
func LibraryID(v string) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldEQ(FieldLibraryID, v))
}

// ConstraintExpr applies equality check predicate on the "constraint_expr" field. It's identical to ConstraintExprEQ.
func ConstraintExpr(v string) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldEQ(FieldConstraintExpr, v))
}

// ResolvedVersion applies equality check predicate on the "resolved_version" field. It's identical to ResolvedVersionEQ.
func ResolvedVersion(v string) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldEQ(FieldResolvedVersion, v))
}

// ConstraintSource applies equality check predicate on the "constraint_source" field. It's identical to ConstraintSourceEQ.
func ConstraintSource(v string) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldEQ(FieldConstraintSource, v))
}

// NotifyEnabled applies equality check predicate on the "notify_enabled" field. It's identical to NotifyEnabledEQ.
func NotifyEnabled(v bool) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldEQ(FieldNotifyEnabled, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldEQ(FieldUpdatedAt, v))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v string) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v string) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...string) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...string) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldNotIn(FieldProjectID, vs...))
}

// ProjectIDGT applies the GT predicate on the "project_id" field.
func ProjectIDGT(v string) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldGT(FieldProjectID, v))
}

// ProjectIDGTE applies the GTE predicate on the "project_id" field.
func ProjectIDGTE(v string) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldGTE(FieldProjectID, v))
}

// ProjectIDLT applies the LT predicate on the "project_id" field.
func ProjectIDLT(v string) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldLT(FieldProjectID, v))
}

// ProjectIDLTE applies the LTE predicate on the "project_id" field.
func ProjectIDLTE(v string) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldLTE(FieldProjectID, v))
}

// ProjectIDContains applies the Contains predicate on the "project_id" field.
func ProjectIDContains(v string) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldContains(FieldProjectID, v))
}

// ProjectIDHasPrefix applies the HasPrefix predicate on the "project_id" field.
func ProjectIDHasPrefix(v string) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldHasPrefix(FieldProjectID, v))
}

// ProjectIDHasSuffix applies the HasSuffix predicate on the "project_id" field.
func ProjectIDHasSuffix(v string) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldHasSuffix(FieldProjectID, v))
}

// ProjectIDEqualFold applies the EqualFold predicate on the "project_id" field.
func ProjectIDEqualFold(v string) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldEqualFold(FieldProjectID, v))
}

// ProjectIDContainsFold applies the ContainsFold predicate on the "project_id" field.
func ProjectIDContainsFold(v string) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldContainsFold(FieldProjectID, v))
}

// LibraryIDEQ applies the EQ predicate on the "library_id" field.
func LibraryIDEQ(v string) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldEQ(FieldLibraryID, v))
}

// LibraryIDNEQ applies the NEQ predicate on the "library_id" field.
func LibraryIDNEQ(v string) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldNEQ(FieldLibraryID, v))
}

// LibraryIDIn applies the In predicate on the "library_id" field.
func LibraryIDIn(vs ...string) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldIn(FieldLibraryID, vs...))
}

// LibraryIDNotIn applies the NotIn predicate on the "library_id" field.
func LibraryIDNotIn(vs ...string) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldNotIn(FieldLibraryID, vs...))
}

// LibraryIDGT applies the GT predicate on the "library_id" field.
func LibraryIDGT(v string) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldGT(FieldLibraryID, v))
}

// LibraryIDGTE applies the GTE predicate on the "library_id" field.
func LibraryIDGTE(v string) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldGTE(FieldLibraryID, v))
}

// LibraryIDLT applies the LT predicate on the "library_id" field.
func LibraryIDLT(v string) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldLT(FieldLibraryID, v))
}

// LibraryIDLTE applies the LTE predicate on the "library_id" field.
func LibraryIDLTE(v string) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldLTE(FieldLibraryID, v))
}

// LibraryIDContains applies the Contains predicate on the "library_id" field.
func LibraryIDContains(v string) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldContains(FieldLibraryID, v))
}

// LibraryIDHasPrefix applies the HasPrefix predicate on the "library_id" field.
func LibraryIDHasPrefix(v string) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldHasPrefix(FieldLibraryID, v))
}

// LibraryIDHasSuffix applies the HasSuffix predicate on the "library_id" field.
func LibraryIDHasSuffix(v string) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldHasSuffix(FieldLibraryID, v))
}

// LibraryIDEqualFold applies the EqualFold predicate on the "library_id" field.
func LibraryIDEqualFold(v string) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldEqualFold(FieldLibraryID, v))
}

// LibraryIDContainsFold applies the ContainsFold predicate on the "library_id" field.
func LibraryIDContainsFold(v string) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldContainsFold(FieldLibraryID, v))
}

// ConstraintExprEQ applies the EQ predicate on the "constraint_expr" field.
func ConstraintExprEQ(v string) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldEQ(FieldConstraintExpr, v))
}

// ConstraintExprNEQ applies the NEQ predicate on the "constraint_expr" field.
func ConstraintExprNEQ(v string) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldNEQ(FieldConstraintExpr, v))
}

// ConstraintExprIn applies the In predicate on the "constraint_expr" field.
func ConstraintExprIn(vs ...string) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldIn(FieldConstraintExpr, vs...))
}

// ConstraintExprNotIn applies the NotIn predicate on the "constraint_expr" field.
func ConstraintExprNotIn(vs ...string) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldNotIn(FieldConstraintExpr, vs...))
}

// ConstraintExprGT applies the GT predicate on the "constraint_expr" field.
func ConstraintExprGT(v string) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldGT(FieldConstraintExpr, v))
}

// ConstraintExprGTE applies the GTE predicate on the "constraint_expr" field.
func ConstraintExprGTE(v string) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldGTE(FieldConstraintExpr, v))
}

// ConstraintExprLT applies the LT predicate on the "constraint_expr" field.
func ConstraintExprLT(v string) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldLT(FieldConstraintExpr, v))
}

// ConstraintExprLTE applies the LTE predicate on the "constraint_expr" field.
func ConstraintExprLTE(v string) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldLTE(FieldConstraintExpr, v))
}

// ConstraintExprContains applies the Contains predicate on the "constraint_expr" field.
func ConstraintExprContains(v string) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldContains(FieldConstraintExpr, v))
}

// ConstraintExprHasPrefix applies the HasPrefix predicate on the "constraint_expr" field.
func ConstraintExprHasPrefix(v string) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldHasPrefix(FieldConstraintExpr, v))
}

// ConstraintExprHasSuffix applies the HasSuffix predicate on the "constraint_expr" field.
func ConstraintExprHasSuffix(v string) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldHasSuffix(FieldConstraintExpr, v))
}

// ConstraintExprEqualFold applies the EqualFold predicate on the "constraint_expr" field.
func ConstraintExprEqualFold(v string) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldEqualFold(FieldConstraintExpr, v))
}

// ConstraintExprContainsFold applies the ContainsFold predicate on the "constraint_expr" field.
func ConstraintExprContainsFold(v string) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldContainsFold(FieldConstraintExpr, v))
}

// ResolvedVersionEQ applies the EQ predicate on the "resolved_version" field.
func ResolvedVersionEQ(v string) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldEQ(FieldResolvedVersion, v))
}

// ResolvedVersionNEQ applies the NEQ predicate on the "resolved_version" field.
func ResolvedVersionNEQ(v string) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldNEQ(FieldResolvedVersion, v))
}

// ResolvedVersionIn applies the In predicate on the "resolved_version" field.
func ResolvedVersionIn(vs ...string) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldIn(FieldResolvedVersion, vs...))
}

// ResolvedVersionNotIn applies the NotIn predicate on the "resolved_version" field.
func ResolvedVersionNotIn(vs ...string) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldNotIn(FieldResolvedVersion, vs...))
}

// ResolvedVersionGT applies the GT predicate on the "resolved_version" field.
func ResolvedVersionGT(v string) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldGT(FieldResolvedVersion, v))
}

// ResolvedVersionGTE applies the GTE predicate on the "resolved_version" field.
func ResolvedVersionGTE(v string) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldGTE(FieldResolvedVersion, v))
}

// ResolvedVersionLT applies the LT predicate on the "resolved_version" field.
func ResolvedVersionLT(v string) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldLT(FieldResolvedVersion, v))
}

// ResolvedVersionLTE applies the LTE predicate on the "resolved_version" field.
func ResolvedVersionLTE(v string) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldLTE(FieldResolvedVersion, v))
}

// ResolvedVersionContains applies the Contains predicate on the "resolved_version" field.
func ResolvedVersionContains(v string) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldContains(FieldResolvedVersion, v))
}

// ResolvedVersionHasPrefix applies the HasPrefix predicate on the "resolved_version" field.
func ResolvedVersionHasPrefix(v string) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldHasPrefix(FieldResolvedVersion, v))
}

// ResolvedVersionHasSuffix applies the HasSuffix predicate on the "resolved_version" field.
func ResolvedVersionHasSuffix(v string) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldHasSuffix(FieldResolvedVersion, v))
}

// ResolvedVersionIsNil applies the IsNil predicate on the "resolved_version" field.
func ResolvedVersionIsNil() predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldIsNull(FieldResolvedVersion))
}

// ResolvedVersionNotNil applies the NotNil predicate on the "resolved_version" field.
func ResolvedVersionNotNil() predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldNotNull(FieldResolvedVersion))
}

// ResolvedVersionEqualFold applies the EqualFold predicate on the "resolved_version" field.
func ResolvedVersionEqualFold(v string) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldEqualFold(FieldResolvedVersion, v))
}

// ResolvedVersionContainsFold applies the ContainsFold predicate on the "resolved_version" field.
func ResolvedVersionContainsFold(v string) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldContainsFold(FieldResolvedVersion, v))
}

// ConstraintSourceEQ applies the EQ predicate on the "constraint_source" field.
func ConstraintSourceEQ(v string) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldEQ(FieldConstraintSource, v))
}

// ConstraintSourceNEQ applies the NEQ predicate on the "constraint_source" field.
func ConstraintSourceNEQ(v string) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldNEQ(FieldConstraintSource, v))
}

// ConstraintSourceIn applies the In predicate on the "constraint_source" field.
func ConstraintSourceIn(vs ...string) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldIn(FieldConstraintSource, vs...))
}

// ConstraintSourceNotIn applies the NotIn predicate on the "constraint_source" field.
func ConstraintSourceNotIn(vs ...string) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldNotIn(FieldConstraintSource, vs...))
}

// ConstraintSourceGT applies the GT predicate on the "constraint_source" field.
func ConstraintSourceGT(v string) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldGT(FieldConstraintSource, v))
}

// ConstraintSourceGTE applies the GTE predicate on the "constraint_source" field.
func ConstraintSourceGTE(v string) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldGTE(FieldConstraintSource, v))
}

// ConstraintSourceLT applies the LT predicate on the "constraint_source" field.
func ConstraintSourceLT(v string) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldLT(FieldConstraintSource, v))
}

// ConstraintSourceLTE applies the LTE predicate on the "constraint_source" field.
func ConstraintSourceLTE(v string) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldLTE(FieldConstraintSource, v))
}

// ConstraintSourceContains applies the Contains predicate on the "constraint_source" field.
func ConstraintSourceContains(v string) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldContains(FieldConstraintSource, v))
}

// ConstraintSourceHasPrefix applies the HasPrefix predicate on the "constraint_source" field.
func ConstraintSourceHasPrefix(v string) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldHasPrefix(FieldConstraintSource, v))
}

// ConstraintSourceHasSuffix applies the HasSuffix predicate on the "constraint_source" field.
func ConstraintSourceHasSuffix(v string) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldHasSuffix(FieldConstraintSource, v))
}

// ConstraintSourceEqualFold applies the EqualFold predicate on the "constraint_source" field.
func ConstraintSourceEqualFold(v string) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldEqualFold(FieldConstraintSource, v))
}

// ConstraintSourceContainsFold applies the ContainsFold predicate on the "constraint_source" field.
func ConstraintSourceContainsFold(v string) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldContainsFold(FieldConstraintSource, v))
}

// NotifyEnabledEQ applies the EQ predicate on the "notify_enabled" field.
func NotifyEnabledEQ(v bool) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldEQ(FieldNotifyEnabled, v))
}

// NotifyEnabledNEQ applies the NEQ predicate on the "notify_enabled" field.
func NotifyEnabledNEQ(v bool) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldNEQ(FieldNotifyEnabled, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasProject applies the HasEdge predicate on the "project" edge.
func HasProject() predicate.ProjectDependency {
	return predicate.ProjectDependency(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProjectWith applies the HasEdge predicate on the "project" edge with a given conditions (other predicates).
func HasProjectWith(preds ...predicate.Project) predicate.ProjectDependency {
	return predicate.ProjectDependency(func(s *sql.Selector) {
		step := newProjectStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasLibrary applies the HasEdge predicate on the "library" edge.
func HasLibrary() predicate.ProjectDependency {
	return predicate.ProjectDependency(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, LibraryTable, LibraryColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLibraryWith applies the HasEdge predicate on the "library" edge with a given conditions (other predicates).
func HasLibraryWith(preds ...predicate.Library) predicate.ProjectDependency {
	return predicate.ProjectDependency(func(s *sql.Selector) {
		step := newLibraryStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ProjectDependency) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ProjectDependency) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ProjectDependency) predicate.ProjectDependency {
	return predicate.ProjectDependency(sql.NotPredicates(p))
}
