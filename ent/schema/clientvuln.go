package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// ClientVuln holds the schema definition for the intersection of one
// UpstreamVuln with one affected client Project. It carries two orthogonal
// state machines: the automated pipeline status and the customer-facing
// lifecycle status. Rows are never deleted; they are the audit trail.
type ClientVuln struct {
	ent.Schema
}

// Fields of the ClientVuln.
func (ClientVuln) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			DefaultFunc(uuid.NewString).
			Unique().
			Immutable(),
		field.String("upstream_vuln_id"),
		field.String("project_id"),
		field.Enum("pipeline_status").
			Values("pending", "path_searching", "poc_generating", "verified", "not_affect").
			Default("pending"),
		field.Enum("status").
			Values("recorded", "reported", "confirmed", "fixed", "not_affect").
			Optional().
			Nillable().
			Comment("Customer-facing status; null until reachability finalizes"),
		field.Bool("is_affected").
			Optional().
			Nillable(),
		field.String("constraint_expr").
			Optional().
			Comment("Denormalized from the owning ProjectDependency"),
		field.String("constraint_source").
			Optional(),
		field.String("resolved_version").
			Optional().
			Nillable(),
		field.JSON("reachable_path", map[string]any{}).
			Optional(),
		field.JSON("poc_results", map[string]any{}).
			Optional(),
		field.JSON("report", map[string]any{}).
			Optional().
			Comment("Rendered notification record, e.g. {type:'email', to, subject}"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Time("analysis_completed_at").
			Optional().
			Nillable(),
		field.Time("recorded_at").
			Optional().
			Nillable(),
		field.Time("reported_at").
			Optional().
			Nillable(),
		field.Time("confirmed_at").
			Optional().
			Nillable(),
		field.Time("fixed_at").
			Optional().
			Nillable(),
		field.Time("not_affect_at").
			Optional().
			Nillable(),
		field.Text("confirmed_msg").
			Optional().
			Nillable(),
		field.Text("fixed_msg").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the ClientVuln.
func (ClientVuln) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("upstream_vuln", UpstreamVuln.Type).
			Ref("client_vulns").
			Field("upstream_vuln_id").
			Unique().
			Required(),
		edge.From("project", Project.Type).
			Ref("client_vulns").
			Field("project_id").
			Unique().
			Required(),
	}
}

// Indexes of the ClientVuln.
func (ClientVuln) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("upstream_vuln_id", "project_id").
			Unique(),
		index.Fields("pipeline_status"),
		index.Fields("status"),
		index.Fields("created_at", "id"),
	}
}
