package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// UpstreamVuln holds the schema definition for one vulnerability extracted
// from an Event. One Event may yield multiple UpstreamVulns.
type UpstreamVuln struct {
	ent.Schema
}

// Fields of the UpstreamVuln.
func (UpstreamVuln) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			DefaultFunc(uuid.NewString).
			Unique().
			Immutable(),
		field.String("event_id"),
		field.String("library_id"),
		field.String("commit_sha").
			Optional(),
		field.String("vuln_type").
			Optional().
			Nillable().
			Comment("One of the canonical vulnerability types"),
		field.Enum("severity").
			Values("critical", "high", "medium", "low").
			Optional().
			Nillable(),
		field.String("affected_versions").
			Optional().
			Nillable().
			Comment("Affected version range expression"),
		field.Text("summary").
			Optional().
			Nillable(),
		field.Text("reasoning").
			Optional().
			Nillable(),
		field.JSON("upstream_poc", map[string]any{}).
			Optional().
			Comment("LLM-produced proof-of-concept material; shape may drift"),
		field.JSON("affected_functions", []string{}).
			Optional(),
		field.Enum("status").
			Values("analyzing", "published").
			Default("analyzing"),
		field.Time("published_at").
			Optional().
			Nillable(),
		field.String("error_message").
			Optional().
			Nillable().
			Comment("Set when analysis failed; row stays as a placeholder"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the UpstreamVuln.
func (UpstreamVuln) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("event", Event.Type).
			Ref("upstream_vulns").
			Field("event_id").
			Unique().
			Required(),
		edge.From("library", Library.Type).
			Ref("upstream_vulns").
			Field("library_id").
			Unique().
			Required(),
		edge.To("client_vulns", ClientVuln.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the UpstreamVuln.
func (UpstreamVuln) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("event_id"),
		index.Fields("library_id"),
		index.Fields("status"),
		index.Fields("created_at", "id"),
	}
}
