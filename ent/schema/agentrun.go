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

// AgentRun holds the schema definition for one LLM agent invocation.
// Audit-only: runs are written once after the agent loop exits.
type AgentRun struct {
	ent.Schema
}

// Fields of the AgentRun.
func (AgentRun) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			DefaultFunc(uuid.NewString).
			Unique().
			Immutable(),
		field.String("agent_type").
			Comment("classifier | analyzer"),
		field.String("model"),
		field.String("target_id").
			Comment("Entity the run operated on (event or vuln id)"),
		field.Int("turns").
			Default(0),
		field.Int("input_tokens").
			Default(0),
		field.Int("output_tokens").
			Default(0),
		field.Float("estimated_cost_usd").
			Default(0),
		field.Int64("duration_ms").
			Default(0),
		field.Enum("status").
			Values("running", "completed", "failed", "timeout").
			Default("running"),
		field.String("error_message").
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

// Edges of the AgentRun.
func (AgentRun) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("tool_calls", AgentToolCall.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the AgentRun.
func (AgentRun) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("agent_type"),
		index.Fields("target_id"),
		index.Fields("created_at", "id"),
	}
}
