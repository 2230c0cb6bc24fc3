package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// AgentToolCall holds the schema definition for one tool call within an
// AgentRun.
type AgentToolCall struct {
	ent.Schema
}

// Fields of the AgentToolCall.
func (AgentToolCall) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			DefaultFunc(uuid.NewString).
			Unique().
			Immutable(),
		field.String("agent_run_id"),
		field.Int("seq").
			Comment("Position within the run, 1-based"),
		field.String("tool_name"),
		field.Text("arguments").
			Optional().
			Comment("JSON arguments as sent by the model"),
		field.Int("output_bytes").
			Default(0),
		field.Int64("duration_ms").
			Default(0),
		field.Bool("is_error").
			Default(false),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the AgentToolCall.
func (AgentToolCall) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", AgentRun.Type).
			Ref("tool_calls").
			Field("agent_run_id").
			Unique().
			Required(),
	}
}

// Indexes of the AgentToolCall.
func (AgentToolCall) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("agent_run_id", "seq"),
	}
}
