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

// Library holds the schema definition for a tracked upstream repository.
type Library struct {
	ent.Schema
}

// Fields of the Library.
func (Library) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			DefaultFunc(uuid.NewString).
			Unique().
			Immutable(),
		field.String("name").
			Unique().
			Comment("Canonical library name; fork protection key"),
		field.String("repo_url"),
		field.String("platform").
			Default("github"),
		field.String("ecosystem").
			Optional().
			Comment("Package ecosystem tag (e.g., 'conan')"),
		field.String("default_branch").
			Default("main"),
		field.String("last_commit_sha").
			Optional().
			Nillable().
			Comment("Collector watermark for the commits source"),
		field.String("last_tag_name").
			Optional().
			Nillable().
			Comment("Collector watermark for the tags source"),
		field.Time("last_scanned_at").
			Optional().
			Nillable(),
		field.Enum("collector_health").
			Values("healthy", "unhealthy").
			Default("healthy"),
		field.JSON("collector_detail", map[string]string{}).
			Optional().
			Comment("Per-source status map: commits|prs|tags|issues|ghsa -> status"),
		field.String("collector_error").
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

// Edges of the Library.
func (Library) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("events", Event.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("upstream_vulns", UpstreamVuln.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("dependencies", ProjectDependency.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Library.
func (Library) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("collector_health"),
		index.Fields("created_at", "id"),
	}
}
