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

// Project holds the schema definition for a tracked client repository.
type Project struct {
	ent.Schema
}

// Fields of the Project.
func (Project) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			DefaultFunc(uuid.NewString).
			Unique().
			Immutable(),
		field.String("name"),
		field.String("organization").
			Optional(),
		field.String("repo_url").
			Unique(),
		field.String("default_branch").
			Default("main"),
		field.String("current_version").
			Optional().
			Nillable().
			Comment("Version pointer used for client call-graph snapshots"),
		field.String("pinned_ref").
			Optional().
			Nillable().
			Comment("When set, dependency scanning is frozen at this ref"),
		field.Bool("auto_sync_deps").
			Default(true),
		field.String("scan_status").
			Optional(),
		field.String("scan_error").
			Optional().
			Nillable(),
		field.Time("last_scanned_at").
			Optional().
			Nillable(),
		field.String("contact_email").
			Optional().
			Comment("Maintainer contact for notifications"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Project.
func (Project) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("dependencies", ProjectDependency.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("client_vulns", ClientVuln.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Project.
func (Project) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("auto_sync_deps"),
		index.Fields("created_at", "id"),
	}
}
