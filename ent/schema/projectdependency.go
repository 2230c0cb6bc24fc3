package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// ProjectDependency links a Project to a Library it depends on.
// The same (project, library) pair may appear once per constraint source,
// e.g. a manual entry alongside a scanner-discovered one.
type ProjectDependency struct {
	ent.Schema
}

// Fields of the ProjectDependency.
func (ProjectDependency) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			DefaultFunc(uuid.NewString).
			Unique().
			Immutable(),
		field.String("project_id"),
		field.String("library_id"),
		field.String("constraint_expr").
			Comment("Version range expression, e.g. '>=1.2 <2.0'"),
		field.String("resolved_version").
			Optional().
			Nillable(),
		field.String("constraint_source").
			Default("manual").
			Comment("manual | conanfile.txt | CMakeLists.txt | scan"),
		field.Bool("notify_enabled").
			Default(true),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the ProjectDependency.
func (ProjectDependency) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("dependencies").
			Field("project_id").
			Unique().
			Required(),
		edge.From("library", Library.Type).
			Ref("dependencies").
			Field("library_id").
			Unique().
			Required(),
	}
}

// Indexes of the ProjectDependency.
func (ProjectDependency) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id", "library_id", "constraint_source").
			Unique(),
		index.Fields("library_id"),
	}
}
