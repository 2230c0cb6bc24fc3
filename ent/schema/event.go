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

// Event holds the schema definition for one observation in an upstream repo:
// a commit, a merged PR, a tag, or a bug issue.
type Event struct {
	ent.Schema
}

// Fields of the Event.
func (Event) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			DefaultFunc(uuid.NewString).
			Unique().
			Immutable(),
		field.String("library_id"),
		field.Enum("type").
			Values("commit", "pr_merge", "tag", "bug_issue"),
		field.String("ref").
			Comment("Commit SHA, PR number, tag name, or issue number"),
		field.String("title"),
		field.Text("message").
			Optional(),
		field.String("author").
			Optional(),
		field.String("related_issue_ref").
			Optional().
			Nillable().
			Comment("Issue number extracted from 'Fixes #N' style references"),
		field.String("related_pr_ref").
			Optional().
			Nillable().
			Comment("PR number extracted from the '(#N)' title suffix"),
		field.String("related_commit_sha").
			Optional().
			Nillable(),
		field.Enum("classification").
			Values("security_bugfix", "normal_bugfix", "refactor", "feature", "other").
			Optional().
			Nillable().
			Comment("Null until the classifier has run"),
		field.Float("confidence").
			Optional().
			Nillable(),
		field.Bool("is_bugfix").
			Default(false).
			Comment("Derived: true iff classification = security_bugfix"),
		field.Time("occurred_at").
			Optional().
			Nillable().
			Comment("Upstream timestamp (commit date, merge time, ...)"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Event.
func (Event) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("library", Library.Type).
			Ref("events").
			Field("library_id").
			Unique().
			Required(),
		edge.To("upstream_vulns", UpstreamVuln.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Event.
func (Event) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("library_id", "type", "ref").
			Unique(),
		index.Fields("classification"),
		index.Fields("is_bugfix"),
		index.Fields("created_at", "id"),
	}
}
