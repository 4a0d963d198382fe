package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ResultRecord holds the schema definition for the ResultRecord entity:
// the final output payload of a terminal-success run. At most one per run.
type ResultRecord struct {
	ent.Schema
}

// Annotations of the ResultRecord.
func (ResultRecord) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "results"},
	}
}

// Fields of the ResultRecord.
func (ResultRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("result_id").
			Unique().
			Immutable(),
		field.String("run_id").
			Unique().
			Immutable(),
		field.JSON("data", map[string]any{}).
			Comment("rankedGaps, crossDomainPatterns, researchFrontiers"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the ResultRecord.
func (ResultRecord) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", Run.Type).
			Ref("result").
			Field("run_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ResultRecord.
func (ResultRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id").
			Unique(),
	}
}
