package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Paper holds the schema definition for the Paper entity: an input
// document for a run. Papers are immutable after creation.
type Paper struct {
	ent.Schema
}

// Fields of the Paper.
func (Paper) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("paper_id").
			Unique().
			Immutable(),
		field.String("run_id").
			Immutable(),
		field.Text("title").
			Immutable(),
		field.Text("abstract").
			Optional().
			Nillable().
			Immutable(),
		field.Text("full_text").
			Optional().
			Nillable().
			Immutable(),
		field.Int("ingestion_order").
			Immutable().
			Comment("Stable position in the submitted paper list"),
	}
}

// Edges of the Paper.
func (Paper) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", Run.Type).
			Ref("papers").
			Field("run_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Paper.
func (Paper) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id", "ingestion_order").
			Unique(),
	}
}
