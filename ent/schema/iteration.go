package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Iteration holds the schema definition for the Iteration entity: one
// Micro→Meso→Meta refinement cycle within a run.
type Iteration struct {
	ent.Schema
}

// Fields of the Iteration.
func (Iteration) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("iteration_id").
			Unique().
			Immutable(),
		field.String("run_id").
			Immutable(),
		field.Int("iteration_number").
			Min(1).
			Immutable().
			Comment("Dense and monotone per run, starting at 1"),
		field.Enum("status").
			Values("active", "succeeded", "failed").
			Default("active"),
		field.Float("convergence_score").
			Optional().
			Nillable().
			Comment("Set only when the iteration succeeds"),
		field.Time("started_at").
			Default(time.Now).
			Immutable(),
		field.Time("ended_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Iteration.
func (Iteration) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", Run.Type).
			Ref("iterations").
			Field("run_id").
			Unique().
			Required().
			Immutable(),
		edge.To("agent_records", AgentRecord.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Iteration.
func (Iteration) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id", "iteration_number").
			Unique(),
		index.Fields("run_id", "status"),
	}
}
