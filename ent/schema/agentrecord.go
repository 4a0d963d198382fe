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

// AgentRecord holds the schema definition for the AgentRecord entity:
// one execution of one agent (Micro, Meso, or Meta) within an iteration.
type AgentRecord struct {
	ent.Schema
}

// Annotations of the AgentRecord.
func (AgentRecord) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "agents"},
	}
}

// Fields of the AgentRecord.
func (AgentRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("agent_id").
			Unique().
			Immutable(),
		field.String("run_id").
			Immutable(),
		field.String("iteration_id").
			Immutable(),
		field.Enum("agent_type").
			Values("micro", "meso", "meta").
			Immutable(),
		field.String("subject_ref").
			Immutable().
			Comment("paper_id for micro, iteration_id for meso/meta"),
		field.Enum("status").
			Values("queued", "running", "succeeded", "failed").
			Default("queued"),
		field.Int("attempts").
			Default(0),
		field.JSON("output", map[string]any{}).
			Optional(),
		field.String("error").
			Optional().
			Nillable(),
		field.String("provider").
			Optional().
			Nillable().
			Comment("LLM provider that fulfilled this agent's calls"),
		field.String("model").
			Optional().
			Nillable(),
		field.Int("prompt_tokens").
			Optional().
			Nillable(),
		field.Int("completion_tokens").
			Optional().
			Nillable(),
		field.Int("latency_ms").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Doubles as the version stamp for conditional updates"),
	}
}

// Edges of the AgentRecord.
func (AgentRecord) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", Run.Type).
			Ref("agent_records").
			Field("run_id").
			Unique().
			Required().
			Immutable(),
		edge.From("iteration", Iteration.Type).
			Ref("agent_records").
			Field("iteration_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the AgentRecord.
func (AgentRecord) Indexes() []ent.Index {
	return []ent.Index{
		// Idempotency key: re-delivered jobs upsert against this tuple.
		index.Fields("run_id", "iteration_id", "agent_type", "subject_ref").
			Unique(),
		index.Fields("iteration_id", "status"),
		index.Fields("run_id", "updated_at"),
	}
}
