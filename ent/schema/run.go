package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Run holds the schema definition for the Run entity: one end-to-end
// analysis of a paper set against a research question.
type Run struct {
	ent.Schema
}

// Fields of the Run.
func (Run) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("run_id").
			Unique().
			Immutable(),
		field.String("workspace_id").
			Immutable(),
		field.String("owner_id").
			Optional().
			Nillable().
			Comment("Pass-through identity from the gateway; not validated here"),
		field.Text("query").
			Comment("The research question driving the run"),
		field.JSON("domains", []string{}).
			Optional(),
		field.Int("max_iterations").
			Min(1).
			Max(10),
		field.Float("convergence_threshold").
			Min(0).
			Max(1),
		field.Enum("status").
			Values("pending", "running", "converged", "completed", "failed", "cancelled").
			Default("pending"),
		field.Int("current_iteration").
			Default(0).
			Comment("Number of finished iterations; never exceeds max_iterations"),
		field.Int("progress_percentage").
			Default(0).
			Comment("Monotonically non-decreasing while the run is non-terminal"),
		field.Int("recoveries_used").
			Default(0).
			Comment("Iteration-retry budget consumed; at most one recovery per run"),
		field.Bool("sandbox_fallback").
			Default(false).
			Comment("When true, an exhausted provider cascade falls back to the deterministic sandbox"),
		field.String("error_message").
			Optional().
			Nillable().
			Comment("Terminal failure summary"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Run.
func (Run) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("papers", Paper.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("iterations", Iteration.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("agent_records", AgentRecord.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("log_entries", LogEntry.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("result", ResultRecord.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("events", Event.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Run.
func (Run) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("workspace_id"),
		index.Fields("status", "created_at"),
	}
}
