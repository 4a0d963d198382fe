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

// LogEntry holds the schema definition for the LogEntry entity: an
// append-only event within a run. Entries are immutable after creation;
// the serial primary key breaks created_at ties for total ordering.
type LogEntry struct {
	ent.Schema
}

// Annotations of the LogEntry.
func (LogEntry) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "logs"},
	}
}

// Fields of the LogEntry.
func (LogEntry) Fields() []ent.Field {
	return []ent.Field{
		field.Int("id").
			Immutable(),
		field.String("run_id").
			Immutable(),
		field.String("iteration_id").
			Optional().
			Nillable().
			Immutable(),
		field.String("agent_id").
			Optional().
			Nillable().
			Immutable(),
		field.Enum("level").
			Values("debug", "info", "warn", "error").
			Immutable(),
		field.Text("message").
			Immutable(),
		field.JSON("payload", map[string]any{}).
			Optional().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the LogEntry.
func (LogEntry) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", Run.Type).
			Ref("log_entries").
			Field("run_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the LogEntry.
func (LogEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id", "created_at"),
		index.Fields("run_id", "level"),
	}
}
