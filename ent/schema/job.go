package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Job holds the schema definition for the Job entity: the backing store
// for the named queues (micro, meso, meta, orchestrator). Delivery is
// at-least-once: workers claim pending jobs with FOR UPDATE SKIP LOCKED
// and failed attempts are rescheduled with exponential backoff.
type Job struct {
	ent.Schema
}

// Fields of the Job.
func (Job) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("job_id").
			Unique().
			Immutable(),
		field.String("queue").
			Immutable().
			Comment("micro, meso, meta, or orchestrator"),
		field.String("run_id").
			Optional().
			Immutable().
			Comment("Tag for drain-on-cancel; empty for non-run jobs"),
		field.JSON("payload", map[string]any{}),
		field.Enum("status").
			Values("pending", "running", "succeeded", "failed", "cancelled").
			Default("pending"),
		field.Int("attempt").
			Default(0),
		field.Int("max_attempts").
			Default(3),
		field.Time("next_run_at").
			Default(time.Now).
			Comment("Not eligible for claiming before this instant"),
		field.String("last_error").
			Optional().
			Nillable(),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("Claimer identity, for orphan recovery"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Job.
func (Job) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("queue", "status", "next_run_at"),
		index.Fields("run_id", "status"),
		index.Fields("status", "pod_id"),
	}
}
