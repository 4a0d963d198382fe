package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// OrchestrationLock holds the schema definition for the OrchestrationLock
// entity, the fencing row that guarantees at most one orchestrator per
// run. Acquired by conditional insert (a unique-violation means another
// orchestrator holds the fence) and released on terminal transition.
// Stale locks are reclaimed when the heartbeat goes quiet.
type OrchestrationLock struct {
	ent.Schema
}

// Fields of the OrchestrationLock.
func (OrchestrationLock) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("run_id").
			Unique().
			Immutable(),
		field.String("pod_id"),
		field.Time("acquired_at").
			Default(time.Now).
			Immutable(),
		field.Time("heartbeat_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the OrchestrationLock.
func (OrchestrationLock) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("heartbeat_at"),
	}
}
