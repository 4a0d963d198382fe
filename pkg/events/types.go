// Package events is the observer channel: typed run events are
// persisted to the events table and broadcast via PostgreSQL
// NOTIFY/LISTEN for cross-pod delivery, then fanned out to SSE
// subscribers. Delivery to a subscriber is at-least-once and in
// per-run order; reconnecting clients catch up by last event id.
package events

// Persistent event types (stored in DB + NOTIFY).
const (
	// EventTypeRunStatus fires on every run state transition.
	EventTypeRunStatus = "run.status"
	// EventTypeLog fires for each appended run log entry.
	EventTypeLog = "run.log"
	// EventTypeIteration fires when an iteration opens or settles.
	EventTypeIteration = "run.iteration"
	// EventTypeResult fires once when the result record is persisted.
	EventTypeResult = "run.result"
)

// Transient event types (NOTIFY only, no DB persistence).
const (
	// EventTypeProgress carries the progress percentage ticker.
	EventTypeProgress = "run.progress"
)

// GlobalRunsChannel carries run-level status events for every run. The
// run list page subscribes to this for real-time updates.
const GlobalRunsChannel = "runs"

// RunChannel returns the channel name for a specific run's events.
// Format: "run:{run_id}"
func RunChannel(runID string) string {
	return "run:" + runID
}
