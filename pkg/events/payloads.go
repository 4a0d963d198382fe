package events

import (
	"github.com/vi3318/Research-AI-sub000/ent/iteration"
	"github.com/vi3318/Research-AI-sub000/ent/logentry"
	"github.com/vi3318/Research-AI-sub000/ent/run"
)

// StatusPayload is the payload for run.status events.
type StatusPayload struct {
	Type             string     `json:"type"` // always EventTypeRunStatus
	RunID            string     `json:"run_id"`
	Status           run.Status `json:"status"`
	CurrentIteration int        `json:"current_iteration"`
	Progress         int        `json:"progress_percentage"`
	Error            string     `json:"error,omitempty"`
	Timestamp        string     `json:"timestamp"` // RFC3339Nano
}

// LogPayload is the payload for run.log events.
type LogPayload struct {
	Type        string         `json:"type"` // always EventTypeLog
	RunID       string         `json:"run_id"`
	IterationID string         `json:"iteration_id,omitempty"`
	AgentID     string         `json:"agent_id,omitempty"`
	Level       logentry.Level `json:"level"`
	Message     string         `json:"message"`
	Timestamp   string         `json:"timestamp"` // RFC3339Nano
}

// IterationPayload is the payload for run.iteration events.
type IterationPayload struct {
	Type             string           `json:"type"` // always EventTypeIteration
	RunID            string           `json:"run_id"`
	IterationID      string           `json:"iteration_id"`
	IterationNumber  int              `json:"iteration_number"`
	Status           iteration.Status `json:"status"`
	ConvergenceScore *float64         `json:"convergence_score,omitempty"`
	Timestamp        string           `json:"timestamp"` // RFC3339Nano
}

// ResultPayload is the payload for run.result events. The full result
// body can exceed the NOTIFY limit; subscribers fetch it over the
// results endpoint, so only the summary travels here.
type ResultPayload struct {
	Type           string `json:"type"` // always EventTypeResult
	RunID          string `json:"run_id"`
	ResultID       string `json:"result_id"`
	RankedGapCount int    `json:"ranked_gap_count"`
	Timestamp      string `json:"timestamp"` // RFC3339Nano
}

// ProgressPayload is the payload for run.progress transient events.
type ProgressPayload struct {
	Type             string `json:"type"` // always EventTypeProgress
	RunID            string `json:"run_id"`
	CurrentIteration int    `json:"current_iteration"`
	Progress         int    `json:"progress_percentage"`
	Timestamp        string `json:"timestamp"` // RFC3339Nano
}
