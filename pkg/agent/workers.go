// Package agent implements the three worker tiers of the analysis
// pipeline. Micro workers extract gaps from single papers, the Meso
// worker clusters an iteration's gaps into themes, and the Meta worker
// ranks gaps and synthesizes cross-domain findings. Each worker is a
// queue handler: idempotent on its agent-record tuple, tolerant of
// re-delivery, and observable through persisted logs and call stats.
package agent

import (
	"context"
	"errors"
	"log/slog"

	"github.com/vi3318/Research-AI-sub000/ent"
	"github.com/vi3318/Research-AI-sub000/ent/agentrecord"
	"github.com/vi3318/Research-AI-sub000/ent/logentry"
	"github.com/vi3318/Research-AI-sub000/pkg/events"
	"github.com/vi3318/Research-AI-sub000/pkg/llm"
	"github.com/vi3318/Research-AI-sub000/pkg/queue"
	"github.com/vi3318/Research-AI-sub000/pkg/services"
)

// Workers bundles the dependencies every handler needs. Register the
// exported handlers on the queue pool; one Workers instance serves all
// three tiers.
type Workers struct {
	gateway   *llm.Gateway
	agents    *services.AgentService
	logs      *services.LogService
	publisher *events.Publisher
	logger    *slog.Logger
}

// NewWorkers wires the worker handlers.
func NewWorkers(gateway *llm.Gateway, agents *services.AgentService, logs *services.LogService, publisher *events.Publisher, logger *slog.Logger) *Workers {
	return &Workers{
		gateway:   gateway,
		agents:    agents,
		logs:      logs,
		publisher: publisher,
		logger:    logger.With("component", "agent_workers"),
	}
}

// begin resolves the agent record for a job delivery. A record that
// already succeeded means this is a re-delivery of finished work, in
// which case the handler must return nil without acting.
func (w *Workers) begin(ctx context.Context, runID, iterationID string, agentType agentrecord.AgentType, subjectRef string) (rec *ent.AgentRecord, skip bool, err error) {
	err = services.WithRetry(ctx, "agent.ensure", func(ctx context.Context) error {
		var e error
		rec, e = w.agents.Ensure(ctx, runID, iterationID, agentType, subjectRef)
		return e
	})
	if err != nil {
		return nil, false, err
	}
	if rec.Status == agentrecord.StatusSucceeded {
		return rec, true, nil
	}

	err = services.WithRetry(ctx, "agent.mark_running", func(ctx context.Context) error {
		var e error
		rec, e = w.agents.MarkRunning(ctx, rec.ID)
		return e
	})
	if errors.Is(err, services.ErrConflict) {
		// Lost a race with a concurrent delivery that finished first.
		return rec, true, nil
	}
	if err != nil {
		return nil, false, err
	}
	return rec, false, nil
}

// succeed persists the output and stats, then logs the tier's summary line.
func (w *Workers) succeed(ctx context.Context, rec *ent.AgentRecord, output map[string]any, stats llm.Stats, message string) error {
	callStats := services.CallStats{
		Provider:         stats.Provider,
		Model:            stats.Model,
		PromptTokens:     stats.PromptTokens,
		CompletionTokens: stats.CompletionTokens,
		LatencyMS:        stats.LatencyMS,
	}
	err := services.WithRetry(ctx, "agent.succeed", func(ctx context.Context) error {
		return w.agents.Succeed(ctx, rec.ID, output, callStats)
	})
	if err != nil {
		return err
	}
	w.log(ctx, rec, logentry.LevelInfo, message)
	return nil
}

// fail marks the record failed with its engine code and returns the
// job-level error: permanent when retrying cannot help, otherwise the
// original error so the queue's backoff applies.
func (w *Workers) fail(ctx context.Context, rec *ent.AgentRecord, cause error) error {
	code := Classify(cause)
	if ferr := services.WithRetry(ctx, "agent.fail", func(ctx context.Context) error {
		return w.agents.Fail(ctx, rec.ID, string(code))
	}); ferr != nil {
		w.logger.Error("Failed to persist agent failure",
			"agent_id", rec.ID, "cause", cause, "error", ferr)
	}
	w.log(ctx, rec, logentry.LevelError, string(code)+": "+cause.Error())

	switch code {
	case CodeSchema, CodeInvariant:
		return queue.Permanent(WithCode(cause))
	case CodeCancelled:
		return queue.ErrRunCancelled
	default:
		return WithCode(cause)
	}
}

// log persists a run log entry and broadcasts it; failures here are
// logged locally and never fail the job.
func (w *Workers) log(ctx context.Context, rec *ent.AgentRecord, level logentry.Level, message string) {
	fields := []services.LogField{
		services.WithIteration(rec.IterationID),
		services.WithAgent(rec.ID),
	}
	if _, err := w.logs.Append(ctx, rec.RunID, level, message, fields...); err != nil {
		w.logger.Warn("Failed to persist log entry", "run_id", rec.RunID, "error", err)
		return
	}
	if w.publisher == nil {
		return
	}
	payload := events.LogPayload{
		RunID:       rec.RunID,
		IterationID: rec.IterationID,
		AgentID:     rec.ID,
		Level:       level,
		Message:     message,
	}
	if err := w.publisher.PublishLog(ctx, rec.RunID, payload); err != nil {
		w.logger.Warn("Failed to publish log event", "run_id", rec.RunID, "error", err)
	}
}

// generateStructured calls the gateway, allowing one fresh call after a
// malformed response. A second schema failure is terminal for the agent;
// every other failure surfaces unchanged.
func (w *Workers) generateStructured(ctx context.Context, req llm.Request) (*llm.Result, error) {
	res, err := w.gateway.Generate(ctx, req)
	if err == nil {
		return res, nil
	}
	if !errors.Is(err, llm.ErrSchema) {
		return nil, err
	}
	w.logger.Warn("Malformed structured output, retrying once",
		"agent_type", req.AgentType, "error", err)
	return w.gateway.Generate(ctx, req)
}
