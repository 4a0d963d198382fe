package orchestrator

import (
	"context"

	"github.com/vi3318/Research-AI-sub000/ent/iteration"
	"github.com/vi3318/Research-AI-sub000/ent/logentry"
	"github.com/vi3318/Research-AI-sub000/pkg/events"
)

// Observability helpers. Failures to log or publish never fail the run;
// they are reported on the process logger and dropped.

func (e *Engine) logInfo(ctx context.Context, runID, message string) {
	e.appendLog(ctx, runID, logentry.LevelInfo, message)
}

func (e *Engine) logWarn(ctx context.Context, runID, message string) {
	e.appendLog(ctx, runID, logentry.LevelWarn, message)
}

func (e *Engine) logError(ctx context.Context, runID, message string) {
	e.appendLog(ctx, runID, logentry.LevelError, message)
}

func (e *Engine) appendLog(ctx context.Context, runID string, level logentry.Level, message string) {
	if _, err := e.logs.Append(ctx, runID, level, message); err != nil {
		e.logger.Warn("Failed to persist log entry", "run_id", runID, "error", err)
		return
	}
	if e.publisher == nil {
		return
	}
	payload := events.LogPayload{
		RunID:   runID,
		Level:   level,
		Message: message,
	}
	if err := e.publisher.PublishLog(ctx, runID, payload); err != nil {
		e.logger.Warn("Failed to publish log event", "run_id", runID, "error", err)
	}
}

// publishStatus reads the run fresh and broadcasts its state.
func (e *Engine) publishStatus(ctx context.Context, runID string) {
	if e.publisher == nil {
		return
	}
	r, err := e.runs.GetRun(ctx, runID)
	if err != nil {
		e.logger.Warn("Failed to read run for status event", "run_id", runID, "error", err)
		return
	}
	payload := events.StatusPayload{
		RunID:            r.ID,
		Status:           r.Status,
		CurrentIteration: r.CurrentIteration,
		Progress:         r.ProgressPercentage,
	}
	if r.ErrorMessage != nil {
		payload.Error = *r.ErrorMessage
	}
	if err := e.publisher.PublishRunStatus(ctx, runID, payload); err != nil {
		e.logger.Warn("Failed to publish status event", "run_id", runID, "error", err)
	}
}

func (e *Engine) publishIteration(ctx context.Context, runID, iterationID string, number int, status iteration.Status, score *float64) {
	if e.publisher == nil {
		return
	}
	payload := events.IterationPayload{
		RunID:            runID,
		IterationID:      iterationID,
		IterationNumber:  number,
		Status:           status,
		ConvergenceScore: score,
	}
	if err := e.publisher.PublishIteration(ctx, runID, payload); err != nil {
		e.logger.Warn("Failed to publish iteration event", "run_id", runID, "error", err)
	}
}

func (e *Engine) publishResult(ctx context.Context, runID, resultID string, rankedGapCount int) {
	if e.publisher == nil {
		return
	}
	payload := events.ResultPayload{
		RunID:          runID,
		ResultID:       resultID,
		RankedGapCount: rankedGapCount,
	}
	if err := e.publisher.PublishResult(ctx, runID, payload); err != nil {
		e.logger.Warn("Failed to publish result event", "run_id", runID, "error", err)
	}
}
