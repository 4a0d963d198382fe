// Package orchestrator drives runs through their iteration loop: fence
// acquisition, micro fan-out with a barrier, serial meso and meta
// stages, convergence checks, and terminal transitions. The engine is
// itself a queue handler on the orchestrator queue, so a crashed pod's
// runs are resumed by whichever pod claims the re-queued job.
package orchestrator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/vi3318/Research-AI-sub000/ent"
	entiteration "github.com/vi3318/Research-AI-sub000/ent/iteration"
	entrun "github.com/vi3318/Research-AI-sub000/ent/run"
	"github.com/vi3318/Research-AI-sub000/pkg/config"
	"github.com/vi3318/Research-AI-sub000/pkg/events"
	"github.com/vi3318/Research-AI-sub000/pkg/models"
	"github.com/vi3318/Research-AI-sub000/pkg/queue"
	"github.com/vi3318/Research-AI-sub000/pkg/services"
)

// Engine owns the orchestration of runs.
type Engine struct {
	cfg        *config.OrchestratorConfig
	runs       *services.RunService
	iterations *services.IterationService
	agents     *services.AgentService
	results    *services.ResultService
	logs       *services.LogService
	locks      *services.LockService
	broker     *queue.Broker
	publisher  *events.Publisher
	logger     *slog.Logger
}

// NewEngine wires the orchestration engine.
func NewEngine(
	cfg *config.OrchestratorConfig,
	runs *services.RunService,
	iterations *services.IterationService,
	agents *services.AgentService,
	results *services.ResultService,
	logs *services.LogService,
	locks *services.LockService,
	broker *queue.Broker,
	publisher *events.Publisher,
	logger *slog.Logger,
) *Engine {
	return &Engine{
		cfg:        cfg,
		runs:       runs,
		iterations: iterations,
		agents:     agents,
		results:    results,
		logs:       logs,
		locks:      locks,
		broker:     broker,
		publisher:  publisher,
		logger:     logger.With("component", "orchestrator"),
	}
}

type runPayload struct {
	RunID string `json:"run_id"`
}

// EnqueueRun schedules orchestration for a run. The job ID is pinned to
// the run so duplicate scheduling collapses into one job.
func (e *Engine) EnqueueRun(ctx context.Context, runID string) error {
	payload := map[string]any{"run_id": runID}
	_, err := e.broker.Enqueue(ctx, config.QueueOrchestrator, runID, payload,
		queue.WithJobID("orchestrate:"+runID))
	return err
}

// Handler is the orchestrator-queue handler. It drives the run to a
// terminal state or returns an error so the queue retries; a retry
// resumes from persisted state.
func (e *Engine) Handler(ctx context.Context, job *ent.Job) error {
	raw, err := json.Marshal(job.Payload)
	if err != nil {
		return queue.Permanent(fmt.Errorf("failed to decode payload of job %s: %w", job.ID, err))
	}
	var p runPayload
	if err := json.Unmarshal(raw, &p); err != nil || p.RunID == "" {
		return queue.Permanent(fmt.Errorf("malformed orchestrator payload on job %s", job.ID))
	}
	return e.orchestrate(ctx, p.RunID)
}

func (e *Engine) orchestrate(ctx context.Context, runID string) error {
	logger := e.logger.With("run_id", runID)

	r, err := e.runs.GetRun(ctx, runID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return queue.Permanent(err)
		}
		return err
	}
	if services.IsTerminal(r.Status) {
		return nil
	}

	if err := e.locks.Acquire(ctx, runID); err != nil {
		if errors.Is(err, services.ErrFenceHeld) {
			logger.Info("Orchestration fence held elsewhere, deferring")
		}
		return err
	}
	defer func() {
		releaseCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := e.locks.Release(releaseCtx, runID); err != nil {
			logger.Warn("Failed to release orchestration fence", "error", err)
		}
	}()

	// Losing the fence mid-run cancels orchestration; the new holder
	// resumes from persisted state.
	orchCtx, cancelOrch := context.WithCancel(ctx)
	defer cancelOrch()
	fenceDone := make(chan struct{})
	go e.heartbeatFence(orchCtx, runID, cancelOrch, fenceDone)
	defer func() { <-fenceDone }()

	if r.Status == entrun.StatusPending {
		if err := services.WithRetry(orchCtx, "run.start", func(ctx context.Context) error {
			return e.runs.Start(ctx, runID)
		}); err != nil {
			if errors.Is(err, services.ErrTerminal) {
				return nil
			}
			return e.fatal(orchCtx, runID, err)
		}
		e.publishStatus(orchCtx, runID)
		e.logInfo(orchCtx, runID, "Run started")
	}

	return e.runLoop(orchCtx, runID, logger)
}

// runLoop executes iterations until the run reaches a terminal state.
func (e *Engine) runLoop(ctx context.Context, runID string, logger *slog.Logger) error {
	for {
		r, err := e.runs.GetRun(ctx, runID)
		if err != nil {
			return err
		}
		if services.IsTerminal(r.Status) {
			// Cancelled (or externally settled) while orchestrating.
			return nil
		}

		number := r.CurrentIteration + 1
		if number > r.MaxIterations {
			return e.fatal(ctx, runID, fmt.Errorf("iteration %d exceeds max %d", number, r.MaxIterations))
		}

		it, err := e.beginIteration(ctx, runID, number)
		if err != nil {
			return e.fatal(ctx, runID, err)
		}
		e.publishIteration(ctx, runID, it.ID, number, entiteration.StatusActive, nil)

		outcome, err := e.runIteration(ctx, r, it)
		if err != nil {
			if errors.Is(err, errRunInterrupted) {
				return nil
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return e.fatal(ctx, runID, err)
		}

		if outcome.failed != nil {
			if err := e.handleIterationFailure(ctx, runID, it.ID, *outcome.failed); err != nil {
				return err
			}
			continue
		}

		score := outcome.convergence
		if err := services.WithRetry(ctx, "iteration.succeed", func(ctx context.Context) error {
			return e.iterations.Succeed(ctx, it.ID, score)
		}); err != nil {
			return e.fatal(ctx, runID, err)
		}
		if err := services.WithRetry(ctx, "run.advance", func(ctx context.Context) error {
			return e.runs.AdvanceIteration(ctx, runID, number, r.MaxIterations)
		}); err != nil {
			if errors.Is(err, services.ErrTerminal) {
				return nil
			}
			return e.fatal(ctx, runID, err)
		}
		e.publishIteration(ctx, runID, it.ID, number, entiteration.StatusSucceeded, &score)
		e.publishStatus(ctx, runID)
		e.logInfo(ctx, runID, fmt.Sprintf("Iteration %d finished (convergence %.3f)", number, score))

		// Convergence needs a prior iteration to compare against, so the
		// check is skipped on iteration 1; a zero threshold would
		// otherwise trivially converge a fresh run.
		switch {
		case number >= 2 && score >= r.ConvergenceThreshold:
			return e.finish(ctx, runID, entrun.StatusConverged, outcome.meta)
		case number >= r.MaxIterations:
			return e.finish(ctx, runID, entrun.StatusCompleted, outcome.meta)
		}
	}
}

// beginIteration creates the iteration record, resuming an existing one
// after a crash or recovery retry.
func (e *Engine) beginIteration(ctx context.Context, runID string, number int) (*ent.Iteration, error) {
	var it *ent.Iteration
	err := services.WithRetry(ctx, "iteration.begin", func(ctx context.Context) error {
		var e2 error
		it, e2 = e.iterations.Begin(ctx, runID, number)
		return e2
	})
	if err == nil {
		return it, nil
	}
	if !errors.Is(err, services.ErrAlreadyExists) {
		return nil, err
	}
	return e.iterations.GetByNumber(ctx, runID, number)
}

// handleIterationFailure applies the recovery policy: one recoverable
// failure per run may be retried; everything else fails the run.
func (e *Engine) handleIterationFailure(ctx context.Context, runID, iterationID string, f iterationFailure) error {
	if err := services.WithRetry(ctx, "iteration.fail", func(ctx context.Context) error {
		return e.iterations.Fail(ctx, iterationID)
	}); err != nil && !errors.Is(err, services.ErrConflict) {
		return e.fatal(ctx, runID, err)
	}

	if !f.recoverable {
		return e.failRun(ctx, runID, f.reason)
	}
	err := services.WithRetry(ctx, "run.consume_recovery", func(ctx context.Context) error {
		return e.runs.ConsumeRecovery(ctx, runID)
	})
	if err != nil {
		if errors.Is(err, services.ErrConflict) || errors.Is(err, services.ErrTerminal) {
			return e.failRun(ctx, runID, f.reason+" (recovery budget exhausted)")
		}
		return e.fatal(ctx, runID, err)
	}
	if rerr := services.WithRetry(ctx, "iteration.reactivate", func(ctx context.Context) error {
		return e.iterations.Reactivate(ctx, iterationID)
	}); rerr != nil {
		return e.fatal(ctx, runID, rerr)
	}
	e.logWarn(ctx, runID, "Iteration failed ("+f.reason+"), retrying once")
	return nil
}

// finish persists the result record and settles the run.
func (e *Engine) finish(ctx context.Context, runID string, status entrun.Status, meta *models.MetaOutput) error {
	if meta == nil {
		meta = &models.MetaOutput{}
	}
	data, err := toMap(meta)
	if err != nil {
		return e.fatal(ctx, runID, err)
	}
	var res *ent.ResultRecord
	if err := services.WithRetry(ctx, "result.save", func(ctx context.Context) error {
		var e2 error
		res, e2 = e.results.Save(ctx, runID, data)
		return e2
	}); err != nil {
		return e.fatal(ctx, runID, err)
	}
	if len(meta.RankedGaps) == 0 {
		e.logWarn(ctx, runID, "Run finished with no ranked gaps")
	}
	if err := services.WithRetry(ctx, "run.finish", func(ctx context.Context) error {
		return e.runs.FinishSuccess(ctx, runID, status)
	}); err != nil {
		if errors.Is(err, services.ErrTerminal) {
			return nil
		}
		return e.fatal(ctx, runID, err)
	}

	e.publishResult(ctx, runID, res.ID, len(meta.RankedGaps))
	e.publishStatus(ctx, runID)
	e.logInfo(ctx, runID, fmt.Sprintf("Run %s with %d ranked gaps", status, len(meta.RankedGaps)))
	return nil
}

// failRun settles the run as failed with a summary entry.
func (e *Engine) failRun(ctx context.Context, runID, summary string) error {
	if err := services.WithRetry(ctx, "run.fail", func(ctx context.Context) error {
		return e.runs.Fail(ctx, runID, summary)
	}); err != nil && !errors.Is(err, services.ErrTerminal) {
		return err
	}
	e.logError(ctx, runID, "Run failed: "+summary)
	e.publishStatus(ctx, runID)
	return nil
}

// fatal handles unrecoverable engine errors, store exhaustion included:
// best-effort fail of the run, then a permanent job error so the queue
// stops retrying.
func (e *Engine) fatal(ctx context.Context, runID string, cause error) error {
	e.logger.Error("Orchestration failed", "run_id", runID, "error", cause)
	failCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.runs.Fail(failCtx, runID, cause.Error()); err != nil {
		e.logger.Error("Failed to settle run after fatal error", "run_id", runID, "error", err)
	}
	e.publishStatus(failCtx, runID)
	return queue.Permanent(cause)
}

// heartbeatFence keeps the fence row fresh; losing it stops this
// orchestrator's work immediately.
func (e *Engine) heartbeatFence(ctx context.Context, runID string, lost context.CancelFunc, done chan<- struct{}) {
	defer close(done)
	ticker := time.NewTicker(e.cfg.FenceHeartbeatInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := e.locks.Heartbeat(ctx, runID); err != nil {
				if errors.Is(err, services.ErrFenceHeld) {
					e.logger.Warn("Orchestration fence lost", "run_id", runID)
					lost()
					return
				}
				e.logger.Warn("Fence heartbeat failed", "run_id", runID, "error", err)
			}
		}
	}
}

func toMap(v any) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode result data: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("failed to encode result data: %w", err)
	}
	return m, nil
}
