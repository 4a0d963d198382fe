package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/vi3318/Research-AI-sub000/ent"
	"github.com/vi3318/Research-AI-sub000/ent/job"
	"github.com/vi3318/Research-AI-sub000/ent/run"
	"github.com/vi3318/Research-AI-sub000/pkg/config"
)

// Worker is a single queue worker that polls one named queue and runs
// its handler on claimed jobs.
type Worker struct {
	id       string
	podID    string
	queue    string
	client   *ent.Client
	config   *config.QueueConfig
	handler  Handler
	pool     JobRegistry
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Health tracking
	mu            sync.RWMutex
	working       bool
	currentJobID  string
	jobsProcessed int
	lastActivity  time.Time
}

// JobRegistry is the subset of Pool used by Worker for in-flight job
// registration.
type JobRegistry interface {
	RegisterJob(jobID, runID string, cancel context.CancelFunc)
	UnregisterJob(jobID, runID string)
}

// NewWorker creates a worker bound to one named queue.
func NewWorker(id, podID, queue string, client *ent.Client, cfg *config.QueueConfig, handler Handler, pool JobRegistry) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		queue:        queue,
		client:       client,
		config:       cfg,
		handler:      handler,
		pool:         pool,
		stopCh:       make(chan struct{}),
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.runLoop(ctx)
}

// Stop signals the worker to stop and waits for the current job to
// finish. Safe to call multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:            w.id,
		Queue:         w.queue,
		Working:       w.working,
		CurrentJobID:  w.currentJobID,
		JobsProcessed: w.jobsProcessed,
		LastActivity:  w.lastActivity,
	}
}

func (w *Worker) runLoop(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "queue", w.queue, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoJobsAvailable) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing job", "error", err)
				w.sleep(time.Second)
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess claims the next eligible job and runs the handler.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	j, err := w.claimNextJob(ctx)
	if err != nil {
		return err
	}

	log := slog.With("job_id", j.ID, "queue", w.queue, "worker_id", w.id)
	log.Debug("Job claimed", "attempt", j.Attempt)

	w.setStatus(true, j.ID)
	defer w.setStatus(false, "")

	// Drain check: never run work for a run that has already ended.
	if j.RunID != "" {
		terminal, err := w.runIsTerminal(ctx, j.RunID)
		if err != nil {
			log.Warn("Failed to check run status before execution", "error", err)
		} else if terminal {
			return w.settle(ctx, j, job.StatusCancelled, "drained: run already terminal")
		}
	}

	jobCtx, cancelJob := context.WithCancel(ctx)
	defer cancelJob()
	w.pool.RegisterJob(j.ID, j.RunID, cancelJob)
	defer w.pool.UnregisterJob(j.ID, j.RunID)

	heartbeatCtx, cancelHeartbeat := context.WithCancel(ctx)
	defer cancelHeartbeat()
	go w.runHeartbeat(heartbeatCtx, j.ID)

	handlerErr := w.handler(jobCtx, j)
	cancelHeartbeat()

	// Settle with a background context: jobCtx may be the reason we're here.
	settleCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	switch {
	case handlerErr == nil:
		err = w.settle(settleCtx, j, job.StatusSucceeded, "")
	case errors.Is(handlerErr, ErrRunCancelled), errors.Is(jobCtx.Err(), context.Canceled) && ctx.Err() == nil:
		err = w.settle(settleCtx, j, job.StatusCancelled, handlerErr.Error())
	default:
		err = w.handleFailure(settleCtx, j, handlerErr)
	}
	if err != nil {
		return err
	}

	w.mu.Lock()
	w.jobsProcessed++
	w.mu.Unlock()
	return nil
}

// claimNextJob atomically claims the next pending job using
// FOR UPDATE SKIP LOCKED, ordered by created_at for FIFO processing.
func (w *Worker) claimNextJob(ctx context.Context) (*ent.Job, error) {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	j, err := tx.Job.Query().
		Where(
			job.QueueEQ(w.queue),
			job.StatusEQ(job.StatusPending),
			job.NextRunAtLTE(time.Now()),
		).
		Order(ent.Asc(job.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoJobsAvailable
		}
		return nil, fmt.Errorf("failed to query pending job: %w", err)
	}

	j, err = j.Update().
		SetStatus(job.StatusRunning).
		SetPodID(w.podID).
		AddAttempt(1).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim job: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}
	return j, nil
}

// runHeartbeat refreshes the running job's updated_at so orphan
// detection can tell live claims from dead ones.
func (w *Worker) runHeartbeat(ctx context.Context, jobID string) {
	ticker := time.NewTicker(w.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.client.Job.UpdateOneID(jobID).
				SetUpdatedAt(time.Now()).
				Exec(ctx); err != nil {
				slog.Warn("Job heartbeat update failed", "job_id", jobID, "error", err)
			}
		}
	}
}

// handleFailure reschedules a failed job with exponential backoff, or
// settles it as failed when attempts are exhausted or the error is
// permanent.
func (w *Worker) handleFailure(ctx context.Context, j *ent.Job, handlerErr error) error {
	var perm *PermanentError
	exhausted := j.Attempt >= j.MaxAttempts
	if errors.As(handlerErr, &perm) || exhausted {
		reason := handlerErr.Error()
		if exhausted {
			reason = fmt.Sprintf("max attempts (%d) exhausted: %v", j.MaxAttempts, handlerErr)
		}
		slog.Warn("Job failed terminally",
			"job_id", j.ID, "queue", w.queue, "attempt", j.Attempt, "error", handlerErr)
		return w.settle(ctx, j, job.StatusFailed, reason)
	}

	backoff := w.retryBackoff(j.Attempt)
	slog.Info("Job attempt failed, rescheduling",
		"job_id", j.ID, "queue", w.queue, "attempt", j.Attempt, "backoff", backoff, "error", handlerErr)

	err := w.client.Job.UpdateOneID(j.ID).
		SetStatus(job.StatusPending).
		SetNextRunAt(time.Now().Add(backoff)).
		SetLastError(handlerErr.Error()).
		ClearPodID().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to reschedule job: %w", err)
	}
	return nil
}

// settle writes a job's terminal status.
func (w *Worker) settle(ctx context.Context, j *ent.Job, status job.Status, lastError string) error {
	upd := w.client.Job.UpdateOneID(j.ID).SetStatus(status)
	if lastError != "" {
		upd.SetLastError(lastError)
	}
	if err := upd.Exec(ctx); err != nil {
		return fmt.Errorf("failed to settle job: %w", err)
	}
	return nil
}

// retryBackoff computes base × factor^(attempt-1), capped.
func (w *Worker) retryBackoff(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	backoff := time.Duration(float64(w.config.RetryBase) * math.Pow(w.config.RetryFactor, float64(attempt-1)))
	if backoff > w.config.RetryCap {
		backoff = w.config.RetryCap
	}
	return backoff
}

func (w *Worker) runIsTerminal(ctx context.Context, runID string) (bool, error) {
	r, err := w.client.Run.Query().
		Where(run.IDEQ(runID)).
		Select(run.FieldStatus).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return true, nil
		}
		return false, err
	}
	switch r.Status {
	case run.StatusConverged, run.StatusCompleted, run.StatusFailed, run.StatusCancelled:
		return true, nil
	default:
		return false, nil
	}
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

func (w *Worker) setStatus(working bool, jobID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.working = working
	w.currentJobID = jobID
	w.lastActivity = time.Now()
}
