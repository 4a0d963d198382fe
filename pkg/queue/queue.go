package queue

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/vi3318/Research-AI-sub000/ent"
	"github.com/vi3318/Research-AI-sub000/ent/job"
	"github.com/vi3318/Research-AI-sub000/pkg/config"
	"github.com/vi3318/Research-AI-sub000/pkg/services"
)

// Broker is the producer-side API: it enqueues jobs, reports their
// status, and drains a cancelled run's backlog. Enqueue never blocks;
// the jobs table absorbs backpressure.
type Broker struct {
	client *ent.Client
	config *config.QueueConfig
	logs   *services.LogService
}

// NewBroker creates a Broker.
func NewBroker(client *ent.Client, cfg *config.QueueConfig, logs *services.LogService) *Broker {
	return &Broker{client: client, config: cfg, logs: logs}
}

// Enqueue adds a job to a named queue and returns its ID. runID tags
// the job for drain-on-cancel and may be empty for non-run jobs.
func (b *Broker) Enqueue(ctx context.Context, queue, runID string, payload map[string]any, opts ...EnqueueOption) (string, error) {
	o := enqueueOptions{maxAttempts: b.config.DefaultMaxAttempts}
	for _, opt := range opts {
		opt(&o)
	}
	if o.jobID == "" {
		o.jobID = uuid.New().String()
	}

	builder := b.client.Job.Create().
		SetID(o.jobID).
		SetQueue(queue).
		SetPayload(payload).
		SetMaxAttempts(o.maxAttempts).
		SetNextRunAt(time.Now().Add(o.delay))
	if runID != "" {
		builder.SetRunID(runID)
	}

	if _, err := builder.Save(ctx); err != nil {
		if ent.IsConstraintError(err) {
			// Idempotent re-enqueue of a pinned job ID.
			return o.jobID, nil
		}
		return "", fmt.Errorf("failed to enqueue job: %w", err)
	}
	slog.Debug("Job enqueued", "job_id", o.jobID, "queue", queue, "run_id", runID)
	return o.jobID, nil
}

// Status reports a job's current state.
func (b *Broker) Status(ctx context.Context, jobID string) (*JobStatus, error) {
	j, err := b.client.Job.Get(ctx, jobID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	st := &JobStatus{
		JobID:   j.ID,
		Queue:   j.Queue,
		State:   string(j.Status),
		Attempt: j.Attempt,
	}
	if j.LastError != nil {
		st.LastError = *j.LastError
	}
	return st, nil
}

// DrainRun cancels a run's pending jobs so workers never pick them up,
// appending one log entry per drained queue. Running jobs are left to
// their in-flight cancellation checks.
func (b *Broker) DrainRun(ctx context.Context, runID string) error {
	pending, err := b.client.Job.Query().
		Where(job.RunIDEQ(runID), job.StatusEQ(job.StatusPending)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query pending jobs for drain: %w", err)
	}
	if len(pending) == 0 {
		return nil
	}

	n, err := b.client.Job.Update().
		Where(job.RunIDEQ(runID), job.StatusEQ(job.StatusPending)).
		SetStatus(job.StatusCancelled).
		SetLastError("drained: run cancelled").
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to drain jobs: %w", err)
	}

	byQueue := make(map[string]int)
	for _, j := range pending {
		byQueue[j.Queue]++
	}
	for q, count := range byQueue {
		if _, lerr := b.logs.Info(ctx, runID,
			fmt.Sprintf("Drained %d pending %s job(s) after cancellation", count, q)); lerr != nil {
			slog.Warn("Failed to append drain log entry", "run_id", runID, "error", lerr)
		}
	}
	slog.Info("Drained pending jobs for cancelled run", "run_id", runID, "count", n)
	return nil
}
