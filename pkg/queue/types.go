// Package queue provides the named job queues (micro, meso, meta,
// orchestrator) over the jobs table. Delivery is at-least-once: workers
// claim pending jobs with FOR UPDATE SKIP LOCKED, failed attempts are
// rescheduled with exponential backoff, and handlers are expected to be
// idempotent.
package queue

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vi3318/Research-AI-sub000/ent"
)

// Sentinel errors for queue operations.
var (
	// ErrNoJobsAvailable indicates no claimable jobs are in the queue.
	ErrNoJobsAvailable = errors.New("no jobs available")

	// ErrJobNotFound indicates an unknown job ID.
	ErrJobNotFound = errors.New("job not found")

	// ErrRunCancelled is returned by handlers that observe their run's
	// cancellation mid-flight; the job settles as cancelled, not failed.
	ErrRunCancelled = errors.New("run cancelled")
)

// Handler processes one claimed job. A nil return settles the job as
// succeeded. ErrRunCancelled settles it as cancelled. A PermanentError
// fails it without retry; any other error reschedules it until the
// job's max attempts are spent.
type Handler func(ctx context.Context, job *ent.Job) error

// PermanentError marks a handler failure as not worth retrying.
type PermanentError struct {
	Err error
}

func (e *PermanentError) Error() string { return fmt.Sprintf("permanent: %v", e.Err) }
func (e *PermanentError) Unwrap() error { return e.Err }

// Permanent wraps err so the worker fails the job immediately.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &PermanentError{Err: err}
}

// EnqueueOption customizes one Enqueue call.
type EnqueueOption func(*enqueueOptions)

type enqueueOptions struct {
	jobID       string
	delay       time.Duration
	maxAttempts int
}

// WithJobID pins the job's ID. Enqueueing an ID that already exists is
// a no-op returning the existing ID, which makes scheduling idempotent.
func WithJobID(id string) EnqueueOption {
	return func(o *enqueueOptions) { o.jobID = id }
}

// WithDelay makes the job ineligible for claiming until the delay passes.
func WithDelay(d time.Duration) EnqueueOption {
	return func(o *enqueueOptions) { o.delay = d }
}

// WithMaxAttempts overrides the queue's default attempt budget.
func WithMaxAttempts(n int) EnqueueOption {
	return func(o *enqueueOptions) { o.maxAttempts = n }
}

// JobStatus is the externally visible state of a job.
type JobStatus struct {
	JobID     string `json:"job_id"`
	Queue     string `json:"queue"`
	State     string `json:"state"`
	Attempt   int    `json:"attempt"`
	LastError string `json:"last_error,omitempty"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID            string    `json:"id"`
	Queue         string    `json:"queue"`
	Working       bool      `json:"working"`
	CurrentJobID  string    `json:"current_job_id,omitempty"`
	JobsProcessed int       `json:"jobs_processed"`
	LastActivity  time.Time `json:"last_activity"`
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy        bool           `json:"is_healthy"`
	DBReachable      bool           `json:"db_reachable"`
	PodID            string         `json:"pod_id"`
	QueueDepth       int            `json:"queue_depth"`
	ActiveJobs       int            `json:"active_jobs"`
	TotalWorkers     int            `json:"total_workers"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastOrphanScan   time.Time      `json:"last_orphan_scan"`
	OrphansRecovered int            `json:"orphans_recovered"`
}
