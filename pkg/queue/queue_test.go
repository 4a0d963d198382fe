package queue

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vi3318/Research-AI-sub000/ent"
	"github.com/vi3318/Research-AI-sub000/ent/job"
	entrun "github.com/vi3318/Research-AI-sub000/ent/run"
	"github.com/vi3318/Research-AI-sub000/pkg/config"
	"github.com/vi3318/Research-AI-sub000/pkg/models"
	"github.com/vi3318/Research-AI-sub000/pkg/services"
	testdb "github.com/vi3318/Research-AI-sub000/test/database"
)

type noopRegistry struct{}

func (noopRegistry) RegisterJob(jobID, runID string, cancel context.CancelFunc) {}
func (noopRegistry) UnregisterJob(jobID, runID string)                          {}

type queueFixture struct {
	client *ent.Client
	broker *Broker
	cfg    *config.QueueConfig
	runID  string
}

func newQueueFixture(t *testing.T) (context.Context, *queueFixture) {
	t.Helper()
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	runs := services.NewRunService(client.Client)
	r, err := runs.CreateRun(ctx, models.CreateRunRequest{
		WorkspaceID:          "ws-1",
		Query:                "test query",
		MaxIterations:        3,
		ConvergenceThreshold: 0.6,
		Papers:               []models.PaperInput{{Title: "Paper A"}},
	})
	require.NoError(t, err)
	require.NoError(t, runs.Start(ctx, r.ID))

	cfg := config.DefaultQueueConfig()
	cfg.RetryBase = time.Millisecond
	cfg.RetryCap = 10 * time.Millisecond

	return ctx, &queueFixture{
		client: client.Client,
		broker: NewBroker(client.Client, cfg, services.NewLogService(client.Client)),
		cfg:    cfg,
		runID:  r.ID,
	}
}

func (f *queueFixture) newWorker(handler Handler) *Worker {
	return NewWorker("w-1", "pod-test", config.QueueMicro, f.client, f.cfg, handler, noopRegistry{})
}

func TestEnqueueWithPinnedIDIsIdempotent(t *testing.T) {
	ctx, f := newQueueFixture(t)

	id1, err := f.broker.Enqueue(ctx, config.QueueMicro, f.runID,
		map[string]any{"paper_id": "p1"}, WithJobID("micro:it1:p1:a0"))
	require.NoError(t, err)
	assert.Equal(t, "micro:it1:p1:a0", id1)

	// Re-enqueueing the same pinned ID is a no-op.
	id2, err := f.broker.Enqueue(ctx, config.QueueMicro, f.runID,
		map[string]any{"paper_id": "p1"}, WithJobID("micro:it1:p1:a0"))
	require.NoError(t, err)
	assert.Equal(t, id1, id2)

	count, err := f.client.Job.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestWorkerProcessesJob(t *testing.T) {
	ctx, f := newQueueFixture(t)

	jobID, err := f.broker.Enqueue(ctx, config.QueueMicro, f.runID, map[string]any{"k": "v"})
	require.NoError(t, err)

	var gotPayload map[string]any
	w := f.newWorker(func(ctx context.Context, j *ent.Job) error {
		gotPayload = j.Payload
		return nil
	})

	require.NoError(t, w.pollAndProcess(ctx))
	assert.Equal(t, "v", gotPayload["k"])

	st, err := f.broker.Status(ctx, jobID)
	require.NoError(t, err)
	assert.Equal(t, string(job.StatusSucceeded), st.State)
	assert.Equal(t, 1, st.Attempt)
}

func TestWorkerNoJobs(t *testing.T) {
	ctx, f := newQueueFixture(t)
	w := f.newWorker(func(ctx context.Context, j *ent.Job) error { return nil })
	assert.ErrorIs(t, w.pollAndProcess(ctx), ErrNoJobsAvailable)
}

func TestWorkerRetriesThenExhausts(t *testing.T) {
	ctx, f := newQueueFixture(t)

	jobID, err := f.broker.Enqueue(ctx, config.QueueMicro, f.runID,
		map[string]any{}, WithMaxAttempts(2))
	require.NoError(t, err)

	calls := 0
	w := f.newWorker(func(ctx context.Context, j *ent.Job) error {
		calls++
		return errors.New("transient handler failure")
	})

	// First attempt fails and reschedules with backoff.
	require.NoError(t, w.pollAndProcess(ctx))
	st, err := f.broker.Status(ctx, jobID)
	require.NoError(t, err)
	assert.Equal(t, string(job.StatusPending), st.State)
	assert.Contains(t, st.LastError, "transient handler failure")

	// Second attempt exhausts the budget.
	require.Eventually(t, func() bool {
		err := w.pollAndProcess(ctx)
		return err == nil
	}, 2*time.Second, 5*time.Millisecond)

	st, err = f.broker.Status(ctx, jobID)
	require.NoError(t, err)
	assert.Equal(t, string(job.StatusFailed), st.State)
	assert.Contains(t, st.LastError, "max attempts")
	assert.Equal(t, 2, calls)
}

func TestWorkerPermanentErrorFailsImmediately(t *testing.T) {
	ctx, f := newQueueFixture(t)

	jobID, err := f.broker.Enqueue(ctx, config.QueueMicro, f.runID, map[string]any{})
	require.NoError(t, err)

	w := f.newWorker(func(ctx context.Context, j *ent.Job) error {
		return Permanent(errors.New("schema failure"))
	})

	require.NoError(t, w.pollAndProcess(ctx))
	st, err := f.broker.Status(ctx, jobID)
	require.NoError(t, err)
	assert.Equal(t, string(job.StatusFailed), st.State)
	assert.Equal(t, 1, st.Attempt)
}

func TestWorkerCancelledRunSettlesCancelled(t *testing.T) {
	ctx, f := newQueueFixture(t)

	jobID, err := f.broker.Enqueue(ctx, config.QueueMicro, f.runID, map[string]any{})
	require.NoError(t, err)

	w := f.newWorker(func(ctx context.Context, j *ent.Job) error {
		return ErrRunCancelled
	})

	require.NoError(t, w.pollAndProcess(ctx))
	st, err := f.broker.Status(ctx, jobID)
	require.NoError(t, err)
	assert.Equal(t, string(job.StatusCancelled), st.State)
}

func TestWorkerSkipsJobsOfTerminalRuns(t *testing.T) {
	ctx, f := newQueueFixture(t)

	jobID, err := f.broker.Enqueue(ctx, config.QueueMicro, f.runID, map[string]any{})
	require.NoError(t, err)

	// The run ends before the worker gets to the job.
	_, err = f.client.Run.Update().
		Where(entrun.IDEQ(f.runID)).
		SetStatus(entrun.StatusCancelled).
		Save(ctx)
	require.NoError(t, err)

	handlerRan := false
	w := f.newWorker(func(ctx context.Context, j *ent.Job) error {
		handlerRan = true
		return nil
	})

	require.NoError(t, w.pollAndProcess(ctx))
	assert.False(t, handlerRan)

	st, err := f.broker.Status(ctx, jobID)
	require.NoError(t, err)
	assert.Equal(t, string(job.StatusCancelled), st.State)
}

func TestDelayedJobNotClaimable(t *testing.T) {
	ctx, f := newQueueFixture(t)

	_, err := f.broker.Enqueue(ctx, config.QueueMicro, f.runID,
		map[string]any{}, WithDelay(time.Hour))
	require.NoError(t, err)

	w := f.newWorker(func(ctx context.Context, j *ent.Job) error { return nil })
	assert.ErrorIs(t, w.pollAndProcess(ctx), ErrNoJobsAvailable)
}

func TestDrainRun(t *testing.T) {
	ctx, f := newQueueFixture(t)

	pending, err := f.broker.Enqueue(ctx, config.QueueMicro, f.runID, map[string]any{})
	require.NoError(t, err)
	other, err := f.broker.Enqueue(ctx, config.QueueMeso, f.runID, map[string]any{})
	require.NoError(t, err)

	require.NoError(t, f.broker.DrainRun(ctx, f.runID))

	for _, id := range []string{pending, other} {
		st, err := f.broker.Status(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, string(job.StatusCancelled), st.State)
		assert.Contains(t, st.LastError, "drained")
	}

	// Drain logs one entry per affected queue.
	logs := services.NewLogService(f.client)
	entries, err := logs.List(ctx, f.runID, 0)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestStatusUnknownJob(t *testing.T) {
	ctx, f := newQueueFixture(t)
	_, err := f.broker.Status(ctx, "missing")
	assert.ErrorIs(t, err, ErrJobNotFound)
}

func TestRetryBackoffProgression(t *testing.T) {
	cfg := config.DefaultQueueConfig()
	w := NewWorker("w", "pod", config.QueueMicro, nil, cfg, nil, noopRegistry{})

	first := w.retryBackoff(1)
	second := w.retryBackoff(2)
	third := w.retryBackoff(3)
	assert.Equal(t, cfg.RetryBase, first)
	assert.Greater(t, second, first)
	assert.Greater(t, third, second)

	// Large attempt counts hit the cap.
	assert.Equal(t, cfg.RetryCap, w.retryBackoff(10))
}
