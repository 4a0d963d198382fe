package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vi3318/Research-AI-sub000/ent/agentrecord"
	"github.com/vi3318/Research-AI-sub000/pkg/services"
	testdb "github.com/vi3318/Research-AI-sub000/test/database"
)

type agentFixture struct {
	agents      *services.AgentService
	iterations  *services.IterationService
	runID       string
	iterationID string
}

func newAgentFixture(t *testing.T) (context.Context, *agentFixture) {
	t.Helper()
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	runs := services.NewRunService(client.Client)
	r, err := runs.CreateRun(ctx, validCreateRequest())
	require.NoError(t, err)
	require.NoError(t, runs.Start(ctx, r.ID))

	iterations := services.NewIterationService(client.Client)
	it, err := iterations.Begin(ctx, r.ID, 1)
	require.NoError(t, err)

	return ctx, &agentFixture{
		agents:      services.NewAgentService(client.Client),
		iterations:  iterations,
		runID:       r.ID,
		iterationID: it.ID,
	}
}

func TestEnsureIsIdempotent(t *testing.T) {
	ctx, f := newAgentFixture(t)

	first, err := f.agents.Ensure(ctx, f.runID, f.iterationID, agentrecord.AgentTypeMicro, "paper-1")
	require.NoError(t, err)
	assert.Equal(t, agentrecord.StatusQueued, first.Status)

	// Same idempotency tuple returns the same row.
	again, err := f.agents.Ensure(ctx, f.runID, f.iterationID, agentrecord.AgentTypeMicro, "paper-1")
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)

	// A different subject spawns a new record.
	other, err := f.agents.Ensure(ctx, f.runID, f.iterationID, agentrecord.AgentTypeMicro, "paper-2")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, other.ID)
}

func TestAgentAttemptLifecycle(t *testing.T) {
	ctx, f := newAgentFixture(t)

	rec, err := f.agents.Ensure(ctx, f.runID, f.iterationID, agentrecord.AgentTypeMicro, "paper-1")
	require.NoError(t, err)

	running, err := f.agents.MarkRunning(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, agentrecord.StatusRunning, running.Status)
	assert.Equal(t, 1, running.Attempts)

	stats := services.CallStats{
		Provider:         "sandbox",
		Model:            "sandbox-fixed",
		PromptTokens:     120,
		CompletionTokens: 40,
		LatencyMS:        15,
	}
	output := map[string]any{"researchGaps": []any{}}
	require.NoError(t, f.agents.Succeed(ctx, rec.ID, output, stats))

	// A re-delivered job must skip succeeded records.
	_, err = f.agents.MarkRunning(ctx, rec.ID)
	assert.ErrorIs(t, err, services.ErrConflict)
}

func TestAgentRetryAfterFailure(t *testing.T) {
	ctx, f := newAgentFixture(t)

	rec, err := f.agents.Ensure(ctx, f.runID, f.iterationID, agentrecord.AgentTypeMicro, "paper-1")
	require.NoError(t, err)

	_, err = f.agents.MarkRunning(ctx, rec.ID)
	require.NoError(t, err)
	require.NoError(t, f.agents.Fail(ctx, rec.ID, "ERR_PROVIDER_TIMEOUT: provider call timed out"))

	// The queue retry re-runs the same record: attempts grow, the
	// previous error clears.
	retried, err := f.agents.MarkRunning(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, agentrecord.StatusRunning, retried.Status)
	assert.Equal(t, 2, retried.Attempts)
	assert.Nil(t, retried.Error)
}

func TestAgentSucceedRequiresRunning(t *testing.T) {
	ctx, f := newAgentFixture(t)

	rec, err := f.agents.Ensure(ctx, f.runID, f.iterationID, agentrecord.AgentTypeMeso, "iteration")
	require.NoError(t, err)

	err = f.agents.Succeed(ctx, rec.ID, map[string]any{}, services.CallStats{})
	assert.ErrorIs(t, err, services.ErrConflict)
	err = f.agents.Fail(ctx, rec.ID, "boom")
	assert.ErrorIs(t, err, services.ErrConflict)
}

func TestListByIteration(t *testing.T) {
	ctx, f := newAgentFixture(t)

	_, err := f.agents.Ensure(ctx, f.runID, f.iterationID, agentrecord.AgentTypeMicro, "paper-1")
	require.NoError(t, err)
	_, err = f.agents.Ensure(ctx, f.runID, f.iterationID, agentrecord.AgentTypeMicro, "paper-2")
	require.NoError(t, err)
	_, err = f.agents.Ensure(ctx, f.runID, f.iterationID, agentrecord.AgentTypeMeso, "iteration")
	require.NoError(t, err)

	all, err := f.agents.ListByIteration(ctx, f.iterationID)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	micros, err := f.agents.ListByIteration(ctx, f.iterationID, agentrecord.AgentTypeMicro)
	require.NoError(t, err)
	assert.Len(t, micros, 2)
}

func TestLastActivity(t *testing.T) {
	ctx, f := newAgentFixture(t)

	_, err := f.agents.LastActivity(ctx, f.runID)
	assert.ErrorIs(t, err, services.ErrNotFound)

	_, err = f.agents.Ensure(ctx, f.runID, f.iterationID, agentrecord.AgentTypeMicro, "paper-1")
	require.NoError(t, err)

	seen, err := f.agents.LastActivity(ctx, f.runID)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), seen, time.Minute)
}

func TestIterationLifecycle(t *testing.T) {
	ctx, f := newAgentFixture(t)

	it, err := f.iterations.GetByNumber(ctx, f.runID, 1)
	require.NoError(t, err)

	// Duplicate numbers are rejected; resume paths read the existing row.
	_, err = f.iterations.Begin(ctx, f.runID, 1)
	assert.ErrorIs(t, err, services.ErrAlreadyExists)

	active, err := f.iterations.Active(ctx, f.runID)
	require.NoError(t, err)
	assert.Equal(t, it.ID, active.ID)

	require.NoError(t, f.iterations.Succeed(ctx, it.ID, 0.42))
	settled, err := f.iterations.GetByNumber(ctx, f.runID, 1)
	require.NoError(t, err)
	require.NotNil(t, settled.ConvergenceScore)
	assert.InDelta(t, 0.42, *settled.ConvergenceScore, 1e-9)

	// Settling twice is a conflict.
	assert.ErrorIs(t, f.iterations.Succeed(ctx, it.ID, 0.9), services.ErrConflict)
	_, err = f.iterations.Active(ctx, f.runID)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestIterationReactivate(t *testing.T) {
	ctx, f := newAgentFixture(t)

	it, err := f.iterations.GetByNumber(ctx, f.runID, 1)
	require.NoError(t, err)

	// Only failed iterations can be reactivated.
	assert.ErrorIs(t, f.iterations.Reactivate(ctx, it.ID), services.ErrConflict)

	require.NoError(t, f.iterations.Fail(ctx, it.ID))
	require.NoError(t, f.iterations.Reactivate(ctx, it.ID))

	active, err := f.iterations.Active(ctx, f.runID)
	require.NoError(t, err)
	assert.Equal(t, it.ID, active.ID)
	assert.Nil(t, active.ConvergenceScore)
}
