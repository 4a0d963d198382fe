package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vi3318/Research-AI-sub000/ent/logentry"
	"github.com/vi3318/Research-AI-sub000/pkg/services"
	testdb "github.com/vi3318/Research-AI-sub000/test/database"
)

func TestResultSaveIsIdempotent(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	runs := services.NewRunService(client.Client)
	r, err := runs.CreateRun(ctx, validCreateRequest())
	require.NoError(t, err)

	results := services.NewResultService(client.Client)

	first, err := results.Save(ctx, r.ID, map[string]any{"rankedGaps": []any{"one"}})
	require.NoError(t, err)

	// A retried finalization keeps the first writer's payload.
	second, err := results.Save(ctx, r.ID, map[string]any{"rankedGaps": []any{"two"}})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.Data, second.Data)

	got, err := results.GetByRun(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)
}

func TestResultNotFound(t *testing.T) {
	client := testdb.NewTestClient(t)
	results := services.NewResultService(client.Client)
	_, err := results.GetByRun(context.Background(), "missing-run")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestLogAppendAndList(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	runs := services.NewRunService(client.Client)
	r, err := runs.CreateRun(ctx, validCreateRequest())
	require.NoError(t, err)

	iterations := services.NewIterationService(client.Client)
	it, err := iterations.Begin(ctx, r.ID, 1)
	require.NoError(t, err)

	logs := services.NewLogService(client.Client)
	_, err = logs.Info(ctx, r.ID, "Run started")
	require.NoError(t, err)
	_, err = logs.Warn(ctx, r.ID, "Iteration 1: 2/3 micro agents succeeded",
		services.WithIteration(it.ID))
	require.NoError(t, err)
	_, err = logs.Error(ctx, r.ID, "meso agent failed",
		services.WithIteration(it.ID),
		services.WithPayload(map[string]any{"code": "ERR_SCHEMA"}))
	require.NoError(t, err)

	entries, err := logs.List(ctx, r.ID, 0)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	// Append order is preserved.
	assert.Equal(t, "Run started", entries[0].Message)
	assert.Equal(t, logentry.LevelInfo, entries[0].Level)
	assert.Equal(t, logentry.LevelWarn, entries[1].Level)
	require.NotNil(t, entries[1].IterationID)
	assert.Equal(t, it.ID, *entries[1].IterationID)
	assert.Equal(t, "ERR_SCHEMA", entries[2].Payload["code"])
}
