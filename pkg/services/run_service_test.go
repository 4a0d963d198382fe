package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vi3318/Research-AI-sub000/ent"
	"github.com/vi3318/Research-AI-sub000/ent/run"
	"github.com/vi3318/Research-AI-sub000/pkg/models"
	"github.com/vi3318/Research-AI-sub000/pkg/services"
	testdb "github.com/vi3318/Research-AI-sub000/test/database"
)

func validCreateRequest() models.CreateRunRequest {
	return models.CreateRunRequest{
		WorkspaceID:          "ws-1",
		Query:                "open problems in multilingual evaluation",
		MaxIterations:        3,
		ConvergenceThreshold: 0.6,
		Papers: []models.PaperInput{
			{Title: "Paper A", Abstract: "abstract a"},
			{Title: "Paper B", FullText: "full text b"},
		},
	}
}

func newRunFixture(t *testing.T) (*services.RunService, *ent.Run) {
	t.Helper()
	client := testdb.NewTestClient(t)
	svc := services.NewRunService(client.Client)
	r, err := svc.CreateRun(context.Background(), validCreateRequest())
	require.NoError(t, err)
	return svc, r
}

func TestCreateRunValidation(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewRunService(client.Client)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*models.CreateRunRequest)
	}{
		{"missing workspace", func(r *models.CreateRunRequest) { r.WorkspaceID = "" }},
		{"missing query", func(r *models.CreateRunRequest) { r.Query = "" }},
		{"no papers", func(r *models.CreateRunRequest) { r.Papers = nil }},
		{"zero iterations", func(r *models.CreateRunRequest) { r.MaxIterations = 0 }},
		{"too many iterations", func(r *models.CreateRunRequest) { r.MaxIterations = 11 }},
		{"threshold above one", func(r *models.CreateRunRequest) { r.ConvergenceThreshold = 1.5 }},
		{"untitled paper", func(r *models.CreateRunRequest) { r.Papers[0].Title = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest()
			tt.mutate(&req)
			_, err := svc.CreateRun(ctx, req)
			require.Error(t, err)
			assert.True(t, services.IsValidation(err), "expected validation error, got %v", err)
		})
	}
}

func TestCreateRunPersistsPapersInOrder(t *testing.T) {
	svc, r := newRunFixture(t)
	ctx := context.Background()

	assert.Equal(t, run.StatusPending, r.Status)
	assert.Equal(t, 0, r.CurrentIteration)

	papers, err := svc.ListPapers(ctx, r.ID)
	require.NoError(t, err)
	require.Len(t, papers, 2)
	assert.Equal(t, "Paper A", papers[0].Title)
	assert.Equal(t, 0, papers[0].IngestionOrder)
	assert.Equal(t, "Paper B", papers[1].Title)
	assert.Equal(t, 1, papers[1].IngestionOrder)
}

func TestRunLifecycle(t *testing.T) {
	svc, r := newRunFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.Start(ctx, r.ID))
	started, err := svc.GetRun(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusRunning, started.Status)
	assert.NotNil(t, started.StartedAt)

	// Starting twice is a conflict, not a silent success.
	err = svc.Start(ctx, r.ID)
	assert.ErrorIs(t, err, services.ErrConflict)

	require.NoError(t, svc.FinishSuccess(ctx, r.ID, run.StatusConverged))
	finished, err := svc.GetRun(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusConverged, finished.Status)
	assert.Equal(t, 100, finished.ProgressPercentage)
	assert.NotNil(t, finished.CompletedAt)

	// Terminal runs refuse every further transition.
	assert.ErrorIs(t, svc.Fail(ctx, r.ID, "too late"), services.ErrTerminal)
	assert.ErrorIs(t, svc.Start(ctx, r.ID), services.ErrTerminal)
	_, err = svc.Cancel(ctx, r.ID)
	assert.ErrorIs(t, err, services.ErrTerminal)
}

func TestRunCancel(t *testing.T) {
	svc, r := newRunFixture(t)
	ctx := context.Background()

	cancelled, err := svc.Cancel(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusCancelled, cancelled.Status)
	assert.NotNil(t, cancelled.CompletedAt)

	// A second cancel hits a terminal run.
	_, err = svc.Cancel(ctx, r.ID)
	assert.ErrorIs(t, err, services.ErrTerminal)
}

func TestRunFail(t *testing.T) {
	svc, r := newRunFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.Start(ctx, r.ID))
	require.NoError(t, svc.Fail(ctx, r.ID, "iteration 2: majority of micro agents failed"))

	failed, err := svc.GetRun(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusFailed, failed.Status)
	require.NotNil(t, failed.ErrorMessage)
	assert.Equal(t, "iteration 2: majority of micro agents failed", *failed.ErrorMessage)
}

func TestAdvanceIteration(t *testing.T) {
	svc, r := newRunFixture(t)
	ctx := context.Background()
	require.NoError(t, svc.Start(ctx, r.ID))

	require.NoError(t, svc.AdvanceIteration(ctx, r.ID, 1, 3))
	cur, err := svc.GetRun(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, cur.CurrentIteration)
	assert.Equal(t, 33, cur.ProgressPercentage)

	// Progress is capped below 100 until the run finishes.
	require.NoError(t, svc.AdvanceIteration(ctx, r.ID, 2, 3))
	require.NoError(t, svc.AdvanceIteration(ctx, r.ID, 3, 3))
	cur, err = svc.GetRun(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, 99, cur.ProgressPercentage)

	// Re-advancing an already-passed iteration is a conflict (stale write).
	assert.ErrorIs(t, svc.AdvanceIteration(ctx, r.ID, 2, 3), services.ErrConflict)
}

func TestConsumeRecovery(t *testing.T) {
	svc, r := newRunFixture(t)
	ctx := context.Background()
	require.NoError(t, svc.Start(ctx, r.ID))

	// The budget allows exactly one recovery per run.
	require.NoError(t, svc.ConsumeRecovery(ctx, r.ID))
	assert.ErrorIs(t, svc.ConsumeRecovery(ctx, r.ID), services.ErrConflict)

	cur, err := svc.GetRun(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, cur.RecoveriesUsed)
}

func TestListRunsAndActive(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewRunService(client.Client)
	ctx := context.Background()

	first, err := svc.CreateRun(ctx, validCreateRequest())
	require.NoError(t, err)
	req := validCreateRequest()
	req.WorkspaceID = "ws-2"
	second, err := svc.CreateRun(ctx, req)
	require.NoError(t, err)

	all, err := svc.ListRuns(ctx, "", 10, 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	scoped, err := svc.ListRuns(ctx, "ws-2", 10, 0)
	require.NoError(t, err)
	require.Len(t, scoped, 1)
	assert.Equal(t, second.ID, scoped[0].ID)

	require.NoError(t, svc.Start(ctx, first.ID))
	active, err := svc.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, first.ID, active[0].ID)
}

func TestGetRunNotFound(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewRunService(client.Client)
	_, err := svc.GetRun(context.Background(), "does-not-exist")
	assert.ErrorIs(t, err, services.ErrNotFound)
}
