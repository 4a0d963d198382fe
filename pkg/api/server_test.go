package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vi3318/Research-AI-sub000/ent"
	entrun "github.com/vi3318/Research-AI-sub000/ent/run"
	"github.com/vi3318/Research-AI-sub000/pkg/api"
	"github.com/vi3318/Research-AI-sub000/pkg/config"
	"github.com/vi3318/Research-AI-sub000/pkg/models"
	"github.com/vi3318/Research-AI-sub000/pkg/orchestrator"
	"github.com/vi3318/Research-AI-sub000/pkg/queue"
	"github.com/vi3318/Research-AI-sub000/pkg/services"
	testdb "github.com/vi3318/Research-AI-sub000/test/database"
)

type apiFixture struct {
	router  *gin.Engine
	client  *ent.Client
	runs    *services.RunService
	results *services.ResultService
	logs    *services.LogService
	broker  *queue.Broker
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbClient := testdb.NewTestClient(t)
	logger := slog.Default()

	runs := services.NewRunService(dbClient.Client)
	iterations := services.NewIterationService(dbClient.Client)
	agents := services.NewAgentService(dbClient.Client)
	results := services.NewResultService(dbClient.Client)
	logs := services.NewLogService(dbClient.Client)
	locks := services.NewLockService(dbClient.Client, "pod-test", time.Minute)

	broker := queue.NewBroker(dbClient.Client, config.DefaultQueueConfig(), logs)
	engine := orchestrator.NewEngine(config.DefaultOrchestratorConfig(),
		runs, iterations, agents, results, logs, locks, broker, nil, logger)

	server := api.NewServer(dbClient, runs, results, logs, engine, broker, nil, nil, nil, logger)
	return &apiFixture{
		router:  server.Router(),
		client:  dbClient.Client,
		runs:    runs,
		results: results,
		logs:    logs,
		broker:  broker,
	}
}

func (f *apiFixture) do(t *testing.T, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	var decoded map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	}
	return rec, decoded
}

func (f *apiFixture) seedRun(t *testing.T, workspaceID string) *ent.Run {
	t.Helper()
	r, err := f.runs.CreateRun(context.Background(), models.CreateRunRequest{
		WorkspaceID:          workspaceID,
		Query:                "open problems in federated learning",
		MaxIterations:        3,
		ConvergenceThreshold: 0.6,
		Papers:               []models.PaperInput{{Title: "Paper A"}, {Title: "Paper B"}},
	})
	require.NoError(t, err)
	return r
}

func TestCreateRunAccepted(t *testing.T) {
	f := newAPIFixture(t)

	rec, body := f.do(t, http.MethodPost, "/api/v1/runs", gin.H{
		"workspace_id": "ws-1",
		"query":        "open problems in federated learning",
		"papers": []gin.H{
			{"title": "Paper A"},
			{"title": "Paper B"},
		},
	})
	require.Equal(t, http.StatusAccepted, rec.Code)
	runID, _ := body["run_id"].(string)
	require.NotEmpty(t, runID)
	assert.Equal(t, "pending", body["status"])

	// Orchestration is scheduled on the pinned job ID.
	st, err := f.broker.Status(context.Background(), "orchestrate:"+runID)
	require.NoError(t, err)
	assert.Equal(t, "pending", st.State)
}

func TestCreateRunRejectsEmptyPapers(t *testing.T) {
	f := newAPIFixture(t)

	rec, body := f.do(t, http.MethodPost, "/api/v1/runs", gin.H{
		"workspace_id": "ws-1",
		"query":        "anything",
		"papers":       []gin.H{},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "NO_PAPERS", body["error"])
}

func TestCreateRunValidationError(t *testing.T) {
	f := newAPIFixture(t)

	rec, body := f.do(t, http.MethodPost, "/api/v1/runs", gin.H{
		"query":  "missing workspace",
		"papers": []gin.H{{"title": "Paper A"}},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION", body["error"])
}

func TestGetRun(t *testing.T) {
	f := newAPIFixture(t)
	r := f.seedRun(t, "ws-1")

	rec, body := f.do(t, http.MethodGet, "/api/v1/runs/"+r.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, r.ID, body["run_id"])
	assert.Equal(t, "pending", body["status"])
	assert.Equal(t, float64(3), body["max_iterations"])
}

func TestGetRunNotFound(t *testing.T) {
	f := newAPIFixture(t)

	rec, body := f.do(t, http.MethodGet, "/api/v1/runs/does-not-exist", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", body["error"])
}

func TestListRunsByWorkspace(t *testing.T) {
	f := newAPIFixture(t)
	f.seedRun(t, "ws-1")
	f.seedRun(t, "ws-1")
	f.seedRun(t, "ws-2")

	rec, body := f.do(t, http.MethodGet, "/api/v1/runs?workspace_id=ws-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	runs, ok := body["runs"].([]any)
	require.True(t, ok)
	assert.Len(t, runs, 2)
}

func TestResultsUnavailableBeforeTerminal(t *testing.T) {
	f := newAPIFixture(t)
	r := f.seedRun(t, "ws-1")

	rec, body := f.do(t, http.MethodGet, "/api/v1/runs/"+r.ID+"/results", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "ERR_CONFLICT", body["error"])
}

func TestResultsAfterConvergence(t *testing.T) {
	f := newAPIFixture(t)
	ctx := context.Background()
	r := f.seedRun(t, "ws-1")

	require.NoError(t, f.runs.Start(ctx, r.ID))
	_, err := f.results.Save(ctx, r.ID, map[string]any{
		"rankedGaps": []any{map[string]any{"gap": "cross-domain evaluation"}},
	})
	require.NoError(t, err)
	require.NoError(t, f.runs.FinishSuccess(ctx, r.ID, entrun.StatusConverged))

	rec, body := f.do(t, http.MethodGet, "/api/v1/runs/"+r.ID+"/results", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.NotEmpty(t, data["rankedGaps"])
}

func TestCancelRunDrainsPendingJobs(t *testing.T) {
	f := newAPIFixture(t)
	ctx := context.Background()
	r := f.seedRun(t, "ws-1")
	require.NoError(t, f.runs.Start(ctx, r.ID))

	jobID, err := f.broker.Enqueue(ctx, config.QueueMicro, r.ID, map[string]any{})
	require.NoError(t, err)

	rec, body := f.do(t, http.MethodPost, "/api/v1/runs/"+r.ID+"/cancel", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "cancelled", body["status"])

	st, err := f.broker.Status(ctx, jobID)
	require.NoError(t, err)
	assert.Equal(t, "cancelled", st.State)
}

func TestCancelTerminalRunConflicts(t *testing.T) {
	f := newAPIFixture(t)
	ctx := context.Background()
	r := f.seedRun(t, "ws-1")
	require.NoError(t, f.runs.Start(ctx, r.ID))
	_, err := f.runs.Cancel(ctx, r.ID)
	require.NoError(t, err)

	rec, body := f.do(t, http.MethodPost, "/api/v1/runs/"+r.ID+"/cancel", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "ERR_CONFLICT", body["error"])
}

func TestListLogs(t *testing.T) {
	f := newAPIFixture(t)
	ctx := context.Background()
	r := f.seedRun(t, "ws-1")

	_, err := f.logs.Info(ctx, r.ID, "Run started")
	require.NoError(t, err)
	_, err = f.logs.Warn(ctx, r.ID, "Iteration retried")
	require.NoError(t, err)

	rec, body := f.do(t, http.MethodGet, "/api/v1/runs/"+r.ID+"/logs", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	entries, ok := body["logs"].([]any)
	require.True(t, ok)
	require.Len(t, entries, 2)
	first, ok := entries[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Run started", first["message"])
	assert.Equal(t, "info", first["level"])
}

func TestListLogsUnknownRun(t *testing.T) {
	f := newAPIFixture(t)

	rec, _ := f.do(t, http.MethodGet, "/api/v1/runs/nope/logs", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealth(t *testing.T) {
	f := newAPIFixture(t)

	rec, body := f.do(t, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "healthy", body["status"])
}
