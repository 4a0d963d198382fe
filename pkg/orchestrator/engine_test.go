package orchestrator_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vi3318/Research-AI-sub000/ent"
	"github.com/vi3318/Research-AI-sub000/ent/agentrecord"
	entiteration "github.com/vi3318/Research-AI-sub000/ent/iteration"
	entrun "github.com/vi3318/Research-AI-sub000/ent/run"
	"github.com/vi3318/Research-AI-sub000/pkg/agent"
	"github.com/vi3318/Research-AI-sub000/pkg/config"
	"github.com/vi3318/Research-AI-sub000/pkg/llm"
	"github.com/vi3318/Research-AI-sub000/pkg/models"
	"github.com/vi3318/Research-AI-sub000/pkg/orchestrator"
	"github.com/vi3318/Research-AI-sub000/pkg/queue"
	"github.com/vi3318/Research-AI-sub000/pkg/services"
	testdb "github.com/vi3318/Research-AI-sub000/test/database"
)

// pipelineFixture wires the full orchestration stack against a test
// database, with the deterministic sandbox provider standing in for the
// LLM cascade.
type pipelineFixture struct {
	client     *ent.Client
	runs       *services.RunService
	iterations *services.IterationService
	agents     *services.AgentService
	results    *services.ResultService
	broker     *queue.Broker
	engine     *orchestrator.Engine
	pool       *queue.Pool
}

// newPipelineFixture builds the stack. microHandler overrides the micro
// queue handler when non-nil, so failure scenarios can be injected.
func newPipelineFixture(t *testing.T, microHandler queue.Handler) *pipelineFixture {
	t.Helper()
	client := testdb.NewTestClient(t)
	logger := slog.Default()

	runs := services.NewRunService(client.Client)
	iterations := services.NewIterationService(client.Client)
	agents := services.NewAgentService(client.Client)
	results := services.NewResultService(client.Client)
	logs := services.NewLogService(client.Client)
	locks := services.NewLockService(client.Client, "pod-test", time.Minute)

	qcfg := config.DefaultQueueConfig()
	qcfg.PollInterval = 20 * time.Millisecond
	qcfg.PollIntervalJitter = 10 * time.Millisecond
	qcfg.RetryBase = 10 * time.Millisecond
	qcfg.RetryCap = 100 * time.Millisecond
	qcfg.OrphanScanInterval = time.Hour
	broker := queue.NewBroker(client.Client, qcfg, logs)

	ocfg := config.DefaultOrchestratorConfig()
	ocfg.BarrierPollInterval = 20 * time.Millisecond
	ocfg.FenceHeartbeatInterval = 50 * time.Millisecond

	llmCfg := config.DefaultLLMConfig()
	llmCfg.Cascade = config.SandboxCascade()
	gateway, err := llm.NewGateway(llmCfg, logger)
	require.NoError(t, err)

	workers := agent.NewWorkers(gateway, agents, logs, nil, logger)
	engine := orchestrator.NewEngine(ocfg, runs, iterations, agents, results, logs, locks, broker, nil, logger)

	if microHandler == nil {
		microHandler = workers.MicroHandler
	}
	pool := queue.NewPool("pod-test", client.Client, qcfg)
	require.NoError(t, pool.RegisterHandler(config.QueueMicro, microHandler, 2))
	require.NoError(t, pool.RegisterHandler(config.QueueMeso, workers.MesoHandler, 1))
	require.NoError(t, pool.RegisterHandler(config.QueueMeta, workers.MetaHandler, 1))
	require.NoError(t, pool.RegisterHandler(config.QueueOrchestrator, engine.Handler, 1))

	return &pipelineFixture{
		client:     client.Client,
		runs:       runs,
		iterations: iterations,
		agents:     agents,
		results:    results,
		broker:     broker,
		engine:     engine,
		pool:       pool,
	}
}

func (f *pipelineFixture) start(t *testing.T) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	require.NoError(t, f.pool.Start(ctx))
	t.Cleanup(f.pool.Stop)
}

func (f *pipelineFixture) createRun(t *testing.T, papers []models.PaperInput, maxIterations int) *ent.Run {
	t.Helper()
	r, err := f.runs.CreateRun(context.Background(), models.CreateRunRequest{
		WorkspaceID:          "ws-1",
		Query:                "limitations of retrieval-augmented generation",
		Papers:               papers,
		MaxIterations:        maxIterations,
		ConvergenceThreshold: 0.6,
	})
	require.NoError(t, err)
	return r
}

func (f *pipelineFixture) waitTerminal(t *testing.T, runID string) *ent.Run {
	t.Helper()
	var r *ent.Run
	require.Eventually(t, func() bool {
		var err error
		r, err = f.runs.GetRun(context.Background(), runID)
		if err != nil {
			return false
		}
		return services.IsTerminal(r.Status)
	}, 60*time.Second, 50*time.Millisecond, "run never reached a terminal state")
	return r
}

func TestPipelineConvergesWithSandboxCascade(t *testing.T) {
	f := newPipelineFixture(t, nil)
	f.start(t)
	ctx := context.Background()

	r := f.createRun(t, []models.PaperInput{
		{Title: "Dense Retrieval at Scale"},
		{Title: "Long-Context Attention Revisited"},
		{Title: "Benchmark Contamination in LLM Evaluation"},
	}, 3)
	require.NoError(t, f.engine.EnqueueRun(ctx, r.ID))

	final := f.waitTerminal(t, r.ID)
	// The sandbox provider is deterministic, so iteration 2 reproduces
	// iteration 1's ranking exactly and the run converges early.
	assert.Equal(t, entrun.StatusConverged, final.Status)
	assert.Equal(t, 2, final.CurrentIteration)

	it1, err := f.iterations.GetByNumber(ctx, r.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, entiteration.StatusSucceeded, it1.Status)

	it2, err := f.iterations.GetByNumber(ctx, r.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, entiteration.StatusSucceeded, it2.Status)
	require.NotNil(t, it2.ConvergenceScore)
	assert.InDelta(t, 1.0, *it2.ConvergenceScore, 0.001)

	micros, err := f.agents.ListByIteration(ctx, it2.ID, agentrecord.AgentTypeMicro)
	require.NoError(t, err)
	require.Len(t, micros, 3)
	for _, rec := range micros {
		assert.Equal(t, agentrecord.StatusSucceeded, rec.Status)
		require.NotNil(t, rec.Provider)
		assert.Equal(t, "sandbox", *rec.Provider)
	}

	res, err := f.results.GetByRun(ctx, r.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, res.Data["rankedGaps"])
}

func TestSingleIterationRunCompletesWithZeroThreshold(t *testing.T) {
	f := newPipelineFixture(t, nil)
	f.start(t)
	ctx := context.Background()

	// Iteration 1 has no prior ranking to compare against, so even a
	// zero threshold must not mark the run converged.
	r, err := f.runs.CreateRun(ctx, models.CreateRunRequest{
		WorkspaceID:          "ws-1",
		Query:                "limitations of retrieval-augmented generation",
		Papers:               []models.PaperInput{{Title: "Dense Retrieval at Scale"}},
		MaxIterations:        1,
		ConvergenceThreshold: 0.0,
	})
	require.NoError(t, err)
	require.NoError(t, f.engine.EnqueueRun(ctx, r.ID))

	final := f.waitTerminal(t, r.ID)
	assert.Equal(t, entrun.StatusCompleted, final.Status)
	assert.Equal(t, 1, final.CurrentIteration)

	it1, err := f.iterations.GetByNumber(ctx, r.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, entiteration.StatusSucceeded, it1.Status)
	require.NotNil(t, it1.ConvergenceScore)
	assert.Zero(t, *it1.ConvergenceScore)
}

func TestPipelineFailsAfterRecoveryBudgetExhausted(t *testing.T) {
	brokenMicro := func(ctx context.Context, j *ent.Job) error {
		return queue.Permanent(errors.New("extractor crashed"))
	}
	f := newPipelineFixture(t, brokenMicro)
	f.start(t)
	ctx := context.Background()

	r := f.createRun(t, []models.PaperInput{
		{Title: "Paper One"},
		{Title: "Paper Two"},
	}, 2)
	require.NoError(t, f.engine.EnqueueRun(ctx, r.ID))

	final := f.waitTerminal(t, r.ID)
	assert.Equal(t, entrun.StatusFailed, final.Status)
	require.NotNil(t, final.ErrorMessage)
	assert.Contains(t, *final.ErrorMessage, "recovery budget exhausted")
	assert.Equal(t, 1, final.RecoveriesUsed)

	it1, err := f.iterations.GetByNumber(ctx, r.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, entiteration.StatusFailed, it1.Status)
}

func TestOrchestrateTerminalRunIsNoOp(t *testing.T) {
	f := newPipelineFixture(t, nil)
	f.start(t)
	ctx := context.Background()

	r := f.createRun(t, []models.PaperInput{{Title: "Paper One"}}, 2)
	_, err := f.runs.Cancel(ctx, r.ID)
	require.NoError(t, err)

	require.NoError(t, f.engine.EnqueueRun(ctx, r.ID))
	require.Eventually(t, func() bool {
		st, err := f.broker.Status(ctx, "orchestrate:"+r.ID)
		return err == nil && st.State == "succeeded"
	}, 30*time.Second, 50*time.Millisecond)

	// A terminal run gets no iterations.
	count, err := f.client.Iteration.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}
