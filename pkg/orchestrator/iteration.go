package orchestrator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/vi3318/Research-AI-sub000/ent"
	"github.com/vi3318/Research-AI-sub000/ent/agentrecord"
	"github.com/vi3318/Research-AI-sub000/pkg/agent"
	"github.com/vi3318/Research-AI-sub000/pkg/config"
	"github.com/vi3318/Research-AI-sub000/pkg/models"
	"github.com/vi3318/Research-AI-sub000/pkg/queue"
	"github.com/vi3318/Research-AI-sub000/pkg/services"
)

// errRunInterrupted signals that the run left the running state while
// an iteration was in flight; the orchestrator stops without touching
// it further.
var errRunInterrupted = errors.New("run interrupted")

// iterationFailure classifies a failed iteration for the recovery policy.
type iterationFailure struct {
	recoverable bool
	reason      string
}

type iterationOutcome struct {
	meta        *models.MetaOutput
	convergence float64
	failed      *iterationFailure
}

// runIteration executes one iteration: micro fan-out, barrier, majority
// gate, serial meso and meta, convergence scoring.
func (e *Engine) runIteration(ctx context.Context, r *ent.Run, it *ent.Iteration) (iterationOutcome, error) {
	papers, err := e.runs.ListPapers(ctx, r.ID)
	if err != nil {
		return iterationOutcome{}, err
	}
	number := it.IterationNumber
	// The recovery counter distinguishes retry job IDs from the first
	// round's, so a retried fan-out is not swallowed by idempotent pins.
	tag := r.RecoveriesUsed

	prior, err := e.priorMeta(ctx, r.ID, number)
	if err != nil {
		return iterationOutcome{}, err
	}

	microJobs := make([]string, 0, len(papers))
	for _, p := range papers {
		payload, perr := agent.EncodePayload(agent.MicroPayload{
			RunID:           r.ID,
			IterationID:     it.ID,
			IterationNumber: number,
			Query:           r.Query,
			SandboxFallback: r.SandboxFallback,
			PaperID:         p.ID,
			Paper: agent.PaperContent{
				Title:    p.Title,
				Abstract: deref(p.Abstract),
				FullText: deref(p.FullText),
			},
			PriorContext: prior,
		})
		if perr != nil {
			return iterationOutcome{}, perr
		}
		jobID := fmt.Sprintf("micro:%s:%s:a%d", it.ID, p.ID, tag)
		if _, err := e.broker.Enqueue(ctx, config.QueueMicro, r.ID, payload, queue.WithJobID(jobID)); err != nil {
			return iterationOutcome{}, err
		}
		microJobs = append(microJobs, jobID)
	}
	if err := e.waitForJobs(ctx, r.ID, microJobs); err != nil {
		return iterationOutcome{}, err
	}

	microOutputs, succeeded, err := e.collectMicroOutputs(ctx, it.ID, papers)
	if err != nil {
		return iterationOutcome{}, err
	}
	required := majority(len(papers))
	e.logInfo(ctx, r.ID, fmt.Sprintf("Iteration %d: %d/%d micro agents succeeded", number, succeeded, len(papers)))
	if succeeded < required {
		return iterationOutcome{failed: &iterationFailure{
			recoverable: true,
			reason:      fmt.Sprintf("iteration %d: %d of %d micro agents succeeded, %d required", number, succeeded, len(papers), required),
		}}, nil
	}

	mesoRec, err := e.runSynthesisStage(ctx, r, it, config.QueueMeso, fmt.Sprintf("meso:%s:a%d", it.ID, tag), agent.MesoPayload{
		RunID:           r.ID,
		IterationID:     it.ID,
		IterationNumber: number,
		Query:           r.Query,
		SandboxFallback: r.SandboxFallback,
		MicroOutputs:    microOutputs,
	}, agentrecord.AgentTypeMeso)
	if err != nil {
		return iterationOutcome{}, err
	}
	if mesoRec == nil || mesoRec.Status != agentrecord.StatusSucceeded {
		return iterationOutcome{failed: &iterationFailure{
			recoverable: false,
			reason:      fmt.Sprintf("iteration %d: meso agent failed", number),
		}}, nil
	}
	var meso models.MesoOutput
	if err := decodeOutput(mesoRec.Output, &meso); err != nil {
		return iterationOutcome{}, err
	}

	metaRec, err := e.runSynthesisStage(ctx, r, it, config.QueueMeta, fmt.Sprintf("meta:%s:a%d", it.ID, tag), agent.MetaPayload{
		RunID:           r.ID,
		IterationID:     it.ID,
		IterationNumber: number,
		Query:           r.Query,
		SandboxFallback: r.SandboxFallback,
		MesoOutput:      meso,
		PriorMetaOutput: prior,
	}, agentrecord.AgentTypeMeta)
	if err != nil {
		return iterationOutcome{}, err
	}
	if metaRec == nil || metaRec.Status != agentrecord.StatusSucceeded {
		return iterationOutcome{failed: &iterationFailure{
			recoverable: false,
			reason:      fmt.Sprintf("iteration %d: meta agent failed", number),
		}}, nil
	}
	var meta models.MetaOutput
	if err := decodeOutput(metaRec.Output, &meta); err != nil {
		return iterationOutcome{}, err
	}

	score := 0.0
	if number > 1 {
		score = Convergence(&meta, prior)
	}
	return iterationOutcome{meta: &meta, convergence: score}, nil
}

// runSynthesisStage enqueues one meso or meta job, waits for it, and
// returns the stage's agent record.
func (e *Engine) runSynthesisStage(ctx context.Context, r *ent.Run, it *ent.Iteration, queueName, jobID string, payload any, agentType agentrecord.AgentType) (*ent.AgentRecord, error) {
	m, err := agent.EncodePayload(payload)
	if err != nil {
		return nil, err
	}
	if _, err := e.broker.Enqueue(ctx, queueName, r.ID, m, queue.WithJobID(jobID)); err != nil {
		return nil, err
	}
	if err := e.waitForJobs(ctx, r.ID, []string{jobID}); err != nil {
		return nil, err
	}
	recs, err := e.agents.ListByIteration(ctx, it.ID, agentType)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, nil
	}
	return recs[len(recs)-1], nil
}

// waitForJobs is the fan-out barrier: it polls until every job is
// terminal, watching for run interruption on each pass.
func (e *Engine) waitForJobs(ctx context.Context, runID string, jobIDs []string) error {
	pending := make(map[string]struct{}, len(jobIDs))
	for _, id := range jobIDs {
		pending[id] = struct{}{}
	}
	for len(pending) > 0 {
		r, err := e.runs.GetRun(ctx, runID)
		if err != nil {
			return err
		}
		if services.IsTerminal(r.Status) {
			return errRunInterrupted
		}
		for id := range pending {
			st, err := e.broker.Status(ctx, id)
			if err != nil {
				if errors.Is(err, queue.ErrJobNotFound) {
					delete(pending, id)
					continue
				}
				return err
			}
			switch st.State {
			case "succeeded", "failed", "cancelled":
				delete(pending, id)
			}
		}
		if len(pending) == 0 {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(e.cfg.BarrierPollInterval):
		}
	}
	return nil
}

// collectMicroOutputs reads the iteration's micro records and returns
// the successful outputs in paper ingestion order.
func (e *Engine) collectMicroOutputs(ctx context.Context, iterationID string, papers []*ent.Paper) ([]models.MicroOutput, int, error) {
	recs, err := e.agents.ListByIteration(ctx, iterationID, agentrecord.AgentTypeMicro)
	if err != nil {
		return nil, 0, err
	}
	byPaper := make(map[string]*ent.AgentRecord, len(recs))
	for _, rec := range recs {
		byPaper[rec.SubjectRef] = rec
	}
	var outputs []models.MicroOutput
	succeeded := 0
	for _, p := range papers {
		rec, ok := byPaper[p.ID]
		if !ok || rec.Status != agentrecord.StatusSucceeded {
			continue
		}
		var out models.MicroOutput
		if err := decodeOutput(rec.Output, &out); err != nil {
			return nil, 0, err
		}
		outputs = append(outputs, out)
		succeeded++
	}
	return outputs, succeeded, nil
}

// priorMeta loads the previous iteration's meta output, if any.
func (e *Engine) priorMeta(ctx context.Context, runID string, number int) (*models.MetaOutput, error) {
	if number <= 1 {
		return nil, nil
	}
	prev, err := e.iterations.GetByNumber(ctx, runID, number-1)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	recs, err := e.agents.ListByIteration(ctx, prev.ID, agentrecord.AgentTypeMeta)
	if err != nil {
		return nil, err
	}
	for i := len(recs) - 1; i >= 0; i-- {
		if recs[i].Status != agentrecord.StatusSucceeded {
			continue
		}
		var meta models.MetaOutput
		if err := decodeOutput(recs[i].Output, &meta); err != nil {
			return nil, err
		}
		return &meta, nil
	}
	return nil, nil
}

// majority is the micro success gate: more than half the papers plus
// one, clamped so single-paper runs can still pass.
func majority(papers int) int {
	required := (papers+1)/2 + 1
	if required > papers {
		required = papers
	}
	return required
}

func decodeOutput(output map[string]any, dst any) error {
	raw, err := json.Marshal(output)
	if err != nil {
		return fmt.Errorf("failed to decode agent output: %w", err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("failed to decode agent output: %w", err)
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
