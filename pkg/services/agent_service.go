package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vi3318/Research-AI-sub000/ent"
	"github.com/vi3318/Research-AI-sub000/ent/agentrecord"
)

// CallStats captures provider-side observability for one agent run.
type CallStats struct {
	Provider         string
	Model            string
	PromptTokens     int
	CompletionTokens int
	LatencyMS        int
}

// AgentService manages agent execution records. The unique tuple
// (run_id, iteration_id, agent_type, subject_ref) is the idempotency
// key: re-delivered jobs land on the existing record instead of
// spawning a duplicate.
type AgentService struct {
	client *ent.Client
}

// NewAgentService creates a new AgentService.
func NewAgentService(client *ent.Client) *AgentService {
	return &AgentService{client: client}
}

// Ensure returns the record for the idempotency tuple, creating it in
// queued state when absent. Safe under concurrent delivery: a lost
// create race falls back to reading the winner's row.
func (s *AgentService) Ensure(ctx context.Context, runID, iterationID string, agentType agentrecord.AgentType, subjectRef string) (*ent.AgentRecord, error) {
	rec, err := s.get(ctx, runID, iterationID, agentType, subjectRef)
	if err == nil {
		return rec, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query agent record: %w", err)
	}

	rec, err = s.client.AgentRecord.Create().
		SetID(uuid.New().String()).
		SetRunID(runID).
		SetIterationID(iterationID).
		SetAgentType(agentType).
		SetSubjectRef(subjectRef).
		SetStatus(agentrecord.StatusQueued).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			rec, gerr := s.get(ctx, runID, iterationID, agentType, subjectRef)
			if gerr != nil {
				return nil, fmt.Errorf("failed to read agent record after create race: %w", gerr)
			}
			return rec, nil
		}
		return nil, fmt.Errorf("failed to create agent record: %w", err)
	}
	return rec, nil
}

func (s *AgentService) get(ctx context.Context, runID, iterationID string, agentType agentrecord.AgentType, subjectRef string) (*ent.AgentRecord, error) {
	return s.client.AgentRecord.Query().
		Where(
			agentrecord.RunIDEQ(runID),
			agentrecord.IterationIDEQ(iterationID),
			agentrecord.AgentTypeEQ(agentType),
			agentrecord.SubjectRefEQ(subjectRef),
		).
		Only(ctx)
}

// MarkRunning moves a queued or failed record back into running and
// bumps the attempt counter. Failed is re-enterable here, unlike run
// and iteration terminal states: queue retries and the per-run recovery
// re-dispatch the same agent record rather than minting a new one. A
// record already succeeded returns ErrConflict so a re-delivered job
// can skip the work.
func (s *AgentService) MarkRunning(ctx context.Context, agentID string) (*ent.AgentRecord, error) {
	n, err := s.client.AgentRecord.Update().
		Where(
			agentrecord.IDEQ(agentID),
			agentrecord.StatusIn(agentrecord.StatusQueued, agentrecord.StatusRunning, agentrecord.StatusFailed),
		).
		SetStatus(agentrecord.StatusRunning).
		AddAttempts(1).
		ClearError().
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to mark agent running: %w", err)
	}
	if n == 0 {
		rec, gerr := s.client.AgentRecord.Get(ctx, agentID)
		if gerr != nil {
			if ent.IsNotFound(gerr) {
				return nil, ErrNotFound
			}
			return nil, fmt.Errorf("failed to inspect agent record: %w", gerr)
		}
		return nil, fmt.Errorf("%w: agent %s already %s", ErrConflict, agentID, rec.Status)
	}
	return s.client.AgentRecord.Get(ctx, agentID)
}

// Succeed stores the agent's validated output and call stats.
func (s *AgentService) Succeed(ctx context.Context, agentID string, output map[string]any, stats CallStats) error {
	upd := s.client.AgentRecord.Update().
		Where(agentrecord.IDEQ(agentID), agentrecord.StatusEQ(agentrecord.StatusRunning)).
		SetStatus(agentrecord.StatusSucceeded).
		SetOutput(output).
		ClearError()
	if stats.Provider != "" {
		upd.SetProvider(stats.Provider).
			SetModel(stats.Model).
			SetPromptTokens(stats.PromptTokens).
			SetCompletionTokens(stats.CompletionTokens).
			SetLatencyMs(stats.LatencyMS)
	}
	n, err := upd.Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark agent succeeded: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: agent %s is not running", ErrConflict, agentID)
	}
	return nil
}

// Fail records the terminal error for this attempt.
func (s *AgentService) Fail(ctx context.Context, agentID, errMsg string) error {
	n, err := s.client.AgentRecord.Update().
		Where(agentrecord.IDEQ(agentID), agentrecord.StatusEQ(agentrecord.StatusRunning)).
		SetStatus(agentrecord.StatusFailed).
		SetError(errMsg).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark agent failed: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: agent %s is not running", ErrConflict, agentID)
	}
	return nil
}

// ListByIteration returns every record for one iteration, optionally
// narrowed by agent type.
func (s *AgentService) ListByIteration(ctx context.Context, iterationID string, agentType ...agentrecord.AgentType) ([]*ent.AgentRecord, error) {
	q := s.client.AgentRecord.Query().Where(agentrecord.IterationIDEQ(iterationID))
	if len(agentType) > 0 {
		q = q.Where(agentrecord.AgentTypeIn(agentType...))
	}
	recs, err := q.Order(ent.Asc(agentrecord.FieldCreatedAt)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list agent records: %w", err)
	}
	return recs, nil
}

// LastActivity reports the newest agent update for a run. The watchdog
// declares a run stuck when this stops moving.
func (s *AgentService) LastActivity(ctx context.Context, runID string) (time.Time, error) {
	rec, err := s.client.AgentRecord.Query().
		Where(agentrecord.RunIDEQ(runID)).
		Order(ent.Desc(agentrecord.FieldUpdatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return time.Time{}, ErrNotFound
		}
		return time.Time{}, fmt.Errorf("failed to query agent activity: %w", err)
	}
	return rec.UpdatedAt, nil
}
