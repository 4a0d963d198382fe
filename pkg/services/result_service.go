package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/vi3318/Research-AI-sub000/ent"
	"github.com/vi3318/Research-AI-sub000/ent/resultrecord"
)

// ResultService stores and serves the final payload of a run. One result
// per run; the unique run_id index makes Save idempotent under retried
// finalization.
type ResultService struct {
	client *ent.Client
}

// NewResultService creates a new ResultService.
func NewResultService(client *ent.Client) *ResultService {
	return &ResultService{client: client}
}

// Save persists the run's result payload. A concurrent or retried save
// keeps the first writer's payload and returns it.
func (s *ResultService) Save(ctx context.Context, runID string, data map[string]any) (*ent.ResultRecord, error) {
	rec, err := s.client.ResultRecord.Create().
		SetID(uuid.New().String()).
		SetRunID(runID).
		SetData(data).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return s.GetByRun(ctx, runID)
		}
		return nil, fmt.Errorf("failed to save result: %w", err)
	}
	return rec, nil
}

// GetByRun fetches the run's result.
func (s *ResultService) GetByRun(ctx context.Context, runID string) (*ent.ResultRecord, error) {
	rec, err := s.client.ResultRecord.Query().
		Where(resultrecord.RunIDEQ(runID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get result: %w", err)
	}
	return rec, nil
}
