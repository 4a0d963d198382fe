package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/vi3318/Research-AI-sub000/ent"
	"github.com/vi3318/Research-AI-sub000/ent/iteration"
)

// IterationService manages iteration rows. Iterations within a run are
// densely numbered starting at 1, and at most one is active at a time;
// the unique (run_id, iteration_number) index backs both.
type IterationService struct {
	client *ent.Client
}

// NewIterationService creates a new IterationService.
func NewIterationService(client *ent.Client) *IterationService {
	return &IterationService{client: client}
}

// Begin opens iteration number for the run. A duplicate number maps to
// ErrAlreadyExists; callers resuming after a crash reuse the existing
// row via GetByNumber instead.
func (s *IterationService) Begin(ctx context.Context, runID string, number int) (*ent.Iteration, error) {
	if number < 1 {
		return nil, NewValidationError("iteration_number", "must be >= 1")
	}
	it, err := s.client.Iteration.Create().
		SetID(uuid.New().String()).
		SetRunID(runID).
		SetIterationNumber(number).
		SetStatus(iteration.StatusActive).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: iteration %d of run %s", ErrAlreadyExists, number, runID)
		}
		return nil, fmt.Errorf("failed to begin iteration: %w", err)
	}
	return it, nil
}

// GetByNumber fetches a specific iteration of a run.
func (s *IterationService) GetByNumber(ctx context.Context, runID string, number int) (*ent.Iteration, error) {
	it, err := s.client.Iteration.Query().
		Where(iteration.RunIDEQ(runID), iteration.IterationNumberEQ(number)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get iteration: %w", err)
	}
	return it, nil
}

// Active returns the run's active iteration, or ErrNotFound when all
// iterations are settled.
func (s *IterationService) Active(ctx context.Context, runID string) (*ent.Iteration, error) {
	it, err := s.client.Iteration.Query().
		Where(iteration.RunIDEQ(runID), iteration.StatusEQ(iteration.StatusActive)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get active iteration: %w", err)
	}
	return it, nil
}

// Succeed settles an active iteration with its convergence score.
func (s *IterationService) Succeed(ctx context.Context, iterationID string, convergenceScore float64) error {
	return s.settle(ctx, iterationID, iteration.StatusSucceeded, &convergenceScore)
}

// Fail settles an active iteration as failed.
func (s *IterationService) Fail(ctx context.Context, iterationID string) error {
	return s.settle(ctx, iterationID, iteration.StatusFailed, nil)
}

func (s *IterationService) settle(ctx context.Context, iterationID string, status iteration.Status, score *float64) error {
	upd := s.client.Iteration.Update().
		Where(iteration.IDEQ(iterationID), iteration.StatusEQ(iteration.StatusActive)).
		SetStatus(status)
	if score != nil {
		upd.SetConvergenceScore(*score)
	}
	n, err := upd.Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to settle iteration: %w", err)
	}
	if n == 0 {
		it, err := s.client.Iteration.Get(ctx, iterationID)
		if err != nil {
			if ent.IsNotFound(err) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to inspect iteration: %w", err)
		}
		return fmt.Errorf("%w: iteration %s already %s", ErrConflict, iterationID, it.Status)
	}
	return nil
}

// Reactivate flips a failed iteration back to active so the recovery
// retry can rerun it in place. Iteration numbers are unique per run, so
// a retry reuses the row instead of inserting a duplicate.
func (s *IterationService) Reactivate(ctx context.Context, iterationID string) error {
	n, err := s.client.Iteration.Update().
		Where(iteration.IDEQ(iterationID), iteration.StatusEQ(iteration.StatusFailed)).
		SetStatus(iteration.StatusActive).
		ClearConvergenceScore().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to reactivate iteration: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: iteration %s is not failed", ErrConflict, iterationID)
	}
	return nil
}

// List returns a run's iterations ordered by iteration number.
func (s *IterationService) List(ctx context.Context, runID string) ([]*ent.Iteration, error) {
	its, err := s.client.Iteration.Query().
		Where(iteration.RunIDEQ(runID)).
		Order(ent.Asc(iteration.FieldIterationNumber)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list iterations: %w", err)
	}
	return its, nil
}
