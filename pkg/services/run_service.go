package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vi3318/Research-AI-sub000/ent"
	"github.com/vi3318/Research-AI-sub000/ent/paper"
	"github.com/vi3318/Research-AI-sub000/ent/run"
	"github.com/vi3318/Research-AI-sub000/pkg/models"
)

// RunService manages run lifecycle and enforces the run state machine.
// Terminal statuses are monotone: once a run is converged, completed,
// failed, or cancelled, no further mutation is accepted except
// completed_at stamping.
type RunService struct {
	client *ent.Client
}

// NewRunService creates a new RunService.
func NewRunService(client *ent.Client) *RunService {
	return &RunService{client: client}
}

// terminalStatuses are the run statuses no transition may leave.
// A run may recover from a failed iteration at most once, total.
const maxRecoveriesPerRun = 1

var terminalStatuses = []run.Status{
	run.StatusConverged,
	run.StatusCompleted,
	run.StatusFailed,
	run.StatusCancelled,
}

// IsTerminal reports whether a run status is terminal.
func IsTerminal(status run.Status) bool {
	for _, s := range terminalStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// CreateRun creates a run and its papers in one transaction. Papers keep
// their submission order as ingestion_order.
func (s *RunService) CreateRun(httpCtx context.Context, req models.CreateRunRequest) (*ent.Run, error) {
	if req.WorkspaceID == "" {
		return nil, NewValidationError("workspace_id", "required")
	}
	if req.Query == "" {
		return nil, NewValidationError("query", "required")
	}
	if len(req.Papers) == 0 {
		return nil, NewValidationError("papers", "at least one paper is required")
	}
	if req.MaxIterations < models.MinIterations || req.MaxIterations > models.MaxIterations {
		return nil, NewValidationError("max_iterations",
			fmt.Sprintf("must be between %d and %d", models.MinIterations, models.MaxIterations))
	}
	if req.ConvergenceThreshold < 0 || req.ConvergenceThreshold > 1 {
		return nil, NewValidationError("convergence_threshold", "must be between 0.0 and 1.0")
	}
	for i, p := range req.Papers {
		if p.Title == "" {
			return nil, NewValidationError(fmt.Sprintf("papers[%d].title", i), "required")
		}
	}

	// Critical write: decouple from the HTTP request context.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	builder := tx.Run.Create().
		SetID(uuid.New().String()).
		SetWorkspaceID(req.WorkspaceID).
		SetQuery(req.Query).
		SetMaxIterations(req.MaxIterations).
		SetConvergenceThreshold(req.ConvergenceThreshold).
		SetStatus(run.StatusPending).
		SetSandboxFallback(req.SandboxFallback)
	if req.OwnerID != "" {
		builder.SetOwnerID(req.OwnerID)
	}
	if len(req.Domains) > 0 {
		builder.SetDomains(req.Domains)
	}

	r, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create run: %w", err)
	}

	for i, p := range req.Papers {
		paperID := p.PaperID
		if paperID == "" {
			paperID = uuid.New().String()
		}
		pb := tx.Paper.Create().
			SetID(paperID).
			SetRunID(r.ID).
			SetTitle(p.Title).
			SetIngestionOrder(i)
		if p.Abstract != "" {
			pb.SetAbstract(p.Abstract)
		}
		if p.FullText != "" {
			pb.SetFullText(p.FullText)
		}
		if _, err := pb.Save(ctx); err != nil {
			if ent.IsConstraintError(err) {
				return nil, fmt.Errorf("%w: paper %q", ErrAlreadyExists, paperID)
			}
			return nil, fmt.Errorf("failed to create paper %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit run creation: %w", err)
	}
	return r, nil
}

// GetRun fetches a run by ID.
func (s *RunService) GetRun(ctx context.Context, runID string) (*ent.Run, error) {
	r, err := s.client.Run.Get(ctx, runID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return r, nil
}

// ListRuns returns runs for a workspace, newest first.
func (s *RunService) ListRuns(ctx context.Context, workspaceID string, limit, offset int) ([]*ent.Run, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	q := s.client.Run.Query()
	if workspaceID != "" {
		q = q.Where(run.WorkspaceIDEQ(workspaceID))
	}
	runs, err := q.
		Order(ent.Desc(run.FieldCreatedAt)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	return runs, nil
}

// ListPapers returns the run's papers in ingestion order.
func (s *RunService) ListPapers(ctx context.Context, runID string) ([]*ent.Paper, error) {
	papers, err := s.client.Paper.Query().
		Where(paper.RunIDEQ(runID)).
		Order(ent.Asc(paper.FieldIngestionOrder)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list papers: %w", err)
	}
	return papers, nil
}

// Start transitions a pending run to running and stamps started_at.
func (s *RunService) Start(ctx context.Context, runID string) error {
	n, err := s.client.Run.Update().
		Where(run.IDEQ(runID), run.StatusEQ(run.StatusPending)).
		SetStatus(run.StatusRunning).
		SetStartedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to start run: %w", err)
	}
	if n == 0 {
		return s.classifyMissedTransition(ctx, runID)
	}
	return nil
}

// Cancel flips a pending or running run to cancelled. Terminal runs
// return ErrConflict.
func (s *RunService) Cancel(ctx context.Context, runID string) (*ent.Run, error) {
	n, err := s.client.Run.Update().
		Where(run.IDEQ(runID), run.StatusIn(run.StatusPending, run.StatusRunning)).
		SetStatus(run.StatusCancelled).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to cancel run: %w", err)
	}
	if n == 0 {
		if err := s.classifyMissedTransition(ctx, runID); err != nil {
			return nil, err
		}
		return nil, ErrConflict
	}
	return s.GetRun(ctx, runID)
}

// FinishSuccess transitions a running run to converged or completed,
// setting progress to 100 and stamping completed_at.
func (s *RunService) FinishSuccess(ctx context.Context, runID string, status run.Status) error {
	if status != run.StatusConverged && status != run.StatusCompleted {
		return NewValidationError("status", "must be converged or completed")
	}
	n, err := s.client.Run.Update().
		Where(run.IDEQ(runID), run.StatusEQ(run.StatusRunning)).
		SetStatus(status).
		SetProgressPercentage(100).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to finish run: %w", err)
	}
	if n == 0 {
		return s.classifyMissedTransition(ctx, runID)
	}
	return nil
}

// Fail transitions a pending or running run to failed with a terminal
// summary message.
func (s *RunService) Fail(ctx context.Context, runID, summary string) error {
	n, err := s.client.Run.Update().
		Where(run.IDEQ(runID), run.StatusIn(run.StatusPending, run.StatusRunning)).
		SetStatus(run.StatusFailed).
		SetErrorMessage(summary).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to fail run: %w", err)
	}
	if n == 0 {
		return s.classifyMissedTransition(ctx, runID)
	}
	return nil
}

// AdvanceIteration bumps current_iteration and raises progress to
// min(99, round(100 × iteration / max)). Progress never decreases while
// the run is non-terminal.
func (s *RunService) AdvanceIteration(ctx context.Context, runID string, iteration, maxIterations int) error {
	progress := (100*iteration + maxIterations/2) / maxIterations
	if progress > 99 {
		progress = 99
	}
	n, err := s.client.Run.Update().
		Where(
			run.IDEQ(runID),
			run.StatusEQ(run.StatusRunning),
			run.CurrentIterationLT(iteration),
			run.ProgressPercentageLTE(progress),
		).
		SetCurrentIteration(iteration).
		SetProgressPercentage(progress).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to advance iteration: %w", err)
	}
	if n == 0 {
		return s.classifyMissedTransition(ctx, runID)
	}
	return nil
}

// ConsumeRecovery atomically spends one unit of the run's iteration
// recovery budget. ErrConflict means the budget is already spent (or
// the run left the running state) and the failure is final.
func (s *RunService) ConsumeRecovery(ctx context.Context, runID string) error {
	n, err := s.client.Run.Update().
		Where(
			run.IDEQ(runID),
			run.StatusEQ(run.StatusRunning),
			run.RecoveriesUsedLT(maxRecoveriesPerRun),
		).
		AddRecoveriesUsed(1).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to consume recovery budget: %w", err)
	}
	if n == 0 {
		return s.classifyMissedTransition(ctx, runID)
	}
	return nil
}

// ListActive returns the runs currently in the running state, oldest
// first. Used by the watchdog sweep.
func (s *RunService) ListActive(ctx context.Context) ([]*ent.Run, error) {
	runs, err := s.client.Run.Query().
		Where(run.StatusEQ(run.StatusRunning)).
		Order(ent.Asc(run.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active runs: %w", err)
	}
	return runs, nil
}

// classifyMissedTransition explains a zero-row conditional update.
func (s *RunService) classifyMissedTransition(ctx context.Context, runID string) error {
	r, err := s.client.Run.Get(ctx, runID)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to inspect run after missed transition: %w", err)
	}
	if IsTerminal(r.Status) {
		return fmt.Errorf("%w: run %s is %s", ErrTerminal, runID, r.Status)
	}
	return fmt.Errorf("%w: run %s is %s", ErrConflict, runID, r.Status)
}
