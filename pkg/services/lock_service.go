package services

import (
	"context"
	"fmt"
	"time"

	"github.com/vi3318/Research-AI-sub000/ent"
	"github.com/vi3318/Research-AI-sub000/ent/orchestrationlock"
)

// LockService implements per-run orchestration fencing. At most one pod
// orchestrates a run at a time: acquisition is a conditional insert on
// the run_id primary key, so the database arbitrates races. Holders
// heartbeat the row; a lock whose heartbeat goes quiet past staleAfter
// is reclaimable by another pod.
type LockService struct {
	client     *ent.Client
	podID      string
	staleAfter time.Duration
}

// NewLockService creates a LockService for this pod.
func NewLockService(client *ent.Client, podID string, staleAfter time.Duration) *LockService {
	return &LockService{client: client, podID: podID, staleAfter: staleAfter}
}

// Acquire takes the fence for a run. A live lock held elsewhere returns
// ErrFenceHeld; a stale one is stolen in place.
func (s *LockService) Acquire(ctx context.Context, runID string) error {
	_, err := s.client.OrchestrationLock.Create().
		SetID(runID).
		SetPodID(s.podID).
		Save(ctx)
	if err == nil {
		return nil
	}
	if !ent.IsConstraintError(err) {
		return fmt.Errorf("failed to acquire orchestration lock: %w", err)
	}

	lock, gerr := s.client.OrchestrationLock.Get(ctx, runID)
	if gerr != nil {
		if ent.IsNotFound(gerr) {
			// Holder released between our insert and read; retry wins next poll.
			return fmt.Errorf("%w: run %s", ErrFenceHeld, runID)
		}
		return fmt.Errorf("failed to inspect orchestration lock: %w", gerr)
	}
	if lock.PodID == s.podID {
		// Re-entrant after restart of the same pod identity.
		return nil
	}
	if time.Since(lock.HeartbeatAt) < s.staleAfter {
		return fmt.Errorf("%w: run %s held by %s", ErrFenceHeld, runID, lock.PodID)
	}

	// Steal: the takeover is conditional on the stale holder and stale
	// heartbeat still being in place, so two reclaimers cannot both win.
	n, uerr := s.client.OrchestrationLock.Update().
		Where(
			orchestrationlock.IDEQ(runID),
			orchestrationlock.PodIDEQ(lock.PodID),
			orchestrationlock.HeartbeatAtLTE(time.Now().Add(-s.staleAfter)),
		).
		SetPodID(s.podID).
		SetHeartbeatAt(time.Now()).
		Save(ctx)
	if uerr != nil {
		return fmt.Errorf("failed to reclaim stale lock: %w", uerr)
	}
	if n == 0 {
		return fmt.Errorf("%w: run %s", ErrFenceHeld, runID)
	}
	return nil
}

// Heartbeat refreshes this pod's hold on the fence. ErrFenceHeld means
// the fence was lost (stolen after a stall); the caller must stop
// orchestrating the run.
func (s *LockService) Heartbeat(ctx context.Context, runID string) error {
	n, err := s.client.OrchestrationLock.Update().
		Where(orchestrationlock.IDEQ(runID), orchestrationlock.PodIDEQ(s.podID)).
		SetHeartbeatAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to heartbeat orchestration lock: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: run %s no longer held by %s", ErrFenceHeld, runID, s.podID)
	}
	return nil
}

// Release drops the fence if this pod still holds it. Releasing a fence
// already stolen or gone is a no-op.
func (s *LockService) Release(ctx context.Context, runID string) error {
	_, err := s.client.OrchestrationLock.Delete().
		Where(orchestrationlock.IDEQ(runID), orchestrationlock.PodIDEQ(s.podID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to release orchestration lock: %w", err)
	}
	return nil
}

// Holder returns the pod currently holding the run's fence, or
// ErrNotFound when unfenced.
func (s *LockService) Holder(ctx context.Context, runID string) (string, error) {
	lock, err := s.client.OrchestrationLock.Get(ctx, runID)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to get orchestration lock: %w", err)
	}
	return lock.PodID, nil
}
