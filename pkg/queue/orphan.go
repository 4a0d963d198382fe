package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/vi3318/Research-AI-sub000/ent"
	"github.com/vi3318/Research-AI-sub000/ent/job"
)

// orphanState tracks orphan scan metrics (thread-safe).
type orphanState struct {
	mu               sync.Mutex
	lastOrphanScan   time.Time
	orphansRecovered int
}

// runOrphanScan periodically recovers jobs whose claimer stopped
// heartbeating. All pods run this independently; the operations are
// idempotent.
func (p *Pool) runOrphanScan(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanScanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.recoverOrphans(ctx); err != nil {
				slog.Error("Orphan scan failed", "error", err)
			}
		}
	}
}

// recoverOrphans finds running jobs with stale heartbeats and either
// reschedules them or, when their attempt budget is spent, fails them.
func (p *Pool) recoverOrphans(ctx context.Context) error {
	threshold := time.Now().Add(-p.config.OrphanThreshold)

	orphans, err := p.client.Job.Query().
		Where(
			job.StatusEQ(job.StatusRunning),
			job.UpdatedAtLT(threshold),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query orphaned jobs: %w", err)
	}

	recovered := 0
	for _, j := range orphans {
		if err := p.recoverOrphanedJob(ctx, j); err != nil {
			slog.Error("Failed to recover orphaned job", "job_id", j.ID, "error", err)
			continue
		}
		recovered++
	}

	p.orphans.mu.Lock()
	p.orphans.lastOrphanScan = time.Now()
	p.orphans.orphansRecovered += recovered
	p.orphans.mu.Unlock()

	if recovered > 0 {
		slog.Warn("Recovered orphaned jobs", "count", recovered)
	}
	return nil
}

func (p *Pool) recoverOrphanedJob(ctx context.Context, j *ent.Job) error {
	podID := "unknown"
	if j.PodID != nil {
		podID = *j.PodID
	}
	reason := fmt.Sprintf("orphaned: no heartbeat from pod %s since %s",
		podID, j.UpdatedAt.Format(time.RFC3339))

	if j.Attempt >= j.MaxAttempts {
		return p.client.Job.UpdateOneID(j.ID).
			SetStatus(job.StatusFailed).
			SetLastError(reason).
			Exec(ctx)
	}
	// Handlers are idempotent, so an orphaned attempt can simply be
	// re-queued for the next claimer.
	return p.client.Job.UpdateOneID(j.ID).
		SetStatus(job.StatusPending).
		SetNextRunAt(time.Now()).
		SetLastError(reason).
		ClearPodID().
		Exec(ctx)
}

// CleanupStartupOrphans re-queues jobs this pod had claimed when it
// previously crashed. Called once during startup, before the pool
// begins processing.
func CleanupStartupOrphans(ctx context.Context, client *ent.Client, podID string) error {
	orphans, err := client.Job.Query().
		Where(
			job.StatusEQ(job.StatusRunning),
			job.PodIDEQ(podID),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query startup orphans: %w", err)
	}
	if len(orphans) == 0 {
		return nil
	}

	slog.Warn("Found startup orphan jobs from previous run", "pod_id", podID, "count", len(orphans))

	for _, j := range orphans {
		reason := fmt.Sprintf("orphaned: pod %s restarted while job was running", podID)
		var uerr error
		if j.Attempt >= j.MaxAttempts {
			uerr = client.Job.UpdateOneID(j.ID).
				SetStatus(job.StatusFailed).
				SetLastError(reason).
				Exec(ctx)
		} else {
			uerr = client.Job.UpdateOneID(j.ID).
				SetStatus(job.StatusPending).
				SetNextRunAt(time.Now()).
				SetLastError(reason).
				ClearPodID().
				Exec(ctx)
		}
		if uerr != nil {
			slog.Error("Failed to recover startup orphan", "job_id", j.ID, "error", uerr)
			continue
		}
		slog.Info("Startup orphan job re-queued", "job_id", j.ID, "queue", j.Queue)
	}
	return nil
}
