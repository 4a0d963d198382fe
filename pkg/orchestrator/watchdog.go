package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vi3318/Research-AI-sub000/pkg/services"
)

// watchdogSweepInterval is how often stuck-run detection scans the
// active runs.
const watchdogSweepInterval = time.Minute

// RunWatchdog periodically fails runs whose agent records have not
// changed within the configured timeout. Blocks until ctx is done;
// start it in its own goroutine.
func (e *Engine) RunWatchdog(ctx context.Context) {
	ticker := time.NewTicker(watchdogSweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			e.sweepStuckRuns(ctx)
		}
	}
}

func (e *Engine) sweepStuckRuns(ctx context.Context) {
	runs, err := e.runs.ListActive(ctx)
	if err != nil {
		e.logger.Warn("Watchdog failed to list active runs", "error", err)
		return
	}
	cutoff := time.Now().Add(-e.cfg.WatchdogTimeout)
	for _, r := range runs {
		last, err := e.agents.LastActivity(ctx, r.ID)
		if errors.Is(err, services.ErrNotFound) {
			// No agents yet; measure from the run's start.
			if r.StartedAt == nil {
				continue
			}
			last = *r.StartedAt
		} else if err != nil {
			e.logger.Warn("Watchdog failed to read agent activity", "run_id", r.ID, "error", err)
			continue
		}
		if last.After(cutoff) {
			continue
		}

		summary := fmt.Sprintf("watchdog: no agent activity since %s", last.UTC().Format(time.RFC3339))
		if err := e.failRun(ctx, r.ID, summary); err != nil {
			e.logger.Error("Watchdog failed to settle stuck run", "run_id", r.ID, "error", err)
			continue
		}
		if err := e.broker.DrainRun(ctx, r.ID); err != nil {
			e.logger.Warn("Watchdog failed to drain stuck run's jobs", "run_id", r.ID, "error", err)
		}
	}
}
