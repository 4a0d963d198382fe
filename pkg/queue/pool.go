package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/vi3318/Research-AI-sub000/ent"
	"github.com/vi3318/Research-AI-sub000/ent/job"
	"github.com/vi3318/Research-AI-sub000/pkg/config"
)

// Pool manages the per-queue worker sets and the in-flight job
// registry. Handlers are registered per named queue before Start.
type Pool struct {
	podID    string
	client   *ent.Client
	config   *config.QueueConfig
	handlers map[string]Handler
	workers  []*Worker
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	started  bool

	// In-flight registry: job_id → cancel, plus run_id → job set for
	// run-scoped cancellation.
	mu         sync.RWMutex
	activeJobs map[string]context.CancelFunc
	runJobs    map[string]map[string]struct{}

	orphans orphanState
}

// NewPool creates a worker pool for this pod.
func NewPool(podID string, client *ent.Client, cfg *config.QueueConfig) *Pool {
	return &Pool{
		podID:      podID,
		client:     client,
		config:     cfg,
		handlers:   make(map[string]Handler),
		stopCh:     make(chan struct{}),
		activeJobs: make(map[string]context.CancelFunc),
		runJobs:    make(map[string]map[string]struct{}),
	}
}

// RegisterHandler binds a handler to a named queue. Concurrency <= 0
// falls back to the configured default for that queue. Must be called
// before Start.
func (p *Pool) RegisterHandler(queue string, handler Handler, concurrency int) error {
	if p.started {
		return fmt.Errorf("cannot register handler for %q: pool already started", queue)
	}
	if _, dup := p.handlers[queue]; dup {
		return fmt.Errorf("handler already registered for queue %q", queue)
	}
	p.handlers[queue] = handler
	if concurrency > 0 {
		p.config.Concurrency[queue] = concurrency
	}
	return nil
}

// Start spawns the worker goroutines and the orphan scan. Safe to call
// multiple times; subsequent calls are no-ops.
func (p *Pool) Start(ctx context.Context) error {
	if p.started {
		slog.Warn("Worker pool already started, ignoring duplicate Start call", "pod_id", p.podID)
		return nil
	}
	p.started = true

	for queue, handler := range p.handlers {
		n := p.config.ConcurrencyFor(queue)
		slog.Info("Starting queue workers", "queue", queue, "concurrency", n, "pod_id", p.podID)
		for i := 0; i < n; i++ {
			workerID := fmt.Sprintf("%s-%s-%d", p.podID, queue, i)
			w := NewWorker(workerID, p.podID, queue, p.client, p.config, handler, p)
			p.workers = append(p.workers, w)
			w.Start(ctx)
		}
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.runOrphanScan(ctx)
	}()

	slog.Info("Worker pool started", "pod_id", p.podID, "workers", len(p.workers))
	return nil
}

// Stop signals all workers to stop and waits for in-flight jobs to
// finish (graceful shutdown).
func (p *Pool) Stop() {
	slog.Info("Stopping worker pool gracefully")

	if active := p.activeJobIDs(); len(active) > 0 {
		slog.Info("Waiting for in-flight jobs to complete", "count", len(active), "job_ids", active)
	}
	for _, w := range p.workers {
		w.Stop()
	}
	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()

	slog.Info("Worker pool stopped gracefully")
}

// RegisterJob stores a cancel function for an in-flight job.
func (p *Pool) RegisterJob(jobID, runID string, cancel context.CancelFunc) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.activeJobs[jobID] = cancel
	if runID != "" {
		if p.runJobs[runID] == nil {
			p.runJobs[runID] = make(map[string]struct{})
		}
		p.runJobs[runID][jobID] = struct{}{}
	}
}

// UnregisterJob removes the cancel function when processing ends.
func (p *Pool) UnregisterJob(jobID, runID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.activeJobs, jobID)
	if runID != "" {
		delete(p.runJobs[runID], jobID)
		if len(p.runJobs[runID]) == 0 {
			delete(p.runJobs, runID)
		}
	}
}

// CancelRun cancels the contexts of this pod's in-flight jobs for a
// run. Returns the number of jobs signalled.
func (p *Pool) CancelRun(runID string) int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	n := 0
	for jobID := range p.runJobs[runID] {
		if cancel, ok := p.activeJobs[jobID]; ok {
			cancel()
			n++
		}
	}
	return n
}

// Health returns the current health status of the pool.
func (p *Pool) Health() *PoolHealth {
	ctx := context.Background()

	queueDepth, errQ := p.client.Job.Query().
		Where(job.StatusEQ(job.StatusPending)).
		Count(ctx)
	if errQ != nil {
		slog.Error("Failed to query queue depth for health check", "pod_id", p.podID, "error", errQ)
	}
	activeJobs, errA := p.client.Job.Query().
		Where(job.StatusEQ(job.StatusRunning), job.PodIDEQ(p.podID)).
		Count(ctx)
	if errA != nil {
		slog.Error("Failed to query active jobs for health check", "pod_id", p.podID, "error", errA)
	}

	workerStats := make([]WorkerHealth, len(p.workers))
	for i, w := range p.workers {
		workerStats[i] = w.Health()
	}

	dbHealthy := errQ == nil && errA == nil

	p.orphans.mu.Lock()
	lastScan := p.orphans.lastOrphanScan
	recovered := p.orphans.orphansRecovered
	p.orphans.mu.Unlock()

	return &PoolHealth{
		IsHealthy:        dbHealthy && len(p.workers) > 0,
		DBReachable:      dbHealthy,
		PodID:            p.podID,
		QueueDepth:       queueDepth,
		ActiveJobs:       activeJobs,
		TotalWorkers:     len(p.workers),
		WorkerStats:      workerStats,
		LastOrphanScan:   lastScan,
		OrphansRecovered: recovered,
	}
}

func (p *Pool) activeJobIDs() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	ids := make([]string, 0, len(p.activeJobs))
	for id := range p.activeJobs {
		ids = append(ids, id)
	}
	return ids
}
