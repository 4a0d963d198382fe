package config

import "time"

// Queue names. Each named queue has its own worker pool.
const (
	QueueMicro        = "micro"
	QueueMeso         = "meso"
	QueueMeta         = "meta"
	QueueOrchestrator = "orchestrator"
)

// QueueConfig contains queue and worker pool configuration. These values
// control how jobs are polled, claimed, retried, and processed.
type QueueConfig struct {
	// Concurrency is the bounded worker count per named queue.
	Concurrency map[string]int `yaml:"concurrency"`

	// PollInterval is the base interval for checking pending jobs.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter randomizes the poll interval:
	// actual interval is PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// RetryBase, RetryFactor, and RetryCap define the per-job retry
	// backoff: base × factor^(attempt-1), capped.
	RetryBase   time.Duration `yaml:"retry_base"`
	RetryFactor float64       `yaml:"retry_factor"`
	RetryCap    time.Duration `yaml:"retry_cap"`

	// DefaultMaxAttempts applies when Enqueue does not override it.
	DefaultMaxAttempts int `yaml:"default_max_attempts"`

	// GracefulShutdownTimeout is the max time to wait for in-flight jobs
	// during shutdown.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`

	// HeartbeatInterval is how often a worker refreshes a running job's
	// updated_at so orphan detection can tell dead claims from live ones.
	HeartbeatInterval time.Duration `yaml:"heartbeat_interval"`

	// OrphanScanInterval is how often to scan for jobs claimed by dead pods.
	OrphanScanInterval time.Duration `yaml:"orphan_scan_interval"`

	// OrphanThreshold is how stale a running job's updated_at must be
	// before it is considered orphaned and reset to pending.
	OrphanThreshold time.Duration `yaml:"orphan_threshold"`
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		Concurrency: map[string]int{
			QueueMicro:        4,
			QueueMeso:         2,
			QueueMeta:         2,
			QueueOrchestrator: 4,
		},
		PollInterval:            500 * time.Millisecond,
		PollIntervalJitter:      250 * time.Millisecond,
		RetryBase:               2 * time.Second,
		RetryFactor:             2,
		RetryCap:                60 * time.Second,
		DefaultMaxAttempts:      3,
		GracefulShutdownTimeout: 2 * time.Minute,
		HeartbeatInterval:       30 * time.Second,
		OrphanScanInterval:      1 * time.Minute,
		OrphanThreshold:         5 * time.Minute,
	}
}

// ConcurrencyFor returns the worker count for a queue, defaulting to 1
// for unknown queues so a misconfigured name still drains.
func (c *QueueConfig) ConcurrencyFor(queue string) int {
	if n, ok := c.Concurrency[queue]; ok && n > 0 {
		return n
	}
	return 1
}
