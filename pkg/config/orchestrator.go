package config

import "time"

// OrchestratorConfig controls the iteration loop's timing behavior.
type OrchestratorConfig struct {
	// BarrierPollInterval is how often the fan-out barrier re-reads agent
	// record states while waiting for an iteration's agents to finish.
	BarrierPollInterval time.Duration `yaml:"barrier_poll_interval"`

	// WatchdogTimeout fails the run when no agent record changes for this
	// long during an active iteration.
	WatchdogTimeout time.Duration `yaml:"watchdog_timeout"`

	// FenceHeartbeatInterval is how often the orchestration fence row's
	// heartbeat is refreshed while a run is being driven.
	FenceHeartbeatInterval time.Duration `yaml:"fence_heartbeat_interval"`

	// FenceStaleAfter is how quiet a fence heartbeat must be before
	// another orchestrator may reclaim it.
	FenceStaleAfter time.Duration `yaml:"fence_stale_after"`
}

// DefaultOrchestratorConfig returns the built-in orchestrator defaults.
func DefaultOrchestratorConfig() *OrchestratorConfig {
	return &OrchestratorConfig{
		BarrierPollInterval:    500 * time.Millisecond,
		WatchdogTimeout:        10 * time.Minute,
		FenceHeartbeatInterval: 15 * time.Second,
		FenceStaleAfter:        20 * time.Minute,
	}
}
