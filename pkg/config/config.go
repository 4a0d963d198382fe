// Package config loads and validates the engine configuration from
// rmri.yaml plus environment variables.
package config

// Config is the umbrella configuration object returned by Initialize()
// and passed through the call chain; no ambient global state.
type Config struct {
	configDir string

	LLM          *LLMConfig
	Queue        *QueueConfig
	Orchestrator *OrchestratorConfig
}

// ConfigDir returns the configuration directory the config was loaded from.
func (c *Config) ConfigDir() string {
	return c.configDir
}

// Stats contains statistics about loaded configuration, for startup logging.
type Stats struct {
	Providers int
	Queues    int
}

// Stats returns configuration statistics.
func (c *Config) Stats() Stats {
	s := Stats{}
	if c.LLM != nil {
		s.Providers = len(c.LLM.Cascade)
	}
	if c.Queue != nil {
		s.Queues = len(c.Queue.Concurrency)
	}
	return s
}
