package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// yamlConfig represents the complete rmri.yaml file structure.
type yamlConfig struct {
	LLM          *LLMConfig          `yaml:"llm"`
	Queue        *QueueConfig        `yaml:"queue"`
	Orchestrator *OrchestratorConfig `yaml:"orchestrator"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
//
// Steps performed:
//  1. Read rmri.yaml from configDir (optional, defaults apply without it)
//  2. Expand {{.ENV_VAR}} references
//  3. Parse YAML and merge over built-in defaults
//  4. Validate the result
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg := &Config{
		configDir:    configDir,
		LLM:          DefaultLLMConfig(),
		Queue:        DefaultQueueConfig(),
		Orchestrator: DefaultOrchestratorConfig(),
	}

	path := filepath.Join(configDir, "rmri.yaml")
	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		log.Warn("No rmri.yaml found, using built-in defaults with sandbox cascade", "path", path)
		cfg.LLM.Cascade = SandboxCascade()
	case err != nil:
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigNotFound, path, err)
	default:
		var parsed yamlConfig
		if err := yaml.Unmarshal(ExpandEnv(data), &parsed); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidYAML, path, err)
		}
		mergeConfig(cfg, &parsed)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	stats := cfg.Stats()
	log.Info("Configuration initialized",
		"providers", stats.Providers,
		"queues", stats.Queues)
	return cfg, nil
}

// mergeConfig overlays parsed YAML values onto the defaults, field by
// field, so a partial file only overrides what it names.
func mergeConfig(cfg *Config, parsed *yamlConfig) {
	if parsed.LLM != nil {
		if len(parsed.LLM.Cascade) > 0 {
			cfg.LLM.Cascade = parsed.LLM.Cascade
		}
		if parsed.LLM.MicroTimeout > 0 {
			cfg.LLM.MicroTimeout = parsed.LLM.MicroTimeout
		}
		if parsed.LLM.SynthesisTimeout > 0 {
			cfg.LLM.SynthesisTimeout = parsed.LLM.SynthesisTimeout
		}
		if parsed.LLM.CallRetries > 0 {
			cfg.LLM.CallRetries = parsed.LLM.CallRetries
		}
		if parsed.LLM.RetryBackoff > 0 {
			cfg.LLM.RetryBackoff = parsed.LLM.RetryBackoff
		}
		if parsed.LLM.QuotaDeferMin > 0 {
			cfg.LLM.QuotaDeferMin = parsed.LLM.QuotaDeferMin
		}
		if parsed.LLM.QuotaDeferMax > 0 {
			cfg.LLM.QuotaDeferMax = parsed.LLM.QuotaDeferMax
		}
	}
	if len(cfg.LLM.Cascade) == 0 {
		cfg.LLM.Cascade = SandboxCascade()
	}

	if parsed.Queue != nil {
		for queue, n := range parsed.Queue.Concurrency {
			cfg.Queue.Concurrency[queue] = n
		}
		if parsed.Queue.PollInterval > 0 {
			cfg.Queue.PollInterval = parsed.Queue.PollInterval
		}
		if parsed.Queue.PollIntervalJitter > 0 {
			cfg.Queue.PollIntervalJitter = parsed.Queue.PollIntervalJitter
		}
		if parsed.Queue.RetryBase > 0 {
			cfg.Queue.RetryBase = parsed.Queue.RetryBase
		}
		if parsed.Queue.RetryFactor > 0 {
			cfg.Queue.RetryFactor = parsed.Queue.RetryFactor
		}
		if parsed.Queue.RetryCap > 0 {
			cfg.Queue.RetryCap = parsed.Queue.RetryCap
		}
		if parsed.Queue.DefaultMaxAttempts > 0 {
			cfg.Queue.DefaultMaxAttempts = parsed.Queue.DefaultMaxAttempts
		}
		if parsed.Queue.GracefulShutdownTimeout > 0 {
			cfg.Queue.GracefulShutdownTimeout = parsed.Queue.GracefulShutdownTimeout
		}
		if parsed.Queue.OrphanScanInterval > 0 {
			cfg.Queue.OrphanScanInterval = parsed.Queue.OrphanScanInterval
		}
		if parsed.Queue.OrphanThreshold > 0 {
			cfg.Queue.OrphanThreshold = parsed.Queue.OrphanThreshold
		}
	}

	if parsed.Orchestrator != nil {
		if parsed.Orchestrator.BarrierPollInterval > 0 {
			cfg.Orchestrator.BarrierPollInterval = parsed.Orchestrator.BarrierPollInterval
		}
		if parsed.Orchestrator.WatchdogTimeout > 0 {
			cfg.Orchestrator.WatchdogTimeout = parsed.Orchestrator.WatchdogTimeout
		}
		if parsed.Orchestrator.FenceHeartbeatInterval > 0 {
			cfg.Orchestrator.FenceHeartbeatInterval = parsed.Orchestrator.FenceHeartbeatInterval
		}
		if parsed.Orchestrator.FenceStaleAfter > 0 {
			cfg.Orchestrator.FenceStaleAfter = parsed.Orchestrator.FenceStaleAfter
		}
	}
}

// validate checks cross-field consistency of the merged configuration.
func validate(cfg *Config) error {
	seen := make(map[string]bool, len(cfg.LLM.Cascade))
	for i, p := range cfg.LLM.Cascade {
		id := p.Name
		if id == "" {
			id = fmt.Sprintf("cascade[%d]", i)
		}
		if p.Name == "" {
			return &ValidationError{Component: "provider", ID: id, Field: "name", Err: fmt.Errorf("required")}
		}
		if seen[p.Name] {
			return &ValidationError{Component: "provider", ID: id, Field: "name", Err: fmt.Errorf("duplicate")}
		}
		seen[p.Name] = true
		switch p.Kind {
		case ProviderAnthropic, ProviderOpenAI, ProviderGemini:
			if p.APIKey == "" {
				return &ValidationError{Component: "provider", ID: id, Field: "api_key", Err: fmt.Errorf("required (is the environment variable set?)")}
			}
			if p.Model == "" {
				return &ValidationError{Component: "provider", ID: id, Field: "model", Err: fmt.Errorf("required")}
			}
		case ProviderSandbox:
			// No credentials needed.
		default:
			return &ValidationError{Component: "provider", ID: id, Field: "kind", Err: fmt.Errorf("unknown kind %q", p.Kind)}
		}
		if p.ContextWindow <= 0 {
			return &ValidationError{Component: "provider", ID: id, Field: "context_window", Err: fmt.Errorf("must be positive")}
		}
	}

	for queue, n := range cfg.Queue.Concurrency {
		if n <= 0 {
			return &ValidationError{Component: "queue", ID: queue, Field: "concurrency", Err: fmt.Errorf("must be positive")}
		}
	}
	if cfg.Queue.RetryFactor < 1 {
		return &ValidationError{Component: "queue", ID: "retry", Field: "retry_factor", Err: fmt.Errorf("must be >= 1")}
	}
	if cfg.Orchestrator.WatchdogTimeout < time.Minute {
		return &ValidationError{Component: "orchestrator", ID: "watchdog", Field: "watchdog_timeout", Err: fmt.Errorf("must be at least 1m")}
	}
	return nil
}
