package config

import "time"

// ProviderKind identifies which SDK backs a provider entry.
type ProviderKind string

// Supported provider kinds.
const (
	ProviderAnthropic ProviderKind = "anthropic"
	ProviderOpenAI    ProviderKind = "openai"
	ProviderGemini    ProviderKind = "gemini"
	ProviderSandbox   ProviderKind = "sandbox"
)

// ProviderConfig describes one entry of the provider cascade.
type ProviderConfig struct {
	// Name is the provider's identifier, recorded on agent records.
	Name string `yaml:"name"`

	// Kind selects the SDK adapter.
	Kind ProviderKind `yaml:"kind"`

	// Model is the provider-specific model identifier.
	Model string `yaml:"model"`

	// APIKey is the credential, usually injected via {{.ENV_VAR}} expansion.
	APIKey string `yaml:"api_key"`

	// ContextWindow is the provider's token limit. Calls whose prompt
	// exceeds it are rejected before dispatch.
	ContextWindow int `yaml:"context_window"`

	// RequestsPerMinute and TokensPerMinute are shared quota budgets.
	// Calls that would exceed them are deferred, not retried.
	RequestsPerMinute int `yaml:"requests_per_minute"`
	TokensPerMinute   int `yaml:"tokens_per_minute"`
}

// LLMConfig holds the gateway configuration: the ordered provider cascade
// and the per-tier call policy.
type LLMConfig struct {
	// Cascade is tried in order; the sandbox entry (if present) is the
	// deterministic last resort for tests and demos.
	Cascade []ProviderConfig `yaml:"cascade"`

	// MicroTimeout bounds a single Micro-tier LLM call.
	MicroTimeout time.Duration `yaml:"micro_timeout"`

	// SynthesisTimeout bounds Meso- and Meta-tier calls.
	SynthesisTimeout time.Duration `yaml:"synthesis_timeout"`

	// CallRetries is the per-provider retry count for network/5xx failures.
	CallRetries int `yaml:"call_retries"`

	// RetryBackoff is the wait before the first retry; the second retry
	// waits three times as long.
	RetryBackoff time.Duration `yaml:"retry_backoff"`

	// QuotaDeferMin/Max bound the jittered wait when a quota budget is hit.
	QuotaDeferMin time.Duration `yaml:"quota_defer_min"`
	QuotaDeferMax time.Duration `yaml:"quota_defer_max"`
}

// DefaultLLMConfig returns the built-in gateway defaults.
func DefaultLLMConfig() *LLMConfig {
	return &LLMConfig{
		MicroTimeout:     30 * time.Second,
		SynthesisTimeout: 60 * time.Second,
		CallRetries:      2,
		RetryBackoff:     1 * time.Second,
		QuotaDeferMin:    1 * time.Second,
		QuotaDeferMax:    5 * time.Second,
	}
}

// SandboxCascade returns a cascade containing only the deterministic
// sandbox provider. Used by tests and by deployments without credentials.
func SandboxCascade() []ProviderConfig {
	return []ProviderConfig{
		{
			Name:              "sandbox",
			Kind:              ProviderSandbox,
			Model:             "sandbox-fixed",
			ContextWindow:     1 << 20,
			RequestsPerMinute: 100000,
			TokensPerMinute:   1 << 30,
		},
	}
}
