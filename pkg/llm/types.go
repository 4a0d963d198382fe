// Package llm implements the provider gateway: an ordered cascade of
// LLM providers with per-tier timeouts, bounded retries, rate pacing,
// and structured-output validation. Callers see one Generate operation;
// provider selection and failover happen behind it.
package llm

import (
	"context"

	"github.com/vi3318/Research-AI-sub000/pkg/models"
)

// Agent tiers. The tier selects the per-call timeout class.
const (
	TierMicro = "micro"
	TierMeso  = "meso"
	TierMeta  = "meta"
)

// Request describes one generation call.
type Request struct {
	// System is the system prompt; may be empty.
	System string
	// Prompt is the user-turn content.
	Prompt string
	// AgentType is one of the Tier* constants.
	AgentType string
	// PreferredProvider, when set and present in the cascade, is tried first.
	PreferredProvider string
	// MaxTokens bounds the completion length.
	MaxTokens int
	// Temperature for sampling. Zero means provider default.
	Temperature float64
	// ExpectJSON, when non-nil, is the JSON schema the decoded output
	// must conform to. Nil means raw text.
	ExpectJSON map[string]any
	// SandboxFallback allows falling through to the deterministic
	// sandbox provider after the cascade is exhausted.
	SandboxFallback bool
	// Seed carries the structured inputs the sandbox provider derives
	// its deterministic output from. Ignored by real providers.
	Seed *SandboxSeed
}

// SandboxSeed is the deterministic input for sandbox generation.
type SandboxSeed struct {
	Query      string
	PaperID    string
	PaperTitle string
	Gaps       []models.ResearchGap
	Clusters   []models.Cluster
}

// Usage is the provider-reported token accounting for one call.
type Usage struct {
	PromptTokens     int
	CompletionTokens int
}

// Stats is the observability record every call produces; callers
// persist it against the initiating agent.
type Stats struct {
	Provider         string
	Model            string
	PromptTokens     int
	CompletionTokens int
	LatencyMS        int
}

// Result is a successful generation.
type Result struct {
	// Text is the raw model output.
	Text string
	// Decoded is the schema-validated JSON value when ExpectJSON was
	// set; nil otherwise. Top-level arrays decode to []any.
	Decoded any
	// Stats describes the fulfilling call.
	Stats Stats
}

// Provider is one member of the cascade.
type Provider interface {
	// Name is the configured cascade name, e.g. "anthropic".
	Name() string
	// Model is the model identifier sent on each call.
	Model() string
	// ContextWindow is the provider's token budget; 0 means unchecked.
	ContextWindow() int
	// Generate performs one call and returns the raw completion text.
	Generate(ctx context.Context, req Request) (string, Usage, error)
}
