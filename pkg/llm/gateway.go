package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"github.com/xeipuuv/gojsonschema"

	"github.com/vi3318/Research-AI-sub000/pkg/config"
)

// Gateway fronts the provider cascade. One Generate call tries each
// provider in order with the per-tier timeout, bounded retries, and
// rate pacing; the first schema-conforming response wins.
type Gateway struct {
	cfg       *config.LLMConfig
	providers []Provider
	pacers    map[string]*pacer
	sandbox   Provider
	counter   *tokenCounter
	logger    *slog.Logger

	// sleep is swapped in tests to avoid real waits.
	sleep func(ctx context.Context, d time.Duration) error
}

// NewGateway builds a Gateway from the configured cascade.
func NewGateway(cfg *config.LLMConfig, logger *slog.Logger) (*Gateway, error) {
	g := &Gateway{
		cfg:     cfg,
		pacers:  make(map[string]*pacer),
		counter: getTokenCounter(),
		logger:  logger.With("component", "llm_gateway"),
		sleep:   sleepCtx,
	}
	for _, pc := range cfg.Cascade {
		p, err := newProvider(pc)
		if err != nil {
			return nil, err
		}
		g.providers = append(g.providers, p)
		g.pacers[p.Name()] = newPacer(pc.RequestsPerMinute, pc.TokensPerMinute)
	}
	if len(g.providers) == 0 {
		return nil, fmt.Errorf("llm cascade is empty")
	}

	// Fallback sandbox for runs that opt in, regardless of cascade contents.
	sandboxCfg := config.SandboxCascade()[0]
	g.sandbox = newSandboxProvider(sandboxCfg)
	g.pacers[sandboxCfg.Name] = newPacer(sandboxCfg.RequestsPerMinute, sandboxCfg.TokensPerMinute)
	return g, nil
}

func newProvider(pc config.ProviderConfig) (Provider, error) {
	switch pc.Kind {
	case config.ProviderAnthropic:
		return newAnthropicProvider(pc), nil
	case config.ProviderOpenAI:
		return newOpenAIProvider(pc), nil
	case config.ProviderGemini:
		return newGeminiProvider(pc), nil
	case config.ProviderSandbox:
		return newSandboxProvider(pc), nil
	default:
		return nil, fmt.Errorf("unknown provider kind %q", pc.Kind)
	}
}

// Generate runs the cascade for one request. Schema failures do not
// cascade: a model that answered but produced invalid structure is a
// caller-level problem, reported as ErrSchema with the raw text.
func (g *Gateway) Generate(ctx context.Context, req Request) (*Result, error) {
	promptTokens := g.counter.Count(req.System + req.Prompt)

	var lastErr error
	for _, p := range g.orderedCascade(req.PreferredProvider) {
		if cw := p.ContextWindow(); cw > 0 && promptTokens+req.MaxTokens > cw {
			g.logger.Warn("prompt exceeds provider context window",
				"provider", p.Name(), "prompt_tokens", promptTokens, "context_window", cw)
			lastErr = fmt.Errorf("%w: %s", ErrTokenBudget, p.Name())
			continue
		}

		res, err := g.attempt(ctx, p, req, promptTokens)
		if err == nil {
			return res, nil
		}
		if errors.Is(err, ErrSchema) || errors.Is(err, context.Canceled) {
			return nil, err
		}
		g.logger.Warn("provider failed, cascading",
			"provider", p.Name(), "agent_type", req.AgentType, "error", err)
		lastErr = err
	}

	if req.SandboxFallback {
		g.logger.Info("cascade exhausted, using sandbox fallback", "agent_type", req.AgentType)
		return g.attempt(ctx, g.sandbox, req, promptTokens)
	}
	if lastErr == nil {
		lastErr = errors.New("cascade is empty")
	}
	return nil, fmt.Errorf("%w: %v", ErrNoProvider, lastErr)
}

// orderedCascade puts the preferred provider first, then the configured
// order.
func (g *Gateway) orderedCascade(preferred string) []Provider {
	if preferred == "" {
		return g.providers
	}
	ordered := make([]Provider, 0, len(g.providers))
	for _, p := range g.providers {
		if p.Name() == preferred {
			ordered = append(ordered, p)
		}
	}
	if len(ordered) == 0 {
		return g.providers
	}
	for _, p := range g.providers {
		if p.Name() != preferred {
			ordered = append(ordered, p)
		}
	}
	return ordered
}

// attempt calls one provider with retries. Network/5xx failures back
// off 1 s then 3 s; quota pressure defers with jitter; auth and other
// 4xx-style errors fail immediately.
func (g *Gateway) attempt(ctx context.Context, p Provider, req Request, promptTokens int) (*Result, error) {
	timeout := g.cfg.SynthesisTimeout
	if req.AgentType == TierMicro {
		timeout = g.cfg.MicroTimeout
	}

	attempts := 1 + g.cfg.CallRetries
	var lastErr error
	for i := 0; i < attempts; i++ {
		if pc := g.pacers[p.Name()]; pc != nil {
			if err := pc.wait(ctx, promptTokens+req.MaxTokens); err != nil {
				return nil, err
			}
		}

		callCtx, cancel := context.WithTimeout(ctx, timeout)
		start := time.Now()
		text, usage, err := p.Generate(callCtx, req)
		latency := time.Since(start)
		cancel()

		if err == nil {
			return g.finish(p, req, text, usage, promptTokens, latency)
		}
		if errors.Is(err, context.Canceled) && ctx.Err() != nil {
			return nil, ctx.Err()
		}
		lastErr = err
		if !retryable(err) || i == attempts-1 {
			break
		}

		var wait time.Duration
		if errors.Is(err, ErrQuota) {
			wait = g.quotaDefer()
			g.logger.Info("provider quota hit, deferring",
				"provider", p.Name(), "wait", wait)
		} else {
			// 1 s before the first retry, 3 s before the second.
			wait = g.cfg.RetryBackoff * time.Duration(2*i+1)
		}
		if err := g.sleep(ctx, wait); err != nil {
			return nil, err
		}
	}
	return nil, fmt.Errorf("provider %s: %w", p.Name(), lastErr)
}

// finish validates structured output and assembles the result record.
func (g *Gateway) finish(p Provider, req Request, text string, usage Usage, promptEstimate int, latency time.Duration) (*Result, error) {
	if usage.PromptTokens == 0 {
		usage.PromptTokens = promptEstimate
	}
	res := &Result{
		Text: text,
		Stats: Stats{
			Provider:         p.Name(),
			Model:            p.Model(),
			PromptTokens:     usage.PromptTokens,
			CompletionTokens: usage.CompletionTokens,
			LatencyMS:        int(latency.Milliseconds()),
		},
	}
	if req.ExpectJSON == nil {
		return res, nil
	}
	decoded, err := decodeStructured(text, req.ExpectJSON)
	if err != nil {
		return nil, err
	}
	res.Decoded = decoded
	return res, nil
}

// decodeStructured parses model output against a schema. A failed parse
// gets one more chance after wrapper stripping; a failed validation is
// final.
func decodeStructured(text string, schema map[string]any) (any, error) {
	var decoded any
	if err := json.Unmarshal([]byte(text), &decoded); err != nil {
		stripped := stripWrappers(text)
		if err := json.Unmarshal([]byte(stripped), &decoded); err != nil {
			return nil, &SchemaError{Raw: text, Detail: fmt.Sprintf("not valid JSON: %v", err)}
		}
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewGoLoader(schema),
		gojsonschema.NewGoLoader(decoded),
	)
	if err != nil {
		return nil, &SchemaError{Raw: text, Detail: fmt.Sprintf("schema validation failed: %v", err)}
	}
	if !result.Valid() {
		details := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			details = append(details, e.String())
		}
		return nil, &SchemaError{Raw: text, Detail: strings.Join(details, "; ")}
	}
	return decoded, nil
}

// stripWrappers removes code fences and prose around the first JSON
// value in the text.
func stripWrappers(text string) string {
	s := strings.TrimSpace(text)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if i := strings.LastIndex(s, "```"); i >= 0 {
			s = s[:i]
		}
		s = strings.TrimSpace(s)
	}

	// Cut a prose preamble/epilogue around the outermost JSON value.
	objStart := strings.IndexAny(s, "{[")
	if objStart < 0 {
		return s
	}
	var objEnd int
	if s[objStart] == '{' {
		objEnd = strings.LastIndex(s, "}")
	} else {
		objEnd = strings.LastIndex(s, "]")
	}
	if objEnd > objStart {
		return s[objStart : objEnd+1]
	}
	return s
}

func (g *Gateway) quotaDefer() time.Duration {
	spread := g.cfg.QuotaDeferMax - g.cfg.QuotaDeferMin
	if spread <= 0 {
		return g.cfg.QuotaDeferMin
	}
	return g.cfg.QuotaDeferMin + time.Duration(rand.Int63n(int64(spread)))
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
