package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vi3318/Research-AI-sub000/pkg/config"
)

// stubProvider scripts a sequence of responses for cascade tests.
type stubProvider struct {
	name      string
	window    int
	responses []stubResponse
	calls     int
}

type stubResponse struct {
	text string
	err  error
}

func (s *stubProvider) Name() string       { return s.name }
func (s *stubProvider) Model() string      { return s.name + "-model" }
func (s *stubProvider) ContextWindow() int { return s.window }

func (s *stubProvider) Generate(ctx context.Context, req Request) (string, Usage, error) {
	if err := ctx.Err(); err != nil {
		return "", Usage{}, err
	}
	i := s.calls
	s.calls++
	if i >= len(s.responses) {
		i = len(s.responses) - 1
	}
	r := s.responses[i]
	return r.text, Usage{PromptTokens: 10, CompletionTokens: 5}, r.err
}

func newTestGateway(t *testing.T, providers ...*stubProvider) *Gateway {
	t.Helper()
	cfg := config.DefaultLLMConfig()
	cfg.CallRetries = 2
	g := &Gateway{
		cfg:     cfg,
		pacers:  map[string]*pacer{},
		counter: getTokenCounter(),
		logger:  slog.Default(),
		sleep:   func(ctx context.Context, d time.Duration) error { return ctx.Err() },
	}
	for _, p := range providers {
		g.providers = append(g.providers, p)
	}
	g.sandbox = newSandboxProvider(config.SandboxCascade()[0])
	return g
}

var rawSchema = map[string]any{
	"type":     "object",
	"required": []any{"value"},
	"properties": map[string]any{
		"value": map[string]any{"type": "string"},
	},
}

func TestGenerateFirstProviderWins(t *testing.T) {
	first := &stubProvider{name: "first", responses: []stubResponse{{text: "hello"}}}
	second := &stubProvider{name: "second", responses: []stubResponse{{text: "unused"}}}
	g := newTestGateway(t, first, second)

	res, err := g.Generate(context.Background(), Request{Prompt: "hi", AgentType: TierMeso, MaxTokens: 100})
	require.NoError(t, err)
	assert.Equal(t, "hello", res.Text)
	assert.Equal(t, "first", res.Stats.Provider)
	assert.Equal(t, 0, second.calls)
}

func TestGenerateCascadesOnFailure(t *testing.T) {
	// Auth errors are not retried; the cascade moves on immediately.
	failing := &stubProvider{name: "failing", responses: []stubResponse{
		{err: fmt.Errorf("%w: bad key", ErrAuth)},
	}}
	backup := &stubProvider{name: "backup", responses: []stubResponse{{text: "recovered"}}}
	g := newTestGateway(t, failing, backup)

	res, err := g.Generate(context.Background(), Request{Prompt: "hi", AgentType: TierMeso, MaxTokens: 100})
	require.NoError(t, err)
	assert.Equal(t, "recovered", res.Text)
	assert.Equal(t, "backup", res.Stats.Provider)
	assert.Equal(t, 1, failing.calls)
}

func TestGenerateRetriesTransientThenSucceeds(t *testing.T) {
	flaky := &stubProvider{name: "flaky", responses: []stubResponse{
		{err: fmt.Errorf("%w: connection reset", ErrTransient)},
		{err: fmt.Errorf("%w: 503", ErrTransient)},
		{text: "third time lucky"},
	}}
	g := newTestGateway(t, flaky)

	res, err := g.Generate(context.Background(), Request{Prompt: "hi", AgentType: TierMicro, MaxTokens: 100})
	require.NoError(t, err)
	assert.Equal(t, "third time lucky", res.Text)
	assert.Equal(t, 3, flaky.calls)
}

func TestGenerateExhaustedCascade(t *testing.T) {
	down := &stubProvider{name: "down", responses: []stubResponse{
		{err: fmt.Errorf("%w: bad key", ErrAuth)},
	}}
	g := newTestGateway(t, down)

	_, err := g.Generate(context.Background(), Request{Prompt: "hi", AgentType: TierMeso, MaxTokens: 100})
	assert.ErrorIs(t, err, ErrNoProvider)
}

func TestGenerateSandboxFallback(t *testing.T) {
	down := &stubProvider{name: "down", responses: []stubResponse{
		{err: fmt.Errorf("%w: bad key", ErrAuth)},
	}}
	g := newTestGateway(t, down)

	res, err := g.Generate(context.Background(), Request{
		Prompt:          "hi",
		AgentType:       TierMeta,
		MaxTokens:       100,
		SandboxFallback: true,
		Seed:            &SandboxSeed{Query: "test query"},
	})
	require.NoError(t, err)
	assert.Equal(t, "sandbox", res.Stats.Provider)
}

func TestGenerateSchemaFailureDoesNotCascade(t *testing.T) {
	// The model answered; its structure is wrong. Trying another model
	// would burn quota on the same prompt, so the error is terminal.
	malformed := &stubProvider{name: "malformed", responses: []stubResponse{
		{text: `{"wrong": true}`},
	}}
	backup := &stubProvider{name: "backup", responses: []stubResponse{{text: `{"value": "ok"}`}}}
	g := newTestGateway(t, malformed, backup)

	_, err := g.Generate(context.Background(), Request{
		Prompt:     "hi",
		AgentType:  TierMeso,
		MaxTokens:  100,
		ExpectJSON: rawSchema,
	})
	assert.ErrorIs(t, err, ErrSchema)
	assert.Equal(t, 0, backup.calls)

	var se *SchemaError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, `{"wrong": true}`, se.Raw)
}

func TestGenerateValidStructuredOutput(t *testing.T) {
	p := &stubProvider{name: "good", responses: []stubResponse{
		{text: "```json\n{\"value\": \"ok\"}\n```"},
	}}
	g := newTestGateway(t, p)

	res, err := g.Generate(context.Background(), Request{
		Prompt:     "hi",
		AgentType:  TierMeso,
		MaxTokens:  100,
		ExpectJSON: rawSchema,
	})
	require.NoError(t, err)
	decoded, ok := res.Decoded.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "ok", decoded["value"])
}

func TestGenerateContextWindowSkip(t *testing.T) {
	tiny := &stubProvider{name: "tiny", window: 5, responses: []stubResponse{{text: "never"}}}
	big := &stubProvider{name: "big", responses: []stubResponse{{text: "fits"}}}
	g := newTestGateway(t, tiny, big)

	res, err := g.Generate(context.Background(), Request{
		Prompt:    "a prompt that certainly exceeds five tokens of budget",
		AgentType: TierMeso,
		MaxTokens: 100,
	})
	require.NoError(t, err)
	assert.Equal(t, "fits", res.Text)
	assert.Equal(t, "big", res.Stats.Provider)
	assert.Equal(t, 0, tiny.calls)
}

func TestGeneratePreferredProviderFirst(t *testing.T) {
	a := &stubProvider{name: "a", responses: []stubResponse{{text: "from a"}}}
	b := &stubProvider{name: "b", responses: []stubResponse{{text: "from b"}}}
	g := newTestGateway(t, a, b)

	res, err := g.Generate(context.Background(), Request{
		Prompt:            "hi",
		AgentType:         TierMeso,
		MaxTokens:         100,
		PreferredProvider: "b",
	})
	require.NoError(t, err)
	assert.Equal(t, "from b", res.Text)
	assert.Equal(t, "b", res.Stats.Provider)
	assert.Equal(t, 0, a.calls)
}

func TestStripWrappers(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain json untouched",
			input:    `{"a": 1}`,
			expected: `{"a": 1}`,
		},
		{
			name:     "json code fence",
			input:    "```json\n{\"a\": 1}\n```",
			expected: `{"a": 1}`,
		},
		{
			name:     "bare code fence",
			input:    "```\n[1, 2]\n```",
			expected: `[1, 2]`,
		},
		{
			name:     "prose around object",
			input:    "Here is the result:\n{\"a\": 1}\nHope that helps!",
			expected: `{"a": 1}`,
		},
		{
			name:     "prose around array",
			input:    "Sure: [1, 2] as requested.",
			expected: `[1, 2]`,
		},
		{
			name:     "no json at all",
			input:    "I cannot answer that.",
			expected: "I cannot answer that.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, stripWrappers(tt.input))
		})
	}
}

func TestClassifyProviderError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected error
	}{
		{"deadline", context.DeadlineExceeded, ErrTimeout},
		{"rate limit", errors.New("429 Too Many Requests"), ErrQuota},
		{"overloaded", errors.New("overloaded_error"), ErrQuota},
		{"auth", errors.New("401 Unauthorized"), ErrAuth},
		{"server error", errors.New("503 Service Unavailable"), ErrTransient},
		{"connection", errors.New("connection refused"), ErrTransient},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, classifyProviderError(tt.err), tt.expected)
		})
	}

	t.Run("unknown passes through", func(t *testing.T) {
		unknown := errors.New("400 invalid request body")
		got := classifyProviderError(unknown)
		assert.False(t, errors.Is(got, ErrQuota))
		assert.False(t, errors.Is(got, ErrTransient))
	})

	t.Run("nil", func(t *testing.T) {
		assert.NoError(t, classifyProviderError(nil))
	})
}

func TestRetryable(t *testing.T) {
	assert.True(t, retryable(fmt.Errorf("%w: x", ErrTransient)))
	assert.True(t, retryable(fmt.Errorf("%w: x", ErrQuota)))
	assert.True(t, retryable(fmt.Errorf("%w: x", ErrTimeout)))
	assert.False(t, retryable(fmt.Errorf("%w: x", ErrAuth)))
	assert.False(t, retryable(errors.New("other")))
}
