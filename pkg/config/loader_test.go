package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "rmri.yaml"), []byte(content), 0o644)
	require.NoError(t, err)
	return dir
}

func TestInitializeDefaultsWithoutFile(t *testing.T) {
	cfg, err := Initialize(context.Background(), t.TempDir())
	require.NoError(t, err)

	// No rmri.yaml means built-in defaults with the sandbox cascade.
	require.Len(t, cfg.LLM.Cascade, 1)
	assert.Equal(t, ProviderSandbox, cfg.LLM.Cascade[0].Kind)
	assert.Equal(t, 30*time.Second, cfg.LLM.MicroTimeout)
	assert.Equal(t, 60*time.Second, cfg.LLM.SynthesisTimeout)
	assert.Equal(t, 4, cfg.Queue.Concurrency[QueueMicro])
	assert.Equal(t, 500*time.Millisecond, cfg.Orchestrator.BarrierPollInterval)
}

func TestInitializePartialOverride(t *testing.T) {
	dir := writeConfig(t, `
llm:
  micro_timeout: 45s
queue:
  concurrency:
    micro: 8
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, 45*time.Second, cfg.LLM.MicroTimeout)
	// Unnamed fields keep their defaults.
	assert.Equal(t, 60*time.Second, cfg.LLM.SynthesisTimeout)
	assert.Equal(t, 8, cfg.Queue.Concurrency[QueueMicro])
	assert.Equal(t, 2, cfg.Queue.Concurrency[QueueMeso])
	// Empty cascade falls back to sandbox.
	require.Len(t, cfg.LLM.Cascade, 1)
	assert.Equal(t, ProviderSandbox, cfg.LLM.Cascade[0].Kind)
}

func TestInitializeFullCascade(t *testing.T) {
	t.Setenv("TEST_ANTHROPIC_KEY", "sk-test-123")
	dir := writeConfig(t, `
llm:
  cascade:
    - name: anthropic
      kind: anthropic
      model: claude-sonnet-4-5
      api_key: "{{.TEST_ANTHROPIC_KEY}}"
      context_window: 200000
      requests_per_minute: 50
    - name: sandbox
      kind: sandbox
      context_window: 1048576
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, cfg.LLM.Cascade, 2)
	assert.Equal(t, "sk-test-123", cfg.LLM.Cascade[0].APIKey)
	assert.Equal(t, 200000, cfg.LLM.Cascade[0].ContextWindow)
}

func TestInitializeMissingAPIKey(t *testing.T) {
	// The env var is unset, so the key expands to empty and validation
	// rejects the provider.
	dir := writeConfig(t, `
llm:
  cascade:
    - name: anthropic
      kind: anthropic
      model: claude-sonnet-4-5
      api_key: "{{.RMRI_TEST_UNSET_VAR}}"
      context_window: 200000
`)

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidationFailed)
	assert.Contains(t, err.Error(), "api_key")
}

func TestInitializeInvalidYAML(t *testing.T) {
	dir := writeConfig(t, "llm: [unclosed")
	_, err := Initialize(context.Background(), dir)
	assert.ErrorIs(t, err, ErrInvalidYAML)
}

func TestInitializeDuplicateProviderName(t *testing.T) {
	dir := writeConfig(t, `
llm:
  cascade:
    - name: sandbox
      kind: sandbox
      context_window: 1000
    - name: sandbox
      kind: sandbox
      context_window: 1000
`)
	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidationFailed)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestInitializeUnknownProviderKind(t *testing.T) {
	dir := writeConfig(t, `
llm:
  cascade:
    - name: mystery
      kind: mystery
      context_window: 1000
`)
	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestInitializeRejectsShortWatchdog(t *testing.T) {
	dir := writeConfig(t, `
orchestrator:
  watchdog_timeout: 5s
`)
	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidationFailed)
	assert.Contains(t, err.Error(), "watchdog_timeout")
}

func TestExpandEnv(t *testing.T) {
	t.Setenv("RMRI_TEST_VALUE", "expanded")

	t.Run("expands present variables", func(t *testing.T) {
		out := ExpandEnv([]byte("key: {{.RMRI_TEST_VALUE}}"))
		assert.Equal(t, "key: expanded", string(out))
	})

	t.Run("missing variables become empty", func(t *testing.T) {
		out := ExpandEnv([]byte("key: '{{.RMRI_TEST_ABSENT}}'"))
		assert.Equal(t, "key: ''", string(out))
	})

	t.Run("plain yaml passes through", func(t *testing.T) {
		in := []byte("key: $literal-dollar")
		assert.Equal(t, in, ExpandEnv(in))
	})
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{Component: "provider", ID: "anthropic", Field: "api_key", Err: assert.AnError}
	assert.Contains(t, err.Error(), "provider 'anthropic'")
	assert.Contains(t, err.Error(), "api_key")
	assert.ErrorIs(t, err, assert.AnError)
}
