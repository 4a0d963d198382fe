package events

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInjectDBEventID(t *testing.T) {
	payload := []byte(`{"type":"run.status","run_id":"r-1","status":"running"}`)

	out, err := injectDBEventIDAndTruncate(payload, 42)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &m))
	assert.Equal(t, float64(42), m["db_event_id"])
	assert.Equal(t, "run.status", m["type"])
	assert.Equal(t, "running", m["status"])
}

func TestTruncateSmallPayloadUnchanged(t *testing.T) {
	payload := `{"type":"run.log","run_id":"r-1","message":"hello"}`
	out, err := truncateIfNeeded(payload)
	require.NoError(t, err)
	assert.Equal(t, payload, out)
}

func TestTruncateOversizedPayloadCollapsesToEnvelope(t *testing.T) {
	big := map[string]any{
		"type":        "run.log",
		"run_id":      "r-1",
		"db_event_id": 7,
		"message":     strings.Repeat("x", 9000),
	}
	raw, err := json.Marshal(big)
	require.NoError(t, err)

	out, err := truncateIfNeeded(string(raw))
	require.NoError(t, err)
	assert.Less(t, len(out), 8000)

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &m))
	assert.Equal(t, "run.log", m["type"])
	assert.Equal(t, "r-1", m["run_id"])
	assert.Equal(t, float64(7), m["db_event_id"])
	assert.Equal(t, true, m["truncated"])
	assert.NotContains(t, m, "message")
}

func TestRunChannel(t *testing.T) {
	assert.Equal(t, "run:abc", RunChannel("abc"))
}
