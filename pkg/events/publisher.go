package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"
)

// Publisher publishes run events for observer delivery. Persistent
// events are stored in the events table then broadcast via NOTIFY in
// one transaction, so a committed row always has a matching
// notification. Transient events (the progress ticker) are NOTIFY only.
type Publisher struct {
	db *sql.DB
}

// NewPublisher creates a Publisher. The db parameter should be the
// *sql.DB from database.Client.DB().
func NewPublisher(db *sql.DB) *Publisher {
	return &Publisher{db: db}
}

// PublishRunStatus persists a run status event to the run channel and
// broadcasts a transient copy to the global runs channel. Both are
// best-effort independently; the first error wins.
func (p *Publisher) PublishRunStatus(ctx context.Context, runID string, payload StatusPayload) error {
	payload.Type = EventTypeRunStatus
	payload.Timestamp = time.Now().Format(time.RFC3339Nano)
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal StatusPayload: %w", err)
	}

	var firstErr error
	if err := p.persistAndNotify(ctx, runID, RunChannel(runID), payloadJSON); err != nil {
		slog.Warn("Failed to publish run status to run channel",
			"run_id", runID, "status", payload.Status, "error", err)
		firstErr = err
	}
	if err := p.notifyOnly(ctx, GlobalRunsChannel, payloadJSON); err != nil {
		slog.Warn("Failed to publish run status to global channel",
			"run_id", runID, "status", payload.Status, "error", err)
		if firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// PublishLog persists and broadcasts a run.log event.
func (p *Publisher) PublishLog(ctx context.Context, runID string, payload LogPayload) error {
	payload.Type = EventTypeLog
	payload.Timestamp = time.Now().Format(time.RFC3339Nano)
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal LogPayload: %w", err)
	}
	return p.persistAndNotify(ctx, runID, RunChannel(runID), payloadJSON)
}

// PublishIteration persists and broadcasts a run.iteration event.
func (p *Publisher) PublishIteration(ctx context.Context, runID string, payload IterationPayload) error {
	payload.Type = EventTypeIteration
	payload.Timestamp = time.Now().Format(time.RFC3339Nano)
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal IterationPayload: %w", err)
	}
	return p.persistAndNotify(ctx, runID, RunChannel(runID), payloadJSON)
}

// PublishResult persists and broadcasts a run.result event.
func (p *Publisher) PublishResult(ctx context.Context, runID string, payload ResultPayload) error {
	payload.Type = EventTypeResult
	payload.Timestamp = time.Now().Format(time.RFC3339Nano)
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal ResultPayload: %w", err)
	}
	return p.persistAndNotify(ctx, runID, RunChannel(runID), payloadJSON)
}

// PublishProgress broadcasts a run.progress transient event (no DB
// persistence). High-frequency and safe to lose.
func (p *Publisher) PublishProgress(ctx context.Context, runID string, payload ProgressPayload) error {
	payload.Type = EventTypeProgress
	payload.Timestamp = time.Now().Format(time.RFC3339Nano)
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal ProgressPayload: %w", err)
	}
	return p.notifyOnly(ctx, RunChannel(runID), payloadJSON)
}

// persistAndNotify stores an event and broadcasts it in one
// transaction; pg_notify is transactional, so the notification fires
// only on COMMIT.
func (p *Publisher) persistAndNotify(ctx context.Context, runID, channel string, payloadJSON []byte) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var eventID int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO events (run_id, channel, payload, created_at) VALUES ($1, $2, $3, $4) RETURNING id`,
		runID, channel, payloadJSON, time.Now(),
	).Scan(&eventID)
	if err != nil {
		return fmt.Errorf("failed to persist event: %w", err)
	}

	notifyPayload, err := injectDBEventIDAndTruncate(payloadJSON, eventID)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload); err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit event transaction: %w", err)
	}
	return nil
}

// notifyOnly broadcasts without persisting.
func (p *Publisher) notifyOnly(ctx context.Context, channel string, payloadJSON []byte) error {
	notifyPayload, err := truncateIfNeeded(string(payloadJSON))
	if err != nil {
		return err
	}
	if _, err := p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload); err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	return nil
}

// injectDBEventIDAndTruncate adds db_event_id to the payload for
// catchup tracking and applies the NOTIFY size limit.
func injectDBEventIDAndTruncate(payloadJSON []byte, dbEventID int64) (string, error) {
	var m map[string]any
	if err := json.Unmarshal(payloadJSON, &m); err != nil {
		return "", fmt.Errorf("failed to unmarshal payload for db_event_id injection: %w", err)
	}
	m["db_event_id"] = dbEventID

	enriched, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("failed to marshal enriched NOTIFY payload: %w", err)
	}
	return truncateIfNeeded(string(enriched))
}

// truncateIfNeeded keeps payloads under PostgreSQL's 8000-byte NOTIFY
// limit. Oversized payloads collapse to a routing envelope; the client
// fetches the full event from the catchup store.
func truncateIfNeeded(payloadStr string) (string, error) {
	if len(payloadStr) <= 7900 {
		return payloadStr, nil
	}

	var routing struct {
		Type      string `json:"type"`
		RunID     string `json:"run_id"`
		DBEventID *int64 `json:"db_event_id,omitempty"`
	}
	if err := json.Unmarshal([]byte(payloadStr), &routing); err != nil {
		return "", fmt.Errorf("failed to extract routing fields for truncation: %w", err)
	}

	truncated := map[string]any{
		"type":      routing.Type,
		"run_id":    routing.RunID,
		"truncated": true,
	}
	if routing.DBEventID != nil {
		truncated["db_event_id"] = *routing.DBEventID
	}
	truncBytes, err := json.Marshal(truncated)
	if err != nil {
		return "", fmt.Errorf("failed to marshal truncated payload: %w", err)
	}
	return string(truncBytes), nil
}
