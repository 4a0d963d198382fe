package services

import (
	"context"
	"fmt"

	"github.com/vi3318/Research-AI-sub000/ent"
	"github.com/vi3318/Research-AI-sub000/ent/logentry"
)

// LogService appends and reads per-run log entries. Entries are
// append-only; ordering is (created_at, id).
type LogService struct {
	client *ent.Client
}

// NewLogService creates a new LogService.
func NewLogService(client *ent.Client) *LogService {
	return &LogService{client: client}
}

// LogField optionally scopes an entry to an iteration or agent.
type LogField func(*ent.LogEntryCreate)

// WithIteration scopes the entry to an iteration.
func WithIteration(iterationID string) LogField {
	return func(c *ent.LogEntryCreate) { c.SetIterationID(iterationID) }
}

// WithAgent scopes the entry to an agent record.
func WithAgent(agentID string) LogField {
	return func(c *ent.LogEntryCreate) { c.SetAgentID(agentID) }
}

// WithPayload attaches structured detail to the entry.
func WithPayload(payload map[string]any) LogField {
	return func(c *ent.LogEntryCreate) { c.SetPayload(payload) }
}

// Append writes one entry at the given level.
func (s *LogService) Append(ctx context.Context, runID string, level logentry.Level, message string, fields ...LogField) (*ent.LogEntry, error) {
	c := s.client.LogEntry.Create().
		SetRunID(runID).
		SetLevel(level).
		SetMessage(message)
	for _, f := range fields {
		f(c)
	}
	entry, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to append log entry: %w", err)
	}
	return entry, nil
}

// Info appends an info-level entry.
func (s *LogService) Info(ctx context.Context, runID, message string, fields ...LogField) (*ent.LogEntry, error) {
	return s.Append(ctx, runID, logentry.LevelInfo, message, fields...)
}

// Warn appends a warn-level entry.
func (s *LogService) Warn(ctx context.Context, runID, message string, fields ...LogField) (*ent.LogEntry, error) {
	return s.Append(ctx, runID, logentry.LevelWarn, message, fields...)
}

// Error appends an error-level entry.
func (s *LogService) Error(ctx context.Context, runID, message string, fields ...LogField) (*ent.LogEntry, error) {
	return s.Append(ctx, runID, logentry.LevelError, message, fields...)
}

// List returns a run's entries in append order.
func (s *LogService) List(ctx context.Context, runID string, limit int) ([]*ent.LogEntry, error) {
	if limit <= 0 || limit > 1000 {
		limit = 200
	}
	entries, err := s.client.LogEntry.Query().
		Where(logentry.RunIDEQ(runID)).
		Order(ent.Asc(logentry.FieldCreatedAt), ent.Asc(logentry.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list log entries: %w", err)
	}
	return entries, nil
}
