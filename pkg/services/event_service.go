package services

import (
	"context"
	"fmt"

	"github.com/vi3318/Research-AI-sub000/ent"
	"github.com/vi3318/Research-AI-sub000/ent/event"
)

// EventService reads the persisted observer events used for catchup
// after a subscriber reconnects. Writes happen in pkg/events inside the
// publish transaction, not here.
type EventService struct {
	client *ent.Client
}

// NewEventService creates a new EventService.
func NewEventService(client *ent.Client) *EventService {
	return &EventService{client: client}
}

// GetEventsSince returns up to limit events on a channel with id >
// sinceID, in id order.
func (s *EventService) GetEventsSince(ctx context.Context, channel string, sinceID, limit int) ([]*ent.Event, error) {
	if limit <= 0 {
		limit = 200
	}
	events, err := s.client.Event.Query().
		Where(event.ChannelEQ(channel), event.IDGT(sinceID)).
		Order(ent.Asc(event.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query catchup events: %w", err)
	}
	return events, nil
}
