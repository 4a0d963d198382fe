package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// catchupLimit caps how many stored events a reconnecting subscriber
// receives before switching to live delivery.
const catchupLimit = 200

// subscriberBuffer is the per-subscriber channel depth. A subscriber
// that falls this far behind loses events and must catch up by id.
const subscriberBuffer = 64

// listenTimeout bounds how long a LISTEN command may block when the
// first subscriber joins a channel.
const listenTimeout = 10 * time.Second

// CatchupEvent holds one stored event replayed to a reconnecting
// subscriber.
type CatchupEvent struct {
	ID      int
	Payload map[string]any
}

// CatchupQuerier queries stored events for catchup. Implemented by
// services.EventService via the adapter.
type CatchupQuerier interface {
	GetCatchupEvents(ctx context.Context, channel string, sinceID, limit int) ([]CatchupEvent, error)
}

// Hub fans NOTIFY payloads out to SSE subscribers. One per pod. The
// Listener feeds it; the HTTP layer consumes Subscriptions.
type Hub struct {
	mu      sync.RWMutex
	subs    map[string]map[*subscriber]struct{}
	catchup CatchupQuerier

	listenerMu sync.RWMutex
	listener   *Listener
}

type subscriber struct {
	ch chan []byte
}

// Subscription is one subscriber's live event feed. Close it when the
// client disconnects.
type Subscription struct {
	// Events delivers marshaled event payloads in arrival order.
	Events <-chan []byte

	channel string
	sub     *subscriber
	hub     *Hub
	once    sync.Once
}

// NewHub creates a Hub.
func NewHub(catchup CatchupQuerier) *Hub {
	return &Hub{
		subs:    make(map[string]map[*subscriber]struct{}),
		catchup: catchup,
	}
}

// SetListener wires the Listener for dynamic LISTEN/UNLISTEN. Called
// once during startup after both sides exist.
func (h *Hub) SetListener(l *Listener) {
	h.listenerMu.Lock()
	defer h.listenerMu.Unlock()
	h.listener = l
}

// Subscribe registers a subscriber on a channel. When lastEventID >= 0,
// stored events after it are replayed first; live events follow. The
// overlap between replay and live delivery can duplicate events, which
// the at-least-once contract allows.
func (h *Hub) Subscribe(ctx context.Context, channel string, lastEventID int) (*Subscription, error) {
	sub := &subscriber{ch: make(chan []byte, subscriberBuffer)}

	h.mu.Lock()
	first := len(h.subs[channel]) == 0
	if h.subs[channel] == nil {
		h.subs[channel] = make(map[*subscriber]struct{})
	}
	h.subs[channel][sub] = struct{}{}
	h.mu.Unlock()

	if first {
		if err := h.listenChannel(ctx, channel); err != nil {
			h.removeSubscriber(channel, sub)
			return nil, err
		}
	}

	if lastEventID >= 0 && h.catchup != nil {
		if err := h.replayCatchup(ctx, channel, lastEventID, sub); err != nil {
			h.removeSubscriber(channel, sub)
			return nil, err
		}
	}

	return &Subscription{Events: sub.ch, channel: channel, sub: sub, hub: h}, nil
}

// Close unregisters the subscription. Safe to call multiple times.
func (s *Subscription) Close() {
	s.once.Do(func() {
		s.hub.removeSubscriber(s.channel, s.sub)
	})
}

// Broadcast delivers a payload to every subscriber of a channel.
// Non-blocking: a subscriber with a full buffer loses this event and
// recovers via catchup.
func (h *Hub) Broadcast(channel string, payload []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for sub := range h.subs[channel] {
		select {
		case sub.ch <- payload:
		default:
			slog.Warn("Dropping event for slow subscriber", "channel", channel)
		}
	}
}

func (h *Hub) listenChannel(ctx context.Context, channel string) error {
	h.listenerMu.RLock()
	l := h.listener
	h.listenerMu.RUnlock()
	if l == nil {
		return nil // standalone hub (tests)
	}
	listenCtx, cancel := context.WithTimeout(ctx, listenTimeout)
	defer cancel()
	return l.Subscribe(listenCtx, channel)
}

func (h *Hub) removeSubscriber(channel string, sub *subscriber) {
	h.mu.Lock()
	delete(h.subs[channel], sub)
	last := len(h.subs[channel]) == 0
	if last {
		delete(h.subs, channel)
	}
	h.mu.Unlock()

	if last {
		h.listenerMu.RLock()
		l := h.listener
		h.listenerMu.RUnlock()
		if l != nil {
			ctx, cancel := context.WithTimeout(context.Background(), listenTimeout)
			defer cancel()
			if err := l.Unsubscribe(ctx, channel); err != nil {
				slog.Warn("UNLISTEN failed", "channel", channel, "error", err)
			}
		}
	}
}

// replayCatchup pushes stored events newer than sinceID into the
// subscriber's buffer before live delivery starts.
func (h *Hub) replayCatchup(ctx context.Context, channel string, sinceID int, sub *subscriber) error {
	stored, err := h.catchup.GetCatchupEvents(ctx, channel, sinceID, catchupLimit)
	if err != nil {
		return fmt.Errorf("catchup query failed: %w", err)
	}
	for _, evt := range stored {
		payload := evt.Payload
		if payload == nil {
			payload = map[string]any{}
		}
		payload["db_event_id"] = evt.ID
		raw, err := json.Marshal(payload)
		if err != nil {
			slog.Warn("Failed to marshal catchup event", "channel", channel, "event_id", evt.ID, "error", err)
			continue
		}
		select {
		case sub.ch <- raw:
		default:
			// Buffer full: the client reconnects with a later id.
			return nil
		}
	}
	return nil
}
