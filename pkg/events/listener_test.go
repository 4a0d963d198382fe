package events_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vi3318/Research-AI-sub000/ent"
	entrun "github.com/vi3318/Research-AI-sub000/ent/run"
	"github.com/vi3318/Research-AI-sub000/pkg/database"
	"github.com/vi3318/Research-AI-sub000/pkg/events"
	"github.com/vi3318/Research-AI-sub000/pkg/models"
	"github.com/vi3318/Research-AI-sub000/pkg/services"
	testdb "github.com/vi3318/Research-AI-sub000/test/database"
)

func seedEventRun(t *testing.T, client *database.Client) *ent.Run {
	t.Helper()
	r, err := services.NewRunService(client.Client).CreateRun(context.Background(), models.CreateRunRequest{
		WorkspaceID:          "ws-1",
		Query:                "event delivery",
		MaxIterations:        3,
		ConvergenceThreshold: 0.6,
		Papers:               []models.PaperInput{{Title: "Paper A"}},
	})
	require.NoError(t, err)
	return r
}

func recvEvent(t *testing.T, sub *events.Subscription) map[string]any {
	t.Helper()
	select {
	case raw := <-sub.Events:
		var m map[string]any
		require.NoError(t, json.Unmarshal(raw, &m))
		return m
	case <-time.After(15 * time.Second):
		t.Fatal("timed out waiting for event")
		return nil
	}
}

// TestNotifyDeliveryAcrossConnections exercises the full observer path:
// the Publisher persists an event and pg_notify's it on one connection
// pool, the Listener's dedicated connection receives it and the Hub
// fans it out to the subscriber.
func TestNotifyDeliveryAcrossConnections(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)
	ctx := context.Background()

	client := shared.NewClient(t)
	r := seedEventRun(t, client)

	hub := events.NewHub(events.NewEventServiceAdapter(services.NewEventService(client.Client)))
	listener := events.NewListener(shared.BaseConnString(), hub)
	require.NoError(t, listener.Start(ctx))
	t.Cleanup(func() { listener.Stop(context.Background()) })
	hub.SetListener(listener)

	sub, err := hub.Subscribe(ctx, events.RunChannel(r.ID), -1)
	require.NoError(t, err)
	t.Cleanup(sub.Close)

	publisher := events.NewPublisher(client.DB())
	require.NoError(t, publisher.PublishRunStatus(ctx, r.ID, events.StatusPayload{
		RunID:            r.ID,
		Status:           entrun.StatusRunning,
		CurrentIteration: 1,
		Progress:         17,
	}))

	evt := recvEvent(t, sub)
	assert.Equal(t, events.EventTypeRunStatus, evt["type"])
	assert.Equal(t, r.ID, evt["run_id"])
	assert.Equal(t, "running", evt["status"])
	assert.Equal(t, float64(17), evt["progress_percentage"])
	// The NOTIFY copy carries the stored event's id for catchup.
	id, ok := evt["db_event_id"].(float64)
	require.True(t, ok)
	assert.Greater(t, id, float64(0))

	require.NoError(t, publisher.PublishLog(ctx, r.ID, events.LogPayload{
		RunID:   r.ID,
		Level:   "info",
		Message: "iteration 1 started",
	}))
	evt = recvEvent(t, sub)
	assert.Equal(t, events.EventTypeLog, evt["type"])
	assert.Equal(t, "iteration 1 started", evt["message"])
}

// TestCatchupReplay verifies that a subscriber joining with a last seen
// event id receives the stored events it missed, without a live LISTEN
// connection.
func TestCatchupReplay(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	r := seedEventRun(t, client)

	publisher := events.NewPublisher(client.DB())
	require.NoError(t, publisher.PublishRunStatus(ctx, r.ID, events.StatusPayload{
		RunID:  r.ID,
		Status: entrun.StatusRunning,
	}))
	require.NoError(t, publisher.PublishIteration(ctx, r.ID, events.IterationPayload{
		RunID:           r.ID,
		IterationID:     "it-1",
		IterationNumber: 1,
		Status:          "active",
	}))

	// Standalone hub: no listener, replay comes from the catchup store.
	hub := events.NewHub(events.NewEventServiceAdapter(services.NewEventService(client.Client)))
	sub, err := hub.Subscribe(ctx, events.RunChannel(r.ID), 0)
	require.NoError(t, err)
	t.Cleanup(sub.Close)

	first := recvEvent(t, sub)
	second := recvEvent(t, sub)
	assert.Equal(t, events.EventTypeRunStatus, first["type"])
	assert.Equal(t, events.EventTypeIteration, second["type"])
	assert.Less(t, first["db_event_id"].(float64), second["db_event_id"].(float64))
}
