package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vi3318/Research-AI-sub000/pkg/services"
	testdb "github.com/vi3318/Research-AI-sub000/test/database"
)

func TestLockAcquireReleaseCycle(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	a := services.NewLockService(client.Client, "pod-a", time.Minute)
	b := services.NewLockService(client.Client, "pod-b", time.Minute)

	require.NoError(t, a.Acquire(ctx, "run-1"))

	holder, err := a.Holder(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, "pod-a", holder)

	// A live fence excludes other pods.
	assert.ErrorIs(t, b.Acquire(ctx, "run-1"), services.ErrFenceHeld)

	// The same pod identity re-enters after a restart.
	require.NoError(t, a.Acquire(ctx, "run-1"))

	require.NoError(t, a.Release(ctx, "run-1"))
	_, err = a.Holder(ctx, "run-1")
	assert.ErrorIs(t, err, services.ErrNotFound)

	// Released fences are free for anyone.
	require.NoError(t, b.Acquire(ctx, "run-1"))
}

func TestLockStaleTakeover(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	// pod-a's heartbeats go stale immediately from pod-b's perspective.
	a := services.NewLockService(client.Client, "pod-a", time.Nanosecond)
	b := services.NewLockService(client.Client, "pod-b", time.Nanosecond)

	require.NoError(t, a.Acquire(ctx, "run-1"))
	time.Sleep(10 * time.Millisecond)

	require.NoError(t, b.Acquire(ctx, "run-1"))
	holder, err := b.Holder(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, "pod-b", holder)

	// The evicted pod's heartbeat reports the loss.
	assert.ErrorIs(t, a.Heartbeat(ctx, "run-1"), services.ErrFenceHeld)

	// Releasing a stolen fence is a no-op, not a theft back.
	require.NoError(t, a.Release(ctx, "run-1"))
	holder, err = b.Holder(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, "pod-b", holder)
}

func TestLockHeartbeatKeepsFenceLive(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	a := services.NewLockService(client.Client, "pod-a", 200*time.Millisecond)
	b := services.NewLockService(client.Client, "pod-b", 200*time.Millisecond)

	require.NoError(t, a.Acquire(ctx, "run-1"))
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, a.Heartbeat(ctx, "run-1"))
	time.Sleep(100 * time.Millisecond)

	// 200ms elapsed since acquire but only 100ms since the heartbeat, so
	// the fence is still live.
	assert.ErrorIs(t, b.Acquire(ctx, "run-1"), services.ErrFenceHeld)
}
