package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vi3318/Research-AI-sub000/pkg/services"
)

func TestWithRetryPermanentErrorNotRetried(t *testing.T) {
	calls := 0
	err := services.WithRetry(context.Background(), "test.op", func(ctx context.Context) error {
		calls++
		return services.ErrConflict
	})
	assert.ErrorIs(t, err, services.ErrConflict)
	assert.Equal(t, 1, calls)
}

func TestWithRetryRecoversFromTransientFailure(t *testing.T) {
	calls := 0
	err := services.WithRetry(context.Background(), "test.op", func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("connection reset")
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestWithRetryExhaustion(t *testing.T) {
	calls := 0
	err := services.WithRetry(context.Background(), "test.op", func(ctx context.Context) error {
		calls++
		return errors.New("connection reset")
	})
	assert.ErrorIs(t, err, services.ErrStoreExhausted)
	assert.Equal(t, 5, calls)
}

func TestWithRetryStopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	err := services.WithRetry(ctx, "test.op", func(ctx context.Context) error {
		cancel()
		return errors.New("connection reset")
	})
	assert.ErrorIs(t, err, context.Canceled)
}
