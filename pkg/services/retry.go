package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/vi3318/Research-AI-sub000/ent"
)

// Store retry policy for transient backend failures: exponential backoff
// from 250 ms up to 8 s with ±20% jitter, five attempts total. Exhaustion
// surfaces ErrStoreExhausted, which is fatal for the owning run; callers
// must transition the run to failed rather than lose the write silently.
const (
	retryInitialInterval = 250 * time.Millisecond
	retryMaxInterval     = 8 * time.Second
	retryMaxAttempts     = 5
	retryJitter          = 0.2
)

// WithRetry runs fn under the store retry policy. Validation, constraint,
// and not-found errors are permanent and returned immediately; everything
// else is treated as a transient backend failure.
func WithRetry(ctx context.Context, op string, fn func(context.Context) error) error {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = retryInitialInterval
	policy.MaxInterval = retryMaxInterval
	policy.RandomizationFactor = retryJitter
	policy.Multiplier = 2
	policy.MaxElapsedTime = 0 // bounded by attempt count, not wall clock

	attempts := 0
	wrapped := func() error {
		attempts++
		err := fn(ctx)
		if err == nil {
			return nil
		}
		if isPermanent(err) {
			return backoff.Permanent(err)
		}
		slog.Warn("Transient store failure, will retry",
			"op", op, "attempt", attempts, "error", err)
		return err
	}

	err := backoff.Retry(wrapped,
		backoff.WithContext(backoff.WithMaxRetries(policy, retryMaxAttempts-1), ctx))
	if err == nil {
		return nil
	}
	var perm *backoff.PermanentError
	if errors.As(err, &perm) {
		return perm.Err
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return fmt.Errorf("%w: %s after %d attempts: %v", ErrStoreExhausted, op, attempts, err)
}

// isPermanent classifies errors that retrying cannot fix.
func isPermanent(err error) bool {
	switch {
	case IsValidation(err),
		errors.Is(err, ErrNotFound),
		errors.Is(err, ErrAlreadyExists),
		errors.Is(err, ErrConflict),
		errors.Is(err, ErrTerminal),
		errors.Is(err, ErrFenceHeld),
		ent.IsConstraintError(err),
		ent.IsNotFound(err),
		ent.IsValidationError(err):
		return true
	}
	return false
}
