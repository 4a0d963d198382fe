package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors the gateway reports to callers.
var (
	// ErrTimeout means a provider call exceeded its tier timeout.
	ErrTimeout = errors.New("provider call timed out")
	// ErrQuota means the provider signalled rate or token quota pressure.
	ErrQuota = errors.New("provider quota exceeded")
	// ErrAuth means the provider rejected our credentials. Never retried.
	ErrAuth = errors.New("provider authentication failed")
	// ErrTransient covers network failures and provider 5xx responses.
	ErrTransient = errors.New("transient provider failure")
	// ErrSchema means the model output failed structured-output validation
	// after wrapper stripping and a parse retry.
	ErrSchema = errors.New("output failed schema validation")
	// ErrTokenBudget means the prompt would not fit the provider's
	// context window; checked before dispatch.
	ErrTokenBudget = errors.New("prompt exceeds provider context window")
	// ErrNoProvider means the cascade is exhausted and sandbox fallback
	// is off for this run.
	ErrNoProvider = errors.New("no provider available")
)

// SchemaError carries the raw model text so callers can record it.
type SchemaError struct {
	Raw    string
	Detail string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%v: %s", ErrSchema, e.Detail)
}

func (e *SchemaError) Unwrap() error { return ErrSchema }

// classifyProviderError maps a raw SDK error onto the gateway's
// sentinels. SDK error types differ per vendor, so classification is by
// status text, the way each vendor surfaces it.
func classifyProviderError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	if errors.Is(err, context.Canceled) {
		return err
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "429"),
		strings.Contains(msg, "rate limit"),
		strings.Contains(msg, "too many requests"),
		strings.Contains(msg, "quota"),
		strings.Contains(msg, "overloaded"):
		return fmt.Errorf("%w: %v", ErrQuota, err)
	case strings.Contains(msg, "401"),
		strings.Contains(msg, "403"),
		strings.Contains(msg, "unauthorized"),
		strings.Contains(msg, "permission"),
		strings.Contains(msg, "invalid api key"),
		strings.Contains(msg, "authentication"):
		return fmt.Errorf("%w: %v", ErrAuth, err)
	case strings.Contains(msg, "500"),
		strings.Contains(msg, "502"),
		strings.Contains(msg, "503"),
		strings.Contains(msg, "504"),
		strings.Contains(msg, "internal server error"),
		strings.Contains(msg, "bad gateway"),
		strings.Contains(msg, "service unavailable"),
		strings.Contains(msg, "connection"),
		strings.Contains(msg, "timeout"),
		strings.Contains(msg, "eof"):
		return fmt.Errorf("%w: %v", ErrTransient, err)
	default:
		// Unknown 4xx-style errors are not retried.
		return err
	}
}

// retryable reports whether a classified error is worth another attempt
// against the same provider.
func retryable(err error) bool {
	return errors.Is(err, ErrTransient) || errors.Is(err, ErrQuota) || errors.Is(err, ErrTimeout)
}
