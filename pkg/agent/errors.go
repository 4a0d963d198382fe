package agent

import (
	"context"
	"errors"
	"fmt"

	"github.com/vi3318/Research-AI-sub000/pkg/llm"
	"github.com/vi3318/Research-AI-sub000/pkg/queue"
	"github.com/vi3318/Research-AI-sub000/pkg/services"
)

// Code is the engine-level error code persisted in agent records and
// surfaced through the API and logs.
type Code string

// Engine error codes.
const (
	CodeProviderTimeout Code = "ERR_PROVIDER_TIMEOUT"
	CodeProviderQuota   Code = "ERR_PROVIDER_QUOTA"
	CodeSchema          Code = "ERR_SCHEMA"
	CodeStore           Code = "ERR_STORE"
	CodeJobMaxAttempts  Code = "ERR_JOB_MAX_ATTEMPTS"
	CodeCancelled       Code = "ERR_CANCELLED"
	CodeInvariant       Code = "ERR_INVARIANT"
	CodeNoProvider      Code = "ERR_NO_PROVIDER"
)

// EngineError pairs a gateway or store failure with its engine code.
type EngineError struct {
	Code Code
	Err  error
}

func (e *EngineError) Error() string {
	if e.Err == nil {
		return string(e.Code)
	}
	return fmt.Sprintf("%s: %v", e.Code, e.Err)
}

func (e *EngineError) Unwrap() error { return e.Err }

// WithCode wraps err with its classified engine code.
func WithCode(err error) *EngineError {
	return &EngineError{Code: Classify(err), Err: err}
}

// Classify maps lower-layer errors onto the engine code taxonomy.
// Unknown errors classify as ERR_INVARIANT.
func Classify(err error) Code {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, llm.ErrSchema):
		return CodeSchema
	case errors.Is(err, llm.ErrNoProvider):
		return CodeNoProvider
	case errors.Is(err, llm.ErrQuota):
		return CodeProviderQuota
	case errors.Is(err, llm.ErrTimeout):
		return CodeProviderTimeout
	case errors.Is(err, services.ErrStoreExhausted):
		return CodeStore
	case errors.Is(err, queue.ErrRunCancelled), errors.Is(err, context.Canceled):
		return CodeCancelled
	default:
		return CodeInvariant
	}
}
