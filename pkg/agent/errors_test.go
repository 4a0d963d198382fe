package agent

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vi3318/Research-AI-sub000/pkg/llm"
	"github.com/vi3318/Research-AI-sub000/pkg/queue"
	"github.com/vi3318/Research-AI-sub000/pkg/services"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{"nil", nil, Code("")},
		{"schema", llm.ErrSchema, CodeSchema},
		{"wrapped schema", fmt.Errorf("meso output: %w", llm.ErrSchema), CodeSchema},
		{"no provider", llm.ErrNoProvider, CodeNoProvider},
		{"quota", llm.ErrQuota, CodeProviderQuota},
		{"timeout", llm.ErrTimeout, CodeProviderTimeout},
		{"store exhausted", services.ErrStoreExhausted, CodeStore},
		{"run cancelled", queue.ErrRunCancelled, CodeCancelled},
		{"context cancelled", context.Canceled, CodeCancelled},
		{"unknown", errors.New("something else"), CodeInvariant},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.err))
		})
	}
}

func TestEngineError(t *testing.T) {
	cause := fmt.Errorf("gateway: %w", llm.ErrQuota)
	err := WithCode(cause)

	assert.Equal(t, CodeProviderQuota, err.Code)
	assert.ErrorIs(t, err, llm.ErrQuota)
	assert.Contains(t, err.Error(), "ERR_PROVIDER_QUOTA")
}
