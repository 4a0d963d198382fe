package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vi3318/Research-AI-sub000/pkg/models"
)

func TestMicroStubDeterministic(t *testing.T) {
	seed := &SandboxSeed{PaperTitle: "Attention Is All You Need"}

	first := microStub(seed)
	second := microStub(seed)
	require.NotEmpty(t, first)
	assert.Equal(t, first, second)
	assert.GreaterOrEqual(t, len(first), 3)
	assert.LessOrEqual(t, len(first), 5)
}

func TestMicroStubEmitsDeclaredGapTypes(t *testing.T) {
	declared := map[string]bool{
		string(models.GapTypeStatedFutureWork):  true,
		string(models.GapTypeStatedLimitation):  true,
		string(models.GapTypeInferredGap):       true,
		string(models.GapTypeMethodologicalGap): true,
	}
	priorities := map[string]bool{
		string(models.PriorityHigh):   true,
		string(models.PriorityMedium): true,
		string(models.PriorityLow):    true,
	}

	for _, gap := range microStub(&SandboxSeed{PaperTitle: "Retrieval at Scale"}) {
		gt, ok := gap["type"].(string)
		require.True(t, ok)
		assert.True(t, declared[gt], "unexpected gap type %q", gt)

		pr, ok := gap["priority"].(string)
		require.True(t, ok)
		assert.True(t, priorities[pr], "unexpected priority %q", pr)
	}
}

func TestMesoStubChunksGaps(t *testing.T) {
	gaps := make([]models.ResearchGap, 7)
	for i := range gaps {
		gaps[i] = models.ResearchGap{Description: "evaluation coverage remains narrow"}
	}

	out := mesoStub(&SandboxSeed{Gaps: gaps})
	clusters, ok := out["clusters"].([]map[string]any)
	require.True(t, ok)
	assert.Len(t, clusters, 3)
	for _, c := range clusters {
		indices := c["gap_indices"].([]int)
		assert.LessOrEqual(t, len(indices), 3)
	}
}
