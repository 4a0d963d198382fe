package orchestrator

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vi3318/Research-AI-sub000/pkg/models"
)

func rankedGap(text string, composite float64) models.RankedGap {
	// Composite = 0.35i + 0.25n + 0.20f + 0.20m; setting every dimension
	// to the same value yields that value as the composite.
	return models.RankedGap{
		Gap: text,
		Scores: models.GapScores{
			Importance:  composite,
			Novelty:     composite,
			Feasibility: composite,
			Impact:      composite,
		},
	}
}

func metaWith(gaps ...models.RankedGap) *models.MetaOutput {
	return &models.MetaOutput{RankedGaps: gaps}
}

func TestConvergence(t *testing.T) {
	t.Run("nil sides score zero", func(t *testing.T) {
		m := metaWith(rankedGap("gap one", 0.8))
		assert.Equal(t, 0.0, Convergence(nil, m))
		assert.Equal(t, 0.0, Convergence(m, nil))
		assert.Equal(t, 0.0, Convergence(nil, nil))
	})

	t.Run("empty ranked lists score zero", func(t *testing.T) {
		assert.Equal(t, 0.0, Convergence(metaWith(), metaWith(rankedGap("gap", 0.8))))
		assert.Equal(t, 0.0, Convergence(metaWith(rankedGap("gap", 0.8)), metaWith()))
	})

	t.Run("identical lists score one", func(t *testing.T) {
		m := metaWith(
			rankedGap("multilingual evaluation benchmarks missing", 0.9),
			rankedGap("energy consumption unreported", 0.6),
		)
		assert.InDelta(t, 1.0, Convergence(m, m), 1e-9)
	})

	t.Run("disjoint lists score zero", func(t *testing.T) {
		cur := metaWith(rankedGap("entirely new direction", 0.9))
		prev := metaWith(rankedGap("previous finding", 0.8))
		assert.InDelta(t, 0.0, Convergence(cur, prev), 1e-9)
	})

	t.Run("matching is weighted by composite score", func(t *testing.T) {
		cur := metaWith(
			rankedGap("stable heavy gap", 0.9),
			rankedGap("fresh light gap", 0.1),
		)
		prev := metaWith(rankedGap("stable heavy gap", 0.9))
		// matched weight 0.9 of total 1.0
		assert.InDelta(t, 0.9, Convergence(cur, prev), 1e-9)
	})

	t.Run("matching ignores case and punctuation", func(t *testing.T) {
		cur := metaWith(rankedGap("Multilingual evaluation: benchmarks missing!", 0.8))
		prev := metaWith(rankedGap("multilingual evaluation benchmarks missing", 0.8))
		assert.InDelta(t, 1.0, Convergence(cur, prev), 1e-9)
	})

	t.Run("only top ten on each side count", func(t *testing.T) {
		var cur, prev []models.RankedGap
		for i := 0; i < 12; i++ {
			cur = append(cur, rankedGap(fmt.Sprintf("current gap topic%d", i), 0.5))
		}
		// Prior list holds the 11th and 12th current gaps outside its own
		// top ten too, so nothing in the current top ten matches.
		for i := 10; i < 12; i++ {
			prev = append(prev, rankedGap(fmt.Sprintf("current gap topic%d", i), 0.5))
		}
		assert.InDelta(t, 0.0, Convergence(metaWith(cur...), metaWith(prev...)), 1e-9)
	})

	t.Run("zero composite weights score zero", func(t *testing.T) {
		cur := metaWith(rankedGap("gap one", 0.0))
		prev := metaWith(rankedGap("gap one", 0.0))
		assert.Equal(t, 0.0, Convergence(cur, prev))
	})
}

func TestMajority(t *testing.T) {
	tests := []struct {
		papers   int
		required int
	}{
		{1, 1},
		{2, 2},
		{3, 3},
		{4, 3},
		{5, 4},
		{10, 6},
		{20, 11},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d papers", tt.papers), func(t *testing.T) {
			assert.Equal(t, tt.required, majority(tt.papers))
		})
	}
}
