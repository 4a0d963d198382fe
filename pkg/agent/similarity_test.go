package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "lowercases and splits on punctuation",
			input:    "Cross-Lingual Transfer: Evaluation!",
			expected: []string{"cross", "lingual", "transfer", "evaluation"},
		},
		{
			name:     "drops stopwords",
			input:    "evaluation of the model on a benchmark",
			expected: []string{"evaluation", "model", "benchmark"},
		},
		{
			name:     "keeps digits",
			input:    "GPT-4 scored 85%",
			expected: []string{"gpt", "4", "scored", "85"},
		},
		{
			name:     "empty input",
			input:    "",
			expected: []string{},
		},
		{
			name:     "only stopwords",
			input:    "the and of",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Tokenize(tt.input))
		})
	}
}

func TestNormalizeText(t *testing.T) {
	// Same gap phrased with different casing and punctuation normalizes
	// to the same canonical form.
	a := NormalizeText("Evaluation on low-resource languages!")
	b := NormalizeText("evaluation on Low Resource languages")
	assert.Equal(t, a, b)
	assert.Equal(t, "evaluation low resource languages", a)
}

func TestJaccard(t *testing.T) {
	tests := []struct {
		name     string
		a, b     string
		expected float64
	}{
		{
			name:     "identical texts",
			a:        "low resource evaluation",
			b:        "low resource evaluation",
			expected: 1.0,
		},
		{
			name:     "both empty",
			a:        "",
			b:        "",
			expected: 1.0,
		},
		{
			name:     "one empty",
			a:        "evaluation",
			b:        "",
			expected: 0.0,
		},
		{
			name:     "no overlap",
			a:        "reinforcement learning",
			b:        "protein folding",
			expected: 0.0,
		},
		{
			name: "partial overlap",
			// tokens: {low, resource, evaluation} vs {low, resource, training}
			// intersection 2, union 4
			a:        "low resource evaluation",
			b:        "low resource training",
			expected: 0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Jaccard(tt.a, tt.b), 1e-9)
		})
	}
}

func TestJaccardSymmetric(t *testing.T) {
	a := "scaling laws for multilingual models"
	b := "multilingual scaling benchmark"
	assert.Equal(t, Jaccard(a, b), Jaccard(b, a))
}

func TestCohesion(t *testing.T) {
	t.Run("fewer than two texts", func(t *testing.T) {
		assert.Equal(t, 0.0, Cohesion(nil))
		assert.Equal(t, 0.0, Cohesion([]string{"single gap"}))
	})

	t.Run("identical texts are fully cohesive", func(t *testing.T) {
		texts := []string{"gap one phrasing", "gap one phrasing", "gap one phrasing"}
		assert.InDelta(t, 1.0, Cohesion(texts), 1e-9)
	})

	t.Run("disjoint texts have zero cohesion", func(t *testing.T) {
		texts := []string{"alpha beta", "gamma delta", "epsilon zeta"}
		assert.InDelta(t, 0.0, Cohesion(texts), 1e-9)
	})

	t.Run("mean of pairwise similarities", func(t *testing.T) {
		// pairs: (1,2)=1.0, (1,3)=0.0, (2,3)=0.0 → mean 1/3
		texts := []string{"alpha beta", "alpha beta", "gamma delta"}
		assert.InDelta(t, 1.0/3.0, Cohesion(texts), 1e-9)
	})
}
