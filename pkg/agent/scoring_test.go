package agent

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vi3318/Research-AI-sub000/pkg/models"
)

func singleCluster(label string, members ...models.ResearchGap) models.Cluster {
	return models.Cluster{
		Theme:      models.Theme{Label: label},
		MemberGaps: members,
		Cohesion:   0.5,
		Size:       len(members),
	}
}

func TestCollectCandidates(t *testing.T) {
	t.Run("merges evidence of near duplicates", func(t *testing.T) {
		cl := singleCluster("evaluation",
			gap("multilingual evaluation benchmarks missing", models.PriorityHigh, 0.6, "p1"),
			gap("multilingual evaluation benchmarks missing entirely", models.PriorityHigh, 0.9, "p2"),
			gap("multilingual evaluation benchmarks missing", models.PriorityHigh, 0.5, "p1"),
		)
		candidates := collectCandidates([]models.Cluster{cl})
		require.Len(t, candidates, 1)
		c := candidates[0]
		// Evidence from all duplicate occurrences, without repeats.
		assert.ElementsMatch(t, []string{"p1", "p2"}, c.evidence)
		// The higher-confidence occurrence represents the group.
		assert.Equal(t, 0.9, c.rep.Confidence)
	})

	t.Run("dedup does not cross cluster boundaries", func(t *testing.T) {
		g := gap("multilingual evaluation benchmarks missing", models.PriorityHigh, 0.8, "p1")
		candidates := collectCandidates([]models.Cluster{
			singleCluster("evaluation", g),
			singleCluster("benchmarks", g),
		})
		assert.Len(t, candidates, 2)
	})
}

func TestRankGapsDeterministic(t *testing.T) {
	clusters := []models.Cluster{
		singleCluster("evaluation",
			gap("multilingual evaluation benchmarks missing", models.PriorityHigh, 0.9, "p1"),
			gap("energy consumption unreported during training", models.PriorityMedium, 0.6, "p2"),
		),
		singleCluster("reproducibility",
			gap("code release missing for main experiments", models.PriorityLow, 0.5, "p3"),
		),
	}

	first := rankGaps(clusters, nil)
	second := rankGaps(clusters, nil)
	assert.Equal(t, first, second)

	require.Len(t, first, 3)
	for i, g := range first {
		assert.Equal(t, i+1, g.Ranking)
	}
	// Composite scores are non-increasing.
	for i := 1; i < len(first); i++ {
		assert.GreaterOrEqual(t, first[i-1].Scores.Composite(), first[i].Scores.Composite())
	}
	// High priority wins over low on otherwise comparable gaps.
	assert.Equal(t, models.PriorityHigh, first[0].Priority)
}

func TestRankGapsTieBreakLexical(t *testing.T) {
	// Identical priority, type, confidence, cluster context: composite and
	// component scores tie, so description order decides.
	clusters := []models.Cluster{
		singleCluster("theme",
			gap("zebra stripes remain unexplained", models.PriorityHigh, 0.8, "p1"),
			gap("antelope migration remains unexplained", models.PriorityHigh, 0.8, "p2"),
		),
	}
	ranked := rankGaps(clusters, nil)
	require.Len(t, ranked, 2)
	assert.Equal(t, "antelope migration remains unexplained", ranked[0].Gap)
	assert.Equal(t, "zebra stripes remain unexplained", ranked[1].Gap)
}

func TestRankGapsCapped(t *testing.T) {
	var members []models.ResearchGap
	for i := 0; i < MaxRankedGaps+10; i++ {
		members = append(members, gap(
			fmt.Sprintf("distinct gap number %d concerning topic%d", i, i),
			models.PriorityMedium, 0.7, fmt.Sprintf("p%d", i)))
	}
	ranked := rankGaps([]models.Cluster{singleCluster("bulk", members...)}, nil)
	assert.Len(t, ranked, MaxRankedGaps)
}

func TestRankGapsNoveltyAgainstPrior(t *testing.T) {
	clusters := []models.Cluster{
		singleCluster("evaluation",
			gap("multilingual evaluation benchmarks missing", models.PriorityHigh, 0.9, "p1"),
			gap("energy consumption unreported during training", models.PriorityHigh, 0.9, "p2"),
		),
	}
	prior := &models.MetaOutput{RankedGaps: []models.RankedGap{
		{Gap: "Multilingual evaluation benchmarks missing"},
	}}

	ranked := rankGaps(clusters, prior)
	require.Len(t, ranked, 2)

	byGap := map[string]models.RankedGap{}
	for _, g := range ranked {
		byGap[g.Gap] = g
	}
	seen := byGap["multilingual evaluation benchmarks missing"]
	fresh := byGap["energy consumption unreported during training"]
	// A gap already ranked last iteration loses all novelty; an unseen one
	// keeps it.
	assert.InDelta(t, 0.0, seen.Scores.Novelty, 1e-9)
	assert.InDelta(t, 1.0, fresh.Scores.Novelty, 1e-9)
}

func TestFeasibility(t *testing.T) {
	base := func(gt models.GapType) float64 {
		return feasibility(models.ResearchGap{Description: "short gap", Type: gt})
	}
	assert.InDelta(t, 0.8, base(models.GapTypeStatedFutureWork), 1e-9)
	assert.InDelta(t, 0.7, base(models.GapTypeStatedLimitation), 1e-9)
	assert.InDelta(t, 0.55, base(models.GapTypeMethodologicalGap), 1e-9)
	assert.InDelta(t, 0.5, base(models.GapTypeInferredGap), 1e-9)

	long := "alpha bravo charlie delta echo foxtrot golf hotel india juliett kilo lima " +
		"mike november oscar papa quebec romeo sierra tango uniform victor whiskey xray " +
		"yankee zulu one two three four five"
	assert.InDelta(t, 0.7, feasibility(models.ResearchGap{
		Description: long,
		Type:        models.GapTypeStatedFutureWork,
	}), 1e-9)
}

func TestImportanceSaturation(t *testing.T) {
	// Breadth saturates at six papers.
	atSix := importance(models.PriorityHigh, 6, 0.5)
	atTwelve := importance(models.PriorityHigh, 12, 0.5)
	assert.Equal(t, atSix, atTwelve)
	assert.InDelta(t, 0.5*1.0+0.3*1.0+0.2*0.5, atSix, 1e-9)
}

func TestImpactSaturation(t *testing.T) {
	atFour := impact(models.PriorityMedium, 4)
	atEight := impact(models.PriorityMedium, 8)
	assert.Equal(t, atFour, atEight)
	assert.InDelta(t, 0.35+0.35*0.6+0.3*1.0, atFour, 1e-9)
}
