package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vi3318/Research-AI-sub000/pkg/models"
)

func gap(desc string, priority models.Priority, confidence float64, paperID string) models.ResearchGap {
	return models.ResearchGap{
		Description: desc,
		Type:        models.GapTypeStatedLimitation,
		Priority:    priority,
		Rationale:   "stated in limitations section",
		Confidence:  confidence,
		PaperID:     paperID,
	}
}

func TestFlattenGaps(t *testing.T) {
	outputs := []models.MicroOutput{
		{PaperID: "p1", ResearchGaps: []models.ResearchGap{
			gap("gap one", models.PriorityHigh, 0.9, "p1"),
			gap("gap two", models.PriorityLow, 0.5, "p1"),
		}},
		{PaperID: "p2", ResearchGaps: nil},
		{PaperID: "p3", ResearchGaps: []models.ResearchGap{
			gap("gap three", models.PriorityMedium, 0.7, "p3"),
		}},
	}

	gaps := flattenGaps(outputs)
	require.Len(t, gaps, 3)
	assert.Equal(t, "gap one", gaps[0].Description)
	assert.Equal(t, "gap two", gaps[1].Description)
	assert.Equal(t, "gap three", gaps[2].Description)
}

func TestDedupGaps(t *testing.T) {
	t.Run("keeps distinct gaps in order", func(t *testing.T) {
		members := []models.ResearchGap{
			gap("multilingual evaluation benchmarks missing", models.PriorityHigh, 0.9, "p1"),
			gap("energy consumption unreported during training", models.PriorityLow, 0.6, "p2"),
		}
		kept := dedupGaps(members)
		require.Len(t, kept, 2)
		assert.Equal(t, members[0].Description, kept[0].Description)
		assert.Equal(t, members[1].Description, kept[1].Description)
	})

	t.Run("near duplicates keep higher confidence", func(t *testing.T) {
		members := []models.ResearchGap{
			gap("multilingual evaluation benchmarks missing", models.PriorityHigh, 0.6, "p1"),
			gap("multilingual evaluation benchmarks missing entirely", models.PriorityMedium, 0.9, "p2"),
		}
		kept := dedupGaps(members)
		require.Len(t, kept, 1)
		assert.Equal(t, 0.9, kept[0].Confidence)
		assert.Equal(t, "p2", kept[0].PaperID)
	})

	t.Run("lower confidence duplicate does not replace", func(t *testing.T) {
		members := []models.ResearchGap{
			gap("multilingual evaluation benchmarks missing", models.PriorityHigh, 0.9, "p1"),
			gap("multilingual evaluation benchmarks missing entirely", models.PriorityMedium, 0.6, "p2"),
		}
		kept := dedupGaps(members)
		require.Len(t, kept, 1)
		assert.Equal(t, "p1", kept[0].PaperID)
	})
}

func TestBuildClusters(t *testing.T) {
	gaps := []models.ResearchGap{
		gap("multilingual evaluation benchmarks missing", models.PriorityHigh, 0.9, "p1"),
		gap("multilingual evaluation benchmarks missing entirely", models.PriorityHigh, 0.7, "p2"),
		gap("energy consumption unreported during training", models.PriorityMedium, 0.6, "p3"),
		gap("unassigned stray observation", models.PriorityLow, 0.4, "p4"),
	}

	t.Run("resolves indices and dedups buckets but keeps raw members", func(t *testing.T) {
		clusters := buildClusters(gaps, []rawCluster{
			{Label: "evaluation", Keywords: []string{"benchmark"}, GapIndices: []int{0, 1}},
		})
		require.Len(t, clusters, 2)

		eval := clusters[0]
		assert.Equal(t, "evaluation", eval.Theme.Label)
		// Raw members survive for evidence merging downstream.
		assert.Len(t, eval.MemberGaps, 2)
		// Priority buckets are deduplicated.
		require.Len(t, eval.IdentifiedGaps, 1)
		assert.Equal(t, models.PriorityHigh, eval.IdentifiedGaps[0].Priority)
		assert.Equal(t, 1, eval.IdentifiedGaps[0].Count)
		assert.ElementsMatch(t, []string{"p1", "p2"}, eval.Papers)
		assert.Equal(t, 2, eval.Size)

		// Unplaced gaps land in the catch-all.
		misc := clusters[1]
		assert.Equal(t, MiscellaneousLabel, misc.Theme.Label)
		assert.Len(t, misc.MemberGaps, 2)
	})

	t.Run("out of range and repeated indices are ignored", func(t *testing.T) {
		clusters := buildClusters(gaps, []rawCluster{
			{Label: "evaluation", GapIndices: []int{0, 0, 1, -1, 99}},
			{Label: "stale", GapIndices: []int{1}},
		})
		// "stale" resolves to zero members and disappears; the remaining
		// gaps go to the catch-all.
		require.Len(t, clusters, 2)
		assert.Equal(t, "evaluation", clusters[0].Theme.Label)
		assert.Len(t, clusters[0].MemberGaps, 2)
		assert.Equal(t, MiscellaneousLabel, clusters[1].Theme.Label)
	})

	t.Run("thin cluster with low cohesion folds into catch-all", func(t *testing.T) {
		clusters := buildClusters(gaps, []rawCluster{
			{Label: "stray", GapIndices: []int{3}}, // confidence 0.4 < 0.8
			{Label: "evaluation", GapIndices: []int{0, 1}},
		})
		require.Len(t, clusters, 2)
		assert.Equal(t, "evaluation", clusters[0].Theme.Label)
		misc := clusters[1]
		assert.Equal(t, MiscellaneousLabel, misc.Theme.Label)
		// stray gap plus the unassigned energy gap
		assert.Len(t, misc.MemberGaps, 2)
	})

	t.Run("confident singleton cluster survives", func(t *testing.T) {
		clusters := buildClusters(gaps, []rawCluster{
			{Label: "evaluation", GapIndices: []int{0}}, // confidence 0.9 >= 0.8
		})
		require.NotEmpty(t, clusters)
		assert.Equal(t, "evaluation", clusters[0].Theme.Label)
		assert.Len(t, clusters[0].MemberGaps, 1)
		assert.InDelta(t, 0.9, clusters[0].Cohesion, 1e-9)
	})

	t.Run("no raw clusters puts everything in catch-all", func(t *testing.T) {
		clusters := buildClusters(gaps, nil)
		require.Len(t, clusters, 1)
		assert.Equal(t, MiscellaneousLabel, clusters[0].Theme.Label)
		assert.Len(t, clusters[0].MemberGaps, len(gaps))
	})
}

func TestPriorityBuckets(t *testing.T) {
	members := []models.ResearchGap{
		gap("low priority gap", models.PriorityLow, 0.5, "p1"),
		gap("high priority gap", models.PriorityHigh, 0.9, "p2"),
		gap("another high priority gap entirely different", models.PriorityHigh, 0.8, "p3"),
	}

	buckets := priorityBuckets(members)
	require.Len(t, buckets, 2)
	// High first, low last; medium bucket omitted when empty.
	assert.Equal(t, models.PriorityHigh, buckets[0].Priority)
	assert.Equal(t, 2, buckets[0].Count)
	assert.Equal(t, models.PriorityLow, buckets[1].Priority)
	assert.Equal(t, 1, buckets[1].Count)
}
