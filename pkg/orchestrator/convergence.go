package orchestrator

import (
	"github.com/vi3318/Research-AI-sub000/pkg/agent"
	"github.com/vi3318/Research-AI-sub000/pkg/models"
)

// convergenceTopN is how many top-ranked gaps the stability comparison
// considers on each side.
const convergenceTopN = 10

// Convergence measures how stable the ranked gap list is between two
// consecutive iterations: the composite-score-weighted fraction of the
// current top gaps whose normalized text also appears in the prior top
// gaps. 1.0 means the head of the ranking stopped moving.
func Convergence(current, prior *models.MetaOutput) float64 {
	if current == nil || prior == nil {
		return 0.0
	}
	cur := topGaps(current)
	prev := topGaps(prior)
	if len(cur) == 0 || len(prev) == 0 {
		return 0.0
	}

	prevTexts := make(map[string]struct{}, len(prev))
	for _, g := range prev {
		prevTexts[agent.NormalizeText(g.Gap)] = struct{}{}
	}

	total := 0.0
	matched := 0.0
	for _, g := range cur {
		weight := g.Scores.Composite()
		total += weight
		if _, ok := prevTexts[agent.NormalizeText(g.Gap)]; ok {
			matched += weight
		}
	}
	if total == 0 {
		return 0.0
	}
	return matched / total
}

func topGaps(m *models.MetaOutput) []models.RankedGap {
	gaps := m.RankedGaps
	if len(gaps) > convergenceTopN {
		gaps = gaps[:convergenceTopN]
	}
	return gaps
}
