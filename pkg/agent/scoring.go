package agent

import (
	"sort"

	"github.com/vi3318/Research-AI-sub000/pkg/models"
)

// MaxRankedGaps caps the ranked list a Meta agent emits.
const MaxRankedGaps = 20

// candidate is one gap under ranking, annotated with its cluster
// context and merged paper evidence.
type candidate struct {
	rep         models.ResearchGap
	theme       string
	clusterSize int
	cohesion    float64
	evidence    []string
	norm        string
}

// rankGaps flattens clusters into candidates, scores them with the
// fixed composite weights, orders them deterministically, and trims to
// the top MaxRankedGaps. Identical inputs always produce identical
// output.
func rankGaps(clusters []models.Cluster, prior *models.MetaOutput) []models.RankedGap {
	candidates := collectCandidates(clusters)
	priorTexts := priorGapTexts(prior)

	type scored struct {
		candidate
		scores    models.GapScores
		composite float64
	}
	items := make([]scored, 0, len(candidates))
	for _, c := range candidates {
		s := models.GapScores{
			Importance:  importance(c.rep.Priority, c.clusterSize, c.cohesion),
			Novelty:     novelty(c.norm, priorTexts),
			Feasibility: feasibility(c.rep),
			Impact:      impact(c.rep.Priority, len(c.evidence)),
			Confidence:  c.rep.Confidence,
		}
		items = append(items, scored{candidate: c, scores: s, composite: s.Composite()})
	}

	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.composite != b.composite {
			return a.composite > b.composite
		}
		if a.scores.Importance != b.scores.Importance {
			return a.scores.Importance > b.scores.Importance
		}
		if a.scores.Impact != b.scores.Impact {
			return a.scores.Impact > b.scores.Impact
		}
		if a.rep.Description != b.rep.Description {
			return a.rep.Description < b.rep.Description
		}
		if len(a.evidence) != len(b.evidence) {
			return len(a.evidence) > len(b.evidence)
		}
		return a.theme < b.theme
	})

	if len(items) > MaxRankedGaps {
		items = items[:MaxRankedGaps]
	}
	ranked := make([]models.RankedGap, len(items))
	for i, it := range items {
		ranked[i] = models.RankedGap{
			Gap:              it.rep.Description,
			Theme:            it.theme,
			Priority:         it.rep.Priority,
			Rationale:        it.rep.Rationale,
			Scores:           it.scores,
			Ranking:          i + 1,
			EvidencePaperIDs: it.evidence,
		}
	}
	return ranked
}

// collectCandidates deduplicates each cluster's member gaps, merging
// the paper evidence of near-duplicates onto the surviving candidate.
func collectCandidates(clusters []models.Cluster) []candidate {
	var out []candidate
	for _, cl := range clusters {
		start := len(out)
		for _, g := range cl.MemberGaps {
			dup := -1
			for i := start; i < len(out); i++ {
				if Jaccard(g.Description, out[i].rep.Description) >= JaccardDuplicateThreshold {
					dup = i
					break
				}
			}
			if dup < 0 {
				out = append(out, candidate{
					rep:         g,
					theme:       cl.Theme.Label,
					clusterSize: cl.Size,
					cohesion:    cl.Cohesion,
					evidence:    appendPaper(nil, g.PaperID),
					norm:        NormalizeText(g.Description),
				})
				continue
			}
			out[dup].evidence = appendPaper(out[dup].evidence, g.PaperID)
			if g.Confidence > out[dup].rep.Confidence {
				out[dup].rep = g
				out[dup].norm = NormalizeText(g.Description)
			}
		}
	}
	return out
}

func appendPaper(ids []string, id string) []string {
	if id == "" {
		return ids
	}
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append(ids, id)
}

func priorGapTexts(prior *models.MetaOutput) []string {
	if prior == nil {
		return nil
	}
	texts := make([]string, 0, len(prior.RankedGaps))
	for _, g := range prior.RankedGaps {
		texts = append(texts, NormalizeText(g.Gap))
	}
	return texts
}

// importance blends the gap's priority with how broad and coherent its
// theme is: half priority weight, then cluster breadth saturating at
// six papers, then cohesion.
func importance(p models.Priority, clusterSize int, cohesion float64) float64 {
	breadth := float64(clusterSize) / 6.0
	if breadth > 1 {
		breadth = 1
	}
	return clamp01(0.5*p.Weight() + 0.3*breadth + 0.2*cohesion)
}

// novelty is the inverse of the strongest overlap with the previous
// iteration's ranked gaps. Everything is novel on iteration one.
func novelty(norm string, priorTexts []string) float64 {
	if len(priorTexts) == 0 {
		return 1.0
	}
	maxSim := 0.0
	for _, t := range priorTexts {
		if s := Jaccard(norm, t); s > maxSim {
			maxSim = s
		}
	}
	return clamp01(1.0 - maxSim)
}

// feasibility infers implementation difficulty from the gap's origin:
// work the authors themselves proposed is the most tractable, inferred
// gaps the least. Verbose descriptions usually hide scope, so very long
// ones lose a step.
func feasibility(g models.ResearchGap) float64 {
	var base float64
	switch g.Type {
	case models.GapTypeStatedFutureWork:
		base = 0.8
	case models.GapTypeStatedLimitation:
		base = 0.7
	case models.GapTypeMethodologicalGap:
		base = 0.55
	default:
		base = 0.5
	}
	if len(Tokenize(g.Description)) > 30 {
		base -= 0.1
	}
	return clamp01(base)
}

// impact blends priority with breadth of evidence, saturating at four
// supporting papers.
func impact(p models.Priority, evidenceCount int) float64 {
	support := float64(evidenceCount) / 4.0
	if support > 1 {
		support = 1
	}
	return clamp01(0.35 + 0.35*p.Weight() + 0.3*support)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
