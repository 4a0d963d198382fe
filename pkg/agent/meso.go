package agent

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/vi3318/Research-AI-sub000/ent"
	"github.com/vi3318/Research-AI-sub000/ent/agentrecord"
	"github.com/vi3318/Research-AI-sub000/pkg/llm"
	"github.com/vi3318/Research-AI-sub000/pkg/models"
	"github.com/vi3318/Research-AI-sub000/pkg/queue"
)

// Meso and Meta run once per iteration; the iteration itself is the
// idempotency subject.
const subjectIteration = "iteration"

// MiscellaneousLabel is the catch-all theme for gaps whose cluster was
// too thin to stand alone.
const MiscellaneousLabel = "miscellaneous"

// Thin clusters (fewer than two member gaps) survive only above this
// cohesion; below it their members merge into the catch-all.
const thinClusterCohesion = 0.8

// rawCluster is the model-facing cluster shape before membership
// resolution.
type rawCluster struct {
	Label      string   `json:"label"`
	Keywords   []string `json:"keywords"`
	GapIndices []int    `json:"gap_indices"`
}

// MesoHandler clusters an iteration's extracted gaps into themes.
// Queue handler for the meso queue.
func (w *Workers) MesoHandler(ctx context.Context, job *ent.Job) error {
	var p MesoPayload
	if err := decodePayload(job, &p); err != nil {
		return queue.Permanent(err)
	}

	rec, skip, err := w.begin(ctx, p.RunID, p.IterationID, agentrecord.AgentTypeMeso, subjectIteration)
	if err != nil {
		return err
	}
	if skip {
		return nil
	}

	gaps := flattenGaps(p.MicroOutputs)
	if len(gaps) == 0 {
		// No upstream gaps is a valid (empty) clustering, persisted as
		// such; the orchestrator decides what it means for the iteration.
		output, merr := toOutputMap(models.MesoOutput{Clusters: []models.Cluster{}})
		if merr != nil {
			return w.fail(ctx, rec, merr)
		}
		return w.succeed(ctx, rec, output, llm.Stats{}, "Clustered 0 gaps into 0 themes")
	}

	res, err := w.generateStructured(ctx, llm.Request{
		System:          mesoSystemPrompt,
		Prompt:          buildMesoPrompt(p.Query, gaps),
		AgentType:       llm.TierMeso,
		MaxTokens:       2048,
		ExpectJSON:      mesoSchema,
		SandboxFallback: p.SandboxFallback,
		Seed: &llm.SandboxSeed{
			Query: p.Query,
			Gaps:  gaps,
		},
	})
	if err != nil {
		return w.fail(ctx, rec, err)
	}

	raws, err := decodeClusters(res.Decoded)
	if err != nil {
		return w.fail(ctx, rec, err)
	}
	clusters := buildClusters(gaps, raws)

	if ctx.Err() != nil {
		return queue.ErrRunCancelled
	}

	output, err := toOutputMap(models.MesoOutput{Clusters: clusters})
	if err != nil {
		return w.fail(ctx, rec, err)
	}
	msg := fmt.Sprintf("Clustered %d gaps into %d themes", len(gaps), len(clusters))
	return w.succeed(ctx, rec, output, res.Stats, msg)
}

// flattenGaps concatenates Micro outputs in ingestion order. The index
// of each gap in the result is the index the clustering prompt uses.
func flattenGaps(outputs []models.MicroOutput) []models.ResearchGap {
	var gaps []models.ResearchGap
	for _, out := range outputs {
		gaps = append(gaps, out.ResearchGaps...)
	}
	return gaps
}

func decodeClusters(decoded any) ([]rawCluster, error) {
	raw, err := json.Marshal(decoded)
	if err != nil {
		return nil, fmt.Errorf("failed to re-encode cluster output: %w", err)
	}
	var out struct {
		Clusters []rawCluster `json:"clusters"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("failed to decode cluster output: %w", err)
	}
	return out.Clusters, nil
}

// buildClusters resolves the model's index assignments into full
// clusters: dedup near-duplicate descriptions, score cohesion, fold
// thin clusters and unassigned gaps into the catch-all, and bucket the
// surviving gaps by priority.
func buildClusters(gaps []models.ResearchGap, raws []rawCluster) []models.Cluster {
	assigned := make([]bool, len(gaps))
	var clusters []models.Cluster
	var misc []models.ResearchGap

	for _, rc := range raws {
		var members []models.ResearchGap
		for _, idx := range rc.GapIndices {
			if idx < 0 || idx >= len(gaps) || assigned[idx] {
				continue
			}
			assigned[idx] = true
			members = append(members, gaps[idx])
		}
		if len(members) == 0 {
			continue
		}
		deduped := dedupGaps(members)
		cohesion := clusterCohesion(deduped)
		if len(deduped) < 2 && cohesion < thinClusterCohesion {
			misc = append(misc, members...)
			continue
		}
		clusters = append(clusters, makeCluster(rc.Label, rc.Keywords, members, deduped, cohesion))
	}

	// Gaps the model never placed join the catch-all.
	for i, done := range assigned {
		if !done {
			misc = append(misc, gaps[i])
		}
	}
	if len(misc) > 0 {
		deduped := dedupGaps(misc)
		clusters = append(clusters, makeCluster(MiscellaneousLabel, nil, misc, deduped, clusterCohesion(deduped)))
	}
	return clusters
}

// dedupGaps drops near-duplicate descriptions, keeping the occurrence
// with the higher confidence. Order of survivors is stable.
func dedupGaps(members []models.ResearchGap) []models.ResearchGap {
	var kept []models.ResearchGap
	for _, g := range members {
		dup := -1
		for i, k := range kept {
			if Jaccard(g.Description, k.Description) >= JaccardDuplicateThreshold {
				dup = i
				break
			}
		}
		if dup < 0 {
			kept = append(kept, g)
			continue
		}
		if g.Confidence > kept[dup].Confidence {
			kept[dup] = g
		}
	}
	return kept
}

// clusterCohesion scores a cluster's internal similarity. A singleton
// has no pairs; its own confidence stands in so the thin-cluster rule
// still has a signal to act on.
func clusterCohesion(members []models.ResearchGap) float64 {
	if len(members) == 1 {
		return members[0].Confidence
	}
	texts := make([]string, len(members))
	for i, g := range members {
		texts[i] = g.Description
	}
	return Cohesion(texts)
}

// makeCluster builds the persisted cluster. The priority buckets carry
// the deduplicated descriptions; MemberGaps keep the raw members so the
// ranking stage can merge duplicate gaps' paper evidence.
func makeCluster(label string, keywords []string, members, deduped []models.ResearchGap, cohesion float64) models.Cluster {
	papers := uniquePapers(members)
	return models.Cluster{
		Theme:          models.Theme{Label: label, Keywords: keywords},
		Papers:         papers,
		IdentifiedGaps: priorityBuckets(deduped),
		MemberGaps:     members,
		Cohesion:       cohesion,
		Size:           len(papers),
	}
}

func uniquePapers(members []models.ResearchGap) []string {
	seen := make(map[string]struct{})
	var papers []string
	for _, g := range members {
		if g.PaperID == "" {
			continue
		}
		if _, ok := seen[g.PaperID]; ok {
			continue
		}
		seen[g.PaperID] = struct{}{}
		papers = append(papers, g.PaperID)
	}
	return papers
}

// priorityBuckets emits one entry per non-empty priority, high first.
func priorityBuckets(members []models.ResearchGap) []models.PriorityBucket {
	order := []models.Priority{models.PriorityHigh, models.PriorityMedium, models.PriorityLow}
	var buckets []models.PriorityBucket
	for _, pr := range order {
		var descs []string
		for _, g := range members {
			if g.Priority == pr {
				descs = append(descs, g.Description)
			}
		}
		if len(descs) == 0 {
			continue
		}
		buckets = append(buckets, models.PriorityBucket{
			Priority: pr,
			Count:    len(descs),
			Gaps:     descs,
		})
	}
	return buckets
}
