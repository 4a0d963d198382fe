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

// MetaHandler ranks the iteration's gaps and synthesizes cross-domain
// findings. Queue handler for the meta queue. Ranking is computed
// locally for determinism; only the synthesis step calls the gateway.
func (w *Workers) MetaHandler(ctx context.Context, job *ent.Job) error {
	var p MetaPayload
	if err := decodePayload(job, &p); err != nil {
		return queue.Permanent(err)
	}

	rec, skip, err := w.begin(ctx, p.RunID, p.IterationID, agentrecord.AgentTypeMeta, subjectIteration)
	if err != nil {
		return err
	}
	if skip {
		return nil
	}

	ranked := rankGaps(p.MesoOutput.Clusters, p.PriorMetaOutput)

	out := models.MetaOutput{
		RankedGaps:          ranked,
		CrossDomainPatterns: []models.CrossDomainPattern{},
		ResearchFrontiers:   []models.ResearchFrontier{},
	}
	var stats llm.Stats
	if len(ranked) > 0 {
		res, gerr := w.generateStructured(ctx, llm.Request{
			System:          metaSystemPrompt,
			Prompt:          buildMetaPrompt(p.Query, ranked),
			AgentType:       llm.TierMeta,
			MaxTokens:       2048,
			ExpectJSON:      metaSchema,
			SandboxFallback: p.SandboxFallback,
			Seed: &llm.SandboxSeed{
				Query:    p.Query,
				Clusters: p.MesoOutput.Clusters,
			},
		})
		if gerr != nil {
			return w.fail(ctx, rec, gerr)
		}
		if derr := decodeSynthesis(res.Decoded, &out); derr != nil {
			return w.fail(ctx, rec, derr)
		}
		stats = res.Stats
	}

	if ctx.Err() != nil {
		return queue.ErrRunCancelled
	}

	output, err := toOutputMap(out)
	if err != nil {
		return w.fail(ctx, rec, err)
	}
	themes := len(p.MesoOutput.Clusters)
	msg := fmt.Sprintf("Ranked %d gaps across %d themes", len(ranked), themes)
	return w.succeed(ctx, rec, output, stats, msg)
}

func decodeSynthesis(decoded any, out *models.MetaOutput) error {
	raw, err := json.Marshal(decoded)
	if err != nil {
		return fmt.Errorf("failed to re-encode synthesis output: %w", err)
	}
	var syn struct {
		CrossDomainPatterns []models.CrossDomainPattern `json:"crossDomainPatterns"`
		ResearchFrontiers   []models.ResearchFrontier   `json:"researchFrontiers"`
	}
	if err := json.Unmarshal(raw, &syn); err != nil {
		return fmt.Errorf("failed to decode synthesis output: %w", err)
	}
	if syn.CrossDomainPatterns != nil {
		out.CrossDomainPatterns = syn.CrossDomainPatterns
	}
	if syn.ResearchFrontiers != nil {
		out.ResearchFrontiers = syn.ResearchFrontiers
	}
	return nil
}
