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

// MicroHandler extracts research gaps from one paper. Queue handler for
// the micro queue.
func (w *Workers) MicroHandler(ctx context.Context, job *ent.Job) error {
	var p MicroPayload
	if err := decodePayload(job, &p); err != nil {
		return queue.Permanent(err)
	}

	rec, skip, err := w.begin(ctx, p.RunID, p.IterationID, agentrecord.AgentTypeMicro, p.PaperID)
	if err != nil {
		return err
	}
	if skip {
		return nil
	}

	res, err := w.generateStructured(ctx, llm.Request{
		System:          microSystemPrompt,
		Prompt:          buildMicroPrompt(p.Query, p.Paper, p.PriorContext),
		AgentType:       llm.TierMicro,
		MaxTokens:       2048,
		ExpectJSON:      microSchema,
		SandboxFallback: p.SandboxFallback,
		Seed: &llm.SandboxSeed{
			Query:      p.Query,
			PaperID:    p.PaperID,
			PaperTitle: p.Paper.Title,
		},
	})
	if err != nil {
		return w.fail(ctx, rec, err)
	}

	gaps, err := decodeGaps(res.Decoded)
	if err != nil {
		return w.fail(ctx, rec, err)
	}
	for i := range gaps {
		normalizeGap(&gaps[i], p.PaperID, p.Paper.Title)
	}

	// Cancellation check before the persistence write.
	if ctx.Err() != nil {
		return queue.ErrRunCancelled
	}

	output, err := toOutputMap(models.MicroOutput{
		PaperID:      p.PaperID,
		PaperTitle:   p.Paper.Title,
		ResearchGaps: gaps,
	})
	if err != nil {
		return w.fail(ctx, rec, err)
	}
	msg := fmt.Sprintf("Extracted %d gaps from paper %s", len(gaps), p.Paper.Title)
	return w.succeed(ctx, rec, output, res.Stats, msg)
}

// decodeGaps converts the schema-validated array into typed gaps.
func decodeGaps(decoded any) ([]models.ResearchGap, error) {
	raw, err := json.Marshal(decoded)
	if err != nil {
		return nil, fmt.Errorf("failed to re-encode gap array: %w", err)
	}
	var gaps []models.ResearchGap
	if err := json.Unmarshal(raw, &gaps); err != nil {
		return nil, fmt.Errorf("failed to decode gap array: %w", err)
	}
	return gaps, nil
}

// normalizeGap applies the post-extraction defaults: source derived
// from type, confidence defaulted when the model omitted it, and paper
// identity stamped for evidence tracking.
func normalizeGap(g *models.ResearchGap, paperID, paperTitle string) {
	g.Source = g.Type.ExplicitSource()
	if g.Confidence <= 0 {
		g.Confidence = models.DefaultConfidence
	}
	if g.Confidence > 1 {
		g.Confidence = 1
	}
	g.PaperID = paperID
	g.PaperTitle = paperTitle
}
