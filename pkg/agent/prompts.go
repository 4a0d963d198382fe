package agent

import (
	"fmt"
	"strings"

	"github.com/vi3318/Research-AI-sub000/pkg/models"
)

const microSystemPrompt = `You are a research-gap analyst. You read one academic paper and extract
actionable research gaps: directions the paper states as future work, limitations it
admits, gaps you can infer from its scope, and methodological weaknesses.

Respond with a JSON array only. Each element:
{"description": string, "type": "stated_future_work"|"stated_limitation"|"inferred_gap"|"methodological_gap",
 "priority": "high"|"medium"|"low", "rationale": string, "confidence": number in [0,1]}

Extract between 3 and 7 gaps. Descriptions must be specific enough that a
researcher could act on them. No prose outside the JSON array.`

const mesoSystemPrompt = `You are a research-synthesis analyst. You receive a numbered list of research
gaps extracted from multiple papers and group them into semantic themes.

Respond with JSON only:
{"clusters": [{"label": string, "keywords": [string], "gap_indices": [int]}]}

Every gap index must appear in exactly one cluster. Labels are short noun
phrases. Keywords are 2-5 terms characterizing the theme. No prose outside the JSON.`

const metaSystemPrompt = `You are a research-strategy analyst. You receive the top-ranked research gaps
of an analysis run together with their themes, and you identify patterns spanning
multiple themes and promising research frontiers.

Respond with JSON only:
{"crossDomainPatterns": [{"pattern": string, "domains": [string]}],
 "researchFrontiers": [{"frontier": string, "rationale": string}]}

No prose outside the JSON.`

// buildMicroPrompt assembles the user turn for one paper. Prior-iteration
// context steers extraction toward under-covered themes without leaking the
// ranking itself into the output.
func buildMicroPrompt(query string, p PaperContent, prior *models.MetaOutput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Research query: %s\n\n", query)
	fmt.Fprintf(&b, "Paper title: %s\n", p.Title)
	if p.Abstract != "" {
		fmt.Fprintf(&b, "\nAbstract:\n%s\n", p.Abstract)
	}
	if p.FullText != "" {
		fmt.Fprintf(&b, "\nFull text:\n%s\n", p.FullText)
	}
	if prior != nil && len(prior.RankedGaps) > 0 {
		b.WriteString("\nGaps already identified in the previous iteration (avoid restating, look for what they miss):\n")
		for i, g := range prior.RankedGaps {
			if i >= 10 {
				break
			}
			fmt.Fprintf(&b, "- %s\n", g.Gap)
		}
	}
	b.WriteString("\nExtract the research gaps from this paper.")
	return b.String()
}

// buildMesoPrompt numbers every gap across the iteration's Micro outputs.
// Index order is the flattening order and must match flattenGaps.
func buildMesoPrompt(query string, gaps []models.ResearchGap) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Research query: %s\n\n", query)
	fmt.Fprintf(&b, "Gaps extracted across %d entries:\n", len(gaps))
	for i, g := range gaps {
		fmt.Fprintf(&b, "%d. [%s/%s] %s (paper: %s)\n", i, g.Type, g.Priority, g.Description, g.PaperTitle)
	}
	b.WriteString("\nCluster these gaps into semantic themes.")
	return b.String()
}

// buildMetaPrompt presents the locally ranked top gaps and their themes
// for the cross-domain synthesis call.
func buildMetaPrompt(query string, ranked []models.RankedGap) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Research query: %s\n\n", query)
	b.WriteString("Top-ranked research gaps:\n")
	for _, g := range ranked {
		fmt.Fprintf(&b, "%d. [theme: %s, priority: %s] %s\n", g.Ranking, g.Theme, g.Priority, g.Gap)
	}
	b.WriteString("\nIdentify cross-domain patterns and research frontiers.")
	return b.String()
}
