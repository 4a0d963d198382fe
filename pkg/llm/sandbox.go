package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/vi3318/Research-AI-sub000/pkg/config"
	"github.com/vi3318/Research-AI-sub000/pkg/models"
)

// sandboxProvider produces deterministic schema-conforming stubs keyed
// on the request seed. It backs credential-less deployments, tests, and
// the run-level fallback mode: the same seed always yields the same
// output, so runs driven by it converge.
type sandboxProvider struct {
	cfg config.ProviderConfig
}

func newSandboxProvider(cfg config.ProviderConfig) *sandboxProvider {
	return &sandboxProvider{cfg: cfg}
}

func (p *sandboxProvider) Name() string       { return p.cfg.Name }
func (p *sandboxProvider) Model() string      { return p.cfg.Model }
func (p *sandboxProvider) ContextWindow() int { return p.cfg.ContextWindow }

func (p *sandboxProvider) Generate(ctx context.Context, req Request) (string, Usage, error) {
	if err := ctx.Err(); err != nil {
		return "", Usage{}, err
	}

	var (
		out any
		err error
	)
	switch req.AgentType {
	case TierMicro:
		out = microStub(req.Seed)
	case TierMeso:
		out = mesoStub(req.Seed)
	case TierMeta:
		out = metaStub(req.Seed)
	default:
		err = fmt.Errorf("sandbox: unknown agent type %q", req.AgentType)
	}
	if err != nil {
		return "", Usage{}, err
	}

	raw, err := json.Marshal(out)
	if err != nil {
		return "", Usage{}, fmt.Errorf("sandbox: marshal stub: %w", err)
	}
	text := string(raw)
	usage := Usage{
		PromptTokens:     getTokenCounter().Count(req.System + req.Prompt),
		CompletionTokens: len(text) / 4,
	}
	return text, usage, nil
}

var stubGapTypes = []models.GapType{
	models.GapTypeStatedFutureWork,
	models.GapTypeStatedLimitation,
	models.GapTypeInferredGap,
	models.GapTypeMethodologicalGap,
}

var stubPriorities = []models.Priority{
	models.PriorityHigh,
	models.PriorityMedium,
	models.PriorityLow,
}

// microStub emits 3–5 gaps derived from the paper title. The top-level
// value is an array, matching the micro output contract.
func microStub(seed *SandboxSeed) []map[string]any {
	title := "untitled"
	if seed != nil && seed.PaperTitle != "" {
		title = seed.PaperTitle
	}
	h := hash(title)
	n := 3 + int(h%3)

	gaps := make([]map[string]any, 0, n)
	for i := 0; i < n; i++ {
		gt := stubGapTypes[(int(h)+i)%len(stubGapTypes)]
		gaps = append(gaps, map[string]any{
			"description": fmt.Sprintf("%s of the approach in %q", stubAngles[i%len(stubAngles)], title),
			"type":        string(gt),
			"priority":    string(stubPriorities[(int(h>>8)+i)%len(stubPriorities)]),
			"rationale":   fmt.Sprintf("The paper leaves %s unexamined.", strings.ToLower(stubAngles[i%len(stubAngles)])),
			"confidence":  0.6 + 0.1*float64(i%4),
		})
	}
	return gaps
}

var stubAngles = []string{
	"Scaling behavior",
	"Cross-domain generalization",
	"Evaluation on real-world workloads",
	"Robustness under distribution shift",
	"Reproducibility",
}

// mesoStub chunks the seeded gaps into clusters of at most three,
// emitting the clustering contract the meso worker expects.
func mesoStub(seed *SandboxSeed) map[string]any {
	var gaps []models.ResearchGap
	if seed != nil {
		gaps = seed.Gaps
	}

	clusters := make([]map[string]any, 0, len(gaps)/3+1)
	for start := 0; start < len(gaps); start += 3 {
		end := start + 3
		if end > len(gaps) {
			end = len(gaps)
		}
		indices := make([]int, 0, end-start)
		for i := start; i < end; i++ {
			indices = append(indices, i)
		}
		keywords := keywordsFor(gaps[start].Description)
		clusters = append(clusters, map[string]any{
			"label":       fmt.Sprintf("Theme %d: %s", len(clusters)+1, strings.Join(keywords, " ")),
			"keywords":    keywords,
			"gap_indices": indices,
		})
	}
	return map[string]any{"clusters": clusters}
}

// metaStub derives cross-domain patterns and frontiers from cluster
// labels.
func metaStub(seed *SandboxSeed) map[string]any {
	var clusters []models.Cluster
	query := "the research query"
	if seed != nil {
		clusters = seed.Clusters
		if seed.Query != "" {
			query = seed.Query
		}
	}

	patterns := make([]map[string]any, 0, 1)
	frontiers := make([]map[string]any, 0, len(clusters))
	labels := make([]string, 0, len(clusters))
	for _, c := range clusters {
		labels = append(labels, c.Theme.Label)
		frontiers = append(frontiers, map[string]any{
			"frontier":  fmt.Sprintf("Unified treatment of %s", c.Theme.Label),
			"rationale": fmt.Sprintf("Multiple papers touch %s without a shared framework.", c.Theme.Label),
		})
	}
	if len(labels) > 1 {
		patterns = append(patterns, map[string]any{
			"pattern": fmt.Sprintf("Recurring methodology concerns across %d themes relating to %s", len(labels), query),
			"domains": labels,
		})
	}
	return map[string]any{
		"crossDomainPatterns": patterns,
		"researchFrontiers":   frontiers,
	}
}

func keywordsFor(description string) []string {
	words := strings.Fields(strings.ToLower(description))
	keywords := make([]string, 0, 3)
	for _, w := range words {
		w = strings.Trim(w, ".,:;\"'()")
		if len(w) >= 5 {
			keywords = append(keywords, w)
		}
		if len(keywords) == 3 {
			break
		}
	}
	if len(keywords) == 0 {
		keywords = append(keywords, "general")
	}
	return keywords
}

func hash(s string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(s))
	return h.Sum32()
}
