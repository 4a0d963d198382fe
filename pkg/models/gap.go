// Package models defines the domain types shared across services, workers,
// and the API layer: research gaps, clusters, ranked results, and the
// request structs the services accept.
package models

// GapType classifies how a research gap was identified in a paper.
type GapType string

// Gap type values produced by the Micro agent.
const (
	GapTypeStatedFutureWork  GapType = "stated_future_work"
	GapTypeStatedLimitation  GapType = "stated_limitation"
	GapTypeInferredGap       GapType = "inferred_gap"
	GapTypeMethodologicalGap GapType = "methodological_gap"
)

// Priority is the urgency assigned to a gap.
type Priority string

// Priority values.
const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// GapSource distinguishes gaps the paper states explicitly from gaps the
// model inferred. Derived from GapType during Micro post-processing.
type GapSource string

// Gap source values.
const (
	SourcePaperExplicit GapSource = "paper_explicit"
	SourceInferred      GapSource = "inferred"
)

// DefaultConfidence is stamped on gaps the model returned without one.
const DefaultConfidence = 0.75

// ResearchGap is one actionable gap extracted from a single paper.
type ResearchGap struct {
	Description string    `json:"description"`
	Type        GapType   `json:"type"`
	Priority    Priority  `json:"priority"`
	Rationale   string    `json:"rationale"`
	Confidence  float64   `json:"confidence"`
	Source      GapSource `json:"source,omitempty"`
	PaperID     string    `json:"paper_id,omitempty"`
	PaperTitle  string    `json:"paper_title,omitempty"`
}

// ExplicitSource reports whether a gap type denotes something the paper
// states directly rather than an inference.
func (t GapType) ExplicitSource() GapSource {
	switch t {
	case GapTypeStatedFutureWork, GapTypeStatedLimitation:
		return SourcePaperExplicit
	default:
		return SourceInferred
	}
}

// Weight maps a priority to its scoring weight in [0,1].
func (p Priority) Weight() float64 {
	switch p {
	case PriorityHigh:
		return 1.0
	case PriorityMedium:
		return 0.6
	case PriorityLow:
		return 0.3
	default:
		return 0.3
	}
}

// MicroOutput is the persisted output of one Micro agent.
type MicroOutput struct {
	PaperID      string        `json:"paper_id"`
	PaperTitle   string        `json:"paper_title"`
	ResearchGaps []ResearchGap `json:"researchGaps"`
}

// Theme labels a cluster of semantically related gaps.
type Theme struct {
	Label    string   `json:"label"`
	Keywords []string `json:"keywords"`
}

// PriorityBucket groups a cluster's deduplicated gaps by priority.
type PriorityBucket struct {
	Priority Priority `json:"priority"`
	Count    int      `json:"count"`
	Gaps     []string `json:"gaps"`
}

// Cluster is one theme group produced by the Meso agent. MemberGaps keeps
// the full per-paper gap objects so the Meta agent can trace evidence back
// to paper IDs; the summary fields mirror what clients consume.
type Cluster struct {
	Theme          Theme            `json:"theme"`
	Papers         []string         `json:"papers"`
	IdentifiedGaps []PriorityBucket `json:"identifiedGaps"`
	MemberGaps     []ResearchGap    `json:"memberGaps,omitempty"`
	Cohesion       float64          `json:"cohesion"`
	Size           int              `json:"size"`
}

// MesoOutput is the persisted output of one Meso agent.
type MesoOutput struct {
	Clusters []Cluster `json:"clusters"`
}

// GapScores holds the bounded scoring dimensions of a ranked gap.
type GapScores struct {
	Importance  float64 `json:"importance"`
	Novelty     float64 `json:"novelty"`
	Feasibility float64 `json:"feasibility"`
	Impact      float64 `json:"impact"`
	Confidence  float64 `json:"confidence"`
}

// Composite scoring weights, fixed by design. The composite score is the
// weighted sum of importance, novelty, feasibility, and impact.
const (
	WeightImportance  = 0.35
	WeightNovelty     = 0.25
	WeightFeasibility = 0.20
	WeightImpact      = 0.20
)

// Composite returns the weighted composite score.
func (s GapScores) Composite() float64 {
	return WeightImportance*s.Importance +
		WeightNovelty*s.Novelty +
		WeightFeasibility*s.Feasibility +
		WeightImpact*s.Impact
}

// RankedGap is one entry of the Meta agent's ranked gap list.
type RankedGap struct {
	Gap              string    `json:"gap"`
	Theme            string    `json:"theme"`
	Priority         Priority  `json:"priority"`
	Rationale        string    `json:"rationale"`
	Scores           GapScores `json:"scores"`
	Ranking          int       `json:"ranking"`
	EvidencePaperIDs []string  `json:"evidence_paper_ids"`
}

// CrossDomainPattern is a synthesis finding spanning multiple themes.
type CrossDomainPattern struct {
	Pattern string   `json:"pattern"`
	Domains []string `json:"domains,omitempty"`
}

// ResearchFrontier is a forward-looking research direction.
type ResearchFrontier struct {
	Frontier  string `json:"frontier"`
	Rationale string `json:"rationale,omitempty"`
}

// MetaOutput is the persisted output of one Meta agent and, for the final
// iteration, the payload of the run's Result Record.
type MetaOutput struct {
	RankedGaps          []RankedGap          `json:"rankedGaps"`
	CrossDomainPatterns []CrossDomainPattern `json:"crossDomainPatterns"`
	ResearchFrontiers   []ResearchFrontier   `json:"researchFrontiers"`
}
