package agent

// JSON schemas handed to the gateway's ExpectJSON. The shapes here are
// the model-facing contracts; worker post-processing turns them into
// the persisted output types.

// microSchema: a top-level array of extracted gap objects.
var microSchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"description": map[string]any{"type": "string", "minLength": 1},
			"type": map[string]any{
				"type": "string",
				"enum": []any{
					"stated_future_work", "stated_limitation",
					"inferred_gap", "methodological_gap",
				},
			},
			"priority": map[string]any{
				"type": "string",
				"enum": []any{"high", "medium", "low"},
			},
			"rationale":  map[string]any{"type": "string"},
			"confidence": map[string]any{"type": "number", "minimum": 0, "maximum": 1},
		},
		"required": []any{"description", "type", "priority", "rationale"},
	},
}

// mesoSchema: one clustering pass over the numbered gap list. The model
// assigns gaps to themes by index; membership resolution, dedup, and
// cohesion happen locally.
var mesoSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"clusters": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"label": map[string]any{"type": "string", "minLength": 1},
					"keywords": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
					"gap_indices": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "integer", "minimum": 0},
					},
				},
				"required": []any{"label", "gap_indices"},
			},
		},
	},
	"required": []any{"clusters"},
}

// metaSchema: the cross-domain synthesis call. Ranking is computed
// locally; the model only contributes patterns and frontiers.
var metaSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"crossDomainPatterns": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"pattern": map[string]any{"type": "string", "minLength": 1},
					"domains": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
				},
				"required": []any{"pattern"},
			},
		},
		"researchFrontiers": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"frontier":  map[string]any{"type": "string", "minLength": 1},
					"rationale": map[string]any{"type": "string"},
				},
				"required": []any{"frontier"},
			},
		},
	},
	"required": []any{"crossDomainPatterns", "researchFrontiers"},
}
