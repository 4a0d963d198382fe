package models

// PaperInput is one input document at run submission.
type PaperInput struct {
	PaperID  string `json:"paper_id"`
	Title    string `json:"title"`
	Abstract string `json:"abstract,omitempty"`
	FullText string `json:"full_text,omitempty"`
}

// CreateRunRequest is the service-level input for creating a run.
type CreateRunRequest struct {
	WorkspaceID          string
	OwnerID              string
	Query                string
	Papers               []PaperInput
	Domains              []string
	MaxIterations        int
	ConvergenceThreshold float64
	SandboxFallback      bool
}

// Run creation bounds and defaults.
const (
	MinIterations               = 1
	MaxIterations               = 10
	DefaultMaxIterations        = 3
	DefaultConvergenceThreshold = 0.6
)
