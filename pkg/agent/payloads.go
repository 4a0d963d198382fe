package agent

import (
	"encoding/json"
	"fmt"

	"github.com/vi3318/Research-AI-sub000/ent"
	"github.com/vi3318/Research-AI-sub000/pkg/models"
)

// PaperContent is the paper text a Micro agent works on.
type PaperContent struct {
	Title    string `json:"title"`
	Abstract string `json:"abstract,omitempty"`
	FullText string `json:"full_text,omitempty"`
}

// MicroPayload is the micro-queue job payload: one paper, one agent.
type MicroPayload struct {
	RunID           string             `json:"run_id"`
	IterationID     string             `json:"iteration_id"`
	IterationNumber int                `json:"iteration_number"`
	Query           string             `json:"query"`
	SandboxFallback bool               `json:"sandbox_fallback"`
	PaperID         string             `json:"paper_id"`
	Paper           PaperContent       `json:"paper"`
	PriorContext    *models.MetaOutput `json:"prior_context,omitempty"`
}

// MesoPayload is the meso-queue job payload: the union of the
// iteration's successful Micro outputs.
type MesoPayload struct {
	RunID           string               `json:"run_id"`
	IterationID     string               `json:"iteration_id"`
	IterationNumber int                  `json:"iteration_number"`
	Query           string               `json:"query"`
	SandboxFallback bool                 `json:"sandbox_fallback"`
	MicroOutputs    []models.MicroOutput `json:"micro_outputs"`
}

// MetaPayload is the meta-queue job payload.
type MetaPayload struct {
	RunID           string             `json:"run_id"`
	IterationID     string             `json:"iteration_id"`
	IterationNumber int                `json:"iteration_number"`
	Query           string             `json:"query"`
	SandboxFallback bool               `json:"sandbox_fallback"`
	MesoOutput      models.MesoOutput  `json:"meso_output"`
	PriorMetaOutput *models.MetaOutput `json:"prior_meta_output,omitempty"`
}

// EncodePayload converts a typed payload into the map form jobs carry.
func EncodePayload(v any) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode job payload: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("failed to encode job payload: %w", err)
	}
	return m, nil
}

// decodePayload unpacks a job's payload map into a typed struct.
func decodePayload(job *ent.Job, dst any) error {
	raw, err := json.Marshal(job.Payload)
	if err != nil {
		return fmt.Errorf("failed to decode payload of job %s: %w", job.ID, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("failed to decode payload of job %s: %w", job.ID, err)
	}
	return nil
}

// toOutputMap converts a typed agent output into the map persisted on
// the agent record.
func toOutputMap(v any) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode agent output: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("failed to encode agent output: %w", err)
	}
	return m, nil
}
