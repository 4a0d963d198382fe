package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vi3318/Research-AI-sub000/ent"
	"github.com/vi3318/Research-AI-sub000/pkg/events"
	"github.com/vi3318/Research-AI-sub000/pkg/models"
)

// createRunRequest is the POST /runs body.
type createRunRequest struct {
	WorkspaceID          string              `json:"workspace_id"`
	OwnerID              string              `json:"owner_id"`
	Query                string              `json:"query"`
	Papers               []models.PaperInput `json:"papers"`
	Domains              []string            `json:"domains"`
	MaxIterations        *int                `json:"max_iterations"`
	ConvergenceThreshold *float64            `json:"convergence_threshold"`
	SandboxFallback      bool                `json:"sandbox_fallback"`
}

// runResponse is the run-state wire shape.
type runResponse struct {
	RunID              string   `json:"run_id"`
	Status             string   `json:"status"`
	Query              string   `json:"query"`
	CurrentIteration   int      `json:"current_iteration"`
	ProgressPercentage int      `json:"progress_percentage"`
	MaxIterations      int      `json:"max_iterations"`
	Domains            []string `json:"domains,omitempty"`
	Error              string   `json:"error,omitempty"`
	CreatedAt          string   `json:"created_at"`
	StartedAt          string   `json:"started_at,omitempty"`
	CompletedAt        string   `json:"completed_at,omitempty"`
}

func toRunResponse(r *ent.Run) runResponse {
	resp := runResponse{
		RunID:              r.ID,
		Status:             string(r.Status),
		Query:              r.Query,
		CurrentIteration:   r.CurrentIteration,
		ProgressPercentage: r.ProgressPercentage,
		MaxIterations:      r.MaxIterations,
		Domains:            r.Domains,
		CreatedAt:          r.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if r.ErrorMessage != nil {
		resp.Error = *r.ErrorMessage
	}
	if r.StartedAt != nil {
		resp.StartedAt = r.StartedAt.UTC().Format(time.RFC3339Nano)
	}
	if r.CompletedAt != nil {
		resp.CompletedAt = r.CompletedAt.UTC().Format(time.RFC3339Nano)
	}
	return resp
}

// createRun handles POST /api/v1/runs: persist the run and schedule
// orchestration. 202 because the work happens asynchronously.
func (s *Server) createRun(c *gin.Context) {
	var req createRunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody{Error: "VALIDATION", Message: err.Error()})
		return
	}
	if len(req.Papers) == 0 {
		c.JSON(http.StatusBadRequest, errorBody{Error: "NO_PAPERS", Message: "at least one paper is required"})
		return
	}

	svcReq := models.CreateRunRequest{
		WorkspaceID:          req.WorkspaceID,
		OwnerID:              req.OwnerID,
		Query:                req.Query,
		Papers:               req.Papers,
		Domains:              req.Domains,
		MaxIterations:        models.DefaultMaxIterations,
		ConvergenceThreshold: models.DefaultConvergenceThreshold,
		SandboxFallback:      req.SandboxFallback,
	}
	if req.MaxIterations != nil {
		svcReq.MaxIterations = *req.MaxIterations
	}
	if req.ConvergenceThreshold != nil {
		svcReq.ConvergenceThreshold = *req.ConvergenceThreshold
	}

	r, err := s.runs.CreateRun(c.Request.Context(), svcReq)
	if err != nil {
		s.respondServiceError(c, err)
		return
	}
	if err := s.engine.EnqueueRun(c.Request.Context(), r.ID); err != nil {
		s.logger.Error("Failed to schedule orchestration", "run_id", r.ID, "error", err)
		c.JSON(http.StatusInternalServerError, errorBody{Error: "INTERNAL", Message: "failed to schedule run"})
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"run_id": r.ID, "status": string(r.Status)})
}

// getRun handles GET /api/v1/runs/:id.
func (s *Server) getRun(c *gin.Context) {
	r, err := s.runs.GetRun(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toRunResponse(r))
}

// listRuns handles GET /api/v1/runs?workspace_id=&limit=&offset=.
func (s *Server) listRuns(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	runs, err := s.runs.ListRuns(c.Request.Context(), c.Query("workspace_id"), limit, offset)
	if err != nil {
		s.respondServiceError(c, err)
		return
	}
	out := make([]runResponse, len(runs))
	for i, r := range runs {
		out[i] = toRunResponse(r)
	}
	c.JSON(http.StatusOK, gin.H{"runs": out})
}

// cancelRun handles POST /api/v1/runs/:id/cancel. On success the run's
// pending jobs are drained and in-flight handlers are signalled; both
// are best-effort beyond the status flip itself.
func (s *Server) cancelRun(c *gin.Context) {
	runID := c.Param("id")
	r, err := s.runs.Cancel(c.Request.Context(), runID)
	if err != nil {
		s.respondServiceError(c, err)
		return
	}

	if err := s.broker.DrainRun(c.Request.Context(), runID); err != nil {
		s.logger.Warn("Failed to drain cancelled run's jobs", "run_id", runID, "error", err)
	}
	if s.pool != nil {
		if n := s.pool.CancelRun(runID); n > 0 {
			s.logger.Info("Cancelled in-flight jobs", "run_id", runID, "count", n)
		}
	}
	if s.publisher != nil {
		payload := events.StatusPayload{
			RunID:            r.ID,
			Status:           r.Status,
			CurrentIteration: r.CurrentIteration,
			Progress:         r.ProgressPercentage,
		}
		if err := s.publisher.PublishRunStatus(c.Request.Context(), runID, payload); err != nil {
			s.logger.Warn("Failed to publish cancel status", "run_id", runID, "error", err)
		}
	}

	c.JSON(http.StatusOK, gin.H{"run_id": r.ID, "status": string(r.Status)})
}
