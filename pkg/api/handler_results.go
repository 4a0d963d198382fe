package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vi3318/Research-AI-sub000/ent/run"
)

// getResults handles GET /api/v1/runs/:id/results. Results are only
// readable from a terminal-success run; everything else is a conflict,
// including failed and cancelled runs with partial agent output.
func (s *Server) getResults(c *gin.Context) {
	runID := c.Param("id")
	r, err := s.runs.GetRun(c.Request.Context(), runID)
	if err != nil {
		s.respondServiceError(c, err)
		return
	}
	if r.Status != run.StatusConverged && r.Status != run.StatusCompleted {
		c.JSON(http.StatusConflict, errorBody{
			Error:   "ERR_CONFLICT",
			Message: "results are available only for converged or completed runs",
		})
		return
	}

	res, err := s.results.GetByRun(c.Request.Context(), runID)
	if err != nil {
		s.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": res.Data})
}

// listLogs handles GET /api/v1/runs/:id/logs?limit=. Entries come back
// in insertion order.
func (s *Server) listLogs(c *gin.Context) {
	runID := c.Param("id")
	if _, err := s.runs.GetRun(c.Request.Context(), runID); err != nil {
		s.respondServiceError(c, err)
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	entries, err := s.logs.List(c.Request.Context(), runID, limit)
	if err != nil {
		s.respondServiceError(c, err)
		return
	}

	type logResponse struct {
		Level       string         `json:"level"`
		Message     string         `json:"message"`
		IterationID string         `json:"iteration_id,omitempty"`
		AgentID     string         `json:"agent_id,omitempty"`
		Payload     map[string]any `json:"payload,omitempty"`
		CreatedAt   string         `json:"created_at"`
	}
	out := make([]logResponse, len(entries))
	for i, e := range entries {
		out[i] = logResponse{
			Level:     string(e.Level),
			Message:   e.Message,
			Payload:   e.Payload,
			CreatedAt: e.CreatedAt.UTC().Format(time.RFC3339Nano),
		}
		if e.IterationID != nil {
			out[i].IterationID = *e.IterationID
		}
		if e.AgentID != nil {
			out[i].AgentID = *e.AgentID
		}
	}
	c.JSON(http.StatusOK, gin.H{"logs": out})
}
