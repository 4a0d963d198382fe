package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vi3318/Research-AI-sub000/pkg/database"
	"github.com/vi3318/Research-AI-sub000/pkg/version"
)

const (
	healthStatusHealthy   = "healthy"
	healthStatusDegraded  = "degraded"
	healthStatusUnhealthy = "unhealthy"
)

type healthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// health handles GET /health. Only the engine's own components are
// checked; LLM providers are external and excluded so an upstream
// outage does not get this process restarted.
func (s *Server) health(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]healthCheck)
	status := healthStatusHealthy

	if _, err := database.Health(reqCtx, s.db.DB()); err != nil {
		status = healthStatusUnhealthy
		checks["database"] = healthCheck{Status: healthStatusUnhealthy, Message: err.Error()}
	} else {
		checks["database"] = healthCheck{Status: healthStatusHealthy}
	}

	if s.pool != nil {
		poolHealth := s.pool.Health()
		if poolHealth != nil && !poolHealth.IsHealthy {
			if status == healthStatusHealthy {
				status = healthStatusDegraded
			}
			checks["worker_pool"] = healthCheck{Status: healthStatusDegraded}
		} else {
			checks["worker_pool"] = healthCheck{Status: healthStatusHealthy}
		}
	}

	httpStatus := http.StatusOK
	if status == healthStatusUnhealthy {
		httpStatus = http.StatusServiceUnavailable
	}
	c.JSON(httpStatus, gin.H{
		"status":  status,
		"version": version.GitCommit,
		"checks":  checks,
	})
}
