// Package api is the HTTP boundary: run submission, state and result
// reads, cancellation, and the SSE event stream.
package api

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vi3318/Research-AI-sub000/pkg/database"
	"github.com/vi3318/Research-AI-sub000/pkg/events"
	"github.com/vi3318/Research-AI-sub000/pkg/orchestrator"
	"github.com/vi3318/Research-AI-sub000/pkg/queue"
	"github.com/vi3318/Research-AI-sub000/pkg/services"
)

// Server holds the handler dependencies.
type Server struct {
	db        *database.Client
	runs      *services.RunService
	results   *services.ResultService
	logs      *services.LogService
	engine    *orchestrator.Engine
	broker    *queue.Broker
	pool      *queue.Pool
	hub       *events.Hub
	publisher *events.Publisher
	logger    *slog.Logger
}

// NewServer creates the API server.
func NewServer(
	db *database.Client,
	runs *services.RunService,
	results *services.ResultService,
	logs *services.LogService,
	engine *orchestrator.Engine,
	broker *queue.Broker,
	pool *queue.Pool,
	hub *events.Hub,
	publisher *events.Publisher,
	logger *slog.Logger,
) *Server {
	return &Server{
		db:        db,
		runs:      runs,
		results:   results,
		logs:      logs,
		engine:    engine,
		broker:    broker,
		pool:      pool,
		hub:       hub,
		publisher: publisher,
		logger:    logger.With("component", "api"),
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())

	r.GET("/health", s.health)

	v1 := r.Group("/api/v1")
	{
		v1.POST("/runs", s.createRun)
		v1.GET("/runs", s.listRuns)
		v1.GET("/runs/:id", s.getRun)
		v1.GET("/runs/:id/results", s.getResults)
		v1.GET("/runs/:id/logs", s.listLogs)
		v1.GET("/runs/:id/events", s.streamEvents)
		v1.POST("/runs/:id/cancel", s.cancelRun)
	}
	return r
}

// requestLogger logs each request on the structured logger; the event
// stream is excluded to keep long-lived connections out of the access log.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		if c.FullPath() == "/api/v1/runs/:id/events" {
			return
		}
		s.logger.Info("HTTP request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}
