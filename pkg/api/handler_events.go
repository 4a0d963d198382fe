package api

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-contrib/sse"
	"github.com/gin-gonic/gin"

	"github.com/vi3318/Research-AI-sub000/pkg/events"
	"github.com/vi3318/Research-AI-sub000/pkg/services"
)

// frameEnvelope is what we need out of a stored event payload to build
// an SSE frame: its type, persisted sequence, and (for status events)
// the run status so the stream can end on terminal.
type frameEnvelope struct {
	Type      string `json:"type"`
	DBEventID int    `json:"db_event_id"`
	Status    string `json:"status"`
}

// wireType shortens the internal event types to the wire names.
var wireType = map[string]string{
	events.EventTypeRunStatus: "status",
	events.EventTypeLog:       "log",
	events.EventTypeIteration: "iteration",
	events.EventTypeResult:    "result",
	events.EventTypeProgress:  "progress",
}

// streamEvents handles GET /api/v1/runs/:id/events: an SSE stream of
// the run's observer channel. Last-Event-ID (header or query param)
// resumes from the persisted event log; the stream ends when a terminal
// status frame is delivered or the client goes away.
func (s *Server) streamEvents(c *gin.Context) {
	runID := c.Param("id")
	r, err := s.runs.GetRun(c.Request.Context(), runID)
	if err != nil {
		s.respondServiceError(c, err)
		return
	}

	lastEventID := -1
	if v := c.GetHeader("Last-Event-ID"); v != "" {
		if n, perr := strconv.Atoi(v); perr == nil {
			lastEventID = n
		}
	} else if v := c.Query("last_event_id"); v != "" {
		if n, perr := strconv.Atoi(v); perr == nil {
			lastEventID = n
		}
	}

	// A terminal run with no catchup request gets one final status
	// frame; there is nothing further to wait for.
	if services.IsTerminal(r.Status) && lastEventID < 0 {
		payload, _ := json.Marshal(events.StatusPayload{
			Type:             events.EventTypeRunStatus,
			RunID:            r.ID,
			Status:           r.Status,
			CurrentIteration: r.CurrentIteration,
			Progress:         r.ProgressPercentage,
		})
		c.Render(http.StatusOK, sse.Event{
			Event: "status",
			Data:  json.RawMessage(payload),
		})
		return
	}

	sub, err := s.hub.Subscribe(c.Request.Context(), events.RunChannel(runID), lastEventID)
	if err != nil {
		s.logger.Error("Failed to subscribe to run channel", "run_id", runID, "error", err)
		c.JSON(http.StatusInternalServerError, errorBody{Error: "INTERNAL", Message: "failed to subscribe"})
		return
	}
	defer sub.Close()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		select {
		case <-c.Request.Context().Done():
			return false
		case msg, ok := <-sub.Events:
			if !ok {
				return false
			}
			var env frameEnvelope
			if err := json.Unmarshal(msg, &env); err != nil {
				s.logger.Warn("Dropping malformed event payload", "run_id", runID, "error", err)
				return true
			}
			typ, ok := wireType[env.Type]
			if !ok {
				return true
			}
			ev := sse.Event{
				Event: typ,
				Data:  json.RawMessage(msg),
			}
			if env.DBEventID > 0 {
				ev.Id = strconv.Itoa(env.DBEventID)
			}
			if err := sse.Encode(w, ev); err != nil {
				return false
			}
			// End the stream once a terminal status frame is out.
			return !(typ == "status" && isTerminalStatus(env.Status))
		}
	})
}

func isTerminalStatus(status string) bool {
	switch status {
	case "converged", "completed", "failed", "cancelled":
		return true
	}
	return false
}
