package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vi3318/Research-AI-sub000/pkg/services"
)

// errorBody is the uniform error response shape.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// respondServiceError maps service-layer errors to HTTP responses.
func (s *Server) respondServiceError(c *gin.Context, err error) {
	var validErr *services.ValidationError
	switch {
	case errors.As(err, &validErr):
		c.JSON(http.StatusBadRequest, errorBody{Error: "VALIDATION", Message: validErr.Error()})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, errorBody{Error: "NOT_FOUND", Message: "resource not found"})
	case errors.Is(err, services.ErrConflict), errors.Is(err, services.ErrTerminal):
		c.JSON(http.StatusConflict, errorBody{Error: "ERR_CONFLICT", Message: err.Error()})
	case errors.Is(err, services.ErrAlreadyExists):
		c.JSON(http.StatusConflict, errorBody{Error: "ALREADY_EXISTS", Message: err.Error()})
	default:
		s.logger.Error("Unexpected service error", "error", err)
		c.JSON(http.StatusInternalServerError, errorBody{Error: "INTERNAL", Message: "internal server error"})
	}
}
