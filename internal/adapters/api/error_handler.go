package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	errorspkg "weatherhistory.app/pkg/errors"
)

// Fixed client-facing messages; upstream and store details stay in the logs
const (
	msgCreateFailed = "Failed to fetch or save data"
	msgFetchFailed  = "Failed to fetch data"
	msgUpdateFailed = "Failed to update data"
	msgDeleteFailed = "Failed to delete data"
	msgExportFailed = "Failed to export data"
	msgInvalidBody  = "Invalid request format"
)

// ErrorResponse represents an error message structure for API responses
type ErrorResponse struct {
	Error string `json:"error"`
}

// handleError maps application errors to responses. Validation failures keep their message,
// NotFound is only surfaced on reads, everything else collapses to the operation's fallback.
func (s *HTTPServerAdapter) handleError(c *gin.Context, err error, fallback string) {
	var appErr *errorspkg.AppError
	if errors.As(err, &appErr) {
		switch appErr.Type {
		case errorspkg.ValidationError:
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: appErr.Message})
			return
		case errorspkg.NotFoundError:
			if c.Request.Method == http.MethodGet {
				c.JSON(http.StatusNotFound, ErrorResponse{Error: appErr.Message})
				return
			}
		}
	}

	slog.Error("Request failed",
		"method", c.Request.Method,
		"path", c.FullPath(),
		"error", err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: fallback})
}

// getMetrics handles GET /api/metrics requests
func (s *HTTPServerAdapter) getMetrics(c *gin.Context) {
	metrics, err := s.metricsReporter.GetMetrics(c.Request.Context())
	if err != nil {
		s.handleError(c, err, msgFetchFailed)
		return
	}

	c.JSON(http.StatusOK, metrics)
}

// getHealth handles GET /api/health requests
func (s *HTTPServerAdapter) getHealth(c *gin.Context) {
	results := s.healthChecker.CheckAll(c.Request.Context())

	status, code := "healthy", http.StatusOK
	for _, component := range results {
		if !component.IsHealthy() {
			status, code = "unhealthy", http.StatusServiceUnavailable
			break
		}
	}

	c.JSON(code, gin.H{"status": status, "components": results})
}
