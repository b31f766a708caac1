package api

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"weatherhistory.app/pkg/errors"
)

func TestHTTPServerAdapter_HandleError(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		err      error
		wantCode int
		wantMsg  string
	}{
		{
			name:     "ValidationKeepsMessage",
			method:   http.MethodPost,
			err:      errors.NewValidationError("location cannot be empty"),
			wantCode: http.StatusBadRequest,
			wantMsg:  "location cannot be empty",
		},
		{
			name:     "WrappedValidation",
			method:   http.MethodPut,
			err:      fmt.Errorf("update weather record: %w", errors.NewValidationError("invalid update")),
			wantCode: http.StatusBadRequest,
			wantMsg:  "invalid update",
		},
		{
			name:     "NotFoundOnRead",
			method:   http.MethodGet,
			err:      fmt.Errorf("get weather record x: %w", errors.NewNotFoundError("weather record not found")),
			wantCode: http.StatusNotFound,
			wantMsg:  "weather record not found",
		},
		{
			name:     "NotFoundOnWrite",
			method:   http.MethodPut,
			err:      errors.NewNotFoundError("weather record not found"),
			wantCode: http.StatusInternalServerError,
			wantMsg:  "fallback",
		},
		{
			name:     "ExternalAPI",
			method:   http.MethodPost,
			err:      errors.NewExternalAPIError("OpenWeatherMap rate limit exceeded", nil),
			wantCode: http.StatusInternalServerError,
			wantMsg:  "fallback",
		},
		{
			name:     "Database",
			method:   http.MethodGet,
			err:      errors.NewDatabaseError("connection refused", nil),
			wantCode: http.StatusInternalServerError,
			wantMsg:  "fallback",
		},
		{
			name:     "PlainError",
			method:   http.MethodDelete,
			err:      stderrors.New("boom"),
			wantCode: http.StatusInternalServerError,
			wantMsg:  "fallback",
		},
	}

	gin.SetMode(gin.TestMode)
	server := &HTTPServerAdapter{}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Handle(tt.method, "/test", func(c *gin.Context) {
				server.handleError(c, tt.err, "fallback")
			})

			w := do(router, tt.method, "/test", "")

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Equal(t, tt.wantMsg, errorBody(t, w))
		})
	}
}
