// Package api provides HTTP adapters for the hexagonal architecture
// These adapters handle incoming HTTP requests and translate them to use cases
package api

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"weatherhistory.app/internal/core/export"
	"weatherhistory.app/internal/core/forecast"
	"weatherhistory.app/internal/core/record"
	"weatherhistory.app/internal/ports"
	"weatherhistory.app/pkg/errors"
)

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Port           int
	AllowedOrigins []string
}

// HTTPServerAdapter implements HTTP server using Gin framework
type HTTPServerAdapter struct {
	router          *gin.Engine
	config          ServerConfig
	recordUseCase   RecordUseCase
	metricsReporter MetricsReporter
	healthChecker   ports.SystemHealthChecker
	prometheus      PrometheusExporter
}

// RecordUseCase is the weather gateway the HTTP adapter depends on
type RecordUseCase interface {
	Create(ctx context.Context, params record.CreateParams) (*record.Record, error)
	List(ctx context.Context) ([]*record.Record, error)
	Get(ctx context.Context, id string) (*record.Record, error)
	Update(ctx context.Context, params record.UpdateParams) (*record.Record, error)
	Delete(ctx context.Context, id string) error
	Export(ctx context.Context, format export.Format, opts export.Options) ([]byte, error)
	Forecast(ctx context.Context, id string, expanded *int64) (*forecast.View, error)
}

// MetricsReporter produces the JSON summary served on /api/metrics
type MetricsReporter interface {
	GetMetrics(ctx context.Context) (map[string]interface{}, error)
}

// PrometheusExporter instruments requests and serves /metrics
type PrometheusExporter interface {
	Middleware() gin.HandlerFunc
	Handler() http.Handler
}

// ServerOptions represents options for creating the HTTP server
type ServerOptions struct {
	Config          ServerConfig
	RecordUseCase   RecordUseCase
	MetricsReporter MetricsReporter
	HealthChecker   ports.SystemHealthChecker
	// Prometheus is optional; without it /metrics serves the default registry
	Prometheus PrometheusExporter
}

// NewHTTPServerAdapter creates a new HTTP server adapter
func NewHTTPServerAdapter(opts ServerOptions) (*HTTPServerAdapter, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	RegisterValidators()

	router := gin.New()
	router.Use(gin.Recovery())
	if opts.Prometheus != nil {
		router.Use(opts.Prometheus.Middleware())
	}
	router.Use(cors.New(corsConfig(opts.Config.AllowedOrigins)))

	server := &HTTPServerAdapter{
		router:          router,
		config:          opts.Config,
		recordUseCase:   opts.RecordUseCase,
		metricsReporter: opts.MetricsReporter,
		healthChecker:   opts.HealthChecker,
		prometheus:      opts.Prometheus,
	}

	server.setupRoutes()
	return server, nil
}

// Validate checks if all required dependencies are provided
func (opts *ServerOptions) Validate() error {
	if opts.RecordUseCase == nil {
		return errors.NewValidationError("record use case is required")
	}
	if opts.MetricsReporter == nil {
		return errors.NewValidationError("metrics reporter is required")
	}
	if opts.HealthChecker == nil {
		return errors.NewValidationError("health checker is required")
	}
	return nil
}

// RegisterValidators installs the custom binding tags used by request DTOs
func RegisterValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("location", validateLocation); err != nil {
			slog.Warn("Failed to register location validator", "error", err)
		}
	}
}

// validateLocation accepts an empty value (coordinates are sent instead) or visible text
func validateLocation(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "" || strings.TrimSpace(value) != ""
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	cfg.ExposeHeaders = []string{"Content-Disposition"}

	for _, origin := range origins {
		if origin == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	return cfg
}

// setupRoutes configures all HTTP routes
func (s *HTTPServerAdapter) setupRoutes() {
	api := s.router.Group("/api")
	{
		api.POST("/weather", s.createRecord)
		api.GET("/weather", s.listRecords)
		api.GET("/weather/export", s.exportRecords)
		api.GET("/weather/:id", s.getRecord)
		api.PUT("/weather/:id", s.updateRecord)
		api.DELETE("/weather/:id", s.deleteRecord)
		api.GET("/weather/:id/forecast", s.getForecast)
		api.GET("/health", s.getHealth)
		api.GET("/metrics", s.getMetrics)
	}

	if s.prometheus != nil {
		s.router.GET("/metrics", gin.WrapH(s.prometheus.Handler()))
	} else {
		s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}
}

// GetRouter returns the router for testing purposes
func (s *HTTPServerAdapter) GetRouter() *gin.Engine {
	return s.router
}
