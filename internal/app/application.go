package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"weatherhistory.app/internal/adapters/api"
	"weatherhistory.app/internal/adapters/infrastructure"
	"weatherhistory.app/internal/config"
	"weatherhistory.app/internal/core/record"
	"weatherhistory.app/internal/ports"
)

type Application struct {
	config *config.Config
	deps   *DependencyContainer

	// Use Cases
	recordUseCase *record.UseCase

	// Adapters
	httpServer *http.Server
	router     *gin.Engine

	// Infrastructure
	ports    *ports.ApplicationPorts
	stopChan chan struct{}
	stopOnce sync.Once
}

func NewApplication() (*Application, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	return NewApplicationWithConfig(cfg)
}

// NewApplicationWithConfig wires the application from an already loaded configuration
func NewApplicationWithConfig(cfg *config.Config) (*Application, error) {
	deps, err := NewDependencyContainer(cfg)
	if err != nil {
		return nil, fmt.Errorf("create dependency container: %w", err)
	}

	app := &Application{
		config:   cfg,
		deps:     deps,
		ports:    deps.ApplicationPorts(),
		stopChan: make(chan struct{}),
	}

	if err := app.initializeUseCases(); err != nil {
		_ = deps.Cleanup()
		return nil, fmt.Errorf("initialize use cases: %w", err)
	}

	if err := app.initializeAdapters(); err != nil {
		_ = deps.Cleanup()
		return nil, fmt.Errorf("initialize adapters: %w", err)
	}

	return app, nil
}

func (a *Application) initializeUseCases() error {
	slog.Info("Initializing use cases...")

	recordUseCase, err := record.NewUseCase(record.UseCaseDependencies{
		Repository:      a.ports.RecordRepository,
		WeatherProvider: a.ports.WeatherProvider,
		Logger:          a.ports.Logger,
		Metrics:         a.ports.MetricsCollector,
	})
	if err != nil {
		return fmt.Errorf("create record use case: %w", err)
	}
	a.recordUseCase = recordUseCase

	slog.Info("Use cases initialized successfully")
	return nil
}

func (a *Application) initializeAdapters() error {
	slog.Info("Initializing adapters...")

	metricsReporter := infrastructure.NewMetricsReporterAdapter(infrastructure.MetricsReporterConfig{
		WeatherMetrics: a.ports.WeatherMetrics,
	})

	systemHealthChecker := infrastructure.NewSystemHealthChecker(infrastructure.SystemHealthCheckerConfig{
		DatabaseChecker:   infrastructure.NewDatabaseHealthChecker(a.deps.Database(), string(a.config.Database.Driver)),
		WeatherAPIChecker: infrastructure.NewWeatherAPIHealthChecker(a.ports.WeatherProvider, a.deps.Upstream()),
		CacheChecker:      infrastructure.NewCacheHealthChecker(a.ports.CacheProvider, a.config.Cache.Type.String()),
		ConfigProvider:    a.ports.ConfigProvider,
	})

	httpAdapter, err := api.NewHTTPServerAdapter(api.ServerOptions{
		Config: api.ServerConfig{
			Port:           a.config.Server.Port,
			AllowedOrigins: a.config.Server.AllowedOrigins,
		},
		RecordUseCase:   a.recordUseCase,
		MetricsReporter: metricsReporter,
		HealthChecker:   systemHealthChecker,
		Prometheus:      a.deps.Collector(),
	})
	if err != nil {
		return fmt.Errorf("create HTTP adapter: %w", err)
	}

	a.router = httpAdapter.GetRouter()

	a.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", a.config.Server.Port),
		Handler:      a.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	slog.Info("Adapters initialized successfully")
	return nil
}

func (a *Application) Start(ctx context.Context) error {
	slog.Info("Starting application...")

	go a.startCacheJanitor(ctx)

	slog.Info("Starting HTTP server", "port", a.config.Server.Port)
	if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	return nil
}

// startCacheJanitor evicts expired in-process cache entries; redis expires keys itself
func (a *Application) startCacheJanitor(ctx context.Context) {
	cache, ok := a.ports.CacheProvider.(ports.ExpiringCache)
	if !ok {
		return
	}

	interval := a.ports.ConfigProvider.GetCacheConfig().JanitorInterval
	if interval <= 0 {
		return
	}
	slog.Info("Starting cache janitor...", "interval", interval.String())

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("Cache janitor stopped due to context cancellation")
			return
		case <-a.stopChan:
			slog.Info("Cache janitor stopped")
			return
		case <-ticker.C:
			if purged := cache.PurgeExpired(ctx); purged > 0 {
				slog.Debug("Purged expired cache entries", "count", purged)
			}
		}
	}
}

func (a *Application) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down application...")

	a.stopOnce.Do(func() { close(a.stopChan) })

	if err := a.httpServer.Shutdown(ctx); err != nil {
		slog.Error("Error shutting down HTTP server", "error", err)
		return fmt.Errorf("shutdown HTTP server: %w", err)
	}

	if err := a.deps.Cleanup(); err != nil {
		slog.Warn("Error releasing resources", "error", err)
	}

	slog.Info("Application shutdown complete")
	return nil
}

// Config returns the application configuration
func (a *Application) Config() *config.Config {
	return a.config
}

// GetRouter returns the Gin router for testing
func (a *Application) GetRouter() *gin.Engine {
	return a.router
}

// GetRecordUseCase returns the record use case for testing
func (a *Application) GetRecordUseCase() *record.UseCase {
	return a.recordUseCase
}
