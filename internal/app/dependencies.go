package app

import (
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"weatherhistory.app/internal/adapters/database"
	"weatherhistory.app/internal/adapters/external"
	"weatherhistory.app/internal/adapters/infrastructure"
	"weatherhistory.app/internal/config"
	"weatherhistory.app/internal/metrics"
	"weatherhistory.app/internal/ports"
)

// DependencyContainer builds and owns every adapter behind the application ports
type DependencyContainer struct {
	config     *config.Config
	db         *gorm.DB
	ports      *ports.ApplicationPorts
	upstream   *external.OpenWeatherMapProviderAdapter
	collector  *metrics.Collector
	fileLogger *infrastructure.FileLoggerAdapter
}

func NewDependencyContainer(cfg *config.Config) (*DependencyContainer, error) {
	container := &DependencyContainer{
		config:    cfg,
		collector: metrics.NewCollector(),
	}

	if err := container.initializeDatabase(); err != nil {
		return nil, fmt.Errorf("initialize database: %w", err)
	}

	if err := container.initializePorts(); err != nil {
		_ = container.Cleanup()
		return nil, fmt.Errorf("initialize ports: %w", err)
	}

	return container, nil
}

func (c *DependencyContainer) initializeDatabase() error {
	slog.Info("Initializing database connection...", "driver", string(c.config.Database.Driver))

	db, err := openDatabase(c.config.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}

	if err := c.runMigrations(db); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	c.db = db
	slog.Info("Database connection established successfully")
	return nil
}

func openDatabase(cfg config.DatabaseConfig) (*gorm.DB, error) {
	gormConfig := &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Warn)}

	switch cfg.Driver {
	case config.DriverSQLite:
		db, err := gorm.Open(sqlite.Open(cfg.GetDSN()), gormConfig)
		if err != nil {
			return nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		// sqlite allows a single writer
		sqlDB.SetMaxOpenConns(1)
		return db, nil
	default:
		return gorm.Open(postgres.Open(cfg.GetDSN()), gormConfig)
	}
}

func (c *DependencyContainer) runMigrations(db *gorm.DB) error {
	slog.Info("Running database migrations...")

	if err := db.AutoMigrate(&database.RecordModel{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	slog.Info("Database migrations completed successfully")
	return nil
}

func (c *DependencyContainer) initializePorts() error {
	slog.Info("Initializing ports...")

	var logger ports.Logger = infrastructure.NewSlogLoggerAdapter(nil)
	configProvider := infrastructure.NewConfigProviderAdapter(c.config)
	weatherCfg := c.config.Weather

	c.upstream = external.NewOpenWeatherMapProviderAdapter(external.OpenWeatherMapProviderParams{
		APIKey:          weatherCfg.OpenWeatherMapKey,
		BaseURL:         weatherCfg.OpenWeatherMapBaseURL,
		GeoURL:          weatherCfg.OpenWeatherMapGeoURL,
		Timeout:         time.Duration(weatherCfg.HTTPTimeoutSeconds) * time.Second,
		BreakerFailures: weatherCfg.BreakerFailures,
		BreakerTimeout:  time.Duration(weatherCfg.BreakerTimeoutSeconds) * time.Second,
		Logger:          logger,
	})

	var provider ports.WeatherProvider = external.NewWeatherProviderMetricsDecorator(c.upstream, c.collector)

	if weatherCfg.EnableLogging {
		var providerLogger ports.Logger = logger
		if weatherCfg.LogFilePath != "" {
			fileLogger, err := infrastructure.NewFileLoggerAdapter(weatherCfg.LogFilePath)
			if err != nil {
				slog.Warn("Failed to create file logger, falling back to slog", "error", err)
			} else {
				c.fileLogger = fileLogger
				providerLogger = fileLogger
				slog.Info("File logging enabled", "path", weatherCfg.LogFilePath)
			}
		}
		provider = external.NewWeatherProviderLoggingDecorator(provider, providerLogger)
		slog.Info("Weather provider logging enabled")
	}

	cache, err := external.NewCacheProviderFactory().CreateCacheProvider(&c.config.Cache)
	if err != nil {
		slog.Error("Failed to create cache provider", "error", err)
		return fmt.Errorf("create cache provider: %w", err)
	}
	slog.Info("Cache provider initialized",
		"type", c.config.Cache.Type.String(),
		"enabled", weatherCfg.EnableCache)

	provider, err = external.NewCachedWeatherProvider(external.CachedWeatherProviderParams{
		Provider: provider,
		Cache:    cache,
		Config:   configProvider,
		Metrics:  c.collector,
		Logger:   logger,
	})
	if err != nil {
		return fmt.Errorf("create cached weather provider: %w", err)
	}

	c.ports = &ports.ApplicationPorts{
		WeatherProvider:  provider,
		WeatherMetrics:   external.NewWeatherMetricsAdapter(cache, provider, c.upstream, configProvider),
		RecordRepository: database.NewRecordRepositoryAdapter(c.db),
		CacheProvider:    cache,
		MetricsCollector: c.collector,
		ConfigProvider:   configProvider,
		Logger:           logger,
		Database:         c.db,
	}
	if cacheMetrics, ok := cache.(ports.CacheMetrics); ok {
		c.ports.CacheMetrics = cacheMetrics
	}

	slog.Info("Ports initialized successfully")
	return nil
}

func (c *DependencyContainer) ApplicationPorts() *ports.ApplicationPorts {
	return c.ports
}

func (c *DependencyContainer) Database() *gorm.DB {
	return c.db
}

// Upstream returns the raw OpenWeatherMap client; its breaker state feeds health and metrics
func (c *DependencyContainer) Upstream() *external.OpenWeatherMapProviderAdapter {
	return c.upstream
}

// Collector returns the Prometheus collector shared by the server and the adapters
func (c *DependencyContainer) Collector() *metrics.Collector {
	return c.collector
}

// Cleanup releases the file logger, the cache connection and the database
func (c *DependencyContainer) Cleanup() error {
	if c.fileLogger != nil {
		if err := c.fileLogger.Close(); err != nil {
			slog.Warn("Error closing weather log file", "error", err)
		}
	}
	if c.ports != nil {
		if closer, ok := c.ports.CacheProvider.(interface{ Close() error }); ok {
			if err := closer.Close(); err != nil {
				slog.Warn("Error closing cache", "error", err)
			}
		}
	}
	if c.db != nil {
		if db, err := c.db.DB(); err == nil {
			return db.Close()
		}
	}
	return nil
}
