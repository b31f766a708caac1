package infrastructure

import (
	"context"
	"sync"

	"weatherhistory.app/internal/ports"
)

// SystemHealthChecker aggregates all health checks
type SystemHealthChecker struct {
	checkers       map[string]ports.HealthChecker
	configProvider ports.ConfigProvider
}

// SystemHealthCheckerConfig holds the configuration for creating a system health checker
type SystemHealthCheckerConfig struct {
	DatabaseChecker   ports.HealthChecker
	WeatherAPIChecker ports.HealthChecker
	CacheChecker      ports.HealthChecker
	ConfigProvider    ports.ConfigProvider
}

// NewSystemHealthChecker creates a new system health checker
func NewSystemHealthChecker(config SystemHealthCheckerConfig) *SystemHealthChecker {
	checkers := make(map[string]ports.HealthChecker)
	if config.DatabaseChecker != nil {
		checkers["database"] = config.DatabaseChecker
	}
	if config.WeatherAPIChecker != nil {
		checkers["weatherAPI"] = config.WeatherAPIChecker
	}
	if config.CacheChecker != nil {
		checkers["cache"] = config.CacheChecker
	}

	return &SystemHealthChecker{
		checkers:       checkers,
		configProvider: config.ConfigProvider,
	}
}

// CheckAll runs every component check concurrently
func (s *SystemHealthChecker) CheckAll(ctx context.Context) map[string]ports.HealthStatus {
	results := make(map[string]ports.HealthStatus, len(s.checkers)+1)
	var mu sync.Mutex
	var wg sync.WaitGroup

	for name, checker := range s.checkers {
		wg.Add(1)
		go func(name string, checker ports.HealthChecker) {
			defer wg.Done()
			status := checker.Check(ctx)
			mu.Lock()
			results[name] = status
			mu.Unlock()
		}(name, checker)
	}
	wg.Wait()

	if s.configProvider != nil {
		weather := s.configProvider.GetWeatherConfig()
		results["config"] = ports.HealthStatus{
			Component: "config",
			Status:    "healthy",
			Details: map[string]interface{}{
				"database_driver": s.configProvider.GetDatabaseConfig().Driver,
				"cache_type":      s.configProvider.GetCacheConfig().Type,
				"cache_enabled":   weather.EnableCache,
				"cache_ttl":       weather.CacheTTL.String(),
			},
		}
	}

	return results
}

// Healthy reports whether every component in results is healthy
func Healthy(results map[string]ports.HealthStatus) bool {
	for _, status := range results {
		if !status.IsHealthy() {
			return false
		}
	}
	return true
}
