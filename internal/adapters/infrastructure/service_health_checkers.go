package infrastructure

import (
	"context"
	"time"

	"weatherhistory.app/internal/ports"
)

// CircuitStateReporter exposes the upstream circuit breaker state
type CircuitStateReporter interface {
	BreakerState() string
}

// WeatherAPIHealthChecker reports the upstream provider as unhealthy while its breaker is open.
// It never calls the upstream API itself.
type WeatherAPIHealthChecker struct {
	provider ports.WeatherProvider
	breaker  CircuitStateReporter
}

// NewWeatherAPIHealthChecker creates a new weather API health checker
func NewWeatherAPIHealthChecker(provider ports.WeatherProvider, breaker CircuitStateReporter) *WeatherAPIHealthChecker {
	return &WeatherAPIHealthChecker{provider: provider, breaker: breaker}
}

// Check reports provider availability
func (w *WeatherAPIHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "weatherAPI",
		Status:    "healthy",
		Details:   make(map[string]interface{}),
	}

	if w.provider == nil {
		status.Status = "unhealthy"
		status.Error = "weather provider is not available"
		return status
	}
	status.Details["provider"] = w.provider.GetProviderName()

	if w.breaker != nil {
		state := w.breaker.BreakerState()
		status.Details["circuit_breaker"] = state
		if state == "open" {
			status.Status = "unhealthy"
			status.Error = "circuit breaker is open"
		}
	}

	return status
}

const cacheProbeKey = "health:probe"

// CacheHealthChecker round-trips a probe key through the payload cache
type CacheHealthChecker struct {
	cache     ports.CacheProvider
	cacheType string
}

// NewCacheHealthChecker creates a new cache health checker
func NewCacheHealthChecker(cache ports.CacheProvider, cacheType string) *CacheHealthChecker {
	return &CacheHealthChecker{cache: cache, cacheType: cacheType}
}

// Check writes and reads back a short-lived probe value
func (c *CacheHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "cache",
		Details:   map[string]interface{}{"type": c.cacheType},
	}

	if c.cache == nil {
		status.Status = "unhealthy"
		status.Error = "cache provider is not available"
		return status
	}

	start := time.Now()
	if err := c.cache.Set(ctx, cacheProbeKey, []byte("ok"), time.Minute); err != nil {
		status.Status = "unhealthy"
		status.Error = err.Error()
		return status
	}
	if _, err := c.cache.Get(ctx, cacheProbeKey); err != nil {
		status.Status = "unhealthy"
		status.Error = err.Error()
		return status
	}

	status.Status = "healthy"
	status.Details["latency_ms"] = time.Since(start).Milliseconds()
	return status
}
