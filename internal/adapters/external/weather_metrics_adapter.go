package external

import (
	"time"

	"weatherhistory.app/internal/ports"
)

// BreakerStateReporter exposes the upstream circuit breaker state
type BreakerStateReporter interface {
	BreakerState() string
}

// WeatherMetricsAdapter implements WeatherMetrics port
type WeatherMetricsAdapter struct {
	cache    ports.CacheProvider
	provider ports.WeatherProvider
	breaker  BreakerStateReporter
	config   ports.ConfigProvider
}

// NewWeatherMetricsAdapter creates a new weather metrics adapter. breaker may be nil.
func NewWeatherMetricsAdapter(cache ports.CacheProvider, provider ports.WeatherProvider, breaker BreakerStateReporter, config ports.ConfigProvider) ports.WeatherMetrics {
	return &WeatherMetricsAdapter{
		cache:    cache,
		provider: provider,
		breaker:  breaker,
		config:   config,
	}
}

// GetProviderInfo returns provider information
func (m *WeatherMetricsAdapter) GetProviderInfo() map[string]interface{} {
	weatherConfig := m.config.GetWeatherConfig()

	info := map[string]interface{}{
		"provider":      m.provider.GetProviderName(),
		"cache_enabled": weatherConfig.EnableCache,
		"cache_type":    m.config.GetCacheConfig().Type,
		"cache_ttl":     weatherConfig.CacheTTL.String(),
		"status":        "active",
	}
	if m.breaker != nil {
		state := m.breaker.BreakerState()
		info["circuit_breaker"] = state
		if state == "open" {
			info["status"] = "degraded"
		}
	}

	return info
}

// GetCacheMetrics returns cache performance metrics
func (m *WeatherMetricsAdapter) GetCacheMetrics() (ports.CacheStats, error) {
	if cacheWithStats, ok := m.cache.(interface{ GetStats() ports.CacheStats }); ok {
		return cacheWithStats.GetStats(), nil
	}

	return ports.CacheStats{
		LastUpdated: time.Now(),
	}, nil
}
