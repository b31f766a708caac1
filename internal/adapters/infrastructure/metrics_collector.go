package infrastructure

import (
	"context"

	"weatherhistory.app/internal/ports"
)

// MetricsReporterAdapter builds the JSON summary served on /api/metrics
type MetricsReporterAdapter struct {
	weatherMetrics ports.WeatherMetrics
}

// MetricsReporterConfig holds configuration for creating the metrics reporter
type MetricsReporterConfig struct {
	WeatherMetrics ports.WeatherMetrics
}

// NewMetricsReporterAdapter creates a new metrics reporter
func NewMetricsReporterAdapter(config MetricsReporterConfig) *MetricsReporterAdapter {
	return &MetricsReporterAdapter{
		weatherMetrics: config.WeatherMetrics,
	}
}

// GetMetrics returns provider information and cache statistics when the cache tracks them
func (m *MetricsReporterAdapter) GetMetrics(ctx context.Context) (map[string]interface{}, error) {
	metrics := map[string]interface{}{
		"weather": m.weatherMetrics.GetProviderInfo(),
	}

	if cacheStats, err := m.weatherMetrics.GetCacheMetrics(); err == nil {
		metrics["cache"] = map[string]interface{}{
			"hits":      cacheStats.Hits,
			"misses":    cacheStats.Misses,
			"total_ops": cacheStats.TotalOps,
			"hit_ratio": cacheStats.HitRatio,
			"updated":   cacheStats.LastUpdated,
		}
	}

	return metrics, nil
}
