package external

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"weatherhistory.app/internal/ports"
	"weatherhistory.app/pkg/errors"
)

// CachedWeatherProvider serves repeated upstream lookups from a generic CacheProvider.
// Only successful responses are cached; errors always reach the caller.
type CachedWeatherProvider struct {
	provider ports.WeatherProvider
	cache    ports.CacheProvider
	config   ports.ConfigProvider
	metrics  ports.MetricsCollector
	logger   ports.Logger
}

// CachedWeatherProviderParams holds parameters for creating the caching decorator
type CachedWeatherProviderParams struct {
	Provider ports.WeatherProvider
	Cache    ports.CacheProvider
	Config   ports.ConfigProvider
	Metrics  ports.MetricsCollector
	Logger   ports.Logger
}

// NewCachedWeatherProvider creates a weather provider backed by the given cache
func NewCachedWeatherProvider(params CachedWeatherProviderParams) (ports.WeatherProvider, error) {
	if params.Provider == nil {
		return nil, errors.NewValidationError("weather provider is required")
	}
	if params.Cache == nil {
		return nil, errors.NewValidationError("cache provider is required")
	}
	if params.Config == nil {
		return nil, errors.NewValidationError("config provider is required")
	}
	if params.Metrics == nil {
		return nil, errors.NewValidationError("metrics collector is required")
	}
	if params.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	return &CachedWeatherProvider{
		provider: params.Provider,
		cache:    params.Cache,
		config:   params.Config,
		metrics:  params.Metrics,
		logger:   params.Logger,
	}, nil
}

func (c *CachedWeatherProvider) ForecastByName(ctx context.Context, name string) (ports.Payload, error) {
	key := "forecast:name:" + strings.ToLower(strings.TrimSpace(name))
	return cached(ctx, c, key, func() (ports.Payload, error) {
		return c.provider.ForecastByName(ctx, name)
	})
}

func (c *CachedWeatherProvider) ForecastByCoordinates(ctx context.Context, coords ports.Coordinates) (ports.Payload, error) {
	return cached(ctx, c, "forecast:coords:"+coordKey(coords), func() (ports.Payload, error) {
		return c.provider.ForecastByCoordinates(ctx, coords)
	})
}

func (c *CachedWeatherProvider) ReverseGeocode(ctx context.Context, coords ports.Coordinates) ([]ports.Place, error) {
	return cached(ctx, c, "geo:reverse:"+coordKey(coords), func() ([]ports.Place, error) {
		return c.provider.ReverseGeocode(ctx, coords)
	})
}

func (c *CachedWeatherProvider) AirQuality(ctx context.Context, coords ports.Coordinates) (ports.Payload, error) {
	return cached(ctx, c, "air:"+coordKey(coords), func() (ports.Payload, error) {
		return c.provider.AirQuality(ctx, coords)
	})
}

func (c *CachedWeatherProvider) GetProviderName() string {
	return c.provider.GetProviderName()
}

func cached[T any](ctx context.Context, c *CachedWeatherProvider, key string, load func() (T, error)) (T, error) {
	weatherConfig := c.config.GetWeatherConfig()
	if !weatherConfig.EnableCache {
		return load()
	}
	cacheType := c.config.GetCacheConfig().Type

	if data, err := c.cache.Get(ctx, key); err == nil {
		var value T
		if err := json.Unmarshal(data, &value); err == nil {
			c.metrics.RecordCacheHit(ctx, cacheType)
			c.logger.Debug("Weather payload served from cache", ports.F("key", key))
			return value, nil
		}
		c.logger.Warn("Discarding undecodable cache entry", ports.F("key", key))
	} else if !errors.IsNotFoundError(err) {
		c.logger.Warn("Cache lookup failed", ports.F("key", key), ports.F("error", err))
	}
	c.metrics.RecordCacheMiss(ctx, cacheType)

	value, err := load()
	if err != nil {
		return value, err
	}

	data, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn("Failed to serialize weather payload", ports.F("key", key), ports.F("error", err))
		return value, nil
	}
	if err := c.cache.Set(ctx, key, data, weatherConfig.CacheTTL); err != nil {
		c.logger.Warn("Failed to cache weather payload", ports.F("key", key), ports.F("error", err))
	}

	return value, nil
}

func coordKey(coords ports.Coordinates) string {
	return fmt.Sprintf("%.4f,%.4f", coords.Lat, coords.Lon)
}
