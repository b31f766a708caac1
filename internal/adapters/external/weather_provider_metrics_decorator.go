package external

import (
	"context"
	"time"

	"weatherhistory.app/internal/ports"
)

// WeatherProviderMetricsDecorator records the outcome and latency of every upstream call
type WeatherProviderMetricsDecorator struct {
	provider ports.WeatherProvider
	metrics  ports.MetricsCollector
}

// NewWeatherProviderMetricsDecorator creates a new metrics decorator for weather providers
func NewWeatherProviderMetricsDecorator(provider ports.WeatherProvider, metrics ports.MetricsCollector) ports.WeatherProvider {
	return &WeatherProviderMetricsDecorator{
		provider: provider,
		metrics:  metrics,
	}
}

func (d *WeatherProviderMetricsDecorator) ForecastByName(ctx context.Context, name string) (ports.Payload, error) {
	start := time.Now()
	payload, err := d.provider.ForecastByName(ctx, name)
	d.metrics.RecordWeatherAPICall(ctx, "forecast", err == nil, time.Since(start))
	return payload, err
}

func (d *WeatherProviderMetricsDecorator) ForecastByCoordinates(ctx context.Context, coords ports.Coordinates) (ports.Payload, error) {
	start := time.Now()
	payload, err := d.provider.ForecastByCoordinates(ctx, coords)
	d.metrics.RecordWeatherAPICall(ctx, "forecast", err == nil, time.Since(start))
	return payload, err
}

func (d *WeatherProviderMetricsDecorator) ReverseGeocode(ctx context.Context, coords ports.Coordinates) ([]ports.Place, error) {
	start := time.Now()
	places, err := d.provider.ReverseGeocode(ctx, coords)
	d.metrics.RecordWeatherAPICall(ctx, "reverse_geocode", err == nil, time.Since(start))
	return places, err
}

func (d *WeatherProviderMetricsDecorator) AirQuality(ctx context.Context, coords ports.Coordinates) (ports.Payload, error) {
	start := time.Now()
	payload, err := d.provider.AirQuality(ctx, coords)
	d.metrics.RecordWeatherAPICall(ctx, "air_quality", err == nil, time.Since(start))
	return payload, err
}

func (d *WeatherProviderMetricsDecorator) GetProviderName() string {
	return d.provider.GetProviderName()
}
