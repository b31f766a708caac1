package external

import (
	"context"
	"time"

	"weatherhistory.app/internal/ports"
)

// WeatherProviderLoggingDecorator decorates weather providers with structured logging
type WeatherProviderLoggingDecorator struct {
	provider ports.WeatherProvider
	logger   ports.Logger
}

// NewWeatherProviderLoggingDecorator creates a new logging decorator for weather providers
func NewWeatherProviderLoggingDecorator(provider ports.WeatherProvider, logger ports.Logger) ports.WeatherProvider {
	return &WeatherProviderLoggingDecorator{
		provider: provider,
		logger:   logger,
	}
}

// ForecastByName wraps the provider call with structured logging
func (d *WeatherProviderLoggingDecorator) ForecastByName(ctx context.Context, name string) (ports.Payload, error) {
	done := d.start("forecast", ports.F("city", name))
	payload, err := d.provider.ForecastByName(ctx, name)
	done(err, ports.F("city", name))
	return payload, err
}

// ForecastByCoordinates wraps the provider call with structured logging
func (d *WeatherProviderLoggingDecorator) ForecastByCoordinates(ctx context.Context, coords ports.Coordinates) (ports.Payload, error) {
	done := d.start("forecast", coordFields(coords)...)
	payload, err := d.provider.ForecastByCoordinates(ctx, coords)
	done(err, coordFields(coords)...)
	return payload, err
}

// ReverseGeocode wraps the provider call with structured logging
func (d *WeatherProviderLoggingDecorator) ReverseGeocode(ctx context.Context, coords ports.Coordinates) ([]ports.Place, error) {
	done := d.start("reverse_geocode", coordFields(coords)...)
	places, err := d.provider.ReverseGeocode(ctx, coords)
	done(err, append(coordFields(coords), ports.F("places", len(places)))...)
	return places, err
}

// AirQuality wraps the provider call with structured logging
func (d *WeatherProviderLoggingDecorator) AirQuality(ctx context.Context, coords ports.Coordinates) (ports.Payload, error) {
	done := d.start("air_quality", coordFields(coords)...)
	payload, err := d.provider.AirQuality(ctx, coords)
	done(err, coordFields(coords)...)
	return payload, err
}

// GetProviderName returns the name of the wrapped provider with logging indication
func (d *WeatherProviderLoggingDecorator) GetProviderName() string {
	return "logged(" + d.provider.GetProviderName() + ")"
}

// start logs the request and returns a function that logs its outcome
func (d *WeatherProviderLoggingDecorator) start(operation string, fields ...ports.Field) func(err error, fields ...ports.Field) {
	providerName := d.provider.GetProviderName()

	d.logger.Info("Weather API request started", append([]ports.Field{
		ports.F("provider", providerName),
		ports.F("operation", operation),
		ports.F("event", "request"),
	}, fields...)...)

	startTime := time.Now()

	return func(err error, fields ...ports.Field) {
		duration := time.Since(startTime)
		base := []ports.Field{
			ports.F("provider", providerName),
			ports.F("operation", operation),
			ports.F("duration_ms", duration.Milliseconds()),
		}

		if err != nil {
			d.logger.Error("Weather API request failed", append(append(base,
				ports.F("event", "error"),
				ports.F("error", err.Error())), fields...)...)
			return
		}

		d.logger.Info("Weather API request completed", append(append(base,
			ports.F("event", "response")), fields...)...)
	}
}

func coordFields(coords ports.Coordinates) []ports.Field {
	return []ports.Field{ports.F("lat", coords.Lat), ports.F("lon", coords.Lon)}
}
