// Package external provides adapters for external services
// These adapters implement ports for the weather provider and the payload caches.
package external

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sony/gobreaker"
	"weatherhistory.app/internal/ports"
	"weatherhistory.app/pkg/errors"
)

const (
	defaultOpenWeatherMapBaseURL = "https://api.openweathermap.org/data/2.5"
	defaultOpenWeatherMapGeoURL  = "https://api.openweathermap.org/geo/1.0"
)

// HTTPClient interface for HTTP requests (for testing)
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// OpenWeatherMapProviderAdapter implements WeatherProvider port for OpenWeatherMap.
// Every call goes through a circuit breaker; there are no retries.
type OpenWeatherMapProviderAdapter struct {
	apiKey  string
	baseURL string
	geoURL  string
	client  HTTPClient
	breaker *gobreaker.CircuitBreaker
	logger  ports.Logger
}

// OpenWeatherMapProviderParams holds parameters for creating OpenWeatherMap provider
type OpenWeatherMapProviderParams struct {
	APIKey          string
	BaseURL         string
	GeoURL          string
	Timeout         time.Duration
	BreakerFailures uint32
	BreakerTimeout  time.Duration
	Client          HTTPClient
	Logger          ports.Logger
}

// NewOpenWeatherMapProviderAdapter creates a new OpenWeatherMap provider adapter
func NewOpenWeatherMapProviderAdapter(params OpenWeatherMapProviderParams) *OpenWeatherMapProviderAdapter {
	baseURL := params.BaseURL
	if baseURL == "" {
		baseURL = defaultOpenWeatherMapBaseURL
	}
	geoURL := params.GeoURL
	if geoURL == "" {
		geoURL = defaultOpenWeatherMapGeoURL
	}

	timeout := params.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	client := params.Client
	if client == nil {
		client = &http.Client{Timeout: timeout}
	}

	failures := params.BreakerFailures
	if failures == 0 {
		failures = 5
	}
	logger := params.Logger

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "openweathermap",
		MaxRequests: 1,
		Timeout:     params.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		// an unknown city is an answer, not an outage
		IsSuccessful: func(err error) bool {
			return err == nil || errors.IsNotFoundError(err)
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			if logger != nil {
				logger.Warn("Circuit breaker state changed",
					ports.F("provider", name),
					ports.F("from", from.String()),
					ports.F("to", to.String()))
			}
		},
	})

	return &OpenWeatherMapProviderAdapter{
		apiKey:  params.APIKey,
		baseURL: baseURL,
		geoURL:  geoURL,
		client:  client,
		breaker: breaker,
		logger:  logger,
	}
}

// ForecastByName retrieves the 5 day / 3 hour forecast for a place name
func (p *OpenWeatherMapProviderAdapter) ForecastByName(ctx context.Context, name string) (ports.Payload, error) {
	if name == "" {
		return nil, errors.NewValidationError("city cannot be empty")
	}

	var payload ports.Payload
	if err := p.getJSON(ctx, p.baseURL+"/forecast", url.Values{"q": {name}}, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// ForecastByCoordinates retrieves the 5 day / 3 hour forecast for a coordinate pair
func (p *OpenWeatherMapProviderAdapter) ForecastByCoordinates(ctx context.Context, coords ports.Coordinates) (ports.Payload, error) {
	var payload ports.Payload
	if err := p.getJSON(ctx, p.baseURL+"/forecast", coordinateParams(coords), &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// ReverseGeocode resolves coordinates to at most one named place
func (p *OpenWeatherMapProviderAdapter) ReverseGeocode(ctx context.Context, coords ports.Coordinates) ([]ports.Place, error) {
	params := coordinateParams(coords)
	params.Set("limit", "1")

	var places []ports.Place
	if err := p.getJSON(ctx, p.geoURL+"/reverse", params, &places); err != nil {
		return nil, err
	}
	return places, nil
}

// AirQuality retrieves current air pollution for a coordinate pair
func (p *OpenWeatherMapProviderAdapter) AirQuality(ctx context.Context, coords ports.Coordinates) (ports.Payload, error) {
	var payload ports.Payload
	if err := p.getJSON(ctx, p.baseURL+"/air_pollution", coordinateParams(coords), &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// GetProviderName returns the name of this weather provider
func (p *OpenWeatherMapProviderAdapter) GetProviderName() string {
	return "openweathermap"
}

// BreakerState reports the circuit breaker state: closed, half-open or open
func (p *OpenWeatherMapProviderAdapter) BreakerState() string {
	return p.breaker.State().String()
}

func (p *OpenWeatherMapProviderAdapter) getJSON(ctx context.Context, endpoint string, params url.Values, out interface{}) error {
	params.Set("appid", p.apiKey)

	body, err := p.breaker.Execute(func() (interface{}, error) {
		return p.fetch(ctx, endpoint+"?"+params.Encode())
	})
	if err != nil {
		if stderrors.Is(err, gobreaker.ErrOpenState) || stderrors.Is(err, gobreaker.ErrTooManyRequests) {
			return errors.NewExternalAPIError("OpenWeatherMap temporarily unavailable", err)
		}
		return err
	}

	if err := json.Unmarshal(body.([]byte), out); err != nil {
		return errors.NewExternalAPIError("failed to decode OpenWeatherMap response", err)
	}
	return nil
}

func (p *OpenWeatherMapProviderAdapter) fetch(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, errors.NewExternalAPIError("failed to build OpenWeatherMap request", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, errors.NewExternalAPIError("failed to call OpenWeatherMap", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil && p.logger != nil {
			p.logger.Warn("Failed to close OpenWeatherMap response body", ports.F("error", closeErr))
		}
	}()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, errors.NewNotFoundError("location not found")
	case http.StatusUnauthorized:
		return nil, errors.NewExternalAPIError("OpenWeatherMap rejected the API key", nil)
	case http.StatusTooManyRequests:
		return nil, errors.NewExternalAPIError("OpenWeatherMap rate limit exceeded", nil)
	default:
		return nil, errors.NewExternalAPIError(fmt.Sprintf("OpenWeatherMap returned status %d", resp.StatusCode), nil)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.NewExternalAPIError("failed to read OpenWeatherMap response", err)
	}
	return body, nil
}

func coordinateParams(coords ports.Coordinates) url.Values {
	return url.Values{
		"lat": {strconv.FormatFloat(coords.Lat, 'f', -1, 64)},
		"lon": {strconv.FormatFloat(coords.Lon, 'f', -1, 64)},
	}
}
