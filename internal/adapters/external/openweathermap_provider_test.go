package external

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherhistory.app/internal/ports"
	"weatherhistory.app/internal/testutil/owmstub"
	"weatherhistory.app/pkg/errors"
)

func newStubProvider(t *testing.T, failures uint32) (*owmstub.Server, *OpenWeatherMapProviderAdapter) {
	t.Helper()

	stub := owmstub.StartServer(t)
	provider := NewOpenWeatherMapProviderAdapter(OpenWeatherMapProviderParams{
		APIKey:          owmstub.APIKey,
		BaseURL:         stub.BaseURL(),
		GeoURL:          stub.GeoURL(),
		Timeout:         2 * time.Second,
		BreakerFailures: failures,
		BreakerTimeout:  time.Minute,
		Logger:          &recordingLogger{},
	})
	return stub, provider
}

func TestOpenWeatherMapProvider_ForecastByName(t *testing.T) {
	_, provider := newStubProvider(t, 5)

	payload, err := provider.ForecastByName(context.Background(), "London")

	require.NoError(t, err)
	assert.Equal(t, "200", payload["cod"])
	city, ok := payload["city"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "London", city["name"])
	list, ok := payload["list"].([]interface{})
	require.True(t, ok)
	assert.Len(t, list, 40)
}

func TestOpenWeatherMapProvider_ForecastByName_NotFound(t *testing.T) {
	_, provider := newStubProvider(t, 5)

	_, err := provider.ForecastByName(context.Background(), "Atlantis")
	assert.True(t, errors.IsNotFoundError(err))

	_, err = provider.ForecastByName(context.Background(), "")
	assert.True(t, errors.IsValidationError(err))
}

func TestOpenWeatherMapProvider_Coordinates(t *testing.T) {
	stub, provider := newStubProvider(t, 5)
	ctx := context.Background()
	kyiv := ports.Coordinates{Lat: 50.45, Lon: 30.52}

	payload, err := provider.ForecastByCoordinates(ctx, kyiv)
	require.NoError(t, err)
	assert.NotEmpty(t, payload["list"])

	places, err := provider.ReverseGeocode(ctx, kyiv)
	require.NoError(t, err)
	require.Len(t, places, 1)
	assert.Equal(t, "Kyiv", places[0].Name)
	assert.Equal(t, "UA", places[0].Country)

	places, err = provider.ReverseGeocode(ctx, ports.Coordinates{Lat: 0, Lon: -30})
	require.NoError(t, err)
	assert.Empty(t, places)

	air, err := provider.AirQuality(ctx, kyiv)
	require.NoError(t, err)
	assert.NotEmpty(t, air["list"])

	assert.Equal(t, 1, stub.Calls(owmstub.EndpointForecast))
	assert.Equal(t, 2, stub.Calls(owmstub.EndpointReverse))
	assert.Equal(t, 1, stub.Calls(owmstub.EndpointAirPollution))
}

func TestOpenWeatherMapProvider_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		check  func(error) bool
	}{
		{name: "Unauthorized", status: http.StatusUnauthorized, check: errors.IsExternalAPIError},
		{name: "RateLimited", status: http.StatusTooManyRequests, check: errors.IsExternalAPIError},
		{name: "ServerError", status: http.StatusBadGateway, check: errors.IsExternalAPIError},
		{name: "NotFound", status: http.StatusNotFound, check: errors.IsNotFoundError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub, provider := newStubProvider(t, 5)
			stub.FailWith(owmstub.EndpointAirPollution, tt.status)

			_, err := provider.AirQuality(context.Background(), ports.Coordinates{Lat: 1, Lon: 1})
			assert.True(t, tt.check(err), "unexpected error %v", err)
		})
	}
}

func TestOpenWeatherMapProvider_WrongAPIKey(t *testing.T) {
	stub := owmstub.StartServer(t)
	provider := NewOpenWeatherMapProviderAdapter(OpenWeatherMapProviderParams{
		APIKey:  "wrong",
		BaseURL: stub.BaseURL(),
		GeoURL:  stub.GeoURL(),
	})

	_, err := provider.ForecastByName(context.Background(), "London")
	assert.True(t, errors.IsExternalAPIError(err))
	assert.Contains(t, err.Error(), "API key")
}

func TestOpenWeatherMapProvider_CircuitBreaker(t *testing.T) {
	stub, provider := newStubProvider(t, 2)
	ctx := context.Background()

	stub.FailWith(owmstub.EndpointForecast, http.StatusServiceUnavailable)
	for i := 0; i < 2; i++ {
		_, err := provider.ForecastByName(ctx, "London")
		require.Error(t, err)
	}
	assert.Equal(t, "open", provider.BreakerState())

	stub.FailWith(owmstub.EndpointForecast, 0)
	_, err := provider.ForecastByName(ctx, "London")

	assert.True(t, errors.IsExternalAPIError(err))
	assert.Contains(t, err.Error(), "temporarily unavailable")
	assert.Equal(t, 2, stub.Calls(owmstub.EndpointForecast))
}

func TestOpenWeatherMapProvider_NotFoundDoesNotTripBreaker(t *testing.T) {
	_, provider := newStubProvider(t, 1)

	for i := 0; i < 3; i++ {
		_, err := provider.ForecastByName(context.Background(), "Atlantis")
		assert.True(t, errors.IsNotFoundError(err))
	}
	assert.Equal(t, "closed", provider.BreakerState())
}

func TestOpenWeatherMapProvider_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>maintenance</html>"))
	}))
	defer srv.Close()

	provider := NewOpenWeatherMapProviderAdapter(OpenWeatherMapProviderParams{APIKey: "k", BaseURL: srv.URL})

	_, err := provider.ForecastByName(context.Background(), "London")
	assert.True(t, errors.IsExternalAPIError(err))
	assert.Contains(t, err.Error(), "decode")
}

func TestOpenWeatherMapProvider_ContextCancelled(t *testing.T) {
	_, provider := newStubProvider(t, 5)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := provider.ForecastByName(ctx, "London")
	assert.True(t, errors.IsExternalAPIError(err))
}
