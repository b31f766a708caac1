package ports

import (
	"context"
	"time"
)

// Coordinates is a latitude/longitude pair in decimal degrees
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Place is a single reverse geocoding result
type Place struct {
	Name    string  `json:"name"`
	Country string  `json:"country"`
	State   string  `json:"state,omitempty"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// CacheStats represents cache performance metrics
type CacheStats struct {
	Hits        int64
	Misses      int64
	TotalOps    int64
	HitRatio    float64
	LastUpdated time.Time
}

// WeatherProvider defines the contract for the upstream forecast, geocoding and air quality API
type WeatherProvider interface {
	ForecastByName(ctx context.Context, name string) (Payload, error)
	ForecastByCoordinates(ctx context.Context, coords Coordinates) (Payload, error)
	ReverseGeocode(ctx context.Context, coords Coordinates) ([]Place, error)
	AirQuality(ctx context.Context, coords Coordinates) (Payload, error)
	GetProviderName() string
}

// WeatherMetrics defines the contract for weather provider metrics
type WeatherMetrics interface {
	GetProviderInfo() map[string]interface{}
	GetCacheMetrics() (CacheStats, error)
}
