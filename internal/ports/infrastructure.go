package ports

import (
	"context"
	"time"
)

// WeatherConfig represents weather service configuration
type WeatherConfig struct {
	EnableCache bool
	CacheTTL    time.Duration
	HTTPTimeout time.Duration
}

// ServerConfig represents server configuration
type ServerConfig struct {
	Port           int
	AllowedOrigins []string
}

// DatabaseConfig represents database configuration
type DatabaseConfig struct {
	Driver string
	Host   string
	Port   int
	Name   string
}

// CacheConfig represents cache configuration
type CacheConfig struct {
	Type            string
	JanitorInterval time.Duration
}

// ConfigProvider defines the contract for configuration management
type ConfigProvider interface {
	GetWeatherConfig() WeatherConfig
	GetServerConfig() ServerConfig
	GetDatabaseConfig() DatabaseConfig
	GetCacheConfig() CacheConfig
}

// Logger defines the contract for structured logging
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field represents a log field
type Field struct {
	Key   string
	Value interface{}
}

// F creates a log field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// MetricsCollector defines the contract for metrics collection
type MetricsCollector interface {
	RecordCacheHit(ctx context.Context, cacheType string)
	RecordCacheMiss(ctx context.Context, cacheType string)
	RecordWeatherAPICall(ctx context.Context, operation string, success bool, duration time.Duration)
	RecordRecordOperation(ctx context.Context, operation string, success bool)
}
