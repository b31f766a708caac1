package infrastructure

import (
	"time"

	"weatherhistory.app/internal/config"
	"weatherhistory.app/internal/ports"
)

// ConfigProviderAdapter exposes the loaded configuration through the ConfigProvider port
type ConfigProviderAdapter struct {
	config *config.Config
}

// NewConfigProviderAdapter creates a new config provider adapter
func NewConfigProviderAdapter(cfg *config.Config) *ConfigProviderAdapter {
	return &ConfigProviderAdapter{
		config: cfg,
	}
}

// GetWeatherConfig returns upstream client and payload cache settings
func (c *ConfigProviderAdapter) GetWeatherConfig() ports.WeatherConfig {
	return ports.WeatherConfig{
		EnableCache: c.config.Weather.EnableCache,
		CacheTTL:    time.Duration(c.config.Weather.CacheTTLMinutes) * time.Minute,
		HTTPTimeout: time.Duration(c.config.Weather.HTTPTimeoutSeconds) * time.Second,
	}
}

// GetServerConfig returns server configuration
func (c *ConfigProviderAdapter) GetServerConfig() ports.ServerConfig {
	return ports.ServerConfig{
		Port:           c.config.Server.Port,
		AllowedOrigins: append([]string(nil), c.config.Server.AllowedOrigins...),
	}
}

// GetDatabaseConfig returns the non-secret part of the database configuration
func (c *ConfigProviderAdapter) GetDatabaseConfig() ports.DatabaseConfig {
	db := c.config.Database
	if db.Driver == config.DriverSQLite {
		return ports.DatabaseConfig{Driver: string(db.Driver), Name: db.SQLitePath}
	}
	return ports.DatabaseConfig{
		Driver: string(db.Driver),
		Host:   db.Host,
		Port:   db.Port,
		Name:   db.Name,
	}
}

// GetCacheConfig returns cache configuration
func (c *ConfigProviderAdapter) GetCacheConfig() ports.CacheConfig {
	return ports.CacheConfig{
		Type:            c.config.Cache.Type.String(),
		JanitorInterval: time.Duration(c.config.Cache.JanitorIntervalMinute) * time.Minute,
	}
}
