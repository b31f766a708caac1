package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"weatherhistory.app/pkg/errors"
)

const (
	maxRedisDB         = 15
	maxCacheTTLMinutes = 1440
	maxPortNumber      = 65535
)

// Config represents the application configuration structure
type Config struct {
	Server   ServerConfig   `split_words:"true"`
	Database DatabaseConfig `split_words:"true"`
	Weather  WeatherConfig  `split_words:"true"`
	Cache    CacheConfig    `split_words:"true"`
	LogLevel string         `envconfig:"LOG_LEVEL" default:"info"`
}

type ServerConfig struct {
	Port           int      `envconfig:"SERVER_PORT" default:"5000"`
	AllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
}

// DatabaseDriver selects the gorm dialector used for the record store
type DatabaseDriver string

const (
	DriverPostgres DatabaseDriver = "postgres"
	DriverSQLite   DatabaseDriver = "sqlite"
)

type DatabaseConfig struct {
	Driver     DatabaseDriver `envconfig:"DB_DRIVER" default:"postgres"`
	Host       string         `envconfig:"DB_HOST" default:"localhost"`
	Port       int            `envconfig:"DB_PORT" default:"5432"`
	User       string         `envconfig:"DB_USER" default:"postgres"`
	Password   string         `envconfig:"DB_PASSWORD" default:"postgres"`
	Name       string         `envconfig:"DB_NAME" default:"weatherhistory"`
	SSLMode    string         `envconfig:"DB_SSL_MODE" default:"disable"`
	SQLitePath string         `envconfig:"DB_SQLITE_PATH" default:"weather.db"`
}

func (c DatabaseConfig) GetDSN() string {
	if c.Driver == DriverSQLite {
		return c.SQLitePath
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

type WeatherConfig struct {
	OpenWeatherMapKey     string `envconfig:"OPENWEATHERMAP_API_KEY"`
	OpenWeatherMapBaseURL string `envconfig:"OPENWEATHERMAP_API_BASE_URL" default:"https://api.openweathermap.org/data/2.5"`
	OpenWeatherMapGeoURL  string `envconfig:"OPENWEATHERMAP_GEO_BASE_URL" default:"https://api.openweathermap.org/geo/1.0"`
	EnableCache           bool   `envconfig:"WEATHER_ENABLE_CACHE" default:"true"`
	EnableLogging         bool   `envconfig:"WEATHER_ENABLE_LOGGING" default:"true"`
	CacheTTLMinutes       int    `envconfig:"WEATHER_CACHE_TTL_MINUTES" default:"10"`
	LogFilePath           string `envconfig:"WEATHER_LOG_FILE_PATH" default:"logs/weather_providers.log"`
	HTTPTimeoutSeconds    int    `envconfig:"WEATHER_HTTP_TIMEOUT_SECONDS" default:"10"`
	BreakerFailures       uint32 `envconfig:"WEATHER_BREAKER_FAILURES" default:"5"`
	BreakerTimeoutSeconds int    `envconfig:"WEATHER_BREAKER_TIMEOUT_SECONDS" default:"30"`
}

// CacheType represents the type of cache to use
type CacheType int

const (
	CacheTypeUnknown CacheType = iota
	CacheTypeMemory
	CacheTypeRedis
)

// String returns the string representation of cache type
func (c CacheType) String() string {
	switch c {
	case CacheTypeMemory:
		return "memory"
	case CacheTypeRedis:
		return "redis"
	default:
		return "unknown"
	}
}

// IsValid checks if the cache type is valid
func (c CacheType) IsValid() bool {
	return c == CacheTypeMemory || c == CacheTypeRedis
}

// CacheTypeFromString converts string to CacheType enum
func CacheTypeFromString(s string) CacheType {
	switch s {
	case "memory":
		return CacheTypeMemory
	case "redis":
		return CacheTypeRedis
	default:
		return CacheTypeUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (c *CacheType) UnmarshalText(text []byte) error {
	*c = CacheTypeFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for envconfig
func (c CacheType) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

type CacheConfig struct {
	Type                  CacheType   `envconfig:"CACHE_TYPE" default:"memory"`
	JanitorIntervalMinute int         `envconfig:"CACHE_JANITOR_INTERVAL" default:"10"`
	Redis                 RedisConfig `split_words:"true"`
}

type RedisConfig struct {
	Addr         string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password     string `envconfig:"REDIS_PASSWORD" default:""`
	DB           int    `envconfig:"REDIS_DB" default:"0"`
	DialTimeout  int    `envconfig:"REDIS_DIAL_TIMEOUT" default:"5"`
	ReadTimeout  int    `envconfig:"REDIS_READ_TIMEOUT" default:"3"`
	WriteTimeout int    `envconfig:"REDIS_WRITE_TIMEOUT" default:"3"`
}

func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.Weather.Validate(); err != nil {
		return err
	}
	if err := c.Cache.Validate(); err != nil {
		return err
	}
	return nil
}

func (s *ServerConfig) Validate() error {
	if s.Port < 1 || s.Port > maxPortNumber {
		return errors.NewConfigurationError("SERVER_PORT must be between 1 and 65535", nil)
	}
	if len(s.AllowedOrigins) == 0 {
		return errors.NewConfigurationError("CORS_ALLOWED_ORIGINS cannot be empty", nil)
	}
	return nil
}

func (d *DatabaseConfig) Validate() error {
	switch d.Driver {
	case DriverSQLite:
		if d.SQLitePath == "" {
			return errors.NewConfigurationError("DB_SQLITE_PATH cannot be empty when DB_DRIVER is sqlite", nil)
		}
		return nil
	case DriverPostgres:
	default:
		return errors.NewConfigurationError("DB_DRIVER must be one of: postgres, sqlite", nil)
	}

	if d.Host == "" {
		return errors.NewConfigurationError("DB_HOST cannot be empty", nil)
	}
	if d.Port < 1 || d.Port > maxPortNumber {
		return errors.NewConfigurationError("DB_PORT must be between 1 and 65535", nil)
	}
	if d.User == "" {
		return errors.NewConfigurationError("DB_USER cannot be empty", nil)
	}
	if d.Name == "" {
		return errors.NewConfigurationError("DB_NAME cannot be empty", nil)
	}
	return d.ValidateSSLMode()
}

func (d *DatabaseConfig) ValidateSSLMode() error {
	validSSLModes := []string{"disable", "require", "verify-ca", "verify-full"}
	for _, mode := range validSSLModes {
		if d.SSLMode == mode {
			return nil
		}
	}
	return errors.NewConfigurationError(
		fmt.Sprintf("DB_SSL_MODE must be one of: %s", strings.Join(validSSLModes, ", ")), nil)
}

func (w *WeatherConfig) Validate() error {
	if w.OpenWeatherMapKey == "" {
		return errors.NewConfigurationError("OPENWEATHERMAP_API_KEY must be set", nil)
	}
	for name, url := range map[string]string{
		"OPENWEATHERMAP_API_BASE_URL": w.OpenWeatherMapBaseURL,
		"OPENWEATHERMAP_GEO_BASE_URL": w.OpenWeatherMapGeoURL,
	} {
		if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
			return errors.NewConfigurationError(name+" must start with http:// or https://", nil)
		}
	}
	if w.CacheTTLMinutes < 1 || w.CacheTTLMinutes > maxCacheTTLMinutes {
		return errors.NewConfigurationError("WEATHER_CACHE_TTL_MINUTES must be between 1 and 1440 minutes", nil)
	}
	if w.HTTPTimeoutSeconds < 1 {
		return errors.NewConfigurationError("WEATHER_HTTP_TIMEOUT_SECONDS must be at least 1 second", nil)
	}
	if w.BreakerFailures < 1 {
		return errors.NewConfigurationError("WEATHER_BREAKER_FAILURES must be at least 1", nil)
	}
	if w.BreakerTimeoutSeconds < 1 {
		return errors.NewConfigurationError("WEATHER_BREAKER_TIMEOUT_SECONDS must be at least 1 second", nil)
	}
	return nil
}

func (c *CacheConfig) Validate() error {
	if !c.Type.IsValid() {
		return errors.NewConfigurationError("CACHE_TYPE must be one of: memory, redis", nil)
	}
	if c.JanitorIntervalMinute < 1 {
		return errors.NewConfigurationError("CACHE_JANITOR_INTERVAL must be at least 1 minute", nil)
	}

	if c.Type == CacheTypeRedis {
		return c.Redis.Validate()
	}

	return nil
}

func (r *RedisConfig) Validate() error {
	if r.Addr == "" {
		return errors.NewConfigurationError("REDIS_ADDR cannot be empty when using Redis cache", nil)
	}
	if r.DB < 0 || r.DB > maxRedisDB {
		return errors.NewConfigurationError("REDIS_DB must be between 0 and 15", nil)
	}
	if r.DialTimeout < 1 {
		return errors.NewConfigurationError("REDIS_DIAL_TIMEOUT must be at least 1 second", nil)
	}
	if r.ReadTimeout < 1 {
		return errors.NewConfigurationError("REDIS_READ_TIMEOUT must be at least 1 second", nil)
	}
	if r.WriteTimeout < 1 {
		return errors.NewConfigurationError("REDIS_WRITE_TIMEOUT must be at least 1 second", nil)
	}
	return nil
}
