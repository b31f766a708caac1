package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherhistory.app/pkg/errors"
)

func TestLoadConfig(t *testing.T) {
	t.Run("MissingAPIKey", func(t *testing.T) {
		os.Clearenv()

		config, err := LoadConfig()

		assert.Error(t, err)
		assert.Nil(t, config)
		assert.True(t, errors.IsConfigurationError(err))
		assert.Contains(t, err.Error(), "OPENWEATHERMAP_API_KEY must be set")
	})

	t.Run("DefaultValues", func(t *testing.T) {
		os.Clearenv()
		t.Setenv("OPENWEATHERMAP_API_KEY", "test-key")

		config, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, 5000, config.Server.Port)
		assert.Equal(t, []string{"*"}, config.Server.AllowedOrigins)
		assert.Equal(t, DriverPostgres, config.Database.Driver)
		assert.Equal(t, "localhost", config.Database.Host)
		assert.Equal(t, 5432, config.Database.Port)
		assert.Equal(t, "weatherhistory", config.Database.Name)
		assert.Equal(t, "https://api.openweathermap.org/data/2.5", config.Weather.OpenWeatherMapBaseURL)
		assert.Equal(t, "https://api.openweathermap.org/geo/1.0", config.Weather.OpenWeatherMapGeoURL)
		assert.True(t, config.Weather.EnableCache)
		assert.Equal(t, 10, config.Weather.CacheTTLMinutes)
		assert.Equal(t, 10, config.Weather.HTTPTimeoutSeconds)
		assert.Equal(t, uint32(5), config.Weather.BreakerFailures)
		assert.Equal(t, CacheTypeMemory, config.Cache.Type)
		assert.Equal(t, "info", config.LogLevel)
	})

	t.Run("CustomValues", func(t *testing.T) {
		os.Clearenv()
		t.Setenv("OPENWEATHERMAP_API_KEY", "test-key")
		t.Setenv("SERVER_PORT", "9090")
		t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,https://weather.example.com")
		t.Setenv("DB_DRIVER", "sqlite")
		t.Setenv("DB_SQLITE_PATH", "/tmp/records.db")
		t.Setenv("CACHE_TYPE", "redis")
		t.Setenv("REDIS_ADDR", "redis:6379")
		t.Setenv("WEATHER_CACHE_TTL_MINUTES", "30")

		config, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, 9090, config.Server.Port)
		assert.Equal(t, []string{"http://localhost:3000", "https://weather.example.com"}, config.Server.AllowedOrigins)
		assert.Equal(t, DriverSQLite, config.Database.Driver)
		assert.Equal(t, "/tmp/records.db", config.Database.GetDSN())
		assert.Equal(t, CacheTypeRedis, config.Cache.Type)
		assert.Equal(t, "redis:6379", config.Cache.Redis.Addr)
		assert.Equal(t, 30, config.Weather.CacheTTLMinutes)
	})
}

func TestDatabaseConfig_GetDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Driver:   DriverPostgres,
		Host:     "db",
		Port:     5433,
		User:     "user",
		Password: "pass",
		Name:     "records",
		SSLMode:  "disable",
	}

	assert.Equal(t, "host=db port=5433 user=user password=pass dbname=records sslmode=disable", cfg.GetDSN())
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		return Config{
			Server: ServerConfig{Port: 5000, AllowedOrigins: []string{"*"}},
			Database: DatabaseConfig{
				Driver: DriverPostgres, Host: "localhost", Port: 5432,
				User: "postgres", Name: "weatherhistory", SSLMode: "disable",
			},
			Weather: WeatherConfig{
				OpenWeatherMapKey:     "key",
				OpenWeatherMapBaseURL: "https://api.openweathermap.org/data/2.5",
				OpenWeatherMapGeoURL:  "https://api.openweathermap.org/geo/1.0",
				CacheTTLMinutes:       10,
				HTTPTimeoutSeconds:    10,
				BreakerFailures:       5,
				BreakerTimeoutSeconds: 30,
			},
			Cache: CacheConfig{
				Type:                  CacheTypeMemory,
				JanitorIntervalMinute: 10,
				Redis:                 RedisConfig{Addr: "localhost:6379", DialTimeout: 5, ReadTimeout: 3, WriteTimeout: 3},
			},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		errMsg  string
		wantErr bool
	}{
		{name: "Valid", mutate: func(c *Config) {}},
		{name: "InvalidPort", mutate: func(c *Config) { c.Server.Port = 0 }, wantErr: true, errMsg: "SERVER_PORT"},
		{name: "NoOrigins", mutate: func(c *Config) { c.Server.AllowedOrigins = nil }, wantErr: true, errMsg: "CORS_ALLOWED_ORIGINS"},
		{name: "UnknownDriver", mutate: func(c *Config) { c.Database.Driver = "mongo" }, wantErr: true, errMsg: "DB_DRIVER"},
		{name: "SQLiteSkipsHostChecks", mutate: func(c *Config) {
			c.Database.Driver = DriverSQLite
			c.Database.SQLitePath = "records.db"
			c.Database.Host = ""
		}},
		{name: "SQLiteNeedsPath", mutate: func(c *Config) {
			c.Database.Driver = DriverSQLite
			c.Database.SQLitePath = ""
		}, wantErr: true, errMsg: "DB_SQLITE_PATH"},
		{name: "BadSSLMode", mutate: func(c *Config) { c.Database.SSLMode = "maybe" }, wantErr: true, errMsg: "DB_SSL_MODE"},
		{name: "BadBaseURL", mutate: func(c *Config) { c.Weather.OpenWeatherMapBaseURL = "ftp://x" }, wantErr: true, errMsg: "OPENWEATHERMAP_API_BASE_URL"},
		{name: "TTLTooLarge", mutate: func(c *Config) { c.Weather.CacheTTLMinutes = 2000 }, wantErr: true, errMsg: "WEATHER_CACHE_TTL_MINUTES"},
		{name: "ZeroBreakerFailures", mutate: func(c *Config) { c.Weather.BreakerFailures = 0 }, wantErr: true, errMsg: "WEATHER_BREAKER_FAILURES"},
		{name: "UnknownCache", mutate: func(c *Config) { c.Cache.Type = CacheTypeUnknown }, wantErr: true, errMsg: "CACHE_TYPE"},
		{name: "RedisDBOutOfRange", mutate: func(c *Config) {
			c.Cache.Type = CacheTypeRedis
			c.Cache.Redis.DB = 16
		}, wantErr: true, errMsg: "REDIS_DB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCacheType_TextRoundTrip(t *testing.T) {
	var ct CacheType
	require.NoError(t, ct.UnmarshalText([]byte("redis")))
	assert.Equal(t, CacheTypeRedis, ct)

	text, err := ct.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "redis", string(text))

	require.NoError(t, ct.UnmarshalText([]byte("disk")))
	assert.False(t, ct.IsValid())
}
