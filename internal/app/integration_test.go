//go:build integration

package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"weatherhistory.app/internal/adapters/api"
	"weatherhistory.app/internal/config"
	"weatherhistory.app/internal/testutil/owmstub"
)

// PostgresRedisSuite runs the application against real PostgreSQL and Redis servers.
// Start them with `go run ./cmd/integration-runner setup`.
type PostgresRedisSuite struct {
	suite.Suite
	stub *owmstub.Server
	cfg  *config.Config
	app  *Application
}

func TestPostgresRedisSuite(t *testing.T) {
	suite.Run(t, new(PostgresRedisSuite))
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func (s *PostgresRedisSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)

	port, err := strconv.Atoi(env("TEST_DB_PORT", "5433"))
	s.Require().NoError(err)

	s.cfg = &config.Config{
		Server: config.ServerConfig{Port: 5000, AllowedOrigins: []string{"*"}},
		Database: config.DatabaseConfig{
			Driver:   config.DriverPostgres,
			Host:     env("TEST_DB_HOST", "localhost"),
			Port:     port,
			User:     env("TEST_DB_USER", "test_user"),
			Password: env("TEST_DB_PASSWORD", "test_pass"),
			Name:     env("TEST_DB_NAME", "weatherhistory_test"),
			SSLMode:  "disable",
		},
		Weather: config.WeatherConfig{
			OpenWeatherMapKey:     owmstub.APIKey,
			EnableCache:           true,
			CacheTTLMinutes:       5,
			HTTPTimeoutSeconds:    5,
			BreakerFailures:       5,
			BreakerTimeoutSeconds: 30,
		},
		Cache: config.CacheConfig{
			Type:                  config.CacheTypeRedis,
			JanitorIntervalMinute: 10,
			Redis: config.RedisConfig{
				Addr:         env("TEST_REDIS_ADDR", "localhost:6380"),
				DialTimeout:  5,
				ReadTimeout:  3,
				WriteTimeout: 3,
			},
		},
		LogLevel: "error",
	}

	s.Require().Eventually(func() bool {
		db, err := gorm.Open(postgres.Open(s.cfg.Database.GetDSN()), &gorm.Config{})
		if err != nil {
			return false
		}
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		defer sqlDB.Close()
		return sqlDB.Ping() == nil
	}, 20*time.Second, time.Second, "PostgreSQL is not reachable")

	s.Require().Eventually(func() bool {
		client := redis.NewClient(&redis.Options{Addr: s.cfg.Cache.Redis.Addr})
		defer client.Close()
		return client.Ping(context.Background()).Err() == nil
	}, 20*time.Second, time.Second, "Redis is not reachable")
}

func (s *PostgresRedisSuite) SetupTest() {
	s.stub = owmstub.StartServer(s.T())
	s.cfg.Weather.OpenWeatherMapBaseURL = s.stub.BaseURL()
	s.cfg.Weather.OpenWeatherMapGeoURL = s.stub.GeoURL()
	s.app = s.start()

	s.Require().NoError(s.app.deps.Database().Exec("DELETE FROM weather_records").Error)
	s.Require().NoError(s.app.ports.CacheProvider.Clear(context.Background()))
}

func (s *PostgresRedisSuite) TearDownTest() {
	s.Require().NoError(s.app.Shutdown(context.Background()))
}

func (s *PostgresRedisSuite) start() *Application {
	app, err := NewApplicationWithConfig(s.cfg)
	s.Require().NoError(err)
	return app
}

func (s *PostgresRedisSuite) call(app *Application, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	app.GetRouter().ServeHTTP(w, req)
	return w
}

func (s *PostgresRedisSuite) TestRecordLifecycle() {
	w := s.call(s.app, http.MethodPost, "/api/weather", `{"location":"Paris","note":"conference"}`)
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var created api.RecordResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &created))
	s.Equal("Paris", created.Location)

	w = s.call(s.app, http.MethodPut, "/api/weather/"+created.ID, `{"note":"moved"}`)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var updated api.RecordResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &updated))
	s.Equal("moved", updated.Note)
	s.Equal("Paris", updated.Location)
	s.WithinDuration(created.CreatedAt, updated.CreatedAt, time.Millisecond)

	w = s.call(s.app, http.MethodGet, "/api/weather", "")
	var list []api.RecordResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &list))
	s.Require().Len(list, 1)
	s.Equal(created.WeatherData["cod"], list[0].WeatherData["cod"])

	s.Equal(http.StatusOK, s.call(s.app, http.MethodDelete, "/api/weather/"+created.ID, "").Code)
	s.Equal(http.StatusOK, s.call(s.app, http.MethodDelete, "/api/weather/"+created.ID, "").Code)
	s.Equal(http.StatusNotFound, s.call(s.app, http.MethodGet, "/api/weather/"+created.ID, "").Code)
}

func (s *PostgresRedisSuite) TestRedisCacheSurvivesRestart() {
	s.Require().Equal(http.StatusCreated, s.call(s.app, http.MethodPost, "/api/weather", `{"location":"London"}`).Code)
	s.Equal(1, s.stub.Calls(owmstub.EndpointForecast))

	s.Require().NoError(s.app.Shutdown(context.Background()))
	s.app = s.start()

	s.Require().Equal(http.StatusCreated, s.call(s.app, http.MethodPost, "/api/weather", `{"location":"london"}`).Code)
	s.Equal(1, s.stub.Calls(owmstub.EndpointForecast))
	s.Equal(1, s.stub.Calls(owmstub.EndpointAirPollution))

	w := s.call(s.app, http.MethodGet, "/api/health", "")
	s.Equal(http.StatusOK, w.Code, w.Body.String())
	s.Contains(w.Body.String(), `"cache_type":"redis"`)
}

func (s *PostgresRedisSuite) TestExportFromPostgres() {
	for _, city := range []string{"London", "Kyiv", "Paris"} {
		s.Require().Equal(http.StatusCreated, s.call(s.app, http.MethodPost, "/api/weather", `{"location":"`+city+`"}`).Code)
	}

	w := s.call(s.app, http.MethodGet, "/api/weather/export?format=csv", "")
	s.Require().Equal(http.StatusOK, w.Code)
	s.Len(strings.Split(strings.TrimSpace(w.Body.String()), "\n"), 4)
}
