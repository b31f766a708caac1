package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"weatherhistory.app/internal/adapters/api"
	"weatherhistory.app/internal/config"
	"weatherhistory.app/internal/core/forecast"
	"weatherhistory.app/internal/testutil/owmstub"
)

type ApplicationSuite struct {
	suite.Suite
	stub    *owmstub.Server
	app     *Application
	router  *gin.Engine
	logPath string
}

func TestApplicationSuite(t *testing.T) {
	suite.Run(t, new(ApplicationSuite))
}

func (s *ApplicationSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.stub = owmstub.StartServer(s.T())
	s.logPath = filepath.Join(s.T().TempDir(), "weather_providers.log")

	cfg := &config.Config{
		Server: config.ServerConfig{Port: 5000, AllowedOrigins: []string{"*"}},
		Database: config.DatabaseConfig{
			Driver:     config.DriverSQLite,
			SQLitePath: ":memory:",
		},
		Weather: config.WeatherConfig{
			OpenWeatherMapKey:     owmstub.APIKey,
			OpenWeatherMapBaseURL: s.stub.BaseURL(),
			OpenWeatherMapGeoURL:  s.stub.GeoURL(),
			EnableCache:           true,
			EnableLogging:         true,
			CacheTTLMinutes:       10,
			LogFilePath:           s.logPath,
			HTTPTimeoutSeconds:    5,
			BreakerFailures:       5,
			BreakerTimeoutSeconds: 30,
		},
		Cache:    config.CacheConfig{Type: config.CacheTypeMemory, JanitorIntervalMinute: 10},
		LogLevel: "error",
	}

	app, err := NewApplicationWithConfig(cfg)
	s.Require().NoError(err)
	s.app = app
	s.router = app.GetRouter()
}

func (s *ApplicationSuite) TearDownTest() {
	s.Require().NoError(s.app.Shutdown(context.Background()))
}

func (s *ApplicationSuite) request(method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *ApplicationSuite) create(body string) api.RecordResponse {
	w := s.request(http.MethodPost, "/api/weather", body)
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var resp api.RecordResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func (s *ApplicationSuite) list() []api.RecordResponse {
	w := s.request(http.MethodGet, "/api/weather", "")
	s.Require().Equal(http.StatusOK, w.Code)

	var resp []api.RecordResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func (s *ApplicationSuite) TestCreateByName() {
	rec := s.create(`{"location":"london","note":"weekend"}`)

	s.NotEmpty(rec.ID)
	s.Equal("London", rec.Location)
	s.Equal("weekend", rec.Note)
	s.NotEmpty(rec.WeatherData["list"])
	s.NotEmpty(rec.AirQuality["list"])

	records := s.list()
	s.Require().Len(records, 1)
	s.Equal(rec.ID, records[0].ID)
	s.Equal(rec.WeatherData, records[0].WeatherData)
}

func (s *ApplicationSuite) TestCreateByCoordinates() {
	kyiv := s.create(`{"location":"50.45,30.52"}`)
	s.Equal("Kyiv", kyiv.Location)

	ocean := s.create(`{"coordinates":{"lat":0,"lon":-30}}`)
	s.Equal("0,-30", ocean.Location)

	s.Equal(2, s.stub.Calls(owmstub.EndpointReverse))
}

func (s *ApplicationSuite) TestUnknownCityStoresNothing() {
	w := s.request(http.MethodPost, "/api/weather", `{"location":"Atlantis"}`)

	s.Equal(http.StatusInternalServerError, w.Code)
	s.JSONEq(`{"error":"Failed to fetch or save data"}`, w.Body.String())
	s.Empty(s.list())
}

func (s *ApplicationSuite) TestRepeatedLookupsHitCache() {
	s.create(`{"location":"Paris"}`)
	s.create(`{"location":"paris"}`)

	s.Equal(1, s.stub.Calls(owmstub.EndpointForecast))
	s.Equal(1, s.stub.Calls(owmstub.EndpointAirPollution))
	s.Len(s.list(), 2)
}

func (s *ApplicationSuite) TestUpdateChangesOnlySuppliedFields() {
	rec := s.create(`{"location":"London","note":"before"}`)

	w := s.request(http.MethodPut, "/api/weather/"+rec.ID, `{"note":"after"}`)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var updated api.RecordResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &updated))
	s.Equal(rec.ID, updated.ID)
	s.Equal("London", updated.Location)
	s.Equal("after", updated.Note)
	s.True(rec.CreatedAt.Equal(updated.CreatedAt))

	w = s.request(http.MethodPut, "/api/weather/"+rec.ID, `{"weatherData":{}}`)
	s.Equal(http.StatusBadRequest, w.Code)

	w = s.request(http.MethodPut, "/api/weather/does-not-exist", `{"note":"x"}`)
	s.Equal(http.StatusInternalServerError, w.Code)
	s.JSONEq(`{"error":"Failed to update data"}`, w.Body.String())
}

func (s *ApplicationSuite) TestDeleteIsIdempotent() {
	keep := s.create(`{"location":"Kyiv"}`)
	drop := s.create(`{"location":"London"}`)

	for i := 0; i < 2; i++ {
		w := s.request(http.MethodDelete, "/api/weather/"+drop.ID, "")
		s.Equal(http.StatusOK, w.Code)
		s.JSONEq(`{"message":"Data deleted"}`, w.Body.String())
	}

	records := s.list()
	s.Require().Len(records, 1)
	s.Equal(keep.ID, records[0].ID)

	w := s.request(http.MethodGet, "/api/weather/"+drop.ID, "")
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *ApplicationSuite) TestExport() {
	s.create(`{"location":"London"}`)
	s.create(`{"location":"Kyiv","note":"cold, windy"}`)

	w := s.request(http.MethodGet, "/api/weather/export?format=csv", "")
	s.Require().Equal(http.StatusOK, w.Code)
	lines := strings.Split(strings.TrimRight(w.Body.String(), "\n"), "\n")
	s.Len(lines, 3)
	s.Equal("ID,Location,Note,CreatedAt", lines[0])
	s.Contains(lines[2], `"cold, windy"`)

	w = s.request(http.MethodGet, "/api/weather/export?format=json", "")
	s.Require().Equal(http.StatusOK, w.Code)
	var entries []map[string]interface{}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &entries))
	s.Len(entries, 2)

	w = s.request(http.MethodGet, "/api/weather/export?format=markdown", "")
	s.Require().Equal(http.StatusOK, w.Code)
	s.True(strings.HasPrefix(w.Body.String(), "# Weather Data\n"))
	s.Equal(`attachment; filename="weather_data.md"`, w.Header().Get("Content-Disposition"))
}

func (s *ApplicationSuite) TestForecastView() {
	rec := s.create(`{"location":"Paris"}`)
	middayJan2 := owmstub.Start.Add(36 * time.Hour).Unix()

	w := s.request(http.MethodGet, "/api/weather/"+rec.ID+"/forecast?expanded="+strconv.FormatInt(middayJan2, 10), "")
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var view forecast.View
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &view))
	s.Equal("Paris", view.Location)
	s.Equal("48.8534,2.3488", view.MapQuery)
	s.Len(view.Days, 5)
	s.Require().NotNil(view.Expanded)
	s.Len(view.Expanded.Trend, 8)
	s.Require().NotNil(view.AirQuality)
	s.Equal(forecast.LabelSensitiveGroups, view.AirQuality.Label)
}

func (s *ApplicationSuite) TestHealthAndMetrics() {
	s.create(`{"location":"London"}`)

	w := s.request(http.MethodGet, "/api/health", "")
	s.Equal(http.StatusOK, w.Code, w.Body.String())

	w = s.request(http.MethodGet, "/api/metrics", "")
	s.Require().Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), `"circuit_breaker":"closed"`)

	w = s.request(http.MethodGet, "/metrics", "")
	s.Require().Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), `weatherhistory_record_operations_total{operation="create",outcome="success"} 1`)
	s.Contains(w.Body.String(), `weatherhistory_upstream_requests_total{operation="forecast",outcome="success"} 1`)
}

func (s *ApplicationSuite) TestUpstreamCallsAreLoggedToFile() {
	s.create(`{"location":"London"}`)

	content, err := os.ReadFile(s.logPath)
	s.Require().NoError(err)
	s.Contains(string(content), "Weather API request completed")
	s.Contains(string(content), `"operation":"air_quality"`)
}
