// Package owmstub serves canned OpenWeatherMap forecast, reverse geocoding and air pollution
// responses. It backs provider, wiring and client tests and the local stub binary.
package owmstub

import (
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

// APIKey is the key the stub accepts by default
const APIKey = "test-key"

// Endpoint names accepted by FailWith and Calls
const (
	EndpointForecast     = "forecast"
	EndpointReverse      = "reverse"
	EndpointAirPollution = "air_pollution"
)

// City is a place the stub knows about
type City struct {
	Name    string
	Country string
	Lat     float64
	Lon     float64
	BaseK   float64
	PM25    float64
}

// Cities are keyed by lower-case name
var Cities = map[string]City{
	"london": {Name: "London", Country: "GB", Lat: 51.5085, Lon: -0.1257, BaseK: 281.0, PM25: 8.4},
	"kyiv":   {Name: "Kyiv", Country: "UA", Lat: 50.45, Lon: 30.52, BaseK: 271.0, PM25: 14.2},
	"paris":  {Name: "Paris", Country: "FR", Lat: 48.8534, Lon: 2.3488, BaseK: 284.0, PM25: 40.0},
}

// Start is the timestamp of the first forecast sample: 2024-01-01T00:00:00Z
var Start = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// Stub is a fake OpenWeatherMap API
type Stub struct {
	apiKey   string
	mu       sync.Mutex
	calls    map[string]int
	failures map[string]int
}

// New creates a stub that accepts apiKey
func New(apiKey string) *Stub {
	return &Stub{
		apiKey:   apiKey,
		calls:    make(map[string]int),
		failures: make(map[string]int),
	}
}

// Server is a running stub with its base URLs
type Server struct {
	*Stub
	HTTP *httptest.Server
}

// StartServer runs a stub on a random local port for the duration of the test
func StartServer(t testing.TB) *Server {
	t.Helper()

	stub := New(APIKey)
	srv := httptest.NewServer(stub.Handler())
	t.Cleanup(srv.Close)

	return &Server{Stub: stub, HTTP: srv}
}

// BaseURL is the data API root, e.g. http://127.0.0.1:1234/data/2.5
func (s *Server) BaseURL() string {
	return s.HTTP.URL + "/data/2.5"
}

// GeoURL is the geocoding API root
func (s *Server) GeoURL() string {
	return s.HTTP.URL + "/geo/1.0"
}

// FailWith makes every following call to endpoint answer with status. Zero restores normal answers.
func (s *Stub) FailWith(endpoint string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if status == 0 {
		delete(s.failures, endpoint)
		return
	}
	s.failures[endpoint] = status
}

// Calls returns how many requests endpoint has received
func (s *Stub) Calls(endpoint string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[endpoint]
}

// Handler returns the stub's HTTP routes
func (s *Stub) Handler() http.Handler {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	data := r.Group("/data/2.5", s.authorize)
	data.GET("/forecast", s.track(EndpointForecast), s.forecast)
	data.GET("/air_pollution", s.track(EndpointAirPollution), s.airPollution)

	geo := r.Group("/geo/1.0", s.authorize)
	geo.GET("/reverse", s.track(EndpointReverse), s.reverse)

	return r
}

func (s *Stub) authorize(c *gin.Context) {
	if c.Query("appid") != s.apiKey {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"cod":     http.StatusUnauthorized,
			"message": "Invalid API key. Please see https://openweathermap.org/faq#error401 for more info.",
		})
		return
	}
	c.Next()
}

func (s *Stub) track(endpoint string) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.mu.Lock()
		s.calls[endpoint]++
		status := s.failures[endpoint]
		s.mu.Unlock()

		if status != 0 {
			c.AbortWithStatusJSON(status, gin.H{"cod": strconv.Itoa(status), "message": http.StatusText(status)})
			return
		}
		c.Next()
	}
}

func (s *Stub) forecast(c *gin.Context) {
	if q := c.Query("q"); q != "" {
		city, ok := Cities[strings.ToLower(strings.TrimSpace(q))]
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"cod": "404", "message": "city not found"})
			return
		}
		c.JSON(http.StatusOK, Forecast(city))
		return
	}

	lat, lon, ok := coordinates(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"cod": "400", "message": "Nothing to geocode"})
		return
	}
	city, known := nearest(lat, lon)
	if !known {
		city = City{Lat: lat, Lon: lon, BaseK: 288.0}
	}
	c.JSON(http.StatusOK, Forecast(city))
}

func (s *Stub) reverse(c *gin.Context) {
	lat, lon, ok := coordinates(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"cod": "400", "message": "wrong latitude"})
		return
	}

	city, known := nearest(lat, lon)
	if !known {
		c.JSON(http.StatusOK, []gin.H{})
		return
	}
	c.JSON(http.StatusOK, []gin.H{{
		"name":    city.Name,
		"country": city.Country,
		"lat":     city.Lat,
		"lon":     city.Lon,
	}})
}

func (s *Stub) airPollution(c *gin.Context) {
	lat, lon, ok := coordinates(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"cod": "400", "message": "wrong latitude"})
		return
	}

	pm25 := 5.0
	if city, known := nearest(lat, lon); known {
		pm25 = city.PM25
	}
	c.JSON(http.StatusOK, AirPollution(lat, lon, pm25))
}

// Forecast builds a five day, 3-hourly forecast payload for city
func Forecast(city City) gin.H {
	list := make([]gin.H, 0, 40)
	for i := 0; i < 40; i++ {
		ts := Start.Add(time.Duration(i) * 3 * time.Hour)
		temp := city.BaseK + 4*math.Sin(float64(i%8)*math.Pi/8)
		list = append(list, gin.H{
			"dt":         ts.Unix(),
			"dt_txt":     ts.Format(time.DateTime),
			"main":       gin.H{"temp": temp, "feels_like": temp - 1.5, "humidity": 70 + i%10, "pressure": 1012},
			"weather":    []gin.H{{"id": 803, "main": "Clouds", "description": "broken clouds", "icon": "04d"}},
			"wind":       gin.H{"speed": 3.6, "deg": 250},
			"visibility": 10000,
		})
	}

	return gin.H{
		"cod":     "200",
		"message": 0,
		"cnt":     len(list),
		"list":    list,
		"city": gin.H{
			"name":     city.Name,
			"country":  city.Country,
			"coord":    gin.H{"lat": city.Lat, "lon": city.Lon},
			"timezone": 0,
			"sunrise":  Start.Add(8 * time.Hour).Unix(),
			"sunset":   Start.Add(16 * time.Hour).Unix(),
		},
	}
}

// AirPollution builds an air pollution payload with the given PM2.5 concentration
func AirPollution(lat, lon, pm25 float64) gin.H {
	return gin.H{
		"coord": gin.H{"lat": lat, "lon": lon},
		"list": []gin.H{{
			"dt":   Start.Unix(),
			"main": gin.H{"aqi": 2},
			"components": gin.H{
				"co": 230.31, "no": 0.1, "no2": 12.4, "o3": 51.2,
				"so2": 1.9, "pm2_5": pm25, "pm10": pm25 * 1.4, "nh3": 0.6,
			},
		}},
	}
}

func coordinates(c *gin.Context) (float64, float64, bool) {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		return 0, 0, false
	}
	lon, err := strconv.ParseFloat(c.Query("lon"), 64)
	if err != nil {
		return 0, 0, false
	}
	return lat, lon, true
}

// nearest finds a known city within roughly 0.1 degrees
func nearest(lat, lon float64) (City, bool) {
	for _, city := range Cities {
		if math.Abs(city.Lat-lat) < 0.1 && math.Abs(city.Lon-lon) < 0.1 {
			return city, true
		}
	}
	return City{}, false
}

// String implements fmt.Stringer for readable test failures
func (c City) String() string {
	return fmt.Sprintf("%s,%s (%g,%g)", c.Name, c.Country, c.Lat, c.Lon)
}
