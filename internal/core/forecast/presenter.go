package forecast

import (
	"math"
	"strings"
	"time"

	"weatherhistory.app/internal/ports"
)

const (
	// MiddayMarker selects one sample per day from the 3-hour list
	MiddayMarker = "12:00:00"
	// DailyLimit caps the number of daily cards
	DailyLimit = 5

	kelvinOffset = 273.15
)

// Air quality labels by PM2.5 concentration (µg/m³)
const (
	LabelHealthy         = "Healthy"
	LabelModerate        = "Moderate"
	LabelSensitiveGroups = "Unhealthy for Sensitive Groups"
	LabelUnhealthy       = "Unhealthy"
	LabelVeryUnhealthy   = "Very Unhealthy"

	pm25HealthyLimit   = 12.0
	pm25ModerateLimit  = 35.4
	pm25SensitiveLimit = 55.4
	pm25UnhealthyLimit = 150.4
)

// KelvinToCelsius converts and rounds half up, so 300 K renders as 27 °C
func KelvinToCelsius(kelvin float64) int {
	return int(math.Floor(kelvin - kelvinOffset + 0.5))
}

// DailySnapshots keeps the midday sample of each day, at most DailyLimit of them
func DailySnapshots(payload ports.Payload) []Sample {
	var daily []Sample
	for _, s := range Samples(payload) {
		if !strings.Contains(s.DtTxt, MiddayMarker) {
			continue
		}
		daily = append(daily, s)
		if len(daily) == DailyLimit {
			break
		}
	}
	return daily
}

// TrendPoint is one point of a per-day temperature chart
type TrendPoint struct {
	Label   string `json:"label"`
	Celsius int    `json:"celsius"`
}

// DayTrend returns every sample that falls on the same UTC day as dt
func DayTrend(payload ports.Payload, dt int64) []TrendPoint {
	day := time.Unix(dt, 0).UTC().Format(time.DateOnly)

	var points []TrendPoint
	for _, s := range Samples(payload) {
		ts := time.Unix(s.Dt, 0).UTC()
		if ts.Format(time.DateOnly) != day {
			continue
		}
		points = append(points, TrendPoint{
			Label:   ts.Format("15:04"),
			Celsius: KelvinToCelsius(s.Temp),
		})
	}
	return points
}

// AirQualityLabel maps a PM2.5 concentration onto a qualitative health label
func AirQualityLabel(pm25 float64) string {
	switch {
	case pm25 <= pm25HealthyLimit:
		return LabelHealthy
	case pm25 <= pm25ModerateLimit:
		return LabelModerate
	case pm25 <= pm25SensitiveLimit:
		return LabelSensitiveGroups
	case pm25 <= pm25UnhealthyLimit:
		return LabelUnhealthy
	default:
		return LabelVeryUnhealthy
	}
}

// Expansion tracks which day card is open. At most one day is expanded at a time.
type Expansion struct {
	dt  int64
	set bool
}

// Toggle opens dt, or closes it when it is already open
func (e *Expansion) Toggle(dt int64) {
	if e.set && e.dt == dt {
		e.set = false
		e.dt = 0
		return
	}
	e.dt = dt
	e.set = true
}

// Expanded returns the open day, if any
func (e Expansion) Expanded() (int64, bool) {
	return e.dt, e.set
}

// IsExpanded reports whether dt is the open day
func (e Expansion) IsExpanded(dt int64) bool {
	return e.set && e.dt == dt
}
