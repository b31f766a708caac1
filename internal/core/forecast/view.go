package forecast

import (
	"math"
	"strconv"
	"time"

	"weatherhistory.app/internal/ports"
)

// DayCard is one of the five daily summaries
type DayCard struct {
	Dt           int64   `json:"dt"`
	Date         string  `json:"date"`
	Icon         string  `json:"icon"`
	Description  string  `json:"description"`
	Celsius      int     `json:"celsius"`
	FeelsLike    int     `json:"feelsLike"`
	Humidity     float64 `json:"humidity"`
	WindSpeed    float64 `json:"windSpeed"`
	Pressure     float64 `json:"pressure"`
	VisibilityKM float64 `json:"visibilityKm"`
	Expanded     bool    `json:"expanded"`
}

// DayDetail is the expanded day with its temperature trend
type DayDetail struct {
	Card  DayCard      `json:"card"`
	Trend []TrendPoint `json:"trend"`
}

// AirQuality summarises the pollution payload
type AirQuality struct {
	PM25       float64            `json:"pm25"`
	Label      string             `json:"label"`
	Components map[string]float64 `json:"components"`
}

// View is everything a client needs to render a stored lookup
type View struct {
	Location   string      `json:"location"`
	MapQuery   string      `json:"mapQuery"`
	Country    string      `json:"country,omitempty"`
	Sunrise    *time.Time  `json:"sunrise,omitempty"`
	Sunset     *time.Time  `json:"sunset,omitempty"`
	Days       []DayCard   `json:"days"`
	Expanded   *DayDetail  `json:"expanded,omitempty"`
	AirQuality *AirQuality `json:"airQuality,omitempty"`
}

// Input is the stored record subset the presenter reads
type Input struct {
	Location    string
	WeatherData ports.Payload
	AirQuality  ports.Payload
	Expansion   Expansion
}

// Present builds the view model for a stored lookup
func Present(in Input) View {
	city := CityOf(in.WeatherData)

	view := View{
		Location: in.Location,
		MapQuery: in.Location,
		Country:  city.Country,
		Days:     []DayCard{},
	}
	if city.HasCoord {
		view.MapQuery = formatCoord(city.Coord)
	}
	if city.Sunrise > 0 {
		t := time.Unix(city.Sunrise, 0).UTC()
		view.Sunrise = &t
	}
	if city.Sunset > 0 {
		t := time.Unix(city.Sunset, 0).UTC()
		view.Sunset = &t
	}

	for _, s := range DailySnapshots(in.WeatherData) {
		card := toCard(s)
		card.Expanded = in.Expansion.IsExpanded(s.Dt)
		view.Days = append(view.Days, card)
		if card.Expanded {
			view.Expanded = &DayDetail{Card: card, Trend: DayTrend(in.WeatherData, s.Dt)}
		}
	}

	if pm25, ok := PM25(in.AirQuality); ok {
		view.AirQuality = &AirQuality{
			PM25:       pm25,
			Label:      AirQualityLabel(pm25),
			Components: Components(in.AirQuality),
		}
	}

	return view
}

func toCard(s Sample) DayCard {
	return DayCard{
		Dt:           s.Dt,
		Date:         time.Unix(s.Dt, 0).UTC().Format(time.DateOnly),
		Icon:         s.Icon,
		Description:  s.Description,
		Celsius:      KelvinToCelsius(s.Temp),
		FeelsLike:    KelvinToCelsius(s.FeelsLike),
		Humidity:     s.Humidity,
		WindSpeed:    s.WindSpeed,
		Pressure:     s.Pressure,
		VisibilityKM: math.Round(s.Visibility) / 1000,
	}
}

func formatCoord(c ports.Coordinates) string {
	return strconv.FormatFloat(c.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(c.Lon, 'f', -1, 64)
}
