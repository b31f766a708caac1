// Package forecast projects stored provider payloads into the values a client renders:
// daily cards, per-day temperature trends, a map query and an air quality label.
package forecast

import (
	"encoding/json"
	"strings"

	"weatherhistory.app/internal/ports"
)

// Sample is one 3-hour forecast entry
type Sample struct {
	Dt          int64
	DtTxt       string
	Temp        float64
	FeelsLike   float64
	Humidity    float64
	Pressure    float64
	WindSpeed   float64
	Visibility  float64
	Icon        string
	Description string
}

// City is the forecast's city block
type City struct {
	Name     string
	Country  string
	Coord    ports.Coordinates
	HasCoord bool
	Sunrise  int64
	Sunset   int64
}

// Samples decodes the forecast "list" array. Malformed entries are skipped.
func Samples(payload ports.Payload) []Sample {
	raw, ok := payload["list"].([]interface{})
	if !ok {
		return nil
	}

	samples := make([]Sample, 0, len(raw))
	for _, item := range raw {
		entry, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		dt, ok := number(entry["dt"])
		if !ok {
			continue
		}

		s := Sample{Dt: int64(dt)}
		s.DtTxt, _ = entry["dt_txt"].(string)
		if main, ok := entry["main"].(map[string]interface{}); ok {
			s.Temp, _ = number(main["temp"])
			s.FeelsLike, _ = number(main["feels_like"])
			s.Humidity, _ = number(main["humidity"])
			s.Pressure, _ = number(main["pressure"])
		}
		if wind, ok := entry["wind"].(map[string]interface{}); ok {
			s.WindSpeed, _ = number(wind["speed"])
		}
		s.Visibility, _ = number(entry["visibility"])
		if weather, ok := entry["weather"].([]interface{}); ok && len(weather) > 0 {
			if first, ok := weather[0].(map[string]interface{}); ok {
				s.Icon, _ = first["icon"].(string)
				s.Description, _ = first["description"].(string)
			}
		}
		samples = append(samples, s)
	}
	return samples
}

// CityOf decodes the forecast "city" block
func CityOf(payload ports.Payload) City {
	var city City
	block, ok := payload["city"].(map[string]interface{})
	if !ok {
		return city
	}

	if name, ok := block["name"].(string); ok {
		city.Name = strings.TrimSpace(name)
	}
	city.Country, _ = block["country"].(string)
	if coord, ok := block["coord"].(map[string]interface{}); ok {
		lat, latOK := number(coord["lat"])
		lon, lonOK := number(coord["lon"])
		if latOK && lonOK {
			city.Coord = ports.Coordinates{Lat: lat, Lon: lon}
			city.HasCoord = true
		}
	}
	if v, ok := number(block["sunrise"]); ok {
		city.Sunrise = int64(v)
	}
	if v, ok := number(block["sunset"]); ok {
		city.Sunset = int64(v)
	}
	return city
}

// PM25 reads list[0].components.pm2_5 from an air pollution payload
func PM25(payload ports.Payload) (float64, bool) {
	components := Components(payload)
	v, ok := components["pm2_5"]
	return v, ok
}

// Components returns the pollutant concentrations of the first air pollution entry
func Components(payload ports.Payload) map[string]float64 {
	list, ok := payload["list"].([]interface{})
	if !ok || len(list) == 0 {
		return nil
	}
	first, ok := list[0].(map[string]interface{})
	if !ok {
		return nil
	}
	raw, ok := first["components"].(map[string]interface{})
	if !ok {
		return nil
	}

	components := make(map[string]float64, len(raw))
	for k, v := range raw {
		if n, ok := number(v); ok {
			components[k] = n
		}
	}
	return components
}

func number(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
