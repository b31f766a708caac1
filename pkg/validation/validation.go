package validation

import (
	"regexp"
	"strconv"
	"strings"
)

// "<num>,<num>" with optional sign, decimals and surrounding whitespace
var coordinatesRegex = regexp.MustCompile(`^\s*([+-]?\d+(?:\.\d+)?)\s*,\s*([+-]?\d+(?:\.\d+)?)\s*$`)

// IsNotEmpty checks if string is not empty after trimming
func IsNotEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}

// TrimAndValidate trims string and validates it's not empty
func TrimAndValidate(s string) (string, bool) {
	trimmed := strings.TrimSpace(s)
	return trimmed, trimmed != ""
}

// ParseCoordinates extracts a latitude/longitude pair from "lat,lon" text.
// It only reports whether the text has the shape of a pair; range checks are separate.
func ParseCoordinates(s string) (lat, lon float64, ok bool) {
	m := coordinatesRegex.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, false
	}
	lat, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, 0, false
	}
	lon, err = strconv.ParseFloat(m[2], 64)
	if err != nil {
		return 0, 0, false
	}
	return lat, lon, true
}

// IsValidLatitude reports whether lat is within [-90, 90]
func IsValidLatitude(lat float64) bool {
	return lat >= -90 && lat <= 90
}

// IsValidLongitude reports whether lon is within [-180, 180]
func IsValidLongitude(lon float64) bool {
	return lon >= -180 && lon <= 180
}
