package record

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"weatherhistory.app/internal/ports"
	"weatherhistory.app/pkg/validation"
)

// LocationKind tells the gateway which upstream path resolves a location
type LocationKind int

const (
	LocationKindUnknown LocationKind = iota
	LocationKindName
	LocationKindCoordinates
)

// String returns the string representation of the location kind
func (k LocationKind) String() string {
	switch k {
	case LocationKindName:
		return "name"
	case LocationKindCoordinates:
		return "coordinates"
	default:
		return "unknown"
	}
}

// Location is either a free-text place name or a coordinate pair.
// Raw keeps the text the caller supplied and is the fallback display name.
type Location struct {
	Kind        LocationKind
	Name        string
	Coordinates ports.Coordinates
	Raw         string
}

// NameLocation builds a place-name location
func NameLocation(name string) Location {
	trimmed := strings.TrimSpace(name)
	return Location{Kind: LocationKindName, Name: trimmed, Raw: trimmed}
}

// CoordinatesLocation builds a coordinate location
func CoordinatesLocation(lat, lon float64) Location {
	return Location{
		Kind:        LocationKindCoordinates,
		Coordinates: ports.Coordinates{Lat: lat, Lon: lon},
		Raw:         FormatCoordinates(lat, lon),
	}
}

// ParseLocation classifies free text. Only a strict "<num>,<num>" pair is treated as
// coordinates, so "Paris, France" stays a place name.
func ParseLocation(raw string) Location {
	if lat, lon, ok := validation.ParseCoordinates(raw); ok {
		loc := CoordinatesLocation(lat, lon)
		loc.Raw = strings.TrimSpace(raw)
		return loc
	}
	return NameLocation(raw)
}

// FormatCoordinates renders a pair the way the client sends it: "lat,lon"
func FormatCoordinates(lat, lon float64) string {
	return strconv.FormatFloat(lat, 'f', -1, 64) + "," + strconv.FormatFloat(lon, 'f', -1, 64)
}

// IsValid validates the location
func (l Location) IsValid() error {
	switch l.Kind {
	case LocationKindName:
		if strings.TrimSpace(l.Name) == "" {
			return fmt.Errorf("location cannot be empty")
		}
	case LocationKindCoordinates:
		if !validation.IsValidLatitude(l.Coordinates.Lat) {
			return fmt.Errorf("latitude must be between -90 and 90")
		}
		if !validation.IsValidLongitude(l.Coordinates.Lon) {
			return fmt.Errorf("longitude must be between -180 and 180")
		}
	default:
		return fmt.Errorf("location cannot be empty")
	}
	return nil
}

// Record is one persisted weather lookup
type Record struct {
	ID          string
	Location    string
	WeatherData ports.Payload
	AirQuality  ports.Payload
	Note        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CreateParams represents a lookup submission
type CreateParams struct {
	Location Location
	Note     string
}

// IsValid validates create parameters
func (p CreateParams) IsValid() error {
	return p.Location.IsValid()
}

// UpdateParams represents an allow-listed partial update
type UpdateParams struct {
	ID       string
	Location *string
	Note     *string
}

// IsValid validates update parameters
func (p UpdateParams) IsValid() error {
	if strings.TrimSpace(p.ID) == "" {
		return fmt.Errorf("record id cannot be empty")
	}
	if p.Location != nil && strings.TrimSpace(*p.Location) == "" {
		return fmt.Errorf("location cannot be empty")
	}
	return nil
}

// Patch converts the parameters into a repository patch, trimming the location
func (p UpdateParams) Patch() ports.RecordPatch {
	patch := ports.RecordPatch{Note: p.Note}
	if p.Location != nil {
		trimmed := strings.TrimSpace(*p.Location)
		patch.Location = &trimmed
	}
	return patch
}

func fromData(data *ports.RecordData) *Record {
	return &Record{
		ID:          data.ID,
		Location:    data.Location,
		WeatherData: data.WeatherData,
		AirQuality:  data.AirQuality,
		Note:        data.Note,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
