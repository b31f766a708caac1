package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"weatherhistory.app/internal/ports"
)

func TestParseLocation(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantKind LocationKind
		wantName string
		wantLat  float64
		wantLon  float64
	}{
		{name: "CityName", input: "London", wantKind: LocationKindName, wantName: "London"},
		{name: "TrimsName", input: "  Kyiv  ", wantKind: LocationKindName, wantName: "Kyiv"},
		{name: "CityWithCountry", input: "Paris, France", wantKind: LocationKindName, wantName: "Paris, France"},
		{name: "Coordinates", input: "51.5,-0.12", wantKind: LocationKindCoordinates, wantLat: 51.5, wantLon: -0.12},
		{name: "CoordinatesWithSpaces", input: " 50.45 , 30.52 ", wantKind: LocationKindCoordinates, wantLat: 50.45, wantLon: 30.52},
		{name: "IntegerCoordinates", input: "10,20", wantKind: LocationKindCoordinates, wantLat: 10, wantLon: 20},
		{name: "ThreeParts", input: "1,2,3", wantKind: LocationKindName, wantName: "1,2,3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc := ParseLocation(tt.input)

			assert.Equal(t, tt.wantKind, loc.Kind)
			if tt.wantKind == LocationKindName {
				assert.Equal(t, tt.wantName, loc.Name)
				return
			}
			assert.Equal(t, ports.Coordinates{Lat: tt.wantLat, Lon: tt.wantLon}, loc.Coordinates)
		})
	}
}

func TestLocation_IsValid(t *testing.T) {
	tests := []struct {
		name    string
		loc     Location
		wantErr string
	}{
		{name: "ValidName", loc: NameLocation("London")},
		{name: "EmptyName", loc: NameLocation("   "), wantErr: "location cannot be empty"},
		{name: "ValidCoordinates", loc: CoordinatesLocation(-90, 180)},
		{name: "LatitudeOutOfRange", loc: CoordinatesLocation(90.1, 0), wantErr: "latitude"},
		{name: "LongitudeOutOfRange", loc: CoordinatesLocation(0, -180.5), wantErr: "longitude"},
		{name: "ZeroValue", loc: Location{}, wantErr: "location cannot be empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.loc.IsValid()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestFormatCoordinates(t *testing.T) {
	assert.Equal(t, "50.45,30.52", FormatCoordinates(50.45, 30.52))
	assert.Equal(t, "-33.8688,151.2093", FormatCoordinates(-33.8688, 151.2093))
	assert.Equal(t, "0,0", FormatCoordinates(0, 0))
}

func TestUpdateParams(t *testing.T) {
	empty := ""
	spaced := "  Lviv "
	note := "warm"

	assert.Error(t, UpdateParams{}.IsValid())
	assert.Error(t, UpdateParams{ID: "a", Location: &empty}.IsValid())
	assert.NoError(t, UpdateParams{ID: "a"}.IsValid())

	patch := UpdateParams{ID: "a", Location: &spaced, Note: &note}.Patch()
	assert.Equal(t, "Lviv", *patch.Location)
	assert.Equal(t, "warm", *patch.Note)
	assert.True(t, UpdateParams{ID: "a"}.Patch().IsEmpty())
}

func TestLocationKind_String(t *testing.T) {
	assert.Equal(t, "name", LocationKindName.String())
	assert.Equal(t, "coordinates", LocationKindCoordinates.String())
	assert.Equal(t, "unknown", LocationKindUnknown.String())
}
