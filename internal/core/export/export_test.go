package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEntries() []Entry {
	created := time.Date(2024, 3, 14, 9, 30, 0, 0, time.UTC)
	return []Entry{
		{
			ID:          "a1",
			Location:    "London",
			WeatherData: map[string]interface{}{"cod": "200"},
			Note:        "rainy, as usual",
			CreatedAt:   created,
			UpdatedAt:   created,
		},
		{
			ID:          "b2",
			Location:    "Kyiv",
			WeatherData: map[string]interface{}{"cod": "200"},
			CreatedAt:   created.Add(24 * time.Hour),
			UpdatedAt:   created.Add(48 * time.Hour),
		},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "json", want: FormatJSON},
		{in: "CSV", want: FormatCSV},
		{in: "markdown", want: FormatMarkdown},
		{in: " md ", want: FormatMarkdown},
		{in: "xml", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestFormat_Filename(t *testing.T) {
	assert.Equal(t, "weather_data.json", FormatJSON.Filename())
	assert.Equal(t, "weather_data.csv", FormatCSV.Filename())
	assert.Equal(t, "weather_data.md", FormatMarkdown.Filename())
}

func TestRender_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatJSON, sampleEntries(), Options{}))

	var decoded []map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Len(t, decoded, 2)
	assert.Equal(t, "London", decoded[0]["location"])
	assert.Contains(t, buf.String(), "\n  {")

	buf.Reset()
	require.NoError(t, Render(&buf, FormatJSON, nil, Options{}))
	assert.Equal(t, "[]\n", buf.String())
}

func TestRender_CSV(t *testing.T) {
	t.Run("DefaultColumns", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Render(&buf, FormatCSV, sampleEntries(), Options{}))

		rows, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, []string{"ID", "Location", "Note", "CreatedAt"}, rows[0])
		assert.Equal(t, []string{"a1", "London", "rainy, as usual", "2024-03-14T09:30:00Z"}, rows[1])
		assert.Equal(t, "", rows[2][2])
	})

	t.Run("CustomColumns", func(t *testing.T) {
		columns, err := ParseColumns("location, updatedAt")
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, Render(&buf, FormatCSV, sampleEntries(), Options{Columns: columns}))

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		assert.Equal(t, "Location,UpdatedAt", lines[0])
		assert.Equal(t, "Kyiv,2024-03-16T09:30:00Z", lines[2])
	})

	t.Run("EmptyList", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Render(&buf, FormatCSV, nil, Options{}))
		assert.Equal(t, "ID,Location,Note,CreatedAt\n", buf.String())
	})
}

func TestParseColumns(t *testing.T) {
	columns, err := ParseColumns("")
	require.NoError(t, err)
	assert.Equal(t, DefaultColumns(), columns)

	_, err = ParseColumns("id,weatherData")
	assert.Error(t, err)
}

func TestRender_Markdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatMarkdown, sampleEntries(), Options{}))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "# Weather Data\n\n"))
	assert.Contains(t, out, "- **ID**: a1\n  **Location**: London\n  **Note**: rainy, as usual\n  **Created**: 2024-03-14\n")
	assert.Contains(t, out, "**Created**: 2024-03-15")
	assert.Equal(t, 2, strings.Count(out, "- **ID**"))
}

func TestRender_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, Render(&buf, Format("pdf"), sampleEntries(), Options{}))
}
