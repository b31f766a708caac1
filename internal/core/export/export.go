// Package export renders saved lookups as JSON, CSV or Markdown documents.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"
)

// Format identifies an export document type
type Format string

const (
	FormatJSON     Format = "json"
	FormatCSV      Format = "csv"
	FormatMarkdown Format = "markdown"
)

// ParseFormat accepts json, csv, markdown and md, case-insensitively
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "csv":
		return FormatCSV, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("unsupported export format %q", s)
	}
}

// Filename is the fixed download name for the format
func (f Format) Filename() string {
	switch f {
	case FormatCSV:
		return "weather_data.csv"
	case FormatMarkdown:
		return "weather_data.md"
	default:
		return "weather_data.json"
	}
}

// ContentType is the MIME type for the format
func (f Format) ContentType() string {
	switch f {
	case FormatCSV:
		return "text/csv; charset=utf-8"
	case FormatMarkdown:
		return "text/markdown; charset=utf-8"
	default:
		return "application/json; charset=utf-8"
	}
}

// Column is a CSV column
type Column string

const (
	ColumnID        Column = "id"
	ColumnLocation  Column = "location"
	ColumnNote      Column = "note"
	ColumnCreatedAt Column = "createdAt"
	ColumnUpdatedAt Column = "updatedAt"
)

var columnHeaders = map[Column]string{
	ColumnID:        "ID",
	ColumnLocation:  "Location",
	ColumnNote:      "Note",
	ColumnCreatedAt: "CreatedAt",
	ColumnUpdatedAt: "UpdatedAt",
}

// DefaultColumns is the CSV column set used when none is configured
func DefaultColumns() []Column {
	return []Column{ColumnID, ColumnLocation, ColumnNote, ColumnCreatedAt}
}

// ParseColumns parses a comma separated column list
func ParseColumns(s string) ([]Column, error) {
	if strings.TrimSpace(s) == "" {
		return DefaultColumns(), nil
	}

	var columns []Column
	for _, part := range strings.Split(s, ",") {
		c := Column(strings.TrimSpace(part))
		if _, ok := columnHeaders[c]; !ok {
			return nil, fmt.Errorf("unknown export column %q", part)
		}
		columns = append(columns, c)
	}
	return columns, nil
}

// Options tunes rendering
type Options struct {
	Columns []Column
}

// Entry is one exported record
type Entry struct {
	ID          string                 `json:"id"`
	Location    string                 `json:"location"`
	WeatherData map[string]interface{} `json:"weatherData"`
	AirQuality  map[string]interface{} `json:"airQuality,omitempty"`
	Note        string                 `json:"note"`
	CreatedAt   time.Time              `json:"createdAt"`
	UpdatedAt   time.Time              `json:"updatedAt"`
}

// Render writes entries to w in the given format
func Render(w io.Writer, format Format, entries []Entry, opts Options) error {
	switch format {
	case FormatJSON:
		return renderJSON(w, entries)
	case FormatCSV:
		return renderCSV(w, entries, opts.Columns)
	case FormatMarkdown:
		return renderMarkdown(w, entries)
	default:
		return fmt.Errorf("unsupported export format %q", format)
	}
}

func renderJSON(w io.Writer, entries []Entry) error {
	if entries == nil {
		entries = []Entry{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}

func renderCSV(w io.Writer, entries []Entry, columns []Column) error {
	if len(columns) == 0 {
		columns = DefaultColumns()
	}

	cw := csv.NewWriter(w)
	header := make([]string, len(columns))
	for i, c := range columns {
		header[i] = columnHeaders[c]
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, e := range entries {
		row := make([]string, len(columns))
		for i, c := range columns {
			row[i] = e.value(c)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func renderMarkdown(w io.Writer, entries []Entry) error {
	var b strings.Builder
	b.WriteString("# Weather Data\n\n")
	for _, e := range entries {
		fmt.Fprintf(&b, "- **ID**: %s\n", e.ID)
		fmt.Fprintf(&b, "  **Location**: %s\n", e.Location)
		fmt.Fprintf(&b, "  **Note**: %s\n", e.Note)
		fmt.Fprintf(&b, "  **Created**: %s\n\n", e.CreatedAt.UTC().Format(time.DateOnly))
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func (e Entry) value(c Column) string {
	switch c {
	case ColumnID:
		return e.ID
	case ColumnLocation:
		return e.Location
	case ColumnNote:
		return e.Note
	case ColumnCreatedAt:
		return e.CreatedAt.UTC().Format(time.RFC3339)
	case ColumnUpdatedAt:
		return e.UpdatedAt.UTC().Format(time.RFC3339)
	default:
		return ""
	}
}
