// Package client talks to the weather history HTTP API and drives the lookup form and history
// screens of a front end.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"weatherhistory.app/internal/core/export"
	"weatherhistory.app/internal/core/forecast"
	"weatherhistory.app/pkg/errors"
)

// Record is a stored lookup as returned by the API
type Record struct {
	ID          string                 `json:"id"`
	Location    string                 `json:"location"`
	WeatherData map[string]interface{} `json:"weatherData"`
	AirQuality  map[string]interface{} `json:"airQuality,omitempty"`
	Note        string                 `json:"note"`
	CreatedAt   time.Time              `json:"createdAt"`
	UpdatedAt   time.Time              `json:"updatedAt"`
}

// Coordinates is an explicit latitude/longitude pair
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// CreateRequest is the body of a new lookup. Coordinates win over Location when both are set.
type CreateRequest struct {
	Location    string       `json:"location,omitempty"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
	Note        string       `json:"note,omitempty"`
}

// UpdateRequest carries the fields to change; nil fields are left untouched
type UpdateRequest struct {
	Location *string `json:"location,omitempty"`
	Note     *string `json:"note,omitempty"`
}

// ExportFile is a server-rendered export
type ExportFile struct {
	Filename    string
	ContentType string
	Body        []byte
}

// HTTPClient interface for HTTP requests (for testing)
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is a typed wrapper around the /api/weather endpoints
type Client struct {
	baseURL string
	http    HTTPClient
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client
func WithHTTPClient(c HTTPClient) Option {
	return func(cl *Client) {
		cl.http = c
	}
}

// New creates a client for the server at baseURL, e.g. http://localhost:5000
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Create posts a new lookup
func (c *Client) Create(ctx context.Context, req CreateRequest) (*Record, error) {
	var rec Record
	if err := c.do(ctx, http.MethodPost, "/api/weather", req, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// List returns every stored record, newest first
func (c *Client) List(ctx context.Context) ([]Record, error) {
	records := []Record{}
	if err := c.do(ctx, http.MethodGet, "/api/weather", nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// Get returns one record
func (c *Client) Get(ctx context.Context, id string) (*Record, error) {
	var rec Record
	if err := c.do(ctx, http.MethodGet, "/api/weather/"+url.PathEscape(id), nil, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Update changes the location and/or note of a record
func (c *Client) Update(ctx context.Context, id string, req UpdateRequest) (*Record, error) {
	var rec Record
	if err := c.do(ctx, http.MethodPut, "/api/weather/"+url.PathEscape(id), req, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Delete removes a record. Deleting an unknown id succeeds.
func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/weather/"+url.PathEscape(id), nil, nil)
}

// Forecast fetches the presentation view of a record. A non-nil expanded selects the day whose
// hourly trend is included.
func (c *Client) Forecast(ctx context.Context, id string, expanded *int64) (*forecast.View, error) {
	path := "/api/weather/" + url.PathEscape(id) + "/forecast"
	if expanded != nil {
		path += "?expanded=" + strconv.FormatInt(*expanded, 10)
	}

	var view forecast.View
	if err := c.do(ctx, http.MethodGet, path, nil, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

// Export downloads all records rendered by the server
func (c *Client) Export(ctx context.Context, format export.Format, columns ...export.Column) (*ExportFile, error) {
	query := url.Values{"format": {string(format)}}
	if len(columns) > 0 {
		names := make([]string, len(columns))
		for i, col := range columns {
			names[i] = string(col)
		}
		query.Set("columns", strings.Join(names, ","))
	}

	resp, err := c.send(ctx, http.MethodGet, "/api/weather/export?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.NewExternalAPIError("failed to read export", err)
	}

	return &ExportFile{
		Filename:    attachmentName(resp.Header.Get("Content-Disposition"), format.Filename()),
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
	}, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return errors.NewValidationError("failed to encode request: " + err.Error())
		}
		body = bytes.NewReader(data)
	}

	resp, err := c.send(ctx, method, path, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.NewExternalAPIError("failed to decode response", err)
	}
	return nil
}

// send performs the request and turns any non-2xx answer into an AppError
func (c *Client) send(ctx context.Context, method, path string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, errors.NewValidationError("failed to build request: " + err.Error())
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.NewExternalAPIError("request failed", err)
	}
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp, nil
	}
	defer resp.Body.Close()

	return nil, statusError(resp)
}

func statusError(resp *http.Response) error {
	var payload struct {
		Error string `json:"error"`
	}
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	message := http.StatusText(resp.StatusCode)
	if json.Unmarshal(data, &payload) == nil && payload.Error != "" {
		message = payload.Error
	}

	switch resp.StatusCode {
	case http.StatusBadRequest:
		return errors.NewValidationError(message)
	case http.StatusNotFound:
		return errors.NewNotFoundError(message)
	default:
		return errors.NewExternalAPIError(fmt.Sprintf("server returned status %d", resp.StatusCode), fmt.Errorf("%s", message))
	}
}

func attachmentName(header, fallback string) string {
	const marker = "filename="
	i := strings.Index(header, marker)
	if i < 0 {
		return fallback
	}
	name := strings.Trim(strings.TrimSpace(header[i+len(marker):]), `"`)
	if name == "" {
		return fallback
	}
	return name
}
