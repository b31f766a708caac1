package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"weatherhistory.app/internal/core/export"
	"weatherhistory.app/internal/core/record"
	"weatherhistory.app/internal/ports"
	"weatherhistory.app/pkg/errors"
)

// CoordinatesRequest is the explicit coordinate form of a lookup
type CoordinatesRequest struct {
	Lat *float64 `json:"lat" binding:"required,gte=-90,lte=90"`
	Lon *float64 `json:"lon" binding:"required,gte=-180,lte=180"`
}

// CreateRecordRequest accepts either a location string or explicit coordinates
type CreateRecordRequest struct {
	Location    string              `json:"location" binding:"required_without=Coordinates,location,max=200"`
	Coordinates *CoordinatesRequest `json:"coordinates" binding:"omitempty"`
	Note        string              `json:"note" binding:"max=1000"`
}

// UpdateRecordRequest lists the only fields a client may change
type UpdateRecordRequest struct {
	Location *string `json:"location"`
	Note     *string `json:"note"`
}

// RecordResponse is the wire shape of a stored lookup
type RecordResponse struct {
	ID          string        `json:"id"`
	Location    string        `json:"location"`
	WeatherData ports.Payload `json:"weatherData"`
	AirQuality  ports.Payload `json:"airQuality,omitempty"`
	Note        string        `json:"note"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// SuccessResponse represents a successful HTTP response
type SuccessResponse struct {
	Message string `json:"message"`
}

func toRecordResponse(r *record.Record) RecordResponse {
	return RecordResponse{
		ID:          r.ID,
		Location:    r.Location,
		WeatherData: r.WeatherData,
		AirQuality:  r.AirQuality,
		Note:        r.Note,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func (req CreateRecordRequest) params() record.CreateParams {
	loc := record.ParseLocation(req.Location)
	if req.Coordinates != nil {
		loc = record.CoordinatesLocation(*req.Coordinates.Lat, *req.Coordinates.Lon)
	}
	return record.CreateParams{Location: loc, Note: req.Note}
}

// createRecord handles POST /api/weather requests
func (s *HTTPServerAdapter) createRecord(c *gin.Context) {
	var req CreateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Debug("Request binding error", "error", err)
		s.handleError(c, errors.NewValidationError(msgInvalidBody), msgCreateFailed)
		return
	}

	params := req.params()
	slog.Debug("Weather lookup received", "kind", params.Location.Kind.String(), "location", params.Location.Raw)

	rec, err := s.recordUseCase.Create(c.Request.Context(), params)
	if err != nil {
		s.handleError(c, err, msgCreateFailed)
		return
	}

	c.JSON(http.StatusCreated, toRecordResponse(rec))
}

// listRecords handles GET /api/weather requests
func (s *HTTPServerAdapter) listRecords(c *gin.Context) {
	records, err := s.recordUseCase.List(c.Request.Context())
	if err != nil {
		s.handleError(c, err, msgFetchFailed)
		return
	}

	response := make([]RecordResponse, 0, len(records))
	for _, r := range records {
		response = append(response, toRecordResponse(r))
	}
	c.JSON(http.StatusOK, response)
}

// getRecord handles GET /api/weather/:id requests
func (s *HTTPServerAdapter) getRecord(c *gin.Context) {
	rec, err := s.recordUseCase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.handleError(c, err, msgFetchFailed)
		return
	}

	c.JSON(http.StatusOK, toRecordResponse(rec))
}

// updateRecord handles PUT /api/weather/:id requests. Unknown fields are rejected.
func (s *HTTPServerAdapter) updateRecord(c *gin.Context) {
	var req UpdateRecordRequest
	decoder := json.NewDecoder(c.Request.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		slog.Debug("Update body rejected", "error", err)
		s.handleError(c, errors.NewValidationError(msgInvalidBody), msgUpdateFailed)
		return
	}

	rec, err := s.recordUseCase.Update(c.Request.Context(), record.UpdateParams{
		ID:       c.Param("id"),
		Location: req.Location,
		Note:     req.Note,
	})
	if err != nil {
		s.handleError(c, err, msgUpdateFailed)
		return
	}

	c.JSON(http.StatusOK, toRecordResponse(rec))
}

// deleteRecord handles DELETE /api/weather/:id requests
func (s *HTTPServerAdapter) deleteRecord(c *gin.Context) {
	if err := s.recordUseCase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		s.handleError(c, err, msgDeleteFailed)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "Data deleted"})
}

// exportRecords handles GET /api/weather/export?format=json|csv|markdown&columns=... requests
func (s *HTTPServerAdapter) exportRecords(c *gin.Context) {
	format, err := export.ParseFormat(c.DefaultQuery("format", string(export.FormatJSON)))
	if err != nil {
		s.handleError(c, errors.NewValidationError(err.Error()), msgExportFailed)
		return
	}
	columns, err := export.ParseColumns(c.Query("columns"))
	if err != nil {
		s.handleError(c, errors.NewValidationError(err.Error()), msgExportFailed)
		return
	}

	body, err := s.recordUseCase.Export(c.Request.Context(), format, export.Options{Columns: columns})
	if err != nil {
		s.handleError(c, err, msgExportFailed)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+format.Filename()+`"`)
	c.Data(http.StatusOK, format.ContentType(), body)
}

// getForecast handles GET /api/weather/:id/forecast?expanded=<dt> requests
func (s *HTTPServerAdapter) getForecast(c *gin.Context) {
	var expanded *int64
	if raw := c.Query("expanded"); raw != "" {
		dt, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			s.handleError(c, errors.NewValidationError("expanded must be a unix timestamp"), msgFetchFailed)
			return
		}
		expanded = &dt
	}

	view, err := s.recordUseCase.Forecast(c.Request.Context(), c.Param("id"), expanded)
	if err != nil {
		s.handleError(c, err, msgFetchFailed)
		return
	}

	c.JSON(http.StatusOK, view)
}
