package record

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"
	"weatherhistory.app/internal/core/export"
	"weatherhistory.app/internal/core/forecast"
	"weatherhistory.app/internal/ports"
	"weatherhistory.app/pkg/errors"
)

type UseCase struct {
	repository      ports.RecordRepository
	weatherProvider ports.WeatherProvider
	logger          ports.Logger
	metrics         ports.MetricsCollector
}

type UseCaseDependencies struct {
	Repository      ports.RecordRepository
	WeatherProvider ports.WeatherProvider
	Logger          ports.Logger
	Metrics         ports.MetricsCollector
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Repository == nil {
		return nil, errors.NewValidationError("record repository is required")
	}
	if deps.WeatherProvider == nil {
		return nil, errors.NewValidationError("weather provider is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if deps.Metrics == nil {
		return nil, errors.NewValidationError("metrics is required")
	}

	return &UseCase{
		repository:      deps.Repository,
		weatherProvider: deps.WeatherProvider,
		logger:          deps.Logger,
		metrics:         deps.Metrics,
	}, nil
}

// resolution is the outcome of looking a location up upstream
type resolution struct {
	location  string
	forecast  ports.Payload
	coords    ports.Coordinates
	hasCoords bool
}

// Create resolves the location upstream and persists the lookup. Nothing is stored when any
// upstream call fails.
func (uc *UseCase) Create(ctx context.Context, params CreateParams) (*Record, error) {
	if err := params.IsValid(); err != nil {
		return nil, errors.NewValidationError("invalid lookup: " + err.Error())
	}

	uc.logger.Debug("Creating weather record",
		ports.F("location", params.Location.Raw),
		ports.F("kind", params.Location.Kind.String()))

	var (
		res *resolution
		err error
	)
	if params.Location.Kind == LocationKindCoordinates {
		res, err = uc.resolveByCoordinates(ctx, params.Location)
	} else {
		res, err = uc.resolveByName(ctx, params.Location)
	}
	if err != nil {
		uc.metrics.RecordRecordOperation(ctx, "create", false)
		uc.logger.Error("Failed to resolve location",
			ports.F("location", params.Location.Raw),
			ports.F("error", err))
		return nil, fmt.Errorf("resolve location %s: %w", params.Location.Raw, err)
	}

	var airQuality ports.Payload
	if res.hasCoords {
		airQuality, err = uc.weatherProvider.AirQuality(ctx, res.coords)
		if err != nil {
			uc.metrics.RecordRecordOperation(ctx, "create", false)
			return nil, fmt.Errorf("get air quality for %s: %w", res.location, err)
		}
	} else {
		uc.logger.Warn("Forecast carried no coordinates, skipping air quality",
			ports.F("location", res.location))
	}

	data := &ports.RecordData{
		Location:    res.location,
		WeatherData: res.forecast,
		AirQuality:  airQuality,
		Note:        params.Note,
	}
	if err := uc.repository.Create(ctx, data); err != nil {
		uc.metrics.RecordRecordOperation(ctx, "create", false)
		return nil, fmt.Errorf("save weather record: %w", err)
	}

	uc.metrics.RecordRecordOperation(ctx, "create", true)
	uc.logger.Info("Weather record created",
		ports.F("id", data.ID),
		ports.F("location", data.Location))
	return fromData(data), nil
}

func (uc *UseCase) resolveByCoordinates(ctx context.Context, loc Location) (*resolution, error) {
	var (
		payload ports.Payload
		places  []ports.Place
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		payload, err = uc.weatherProvider.ForecastByCoordinates(gctx, loc.Coordinates)
		return err
	})
	g.Go(func() error {
		var err error
		places, err = uc.weatherProvider.ReverseGeocode(gctx, loc.Coordinates)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	name := loc.Raw
	if len(places) > 0 && strings.TrimSpace(places[0].Name) != "" {
		name = strings.TrimSpace(places[0].Name)
	} else {
		uc.logger.Debug("Reverse geocoding returned no place, keeping raw coordinates",
			ports.F("location", loc.Raw))
	}

	return &resolution{
		location:  name,
		forecast:  payload,
		coords:    loc.Coordinates,
		hasCoords: true,
	}, nil
}

func (uc *UseCase) resolveByName(ctx context.Context, loc Location) (*resolution, error) {
	payload, err := uc.weatherProvider.ForecastByName(ctx, loc.Name)
	if err != nil {
		return nil, err
	}

	city := forecast.CityOf(payload)
	name := city.Name
	if name == "" {
		name = loc.Name
	}

	return &resolution{
		location:  name,
		forecast:  payload,
		coords:    city.Coord,
		hasCoords: city.HasCoord,
	}, nil
}

// List returns every record in creation order
func (uc *UseCase) List(ctx context.Context) ([]*Record, error) {
	data, err := uc.repository.FindAll(ctx)
	if err != nil {
		uc.metrics.RecordRecordOperation(ctx, "list", false)
		return nil, fmt.Errorf("list weather records: %w", err)
	}
	uc.metrics.RecordRecordOperation(ctx, "list", true)

	records := make([]*Record, 0, len(data))
	for _, d := range data {
		records = append(records, fromData(d))
	}
	return records, nil
}

func (uc *UseCase) Get(ctx context.Context, id string) (*Record, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errors.NewValidationError("record id cannot be empty")
	}

	data, err := uc.repository.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get weather record %s: %w", id, err)
	}
	return fromData(data), nil
}

// Update applies the supplied fields only. An empty patch returns the current record.
func (uc *UseCase) Update(ctx context.Context, params UpdateParams) (*Record, error) {
	if err := params.IsValid(); err != nil {
		return nil, errors.NewValidationError("invalid update: " + err.Error())
	}

	patch := params.Patch()
	if patch.IsEmpty() {
		return uc.Get(ctx, params.ID)
	}

	data, err := uc.repository.Update(ctx, params.ID, patch)
	if err != nil {
		uc.metrics.RecordRecordOperation(ctx, "update", false)
		uc.logger.Error("Failed to update weather record",
			ports.F("id", params.ID),
			ports.F("error", err))
		return nil, fmt.Errorf("update weather record %s: %w", params.ID, err)
	}

	uc.metrics.RecordRecordOperation(ctx, "update", true)
	uc.logger.Info("Weather record updated", ports.F("id", params.ID))
	return fromData(data), nil
}

// Delete removes the record. Deleting an absent id succeeds.
func (uc *UseCase) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return errors.NewValidationError("record id cannot be empty")
	}

	if err := uc.repository.Delete(ctx, id); err != nil {
		uc.metrics.RecordRecordOperation(ctx, "delete", false)
		return fmt.Errorf("delete weather record %s: %w", id, err)
	}

	uc.metrics.RecordRecordOperation(ctx, "delete", true)
	uc.logger.Info("Weather record deleted", ports.F("id", id))
	return nil
}

// Export renders every record as a document of the given format
func (uc *UseCase) Export(ctx context.Context, format export.Format, opts export.Options) ([]byte, error) {
	records, err := uc.List(ctx)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := export.Render(&buf, format, ToEntries(records), opts); err != nil {
		return nil, fmt.Errorf("render %s export: %w", format, err)
	}
	return buf.Bytes(), nil
}

// Forecast projects a stored record into its view model. expanded selects the open day card.
func (uc *UseCase) Forecast(ctx context.Context, id string, expanded *int64) (*forecast.View, error) {
	rec, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	var expansion forecast.Expansion
	if expanded != nil {
		expansion.Toggle(*expanded)
	}

	view := forecast.Present(forecast.Input{
		Location:    rec.Location,
		WeatherData: rec.WeatherData,
		AirQuality:  rec.AirQuality,
		Expansion:   expansion,
	})
	return &view, nil
}

// ToEntries converts records into export entries
func ToEntries(records []*Record) []export.Entry {
	entries := make([]export.Entry, 0, len(records))
	for _, r := range records {
		entries = append(entries, export.Entry{
			ID:          r.ID,
			Location:    r.Location,
			WeatherData: r.WeatherData,
			AirQuality:  r.AirQuality,
			Note:        r.Note,
			CreatedAt:   r.CreatedAt,
			UpdatedAt:   r.UpdatedAt,
		})
	}
	return entries
}
