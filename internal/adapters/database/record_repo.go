package database

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"weatherhistory.app/internal/ports"
	"weatherhistory.app/pkg/errors"
)

// RecordModel represents the database model for weather lookups.
// Provider payloads are stored verbatim as JSON text.
type RecordModel struct {
	ID          string        `gorm:"primaryKey;type:varchar(36)"`
	Location    string        `gorm:"not null"`
	WeatherData ports.Payload `gorm:"serializer:json;type:text;not null"`
	AirQuality  ports.Payload `gorm:"serializer:json;type:text"`
	Note        string        `gorm:"not null;default:''"`
	CreatedAt   time.Time     `gorm:"index"`
	UpdatedAt   time.Time
}

func (RecordModel) TableName() string {
	return "weather_records"
}

// BeforeCreate assigns a random identifier to new records
func (m *RecordModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// RecordRepositoryAdapter implements the RecordRepository port using GORM
type RecordRepositoryAdapter struct {
	db *gorm.DB
}

// NewRecordRepositoryAdapter creates a new record repository adapter
func NewRecordRepositoryAdapter(db *gorm.DB) ports.RecordRepository {
	return &RecordRepositoryAdapter{db: db}
}

// Create persists a new record and fills in its id and timestamps
func (r *RecordRepositoryAdapter) Create(ctx context.Context, record *ports.RecordData) error {
	if record == nil {
		return errors.NewValidationError("record cannot be nil")
	}
	if record.Location == "" {
		return errors.NewValidationError("record location cannot be empty")
	}
	if record.WeatherData == nil {
		return errors.NewValidationError("record weather data cannot be empty")
	}

	model := r.dataToModel(record)
	if result := r.db.WithContext(ctx).Create(model); result.Error != nil {
		return errors.NewDatabaseError("failed to create weather record", result.Error)
	}

	record.ID = model.ID
	record.CreatedAt = model.CreatedAt
	record.UpdatedAt = model.UpdatedAt
	return nil
}

// FindAll returns every record in creation order
func (r *RecordRepositoryAdapter) FindAll(ctx context.Context) ([]*ports.RecordData, error) {
	var models []RecordModel
	result := r.db.WithContext(ctx).Order("created_at asc").Order("id asc").Find(&models)
	if result.Error != nil {
		return nil, errors.NewDatabaseError("failed to list weather records", result.Error)
	}

	records := make([]*ports.RecordData, len(models))
	for i := range models {
		records[i] = r.modelToData(&models[i])
	}
	return records, nil
}

// FindByID retrieves a record by its ID
func (r *RecordRepositoryAdapter) FindByID(ctx context.Context, id string) (*ports.RecordData, error) {
	if id == "" {
		return nil, errors.NewValidationError("record ID cannot be empty")
	}

	var model RecordModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&model)
	if result.Error != nil {
		if stderrors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("weather record not found")
		}
		return nil, errors.NewDatabaseError("failed to find weather record", result.Error)
	}

	return r.modelToData(&model), nil
}

// Update writes only the fields present in the patch
func (r *RecordRepositoryAdapter) Update(ctx context.Context, id string, patch ports.RecordPatch) (*ports.RecordData, error) {
	if id == "" {
		return nil, errors.NewValidationError("record ID cannot be empty")
	}
	if patch.IsEmpty() {
		return r.FindByID(ctx, id)
	}

	updates := make(map[string]interface{}, 2)
	if patch.Location != nil {
		updates["location"] = *patch.Location
	}
	if patch.Note != nil {
		updates["note"] = *patch.Note
	}

	result := r.db.WithContext(ctx).Model(&RecordModel{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, errors.NewDatabaseError("failed to update weather record", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, errors.NewNotFoundError("weather record not found")
	}

	return r.FindByID(ctx, id)
}

// Delete removes a record. Removing an absent record is not an error.
func (r *RecordRepositoryAdapter) Delete(ctx context.Context, id string) error {
	if id == "" {
		return errors.NewValidationError("record ID cannot be empty")
	}

	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&RecordModel{})
	if result.Error != nil {
		return errors.NewDatabaseError("failed to delete weather record", result.Error)
	}

	return nil
}

// dataToModel converts port data to database model
func (r *RecordRepositoryAdapter) dataToModel(data *ports.RecordData) *RecordModel {
	return &RecordModel{
		ID:          data.ID,
		Location:    data.Location,
		WeatherData: data.WeatherData,
		AirQuality:  data.AirQuality,
		Note:        data.Note,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// modelToData converts database model to port data
func (r *RecordRepositoryAdapter) modelToData(model *RecordModel) *ports.RecordData {
	return &ports.RecordData{
		ID:          model.ID,
		Location:    model.Location,
		WeatherData: model.WeatherData,
		AirQuality:  model.AirQuality,
		Note:        model.Note,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}
