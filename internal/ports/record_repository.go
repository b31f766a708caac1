package ports

import (
	"context"
	"time"
)

// Payload is an opaque provider document stored verbatim.
type Payload map[string]interface{}

// RecordData represents a weather lookup record for persistence
type RecordData struct {
	ID          string
	Location    string
	WeatherData Payload
	AirQuality  Payload
	Note        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// RecordPatch carries the mutable fields of a record; nil means "leave unchanged"
type RecordPatch struct {
	Location *string
	Note     *string
}

// IsEmpty reports whether the patch changes nothing
func (p RecordPatch) IsEmpty() bool {
	return p.Location == nil && p.Note == nil
}

// RecordRepository defines the contract for weather record persistence
type RecordRepository interface {
	Create(ctx context.Context, record *RecordData) error
	FindAll(ctx context.Context) ([]*RecordData, error)
	FindByID(ctx context.Context, id string) (*RecordData, error)
	Update(ctx context.Context, id string, patch RecordPatch) (*RecordData, error)
	Delete(ctx context.Context, id string) error
}
