package client

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"weatherhistory.app/internal/core/export"
	"weatherhistory.app/pkg/errors"
)

// Store is the part of Client the history screen needs
type Store interface {
	List(ctx context.Context) ([]Record, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Record, error)
	Delete(ctx context.Context, id string) error
}

// Draft is the pending edit of one record
type Draft struct {
	ID       string
	Location string
	Note     string
}

// History keeps the fetched record list and at most one inline edit
type History struct {
	store   Store
	columns []export.Column

	mu      sync.Mutex
	records []Record
	draft   *Draft
}

// NewHistory creates a history view. CSV exports use columns, or the default set when none are given.
func NewHistory(store Store, columns ...export.Column) *History {
	return &History{store: store, columns: columns, records: []Record{}}
}

// Refresh reloads the full list
func (h *History) Refresh(ctx context.Context) error {
	records, err := h.store.List(ctx)
	if err != nil {
		return err
	}

	h.mu.Lock()
	h.records = records
	h.mu.Unlock()
	return nil
}

// Records returns a copy of the last fetched list
func (h *History) Records() []Record {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]Record, len(h.records))
	copy(out, h.records)
	return out
}

// BeginEdit seeds a draft from the record with id
func (h *History) BeginEdit(id string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, r := range h.records {
		if r.ID == id {
			h.draft = &Draft{ID: r.ID, Location: r.Location, Note: r.Note}
			return nil
		}
	}
	return errors.NewNotFoundError("record not found")
}

// SetDraft replaces the draft fields
func (h *History) SetDraft(location, note string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.draft == nil {
		return errors.NewValidationError("no record is being edited")
	}
	h.draft.Location = location
	h.draft.Note = note
	return nil
}

// Editing returns the current draft, if any
func (h *History) Editing() (Draft, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.draft == nil {
		return Draft{}, false
	}
	return *h.draft, true
}

// CancelEdit drops the draft
func (h *History) CancelEdit() {
	h.mu.Lock()
	h.draft = nil
	h.mu.Unlock()
}

// CommitEdit saves the draft and refreshes the list. The draft survives a failed save.
func (h *History) CommitEdit(ctx context.Context) error {
	draft, ok := h.Editing()
	if !ok {
		return errors.NewValidationError("no record is being edited")
	}
	if strings.TrimSpace(draft.Location) == "" {
		return errors.NewValidationError("location cannot be empty")
	}

	if _, err := h.store.Update(ctx, draft.ID, UpdateRequest{Location: &draft.Location, Note: &draft.Note}); err != nil {
		return err
	}
	h.CancelEdit()
	return h.Refresh(ctx)
}

// Delete removes a record and refreshes the list
func (h *History) Delete(ctx context.Context, id string) error {
	if err := h.store.Delete(ctx, id); err != nil {
		return err
	}

	h.mu.Lock()
	if h.draft != nil && h.draft.ID == id {
		h.draft = nil
	}
	h.mu.Unlock()
	return h.Refresh(ctx)
}

// Export writes the fetched list to dir under the fixed file name for format and returns the path
func (h *History) Export(format export.Format, dir string) (string, error) {
	records := h.Records()
	entries := make([]export.Entry, len(records))
	for i, r := range records {
		entries[i] = export.Entry{
			ID:          r.ID,
			Location:    r.Location,
			WeatherData: r.WeatherData,
			AirQuality:  r.AirQuality,
			Note:        r.Note,
			CreatedAt:   r.CreatedAt,
			UpdatedAt:   r.UpdatedAt,
		}
	}

	var buf bytes.Buffer
	if err := export.Render(&buf, format, entries, export.Options{Columns: h.columns}); err != nil {
		return "", errors.NewValidationError(err.Error())
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.NewConfigurationError("failed to create export directory", err)
	}
	path := filepath.Join(dir, format.Filename())
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", errors.NewConfigurationError("failed to write export file", err)
	}
	return path, nil
}
