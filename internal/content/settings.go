package content

import (
	"context"
	"errors"
	"log/slog"

	"haircoolest/internal/adapters/docstore"
)

// settingsCollection holds one settings document per content area.
const settingsCollection = "admin"

// Settings wraps one area's settings document: a flat map of named scalar
// fields mutated field-by-field by editors. The document is created
// implicitly on first write and never deleted.
type Settings struct {
	store docstore.Store
	docID string
}

// NewSettings creates accessors for the settings document with the given id.
func NewSettings(store docstore.Store, docID string) *Settings {
	return &Settings{store: store, docID: docID}
}

// Field reads one scalar field.
// POST: Returns "" when the document or field is absent or the store fails;
// never returns an error. A missing document is not logged; it simply has
// not been written by an editor yet.
func (s *Settings) Field(ctx context.Context, name string) string {
	doc, err := s.store.Get(ctx, settingsCollection, s.docID)
	if errors.Is(err, docstore.ErrNotFound) {
		return ""
	}
	if err != nil {
		slog.Error("settings_get_failed", "doc", s.docID, "field", name, "error", err)
		return ""
	}
	return doc.String(name)
}

// SetField merge-writes one scalar field.
// POST: Returns true on success, false on any failure (logged, not thrown).
// Concurrent editors last-write-wins per field.
func (s *Settings) SetField(ctx context.Context, name, value string) bool {
	return s.setValue(ctx, name, value)
}

// Value reads one field as its raw JSON-shaped value, for nested objects.
func (s *Settings) Value(ctx context.Context, name string) any {
	doc, err := s.store.Get(ctx, settingsCollection, s.docID)
	if errors.Is(err, docstore.ErrNotFound) {
		return nil
	}
	if err != nil {
		slog.Error("settings_get_failed", "doc", s.docID, "field", name, "error", err)
		return nil
	}
	return doc.Fields[name]
}

// SetValue merge-writes one field with an arbitrary JSON-shaped value.
func (s *Settings) SetValue(ctx context.Context, name string, value any) bool {
	return s.setValue(ctx, name, value)
}

func (s *Settings) setValue(ctx context.Context, name string, value any) bool {
	err := s.store.Set(ctx, settingsCollection, s.docID, map[string]any{name: value}, true)
	if err != nil {
		slog.Error("settings_set_failed", "doc", s.docID, "field", name, "error", err)
		return false
	}
	return true
}
