package content

import (
	"context"

	"haircoolest/internal/adapters/docstore"
)

// Site manages the shared "other" settings document: contact email,
// instagram handle and the embedded branch maps. Fields are addressed by
// name rather than dedicated accessors because the footer and contact page
// read an open-ended set of keys.
type Site struct {
	settings *Settings
}

// NewSite wires the Site module against the document store.
func NewSite(store docstore.Store) *Site {
	return &Site{settings: NewSettings(store, "other")}
}

// Field reads one named field; "" when unset or on store failure.
func (s *Site) Field(ctx context.Context, name string) string {
	return s.settings.Field(ctx, name)
}

// SetField merge-writes one named field; false on failure.
func (s *Site) SetField(ctx context.Context, name, value string) bool {
	return s.settings.SetField(ctx, name, value)
}
