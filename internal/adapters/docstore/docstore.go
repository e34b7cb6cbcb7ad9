// Package docstore provides the document-store vocabulary the content layer
// is written against: named collections of schemaless JSON documents with
// store-assigned ids, merge-writes, and no referential integrity.
package docstore

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a document id does not exist in a collection.
// Callers use it to distinguish "never written" from a transport failure.
var ErrNotFound = errors.New("document not found")

// Document is a single schemaless record: a store id plus JSON-shaped fields.
type Document struct {
	ID     string
	Fields map[string]any
}

// Store is the full read/write vocabulary of the document database.
// All relationships between documents are by-convention foreign keys;
// the store never cascades and never validates field shapes.
type Store interface {
	// Get returns the document with the given id, or ErrNotFound.
	Get(ctx context.Context, collection, id string) (Document, error)

	// Set writes fields to the document with the given id, creating it if
	// absent. With merge=true only the named fields are overwritten and
	// sibling fields are preserved; with merge=false the document is replaced.
	Set(ctx context.Context, collection, id string, fields map[string]any, merge bool) error

	// Add creates a new document with a store-generated id and returns the id.
	Add(ctx context.Context, collection string, fields map[string]any) (string, error)

	// Update merges fields into an existing document.
	// Returns ErrNotFound if the id does not exist.
	Update(ctx context.Context, collection, id string, fields map[string]any) error

	// Delete removes the document with the given id. Deleting an id that
	// does not exist is not an error.
	Delete(ctx context.Context, collection, id string) error

	// List returns every document in the collection in insertion order.
	List(ctx context.Context, collection string) ([]Document, error)
}

// String reads a field as a string, returning "" for missing or non-string
// values. Documents are editor-written, so field types are advisory.
func (d Document) String(field string) string {
	v, ok := d.Fields[field].(string)
	if !ok {
		return ""
	}
	return v
}

// Int reads a field as an int. JSON decoding produces float64 for numbers,
// so both forms are accepted. Missing or non-numeric values yield 0.
func (d Document) Int(field string) int {
	switch v := d.Fields[field].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}

// Strings reads a field as a string slice, skipping non-string elements.
func (d Document) Strings(field string) []string {
	raw, ok := d.Fields[field].([]any)
	if !ok {
		if direct, ok := d.Fields[field].([]string); ok {
			return direct
		}
		return nil
	}
	var out []string
	for _, e := range raw {
		if s, ok := e.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// Map reads a field as a nested object, or nil if absent or not an object.
func (d Document) Map(field string) map[string]any {
	m, ok := d.Fields[field].(map[string]any)
	if !ok {
		return nil
	}
	return m
}
