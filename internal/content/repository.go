// Package content is the data-access layer behind the editing dashboard and
// the public pages. One module per content area wraps a settings document
// plus its child collections, all built on a single generic repository.
//
// Error policy, uniform across every module: reads never fail the caller
// (failures are logged and a zero value returned, so pages render fallback
// content), while mutations return the error so forms can surface it.
package content

import (
	"context"
	"fmt"
	"log/slog"

	"haircoolest/internal/adapters/docstore"
)

// Repository provides List/Add/Update/Delete for one child collection,
// decoding raw documents into typed records at the boundary.
type Repository[T any] struct {
	store      docstore.Store
	collection string
	decode     func(docstore.Document) T
}

// NewRepository creates a repository over a named collection.
// PRE: decode fills defaults for absent fields
func NewRepository[T any](store docstore.Store, collection string, decode func(docstore.Document) T) *Repository[T] {
	return &Repository[T]{store: store, collection: collection, decode: decode}
}

// List fetches every record in the collection.
// POST: Returns decoded records; nil on failure (logged, never an error)
func (r *Repository[T]) List(ctx context.Context) []T {
	docs, err := r.store.List(ctx, r.collection)
	if err != nil {
		slog.Error("content_list_failed", "collection", r.collection, "error", err)
		return nil
	}
	records := make([]T, 0, len(docs))
	for _, d := range docs {
		records = append(records, r.decode(d))
	}
	return records
}

// Add creates a new record and returns its store-generated id.
// POST: Record persisted; error is returned to the caller (not swallowed)
func (r *Repository[T]) Add(ctx context.Context, fields map[string]any) (string, error) {
	id, err := r.store.Add(ctx, r.collection, fields)
	if err != nil {
		slog.Error("content_add_failed", "collection", r.collection, "error", err)
		return "", fmt.Errorf("add to %s: %w", r.collection, err)
	}
	return id, nil
}

// Update merges the given fields into an existing record.
// POST: Only the named fields change; error is returned to the caller
func (r *Repository[T]) Update(ctx context.Context, id string, fields map[string]any) error {
	if err := r.store.Update(ctx, r.collection, id, fields); err != nil {
		slog.Error("content_update_failed", "collection", r.collection, "id", id, "error", err)
		return fmt.Errorf("update %s/%s: %w", r.collection, id, err)
	}
	return nil
}

// Delete removes a record by id. No cascade: records referencing the deleted
// id by convention keep their dangling reference.
// POST: Record is gone; error is returned to the caller
func (r *Repository[T]) Delete(ctx context.Context, id string) error {
	if err := r.store.Delete(ctx, r.collection, id); err != nil {
		slog.Error("content_delete_failed", "collection", r.collection, "id", id, "error", err)
		return fmt.Errorf("delete %s/%s: %w", r.collection, id, err)
	}
	return nil
}

// setIf merges an optional field into a partial-update field map.
func setIf[T any](fields map[string]any, key string, v *T) {
	if v != nil {
		fields[key] = *v
	}
}
