package docstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db SQLDB
}

// NewSQLiteStore creates a new SQLiteStore.
func NewSQLiteStore(db SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Compile-time check that *SQLiteStore satisfies Store.
var _ Store = (*SQLiteStore)(nil)

// Get retrieves a document by id.
// PRE: collection and id are non-empty
// POST: Returns the document or ErrNotFound
func (s *SQLiteStore) Get(ctx context.Context, collection, id string) (Document, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT fields FROM document WHERE collection = ? AND id = ?`, collection, id)

	var raw string
	if err := row.Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Document{}, ErrNotFound
		}
		return Document{}, fmt.Errorf("docstore get %s/%s: %w", collection, id, err)
	}
	fields, err := decodeFields(raw)
	if err != nil {
		return Document{}, fmt.Errorf("docstore get %s/%s: %w", collection, id, err)
	}
	return Document{ID: id, Fields: fields}, nil
}

// Set writes fields to a document, creating it if absent.
// PRE: collection and id are non-empty
// POST: With merge=true sibling fields are preserved; otherwise replaced
// INVARIANT: A merge never drops fields it does not name
func (s *SQLiteStore) Set(ctx context.Context, collection, id string, fields map[string]any, merge bool) error {
	if !merge {
		raw, err := encodeFields(fields)
		if err != nil {
			return fmt.Errorf("docstore set %s/%s: %w", collection, id, err)
		}
		_, err = s.db.ExecContext(ctx,
			`INSERT INTO document (collection, id, fields) VALUES (?, ?, ?)
			 ON CONFLICT(collection, id) DO UPDATE SET fields = excluded.fields`,
			collection, id, raw)
		if err != nil {
			return fmt.Errorf("docstore set %s/%s: %w", collection, id, err)
		}
		return nil
	}

	// Merge is read-merge-write inside a transaction so a single-field write
	// never clobbers sibling fields written by another editor.
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("docstore set %s/%s: %w", collection, id, err)
	}
	defer tx.Rollback()

	current := map[string]any{}
	var raw string
	err = tx.QueryRowContext(ctx,
		`SELECT fields FROM document WHERE collection = ? AND id = ?`, collection, id).Scan(&raw)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		// created implicitly on first write
	case err != nil:
		return fmt.Errorf("docstore set %s/%s: %w", collection, id, err)
	default:
		if current, err = decodeFields(raw); err != nil {
			return fmt.Errorf("docstore set %s/%s: %w", collection, id, err)
		}
	}

	for k, v := range fields {
		current[k] = v
	}
	merged, err := encodeFields(current)
	if err != nil {
		return fmt.Errorf("docstore set %s/%s: %w", collection, id, err)
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO document (collection, id, fields) VALUES (?, ?, ?)
		 ON CONFLICT(collection, id) DO UPDATE SET fields = excluded.fields`,
		collection, id, merged); err != nil {
		return fmt.Errorf("docstore set %s/%s: %w", collection, id, err)
	}
	return tx.Commit()
}

// Add creates a new document with a store-generated id.
// PRE: collection is non-empty
// POST: Document persisted, generated id returned
func (s *SQLiteStore) Add(ctx context.Context, collection string, fields map[string]any) (string, error) {
	id := uuid.New().String()
	raw, err := encodeFields(fields)
	if err != nil {
		return "", fmt.Errorf("docstore add %s: %w", collection, err)
	}
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO document (collection, id, fields) VALUES (?, ?, ?)`,
		collection, id, raw); err != nil {
		return "", fmt.Errorf("docstore add %s: %w", collection, err)
	}
	return id, nil
}

// Update merges fields into an existing document.
// PRE: the document exists
// POST: Named fields overwritten, others preserved; ErrNotFound if absent
func (s *SQLiteStore) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("docstore update %s/%s: %w", collection, id, err)
	}
	defer tx.Rollback()

	var raw string
	err = tx.QueryRowContext(ctx,
		`SELECT fields FROM document WHERE collection = ? AND id = ?`, collection, id).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("docstore update %s/%s: %w", collection, id, err)
	}
	current, err := decodeFields(raw)
	if err != nil {
		return fmt.Errorf("docstore update %s/%s: %w", collection, id, err)
	}
	for k, v := range fields {
		current[k] = v
	}
	merged, err := encodeFields(current)
	if err != nil {
		return fmt.Errorf("docstore update %s/%s: %w", collection, id, err)
	}
	if _, err := tx.ExecContext(ctx,
		`UPDATE document SET fields = ? WHERE collection = ? AND id = ?`,
		merged, collection, id); err != nil {
		return fmt.Errorf("docstore update %s/%s: %w", collection, id, err)
	}
	return tx.Commit()
}

// Delete removes a document by id.
// PRE: collection and id are non-empty
// POST: Document is gone; deleting a missing id is not an error
func (s *SQLiteStore) Delete(ctx context.Context, collection, id string) error {
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM document WHERE collection = ? AND id = ?`, collection, id); err != nil {
		return fmt.Errorf("docstore delete %s/%s: %w", collection, id, err)
	}
	return nil
}

// List returns every document in a collection in insertion order.
// PRE: collection is non-empty
// POST: Returns all documents; empty slice when the collection is empty
func (s *SQLiteStore) List(ctx context.Context, collection string) ([]Document, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, fields FROM document WHERE collection = ? ORDER BY rowid`, collection)
	if err != nil {
		return nil, fmt.Errorf("docstore list %s: %w", collection, err)
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		var id, raw string
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, fmt.Errorf("docstore list %s: %w", collection, err)
		}
		fields, err := decodeFields(raw)
		if err != nil {
			return nil, fmt.Errorf("docstore list %s: %w", collection, err)
		}
		docs = append(docs, Document{ID: id, Fields: fields})
	}
	return docs, rows.Err()
}

func encodeFields(fields map[string]any) (string, error) {
	if fields == nil {
		fields = map[string]any{}
	}
	b, err := json.Marshal(fields)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decodeFields(raw string) (map[string]any, error) {
	fields := map[string]any{}
	if raw == "" {
		return fields, nil
	}
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return nil, err
	}
	return fields, nil
}
