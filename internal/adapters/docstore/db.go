package docstore

import (
	"database/sql"
	"fmt"
)

// InitDB initializes the database schema.
// PRE: db is a valid database connection
// POST: The document table exists, WAL mode enabled
func InitDB(db *sql.DB) error {
	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	// One row per document. Fields are a single JSON object; the store
	// enforces no schema beyond the (collection, id) key. rowid preserves
	// insertion order for List.
	schema := `
	CREATE TABLE IF NOT EXISTS document (
		collection TEXT NOT NULL,
		id TEXT NOT NULL,
		fields TEXT NOT NULL DEFAULT '{}',
		PRIMARY KEY (collection, id)
	);

	CREATE INDEX IF NOT EXISTS idx_document_collection ON document(collection);
	`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}
