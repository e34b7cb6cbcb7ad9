package docstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore is an in-memory Store for tests and development. Documents are
// deep-copied on the way in and out so callers cannot mutate stored state.
// A failure can be injected with Fail to simulate an unreachable store.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string][]Document // insertion order preserved
	failErr     error
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string][]Document)}
}

// Compile-time check that *MemoryStore satisfies Store.
var _ Store = (*MemoryStore)(nil)

// Fail makes every subsequent operation return err. Pass nil to recover.
func (s *MemoryStore) Fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failErr = err
}

// Get retrieves a document by id, or ErrNotFound.
func (s *MemoryStore) Get(_ context.Context, collection, id string) (Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.failErr != nil {
		return Document{}, s.failErr
	}
	for _, d := range s.collections[collection] {
		if d.ID == id {
			return copyDocument(d), nil
		}
	}
	return Document{}, ErrNotFound
}

// Set writes fields to a document, creating it if absent.
func (s *MemoryStore) Set(_ context.Context, collection, id string, fields map[string]any, merge bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failErr != nil {
		return s.failErr
	}
	docs := s.collections[collection]
	for i, d := range docs {
		if d.ID != id {
			continue
		}
		if !merge {
			docs[i] = copyDocument(Document{ID: id, Fields: fields})
			return nil
		}
		merged := copyDocument(d)
		for k, v := range copyFields(fields) {
			merged.Fields[k] = v
		}
		docs[i] = merged
		return nil
	}
	s.collections[collection] = append(docs, copyDocument(Document{ID: id, Fields: fields}))
	return nil
}

// Add creates a new document with a generated id.
func (s *MemoryStore) Add(_ context.Context, collection string, fields map[string]any) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failErr != nil {
		return "", s.failErr
	}
	id := uuid.New().String()
	s.collections[collection] = append(s.collections[collection],
		copyDocument(Document{ID: id, Fields: fields}))
	return id, nil
}

// Update merges fields into an existing document, or returns ErrNotFound.
func (s *MemoryStore) Update(_ context.Context, collection, id string, fields map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failErr != nil {
		return s.failErr
	}
	docs := s.collections[collection]
	for i, d := range docs {
		if d.ID != id {
			continue
		}
		merged := copyDocument(d)
		for k, v := range copyFields(fields) {
			merged.Fields[k] = v
		}
		docs[i] = merged
		return nil
	}
	return ErrNotFound
}

// Delete removes a document by id. Missing ids are not an error.
func (s *MemoryStore) Delete(_ context.Context, collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failErr != nil {
		return s.failErr
	}
	docs := s.collections[collection]
	for i, d := range docs {
		if d.ID == id {
			s.collections[collection] = append(docs[:i:i], docs[i+1:]...)
			return nil
		}
	}
	return nil
}

// List returns every document in a collection in insertion order.
func (s *MemoryStore) List(_ context.Context, collection string) ([]Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.failErr != nil {
		return nil, s.failErr
	}
	docs := s.collections[collection]
	out := make([]Document, 0, len(docs))
	for _, d := range docs {
		out = append(out, copyDocument(d))
	}
	return out, nil
}

// copyDocument deep-copies a document through a JSON round-trip, which also
// normalizes value types the same way the SQLite store does.
func copyDocument(d Document) Document {
	return Document{ID: d.ID, Fields: copyFields(d.Fields)}
}

func copyFields(fields map[string]any) map[string]any {
	if fields == nil {
		return map[string]any{}
	}
	b, err := json.Marshal(fields)
	if err != nil {
		panic(fmt.Sprintf("docstore: unencodable fields: %v", err))
	}
	out := map[string]any{}
	if err := json.Unmarshal(b, &out); err != nil {
		panic(fmt.Sprintf("docstore: undecodable fields: %v", err))
	}
	return out
}
