package docstore

import (
	"context"
	"errors"
	"testing"
)

// TestMemoryStoreFailInjection tests that an injected failure surfaces on
// every operation and clears when reset.
func TestMemoryStoreFailInjection(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	simulated := errors.New("network unreachable")
	store.Fail(simulated)

	if _, err := store.Get(ctx, "admin", "sanctuary"); !errors.Is(err, simulated) {
		t.Errorf("expected injected error from Get, got %v", err)
	}
	if _, err := store.Add(ctx, "barbers", map[string]any{"name": "x"}); !errors.Is(err, simulated) {
		t.Errorf("expected injected error from Add, got %v", err)
	}
	if _, err := store.List(ctx, "barbers"); !errors.Is(err, simulated) {
		t.Errorf("expected injected error from List, got %v", err)
	}

	store.Fail(nil)
	if _, err := store.Add(ctx, "barbers", map[string]any{"name": "x"}); err != nil {
		t.Errorf("expected recovery after Fail(nil), got %v", err)
	}
}

// TestMemoryStoreIsolation tests that stored documents cannot be mutated
// through values handed to or returned from the store.
func TestMemoryStoreIsolation(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	fields := map[string]any{"name": "Agus"}
	id, err := store.Add(ctx, "barbers", fields)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fields["name"] = "mutated"

	doc, err := store.Get(ctx, "barbers", id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.String("name") != "Agus" {
		t.Errorf("store leaked caller mutation: got %s", doc.String("name"))
	}

	doc.Fields["name"] = "mutated again"
	again, _ := store.Get(ctx, "barbers", id)
	if again.String("name") != "Agus" {
		t.Errorf("store leaked returned-document mutation: got %s", again.String("name"))
	}
}

// TestMemoryStoreMergeMatchesSQLiteSemantics tests merge and replace writes.
func TestMemoryStoreMergeMatchesSQLiteSemantics(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if err := store.Set(ctx, "admin", "other", map[string]any{"email": "a@b.c", "instagram": "@hair"}, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.Set(ctx, "admin", "other", map[string]any{"email": "new@b.c"}, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	doc, err := store.Get(ctx, "admin", "other")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.String("email") != "new@b.c" || doc.String("instagram") != "@hair" {
		t.Errorf("merge semantics broken: %+v", doc.Fields)
	}
}
