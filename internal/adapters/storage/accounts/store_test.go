package accounts

import (
	"context"
	"errors"
	"testing"

	"haircoolest/internal/adapters/docstore"
	"haircoolest/internal/domain/account"
)

// TestCreateThenGetByEmail tests the account round-trip.
func TestCreateThenGetByEmail(t *testing.T) {
	store := NewStore(docstore.NewMemoryStore())
	ctx := context.Background()

	a := account.Account{Email: "owner@haircoolest.com", Role: account.RoleAdmin}
	if err := a.SetPassword("correct-horse-battery"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	id, err := store.Create(ctx, a)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id == "" {
		t.Fatal("expected a non-empty id")
	}

	got, err := store.GetByEmail(ctx, "OWNER@haircoolest.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != id {
		t.Errorf("expected id %s, got %s", id, got.ID)
	}
	if got.Role != account.RoleAdmin {
		t.Errorf("expected role admin, got %s", got.Role)
	}
	if err := got.CheckPassword("correct-horse-battery"); err != nil {
		t.Errorf("expected password to verify: %v", err)
	}
}

// TestGetByEmailMissing tests the not-found sentinel.
func TestGetByEmailMissing(t *testing.T) {
	store := NewStore(docstore.NewMemoryStore())
	_, err := store.GetByEmail(context.Background(), "nobody@haircoolest.com")
	if !errors.Is(err, docstore.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

// TestSavePersistsLockoutState tests that Save replaces the stored document.
func TestSavePersistsLockoutState(t *testing.T) {
	store := NewStore(docstore.NewMemoryStore())
	ctx := context.Background()

	a := account.Account{Email: "editor@haircoolest.com", Role: account.RoleEditor}
	id, err := store.Create(ctx, a)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a.ID = id

	for i := 0; i < account.MaxFailedLogins; i++ {
		a.RecordFailedLogin()
	}
	if err := store.Save(ctx, a); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := store.GetByEmail(ctx, "editor@haircoolest.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.FailedLogins != account.MaxFailedLogins {
		t.Errorf("expected %d failed logins, got %d", account.MaxFailedLogins, got.FailedLogins)
	}
	if !got.IsLocked() {
		t.Error("expected account to be locked")
	}
}
