package orchestrators

import (
	"context"
	"testing"

	"haircoolest/internal/domain/account"
)

// TestExecuteSeedAdmin_CreatesWhenMissing tests the bootstrap path.
func TestExecuteSeedAdmin_CreatesWhenMissing(t *testing.T) {
	store := newMockAccountStore()
	created, err := ExecuteSeedAdmin(context.Background(), SeedAdminInput{
		Email:    "owner@haircoolest.com",
		Password: "correct-horse-battery",
	}, SeedAdminDeps{AccountStore: store, Now: fixedNow})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created {
		t.Error("expected created=true")
	}

	a, ok := store.accounts["owner@haircoolest.com"]
	if !ok {
		t.Fatal("expected account to be persisted")
	}
	if a.Role != account.RoleAdmin {
		t.Errorf("expected role admin, got %s", a.Role)
	}
	if err := a.CheckPassword("correct-horse-battery"); err != nil {
		t.Errorf("expected password to verify: %v", err)
	}
	if !a.CreatedAt.Equal(fixedTime) {
		t.Errorf("expected CreatedAt=%v, got %v", fixedTime, a.CreatedAt)
	}
}

// TestExecuteSeedAdmin_Idempotent tests that an existing account is left alone.
func TestExecuteSeedAdmin_Idempotent(t *testing.T) {
	store := newMockAccountStore()
	seededAccount(t, store, "owner@haircoolest.com", "original-password-123")

	created, err := ExecuteSeedAdmin(context.Background(), SeedAdminInput{
		Email:    "owner@haircoolest.com",
		Password: "different-password-456",
	}, SeedAdminDeps{AccountStore: store, Now: fixedNow})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created {
		t.Error("expected created=false for existing account")
	}
	a := store.accounts["owner@haircoolest.com"]
	if err := a.CheckPassword("original-password-123"); err != nil {
		t.Error("expected original password to remain")
	}
}

// TestExecuteSeedAdmin_SkipsWithoutCredentials tests the unconfigured case.
func TestExecuteSeedAdmin_SkipsWithoutCredentials(t *testing.T) {
	store := newMockAccountStore()
	created, err := ExecuteSeedAdmin(context.Background(), SeedAdminInput{}, SeedAdminDeps{AccountStore: store, Now: fixedNow})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created {
		t.Error("expected created=false with no credentials")
	}
	if len(store.accounts) != 0 {
		t.Errorf("expected no accounts, got %d", len(store.accounts))
	}
}

// TestExecuteSeedAdmin_ShortPasswordRejected tests the bcrypt policy applies
// to the seeded account too.
func TestExecuteSeedAdmin_ShortPasswordRejected(t *testing.T) {
	store := newMockAccountStore()
	_, err := ExecuteSeedAdmin(context.Background(), SeedAdminInput{
		Email:    "owner@haircoolest.com",
		Password: "short",
	}, SeedAdminDeps{AccountStore: store, Now: fixedNow})
	if err == nil {
		t.Error("expected error for short password")
	}
}
