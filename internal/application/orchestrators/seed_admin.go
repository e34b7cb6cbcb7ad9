package orchestrators

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"haircoolest/internal/domain/account"
)

// AccountStoreForSeed defines the store interface needed by SeedAdmin.
type AccountStoreForSeed interface {
	GetByEmail(ctx context.Context, email string) (account.Account, error)
	Create(ctx context.Context, a account.Account) (string, error)
}

// SeedAdminInput carries the bootstrap admin credentials, usually from env.
type SeedAdminInput struct {
	Email    string
	Password string
}

// SeedAdminDeps holds dependencies for SeedAdmin.
type SeedAdminDeps struct {
	AccountStore AccountStoreForSeed
	Now          func() time.Time
}

// ExecuteSeedAdmin creates the bootstrap admin account if it does not exist.
// Idempotent: running at every startup is fine.
// POST: Returns true only when a new account was created
func ExecuteSeedAdmin(ctx context.Context, input SeedAdminInput, deps SeedAdminDeps) (bool, error) {
	if input.Email == "" || input.Password == "" {
		slog.Info("admin_seed_skipped", "reason", "no_credentials_configured")
		return false, nil
	}

	if _, err := deps.AccountStore.GetByEmail(ctx, input.Email); err == nil {
		slog.Info("admin_seed_skipped", "reason", "already_exists", "email", input.Email)
		return false, nil
	}

	now := time.Now
	if deps.Now != nil {
		now = deps.Now
	}

	a := account.Account{
		Email:     input.Email,
		Role:      account.RoleAdmin,
		CreatedAt: now(),
	}
	if err := a.Validate(); err != nil {
		return false, fmt.Errorf("seed admin: %w", err)
	}
	if err := a.SetPassword(input.Password); err != nil {
		return false, fmt.Errorf("seed admin: %w", err)
	}

	id, err := deps.AccountStore.Create(ctx, a)
	if err != nil {
		return false, fmt.Errorf("seed admin: %w", err)
	}

	slog.Info("admin_seeded", "email", input.Email, "account_id", id)
	return true, nil
}
