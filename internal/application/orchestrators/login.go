// Package orchestrators holds the application use cases. Each use case is a
// plain function taking an input struct and a deps struct so tests can swap
// stores, senders and clocks without a mocking framework.
package orchestrators

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"haircoolest/internal/domain/account"
)

// AccountStoreForLogin defines the store interface needed by Login.
type AccountStoreForLogin interface {
	GetByEmail(ctx context.Context, email string) (account.Account, error)
	Save(ctx context.Context, a account.Account) error
}

// LoginInput carries input for the login orchestrator.
type LoginInput struct {
	Email    string
	Password string
	Remember bool // persistent 30-day session vs browser-session only
}

// LoginResult carries the result of a successful login.
type LoginResult struct {
	AccountID string
	Email     string
	Role      string
	Remember  bool
}

// LoginDeps holds dependencies for Login.
type LoginDeps struct {
	AccountStore AccountStoreForLogin
}

// Login errors carry the user-facing copy of the dashboard login form,
// which is in Indonesian. Handlers pass the message through verbatim.
var (
	ErrInvalidEmailFormat = errors.New("Format email tidak valid.")
	ErrInvalidCredentials = errors.New("Email atau password salah.")
	ErrAccountDisabled    = errors.New("Akun dinonaktifkan. Hubungi admin.")
	ErrTooManyRequests    = errors.New("Terlalu banyak percobaan. Coba lagi nanti.")
)

// ExecuteLogin validates credentials and returns account info for session creation.
// PRE: Email and password provided
// POST: Returns account info on success, records failed login on failure
// INVARIANT: Unknown email and wrong password produce the same error
func ExecuteLogin(ctx context.Context, input LoginInput, deps LoginDeps) (LoginResult, error) {
	if input.Email == "" || !strings.Contains(input.Email, "@") {
		return LoginResult{}, ErrInvalidEmailFormat
	}
	if input.Password == "" {
		return LoginResult{}, ErrInvalidCredentials
	}

	acct, err := deps.AccountStore.GetByEmail(ctx, input.Email)
	if err != nil {
		slog.Info("auth_event", "event", "login_failed", "email", input.Email, "reason", "not_found")
		return LoginResult{}, ErrInvalidCredentials
	}

	if acct.Disabled {
		slog.Info("auth_event", "event", "login_blocked", "email", input.Email, "reason", "disabled")
		return LoginResult{}, ErrAccountDisabled
	}

	if acct.IsLocked() {
		slog.Info("auth_event", "event", "login_blocked", "email", input.Email, "reason", "locked")
		return LoginResult{}, ErrTooManyRequests
	}

	if err := acct.CheckPassword(input.Password); err != nil {
		acct.RecordFailedLogin()
		_ = deps.AccountStore.Save(ctx, acct)
		slog.Info("auth_event", "event", "login_failed", "email", input.Email, "reason", "wrong_password", "failed_logins", acct.FailedLogins)
		return LoginResult{}, ErrInvalidCredentials
	}

	acct.ResetFailedLogins()
	_ = deps.AccountStore.Save(ctx, acct)

	slog.Info("auth_event", "event", "login_success", "email", input.Email, "role", acct.Role, "remember", input.Remember)

	return LoginResult{
		AccountID: acct.ID,
		Email:     acct.Email,
		Role:      acct.Role,
		Remember:  input.Remember,
	}, nil
}
