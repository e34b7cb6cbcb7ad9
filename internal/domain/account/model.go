package account

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"haircoolest/internal/adapters/docstore"
)

// Max length constants for user-editable fields.
const (
	MaxEmailLength = 254
)

// Role constants
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
)

// ValidRoles contains all valid role values.
var ValidRoles = []string{RoleAdmin, RoleEditor}

// Lockout policy: after MaxFailedLogins wrong passwords the account is
// locked for LockoutDuration (surfaced to users as "too many requests").
const (
	MaxFailedLogins = 5
	LockoutDuration = 15 * time.Minute
)

// Domain errors
var (
	ErrInvalidEmail     = errors.New("email must contain '@'")
	ErrEmptyEmail       = errors.New("email cannot be empty")
	ErrInvalidRole      = errors.New("role must be one of: admin, editor")
	ErrEmptyPassword    = errors.New("password cannot be empty")
	ErrPasswordTooShort = errors.New("password must be at least 12 characters")
	ErrWrongPassword    = errors.New("incorrect password")
)

// Account holds state for a dashboard editor account.
type Account struct {
	ID           string
	Email        string
	PasswordHash string
	Role         string
	Disabled     bool
	CreatedAt    time.Time
	FailedLogins int
	LockedUntil  time.Time
}

// Validate checks if the Account has valid data.
// PRE: Account struct is populated
// POST: Returns nil if valid, error otherwise
func (a *Account) Validate() error {
	if strings.TrimSpace(a.Email) == "" {
		return ErrEmptyEmail
	}
	if len(a.Email) > MaxEmailLength {
		return errors.New("email cannot exceed 254 characters")
	}
	if !strings.Contains(a.Email, "@") {
		return ErrInvalidEmail
	}
	if !isValidRole(a.Role) {
		return ErrInvalidRole
	}
	return nil
}

// SetPassword hashes and stores a password using bcrypt with cost 12.
// PRE: plaintext is non-empty and >= 12 characters
// POST: PasswordHash is set to bcrypt hash
func (a *Account) SetPassword(plaintext string) error {
	if plaintext == "" {
		return ErrEmptyPassword
	}
	if len(plaintext) < 12 {
		return ErrPasswordTooShort
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), 12)
	if err != nil {
		return err
	}
	a.PasswordHash = string(hash)
	return nil
}

// CheckPassword verifies a plaintext password against the stored hash.
// PRE: PasswordHash is set
// INVARIANT: Account fields are not mutated
func (a *Account) CheckPassword(plaintext string) error {
	if a.PasswordHash == "" {
		return ErrWrongPassword
	}
	if bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(plaintext)) != nil {
		return ErrWrongPassword
	}
	return nil
}

// IsLocked returns true if the account is currently locked out.
// INVARIANT: Account fields are not mutated
func (a *Account) IsLocked() bool {
	if a.LockedUntil.IsZero() {
		return false
	}
	return time.Now().Before(a.LockedUntil)
}

// RecordFailedLogin increments the failure counter and applies the lockout
// once the threshold is reached.
// POST: FailedLogins incremented; LockedUntil set at the threshold
func (a *Account) RecordFailedLogin() {
	a.FailedLogins++
	if a.FailedLogins >= MaxFailedLogins {
		a.LockedUntil = time.Now().Add(LockoutDuration)
	}
}

// ResetFailedLogins clears the failure counter and any lockout.
func (a *Account) ResetFailedLogins() {
	a.FailedLogins = 0
	a.LockedUntil = time.Time{}
}

func isValidRole(role string) bool {
	for _, r := range ValidRoles {
		if r == role {
			return true
		}
	}
	return false
}

const timeLayout = "2006-01-02T15:04:05Z07:00"

// FromDocument decodes a raw account document, filling defaults.
func FromDocument(d docstore.Document) Account {
	a := Account{
		ID:           d.ID,
		Email:        d.String("email"),
		PasswordHash: d.String("passwordHash"),
		Role:         d.String("role"),
		Disabled:     d.Int("disabled") != 0,
		FailedLogins: d.Int("failedLogins"),
	}
	if raw := d.String("createdAt"); raw != "" {
		a.CreatedAt, _ = time.Parse(timeLayout, raw)
	}
	if raw := d.String("lockedUntil"); raw != "" {
		a.LockedUntil, _ = time.Parse(timeLayout, raw)
	}
	return a
}

// ToFields encodes the account for document storage.
func (a *Account) ToFields() map[string]any {
	fields := map[string]any{
		"email":        a.Email,
		"passwordHash": a.PasswordHash,
		"role":         a.Role,
		"disabled":     boolToInt(a.Disabled),
		"failedLogins": a.FailedLogins,
		"createdAt":    a.CreatedAt.Format(timeLayout),
	}
	if a.LockedUntil.IsZero() {
		fields["lockedUntil"] = ""
	} else {
		fields["lockedUntil"] = a.LockedUntil.Format(timeLayout)
	}
	return fields
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
