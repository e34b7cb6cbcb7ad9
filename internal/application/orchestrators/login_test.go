package orchestrators

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"haircoolest/internal/domain/account"
)

// mockAccountStore implements AccountStoreForLogin and AccountStoreForSeed.
type mockAccountStore struct {
	accounts map[string]account.Account // keyed by lowercase email
	saveErr  error
}

func newMockAccountStore() *mockAccountStore {
	return &mockAccountStore{accounts: make(map[string]account.Account)}
}

func (m *mockAccountStore) GetByEmail(_ context.Context, email string) (account.Account, error) {
	a, ok := m.accounts[strings.ToLower(email)]
	if !ok {
		return account.Account{}, errors.New("not found")
	}
	return a, nil
}

func (m *mockAccountStore) Save(_ context.Context, a account.Account) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.accounts[strings.ToLower(a.Email)] = a
	return nil
}

func (m *mockAccountStore) Create(_ context.Context, a account.Account) (string, error) {
	a.ID = "acct-" + strings.ToLower(a.Email)
	m.accounts[strings.ToLower(a.Email)] = a
	return a.ID, nil
}

var fixedTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func fixedNow() time.Time { return fixedTime }

func seededAccount(t *testing.T, store *mockAccountStore, email, password string) account.Account {
	t.Helper()
	a := account.Account{ID: "acct-1", Email: email, Role: account.RoleAdmin}
	if err := a.SetPassword(password); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	store.accounts[strings.ToLower(email)] = a
	return a
}

// TestExecuteLogin_Valid tests a successful login.
func TestExecuteLogin_Valid(t *testing.T) {
	store := newMockAccountStore()
	seededAccount(t, store, "owner@haircoolest.com", "correct-horse-battery")

	res, err := ExecuteLogin(context.Background(), LoginInput{
		Email:    "owner@haircoolest.com",
		Password: "correct-horse-battery",
		Remember: true,
	}, LoginDeps{AccountStore: store})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.AccountID != "acct-1" {
		t.Errorf("expected AccountID=acct-1, got %s", res.AccountID)
	}
	if res.Role != account.RoleAdmin {
		t.Errorf("expected role admin, got %s", res.Role)
	}
	if !res.Remember {
		t.Error("expected Remember=true to pass through")
	}
}

// TestExecuteLogin_InvalidEmailFormat tests the malformed-email message.
func TestExecuteLogin_InvalidEmailFormat(t *testing.T) {
	store := newMockAccountStore()
	_, err := ExecuteLogin(context.Background(), LoginInput{
		Email:    "not-an-email",
		Password: "whatever",
	}, LoginDeps{AccountStore: store})
	if !errors.Is(err, ErrInvalidEmailFormat) {
		t.Errorf("expected ErrInvalidEmailFormat, got %v", err)
	}
}

// TestExecuteLogin_UnknownEmailAndWrongPasswordShareMessage tests that the
// two failure modes are indistinguishable to the caller.
func TestExecuteLogin_UnknownEmailAndWrongPasswordShareMessage(t *testing.T) {
	store := newMockAccountStore()
	seededAccount(t, store, "owner@haircoolest.com", "correct-horse-battery")

	_, errUnknown := ExecuteLogin(context.Background(), LoginInput{
		Email:    "nobody@haircoolest.com",
		Password: "whatever",
	}, LoginDeps{AccountStore: store})
	_, errWrong := ExecuteLogin(context.Background(), LoginInput{
		Email:    "owner@haircoolest.com",
		Password: "wrong-password",
	}, LoginDeps{AccountStore: store})

	if !errors.Is(errUnknown, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for unknown email, got %v", errUnknown)
	}
	if !errors.Is(errWrong, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for wrong password, got %v", errWrong)
	}
}

// TestExecuteLogin_Disabled tests the disabled-account message.
func TestExecuteLogin_Disabled(t *testing.T) {
	store := newMockAccountStore()
	a := seededAccount(t, store, "owner@haircoolest.com", "correct-horse-battery")
	a.Disabled = true
	store.accounts["owner@haircoolest.com"] = a

	_, err := ExecuteLogin(context.Background(), LoginInput{
		Email:    "owner@haircoolest.com",
		Password: "correct-horse-battery",
	}, LoginDeps{AccountStore: store})
	if !errors.Is(err, ErrAccountDisabled) {
		t.Errorf("expected ErrAccountDisabled, got %v", err)
	}
}

// TestExecuteLogin_LockoutAfterRepeatedFailures tests that the failure
// counter persists across attempts and the lockout message appears once the
// threshold is reached.
func TestExecuteLogin_LockoutAfterRepeatedFailures(t *testing.T) {
	store := newMockAccountStore()
	seededAccount(t, store, "owner@haircoolest.com", "correct-horse-battery")

	for i := 0; i < account.MaxFailedLogins; i++ {
		_, err := ExecuteLogin(context.Background(), LoginInput{
			Email:    "owner@haircoolest.com",
			Password: "wrong-password",
		}, LoginDeps{AccountStore: store})
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("attempt %d: expected ErrInvalidCredentials, got %v", i+1, err)
		}
	}

	// Even the right password is refused while locked.
	_, err := ExecuteLogin(context.Background(), LoginInput{
		Email:    "owner@haircoolest.com",
		Password: "correct-horse-battery",
	}, LoginDeps{AccountStore: store})
	if !errors.Is(err, ErrTooManyRequests) {
		t.Errorf("expected ErrTooManyRequests, got %v", err)
	}
}

// TestExecuteLogin_SuccessResetsFailedLogins tests the counter reset.
func TestExecuteLogin_SuccessResetsFailedLogins(t *testing.T) {
	store := newMockAccountStore()
	a := seededAccount(t, store, "owner@haircoolest.com", "correct-horse-battery")
	a.FailedLogins = account.MaxFailedLogins - 1
	store.accounts["owner@haircoolest.com"] = a

	_, err := ExecuteLogin(context.Background(), LoginInput{
		Email:    "owner@haircoolest.com",
		Password: "correct-horse-battery",
	}, LoginDeps{AccountStore: store})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := store.accounts["owner@haircoolest.com"]
	if got.FailedLogins != 0 {
		t.Errorf("expected failed logins reset, got %d", got.FailedLogins)
	}
}
