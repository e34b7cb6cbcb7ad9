// Package accounts persists dashboard editor accounts in the document store.
package accounts

import (
	"context"
	"fmt"
	"strings"

	"haircoolest/internal/adapters/docstore"
	"haircoolest/internal/domain/account"
)

// Collection is the document collection holding editor accounts.
const Collection = "accounts"

// Store reads and writes accounts through the document store.
type Store struct {
	docs docstore.Store
}

// NewStore creates a Store backed by the given document store.
func NewStore(docs docstore.Store) *Store {
	return &Store{docs: docs}
}

// GetByEmail returns the account with the given email, case-insensitive.
// The collection holds a handful of editors, so a scan is fine.
// POST: Returns docstore.ErrNotFound when no account matches
func (s *Store) GetByEmail(ctx context.Context, email string) (account.Account, error) {
	docs, err := s.docs.List(ctx, Collection)
	if err != nil {
		return account.Account{}, fmt.Errorf("list accounts: %w", err)
	}
	for _, d := range docs {
		if strings.EqualFold(d.String("email"), email) {
			return account.FromDocument(d), nil
		}
	}
	return account.Account{}, docstore.ErrNotFound
}

// Save replaces the stored document for an existing account.
// PRE: a.ID is set
func (s *Store) Save(ctx context.Context, a account.Account) error {
	if err := s.docs.Set(ctx, Collection, a.ID, a.ToFields(), false); err != nil {
		return fmt.Errorf("save account: %w", err)
	}
	return nil
}

// Create adds a new account and returns its store-assigned id.
func (s *Store) Create(ctx context.Context, a account.Account) (string, error) {
	id, err := s.docs.Add(ctx, Collection, a.ToFields())
	if err != nil {
		return "", fmt.Errorf("create account: %w", err)
	}
	return id, nil
}
