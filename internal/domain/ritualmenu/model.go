// Package ritualmenu holds the typed records behind the Ritual Menu page:
// grooming services and membership tiers.
package ritualmenu

import (
	"errors"

	"haircoolest/internal/adapters/docstore"
)

// Service is one grooming service on the menu.
type Service struct {
	ID          string
	Name        string
	Description string
	ImageURL    string
	Order       int // advisory sort key, not unique
}

// Membership is one membership tier.
type Membership struct {
	ID       string
	Duration string // e.g. "3 Bulan"
	Benefits []string
	ImageURL string
}

var (
	ErrEmptyName     = errors.New("service name cannot be empty")
	ErrEmptyDuration = errors.New("membership duration cannot be empty")
)

// Validate checks the service's required fields.
func (s *Service) Validate() error {
	if s.Name == "" {
		return ErrEmptyName
	}
	return nil
}

// Validate checks the membership's required fields.
func (m *Membership) Validate() error {
	if m.Duration == "" {
		return ErrEmptyDuration
	}
	return nil
}

// ServiceFromDocument decodes a raw document into a Service, filling defaults.
func ServiceFromDocument(d docstore.Document) Service {
	return Service{
		ID:          d.ID,
		Name:        d.String("name"),
		Description: d.String("description"),
		ImageURL:    d.String("imageUrl"),
		Order:       d.Int("order"),
	}
}

// MembershipFromDocument decodes a raw document into a Membership.
func MembershipFromDocument(d docstore.Document) Membership {
	return Membership{
		ID:       d.ID,
		Duration: d.String("duration"),
		Benefits: d.Strings("benefits"),
		ImageURL: d.String("imageUrl"),
	}
}
