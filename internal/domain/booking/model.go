// Package booking holds the contact-form booking request.
package booking

import (
	"errors"
	"strings"
)

// Max length constants for user-editable fields.
const (
	MaxNameLength    = 100
	MaxMessageLength = 2000
)

// Domain errors
var (
	ErrEmptyName    = errors.New("name cannot be empty")
	ErrEmptyEmail   = errors.New("email cannot be empty")
	ErrInvalidEmail = errors.New("email must contain '@'")
	ErrEmptyMessage = errors.New("message cannot be empty")
	ErrTooLong      = errors.New("field exceeds maximum length")
)

// Request is a booking submission from the public contact form.
type Request struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

// Validate checks the request's invariants.
// PRE: Request struct is populated from form input
// POST: Returns nil if valid, error describing the first violation otherwise
func (r *Request) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return ErrEmptyName
	}
	if len(r.Name) > MaxNameLength {
		return ErrTooLong
	}
	if strings.TrimSpace(r.Email) == "" {
		return ErrEmptyEmail
	}
	if !strings.Contains(r.Email, "@") {
		return ErrInvalidEmail
	}
	if strings.TrimSpace(r.Message) == "" {
		return ErrEmptyMessage
	}
	if len(r.Message) > MaxMessageLength {
		return ErrTooLong
	}
	return nil
}
