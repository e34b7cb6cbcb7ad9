package orchestrators

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"haircoolest/internal/adapters/email"
	"haircoolest/internal/domain/booking"
)

// mockSender implements email.Sender and captures the last request.
type mockSender struct {
	sent []email.SendRequest
	err  error
}

func (m *mockSender) Send(_ context.Context, req email.SendRequest) (email.SendResult, error) {
	if m.err != nil {
		return email.SendResult{}, m.err
	}
	m.sent = append(m.sent, req)
	return email.SendResult{MessageID: "msg-1", SentAt: time.Now()}, nil
}

// TestExecuteBooking_Valid tests the happy path: subject, recipient, and the
// submitted fields plus a GMT+7 timestamp rendered into the body.
func TestExecuteBooking_Valid(t *testing.T) {
	sender := &mockSender{}
	err := ExecuteBooking(context.Background(), BookingInput{
		Name:    "Budi Santoso",
		Email:   "budi@example.com",
		Phone:   "081234567890",
		Message: "Booking potong rambut hari Sabtu",
	}, BookingDeps{
		Sender:    sender,
		Recipient: "haircoolest@gmail.com",
		From:      "Haircoolest <noreply@haircoolest.com>",
		Now:       fixedNow,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sender.sent) != 1 {
		t.Fatalf("expected 1 email, got %d", len(sender.sent))
	}

	req := sender.sent[0]
	if req.Subject != "Booking Order" {
		t.Errorf("expected subject Booking Order, got %q", req.Subject)
	}
	if len(req.To) != 1 || req.To[0] != "haircoolest@gmail.com" {
		t.Errorf("unexpected recipients: %v", req.To)
	}
	if req.ReplyTo != "budi@example.com" {
		t.Errorf("expected reply-to budi@example.com, got %q", req.ReplyTo)
	}
	for _, want := range []string{"Budi Santoso", "budi@example.com", "081234567890", "Booking potong rambut hari Sabtu"} {
		if !strings.Contains(req.HTML, want) {
			t.Errorf("expected body to contain %q", want)
		}
	}
	// fixedTime is 12:00 UTC, which is 19:00 in GMT+7.
	if !strings.Contains(req.HTML, "2026-03-01 19:00:00") {
		t.Errorf("expected GMT+7 timestamp in body")
	}
}

// TestExecuteBooking_InvalidInputDoesNotSend tests validation short-circuits.
func TestExecuteBooking_InvalidInputDoesNotSend(t *testing.T) {
	sender := &mockSender{}
	err := ExecuteBooking(context.Background(), BookingInput{
		Name:    "",
		Email:   "budi@example.com",
		Message: "halo",
	}, BookingDeps{Sender: sender, Recipient: "haircoolest@gmail.com", Now: fixedNow})
	if !errors.Is(err, booking.ErrEmptyName) {
		t.Errorf("expected ErrEmptyName, got %v", err)
	}
	if len(sender.sent) != 0 {
		t.Errorf("expected no email, got %d", len(sender.sent))
	}
}

// TestExecuteBooking_SendFailureIsGeneric tests that provider errors surface
// as the single generic booking error.
func TestExecuteBooking_SendFailureIsGeneric(t *testing.T) {
	sender := &mockSender{err: errors.New("smtp: 535 bad credentials")}
	err := ExecuteBooking(context.Background(), BookingInput{
		Name:    "Budi Santoso",
		Email:   "budi@example.com",
		Phone:   "081234567890",
		Message: "halo",
	}, BookingDeps{Sender: sender, Recipient: "haircoolest@gmail.com", Now: fixedNow})
	if !errors.Is(err, ErrBookingSendFailed) {
		t.Errorf("expected ErrBookingSendFailed, got %v", err)
	}
	if strings.Contains(err.Error(), "535") {
		t.Errorf("provider detail leaked into error: %v", err)
	}
}

// TestExecuteBooking_EscapesHTML tests that submitted text cannot inject
// markup into the shop email.
func TestExecuteBooking_EscapesHTML(t *testing.T) {
	sender := &mockSender{}
	err := ExecuteBooking(context.Background(), BookingInput{
		Name:    "<script>alert(1)</script>",
		Email:   "budi@example.com",
		Phone:   "081234567890",
		Message: "halo",
	}, BookingDeps{Sender: sender, Recipient: "haircoolest@gmail.com", Now: fixedNow})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(sender.sent[0].HTML, "<script>") {
		t.Error("expected submitted markup to be escaped")
	}
}
