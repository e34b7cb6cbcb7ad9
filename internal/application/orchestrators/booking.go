package orchestrators

import (
	"context"
	"errors"
	"html/template"
	"log/slog"
	"strings"
	"time"

	"haircoolest/internal/adapters/email"
	"haircoolest/internal/domain/booking"
)

// BookingInput carries a contact-form booking submission.
type BookingInput struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

// BookingDeps holds dependencies for the booking orchestrator.
type BookingDeps struct {
	Sender    email.Sender
	Recipient string           // shop inbox that receives booking orders
	From      string           // sender address shown to the shop
	Now       func() time.Time // injectable clock for tests
}

// ErrBookingSendFailed is the generic failure surfaced to the contact form.
// Provider details stay in the logs.
var ErrBookingSendFailed = errors.New("failed to send booking email")

// Shop staff read these emails in Western Indonesian Time.
var bookingZone = loadBookingZone()

func loadBookingZone() *time.Location {
	loc, err := time.LoadLocation("Asia/Bangkok")
	if err != nil {
		return time.FixedZone("GMT+7", 7*60*60)
	}
	return loc
}

var bookingTemplate = template.Must(template.New("booking").Parse(`
    <html>
      <head>
        <style>
          body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; background-color: #f4f4f4; padding: 20px; }
          .container { max-width: 600px; margin: 0 auto; padding: 20px; background: #fff; border-radius: 8px; box-shadow: 0px 0px 10px rgba(0, 0, 0, 0.1); }
          h2 { color: #007bff; text-align: center; }
          .details { background: #f9f9f9; padding: 15px; border-radius: 5px; }
          p { margin: 8px 0; }
          .footer { margin-top: 20px; font-size: 12px; color: #777; text-align: center; }
        </style>
      </head>
      <body>
        <div class="container">
          <h2>&#128233; Booking Order</h2>
          <p>Ada orderan booking pada tanggal <strong>{{.SentAt}} (GMT+7)</strong>:</p>
          <div class="details">
            <p><strong>Nama:</strong> {{.Name}}</p>
            <p><strong>Email:</strong> {{.Email}}</p>
            <p><strong>No HP:</strong> {{.Phone}}</p>
            <p><strong>Pesan:</strong> {{.Message}}</p>
          </div>
          <p class="footer">Pesan ini dikirim otomatis. Mohon segera hubungi customer Anda melalui email atau nomor HP yang terlampir.</p>
        </div>
      </body>
    </html>
`))

// ExecuteBooking validates a booking submission and emails it to the shop.
// PRE: deps.Sender and deps.Recipient are configured
// POST: Email sent with subject "Booking Order", or a validation/send error
func ExecuteBooking(ctx context.Context, input BookingInput, deps BookingDeps) error {
	req := booking.Request{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Message: input.Message,
	}
	if err := req.Validate(); err != nil {
		return err
	}

	now := time.Now
	if deps.Now != nil {
		now = deps.Now
	}
	sentAt := now().In(bookingZone).Format("2006-01-02 15:04:05")

	var body strings.Builder
	if err := bookingTemplate.Execute(&body, struct {
		Name, Email, Phone, Message, SentAt string
	}{req.Name, req.Email, req.Phone, req.Message, sentAt}); err != nil {
		slog.Error("booking_template_failed", "error", err)
		return ErrBookingSendFailed
	}

	_, err := deps.Sender.Send(ctx, email.SendRequest{
		To:      []string{deps.Recipient},
		From:    deps.From,
		Subject: "Booking Order",
		HTML:    body.String(),
		ReplyTo: req.Email,
	})
	if err != nil {
		slog.Error("booking_send_failed", "error", err, "customer_email", req.Email)
		return ErrBookingSendFailed
	}

	slog.Info("booking_sent", "customer_email", req.Email, "recipient", deps.Recipient)
	return nil
}
