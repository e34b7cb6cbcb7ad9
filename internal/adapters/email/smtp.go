package email

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"
	"time"
)

// SMTPSender sends emails through an authenticated SMTP relay (the shop
// uses Gmail's).
type SMTPSender struct {
	host     string
	port     string
	username string
	password string
	from     string
}

// NewSMTPSender creates an SMTPSender.
// PRE: host, port, username and password identify a working relay
// POST: Returns a ready-to-use sender
func NewSMTPSender(host, port, username, password, from string) *SMTPSender {
	return &SMTPSender{host: host, port: port, username: username, password: password, from: from}
}

// Send delivers a single email over SMTP.
// PRE: req has at least one recipient and a subject
// POST: Message accepted by the relay, or an error
func (s *SMTPSender) Send(ctx context.Context, req SendRequest) (SendResult, error) {
	from := req.From
	if from == "" {
		from = s.from
	}

	var msg strings.Builder
	msg.WriteString("From: " + from + "\r\n")
	msg.WriteString("To: " + strings.Join(req.To, ", ") + "\r\n")
	if req.ReplyTo != "" {
		msg.WriteString("Reply-To: " + req.ReplyTo + "\r\n")
	}
	msg.WriteString("Subject: " + req.Subject + "\r\n")
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(req.HTML)

	// net/smtp has no context support; honor cancellation before dialing.
	if err := ctx.Err(); err != nil {
		return SendResult{}, err
	}

	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	addr := s.host + ":" + s.port
	if err := smtp.SendMail(addr, auth, s.username, req.To, []byte(msg.String())); err != nil {
		slog.Error("smtp_send_failed", "error", err, "to", req.To, "subject", req.Subject)
		return SendResult{}, fmt.Errorf("smtp send failed: %w", err)
	}

	slog.Info("smtp_sent", "to", req.To, "subject", req.Subject)
	return SendResult{
		MessageID: fmt.Sprintf("smtp-%d", time.Now().UnixNano()),
		SentAt:    time.Now(),
	}, nil
}
