// Package notify sends operational email through SendGrid: contact form
// submissions and refresh job failures. Disabled unless an API key is
// configured; every failure is logged and swallowed so mail can never break
// a request path.
package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"

	"archcost/internal/config"
	"archcost/internal/logging"
)

// ContactSubmission is a contact form payload
type ContactSubmission struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// Mailer sends notification email
type Mailer struct {
	cfg config.EmailConfig
}

// NewMailer creates a mailer from the email configuration
func NewMailer(cfg config.EmailConfig) *Mailer {
	return &Mailer{cfg: cfg}
}

// Enabled reports whether outgoing mail is configured
func (m *Mailer) Enabled() bool {
	return m.cfg.Enabled && m.cfg.APIKey != ""
}

// ContactNotification mails a contact submission to the configured sender
// address, with reply-to set to the submitter.
func (m *Mailer) ContactNotification(ctx context.Context, sub ContactSubmission) bool {
	if !m.Enabled() {
		logging.Warn("contact notification dropped, email not configured")
		return false
	}

	subject := fmt.Sprintf("New Contact Request: %s", sub.Subject)
	plain := fmt.Sprintf(
		"New Contact Request Received\n---------------------------\nName: %s\nEmail: %s\nSubject: %s\nTime: %s\n\nMessage:\n---------------------------\n%s\n",
		sub.Name, sub.Email, sub.Subject, time.Now().UTC().Format(time.RFC3339), sub.Message,
	)
	html := fmt.Sprintf(
		"<h3>New Contact Request Received</h3><p><strong>Name:</strong> %s</p><p><strong>Email:</strong> %s</p><p><strong>Subject:</strong> %s</p><blockquote>%s</blockquote>",
		sub.Name, sub.Email, sub.Subject, sub.Message,
	)

	message := mail.NewSingleEmail(
		mail.NewEmail("ArchCost Estimator", m.cfg.Sender),
		subject,
		mail.NewEmail("", m.cfg.Sender),
		plain,
		html,
	)
	message.SetReplyTo(mail.NewEmail(sub.Name, sub.Email))

	return m.send(ctx, message)
}

// RefreshFailed mails a price refresh failure to the configured sender.
// Implements ingestion.Notifier.
func (m *Mailer) RefreshFailed(ctx context.Context, runErr error) {
	if !m.Enabled() {
		return
	}

	subject := "ArchCost: price refresh failed"
	body := fmt.Sprintf("The scheduled price refresh failed at %s.\n\nError:\n%v\n\nThe previous price table remains active.",
		time.Now().UTC().Format(time.RFC3339), runErr)

	message := mail.NewSingleEmail(
		mail.NewEmail("ArchCost Estimator", m.cfg.Sender),
		subject,
		mail.NewEmail("", m.cfg.Sender),
		body,
		"",
	)
	m.send(ctx, message)
}

func (m *Mailer) send(ctx context.Context, message *mail.SGMailV3) bool {
	client := sendgrid.NewSendClient(m.cfg.APIKey)
	resp, err := client.SendWithContext(ctx, message)
	if err != nil {
		logging.Error("failed to send email", zap.Error(err))
		return false
	}
	if resp.StatusCode < 200 || resp.StatusCode > 202 {
		logging.Error("sendgrid rejected email",
			zap.Int("status", resp.StatusCode),
			zap.String("body", resp.Body),
		)
		return false
	}
	logging.Info("email sent via SendGrid")
	return true
}
