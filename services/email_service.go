package services

import (
	"log"

	"github.com/cleaningmadeasy/laundry-api/config"
	"gopkg.in/gomail.v2"
)

// Mailer delivers notification email. Implementations must be safe to call
// on every request; a failing or disabled mailer never blocks order or
// invoice persistence.
type Mailer interface {
	Send(to []string, subject, textBody, htmlBody string) error
}

// NewMailer returns an SMTP-backed mailer, or a logging no-op when email is
// disabled or no SMTP host is configured.
func NewMailer(cfg *config.Config) Mailer {
	if !cfg.EmailConfigured() {
		return &disabledMailer{}
	}
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.EmailHost, cfg.EmailPort, cfg.EmailUser, cfg.EmailPass),
		from:   cfg.EmailUser,
	}
}

// SMTPMailer sends mail through the configured SMTP server.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

// Send delivers a message with a plain-text body and an optional HTML
// alternative.
func (m *SMTPMailer) Send(to []string, subject, textBody, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", textBody)
	if htmlBody != "" {
		msg.AddAlternative("text/html", htmlBody)
	}
	return m.dialer.DialAndSend(msg)
}

// disabledMailer reports success without touching the network so that the
// rest of the workflow is unaffected by a missing email setup.
type disabledMailer struct{}

func (disabledMailer) Send(to []string, subject, _, _ string) error {
	log.Printf("Email sending disabled. Would have sent %q to %v", subject, to)
	return nil
}
