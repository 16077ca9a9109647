// Package mail provides the outbound mail notifier used by the auth feature.
package mail

import (
	"context"
	"log/slog"

	gomail "gopkg.in/gomail.v2"

	"readit_backend/internal/platform/config"
)

const resetSubject = "Change password"

// SMTPNotifier delivers mail over SMTP using gomail.
type SMTPNotifier struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPNotifier creates a notifier for the configured SMTP server.
func NewSMTPNotifier(cfg *config.Config) *SMTPNotifier {
	return &SMTPNotifier{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		from:   cfg.SMTPFrom,
	}
}

// Send delivers a single HTML mail. The context is accepted for interface
// symmetry; gomail dials synchronously and has no cancellation hook.
func (n *SMTPNotifier) Send(_ context.Context, to, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", resetSubject)
	m.SetBody("text/html", htmlBody)
	return n.dialer.DialAndSend(m)
}

// LogNotifier writes mail to the log instead of delivering it.
// Used in development when no SMTP server is configured.
type LogNotifier struct{}

// Send logs the message and always succeeds.
func (LogNotifier) Send(_ context.Context, to, htmlBody string) error {
	slog.Info("mail (dev mode, not delivered)", "to", to, "body", htmlBody)
	return nil
}
