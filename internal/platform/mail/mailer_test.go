package mail

import (
	"context"
	"testing"

	"readit_backend/internal/platform/config"
)

func TestLogNotifier_Send(t *testing.T) {
	n := LogNotifier{}

	// dev mode never fails
	if err := n.Send(context.Background(), "user@example.com", "<p>hello</p>"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestNewSMTPNotifier(t *testing.T) {
	cfg := &config.Config{
		SMTPHost:     "smtp.example.com",
		SMTPPort:     2525,
		SMTPUser:     "mailer",
		SMTPPassword: "secret",
		SMTPFrom:     "no-reply@example.com",
	}

	n := NewSMTPNotifier(cfg)

	if n.dialer == nil {
		t.Fatal("dialer is nil")
	}
	if n.dialer.Host != "smtp.example.com" || n.dialer.Port != 2525 {
		t.Errorf("unexpected dialer target: %s:%d", n.dialer.Host, n.dialer.Port)
	}
	if n.from != "no-reply@example.com" {
		t.Errorf("unexpected from address: %q", n.from)
	}
}
