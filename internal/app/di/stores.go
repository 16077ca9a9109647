// Package di constructs the store and notifier implementations injected into
// the usecases at startup.
package di

import (
	"github.com/redis/go-redis/v9"

	"readit_backend/internal/feature/auth/adapters"
	"readit_backend/internal/feature/auth/usecase"
	"readit_backend/internal/platform/config"
	"readit_backend/internal/platform/mail"
)

// Redis key prefixes for the two ephemeral stores.
const (
	sessionPrefix    = "sess"
	resetTokenPrefix = "forget-password"
)

// NewSessionRepository creates the Redis-backed session store.
func NewSessionRepository(rdb *redis.Client, cfg *config.Config) usecase.SessionRepository {
	return adapters.NewSessionRedis(rdb, sessionPrefix, cfg.SessionTTL)
}

// NewResetTokenRepository creates the Redis-backed password-reset token store.
func NewResetTokenRepository(rdb *redis.Client) usecase.ResetTokenRepository {
	return adapters.NewResetTokenRedis(rdb, resetTokenPrefix)
}

// NewNotifier creates the mail notifier.
// Without an SMTP host configured it falls back to a log-only notifier,
// so the reset flow stays usable in development.
func NewNotifier(cfg *config.Config) usecase.Notifier {
	if cfg.SMTPHost == "" {
		return mail.LogNotifier{}
	}
	return mail.NewSMTPNotifier(cfg)
}
