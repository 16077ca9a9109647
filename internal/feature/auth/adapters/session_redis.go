package adapters

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"readit_backend/internal/feature/auth/domain/entity"
	"readit_backend/internal/feature/auth/usecase"
)

// DefaultSessionTTL is the session lifetime used when none is configured.
const DefaultSessionTTL = 7 * 24 * time.Hour

// SessionRedis implements usecase.SessionRepository using Redis.
// Expiry is enforced entirely by Redis TTLs; there is no sweeper.
type SessionRedis struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

var _ usecase.SessionRepository = (*SessionRedis)(nil)

// NewSessionRedis creates a new SessionRedis instance.
// A zero or negative ttl falls back to DefaultSessionTTL.
func NewSessionRedis(client *redis.Client, prefix string, ttl time.Duration) *SessionRedis {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionRedis{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

// sessionKey returns the Redis key for a session token.
func (r *SessionRedis) sessionKey(token string) string {
	return fmt.Sprintf("%s:%s", r.prefix, token)
}

// newToken generates a 64-character hex session token.
func newToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// Create persists a new session to Redis and returns its token.
func (r *SessionRedis) Create(ctx context.Context, userID uint) (string, error) {
	token, err := newToken()
	if err != nil {
		return "", err
	}

	now := time.Now()
	session := &entity.Session{
		ID:        token,
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(r.ttl),
	}
	data, err := json.Marshal(session)
	if err != nil {
		return "", fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := r.client.Set(ctx, r.sessionKey(token), data, r.ttl).Err(); err != nil {
		return "", err
	}
	return token, nil
}

// UserID resolves a session token to the owning user ID.
func (r *SessionRedis) UserID(ctx context.Context, token string) (uint, error) {
	data, err := r.client.Get(ctx, r.sessionKey(token)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return 0, usecase.ErrSessionNotFound
		}
		return 0, err
	}

	var session entity.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return 0, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	if session.IsExpired() {
		// Redis clock skew guard; normally the key is already gone
		return 0, usecase.ErrSessionNotFound
	}
	return session.UserID, nil
}

// Destroy removes the session for the given token.
// Destroying a missing session is not an error.
func (r *SessionRedis) Destroy(ctx context.Context, token string) error {
	return r.client.Del(ctx, r.sessionKey(token)).Err()
}
