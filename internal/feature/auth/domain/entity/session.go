package entity

import "time"

// Session represents a user's server-side login session.
// The session ID is the opaque token delivered to the client as a cookie;
// everything else lives only in the session store until the TTL elapses.
type Session struct {
	ID        string    // Opaque token value (64-character hex string)
	UserID    uint      // Associated user ID
	CreatedAt time.Time // Session creation time
	ExpiresAt time.Time // Session expiration time
}

// IsExpired returns true if the session has passed its expiration time.
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}
