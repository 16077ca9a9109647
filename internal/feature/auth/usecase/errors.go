// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email, username or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailTaken is returned when creating a user whose email is already registered.
	ErrEmailTaken = errors.New("email already in use")

	// ErrUsernameTaken is returned when creating a user whose username is already registered.
	ErrUsernameTaken = errors.New("username not available")

	// ErrSessionNotFound is returned when a session token does not resolve to a session.
	// Expired sessions are indistinguishable from missing ones (Redis drops them).
	ErrSessionNotFound = errors.New("session not found")

	// ErrResetTokenNotFound is returned when a password-reset token is missing or expired.
	ErrResetTokenNotFound = errors.New("reset token not found")
)
