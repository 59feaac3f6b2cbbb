// Package common defines sentinel errors shared by the client and server
// layers. Callers match them with errors.Is.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors.
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Auth errors. ErrUnknownUser and ErrInvalidPassword stay distinct so the
	// auth endpoint can reproduce its exact response messages; nothing else
	// should branch on the difference.
	ErrUnknownUser     = errors.New("user not found")
	ErrInvalidPassword = errors.New("invalid password")
	ErrInvalidToken    = errors.New("invalid token")

	// Validation errors: empty input, non-positive quantity. These are ignored
	// silently at the call site, never surfaced to the user.
	ErrEmptyInput      = errors.New("empty input")
	ErrInvalidQuantity = errors.New("quantity must be positive")

	// ErrFutureDate rejects diary date selections past the current day.
	ErrFutureDate = errors.New("date is in the future")

	// ErrNotConfigured signals missing upstream credentials.
	ErrNotConfigured = errors.New("not configured")
)
