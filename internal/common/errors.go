// Package common defines shared constants and sentinel errors used across the
// Nymph tracker. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound         = errors.New("not found")
	ErrStoreUnavailable = errors.New("store unavailable")

	// Input errors (pre-store, user-correctable).
	ErrValidation = errors.New("validation failed")

	// PIN gate / admin session errors.
	ErrAccessDenied   = errors.New("access denied")
	ErrSessionExpired = errors.New("session expired")
	ErrInvalidToken   = errors.New("invalid token")
)
