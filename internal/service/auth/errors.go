package auth

import "errors"

// Common authentication service errors.
var (
	// ErrInvalidToken indicates the token is structurally malformed or its
	// signature does not match the configured secret.
	ErrInvalidToken = errors.New("token is invalid")

	// ErrExpiredToken indicates the token's expiry timestamp is at or
	// before the current time.
	ErrExpiredToken = errors.New("token is expired")

	// ErrMissingToken indicates a token was expected but not provided.
	ErrMissingToken = errors.New("token is missing")

	// ErrHashing indicates the underlying hashing primitive failed, for
	// example on a malformed stored hash. This is a data-integrity
	// failure, distinct from an ordinary password mismatch.
	ErrHashing = errors.New("password hashing failed")
)
