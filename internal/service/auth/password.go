package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher defines one-way hashing and verification of credentials.
type PasswordHasher interface {
	// Hash derives a salted, one-way hash from the plaintext password.
	// It fails only on an underlying cryptographic failure, never on input
	// shape; empty passwords are accepted. Weak-password rejection is a
	// caller-side validation concern.
	Hash(password string) (string, error)

	// Verify compares the plaintext password against a stored hash.
	// A non-matching password returns (false, nil); an error is returned
	// only when the stored hash is not a well-formed hash of the expected
	// scheme, which indicates a data-integrity problem.
	Verify(password, hashedPassword string) (bool, error)
}

// BcryptHasher implements PasswordHasher using bcrypt with a fixed,
// moderate work factor so every hash in the system costs the same to
// verify.
type BcryptHasher struct {
	cost int
}

// Ensure BcryptHasher implements PasswordHasher.
var _ PasswordHasher = (*BcryptHasher)(nil)

// NewBcryptHasher creates a BcryptHasher with the default bcrypt cost.
func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{cost: bcrypt.DefaultCost}
}

// Hash implements PasswordHasher.
func (h *BcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHashing, err)
	}
	return string(hashed), nil
}

// Verify implements PasswordHasher.
func (h *BcryptHasher) Verify(password, hashedPassword string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %v", ErrHashing, err)
	}
}
