package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
//
// "Not found" is absence, not failure: every Get/Update/Delete reports a
// missing row through ErrNotFound (or an entity-specific wrapper) so that
// callers can tell zero rows apart from an unreachable database, which
// surfaces as an ordinary error.
var (
	// ErrNotFound is returned when a requested entity does not exist in the store.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity (e.g., a user with the same login ID).
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when an entity fails a storage constraint,
	// for example a relation referencing a user that does not exist.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrTransactionFailed is returned when a database transaction fails
	// to commit or when an operation within a transaction fails.
	ErrTransactionFailed = errors.New("transaction failed")

	// Entity-specific "not found" errors.

	// ErrUserNotFound indicates that the requested user does not exist in the store.
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)

	// ErrWordNotFound indicates that the requested word does not exist in the store.
	ErrWordNotFound = fmt.Errorf("%w: word", ErrNotFound)

	// ErrUserWordNotFound indicates that the requested user-word relation
	// does not exist in the store.
	ErrUserWordNotFound = fmt.Errorf("%w: user word", ErrNotFound)

	// Entity-specific "duplicate" errors.

	// ErrLoginIDExists indicates that a user with the given login ID already exists.
	ErrLoginIDExists = fmt.Errorf("%w: login ID", ErrDuplicate)

	// ErrWordExists indicates that the given word is already registered.
	ErrWordExists = fmt.Errorf("%w: word", ErrDuplicate)

	// ErrUserWordExists indicates that the user-word relation already exists.
	ErrUserWordExists = fmt.Errorf("%w: user word", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}
