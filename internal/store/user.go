package store

import (
	"context"
	"database/sql"

	"github.com/cosan-app/cosan-api/internal/domain"
)

// UserStore defines the capability set for user persistence.
type UserStore interface {
	// Create saves a new user to the store and fills in the generated ID.
	// The caller must have hashed the password already; only
	// user.HashedPassword is persisted.
	// Returns ErrLoginIDExists if the login ID is already taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// GetByLoginID retrieves a user by their login ID, including the
	// stored password hash so the caller can verify credentials.
	// Returns ErrUserNotFound if the user does not exist.
	GetByLoginID(ctx context.Context, loginID string) (*domain.User, error)

	// Update modifies an existing user's details, including the password hash.
	// Returns ErrUserNotFound if the user does not exist and
	// ErrLoginIDExists if the new login ID is already taken.
	Update(ctx context.Context, user *domain.User) error

	// Delete removes a user from the store by their ID.
	// Returns ErrUserNotFound if the user does not exist.
	Delete(ctx context.Context, id int64) error

	// WithTx returns a UserStore bound to the provided transaction.
	WithTx(tx *sql.Tx) UserStore
}
