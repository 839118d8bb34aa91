package store

import (
	"context"
	"database/sql"

	"github.com/cosan-app/cosan-api/internal/domain"
)

// UserWordStore defines the capability set for user-word relation persistence.
type UserWordStore interface {
	// Create saves a new user-word relation and fills in the generated ID.
	// Returns ErrUserWordExists if the relation already exists and
	// ErrInvalidEntity if the referenced user or word does not exist.
	Create(ctx context.Context, rel *domain.UserWordRelation) error

	// GetByUserIDAndWordID retrieves the relation joined with its user and
	// word fields. Returns ErrUserWordNotFound if no relation exists.
	GetByUserIDAndWordID(ctx context.Context, userID, wordID int64) (*domain.UserWord, error)

	// ListByUserID retrieves all relations for the given user.
	// Returns an empty slice when the user has no words.
	ListByUserID(ctx context.Context, userID int64) ([]domain.UserWord, error)

	// ListByWordID retrieves all relations for the given word.
	// Returns an empty slice when no user has registered the word.
	ListByWordID(ctx context.Context, wordID int64) ([]domain.UserWord, error)

	// Delete removes a relation by its ID.
	// Returns ErrUserWordNotFound if the relation does not exist.
	Delete(ctx context.Context, id int64) error

	// WithTx returns a UserWordStore bound to the provided transaction.
	WithTx(tx *sql.Tx) UserWordStore
}
