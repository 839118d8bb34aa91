package store

import (
	"context"
	"database/sql"

	"github.com/cosan-app/cosan-api/internal/domain"
)

// WordStore defines the capability set for word persistence.
type WordStore interface {
	// Create saves a new word to the store and fills in the generated ID.
	// Returns ErrWordExists if the word is already registered.
	Create(ctx context.Context, word *domain.Word) error

	// GetByID retrieves a word by its unique ID.
	// Returns ErrWordNotFound if the word does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Word, error)

	// Update modifies an existing word.
	// Returns ErrWordNotFound if the word does not exist.
	Update(ctx context.Context, word *domain.Word) error

	// Delete removes a word from the store by its ID.
	// Returns ErrWordNotFound if the word does not exist.
	Delete(ctx context.Context, id int64) error

	// WithTx returns a WordStore bound to the provided transaction.
	WithTx(tx *sql.Tx) WordStore
}
