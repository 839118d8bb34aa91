package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/cosan-app/cosan-api/internal/domain"
	"github.com/cosan-app/cosan-api/internal/platform/logger"
	"github.com/cosan-app/cosan-api/internal/store"
)

// WordStore implements the store.WordStore interface using a PostgreSQL
// database as the storage backend.
type WordStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewWordStore creates a new PostgreSQL implementation of store.WordStore.
func NewWordStore(db store.DBTX, log *slog.Logger) *WordStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &WordStore{
		db:     db,
		logger: log.With(slog.String("component", "word_store")),
	}
}

// Ensure WordStore implements store.WordStore.
var _ store.WordStore = (*WordStore)(nil)

// Create implements store.WordStore.Create.
func (s *WordStore) Create(ctx context.Context, word *domain.Word) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := word.Validate(); err != nil {
		return err
	}

	query := `
		INSERT INTO words (word, created_at, updated_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := s.db.QueryRowContext(ctx, query, word.Word, word.CreatedAt, word.UpdatedAt).
		Scan(&word.ID)
	if err != nil {
		if IsUniqueViolation(err) {
			return fmt.Errorf("%w: %v", store.ErrWordExists, err)
		}
		log.Error("failed to create word", "error", err)
		return MapError(err)
	}

	log.Debug("word created", "word_id", word.ID)
	return nil
}

// GetByID implements store.WordStore.GetByID.
func (s *WordStore) GetByID(ctx context.Context, id int64) (*domain.Word, error) {
	query := `
		SELECT id, word, created_at, updated_at
		FROM words
		WHERE id = $1
	`
	var word domain.Word
	err := s.db.QueryRowContext(ctx, query, id).
		Scan(&word.ID, &word.Word, &word.CreatedAt, &word.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, store.ErrWordNotFound
		}
		return nil, MapError(err)
	}
	return &word, nil
}

// Update implements store.WordStore.Update.
func (s *WordStore) Update(ctx context.Context, word *domain.Word) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := word.Validate(); err != nil {
		return err
	}

	query := `
		UPDATE words
		SET word = $1, updated_at = $2
		WHERE id = $3
	`
	result, err := s.db.ExecContext(ctx, query, word.Word, word.UpdatedAt, word.ID)
	if err != nil {
		if IsUniqueViolation(err) {
			return fmt.Errorf("%w: %v", store.ErrWordExists, err)
		}
		log.Error("failed to update word", "error", err, "word_id", word.ID)
		return MapError(err)
	}

	return CheckRowsAffected(result, store.ErrWordNotFound)
}

// Delete implements store.WordStore.Delete.
func (s *WordStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM words WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete word", "error", err, "word_id", id)
		return MapError(err)
	}

	return CheckRowsAffected(result, store.ErrWordNotFound)
}

// WithTx implements store.WordStore.WithTx.
func (s *WordStore) WithTx(tx *sql.Tx) store.WordStore {
	return &WordStore{db: tx, logger: s.logger}
}
