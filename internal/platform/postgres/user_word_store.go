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

// userWordColumns is the join projection shared by every relation lookup.
const userWordColumns = `
	uw.id, uw.user_id, u.first_name, u.last_name, u.email, u.country,
	uw.word_id, w.word, uw.created_at
`

// UserWordStore implements the store.UserWordStore interface using a
// PostgreSQL database as the storage backend.
type UserWordStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewUserWordStore creates a new PostgreSQL implementation of
// store.UserWordStore.
func NewUserWordStore(db store.DBTX, log *slog.Logger) *UserWordStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &UserWordStore{
		db:     db,
		logger: log.With(slog.String("component", "user_word_store")),
	}
}

// Ensure UserWordStore implements store.UserWordStore.
var _ store.UserWordStore = (*UserWordStore)(nil)

// Create implements store.UserWordStore.Create.
func (s *UserWordStore) Create(ctx context.Context, rel *domain.UserWordRelation) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := rel.Validate(); err != nil {
		return err
	}

	query := `
		INSERT INTO user_words (user_id, word_id, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := s.db.QueryRowContext(ctx, query, rel.UserID, rel.WordID, rel.CreatedAt).
		Scan(&rel.ID)
	if err != nil {
		if IsUniqueViolation(err) {
			return fmt.Errorf("%w: %v", store.ErrUserWordExists, err)
		}
		if IsForeignKeyViolation(err) {
			return fmt.Errorf("%w: referenced user or word does not exist: %v",
				store.ErrInvalidEntity, err)
		}
		log.Error("failed to create user word",
			"error", err, "user_id", rel.UserID, "word_id", rel.WordID)
		return MapError(err)
	}

	log.Debug("user word created", "user_word_id", rel.ID)
	return nil
}

// GetByUserIDAndWordID implements store.UserWordStore.GetByUserIDAndWordID.
func (s *UserWordStore) GetByUserIDAndWordID(
	ctx context.Context,
	userID, wordID int64,
) (*domain.UserWord, error) {
	query := `
		SELECT ` + userWordColumns + `
		FROM user_words uw
		JOIN users u ON u.id = uw.user_id
		JOIN words w ON w.id = uw.word_id
		WHERE uw.user_id = $1 AND uw.word_id = $2
	`
	var uw domain.UserWord
	err := scanUserWord(s.db.QueryRowContext(ctx, query, userID, wordID), &uw)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, store.ErrUserWordNotFound
		}
		return nil, MapError(err)
	}
	return &uw, nil
}

// ListByUserID implements store.UserWordStore.ListByUserID.
func (s *UserWordStore) ListByUserID(ctx context.Context, userID int64) ([]domain.UserWord, error) {
	query := `
		SELECT ` + userWordColumns + `
		FROM user_words uw
		JOIN users u ON u.id = uw.user_id
		JOIN words w ON w.id = uw.word_id
		WHERE uw.user_id = $1
		ORDER BY uw.created_at
	`
	return s.list(ctx, query, userID)
}

// ListByWordID implements store.UserWordStore.ListByWordID.
func (s *UserWordStore) ListByWordID(ctx context.Context, wordID int64) ([]domain.UserWord, error) {
	query := `
		SELECT ` + userWordColumns + `
		FROM user_words uw
		JOIN users u ON u.id = uw.user_id
		JOIN words w ON w.id = uw.word_id
		WHERE uw.word_id = $1
		ORDER BY uw.created_at
	`
	return s.list(ctx, query, wordID)
}

// Delete implements store.UserWordStore.Delete.
func (s *UserWordStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM user_words WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete user word", "error", err, "user_word_id", id)
		return MapError(err)
	}

	return CheckRowsAffected(result, store.ErrUserWordNotFound)
}

// WithTx implements store.UserWordStore.WithTx.
func (s *UserWordStore) WithTx(tx *sql.Tx) store.UserWordStore {
	return &UserWordStore{db: tx, logger: s.logger}
}

func (s *UserWordStore) list(ctx context.Context, query string, arg any) ([]domain.UserWord, error) {
	rows, err := s.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			s.logger.Warn("failed to close rows", "error", closeErr)
		}
	}()

	userWords := make([]domain.UserWord, 0)
	for rows.Next() {
		var uw domain.UserWord
		if err := scanUserWord(rows, &uw); err != nil {
			return nil, MapError(err)
		}
		userWords = append(userWords, uw)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return userWords, nil
}

// rowScanner is implemented by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUserWord(row rowScanner, uw *domain.UserWord) error {
	return row.Scan(
		&uw.ID,
		&uw.UserID,
		&uw.FirstName,
		&uw.LastName,
		&uw.Email,
		&uw.Country,
		&uw.WordID,
		&uw.Word,
		&uw.CreatedAt,
	)
}
