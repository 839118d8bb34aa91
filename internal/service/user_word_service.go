package service

import (
	"context"

	"github.com/cosan-app/cosan-api/internal/domain"
	"github.com/cosan-app/cosan-api/internal/store"
)

// UserWordService implements user-word relation operations over the
// relation capability set.
type UserWordService struct {
	userWords store.UserWordStore
}

// NewUserWordService creates a UserWordService backed by the given store.
func NewUserWordService(userWords store.UserWordStore) *UserWordService {
	return &UserWordService{userWords: userWords}
}

// Create links a user to a word.
func (s *UserWordService) Create(ctx context.Context, userID, wordID int64) (*domain.UserWordRelation, error) {
	rel, err := domain.NewUserWordRelation(userID, wordID)
	if err != nil {
		return nil, err
	}

	if err := s.userWords.Create(ctx, rel); err != nil {
		return nil, err
	}

	return rel, nil
}

// GetByUserAndWord retrieves the joined relation for a (user, word) pair.
func (s *UserWordService) GetByUserAndWord(ctx context.Context, userID, wordID int64) (*domain.UserWord, error) {
	return s.userWords.GetByUserIDAndWordID(ctx, userID, wordID)
}

// ListByUser retrieves every word registered by the given user.
func (s *UserWordService) ListByUser(ctx context.Context, userID int64) ([]domain.UserWord, error) {
	return s.userWords.ListByUserID(ctx, userID)
}

// ListByWord retrieves every user that registered the given word.
func (s *UserWordService) ListByWord(ctx context.Context, wordID int64) ([]domain.UserWord, error) {
	return s.userWords.ListByWordID(ctx, wordID)
}

// Delete removes a relation by its ID.
func (s *UserWordService) Delete(ctx context.Context, id int64) error {
	return s.userWords.Delete(ctx, id)
}
