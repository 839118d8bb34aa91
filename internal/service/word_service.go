package service

import (
	"context"
	"time"

	"github.com/cosan-app/cosan-api/internal/domain"
	"github.com/cosan-app/cosan-api/internal/store"
)

// WordService implements word operations over the word capability set.
type WordService struct {
	words store.WordStore
}

// NewWordService creates a WordService backed by the given store.
func NewWordService(words store.WordStore) *WordService {
	return &WordService{words: words}
}

// Create registers a new word.
func (s *WordService) Create(ctx context.Context, text string) (*domain.Word, error) {
	word, err := domain.NewWord(text)
	if err != nil {
		return nil, err
	}

	if err := s.words.Create(ctx, word); err != nil {
		return nil, err
	}

	return word, nil
}

// Get retrieves a word by ID.
func (s *WordService) Get(ctx context.Context, id int64) (*domain.Word, error) {
	return s.words.GetByID(ctx, id)
}

// Update replaces a word's text.
func (s *WordService) Update(ctx context.Context, id int64, text string) (*domain.Word, error) {
	word, err := s.words.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	word.Word = text
	word.UpdatedAt = time.Now().UTC()

	if err := word.Validate(); err != nil {
		return nil, err
	}
	if err := s.words.Update(ctx, word); err != nil {
		return nil, err
	}

	return word, nil
}

// Delete removes a word by ID.
func (s *WordService) Delete(ctx context.Context, id int64) error {
	return s.words.Delete(ctx, id)
}
