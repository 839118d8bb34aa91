// Package memory provides in-memory implementations of the store
// capability interfaces. They back tests and let the business services run
// with zero database dependency, demonstrating that the service layer
// depends only on the capability set.
package memory

import (
	"context"
	"database/sql"
	"sort"
	"sync"

	"github.com/cosan-app/cosan-api/internal/domain"
	"github.com/cosan-app/cosan-api/internal/store"
)

// UserStore is a mutex-guarded, map-backed store.UserStore.
type UserStore struct {
	mu     sync.RWMutex
	nextID int64
	users  map[int64]domain.User
}

// NewUserStore creates an empty in-memory user store.
func NewUserStore() *UserStore {
	return &UserStore{nextID: 1, users: make(map[int64]domain.User)}
}

// Ensure UserStore implements store.UserStore.
var _ store.UserStore = (*UserStore)(nil)

// Create implements store.UserStore.Create.
func (s *UserStore) Create(ctx context.Context, user *domain.User) error {
	if err := user.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.LoginID == user.LoginID {
			return store.ErrLoginIDExists
		}
	}

	user.ID = s.nextID
	s.nextID++
	s.users[user.ID] = *user
	return nil
}

// GetByID implements store.UserStore.GetByID.
func (s *UserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return &user, nil
}

// GetByLoginID implements store.UserStore.GetByLoginID.
func (s *UserStore) GetByLoginID(ctx context.Context, loginID string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.LoginID == loginID {
			u := user
			return &u, nil
		}
	}
	return nil, store.ErrUserNotFound
}

// Update implements store.UserStore.Update.
func (s *UserStore) Update(ctx context.Context, user *domain.User) error {
	if err := user.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.ID]; !ok {
		return store.ErrUserNotFound
	}
	for id, existing := range s.users {
		if id != user.ID && existing.LoginID == user.LoginID {
			return store.ErrLoginIDExists
		}
	}

	s.users[user.ID] = *user
	return nil
}

// Delete implements store.UserStore.Delete.
func (s *UserStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return store.ErrUserNotFound
	}
	delete(s.users, id)
	return nil
}

// WithTx implements store.UserStore.WithTx. The in-memory store has no
// transactional semantics, so the same store is returned.
func (s *UserStore) WithTx(tx *sql.Tx) store.UserStore { return s }

// WordStore is a mutex-guarded, map-backed store.WordStore.
type WordStore struct {
	mu     sync.RWMutex
	nextID int64
	words  map[int64]domain.Word
}

// NewWordStore creates an empty in-memory word store.
func NewWordStore() *WordStore {
	return &WordStore{nextID: 1, words: make(map[int64]domain.Word)}
}

// Ensure WordStore implements store.WordStore.
var _ store.WordStore = (*WordStore)(nil)

// Create implements store.WordStore.Create.
func (s *WordStore) Create(ctx context.Context, word *domain.Word) error {
	if err := word.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.words {
		if existing.Word == word.Word {
			return store.ErrWordExists
		}
	}

	word.ID = s.nextID
	s.nextID++
	s.words[word.ID] = *word
	return nil
}

// GetByID implements store.WordStore.GetByID.
func (s *WordStore) GetByID(ctx context.Context, id int64) (*domain.Word, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	word, ok := s.words[id]
	if !ok {
		return nil, store.ErrWordNotFound
	}
	return &word, nil
}

// Update implements store.WordStore.Update.
func (s *WordStore) Update(ctx context.Context, word *domain.Word) error {
	if err := word.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.words[word.ID]; !ok {
		return store.ErrWordNotFound
	}
	s.words[word.ID] = *word
	return nil
}

// Delete implements store.WordStore.Delete.
func (s *WordStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.words[id]; !ok {
		return store.ErrWordNotFound
	}
	delete(s.words, id)
	return nil
}

// WithTx implements store.WordStore.WithTx.
func (s *WordStore) WithTx(tx *sql.Tx) store.WordStore { return s }

// UserWordStore is a mutex-guarded, map-backed store.UserWordStore. It
// joins against the user and word stores it was created with, mirroring
// the SQL implementation's read model.
type UserWordStore struct {
	mu     sync.RWMutex
	nextID int64
	rels   map[int64]domain.UserWordRelation

	users *UserStore
	words *WordStore
}

// NewUserWordStore creates an empty in-memory relation store joining the
// given user and word stores.
func NewUserWordStore(users *UserStore, words *WordStore) *UserWordStore {
	return &UserWordStore{
		nextID: 1,
		rels:   make(map[int64]domain.UserWordRelation),
		users:  users,
		words:  words,
	}
}

// Ensure UserWordStore implements store.UserWordStore.
var _ store.UserWordStore = (*UserWordStore)(nil)

// Create implements store.UserWordStore.Create.
func (s *UserWordStore) Create(ctx context.Context, rel *domain.UserWordRelation) error {
	if err := rel.Validate(); err != nil {
		return err
	}

	if _, err := s.users.GetByID(ctx, rel.UserID); err != nil {
		return store.ErrInvalidEntity
	}
	if _, err := s.words.GetByID(ctx, rel.WordID); err != nil {
		return store.ErrInvalidEntity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.rels {
		if existing.UserID == rel.UserID && existing.WordID == rel.WordID {
			return store.ErrUserWordExists
		}
	}

	rel.ID = s.nextID
	s.nextID++
	s.rels[rel.ID] = *rel
	return nil
}

// GetByUserIDAndWordID implements store.UserWordStore.GetByUserIDAndWordID.
func (s *UserWordStore) GetByUserIDAndWordID(
	ctx context.Context,
	userID, wordID int64,
) (*domain.UserWord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, rel := range s.rels {
		if rel.UserID == userID && rel.WordID == wordID {
			return s.join(ctx, rel)
		}
	}
	return nil, store.ErrUserWordNotFound
}

// ListByUserID implements store.UserWordStore.ListByUserID.
func (s *UserWordStore) ListByUserID(ctx context.Context, userID int64) ([]domain.UserWord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	userWords := make([]domain.UserWord, 0)
	for _, rel := range s.rels {
		if rel.UserID != userID {
			continue
		}
		uw, err := s.join(ctx, rel)
		if err != nil {
			return nil, err
		}
		userWords = append(userWords, *uw)
	}
	sortUserWords(userWords)
	return userWords, nil
}

// ListByWordID implements store.UserWordStore.ListByWordID.
func (s *UserWordStore) ListByWordID(ctx context.Context, wordID int64) ([]domain.UserWord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	userWords := make([]domain.UserWord, 0)
	for _, rel := range s.rels {
		if rel.WordID != wordID {
			continue
		}
		uw, err := s.join(ctx, rel)
		if err != nil {
			return nil, err
		}
		userWords = append(userWords, *uw)
	}
	sortUserWords(userWords)
	return userWords, nil
}

// Delete implements store.UserWordStore.Delete.
func (s *UserWordStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rels[id]; !ok {
		return store.ErrUserWordNotFound
	}
	delete(s.rels, id)
	return nil
}

// WithTx implements store.UserWordStore.WithTx.
func (s *UserWordStore) WithTx(tx *sql.Tx) store.UserWordStore { return s }

// sortUserWords matches the SQL implementation's created_at ordering.
func sortUserWords(userWords []domain.UserWord) {
	sort.Slice(userWords, func(i, j int) bool {
		if userWords[i].CreatedAt.Equal(userWords[j].CreatedAt) {
			return userWords[i].ID < userWords[j].ID
		}
		return userWords[i].CreatedAt.Before(userWords[j].CreatedAt)
	})
}

func (s *UserWordStore) join(ctx context.Context, rel domain.UserWordRelation) (*domain.UserWord, error) {
	user, err := s.users.GetByID(ctx, rel.UserID)
	if err != nil {
		return nil, err
	}
	word, err := s.words.GetByID(ctx, rel.WordID)
	if err != nil {
		return nil, err
	}

	return &domain.UserWord{
		ID:        rel.ID,
		UserID:    user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Country:   user.Country,
		WordID:    word.ID,
		Word:      word.Word,
		CreatedAt: rel.CreatedAt,
	}, nil
}
