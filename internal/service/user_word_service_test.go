package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cosan-app/cosan-api/internal/domain"
	"github.com/cosan-app/cosan-api/internal/mocks"
	"github.com/cosan-app/cosan-api/internal/store"
	"github.com/cosan-app/cosan-api/internal/store/memory"
)

type userWordFixture struct {
	userWords *UserWordService
	userID    int64
	wordIDs   []int64
}

func newUserWordFixture(t *testing.T, words ...string) *userWordFixture {
	t.Helper()

	users := memory.NewUserStore()
	wordStore := memory.NewWordStore()
	rels := memory.NewUserWordStore(users, wordStore)

	userSvc := NewUserService(users, &mocks.MockPasswordHasher{})
	wordSvc := NewWordService(wordStore)

	user, err := userSvc.Create(context.Background(), validParams())
	require.NoError(t, err)

	wordIDs := make([]int64, 0, len(words))
	for _, w := range words {
		word, err := wordSvc.Create(context.Background(), w)
		require.NoError(t, err)
		wordIDs = append(wordIDs, word.ID)
	}

	return &userWordFixture{
		userWords: NewUserWordService(rels),
		userID:    user.ID,
		wordIDs:   wordIDs,
	}
}

func TestUserWordService_CreateAndGet(t *testing.T) {
	t.Parallel()

	f := newUserWordFixture(t, "serendipity")

	rel, err := f.userWords.Create(context.Background(), f.userID, f.wordIDs[0])
	require.NoError(t, err)
	assert.NotZero(t, rel.ID)

	uw, err := f.userWords.GetByUserAndWord(context.Background(), f.userID, f.wordIDs[0])
	require.NoError(t, err)
	assert.Equal(t, "serendipity", uw.Word)
	assert.Equal(t, "Ada", uw.FirstName)
	assert.Equal(t, "ada@example.com", uw.Email)
}

func TestUserWordService_Create_InvalidIDs(t *testing.T) {
	t.Parallel()

	f := newUserWordFixture(t)

	_, err := f.userWords.Create(context.Background(), 0, 1)
	assert.ErrorIs(t, err, domain.ErrInvalidUserID)

	_, err = f.userWords.Create(context.Background(), 1, -1)
	assert.ErrorIs(t, err, domain.ErrInvalidWordID)
}

func TestUserWordService_Create_MissingReferent(t *testing.T) {
	t.Parallel()

	f := newUserWordFixture(t, "serendipity")

	// Both endpoints of the relation must exist.
	_, err := f.userWords.Create(context.Background(), f.userID, 9999)
	assert.ErrorIs(t, err, store.ErrInvalidEntity)

	_, err = f.userWords.Create(context.Background(), 9999, f.wordIDs[0])
	assert.ErrorIs(t, err, store.ErrInvalidEntity)
}

func TestUserWordService_Create_Duplicate(t *testing.T) {
	t.Parallel()

	f := newUserWordFixture(t, "serendipity")

	_, err := f.userWords.Create(context.Background(), f.userID, f.wordIDs[0])
	require.NoError(t, err)

	_, err = f.userWords.Create(context.Background(), f.userID, f.wordIDs[0])
	assert.ErrorIs(t, err, store.ErrDuplicate)
}

func TestUserWordService_ListByUser(t *testing.T) {
	t.Parallel()

	f := newUserWordFixture(t, "serendipity", "petrichor", "sonder")
	for _, wordID := range f.wordIDs {
		_, err := f.userWords.Create(context.Background(), f.userID, wordID)
		require.NoError(t, err)
	}

	userWords, err := f.userWords.ListByUser(context.Background(), f.userID)
	require.NoError(t, err)
	require.Len(t, userWords, 3)

	words := make([]string, 0, len(userWords))
	for _, uw := range userWords {
		words = append(words, uw.Word)
	}
	assert.ElementsMatch(t, []string{"serendipity", "petrichor", "sonder"}, words)
}

func TestUserWordService_ListByUser_Empty(t *testing.T) {
	t.Parallel()

	f := newUserWordFixture(t)

	userWords, err := f.userWords.ListByUser(context.Background(), f.userID)
	require.NoError(t, err, "no relations is an empty list, not an error")
	assert.Empty(t, userWords)
}

func TestUserWordService_ListByWord(t *testing.T) {
	t.Parallel()

	f := newUserWordFixture(t, "serendipity")
	_, err := f.userWords.Create(context.Background(), f.userID, f.wordIDs[0])
	require.NoError(t, err)

	userWords, err := f.userWords.ListByWord(context.Background(), f.wordIDs[0])
	require.NoError(t, err)
	require.Len(t, userWords, 1)
	assert.Equal(t, f.userID, userWords[0].UserID)
}

func TestUserWordService_Delete(t *testing.T) {
	t.Parallel()

	f := newUserWordFixture(t, "serendipity")
	rel, err := f.userWords.Create(context.Background(), f.userID, f.wordIDs[0])
	require.NoError(t, err)

	require.NoError(t, f.userWords.Delete(context.Background(), rel.ID))

	_, err = f.userWords.GetByUserAndWord(context.Background(), f.userID, f.wordIDs[0])
	assert.ErrorIs(t, err, store.ErrNotFound)

	assert.ErrorIs(t, f.userWords.Delete(context.Background(), rel.ID), store.ErrNotFound)
}
