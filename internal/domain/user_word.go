package domain

import (
	"errors"
	"time"
)

// UserWord validation errors.
var (
	ErrInvalidUserID = errors.New("user ID must be positive")
	ErrInvalidWordID = errors.New("word ID must be positive")
)

// UserWordRelation is the stored link between a user and a word.
type UserWordRelation struct {
	ID        int64     `json:"user_word_id"`
	UserID    int64     `json:"user_id"`
	WordID    int64     `json:"word_id"`
	CreatedAt time.Time `json:"created_at"`
}

// NewUserWordRelation creates a relation between the given user and word.
func NewUserWordRelation(userID, wordID int64) (*UserWordRelation, error) {
	rel := &UserWordRelation{
		UserID:    userID,
		WordID:    wordID,
		CreatedAt: time.Now().UTC(),
	}

	if err := rel.Validate(); err != nil {
		return nil, err
	}

	return rel, nil
}

// Validate checks that the relation references plausible IDs.
func (r *UserWordRelation) Validate() error {
	if r.UserID <= 0 {
		return ErrInvalidUserID
	}
	if r.WordID <= 0 {
		return ErrInvalidWordID
	}
	return nil
}

// UserWord is the read model for a relation: the joined user and word
// fields returned by relation lookups.
type UserWord struct {
	ID        int64     `json:"user_word_id"`
	UserID    int64     `json:"user_id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Country   string    `json:"country"`
	WordID    int64     `json:"word_id"`
	Word      string    `json:"word"`
	CreatedAt time.Time `json:"created_at"`
}
