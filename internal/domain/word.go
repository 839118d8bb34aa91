package domain

import (
	"errors"
	"time"
)

// Word validation errors.
var (
	ErrEmptyWord   = errors.New("word cannot be empty")
	ErrWordTooLong = errors.New("word must be at most 255 characters long")
)

// Word represents a single shared vocabulary entry.
type Word struct {
	ID        int64     `json:"word_id"`
	Word      string    `json:"word"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewWord creates a Word with the given text.
func NewWord(text string) (*Word, error) {
	now := time.Now().UTC()
	word := &Word{
		Word:      text,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := word.Validate(); err != nil {
		return nil, err
	}

	return word, nil
}

// Validate checks that the Word carries valid data.
func (w *Word) Validate() error {
	if w.Word == "" {
		return ErrEmptyWord
	}
	if len(w.Word) > 255 {
		return ErrWordTooLong
	}
	return nil
}
