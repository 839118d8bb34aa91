package api

import "time"

// Request and response structures for the REST surface. Passwords only
// ever appear in request payloads; no response carries a credential or a
// hash.

// CreateUserRequest defines the payload for the account creation endpoint.
type CreateUserRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"  validate:"required"`
	LoginID   string `json:"login_id"   validate:"required"`
	Password  string `json:"password"   validate:"required,min=8,max=72"`
	Email     string `json:"email"      validate:"required,email"`
	Country   string `json:"country"    validate:"required"`
}

// UpdateUserRequest defines the payload for the account update endpoint.
type UpdateUserRequest struct {
	UserID    int64  `json:"user_id"    validate:"required,gt=0"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"  validate:"required"`
	LoginID   string `json:"login_id"   validate:"required"`
	Password  string `json:"password"   validate:"required,min=8,max=72"`
	Email     string `json:"email"      validate:"required,email"`
	Country   string `json:"country"    validate:"required"`
}

// LoginRequest defines the payload for the credential login endpoint.
// It authenticates by payload, not by bearer token.
type LoginRequest struct {
	LoginID  string `json:"login_id" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserResponse is the wire representation of an account.
type UserResponse struct {
	UserID    int64  `json:"user_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Country   string `json:"country"`
}

// CreateWordRequest defines the payload for the word creation endpoint.
type CreateWordRequest struct {
	Word string `json:"word" validate:"required,max=255"`
}

// UpdateWordRequest defines the payload for the word update endpoint.
type UpdateWordRequest struct {
	WordID int64  `json:"word_id" validate:"required,gt=0"`
	Word   string `json:"word"    validate:"required,max=255"`
}

// WordResponse is the wire representation of a word.
type WordResponse struct {
	WordID int64  `json:"word_id"`
	Word   string `json:"word"`
}

// CreateUserWordRequest defines the payload for linking a user to a word.
type CreateUserWordRequest struct {
	UserID int64 `json:"user_id" validate:"required,gt=0"`
	WordID int64 `json:"word_id" validate:"required,gt=0"`
}

// UserWordRelationResponse is the wire representation of a newly created
// user-word relation, before any join against its user and word.
type UserWordRelationResponse struct {
	UserWordID int64     `json:"user_word_id"`
	UserID     int64     `json:"user_id"`
	WordID     int64     `json:"word_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// UserWordResponse is the wire representation of a user-word relation,
// joined with its user and word fields.
type UserWordResponse struct {
	UserWordID int64     `json:"user_word_id"`
	UserID     int64     `json:"user_id"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Email      string    `json:"email"`
	Country    string    `json:"country"`
	WordID     int64     `json:"word_id"`
	Word       string    `json:"word"`
	CreatedAt  time.Time `json:"created_at"`
}

// StatusResponse reports the outcome of a delete or health operation.
type StatusResponse struct {
	Status string `json:"status"`
}
