package service

import (
	"context"
	"errors"
	"time"

	"github.com/cosan-app/cosan-api/internal/domain"
	"github.com/cosan-app/cosan-api/internal/platform/logger"
	"github.com/cosan-app/cosan-api/internal/service/auth"
	"github.com/cosan-app/cosan-api/internal/store"
)

// UserParams carries the fields of a user create or update request.
// Password is the plaintext credential; it is hashed here and discarded.
type UserParams struct {
	FirstName string
	LastName  string
	LoginID   string
	Password  string
	Email     string
	Country   string
}

// UserService implements account operations over the user capability set.
type UserService struct {
	users  store.UserStore
	hasher auth.PasswordHasher
}

// NewUserService creates a UserService backed by the given store and hasher.
func NewUserService(users store.UserStore, hasher auth.PasswordHasher) *UserService {
	return &UserService{users: users, hasher: hasher}
}

// Create registers a new account. The plaintext password is hashed before
// anything crosses the storage boundary.
func (s *UserService) Create(ctx context.Context, params UserParams) (*domain.User, error) {
	user, err := domain.NewUser(
		params.FirstName,
		params.LastName,
		params.LoginID,
		params.Password,
		params.Email,
		params.Country,
	)
	if err != nil {
		return nil, err
	}

	hashed, err := s.hasher.Hash(params.Password)
	if err != nil {
		return nil, err
	}
	user.HashedPassword = hashed
	user.Password = ""

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Get retrieves an account by ID.
func (s *UserService) Get(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

// Update replaces an account's profile fields and re-hashes the provided
// password.
func (s *UserService) Update(ctx context.Context, id int64, params UserParams) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	hashed, err := s.hasher.Hash(params.Password)
	if err != nil {
		return nil, err
	}

	user.FirstName = params.FirstName
	user.LastName = params.LastName
	user.LoginID = params.LoginID
	user.HashedPassword = hashed
	user.Email = params.Email
	user.Country = params.Country
	user.UpdatedAt = time.Now().UTC()

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Delete removes an account by ID.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	return s.users.Delete(ctx, id)
}

// Authenticate verifies a login ID and password pair and returns the
// matching account. An unknown login ID and a wrong password both yield
// ErrInvalidCredentials; a malformed stored hash propagates as an error so
// it surfaces as a data-integrity failure, not a rejected login.
func (s *UserService) Authenticate(ctx context.Context, loginID, password string) (*domain.User, error) {
	log := logger.FromContext(ctx)

	user, err := s.users.GetByLoginID(ctx, loginID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	ok, err := s.hasher.Verify(password, user.HashedPassword)
	if err != nil {
		log.Error("stored password hash is malformed", "user_id", user.ID)
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
