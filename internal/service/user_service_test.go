package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cosan-app/cosan-api/internal/domain"
	"github.com/cosan-app/cosan-api/internal/mocks"
	"github.com/cosan-app/cosan-api/internal/service/auth"
	"github.com/cosan-app/cosan-api/internal/store"
	"github.com/cosan-app/cosan-api/internal/store/memory"
)

func validParams() UserParams {
	return UserParams{
		FirstName: "Ada",
		LastName:  "Lovelace",
		LoginID:   "ada",
		Password:  "secret-password",
		Email:     "ada@example.com",
		Country:   "UK",
	}
}

func TestUserService_Create(t *testing.T) {
	t.Parallel()

	hasher := &mocks.MockPasswordHasher{}
	svc := NewUserService(memory.NewUserStore(), hasher)

	user, err := svc.Create(context.Background(), validParams())
	require.NoError(t, err)

	assert.NotZero(t, user.ID)
	assert.Equal(t, "hashed:secret-password", user.HashedPassword)
	assert.Empty(t, user.Password, "plaintext is discarded after hashing")
	assert.Equal(t, 1, hasher.HashCallCount)
}

func TestUserService_Create_InvalidParams(t *testing.T) {
	t.Parallel()

	hasher := &mocks.MockPasswordHasher{}
	svc := NewUserService(memory.NewUserStore(), hasher)

	params := validParams()
	params.Email = "not-an-email"

	_, err := svc.Create(context.Background(), params)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidEmail)
	assert.Zero(t, hasher.HashCallCount, "nothing is hashed for invalid input")
}

func TestUserService_Create_DuplicateLoginID(t *testing.T) {
	t.Parallel()

	svc := NewUserService(memory.NewUserStore(), &mocks.MockPasswordHasher{})

	_, err := svc.Create(context.Background(), validParams())
	require.NoError(t, err)

	params := validParams()
	params.Email = "other@example.com"
	_, err = svc.Create(context.Background(), params)
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrDuplicate)
}

func TestUserService_Create_HashFailure(t *testing.T) {
	t.Parallel()

	hashErr := errors.New("hash backend down")
	users := &mocks.MockUserStore{
		CreateFn: func(ctx context.Context, user *domain.User) error {
			t.Fatal("store must not be reached when hashing fails")
			return nil
		},
	}
	svc := NewUserService(users, &mocks.MockPasswordHasher{HashErr: hashErr})

	_, err := svc.Create(context.Background(), validParams())
	assert.ErrorIs(t, err, hashErr)
}

func TestUserService_Get(t *testing.T) {
	t.Parallel()

	users := memory.NewUserStore()
	svc := NewUserService(users, &mocks.MockPasswordHasher{})

	created, err := svc.Create(context.Background(), validParams())
	require.NoError(t, err)

	got, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.LoginID, got.LoginID)

	_, err = svc.Get(context.Background(), 9999)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestUserService_Update(t *testing.T) {
	t.Parallel()

	svc := NewUserService(memory.NewUserStore(), &mocks.MockPasswordHasher{})

	created, err := svc.Create(context.Background(), validParams())
	require.NoError(t, err)

	params := validParams()
	params.FirstName = "Augusta"
	params.Password = "new-password"

	updated, err := svc.Update(context.Background(), created.ID, params)
	require.NoError(t, err)
	assert.Equal(t, "Augusta", updated.FirstName)
	assert.Equal(t, "hashed:new-password", updated.HashedPassword)
	assert.True(t, !updated.UpdatedAt.Before(created.UpdatedAt))
}

func TestUserService_Update_NotFound(t *testing.T) {
	t.Parallel()

	svc := NewUserService(memory.NewUserStore(), &mocks.MockPasswordHasher{})

	_, err := svc.Update(context.Background(), 42, validParams())
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestUserService_Delete(t *testing.T) {
	t.Parallel()

	svc := NewUserService(memory.NewUserStore(), &mocks.MockPasswordHasher{})

	created, err := svc.Create(context.Background(), validParams())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	_, err = svc.Get(context.Background(), created.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	assert.ErrorIs(t, svc.Delete(context.Background(), created.ID), store.ErrNotFound)
}

func TestUserService_Authenticate(t *testing.T) {
	t.Parallel()

	// The real hasher proves the full path: hash on create, verify on login.
	hasher := auth.NewBcryptHasher()
	svc := NewUserService(memory.NewUserStore(), hasher)

	_, err := svc.Create(context.Background(), validParams())
	require.NoError(t, err)

	user, err := svc.Authenticate(context.Background(), "ada", "secret-password")
	require.NoError(t, err)
	assert.Equal(t, "ada", user.LoginID)
}

func TestUserService_Authenticate_WrongPassword(t *testing.T) {
	t.Parallel()

	svc := NewUserService(memory.NewUserStore(), auth.NewBcryptHasher())

	_, err := svc.Create(context.Background(), validParams())
	require.NoError(t, err)

	_, err = svc.Authenticate(context.Background(), "ada", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUserService_Authenticate_UnknownLoginID(t *testing.T) {
	t.Parallel()

	svc := NewUserService(memory.NewUserStore(), auth.NewBcryptHasher())

	// An unknown login ID yields the same error as a wrong password, so the
	// response does not reveal which accounts exist.
	_, err := svc.Authenticate(context.Background(), "nobody", "any-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUserService_Authenticate_MalformedStoredHash(t *testing.T) {
	t.Parallel()

	users := &mocks.MockUserStore{
		User: &domain.User{
			ID:             1,
			LoginID:        "ada",
			HashedPassword: "corrupted-not-a-hash",
		},
	}
	svc := NewUserService(users, auth.NewBcryptHasher())

	_, err := svc.Authenticate(context.Background(), "ada", "secret-password")
	require.Error(t, err)
	assert.ErrorIs(t, err, auth.ErrHashing, "a corrupted hash is an internal failure")
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestUserService_Authenticate_StoreFailure(t *testing.T) {
	t.Parallel()

	storeErr := errors.New("connection refused")
	users := &mocks.MockUserStore{Err: storeErr}
	svc := NewUserService(users, auth.NewBcryptHasher())

	// A transport failure must not masquerade as bad credentials.
	_, err := svc.Authenticate(context.Background(), "ada", "secret-password")
	assert.ErrorIs(t, err, storeErr)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}
