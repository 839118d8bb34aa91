package postgres

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cosan-app/cosan-api/internal/domain"
	"github.com/cosan-app/cosan-api/internal/store"
)

var userColumns = []string{
	"id", "first_name", "last_name", "login_id", "hashed_password",
	"email", "country", "created_at", "updated_at",
}

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return db, mock
}

func testUser() *domain.User {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return &domain.User{
		FirstName:      "Ada",
		LastName:       "Lovelace",
		LoginID:        "ada",
		HashedPassword: "$2a$10$storedbcrypthash",
		Email:          "ada@example.com",
		Country:        "UK",
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func TestUserStore_Create(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	s := NewUserStore(db, nil)
	user := testUser()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs(
			user.FirstName, user.LastName, user.LoginID, user.HashedPassword,
			user.Email, user.Country, user.CreatedAt, user.UpdatedAt,
		).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))

	require.NoError(t, s.Create(context.Background(), user))
	assert.Equal(t, int64(1), user.ID)
}

func TestUserStore_Create_DuplicateLoginID(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	s := NewUserStore(db, nil)
	user := testUser()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WillReturnError(pgError(uniqueViolationCode))

	err := s.Create(context.Background(), user)
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrLoginIDExists)
	assert.ErrorIs(t, err, store.ErrDuplicate)
}

func TestUserStore_Create_InvalidUser(t *testing.T) {
	t.Parallel()

	db, _ := newMockDB(t)
	s := NewUserStore(db, nil)

	user := testUser()
	user.Email = "not-an-email"

	// Validation fails before any query is issued; no expectations set.
	err := s.Create(context.Background(), user)
	assert.ErrorIs(t, err, domain.ErrInvalidEmail)
}

func TestUserStore_GetByID(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	s := NewUserStore(db, nil)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, first_name")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(
			int64(1), "Ada", "Lovelace", "ada", "$2a$10$hash",
			"ada@example.com", "UK", now, now,
		))

	user, err := s.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "ada", user.LoginID)
	assert.Equal(t, "$2a$10$hash", user.HashedPassword)
}

func TestUserStore_GetByID_NotFound(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	s := NewUserStore(db, nil)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, first_name")).
		WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)

	user, err := s.GetByID(context.Background(), 404)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, store.ErrUserNotFound)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestUserStore_GetByLoginID(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	s := NewUserStore(db, nil)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE login_id = $1")).
		WithArgs("ada").
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(
			int64(1), "Ada", "Lovelace", "ada", "$2a$10$hash",
			"ada@example.com", "UK", now, now,
		))

	user, err := s.GetByLoginID(context.Background(), "ada")
	require.NoError(t, err)
	assert.Equal(t, "ada", user.LoginID)
}

func TestUserStore_Update(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	s := NewUserStore(db, nil)
	user := testUser()
	user.ID = 1

	mock.ExpectExec(regexp.QuoteMeta("UPDATE users")).
		WithArgs(
			user.FirstName, user.LastName, user.LoginID, user.HashedPassword,
			user.Email, user.Country, user.UpdatedAt, user.ID,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, s.Update(context.Background(), user))
}

func TestUserStore_Update_NotFound(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	s := NewUserStore(db, nil)
	user := testUser()
	user.ID = 404

	mock.ExpectExec(regexp.QuoteMeta("UPDATE users")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := s.Update(context.Background(), user)
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestUserStore_Delete(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	s := NewUserStore(db, nil)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM users WHERE id = $1")).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, s.Delete(context.Background(), 1))
}

func TestUserStore_Delete_NotFound(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	s := NewUserStore(db, nil)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM users WHERE id = $1")).
		WithArgs(int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := s.Delete(context.Background(), 404)
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestNewUserStore_NilDB(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		NewUserStore(nil, nil)
	})
}
