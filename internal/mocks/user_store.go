package mocks

import (
	"context"
	"database/sql"

	"github.com/cosan-app/cosan-api/internal/domain"
	"github.com/cosan-app/cosan-api/internal/store"
)

// MockUserStore implements store.UserStore for testing. Each method can be
// overridden per test via its Fn field; unset methods return the shared
// default user and error.
type MockUserStore struct {
	CreateFn       func(ctx context.Context, user *domain.User) error
	GetByIDFn      func(ctx context.Context, id int64) (*domain.User, error)
	GetByLoginIDFn func(ctx context.Context, loginID string) (*domain.User, error)
	UpdateFn       func(ctx context.Context, user *domain.User) error
	DeleteFn       func(ctx context.Context, id int64) error

	User *domain.User
	Err  error
}

var _ store.UserStore = (*MockUserStore)(nil)

// Create implements the store.UserStore interface.
func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}
	return m.Err
}

// GetByID implements the store.UserStore interface.
func (m *MockUserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return m.User, m.Err
}

// GetByLoginID implements the store.UserStore interface.
func (m *MockUserStore) GetByLoginID(ctx context.Context, loginID string) (*domain.User, error) {
	if m.GetByLoginIDFn != nil {
		return m.GetByLoginIDFn(ctx, loginID)
	}
	return m.User, m.Err
}

// Update implements the store.UserStore interface.
func (m *MockUserStore) Update(ctx context.Context, user *domain.User) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, user)
	}
	return m.Err
}

// Delete implements the store.UserStore interface.
func (m *MockUserStore) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return m.Err
}

// WithTx implements the store.UserStore interface.
func (m *MockUserStore) WithTx(tx *sql.Tx) store.UserStore {
	return m
}
