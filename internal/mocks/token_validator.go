package mocks

import (
	"context"

	"github.com/cosan-app/cosan-api/internal/service/auth"
)

// MockTokenValidator implements auth.TokenValidator for testing.
type MockTokenValidator struct {
	// ValidateFn allows test cases to mock the Validate behavior
	ValidateFn func(ctx context.Context, tokenString string) (*auth.Claims, error)

	// Default values used when ValidateFn isn't explicitly defined
	Claims *auth.Claims
	Err    error

	// ValidateCalledWith stores the last token passed to Validate
	ValidateCalledWith string

	// ValidateCallCount tracks how many times Validate was called
	ValidateCallCount int
}

// Validate implements the auth.TokenValidator interface.
func (m *MockTokenValidator) Validate(ctx context.Context, tokenString string) (*auth.Claims, error) {
	m.ValidateCalledWith = tokenString
	m.ValidateCallCount++

	if m.ValidateFn != nil {
		return m.ValidateFn(ctx, tokenString)
	}
	return m.Claims, m.Err
}
