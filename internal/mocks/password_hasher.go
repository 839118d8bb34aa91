package mocks

// MockPasswordHasher implements auth.PasswordHasher for testing.
type MockPasswordHasher struct {
	// HashFn allows test cases to mock the Hash behavior
	HashFn func(password string) (string, error)

	// VerifyFn allows test cases to mock the Verify behavior
	VerifyFn func(password, hashedPassword string) (bool, error)

	// Default values used when functions aren't explicitly defined
	Hashed    string
	HashErr   error
	Match     bool
	VerifyErr error

	// HashCallCount tracks how many times Hash was called
	HashCallCount int

	// VerifyCalledWith stores the arguments passed to Verify
	VerifyCalledWith struct {
		Password       string
		HashedPassword string
	}
}

// Hash implements the auth.PasswordHasher interface.
func (m *MockPasswordHasher) Hash(password string) (string, error) {
	m.HashCallCount++

	if m.HashFn != nil {
		return m.HashFn(password)
	}
	if m.Hashed != "" || m.HashErr != nil {
		return m.Hashed, m.HashErr
	}
	// A recognizable placeholder keeps assertions readable.
	return "hashed:" + password, nil
}

// Verify implements the auth.PasswordHasher interface.
func (m *MockPasswordHasher) Verify(password, hashedPassword string) (bool, error) {
	m.VerifyCalledWith.Password = password
	m.VerifyCalledWith.HashedPassword = hashedPassword

	if m.VerifyFn != nil {
		return m.VerifyFn(password, hashedPassword)
	}
	return m.Match, m.VerifyErr
}
