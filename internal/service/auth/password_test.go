package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher_HashAndVerify(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher()

	hashed, err := hasher.Hash("correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, hashed)
	assert.NotEqual(t, "correct horse battery staple", hashed)

	ok, err := hasher.Verify("correct horse battery staple", hashed)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestBcryptHasher_HashesDiverge(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher()

	first, err := hasher.Hash("same password")
	require.NoError(t, err)
	second, err := hasher.Hash("same password")
	require.NoError(t, err)

	// Each hash embeds a fresh salt, so equal inputs never produce equal
	// hashes.
	assert.NotEqual(t, first, second)

	ok, err := hasher.Verify("same password", first)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = hasher.Verify("same password", second)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestBcryptHasher_VerifyMismatch(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher()

	hashed, err := hasher.Hash("right password")
	require.NoError(t, err)

	ok, err := hasher.Verify("wrong password", hashed)
	require.NoError(t, err, "a mismatch is a negative answer, not an error")
	assert.False(t, ok)
}

func TestBcryptHasher_VerifyMalformedHash(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher()

	tests := []struct {
		name   string
		hashed string
	}{
		{name: "empty hash", hashed: ""},
		{name: "not a bcrypt hash", hashed: "plainly-not-a-hash"},
		{name: "truncated hash", hashed: "$2a$10$abc"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ok, err := hasher.Verify("any password", tc.hashed)
			assert.False(t, ok)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrHashing)
		})
	}
}

func TestBcryptHasher_EmptyPassword(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher()

	hashed, err := hasher.Hash("")
	require.NoError(t, err, "input shape is the caller's concern")

	ok, err := hasher.Verify("", hashed)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = hasher.Verify("not empty", hashed)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBcryptHasher_LongPassword(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher()

	// bcrypt rejects inputs above 72 bytes outright.
	_, err := hasher.Hash(strings.Repeat("a", 73))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrHashing)
}
