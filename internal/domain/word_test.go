package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWord(t *testing.T) {
	t.Parallel()

	word, err := NewWord("serendipity")
	require.NoError(t, err)
	assert.Equal(t, "serendipity", word.Word)
	assert.False(t, word.CreatedAt.IsZero())
	assert.Equal(t, word.CreatedAt, word.UpdatedAt)
}

func TestWord_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		text    string
		wantErr error
	}{
		{name: "valid", text: "serendipity", wantErr: nil},
		{name: "empty", text: "", wantErr: ErrEmptyWord},
		{name: "at limit", text: strings.Repeat("x", 255), wantErr: nil},
		{name: "too long", text: strings.Repeat("x", 256), wantErr: ErrWordTooLong},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewWord(tc.text)
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}
