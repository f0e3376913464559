//go:build unit

package guest_test

import (
	"strings"
	"testing"

	"rifas-api/internal/domain/guest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCheckinToken(t *testing.T) {
	seen := make(map[string]struct{})
	for range 50 {
		token, err := guest.NewCheckinToken()
		require.NoError(t, err)
		require.False(t, token.IsZero())

		// 32 bytes of base64url without padding is 43 characters.
		assert.Len(t, token.String(), 43)
		assert.NotContains(t, token.String(), "=")

		_, dup := seen[token.String()]
		assert.False(t, dup, "tokens must not repeat")
		seen[token.String()] = struct{}{}
	}
}

func TestParseCheckinToken(t *testing.T) {
	original, err := guest.NewCheckinToken()
	require.NoError(t, err)

	parsed, err := guest.ParseCheckinToken(original.String())
	require.NoError(t, err)
	assert.Equal(t, original.String(), parsed.String())

	cases := []struct {
		name  string
		value string
	}{
		{name: "empty", value: ""},
		{name: "too short", value: "abc"},
		{name: "wrong length", value: strings.Repeat("a", 20)},
		{name: "invalid alphabet", value: strings.Repeat("!", 43)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := guest.ParseCheckinToken(c.value)
			require.ErrorIs(t, err, guest.ErrInvalidToken)
		})
	}
}
