//go:build unit

package user_test

import (
	"testing"

	"rifas-api/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	cases := []struct {
		name  string
		value string
		want  string
		errIs error
	}{
		{name: "valid email", value: "maria@example.com", want: "maria@example.com"},
		{name: "normalized to lower case", value: "  Maria@Example.COM ", want: "maria@example.com"},
		{name: "empty rejected", value: "", errIs: user.ErrInvalidEmail},
		{name: "missing at sign rejected", value: "maria.example.com", errIs: user.ErrInvalidEmail},
		{name: "missing domain rejected", value: "maria@", errIs: user.ErrInvalidEmail},
		{name: "spaces rejected", value: "maria @example.com", errIs: user.ErrInvalidEmail},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			email, err := user.NewEmail(c.value)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, email.Value())
		})
	}
}

func TestNewUser(t *testing.T) {
	email, err := user.NewEmail("maria@example.com")
	require.NoError(t, err)

	t.Run("valid user", func(t *testing.T) {
		u, err := user.NewUser(email, "  Maria  ", "$2a$10$hash")
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, u.ID())
		assert.Equal(t, "Maria", u.Name())
		assert.True(t, u.IsActive())
		assert.Nil(t, u.LastLogin())
	})

	t.Run("blank name rejected", func(t *testing.T) {
		_, err := user.NewUser(email, "   ", "$2a$10$hash")
		require.ErrorIs(t, err, user.ErrInvalidName)
	})
}
