//go:build unit

package guest_test

import (
	"testing"

	"rifas-api/internal/domain/guest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustToken(t *testing.T) guest.CheckinToken {
	t.Helper()
	token, err := guest.NewCheckinToken()
	require.NoError(t, err)
	return token
}

func TestNewGuest(t *testing.T) {
	poolID := uuid.New()

	t.Run("valid guest", func(t *testing.T) {
		contact := "maria@example.com"
		g, err := guest.NewGuest(poolID, "  Maria  ", &contact, mustToken(t), "/static/qrcodes/abc.png")
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, g.ID())
		assert.Equal(t, "Maria", g.Name())
		assert.False(t, g.IsPresenceConfirmed())
		assert.False(t, g.IsPresentInEvent())
		assert.False(t, g.IsDeleted())
	})

	t.Run("blank name rejected", func(t *testing.T) {
		_, err := guest.NewGuest(poolID, "   ", nil, mustToken(t), "")
		require.ErrorIs(t, err, guest.ErrInvalidName)
	})
}

func TestNewGroup(t *testing.T) {
	poolID := uuid.New()
	a, b := uuid.New(), uuid.New()

	t.Run("valid group", func(t *testing.T) {
		g, err := guest.NewGroup(poolID, "Silva Family", true, []uuid.UUID{a, b}, mustToken(t), "")
		require.NoError(t, err)

		assert.True(t, g.IsFamily())
		assert.Equal(t, []uuid.UUID{a, b}, g.GuestIDs())
		assert.True(t, g.HasMember(a))
		assert.False(t, g.HasMember(uuid.New()))
	})

	t.Run("single member rejected", func(t *testing.T) {
		_, err := guest.NewGroup(poolID, "Solo", false, []uuid.UUID{a}, mustToken(t), "")
		require.ErrorIs(t, err, guest.ErrGroupTooSmall)
	})

	t.Run("duplicate members rejected", func(t *testing.T) {
		_, err := guest.NewGroup(poolID, "Twins", false, []uuid.UUID{a, a}, mustToken(t), "")
		require.ErrorIs(t, err, guest.ErrDuplicateMember)
	})

	t.Run("blank name rejected", func(t *testing.T) {
		_, err := guest.NewGroup(poolID, " ", false, []uuid.UUID{a, b}, mustToken(t), "")
		require.ErrorIs(t, err, guest.ErrInvalidName)
	})
}

func TestGroupMembers(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	g, err := guest.NewGroup(uuid.New(), "Friends", false, []uuid.UUID{a, b}, mustToken(t), "")
	require.NoError(t, err)

	t.Run("add unions and skips existing", func(t *testing.T) {
		g.AddMembers([]uuid.UUID{b, c})
		assert.Equal(t, []uuid.UUID{a, b, c}, g.GuestIDs())
	})

	t.Run("replace enforces size floor", func(t *testing.T) {
		require.ErrorIs(t, g.ReplaceMembers([]uuid.UUID{a}), guest.ErrGroupTooSmall)
		require.NoError(t, g.ReplaceMembers([]uuid.UUID{b, c}))
		assert.Equal(t, []uuid.UUID{b, c}, g.GuestIDs())
	})
}
