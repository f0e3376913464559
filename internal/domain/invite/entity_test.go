//go:build unit

package invite_test

import (
	"testing"
	"time"

	"rifas-api/internal/domain/invite"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInviteTransitions(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	t.Run("accept from pending", func(t *testing.T) {
		inv := invite.NewInvite(uuid.New(), uuid.New())
		require.Equal(t, invite.StatusPending, inv.Status())

		require.NoError(t, inv.Accept(now))
		assert.Equal(t, invite.StatusAccepted, inv.Status())
		require.NotNil(t, inv.AcceptedAt())
		assert.Equal(t, now, *inv.AcceptedAt())
		assert.Nil(t, inv.CanceledAt())
	})

	t.Run("cancel from pending", func(t *testing.T) {
		inv := invite.NewInvite(uuid.New(), uuid.New())

		require.NoError(t, inv.Cancel(now))
		assert.Equal(t, invite.StatusCanceled, inv.Status())
		require.NotNil(t, inv.CanceledAt())
		assert.Nil(t, inv.AcceptedAt())
	})

	t.Run("terminal states never transition again", func(t *testing.T) {
		accepted := invite.NewInvite(uuid.New(), uuid.New())
		require.NoError(t, accepted.Accept(now))
		require.ErrorIs(t, accepted.Accept(now), invite.ErrNotPending)
		require.ErrorIs(t, accepted.Cancel(now), invite.ErrNotPending)

		canceled := invite.NewInvite(uuid.New(), uuid.New())
		require.NoError(t, canceled.Cancel(now))
		require.ErrorIs(t, canceled.Accept(now), invite.ErrNotPending)
		require.ErrorIs(t, canceled.Cancel(now), invite.ErrNotPending)
	})
}

func TestNewStatus(t *testing.T) {
	for _, value := range []string{"pending", "accepted", "canceled"} {
		status, err := invite.NewStatus(value)
		require.NoError(t, err, value)
		assert.Equal(t, value, status.String())
	}

	_, err := invite.NewStatus("declined")
	require.ErrorIs(t, err, invite.ErrInvalidStatus)

	assert.False(t, invite.StatusPending.IsTerminal())
	assert.True(t, invite.StatusAccepted.IsTerminal())
	assert.True(t, invite.StatusCanceled.IsTerminal())
}
