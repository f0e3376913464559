//go:build unit

package pool_test

import (
	"testing"
	"time"

	"rifas-api/internal/domain/pool"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustShortName(t *testing.T, value string) pool.ShortName {
	t.Helper()
	sn, err := pool.NewShortName(value)
	require.NoError(t, err)
	return sn
}

func mustQuantity(t *testing.T, value int) *pool.Quantity {
	t.Helper()
	q, err := pool.NewQuantity(value)
	require.NoError(t, err)
	return &q
}

func TestNewRaffle(t *testing.T) {
	ownerID := uuid.New()
	shortName := mustShortName(t, "summer-raffle")

	t.Run("numbered raffle with quantity", func(t *testing.T) {
		p, err := pool.NewRaffle(ownerID, pool.KindRaffleNumber, "Summer Raffle", shortName, pool.VisibilityPublic, mustQuantity(t, 100), 500)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, p.ID())
		assert.Equal(t, ownerID, p.OwnerID())
		assert.True(t, p.Kind().IsNumbered())
		assert.Equal(t, 100, p.Quantity().Value())
		require.NotNil(t, p.TicketValueCents())
		assert.Equal(t, int64(500), *p.TicketValueCents())
		assert.Len(t, p.InviteCode(), 12)
		assert.Empty(t, p.SharedUserIDs())
	})

	t.Run("contact raffle without quantity", func(t *testing.T) {
		p, err := pool.NewRaffle(ownerID, pool.KindRaffleContact, "Contact Raffle", shortName, pool.VisibilityPrivate, nil, 1000)
		require.NoError(t, err)
		assert.Nil(t, p.Quantity())
	})

	t.Run("numbered raffle requires quantity", func(t *testing.T) {
		_, err := pool.NewRaffle(ownerID, pool.KindRaffleNumber, "Summer Raffle", shortName, pool.VisibilityPublic, nil, 500)
		require.ErrorIs(t, err, pool.ErrQuantityRequired)
	})

	t.Run("contact raffle rejects quantity", func(t *testing.T) {
		_, err := pool.NewRaffle(ownerID, pool.KindRaffleContact, "Contact Raffle", shortName, pool.VisibilityPublic, mustQuantity(t, 10), 500)
		require.ErrorIs(t, err, pool.ErrQuantityNotAllowed)
	})

	t.Run("event kind rejected", func(t *testing.T) {
		_, err := pool.NewRaffle(ownerID, pool.KindEvent, "Party", shortName, pool.VisibilityPublic, nil, 0)
		require.ErrorIs(t, err, pool.ErrInvalidKind)
	})
}

func TestNewEvent(t *testing.T) {
	ownerID := uuid.New()
	shortName := mustShortName(t, "birthday-party")
	start := time.Date(2026, 10, 1, 18, 0, 0, 0, time.UTC)
	end := start.Add(6 * time.Hour)

	t.Run("valid event", func(t *testing.T) {
		p, err := pool.NewEvent(ownerID, "Birthday Party", shortName, pool.VisibilityPrivate, 50000, start, end)
		require.NoError(t, err)

		assert.True(t, p.Kind().IsEvent())
		require.NotNil(t, p.BudgetValueCents())
		assert.Equal(t, int64(50000), *p.BudgetValueCents())
		require.NotNil(t, p.StartAt())
		assert.Equal(t, start, *p.StartAt())
	})

	t.Run("start must precede end", func(t *testing.T) {
		_, err := pool.NewEvent(ownerID, "Birthday Party", shortName, pool.VisibilityPrivate, 0, end, start)
		require.ErrorIs(t, err, pool.ErrInvalidPeriod)
	})

	t.Run("zero times rejected", func(t *testing.T) {
		_, err := pool.NewEvent(ownerID, "Birthday Party", shortName, pool.VisibilityPrivate, 0, time.Time{}, end)
		require.ErrorIs(t, err, pool.ErrPeriodRequired)
	})
}

func TestPoolMembership(t *testing.T) {
	ownerID := uuid.New()
	other := uuid.New()
	p, err := pool.NewRaffle(ownerID, pool.KindRaffleNumber, "Raffle", mustShortName(t, "raffle"), pool.VisibilityPublic, mustQuantity(t, 10), 100)
	require.NoError(t, err)

	assert.True(t, p.IsMember(ownerID))
	assert.True(t, p.IsOwner(ownerID))
	assert.False(t, p.IsMember(other))

	p.AddSharedUser(other)
	assert.True(t, p.IsMember(other))
	assert.False(t, p.IsOwner(other))

	// Re-adding is a no-op, not a duplicate.
	p.AddSharedUser(other)
	assert.Len(t, p.SharedUserIDs(), 1)

	p.AddSharedUser(ownerID)
	assert.Len(t, p.SharedUserIDs(), 1)

	// Shared users are members, not owners.
	require.NoError(t, p.EnsureOwner(ownerID))
	assert.ErrorIs(t, p.EnsureOwner(other), pool.ErrNotOwner)
}

func TestPoolMutations(t *testing.T) {
	ownerID := uuid.New()

	t.Run("quantity change only on numbered raffles", func(t *testing.T) {
		raffle, err := pool.NewRaffle(ownerID, pool.KindRaffleNumber, "Raffle", mustShortName(t, "raffle"), pool.VisibilityPublic, mustQuantity(t, 10), 100)
		require.NoError(t, err)
		require.NoError(t, raffle.ChangeQuantity(*mustQuantity(t, 20)))
		assert.Equal(t, 20, raffle.Quantity().Value())

		start := time.Date(2026, 10, 1, 18, 0, 0, 0, time.UTC)
		event, err := pool.NewEvent(ownerID, "Party", mustShortName(t, "party"), pool.VisibilityPrivate, 0, start, start.Add(time.Hour))
		require.NoError(t, err)
		require.ErrorIs(t, event.ChangeQuantity(*mustQuantity(t, 20)), pool.ErrQuantityNotAllowed)
	})

	t.Run("period change only on events", func(t *testing.T) {
		start := time.Date(2026, 10, 1, 18, 0, 0, 0, time.UTC)
		event, err := pool.NewEvent(ownerID, "Party", mustShortName(t, "party"), pool.VisibilityPrivate, 0, start, start.Add(time.Hour))
		require.NoError(t, err)

		require.NoError(t, event.ChangePeriod(start, start.Add(2*time.Hour)))
		require.ErrorIs(t, event.ChangePeriod(start.Add(time.Hour), start), pool.ErrInvalidPeriod)

		raffle, err := pool.NewRaffle(ownerID, pool.KindRaffleContact, "Raffle", mustShortName(t, "raffle"), pool.VisibilityPublic, nil, 100)
		require.NoError(t, err)
		require.ErrorIs(t, raffle.ChangePeriod(start, start.Add(time.Hour)), pool.ErrInvalidKind)
	})

	t.Run("rotate invite code replaces the code", func(t *testing.T) {
		p, err := pool.NewRaffle(ownerID, pool.KindRaffleContact, "Raffle", mustShortName(t, "raffle"), pool.VisibilityPublic, nil, 100)
		require.NoError(t, err)

		before := p.InviteCode()
		require.NoError(t, p.RotateInviteCode())
		assert.Len(t, p.InviteCode(), 12)
		assert.NotEqual(t, before, p.InviteCode())
	})
}
