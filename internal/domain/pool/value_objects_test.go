//go:build unit

package pool_test

import (
	"testing"

	"rifas-api/internal/domain/pool"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShortName(t *testing.T) {
	cases := []struct {
		name  string
		value string
		errIs error
	}{
		{name: "simple slug", value: "summer-raffle"},
		{name: "digits allowed", value: "raffle-2026"},
		{name: "single character", value: "x"},
		{name: "empty rejected", value: "", errIs: pool.ErrInvalidShortName},
		{name: "uppercase rejected", value: "Summer", errIs: pool.ErrInvalidShortName},
		{name: "leading hyphen rejected", value: "-raffle", errIs: pool.ErrInvalidShortName},
		{name: "trailing hyphen rejected", value: "raffle-", errIs: pool.ErrInvalidShortName},
		{name: "spaces rejected", value: "summer raffle", errIs: pool.ErrInvalidShortName},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			sn, err := pool.NewShortName(c.value)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.value, sn.String())
		})
	}
}

func TestNewQuantity(t *testing.T) {
	q, err := pool.NewQuantity(1)
	require.NoError(t, err)
	assert.Equal(t, 1, q.Value())

	_, err = pool.NewQuantity(0)
	require.ErrorIs(t, err, pool.ErrInvalidQuantity)

	_, err = pool.NewQuantity(-5)
	require.ErrorIs(t, err, pool.ErrInvalidQuantity)
}

func TestNewKind(t *testing.T) {
	for _, value := range []string{"raffle_number", "raffle_contact", "event"} {
		_, err := pool.NewKind(value)
		require.NoError(t, err, value)
	}

	_, err := pool.NewKind("lottery")
	require.ErrorIs(t, err, pool.ErrInvalidKind)
}

func TestNewInviteCode(t *testing.T) {
	seen := make(map[string]struct{})
	for range 50 {
		code, err := pool.NewInviteCode()
		require.NoError(t, err)
		assert.Len(t, code, 12)

		_, dup := seen[code]
		assert.False(t, dup, "invite codes must not repeat")
		seen[code] = struct{}{}
	}
}
