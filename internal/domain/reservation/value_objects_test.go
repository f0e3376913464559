//go:build unit

package reservation_test

import (
	"testing"

	"rifas-api/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSlotSet(t *testing.T) {
	cases := []struct {
		name     string
		numbers  []int
		quantity int
		want     []int
		errIs    error
	}{
		{name: "single slot", numbers: []int{7}, quantity: 10, want: []int{7}},
		{name: "sorted and deduplicated", numbers: []int{5, 3, 5, 1}, quantity: 10, want: []int{1, 3, 5}},
		{name: "upper bound inclusive", numbers: []int{10}, quantity: 10, want: []int{10}},
		{name: "no upper bound when quantity is zero", numbers: []int{9999}, quantity: 0, want: []int{9999}},
		{name: "empty set rejected", numbers: nil, quantity: 10, errIs: reservation.ErrEmptySlotSet},
		{name: "zero rejected", numbers: []int{0}, quantity: 10, errIs: reservation.ErrSlotOutOfRange},
		{name: "negative rejected", numbers: []int{-1}, quantity: 10, errIs: reservation.ErrSlotOutOfRange},
		{name: "above quantity rejected", numbers: []int{11}, quantity: 10, errIs: reservation.ErrSlotOutOfRange},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			set, err := reservation.NewSlotSet(c.numbers, c.quantity)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, set.Numbers())
			assert.Equal(t, len(c.want), set.Size())
		})
	}
}

func TestSlotSetIntersect(t *testing.T) {
	a, err := reservation.NewSlotSet([]int{1, 2, 3, 7}, 10)
	require.NoError(t, err)
	b, err := reservation.NewSlotSet([]int{3, 7, 9}, 10)
	require.NoError(t, err)

	assert.Equal(t, []int{3, 7}, a.Intersect(b))
	assert.Equal(t, []int{3, 7}, b.Intersect(a))

	c, err := reservation.NewSlotSet([]int{4, 5}, 10)
	require.NoError(t, err)
	assert.Empty(t, a.Intersect(c))
}

func TestSlotSetString(t *testing.T) {
	set, err := reservation.NewSlotSet([]int{9, 1, 5}, 10)
	require.NoError(t, err)
	assert.Equal(t, "1,5,9", set.String())
}

func TestNewClaimantName(t *testing.T) {
	name, err := reservation.NewClaimantName("  Maria Silva  ")
	require.NoError(t, err)
	assert.Equal(t, "Maria Silva", name.String())

	_, err = reservation.NewClaimantName("   ")
	require.ErrorIs(t, err, reservation.ErrInvalidClaimant)
}
