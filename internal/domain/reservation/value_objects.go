package reservation

import (
	"errors"
	"sort"
	"strconv"
	"strings"
)

var (
	ErrEmptySlotSet    = errors.New("slot set must not be empty")
	ErrSlotOutOfRange  = errors.New("slot number out of range")
	ErrInvalidClaimant = errors.New("claimant name must not be empty")
)

// SlotSet is a non-empty, deduplicated, ascending set of slot numbers.
type SlotSet struct {
	numbers []int
}

// NewSlotSet validates every number against [1, quantity], removes
// duplicates and sorts. quantity <= 0 disables the upper bound check
// (used when reconstructing from storage).
func NewSlotSet(numbers []int, quantity int) (SlotSet, error) {
	if len(numbers) == 0 {
		return SlotSet{}, ErrEmptySlotSet
	}

	seen := make(map[int]struct{}, len(numbers))
	unique := make([]int, 0, len(numbers))
	for _, n := range numbers {
		if n < 1 || (quantity > 0 && n > quantity) {
			return SlotSet{}, ErrSlotOutOfRange
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		unique = append(unique, n)
	}
	sort.Ints(unique)

	return SlotSet{numbers: unique}, nil
}

func (s SlotSet) Numbers() []int {
	out := make([]int, len(s.numbers))
	copy(out, s.numbers)
	return out
}

func (s SlotSet) Size() int { return len(s.numbers) }

func (s SlotSet) Contains(n int) bool {
	i := sort.SearchInts(s.numbers, n)
	return i < len(s.numbers) && s.numbers[i] == n
}

// Intersect returns the numbers present in both sets, ascending.
func (s SlotSet) Intersect(other SlotSet) []int {
	var common []int
	for _, n := range s.numbers {
		if other.Contains(n) {
			common = append(common, n)
		}
	}
	return common
}

func (s SlotSet) String() string {
	parts := make([]string, len(s.numbers))
	for i, n := range s.numbers {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}

// ClaimantName identifies the buyer on a reservation. Buyers are not
// accounts; the name is free text chosen by the organizer at sale time.
type ClaimantName struct {
	value string
}

func NewClaimantName(value string) (ClaimantName, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return ClaimantName{}, ErrInvalidClaimant
	}
	return ClaimantName{value: trimmed}, nil
}

func (c ClaimantName) String() string { return c.value }
