package pool

import (
	"crypto/rand"
	"errors"
	"math/big"
	"regexp"
)

var (
	ErrInvalidShortName  = errors.New("invalid short name")
	ErrInvalidKind       = errors.New("invalid pool kind")
	ErrInvalidVisibility = errors.New("invalid visibility")
	ErrInvalidQuantity   = errors.New("quantity must be positive")
	ErrInvalidPeriod     = errors.New("start time must be before end time")
)

// Kind distinguishes the three pool flavors: numbered raffles sell slots,
// contact raffles collect buyer details, events manage guest lists.
type Kind string

const (
	KindRaffleNumber  Kind = "raffle_number"
	KindRaffleContact Kind = "raffle_contact"
	KindEvent         Kind = "event"
)

func NewKind(value string) (Kind, error) {
	switch Kind(value) {
	case KindRaffleNumber, KindRaffleContact, KindEvent:
		return Kind(value), nil
	default:
		return "", ErrInvalidKind
	}
}

func (k Kind) String() string   { return string(k) }
func (k Kind) IsNumbered() bool { return k == KindRaffleNumber }
func (k Kind) IsEvent() bool    { return k == KindEvent }

type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
)

func NewVisibility(value string) (Visibility, error) {
	switch Visibility(value) {
	case VisibilityPublic, VisibilityPrivate:
		return Visibility(value), nil
	default:
		return "", ErrInvalidVisibility
	}
}

func (v Visibility) String() string { return string(v) }

// ShortName is the human-chosen slug used in shareable URLs. Unique among
// live pools; uniqueness itself is enforced at the persistence layer.
type ShortName struct {
	value string
}

var shortNamePattern = regexp.MustCompile(`^[a-z0-9](?:[a-z0-9-]{1,48}[a-z0-9])?$`)

func NewShortName(value string) (ShortName, error) {
	if !shortNamePattern.MatchString(value) {
		return ShortName{}, ErrInvalidShortName
	}
	return ShortName{value: value}, nil
}

func (s ShortName) String() string { return s.value }

type Quantity struct {
	value int
}

func NewQuantity(value int) (Quantity, error) {
	if value <= 0 {
		return Quantity{}, ErrInvalidQuantity
	}
	return Quantity{value: value}, nil
}

func (q Quantity) Value() int { return q.value }

const inviteCodeLength = 12

const inviteCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// NewInviteCode returns the random code embedded in a pool's shareable
// invite link. Uses crypto/rand; the code is link material, not a secret
// credential (those are CheckinTokens).
func NewInviteCode() (string, error) {
	code := make([]byte, inviteCodeLength)
	max := big.NewInt(int64(len(inviteCodeAlphabet)))
	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		code[i] = inviteCodeAlphabet[n.Int64()]
	}
	return string(code), nil
}
