package guest

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidName     = errors.New("guest name must not be empty")
	ErrGroupTooSmall   = errors.New("guest group requires at least two guests")
	ErrDuplicateMember = errors.New("guest group members must be distinct")
)

const MinGroupSize = 2

// Guest is an event attendee bound to a scannable credential. Presence
// confirmation ("I will attend") and check-in ("I am at the venue") are
// independent booleans, not a sequence.
type Guest struct {
	id                  uuid.UUID
	poolID              uuid.UUID
	name                string
	contactInfo         *string
	token               CheckinToken
	qrImageURL          string
	isPresenceConfirmed bool
	isPresentInEvent    bool
	isDeleted           bool
	deletedAt           *time.Time
	createdAt           time.Time
	updatedAt           time.Time
}

func NewGuest(poolID uuid.UUID, name string, contactInfo *string, token CheckinToken, qrImageURL string) (*Guest, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrInvalidName
	}
	return &Guest{
		id:          uuid.New(),
		poolID:      poolID,
		name:        strings.TrimSpace(name),
		contactInfo: contactInfo,
		token:       token,
		qrImageURL:  qrImageURL,
	}, nil
}

func ReconstructGuest(
	id, poolID uuid.UUID,
	name string,
	contactInfo *string,
	token CheckinToken,
	qrImageURL string,
	isPresenceConfirmed, isPresentInEvent, isDeleted bool,
	deletedAt *time.Time,
	createdAt, updatedAt time.Time,
) *Guest {
	return &Guest{
		id:                  id,
		poolID:              poolID,
		name:                name,
		contactInfo:         contactInfo,
		token:               token,
		qrImageURL:          qrImageURL,
		isPresenceConfirmed: isPresenceConfirmed,
		isPresentInEvent:    isPresentInEvent,
		isDeleted:           isDeleted,
		deletedAt:           deletedAt,
		createdAt:           createdAt,
		updatedAt:           updatedAt,
	}
}

func (g *Guest) ID() uuid.UUID             { return g.id }
func (g *Guest) PoolID() uuid.UUID         { return g.poolID }
func (g *Guest) Name() string              { return g.name }
func (g *Guest) ContactInfo() *string      { return g.contactInfo }
func (g *Guest) Token() CheckinToken       { return g.token }
func (g *Guest) QRImageURL() string        { return g.qrImageURL }
func (g *Guest) IsPresenceConfirmed() bool { return g.isPresenceConfirmed }
func (g *Guest) IsPresentInEvent() bool    { return g.isPresentInEvent }
func (g *Guest) IsDeleted() bool           { return g.isDeleted }
func (g *Guest) CreatedAt() time.Time      { return g.createdAt }
func (g *Guest) UpdatedAt() time.Time      { return g.updatedAt }

// Group is a named cluster of guests sharing one credential. Guests are
// referenced, never owned: deleting a group leaves its guests intact, and
// a guest may appear in more than one group.
type Group struct {
	id         uuid.UUID
	poolID     uuid.UUID
	name       string
	isFamily   bool
	guestIDs   []uuid.UUID
	token      CheckinToken
	qrImageURL string
	isDeleted  bool
	deletedAt  *time.Time
	createdAt  time.Time
	updatedAt  time.Time
}

func NewGroup(poolID uuid.UUID, name string, isFamily bool, guestIDs []uuid.UUID, token CheckinToken, qrImageURL string) (*Group, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrInvalidName
	}
	ids, err := validateMembers(guestIDs)
	if err != nil {
		return nil, err
	}
	return &Group{
		id:         uuid.New(),
		poolID:     poolID,
		name:       strings.TrimSpace(name),
		isFamily:   isFamily,
		guestIDs:   ids,
		token:      token,
		qrImageURL: qrImageURL,
	}, nil
}

func ReconstructGroup(
	id, poolID uuid.UUID,
	name string,
	isFamily bool,
	guestIDs []uuid.UUID,
	token CheckinToken,
	qrImageURL string,
	isDeleted bool,
	deletedAt *time.Time,
	createdAt, updatedAt time.Time,
) *Group {
	return &Group{
		id:         id,
		poolID:     poolID,
		name:       name,
		isFamily:   isFamily,
		guestIDs:   guestIDs,
		token:      token,
		qrImageURL: qrImageURL,
		isDeleted:  isDeleted,
		deletedAt:  deletedAt,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// ReplaceMembers swaps the full member list; the size floor still applies.
func (g *Group) ReplaceMembers(guestIDs []uuid.UUID) error {
	ids, err := validateMembers(guestIDs)
	if err != nil {
		return err
	}
	g.guestIDs = ids
	return nil
}

// AddMembers unions new guests into the group, skipping ids already present.
func (g *Group) AddMembers(guestIDs []uuid.UUID) {
	for _, id := range guestIDs {
		if !g.HasMember(id) {
			g.guestIDs = append(g.guestIDs, id)
		}
	}
}

func (g *Group) Rename(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrInvalidName
	}
	g.name = strings.TrimSpace(name)
	return nil
}

func (g *Group) SetFamily(isFamily bool) {
	g.isFamily = isFamily
}

func (g *Group) HasMember(guestID uuid.UUID) bool {
	for _, id := range g.guestIDs {
		if id == guestID {
			return true
		}
	}
	return false
}

func (g *Group) ID() uuid.UUID          { return g.id }
func (g *Group) PoolID() uuid.UUID      { return g.poolID }
func (g *Group) Name() string           { return g.name }
func (g *Group) IsFamily() bool         { return g.isFamily }
func (g *Group) GuestIDs() []uuid.UUID  { return g.guestIDs }
func (g *Group) Token() CheckinToken    { return g.token }
func (g *Group) QRImageURL() string     { return g.qrImageURL }
func (g *Group) IsDeleted() bool        { return g.isDeleted }
func (g *Group) CreatedAt() time.Time   { return g.createdAt }
func (g *Group) UpdatedAt() time.Time   { return g.updatedAt }

func validateMembers(guestIDs []uuid.UUID) ([]uuid.UUID, error) {
	if len(guestIDs) < MinGroupSize {
		return nil, ErrGroupTooSmall
	}
	seen := make(map[uuid.UUID]struct{}, len(guestIDs))
	out := make([]uuid.UUID, 0, len(guestIDs))
	for _, id := range guestIDs {
		if _, ok := seen[id]; ok {
			return nil, ErrDuplicateMember
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out, nil
}
