package pool

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrQuantityRequired   = errors.New("numbered raffle requires a quantity")
	ErrQuantityNotAllowed = errors.New("quantity only applies to numbered raffles")
	ErrPeriodRequired     = errors.New("event requires a start and end time")
	ErrNotOwner           = errors.New("only the owner may perform this action")
)

// Pool is the unit of ownership and sharing: a raffle or an event. The owner
// and the shared users form the membership set with read/write access to the
// pool's slots, invites and guests.
type Pool struct {
	id               uuid.UUID
	ownerID          uuid.UUID
	kind             Kind
	name             string
	shortName        ShortName
	visibility       Visibility
	quantity         *Quantity
	ticketValueCents *int64
	budgetValueCents *int64
	startAt          *time.Time
	endAt            *time.Time
	inviteCode       string
	sharedUserIDs    []uuid.UUID
	isDeleted        bool
	deletedAt        *time.Time
	createdAt        time.Time
	updatedAt        time.Time
}

func NewRaffle(ownerID uuid.UUID, kind Kind, name string, shortName ShortName, visibility Visibility, quantity *Quantity, ticketValueCents int64) (*Pool, error) {
	if kind.IsEvent() {
		return nil, ErrInvalidKind
	}
	if kind.IsNumbered() && quantity == nil {
		return nil, ErrQuantityRequired
	}
	if !kind.IsNumbered() && quantity != nil {
		return nil, ErrQuantityNotAllowed
	}

	inviteCode, err := NewInviteCode()
	if err != nil {
		return nil, err
	}

	value := ticketValueCents
	return &Pool{
		id:               uuid.New(),
		ownerID:          ownerID,
		kind:             kind,
		name:             name,
		shortName:        shortName,
		visibility:       visibility,
		quantity:         quantity,
		ticketValueCents: &value,
		inviteCode:       inviteCode,
		sharedUserIDs:    []uuid.UUID{},
	}, nil
}

func NewEvent(ownerID uuid.UUID, name string, shortName ShortName, visibility Visibility, budgetValueCents int64, startAt, endAt time.Time) (*Pool, error) {
	if startAt.IsZero() || endAt.IsZero() {
		return nil, ErrPeriodRequired
	}
	if !startAt.Before(endAt) {
		return nil, ErrInvalidPeriod
	}

	inviteCode, err := NewInviteCode()
	if err != nil {
		return nil, err
	}

	budget := budgetValueCents
	start := startAt
	end := endAt
	return &Pool{
		id:               uuid.New(),
		ownerID:          ownerID,
		kind:             KindEvent,
		name:             name,
		shortName:        shortName,
		visibility:       visibility,
		budgetValueCents: &budget,
		startAt:          &start,
		endAt:            &end,
		inviteCode:       inviteCode,
		sharedUserIDs:    []uuid.UUID{},
	}, nil
}

func Reconstruct(
	id, ownerID uuid.UUID,
	kind Kind,
	name string,
	shortName ShortName,
	visibility Visibility,
	quantity *Quantity,
	ticketValueCents, budgetValueCents *int64,
	startAt, endAt *time.Time,
	inviteCode string,
	sharedUserIDs []uuid.UUID,
	isDeleted bool,
	deletedAt *time.Time,
	createdAt, updatedAt time.Time,
) *Pool {
	return &Pool{
		id:               id,
		ownerID:          ownerID,
		kind:             kind,
		name:             name,
		shortName:        shortName,
		visibility:       visibility,
		quantity:         quantity,
		ticketValueCents: ticketValueCents,
		budgetValueCents: budgetValueCents,
		startAt:          startAt,
		endAt:            endAt,
		inviteCode:       inviteCode,
		sharedUserIDs:    sharedUserIDs,
		isDeleted:        isDeleted,
		deletedAt:        deletedAt,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

// IsMember reports whether the user owns or shares the pool.
func (p *Pool) IsMember(userID uuid.UUID) bool {
	if p.ownerID == userID {
		return true
	}
	for _, id := range p.sharedUserIDs {
		if id == userID {
			return true
		}
	}
	return false
}

func (p *Pool) IsOwner(userID uuid.UUID) bool {
	return p.ownerID == userID
}

// EnsureOwner gates mutations reserved to the owner: deletion, invite
// decisions, invite-code rotation.
func (p *Pool) EnsureOwner(userID uuid.UUID) error {
	if !p.IsOwner(userID) {
		return ErrNotOwner
	}
	return nil
}

// AddSharedUser is an idempotent set union, never an append.
func (p *Pool) AddSharedUser(userID uuid.UUID) {
	if p.IsMember(userID) {
		return
	}
	p.sharedUserIDs = append(p.sharedUserIDs, userID)
}

func (p *Pool) Rename(name string) {
	p.name = name
}

func (p *Pool) ChangeShortName(shortName ShortName) {
	p.shortName = shortName
}

func (p *Pool) ChangeVisibility(v Visibility) {
	p.visibility = v
}

// ChangeQuantity adjusts the slot count of a numbered raffle. Shrinking
// below the highest reserved number is rejected at the usecase layer,
// where the reservation set is visible.
func (p *Pool) ChangeQuantity(q Quantity) error {
	if !p.kind.IsNumbered() {
		return ErrQuantityNotAllowed
	}
	p.quantity = &q
	return nil
}

func (p *Pool) ChangeTicketValue(cents int64) {
	p.ticketValueCents = &cents
}

func (p *Pool) ChangeBudget(cents int64) {
	p.budgetValueCents = &cents
}

func (p *Pool) ChangePeriod(startAt, endAt time.Time) error {
	if !p.kind.IsEvent() {
		return ErrInvalidKind
	}
	if !startAt.Before(endAt) {
		return ErrInvalidPeriod
	}
	p.startAt = &startAt
	p.endAt = &endAt
	return nil
}

// RotateInviteCode replaces the shareable code, invalidating links that
// carry the old one. Pending invites are unaffected.
func (p *Pool) RotateInviteCode() error {
	code, err := NewInviteCode()
	if err != nil {
		return err
	}
	p.inviteCode = code
	return nil
}

func (p *Pool) ID() uuid.UUID                { return p.id }
func (p *Pool) OwnerID() uuid.UUID           { return p.ownerID }
func (p *Pool) Kind() Kind                   { return p.kind }
func (p *Pool) Name() string                 { return p.name }
func (p *Pool) ShortName() ShortName         { return p.shortName }
func (p *Pool) Visibility() Visibility       { return p.visibility }
func (p *Pool) Quantity() *Quantity          { return p.quantity }
func (p *Pool) TicketValueCents() *int64     { return p.ticketValueCents }
func (p *Pool) BudgetValueCents() *int64     { return p.budgetValueCents }
func (p *Pool) StartAt() *time.Time          { return p.startAt }
func (p *Pool) EndAt() *time.Time            { return p.endAt }
func (p *Pool) InviteCode() string           { return p.inviteCode }
func (p *Pool) SharedUserIDs() []uuid.UUID   { return p.sharedUserIDs }
func (p *Pool) IsDeleted() bool              { return p.isDeleted }
func (p *Pool) DeletedAt() *time.Time        { return p.deletedAt }
func (p *Pool) CreatedAt() time.Time         { return p.createdAt }
func (p *Pool) UpdatedAt() time.Time         { return p.updatedAt }
