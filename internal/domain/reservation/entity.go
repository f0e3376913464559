package reservation

import (
	"time"

	"github.com/google/uuid"
)

// Reservation is an immutable claim on one or more slot numbers of a
// numbered raffle. It is created by a buy action and only ever soft-deleted;
// the disjointness of slot numbers across live reservations of a pool is
// enforced transactionally at the persistence layer.
type Reservation struct {
	id              uuid.UUID
	poolID          uuid.UUID
	slots           SlotSet
	claimantName    ClaimantName
	claimantContact *string
	isDeleted       bool
	deletedAt       *time.Time
	createdAt       time.Time
}

func NewReservation(poolID uuid.UUID, slots SlotSet, claimantName ClaimantName, claimantContact *string) *Reservation {
	return &Reservation{
		id:              uuid.New(),
		poolID:          poolID,
		slots:           slots,
		claimantName:    claimantName,
		claimantContact: claimantContact,
	}
}

func Reconstruct(
	id, poolID uuid.UUID,
	slots SlotSet,
	claimantName ClaimantName,
	claimantContact *string,
	isDeleted bool,
	deletedAt *time.Time,
	createdAt time.Time,
) *Reservation {
	return &Reservation{
		id:              id,
		poolID:          poolID,
		slots:           slots,
		claimantName:    claimantName,
		claimantContact: claimantContact,
		isDeleted:       isDeleted,
		deletedAt:       deletedAt,
		createdAt:       createdAt,
	}
}

func (r *Reservation) ID() uuid.UUID              { return r.id }
func (r *Reservation) PoolID() uuid.UUID          { return r.poolID }
func (r *Reservation) Slots() SlotSet             { return r.slots }
func (r *Reservation) ClaimantName() ClaimantName { return r.claimantName }
func (r *Reservation) ClaimantContact() *string   { return r.claimantContact }
func (r *Reservation) IsDeleted() bool            { return r.isDeleted }
func (r *Reservation) DeletedAt() *time.Time      { return r.deletedAt }
func (r *Reservation) CreatedAt() time.Time       { return r.createdAt }
