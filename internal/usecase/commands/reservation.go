package commands

import (
	"context"

	"rifas-api/internal/domain/reservation"
	"rifas-api/internal/infra"
	"rifas-api/internal/pkg/errs"
	"rifas-api/internal/usecase/shared"

	"github.com/google/uuid"
)

// SlotConflictError carries the subset of requested numbers that lost to an
// existing reservation. It is always marked with errs.ErrSlotAlreadyReserved
// so handlers can match it with errors.Is and extract the numbers with
// errors.As.
type SlotConflictError struct {
	Conflicting []int
}

func (e *SlotConflictError) Error() string {
	return "slots already reserved: " + formatSlots(e.Conflicting)
}

func formatSlots(numbers []int) string {
	set, err := reservation.NewSlotSet(numbers, 0)
	if err != nil {
		return ""
	}
	return set.String()
}

type ReserveInput struct {
	PoolID          uuid.UUID
	SlotNumbers     []int
	ClaimantName    string
	ClaimantContact *string
}

type ReservationCommands interface {
	Reserve(ctx context.Context, actorID uuid.UUID, input ReserveInput) (uuid.UUID, error)
	// Release is idempotent: releasing an already released reservation
	// succeeds without effect.
	Release(ctx context.Context, actorID, reservationID uuid.UUID) error
}

type reservationCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewReservationCommands(uow shared.UnitOfWork) ReservationCommands {
	return &reservationCommandsImpl{uow: uow}
}

// Reserve locks the pool row, computes the overlap against live reservations
// and inserts, all in one transaction. Two buyers of the same number
// serialize on the lock; the loser sees a SlotConflictError naming exactly
// the numbers that were taken.
func (c *reservationCommandsImpl) Reserve(ctx context.Context, actorID uuid.UUID, input ReserveInput) (uuid.UUID, error) {
	claimant, err := reservation.NewClaimantName(input.ClaimantName)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var id uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := findPoolForUpdate(ctx, tx, input.PoolID)
		if err != nil {
			return err
		}
		if !p.IsMember(actorID) {
			return errs.ErrNotMember
		}
		if !p.Kind().IsNumbered() || p.Quantity() == nil {
			return errs.Mark(errs.New("pool does not sell numbered slots"), errs.ErrDomainValidation)
		}

		slots, err := reservation.NewSlotSet(input.SlotNumbers, p.Quantity().Value())
		if err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}

		conflicting, err := tx.Reservations().ConflictingSlots(ctx, tx.DB(), p.ID(), slots.Numbers())
		if err != nil {
			return err
		}
		if len(conflicting) > 0 {
			return errs.Mark(&SlotConflictError{Conflicting: conflicting}, errs.ErrSlotAlreadyReserved)
		}

		r := reservation.NewReservation(p.ID(), slots, claimant, input.ClaimantContact)
		id, err = tx.Reservations().Create(ctx, tx.DB(), r)
		return err
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (c *reservationCommandsImpl) Release(ctx context.Context, actorID, reservationID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := tx.Reservations().FindByID(ctx, tx.DB(), reservationID)
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrReservationNotFound)
		}
		if err != nil {
			return err
		}

		p, err := findPoolForUpdate(ctx, tx, r.PoolID())
		if err != nil {
			return err
		}
		if !p.IsMember(actorID) {
			return errs.ErrNotMember
		}
		if r.IsDeleted() {
			return nil
		}

		_, err = tx.Reservations().SoftDelete(ctx, tx.DB(), reservationID)
		return err
	})
}
