package commands

import (
	"context"
	"time"

	"rifas-api/internal/domain/pool"
	"rifas-api/internal/infra"
	"rifas-api/internal/pkg/errs"
	"rifas-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateRaffleInput struct {
	Kind             string
	Name             string
	ShortName        string
	Visibility       string
	Quantity         *int
	TicketValueCents int64
}

type CreateEventInput struct {
	Name             string
	ShortName        string
	Visibility       string
	BudgetValueCents int64
	StartAt          time.Time
	EndAt            time.Time
}

// UpdatePoolInput applies only the fields that are set.
type UpdatePoolInput struct {
	Name             *string
	ShortName        *string
	Visibility       *string
	Quantity         *int
	TicketValueCents *int64
	BudgetValueCents *int64
	StartAt          *time.Time
	EndAt            *time.Time
}

type PoolCommands interface {
	CreateRaffle(ctx context.Context, ownerID uuid.UUID, input CreateRaffleInput) (uuid.UUID, error)
	CreateEvent(ctx context.Context, ownerID uuid.UUID, input CreateEventInput) (uuid.UUID, error)
	Update(ctx context.Context, actorID, poolID uuid.UUID, input UpdatePoolInput) error
	RotateInviteCode(ctx context.Context, actorID, poolID uuid.UUID) (string, error)
	Delete(ctx context.Context, actorID, poolID uuid.UUID) error
}

type poolCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewPoolCommands(uow shared.UnitOfWork) PoolCommands {
	return &poolCommandsImpl{uow: uow}
}

func (c *poolCommandsImpl) CreateRaffle(ctx context.Context, ownerID uuid.UUID, input CreateRaffleInput) (uuid.UUID, error) {
	kind, err := pool.NewKind(input.Kind)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	shortName, err := pool.NewShortName(input.ShortName)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	visibility, err := pool.NewVisibility(input.Visibility)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var quantity *pool.Quantity
	if input.Quantity != nil {
		q, err := pool.NewQuantity(*input.Quantity)
		if err != nil {
			return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
		}
		quantity = &q
	}

	p, err := pool.NewRaffle(ownerID, kind, input.Name, shortName, visibility, quantity, input.TicketValueCents)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	return c.create(ctx, p)
}

func (c *poolCommandsImpl) CreateEvent(ctx context.Context, ownerID uuid.UUID, input CreateEventInput) (uuid.UUID, error) {
	shortName, err := pool.NewShortName(input.ShortName)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	visibility, err := pool.NewVisibility(input.Visibility)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	p, err := pool.NewEvent(ownerID, input.Name, shortName, visibility, input.BudgetValueCents, input.StartAt, input.EndAt)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	return c.create(ctx, p)
}

// create checks short name availability inside the same transaction as the
// insert; the partial unique index backs the check against concurrent
// creators.
func (c *poolCommandsImpl) create(ctx context.Context, p *pool.Pool) (uuid.UUID, error) {
	var id uuid.UUID
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		taken, err := tx.Pools().ShortNameTaken(ctx, tx.DB(), p.ShortName().String(), nil)
		if err != nil {
			return err
		}
		if taken {
			return errs.ErrShortNameTaken
		}

		id, err = tx.Pools().Create(ctx, tx.DB(), p)
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return errs.Mark(err, errs.ErrShortNameTaken)
		}
		return err
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (c *poolCommandsImpl) Update(ctx context.Context, actorID, poolID uuid.UUID, input UpdatePoolInput) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := findPoolForUpdate(ctx, tx, poolID)
		if err != nil {
			return err
		}
		if err := p.EnsureOwner(actorID); err != nil {
			return errs.Mark(err, errs.ErrNotOwner)
		}

		if input.Name != nil {
			p.Rename(*input.Name)
		}
		if input.ShortName != nil && *input.ShortName != p.ShortName().String() {
			shortName, err := pool.NewShortName(*input.ShortName)
			if err != nil {
				return errs.Mark(err, errs.ErrDomainValidation)
			}
			id := p.ID()
			taken, err := tx.Pools().ShortNameTaken(ctx, tx.DB(), shortName.String(), &id)
			if err != nil {
				return err
			}
			if taken {
				return errs.ErrShortNameTaken
			}
			p.ChangeShortName(shortName)
		}
		if input.Visibility != nil {
			visibility, err := pool.NewVisibility(*input.Visibility)
			if err != nil {
				return errs.Mark(err, errs.ErrDomainValidation)
			}
			p.ChangeVisibility(visibility)
		}
		if input.Quantity != nil {
			if err := c.changeQuantity(ctx, tx, p, *input.Quantity); err != nil {
				return err
			}
		}
		if input.TicketValueCents != nil {
			p.ChangeTicketValue(*input.TicketValueCents)
		}
		if input.BudgetValueCents != nil {
			p.ChangeBudget(*input.BudgetValueCents)
		}
		if input.StartAt != nil || input.EndAt != nil {
			startAt, endAt := p.StartAt(), p.EndAt()
			if input.StartAt != nil {
				startAt = input.StartAt
			}
			if input.EndAt != nil {
				endAt = input.EndAt
			}
			if startAt == nil || endAt == nil {
				return errs.Mark(pool.ErrPeriodRequired, errs.ErrDomainValidation)
			}
			if err := p.ChangePeriod(*startAt, *endAt); err != nil {
				return errs.Mark(err, errs.ErrDomainValidation)
			}
		}

		return tx.Pools().Update(ctx, tx.DB(), p)
	})
}

// changeQuantity refuses to shrink a raffle below its highest live reserved
// number; the pool row is already locked, so the maximum cannot move under us.
func (c *poolCommandsImpl) changeQuantity(ctx context.Context, tx shared.Tx, p *pool.Pool, newQuantity int) error {
	q, err := pool.NewQuantity(newQuantity)
	if err != nil {
		return errs.Mark(err, errs.ErrDomainValidation)
	}

	maxReserved, err := tx.Reservations().MaxReservedSlot(ctx, tx.DB(), p.ID())
	if err != nil {
		return err
	}
	if newQuantity < maxReserved {
		return errs.ErrQuantityBelowReserved
	}

	if err := p.ChangeQuantity(q); err != nil {
		return errs.Mark(err, errs.ErrDomainValidation)
	}
	return nil
}

func (c *poolCommandsImpl) RotateInviteCode(ctx context.Context, actorID, poolID uuid.UUID) (string, error) {
	var code string
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := findPoolForUpdate(ctx, tx, poolID)
		if err != nil {
			return err
		}
		if err := p.EnsureOwner(actorID); err != nil {
			return errs.Mark(err, errs.ErrNotOwner)
		}
		if err := p.RotateInviteCode(); err != nil {
			return errs.Wrap(err, "rotate invite code")
		}
		code = p.InviteCode()
		return tx.Pools().Update(ctx, tx.DB(), p)
	})
	if err != nil {
		return "", err
	}
	return code, nil
}

func (c *poolCommandsImpl) Delete(ctx context.Context, actorID, poolID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := findPoolForUpdate(ctx, tx, poolID)
		if err != nil {
			return err
		}
		if err := p.EnsureOwner(actorID); err != nil {
			return errs.Mark(err, errs.ErrNotOwner)
		}
		return tx.Pools().SoftDelete(ctx, tx.DB(), poolID)
	})
}

func findPoolForUpdate(ctx context.Context, tx shared.Tx, poolID uuid.UUID) (*pool.Pool, error) {
	p, err := tx.Pools().FindByIDForUpdate(ctx, tx.DB(), poolID)
	if infra.IsKind(err, infra.KindNotFound) {
		return nil, errs.Mark(err, errs.ErrPoolNotFound)
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}
