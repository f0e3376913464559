package commands

import (
	"context"

	"rifas-api/internal/domain/invite"
	"rifas-api/internal/infra"
	"rifas-api/internal/pkg/clock"
	"rifas-api/internal/pkg/errs"
	"rifas-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type InviteCommands interface {
	// Request creates a pending access request from the holder of a pool's
	// invite link. At most one pending request per (pool, requestee) pair.
	Request(ctx context.Context, requesteeID uuid.UUID, inviteCode string) (uuid.UUID, error)
	Accept(ctx context.Context, actorID, inviteID uuid.UUID) error
	Cancel(ctx context.Context, actorID, inviteID uuid.UUID) error
}

type inviteCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewInviteCommands(uow shared.UnitOfWork, clk clock.Clock) InviteCommands {
	return &inviteCommandsImpl{uow: uow, clock: clk}
}

func (c *inviteCommandsImpl) Request(ctx context.Context, requesteeID uuid.UUID, inviteCode string) (uuid.UUID, error) {
	var id uuid.UUID
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := tx.Pools().FindByInviteCode(ctx, tx.DB(), inviteCode)
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrPoolNotFound)
		}
		if err != nil {
			return err
		}
		if p.IsMember(requesteeID) {
			return errs.ErrAlreadyMember
		}

		pending, err := tx.Invites().HasPending(ctx, tx.DB(), p.ID(), requesteeID)
		if err != nil {
			return err
		}
		if pending {
			return errs.ErrInviteAlreadyPending
		}

		// The partial unique index on pending invites decides concurrent
		// duplicate requests.
		id, err = tx.Invites().Create(ctx, tx.DB(), invite.NewInvite(p.ID(), requesteeID))
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return errs.Mark(err, errs.ErrInviteAlreadyPending)
		}
		return err
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// Accept grants membership: the conditional pending -> accepted transition
// and the set-union into the pool's shared users commit together or not at
// all. The loser of a concurrent accept/cancel sees ErrInviteNotPending.
func (c *inviteCommandsImpl) Accept(ctx context.Context, actorID, inviteID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		inv, err := c.findInvite(ctx, tx, inviteID)
		if err != nil {
			return err
		}

		p, err := findPoolForUpdate(ctx, tx, inv.PoolID())
		if err != nil {
			return err
		}
		if err := p.EnsureOwner(actorID); err != nil {
			return errs.Mark(err, errs.ErrNotOwner)
		}

		// The entity decides whether the transition is legal; the
		// conditional UPDATE decides who wins a concurrent race.
		now := c.clock.Now()
		if err := inv.Accept(now); err != nil {
			return errs.Mark(err, errs.ErrInviteNotPending)
		}
		won, err := tx.Invites().TransitionFromPending(ctx, tx.DB(), inviteID, inv.Status(), now)
		if err != nil {
			return err
		}
		if !won {
			return errs.ErrInviteNotPending
		}

		p.AddSharedUser(inv.RequesteeID())
		return tx.Pools().SaveSharedUsers(ctx, tx.DB(), p)
	})
}

// Cancel never touches membership: an accepted invite stays accepted and
// the requestee keeps access.
func (c *inviteCommandsImpl) Cancel(ctx context.Context, actorID, inviteID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		inv, err := c.findInvite(ctx, tx, inviteID)
		if err != nil {
			return err
		}

		if inv.RequesteeID() != actorID {
			p, err := findPoolForUpdate(ctx, tx, inv.PoolID())
			if err != nil {
				return err
			}
			if err := p.EnsureOwner(actorID); err != nil {
				return errs.Mark(err, errs.ErrNotOwner)
			}
		}

		now := c.clock.Now()
		if err := inv.Cancel(now); err != nil {
			return errs.Mark(err, errs.ErrInviteNotPending)
		}
		won, err := tx.Invites().TransitionFromPending(ctx, tx.DB(), inviteID, inv.Status(), now)
		if err != nil {
			return err
		}
		if !won {
			return errs.ErrInviteNotPending
		}
		return nil
	})
}

func (c *inviteCommandsImpl) findInvite(ctx context.Context, tx shared.Tx, inviteID uuid.UUID) (*invite.Invite, error) {
	inv, err := tx.Invites().FindByID(ctx, tx.DB(), inviteID)
	if infra.IsKind(err, infra.KindNotFound) {
		return nil, errs.Mark(err, errs.ErrInviteNotFound)
	}
	if err != nil {
		return nil, err
	}
	return inv, nil
}
