package commands

import (
	"context"

	"rifas-api/internal/domain/guest"
	"rifas-api/internal/domain/pool"
	"rifas-api/internal/infra"
	"rifas-api/internal/pkg/errs"
	"rifas-api/internal/usecase/shared"

	"github.com/google/uuid"
)

// CredentialRenderer materializes a checkin token into a stored scannable
// image and returns the image's public URL.
type CredentialRenderer interface {
	Render(ctx context.Context, token guest.CheckinToken) (string, error)
}

const renderRetries = 2

type IssueGuestInput struct {
	PoolID      uuid.UUID
	Name        string
	ContactInfo *string
}

type IssueGroupInput struct {
	PoolID   uuid.UUID
	Name     string
	IsFamily bool
	GuestIDs []uuid.UUID
}

// UpdateGroupInput applies only the fields that are set. ReplaceGuestIDs
// swaps the full member list; AddGuestIDs unions into it.
type UpdateGroupInput struct {
	Name            *string
	IsFamily        *bool
	ReplaceGuestIDs []uuid.UUID
	AddGuestIDs     []uuid.UUID
}

type GuestCommands interface {
	IssueGuest(ctx context.Context, actorID uuid.UUID, input IssueGuestInput) (uuid.UUID, error)
	IssueGroup(ctx context.Context, actorID uuid.UUID, input IssueGroupInput) (uuid.UUID, error)
	UpdateGroup(ctx context.Context, actorID, groupID uuid.UUID, input UpdateGroupInput) error
	// ConfirmPresence records "I will attend". Unauthenticated; possession
	// of the token is the authorization. For a group token, memberGuestID
	// narrows the action to one member; nil applies it to every member.
	ConfirmPresence(ctx context.Context, token string, memberGuestID *uuid.UUID, confirmed bool) error
	// CheckIn records venue arrival, scanned by an organizer. Independent
	// of presence confirmation; either may happen first.
	CheckIn(ctx context.Context, actorID uuid.UUID, token string, memberGuestID *uuid.UUID, present bool) error
	RevokeGuest(ctx context.Context, actorID, guestID uuid.UUID) error
	RevokeGroup(ctx context.Context, actorID, groupID uuid.UUID) error
}

type guestCommandsImpl struct {
	uow      shared.UnitOfWork
	renderer CredentialRenderer
}

func NewGuestCommands(uow shared.UnitOfWork, renderer CredentialRenderer) GuestCommands {
	return &guestCommandsImpl{uow: uow, renderer: renderer}
}

// IssueGuest renders and stores the credential before the guest row is
// committed, so a stored guest always has a scannable image. A render
// failure after the bounded retries aborts the issue.
func (c *guestCommandsImpl) IssueGuest(ctx context.Context, actorID uuid.UUID, input IssueGuestInput) (uuid.UUID, error) {
	var id uuid.UUID
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := c.requireEventMembership(ctx, tx, input.PoolID, actorID); err != nil {
			return err
		}

		token, qrURL, err := c.issueCredential(ctx)
		if err != nil {
			return err
		}

		g, err := guest.NewGuest(input.PoolID, input.Name, input.ContactInfo, token, qrURL)
		if err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}

		id, err = tx.Guests().CreateGuest(ctx, tx.DB(), g)
		return err
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (c *guestCommandsImpl) IssueGroup(ctx context.Context, actorID uuid.UUID, input IssueGroupInput) (uuid.UUID, error) {
	var id uuid.UUID
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := c.requireEventMembership(ctx, tx, input.PoolID, actorID); err != nil {
			return err
		}
		if err := c.requireLiveGuests(ctx, tx, input.PoolID, input.GuestIDs); err != nil {
			return err
		}

		token, qrURL, err := c.issueCredential(ctx)
		if err != nil {
			return err
		}

		g, err := guest.NewGroup(input.PoolID, input.Name, input.IsFamily, input.GuestIDs, token, qrURL)
		if err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}

		id, err = tx.Guests().CreateGroup(ctx, tx.DB(), g)
		return err
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (c *guestCommandsImpl) UpdateGroup(ctx context.Context, actorID, groupID uuid.UUID, input UpdateGroupInput) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		g, err := tx.Guests().FindGroupByID(ctx, tx.DB(), groupID)
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrGroupNotFound)
		}
		if err != nil {
			return err
		}

		if _, err := c.requireMembership(ctx, tx, g.PoolID(), actorID); err != nil {
			return err
		}

		if input.Name != nil {
			if err := g.Rename(*input.Name); err != nil {
				return errs.Mark(err, errs.ErrDomainValidation)
			}
		}
		if input.IsFamily != nil {
			g.SetFamily(*input.IsFamily)
		}
		if input.ReplaceGuestIDs != nil {
			if err := c.requireLiveGuests(ctx, tx, g.PoolID(), input.ReplaceGuestIDs); err != nil {
				return err
			}
			if err := g.ReplaceMembers(input.ReplaceGuestIDs); err != nil {
				return errs.Mark(err, errs.ErrDomainValidation)
			}
		}
		if len(input.AddGuestIDs) > 0 {
			if err := c.requireLiveGuests(ctx, tx, g.PoolID(), input.AddGuestIDs); err != nil {
				return err
			}
			g.AddMembers(input.AddGuestIDs)
		}

		return tx.Guests().UpdateGroup(ctx, tx.DB(), g)
	})
}

func (c *guestCommandsImpl) ConfirmPresence(ctx context.Context, token string, memberGuestID *uuid.UUID, confirmed bool) error {
	return c.setByToken(ctx, nil, token, memberGuestID, func(ctx context.Context, tx shared.Tx, guestID uuid.UUID) (bool, error) {
		return tx.Guests().SetPresenceConfirmed(ctx, tx.DB(), guestID, confirmed)
	})
}

func (c *guestCommandsImpl) CheckIn(ctx context.Context, actorID uuid.UUID, token string, memberGuestID *uuid.UUID, present bool) error {
	return c.setByToken(ctx, &actorID, token, memberGuestID, func(ctx context.Context, tx shared.Tx, guestID uuid.UUID) (bool, error) {
		return tx.Guests().SetPresentInEvent(ctx, tx.DB(), guestID, present)
	})
}

// setByToken resolves a token to its single holder and applies set to the
// targeted guests. actorID non-nil additionally requires pool membership.
func (c *guestCommandsImpl) setByToken(
	ctx context.Context,
	actorID *uuid.UUID,
	rawToken string,
	memberGuestID *uuid.UUID,
	set func(ctx context.Context, tx shared.Tx, guestID uuid.UUID) (bool, error),
) error {
	token, err := guest.ParseCheckinToken(rawToken)
	if err != nil {
		return errs.Mark(err, errs.ErrTokenNotFound)
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		poolID, targets, err := c.resolveTargets(ctx, tx, token, memberGuestID)
		if err != nil {
			return err
		}
		if actorID != nil {
			if _, err := c.requireMembership(ctx, tx, poolID, *actorID); err != nil {
				return err
			}
		}

		for _, guestID := range targets {
			ok, err := set(ctx, tx, guestID)
			if err != nil {
				return err
			}
			if !ok {
				return errs.ErrGuestNotFound
			}
		}
		return nil
	})
}

// resolveTargets maps a token to the guest ids it may act on: the bound
// guest, one named group member, or the whole group.
func (c *guestCommandsImpl) resolveTargets(ctx context.Context, tx shared.Tx, token guest.CheckinToken, memberGuestID *uuid.UUID) (uuid.UUID, []uuid.UUID, error) {
	g, err := tx.Guests().FindGuestByToken(ctx, tx.DB(), token.String())
	if err == nil {
		if memberGuestID != nil && *memberGuestID != g.ID() {
			return uuid.Nil, nil, errs.ErrGuestNotInGroup
		}
		return g.PoolID(), []uuid.UUID{g.ID()}, nil
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		return uuid.Nil, nil, err
	}

	grp, err := tx.Guests().FindGroupByToken(ctx, tx.DB(), token.String())
	if infra.IsKind(err, infra.KindNotFound) {
		return uuid.Nil, nil, errs.Mark(err, errs.ErrTokenNotFound)
	}
	if err != nil {
		return uuid.Nil, nil, err
	}

	if memberGuestID != nil {
		if !grp.HasMember(*memberGuestID) {
			return uuid.Nil, nil, errs.ErrGuestNotInGroup
		}
		return grp.PoolID(), []uuid.UUID{*memberGuestID}, nil
	}
	return grp.PoolID(), grp.GuestIDs(), nil
}

// RevokeGuest invalidates the guest's credential by soft-deleting the row;
// token lookups stop resolving but recorded check-in state stays.
func (c *guestCommandsImpl) RevokeGuest(ctx context.Context, actorID, guestID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		g, err := tx.Guests().FindGuestByID(ctx, tx.DB(), guestID)
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrGuestNotFound)
		}
		if err != nil {
			return err
		}
		if _, err := c.requireMembership(ctx, tx, g.PoolID(), actorID); err != nil {
			return err
		}

		ok, err := tx.Guests().SoftDeleteGuest(ctx, tx.DB(), guestID)
		if err != nil {
			return err
		}
		if !ok {
			return errs.ErrGuestNotFound
		}
		return nil
	})
}

func (c *guestCommandsImpl) RevokeGroup(ctx context.Context, actorID, groupID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		g, err := tx.Guests().FindGroupByID(ctx, tx.DB(), groupID)
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrGroupNotFound)
		}
		if err != nil {
			return err
		}
		if _, err := c.requireMembership(ctx, tx, g.PoolID(), actorID); err != nil {
			return err
		}

		ok, err := tx.Guests().SoftDeleteGroup(ctx, tx.DB(), groupID)
		if err != nil {
			return err
		}
		if !ok {
			return errs.ErrGroupNotFound
		}
		return nil
	})
}

func (c *guestCommandsImpl) issueCredential(ctx context.Context) (guest.CheckinToken, string, error) {
	token, err := guest.NewCheckinToken()
	if err != nil {
		return guest.CheckinToken{}, "", errs.Mark(err, errs.ErrTokenGeneration)
	}

	var qrURL string
	for attempt := 0; ; attempt++ {
		qrURL, err = c.renderer.Render(ctx, token)
		if err == nil {
			return token, qrURL, nil
		}
		if attempt == renderRetries {
			return guest.CheckinToken{}, "", errs.Mark(err, errs.ErrCredentialRender)
		}
	}
}

func (c *guestCommandsImpl) requireMembership(ctx context.Context, tx shared.Tx, poolID, actorID uuid.UUID) (*pool.Pool, error) {
	p, err := tx.Pools().FindByID(ctx, tx.DB(), poolID)
	if infra.IsKind(err, infra.KindNotFound) {
		return nil, errs.Mark(err, errs.ErrPoolNotFound)
	}
	if err != nil {
		return nil, err
	}
	if !p.IsMember(actorID) {
		return nil, errs.ErrNotMember
	}
	return p, nil
}

func (c *guestCommandsImpl) requireEventMembership(ctx context.Context, tx shared.Tx, poolID, actorID uuid.UUID) error {
	p, err := c.requireMembership(ctx, tx, poolID, actorID)
	if err != nil {
		return err
	}
	if !p.Kind().IsEvent() {
		return errs.Mark(errs.New("guests belong to event pools"), errs.ErrDomainValidation)
	}
	return nil
}

// requireLiveGuests checks every id resolves to a live guest of the pool.
func (c *guestCommandsImpl) requireLiveGuests(ctx context.Context, tx shared.Tx, poolID uuid.UUID, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	live, err := tx.Guests().FindLiveGuests(ctx, tx.DB(), poolID, ids)
	if err != nil {
		return err
	}
	if len(live) != len(ids) {
		return errs.ErrGuestNotFound
	}
	return nil
}
