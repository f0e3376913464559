package queries

import (
	"context"

	"rifas-api/internal/infra"
	"rifas-api/internal/pkg/errs"

	"github.com/google/uuid"
)

type GuestReadStore interface {
	FindGuestByID(ctx context.Context, id uuid.UUID) (*GuestView, error)
	FindGuestsByPool(ctx context.Context, poolID uuid.UUID) ([]*GuestView, error)
	FindGroupByID(ctx context.Context, id uuid.UUID) (*GroupView, error)
	FindGroupsByPool(ctx context.Context, poolID uuid.UUID) ([]*GroupView, error)
	FindHolderByToken(ctx context.Context, token string) (*TokenHolderView, error)
}

type GuestQueries interface {
	GetGuest(ctx context.Context, id uuid.UUID) (*GuestView, error)
	ListGuests(ctx context.Context, poolID uuid.UUID) ([]*GuestView, error)
	GetGroup(ctx context.Context, id uuid.UUID) (*GroupView, error)
	ListGroups(ctx context.Context, poolID uuid.UUID) ([]*GroupView, error)
	// ResolveToken looks a credential up without authentication. The token
	// itself is the capability; revoked holders resolve to not-found.
	ResolveToken(ctx context.Context, token string) (*TokenHolderView, error)
}

type guestQueriesImpl struct {
	store GuestReadStore
}

func NewGuestQueries(store GuestReadStore) GuestQueries {
	return &guestQueriesImpl{store: store}
}

func (q *guestQueriesImpl) GetGuest(ctx context.Context, id uuid.UUID) (*GuestView, error) {
	view, err := q.store.FindGuestByID(ctx, id)
	if infra.IsKind(err, infra.KindNotFound) {
		return nil, errs.Mark(err, errs.ErrGuestNotFound)
	}
	return view, err
}

func (q *guestQueriesImpl) ListGuests(ctx context.Context, poolID uuid.UUID) ([]*GuestView, error) {
	return q.store.FindGuestsByPool(ctx, poolID)
}

func (q *guestQueriesImpl) GetGroup(ctx context.Context, id uuid.UUID) (*GroupView, error) {
	view, err := q.store.FindGroupByID(ctx, id)
	if infra.IsKind(err, infra.KindNotFound) {
		return nil, errs.Mark(err, errs.ErrGroupNotFound)
	}
	return view, err
}

func (q *guestQueriesImpl) ListGroups(ctx context.Context, poolID uuid.UUID) ([]*GroupView, error) {
	return q.store.FindGroupsByPool(ctx, poolID)
}

func (q *guestQueriesImpl) ResolveToken(ctx context.Context, token string) (*TokenHolderView, error) {
	view, err := q.store.FindHolderByToken(ctx, token)
	if infra.IsKind(err, infra.KindNotFound) {
		return nil, errs.Mark(err, errs.ErrTokenNotFound)
	}
	return view, err
}
