package queries

import (
	"context"

	"rifas-api/internal/infra"
	"rifas-api/internal/pkg/errs"

	"github.com/google/uuid"
)

type PoolReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PoolView, error)
	FindByShortName(ctx context.Context, shortName string) (*PoolView, error)
	FindByMember(ctx context.Context, userID uuid.UUID) ([]*PoolListItem, error)
	// CountReservedSlots counts distinct slot numbers covered by live
	// reservations of the pool.
	CountReservedSlots(ctx context.Context, poolID uuid.UUID) (int, error)
}

type PoolQueries interface {
	GetByShortName(ctx context.Context, actor uuid.UUID, shortName string) (*PoolView, error)
	GetByID(ctx context.Context, actor uuid.UUID, id uuid.UUID) (*PoolView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*PoolListItem, error)
	Progress(ctx context.Context, actor uuid.UUID, poolID uuid.UUID) (*PoolProgressView, error)
}

type poolQueriesImpl struct {
	store PoolReadStore
}

func NewPoolQueries(store PoolReadStore) PoolQueries {
	return &poolQueriesImpl{store: store}
}

// Membership gates every owner-facing pool read: a non-member sees
// not-found, the same as the original's membership-filtered queries.
func (q *poolQueriesImpl) GetByShortName(ctx context.Context, actor uuid.UUID, shortName string) (*PoolView, error) {
	view, err := q.store.FindByShortName(ctx, shortName)
	if infra.IsKind(err, infra.KindNotFound) {
		return nil, errs.Mark(err, errs.ErrPoolNotFound)
	}
	if err != nil {
		return nil, err
	}
	if !isMember(view, actor) {
		return nil, errs.ErrPoolNotFound
	}
	return view, nil
}

func (q *poolQueriesImpl) GetByID(ctx context.Context, actor uuid.UUID, id uuid.UUID) (*PoolView, error) {
	view, err := q.store.FindByID(ctx, id)
	if infra.IsKind(err, infra.KindNotFound) {
		return nil, errs.Mark(err, errs.ErrPoolNotFound)
	}
	if err != nil {
		return nil, err
	}
	if !isMember(view, actor) {
		return nil, errs.ErrPoolNotFound
	}
	return view, nil
}

func (q *poolQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*PoolListItem, error) {
	return q.store.FindByMember(ctx, userID)
}

func (q *poolQueriesImpl) Progress(ctx context.Context, actor uuid.UUID, poolID uuid.UUID) (*PoolProgressView, error) {
	view, err := q.GetByID(ctx, actor, poolID)
	if err != nil {
		return nil, err
	}
	if view.Quantity == nil {
		return nil, errs.ErrPoolNotFound
	}

	sold, err := q.store.CountReservedSlots(ctx, poolID)
	if err != nil {
		return nil, err
	}
	return &PoolProgressView{Quantity: *view.Quantity, SoldCount: sold}, nil
}

func isMember(view *PoolView, userID uuid.UUID) bool {
	if view.OwnerID == userID {
		return true
	}
	for _, id := range view.SharedUserIDs {
		if id == userID {
			return true
		}
	}
	return false
}
