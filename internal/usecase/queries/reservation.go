package queries

import (
	"context"

	"rifas-api/internal/infra"
	"rifas-api/internal/pkg/errs"

	"github.com/google/uuid"
)

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindByPool(ctx context.Context, poolID uuid.UUID) ([]*ReservationView, error)
}

type ReservationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	// ListByPool returns all live reservations, used to render per-number
	// ownership and the sold/total progress of a raffle. Staleness here is
	// cosmetic; the disjointness invariant is enforced on the write path.
	ListByPool(ctx context.Context, poolID uuid.UUID) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	store ReservationReadStore
}

func NewReservationQueries(store ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{store: store}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	view, err := q.store.FindByID(ctx, id)
	if infra.IsKind(err, infra.KindNotFound) {
		return nil, errs.Mark(err, errs.ErrReservationNotFound)
	}
	return view, err
}

func (q *reservationQueriesImpl) ListByPool(ctx context.Context, poolID uuid.UUID) ([]*ReservationView, error) {
	return q.store.FindByPool(ctx, poolID)
}
