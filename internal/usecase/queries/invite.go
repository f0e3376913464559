package queries

import (
	"context"

	"github.com/google/uuid"
)

type InviteReadStore interface {
	// FindPendingByPool joins each pending invite with the requestee's
	// public profile.
	FindPendingByPool(ctx context.Context, poolID uuid.UUID) ([]*InviteView, error)
}

type InviteQueries interface {
	ListPending(ctx context.Context, poolID uuid.UUID) ([]*InviteView, error)
}

type inviteQueriesImpl struct {
	store InviteReadStore
}

func NewInviteQueries(store InviteReadStore) InviteQueries {
	return &inviteQueriesImpl{store: store}
}

func (q *inviteQueriesImpl) ListPending(ctx context.Context, poolID uuid.UUID) ([]*InviteView, error) {
	return q.store.FindPendingByPool(ctx, poolID)
}
