package readstore

import (
	"context"

	"rifas-api/internal/infra"
	"rifas-api/internal/infra/db"
	"rifas-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type InviteReadStore struct {
	db db.DBTX
}

func NewInviteReadStore(dbtx db.DBTX) *InviteReadStore {
	return &InviteReadStore{db: dbtx}
}

func (r *InviteReadStore) FindPendingByPool(ctx context.Context, poolID uuid.UUID) ([]*queries.InviteView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT i.id, i.pool_id, i.requestee_id, u.name, u.email, i.status, i.created_at
		FROM invites i
		JOIN users u ON u.id = i.requestee_id
		WHERE i.pool_id = $1 AND i.status = 'pending'
		ORDER BY i.created_at`, poolID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pending invites", err)
	}
	defer rows.Close()

	var views []*queries.InviteView
	for rows.Next() {
		var view queries.InviteView
		err := rows.Scan(&view.ID, &view.PoolID, &view.RequesteeID,
			&view.RequesteeName, &view.RequesteeEmail, &view.Status, &view.CreatedAt)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan invite", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read pending invites", err)
	}
	return views, nil
}
