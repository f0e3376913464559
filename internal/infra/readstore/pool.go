package readstore

import (
	"context"

	"rifas-api/internal/infra"
	"rifas-api/internal/infra/db"
	"rifas-api/internal/pkg/pgconv"
	"rifas-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type PoolReadStore struct {
	db db.DBTX
}

func NewPoolReadStore(dbtx db.DBTX) *PoolReadStore {
	return &PoolReadStore{db: dbtx}
}

const poolViewColumns = `id, owner_id, kind, name, short_name, visibility,
	quantity, ticket_value_cents, budget_value_cents, start_at, end_at,
	invite_code, shared_user_ids, created_at, updated_at`

func (r *PoolReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.PoolView, error) {
	return r.findOne(ctx,
		`SELECT `+poolViewColumns+` FROM pools WHERE id = $1 AND NOT is_deleted`, id)
}

func (r *PoolReadStore) FindByShortName(ctx context.Context, shortName string) (*queries.PoolView, error) {
	return r.findOne(ctx,
		`SELECT `+poolViewColumns+` FROM pools WHERE short_name = $1 AND NOT is_deleted`, shortName)
}

func (r *PoolReadStore) findOne(ctx context.Context, query string, arg any) (*queries.PoolView, error) {
	row := r.db.QueryRow(ctx, query, arg)

	var (
		view             queries.PoolView
		sharedUserValues []string
	)
	err := row.Scan(&view.ID, &view.OwnerID, &view.Kind, &view.Name,
		&view.ShortName, &view.Visibility, &view.Quantity,
		&view.TicketValueCents, &view.BudgetValueCents, &view.StartAt,
		&view.EndAt, &view.InviteCode, &sharedUserValues,
		&view.CreatedAt, &view.UpdatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("pool not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find pool", err)
	}

	view.SharedUserIDs, err = pgconv.UUIDsFromStrings(sharedUserValues)
	if err != nil {
		return nil, infra.WrapRepoErr("stored shared user ids are invalid", err)
	}
	return &view, nil
}

func (r *PoolReadStore) FindByMember(ctx context.Context, userID uuid.UUID) ([]*queries.PoolListItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, kind, name, short_name, created_at
		FROM pools
		WHERE (owner_id = $1 OR $1 = ANY(shared_user_ids)) AND NOT is_deleted
		ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pools", err)
	}
	defer rows.Close()

	var items []*queries.PoolListItem
	for rows.Next() {
		var item queries.PoolListItem
		if err := rows.Scan(&item.ID, &item.Kind, &item.Name, &item.ShortName, &item.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan pool list item", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read pool list", err)
	}
	return items, nil
}

func (r *PoolReadStore) CountReservedSlots(ctx context.Context, poolID uuid.UUID) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `
		SELECT count(DISTINCT slot)
		FROM reservations, unnest(slot_numbers) AS slot
		WHERE pool_id = $1 AND NOT is_deleted`, poolID).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count reserved slots", err)
	}
	return count, nil
}
