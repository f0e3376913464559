package readstore

import (
	"context"

	"rifas-api/internal/infra"
	"rifas-api/internal/infra/db"
	"rifas-api/internal/pkg/pgconv"
	"rifas-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(dbtx db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: dbtx}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, pool_id, slot_numbers, claimant_name, claimant_contact, created_at
		FROM reservations WHERE id = $1 AND NOT is_deleted`, id)

	view, err := scanReservationView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}
	return view, nil
}

func (r *ReservationReadStore) FindByPool(ctx context.Context, poolID uuid.UUID) ([]*queries.ReservationView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, pool_id, slot_numbers, claimant_name, claimant_contact, created_at
		FROM reservations
		WHERE pool_id = $1 AND NOT is_deleted
		ORDER BY created_at`, poolID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	defer rows.Close()

	var views []*queries.ReservationView
	for rows.Next() {
		view, err := scanReservationView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read reservations", err)
	}
	return views, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReservationView(row rowScanner) (*queries.ReservationView, error) {
	var (
		view        queries.ReservationView
		slotNumbers []int32
	)
	err := row.Scan(&view.ID, &view.PoolID, &slotNumbers, &view.ClaimantName,
		&view.ClaimantContact, &view.CreatedAt)
	if err != nil {
		return nil, err
	}
	view.SlotNumbers = pgconv.IntsFromInt32s(slotNumbers)
	return &view, nil
}
