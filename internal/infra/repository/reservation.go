package repository

import (
	"context"
	"time"

	"rifas-api/internal/domain/reservation"
	"rifas-api/internal/infra"
	"rifas-api/internal/infra/db"
	"rifas-api/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ReservationRepository struct{}

func NewReservationRepository() *ReservationRepository {
	return &ReservationRepository{}
}

func (r *ReservationRepository) Create(ctx context.Context, dbtx db.DBTX, res *reservation.Reservation) (uuid.UUID, error) {
	_, err := dbtx.Exec(ctx, `
		INSERT INTO reservations (id, pool_id, slot_numbers, claimant_name, claimant_contact)
		VALUES ($1, $2, $3, $4, $5)`,
		res.ID(), res.PoolID(), pgconv.Int32sFromInts(res.Slots().Numbers()),
		res.ClaimantName().String(), res.ClaimantContact(),
	)
	if err != nil {
		if pgconv.IsForeignKeyViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("reservation pool does not exist", err, infra.KindForeignKeyViolated)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create reservation", err)
	}
	return res.ID(), nil
}

// FindByID returns soft-deleted rows too; release needs to tell "already
// released" apart from "never existed".
func (r *ReservationRepository) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*reservation.Reservation, error) {
	row := dbtx.QueryRow(ctx, `
		SELECT id, pool_id, slot_numbers, claimant_name, claimant_contact,
			is_deleted, deleted_at, created_at
		FROM reservations WHERE id = $1`, id)

	var (
		resID, poolID   uuid.UUID
		slotNumbers     []int32
		claimantValue   string
		claimantContact *string
		isDeleted       bool
		deletedAt       *time.Time
		createdAt       time.Time
	)
	err := row.Scan(&resID, &poolID, &slotNumbers, &claimantValue,
		&claimantContact, &isDeleted, &deletedAt, &createdAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}

	slots, err := reservation.NewSlotSet(pgconv.IntsFromInt32s(slotNumbers), 0)
	if err != nil {
		return nil, infra.WrapRepoErr("stored slot set is invalid", err)
	}
	claimant, err := reservation.NewClaimantName(claimantValue)
	if err != nil {
		return nil, infra.WrapRepoErr("stored claimant is invalid", err)
	}

	return reservation.Reconstruct(resID, poolID, slots, claimant,
		claimantContact, isDeleted, deletedAt, createdAt), nil
}

// ConflictingSlots unnests the live reservations of the pool and intersects
// with the requested numbers. Runs under the pool row lock, so the answer
// cannot be invalidated before the caller's insert commits.
func (r *ReservationRepository) ConflictingSlots(ctx context.Context, dbtx db.DBTX, poolID uuid.UUID, numbers []int) ([]int, error) {
	rows, err := dbtx.Query(ctx, `
		SELECT DISTINCT slot
		FROM reservations, unnest(slot_numbers) AS slot
		WHERE pool_id = $1 AND NOT is_deleted AND slot = ANY($2::int[])
		ORDER BY slot`,
		poolID, pgconv.Int32sFromInts(numbers))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to check slot conflicts", err)
	}
	defer rows.Close()

	var conflicting []int
	for rows.Next() {
		var slot int32
		if err := rows.Scan(&slot); err != nil {
			return nil, infra.WrapRepoErr("failed to scan conflicting slot", err)
		}
		conflicting = append(conflicting, int(slot))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read conflicting slots", err)
	}
	return conflicting, nil
}

func (r *ReservationRepository) MaxReservedSlot(ctx context.Context, dbtx db.DBTX, poolID uuid.UUID) (int, error) {
	var max *int32
	err := dbtx.QueryRow(ctx, `
		SELECT max(slot)
		FROM reservations, unnest(slot_numbers) AS slot
		WHERE pool_id = $1 AND NOT is_deleted`, poolID).Scan(&max)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to find max reserved slot", err)
	}
	if max == nil {
		return 0, nil
	}
	return int(*max), nil
}

func (r *ReservationRepository) SoftDelete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (bool, error) {
	tag, err := dbtx.Exec(ctx, `
		UPDATE reservations
		SET is_deleted = true, deleted_at = now()
		WHERE id = $1 AND NOT is_deleted`, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to release reservation", err)
	}
	return tag.RowsAffected() > 0, nil
}
