package repository

import (
	"context"
	"time"

	"rifas-api/internal/domain/invite"
	"rifas-api/internal/infra"
	"rifas-api/internal/infra/db"
	"rifas-api/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type InviteRepository struct{}

func NewInviteRepository() *InviteRepository {
	return &InviteRepository{}
}

func (r *InviteRepository) Create(ctx context.Context, dbtx db.DBTX, inv *invite.Invite) (uuid.UUID, error) {
	_, err := dbtx.Exec(ctx, `
		INSERT INTO invites (id, pool_id, requestee_id, status)
		VALUES ($1, $2, $3, $4)`,
		inv.ID(), inv.PoolID(), inv.RequesteeID(), inv.Status().String(),
	)
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("pending invite already exists", err, infra.KindDuplicateKey)
		}
		if pgconv.IsForeignKeyViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("invite references missing pool or user", err, infra.KindForeignKeyViolated)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create invite", err)
	}
	return inv.ID(), nil
}

func (r *InviteRepository) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*invite.Invite, error) {
	row := dbtx.QueryRow(ctx, `
		SELECT id, pool_id, requestee_id, status, created_at, accepted_at, canceled_at
		FROM invites WHERE id = $1`, id)

	var (
		invID, poolID, requesteeID uuid.UUID
		statusValue                string
		createdAt                  time.Time
		acceptedAt, canceledAt     *time.Time
	)
	err := row.Scan(&invID, &poolID, &requesteeID, &statusValue, &createdAt, &acceptedAt, &canceledAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("invite not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find invite", err)
	}

	status, err := invite.NewStatus(statusValue)
	if err != nil {
		return nil, infra.WrapRepoErr("stored invite status is invalid", err)
	}

	return invite.Reconstruct(invID, poolID, requesteeID, status, createdAt, acceptedAt, canceledAt), nil
}

func (r *InviteRepository) HasPending(ctx context.Context, dbtx db.DBTX, poolID, requesteeID uuid.UUID) (bool, error) {
	var pending bool
	err := dbtx.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM invites
			WHERE pool_id = $1 AND requestee_id = $2 AND status = 'pending'
		)`, poolID, requesteeID).Scan(&pending)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check pending invite", err)
	}
	return pending, nil
}

// TransitionFromPending is the whole state machine in one conditional write:
// the WHERE clause only matches a still-pending row, so of two racing
// terminal transitions exactly one reports true.
func (r *InviteRepository) TransitionFromPending(ctx context.Context, dbtx db.DBTX, id uuid.UUID, to invite.Status, at time.Time) (bool, error) {
	if !to.IsTerminal() {
		return false, infra.WrapRepoErr("invite cannot transition back to pending", nil, infra.KindConflict)
	}

	tag, err := dbtx.Exec(ctx, `
		UPDATE invites
		SET status = $2,
			accepted_at = CASE WHEN $2 = 'accepted' THEN $3 ELSE accepted_at END,
			canceled_at = CASE WHEN $2 = 'canceled' THEN $3 ELSE canceled_at END
		WHERE id = $1 AND status = 'pending'`,
		id, to.String(), at,
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to transition invite", err)
	}
	return tag.RowsAffected() > 0, nil
}
