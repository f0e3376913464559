package repository

import (
	"context"
	"time"

	"rifas-api/internal/domain/pool"
	"rifas-api/internal/infra"
	"rifas-api/internal/infra/db"
	"rifas-api/internal/pkg/pgconv"

	"github.com/google/uuid"
)

const poolColumns = `id, owner_id, kind, name, short_name, visibility, quantity,
	ticket_value_cents, budget_value_cents, start_at, end_at, invite_code,
	shared_user_ids, is_deleted, deleted_at, created_at, updated_at`

type PoolRepository struct{}

func NewPoolRepository() *PoolRepository {
	return &PoolRepository{}
}

func (r *PoolRepository) Create(ctx context.Context, dbtx db.DBTX, p *pool.Pool) (uuid.UUID, error) {
	var quantity *int
	if p.Quantity() != nil {
		v := p.Quantity().Value()
		quantity = &v
	}

	_, err := dbtx.Exec(ctx, `
		INSERT INTO pools (id, owner_id, kind, name, short_name, visibility,
			quantity, ticket_value_cents, budget_value_cents, start_at, end_at,
			invite_code, shared_user_ids)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		p.ID(), p.OwnerID(), p.Kind().String(), p.Name(), p.ShortName().String(),
		p.Visibility().String(), quantity, p.TicketValueCents(), p.BudgetValueCents(),
		p.StartAt(), p.EndAt(), p.InviteCode(), pgconv.UUIDsToStrings(p.SharedUserIDs()),
	)
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("pool short name already taken", err, infra.KindDuplicateKey)
		}
		if pgconv.IsForeignKeyViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("pool owner does not exist", err, infra.KindForeignKeyViolated)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create pool", err)
	}
	return p.ID(), nil
}

func (r *PoolRepository) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*pool.Pool, error) {
	return r.findOne(ctx, dbtx,
		`SELECT `+poolColumns+` FROM pools WHERE id = $1 AND NOT is_deleted`, id)
}

func (r *PoolRepository) FindByIDForUpdate(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*pool.Pool, error) {
	return r.findOne(ctx, dbtx,
		`SELECT `+poolColumns+` FROM pools WHERE id = $1 AND NOT is_deleted FOR UPDATE`, id)
}

func (r *PoolRepository) FindByInviteCode(ctx context.Context, dbtx db.DBTX, code string) (*pool.Pool, error) {
	return r.findOne(ctx, dbtx,
		`SELECT `+poolColumns+` FROM pools WHERE invite_code = $1 AND NOT is_deleted`, code)
}

func (r *PoolRepository) findOne(ctx context.Context, dbtx db.DBTX, query string, arg any) (*pool.Pool, error) {
	row := dbtx.QueryRow(ctx, query, arg)

	p, err := scanPool(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("pool not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find pool", err)
	}
	return p, nil
}

func (r *PoolRepository) ShortNameTaken(ctx context.Context, dbtx db.DBTX, shortName string, excludeID *uuid.UUID) (bool, error) {
	var taken bool
	err := dbtx.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM pools
			WHERE short_name = $1 AND NOT is_deleted AND ($2::uuid IS NULL OR id <> $2)
		)`, shortName, excludeID).Scan(&taken)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check short name", err)
	}
	return taken, nil
}

func (r *PoolRepository) Update(ctx context.Context, dbtx db.DBTX, p *pool.Pool) error {
	var quantity *int
	if p.Quantity() != nil {
		v := p.Quantity().Value()
		quantity = &v
	}

	tag, err := dbtx.Exec(ctx, `
		UPDATE pools
		SET name = $2, short_name = $3, visibility = $4, quantity = $5,
			ticket_value_cents = $6, budget_value_cents = $7, start_at = $8,
			end_at = $9, invite_code = $10, updated_at = now()
		WHERE id = $1 AND NOT is_deleted`,
		p.ID(), p.Name(), p.ShortName().String(), p.Visibility().String(), quantity,
		p.TicketValueCents(), p.BudgetValueCents(), p.StartAt(), p.EndAt(), p.InviteCode(),
	)
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return infra.WrapRepoErr("pool short name already taken", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to update pool", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("pool not found", nil, infra.KindNotFound)
	}
	return nil
}

// SaveSharedUsers persists the entity's membership set. The entity owns the
// set-union semantics; callers must hold the pool row lock.
func (r *PoolRepository) SaveSharedUsers(ctx context.Context, dbtx db.DBTX, p *pool.Pool) error {
	tag, err := dbtx.Exec(ctx, `
		UPDATE pools
		SET shared_user_ids = $2, updated_at = now()
		WHERE id = $1 AND NOT is_deleted`,
		p.ID(), pgconv.UUIDsToStrings(p.SharedUserIDs()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to save shared users", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("pool not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *PoolRepository) SoftDelete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	tag, err := dbtx.Exec(ctx, `
		UPDATE pools
		SET is_deleted = true, deleted_at = now(), updated_at = now()
		WHERE id = $1 AND NOT is_deleted`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete pool", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("pool not found", nil, infra.KindNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPool(row rowScanner) (*pool.Pool, error) {
	var (
		id, ownerID                        uuid.UUID
		kindValue, name, shortNameValue    string
		visibilityValue, inviteCode        string
		quantity                           *int
		ticketValueCents, budgetValueCents *int64
		startAt, endAt, deletedAt          *time.Time
		sharedUserValues                   []string
		isDeleted                          bool
		createdAt, updatedAt               time.Time
	)

	err := row.Scan(&id, &ownerID, &kindValue, &name, &shortNameValue,
		&visibilityValue, &quantity, &ticketValueCents, &budgetValueCents,
		&startAt, &endAt, &inviteCode, &sharedUserValues, &isDeleted,
		&deletedAt, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	kind, err := pool.NewKind(kindValue)
	if err != nil {
		return nil, err
	}
	shortName, err := pool.NewShortName(shortNameValue)
	if err != nil {
		return nil, err
	}
	visibility, err := pool.NewVisibility(visibilityValue)
	if err != nil {
		return nil, err
	}

	var q *pool.Quantity
	if quantity != nil {
		qv, err := pool.NewQuantity(*quantity)
		if err != nil {
			return nil, err
		}
		q = &qv
	}

	sharedUserIDs, err := pgconv.UUIDsFromStrings(sharedUserValues)
	if err != nil {
		return nil, err
	}

	return pool.Reconstruct(id, ownerID, kind, name, shortName, visibility, q,
		ticketValueCents, budgetValueCents, startAt, endAt, inviteCode,
		sharedUserIDs, isDeleted, deletedAt, createdAt, updatedAt), nil
}
