package repository

import (
	"context"
	"time"

	"rifas-api/internal/domain/guest"
	"rifas-api/internal/infra"
	"rifas-api/internal/infra/db"
	"rifas-api/internal/pkg/pgconv"

	"github.com/google/uuid"
)

const guestColumns = `id, pool_id, name, contact_info, checkin_token, qr_image_url,
	is_presence_confirmed, is_present_in_event, is_deleted, deleted_at,
	created_at, updated_at`

const groupColumns = `id, pool_id, name, is_family, guest_ids, checkin_token,
	qr_image_url, is_deleted, deleted_at, created_at, updated_at`

type GuestRepository struct{}

func NewGuestRepository() *GuestRepository {
	return &GuestRepository{}
}

func (r *GuestRepository) CreateGuest(ctx context.Context, dbtx db.DBTX, g *guest.Guest) (uuid.UUID, error) {
	_, err := dbtx.Exec(ctx, `
		INSERT INTO guests (id, pool_id, name, contact_info, checkin_token, qr_image_url)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		g.ID(), g.PoolID(), g.Name(), g.ContactInfo(), g.Token().String(), g.QRImageURL(),
	)
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("checkin token already exists", err, infra.KindDuplicateKey)
		}
		if pgconv.IsForeignKeyViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("guest pool does not exist", err, infra.KindForeignKeyViolated)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create guest", err)
	}
	return g.ID(), nil
}

func (r *GuestRepository) FindGuestByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*guest.Guest, error) {
	return r.findGuest(ctx, dbtx,
		`SELECT `+guestColumns+` FROM guests WHERE id = $1 AND NOT is_deleted`, id)
}

func (r *GuestRepository) FindGuestByToken(ctx context.Context, dbtx db.DBTX, token string) (*guest.Guest, error) {
	// Revoked guests no longer resolve; their token dies with them.
	return r.findGuest(ctx, dbtx,
		`SELECT `+guestColumns+` FROM guests WHERE checkin_token = $1 AND NOT is_deleted`, token)
}

func (r *GuestRepository) findGuest(ctx context.Context, dbtx db.DBTX, query string, arg any) (*guest.Guest, error) {
	row := dbtx.QueryRow(ctx, query, arg)

	g, err := scanGuest(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("guest not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find guest", err)
	}
	return g, nil
}

func (r *GuestRepository) FindLiveGuests(ctx context.Context, dbtx db.DBTX, poolID uuid.UUID, ids []uuid.UUID) ([]*guest.Guest, error) {
	rows, err := dbtx.Query(ctx,
		`SELECT `+guestColumns+` FROM guests
		WHERE pool_id = $1 AND id = ANY($2::uuid[]) AND NOT is_deleted`,
		poolID, pgconv.UUIDsToStrings(ids))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find guests", err)
	}
	defer rows.Close()

	var guests []*guest.Guest
	for rows.Next() {
		g, err := scanGuest(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan guest", err)
		}
		guests = append(guests, g)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read guests", err)
	}
	return guests, nil
}

func (r *GuestRepository) CreateGroup(ctx context.Context, dbtx db.DBTX, g *guest.Group) (uuid.UUID, error) {
	_, err := dbtx.Exec(ctx, `
		INSERT INTO guest_groups (id, pool_id, name, is_family, guest_ids, checkin_token, qr_image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		g.ID(), g.PoolID(), g.Name(), g.IsFamily(),
		pgconv.UUIDsToStrings(g.GuestIDs()), g.Token().String(), g.QRImageURL(),
	)
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("checkin token already exists", err, infra.KindDuplicateKey)
		}
		if pgconv.IsForeignKeyViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("group pool does not exist", err, infra.KindForeignKeyViolated)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create guest group", err)
	}
	return g.ID(), nil
}

func (r *GuestRepository) FindGroupByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*guest.Group, error) {
	return r.findGroup(ctx, dbtx,
		`SELECT `+groupColumns+` FROM guest_groups WHERE id = $1 AND NOT is_deleted`, id)
}

func (r *GuestRepository) FindGroupByToken(ctx context.Context, dbtx db.DBTX, token string) (*guest.Group, error) {
	return r.findGroup(ctx, dbtx,
		`SELECT `+groupColumns+` FROM guest_groups WHERE checkin_token = $1 AND NOT is_deleted`, token)
}

func (r *GuestRepository) findGroup(ctx context.Context, dbtx db.DBTX, query string, arg any) (*guest.Group, error) {
	row := dbtx.QueryRow(ctx, query, arg)

	g, err := scanGroup(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("guest group not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find guest group", err)
	}
	return g, nil
}

func (r *GuestRepository) UpdateGroup(ctx context.Context, dbtx db.DBTX, g *guest.Group) error {
	tag, err := dbtx.Exec(ctx, `
		UPDATE guest_groups
		SET name = $2, is_family = $3, guest_ids = $4, updated_at = now()
		WHERE id = $1 AND NOT is_deleted`,
		g.ID(), g.Name(), g.IsFamily(), pgconv.UUIDsToStrings(g.GuestIDs()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update guest group", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("guest group not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *GuestRepository) SetPresenceConfirmed(ctx context.Context, dbtx db.DBTX, guestID uuid.UUID, confirmed bool) (bool, error) {
	return r.setGuestFlag(ctx, dbtx, `
		UPDATE guests SET is_presence_confirmed = $2, updated_at = now()
		WHERE id = $1 AND NOT is_deleted`, guestID, confirmed)
}

func (r *GuestRepository) SetPresentInEvent(ctx context.Context, dbtx db.DBTX, guestID uuid.UUID, present bool) (bool, error) {
	return r.setGuestFlag(ctx, dbtx, `
		UPDATE guests SET is_present_in_event = $2, updated_at = now()
		WHERE id = $1 AND NOT is_deleted`, guestID, present)
}

func (r *GuestRepository) setGuestFlag(ctx context.Context, dbtx db.DBTX, query string, guestID uuid.UUID, value bool) (bool, error) {
	tag, err := dbtx.Exec(ctx, query, guestID, value)
	if err != nil {
		return false, infra.WrapRepoErr("failed to update guest flag", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *GuestRepository) SoftDeleteGuest(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (bool, error) {
	tag, err := dbtx.Exec(ctx, `
		UPDATE guests
		SET is_deleted = true, deleted_at = now(), updated_at = now()
		WHERE id = $1 AND NOT is_deleted`, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to delete guest", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *GuestRepository) SoftDeleteGroup(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (bool, error) {
	tag, err := dbtx.Exec(ctx, `
		UPDATE guest_groups
		SET is_deleted = true, deleted_at = now(), updated_at = now()
		WHERE id = $1 AND NOT is_deleted`, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to delete guest group", err)
	}
	return tag.RowsAffected() > 0, nil
}

func scanGuest(row rowScanner) (*guest.Guest, error) {
	var (
		id, poolID                            uuid.UUID
		name, tokenValue, qrImageURL          string
		contactInfo                           *string
		isPresenceConfirmed, isPresentInEvent bool
		isDeleted                             bool
		deletedAt                             *time.Time
		createdAt, updatedAt                  time.Time
	)

	err := row.Scan(&id, &poolID, &name, &contactInfo, &tokenValue, &qrImageURL,
		&isPresenceConfirmed, &isPresentInEvent, &isDeleted, &deletedAt,
		&createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	token, err := guest.ParseCheckinToken(tokenValue)
	if err != nil {
		return nil, err
	}

	return guest.ReconstructGuest(id, poolID, name, contactInfo, token, qrImageURL,
		isPresenceConfirmed, isPresentInEvent, isDeleted, deletedAt, createdAt, updatedAt), nil
}

func scanGroup(row rowScanner) (*guest.Group, error) {
	var (
		id, poolID                   uuid.UUID
		name, tokenValue, qrImageURL string
		isFamily, isDeleted          bool
		guestValues                  []string
		deletedAt                    *time.Time
		createdAt, updatedAt         time.Time
	)

	err := row.Scan(&id, &poolID, &name, &isFamily, &guestValues, &tokenValue,
		&qrImageURL, &isDeleted, &deletedAt, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	token, err := guest.ParseCheckinToken(tokenValue)
	if err != nil {
		return nil, err
	}
	guestIDs, err := pgconv.UUIDsFromStrings(guestValues)
	if err != nil {
		return nil, err
	}

	return guest.ReconstructGroup(id, poolID, name, isFamily, guestIDs, token,
		qrImageURL, isDeleted, deletedAt, createdAt, updatedAt), nil
}
