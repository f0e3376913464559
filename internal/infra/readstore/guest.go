package readstore

import (
	"context"

	"rifas-api/internal/infra"
	"rifas-api/internal/infra/db"
	"rifas-api/internal/pkg/pgconv"
	"rifas-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type GuestReadStore struct {
	db db.DBTX
}

func NewGuestReadStore(dbtx db.DBTX) *GuestReadStore {
	return &GuestReadStore{db: dbtx}
}

const guestViewColumns = `id, pool_id, name, contact_info, qr_image_url,
	is_presence_confirmed, is_present_in_event, created_at`

func (r *GuestReadStore) FindGuestByID(ctx context.Context, id uuid.UUID) (*queries.GuestView, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+guestViewColumns+` FROM guests WHERE id = $1 AND NOT is_deleted`, id)

	view, err := scanGuestView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("guest not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find guest", err)
	}
	return view, nil
}

func (r *GuestReadStore) FindGuestsByPool(ctx context.Context, poolID uuid.UUID) ([]*queries.GuestView, error) {
	return r.listGuests(ctx,
		`SELECT `+guestViewColumns+` FROM guests
		WHERE pool_id = $1 AND NOT is_deleted ORDER BY created_at`, poolID)
}

func (r *GuestReadStore) listGuests(ctx context.Context, query string, arg any) ([]*queries.GuestView, error) {
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list guests", err)
	}
	defer rows.Close()

	var views []*queries.GuestView
	for rows.Next() {
		view, err := scanGuestView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan guest", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read guests", err)
	}
	return views, nil
}

func (r *GuestReadStore) FindGroupByID(ctx context.Context, id uuid.UUID) (*queries.GroupView, error) {
	return r.findGroup(ctx,
		`SELECT id, pool_id, name, is_family, guest_ids, qr_image_url, created_at
		FROM guest_groups WHERE id = $1 AND NOT is_deleted`, id)
}

func (r *GuestReadStore) FindGroupsByPool(ctx context.Context, poolID uuid.UUID) ([]*queries.GroupView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, pool_id, name, is_family, guest_ids, qr_image_url, created_at
		FROM guest_groups
		WHERE pool_id = $1 AND NOT is_deleted ORDER BY created_at`, poolID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list guest groups", err)
	}
	defer rows.Close()

	type pendingGroup struct {
		view     *queries.GroupView
		guestIDs []uuid.UUID
	}
	var pending []pendingGroup
	for rows.Next() {
		view, guestIDs, err := scanGroupRow(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan guest group", err)
		}
		pending = append(pending, pendingGroup{view: view, guestIDs: guestIDs})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read guest groups", err)
	}

	views := make([]*queries.GroupView, 0, len(pending))
	for _, pg := range pending {
		if err := r.attachMembers(ctx, pg.view, pg.guestIDs); err != nil {
			return nil, err
		}
		views = append(views, pg.view)
	}
	return views, nil
}

// FindHolderByToken resolves a credential to its single holder. Guest tokens
// and group tokens live in different tables; a token matches at most one row
// across both.
func (r *GuestReadStore) FindHolderByToken(ctx context.Context, token string) (*queries.TokenHolderView, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+guestViewColumns+` FROM guests WHERE checkin_token = $1 AND NOT is_deleted`, token)

	guestView, err := scanGuestView(row)
	if err == nil {
		return &queries.TokenHolderView{Guest: guestView}, nil
	}
	if !pgconv.IsNoRows(err) {
		return nil, infra.WrapRepoErr("failed to resolve token", err)
	}

	groupView, err := r.findGroup(ctx,
		`SELECT id, pool_id, name, is_family, guest_ids, qr_image_url, created_at
		FROM guest_groups WHERE checkin_token = $1 AND NOT is_deleted`, token)
	if err != nil {
		return nil, err
	}
	return &queries.TokenHolderView{Group: groupView}, nil
}

func (r *GuestReadStore) findGroup(ctx context.Context, query string, arg any) (*queries.GroupView, error) {
	row := r.db.QueryRow(ctx, query, arg)

	view, guestIDs, err := scanGroupRow(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("guest group not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find guest group", err)
	}
	if err := r.attachMembers(ctx, view, guestIDs); err != nil {
		return nil, err
	}
	return view, nil
}

// attachMembers loads the member guest views in declaration order, including
// members that were individually revoked after the group was formed.
func (r *GuestReadStore) attachMembers(ctx context.Context, view *queries.GroupView, guestIDs []uuid.UUID) error {
	members, err := r.listGuests(ctx,
		`SELECT `+guestViewColumns+` FROM guests WHERE id = ANY($1::uuid[]) ORDER BY created_at`,
		pgconv.UUIDsToStrings(guestIDs))
	if err != nil {
		return err
	}
	view.Guests = make([]queries.GuestView, len(members))
	for i, m := range members {
		view.Guests[i] = *m
	}
	return nil
}

func scanGuestView(row rowScanner) (*queries.GuestView, error) {
	var view queries.GuestView
	err := row.Scan(&view.ID, &view.PoolID, &view.Name, &view.ContactInfo,
		&view.QRImageURL, &view.IsPresenceConfirmed, &view.IsPresentInEvent,
		&view.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &view, nil
}

func scanGroupRow(row rowScanner) (*queries.GroupView, []uuid.UUID, error) {
	var (
		view        queries.GroupView
		guestValues []string
	)
	err := row.Scan(&view.ID, &view.PoolID, &view.Name, &view.IsFamily,
		&guestValues, &view.QRImageURL, &view.CreatedAt)
	if err != nil {
		return nil, nil, err
	}
	guestIDs, err := pgconv.UUIDsFromStrings(guestValues)
	if err != nil {
		return nil, nil, err
	}
	return &view, guestIDs, nil
}
