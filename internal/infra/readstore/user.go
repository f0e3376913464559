package readstore

import (
	"context"

	"rifas-api/internal/infra"
	"rifas-api/internal/infra/db"
	"rifas-api/internal/pkg/pgconv"
	"rifas-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	return r.findOne(ctx,
		`SELECT id, email, name, is_active FROM users WHERE id = $1`, id)
}

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, error) {
	return r.findOne(ctx,
		`SELECT id, email, name, is_active FROM users WHERE email = $1`, email)
}

func (r *UserReadStore) findOne(ctx context.Context, query string, arg any) (*queries.AuthorizedUserView, error) {
	var view queries.AuthorizedUserView
	err := r.db.QueryRow(ctx, query, arg).Scan(&view.ID, &view.Email, &view.Name, &view.IsActive)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user", err)
	}
	return &view, nil
}
