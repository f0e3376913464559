package repository

import (
	"context"
	"time"

	"rifas-api/internal/domain/user"
	"rifas-api/internal/infra"
	"rifas-api/internal/infra/db"
	"rifas-api/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) Create(ctx context.Context, dbtx db.DBTX, u *user.User) (uuid.UUID, error) {
	_, err := dbtx.Exec(ctx, `
		INSERT INTO users (id, email, name, password_hash, is_active)
		VALUES ($1, $2, $3, $4, $5)`,
		u.ID(), u.Email().Value(), u.Name(), u.PasswordHash(), u.IsActive(),
	)
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("email already registered", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err)
	}
	return u.ID(), nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, dbtx db.DBTX, email string) (*user.User, error) {
	row := dbtx.QueryRow(ctx, `
		SELECT id, email, name, password_hash, is_active, last_login, created_at, updated_at
		FROM users WHERE email = $1`, email)

	var (
		id                     uuid.UUID
		emailValue, name, hash string
		isActive               bool
		lastLogin              *time.Time
		createdAt, updatedAt   time.Time
	)
	err := row.Scan(&id, &emailValue, &name, &hash, &isActive, &lastLogin, &createdAt, &updatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user", err)
	}

	parsedEmail, err := user.NewEmail(emailValue)
	if err != nil {
		return nil, infra.WrapRepoErr("stored email is invalid", err)
	}

	return user.Reconstruct(id, parsedEmail, name, hash, isActive, lastLogin, createdAt, updatedAt), nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	_, err := dbtx.Exec(ctx, `
		UPDATE users SET last_login = now(), updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	return nil
}
