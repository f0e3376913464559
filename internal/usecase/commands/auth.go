package commands

import (
	"context"
	"errors"

	"rifas-api/internal/domain/user"
	"rifas-api/internal/infra"
	"rifas-api/internal/pkg/errs"
	"rifas-api/internal/pkg/jwt"
	"rifas-api/internal/pkg/password"
	"rifas-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type RegisterInput struct {
	Email    string
	Name     string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthCommands interface {
	Register(ctx context.Context, input RegisterInput) (uuid.UUID, error)
	Login(ctx context.Context, input LoginInput) (*TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommandsImpl struct {
	uow shared.UnitOfWork
	jwt *jwt.Service
}

func NewAuthCommands(uow shared.UnitOfWork, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{uow: uow, jwt: jwtService}
}

func (c *authCommandsImpl) Register(ctx context.Context, input RegisterInput) (uuid.UUID, error) {
	email, err := user.NewEmail(input.Email)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	hash, err := password.HashPassword(input.Password)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	u, err := user.NewUser(email, input.Name, hash)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var id uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err = tx.Users().Create(ctx, tx.DB(), u)
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return errs.Mark(err, errs.ErrEmailTaken)
		}
		return err
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (c *authCommandsImpl) Login(ctx context.Context, input LoginInput) (*TokenPair, error) {
	email, err := user.NewEmail(input.Email)
	if err != nil {
		// An unparsable email can never match an account.
		return nil, errs.Mark(err, errs.ErrInvalidCredentials)
	}

	var pair *TokenPair
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, err := tx.Users().FindByEmail(ctx, tx.DB(), email.Value())
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrInvalidCredentials)
		}
		if err != nil {
			return err
		}

		if err := password.ComparePassword(u.PasswordHash(), input.Password); err != nil {
			return errs.Mark(err, errs.ErrInvalidCredentials)
		}
		if !u.IsActive() {
			return errs.ErrUserInactive
		}

		pair, err = c.issuePair(u.ID())
		if err != nil {
			return err
		}
		return tx.Users().UpdateLastLogin(ctx, tx.DB(), u.ID())
	})
	if err != nil {
		return nil, err
	}
	return pair, nil
}

func (c *authCommandsImpl) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := c.jwt.ValidateToken(refreshToken)
	if err != nil || claims.TokenType != jwt.TokenTypeRefresh {
		if err == nil {
			err = errors.New("access token presented as refresh token")
		}
		return nil, errs.Mark(err, errs.ErrTokenValidation)
	}
	return c.issuePair(claims.UserID)
}

func (c *authCommandsImpl) issuePair(userID uuid.UUID) (*TokenPair, error) {
	access, err := c.jwt.GenerateAccessToken(userID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrTokenGeneration)
	}
	refresh, err := c.jwt.GenerateRefreshToken(userID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrTokenGeneration)
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
