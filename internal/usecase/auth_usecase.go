package usecase

import (
	"context"
	"errors"

	"job-scout/internal/pkg/jwt"

	"golang.org/x/crypto/bcrypt"
)

const adminSubject = "admin"

type AuthUsecase interface {
	IssueToken(ctx context.Context, password string) (string, string, error)
	Refresh(ctx context.Context, refreshToken string) (string, string, error)
}

// Auth guards the operational endpoints (scrape triggers) behind a single
// admin credential: a bcrypt hash supplied through configuration.
type Auth struct {
	passwordHash []byte
	jwt          jwt.Service
}

func NewAuthUsecase(passwordHash string, jwtSvc jwt.Service) *Auth {
	return &Auth{passwordHash: []byte(passwordHash), jwt: jwtSvc}
}

func (u *Auth) IssueToken(ctx context.Context, password string) (string, string, error) {
	if len(u.passwordHash) == 0 || password == "" {
		return "", "", ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword(u.passwordHash, []byte(password)); err != nil {
		return "", "", ErrUnauthorized
	}

	access, err := u.jwt.GenerateAccessToken(adminSubject)
	if err != nil {
		return "", "", ErrInternal
	}
	refresh, err := u.jwt.GenerateRefreshToken(adminSubject)
	if err != nil {
		return "", "", ErrInternal
	}
	return access, refresh, nil
}

func (u *Auth) Refresh(ctx context.Context, refreshToken string) (string, string, error) {
	if refreshToken == "" {
		return "", "", ErrUnauthorized
	}

	claims, err := u.jwt.ValidateToken(refreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", "", ErrRefreshTokenExpired
		}
		return "", "", ErrInvalidRefreshToken
	}
	if !u.jwt.IsRefreshToken(claims) || claims.Subject != adminSubject {
		return "", "", ErrInvalidRefreshToken
	}

	access, err := u.jwt.GenerateAccessToken(adminSubject)
	if err != nil {
		return "", "", ErrInternal
	}
	newRefresh, err := u.jwt.GenerateRefreshToken(adminSubject)
	if err != nil {
		return "", "", ErrInternal
	}
	return access, newRefresh, nil
}
