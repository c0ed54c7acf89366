package usecase

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrInternal     = errors.New("internal error")

	ErrNoJobsFound     = errors.New("no jobs found")
	ErrProfileEmpty    = errors.New("session profile is empty")
	ErrSessionNotFound = errors.New("session not found")

	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
)
