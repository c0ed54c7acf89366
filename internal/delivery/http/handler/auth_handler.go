package handler

import (
	"errors"

	"job-scout/internal/delivery/http/dto"
	"job-scout/internal/delivery/http/middleware"
	"job-scout/internal/pkg/response"
	"job-scout/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type AuthHandler struct {
	uc usecase.AuthUsecase
}

func NewAuthHandler(uc usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

func (h *AuthHandler) HandleToken(c fiber.Ctx) error {
	var req dto.TokenRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	access, refresh, err := h.uc.IssueToken(c.Context(), req.Password)
	if err != nil {
		return mapAuthError(err)
	}

	return response.Success(c, fiber.StatusOK, "success", dto.TokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
	})
}

func (h *AuthHandler) HandleRefresh(c fiber.Ctx) error {
	var req dto.RefreshRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	access, refresh, err := h.uc.Refresh(c.Context(), req.RefreshToken)
	if err != nil {
		return mapAuthError(err)
	}

	return response.Success(c, fiber.StatusOK, "success", dto.TokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
	})
}

func mapAuthError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageUnauthorized, nil, err)
	case errors.Is(err, usecase.ErrRefreshTokenExpired):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Refresh token expired", nil, err)
	case errors.Is(err, usecase.ErrInvalidRefreshToken):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Invalid refresh token", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
