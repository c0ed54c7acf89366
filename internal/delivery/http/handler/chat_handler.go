package handler

import (
	"time"

	"job-scout/internal/delivery/http/dto"
	"job-scout/internal/delivery/http/middleware"
	"job-scout/internal/pkg/response"
	"job-scout/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ChatHandler struct {
	uc usecase.ChatUsecase
}

func NewChatHandler(uc usecase.ChatUsecase) *ChatHandler {
	return &ChatHandler{uc: uc}
}

func (h *ChatHandler) HandleMessage(c fiber.Ctx) error {
	var req dto.ChatRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	resp, err := h.uc.HandleMessage(c.Context(), usecase.ChatParams{
		SessionID: req.SessionID,
		Message:   req.Message,
	})
	if err != nil {
		return mapUsecaseError(err)
	}

	out := dto.ChatResponse{
		SessionID:   resp.SessionID,
		Intent:      string(resp.Intent),
		Message:     resp.Message,
		Jobs:        toJobItemResponses(resp.Jobs),
		Suggestions: resp.Suggestions,
		Timestamp:   resp.Timestamp.UTC().Format(time.RFC3339),
	}
	return response.Success(c, fiber.StatusOK, "success", out)
}

func (h *ChatHandler) HandleHistory(c fiber.Ctx) error {
	sessionID := c.Params("sessionID")

	history, err := h.uc.History(c.Context(), sessionID)
	if err != nil {
		return mapUsecaseError(err)
	}

	entries := make([]dto.ChatHistoryEntryResponse, 0, len(history))
	for _, e := range history {
		entries = append(entries, dto.ChatHistoryEntryResponse{
			UserMessage: e.UserMessage,
			BotMessage:  e.BotMessage,
			Intent:      string(e.Intent),
			Timestamp:   e.Timestamp.UTC().Format(time.RFC3339),
		})
	}

	out := dto.ChatHistoryResponse{SessionID: sessionID, History: entries}
	return response.Success(c, fiber.StatusOK, "success", out)
}

func (h *ChatHandler) HandleReset(c fiber.Ctx) error {
	sessionID := c.Params("sessionID")

	if err := h.uc.Reset(c.Context(), sessionID); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "session reset", nil)
}
