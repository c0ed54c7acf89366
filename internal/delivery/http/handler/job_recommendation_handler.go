package handler

import (
	"job-scout/internal/delivery/http/dto"
	"job-scout/internal/delivery/http/middleware"
	"job-scout/internal/pkg/response"
	"job-scout/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobRecommendationHandler struct {
	uc usecase.JobRecommendationUsecase
}

func NewJobRecommendationHandler(uc usecase.JobRecommendationUsecase) *JobRecommendationHandler {
	return &JobRecommendationHandler{uc: uc}
}

func (h *JobRecommendationHandler) HandleRecommendations(c fiber.Ctx) error {
	sessionID := c.Query("session_id")
	topK, err := parseQueryIntStrict(c, "top_k", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	result, err := h.uc.GetRecommendations(c.Context(), usecase.JobRecommendationParams{
		SessionID: sessionID,
		TopK:      topK,
	})
	if err != nil {
		return mapUsecaseError(err)
	}

	out := dto.JobSearchResponse{
		Jobs:          toJobItemResponses(result.Items),
		Total:         len(result.Items),
		CorpusVersion: result.CorpusVersion,
		Requirements: dto.RequirementsResponse{
			Skills:    []string{},
			Locations: []string{},
		},
	}
	return response.Success(c, fiber.StatusOK, "success", out)
}
