package handler

import (
	"errors"
	"strconv"
	"time"

	"job-scout/internal/delivery/http/dto"
	"job-scout/internal/delivery/http/middleware"
	"job-scout/internal/pkg/response"
	"job-scout/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobsHandler struct {
	search usecase.JobSearchUsecase
}

func NewJobsHandler(search usecase.JobSearchUsecase) *JobsHandler {
	return &JobsHandler{search: search}
}

func (h *JobsHandler) HandleSearch(c fiber.Ctx) error {
	query := c.Query("query")
	topK, err := parseQueryIntStrict(c, "top_k", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	result, err := h.search.Search(c.Context(), usecase.JobSearchParams{
		Query: query,
		TopK:  topK,
	})
	if err != nil {
		return mapUsecaseError(err)
	}

	out := dto.JobSearchResponse{
		Query: query,
		Requirements: dto.RequirementsResponse{
			Skills:     emptyIfNil(result.Requirements.Skills),
			Locations:  emptyIfNil(result.Requirements.Locations),
			Experience: result.Requirements.Experience,
			Salary:     result.Requirements.Salary,
			JobType:    result.Requirements.JobType,
		},
		Jobs:          toJobItemResponses(result.Items),
		Total:         len(result.Items),
		CorpusVersion: result.CorpusVersion,
	}
	return response.Success(c, fiber.StatusOK, "success", out)
}

func toJobItemResponses(items []usecase.JobSearchItem) []dto.JobSearchItemResponse {
	out := make([]dto.JobSearchItemResponse, 0, len(items))
	for _, it := range items {
		posted := ""
		if it.PostedDate != nil && !it.PostedDate.IsZero() {
			posted = it.PostedDate.UTC().Format(time.RFC3339)
		}
		out = append(out, dto.JobSearchItemResponse{
			JobID:      it.JobID,
			Title:      it.Title,
			Company:    it.Company,
			Location:   it.Location,
			Experience: it.Experience,
			Skills:     it.Skills,
			Salary:     it.Salary,
			JobType:    it.JobType,
			URL:        it.URL,
			PostedDate: posted,
			Score:      it.Score,
		})
	}
	return out
}

func parseQueryIntStrict(c fiber.Ctx, key string, defaultVal int) (int, error) {
	s := c.Query(key)
	if s == "" {
		return defaultVal, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	return v, nil
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func mapUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageUnauthorized, nil, err)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Session not found", nil, err)
	case errors.Is(err, usecase.ErrProfileEmpty):
		return middleware.NewAppError(fiber.StatusBadRequest, "No profile yet; chat about the role you want first", nil, err)
	case errors.Is(err, usecase.ErrNoJobsFound):
		return middleware.NewAppError(fiber.StatusNotFound, "No jobs found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
