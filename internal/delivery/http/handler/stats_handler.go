package handler

import (
	"job-scout/internal/delivery/http/dto"
	"job-scout/internal/pkg/response"
	"job-scout/internal/stats"
	"job-scout/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type StatsHandler struct {
	uc usecase.JobStatsUsecase
}

func NewStatsHandler(uc usecase.JobStatsUsecase) *StatsHandler {
	return &StatsHandler{uc: uc}
}

func (h *StatsHandler) HandleStatistics(c fiber.Ctx) error {
	summary, err := h.uc.GetStatistics(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}

	out := dto.StatsResponse{
		TotalJobs:              summary.TotalJobs,
		RecentJobs:             summary.RecentJobs,
		TopCompanies:           toCountResponses(summary.TopCompanies),
		TopLocations:           toCountResponses(summary.TopLocations),
		TopSkills:              toCountResponses(summary.TopSkills),
		ExperienceDistribution: toCountResponses(summary.ExperienceDistribution),
	}
	return response.Success(c, fiber.StatusOK, "success", out)
}

func toCountResponses(counts []stats.Count) []dto.CountResponse {
	out := make([]dto.CountResponse, 0, len(counts))
	for _, c := range counts {
		out = append(out, dto.CountResponse{Name: c.Name, Count: c.Count})
	}
	return out
}
