package handler

import (
	"job-scout/internal/delivery/http/dto"
	"job-scout/internal/delivery/http/middleware"
	"job-scout/internal/pkg/response"
	"job-scout/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ScrapeHandler struct {
	uc usecase.ScrapeUsecase
}

func NewScrapeHandler(uc usecase.ScrapeUsecase) *ScrapeHandler {
	return &ScrapeHandler{uc: uc}
}

func (h *ScrapeHandler) HandleScrape(c fiber.Ctx) error {
	var req dto.ScrapeRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	report, err := h.uc.Run(c.Context(), usecase.ScrapeParams{
		Keyword:  req.Keyword,
		Location: req.Location,
		Limit:    req.Limit,
	})
	if err != nil {
		return mapUsecaseError(err)
	}

	out := dto.ScrapeResponse{
		RunID:         report.RunID.String(),
		Keyword:       report.Keyword,
		Location:      report.Location,
		Fetched:       report.Fetched,
		Upserted:      report.Upserted,
		CorpusVersion: report.CorpusVersion,
		CorpusJobs:    report.CorpusJobs,
	}
	return response.Success(c, fiber.StatusOK, "scrape complete", out)
}
