package handler

import (
	"time"

	"job-scout/internal/corpus"
	"job-scout/internal/database"
	"job-scout/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type corpusSource interface {
	Snapshot() *corpus.Snapshot
}

type HealthHandler struct {
	db     database.DB
	corpus corpusSource
}

func NewHealthHandler(db database.DB, corpus corpusSource) *HealthHandler {
	return &HealthHandler{db: db, corpus: corpus}
}

type healthStatus struct {
	Status        string `json:"status"`
	Database      string `json:"database"`
	CorpusJobs    int    `json:"corpus_jobs"`
	CorpusVersion int64  `json:"corpus_version"`
	LoadedAt      string `json:"corpus_loaded_at,omitempty"`
}

func (h *HealthHandler) HandleHealth(c fiber.Ctx) error {
	st := healthStatus{Status: "ok", Database: "ok"}

	if h.db != nil {
		if err := h.db.Ping(c.Context()); err != nil {
			st.Status = "degraded"
			st.Database = "unreachable"
		}
	} else {
		st.Database = "disabled"
	}

	if h.corpus != nil {
		snap := h.corpus.Snapshot()
		st.CorpusJobs = len(snap.Jobs)
		st.CorpusVersion = snap.Version
		if !snap.LoadedAt.IsZero() {
			st.LoadedAt = snap.LoadedAt.UTC().Format(time.RFC3339)
		}
	}

	status := fiber.StatusOK
	if st.Status != "ok" {
		status = fiber.StatusServiceUnavailable
	}
	return response.Success(c, status, st.Status, st)
}
