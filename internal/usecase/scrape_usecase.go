package usecase

import (
	"context"
	"log"
	"strings"

	"job-scout/internal/corpus"
	"job-scout/internal/repository"

	"github.com/google/uuid"
)

const defaultScrapeLimit = 50

type ScrapeParams struct {
	Keyword  string
	Location string
	Limit    int
}

type ScrapeReport struct {
	RunID         uuid.UUID `json:"run_id"`
	Keyword       string    `json:"keyword"`
	Location      string    `json:"location"`
	Fetched       int       `json:"fetched"`
	Upserted      int       `json:"upserted"`
	CorpusVersion int64     `json:"corpus_version"`
	CorpusJobs    int       `json:"corpus_jobs"`
}

type ScrapeUsecase interface {
	Run(ctx context.Context, params ScrapeParams) (ScrapeReport, error)
}

type jobSource interface {
	Fetch(ctx context.Context, keyword, location string, limit int) ([]repository.JobUpsert, error)
}

type corpusRefresher interface {
	Refresh(ctx context.Context) (*corpus.Snapshot, error)
}

type refreshNotifier interface {
	NotifyCorpusRefreshed(version int64, jobs int)
}

// Scrape pulls fresh postings from the board, persists them, and swaps in
// a new corpus snapshot so the next search sees them.
type Scrape struct {
	source   jobSource
	jobs     repository.JobRepository
	corpus   corpusRefresher
	notifier refreshNotifier
	logger   *log.Logger
}

func NewScrapeUsecase(source jobSource, jobs repository.JobRepository, corpus corpusRefresher, notifier refreshNotifier, logger *log.Logger) *Scrape {
	return &Scrape{source: source, jobs: jobs, corpus: corpus, notifier: notifier, logger: logger}
}

func (u *Scrape) Run(ctx context.Context, params ScrapeParams) (ScrapeReport, error) {
	keyword := strings.TrimSpace(params.Keyword)
	if keyword == "" {
		return ScrapeReport{}, ErrInvalidInput
	}
	limit := params.Limit
	if limit <= 0 {
		limit = defaultScrapeLimit
	}

	report := ScrapeReport{
		RunID:    uuid.New(),
		Keyword:  keyword,
		Location: strings.TrimSpace(params.Location),
	}

	fetched, err := u.source.Fetch(ctx, keyword, report.Location, limit)
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("[Scrape] fetch failed | run=%s keyword=%q err=%v", report.RunID, keyword, err)
		}
		return ScrapeReport{}, ErrInternal
	}
	report.Fetched = len(fetched)

	if len(fetched) > 0 {
		written, err := u.jobs.UpsertJobs(ctx, fetched)
		if err != nil {
			if u.logger != nil {
				u.logger.Printf("[Scrape] upsert failed | run=%s err=%v", report.RunID, err)
			}
			return ScrapeReport{}, ErrInternal
		}
		report.Upserted = written
	}

	snap, err := u.corpus.Refresh(ctx)
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("[Scrape] corpus refresh failed | run=%s err=%v", report.RunID, err)
		}
		return ScrapeReport{}, ErrInternal
	}
	report.CorpusVersion = snap.Version
	report.CorpusJobs = len(snap.Jobs)

	if u.notifier != nil {
		u.notifier.NotifyCorpusRefreshed(snap.Version, len(snap.Jobs))
	}

	if u.logger != nil {
		u.logger.Printf("[Scrape] run complete | run=%s fetched=%d upserted=%d corpus=%d",
			report.RunID, report.Fetched, report.Upserted, report.CorpusJobs)
	}
	return report, nil
}
