package usecase

import (
	"context"
	"time"

	"job-scout/internal/stats"
)

type JobStatsUsecase interface {
	GetStatistics(ctx context.Context) (stats.Summary, error)
}

type JobStats struct {
	corpus corpusSource
	now    func() time.Time
}

func NewJobStatsUsecase(corpus corpusSource) *JobStats {
	return &JobStats{corpus: corpus, now: time.Now}
}

func (u *JobStats) GetStatistics(ctx context.Context) (stats.Summary, error) {
	snap := u.corpus.Snapshot()
	return stats.Summarize(snap.Jobs, u.now()), nil
}
