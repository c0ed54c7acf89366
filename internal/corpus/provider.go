package corpus

import (
	"context"
	"log"
	"sync/atomic"
	"time"

	"job-scout/internal/match"
	"job-scout/internal/repository"
)

// Snapshot is an immutable view of the job corpus. Ranking calls capture
// one at entry and keep it for the whole call, so a refresh never hands
// them a half-updated table.
type Snapshot struct {
	Jobs     []match.Job
	Version  int64
	LoadedAt time.Time
}

type jobLister interface {
	ListAllJobs(ctx context.Context) ([]repository.JobRow, error)
}

// Provider owns the current snapshot behind an atomic pointer. Refresh
// builds a new snapshot and swaps the reference; it never mutates the one
// in-flight readers hold.
type Provider struct {
	jobs    jobLister
	current atomic.Pointer[Snapshot]
	version atomic.Int64
	logger  *log.Logger
}

func NewProvider(jobs jobLister, logger *log.Logger) *Provider {
	p := &Provider{jobs: jobs, logger: logger}
	p.current.Store(&Snapshot{Jobs: []match.Job{}})
	return p
}

func (p *Provider) Snapshot() *Snapshot {
	return p.current.Load()
}

// Refresh reloads the corpus from storage, dropping rows that fail the
// validity check (empty title or company).
func (p *Provider) Refresh(ctx context.Context) (*Snapshot, error) {
	rows, err := p.jobs.ListAllJobs(ctx)
	if err != nil {
		return nil, err
	}

	jobs := make([]match.Job, 0, len(rows))
	dropped := 0
	for _, r := range rows {
		j := match.Job{
			ID:          r.ID,
			Title:       r.Title,
			Company:     r.Company,
			Location:    r.Location,
			Experience:  r.Experience,
			Skills:      r.Skills,
			Salary:      r.Salary,
			Description: r.Description,
			JobType:     r.JobType,
			Education:   r.Education,
			URL:         r.URL,
			PostedDate:  r.PostedDate,
		}
		if !j.Valid() {
			dropped++
			continue
		}
		jobs = append(jobs, j)
	}

	snap := &Snapshot{
		Jobs:     jobs,
		Version:  p.version.Add(1),
		LoadedAt: time.Now().UTC(),
	}
	p.current.Store(snap)

	if p.logger != nil {
		p.logger.Printf("[Corpus] refreshed | version=%d jobs=%d dropped=%d", snap.Version, len(jobs), dropped)
	}
	return snap, nil
}
