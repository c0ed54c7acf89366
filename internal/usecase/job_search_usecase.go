package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"job-scout/internal/corpus"
	"job-scout/internal/match"
)

const (
	defaultSearchTopK = 10
	maxSearchTopK     = 50

	searchCacheTTL = 10 * time.Minute
)

type JobSearchParams struct {
	Query string
	TopK  int
}

type JobSearchItem struct {
	JobID      int64      `json:"job_id"`
	Title      string     `json:"title"`
	Company    string     `json:"company"`
	Location   string     `json:"location"`
	Experience string     `json:"experience"`
	Skills     string     `json:"skills"`
	Salary     string     `json:"salary"`
	JobType    string     `json:"job_type"`
	URL        string     `json:"url"`
	PostedDate *time.Time `json:"posted_date,omitempty"`
	Score      float64    `json:"score"`
}

type JobSearchResult struct {
	Items         []JobSearchItem    `json:"items"`
	Requirements  match.Requirements `json:"requirements"`
	CorpusVersion int64              `json:"corpus_version"`
}

type JobSearchUsecase interface {
	Search(ctx context.Context, params JobSearchParams) (JobSearchResult, error)
}

type corpusSource interface {
	Snapshot() *corpus.Snapshot
}

type jobRanker interface {
	Rank(jobs []match.Job, query string, topK int) []match.ScoredJob
}

type JobSearch struct {
	corpus corpusSource
	ranker jobRanker
	cache  SearchCache
	logger *log.Logger
}

func NewJobSearchUsecase(corpus corpusSource, ranker jobRanker, cache SearchCache, logger *log.Logger) *JobSearch {
	return &JobSearch{corpus: corpus, ranker: ranker, cache: cache, logger: logger}
}

func (u *JobSearch) Search(ctx context.Context, params JobSearchParams) (JobSearchResult, error) {
	query := strings.TrimSpace(params.Query)
	if query == "" {
		return JobSearchResult{}, ErrInvalidInput
	}

	topK := params.TopK
	if topK == 0 {
		topK = defaultSearchTopK
	}
	if topK < 0 || topK > maxSearchTopK {
		return JobSearchResult{}, ErrInvalidInput
	}

	snap := u.corpus.Snapshot()
	req := match.Extract(query)

	result := JobSearchResult{
		Items:         []JobSearchItem{},
		Requirements:  req,
		CorpusVersion: snap.Version,
	}
	if len(snap.Jobs) == 0 {
		return result, nil
	}

	cacheKey := JobsSearchCacheKey(query, topK, snap.Version)
	lockKey := JobsSearchLockKey(cacheKey)

	if u.cache != nil {
		var cached []JobSearchItem
		hit, err := u.cache.GetJSON(ctx, cacheKey, &cached)
		if err == nil && hit {
			if u.logger != nil {
				u.logger.Printf("[Jobs] Cache HIT: %s", cacheKey)
			}
			result.Items = cached
			return result, nil
		}
		if u.logger != nil {
			u.logger.Printf("[Jobs] Cache MISS: %s", cacheKey)
		}
	}

	lockAcquired := false
	if u.cache != nil {
		ok, err := u.cache.SetIfNotExists(ctx, lockKey, "1", 30*time.Second)
		if err == nil && ok {
			lockAcquired = true
			if u.logger != nil {
				u.logger.Printf("[Jobs] Lock acquired: %s", lockKey)
			}
		} else if err == nil && !ok {
			jitterMs := time.Duration(time.Now().UnixNano()%201) * time.Millisecond
			time.Sleep(300*time.Millisecond + jitterMs)
			var cached []JobSearchItem
			hit, err2 := u.cache.GetJSON(ctx, cacheKey, &cached)
			if err2 == nil && hit {
				if u.logger != nil {
					u.logger.Printf("[Jobs] Cache HIT: %s", cacheKey)
				}
				result.Items = cached
				return result, nil
			}
			if u.logger != nil {
				u.logger.Printf("[Jobs] Lock wait fallback: %s", lockKey)
			}
		}
	}

	ranked := u.ranker.Rank(snap.Jobs, query, topK)
	result.Items = toSearchItems(ranked)

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, cacheKey, result.Items, searchCacheTTL)
		if u.logger != nil {
			u.logger.Printf("[Jobs] Cache SET: %s", cacheKey)
		}
		if lockAcquired {
			_ = u.cache.Delete(ctx, lockKey)
		}
	}
	return result, nil
}

func toSearchItems(ranked []match.ScoredJob) []JobSearchItem {
	out := make([]JobSearchItem, 0, len(ranked))
	for _, sj := range ranked {
		item := JobSearchItem{
			JobID:      sj.Job.ID,
			Title:      sj.Job.Title,
			Company:    sj.Job.Company,
			Location:   sj.Job.Location,
			Experience: sj.Job.Experience,
			Skills:     sj.Job.Skills,
			Salary:     sj.Job.Salary,
			JobType:    sj.Job.JobType,
			URL:        sj.Job.URL,
			Score:      sj.Score,
		}
		if !sj.Job.PostedDate.IsZero() {
			posted := sj.Job.PostedDate
			item.PostedDate = &posted
		}
		out = append(out, item)
	}
	return out
}
