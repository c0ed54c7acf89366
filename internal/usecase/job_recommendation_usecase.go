package usecase

import (
	"context"

	"job-scout/internal/chat"
)

const defaultRecommendationTopK = 5

type JobRecommendationParams struct {
	SessionID string
	TopK      int
}

type JobRecommendationUsecase interface {
	GetRecommendations(ctx context.Context, params JobRecommendationParams) (JobSearchResult, error)
}

type sessionSource interface {
	Get(id string) (*chat.Session, bool)
}

// JobRecommendation turns the profile accumulated over a chat session into
// a ranking query. There is no separate recommendation algorithm: the
// flattened profile goes through the same search path as a typed query.
type JobRecommendation struct {
	sessions sessionSource
	corpus   corpusSource
	ranker   jobRanker
}

func NewJobRecommendationUsecase(sessions sessionSource, corpus corpusSource, ranker jobRanker) *JobRecommendation {
	return &JobRecommendation{sessions: sessions, corpus: corpus, ranker: ranker}
}

func (u *JobRecommendation) GetRecommendations(ctx context.Context, params JobRecommendationParams) (JobSearchResult, error) {
	topK := params.TopK
	if topK == 0 {
		topK = defaultRecommendationTopK
	}
	if topK < 0 || topK > maxSearchTopK {
		return JobSearchResult{}, ErrInvalidInput
	}

	sess, ok := u.sessions.Get(params.SessionID)
	if !ok {
		return JobSearchResult{}, ErrProfileEmpty
	}
	query := sess.CurrentProfile().Query()
	if query == "" {
		return JobSearchResult{}, ErrProfileEmpty
	}

	snap := u.corpus.Snapshot()
	result := JobSearchResult{
		Items:         []JobSearchItem{},
		CorpusVersion: snap.Version,
	}
	if len(snap.Jobs) == 0 {
		return result, ErrNoJobsFound
	}

	ranked := u.ranker.Rank(snap.Jobs, query, topK)
	result.Items = toSearchItems(ranked)
	if len(result.Items) == 0 {
		return result, ErrNoJobsFound
	}
	return result, nil
}
