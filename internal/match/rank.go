package match

import "sort"

type ScoredJob struct {
	Job   Job
	Score float64
}

type Ranker struct {
	scorer *Scorer
}

func NewRanker(scorer *Scorer) *Ranker {
	if scorer == nil {
		scorer = NewScorer(nil)
	}
	return &Ranker{scorer: scorer}
}

// Rank scores every job against the query and returns the top-K by score,
// ties broken by corpus order. There is no minimum-score floor: a 0.0 job
// still appears if nothing outranked it and topK is not filled.
func (r *Ranker) Rank(jobs []Job, query string, topK int) []ScoredJob {
	if len(jobs) == 0 || topK <= 0 {
		return []ScoredJob{}
	}

	req := Extract(query)
	normalized := NormalizeQuery(query)

	scored := make([]ScoredJob, 0, len(jobs))
	for _, job := range jobs {
		scored = append(scored, ScoredJob{
			Job:   job,
			Score: r.scorer.Score(job, req, normalized),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if topK < len(scored) {
		scored = scored[:topK]
	}
	return scored
}
