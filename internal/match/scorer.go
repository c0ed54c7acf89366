package match

import (
	"regexp"
	"strings"
)

// Term weights are the decision contract, not tunables. They sum to 1.0
// and are never renormalized: a query with no location mention simply
// forfeits that 0.15 budget.
const (
	weightSimilarity = 0.40
	weightSkills     = 0.30
	weightLocation   = 0.15
	weightExperience = 0.10
	weightJobType    = 0.05
)

var leadingIntRe = regexp.MustCompile(`\d+`)

type Scorer struct {
	similarity Similarity
}

func NewScorer(similarity Similarity) *Scorer {
	if similarity == nil {
		similarity = NewChain(nil)
	}
	return &Scorer{similarity: similarity}
}

// Score combines five independent terms into a relevance value that is
// conventionally in [0,1]. It never fails: a similarity backend error is
// absorbed as a zero similarity term.
func (s *Scorer) Score(job Job, req Requirements, query string) float64 {
	score := 0.0

	if sim, err := s.similarity.Score(query, job.SearchText()); err == nil {
		score += sim * weightSimilarity
	}

	if len(req.Skills) > 0 {
		jobSkills := strings.ToLower(job.Skills)
		matched := 0
		for _, skill := range req.Skills {
			if strings.Contains(jobSkills, skill) {
				matched++
			}
		}
		score += float64(matched) / float64(len(req.Skills)) * weightSkills
	}

	if len(req.Locations) > 0 {
		jobLocation := strings.ToLower(job.Location)
		for _, loc := range req.Locations {
			if strings.Contains(jobLocation, loc) {
				score += weightLocation
				break
			}
		}
	}

	if req.Experience != "" {
		score += experienceTerm(req.Experience, job.Experience)
	}

	if req.JobType != "" && strings.Contains(strings.ToLower(job.JobType), req.JobType) {
		score += weightJobType
	}

	return score
}

// experienceTerm grants the full weight when both sides say fresher, or
// when the requested minimum does not exceed the job's stated minimum.
func experienceTerm(requested, jobExperience string) float64 {
	jobExp := strings.ToLower(jobExperience)

	if strings.Contains(requested, "fresher") {
		if strings.Contains(jobExp, "fresher") {
			return weightExperience
		}
		return 0
	}

	reqNum := leadingIntRe.FindString(requested)
	jobNum := leadingIntRe.FindString(jobExp)
	if reqNum == "" || jobNum == "" {
		return 0
	}
	if parseIntLoose(reqNum) <= parseIntLoose(jobNum) {
		return weightExperience
	}
	return 0
}

func parseIntLoose(s string) int {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			break
		}
		n = n*10 + int(r-'0')
		if n > 1<<30 {
			break
		}
	}
	return n
}
