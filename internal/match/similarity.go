package match

import (
	"errors"
	"log"
	"strings"
)

// Similarity scores how alike two texts are, in [0,1].
type Similarity interface {
	Name() string
	Score(a, b string) (float64, error)
}

// Chain tries backends in order of decreasing sophistication and returns
// the first result that succeeds. The last backend in a well-formed chain
// never fails, so Score on the chain has no error to surface.
type Chain struct {
	backends []Similarity
	logger   *log.Logger
}

func NewChain(logger *log.Logger, backends ...Similarity) *Chain {
	kept := make([]Similarity, 0, len(backends))
	for _, b := range backends {
		if b == nil {
			continue
		}
		kept = append(kept, b)
	}
	if len(kept) == 0 {
		kept = append(kept, Jaccard{})
	}
	return &Chain{backends: kept, logger: logger}
}

func (c *Chain) Name() string {
	names := make([]string, 0, len(c.backends))
	for _, b := range c.backends {
		names = append(names, b.Name())
	}
	return "chain(" + strings.Join(names, ",") + ")"
}

func (c *Chain) Score(a, b string) (float64, error) {
	var lastErr error
	for _, backend := range c.backends {
		s, err := backend.Score(a, b)
		if err != nil {
			lastErr = err
			if c.logger != nil {
				c.logger.Printf("[Similarity] backend failed, falling back | backend=%s error=%v", backend.Name(), err)
			}
			continue
		}
		return clamp01(s), nil
	}
	if lastErr == nil {
		lastErr = errors.New("no similarity backend")
	}
	return 0, lastErr
}

// Jaccard is the terminal fallback: word-set intersection over union of
// whitespace-tokenized lowercase words.
type Jaccard struct{}

func (Jaccard) Name() string { return "jaccard" }

func (Jaccard) Score(a, b string) (float64, error) {
	aWords := wordSet(a)
	bWords := wordSet(b)

	union := len(bWords)
	intersection := 0
	for w := range aWords {
		if _, ok := bWords[w]; ok {
			intersection++
		} else {
			union++
		}
	}
	if union == 0 {
		return 0, nil
	}
	return float64(intersection) / float64(union), nil
}

func wordSet(s string) map[string]struct{} {
	fields := strings.Fields(strings.ToLower(s))
	out := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		out[f] = struct{}{}
	}
	return out
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
