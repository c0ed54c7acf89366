package usecase

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"job-scout/internal/corpus"
	"job-scout/internal/match"
)

type stubCorpus struct {
	snap *corpus.Snapshot
}

func (s *stubCorpus) Snapshot() *corpus.Snapshot { return s.snap }

type countingRanker struct {
	inner *match.Ranker
	calls int
}

func (r *countingRanker) Rank(jobs []match.Job, query string, topK int) []match.ScoredJob {
	r.calls++
	return r.inner.Rank(jobs, query, topK)
}

type memCache struct {
	mu    sync.Mutex
	store map[string][]byte
}

func newMemCache() *memCache {
	return &memCache{store: map[string][]byte{}}
}

func (c *memCache) GetJSON(ctx context.Context, key string, out any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, ok := c.store[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (c *memCache) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store[key] = b
	return nil
}

func (c *memCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.store, key)
	return nil
}

func (c *memCache) SetIfNotExists(ctx context.Context, key string, value string, ttl time.Duration) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.store[key]; ok {
		return false, nil
	}
	c.store[key] = []byte(value)
	return true, nil
}

func testSnapshot() *corpus.Snapshot {
	return &corpus.Snapshot{
		Version: 7,
		Jobs: []match.Job{
			{ID: 1, Title: "Python Developer", Company: "Acme", Location: "Bangalore",
				Skills: "Python, Django, SQL", Experience: "2-4 years", Description: "Backend work in Python."},
			{ID: 2, Title: "Frontend Engineer", Company: "Webify", Location: "Remote",
				Skills: "JavaScript, React", Experience: "1-3 years", Description: "React interfaces."},
			{ID: 3, Title: "Data Analyst", Company: "InsightWorks", Location: "Mumbai",
				Skills: "SQL, Excel, Python", Experience: "Fresher", Description: "Dashboards and reports."},
		},
	}
}

func testRanker() *countingRanker {
	chain := match.NewChain(nil, match.TFIDF{}, match.Jaccard{})
	return &countingRanker{inner: match.NewRanker(match.NewScorer(chain))}
}

func TestJobSearch_InvalidInput(t *testing.T) {
	uc := NewJobSearchUsecase(&stubCorpus{snap: testSnapshot()}, testRanker(), nil, nil)

	if _, err := uc.Search(context.Background(), JobSearchParams{Query: "  "}); err != ErrInvalidInput {
		t.Fatalf("blank query: got %v", err)
	}
	if _, err := uc.Search(context.Background(), JobSearchParams{Query: "python", TopK: 51}); err != ErrInvalidInput {
		t.Fatalf("topK over cap: got %v", err)
	}
	if _, err := uc.Search(context.Background(), JobSearchParams{Query: "python", TopK: -1}); err != ErrInvalidInput {
		t.Fatalf("negative topK: got %v", err)
	}
}

func TestJobSearch_EmptyCorpus(t *testing.T) {
	empty := &corpus.Snapshot{Jobs: []match.Job{}}
	uc := NewJobSearchUsecase(&stubCorpus{snap: empty}, testRanker(), nil, nil)

	result, err := uc.Search(context.Background(), JobSearchParams{Query: "python"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Items) != 0 {
		t.Fatalf("expected no items, got %d", len(result.Items))
	}
}

func TestJobSearch_RanksAndBounds(t *testing.T) {
	uc := NewJobSearchUsecase(&stubCorpus{snap: testSnapshot()}, testRanker(), nil, nil)

	result, err := uc.Search(context.Background(), JobSearchParams{Query: "python developer in bangalore", TopK: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(result.Items))
	}
	if result.Items[0].Title != "Python Developer" {
		t.Fatalf("expected python job first, got %q", result.Items[0].Title)
	}
	if result.Items[0].Score < result.Items[1].Score {
		t.Fatalf("items not sorted by score")
	}
	if result.CorpusVersion != 7 {
		t.Fatalf("corpus version: got %d", result.CorpusVersion)
	}
	if len(result.Requirements.Skills) == 0 || result.Requirements.Skills[0] != "python" {
		t.Fatalf("requirements not extracted: %+v", result.Requirements)
	}
}

func TestJobSearch_CacheHitSkipsRanking(t *testing.T) {
	ranker := testRanker()
	cache := newMemCache()
	uc := NewJobSearchUsecase(&stubCorpus{snap: testSnapshot()}, ranker, cache, nil)

	params := JobSearchParams{Query: "python", TopK: 3}
	first, err := uc.Search(context.Background(), params)
	if err != nil {
		t.Fatalf("first search: %v", err)
	}
	if ranker.calls != 1 {
		t.Fatalf("expected 1 rank call, got %d", ranker.calls)
	}

	second, err := uc.Search(context.Background(), params)
	if err != nil {
		t.Fatalf("second search: %v", err)
	}
	if ranker.calls != 1 {
		t.Fatalf("cache hit should not rank again, calls=%d", ranker.calls)
	}
	if len(second.Items) != len(first.Items) {
		t.Fatalf("cached result mismatch: %d vs %d", len(second.Items), len(first.Items))
	}
}

func TestJobSearch_CacheKeyIncludesVersion(t *testing.T) {
	k1 := JobsSearchCacheKey("python", 10, 1)
	k2 := JobsSearchCacheKey("python", 10, 2)
	if k1 == k2 {
		t.Fatalf("keys for different corpus versions must differ")
	}
	if JobsSearchCacheKey("  Python  ", 10, 1) != JobsSearchCacheKey("python", 10, 1) {
		t.Fatalf("query normalization should fold case and spacing")
	}
}
