package match

import (
	"errors"
	"testing"
)

type failingSimilarity struct{ calls int }

func (f *failingSimilarity) Name() string { return "failing" }
func (f *failingSimilarity) Score(a, b string) (float64, error) {
	f.calls++
	return 0, errors.New("backend down")
}

func TestJaccard(t *testing.T) {
	j := Jaccard{}

	same, err := j.Score("python developer", "python developer")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if same != 1.0 {
		t.Fatalf("identical texts: got %v, want 1.0", same)
	}

	disjoint, _ := j.Score("python developer", "accountant finance")
	if disjoint != 0.0 {
		t.Fatalf("disjoint texts: got %v, want 0.0", disjoint)
	}

	empty, _ := j.Score("", "")
	if empty != 0.0 {
		t.Fatalf("empty texts: got %v, want 0.0", empty)
	}

	partial, _ := j.Score("python sql", "python java")
	if partial <= 0 || partial >= 1 {
		t.Fatalf("partial overlap should be strictly inside (0,1), got %v", partial)
	}
}

func TestTFIDF(t *testing.T) {
	f := TFIDF{}

	same, err := f.Score("python developer bangalore", "python developer bangalore")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if same < 0.99 {
		t.Fatalf("identical texts: got %v, want ~1.0", same)
	}

	disjoint, _ := f.Score("python developer", "accountant finance")
	if disjoint != 0.0 {
		t.Fatalf("disjoint texts: got %v, want 0.0", disjoint)
	}

	stopOnly, _ := f.Score("the of and", "python developer")
	if stopOnly != 0.0 {
		t.Fatalf("stopword-only query: got %v, want 0.0", stopOnly)
	}
}

func TestChain_FallsBackInOrder(t *testing.T) {
	failing := &failingSimilarity{}
	chain := NewChain(nil, failing, Jaccard{})

	got, err := chain.Score("python developer", "python developer")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got != 1.0 {
		t.Fatalf("expected jaccard fallback result 1.0, got %v", got)
	}
	if failing.calls != 1 {
		t.Fatalf("expected failing backend tried once, got %d", failing.calls)
	}
}

func TestChain_EmptyDefaultsToJaccard(t *testing.T) {
	chain := NewChain(nil)
	got, err := chain.Score("go", "go")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got != 1.0 {
		t.Fatalf("got %v, want 1.0", got)
	}
}

func TestChain_ClampsToUnitInterval(t *testing.T) {
	over := similarityFunc(func(a, b string) (float64, error) { return 1.7, nil })
	chain := NewChain(nil, over)
	got, _ := chain.Score("a", "b")
	if got != 1.0 {
		t.Fatalf("expected clamp to 1.0, got %v", got)
	}
}

type similarityFunc func(a, b string) (float64, error)

func (similarityFunc) Name() string                          { return "func" }
func (f similarityFunc) Score(a, b string) (float64, error) { return f(a, b) }
