package usecase

import (
	"context"
	"testing"

	"job-scout/internal/chat"
	"job-scout/internal/corpus"
	"job-scout/internal/match"
)

func TestRecommendations_UnknownSession(t *testing.T) {
	uc := NewJobRecommendationUsecase(chat.NewManager(), &stubCorpus{snap: testSnapshot()}, testRanker())

	if _, err := uc.GetRecommendations(context.Background(), JobRecommendationParams{SessionID: "nope"}); err != ErrProfileEmpty {
		t.Fatalf("unknown session: got %v", err)
	}
}

func TestRecommendations_EmptyProfile(t *testing.T) {
	sessions := chat.NewManager()
	sessions.GetOrCreate("u1")
	uc := NewJobRecommendationUsecase(sessions, &stubCorpus{snap: testSnapshot()}, testRanker())

	if _, err := uc.GetRecommendations(context.Background(), JobRecommendationParams{SessionID: "u1"}); err != ErrProfileEmpty {
		t.Fatalf("empty profile: got %v", err)
	}
}

func TestRecommendations_UsesAccumulatedProfile(t *testing.T) {
	sessions := chat.NewManager()
	sess := sessions.GetOrCreate("u1")
	sess.MergeProfile(match.Requirements{Skills: []string{"python"}, Locations: []string{"bangalore"}})

	uc := NewJobRecommendationUsecase(sessions, &stubCorpus{snap: testSnapshot()}, testRanker())

	result, err := uc.GetRecommendations(context.Background(), JobRecommendationParams{SessionID: "u1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Items) == 0 {
		t.Fatalf("expected recommendations")
	}
	if result.Items[0].Title != "Python Developer" {
		t.Fatalf("expected python job first, got %q", result.Items[0].Title)
	}
	if len(result.Items) > defaultRecommendationTopK {
		t.Fatalf("default topK not applied: %d items", len(result.Items))
	}
}

func TestRecommendations_EmptyCorpus(t *testing.T) {
	sessions := chat.NewManager()
	sess := sessions.GetOrCreate("u1")
	sess.MergeProfile(match.Requirements{Skills: []string{"python"}})

	uc := NewJobRecommendationUsecase(sessions, &stubCorpus{snap: &corpus.Snapshot{}}, testRanker())

	if _, err := uc.GetRecommendations(context.Background(), JobRecommendationParams{SessionID: "u1"}); err != ErrNoJobsFound {
		t.Fatalf("empty corpus: got %v", err)
	}
}

func TestRecommendations_TopKBounds(t *testing.T) {
	uc := NewJobRecommendationUsecase(chat.NewManager(), &stubCorpus{snap: testSnapshot()}, testRanker())

	if _, err := uc.GetRecommendations(context.Background(), JobRecommendationParams{SessionID: "u1", TopK: maxSearchTopK + 1}); err != ErrInvalidInput {
		t.Fatalf("oversized topK: got %v", err)
	}
}
