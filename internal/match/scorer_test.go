package match

import "testing"

func zeroSimilarity() Similarity {
	return similarityFunc(func(a, b string) (float64, error) { return 0, nil })
}

func TestScorer_SkillOverlap(t *testing.T) {
	s := NewScorer(zeroSimilarity())
	req := Requirements{Skills: []string{"python", "django"}}

	full := s.Score(Job{Skills: "Python, Django, SQL"}, req, "")
	if full != 0.30 {
		t.Fatalf("full overlap: got %v, want 0.30", full)
	}

	half := s.Score(Job{Skills: "Python, Spring"}, req, "")
	if half != 0.15 {
		t.Fatalf("half overlap: got %v, want 0.15", half)
	}

	none := s.Score(Job{Skills: "Java, Spring"}, req, "")
	if none != 0.0 {
		t.Fatalf("no overlap: got %v, want 0.0", none)
	}
}

func TestScorer_EmptySkillsForfeitsTerm(t *testing.T) {
	s := NewScorer(zeroSimilarity())
	// No requested skills: term contributes exactly zero, never a wildcard.
	got := s.Score(Job{Skills: "Python, Django, SQL, AWS"}, Requirements{}, "")
	if got != 0.0 {
		t.Fatalf("got %v, want 0.0", got)
	}
}

func TestScorer_SkillOverlapMonotonic(t *testing.T) {
	s := NewScorer(zeroSimilarity())
	req := Requirements{Skills: []string{"python", "sql"}}

	superset := s.Score(Job{Skills: "Python, SQL, Docker"}, req, "")
	other := s.Score(Job{Skills: "Java, Spring"}, req, "")
	if superset < other {
		t.Fatalf("superset %v should not score below non-matching %v", superset, other)
	}
}

func TestScorer_Location(t *testing.T) {
	s := NewScorer(zeroSimilarity())
	req := Requirements{Locations: []string{"bangalore"}}

	if got := s.Score(Job{Location: "Bangalore, Karnataka"}, req, ""); got != 0.15 {
		t.Fatalf("matching location: got %v, want 0.15", got)
	}
	if got := s.Score(Job{Location: "Mumbai"}, req, ""); got != 0.0 {
		t.Fatalf("non-matching location: got %v, want 0.0", got)
	}
}

func TestScorer_Experience(t *testing.T) {
	s := NewScorer(zeroSimilarity())

	tests := []struct {
		name      string
		requested string
		jobExp    string
		want      float64
	}{
		{"fresher both sides", "fresher", "Fresher", 0.10},
		{"fresher vs numeric", "fresher", "5-7 years", 0.0},
		{"requested below job floor", "2 years experience", "3-5 years", 0.10},
		{"requested equals job floor", "3 years experience", "3-5 years", 0.10},
		{"requested above job floor", "5 years experience", "2-3 years", 0.0},
		{"keyword without numbers", "senior", "3-5 years", 0.0},
	}
	for _, tt := range tests {
		req := Requirements{Experience: tt.requested}
		if got := s.Score(Job{Experience: tt.jobExp}, req, ""); got != tt.want {
			t.Fatalf("%s: got %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestScorer_JobType(t *testing.T) {
	s := NewScorer(zeroSimilarity())
	req := Requirements{JobType: "full-time"}

	if got := s.Score(Job{JobType: "Full-Time"}, req, ""); got != 0.05 {
		t.Fatalf("matching job type: got %v, want 0.05", got)
	}
	if got := s.Score(Job{JobType: "Internship"}, req, ""); got != 0.0 {
		t.Fatalf("non-matching job type: got %v, want 0.0", got)
	}
}

func TestScorer_BoundsWithAllTermsActive(t *testing.T) {
	s := NewScorer(NewChain(nil, Jaccard{}))
	query := "python developer fresher in bangalore full time"
	req := Extract(query)
	job := Job{
		Title:      "Python Developer",
		Company:    "Acme",
		Location:   "Bangalore",
		Experience: "Fresher",
		Skills:     "Python, Django",
		JobType:    "Full-time",
	}

	got := s.Score(job, req, NormalizeQuery(query))
	if got < 0.0 || got > 1.0 {
		t.Fatalf("score out of bounds: %v", got)
	}
	// Structured terms alone guarantee at least 0.30+0.15+0.10+0.05.
	if got < 0.60 {
		t.Fatalf("expected structured terms to contribute 0.60, got %v", got)
	}
}

func TestScorer_SimilarityFailureAbsorbed(t *testing.T) {
	s := NewScorer(&failingSimilarity{})
	got := s.Score(Job{Title: "Dev", Company: "Acme"}, Requirements{}, "dev")
	if got != 0.0 {
		t.Fatalf("expected zero score with failing backend, got %v", got)
	}
}
