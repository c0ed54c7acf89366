package scraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestBoardScraper_FetchSuccess(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body>
			<a href="/job/backend-1">Backend Developer</a>
			<a href="/job/backend-1">Backend Developer (dup)</a>
			<a href="/about">About us</a>
		</body></html>`))
	})
	mux.HandleFunc("/job/backend-1", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><head><title>Backend Developer - Acme</title></head><body>
			<h1>Backend Developer</h1>
			<div class="company-name">Acme Corp</div>
			<div class="job-location">Bangalore</div>
			<div class="job-experience">2-4 years</div>
			<div class="job-skills">Python, SQL, Docker</div>
			<div class="job-salary">8 LPA</div>
			<div class="job-type">Full Time</div>
			<div class="job-description">Build services.</div>
			<div class="posted-date">2 days ago</div>
		</body></html>`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	s := NewBoardScraper(server.URL, false, 1, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	jobs, err := s.Fetch(ctx, "backend", "", 10)
	if err != nil {
		t.Fatalf("fetch error: %v", err)
	}
	if len(jobs) != 1 {
		t.Fatalf("expected 1 job after dedup, got %d", len(jobs))
	}

	j := jobs[0]
	if j.Title != "Backend Developer" {
		t.Fatalf("title: got %q", j.Title)
	}
	if j.Company != "Acme Corp" {
		t.Fatalf("company: got %q", j.Company)
	}
	if j.Skills != "Python, SQL, Docker" {
		t.Fatalf("skills: got %q", j.Skills)
	}
	if !strings.Contains(j.URL, "/job/backend-1") {
		t.Fatalf("url: got %q", j.URL)
	}
	if j.PostedDate.IsZero() {
		t.Fatalf("posted date should be parsed from relative form")
	}
}

func TestBoardScraper_FetchEmptyListing(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body><p>no results</p></body></html>`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	s := NewBoardScraper(server.URL, false, 1, nil)

	jobs, err := s.Fetch(context.Background(), "cobol", "", 10)
	if err != nil {
		t.Fatalf("fetch error: %v", err)
	}
	if len(jobs) != 0 {
		t.Fatalf("expected no jobs, got %d", len(jobs))
	}
}

func TestParsePostedDate(t *testing.T) {
	now := time.Date(2025, 6, 10, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		raw  string
		want time.Time
	}{
		{"today", time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)},
		{"yesterday", time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)},
		{"3 days ago", time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC)},
		{"1 week ago", time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)},
		{"2025-01-15", time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)},
		{"Jan 2, 2025", time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)},
		{"", time.Time{}},
		{"whenever", time.Time{}},
	}

	for _, tt := range tests {
		if got := parsePostedDate(tt.raw, now); !got.Equal(tt.want) {
			t.Fatalf("parsePostedDate(%q)=%v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestNormalizeURLStripsFragment(t *testing.T) {
	if got := normalizeURL("https://example.com/job/1#apply"); got != "https://example.com/job/1" {
		t.Fatalf("got %q", got)
	}
	if got := normalizeURL("  "); got != "" {
		t.Fatalf("blank input should yield empty, got %q", got)
	}
}

func TestWorkerPoolRunsAllTasks(t *testing.T) {
	pool := NewWorkerPool(3, 10)
	results := pool.Run(context.Background())

	for i := 0; i < 10; i++ {
		pool.Submit(func(ctx context.Context) error {
			return nil
		})
	}
	pool.Close()

	count := 0
	for res := range results {
		if res.Err != nil {
			t.Fatalf("unexpected error: %v", res.Err)
		}
		count++
	}
	if count != 10 {
		t.Fatalf("expected 10 results, got %d", count)
	}
}
