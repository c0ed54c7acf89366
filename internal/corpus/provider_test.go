package corpus

import (
	"context"
	"errors"
	"testing"

	"job-scout/internal/repository"
)

type mockLister struct {
	rows []repository.JobRow
	err  error
}

func (m *mockLister) ListAllJobs(context.Context) ([]repository.JobRow, error) {
	return m.rows, m.err
}

func TestProvider_RefreshFiltersInvalidRows(t *testing.T) {
	lister := &mockLister{rows: []repository.JobRow{
		{ID: 1, Title: "Python Developer", Company: "Acme"},
		{ID: 2, Title: "  ", Company: "Acme"},
		{ID: 3, Title: "Analyst", Company: ""},
	}}
	p := NewProvider(lister, nil)

	snap, err := p.Refresh(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(snap.Jobs) != 1 || snap.Jobs[0].ID != 1 {
		t.Fatalf("expected only the valid row, got %+v", snap.Jobs)
	}
	if snap.Version != 1 {
		t.Fatalf("expected version 1, got %d", snap.Version)
	}
}

func TestProvider_SnapshotSurvivesRefresh(t *testing.T) {
	lister := &mockLister{rows: []repository.JobRow{
		{ID: 1, Title: "Developer", Company: "Acme"},
	}}
	p := NewProvider(lister, nil)
	if _, err := p.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}

	held := p.Snapshot()

	lister.rows = []repository.JobRow{
		{ID: 2, Title: "Designer", Company: "Globex"},
		{ID: 3, Title: "Tester", Company: "Globex"},
	}
	if _, err := p.Refresh(context.Background()); err != nil {
		t.Fatalf("second refresh: %v", err)
	}

	// The captured snapshot is untouched by the swap.
	if len(held.Jobs) != 1 || held.Jobs[0].ID != 1 {
		t.Fatalf("held snapshot mutated: %+v", held.Jobs)
	}
	if got := p.Snapshot(); len(got.Jobs) != 2 || got.Version != 2 {
		t.Fatalf("current snapshot not swapped: %+v", got)
	}
}

func TestProvider_RefreshErrorKeepsOldSnapshot(t *testing.T) {
	lister := &mockLister{rows: []repository.JobRow{
		{ID: 1, Title: "Developer", Company: "Acme"},
	}}
	p := NewProvider(lister, nil)
	if _, err := p.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}

	lister.err = errors.New("db down")
	if _, err := p.Refresh(context.Background()); err == nil {
		t.Fatalf("expected error")
	}
	if got := p.Snapshot(); len(got.Jobs) != 1 || got.Version != 1 {
		t.Fatalf("snapshot should be unchanged after failed refresh: %+v", got)
	}
}

func TestProvider_EmptyBeforeFirstRefresh(t *testing.T) {
	p := NewProvider(&mockLister{}, nil)
	if got := p.Snapshot(); got == nil || len(got.Jobs) != 0 {
		t.Fatalf("expected empty snapshot, got %+v", got)
	}
}
