package seeder

import (
	"context"
	"fmt"

	"job-scout/internal/database"
)

// Seeder populates one slice of reference data. Implementations must be
// idempotent; the runner executes them on every boot.
type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}

type Runner struct {
	Seeders []Seeder
}

// Run executes the seeders in order and stops at the first failure.
func (r Runner) Run(ctx context.Context, db database.DB) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}
	for _, s := range r.Seeders {
		if s == nil {
			continue
		}
		if err := s.Run(ctx, db); err != nil {
			return fmt.Errorf("seed %s: %w", s.Name(), err)
		}
	}
	return nil
}
