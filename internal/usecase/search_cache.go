package usecase

import (
	"context"
	"time"
)

// SearchCache abstracts the redis layer behind the search path. The nil
// value and an unavailable backing store both behave as a cache that never
// hits; callers treat every method as best-effort.
type SearchCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	SetIfNotExists(ctx context.Context, key string, value string, ttl time.Duration) (bool, error)
}
