package repository

import (
	"context"
	"time"
)

// CacheRepository caches advisory responses keyed by a snapshot digest.
type CacheRepository interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
}
