// Package cache provides a small key/value cache with per-key TTLs and two
// drivers: an in-process map and Redis.
package cache

import (
	"context"
	"time"
)

// Cache stores JSON-serializable values under explicit keys.
type Cache interface {
	// Get loads the value under key into dest and reports whether it was found.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	// Driver names the backend, for logs and metrics.
	Driver() string
}
