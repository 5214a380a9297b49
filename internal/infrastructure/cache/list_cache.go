package cache

import (
	"context"
	"time"
)

// ListCache defines the process-wide cache for assembled list responses.
// Values are opaque serialized payloads; the usecase layer owns the encoding.
type ListCache interface {
	// Get retrieves a cached value by key.
	// Returns nil, nil if the key is absent or expired (cache miss).
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value with the specified TTL. Reads after expiry behave
	// as absent.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// DeletePrefix removes every key starting with the given prefix.
	DeletePrefix(ctx context.Context, prefix string) error

	// Clear removes all keys. Used by test harnesses, not by the service
	// under normal operation.
	Clear(ctx context.Context) error
}
