package service

import "context"

// CacheProvider defines the interface for caching serialized listings.
// A cache miss is reported through Recover's boolean, never as an error.
type CacheProvider interface {
	// Save stores a value under the given key, serialized as JSON.
	Save(ctx context.Context, key string, value any) error

	// Recover loads the value stored under the given key into target.
	// It returns false when the key is absent.
	Recover(ctx context.Context, key string, target any) (bool, error)

	// Invalidate removes the given key from the cache.
	Invalidate(ctx context.Context, key string) error

	// InvalidatePrefix removes every key that starts with the given prefix.
	InvalidatePrefix(ctx context.Context, prefix string) error
}
