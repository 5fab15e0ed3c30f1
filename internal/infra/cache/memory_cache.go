package cache

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"gobarber/internal/domain/service"
	"gobarber/internal/errors"
)

// memoryCacheProvider is an in-memory implementation of service.CacheProvider.
// It keeps the same JSON round-trip as the Redis implementation so cached
// values behave identically in tests.
type memoryCacheProvider struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

// NewMemoryCacheProvider is the constructor for memoryCacheProvider.
func NewMemoryCacheProvider() service.CacheProvider {
	return &memoryCacheProvider{
		entries: make(map[string][]byte),
	}
}

// Save stores a value under the given key, serialized as JSON.
func (p *memoryCacheProvider) Save(_ context.Context, key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return errors.Wrap(err, "failed to marshal cache value")
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.entries[key] = payload

	return nil
}

// Recover loads the value stored under the given key into target.
func (p *memoryCacheProvider) Recover(_ context.Context, key string, target any) (bool, error) {
	p.mu.RLock()
	payload, ok := p.entries[key]
	p.mu.RUnlock()

	if !ok {
		return false, nil
	}

	if err := json.Unmarshal(payload, target); err != nil {
		return false, errors.Wrap(err, "failed to unmarshal cache value")
	}

	return true, nil
}

// Invalidate removes the given key from the cache.
func (p *memoryCacheProvider) Invalidate(_ context.Context, key string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.entries, key)

	return nil
}

// InvalidatePrefix removes every key that starts with the given prefix.
func (p *memoryCacheProvider) InvalidatePrefix(_ context.Context, prefix string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	for key := range p.entries {
		if strings.HasPrefix(key, prefix) {
			delete(p.entries, key)
		}
	}

	return nil
}
