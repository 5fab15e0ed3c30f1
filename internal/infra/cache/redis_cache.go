// Package cache provides the Redis-backed implementation of the domain's
// CacheProvider interface, used to cache provider and appointment listings.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"gobarber/config"
	"gobarber/internal/domain/lifecycle"
	"gobarber/internal/domain/service"
	"gobarber/internal/errors"

	"github.com/go-redis/redis/v8"
	"go.uber.org/fx"
)

const defaultTTL = 24 * time.Hour

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// redisCacheProvider implements service.CacheProvider on top of go-redis.
// Values are stored as JSON with a configured expiration.
type redisCacheProvider struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCacheProvider creates the Redis client and wires its lifecycle:
// the connection is pinged on start and closed on stop.
func NewRedisCacheProvider(params Params) (service.CacheProvider, error) {
	if params.Config.Redis == nil {
		return nil, errors.New("redis configuration must be provided")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     params.Config.Redis.Addr(),
		Password: params.Config.Redis.Password,
		DB:       params.Config.Redis.DB,
	})

	ttl := params.Config.Redis.TTL
	if ttl <= 0 {
		ttl = defaultTTL
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}
			params.Logger.Info("Connected to Redis", slog.String("addr", params.Config.Redis.Addr()))

			return nil
		},
		OnStop: func(context.Context) error {
			return errors.WithStack(client.Close())
		},
	})

	return &redisCacheProvider{client: client, ttl: ttl}, nil
}

// Save stores a value under the given key, serialized as JSON.
func (p *redisCacheProvider) Save(ctx context.Context, key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return errors.Wrap(err, "failed to marshal cache value")
	}

	if err := p.client.Set(ctx, key, payload, p.ttl).Err(); err != nil {
		return errors.Wrapf(err, "failed to save cache key %s", key)
	}

	return nil
}

// Recover loads the value stored under the given key into target.
// A missing key is a miss, not an error.
func (p *redisCacheProvider) Recover(ctx context.Context, key string, target any) (bool, error) {
	payload, err := p.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrapf(err, "failed to recover cache key %s", key)
	}

	if err := json.Unmarshal([]byte(payload), target); err != nil {
		return false, errors.Wrap(err, "failed to unmarshal cache value")
	}

	return true, nil
}

// Invalidate removes the given key from the cache.
func (p *redisCacheProvider) Invalidate(ctx context.Context, key string) error {
	if err := p.client.Del(ctx, key).Err(); err != nil {
		return errors.Wrapf(err, "failed to invalidate cache key %s", key)
	}

	return nil
}

// InvalidatePrefix removes every key that starts with the given prefix,
// scanning in batches so the server is never blocked by a KEYS call.
func (p *redisCacheProvider) InvalidatePrefix(ctx context.Context, prefix string) error {
	iter := p.client.Scan(ctx, 0, prefix+"*", 100).Iterator()

	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return errors.Wrapf(err, "failed to scan cache keys with prefix %s", prefix)
	}

	if len(keys) == 0 {
		return nil
	}

	if err := p.client.Del(ctx, keys...).Err(); err != nil {
		return errors.Wrapf(err, "failed to invalidate cache keys with prefix %s", prefix)
	}

	return nil
}
