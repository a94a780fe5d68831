package dbcheck

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/formguard/formguard/pkg/constraint"
)

// RedisConfig holds Redis connection settings.
type RedisConfig struct {
	ConnectionURL  string        `env:"REDIS_URL,required" envDefault:"redis://localhost:6379/0"`
	RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"5s"`
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"30s"`
}

// ConnectRedis establishes a Redis connection with retry, bounded by the
// configured connect timeout.
func ConnectRedis(ctx context.Context, cfg RedisConfig) (*redis.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	opt, err := redis.ParseURL(cfg.ConnectionURL)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseRedisURL, err)
	}

	for range cfg.RetryAttempts {
		client := redis.NewClient(opt)
		if err := client.Ping(ctx).Err(); err == nil {
			return client, nil
		}
		_ = client.Close()

		select {
		case <-ctx.Done():
			return nil, errors.Join(ErrRedisNotReady, ctx.Err())
		default:
			time.Sleep(cfg.RetryInterval)
		}
	}

	return nil, ErrRedisNotReady
}

// Cache stores lookup outcomes keyed by the validated value. Get returns
// (outcome, hit, error); a miss is not an error.
type Cache interface {
	Get(ctx context.Context, key string) (bool, bool, error)
	Set(ctx context.Context, key string, outcome bool, ttl time.Duration) error
}

// RedisCache is a Cache backed by a Redis client.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache wraps a connected Redis client.
func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

func (c *RedisCache) Get(ctx context.Context, key string) (bool, bool, error) {
	val, err := c.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return false, false, nil
	}
	if err != nil {
		return false, false, err
	}
	return val == "1", true, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, outcome bool, ttl time.Duration) error {
	val := "0"
	if outcome {
		val = "1"
	}
	return c.client.Set(ctx, key, val, ttl).Err()
}

// CachedLookup decorates a lookup with a cache for hot values. Cache
// failures are treated as misses so the inner lookup stays authoritative.
type CachedLookup struct {
	inner  constraint.Lookup
	cache  Cache
	prefix string
	ttl    time.Duration
}

// NewCachedLookup wraps inner with cache. The prefix namespaces cache keys
// so independent lookups sharing one cache cannot collide.
func NewCachedLookup(inner constraint.Lookup, cache Cache, prefix string, ttl time.Duration) (*CachedLookup, error) {
	if inner == nil {
		return nil, ErrNilLookup
	}
	if cache == nil {
		return nil, ErrNilCache
	}
	return &CachedLookup{inner: inner, cache: cache, prefix: prefix, ttl: ttl}, nil
}

// Lookup consults the cache first and falls through to the inner lookup on
// miss or cache error, writing the fresh outcome back best-effort.
func (l *CachedLookup) Lookup(ctx context.Context, value any) (bool, error) {
	key := fmt.Sprintf("%s:%v", l.prefix, value)

	if outcome, hit, err := l.cache.Get(ctx, key); err == nil && hit {
		return outcome, nil
	}

	outcome, err := l.inner.Lookup(ctx, value)
	if err != nil {
		return false, err
	}

	_ = l.cache.Set(ctx, key, outcome, l.ttl)
	return outcome, nil
}
