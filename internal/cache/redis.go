package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/contenthub/contenthub-server/pkg/metrics"
)

// ErrMiss is returned by Get when the key is absent or expired.
var ErrMiss = errors.New("cache miss")

// RedisCache stores JSON-encoded values in Redis under a common prefix.
type RedisCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisCache creates a Redis-backed cache. Prefix may be empty.
func NewRedisCache(client *redis.Client, prefix string, ttl time.Duration) *RedisCache {
	if prefix == "" {
		prefix = "cache:"
	}
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &RedisCache{client: client, prefix: prefix, ttl: ttl}
}

func (r *RedisCache) key(k string) string {
	return r.prefix + k
}

// Get decodes the cached value for k into dst.
func (r *RedisCache) Get(ctx context.Context, k string, dst interface{}) error {
	b, err := r.client.Get(ctx, r.key(k)).Bytes()
	if err != nil {
		if err == redis.Nil {
			metrics.CacheLookups.WithLabelValues(k, "miss").Inc()
			return ErrMiss
		}
		metrics.CacheLookups.WithLabelValues(k, "error").Inc()
		return err
	}
	if err := json.Unmarshal(b, dst); err != nil {
		metrics.CacheLookups.WithLabelValues(k, "error").Inc()
		return err
	}
	metrics.CacheLookups.WithLabelValues(k, "hit").Inc()
	return nil
}

func (r *RedisCache) Set(ctx context.Context, k string, v interface{}) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, r.key(k), b, r.ttl).Err()
}

func (r *RedisCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	full := make([]string, 0, len(keys))
	for _, k := range keys {
		full = append(full, r.key(k))
	}
	return r.client.Del(ctx, full...).Err()
}
