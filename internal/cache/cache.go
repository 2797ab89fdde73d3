package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache is a thin best-effort Redis wrapper. A nil *Cache is a valid no-op
// cache, so callers never branch on whether Redis is configured.
type Cache struct {
	client *redis.Client
}

// New connects to Redis at addr. Returns nil (cache disabled) when addr is
// empty or the server is unreachable.
func New(addr, password string) *Cache {
	if addr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil
	}
	return &Cache{client: client}
}

// Get returns the cached value for key and whether it was present
func (c *Cache) Get(ctx context.Context, key string) (string, bool) {
	if c == nil {
		return "", false
	}
	value, err := c.client.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return value, true
}

// Set stores value under key with a TTL. Failures are dropped silently;
// the cache is an optimization, never a source of truth.
func (c *Cache) Set(ctx context.Context, key, value string, ttl time.Duration) {
	if c == nil {
		return
	}
	c.client.Set(ctx, key, value, ttl)
}

// Close releases the underlying connection pool
func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}
