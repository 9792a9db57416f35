package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "bm:url:"

// DefaultTTL applies when NewURLCache is given a non-positive ttl.
const DefaultTTL = time.Hour

// URLCache stores short code -> target url in Redis. Entries expire after
// the ttl, so a missed eviction is bounded.
type URLCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewURLCache(client *redis.Client, ttl time.Duration) *URLCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &URLCache{client: client, ttl: ttl}
}

// Get reports ok=false on a miss.
func (c *URLCache) Get(ctx context.Context, code string) (string, bool, error) {
	url, err := c.client.Get(ctx, key(code)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return url, true, nil
}

func (c *URLCache) Set(ctx context.Context, code, url string) error {
	return c.client.Set(ctx, key(code), url, c.ttl).Err()
}

func (c *URLCache) Delete(ctx context.Context, code string) error {
	return c.client.Del(ctx, key(code)).Err()
}

func key(code string) string { return keyPrefix + code }
