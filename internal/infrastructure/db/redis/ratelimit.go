package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimiter implements fixed-window request counting backed by Redis.
// Key format: ratelimit:<client>:<window_start_unix>
type RateLimiter struct {
	client *redis.Client
	max    int64
	window time.Duration
}

// NewRateLimiter creates a RateLimiter allowing max requests per window.
// Window boundaries are aligned to whole seconds, so windows shorter than a
// second fall back to the default.
func NewRateLimiter(client *redis.Client, max int, window time.Duration) *RateLimiter {
	if max <= 0 {
		max = 100
	}
	if window < time.Second {
		window = 15 * time.Minute
	}
	return &RateLimiter{client: client, max: int64(max), window: window}
}

// Allow reports whether the client identified by key may make another request
// in the current window. The counter key expires with the window, so stale
// windows clean themselves up.
func (l *RateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	k := l.key(key)

	n, err := l.client.Incr(ctx, k).Result()
	if err != nil {
		return false, fmt.Errorf("rate limit incr: %w", err)
	}
	if n == 1 {
		if err := l.client.Expire(ctx, k, l.window).Err(); err != nil {
			return false, fmt.Errorf("rate limit expire: %w", err)
		}
	}
	return n <= l.max, nil
}

func (l *RateLimiter) key(client string) string {
	windowStart := time.Now().Truncate(l.window).Unix()
	return fmt.Sprintf("ratelimit:%s:%d", client, windowStart)
}
