// Package redis backs the request rate limiter with Redis counters.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultTimeout = 5 * time.Second

// Config drives the connection to the counter store.
type Config struct {
	Addr string
	DB   int
	// Timeout bounds the dial and the startup verification ping. Zero means
	// defaultTimeout.
	Timeout time.Duration
}

// Connect builds the client the rate limiter runs on and verifies it with a
// ping before the server starts taking traffic. Throttling fails open at
// request time, so an unreachable Redis is only surfaced here, at startup.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		DB:          cfg.DB,
		DialTimeout: timeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}
