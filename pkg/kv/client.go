// Package kv provides the durable key/value store client backing the WAL,
// the activity buffers, the review/approved queues, processing locks,
// quota counters, and conversation memory.
//
// Keyspace prefixes: wal:, act:<user_id>, approved:, reviewq:, quar:,
// lock:proc:<user_id>, quota:<provider>:<model>:<yyyy-mm-dd>, mem:<user_id>.
package kv

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Client wraps the Redis client. Components receive the narrow capability
// they need (a queue handle, a namespace) rather than a raw connection.
type Client struct {
	rdb *redis.Client
}

// NewClient connects to the KV store at url (redis:// form) and verifies
// the connection.
func NewClient(ctx context.Context, url string) (*Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid KV URL: %w", err)
	}
	rdb := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to ping KV store: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

// NewClientFromRedis wraps an existing Redis client (useful for testing
// against miniredis or a shared instance).
func NewClientFromRedis(rdb *redis.Client) *Client {
	return &Client{rdb: rdb}
}

// Redis exposes the underlying client to components in this module.
func (c *Client) Redis() *redis.Client {
	return c.rdb
}

// Health pings the store and returns the round-trip latency.
func (c *Client) Health(ctx context.Context) (time.Duration, error) {
	start := time.Now()
	if err := c.rdb.Ping(ctx).Err(); err != nil {
		return 0, fmt.Errorf("kv ping failed: %w", err)
	}
	return time.Since(start), nil
}

// Close releases the underlying connection pool.
func (c *Client) Close() error {
	return c.rdb.Close()
}
