// Package entitycache memoizes platform entity handles. Resolving an
// entity is a transport round trip; delivery and recovery hit this cache
// instead of the platform on every send.
package entitycache

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/halfmoonlabs/chatloop/pkg/transport"
)

const (
	defaultSize = 1000
	defaultTTL  = 12 * time.Hour
	warmupLimit = 100
)

// Cache is an expiring LRU over transport entities.
type Cache struct {
	tr  transport.Transport
	lru *expirable.LRU[int64, *transport.Entity]
}

// New creates a cache over the transport. size <= 0 and ttl <= 0 fall back
// to the defaults.
func New(tr transport.Transport, size int, ttl time.Duration) *Cache {
	if size <= 0 {
		size = defaultSize
	}
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Cache{
		tr:  tr,
		lru: expirable.NewLRU[int64, *transport.Entity](size, nil, ttl),
	}
}

// Resolve returns the entity for a user, from cache when warm. A cold miss
// that fails resolution is retried once before the error surfaces.
func (c *Cache) Resolve(ctx context.Context, userID int64) (*transport.Entity, error) {
	if entity, ok := c.lru.Get(userID); ok {
		return entity, nil
	}

	entity, err := c.tr.ResolveEntity(ctx, userID)
	if err != nil {
		if transport.IsPermanent(err) {
			return nil, err
		}
		entity, err = c.tr.ResolveEntity(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve entity for user %d: %w", userID, err)
		}
	}

	c.lru.Add(userID, entity)
	return entity, nil
}

// Warmup pre-resolves entities for the given users, capped to the most
// recent warmupLimit. Failures are logged and skipped; a cold cache only
// costs latency on first send.
func (c *Cache) Warmup(ctx context.Context, userIDs []int64) {
	if len(userIDs) > warmupLimit {
		userIDs = userIDs[:warmupLimit]
	}
	warmed := 0
	for _, userID := range userIDs {
		if _, err := c.Resolve(ctx, userID); err != nil {
			slog.Debug("Entity warmup miss", "user_id", userID, "error", err)
			continue
		}
		warmed++
	}
	slog.Info("Entity cache warmed", "requested", len(userIDs), "warmed", warmed)
}

// Invalidate drops a cached entity, forcing re-resolution on next use.
func (c *Cache) Invalidate(userID int64) {
	c.lru.Remove(userID)
}

// Len returns the number of cached entities.
func (c *Cache) Len() int {
	return c.lru.Len()
}
