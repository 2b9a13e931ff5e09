package chembl

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pharmatlas/targetroll/graph"
	"github.com/pharmatlas/targetroll/target"
)

// DefaultCacheTTL is how long cached target records live. ChEMBL records
// change only between releases, so a long TTL is safe.
const DefaultCacheTTL = 24 * time.Hour

const cacheKeyPrefix = "targetroll:target:"

// TargetCache is a read-through Redis cache in front of a TargetFinder.
// Only individual target records are cached, never traversal results.
// Cache failures are logged and degrade to a direct lookup, so the cache
// can never make a working collaborator fail.
type TargetCache struct {
	inner  graph.TargetFinder
	rdb    *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// CacheOption configures a TargetCache.
type CacheOption func(*TargetCache)

// WithCacheTTL overrides the record expiry.
func WithCacheTTL(ttl time.Duration) CacheOption {
	return func(c *TargetCache) {
		c.ttl = ttl
	}
}

// WithCacheLogger sets the structured logger for cache diagnostics.
func WithCacheLogger(logger *slog.Logger) CacheOption {
	return func(c *TargetCache) {
		c.logger = logger
	}
}

// NewTargetCache wraps a TargetFinder with a Redis read-through cache.
func NewTargetCache(rdb *redis.Client, inner graph.TargetFinder, opts ...CacheOption) *TargetCache {
	c := &TargetCache{
		inner:  inner,
		rdb:    rdb,
		ttl:    DefaultCacheTTL,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FindTarget returns the cached record for id, or falls through to the
// inner finder and populates the cache. Not-found results from the inner
// finder are not cached.
func (c *TargetCache) FindTarget(ctx context.Context, id string) (target.Target, error) {
	key := cacheKeyPrefix + id

	data, err := c.rdb.Get(ctx, key).Bytes()
	if err == nil {
		var t target.Target
		if err := json.Unmarshal(data, &t); err == nil {
			return t, nil
		}
		c.logger.Warn("discarding corrupt cache entry", "key", key)
	} else if err != redis.Nil {
		c.logger.Warn("cache read failed", "key", key, "error", err)
	}

	t, err := c.inner.FindTarget(ctx, id)
	if err != nil {
		return target.Target{}, err
	}

	if data, err := json.Marshal(t); err == nil {
		if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
			c.logger.Warn("cache write failed", "key", key, "error", err)
		}
	}
	return t, nil
}
