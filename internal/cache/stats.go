package cache

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

const statsKey = "admin:stats"

// StatsCache keeps the admin dashboard rollup in Redis for a short TTL so
// repeated dashboard refreshes don't re-aggregate the whole store. It fails
// open: any Redis error just means a cache miss.
type StatsCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewStatsCache returns nil when no Redis address is configured; callers
// treat a nil cache as disabled.
func NewStatsCache(addr string, ttl time.Duration) *StatsCache {
	if addr == "" {
		return nil
	}
	return &StatsCache{
		rdb: redis.NewClient(&redis.Options{Addr: addr}),
		ttl: ttl,
	}
}

func (c *StatsCache) Get(ctx context.Context) ([]byte, bool) {
	if c == nil {
		return nil, false
	}
	payload, err := c.rdb.Get(ctx, statsKey).Bytes()
	if err != nil {
		return nil, false
	}
	return payload, true
}

func (c *StatsCache) Set(ctx context.Context, payload []byte) {
	if c == nil {
		return
	}
	c.rdb.Set(ctx, statsKey, payload, c.ttl)
}
