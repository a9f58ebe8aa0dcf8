package cache

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// ScheduleCache keeps rendered day-schedule payloads for a short TTL.
// A nil *ScheduleCache is valid and disables caching, so callers never
// branch on configuration.
type ScheduleCache struct {
	client *redis.Client
	ttl    time.Duration
}

func New(redisURL string) *ScheduleCache {
	if redisURL == "" {
		return nil
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil
	}

	return &ScheduleCache{
		client: redis.NewClient(opt),
		ttl:    30 * time.Second,
	}
}

func key(barber, date string) string {
	return "agenda:" + barber + ":" + date
}

func (c *ScheduleCache) Get(ctx context.Context, barber, date string) ([]byte, bool) {
	if c == nil {
		return nil, false
	}
	payload, err := c.client.Get(ctx, key(barber, date)).Bytes()
	if err != nil {
		return nil, false
	}
	return payload, true
}

func (c *ScheduleCache) Set(ctx context.Context, barber, date string, payload []byte) {
	if c == nil {
		return
	}
	c.client.Set(ctx, key(barber, date), payload, c.ttl)
}

func (c *ScheduleCache) Invalidate(ctx context.Context, barber, date string) {
	if c == nil {
		return
	}
	c.client.Del(ctx, key(barber, date))
}
