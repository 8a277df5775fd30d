package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// ScheduleCache stores rendered day views in Redis, keyed by duty date. The
// grid config and school timezone are fixed per deployment, so the date is
// the whole key. Writes to bookings or the roster invalidate the day they
// touch.
type ScheduleCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func New(rdb *redis.Client, ttl time.Duration) *ScheduleCache {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &ScheduleCache{rdb: rdb, ttl: ttl}
}

func viewKey(dutyDate string) string {
	return "schedule:view:" + dutyDate
}

// GetDayView returns the cached payload for a date, or (nil, nil) on a miss.
func (c *ScheduleCache) GetDayView(ctx context.Context, dutyDate string) ([]byte, error) {
	if c == nil || c.rdb == nil {
		return nil, nil
	}
	payload, err := c.rdb.Get(ctx, viewKey(dutyDate)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return payload, nil
}

func (c *ScheduleCache) SetDayView(ctx context.Context, dutyDate string, payload []byte) error {
	if c == nil || c.rdb == nil {
		return nil
	}
	return c.rdb.Set(ctx, viewKey(dutyDate), payload, c.ttl).Err()
}

func (c *ScheduleCache) InvalidateDay(ctx context.Context, dutyDate string) error {
	if c == nil || c.rdb == nil {
		return nil
	}
	return c.rdb.Del(ctx, viewKey(dutyDate)).Err()
}

// ReadyCheck pings Redis for /readyz.
func ReadyCheck(rdb *redis.Client) func(context.Context) error {
	return func(ctx context.Context) error {
		if rdb == nil {
			return errors.New("redis not configured")
		}
		return rdb.Ping(ctx).Err()
	}
}
