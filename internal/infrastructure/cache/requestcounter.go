package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const requestCounterPrefix = "apireq:"

// RequestCounter tracks per-tenant API request counts per calendar day in
// Redis. Keys carry the day in their name and expire shortly after the day
// ends, which gives the daily reset for free.
type RequestCounter struct {
	client *redis.Client
}

func NewRequestCounter(client *redis.Client) *RequestCounter {
	return &RequestCounter{client: client}
}

// Incr increments today's counter for the tenant and returns the new count.
func (c *RequestCounter) Incr(ctx context.Context, tenantID uint, now time.Time) (int64, error) {
	key := c.key(tenantID, now)

	pipe := c.client.Pipeline()
	incr := pipe.Incr(ctx, key)
	// Expire one hour past midnight so in-flight requests at the boundary
	// still see the old key.
	endOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
	pipe.ExpireAt(ctx, key, endOfDay.Add(time.Hour))

	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("failed to increment request counter: %w", err)
	}

	return incr.Val(), nil
}

// Current returns today's count for the tenant without incrementing.
func (c *RequestCounter) Current(ctx context.Context, tenantID uint, now time.Time) (int64, error) {
	val, err := c.client.Get(ctx, c.key(tenantID, now)).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read request counter: %w", err)
	}
	return val, nil
}

func (c *RequestCounter) key(tenantID uint, now time.Time) string {
	return fmt.Sprintf("%s%d:%s", requestCounterPrefix, tenantID, now.Format("2006-01-02"))
}
