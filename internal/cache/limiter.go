package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	rateLimitKeyPrefix  = "ratelimit:chatbot:"
	dailyLimitKeyPrefix = "daily_limit:"

	dailyLimitTTL = 24 * time.Hour
)

// incrementWindowCounter atomically increments the counter under key and, on
// the increment that opens the window (counter value 1), sets the window TTL.
// Subsequent increments within the window leave the TTL untouched, so the
// window does not slide.
func (c *Cache) incrementWindowCounter(ctx context.Context, key string, window time.Duration) (int64, error) {
	count, err := c.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("error incrementing counter: %w", err)
	}

	if count == 1 {
		if err := c.client.Expire(ctx, key, window).Err(); err != nil {
			return 0, fmt.Errorf("error setting counter window: %w", err)
		}
	}

	return count, nil
}

// IncrementRateLimit bumps the per-user chatbot counter for the current
// fixed window and returns the new value. The first request of a window
// starts its TTL.
func (c *Cache) IncrementRateLimit(ctx context.Context, userID string, window time.Duration) (int64, error) {
	return c.incrementWindowCounter(ctx, rateLimitKeyPrefix+userID, window)
}

// IncrementDailyLimit bumps the global chatbot counter of the given calendar
// day (formatted YYYY-MM-DD) and returns the new value. The key expires 24h
// after the day's first request.
func (c *Cache) IncrementDailyLimit(ctx context.Context, day string) (int64, error) {
	return c.incrementWindowCounter(ctx, dailyLimitKeyPrefix+day, dailyLimitTTL)
}
