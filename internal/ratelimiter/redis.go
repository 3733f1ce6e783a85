package ratelimiter

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisFixedWindowLimiter shares the request windows between every instance of the API.
type RedisFixedWindowLimiter struct {
	rdb    *redis.Client
	limit  int
	window time.Duration
	prefix string
	now    func() time.Time
}

func NewRedisFixedWindowLimiter(rdb *redis.Client, limit int, timeFrame time.Duration) *RedisFixedWindowLimiter {
	return &RedisFixedWindowLimiter{
		rdb:    rdb,
		limit:  limit,
		window: timeFrame,
		prefix: "ratelimit",
		now:    time.Now,
	}
}

func (rl *RedisFixedWindowLimiter) Allow(ctx context.Context, ip string) (Result, error) {
	now := rl.now()
	start := now.Truncate(rl.window)
	key := fmt.Sprintf("%s:%s:%d", rl.prefix, ip, start.Unix())

	pipe := rl.rdb.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, rl.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return Result{Allowed: true, Limit: rl.limit, Remaining: rl.limit}, fmt.Errorf("redis rate limit: %w", err)
	}

	return newResult(rl.limit, int(incr.Val()), start.Add(rl.window).Sub(now)), nil
}
