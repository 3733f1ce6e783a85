package ratelimiter

import (
	"context"
	"time"
)

const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

type Config struct {
	RequestsPerTimeFrame int
	TimeFrame            time.Duration
	Enabled              bool
	Backend              string
}

// Result describes the state of a client's window after counting the current request.
type Result struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetAfter time.Duration
}

type Limiter interface {
	Allow(ctx context.Context, key string) (Result, error)
}

func newResult(limit, count int, resetAfter time.Duration) Result {
	remaining := limit - count
	if remaining < 0 {
		remaining = 0
	}
	return Result{
		Allowed:    count <= limit,
		Limit:      limit,
		Remaining:  remaining,
		ResetAfter: resetAfter,
	}
}
