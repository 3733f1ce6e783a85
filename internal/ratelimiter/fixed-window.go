package ratelimiter

import (
	"context"
	"sync"
	"time"
)

type window struct {
	count int
	start time.Time
}

// FixedWindowRateLimiter counts requests per client in process memory.
type FixedWindowRateLimiter struct {
	sync.Mutex
	clients map[string]*window
	limit   int
	window  time.Duration
	now     func() time.Time
	done    chan struct{}
	once    sync.Once
}

func NewFixedWindowLimiter(limit int, timeFrame time.Duration) *FixedWindowRateLimiter {
	rl := &FixedWindowRateLimiter{
		clients: make(map[string]*window),
		limit:   limit,
		window:  timeFrame,
		now:     time.Now,
		done:    make(chan struct{}),
	}
	go rl.cleanup()
	return rl
}

func (rl *FixedWindowRateLimiter) cleanup() {
	ticker := time.NewTicker(rl.window)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.Lock()
			now := rl.now()
			for ip, w := range rl.clients {
				if now.Sub(w.start) >= rl.window {
					delete(rl.clients, ip)
				}
			}
			rl.Unlock()
		case <-rl.done:
			return
		}
	}
}

func (rl *FixedWindowRateLimiter) Allow(_ context.Context, ip string) (Result, error) {
	rl.Lock()
	defer rl.Unlock()

	now := rl.now()
	w, ok := rl.clients[ip]
	if !ok || now.Sub(w.start) >= rl.window {
		w = &window{start: now}
		rl.clients[ip] = w
	}
	w.count++

	return newResult(rl.limit, w.count, w.start.Add(rl.window).Sub(now)), nil
}

// Stop ends the cleanup goroutine.
func (rl *FixedWindowRateLimiter) Stop() {
	rl.once.Do(func() { close(rl.done) })
}
