package security

import (
	"sync"
	"time"
)

// RateLimiter is a per-client token bucket. Join codes are only five
// characters, so the join and create endpoints get throttled to keep
// code guessing impractical.
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*bucket
	rate    int
	window  time.Duration
}

type bucket struct {
	tokens     int
	lastRefill time.Time
}

// NewRateLimiter allows rate requests per client per window
func NewRateLimiter(rate int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		clients: make(map[string]*bucket),
		rate:    rate,
		window:  window,
	}
	go rl.cleanup()
	return rl
}

// Allow reports whether a request from the client may proceed
func (rl *RateLimiter) Allow(client string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	b, ok := rl.clients[client]
	if !ok {
		b = &bucket{tokens: rl.rate, lastRefill: now}
		rl.clients[client] = b
	}

	if now.Sub(b.lastRefill) >= rl.window {
		b.tokens = rl.rate
		b.lastRefill = now
	}

	if b.tokens > 0 {
		b.tokens--
		return true
	}
	return false
}

// cleanup drops buckets that have been idle long enough to be full again
func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		for client, b := range rl.clients {
			if now.Sub(b.lastRefill) > rl.window*2 {
				delete(rl.clients, client)
			}
		}
		rl.mu.Unlock()
	}
}
