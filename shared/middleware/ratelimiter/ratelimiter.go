// Package ratelimiter keeps a token bucket per caller identity.
package ratelimiter

import (
	"sync"
	"time"
)

type bucket struct {
	tokens   float64
	lastSeen time.Time
}

// UserRateLimiter hands out `rate` tokens per second to every identity,
// up to `capacity`. Idle buckets are dropped after `expiration`.
type UserRateLimiter struct {
	mu         sync.Mutex
	buckets    map[string]*bucket
	rate       float64
	capacity   float64
	expiration time.Duration
	now        func() time.Time

	stop     chan struct{}
	stopOnce sync.Once
}

func New(rate float64, capacity float64, expiration time.Duration) *UserRateLimiter {
	rl := &UserRateLimiter{
		buckets:    make(map[string]*bucket),
		rate:       rate,
		capacity:   capacity,
		expiration: expiration,
		now:        time.Now,
		stop:       make(chan struct{}),
	}
	if expiration > 0 {
		go rl.janitor()
	}
	return rl
}

// Allow takes one token from identity's bucket if there is one.
func (rl *UserRateLimiter) Allow(identity string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	b, ok := rl.buckets[identity]
	if !ok {
		b = &bucket{tokens: rl.capacity, lastSeen: now}
		rl.buckets[identity] = b
	}

	b.tokens += now.Sub(b.lastSeen).Seconds() * rl.rate
	if b.tokens > rl.capacity {
		b.tokens = rl.capacity
	}
	b.lastSeen = now

	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

// Stop terminates the cleanup goroutine. Safe to call more than once.
func (rl *UserRateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}

func (rl *UserRateLimiter) janitor() {
	ticker := time.NewTicker(rl.expiration)
	defer ticker.Stop()
	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.evictIdle()
		}
	}
}

func (rl *UserRateLimiter) evictIdle() {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	cutoff := rl.now().Add(-rl.expiration)
	for id, b := range rl.buckets {
		if b.lastSeen.Before(cutoff) {
			delete(rl.buckets, id)
		}
	}
}

func (rl *UserRateLimiter) size() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.buckets)
}
