package server

import (
	"sync"
	"time"
)

// RateLimiter implements a token bucket per client key. Every key shares the
// same requests-per-minute limit; buckets are created on first use.
type RateLimiter struct {
	mu      sync.Mutex
	rpm     int
	buckets map[string]*tokenBucket
	now     func() time.Time
}

type tokenBucket struct {
	tokens     float64
	lastRefill time.Time
}

// NewRateLimiter creates a limiter allowing rpm requests per minute per key.
// rpm <= 0 disables limiting.
func NewRateLimiter(rpm int) *RateLimiter {
	return &RateLimiter{
		rpm:     rpm,
		buckets: make(map[string]*tokenBucket),
		now:     time.Now,
	}
}

// burst allows ~10 seconds worth of requests, minimum 10
func (r *RateLimiter) burst() float64 {
	b := float64(r.rpm) / 6
	if b < 10 {
		b = 10
	}
	return b
}

// Allow reports whether a request from key may proceed, consuming a token
func (r *RateLimiter) Allow(key string) bool {
	if r.rpm <= 0 {
		return true
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	bucket, ok := r.buckets[key]
	if !ok {
		bucket = &tokenBucket{tokens: r.burst(), lastRefill: now}
		r.buckets[key] = bucket
	}

	// Refill tokens based on time elapsed
	elapsed := now.Sub(bucket.lastRefill).Seconds()
	bucket.tokens += elapsed * float64(r.rpm) / 60
	if limit := r.burst(); bucket.tokens > limit {
		bucket.tokens = limit
	}
	bucket.lastRefill = now

	if bucket.tokens >= 1 {
		bucket.tokens--
		return true
	}
	return false
}

// Prune drops buckets idle long enough to have refilled completely
func (r *RateLimiter) Prune() int {
	if r.rpm <= 0 {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	idle := time.Duration(r.burst() / float64(r.rpm) * float64(time.Minute))
	now := r.now()
	removed := 0
	for key, b := range r.buckets {
		if now.Sub(b.lastRefill) >= idle {
			delete(r.buckets, key)
			removed++
		}
	}
	return removed
}
