// Package ratelimit provides keyed token-bucket rate limiting.
package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/pageforge/pageforge"
	"golang.org/x/time/rate"
)

var _ pageforge.Limiter = (*KeyLimiter)(nil)

// evictAfter is how long an unused key's limiter is kept around.
const evictAfter = 10 * time.Minute

// KeyLimiter provides per-key rate limiting using token buckets. Each key
// gets its own limiter, so one busy owner cannot starve the rest. Limiter
// state is held in memory and evicted after a period of disuse, bounding
// the map under a churning key population.
type KeyLimiter struct {
	mu       sync.Mutex
	limiters map[string]*entry
	rps      float64
	burst    int
}

type entry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewKeyLimiter creates a new KeyLimiter with the specified operations per
// second limit and burst size per key.
func NewKeyLimiter(rps float64, burst int) *KeyLimiter {
	if burst < 1 {
		burst = 1
	}
	return &KeyLimiter{
		limiters: make(map[string]*entry),
		rps:      rps,
		burst:    burst,
	}
}

// Wait blocks until the rate limit allows an operation for the key.
// Returns an error if the context is canceled before the wait completes.
func (k *KeyLimiter) Wait(ctx context.Context, key string) error {
	k.mu.Lock()
	now := time.Now()
	e, ok := k.limiters[key]
	if !ok {
		e = &entry{limiter: rate.NewLimiter(rate.Limit(k.rps), k.burst)}
		k.limiters[key] = e
	}
	e.lastSeen = now
	k.evictIdle(now)
	k.mu.Unlock()

	return e.limiter.Wait(ctx)
}

// evictIdle drops limiters not seen within the eviction window. Callers
// must hold the mutex.
func (k *KeyLimiter) evictIdle(now time.Time) {
	for key, e := range k.limiters {
		if now.Sub(e.lastSeen) > evictAfter {
			delete(k.limiters, key)
		}
	}
}

// Len returns the number of tracked keys.
func (k *KeyLimiter) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.limiters)
}
