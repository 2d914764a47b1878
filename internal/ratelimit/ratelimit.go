// Package ratelimit implements the fixed-bucket request limiter guarding the
// contact form. Counts are kept in 60-second buckets per client key and summed
// over a trailing window; buckets older than the window are pruned lazily on
// each admission check, so no background sweep is needed. The bucket
// granularity means the enforced window can stretch up to one bucket past the
// nominal bound — acceptable for a deterrent.
package ratelimit

import (
	"sync"
	"time"
)

const bucketSeconds = 60

// Limiter admits at most `limit` requests per client key within `window`.
// All state is in-process; a restart resets every counter.
type Limiter struct {
	window time.Duration
	limit  int

	mu      sync.Mutex
	clients map[string]map[int64]int // client key -> minute bucket -> count
}

// New creates a Limiter with the given window and per-window request limit.
func New(window time.Duration, limit int) *Limiter {
	return &Limiter{
		window:  window,
		limit:   limit,
		clients: make(map[string]map[int64]int),
	}
}

// Admit reports whether a request from key at time now may proceed, and
// counts it if so. Rejected requests are not counted. Access is serialized
// under one mutex, so concurrent requests from the same client cannot
// overshoot the limit.
func (l *Limiter) Admit(key string, now time.Time) bool {
	windowStart := now.Unix() - int64(l.window/time.Second)

	l.mu.Lock()
	defer l.mu.Unlock()

	buckets, ok := l.clients[key]
	if !ok {
		buckets = make(map[int64]int)
		l.clients[key] = buckets
	}

	total := 0
	for bucket, count := range buckets {
		if bucket*bucketSeconds < windowStart {
			delete(buckets, bucket)
			continue
		}
		total += count
	}

	if total >= l.limit {
		return false
	}

	buckets[now.Unix()/bucketSeconds]++
	return true
}
