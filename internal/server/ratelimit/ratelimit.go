// Package ratelimit bounds request rates per client with token buckets
// keyed by route rules.
package ratelimit

import (
	"sync"
	"time"
)

// bucketIdleTTL is how long an untouched bucket survives before the
// cleanup pass drops it.
const bucketIdleTTL = time.Hour

// Rule bounds one route. Pattern uses the server's route syntax: an HTTP
// method followed by a path whose "{...}" segments match any single path
// element, e.g. "DELETE /analysis/{id}". A Limit of zero or less exempts
// the route entirely.
type Rule struct {
	Pattern string
	Limit   int // requests per Window
	Window  time.Duration
	Burst   int // bucket capacity; defaults to Limit when 0
}

// Info reports the limiter's decision for one request.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// Config holds limiter configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	Trusted         map[string]bool
	Rules           []Rule
}

// bucket is one client's budget for one rule scope. All access happens
// under the limiter's mutex, and the refill timestamp doubles as the
// last-use marker the cleanup pass reads.
type bucket struct {
	capacity   float64
	refillRate float64 // tokens per second
	tokens     float64
	updated    time.Time
}

// take refills the bucket for the elapsed time, then consumes one token
// if available. It reports the decision, the remaining whole tokens, and
// when the bucket is full again.
func (b *bucket) take(now time.Time) (allowed bool, remaining int, reset time.Time) {
	elapsed := now.Sub(b.updated).Seconds()
	b.tokens = min(b.capacity, b.tokens+elapsed*b.refillRate)
	b.updated = now

	if b.tokens >= 1 {
		b.tokens--
		allowed = true
	}

	remaining = int(b.tokens)
	reset = now
	if b.tokens < b.capacity {
		reset = now.Add(time.Duration((b.capacity - b.tokens) / b.refillRate * float64(time.Second)))
	}
	return allowed, remaining, reset
}

// Limiter applies per-client token buckets, one per matched rule.
type Limiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	config  *Config
	ticker  *time.Ticker
	done    chan struct{}
}

// NewLimiter creates a rate limiter and, when cleanup is configured,
// starts its background reaper.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = &Config{
			Enabled:         true,
			DefaultLimit:    300,
			DefaultWindow:   time.Minute,
			CleanupInterval: 5 * time.Minute,
		}
	}

	l := &Limiter{
		buckets: make(map[string]*bucket),
		config:  config,
	}

	if config.Enabled && config.CleanupInterval > 0 {
		l.ticker = time.NewTicker(config.CleanupInterval)
		l.done = make(chan struct{})
		go l.reap()
	}

	return l
}

// Allow decides whether the client may perform the request now. Requests
// matching the same rule share one bucket, so every DELETE /analysis/{id}
// draws from the same per-client budget regardless of the ID.
func (l *Limiter) Allow(clientID, method, path string) (bool, Info) {
	if !l.config.Enabled || l.config.Trusted[clientID] {
		return true, Info{Allowed: true}
	}

	limit := l.config.DefaultLimit
	window := l.config.DefaultWindow
	burst := l.config.DefaultLimit
	scope := method + " " + path

	if rule := matchRule(method, path, l.config.Rules); rule != nil {
		if rule.Limit <= 0 {
			return true, Info{Allowed: true}
		}
		limit = rule.Limit
		window = rule.Window
		burst = rule.Burst
		if burst <= 0 {
			burst = rule.Limit
		}
		scope = rule.Pattern
	}

	now := time.Now()

	l.mu.Lock()
	key := clientID + " " + scope
	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{
			capacity:   float64(burst),
			refillRate: float64(limit) / window.Seconds(),
			tokens:     float64(burst),
			updated:    now,
		}
		l.buckets[key] = b
	}
	allowed, remaining, reset := b.take(now)
	l.mu.Unlock()

	info := Info{
		Allowed:   allowed,
		Limit:     limit,
		Remaining: remaining,
		ResetTime: reset,
	}
	if !allowed {
		if wait := time.Until(reset); wait > 0 {
			info.RetryAfter = wait
		}
	}
	return allowed, info
}

// reap periodically drops buckets that have sat idle past the TTL.
func (l *Limiter) reap() {
	for {
		select {
		case <-l.ticker.C:
			cutoff := time.Now().Add(-bucketIdleTTL)
			l.mu.Lock()
			for key, b := range l.buckets {
				if b.updated.Before(cutoff) {
					delete(l.buckets, key)
				}
			}
			l.mu.Unlock()
		case <-l.done:
			return
		}
	}
}

// Stop ends the cleanup goroutine.
func (l *Limiter) Stop() {
	if l.ticker != nil {
		l.ticker.Stop()
	}
	if l.done != nil {
		close(l.done)
	}
}
