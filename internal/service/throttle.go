package service

import (
	"sync"
	"time"
)

// LoginThrottle tracks recent failed login timestamps per client address for
// best-effort rate limiting. State is process-scoped and not durable across
// restarts; when the service runs as multiple processes each one counts
// independently.
type LoginThrottle struct {
	mu       sync.Mutex
	limit    int
	window   time.Duration
	attempts map[string][]time.Time
	now      func() time.Time
}

// NewLoginThrottle creates a throttle allowing limit failures per window.
func NewLoginThrottle(limit int, window time.Duration) *LoginThrottle {
	return &LoginThrottle{
		limit:    limit,
		window:   window,
		attempts: make(map[string][]time.Time),
		now:      time.Now,
	}
}

// Allowed reports whether the address may attempt a login. Entries older than
// the window are pruned as a side effect.
func (t *LoginThrottle) Allowed(ip string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	times, ok := t.attempts[ip]
	if !ok {
		return true
	}

	cutoff := t.now().Add(-t.window)
	kept := times[:0]
	for _, ts := range times {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}
	t.attempts[ip] = kept
	return len(kept) < t.limit
}

// RecordFailure notes a failed attempt for the address.
func (t *LoginThrottle) RecordFailure(ip string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.attempts[ip] = append(t.attempts[ip], t.now())
}

// Clear forgets the address after a successful login.
func (t *LoginThrottle) Clear(ip string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.attempts, ip)
}
