package auth

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const limiterMaxEntries = 1024

// loginLimiter throttles sign-in attempts per email before the care store is
// ever contacted. Entries are evicted oldest-first once the map grows past
// limiterMaxEntries.
type loginLimiter struct {
	mu       sync.Mutex
	limit    rate.Limit
	burst    int
	attempts map[string]*limiterEntry
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func newLoginLimiter(maxAttemptsPerMinute int) *loginLimiter {
	if maxAttemptsPerMinute <= 0 {
		maxAttemptsPerMinute = 10
	}
	return &loginLimiter{
		limit:    rate.Limit(float64(maxAttemptsPerMinute) / 60.0),
		burst:    maxAttemptsPerMinute,
		attempts: make(map[string]*limiterEntry),
	}
}

func (l *loginLimiter) Allow(email string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry, ok := l.attempts[email]
	if !ok {
		if len(l.attempts) >= limiterMaxEntries {
			l.evictOldestLocked()
		}
		entry = &limiterEntry{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.attempts[email] = entry
	}
	entry.lastSeen = time.Now()
	return entry.limiter.Allow()
}

func (l *loginLimiter) evictOldestLocked() {
	var oldestKey string
	var oldestSeen time.Time
	for key, entry := range l.attempts {
		if oldestKey == "" || entry.lastSeen.Before(oldestSeen) {
			oldestKey = key
			oldestSeen = entry.lastSeen
		}
	}
	if oldestKey != "" {
		delete(l.attempts, oldestKey)
	}
}
