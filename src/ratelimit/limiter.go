package ratelimit

import (
	"fmt"
	"sync"
)

// DefaultMaxQueries is the per-session analysis cap
const DefaultMaxQueries = 5

// SessionLimiter caps the number of analyses a session may run. It is a
// soft cap: state lives in process memory and a client that mints a new
// session ID starts a fresh counter. The pipeline itself never consults
// it; the owning request layer checks CanQuery before invoking the
// pipeline and calls Increment after a successful run.
type SessionLimiter struct {
	mu         sync.Mutex
	maxQueries int
	counts     map[string]int
}

func NewSessionLimiter(maxQueries int) *SessionLimiter {
	if maxQueries <= 0 {
		maxQueries = DefaultMaxQueries
	}
	return &SessionLimiter{
		maxQueries: maxQueries,
		counts:     make(map[string]int),
	}
}

// CanQuery reports whether the session is below its cap
func (l *SessionLimiter) CanQuery(sessionID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.counts[sessionID] < l.maxQueries
}

// Increment records one completed analysis for the session
func (l *SessionLimiter) Increment(sessionID string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.counts[sessionID]++
}

// Remaining returns how many analyses the session has left
func (l *SessionLimiter) Remaining(sessionID string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	remaining := l.maxQueries - l.counts[sessionID]
	if remaining < 0 {
		return 0
	}
	return remaining
}

// MaxQueries returns the configured cap
func (l *SessionLimiter) MaxQueries() int {
	return l.maxQueries
}

// UsageMessage returns a user-facing description of the session's quota
func (l *SessionLimiter) UsageMessage(sessionID string) string {
	remaining := l.Remaining(sessionID)
	if remaining > 0 {
		return fmt.Sprintf("You have %d of %d queries remaining in this session.", remaining, l.maxQueries)
	}
	return fmt.Sprintf("Session limit reached (%d queries used). Start a new session to continue.", l.maxQueries)
}
