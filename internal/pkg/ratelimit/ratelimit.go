// Package ratelimit provides a fixed-window request limiter keyed by an
// arbitrary string (usually the client IP). Windows live in a size-bounded
// expiring cache so an address scan cannot grow memory without limit.
package ratelimit

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"fairway/internal/pkg/clock"
)

type window struct {
	start time.Time
	count int
}

type Limiter struct {
	mu      sync.Mutex
	windows *expirable.LRU[string, *window]
	max     int
	span    time.Duration
	clock   clock.Clock
}

// New builds a limiter allowing max requests per span for each key. maxKeys
// bounds how many distinct keys are tracked at once.
func New(max int, span time.Duration, maxKeys int, clk clock.Clock) *Limiter {
	return &Limiter{
		windows: expirable.NewLRU[string, *window](maxKeys, nil, span),
		max:     max,
		span:    span,
		clock:   clk,
	}
}

// Allow reports whether the key may make another request and counts it if so.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock.Now()
	w, ok := l.windows.Get(key)
	if !ok || now.Sub(w.start) >= l.span {
		l.windows.Add(key, &window{start: now, count: 1})
		return true
	}
	if w.count >= l.max {
		return false
	}
	w.count++
	return true
}

// Remaining reports how many requests the key has left in its current window.
func (l *Limiter) Remaining(key string) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	w, ok := l.windows.Get(key)
	if !ok || l.clock.Now().Sub(w.start) >= l.span {
		return l.max
	}
	if w.count >= l.max {
		return 0
	}
	return l.max - w.count
}
