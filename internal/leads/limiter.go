package leads

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Limiter allows each client key a burst of n submissions, refilled evenly
// over window.
type Limiter struct {
	n      int
	every  rate.Limit
	window time.Duration
	now    func() time.Time

	mu      sync.Mutex
	clients map[string]*client
	swept   time.Time
}

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// LimiterOption customises a Limiter.
type LimiterOption func(*Limiter)

// WithLimiterClock overrides the time source (tests).
func WithLimiterClock(now func() time.Time) LimiterOption {
	return func(l *Limiter) {
		if now != nil {
			l.now = now
		}
	}
}

// NewLimiter allows n submissions per window for every key.
func NewLimiter(n int, window time.Duration, opts ...LimiterOption) *Limiter {
	if n <= 0 {
		n = 1
	}
	if window <= 0 {
		window = time.Minute
	}
	l := &Limiter{
		n:       n,
		every:   rate.Every(window / time.Duration(n)),
		window:  window,
		now:     time.Now,
		clients: map[string]*client{},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Allow reports whether key may submit now, consuming one token when it may.
func (l *Limiter) Allow(key string) bool {
	now := l.now()
	l.mu.Lock()
	defer l.mu.Unlock()

	l.sweep(now)
	c, ok := l.clients[key]
	if !ok {
		c = &client{limiter: rate.NewLimiter(l.every, l.n)}
		l.clients[key] = c
	}
	c.lastSeen = now
	return c.limiter.AllowN(now, 1)
}

// sweep forgets clients idle for a full window; their buckets are full again.
func (l *Limiter) sweep(now time.Time) {
	if now.Sub(l.swept) < l.window {
		return
	}
	l.swept = now
	for key, c := range l.clients {
		if now.Sub(c.lastSeen) >= l.window {
			delete(l.clients, key)
		}
	}
}
