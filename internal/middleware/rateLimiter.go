package middleware

import (
	"sync"

	"github.com/tutoragent/NotesAPI/internal/config"
	"golang.org/x/time/rate"
)

var limiterInstance = NewIPRateLimiter(rate.Limit(config.RATE_LIMIT_PER_SECOND), config.BURST_RATE_LIMIT_PER_SECOND)

// IPRateLimiter hands out one token bucket per client IP. Entries are never
// evicted, so the map grows with the distinct-IP count of the process
// lifetime.
type IPRateLimiter struct {
	buckets   map[string]*rate.Limiter
	mu        sync.RWMutex
	rateLimit rate.Limit
	burstRate int
}

func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	return &IPRateLimiter{buckets: make(map[string]*rate.Limiter), rateLimit: r, burstRate: b}
}

func (i *IPRateLimiter) GetLimiter(ip string) *rate.Limiter {
	i.mu.Lock()
	defer i.mu.Unlock()
	limiter, exists := i.buckets[ip]
	if !exists {
		limiter = rate.NewLimiter(i.rateLimit, i.burstRate)
		i.buckets[ip] = limiter
	}
	return limiter
}

//TODO: move the per-IP buckets into the redis store once a second instance
// runs behind a balancer
