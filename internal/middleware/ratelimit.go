package middleware

import (
	"net/http"
	"sync"

	"golang.org/x/time/rate"

	"github.com/ninalamo/itemsvc/internal/httputil"
	"github.com/ninalamo/itemsvc/internal/logging"
)

// RateLimiter provides per-client rate limiting keyed by remote address.
type RateLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.Mutex
	rate     rate.Limit
	burst    int
	logger   *logging.Logger
}

// NewRateLimiter creates a rate limiter allowing requestsPerSecond with the
// given burst per client.
func NewRateLimiter(requestsPerSecond, burst int, logger *logging.Logger) *RateLimiter {
	if logger == nil {
		logger = logging.NewDefault("ratelimit")
	}
	return &RateLimiter{
		limiters: make(map[string]*rate.Limiter),
		rate:     rate.Limit(requestsPerSecond),
		burst:    burst,
		logger:   logger,
	}
}

func (rl *RateLimiter) getLimiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	limiter, ok := rl.limiters[key]
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters[key] = limiter
	}
	return limiter
}

// Handler returns the rate limiting middleware handler.
func (rl *RateLimiter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := clientIP(r)
		if !rl.getLimiter(key).Allow() {
			rl.logger.WithField("client", key).Warn("rate limit exceeded")
			httputil.WriteError(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}
		next.ServeHTTP(w, r)
	})
}
