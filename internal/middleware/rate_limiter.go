package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// A bucket refills completely within one minute,
// dropping a client idle longer than this loses no state.
const _LimiterIdleTTL = 2 * time.Minute

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// rateLimiterStore holds one limiter per client IP.
type rateLimiterStore struct {
	limiters  map[string]*limiterEntry
	mu        sync.Mutex
	now       func() time.Time
	lastSweep time.Time

	requestsPerMinute int
}

func newRateLimiterStore(requestsPerMinute int, now func() time.Time) *rateLimiterStore {
	return &rateLimiterStore{
		limiters:          make(map[string]*limiterEntry),
		now:               now,
		lastSweep:         now(),
		requestsPerMinute: max(requestsPerMinute, 1),
	}
}

func (s *rateLimiterStore) getLimiter(ip string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()

	if now.Sub(s.lastSweep) >= _LimiterIdleTTL {
		s.sweep(now)
	}

	entry, exists := s.limiters[ip]
	if !exists {
		entry = &limiterEntry{
			limiter: rate.NewLimiter(
				rate.Every(time.Minute/time.Duration(s.requestsPerMinute)),
				s.requestsPerMinute,
			),
		}

		s.limiters[ip] = entry
	}

	entry.lastSeen = now

	return entry.limiter
}

// sweep drops the clients idle for at least _LimiterIdleTTL.
// Caller holds the lock.
func (s *rateLimiterStore) sweep(now time.Time) {
	for ip, entry := range s.limiters {
		if now.Sub(entry.lastSeen) >= _LimiterIdleTTL {
			delete(s.limiters, ip)
		}
	}

	s.lastSweep = now
}

// RateLimit allows requestsPerMinute requests per client IP, bursting up to the same amount.
// The client IP honors forwarding headers only from the engine's trusted proxies.
func RateLimit(requestsPerMinute int, logger *zap.Logger) gin.HandlerFunc {
	return rateLimit(
		newRateLimiterStore(requestsPerMinute, time.Now),
		logger,
	)
}

func rateLimit(store *rateLimiterStore, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()

		if !store.getLimiter(ip).Allow() {
			logger.Warn(
				"rate limit exceeded",

				zap.String("ip", ip),
				zap.String("requestID", c.GetString(KeyRequestID)),
			)

			c.AbortWithStatusJSON(
				http.StatusTooManyRequests,
				gin.H{"error": "rate limit exceeded, try again later"},
			)

			return
		}

		c.Next()
	}
}
