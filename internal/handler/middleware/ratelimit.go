package middleware

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"repair-storefront/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// rateLimiterStore holds a limiter per client IP. Only the booking endpoint
// is limited; catalog reads go through the cache. Entries are never evicted;
// the map is bounded by the number of distinct client IPs per process life.
type rateLimiterStore struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

func (s *rateLimiterStore) getLimiter(ip string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	limiter, exists := s.limiters[ip]
	if !exists {
		limiter = rate.NewLimiter(s.limit, s.burst)
		s.limiters[ip] = limiter
	}
	return limiter
}

// InquiryRateLimit limits booking submissions per client IP. A non-positive
// per-minute budget disables the limit instead of dividing by zero.
func InquiryRateLimit(cfg config.RateLimitConfig, logger *slog.Logger) gin.HandlerFunc {
	if cfg.InquiryPerMinute <= 0 {
		logger.Warn("booking rate limit disabled", "per_minute", cfg.InquiryPerMinute)
		return func(c *gin.Context) {
			c.Next()
		}
	}

	store := &rateLimiterStore{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Every(time.Minute / time.Duration(cfg.InquiryPerMinute)),
		burst:    cfg.InquiryBurst,
	}

	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !store.getLimiter(ip).Allow() {
			logger.Warn("rate limit exceeded on booking endpoint", "ip", ip)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many requests. Try again later.",
			})
			return
		}
		c.Next()
	}
}
