package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"smart-task-analyzer/pkg/response"
)

// RateLimit applies a per-client-IP token bucket sized from config.
// Requests over the limit are rejected with 429 before reaching the
// handler, so they never consume an outbound model call.
func (m *Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		limiter := m.limiterFor(c.ClientIP())
		if !limiter.Allow() {
			m.l.Warnf(c.Request.Context(), "rate limit exceeded for %s", c.ClientIP())
			response.TooManyRequests(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

// limiterFor returns the limiter for a client IP. Limiters live in a
// size-capped LRU cache, so churning client IPs evict the least
// recently seen entry instead of growing the tracked set without bound.
func (m *Middleware) limiterFor(ip string) *rate.Limiter {
	if limiter, ok := m.limiters.Get(ip); ok {
		return limiter
	}

	perMin := m.cfg.RateLimitPerMin
	limiter := rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMin)), perMin)
	m.limiters.Add(ip, limiter)
	return limiter
}
