package middleware

import (
	"net/http"
	"strings"
	"sync"

	"github.com/Eursukkul/shareit/config"
	shared "github.com/Eursukkul/shareit/pkg/middleware"
	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

type rateLimiter struct {
	limiters sync.Map
	rps      rate.Limit
	burst    int
}

// RateLimit throttles each acting user (or remote IP for anonymous calls)
// with a token bucket. Requests over the limit get 429.
func RateLimit(cfg config.RateLimitConfig) echo.MiddlewareFunc {
	burst := cfg.Burst
	if burst <= 0 {
		burst = 5
	}
	l := &rateLimiter{rps: rate.Limit(cfg.RPS), burst: burst}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !l.getLimiter(limitKey(c)).Allow() {
				return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
			}
			return next(c)
		}
	}
}

func limitKey(c echo.Context) string {
	if id := strings.TrimSpace(c.Request().Header.Get(shared.UserIDHeader)); id != "" {
		return "user:" + id
	}
	return "ip:" + c.RealIP()
}

func (l *rateLimiter) getLimiter(key string) *rate.Limiter {
	if v, ok := l.limiters.Load(key); ok {
		return v.(*rate.Limiter)
	}
	actual, _ := l.limiters.LoadOrStore(key, rate.NewLimiter(l.rps, l.burst))
	return actual.(*rate.Limiter)
}
