package middleware

import (
	"hotel-assistant/pkg/log"
)

// Middleware holds the gin middlewares shared by all deliveries.
type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// Config tunes the shared middlewares. A zero PerMinute disables rate limiting.
type Config struct {
	RateLimitPerMinute int
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{l: l}
	if cfg.RateLimitPerMinute > 0 {
		mw.limiter = newRateLimiter(cfg.RateLimitPerMinute)
	}
	return mw
}
