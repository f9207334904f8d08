package middleware

import (
	"smart-routine/pkg/log"
)

// Config tunes the middleware set.
type Config struct {
	// RateLimitPerMin is the sustained request rate allowed per client. Zero disables limiting.
	RateLimitPerMin int
}

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	m := Middleware{l: l}
	if cfg.RateLimitPerMin > 0 {
		m.limiter = newRateLimiter(cfg.RateLimitPerMin)
	}
	return m
}
