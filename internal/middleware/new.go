package middleware

import (
	pkgLog "github.com/jdev86/daily-task-app/pkg/log"
)

// Config tunes the HTTP middleware stack.
type Config struct {
	// RateLimitPerMin bounds planning requests per client IP per minute.
	RateLimitPerMin int
}

type Middleware struct {
	l       pkgLog.Logger
	config  Config
	limiter *clientRateLimiter
}

func New(l pkgLog.Logger, cfg Config) Middleware {
	return Middleware{
		l:       l,
		config:  cfg,
		limiter: newClientRateLimiter(cfg.RateLimitPerMin),
	}
}
