package middleware

import (
	"support-agent-orchestrator/config"
	"support-agent-orchestrator/pkg/log"
)

type Middleware struct {
	l       log.Logger
	config  config.RateLimitConfig
	limiter *rateLimiter
}

func New(l log.Logger, cfg config.RateLimitConfig) Middleware {
	return Middleware{
		l:       l,
		config:  cfg,
		limiter: newRateLimiter(cfg.PerMin),
	}
}
