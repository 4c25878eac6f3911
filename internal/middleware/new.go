package middleware

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"

	"smart-task-analyzer/pkg/log"
)

// Config holds middleware settings.
type Config struct {
	RateLimitPerMin  int // analyze-endpoint requests per minute per client IP
	RateLimitClients int // max distinct client IPs tracked at once
}

type Middleware struct {
	l   log.Logger
	cfg Config

	limiters *lru.Cache[string, *rate.Limiter]
}

func New(l log.Logger, cfg Config) *Middleware {
	if cfg.RateLimitPerMin <= 0 {
		cfg.RateLimitPerMin = 60
	}
	if cfg.RateLimitClients <= 0 {
		cfg.RateLimitClients = 1024
	}

	// lru.New only fails on a non-positive size, which is guarded above.
	limiters, _ := lru.New[string, *rate.Limiter](cfg.RateLimitClients)

	return &Middleware{
		l:        l,
		cfg:      cfg,
		limiters: limiters,
	}
}
