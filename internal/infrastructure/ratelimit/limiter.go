// Package ratelimit enforces a per-client request budget over a fixed
// window, counted in Redis so all instances share the same ledger.
package ratelimit

import (
	"context"
	"strings"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/Ankit73-bit/job-portal-backend/internal/config"
)

const keyPrefix = "ratelimit:"

// Decision is the outcome of counting one request against the window.
type Decision struct {
	Allowed    bool
	Limit      int
	Remaining  int
	RetryAfter time.Duration
}

type Limiter struct {
	client *redis.Client
	log    zerolog.Logger
	limit  int
	window time.Duration

	warnedUnavailable atomic.Bool
}

// New connects to Redis and returns the limiter. When limiting is
// disabled, or Redis cannot be reached at startup, the limiter runs
// open: every request is allowed and the API stays up.
func New(cfg config.RateLimitConfig, rcfg config.RedisConfig, log zerolog.Logger) *Limiter {
	l := &Limiter{log: log, limit: cfg.Requests, window: cfg.Window}
	if !cfg.Enabled || cfg.Requests <= 0 || cfg.Window <= 0 {
		return l
	}

	host := strings.TrimSpace(rcfg.Host)
	if host == "" {
		host = "localhost"
	}
	port := strings.TrimSpace(rcfg.Port)
	if port == "" {
		port = "6379"
	}

	client := redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: rcfg.Password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn().Err(err).Msg("redis unavailable, rate limiting disabled")
		_ = client.Close()
		return l
	}

	l.client = client
	return l
}

// Allow counts one request for key and reports whether it still fits
// the window's budget. The window opens on the key's first request and
// closes when its TTL lapses. Any Redis failure fails open so a broken
// limiter cannot take the API down with it.
func (l *Limiter) Allow(ctx context.Context, key string) Decision {
	if l == nil || l.client == nil {
		return Decision{Allowed: true, Limit: l.limitOrZero()}
	}

	k := keyPrefix + key
	count, err := l.client.Incr(ctx, k).Result()
	if err != nil {
		l.warnUnavailableOnce(err)
		return Decision{Allowed: true, Limit: l.limit}
	}
	if count == 1 {
		if err := l.client.Expire(ctx, k, l.window).Err(); err != nil {
			l.warnUnavailableOnce(err)
		}
	}

	if count <= int64(l.limit) {
		return Decision{Allowed: true, Limit: l.limit, Remaining: l.limit - int(count)}
	}

	retry := l.window
	if ttl, err := l.client.TTL(ctx, k).Result(); err == nil && ttl > 0 {
		retry = ttl
	}
	return Decision{Allowed: false, Limit: l.limit, RetryAfter: retry}
}

func (l *Limiter) Close() error {
	if l == nil || l.client == nil {
		return nil
	}
	return l.client.Close()
}

func (l *Limiter) limitOrZero() int {
	if l == nil {
		return 0
	}
	return l.limit
}

func (l *Limiter) warnUnavailableOnce(err error) {
	if l.warnedUnavailable.CompareAndSwap(false, true) {
		l.log.Warn().Err(err).Msg("redis unavailable, rate limiting bypassed")
	}
}
