package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const (
	defaultMaxFailures = 5
	defaultWindow      = 15 * time.Minute
)

// LoginLimiter throttles repeated failed logins per account name, backed by
// Redis. Key format: login_fail:<name>. The limiter fails open: when Redis
// is unreachable it reports "not throttled" and logs the error, so a cache
// outage never locks users out.
type LoginLimiter struct {
	client      *redis.Client
	maxFailures int
	window      time.Duration
	log         zerolog.Logger
}

// NewLoginLimiter creates a LoginLimiter wrapping the given Redis client.
// Non-positive maxFailures or window fall back to defaults.
func NewLoginLimiter(client *redis.Client, maxFailures int, window time.Duration, log zerolog.Logger) *LoginLimiter {
	if maxFailures <= 0 {
		maxFailures = defaultMaxFailures
	}
	if window <= 0 {
		window = defaultWindow
	}
	return &LoginLimiter{client: client, maxFailures: maxFailures, window: window, log: log}
}

// TooManyFailures reports whether name has exceeded the failure threshold
// within the current window.
func (l *LoginLimiter) TooManyFailures(ctx context.Context, name string) bool {
	n, err := l.client.Get(ctx, l.key(name)).Int()
	if err != nil {
		if err != redis.Nil {
			l.log.Warn().Err(err).Msg("login limiter check failed, allowing attempt")
		}
		return false
	}
	return n >= l.maxFailures
}

// RecordFailure increments the failure counter for name. The window resets
// from the first failure, not from the most recent one.
func (l *LoginLimiter) RecordFailure(ctx context.Context, name string) {
	key := l.key(name)
	n, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		l.log.Warn().Err(err).Msg("login limiter increment failed")
		return
	}
	if n == 1 {
		if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
			l.log.Warn().Err(err).Msg("login limiter expire failed")
		}
	}
}

// Reset clears the failure counter after a successful login.
func (l *LoginLimiter) Reset(ctx context.Context, name string) {
	if err := l.client.Del(ctx, l.key(name)).Err(); err != nil {
		l.log.Warn().Err(err).Msg("login limiter reset failed")
	}
}

func (l *LoginLimiter) key(name string) string {
	return fmt.Sprintf("login_fail:%s", name)
}
