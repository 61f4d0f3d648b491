package ports

import "context"

// LoginLimiter throttles repeated failed login attempts per account name.
// Implementations should fail open: an unavailable backend must not lock
// users out.
type LoginLimiter interface {
	TooManyFailures(ctx context.Context, name string) bool
	RecordFailure(ctx context.Context, name string)
	Reset(ctx context.Context, name string)
}
