// Package retry provides the backoff executor wrapped around every
// backend adapter call.
package retry

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Defaults for the backoff schedule: up to 5 attempts with delays of
// 1s, 2s, 4s, 8s between them.
const (
	DefaultMaxRetries = 4
	DefaultBaseDelay  = 1 * time.Second
	DefaultMaxDelay   = 8 * time.Second
)

// Config controls the retry schedule.
type Config struct {
	// MaxRetries is the number of retries after the first attempt.
	// A negative value means the operation is never attempted and
	// fails immediately.
	MaxRetries int
	// BaseDelay is the delay before the first retry; it doubles each
	// retry up to MaxDelay.
	BaseDelay time.Duration
	// MaxDelay caps the backoff delay.
	MaxDelay time.Duration
}

// DefaultConfig returns the standard schedule.
func DefaultConfig() Config {
	return Config{
		MaxRetries: DefaultMaxRetries,
		BaseDelay:  DefaultBaseDelay,
		MaxDelay:   DefaultMaxDelay,
	}
}

// Do runs the operation, retrying with exponential backoff on
// failure. Each failed attempt with retries remaining logs a warning
// and sleeps before the next try. Once the budget is exhausted, the
// last error is returned unwrapped.
func Do[T any](ctx context.Context, cfg Config, logger *slog.Logger, label string, op func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	if logger == nil {
		logger = slog.Default()
	}

	attempts := cfg.MaxRetries + 1
	if attempts <= 0 {
		// Degenerate config still fails deterministically rather than
		// silently succeeding with a zero value.
		return zero, fmt.Errorf("%s failed after 0 attempts", label)
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		result, err := op(ctx)
		if err == nil {
			return result, nil
		}
		lastErr = err

		if attempt == attempts-1 {
			break
		}

		logger.Warn(fmt.Sprintf("%s failed (attempt %d): %v", label, attempt+1, err))

		if err := sleep(ctx, backoffDelay(cfg, attempt)); err != nil {
			return zero, err
		}
	}

	return zero, lastErr
}

// backoffDelay computes the delay after the given zero-based attempt:
// base*2^attempt, capped at MaxDelay.
func backoffDelay(cfg Config, attempt int) time.Duration {
	delay := cfg.BaseDelay << uint(attempt)
	if delay > cfg.MaxDelay || delay <= 0 {
		delay = cfg.MaxDelay
	}
	return delay
}

// sleep waits for the duration or until the context is cancelled.
func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
