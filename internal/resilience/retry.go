package resilience

import (
	"context"
	"time"
)

// RetryConfig tunes the bounded retry policy. Zero values fall back to
// defaults.
type RetryConfig struct {
	// MaxAttempts is the total attempt budget including the first call.
	// Default 3.
	MaxAttempts int
	// Backoff is the fixed wait between attempts. Default 100ms.
	Backoff time.Duration
}

func (c RetryConfig) withDefaults() RetryConfig {
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = 3
	}
	if c.Backoff <= 0 {
		c.Backoff = 100 * time.Millisecond
	}
	return c
}

// Retry executes fn up to the configured attempt budget. Only errors the
// classifier marks retryable consume further attempts; the last error is
// returned when the budget is exhausted. Context cancellation stops the
// loop immediately with the context error.
func Retry(ctx context.Context, cfg RetryConfig, retryable func(error) bool, fn func(ctx context.Context) error) error {
	cfg = cfg.withDefaults()

	var lastErr error
	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		lastErr = fn(ctx)
		if lastErr == nil {
			return nil
		}
		if !retryable(lastErr) {
			return lastErr
		}
		if attempt == cfg.MaxAttempts {
			break
		}

		timer := time.NewTimer(cfg.Backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
	return lastErr
}
