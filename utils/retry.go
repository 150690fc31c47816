/*
 * micronix - host reconnaissance to privilege-escalation planning problems
 * License: MIT
 */
package utils

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Retry runs fn up to maxAttempts times with exponential backoff between
// attempts, returning on the first success or once attempts are exhausted.
// Used around Transport.Send so a single flaky remote command does not
// abort an entire extraction run.
func Retry[T any](ctx context.Context, logger *zap.Logger, maxAttempts int, initialBackoff time.Duration, fn func(context.Context) (T, error)) (T, error) {
	var result T
	backoff := initialBackoff

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		res, err := fn(ctx)
		if err == nil {
			return res, nil
		}

		if attempt == maxAttempts {
			logger.Error("exhausted retries", zap.Int("attempt", attempt), zap.Error(err))
			return result, err
		}

		logger.Warn("retrying after error", zap.Int("attempt", attempt), zap.Duration("backoff", backoff), zap.Error(err))
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		case <-time.After(backoff):
		}
		backoff *= 2
	}

	return result, nil
}
