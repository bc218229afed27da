package database

import (
	"context"
	"time"

	"github.com/jpillora/backoff"

	coreport "github.com/amirhossein-jamali/chess-escrow/internal/domain/port/core"
	"github.com/amirhossein-jamali/chess-escrow/internal/infrastructure/adapter/repository"
)

// RetryConfig holds configuration for retry operations
type RetryConfig struct {
	MaxRetries    int
	RetryInterval time.Duration
	MaxInterval   time.Duration
	Jitter        bool
}

// DefaultRetryConfig returns the default retry configuration
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:    3,
		RetryInterval: 50 * time.Millisecond,
		MaxInterval:   2 * time.Second,
		Jitter:        true,
	}
}

func (c RetryConfig) backoff() *backoff.Backoff {
	return &backoff.Backoff{
		Min:    c.RetryInterval,
		Max:    c.MaxInterval,
		Factor: 2,
		Jitter: c.Jitter,
	}
}

// RetryOnTransientError runs operation, running it again while it fails with a
// retryable error and attempts remain. MaxRetries counts the extra attempts.
func RetryOnTransientError(
	ctx context.Context,
	config RetryConfig,
	operation func() error,
	logger coreport.Logger,
) error {
	b := config.backoff()

	for attempt := 0; ; attempt++ {
		err := operation()
		if err == nil || !repository.IsRetryable(err) {
			return err
		}

		if attempt >= config.MaxRetries {
			logger.Error("All retry attempts failed", map[string]any{
				"attempts":    attempt + 1,
				"max_retries": config.MaxRetries,
				"error":       err.Error(),
			})
			return err
		}

		wait := b.Duration()
		logger.Warn("Transient database error, retrying operation", map[string]any{
			"attempt":     attempt + 1,
			"max_retries": config.MaxRetries,
			"error":       err.Error(),
			"retry_after": wait.String(),
		})

		timer := time.NewTimer(wait)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			logger.Warn("Retry operation canceled by context", map[string]any{
				"attempts": attempt + 1,
				"error":    ctx.Err().Error(),
			})
			return ctx.Err()
		}
	}
}
