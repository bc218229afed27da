package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/amirhossein-jamali/chess-escrow/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/chess-escrow/internal/infrastructure/adapter/repository"
)

func fastRetry(retries int) RetryConfig {
	return RetryConfig{MaxRetries: retries, RetryInterval: time.Millisecond, MaxInterval: 2 * time.Millisecond}
}

func TestRetryOnTransientError_RetriesSerializationFailures(t *testing.T) {
	calls := 0
	err := RetryOnTransientError(context.Background(), fastRetry(3), func() error {
		calls++
		if calls < 3 {
			return &pgconn.PgError{Code: "40001"}
		}
		return nil
	}, logger.NewNoopLogger())

	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestRetryOnTransientError_GivesUp(t *testing.T) {
	calls := 0
	err := RetryOnTransientError(context.Background(), fastRetry(2), func() error {
		calls++
		return &pgconn.PgError{Code: "40P01"}
	}, logger.NewNoopLogger())

	assert.True(t, repository.IsRetryable(err))
	assert.Equal(t, 3, calls)
}

func TestRetryOnTransientError_DoesNotRetryPermanentErrors(t *testing.T) {
	calls := 0
	boom := errors.New("boom")
	err := RetryOnTransientError(context.Background(), fastRetry(5), func() error {
		calls++
		return boom
	}, logger.NewNoopLogger())

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
}

func TestRetryOnTransientError_StopsOnCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := fastRetry(5)
	cfg.RetryInterval = time.Hour
	cfg.MaxInterval = time.Hour

	err := RetryOnTransientError(ctx, cfg, func() error {
		return &pgconn.PgError{Code: "40001"}
	}, logger.NewNoopLogger())

	assert.ErrorIs(t, err, context.Canceled)
}
