package database

import (
	"context"
	"time"

	coreport "github.com/amirhossein-jamali/chess-escrow/internal/domain/port/core"
)

// SlowUnitThreshold is the duration above which a unit of work is reported
const SlowUnitThreshold = 250 * time.Millisecond

// UnitMetrics holds metrics about one unit of work
type UnitMetrics struct {
	Operation    string
	Duration     time.Duration
	Attempts     int
	Failed       bool
	ErrorMessage string
}

// MetricsCollector collects database operation metrics
type MetricsCollector struct {
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	threshold    time.Duration
}

// NewMetricsCollector creates a new metrics collector
func NewMetricsCollector(logger coreport.Logger, timeProvider coreport.TimeProvider) *MetricsCollector {
	return &MetricsCollector{
		logger:       logger,
		timeProvider: timeProvider,
		threshold:    SlowUnitThreshold,
	}
}

// MeasureUnit times fn and reports units that were slow or needed retries
func (c *MetricsCollector) MeasureUnit(ctx context.Context, operation string, fn func() (int, error)) error {
	start := c.timeProvider.Now()

	attempts, err := fn()

	metrics := UnitMetrics{
		Operation: operation,
		Duration:  c.timeProvider.Now().Sub(start),
		Attempts:  attempts,
		Failed:    err != nil,
	}
	if err != nil {
		metrics.ErrorMessage = err.Error()
	}

	if metrics.Duration > c.threshold || metrics.Attempts > 1 {
		c.logger.Warn("Slow or contended unit of work", map[string]any{
			"operation":     operation,
			"duration_ms":   metrics.Duration.Milliseconds(),
			"attempts":      metrics.Attempts,
			"failed":        metrics.Failed,
			"error_message": metrics.ErrorMessage,
		})
	}

	return err
}
