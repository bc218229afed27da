package database

import (
	"context"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	coreport "github.com/amirhossein-jamali/chess-escrow/internal/domain/port/core"
)

// PoolSaturationThreshold is the share of acquired connections above which a warning is logged
const PoolSaturationThreshold = 0.8

// ConnectionPoolMetrics tracks database connection pool metrics
type ConnectionPoolMetrics struct {
	TotalConnections    int32
	IdleConnections     int32
	AcquiredConnections int32
	MaxConnections      int32
	AcquireCount        int64
	EmptyAcquireCount   int64
	CanceledAcquires    int64
	AcquireDuration     time.Duration
}

func metricsFromStat(stat *pgxpool.Stat) ConnectionPoolMetrics {
	return ConnectionPoolMetrics{
		TotalConnections:    stat.TotalConns(),
		IdleConnections:     stat.IdleConns(),
		AcquiredConnections: stat.AcquiredConns(),
		MaxConnections:      stat.MaxConns(),
		AcquireCount:        stat.AcquireCount(),
		EmptyAcquireCount:   stat.EmptyAcquireCount(),
		CanceledAcquires:    stat.CanceledAcquireCount(),
		AcquireDuration:     stat.AcquireDuration(),
	}
}

// Saturated reports whether most of the pool is checked out
func (m ConnectionPoolMetrics) Saturated() bool {
	if m.MaxConnections <= 0 {
		return false
	}
	return float64(m.AcquiredConnections) > float64(m.MaxConnections)*PoolSaturationThreshold
}

// PoolSampler reads the current pool statistics, failing when the database is unreachable
type PoolSampler func(ctx context.Context) (ConnectionPoolMetrics, error)

// ConnectionPoolMonitor periodically samples the connection pool and reports
// saturation and failed health checks
type ConnectionPoolMonitor struct {
	sample       PoolSampler
	logger       coreport.Logger
	metricsCache *ConnectionPoolMetrics
	mutex        sync.RWMutex
	stopChan     chan struct{}
	stopOnce     sync.Once
}

// NewConnectionPoolMonitor creates a new connection pool monitor
func NewConnectionPoolMonitor(sample PoolSampler, logger coreport.Logger) *ConnectionPoolMonitor {
	return &ConnectionPoolMonitor{
		sample:   sample,
		logger:   logger,
		stopChan: make(chan struct{}),
	}
}

// Start collects once and then keeps collecting every interval until Stop
func (m *ConnectionPoolMonitor) Start(interval time.Duration) error {
	if err := m.collectMetrics(); err != nil {
		return err
	}

	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := m.collectMetrics(); err != nil {
					m.logger.Error("Failed to collect connection pool metrics", map[string]any{
						"error": err.Error(),
					})
				}
			case <-m.stopChan:
				return
			}
		}
	}()

	return nil
}

// Stop stops the monitoring. It is safe to call more than once.
func (m *ConnectionPoolMonitor) Stop() {
	m.stopOnce.Do(func() { close(m.stopChan) })
}

// GetMetrics returns the last collected connection pool metrics
func (m *ConnectionPoolMonitor) GetMetrics() ConnectionPoolMetrics {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	if m.metricsCache == nil {
		return ConnectionPoolMetrics{}
	}
	return *m.metricsCache
}

func (m *ConnectionPoolMonitor) collectMetrics() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	metrics, err := m.sample(ctx)
	if err != nil {
		return err
	}

	m.mutex.Lock()
	m.metricsCache = &metrics
	m.mutex.Unlock()

	if metrics.Saturated() {
		m.logger.Warn("Database connection pool nearly exhausted", map[string]any{
			"acquired":         metrics.AcquiredConnections,
			"max":              metrics.MaxConnections,
			"idle":             metrics.IdleConnections,
			"empty_acquires":   metrics.EmptyAcquireCount,
			"acquire_duration": metrics.AcquireDuration.String(),
		})
	} else {
		m.logger.Debug("Database connection pool stats", map[string]any{
			"total":    metrics.TotalConnections,
			"acquired": metrics.AcquiredConnections,
			"idle":     metrics.IdleConnections,
		})
	}

	return nil
}
