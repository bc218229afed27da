package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jpillora/backoff"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/chess-escrow/internal/domain/port/core"
	"github.com/amirhossein-jamali/chess-escrow/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/chess-escrow/internal/infrastructure/adapter/database/migration"
)

// PoolMonitorInterval is how often connection pool statistics are sampled
const PoolMonitorInterval = 30 * time.Second

// Manager manages database connections
type Manager struct {
	config            *Config
	pool              *pgxpool.Pool
	sqlDB             *sql.DB
	db                *gorm.DB
	logger            coreport.Logger
	migrationMgr      *migration.MigrationManager
	connectionMonitor *ConnectionPoolMonitor
	timeProvider      coreport.TimeProvider
}

// NewManager creates a new database manager
func NewManager(config *Config, logger coreport.Logger, timeProvider coreport.TimeProvider) *Manager {
	return &Manager{
		config:       config,
		logger:       logger,
		migrationMgr: migration.NewMigrationManager(config.URL(), logger),
		timeProvider: timeProvider,
	}
}

// Connect opens the pgx pool, applies pending migrations when enabled and
// wraps the pool in GORM
func (m *Manager) Connect(ctx context.Context) (*gorm.DB, error) {
	if err := m.config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid database configuration: %w", err)
	}

	m.logger.Info("Connecting to database", map[string]any{
		"host": m.config.Host,
		"port": m.config.Port,
		"name": m.config.Database,
	})

	poolConfig, err := m.poolConfig()
	if err != nil {
		return nil, err
	}

	pool, err := m.openPool(ctx, poolConfig)
	if err != nil {
		return nil, err
	}

	if m.config.AutoMigrate {
		if err := m.migrationMgr.MigrateAll(); err != nil {
			pool.Close()
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	sqlDB := stdlib.OpenDBFromPool(pool)
	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:      NewDatabaseLogger(m.logger, m.timeProvider, m.config.LogLevel),
		NowFunc:     m.timeProvider.Now,
		PrepareStmt: true,
	})
	if err != nil {
		_ = sqlDB.Close()
		pool.Close()
		return nil, fmt.Errorf("failed to initialise gorm: %w", err)
	}

	m.pool = pool
	m.sqlDB = sqlDB
	m.db = gormDB

	m.logger.Info("Successfully connected to database", map[string]any{
		"host":            m.config.Host,
		"port":            m.config.Port,
		"name":            m.config.Database,
		"max_open_conns":  m.config.MaxOpenConns,
		"query_timeout_s": m.config.QueryTimeout.Seconds(),
	})

	m.connectionMonitor = NewConnectionPoolMonitor(m.samplePool, m.logger)
	if err := m.connectionMonitor.Start(PoolMonitorInterval); err != nil {
		m.logger.Warn("Failed to start connection pool monitoring", map[string]any{"error": err.Error()})
	}

	return m.db, nil
}

func (m *Manager) poolConfig() (*pgxpool.Config, error) {
	poolConfig, err := pgxpool.ParseConfig(m.config.URL())
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	poolConfig.ConnConfig.RuntimeParams["timezone"] = "UTC"
	poolConfig.MaxConns = int32(m.config.MaxOpenConns)
	if m.config.MaxIdleConns > 0 {
		poolConfig.MinConns = int32(m.config.MaxIdleConns)
	}
	if m.config.ConnMaxLifetime > 0 {
		poolConfig.MaxConnLifetime = m.config.ConnMaxLifetime
	}
	if m.config.ConnMaxIdleTime > 0 {
		poolConfig.MaxConnIdleTime = m.config.ConnMaxIdleTime
	}
	return poolConfig, nil
}

func (m *Manager) openPool(ctx context.Context, poolConfig *pgxpool.Config) (*pgxpool.Pool, error) {
	b := &backoff.Backoff{
		Min:    m.config.RetryDelay,
		Max:    30 * time.Second,
		Factor: 2,
		Jitter: true,
	}

	var lastErr error
	for attempt := 0; attempt <= m.config.RetryAttempts; attempt++ {
		if attempt > 0 {
			wait := b.Duration()
			m.logger.Warn("Retrying database connection", map[string]any{
				"attempt": attempt + 1,
				"of":      m.config.RetryAttempts + 1,
				"delay":   wait.String(),
			})
			select {
			case <-time.After(wait):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
		if err == nil {
			pingCtx, cancel := context.WithTimeout(ctx, m.config.QueryTimeout)
			err = pool.Ping(pingCtx)
			cancel()
			if err == nil {
				return pool, nil
			}
			pool.Close()
		}

		lastErr = err
		m.logger.Error("Failed to connect to database", map[string]any{
			"error":   err.Error(),
			"attempt": attempt + 1,
		})
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", m.config.RetryAttempts+1, lastErr)
}

func (m *Manager) samplePool(ctx context.Context) (ConnectionPoolMetrics, error) {
	pingCtx, cancel := context.WithTimeout(ctx, m.config.QueryTimeout)
	defer cancel()
	if err := m.pool.Ping(pingCtx); err != nil {
		return ConnectionPoolMetrics{}, fmt.Errorf("database ping failed: %w", err)
	}
	return metricsFromStat(m.pool.Stat()), nil
}

// DB returns the GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// Ping checks that the database answers
func (m *Manager) Ping(ctx context.Context) error {
	if m.pool == nil {
		return fmt.Errorf("database is not connected")
	}
	ctx, cancel := m.WithTimeout(ctx)
	defer cancel()
	return m.pool.Ping(ctx)
}

// Close closes the database connection
func (m *Manager) Close() error {
	m.logger.Info("Closing database connection", nil)

	if m.connectionMonitor != nil {
		m.connectionMonitor.Stop()
	}

	var err error
	if m.sqlDB != nil {
		err = m.sqlDB.Close()
	}
	if m.pool != nil {
		m.pool.Close()
	}
	return err
}

// WithTimeout returns a context with timeout for database operations
func (m *Manager) WithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, m.config.QueryTimeout)
}

// CreateUnitOfWork creates a new UnitOfWork instance
func (m *Manager) CreateUnitOfWork() persistence.UnitOfWork {
	return NewUnitOfWork(m.db, m.logger, m.timeProvider, RetryConfig{
		MaxRetries:    m.config.RetryAttempts,
		RetryInterval: m.config.RetryDelay,
		MaxInterval:   2 * time.Second,
		Jitter:        true,
	})
}

// MigrationManager returns the migration manager
func (m *Manager) MigrationManager() *migration.MigrationManager {
	return m.migrationMgr
}
