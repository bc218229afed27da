package migration

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"

	coreport "github.com/amirhossein-jamali/chess-escrow/internal/domain/port/core"
)

//go:embed sql/*.sql
var migrationsFS embed.FS

// CurrentSchemaVersion is the newest migration shipped with the binary
const CurrentSchemaVersion uint = 1

// Status describes the schema version recorded in the database
type Status struct {
	Version uint
	Dirty   bool
	Applied bool
}

// MigrationManager applies the embedded SQL migrations
type MigrationManager struct {
	databaseURL string
	logger      coreport.Logger
}

// NewMigrationManager creates a new migration manager for the database at databaseURL
func NewMigrationManager(databaseURL string, logger coreport.Logger) *MigrationManager {
	return &MigrationManager{
		databaseURL: databaseURL,
		logger:      logger,
	}
}

// MigrateAll applies every pending migration
func (m *MigrationManager) MigrateAll() error {
	m.logger.Info("Starting database migrations", map[string]any{
		"target_version": CurrentSchemaVersion,
	})

	mig, err := m.open()
	if err != nil {
		return err
	}
	defer m.close(mig)

	if err := mig.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			m.logger.Info("Database already at target version, skipping migration", map[string]any{
				"version": CurrentSchemaVersion,
			})
			return nil
		}
		m.logger.Error("Failed to run migrations", map[string]any{"error": err.Error()})
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	version, _, _ := mig.Version()
	m.logger.Info("Database migrations completed successfully", map[string]any{
		"version": version,
	})
	return nil
}

// Rollback reverts the given number of migrations
func (m *MigrationManager) Rollback(steps int) error {
	if steps <= 0 {
		return fmt.Errorf("steps must be positive, got %d", steps)
	}

	mig, err := m.open()
	if err != nil {
		return err
	}
	defer m.close(mig)

	if err := mig.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to rollback migrations: %w", err)
	}

	m.logger.Info("Rolled back database migrations", map[string]any{"steps": steps})
	return nil
}

// GetStatus reports the recorded schema version
func (m *MigrationManager) GetStatus() (Status, error) {
	mig, err := m.open()
	if err != nil {
		return Status{}, err
	}
	defer m.close(mig)

	version, dirty, err := mig.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return Status{}, nil
	}
	if err != nil {
		return Status{}, fmt.Errorf("failed to get migration version: %w", err)
	}
	return Status{Version: version, Dirty: dirty, Applied: true}, nil
}

func (m *MigrationManager) open() (*migrate.Migrate, error) {
	connConfig, err := pgx.ParseConfig(m.databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	db := stdlib.OpenDB(*connConfig)

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create postgres driver: %w", err)
	}

	source, err := iofs.New(migrationsFS, "sql")
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create source driver: %w", err)
	}

	mig, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}
	return mig, nil
}

func (m *MigrationManager) close(mig *migrate.Migrate) {
	srcErr, dbErr := mig.Close()
	if srcErr != nil || dbErr != nil {
		m.logger.Warn("Failed to close migration resources", map[string]any{
			"source_error":   fmt.Sprint(srcErr),
			"database_error": fmt.Sprint(dbErr),
		})
	}
}
