package testutil

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/amirhossein-jamali/chess-escrow/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/chess-escrow/internal/infrastructure/adapter/logger"
	timeadapter "github.com/amirhossein-jamali/chess-escrow/internal/infrastructure/adapter/time"
)

// TestDatabase is a migrated PostgreSQL container with a connected manager
type TestDatabase struct {
	Container *postgres.PostgresContainer
	Manager   *database.Manager
	URL       string
}

// SetupTestDatabase starts a PostgreSQL container, applies the migrations and
// connects a manager to it. Everything is torn down when the test ends.
func SetupTestDatabase(t *testing.T) *TestDatabase {
	t.Helper()
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("escrow_test"),
		postgres.WithUsername("test_user"),
		postgres.WithPassword("test_password"),
		postgres.BasicWaitStrategies(),
		testcontainers.WithLabels(map[string]string{
			"test":      "chess-escrow-repository",
			"test-name": t.Name(),
			"cleanup":   "auto",
		}),
	)
	require.NoError(t, err)

	testDB := &TestDatabase{Container: container}
	t.Cleanup(func() { testDB.cleanup(t) })

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)
	testDB.URL = connStr

	manager := database.NewManager(configFromURL(t, connStr), logger.NewNoopLogger(), timeadapter.NewRealTimeProvider())
	_, err = manager.Connect(ctx)
	require.NoError(t, err)
	testDB.Manager = manager

	return testDB
}

func configFromURL(t *testing.T, connStr string) *database.Config {
	u, err := url.Parse(connStr)
	require.NoError(t, err)
	password, _ := u.User.Password()

	return &database.Config{
		Host:          u.Hostname(),
		Port:          u.Port(),
		Username:      u.User.Username(),
		Password:      password,
		Database:      u.Path[1:],
		SSLMode:       "disable",
		MaxOpenConns:  10,
		MaxIdleConns:  2,
		QueryTimeout:  5 * time.Second,
		LogLevel:      "silent",
		RetryAttempts: 5,
		RetryDelay:    20 * time.Millisecond,
		AutoMigrate:   true,
	}
}

func (td *TestDatabase) cleanup(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if td.Manager != nil {
		if err := td.Manager.Close(); err != nil {
			t.Logf("Warning: failed to close database: %v", err)
		}
	}
	if td.Container != nil {
		if err := td.Container.Terminate(ctx); err != nil {
			t.Logf("Warning: failed to terminate test container: %v", err)
		}
	}
}
