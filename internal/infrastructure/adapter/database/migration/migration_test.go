package migration

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/chess-escrow/internal/infrastructure/adapter/logger"
)

func TestEmbeddedMigrations(t *testing.T) {
	entries, err := fs.ReadDir(migrationsFS, "sql")
	require.NoError(t, err)

	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{"000001_init.up.sql", "000001_init.down.sql"}, names)

	up, err := fs.ReadFile(migrationsFS, "sql/000001_init.up.sql")
	require.NoError(t, err)
	assert.Contains(t, string(up), "CHECK (amount >= 0)")
	assert.Contains(t, string(up), "WHERE payment_hash <> '' AND state <> 'FAILED'")
}

func TestMigrationManager_InvalidURL(t *testing.T) {
	m := NewMigrationManager("postgres://%zz", logger.NewNoopLogger())

	assert.Error(t, m.MigrateAll())
	_, err := m.GetStatus()
	assert.Error(t, err)
	assert.Error(t, m.Rollback(0))
}
