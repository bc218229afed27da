package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalYAML = `
server:
  port: 9090
database:
  driver: "postgres"
  host: "db"
  username: "escrow"
  database: "escrow"
lightning:
  baseUrl: "https://lnd:8080"
escrow:
  adminUsername: "Admin"
`

func writeConfig(t *testing.T, env, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, env+".yaml"), []byte(content), 0o600))
	return dir
}

func TestLoadConfigFrom(t *testing.T) {
	t.Run("Applies defaults and converts durations", func(t *testing.T) {
		dir := writeConfig(t, Test, minimalYAML)

		cfg, err := LoadConfigFrom(Test, dir)

		require.NoError(t, err)
		assert.Equal(t, Test, cfg.Environment)
		assert.Equal(t, 9090, cfg.Server.Port)
		assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
		assert.Equal(t, 30*time.Minute, cfg.Database.ConnMaxLifetime)
		assert.Equal(t, 50*time.Millisecond, cfg.Database.RetryDelay)
		assert.Equal(t, int64(1800), cfg.Lightning.InvoiceExpiry)
		assert.Equal(t, 3, cfg.Lightning.MaxParts)
		assert.Equal(t, "https://lichess.org", cfg.Lichess.BaseURL)
		assert.Equal(t, time.Minute, cfg.Lichess.AuthCacheTTL)
		assert.Equal(t, 5*time.Minute, cfg.Reconciliation.WithdrawalGrace)
		assert.Equal(t, 100, cfg.Escrow.ListLimit)
		assert.NoError(t, cfg.Validate())
	})

	t.Run("Environment overrides file values", func(t *testing.T) {
		dir := writeConfig(t, Test, minimalYAML)
		t.Setenv("ESCROW_DB_PASSWORD", "s3cret")
		t.Setenv("ESCROW_LND_MACAROON", "0201")
		t.Setenv("ESCROW_DB_RETRY_ATTEMPTS", "0")
		t.Setenv("ESCROW_ALLOWED_ORIGINS", "https://a.example,https://b.example")
		t.Setenv("ESCROW_EVENTS_ENABLED", "true")
		t.Setenv("ESCROW_NATS_URL", "nats://nats:4222")

		cfg, err := LoadConfigFrom(Test, dir)

		require.NoError(t, err)
		assert.Equal(t, "s3cret", cfg.Database.Password)
		assert.Equal(t, "0201", cfg.Lightning.Macaroon)
		assert.Equal(t, 0, cfg.Database.RetryAttempts)
		assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins)
		assert.True(t, cfg.Events.Enabled)
		assert.Equal(t, "nats://nats:4222", cfg.Events.NatsURL)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := LoadConfigFrom("nope", t.TempDir())
		assert.Error(t, err)
	})
}

func TestConfigValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:    ServerConfig{Port: 8080},
			Database:  DatabaseConfig{Driver: "memory"},
			Lightning: LightningConfig{BaseURL: "https://lnd"},
			Lichess:   LichessConfig{BaseURL: "https://lichess.org"},
			Escrow:    EscrowConfig{AdminUsername: "admin"},
		}
	}

	assert.NoError(t, valid().Validate())

	testCases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"no admin", func(c *Config) { c.Escrow.AdminUsername = "" }},
		{"no port", func(c *Config) { c.Server.Port = 0 }},
		{"unknown driver", func(c *Config) { c.Database.Driver = "sqlite" }},
		{"postgres without host", func(c *Config) { c.Database.Driver = "postgres" }},
		{"no lightning", func(c *Config) { c.Lightning.BaseURL = "" }},
		{"no lichess", func(c *Config) { c.Lichess.BaseURL = "" }},
		{"events without nats", func(c *Config) { c.Events.Enabled = true }},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid()
			tc.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
