package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "ESCROW"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
	"../configs/.env",
	"../../configs/.env",
}

// LoadConfig loads configuration from file based on the environment
func LoadConfig() (*Config, error) {
	// Load environment variables from .env file first
	if err := loadDotEnvFile(); err != nil {
		fmt.Println("Warning: Could not load .env file:", err)
	}

	return LoadConfigFrom(getEnvironment(), ConfigPaths...)
}

// LoadConfigFrom reads <env>.yaml from the given directories and applies
// environment overrides. It does not touch .env files.
func LoadConfigFrom(env string, paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")

	for _, path := range paths {
		v.AddConfigPath(path)
	}

	// Set default values for non-critical settings
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Process environment variable overrides for sensitive values
	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env

	// Convert time.Duration fields from their raw values
	processDurations(&config)

	return &config, nil
}

// loadDotEnvFile attempts to load environment variables from .env files
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return nil
			} else {
				lastError = err
			}
		}
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}

	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 60)      // seconds, withdrawals wait on the router
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 25)
	v.SetDefault("database.maxIdleConns", 10)
	v.SetDefault("database.connMaxLifetime", 30) // minutes
	v.SetDefault("database.connMaxIdleTime", 15) // minutes
	v.SetDefault("database.queryTimeout", 5)     // seconds
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 50) // milliseconds
	v.SetDefault("database.autoMigrate", true)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.output", "stdout")
	v.SetDefault("logger.callerInfo", true)

	v.SetDefault("lightning.requestTimeout", 30) // seconds
	v.SetDefault("lightning.invoiceExpiry", 1800)
	v.SetDefault("lightning.sendTimeout", 10)
	v.SetDefault("lightning.maxParts", 3)
	v.SetDefault("lightning.feeLimitMsat", 10000)
	v.SetDefault("lightning.maxRetries", 3)

	v.SetDefault("lichess.baseUrl", "https://lichess.org")
	v.SetDefault("lichess.requestTimeout", 10) // seconds
	v.SetDefault("lichess.maxRetries", 3)
	v.SetDefault("lichess.rated", false)
	v.SetDefault("lichess.authCacheSize", 1024)
	v.SetDefault("lichess.authCacheTtl", 60) // seconds

	v.SetDefault("escrow.queueCapacity", 100)
	v.SetDefault("escrow.listLimit", 100)
	v.SetDefault("escrow.invoiceMemo", "funding account %s on lightningchess.io")

	v.SetDefault("events.enabled", false)
	v.SetDefault("events.subjectPrefix", "escrow")

	v.SetDefault("reconciliation.withdrawalGrace", 300) // seconds
	v.SetDefault("reconciliation.interval", 60)         // seconds
}

// getEnvironment determines the environment to use based on ESCROW_ENV
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides ensures environment variables override config values
// This function prioritizes environment variables over configuration file values
func processEnvOverrides(v *viper.Viper) {
	stringOverrides := map[string]string{
		"DB_HOST":           "database.host",
		"DB_PORT":           "database.port",
		"DB_USERNAME":       "database.username",
		"DB_PASSWORD":       "database.password",
		"DB_NAME":           "database.database",
		"DB_SSL_MODE":       "database.sslMode",
		"DB_DRIVER":         "database.driver",
		"SERVER_HOST":       "server.host",
		"LOGGER_LEVEL":      "logger.level",
		"LND_URL":           "lightning.baseUrl",
		"LND_MACAROON":      "lightning.macaroon",
		"LICHESS_URL":       "lichess.baseUrl",
		"ADMIN_USERNAME":    "escrow.adminUsername",
		"NATS_URL":          "events.natsUrl",
		"EVENTS_SUBJECT":    "events.subjectPrefix",
		"ALLOWED_ORIGINS":   "server.allowedOrigins",
		"SERVER_PORT":       "server.port",
		"DB_MAX_OPEN_CONNS": "database.maxOpenConns",
	}
	for env, key := range stringOverrides {
		if value := os.Getenv(EnvPrefix + "_" + env); value != "" {
			if key == "server.allowedOrigins" {
				v.Set(key, strings.Split(value, ","))
				continue
			}
			v.Set(key, value)
		}
	}

	if retryAttempts := getEnvInt(EnvPrefix+"_DB_RETRY_ATTEMPTS", -1); retryAttempts >= 0 {
		v.Set("database.retryAttempts", retryAttempts)
	}
	if enabled := os.Getenv(EnvPrefix + "_EVENTS_ENABLED"); enabled != "" {
		if b, err := strconv.ParseBool(enabled); err == nil {
			v.Set("events.enabled", b)
		}
	}
}

// Helper function to get environment variable as int
func getEnvInt(name string, defaultVal int) int {
	valStr := os.Getenv(name)
	if valStr == "" {
		return defaultVal
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultVal
	}
	return val
}

// processDurations converts time.Duration fields from their raw values to actual durations
func processDurations(config *Config) {
	config.Server.ReadTimeout = time.Duration(config.Server.ReadTimeout) * time.Second
	config.Server.WriteTimeout = time.Duration(config.Server.WriteTimeout) * time.Second
	config.Server.IdleTimeout = time.Duration(config.Server.IdleTimeout) * time.Second
	config.Server.ReadHeaderTimeout = time.Duration(config.Server.ReadHeaderTimeout) * time.Second
	config.Server.ShutdownTimeout = time.Duration(config.Server.ShutdownTimeout) * time.Second

	config.Database.ConnMaxLifetime = time.Duration(config.Database.ConnMaxLifetime) * time.Minute
	config.Database.ConnMaxIdleTime = time.Duration(config.Database.ConnMaxIdleTime) * time.Minute
	config.Database.QueryTimeout = time.Duration(config.Database.QueryTimeout) * time.Second
	config.Database.RetryDelay = time.Duration(config.Database.RetryDelay) * time.Millisecond

	config.Lightning.RequestTimeout = time.Duration(config.Lightning.RequestTimeout) * time.Second
	config.Lichess.RequestTimeout = time.Duration(config.Lichess.RequestTimeout) * time.Second
	config.Lichess.AuthCacheTTL = time.Duration(config.Lichess.AuthCacheTTL) * time.Second

	config.Reconciliation.WithdrawalGrace = time.Duration(config.Reconciliation.WithdrawalGrace) * time.Second
	config.Reconciliation.Interval = time.Duration(config.Reconciliation.Interval) * time.Second
}

// Validate rejects configurations the service cannot start with
func (c *Config) Validate() error {
	if c.Server.Port <= 0 {
		return fmt.Errorf("server port is required")
	}
	if c.Escrow.AdminUsername == "" {
		return fmt.Errorf("escrow admin username is required")
	}
	switch c.Database.Driver {
	case "memory":
	case "postgres":
		if c.Database.Host == "" {
			return fmt.Errorf("database host is required")
		}
		if c.Database.Username == "" {
			return fmt.Errorf("database username is required")
		}
		if c.Database.Database == "" {
			return fmt.Errorf("database name is required")
		}
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	if c.Lightning.BaseURL == "" {
		return fmt.Errorf("lightning base url is required")
	}
	if c.Lichess.BaseURL == "" {
		return fmt.Errorf("lichess base url is required")
	}
	if c.Events.Enabled && c.Events.NatsURL == "" {
		return fmt.Errorf("events are enabled but no NATS url is set")
	}
	return nil
}
