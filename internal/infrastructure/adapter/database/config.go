package database

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"time"

	"github.com/amirhossein-jamali/chess-escrow/internal/infrastructure/config"
)

// Config represents database configuration
type Config struct {
	Host            string
	Port            string
	Username        string
	Password        string
	Database        string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	QueryTimeout    time.Duration
	LogLevel        string
	RetryAttempts   int
	RetryDelay      time.Duration
	AutoMigrate     bool
}

// FromAppConfig adapts the application configuration to database configuration
func FromAppConfig(conf config.DatabaseConfig, logLevel string) *Config {
	return &Config{
		Host:            conf.Host,
		Port:            conf.Port,
		Username:        conf.Username,
		Password:        conf.Password,
		Database:        conf.Database,
		SSLMode:         conf.SSLMode,
		MaxOpenConns:    conf.MaxOpenConns,
		MaxIdleConns:    conf.MaxIdleConns,
		ConnMaxLifetime: conf.ConnMaxLifetime,
		ConnMaxIdleTime: conf.ConnMaxIdleTime,
		QueryTimeout:    conf.QueryTimeout,
		LogLevel:        logLevel,
		RetryAttempts:   conf.RetryAttempts,
		RetryDelay:      conf.RetryDelay,
		AutoMigrate:     conf.AutoMigrate,
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Host == "" {
		return errors.New("database host is required")
	}
	if c.Username == "" {
		return errors.New("database username is required")
	}
	if c.Database == "" {
		return errors.New("database name is required")
	}

	validSSLModes := map[string]bool{
		"disable":     true,
		"require":     true,
		"verify-ca":   true,
		"verify-full": true,
		"prefer":      true,
	}
	if !validSSLModes[c.SSLMode] {
		return fmt.Errorf("invalid SSL mode: %s", c.SSLMode)
	}

	if c.MaxOpenConns <= 0 {
		return fmt.Errorf("max open connections must be positive, got: %d", c.MaxOpenConns)
	}
	if c.MaxIdleConns < 0 || c.MaxIdleConns > c.MaxOpenConns {
		return fmt.Errorf("max idle connections must be between 0 and %d, got: %d", c.MaxOpenConns, c.MaxIdleConns)
	}
	if c.QueryTimeout <= 0 {
		return errors.New("query timeout must be positive")
	}
	if c.RetryAttempts < 0 {
		return fmt.Errorf("retry attempts must be non-negative, got: %d", c.RetryAttempts)
	}
	if c.RetryDelay < 0 {
		return fmt.Errorf("retry delay must be non-negative, got: %s", c.RetryDelay)
	}

	return nil
}

// URL returns the connection string in the postgres:// form understood by pgx
// and golang-migrate
func (c *Config) URL() string {
	port := c.Port
	if port == "" {
		port = "5432"
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.Username, c.Password),
		Host:     net.JoinHostPort(c.Host, port),
		Path:     "/" + c.Database,
		RawQuery: url.Values{"sslmode": []string{c.SSLMode}}.Encode(),
	}
	return u.String()
}
