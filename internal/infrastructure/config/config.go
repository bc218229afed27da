package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment    string               `mapstructure:"environment"`
	Server         ServerConfig         `mapstructure:"server"`
	Database       DatabaseConfig       `mapstructure:"database"`
	Logger         LoggerConfig         `mapstructure:"logger"`
	Lightning      LightningConfig      `mapstructure:"lightning"`
	Lichess        LichessConfig        `mapstructure:"lichess"`
	Escrow         EscrowConfig         `mapstructure:"escrow"`
	Events         EventsConfig         `mapstructure:"events"`
	Reconciliation ReconciliationConfig `mapstructure:"reconciliation"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
	AllowedOrigins    []string      `mapstructure:"allowedOrigins"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"` // postgres or memory
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"` // milliseconds
	AutoMigrate     bool          `mapstructure:"autoMigrate"`
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	TimeFormat string `mapstructure:"timeFormat"`
	CallerInfo bool   `mapstructure:"callerInfo"`
}

// LightningConfig contains the LND REST gateway settings
type LightningConfig struct {
	BaseURL            string        `mapstructure:"baseUrl"`
	Macaroon           string        `mapstructure:"macaroon"` // hex
	InsecureSkipVerify bool          `mapstructure:"insecureSkipVerify"`
	RequestTimeout     time.Duration `mapstructure:"requestTimeout"` // seconds
	InvoiceExpiry      int64         `mapstructure:"invoiceExpiry"`  // seconds
	SendTimeout        int           `mapstructure:"sendTimeout"`    // seconds, passed to the router
	MaxParts           int           `mapstructure:"maxParts"`
	FeeLimitMsat       int64         `mapstructure:"feeLimitMsat"`
	MaxRetries         uint64        `mapstructure:"maxRetries"`
}

// LichessConfig contains game service settings
type LichessConfig struct {
	BaseURL        string        `mapstructure:"baseUrl"`
	RequestTimeout time.Duration `mapstructure:"requestTimeout"` // seconds
	MaxRetries     uint64        `mapstructure:"maxRetries"`
	Rated          bool          `mapstructure:"rated"`
	AuthCacheSize  int           `mapstructure:"authCacheSize"`
	AuthCacheTTL   time.Duration `mapstructure:"authCacheTtl"` // seconds
}

// EscrowConfig contains coordinator settings
type EscrowConfig struct {
	AdminUsername string `mapstructure:"adminUsername"`
	QueueCapacity int    `mapstructure:"queueCapacity"`
	ListLimit     int    `mapstructure:"listLimit"`
	InvoiceMemo   string `mapstructure:"invoiceMemo"`
}

// EventsConfig contains domain event publishing settings
type EventsConfig struct {
	Enabled       bool   `mapstructure:"enabled"`
	NatsURL       string `mapstructure:"natsUrl"`
	SubjectPrefix string `mapstructure:"subjectPrefix"`
}

// ReconciliationConfig contains settings for the explicit reconciliation job
type ReconciliationConfig struct {
	WithdrawalGrace time.Duration `mapstructure:"withdrawalGrace"` // seconds
	Interval        time.Duration `mapstructure:"interval"`        // seconds
}
