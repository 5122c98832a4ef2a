// Package config provides configuration management for the Lotto Better application.
package config

import (
	"fmt"
)

// Config represents the complete application configuration
type Config struct {
	App           AppConfig           `mapstructure:"app" validate:"required"`
	Database      DatabaseConfig      `mapstructure:"database" validate:"required"`
	Backtest      BacktestConfig      `mapstructure:"backtest" validate:"required"`
	Strategies    StrategiesConfig    `mapstructure:"strategies" validate:"required"`
	DataIngestion DataIngestionConfig `mapstructure:"data_ingestion" validate:"required"`
	Metrics       MetricsConfig       `mapstructure:"metrics" validate:"required"`
}

// AppConfig represents application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Environment string `mapstructure:"environment" validate:"required,environment"`
	LogLevel    string `mapstructure:"log_level" validate:"required,loglevel"`
}

// DatabaseConfig represents database connection configuration
type DatabaseConfig struct {
	Host               string `mapstructure:"host" validate:"required"`
	Port               int    `mapstructure:"port" validate:"required,min=1,max=65535"`
	Name               string `mapstructure:"name" validate:"required"`
	User               string `mapstructure:"user" validate:"required"`
	Password           string `mapstructure:"password" validate:"required"`
	SSLMode            string `mapstructure:"ssl_mode" validate:"required,oneof=disable require verify-full"`
	MaxConnections     int    `mapstructure:"max_connections" validate:"required,gt=0"`
	MaxIdleConnections int    `mapstructure:"max_idle_connections" validate:"required,gt=0"`
}

// BacktestConfig represents backtesting configuration. Exactly one of
// test_window_size and test_window_ratio must be set.
type BacktestConfig struct {
	Game                    string  `mapstructure:"game" validate:"required,game"`
	TestWindowSize          int     `mapstructure:"test_window_size" validate:"gte=0"`
	TestWindowRatio         float64 `mapstructure:"test_window_ratio" validate:"gte=0,lt=1"`
	CombinationsPerStrategy int     `mapstructure:"combinations_per_strategy" validate:"required,gt=0"`
	Seed                    int64   `mapstructure:"seed"`
	OutputPath              string  `mapstructure:"output_path" validate:"required"`
}

// StrategiesConfig selects which generators participate in a run
type StrategiesConfig struct {
	Enabled []string `mapstructure:"enabled" validate:"required,min=1"`
}

// DataIngestionConfig represents draw history ingestion configuration
type DataIngestionConfig struct {
	Sources  []DataSourceConfig `mapstructure:"sources" validate:"required,min=1"`
	Schedule ScheduleConfig     `mapstructure:"schedule" validate:"required"`
}

// DataSourceConfig represents a single draw history source
type DataSourceConfig struct {
	Name      string `mapstructure:"name" validate:"required"`
	Enabled   bool   `mapstructure:"enabled"`
	URL       string `mapstructure:"url" validate:"omitempty,url"`
	BatchSize int    `mapstructure:"batch_size" validate:"omitempty,gt=0"`
	APIKey    string `mapstructure:"api_key"`
}

// ScheduleConfig represents result synchronization scheduling
type ScheduleConfig struct {
	ResultSync             string `mapstructure:"result_sync" validate:"required"`
	NightlyBacktest        string `mapstructure:"nightly_backtest"`
	SyncTimeoutSeconds     int    `mapstructure:"sync_timeout_seconds" validate:"required,gt=0"`
	BacktestTimeoutSeconds int    `mapstructure:"backtest_timeout_seconds" validate:"omitempty,gt=0"`
}

// MetricsConfig represents metrics and monitoring configuration
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Port    int    `mapstructure:"port" validate:"required,min=1,max=65535"`
	Path    string `mapstructure:"path" validate:"required"`
}

// IsDevelopment checks if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsStaging checks if the application is running in staging mode
func (c *Config) IsStaging() bool {
	return c.App.Environment == "staging"
}

// IsProduction checks if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// GetDatabaseDSN returns a PostgreSQL DSN string
func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}
