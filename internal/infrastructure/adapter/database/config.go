package database

import (
	"errors"
	"fmt"
	"time"

	"github.com/amirhossein-jamali/timewriter/internal/infrastructure/config"
)

// Config represents database configuration
type Config struct {
	Host            string
	Port            int
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
}

// DefaultConfig returns a Config with default values. Credentials are left
// empty and must be configured.
func DefaultConfig() *Config {
	return &Config{
		Port:            5432,
		SSLMode:         "disable",
		MaxOpenConns:    10,
		MaxIdleConns:    5,
		ConnMaxLifetime: 30 * time.Minute,
		ConnMaxIdleTime: 15 * time.Minute,
		QueryTimeout:    5 * time.Second,
		LogLevel:        "warn",
		RetryAttempts:   3,
		RetryDelay:      time.Second,
	}
}

// FromAppConfig fills a Config from the application configuration, keeping
// defaults for unset values
func FromAppConfig(conf config.DatabaseConfig, logLevel string) *Config {
	c := DefaultConfig()
	c.Host = conf.Host
	c.Username = conf.Username
	c.Password = conf.Password
	c.Database = conf.Database
	if conf.Port > 0 {
		c.Port = conf.Port
	}
	if conf.SSLMode != "" {
		c.SSLMode = conf.SSLMode
	}
	if conf.MaxOpenConns > 0 {
		c.MaxOpenConns = conf.MaxOpenConns
	}
	if conf.MaxIdleConns > 0 {
		c.MaxIdleConns = conf.MaxIdleConns
	}
	if conf.ConnMaxLifetime > 0 {
		c.ConnMaxLifetime = conf.ConnMaxLifetime
	}
	if conf.ConnMaxIdleTime > 0 {
		c.ConnMaxIdleTime = conf.ConnMaxIdleTime
	}
	if conf.QueryTimeout > 0 {
		c.QueryTimeout = conf.QueryTimeout
	}
	if conf.RetryAttempts > 0 {
		c.RetryAttempts = conf.RetryAttempts
	}
	if conf.RetryDelay > 0 {
		c.RetryDelay = conf.RetryDelay
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
	return c
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Host == "" {
		return errors.New("database host is required")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port number: %d", c.Port)
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
	if c.MaxIdleConns <= 0 {
		return fmt.Errorf("max idle connections must be positive, got: %d", c.MaxIdleConns)
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

	validLogLevels := map[string]bool{
		"silent": true,
		"debug":  true,
		"info":   true,
		"warn":   true,
		"error":  true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}

	return nil
}

// DSN returns the database connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.Username, c.Password, c.Database, c.SSLMode,
	)
}
