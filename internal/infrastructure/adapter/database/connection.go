package database

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/timewriter/internal/domain/port/core"
)

// maxRetryDelay caps the pause between connection attempts
const maxRetryDelay = 30 * time.Second

// Connection holds database connection and configuration
type Connection struct {
	DB     *gorm.DB
	Config *Config
	logger coreport.Logger
}

// Connect opens a PostgreSQL connection, retrying transient failures
func Connect(ctx context.Context, config *Config, logger coreport.Logger, clock coreport.TimeProvider) (*Connection, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid database configuration: %w", err)
	}

	logger.Info("Connecting to database", map[string]any{
		"host": config.Host,
		"port": config.Port,
		"name": config.Database,
	})

	gormConfig := &gorm.Config{
		Logger:      NewDatabaseLogger(logger, config.LogLevel),
		NowFunc:     clock.Now,
		PrepareStmt: true,
	}

	retrier := NewRetrier(Backoff{
		Attempts: config.RetryAttempts + 1,
		Initial:  config.RetryDelay,
		Max:      maxRetryDelay,
		Jitter:   DefaultBackoff().Jitter,
	}, logger)

	var db *gorm.DB
	err := retrier.Do(ctx, "connect", func(ctx context.Context) error {
		var openErr error
		db, openErr = gorm.Open(postgres.Open(config.DSN()), gormConfig)
		if openErr != nil {
			return openErr
		}
		sqlDB, openErr := db.DB()
		if openErr != nil {
			return openErr
		}
		pingCtx, cancel := context.WithTimeout(ctx, config.QueryTimeout)
		defer cancel()
		return sqlDB.PingContext(pingCtx)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}
	sqlDB.SetMaxOpenConns(config.MaxOpenConns)
	sqlDB.SetMaxIdleConns(config.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(config.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(config.ConnMaxIdleTime)

	logger.Info("Successfully connected to database", map[string]any{
		"host":           config.Host,
		"name":           config.Database,
		"max_open_conns": config.MaxOpenConns,
		"max_idle_conns": config.MaxIdleConns,
	})

	return &Connection{DB: db, Config: config, logger: logger}, nil
}

// Close closes the database connection
func (c *Connection) Close() error {
	c.logger.Info("Closing database connection", nil)
	sqlDB, err := c.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}
	return sqlDB.Close()
}

// WithTimeout returns a context bounded by the configured query timeout
func (c *Connection) WithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, c.Config.QueryTimeout)
}
