package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// ConnectionPoolMetrics tracks database connection pool metrics
type ConnectionPoolMetrics struct {
	OpenConnections    int           `json:"openConnections"`
	IdleConnections    int           `json:"idleConnections"`
	MaxOpenConnections int           `json:"maxOpenConnections"`
	InUse              int           `json:"inUse"`
	WaitCount          int64         `json:"waitCount"`
	WaitDuration       time.Duration `json:"waitDuration"`
}

// poolExhaustionRatio is the share of in-use connections that triggers a warning
const poolExhaustionRatio = 0.8

// PoolMetrics converts sql.DBStats to ConnectionPoolMetrics
func PoolMetrics(stats sql.DBStats) ConnectionPoolMetrics {
	return ConnectionPoolMetrics{
		OpenConnections:    stats.OpenConnections,
		IdleConnections:    stats.Idle,
		MaxOpenConnections: stats.MaxOpenConnections,
		InUse:              stats.InUse,
		WaitCount:          stats.WaitCount,
		WaitDuration:       stats.WaitDuration,
	}
}

// NearlyExhausted reports whether most of the pool is in use
func (m ConnectionPoolMetrics) NearlyExhausted() bool {
	if m.MaxOpenConnections <= 0 {
		return false
	}
	return float64(m.InUse) > float64(m.MaxOpenConnections)*poolExhaustionRatio
}

// Health pings the database and returns the pool metrics
func (c *Connection) Health(ctx context.Context) (ConnectionPoolMetrics, error) {
	sqlDB, err := c.DB.DB()
	if err != nil {
		return ConnectionPoolMetrics{}, fmt.Errorf("failed to get database connection: %w", err)
	}

	ctx, cancel := c.WithTimeout(ctx)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		c.logger.Error("Database health check failed", map[string]any{"error": err.Error()})
		return ConnectionPoolMetrics{}, err
	}

	metrics := PoolMetrics(sqlDB.Stats())
	if metrics.NearlyExhausted() {
		c.logger.Warn("Database connection pool nearly exhausted", map[string]any{
			"in_use":     metrics.InUse,
			"max_open":   metrics.MaxOpenConnections,
			"idle":       metrics.IdleConnections,
			"wait_count": metrics.WaitCount,
			"wait_time":  metrics.WaitDuration.String(),
		})
	}
	return metrics, nil
}
