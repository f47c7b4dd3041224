package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm/logger"

	"github.com/amirhossein-jamali/timewriter/mocks/port/core"
)

func TestDatabaseLoggerTrace(t *testing.T) {
	query := func(sql string) func() (string, int64) {
		return func() (string, int64) { return sql, 1 }
	}

	t.Run("should log failed queries as errors", func(t *testing.T) {
		l := new(core.MockLogger)
		l.On("Error", "SQL Error", mock.MatchedBy(func(f map[string]any) bool {
			return f["error"] == "boom" && f["type"] == "SELECT" && f["table"] == "locale_bundles"
		})).Return().Once()

		db := NewDatabaseLogger(l, "warn")
		db.Trace(context.Background(), time.Now(), query(`SELECT * FROM "locale_bundles"`), errors.New("boom"))
		l.AssertExpectations(t)
	})

	t.Run("should warn about slow queries", func(t *testing.T) {
		l := new(core.MockLogger)
		l.On("Warn", "Slow SQL Query", mock.Anything).Return().Once()

		db := NewDatabaseLogger(l, "warn").(*DatabaseLogger).WithSlowThreshold(time.Millisecond)
		db.Trace(context.Background(), time.Now().Add(-time.Second), query("DELETE FROM locale_bundles"), nil)
		l.AssertExpectations(t)
	})

	t.Run("should keep regular queries at debug", func(t *testing.T) {
		l := new(core.MockLogger)
		l.On("Debug", "SQL Query", mock.Anything).Return().Once()

		NewDatabaseLogger(l, "info").Trace(context.Background(), time.Now(), query("INSERT INTO locale_bundles (identifier) VALUES ($1)"), nil)
		l.AssertExpectations(t)
	})

	t.Run("should stay silent", func(t *testing.T) {
		l := new(core.MockLogger)
		NewDatabaseLogger(l, "info").LogMode(logger.Silent).Trace(context.Background(), time.Now(), query("SELECT 1"), errors.New("ignored"))
		l.AssertNotCalled(t, "Error", mock.Anything, mock.Anything)
	})
}

func TestExtractSQLParts(t *testing.T) {
	testCases := []struct {
		sql, kind, table string
	}{
		{`SELECT * FROM "locale_bundles" ORDER BY identifier`, "SELECT", "locale_bundles"},
		{`INSERT INTO "migration_versions" ("version") VALUES ($1)`, "INSERT", "migration_versions"},
		{`UPDATE "locale_bundles" SET "payload"=$1`, "UPDATE", "locale_bundles"},
		{"  delete from locale_bundles where identifier = $1", "DELETE", "locale_bundles"},
		{"CREATE INDEX IF NOT EXISTS idx ON locale_bundles (updated_at)", "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.sql, func(t *testing.T) {
			assert.Equal(t, tc.kind, extractQueryType(tc.sql))
			assert.Equal(t, tc.table, extractTableName(tc.sql))
		})
	}
}
