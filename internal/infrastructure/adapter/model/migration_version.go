package model

import "time"

// MigrationVersion records one applied schema version of the locale store.
// Rows are append-only; the newest AppliedAt is the current version.
type MigrationVersion struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	Version   string    `gorm:"type:varchar(20);not null;index"`
	AppliedAt time.Time `gorm:"not null;index"`
	Details   string    `gorm:"type:text;null"`
}

// TableName specifies the table name for the migration version model
func (MigrationVersion) TableName() string {
	return "migration_versions"
}
