package model

import (
	"time"
)

// LocaleBundle stores one locale bundle as its YAML document
type LocaleBundle struct {
	Identifier string    `gorm:"primaryKey;type:varchar(5)"`
	Payload    string    `gorm:"type:text;not null"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`
}

// TableName specifies the table name for LocaleBundle
func (LocaleBundle) TableName() string {
	return "locale_bundles"
}
