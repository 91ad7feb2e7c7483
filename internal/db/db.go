package db

import (
	"starwars_api/internal/config" // Application configuration

	"gorm.io/driver/mysql"  // MySQL driver for GORM
	"gorm.io/driver/sqlite" // SQLite driver for GORM
	"gorm.io/gorm"          // GORM ORM library
)

// Open connects to the configured database: MySQL when DATABASE_URL is set,
// otherwise the local SQLite file.
func Open(cfg *config.Config) (*gorm.DB, error) {
	if cfg.DatabaseURL != "" {
		return gorm.Open(mysql.Open(cfg.DatabaseURL), &gorm.Config{}) // Switchable connection string
	}
	// SQLite ships with foreign keys off; the cascade constraints on the
	// models need them on for every pooled connection
	return gorm.Open(sqlite.Open(cfg.SQLitePath+"?_foreign_keys=on"), &gorm.Config{}) // Local file-backed store
}
