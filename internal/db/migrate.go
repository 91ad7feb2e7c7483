package db

import (
	"starwars_api/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus"

	"gorm.io/gorm" // GORM ORM library
)

// Migrate performs automatic migration for the database schema
func Migrate(gdb *gorm.DB) {
	// AutoMigrate will create tables, missing foreign keys, constraints, columns and indexes
	err := gdb.AutoMigrate(&domain.User{}, &domain.Character{}, &domain.Planet{}, &domain.Favorite{})
	if err != nil {
		logrus.Fatalf("migration failed: %v", err) // Log fatal error if migration fails
	}
	logrus.Info("Migration completed.") // Log successful migration
}
