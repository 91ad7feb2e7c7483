package main

import (
	"starwars_api/internal/config" // Custom import path (Config)
	"starwars_api/internal/db"     // Custom import path (Database)

	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// Main entry point for migration
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Open the configured database and create the schema
	gdb, err := db.Open(cfg)
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err) // Fatal error if connection fails
	}
	db.Migrate(gdb)
}
