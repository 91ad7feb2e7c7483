package config

import (
	"os" // For environment variables

	"github.com/joho/godotenv" // For loading .env files
)

// Config holds the application configuration
type Config struct {
	AppPort     string // Application port
	DatabaseURL string // MySQL DSN; empty means use the local SQLite file
	SQLitePath  string // Path of the fallback SQLite database file
	IsProd      bool   // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	cfg := &Config{
		AppPort:     os.Getenv("APP_PORT"),          // Application port
		DatabaseURL: os.Getenv("DATABASE_URL"),      // Switchable connection string
		SQLitePath:  os.Getenv("SQLITE_PATH"),       // SQLite file path
		IsProd:      os.Getenv("IS_PROD") == "true", // Is production environment
	}
	if cfg.AppPort == "" {
		cfg.AppPort = "3000" // Default port
	}
	if cfg.SQLitePath == "" {
		cfg.SQLitePath = "/tmp/starwars.db" // Default local file-backed store
	}
	return cfg
}
