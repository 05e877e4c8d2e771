// internal/config/config.go
//
// Environment-driven configuration, loaded once at startup. A .env file
// in the working directory is honored when present; every key has a
// working default so a bare checkout runs.

package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DBPath    string // SQLite database file for scores and profiles
	LogLevel  string // zerolog level name
	Port      int    // scores API listen port (serve subcommand)
	DailySalt string // daily challenge seed salt
	NoColor   bool   // disable ANSI colors in board and log output
}

// Load reads configuration from the environment, after loading .env if
// one exists.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		DBPath:    getEnv("MASTERMIND_DB", "./data/mastermind.db"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		Port:      getEnvAsInt("PORT", 5175),
		DailySalt: getEnv("DAILY_SALT", "local_dev_salt"),
		NoColor:   getEnvAsBool("NO_COLOR", false),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
