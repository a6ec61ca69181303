package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Port string

	// GBIF upstream configuration
	GBIFBaseURL        string // base URL of the GBIF v1 API
	GBIFTimeoutSeconds int    // per-request timeout for upstream calls

	// Logging
	LogLevel  string // debug, info, warn, error
	LogPretty bool   // console writer output for local development
}

// Load reads configuration from environment variables with sensible
// defaults. A .env file is honored when present (local development); in
// production the environment is set directly.
func Load() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables or defaults")
	}

	return &Config{
		Port: getEnv("PORT", "3000"),

		// The base URL is overridable so deployments and tests can point
		// the service at a fake upstream.
		GBIFBaseURL:        getEnv("GBIF_BASE_URL", "https://api.gbif.org/v1"),
		GBIFTimeoutSeconds: getEnvAsInt("GBIF_TIMEOUT_SECONDS", 20),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogPretty: getEnvAsBool("LOG_PRETTY", true),
	}
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvAsInt reads an environment variable as an integer.
// Returns default if not set or invalid.
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

// getEnvAsBool reads an environment variable as a boolean.
// Returns default if not set or invalid.
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}
