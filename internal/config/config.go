package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// app config; storage and provider specifics are read by their own packages
type Config struct {
	Port     string
	Provider string

	// JWTSecret enables bearer auth on the API surface when non-empty.
	JWTSecret string

	// GenerationAttempts caps question-source calls per selection call.
	GenerationAttempts int

	// Bank maintenance job settings.
	MaintenanceEnabled  bool
	MaintenanceSchedule string
	StaleAfter          time.Duration
}

// loads configuration from environment variables
func LoadConfig() (*Config, error) {
	config := &Config{
		Port:                getEnvOrDefault("PORT", "8080"),
		Provider:            getEnvOrDefault("AI_PROVIDER", "gemini"),
		JWTSecret:           os.Getenv("JWT_SECRET"),
		GenerationAttempts:  getEnvIntOrDefault("GENERATION_ATTEMPTS", 2),
		MaintenanceEnabled:  getEnvOrDefault("MAINTENANCE_ENABLED", "false") == "true",
		MaintenanceSchedule: getEnvOrDefault("MAINTENANCE_SCHEDULE", "0 3 * * *"),
		StaleAfter:          getEnvDurationOrDefault("STALE_AFTER", 90*24*time.Hour),
	}
	if err := validateConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

func validateConfig(config *Config) error {
	if config.Provider != "gemini" {
		return errors.New("unsupported AI provider: " + config.Provider + ". Currently supported: gemini")
	}
	if config.GenerationAttempts < 1 {
		return errors.New("GENERATION_ATTEMPTS must be at least 1")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
