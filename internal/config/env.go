package config

import (
	"os"
	"strconv"
	"strings"
)

// Environment represents the application environment
type Environment string

const (
	// Development environment - verbose logging, banner shown
	Development Environment = "development"
	// Production environment
	Production Environment = "production"
)

// EnvConfig holds environment-specific configuration
type EnvConfig struct {
	// Environment name (development, production)
	Env Environment

	Debug    bool
	LogLevel string
}

// LoadEnv loads environment configuration from environment variables
func LoadEnv() *EnvConfig {
	cfg := &EnvConfig{
		Env:      Environment(strings.ToLower(getEnvOrDefault("APP_ENV", "development"))),
		LogLevel: getEnvOrDefault("LOG_LEVEL", ""),
	}

	switch cfg.Env {
	case Production:
		cfg.Debug = getEnvOrDefault("DEBUG", "false") == "true"
		if cfg.LogLevel == "" {
			cfg.LogLevel = "info"
		}
	default:
		cfg.Env = Development // Normalize unknown envs to development
		cfg.Debug = getEnvOrDefault("DEBUG", "true") == "true"
		if cfg.LogLevel == "" {
			cfg.LogLevel = "debug"
		}
	}

	return cfg
}

// IsDevelopment returns true if running in development mode
func (e *EnvConfig) IsDevelopment() bool {
	return e.Env == Development
}

// IsProduction returns true if running in production mode
func (e *EnvConfig) IsProduction() bool {
	return e.Env == Production
}

// String returns the environment name
func (e Environment) String() string {
	return string(e)
}

// getEnvOrDefault returns environment variable value or default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// parseIntOrDefault parses a string as int, returning default on error
func parseIntOrDefault(s string, defaultValue int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return defaultValue
	}
	return n
}
