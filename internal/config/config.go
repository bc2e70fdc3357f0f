package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"form-palette/internal/render"
)

// DefaultFile is read when present in the working directory
const DefaultFile = "palette.json"

// Config holds all palette service configuration values.
type Config struct {
	Listen        string `json:"listen"`
	MetricsListen string `json:"metrics_listen"`
	Format        string `json:"format"`
	RateLimitRPM  int    `json:"rate_limit_rpm"`

	// Key rate limits on X-Forwarded-For/X-Real-IP instead of the peer
	// address. Only safe behind a proxy that sets those headers itself.
	TrustProxyHeaders bool `json:"trust_proxy_headers"`

	// Environment configuration (loaded from env vars)
	Env *EnvConfig `json:"-"`
}

// Default returns the built-in configuration without consulting files or env
func Default() *Config {
	return &Config{
		Listen:        ":8080",
		MetricsListen: ":9090",
		Format:        string(render.FormatJSON),
		RateLimitRPM:  120,
		Env:           &EnvConfig{Env: Development, LogLevel: "info"},
	}
}

// Load builds the configuration in layers: defaults, the optional JSON file
// at path, then environment variables. A .env file in the working directory
// is loaded first if present; variables already set in the process win.
func Load(path string) (*Config, error) {
	// Ignore the error: in production the environment is usually injected
	_ = godotenv.Load()

	cfg := Default()
	cfg.Env = LoadEnv()

	if path == "" {
		path = DefaultFile
	}
	if file, err := os.Open(path); err == nil {
		defer file.Close()
		if err := json.NewDecoder(file).Decode(cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	} else if !errors.Is(err, os.ErrNotExist) || path != DefaultFile {
		return nil, fmt.Errorf("open config: %w", err)
	}

	cfg.Listen = getEnvOrDefault("PALETTE_LISTEN", cfg.Listen)
	cfg.MetricsListen = getEnvOrDefault("PALETTE_METRICS_LISTEN", cfg.MetricsListen)
	cfg.Format = strings.ToLower(getEnvOrDefault("PALETTE_FORMAT", cfg.Format))
	cfg.RateLimitRPM = parseIntOrDefault(getEnvOrDefault("PALETTE_RATE_LIMIT_RPM", ""), cfg.RateLimitRPM)
	if v := os.Getenv("PALETTE_TRUST_PROXY"); v != "" {
		cfg.TrustProxyHeaders = strings.EqualFold(strings.TrimSpace(v), "true")
	}

	return cfg, nil
}

// DefaultFormat returns the configured output format, falling back to JSON
func (c *Config) DefaultFormat() render.Format {
	f, err := render.ParseFormat(c.Format)
	if err != nil {
		return render.FormatJSON
	}
	return f
}

// Validate checks the configuration for errors and returns helpful messages.
func (c *Config) Validate() error {
	var errs []string

	if c.Listen == "" {
		errs = append(errs, "listen address is required")
	}
	if c.MetricsListen != "" && c.MetricsListen == c.Listen {
		errs = append(errs, "metrics_listen must differ from listen")
	}
	if _, err := render.ParseFormat(c.Format); err != nil {
		errs = append(errs, fmt.Sprintf("format %q is not one of %v", c.Format, render.Formats()))
	}
	if c.RateLimitRPM < 0 {
		errs = append(errs, "rate_limit_rpm must not be negative")
	}

	if len(errs) > 0 {
		return errors.New("config validation failed:\n  - " + strings.Join(errs, "\n  - "))
	}

	return nil
}
