package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"form-palette/internal/render"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("APP_ENV", "")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Listen)
	assert.Equal(t, ":9090", cfg.MetricsListen)
	assert.Equal(t, render.FormatJSON, cfg.DefaultFormat())
	assert.Equal(t, 120, cfg.RateLimitRPM)
	assert.True(t, cfg.Env.IsDevelopment())
	assert.Equal(t, "debug", cfg.Env.LogLevel)
	require.NoError(t, cfg.Validate())
}

func TestLoadFileThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"listen":":7000","format":"css","rate_limit_rpm":10}`), 0o600))

	t.Setenv("PALETTE_RATE_LIMIT_RPM", "30")
	t.Setenv("APP_ENV", "Production")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.Listen)
	assert.Equal(t, render.FormatCSS, cfg.DefaultFormat())
	assert.Equal(t, 30, cfg.RateLimitRPM)
	assert.True(t, cfg.Env.IsProduction())
	assert.Equal(t, "info", cfg.Env.LogLevel)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("PALETTE_FORMAT=HEX\n"), 0o600))
	// t.Setenv registers cleanup for a variable godotenv is about to set
	t.Setenv("PALETTE_FORMAT", "")
	require.NoError(t, os.Unsetenv("PALETTE_FORMAT"))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "hex", cfg.Format)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"listen":`), 0o600))
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse")
}

func TestValidateCollectsAllErrors(t *testing.T) {
	cfg := Default()
	cfg.Listen = ""
	cfg.Format = "yaml"
	cfg.RateLimitRPM = -1

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listen address is required")
	assert.Contains(t, err.Error(), `format "yaml"`)
	assert.Contains(t, err.Error(), "rate_limit_rpm")

	cfg = Default()
	cfg.MetricsListen = cfg.Listen
	assert.ErrorContains(t, cfg.Validate(), "metrics_listen")
	assert.Equal(t, render.FormatJSON, (&Config{Format: "yaml"}).DefaultFormat())
}

func TestTrustProxyHeaders(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PALETTE_TRUST_PROXY", "")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.False(t, cfg.TrustProxyHeaders)

	path := filepath.Join(t.TempDir(), "proxy.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"trust_proxy_headers":true}`), 0o600))
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.TrustProxyHeaders)

	t.Setenv("PALETTE_TRUST_PROXY", "false")
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.False(t, cfg.TrustProxyHeaders)

	t.Setenv("PALETTE_TRUST_PROXY", "TRUE")
	cfg, err = Load("")
	require.NoError(t, err)
	assert.True(t, cfg.TrustProxyHeaders)
}
