package config

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "GIN_MODE", "PROFILE_PATH", "LOG_LEVEL", "LOG_FORMAT",
		"SHUTDOWN_TIMEOUT", "OTEL_ENDPOINT", "OTEL_ENABLED",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "debug", cfg.GinMode)
	assert.Equal(t, "", cfg.ProfilePath)
	assert.Equal(t, slog.LevelInfo, cfg.Level())
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.False(t, cfg.TracingEnabled())
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("GIN_MODE", "release")
	t.Setenv("PROFILE_PATH", "/tmp/profile.yaml")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("OTEL_ENDPOINT", "http://localhost:4318")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "release", cfg.GinMode)
	assert.Equal(t, "/tmp/profile.yaml", cfg.ProfilePath)
	assert.Equal(t, slog.LevelDebug, cfg.Level())
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
	assert.True(t, cfg.TracingEnabled())
}

func TestLoad_BadPort(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "not-a-number")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env")
}

func TestValidate(t *testing.T) {
	valid := Config{
		Port:            8080,
		GinMode:         "debug",
		LogLevel:        "info",
		LogFormat:       "text",
		ShutdownTimeout: time.Second,
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"port too high", func(c *Config) { c.Port = 70000 }, "'PORT'"},
		{"port zero", func(c *Config) { c.Port = 0 }, "'PORT'"},
		{"gin mode", func(c *Config) { c.GinMode = "verbose" }, "'GIN_MODE'"},
		{"log level", func(c *Config) { c.LogLevel = "loud" }, "'LOG_LEVEL'"},
		{"log format", func(c *Config) { c.LogFormat = "xml" }, "'LOG_FORMAT'"},
		{"shutdown timeout", func(c *Config) { c.ShutdownTimeout = 0 }, "'SHUTDOWN_TIMEOUT'"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestTracingEnabled_ExplicitlyDisabled(t *testing.T) {
	cfg := Config{OTelEndpoint: "http://localhost:4318", OTelEnabled: false}
	assert.False(t, cfg.TracingEnabled())
}
