package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hmdeck/cruise-packing/internal/config"
)

// TestLoad_defaults verifies that every optional variable falls back to its
// default when the environment is empty.
func TestLoad_defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("CORS_ORIGINS", "")
	t.Setenv("MAX_BODY_BYTES", "")

	cfg, err := config.Load()

	require.NoError(t, err)
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "info", cfg.LogLevel)
	require.Empty(t, cfg.DatabaseURL, "DATABASE_URL is optional; empty means in-memory store")
	require.Equal(t, []string{"http://localhost:5173"}, cfg.CORSOrigins)
	require.EqualValues(t, 1048576, cfg.MaxBodyBytes)
}

// TestLoad_overrides verifies that all values can be overridden via env vars.
func TestLoad_overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_URL", "postgres://user:pass@db:5432/packing")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ORIGINS", "https://app.example.com, https://admin.example.com")
	t.Setenv("MAX_BODY_BYTES", "2048")

	cfg, err := config.Load()

	require.NoError(t, err)
	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, "postgres://user:pass@db:5432/packing", cfg.DatabaseURL)
	require.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.CORSOrigins)
	require.EqualValues(t, 2048, cfg.MaxBodyBytes)
}

// TestLoad_badBodyLimit verifies that an unusable MAX_BODY_BYTES is rejected
// with an error naming the variable.
func TestLoad_badBodyLimit(t *testing.T) {
	t.Setenv("MAX_BODY_BYTES", "lots")

	_, err := config.Load()

	require.Error(t, err)
	require.ErrorContains(t, err, "MAX_BODY_BYTES")
}
