package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInit_Defaults(t *testing.T) {
	cfg, err := Init()
	require.NoError(t, err)

	require.Equal(t, "1.0.0", cfg.Version)
	require.Equal(t, "5000", cfg.HTTPServer.Port)
	require.Equal(t, "https://api.coingecko.com/api/v3", cfg.Upstream.BaseURL)
	require.Equal(t, 10, cfg.Upstream.TimeoutSeconds)
	require.Equal(t, 300, cfg.Cache.DurationSeconds)
	require.True(t, cfg.Cache.RefreshEnabled)
	require.Equal(t, "info", cfg.Logging.Level)
	require.False(t, cfg.Logging.Debug)
}

func TestInit_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("API_TIMEOUT", "3")
	t.Setenv("CACHE_DURATION", "60")
	t.Setenv("APP_VERSION", "2.1.0")
	t.Setenv("REFRESH_ENABLED", "false")
	t.Setenv("DEBUG", "true")

	cfg, err := Init()
	require.NoError(t, err)

	require.Equal(t, "8080", cfg.HTTPServer.Port)
	require.Equal(t, 3, cfg.Upstream.TimeoutSeconds)
	require.Equal(t, 60, cfg.Cache.DurationSeconds)
	require.Equal(t, "2.1.0", cfg.Version)
	require.False(t, cfg.Cache.RefreshEnabled)
	require.True(t, cfg.Logging.Debug)
}
