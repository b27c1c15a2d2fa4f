package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netflow/internal/config"
)

func TestLoad_DefaultsWithNoFile(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	require.Equal(t, "dinic", cfg.Algorithm)
	require.Equal(t, "plain", cfg.Output)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, "text", cfg.Log.Format)
	require.Equal(t, "stderr", cfg.Log.Output)
}

func TestLoad_EnvOverridesDefaults(t *testing.T) {
	t.Setenv("NETFLOW_ALGORITHM", "edmonds-karp")
	t.Setenv("NETFLOW_LOG_LEVEL", "debug")

	cfg, err := config.Load("")
	require.NoError(t, err)
	require.Equal(t, "edmonds-karp", cfg.Algorithm)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_MissingFileIsError(t *testing.T) {
	_, err := config.Load("/nonexistent/path/netflow.yaml")
	require.Error(t, err)
}
