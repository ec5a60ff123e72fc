package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()

	require.Nil(t, err)
	assert.Equal(t, ":8080", cfg.ServerAddress)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, 50, cfg.MaxIterations)
	assert.Equal(t, 30.0, cfg.SolveTimeLimit)
	assert.True(t, cfg.EnableCORS)
	assert.True(t, cfg.EnableMetrics)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", ":9090")
	t.Setenv("MAX_ITERATIONS", "7")
	t.Setenv("SOLVE_TIME_LIMIT", "2.5")
	t.Setenv("ENABLE_CORS", "false")

	cfg, err := Load()

	require.Nil(t, err)
	assert.Equal(t, ":9090", cfg.ServerAddress)
	assert.Equal(t, 7, cfg.MaxIterations)
	assert.Equal(t, 2.5, cfg.SolveTimeLimit)
	assert.False(t, cfg.EnableCORS)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("MAX_ITERATIONS", "-3")

	_, err := Load()

	assert.NotNil(t, err)
}

func TestUnparsableValuesFallBackToDefaults(t *testing.T) {
	t.Setenv("MAX_ITERATIONS", "many")

	cfg, err := Load()

	require.Nil(t, err)
	assert.Equal(t, 50, cfg.MaxIterations)
}
