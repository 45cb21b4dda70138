package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/agenthands/resumegraph/internal/config"
)

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger(config.LogConfig{Level: "debug"})
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))

	logger, err = NewLogger(config.LogConfig{Level: "warn", Development: true})
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))

	_, err = NewLogger(config.LogConfig{Level: "loud"})
	assert.Error(t, err)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("CONFIG_PATH", t.TempDir()+"/missing.toml")
	t.Setenv("RESUMEGRAPH_MODE", config.ModeBasic)
	t.Setenv("NEO4J_URI", "bolt://graph:7687")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, config.ModeBasic, cfg.Extraction.Mode)
	assert.Equal(t, "bolt://graph:7687", cfg.Graph.URI)
}

func TestLoadConfig_InvalidEnvMode(t *testing.T) {
	t.Setenv("CONFIG_PATH", t.TempDir()+"/missing.toml")
	t.Setenv("RESUMEGRAPH_MODE", "fuzzy")

	_, err := LoadConfig()
	assert.Error(t, err)
}
