package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"quiz-seed/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestGet_BeforeInitialize(t *testing.T) {
	assert.NotNil(t, Get())
}

func TestNewCore_ProductionWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	l := zap.New(newCore(config.LoggerConfig{Level: "info", Env: "production"}, zapcore.AddSync(&buf)))

	l.Info("levels seeded", zap.Int("count", 3))
	require.NoError(t, l.Sync())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "levels seeded", entry["msg"])
	assert.Equal(t, "info", entry["level"])
	assert.EqualValues(t, 3, entry["count"])
}

func TestNewCore_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := zap.New(newCore(config.LoggerConfig{Level: "warn", Env: "production"}, zapcore.AddSync(&buf)))

	l.Info("hidden")
	assert.Empty(t, buf.String())

	l.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewCore_UnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	l := zap.New(newCore(config.LoggerConfig{Level: "verbose"}, zapcore.AddSync(&buf)))

	l.Debug("hidden")
	l.Info("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestInitialize(t *testing.T) {
	require.NoError(t, Initialize(config.LoggerConfig{Level: "debug"}))
	assert.True(t, Get().Core().Enabled(zapcore.DebugLevel))
}
