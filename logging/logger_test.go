package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewLevels(t *testing.T) {
	logger, err := New("production", "warn")
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))

	logger, err = New("development", "")
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
}

func TestNewInvalidLevel(t *testing.T) {
	_, err := New("development", "loud")
	assert.Error(t, err)
}

func TestInstallReplacesGlobal(t *testing.T) {
	before := zap.L()

	restore, err := Install("production", "error")
	require.NoError(t, err)
	assert.NotSame(t, before, zap.L())
	assert.False(t, zap.L().Core().Enabled(zapcore.WarnLevel))

	restore()
	assert.Same(t, before, zap.L())
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catbrowse.log")

	logger, err := New("production", "info", path)
	require.NoError(t, err)
	logger.Info("Cat added", zap.String("name", "Mimi"))
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"name":"Mimi"`)
}
