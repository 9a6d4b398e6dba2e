package observability

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger_Levels(t *testing.T) {
	logger, err := newLogger("debug", []string{"stderr"})
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))

	logger, err = newLogger("nonsense", []string{"stderr"})
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, logger.Core().Enabled(zapcore.InfoLevel))
}

func TestNewLogger_JSONFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.json")
	logger, err := newLogger("info", []string{path})
	require.NoError(t, err)

	logger.Info("hello", zap.String("request_id", "r1"))
	_ = logger.Sync()

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(raw, &entry))
	assert.Equal(t, "hello", entry["message"])
	assert.Equal(t, "INFO", entry["severity"])
	assert.Equal(t, "r1", entry["request_id"])
}
