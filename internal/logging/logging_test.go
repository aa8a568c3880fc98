package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"Info", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level, err := ParseLevel(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, level)
		})
	}
}

func TestParseLevelInvalid(t *testing.T) {
	for _, in := range []string{"trace", ""} {
		_, err := ParseLevel(in)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown log level")
	}
}

func TestSetupWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "tripkit.log")

	logger, cleanup, err := Setup(path, slog.LevelInfo)
	require.NoError(t, err)
	logger.Info("hello", "scenario", "cars")
	logger.Debug("filtered out")
	cleanup()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
	assert.Contains(t, string(data), `"scenario":"cars"`)
	assert.NotContains(t, string(data), "filtered out")
}

func TestSetupStderrOnly(t *testing.T) {
	logger, cleanup, err := Setup("", slog.LevelWarn)
	require.NoError(t, err)
	defer cleanup()
	assert.NotNil(t, logger)
}
