package logging

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"INFO", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"warning", zapcore.WarnLevel},
		{" error ", zapcore.ErrorLevel},
		{"chatty", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestInitializeSilentByDefault(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "")

	require.NoError(t, InitializeFromEnv())
	assert.False(t, GetLogger().Core().Enabled(zapcore.ErrorLevel))
}

func TestInitializeWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "tuibox.log")

	require.NoError(t, Initialize("debug", path))
	t.Cleanup(func() { setLogger(zap.NewNop()) })

	LogAction("keybind", "say_hello")
	LogStoreOp("channels", "sample", 3*time.Millisecond, nil)
	LogStoreOp("set_seen", "mongo", time.Millisecond, errors.New("boom"))
	Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	content := string(data)
	assert.Contains(t, content, "say_hello")
	assert.Contains(t, content, "Store operation failed")
	assert.Contains(t, content, "boom")
}

func TestInitializeUsesEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "env.log")
	t.Setenv(LogLevelEnvVar, "info")
	t.Setenv(LogFileEnvVar, path)

	require.NoError(t, InitializeFromEnv())
	t.Cleanup(func() { setLogger(zap.NewNop()) })

	LogScreen("push", "popup")
	Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "popup")
}
