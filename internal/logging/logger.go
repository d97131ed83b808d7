package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger *zap.Logger
	mu     sync.RWMutex
)

const (
	// LogLevelEnvVar controls logging verbosity. Unset means silent.
	// Valid values: "debug", "info", "warn", "error".
	LogLevelEnvVar = "TUIBOX_LOG_LEVEL"

	// LogFileEnvVar overrides where log lines are written.
	LogFileEnvVar = "TUIBOX_LOG_FILE"

	defaultLogFile = "tuibox.log"
)

// Initialize builds the global logger. An empty level falls back to
// TUIBOX_LOG_LEVEL; if that is empty too the logger is a no-op.
//
// Bubble Tea owns stdout while a program runs, so output always goes to a
// file: path, then TUIBOX_LOG_FILE, then tuibox.log in the temp dir.
func Initialize(level, path string) error {
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}
	if level == "" {
		setLogger(zap.NewNop())
		return nil
	}

	if path == "" {
		path = os.Getenv(LogFileEnvVar)
	}
	if path == "" {
		path = filepath.Join(os.TempDir(), defaultLogFile)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(ParseLevel(level)),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{path},
		ErrorOutputPaths: []string{path},
	}
	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	built, err := config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	setLogger(built)
	return nil
}

// InitializeFromEnv initializes logging purely from the environment.
func InitializeFromEnv() error {
	return Initialize("", "")
}

// ParseLevel maps a level name onto a zap level. Unknown names map to info.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func setLogger(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	if logger != nil {
		_ = logger.Sync()
	}
	logger = l
}

// GetLogger returns the global logger, a no-op one until Initialize is called.
func GetLogger() *zap.Logger {
	mu.RLock()
	l := logger
	mu.RUnlock()
	if l != nil {
		return l
	}

	mu.Lock()
	defer mu.Unlock()
	if logger == nil {
		logger = zap.NewNop()
	}
	return logger
}

// Info logs an info message
func Info(msg string, fields ...zap.Field) {
	GetLogger().Info(msg, fields...)
}

// Debug logs a debug message
func Debug(msg string, fields ...zap.Field) {
	GetLogger().Debug(msg, fields...)
}

// Warn logs a warning message
func Warn(msg string, fields ...zap.Field) {
	GetLogger().Warn(msg, fields...)
}

// Error logs an error message
func Error(msg string, fields ...zap.Field) {
	GetLogger().Error(msg, fields...)
}

// LogStoreOp records one document-store operation and how long it took.
// Failed operations are logged at warn level.
func LogStoreOp(op, source string, took time.Duration, err error) {
	fields := []zap.Field{
		zap.String("op", op),
		zap.String("source", source),
		zap.Duration("took", took),
	}
	if err != nil {
		GetLogger().Warn("Store operation failed", append(fields, zap.Error(err))...)
		return
	}
	Debug("Store operation", fields...)
}

// LogAction records a key-bound action fired on a screen.
func LogAction(screen, action string) {
	Debug("Action",
		zap.String("screen", screen),
		zap.String("action", action),
	)
}

// LogScreen records screen stack changes (push, pop, launch).
func LogScreen(event, screen string) {
	Info("Screen event",
		zap.String("event", event),
		zap.String("screen", screen),
	)
}

// Sync flushes any buffered log entries
func Sync() {
	_ = GetLogger().Sync()
}
