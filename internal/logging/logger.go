// Package logging provides centralized logging functionality for the application.
//
// Logs are written to stderr so that generated commands on stdout stay
// copy-pasteable.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// LogLevel represents the logging level.
type LogLevel string

const (
	// LevelDebug for detailed troubleshooting information.
	LevelDebug LogLevel = "debug"
	// LevelInfo for general operational information.
	LevelInfo LogLevel = "info"
	// LevelWarn for potentially harmful situations.
	LevelWarn LogLevel = "warn"
	// LevelError for error events that might still allow the application to continue.
	LevelError LogLevel = "error"
)

// Environment variables consulted for the initial level, in order.
var levelEnvVars = []string{"FLOWCMD_LOG_LEVEL", "LOG_LEVEL"}

var defaultLogger *slog.Logger

func init() {
	SetupLogger(os.Stderr, LevelFromEnv())
}

// LevelFromEnv returns the level named by FLOWCMD_LOG_LEVEL or LOG_LEVEL,
// defaulting to info.
func LevelFromEnv() LogLevel {
	for _, key := range levelEnvVars {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			return LogLevel(strings.ToLower(v))
		}
	}
	return LevelInfo
}

// Valid reports whether l is one of the known levels.
func (l LogLevel) Valid() bool {
	switch l {
	case LevelDebug, LevelInfo, LevelWarn, LevelError:
		return true
	}
	return false
}

func (l LogLevel) slogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// SetupLogger configures the logger with the specified output and level.
// Unknown levels fall back to info.
func SetupLogger(w io.Writer, level LogLevel) {
	opts := &slog.HandlerOptions{
		Level: level.slogLevel(),
	}

	handler := slog.NewTextHandler(w, opts)
	defaultLogger = slog.New(handler)
	slog.SetDefault(defaultLogger)
}

// Debug logs a message at debug level.
func Debug(msg string, args ...any) {
	defaultLogger.Debug(msg, args...)
}

// Info logs a message at info level.
func Info(msg string, args ...any) {
	defaultLogger.Info(msg, args...)
}

// Warn logs a message at warn level.
func Warn(msg string, args ...any) {
	defaultLogger.Warn(msg, args...)
}

// Error logs a message at error level.
func Error(msg string, args ...any) {
	defaultLogger.Error(msg, args...)
}

// GetLogger returns the default logger.
func GetLogger() *slog.Logger {
	return defaultLogger
}
