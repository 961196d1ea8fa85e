package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreLogger(t *testing.T) {
	t.Helper()
	original := defaultLogger
	t.Cleanup(func() {
		defaultLogger = original
	})
}

func TestSetupLoggerFiltersByLevel(t *testing.T) {
	restoreLogger(t)

	tests := []struct {
		name      string
		level     LogLevel
		shouldLog map[string]bool
	}{
		{
			name:      "Debug level logs everything",
			level:     LevelDebug,
			shouldLog: map[string]bool{"DEBUG": true, "INFO": true, "WARN": true, "ERROR": true},
		},
		{
			name:      "Info level",
			level:     LevelInfo,
			shouldLog: map[string]bool{"DEBUG": false, "INFO": true, "WARN": true, "ERROR": true},
		},
		{
			name:      "Warn level",
			level:     LevelWarn,
			shouldLog: map[string]bool{"DEBUG": false, "INFO": false, "WARN": true, "ERROR": true},
		},
		{
			name:      "Error level",
			level:     LevelError,
			shouldLog: map[string]bool{"DEBUG": false, "INFO": false, "WARN": false, "ERROR": true},
		},
		{
			name:      "Invalid level defaults to info",
			level:     LogLevel("invalid"),
			shouldLog: map[string]bool{"DEBUG": false, "INFO": true, "WARN": true, "ERROR": true},
		},
	}

	funcs := map[string]func(string, ...any){
		"DEBUG": Debug,
		"INFO":  Info,
		"WARN":  Warn,
		"ERROR": Error,
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			SetupLogger(&buf, tt.level)
			require.NotNil(t, GetLogger())

			for name, logFunc := range funcs {
				buf.Reset()
				logFunc("generated commands", "count", 9)
				output := buf.String()

				if tt.shouldLog[name] {
					assert.Contains(t, output, "level="+name)
					assert.Contains(t, output, "generated commands")
					assert.Contains(t, output, "count=9")
				} else {
					assert.Empty(t, output, "level %s should be filtered", name)
				}
			}
		})
	}
}

func TestLevelFromEnv(t *testing.T) {
	tests := []struct {
		name     string
		flowcmd  string
		generic  string
		expected LogLevel
	}{
		{name: "Nothing set defaults to info", expected: LevelInfo},
		{name: "Generic variable", generic: "warn", expected: LevelWarn},
		{name: "Prefixed variable wins", flowcmd: "DEBUG", generic: "error", expected: LevelDebug},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("FLOWCMD_LOG_LEVEL", tt.flowcmd)
			t.Setenv("LOG_LEVEL", tt.generic)
			assert.Equal(t, tt.expected, LevelFromEnv())
		})
	}
}

func TestLogLevelValid(t *testing.T) {
	for _, l := range []LogLevel{LevelDebug, LevelInfo, LevelWarn, LevelError} {
		assert.True(t, l.Valid(), string(l))
	}
	assert.False(t, LogLevel("verbose").Valid())
}
