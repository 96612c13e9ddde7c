package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default warn level", 0, zerolog.WarnLevel},
		{"info level", 1, zerolog.InfoLevel},
		{"debug level", 2, zerolog.DebugLevel},
		{"trace level", 3, zerolog.TraceLevel},
		{"high verbosity defaults to trace", 5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			t.Setenv("XDG_STATE_HOME", tempDir)

			SetupLogger(tt.verbosity)

			if zerolog.GlobalLevel() != tt.wantLevel {
				t.Errorf("SetupLogger(%d) set level to %v, want %v",
					tt.verbosity, zerolog.GlobalLevel(), tt.wantLevel)
			}

			logPath := filepath.Join(tempDir, "msgkit", "msgkit.log")
			if _, err := os.Stat(logPath); os.IsNotExist(err) {
				t.Errorf("Log file was not created at %s", logPath)
			}
		})
	}
}

func TestQuietDefaultDropsDebug(t *testing.T) {
	quiet()
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	var buf bytes.Buffer
	log.Logger = log.Logger.Output(&buf)
	logger := GetLogger("renderer")
	logger.Debug().Str("shape", "format/1").Msg("Renderer registered")
	assert.Empty(t, buf.String())

	logger.Warn().Msg("visible")
	assert.Contains(t, buf.String(), "visible")
}

func TestSetupOptions(t *testing.T) {
	stateDir := t.TempDir()
	t.Setenv("XDG_STATE_HOME", stateDir)

	var console bytes.Buffer
	Setup(Options{Verbosity: 2, Console: &console, NoColor: true, NoFile: true})

	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
	logger := GetLogger("emitter")
	logger.Debug().Msg("stream ready")
	assert.Contains(t, console.String(), "stream ready")
	assert.Contains(t, console.String(), "component=emitter")
	assert.NotContains(t, console.String(), "\x1b[")

	_, err := os.Stat(filepath.Join(stateDir, "msgkit", "msgkit.log"))
	assert.True(t, os.IsNotExist(err))
}

func TestGetLogFilePath(t *testing.T) {
	t.Run("with XDG_STATE_HOME", func(t *testing.T) {
		t.Setenv("XDG_STATE_HOME", "/custom/state")
		got := filepath.ToSlash(getLogFilePath())
		assert.Equal(t, "/custom/state/msgkit/msgkit.log", got)
	})

	t.Run("without XDG_STATE_HOME", func(t *testing.T) {
		t.Setenv("XDG_STATE_HOME", "")
		got := filepath.ToSlash(getLogFilePath())
		assert.True(t, strings.HasSuffix(got, "msgkit/msgkit.log"), got)
	})
}

func TestGetLogger(t *testing.T) {
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	logger := GetLogger("pipeline")
	logger.Info().Msg("test message")

	assert.Contains(t, buf.String(), `"component":"pipeline"`)
	assert.Contains(t, buf.String(), "test message")
}

func TestWithFields(t *testing.T) {
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	logger := WithFields(map[string]interface{}{
		"kind":  "error",
		"arity": 1,
	})
	logger.Info().Msg("test message with fields")

	assert.Contains(t, buf.String(), `"kind":"error"`)
	assert.Contains(t, buf.String(), `"arity":1`)
}

func TestLogCommand(t *testing.T) {
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf).Level(zerolog.DebugLevel)
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	LogCommand("print", []string{"error", "no_such_part", "42"})

	output := buf.String()
	assert.Contains(t, output, "print")
	assert.Contains(t, output, "no_such_part")
	assert.Contains(t, output, "Executing command")
}

func TestLogOperationStart(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.TraceLevel)
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	done := LogOperationStart(logger, "process")
	done()

	output := buf.String()
	assert.Contains(t, output, "Operation started")
	assert.Contains(t, output, "Operation completed")
	assert.Contains(t, output, "duration")
}
