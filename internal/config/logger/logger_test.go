package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"logwatch/internal/config"
)

func Test_NewLogger(t *testing.T) {
	log := NewLogger(config.DefaultConfig())

	assert.NotNil(t, log)
	assert.NotNil(t, log.Debug())
	assert.NotNil(t, log.Info())
	assert.NotNil(t, log.Warn())
	assert.NotNil(t, log.Error())
}

func Test_NewLoggerWithOutput_WritesToCustomOutput(t *testing.T) {
	var buf bytes.Buffer

	cfg := config.DefaultConfig()
	cfg.Logging.Format = JSONFormat

	log := NewLoggerWithOutput(cfg, &buf)
	log.Info().Msg("hello")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "hello", entry["message"])
	assert.Equal(t, config.Version, entry["version"])
}

func Test_Logger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer

	cfg := config.DefaultConfig()
	cfg.Logging.Level = ErrorLevel
	cfg.Logging.Format = JSONFormat

	log := NewLoggerWithOutput(cfg, &buf)

	log.Info().Msg("suppressed")
	assert.Empty(t, buf.Bytes())

	log.Error().Msg("visible")
	assert.NotEmpty(t, buf.Bytes())
}

func Test_WithComponent(t *testing.T) {
	var buf bytes.Buffer

	cfg := config.DefaultConfig()
	cfg.Logging.Format = JSONFormat

	log := NewLoggerWithOutput(cfg, &buf).WithComponent("TAILER")
	log.Info().Msg("scanning")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "TAILER", entry["component"])
}

func Test_getLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		expected zerolog.Level
	}{
		{name: "Debug", level: DebugLevel, expected: zerolog.DebugLevel},
		{name: "Info", level: InfoLevel, expected: zerolog.InfoLevel},
		{name: "Warn", level: WarnLevel, expected: zerolog.WarnLevel},
		{name: "Error", level: ErrorLevel, expected: zerolog.ErrorLevel},
		{name: "Unknown falls back to info", level: "bogus", expected: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, getLogLevel(tt.level))
		})
	}
}
