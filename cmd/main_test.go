package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/fx/fxevent"

	"logwatch/internal/config"
	"logwatch/internal/config/logger"
)

func Test_LoadConfig(t *testing.T) {
	cfg, err := loadConfig()
	if err != nil {
		t.Skip("config loading failed, likely an invalid logwatch.yaml in the working directory")
		return
	}

	assert.NotNil(t, cfg)
	assert.Greater(t, cfg.View.Capacity, 0)
	assert.NotEmpty(t, cfg.Severity)
}

func Test_CreateApp(t *testing.T) {
	tests := []struct {
		name  string
		level string
		tui   bool
	}{
		{name: "Creates app with info level logging", level: logger.InfoLevel, tui: false},
		{name: "Creates app with debug level logging and TUI", level: logger.DebugLevel, tui: true},
		{name: "Creates app with error level logging", level: logger.ErrorLevel, tui: false},
		{name: "Creates app with warn level logging and TUI", level: logger.WarnLevel, tui: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			cfg.Logging.Level = tt.level

			app := createApp(cfg, tt.tui)
			assert.NotNil(t, app)
		})
	}
}

func Test_HasTUIFlag(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected bool
	}{
		{name: "No args returns false", args: []string{}, expected: false},
		{name: "Only file flag returns false", args: []string{"-f", "ufw.log"}, expected: false},
		{name: "--tui flag returns true", args: []string{"--tui"}, expected: true},
		{name: "--tail and --tui returns true", args: []string{"--tail", "--tui"}, expected: true},
		{name: "--tui and --tail returns true", args: []string{"--tui", "--tail"}, expected: true},
		{name: "Other args return false", args: []string{"help", "version"}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := hasTUIFlag(tt.args)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func Test_CreateFxLogger(t *testing.T) {
	tests := []struct {
		name           string
		level          string
		expectedType   interface{}
		expectedLogger interface{}
	}{
		{name: "Debug level returns console logger", level: logger.DebugLevel, expectedType: &fxevent.ConsoleLogger{}},
		{name: "Info level returns nop logger", level: logger.InfoLevel, expectedLogger: fxevent.NopLogger},
		{name: "Warn level returns nop logger", level: logger.WarnLevel, expectedLogger: fxevent.NopLogger},
		{name: "Error level returns nop logger", level: logger.ErrorLevel, expectedLogger: fxevent.NopLogger},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			cfg.Logging.Level = tt.level

			loggerFunc := createFxLogger(cfg)
			assert.NotNil(t, loggerFunc)

			result := loggerFunc()
			assert.NotNil(t, result)

			if tt.expectedType != nil {
				assert.IsType(t, tt.expectedType, result)
			}

			if tt.expectedLogger != nil {
				assert.Equal(t, tt.expectedLogger, result)
			}
		})
	}
}
