package main

import (
	"io"
	"os"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"logwatch/internal/app"
	"logwatch/internal/config"
	"logwatch/internal/config/logger"
)

// main is the entry point for the application
func main() {
	runApp()
}

// runApp contains the main application logic
func runApp() {
	cfg, err := loadConfig()
	if err != nil {
		os.Exit(1)
	}

	tui := hasTUIFlag(os.Args[1:])
	application := createApp(cfg, tui)
	application.Run()
}

// hasTUIFlag checks if --tui flag is present in args
func hasTUIFlag(args []string) bool {
	for _, arg := range args {
		if arg == "--tui" {
			return true
		}
	}

	return false
}

// loadConfig wraps config.Load for easier testing
func loadConfig() (*config.Config, error) {
	return config.Load()
}

// createApp creates the FX application with the given config
func createApp(cfg *config.Config, tui bool) *fx.App {
	var logOutput io.Writer
	if tui {
		logOutput = io.Discard
	}

	return fx.New(
		fx.WithLogger(createFxLogger(cfg)),
		fx.Supply(cfg),
		fx.Provide(func() logger.Logger {
			return logger.NewLoggerWithOutput(cfg, logOutput)
		}),
		app.Module,
	)
}

// createFxLogger returns an FX logger based on the config
func createFxLogger(cfg *config.Config) func() fxevent.Logger {
	return func() fxevent.Logger {
		if cfg.Logging.Level == logger.DebugLevel {
			return &fxevent.ConsoleLogger{W: os.Stdout}
		}

		return fxevent.NopLogger
	}
}
