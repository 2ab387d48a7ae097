package app

import (
	"context"
	"os"

	"go.uber.org/fx"

	"logwatch/internal/app/cli"
)

// App runs the log monitor through its CLI and carries the exit code out of
// the fx lifecycle. A one-shot scan exits 0 after EOF; a cancelled tail run
// also exits 0, and only setup failures produce a non-zero code.
type App struct {
	cli  cli.CLI
	done chan struct{}
}

// NewApp creates the application around its CLI
func NewApp(cli cli.CLI) *App {
	return &App{
		cli:  cli,
		done: make(chan struct{}),
	}
}

// Run executes one watch run and exits the process with its code
func (a *App) Run() {
	exitCode := a.execute()
	close(a.done)

	os.Exit(exitCode)
}

// execute runs the CLI and returns the exit code - extracted for testing
func (a *App) execute() int {
	exitCode, _ := a.cli.Execute()

	return exitCode
}

// Register hooks the watch run into the fx lifecycle. OnStop waits for the
// run to finish so the tailer and output file close before shutdown.
func Register(lifecycle fx.Lifecycle, app *App) {
	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go app.Run()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			select {
			case <-app.done:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	})
}
