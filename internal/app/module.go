package app

import (
	"go.uber.org/fx"

	"logwatch/internal/app/cli"
)

// Module assembles the application graph. The logger is provided by main,
// which decides whether diagnostics go to stderr or are discarded for the
// TUI.
var Module = fx.Options(
	cli.Module,
	fx.Provide(NewApp),
	fx.Invoke(Register),
)
