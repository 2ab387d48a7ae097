package cli

import "go.uber.org/fx"

// Module provides the cli dependencies
var Module = fx.Options(
	fx.Provide(NewCLI),
)
