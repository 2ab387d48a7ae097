//go:generate mockgen -source=cli.go -destination=cli_mock.go -package=cli
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"logwatch/internal/app/bus"
	"logwatch/internal/app/errors"
	"logwatch/internal/app/monitor"
	"logwatch/internal/app/report"
	"logwatch/internal/app/ui"
	"logwatch/internal/config"
	"logwatch/internal/config/logger"
)

// CLI defines the interface for cli operations
type CLI interface {
	Execute() (int, error)
}

// cli represents the command-line interface for the application
type cli struct {
	cfg *config.Config
	log logger.Logger
}

// NewCLI creates a new cli instance
func NewCLI(cfg *config.Config, log logger.Logger) CLI {
	return &cli{
		cfg: cfg,
		log: log,
	}
}

// Execute parses the command line and runs the selected command
func (c *cli) Execute() (int, error) {
	opts, err := Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", errorLabel.Render("Error:"), err)
		return 1, err
	}

	switch opts.Type {
	case CommandVersion:
		c.printVersion()
		return 0, nil
	case CommandHelp:
		c.printHelp()
		return 0, nil
	default:
		return c.handleWatch(opts)
	}
}

// handleWatch runs the monitoring engine in the requested mode. Fatal setup
// errors are reported once and produce a non-zero exit.
func (c *cli) handleWatch(opts *Options) (int, error) {
	reporter := report.Init(c.log)
	defer reporter.Flush()

	if opts.File == "" {
		return c.fatal(reporter, errors.ErrLogFileRequired)
	}

	if opts.Capacity > 0 {
		c.cfg.View.Capacity = opts.Capacity
	}

	b := bus.New(bus.DefaultBuffer, c.log)
	defer b.Close()

	monOpts := monitor.Options{
		Path:     opts.File,
		Keywords: opts.Keywords,
		IPs:      opts.IPs,
		Regex:    opts.Regex,
		Excludes: opts.Excludes,
		Follow:   opts.Follow,
		Output:   opts.Output,
	}

	// Plain modes render matches synchronously from the pipeline so the
	// lossy bus cannot drop them; the TUI redraws from snapshots instead.
	var renderer *ui.Plain
	if !(opts.Follow && opts.TUI) {
		renderer = ui.NewPlain(os.Stdout)
		monOpts.OnRow = renderer.Row
	}

	mon, err := monitor.New(monOpts, c.cfg, b, c.log)
	if err != nil {
		return c.fatal(reporter, fmt.Errorf("%w: %s", err, opts.File))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch {
	case opts.Follow && opts.TUI:
		return c.runTUI(ctx, opts, mon, b)
	case opts.Follow:
		return c.runTail(ctx, opts, mon, b, renderer)
	default:
		return c.runScan(ctx, opts, mon, b, renderer)
	}
}

// fatal reports a setup error and returns a non-zero exit code
func (c *cli) fatal(reporter *report.Reporter, err error) (int, error) {
	reporter.CaptureErr(err)
	c.log.Error().Err(err).Msg("Fatal setup error")
	fmt.Fprintf(os.Stderr, "%s %v\n", errorLabel.Render("Error:"), err)

	return 1, err
}
