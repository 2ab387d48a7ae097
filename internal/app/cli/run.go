package cli

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"

	"logwatch/internal/app/bus"
	"logwatch/internal/app/command"
	"logwatch/internal/app/errors"
	"logwatch/internal/app/monitor"
	"logwatch/internal/app/ui"
)

// runTUI drives a follow-mode run inside the bubbletea interface. The model
// owns the monitor lifecycle; quitting the UI stops the tailer.
func (c *cli) runTUI(ctx context.Context, opts *Options, mon *monitor.Monitor, b bus.Bus) (int, error) {
	model := ui.NewModel(ctx, c.cfg, c.log, mon, b, opts.File)

	program := tea.NewProgram(model, tea.WithAltScreen())

	finalModel, err := program.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", errorLabel.Render("Error:"), err)
		return 1, err
	}

	if m, ok := finalModel.(ui.Model); ok {
		if rerr := m.Err(); rerr != nil && !errors.Is(rerr, context.Canceled) {
			fmt.Fprintf(os.Stderr, "%s %v\n", errorLabel.Render("Error:"), rerr)
			return 1, rerr
		}
	}

	return 0, nil
}

// runTail drives a follow-mode run with the plain renderer. Keypresses are
// watched on raw stdin so 's' exports and 'q' stops without a TUI. Raw mode
// turns off output post-processing, so the renderer switches to \r\n line
// endings for the duration of the run.
func (c *cli) runTail(ctx context.Context, opts *Options, mon *monitor.Monitor, b bus.Bus, renderer *ui.Plain) (int, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if term.IsTerminal(os.Stdin.Fd()) && term.IsTerminal(os.Stdout.Fd()) {
		renderer.UseCRLF()
	}

	// The renderer subscription outlives ctx so queued events drain after
	// the monitor stops; Close ends it.
	events := b.Subscribe(context.Background())
	rendererDone := make(chan struct{})

	go func() {
		defer close(rendererDone)
		renderer.Run(context.Background(), events)
	}()

	renderer.Line(fmt.Sprintf("%s %s (press 's' to save csv, 'q' or Ctrl+C to quit)",
		infoLabel.Render("[*] Monitoring"), opts.File))

	watcher := command.NewWatcher(mon.RequestExport, cancel, c.log)
	go watcher.Start(ctx)

	err := mon.Run(ctx)

	b.Close()
	<-rendererDone

	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "%s %v\n", errorLabel.Render("Error:"), err)
		return 1, err
	}

	renderer.Line(infoLabel.Render("[*] Stopped"))

	return 0, nil
}

// runScan reads the file once, renders every match in order and reports the
// total. No trigger or keypress handling; the run ends at EOF.
func (c *cli) runScan(ctx context.Context, opts *Options, mon *monitor.Monitor, b bus.Bus, renderer *ui.Plain) (int, error) {
	events := b.Subscribe(context.Background())
	rendererDone := make(chan struct{})

	go func() {
		defer close(rendererDone)
		renderer.Run(context.Background(), events)
	}()

	renderer.Line(fmt.Sprintf("%s %s", infoLabel.Render("[*] Scanning"), opts.File))

	err := mon.Run(ctx)

	b.Close()
	<-rendererDone

	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "%s %v\n", errorLabel.Render("Error:"), err)
		return 1, err
	}

	renderer.Line(fmt.Sprintf("%s %d", infoLabel.Render("[*] Matches found:"), mon.Stats().Total()))

	return 0, nil
}
