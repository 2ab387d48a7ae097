package command

import (
	"context"
	"os"

	"github.com/charmbracelet/x/term"

	"logwatch/internal/config/logger"
)

// Key bindings for the plain tail mode
const (
	keyExport = 's'
	keyQuit   = 'q'
	keyCtrlC  = 0x03
)

// Watcher listens for single keypresses on stdin without blocking the
// pipeline. It only ever calls the provided callbacks; the rest of the
// system never waits on it. Used in plain tail mode; the TUI has its own
// key handling.
type Watcher struct {
	onExport func()
	onQuit   func()
	log      logger.Logger
}

// NewWatcher creates a Watcher firing onExport for the export key and
// onQuit for quit keys
func NewWatcher(onExport, onQuit func(), log logger.Logger) *Watcher {
	return &Watcher{
		onExport: onExport,
		onQuit:   onQuit,
		log:      log.WithComponent("KEYS"),
	}
}

// Start puts the terminal into raw mode and reads keys until the context
// ends. When stdin is not a terminal the watcher degrades silently to "no
// command detected"; losing the hotkey is acceptable, failing the run is
// not. The terminal state is restored on return.
func (w *Watcher) Start(ctx context.Context) {
	fd := os.Stdin.Fd()

	if !term.IsTerminal(fd) {
		w.log.Debug().Msg("Stdin is not a terminal, export hotkey disabled")
		return
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		w.log.Debug().Err(err).Msg("Cannot enter raw mode, export hotkey disabled")
		return
	}

	keys := make(chan byte, 8)

	go func() {
		buf := make([]byte, 1)

		for {
			n, err := os.Stdin.Read(buf)
			if err != nil {
				close(keys)
				return
			}

			if n > 0 {
				select {
				case keys <- buf[0]:
				default:
				}
			}
		}
	}()

	defer term.Restore(fd, oldState)

	for {
		select {
		case <-ctx.Done():
			return
		case key, ok := <-keys:
			if !ok {
				return
			}

			w.handleKey(key)
		}
	}
}

// handleKey dispatches a single keypress. Unknown keys are ignored so the
// watcher never interferes with other input.
func (w *Watcher) handleKey(key byte) {
	switch key {
	case keyExport, keyExport - 32: // 's' or 'S'
		w.onExport()
	case keyQuit, keyCtrlC:
		w.onQuit()
	}
}
