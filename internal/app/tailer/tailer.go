package tailer

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/looplab/fsm"

	"logwatch/internal/app/errors"
	"logwatch/internal/config/logger"
)

// Tailer states
const (
	StateOpening  = "opening"
	StateScanning = "scanning"
	StateTailing  = "tailing"
	StateDone     = "done"
)

// Tailer events
const (
	eventOpened = "opened"
	eventFollow = "follow"
	eventFinish = "finish"
)

const readChunkSize = 32 * 1024

// Options configures a Tailer
type Options struct {
	Path         string
	Follow       bool
	PollInterval time.Duration
	OnState      func(state string)
}

// Tailer owns an open log file and feeds complete lines to its output
// channel. In follow mode it seeks to the end and polls for appended data,
// waking early on fsnotify write events when available. In scan mode it
// reads once from the start and stops at EOF.
type Tailer struct {
	opts    Options
	file    *os.File
	offset  int64
	partial strings.Builder
	out     chan string
	machine *fsm.FSM
	watcher *fsnotify.Watcher
	wake    chan struct{}
	log     logger.Logger
}

// New opens the log file and returns a Tailer ready to run. A missing file
// or a permission failure is fatal here, before any loop starts.
func New(opts Options, log logger.Logger) (*Tailer, error) {
	if opts.PollInterval <= 0 {
		return nil, errors.ErrInvalidPollInterval
	}

	t := &Tailer{
		opts: opts,
		out:  make(chan string, 64),
		wake: make(chan struct{}, 1),
		log:  log.WithComponent("TAILER"),
	}

	t.machine = newTailerFSM(t)

	file, err := os.Open(opts.Path)
	if err != nil {
		switch {
		case os.IsNotExist(err):
			return nil, errors.ErrFileNotFound
		case os.IsPermission(err):
			return nil, errors.ErrAccessDenied
		default:
			return nil, err
		}
	}

	t.file = file

	if err := t.machine.Event(context.Background(), eventOpened); err != nil {
		file.Close()
		return nil, err
	}

	return t, nil
}

// Lines returns the channel where complete log lines are sent. The channel
// is closed when Run returns.
func (t *Tailer) Lines() <-chan string {
	return t.out
}

// State returns the current state name
func (t *Tailer) State() string {
	return t.machine.Current()
}

// Run drives the tailer until scan completion or context cancellation. The
// file handle is released on return.
func (t *Tailer) Run(ctx context.Context) error {
	defer close(t.out)
	defer t.file.Close()

	if !t.opts.Follow {
		if err := t.scan(ctx); err != nil {
			return err
		}

		return t.machine.Event(ctx, eventFinish)
	}

	// Follow mode starts at the current end of file.
	offset, err := t.file.Seek(0, io.SeekEnd)
	if err != nil {
		return err
	}

	t.offset = offset

	if err := t.machine.Event(ctx, eventFollow); err != nil {
		return err
	}

	t.startWatcher()
	defer t.stopWatcher()

	ticker := time.NewTicker(t.opts.PollInterval)
	defer ticker.Stop()

	for {
		if err := t.readAvailable(ctx); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return nil
		case <-t.wake:
		case <-ticker.C:
		}
	}
}

// scan reads the whole file once from offset 0, emitting every line. A
// trailing line without a terminator is still emitted, since no writer is
// being raced in one-shot mode.
func (t *Tailer) scan(ctx context.Context) error {
	if err := t.readAvailable(ctx); err != nil {
		return err
	}

	if t.partial.Len() > 0 {
		if err := t.emit(ctx, t.partial.String()); err != nil {
			return err
		}

		t.partial.Reset()
	}

	return nil
}

// readAvailable consumes everything between the cursor and the current EOF.
// Incomplete trailing data is buffered until a later read terminates it.
// Read errors are treated as "no new data yet"; the file is never reopened.
func (t *Tailer) readAvailable(ctx context.Context) error {
	buf := make([]byte, readChunkSize)

	for {
		n, err := t.file.Read(buf)
		if n > 0 {
			t.offset += int64(n)

			if err := t.consume(ctx, string(buf[:n])); err != nil {
				return err
			}
		}

		if err != nil {
			if err != io.EOF {
				t.log.Debug().Err(err).Msg("Transient read error, will retry")
			}

			return nil
		}
	}
}

// consume splits a chunk into complete lines, carrying partials across reads
func (t *Tailer) consume(ctx context.Context, chunk string) error {
	for {
		idx := strings.IndexByte(chunk, '\n')
		if idx < 0 {
			t.partial.WriteString(chunk)
			return nil
		}

		t.partial.WriteString(chunk[:idx])
		line := strings.TrimSuffix(t.partial.String(), "\r")
		t.partial.Reset()

		if err := t.emit(ctx, line); err != nil {
			return err
		}

		chunk = chunk[idx+1:]
	}
}

func (t *Tailer) emit(ctx context.Context, line string) error {
	select {
	case t.out <- line:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// startWatcher subscribes to fsnotify write events for early wake-up. The
// poll ticker stays in place either way, so a watcher failure only costs
// latency, never data.
func (t *Tailer) startWatcher() {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		t.log.Debug().Err(err).Msg("File notifications unavailable, polling only")
		return
	}

	if err := watcher.Add(t.opts.Path); err != nil {
		t.log.Debug().Err(err).Msg("Cannot watch log file, polling only")
		watcher.Close()

		return
	}

	t.watcher = watcher

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}

				if event.Has(fsnotify.Write) {
					select {
					case t.wake <- struct{}{}:
					default:
					}
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}

				t.log.Debug().Err(err).Msg("Watcher error")
			}
		}
	}()
}

func (t *Tailer) stopWatcher() {
	if t.watcher != nil {
		t.watcher.Close()
	}
}
