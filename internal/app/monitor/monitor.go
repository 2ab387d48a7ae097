package monitor

import (
	"context"
	"time"

	"logwatch/internal/app/bus"
	"logwatch/internal/app/export"
	"logwatch/internal/app/match"
	"logwatch/internal/app/pipeline"
	"logwatch/internal/app/stats"
	"logwatch/internal/app/tailer"
	"logwatch/internal/app/trigger"
	"logwatch/internal/app/view"
	"logwatch/internal/config"
	"logwatch/internal/config/logger"
)

// triggerPollInterval bounds how long a fired export waits before it runs
const triggerPollInterval = 100 * time.Millisecond

// Options configures a monitoring run. OnRow, when set, receives every
// matched row synchronously from the pipeline in arrival order; the plain
// renderer hangs off it so no match is ever dropped, while the bus stays
// free to shed match events for slow observers.
type Options struct {
	Path     string
	Keywords []string
	IPs      []string
	Regex    string
	Excludes []string
	Follow   bool
	Output   string
	OnRow    func(match.Row)
}

// Monitor owns one detect-classify-render-export run: the tailer, the
// pipeline, the bounded view, the aggregator and the export trigger.
// Renderers observe it through the bus and snapshots; they never mutate it.
type Monitor struct {
	opts     Options
	cfg      *config.Config
	rule     *match.Rule
	view     *view.Bounded
	stats    *stats.Aggregator
	bus      bus.Bus
	trig     *trigger.Trigger
	exporter export.Exporter
	stream   *export.Stream
	tail     *tailer.Tailer
	log      logger.Logger
}

// New validates the match configuration, opens the log file and the
// optional output file, and wires the run. All fatal setup errors surface
// here, before any goroutine starts.
func New(opts Options, cfg *config.Config, b bus.Bus, log logger.Logger) (*Monitor, error) {
	rule, err := match.NewRule(opts.Keywords, opts.IPs, opts.Regex, opts.Excludes)
	if err != nil {
		return nil, err
	}

	m := &Monitor{
		opts:     opts,
		cfg:      cfg,
		rule:     rule,
		view:     view.NewBounded(cfg.View.Capacity),
		stats:    stats.New(),
		bus:      b,
		trig:     trigger.New(),
		exporter: export.New(cfg.Export.Dir, log),
		log:      log.WithComponent("MONITOR"),
	}

	if rule.Empty() {
		m.log.Warn().Msg("No filter keywords, IPs or regex configured; nothing will match")
	}

	if opts.Output != "" {
		stream, err := export.NewStream(opts.Output)
		if err != nil {
			return nil, err
		}

		m.stream = stream
	}

	t, err := tailer.New(tailer.Options{
		Path:         opts.Path,
		Follow:       opts.Follow,
		PollInterval: cfg.Tail.PollInterval,
		OnState: func(state string) {
			b.Publish(bus.Message{Type: bus.EventTailerState, Data: bus.TailerState{State: state}})
		},
	}, log)
	if err != nil {
		if m.stream != nil {
			m.stream.Close()
		}

		return nil, err
	}

	m.tail = t

	return m, nil
}

// Run drives the tailer and pipeline until scan completion or cancellation.
// The pipeline goroutine is the only writer of the view and aggregator.
func (m *Monitor) Run(ctx context.Context) error {
	classifier := match.NewClassifier(m.cfg.Severity, m.opts.Keywords)
	pipe := pipeline.New(m.rule, classifier, m.view, m.stats, m.bus, m.stream, m.opts.OnRow, m.log)

	pipeDone := make(chan struct{})

	go func() {
		defer close(pipeDone)
		pipe.Run(ctx, m.tail.Lines())
	}()

	if m.opts.Follow {
		go m.exportLoop(ctx)
	}

	err := m.tail.Run(ctx)

	// Drain whatever the tailer emitted before stopping.
	<-pipeDone

	if m.stream != nil {
		if cerr := m.stream.Close(); cerr != nil {
			m.log.Warn().Err(cerr).Msg("Failed to finalize output file")
		} else {
			m.bus.Publish(bus.Message{
				Type:     bus.EventOutputClosed,
				Data:     bus.OutputClosed{Path: m.stream.Path()},
				Critical: true,
			})
		}
	}

	return err
}

// RequestExport fires the coalescing export trigger. Safe from any
// goroutine; redundant requests before the export runs collapse into one.
func (m *Monitor) RequestExport() {
	if !m.trig.Fire() {
		m.log.Debug().Msg("Export already pending, coalesced")
	}
}

// Snapshot returns a copy of the currently visible rows, oldest first
func (m *Monitor) Snapshot() []match.Row {
	return m.view.Snapshot()
}

// Stats returns the keyword aggregator for read-only consumption
func (m *Monitor) Stats() *stats.Aggregator {
	return m.stats
}

// TailerState returns the current tailer state name
func (m *Monitor) TailerState() string {
	return m.tail.State()
}

// exportLoop waits for the export trigger and serializes the current view.
// Export failures are reported on the bus and never stop the run.
func (m *Monitor) exportLoop(ctx context.Context) {
	ticker := time.NewTicker(triggerPollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !m.trig.Consume() {
				continue
			}

			rows := m.view.Snapshot()

			path, err := m.exporter.Export(rows)
			if err != nil {
				m.log.Error().Err(err).Msg("Export failed")
				m.bus.Publish(bus.Message{
					Type:     bus.EventExportFailed,
					Data:     bus.ExportFailed{Err: err},
					Critical: true,
				})

				continue
			}

			m.bus.Publish(bus.Message{
				Type:     bus.EventExportDone,
				Data:     bus.ExportDone{Path: path, Rows: len(rows)},
				Critical: true,
			})
		}
	}
}
