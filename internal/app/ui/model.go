package ui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"logwatch/internal/app/bus"
	"logwatch/internal/app/monitor"
	"logwatch/internal/app/procstats"
	"logwatch/internal/config"
	"logwatch/internal/config/logger"
)

const (
	headerHeight  = 3
	helpHeight    = 1
	footerPadding = 2
	bodyPadding   = 4
	statusTTL     = 5 * time.Second
)

// Model is the bubbletea model for the live monitoring view. It is a pure
// reader of the monitor: it consumes bus events and snapshots, and its only
// write path is firing the export trigger.
type Model struct {
	ctx    context.Context
	cancel context.CancelFunc
	cfg    *config.Config
	log    logger.Logger
	mon    *monitor.Monitor
	path   string

	events <-chan bus.Message

	vp        viewport.Model
	pulse     *Pulse
	width     int
	height    int
	ready     bool
	tickCount int

	startTime   time.Time
	selfStats   procstats.Stats
	status      string
	statusErr   bool
	statusUntil time.Time

	isShuttingDown bool
	err            error
}

type tickMsg time.Time

type monitorDoneMsg struct {
	err error
}

type busMsg bus.Message

// NewModel creates the TUI model for a follow-mode run
func NewModel(ctx context.Context, cfg *config.Config, log logger.Logger, mon *monitor.Monitor, b bus.Bus, path string) Model {
	ctx, cancel := context.WithCancel(ctx)

	vp := viewport.New(80, 20)
	vp.Style = bodyStyle

	return Model{
		ctx:       ctx,
		cancel:    cancel,
		cfg:       cfg,
		log:       log,
		mon:       mon,
		path:      path,
		events:    b.Subscribe(ctx),
		vp:        vp,
		pulse:     NewPulse(cfg.UI.RefreshPerSecond),
		startTime: time.Now(),
	}
}

// Err returns the terminal error of the run, if any
func (m Model) Err() error {
	return m.err
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.startMonitor(),
		m.waitForEvent(),
		tea.WindowSize(),
		m.tickUI(),
	)
}

// startMonitor runs the tailer pipeline in the background
func (m Model) startMonitor() tea.Cmd {
	return func() tea.Msg {
		return monitorDoneMsg{err: m.mon.Run(m.ctx)}
	}
}

// waitForEvent delivers the next bus message to Update
func (m Model) waitForEvent() tea.Cmd {
	return func() tea.Msg {
		event, ok := <-m.events
		if !ok {
			return nil
		}

		return busMsg(event)
	}
}

// tickUI schedules the next redraw at the configured refresh rate
func (m Model) tickUI() tea.Cmd {
	interval := time.Second / time.Duration(m.cfg.UI.RefreshPerSecond)

	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tea.WindowSizeMsg:
		return m.handleWindowResize(msg)
	case tickMsg:
		return m.handleTick()
	case busMsg:
		return m.handleBusEvent(bus.Message(msg))
	case monitorDoneMsg:
		m.err = msg.err
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)

	return m, cmd
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		if !m.isShuttingDown {
			m.isShuttingDown = true
			m.cancel()
		}

		// Quit arrives via monitorDoneMsg once the tailer has stopped.
		return m, nil
	case "s":
		m.mon.RequestExport()
		return m, nil
	case "up", "k":
		m.vp.ScrollUp(1)
	case "down", "j":
		m.vp.ScrollDown(1)
	case "pgup":
		m.vp.PageUp()
	case "pgdown":
		m.vp.PageDown()
	}

	return m, nil
}

func (m Model) handleWindowResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	bodyHeight := msg.Height - headerHeight - m.footerHeight() - helpHeight - bodyPadding
	if bodyHeight < 3 {
		bodyHeight = 3
	}

	if !m.ready {
		m.vp = viewport.New(msg.Width-bodyPadding, bodyHeight)
		m.vp.Style = bodyStyle
		m.ready = true
	} else {
		m.vp.Width = msg.Width - bodyPadding
		m.vp.Height = bodyHeight
	}

	m.refreshBody()

	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.tickCount++
	m.pulse.Update()

	// Self stats are cheap but not free; sample once a second.
	if m.tickCount%m.cfg.UI.RefreshPerSecond == 0 {
		m.selfStats = procstats.Self()
	}

	if m.status != "" && time.Now().After(m.statusUntil) {
		m.status = ""
	}

	m.refreshBody()

	return m, m.tickUI()
}

func (m Model) handleBusEvent(msg bus.Message) (tea.Model, tea.Cmd) {
	switch data := msg.Data.(type) {
	case bus.Match:
		m.pulse.Beat()
	case bus.ExportDone:
		m.setStatus("Saved current view to: "+data.Path, false)
	case bus.ExportFailed:
		m.setStatus("Failed to save CSV: "+data.Err.Error(), true)
	case bus.OutputClosed:
		m.setStatus("Output saved to "+data.Path, false)
	}

	return m, m.waitForEvent()
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
	m.statusUntil = time.Now().Add(statusTTL)
}

// refreshBody rebuilds the viewport content from a view snapshot
func (m *Model) refreshBody() {
	rows := m.mon.Snapshot()

	width := m.vp.Width - 2
	if width <= 0 {
		width = 80
	}

	var lines []string

	for _, row := range rows {
		styled := timeStyle.Render(row.Time.Format(config.RowTimeFormat)) + "  " +
			severityStyle(row.Severity).Render(row.Text)

		lines = append(lines, wrapText(styled, width)...)
	}

	m.vp.SetContent(strings.Join(lines, "\n"))
	m.vp.GotoBottom()
}

func (m Model) footerHeight() int {
	return m.cfg.UI.HistogramSize + footerPadding
}
