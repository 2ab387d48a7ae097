package ui

import (
	"fmt"
	"strings"
	"time"

	"logwatch/internal/app/procstats"
)

func (m Model) View() string {
	if m.err != nil {
		return fmt.Sprintf("Error: %v\n\nPress q to quit.\n", m.err)
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.vp.View())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	b.WriteString("\n")
	b.WriteString(m.renderHelp())

	return b.String()
}

// renderHeader renders file identity, match count, activity pulse, self
// resource usage and the save hint
func (m Model) renderHeader() string {
	state := m.mon.TailerState()
	if m.isShuttingDown {
		state = "stopping"
	}

	var stats string
	if m.selfStats.MemoryBytes > 0 {
		stats = fmt.Sprintf("%.1f%% %s", m.selfStats.CPUPercent, procstats.FormatMemory(m.selfStats.MemoryBytes))
	} else {
		stats = "-"
	}

	line := fmt.Sprintf("%s %s  %s %s  %s %s  %s %s  %s  %s",
		m.pulse.Render(pulseStyle),
		labelStyle.Render("logwatch"),
		labelStyle.Render("File:"), m.path,
		labelStyle.Render("Matches:"), countStyle.Render(fmt.Sprintf("%d", m.mon.Stats().Total())),
		labelStyle.Render("Up:"), procstats.FormatUptime(time.Since(m.startTime)),
		helpStyle.Render(state+" | "+stats),
		hintStyle.Render("(press 's' to save)"),
	)

	style := headerStyle
	if m.width > 0 {
		style = style.Width(m.width - 2)
	}

	return style.Render(line)
}

// renderFooter renders the keyword histogram and any transient status
func (m Model) renderFooter() string {
	content := labelStyle.Render("Top Matches") + "\n" +
		renderHistogram(m.mon.Stats(), m.cfg.UI.HistogramSize)

	if m.status != "" {
		statusStyle := statusOKStyle
		if m.statusErr {
			statusStyle = statusErrStyle
		}

		content += "\n" + statusStyle.Render(m.status)
	}

	style := footerStyle
	if m.width > 0 {
		style = style.Width(m.width - 2)
	}

	return style.Render(content)
}

func (m Model) renderHelp() string {
	return helpStyle.Render("s: save csv • ↑/↓: scroll • q: quit")
}
