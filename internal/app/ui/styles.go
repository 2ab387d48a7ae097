package ui

import (
	"github.com/charmbracelet/lipgloss"

	"logwatch/internal/app/match"
)

var (
	headerStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			PaddingLeft(1).
			PaddingRight(1)

	footerStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("36")).
			PaddingLeft(1).
			PaddingRight(1)

	bodyStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			PaddingLeft(1).
			PaddingRight(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("36"))

	timeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("36"))

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("33"))

	countStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("220"))

	barStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("36"))

	statusOKStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("42"))

	statusErrStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))

	pulseStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205"))

	criticalStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	okStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	warningStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	noticeStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("201"))
	neutralStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
)

// severityStyle returns the display style for a row severity
func severityStyle(severity match.Severity) lipgloss.Style {
	switch severity {
	case match.Critical:
		return criticalStyle
	case match.OK:
		return okStyle
	case match.Warning:
		return warningStyle
	case match.Notice:
		return noticeStyle
	default:
		return neutralStyle
	}
}
