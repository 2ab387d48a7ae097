package cli

import "github.com/charmbracelet/lipgloss"

var (
	errorLabel = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	infoLabel  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	titleStyle = lipgloss.NewStyle().Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)
