package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	okStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	pendingStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	selectedStyle   = lipgloss.NewStyle().Reverse(true)
	labelStyle      = lipgloss.NewStyle().Width(10).Faint(true)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)
