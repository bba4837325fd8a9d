package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorCyan  = lipgloss.Color("36")
	colorGreen = lipgloss.Color("35")
	colorRed   = lipgloss.Color("167")
	colorGray  = lipgloss.Color("245")
	colorDim   = lipgloss.Color("240")
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Align(lipgloss.Center)
	styleLabel   = lipgloss.NewStyle().Foreground(colorGray).Width(15)
	styleFocused = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
	styleField   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	styleHelp    = lipgloss.NewStyle().Foreground(colorDim)
	styleError   = lipgloss.NewStyle().Foreground(colorRed)
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)

	stylePanel = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(0, 1)
)
