package tui

import "github.com/charmbracelet/lipgloss"

// Colors
var (
	colorAmber   = lipgloss.Color("#FFB000")
	colorLightFg = lipgloss.Color("#E1E8ED")
	colorMuted   = lipgloss.Color("#657786")
	colorRed     = lipgloss.Color("#E0245E")
	colorGreen   = lipgloss.Color("#17BF63")
)

// Styles
var (
	logoStyle = lipgloss.NewStyle().
			Foreground(colorAmber)

	brandStyle = lipgloss.NewStyle().
			Foreground(colorAmber).
			Bold(true)

	markerStyle = lipgloss.NewStyle().
			Foreground(colorGreen).
			Bold(true)

	frameBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAmber).
			Foreground(colorLightFg).
			Padding(0, 1)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(0, 1)

	pausedStyle = lipgloss.NewStyle().
			Foreground(colorRed).
			Bold(true)
)
