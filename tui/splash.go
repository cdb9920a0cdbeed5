package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type tickMsg time.Time

const splashTicks = 6

// SplashModel shows the logo over a running sweep before the main screen.
type SplashModel struct {
	spinner spinner.Model
	ticks   int
	width   int
	height  int
}

func NewSplashModel(interval time.Duration) SplashModel {
	sp := spinner.New(
		spinner.WithSpinner(sweepSpinner(interval)),
		spinner.WithStyle(markerStyle),
	)
	return SplashModel{spinner: sp}
}

func (m SplashModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, tickCmd())
}

func tickCmd() tea.Cmd {
	return tea.Tick(300*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m SplashModel) Update(msg tea.Msg) (SplashModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.ticks++
		if m.ticks >= splashTicks {
			return m, func() tea.Msg { return switchScreenMsg{target: screenSweep} }
		}
		return m, tickCmd()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m, func() tea.Msg { return switchScreenMsg{target: screenSweep} }

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

func (m SplashModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	art := logoStyle.Render(logoArt)
	brand := brandStyle.Render("s  o  f  a")
	content := lipgloss.JoinVertical(lipgloss.Center, art, "", m.spinner.View(), "", brand)

	return lipgloss.Place(
		m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		content,
	)
}
