package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	sweep "github.com/guzus/sofaspin/internal/spinner"
)

type screen int

const (
	screenSplash screen = iota
	screenSweep
)

type switchScreenMsg struct {
	target screen
}

// MainModel routes between the splash and sweep screens.
type MainModel struct {
	currentScreen screen
	width         int
	height        int
	splash        SplashModel
	sweep         SweepModel
}

// NewMainModel plays player at one frame per interval. The player is
// shared, so the caller can read its position once the program exits.
func NewMainModel(player *sweep.Player, interval time.Duration) MainModel {
	return MainModel{
		currentScreen: screenSplash,
		splash:        NewSplashModel(interval),
		sweep:         NewSweepModel(player, interval),
	}
}

func (m MainModel) Init() tea.Cmd {
	return m.splash.Init()
}

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.splash, _ = m.splash.Update(msg)
		m.sweep, _ = m.sweep.Update(msg)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case switchScreenMsg:
		if m.currentScreen == msg.target {
			return m, nil
		}
		m.currentScreen = msg.target
		if msg.target == screenSweep {
			return m, m.sweep.Init()
		}
		return m, nil
	}

	var cmd tea.Cmd
	switch m.currentScreen {
	case screenSplash:
		m.splash, cmd = m.splash.Update(msg)
	case screenSweep:
		m.sweep, cmd = m.sweep.Update(msg)
	}

	return m, cmd
}

func (m MainModel) View() string {
	switch m.currentScreen {
	case screenSplash:
		return m.splash.View()
	case screenSweep:
		return m.sweep.View()
	default:
		return ""
	}
}
