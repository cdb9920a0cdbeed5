package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	sweep "github.com/guzus/sofaspin/internal/spinner"
)

const (
	minInterval = 10 * time.Millisecond
	maxInterval = time.Second
)

// sweepTickMsg carries the tag of the tick chain that produced it so that
// stale chains die after a pause or speed change.
type sweepTickMsg struct {
	tag int
}

// SweepModel plays the spinner one frame per tick.
type SweepModel struct {
	player   *sweep.Player
	interval time.Duration
	paused   bool
	tag      int
	keys     keyMap
	help     help.Model
	width    int
	height   int
}

func NewSweepModel(player *sweep.Player, interval time.Duration) SweepModel {
	return SweepModel{
		player:   player,
		interval: clampInterval(interval),
		keys:     defaultKeyMap(),
		help:     help.New(),
	}
}

func clampInterval(d time.Duration) time.Duration {
	if d < minInterval {
		return minInterval
	}
	if d > maxInterval {
		return maxInterval
	}
	return d
}

func (m SweepModel) Init() tea.Cmd {
	return m.tick()
}

func (m SweepModel) tick() tea.Cmd {
	tag := m.tag
	return tea.Tick(m.interval, func(time.Time) tea.Msg {
		return sweepTickMsg{tag: tag}
	})
}

func (m SweepModel) Update(msg tea.Msg) (SweepModel, tea.Cmd) {
	switch msg := msg.(type) {
	case sweepTickMsg:
		if m.paused || msg.tag != m.tag {
			return m, nil
		}
		m.player.Advance()
		return m, m.tick()

	case tea.KeyMsg:
		return m.updateKeys(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}

	return m, nil
}

func (m SweepModel) updateKeys(msg tea.KeyMsg) (SweepModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused
		m.tag++
		if m.paused {
			return m, nil
		}
		return m, m.tick()

	case key.Matches(msg, m.keys.Step):
		if m.paused {
			m.player.Advance()
		}

	case key.Matches(msg, m.keys.Faster):
		return m.setInterval(m.interval / 2)

	case key.Matches(msg, m.keys.Slower):
		return m.setInterval(m.interval * 2)

	case key.Matches(msg, m.keys.Reset):
		m.player.Reset()
	}

	return m, nil
}

func (m SweepModel) setInterval(d time.Duration) (SweepModel, tea.Cmd) {
	m.interval = clampInterval(d)
	m.tag++
	if m.paused {
		return m, nil
	}
	return m, m.tick()
}

func (m SweepModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	frame := m.player.Current()
	col := sweep.MarkerColumn(frame)
	line := strings.Repeat(" ", col) + markerStyle.Render(string(sweep.Marker)) + frame[col+1:]
	box := frameBoxStyle.Render(line)

	status := fmt.Sprintf("frame %2d/%d  %v", m.player.Seq()+1, sweep.FrameCount(), m.interval)
	if m.paused {
		status += "  " + pausedStyle.Render("paused")
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		logoStyle.Render(logoArt),
		"",
		box,
		statusBarStyle.Render(status),
		"",
		m.help.View(m.keys),
	)

	return lipgloss.Place(
		m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		content,
	)
}
