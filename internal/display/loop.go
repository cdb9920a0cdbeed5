package display

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/guzus/sofaspin/internal/logger"
	"github.com/guzus/sofaspin/internal/spinner"
)

// Options configures a Loop.
type Options struct {
	StatusFile string
	Rows       int
	Cols       int
	Interval   time.Duration
	// ReinitEvery re-initializes the screen once more than this many polls
	// have run since the last init; some panels drift out of sync if left
	// alone. Zero disables it.
	ReinitEvery int
	// SpinnerRow, when not negative, shows the sweep on that row instead
	// of the status line.
	SpinnerRow int
	Watch      bool
}

// Loop polls the status file and keeps the screen in sync with it.
type Loop struct {
	opts     Options
	screen   Screen
	renderer *Renderer
	player   *spinner.Player
	polls    int
}

func NewLoop(screen Screen, opts Options) *Loop {
	return &Loop{
		opts:     opts,
		screen:   screen,
		renderer: NewRenderer(screen, opts.Rows, opts.Cols),
		player:   spinner.NewPlayer(),
	}
}

// Run draws until ctx is cancelled. Errors never stop the loop: the screen
// is re-initialized and the next poll starts from a blank screen.
func (l *Loop) Run(ctx context.Context) error {
	log := logger.FromContext(ctx)

	l.reinit(ctx)
	defer func() {
		if err := l.screen.Clear(); err != nil {
			log.Warn("Clearing screen failed", "err", err)
		}
	}()

	var (
		events <-chan fsnotify.Event
		errs   <-chan error
	)
	if l.opts.Watch {
		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			log.Warn("Watcher creation failed, polling only", "err", err)
		} else {
			defer func() {
				_ = watcher.Close()
			}()
			if err := watcher.Add(filepath.Dir(l.opts.StatusFile)); err != nil {
				log.Warn("Watching status dir failed, polling only", "err", err)
			} else {
				events, errs = watcher.Events, watcher.Errors
			}
		}
	}

	ticker := time.NewTicker(l.opts.Interval)
	defer ticker.Stop()

	l.Poll(ctx)
	for {
		select {
		case <-ctx.Done():
			return nil

		case <-ticker.C:
			l.Poll(ctx)

		case event, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			if filepath.Clean(event.Name) != filepath.Clean(l.opts.StatusFile) {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				log.Debug("Status file changed", "op", event.Op.String())
				l.Refresh(ctx)
			}

		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			log.Warn("Watcher error", "err", err)
		}
	}
}

// Poll runs one tick: periodic re-init, spinner step and redraw.
func (l *Loop) Poll(ctx context.Context) {
	l.polls++
	if l.opts.ReinitEvery > 0 && l.polls > l.opts.ReinitEvery {
		logger.FromContext(ctx).Debug("Periodic screen re-init", "polls", l.polls)
		l.reinit(ctx)
	}
	if l.opts.SpinnerRow >= 0 {
		l.player.Advance()
	}
	l.Refresh(ctx)
}

// Refresh reads the status file and redraws whatever changed.
func (l *Loop) Refresh(ctx context.Context) {
	if err := l.draw(); err != nil {
		logger.FromContext(ctx).Warn("Status display failed", "err", err)
		l.reinit(ctx)
	}
}

// Once initializes the screen and draws the status file a single time.
// Unlike Refresh it reports a failed draw instead of recovering from it.
func (l *Loop) Once(ctx context.Context) error {
	l.reinit(ctx)
	return l.draw()
}

// Lines returns what the loop believes is on the screen.
func (l *Loop) Lines() []string {
	return l.renderer.Lines()
}

func (l *Loop) draw() error {
	lines, err := ReadStatus(l.opts.StatusFile)
	if err != nil {
		return err
	}

	row := l.opts.SpinnerRow
	if row >= 0 && row < len(lines) {
		lines[row] = l.player.Current()
	}
	if err := l.renderer.Render(lines); err != nil {
		return err
	}
	if row >= len(lines) {
		return l.renderer.SetLine(row, l.player.Current())
	}
	return nil
}

func (l *Loop) reinit(ctx context.Context) {
	if err := l.screen.Init(); err != nil {
		logger.FromContext(ctx).Warn("Screen init failed", "err", err)
	}
	l.renderer.Reset()
	l.polls = 0
}

// ReadStatus returns the trimmed lines of a status file.
func ReadStatus(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading status: %w", err)
	}

	var lines []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		lines = append(lines, strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning status: %w", err)
	}
	return lines, nil
}
