package state

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/guzus/sofaspin/internal/spinner"
)

// State tracks the spinner position between invocations.
type State struct {
	path string
	Seq  int `json:"seq"`
}

// DefaultPath returns the state file location under XDG_STATE_HOME.
func DefaultPath() string {
	return filepath.Join(xdg.StateHome, "sofaspin", "state.json")
}

// Load reads the state file, or returns empty state if it doesn't exist.
func Load() (*State, error) {
	return LoadPath(DefaultPath())
}

// LoadPath reads the state file from a custom path.
func LoadPath(path string) (*State, error) {
	s := &State{path: path}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading state: %w", err)
	}

	if err := json.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parsing state: %w", err)
	}
	return s, nil
}

// Player returns a spinner player positioned at the saved sequence.
func (s *State) Player() *spinner.Player {
	return spinner.NewPlayerAt(s.Seq)
}

// Record stores the player's position. It does not save.
func (s *State) Record(p *spinner.Player) {
	s.Seq = p.Seq()
}

// Save persists state to disk.
func (s *State) Save() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("creating state dir: %w", err)
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling state: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("writing state: %w", err)
	}
	return nil
}
