// Package settings loads and serves editor settings.
//
// Settings are stored as TOML. A missing file is not an error; defaults
// apply. The Store is safe for concurrent reads and supports live updates,
// so the drag classifier observes threshold changes mid-session.
package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	toml "github.com/pelletier/go-toml/v2"
)

// Settings holds the tunable editor settings.
type Settings struct {
	// DragBlockStep is the pixel displacement from press start before a
	// press is reclassified as a drag.
	DragBlockStep float64 `toml:"drag_block_step"`

	// InitialTool is the tool activated at startup.
	InitialTool string `toml:"initial_tool"`

	// LogPath is the file structured logs are written to. Empty disables
	// file logging.
	LogPath string `toml:"log_path"`
}

// Default returns the default settings.
func Default() Settings {
	return Settings{
		DragBlockStep: 4,
		InitialTool:   "select",
	}
}

// Load reads settings from a TOML file. A missing file returns defaults.
func Load(path string) (Settings, error) {
	s := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return s, fmt.Errorf("reading settings %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &s); err != nil {
		return Default(), fmt.Errorf("parsing settings %s: %w", path, err)
	}
	s.normalize()
	return s, nil
}

func (s *Settings) normalize() {
	if s.DragBlockStep <= 0 {
		s.DragBlockStep = Default().DragBlockStep
	}
	if s.InitialTool == "" {
		s.InitialTool = Default().InitialTool
	}
}

// Store serves settings to consumers and accepts live updates.
type Store struct {
	mu sync.RWMutex
	s  Settings
}

// NewStore creates a store serving the given settings.
func NewStore(s Settings) *Store {
	st := &Store{s: s}
	st.s.normalize()
	return st
}

// DragBlockStep returns the current drag threshold.
func (st *Store) DragBlockStep() float64 {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.s.DragBlockStep
}

// Current returns a copy of the current settings.
func (st *Store) Current() Settings {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.s
}

// Update replaces the served settings.
func (st *Store) Update(s Settings) {
	s.normalize()
	st.mu.Lock()
	st.s = s
	st.mu.Unlock()
}
