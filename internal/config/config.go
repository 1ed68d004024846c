package config

import (
	"fmt"
	"sort"

	"github.com/addisonking/zsweep/internal/prefs"
)

// Config is the top-level zsweep.yaml structure.
type Config struct {
	// Board is the preset played when no board is given on the command line.
	Board     string            `yaml:"board"`
	Presets   map[string]Preset `yaml:"presets"`
	Replay    ReplayConfig      `yaml:"replay"`
	Prefs     prefs.Prefs       `yaml:"prefs"`
	PuzzleDir string            `yaml:"puzzle_dir"`
	Database  string            `yaml:"database"`
	Server    ServerConfig      `yaml:"server"`
}

// Preset is a named board size.
type Preset struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// ReplayConfig bounds replay recording.
type ReplayConfig struct {
	MaxFrames int `yaml:"max_frames"`
}

// ServerConfig holds SSH server settings.
type ServerConfig struct {
	Host        string `yaml:"host"`
	Port        int    `yaml:"port"`
	HostKeyPath string `yaml:"host_key_path"`
	IdleTimeout int    `yaml:"idle_timeout_secs"`
}

// Preset returns the named preset.
func (c Config) Preset(name string) (Preset, error) {
	p, ok := c.Presets[name]
	if !ok {
		return Preset{}, fmt.Errorf("unknown preset %q (have %v)", name, c.PresetNames())
	}
	return p, nil
}

// PresetNames returns preset names ordered by board area, then name.
func (c Config) PresetNames() []string {
	names := make([]string, 0, len(c.Presets))
	for name := range c.Presets {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		ai := c.Presets[names[i]].Rows * c.Presets[names[i]].Cols
		aj := c.Presets[names[j]].Rows * c.Presets[names[j]].Cols
		if ai != aj {
			return ai < aj
		}
		return names[i] < names[j]
	})
	return names
}

// Validate checks that the config can be used to start a session.
func (c Config) Validate() error {
	for name, p := range c.Presets {
		if p.Rows <= 0 || p.Cols <= 0 {
			return fmt.Errorf("preset %q: rows and cols must be positive, got %dx%d", name, p.Rows, p.Cols)
		}
	}
	if c.Board != "" {
		if _, err := c.Preset(c.Board); err != nil {
			return fmt.Errorf("board: %w", err)
		}
	}
	if c.Replay.MaxFrames < 0 {
		return fmt.Errorf("replay.max_frames must not be negative, got %d", c.Replay.MaxFrames)
	}
	for _, name := range prefs.Names() {
		v, err := c.Prefs.Get(name)
		if err != nil {
			return err
		}
		var p prefs.Prefs
		if err := p.Set(name, v); err != nil {
			return err
		}
	}
	return nil
}
