package config

import (
	"embed"
	"io/fs"

	"github.com/addisonking/zsweep/internal/prefs"
)

//go:embed defaults/zsweep.yaml
var defaultConfigYAML []byte

//go:embed puzzles/*.yaml
var embeddedPuzzles embed.FS

// DefaultConfig returns the hardcoded configuration.
func DefaultConfig() Config {
	return Config{
		Board: "beginner",
		Presets: map[string]Preset{
			"beginner":     {Rows: 9, Cols: 9},
			"intermediate": {Rows: 16, Cols: 16},
			"expert":       {Rows: 16, Cols: 30},
		},
		Replay: ReplayConfig{
			MaxFrames: 5000,
		},
		Prefs:    prefs.Default(),
		Database: "~/.zsweep/zsweep.db",
		Server: ServerConfig{
			Host:        "0.0.0.0",
			Port:        2222,
			HostKeyPath: "~/.zsweep/ssh_host_ed25519",
			IdleTimeout: 1800,
		},
	}
}

// SamplePuzzles returns the puzzles bundled with the binary.
func SamplePuzzles() *Loader {
	sub, err := fs.Sub(embeddedPuzzles, "puzzles")
	if err != nil {
		panic(err)
	}
	return &Loader{fsys: sub, Root: "."}
}
