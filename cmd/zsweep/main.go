// zsweep is a terminal drill for vim-style navigation on a minesweeper grid.
//
// Usage:
//
//	zsweep play [preset|puzzle]  - Play a board
//	zsweep menu                  - Pick boards interactively
//	zsweep replay [id]           - List or view recorded sessions
//	zsweep stats                 - Show session statistics
//	zsweep prefs [name [value]]  - Show or change preferences
//	zsweep puzzles               - List available puzzles
//	zsweep serve                 - Start SSH server for remote play
//
// Global flags:
//
//	--db <path>      - Set database path (default: ~/.zsweep/zsweep.db)
//	--config <path>  - Use a specific zsweep.yaml
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/addisonking/zsweep/internal/config"
	"github.com/addisonking/zsweep/internal/core"
	"github.com/addisonking/zsweep/internal/prefs"
	"github.com/addisonking/zsweep/internal/storage"
)

var (
	// Global flags
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "zsweep",
	Short: "zsweep - practice vim motions on a minesweeper board",
	Long: `zsweep is a terminal drill for moving around a minesweeper grid with
vim-style motions: hjkl, counts, 0/$, g/G, w/b block jumps, {/} vertical
block jumps and / searches.

Available commands:
  play     - Play a preset or puzzle board
  menu     - Interactive board picker
  replay   - List or view recorded sessions
  stats    - Show session statistics
  prefs    - Show or change preferences
  puzzles  - List available puzzles
  serve    - Start SSH server for remote play

Examples:
  zsweep play
  zsweep play expert
  zsweep play ./my-puzzle.yaml
  zsweep replay 3
  zsweep prefs line_numbers hybrid`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to session database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to zsweep.yaml")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(prefsCmd)
	rootCmd.AddCommand(puzzlesCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadSettings loads zsweep.yaml or exits.
func loadSettings() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// dbPath returns the database path from the flag or the config.
func dbPath(cfg config.Config) string {
	if flagDBPath != "" {
		return flagDBPath
	}
	return cfg.Database
}

// openStoreOrWarn opens the database. Sessions still work without it.
func openStoreOrWarn(cfg config.Config) *storage.Store {
	store, err := storage.Open(dbPath(cfg))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open session database: %v\n", err)
		return nil
	}
	return store
}

// mustOpenStore opens the database or exits.
func mustOpenStore(cfg config.Config) *storage.Store {
	store, err := storage.Open(dbPath(cfg))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening session database: %v\n", err)
		os.Exit(1)
	}
	return store
}

// loadPrefs overlays stored preferences on the configured defaults.
func loadPrefs(store *storage.Store, cfg config.Config) prefs.Prefs {
	if store == nil {
		return cfg.Prefs
	}
	p, err := prefs.Load(store, cfg.Prefs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	return p
}

// loadPuzzles returns the bundled puzzles plus those in the puzzle dir.
func loadPuzzles(cfg config.Config) []config.Puzzle {
	puzzles, err := config.SamplePuzzles().LoadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not load bundled puzzles: %v\n", err)
	}
	if cfg.PuzzleDir == "" {
		return puzzles
	}

	extra, err := config.NewLoader(cfg.PuzzleDir).LoadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not load puzzles from %s: %v\n", cfg.PuzzleDir, err)
		return puzzles
	}
	return append(puzzles, extra...)
}

// runtimeConfig reads the terminal size, keeping the defaults if unknown.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	return cfg
}

// newFileLogger logs to ~/.zsweep/zsweep.log so the TUI stays clean.
// The returned close function is always safe to call.
func newFileLogger(prefix string) (*log.Logger, func()) {
	path := config.ExpandHome(filepath.Join("~", ".zsweep", "zsweep.log"))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return log.New(io.Discard), func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return log.New(io.Discard), func() {}
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	return logger, func() { f.Close() }
}
