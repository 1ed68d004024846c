package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/addisonking/zsweep/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick boards from an interactive menu",
	Long: `Start zsweep in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to play a board.
Quitting a board with q returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play board
  S/Tab        - Stats
  Q            - Quit

Examples:
  zsweep menu
  zsweep menu --db ./zsweep.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	cfg := loadSettings()

	store := openStoreOrWarn(cfg)
	if store != nil {
		defer store.Close()
	}

	logger, closeLog := newFileLogger("zsweep")
	defer closeLog()

	screen := runtimeConfig()
	err := tui.RunApp(tui.AppConfig{
		Items:     tui.MenuItems(cfg, loadPuzzles(cfg)),
		Store:     store,
		Prefs:     loadPrefs(store, cfg),
		MaxFrames: cfg.Replay.MaxFrames,
		Width:     screen.ScreenW,
		Height:    screen.ScreenH,
		Logger:    logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
