package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var puzzlesCmd = &cobra.Command{
	Use:   "puzzles",
	Short: "List available boards",
	Long: `Shows the configured presets and every puzzle that ships with zsweep
or lives in the config's puzzle_dir.`,
	Args: cobra.NoArgs,
	Run:  runPuzzles,
}

func runPuzzles(_ *cobra.Command, _ []string) {
	cfg := loadSettings()

	fmt.Println("Presets:")
	fmt.Println()
	for _, name := range cfg.PresetNames() {
		p := cfg.Presets[name]
		marker := " "
		if name == cfg.Board {
			marker = "*"
		}
		fmt.Printf(" %s %-14s  %dx%d\n", marker, name, p.Rows, p.Cols)
	}

	puzzles := loadPuzzles(cfg)
	fmt.Println()
	fmt.Println("Puzzles:")
	fmt.Println()
	if len(puzzles) == 0 {
		fmt.Println("  none")
	}

	maxIDLen := 2 // "ID" header
	for _, p := range puzzles {
		if len(p.ID) > maxIDLen {
			maxIDLen = len(p.ID)
		}
	}
	for _, p := range puzzles {
		rows, cols := p.Size()
		fmt.Printf("  %-*s  %-20s  %dx%d\n", maxIDLen, p.ID, p.Name, rows, cols)
	}

	fmt.Println()
	fmt.Println("Run 'zsweep play <name>' to play a board.")
}
