package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/addisonking/zsweep/internal/board"
	"github.com/addisonking/zsweep/internal/config"
	"github.com/addisonking/zsweep/internal/platform/tui"
)

var (
	flagRows int
	flagCols int
)

var playCmd = &cobra.Command{
	Use:   "play [preset|puzzle]",
	Short: "Play a board",
	Long: `Start a drill session on a board.

The argument is a preset name (beginner, intermediate, expert or one from
your config), a puzzle ID from 'zsweep puzzles', or a path to a puzzle
.yaml file. Without an argument the config's default board is used.
--rows and --cols start a blank board of any size.

Controls:
  h j k l      - Move (prefix a count, e.g. 5j)
  0 $          - Line start / end
  g G          - Top / bottom (5G jumps to row 5)
  w b          - Next / previous block of unrevealed cells
  { }          - Block up / down
  /            - Search for a glyph (#, . or F); n/N repeat
  i Enter      - Reveal
  f            - Flag
  Space a      - Reveal, or toggle the flag
  q Ctrl+C     - Quit

Examples:
  zsweep play
  zsweep play expert
  zsweep play corridor
  zsweep play ./puzzles/spiral.yaml
  zsweep play --rows 20 --cols 40`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagRows, "rows", 0, "Rows of a blank custom board")
	playCmd.Flags().IntVar(&flagCols, "cols", 0, "Columns of a blank custom board")
}

func runPlay(_ *cobra.Command, args []string) {
	cfg := loadSettings()

	arg := cfg.Board
	if len(args) == 1 {
		arg = args[0]
	}

	boardID, b, err := resolveBoard(cfg, arg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'zsweep puzzles' to see available boards.")
		os.Exit(1)
	}

	store := openStoreOrWarn(cfg)
	if store != nil {
		defer store.Close()
	}

	logger, closeLog := newFileLogger("zsweep")
	defer closeLog()

	screen := runtimeConfig()
	err = tui.RunSession(tui.SessionConfig{
		BoardID:   boardID,
		Board:     b,
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

// resolveBoard turns the play argument into a fresh board.
func resolveBoard(cfg config.Config, arg string) (string, *board.Board, error) {
	if flagRows > 0 || flagCols > 0 {
		b, err := board.New(flagRows, flagCols)
		if err != nil {
			return "", nil, err
		}
		return fmt.Sprintf("custom-%dx%d", flagRows, flagCols), b, nil
	}

	if config.IsPuzzlePath(arg) {
		p, err := config.ReadPuzzleFile(arg)
		if err != nil {
			return "", nil, err
		}
		b, err := p.Board()
		return p.ID, b, err
	}

	if preset, err := cfg.Preset(arg); err == nil {
		b, err := board.New(preset.Rows, preset.Cols)
		return arg, b, err
	}

	for _, p := range loadPuzzles(cfg) {
		if p.ID == arg {
			b, err := p.Board()
			return p.ID, b, err
		}
	}

	return "", nil, fmt.Errorf("unknown board %q", arg)
}
