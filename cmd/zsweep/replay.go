package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/addisonking/zsweep/internal/platform/tui"
	"github.com/addisonking/zsweep/internal/storage"
)

var flagReplayLimit int

var replayCmd = &cobra.Command{
	Use:   "replay [id]",
	Short: "List or view recorded sessions",
	Long: `Without an argument, list the most recent replays.
With a replay ID, step through its frames.

Controls:
  h/l   - Previous / next frame
  0/$   - First / last frame
  q     - Quit

Examples:
  zsweep replay
  zsweep replay 12`,
	Args: cobra.MaximumNArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().IntVar(&flagReplayLimit, "limit", 20, "Number of replays to list")
}

func runReplay(_ *cobra.Command, args []string) {
	cfg := loadSettings()
	store := mustOpenStore(cfg)
	defer store.Close()

	if len(args) == 0 {
		listReplays(store)
		return
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid replay id %q\n", args[0])
		os.Exit(1)
	}

	entry, frames, err := store.LoadReplay(id)
	if errors.Is(err, storage.ErrNotFound) {
		fmt.Fprintf(os.Stderr, "Error: no replay with id %d\n", id)
		fmt.Fprintln(os.Stderr, "Run 'zsweep replay' to list replays.")
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading replay: %v\n", err)
		os.Exit(1)
	}

	title := fmt.Sprintf("replay #%d - %s (%s)", entry.ID, entry.BoardID, entry.CreatedAt.Format("2006-01-02 15:04"))
	if err := tui.RunReplay(title, frames, loadPrefs(store, cfg)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func listReplays(store *storage.Store) {
	replays, err := store.ListReplays(flagReplayLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving replays: %v\n", err)
		os.Exit(1)
	}

	if len(replays) == 0 {
		fmt.Println("No replays recorded yet.")
		fmt.Println()
		fmt.Println("Play 'zsweep play' to record one.")
		return
	}

	fmt.Printf("  %-5s  %-14s  %-7s  %-6s  %s\n", "ID", "Board", "Size", "Frames", "Date")
	fmt.Printf("  %-5s  %-14s  %-7s  %-6s  %s\n", "--", "-----", "----", "------", "----")
	for _, r := range replays {
		fmt.Printf("  %-5d  %-14s  %-7s  %-6d  %s\n",
			r.ID, r.BoardID, fmt.Sprintf("%dx%d", r.Rows, r.Cols), r.FrameCount,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	fmt.Println("Run 'zsweep replay <id>' to view one.")
}
