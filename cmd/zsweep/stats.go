package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/addisonking/zsweep/internal/platform/tui"
)

var flagStatsInteractive bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show session statistics",
	Long: `Display how many sessions were started and completed, the total
time spent sweeping and the most recent sessions.

Examples:
  zsweep stats
  zsweep stats -i`,
	Args: cobra.NoArgs,
	Run:  runStats,
}

func init() {
	statsCmd.Flags().BoolVarP(&flagStatsInteractive, "interactive", "i", false, "Browse sessions in a table")
}

func runStats(_ *cobra.Command, _ []string) {
	cfg := loadSettings()
	store := mustOpenStore(cfg)
	defer store.Close()

	if flagStatsInteractive {
		screen := runtimeConfig()
		if _, err := tui.RunStats(store, screen.ScreenW, screen.ScreenH); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	stats, err := store.Stats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Stats")
	fmt.Println()
	fmt.Printf("  Started:        %d\n", stats.Started)
	fmt.Printf("  Completed:      %d\n", stats.Completed)
	fmt.Printf("  Time sweeping:  %s\n", time.Duration(stats.Seconds)*time.Second)

	sessions, err := store.RecentSessions(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving sessions: %v\n", err)
		os.Exit(1)
	}
	if len(sessions) == 0 {
		fmt.Println()
		fmt.Println("No sessions recorded yet.")
		return
	}

	fmt.Println()
	fmt.Printf("  %-5s  %-14s  %-7s  %-5s  %-8s  %s\n", "ID", "Board", "Size", "Done", "Time", "Date")
	fmt.Printf("  %-5s  %-14s  %-7s  %-5s  %-8s  %s\n", "--", "-----", "----", "----", "----", "----")
	for _, s := range sessions {
		done := "-"
		if s.Completed {
			done = "yes"
		}
		duration := "-"
		if s.Finished {
			duration = (time.Duration(s.Duration) * time.Second).String()
		}
		fmt.Printf("  %-5d  %-14s  %-7s  %-5s  %-8s  %s\n",
			s.ID, s.BoardID, fmt.Sprintf("%dx%d", s.Rows, s.Cols), done, duration,
			s.CreatedAt.Format("2006-01-02 15:04"))
	}
}
