package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/addisonking/zsweep/internal/prefs"
)

var prefsCmd = &cobra.Command{
	Use:   "prefs [name [value]]",
	Short: "Show or change preferences",
	Long: `Show all preferences, show one, or set one.

Preferences:
  zen_mode      true | false                        hide status and help
  line_numbers  off | normal | relative | hybrid    row gutter
  mine_icon     asterisk | skull | radiation | flame  flag marker

Examples:
  zsweep prefs
  zsweep prefs line_numbers
  zsweep prefs line_numbers relative
  zsweep prefs zen_mode true`,
	Args: cobra.MaximumNArgs(2),
	Run:  runPrefs,
}

func runPrefs(_ *cobra.Command, args []string) {
	cfg := loadSettings()
	store := mustOpenStore(cfg)
	defer store.Close()

	current := loadPrefs(store, cfg)

	switch len(args) {
	case 0:
		for _, name := range prefs.Names() {
			v, _ := current.Get(name)
			fmt.Printf("  %-14s %s\n", name, v)
		}

	case 1:
		v, err := current.Get(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(v)

	case 2:
		if err := current.Set(args[0], args[1]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if err := current.Save(store); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving preferences: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("%s = %s\n", args[0], args[1])
	}
}
