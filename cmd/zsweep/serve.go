package main

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/addisonking/zsweep/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the zsweep SSH server",
	Long: `Start an SSH server that lets users connect and drill remotely.

Each SSH connection gets its own session with a board picker menu.
Sessions and replays are stored in the server's database.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, uses server.host_key_path from the config

Examples:
  zsweep serve                           # Listen on the configured address
  zsweep serve --ssh :2222               # Listen on port 2222
  zsweep serve --host-key ./my_host_key  # Use specific host key
  zsweep serve --db ./zsweep.db          # Use specific database

Users can connect with:
  ssh localhost -p 2222`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port, default from config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (default from config)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes (default from config)")
}

func runServe(_ *cobra.Command, _ []string) {
	settings := loadSettings()

	cfg := tui.SSHServerConfig{
		Address:     fmt.Sprintf("%s:%d", settings.Server.Host, settings.Server.Port),
		HostKeyPath: settings.Server.HostKeyPath,
		DBPath:      dbPath(settings),
		IdleTimeout: time.Duration(settings.Server.IdleTimeout) * time.Second,
		Settings:    settings,
		Puzzles:     loadPuzzles(settings),
	}
	if flagSSHAddr != "" {
		cfg.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		cfg.HostKeyPath = flagHostKey
	}
	if flagIdleTimeout > 0 {
		cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting zsweep SSH server on %s\n", server.Addr())
	if _, port, splitErr := net.SplitHostPort(server.Addr()); splitErr == nil {
		fmt.Printf("Connect with: ssh localhost -p %s\n", port)
	}
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
