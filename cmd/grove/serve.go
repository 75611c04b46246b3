package main

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-grove/internal/games/grove"
	"github.com/vovakirdan/tui-grove/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagMaxSessions int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the grove SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own grove with a layout and difficulty
picker. Runs are stored per-server, so all players share one board.
Connections without a terminal are refused, as are players past
--max-sessions.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.grove/host_key

Examples:
  grove serve                           # Listen on :23234 with auto-generated key
  grove serve --ssh :2222               # Listen on port 2222
  grove serve --host-key ./my_host_key  # Use specific host key
  grove serve --spectate :8080          # Also stream every session over websocket

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().IntVar(&flagMaxSessions, "max-sessions", 32, "Concurrent players allowed (0 for no limit)")
}

func runServe(_ *cobra.Command, _ []string) {
	layouts, err := loadLayouts()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading layouts: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := newLogger("grove-ssh", true)
	defer closeLog()
	grove.SetLogger(logger)

	_, stopSpectator := startSpectator(logger)
	defer stopSpectator()

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		GameID:      grove.ID,
		Layouts:     layouts,
		TickRate:    flagFPS,
		Logger:      logger,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		MaxSessions: flagMaxSessions,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting grove SSH server on %s\n", cfg.Address)
	fmt.Printf("Connect with: ssh localhost -p %s\n", port(cfg.Address))
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}

func port(addr string) string {
	if _, p, err := net.SplitHostPort(addr); err == nil && p != "" {
		return p
	}
	return "23234"
}
