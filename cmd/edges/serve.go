package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-edges/internal/games/edges"
	"github.com/vovakirdan/tui-edges/internal/logging"
	"github.com/vovakirdan/tui-edges/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session with the menu, board setup and
scoreboard. Scores are stored per-server (all users share the same
leaderboard). Unfinished runs are not resumed over SSH.

Logs go to stderr unless --log-file says otherwise.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.edges/host_key

Examples:
  edges serve                           # Listen on :23234 with auto-generated key
  edges serve --ssh :2222               # Listen on port 2222
  edges serve --host-key ./my_host_key  # Use specific host key
  edges serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(cmd *cobra.Command, _ []string) {
	// A server has no screen to protect, so log to stderr by default
	if !cmd.Flags().Changed("log-file") {
		l, closer, err := logging.Open(logging.Options{Level: flagLogLevel, File: "-", Prefix: "edges-ssh"})
		if err != nil {
			fail("%v", err)
		}
		logger, logCloser = l, closer
		edges.SetLogger(logger)
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		Logger:      logger,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fail("creating server: %v", err)
	}

	fmt.Printf("Starting edges SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fail("server: %v", err)
	}
}
