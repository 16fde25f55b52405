package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mishankov/gallows/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagSSHDBPath   string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the gallows SSH server",
	Long: `Start an SSH server that lets users connect and play over SSH.

Each SSH connection gets its own session with a category picker menu.
Rounds are stored per-server (all users share the same history).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.gallows/host_key

Examples:
  gallows serve                           # Listen on :23234 with auto-generated key
  gallows serve --ssh :2222               # Listen on port 2222
  gallows serve --host-key ./my_host_key  # Use specific host key
  gallows serve --db ./rounds.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagSSHDBPath, "db", "~/.gallows/rounds.db", "Path to rounds database")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, untimed")
}

func runServe(_ *cobra.Command, _ []string) {
	gameCfg, err := loadGameConfig(flagDifficulty, 0, -1)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	source, err := loadWordSource(gameCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading word lists: %v\n", err)
		os.Exit(1)
	}

	cfg := tui.SSHServerConfig{
		Address:      flagSSHAddr,
		HostKeyPath:  flagHostKey,
		DBPath:       flagSSHDBPath,
		IdleTimeout:  time.Duration(flagIdleTimeout) * time.Minute,
		Lives:        gameCfg.Gameplay.Lives,
		GuessSeconds: gameCfg.Gameplay.GuessSeconds,
	}

	server, err := tui.NewSSHServer(cfg, source)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting gallows SSH server on %s\n", cfg.Address)
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
