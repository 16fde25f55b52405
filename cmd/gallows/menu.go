package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mishankov/gallows/internal/platform/tui"
	"github.com/mishankov/gallows/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the game with a category picker menu",
	Long: `Start the game in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to pick a category.
After a round ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Pick category
  Tab          - Past rounds
  Q            - Quit

Examples:
  gallows menu
  gallows menu --difficulty easy
  gallows menu --db ./rounds.db`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, untimed")
}

func runMenu(_ *cobra.Command, _ []string) {
	cfg, err := loadGameConfig(flagDifficulty, 0, -1)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	source, err := loadWordSource(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading word lists: %v\n", err)
		os.Exit(1)
	}

	// Open round storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open rounds database: %v\n", err)
		store = nil
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Menu loop
	for {
		result, err := tui.RunMenu(source, store, width, height)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		if result.Quit {
			break
		}

		if result.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, width, height)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from the past-rounds screen
		}

		if !result.Picked {
			break
		}

		if err := tui.RunRound(source, store, tui.RoundOptions{
			Category:     result.Category,
			Lives:        cfg.Gameplay.Lives,
			GuessSeconds: cfg.Gameplay.GuessSeconds,
		}, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running round: %v\n", err)
		}

		// Loop back to menu
	}

	if store != nil {
		store.Close()
	}
}
