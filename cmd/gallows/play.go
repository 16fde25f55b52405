package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mishankov/gallows/internal/engine"
	"github.com/mishankov/gallows/internal/platform/tui"
	"github.com/mishankov/gallows/internal/storage"
)

var (
	flagDifficulty string
	flagLives      int
	flagTimeout    int
	flagBasicList  string
	flagPhraseList string
)

var playCmd = &cobra.Command{
	Use:   "play <category>",
	Short: "Play a round",
	Long: `Start a round in the given category.

Categories:
  basic (b)          - Single lowercase words
  intermediate (i)   - Multi-word phrases

Controls:
  Type a letter or the full answer, then Enter
  Esc         - Give up (reveals the answer)
  R           - New round (after the round ends)
  Q/Ctrl+C    - Quit

Typing "quit" as a guess also ends the round and reveals the answer.

Difficulty options:
  easy    - 8 lives, 30 seconds per guess
  normal  - 6 lives, 15 seconds per guess
  hard    - 4 lives, 10 seconds per guess
  untimed - no per-guess countdown

Examples:
  gallows play basic
  gallows play intermediate --difficulty hard
  gallows play b --lives 10 --timeout 20
  gallows play basic --words ./my-words.txt`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, untimed")
	playCmd.Flags().IntVar(&flagLives, "lives", 0, "Lives per round (0 = use config)")
	playCmd.Flags().IntVar(&flagTimeout, "timeout", -1, "Seconds per guess, 0 disables the countdown (-1 = use config)")
	playCmd.Flags().StringVar(&flagBasicList, "words", "", "Path to a custom basic word list")
	playCmd.Flags().StringVar(&flagPhraseList, "phrases", "", "Path to a custom phrase list")
}

func runPlay(cmd *cobra.Command, args []string) {
	category, err := engine.ParseCategory(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'gallows list' to see available categories.")
		os.Exit(1)
	}

	cfg, err := loadGameConfig(flagDifficulty, flagLives, flagTimeout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Per-command list overrides
	if flagBasicList != "" {
		cfg.Words.BasicFile = flagBasicList
	}
	if flagPhraseList != "" {
		cfg.Words.PhrasesFile = flagPhraseList
	}

	source, err := loadWordSource(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading word lists: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Open round storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open rounds database: %v\n", err)
		// Continue without storage - the game still works
		store = nil
	}

	runErr := tui.RunRound(source, store, tui.RoundOptions{
		Category:     category,
		Lives:        cfg.Gameplay.Lives,
		GuessSeconds: cfg.Gameplay.GuessSeconds,
	}, width, height)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running round: %v\n", runErr)
		os.Exit(1)
	}
}
