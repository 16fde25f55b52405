// gallows is a terminal word guessing game. You reveal a hidden word or
// phrase one letter at a time before your lives run out.
//
// Usage:
//
//	gallows list              - List available categories
//	gallows play <category>   - Play a round in a category
//	gallows menu              - Start the interactive category menu
//	gallows serve             - Start SSH server for remote play
//	gallows scores [category] - Show recent rounds and stats
//
// Global flags:
//
//	--seed <value>    - Set RNG seed for reproducible word picks
//	--db <path>       - Set database path (default: ~/.gallows/rounds.db)
//	--config <path>   - Path to custom config YAML
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mishankov/gallows/internal/config"
	"github.com/mishankov/gallows/internal/words"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gallows",
	Short: "Gallows - A word guessing game for your terminal",
	Long: `Gallows is a terminal word guessing game. A word or phrase is hidden
behind a mask and you reveal it one letter at a time. Each wrong letter,
wrong full guess, or expired turn costs a life.

Available commands:
  list     - Show all available categories
  play     - Play a round in a specific category
  menu     - Interactive category picker menu
  serve    - Start SSH server for remote play
  scores   - View recent rounds and win stats

Examples:
  gallows list
  gallows play basic
  gallows play intermediate --difficulty hard
  gallows menu
  gallows serve --ssh :2222
  gallows scores basic`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.gallows/rounds.db", "Path to rounds database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// loadGameConfig resolves the effective config: file (or defaults), then
// the difficulty preset, then explicit flag overrides.
func loadGameConfig(difficulty string, lives, timeout int) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}

	if difficulty != "" {
		preset, perr := config.ParsePreset(difficulty)
		if perr != nil {
			return config.Config{}, perr
		}
		config.ApplyPreset(&cfg, preset)
	}

	if lives > 0 {
		cfg.Gameplay.Lives = lives
	}
	if timeout >= 0 {
		cfg.Gameplay.GuessSeconds = timeout
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// loadWordSource builds the word source from the config's word lists and
// the global seed flag.
func loadWordSource(cfg config.Config) (*words.Source, error) {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	return words.Load(cfg.Words.BasicFile, cfg.Words.PhrasesFile, rng)
}
