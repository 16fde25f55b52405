package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mishankov/gallows/internal/engine"
	"github.com/mishankov/gallows/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [category]",
	Short: "Show recent rounds and win stats",
	Long: `Display the most recent rounds and the win statistics.

With a category argument, only that category is shown; without one,
rounds across all categories are listed.

Examples:
  gallows scores
  gallows scores basic
  gallows scores intermediate`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	var categoryID, title string
	if len(args) == 1 {
		category, err := engine.ParseCategory(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Fprintln(os.Stderr, "Run 'gallows list' to see available categories.")
			os.Exit(1)
		}
		categoryID = category.String()
		title = category.Title()
	} else {
		title = "All categories"
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening rounds database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	rounds, err := store.RecentRounds(categoryID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving rounds: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Recent Rounds - %s\n", title)
	fmt.Println()

	if len(rounds) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Println("Play 'gallows play basic' to record your first round!")
		return
	}

	// Print header
	fmt.Printf("  %-14s  %-20s  %-6s  %-5s  %-7s  %s\n",
		"Category", "Answer", "Result", "Lives", "Guesses", "Date")
	fmt.Printf("  %-14s  %-20s  %-6s  %-5s  %-7s  %s\n",
		"--------", "------", "------", "-----", "-------", "----")

	for _, r := range rounds {
		result := "lost"
		if r.Won {
			result = "won"
		}
		fmt.Printf("  %-14s  %-20s  %-6s  %-5d  %-7d  %s\n",
			r.Category, r.Answer, result, r.LivesLeft, r.Guesses,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	printStats(store, categoryID)
}

// printStats prints the win statistics below the round table.
func printStats(store *storage.Store, categoryID string) {
	if categoryID != "" {
		stats, err := store.Stats(categoryID)
		if err != nil || stats.Played == 0 {
			return
		}
		fmt.Printf("Played: %d  Won: %d  Win rate: %.0f%%  Best lives left: %d\n",
			stats.Played, stats.Won, stats.WinRate()*100, stats.BestLivesLeft)
		return
	}

	all, err := store.AllStats()
	if err != nil {
		return
	}
	for _, stats := range all {
		fmt.Printf("%-14s  played %d, won %d (%.0f%%)\n",
			stats.Category, stats.Played, stats.Won, stats.WinRate()*100)
	}
}
