package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available categories",
	Long:  `Shows the word categories you can play, with the number of entries in each.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	cfg, err := loadGameConfig("", 0, -1)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	source, err := loadWordSource(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading word lists: %v\n", err)
		os.Exit(1)
	}

	infos := source.Categories()

	fmt.Println("Available categories:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, info := range infos {
		if len(info.Category.String()) > maxIDLen {
			maxIDLen = len(info.Category.String())
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-28s  %s\n", maxIDLen, "ID", "Title", "Entries")
	fmt.Printf("  %-*s  %-28s  %s\n", maxIDLen, "--", "-----", "-------")

	for _, info := range infos {
		fmt.Printf("  %-*s  %-28s  %d\n", maxIDLen, info.Category.String(), info.Title, info.Count)
	}

	fmt.Println()
	fmt.Println("Run 'gallows play <id>' to play a category.")
}
