package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-grove/internal/levels"
)

var layoutsCmd = &cobra.Command{
	Use:   "layouts",
	Short: "List available layouts",
	Long: `Shows the built-in layouts plus any found in --layouts.
A file in the directory replaces a built-in layout with the same ID.`,
	Run: runLayouts,
}

func runLayouts(_ *cobra.Command, _ []string) {
	layouts, err := loadLayouts()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading layouts: %v\n", err)
		os.Exit(1)
	}

	maxIDLen := 2
	for _, l := range layouts {
		if len(l.ID) > maxIDLen {
			maxIDLen = len(l.ID)
		}
	}

	fmt.Printf("  %-*s  %-5s  %-5s  %-8s  %s\n", maxIDLen, "ID", "Gems", "Ponds", "Treasure", "Name")
	fmt.Printf("  %-*s  %-5s  %-5s  %-8s  %s\n", maxIDLen, "--", "----", "-----", "--------", "----")
	for _, l := range layouts {
		gems, treasure, ponds := l.Counts()
		marker := ""
		if l.ID == levels.DefaultLayout {
			marker = " (default)"
		}
		fmt.Printf("  %-*s  %-5d  %-5d  %-8d  %s%s\n", maxIDLen, l.ID, gems, ponds, treasure, l.Title(), marker)
	}

	fmt.Println()
	fmt.Println("Run 'grove play <id>' to play a layout.")
}
