package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-grove/internal/levels"
)

var flagScoresClear bool

var scoresCmd = &cobra.Command{
	Use:   "scores [layout]",
	Short: "Show best runs for a layout",
	Long: `Display the top 10 runs for the given layout, or the default layout.
Won runs rank first, then higher scores, then faster times.
With --clear the layout's recorded runs are deleted instead.

Examples:
  grove scores
  grove scores glade
  grove scores glade --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every recorded run for the layout")
}

func runScores(_ *cobra.Command, args []string) {
	layoutID := levels.DefaultLayout
	if len(args) == 1 {
		layoutID = args[0]
	}

	layout, err := levels.NewLoader(flagLayoutDir).LoadByID(layoutID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'grove layouts' to see available layouts.")
		os.Exit(1)
	}

	store := openStore()
	if store == nil {
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		n, err := store.ClearRuns(layout.ID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared %d runs for %s.\n", n, layout.Title())
		return
	}

	runs, err := store.BestRuns(layout.ID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	fmt.Printf("Best Runs - %s\n", layout.Title())
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'grove play %s' to set the first time!\n", layout.ID)
		return
	}

	fmt.Printf("  %-4s  %-6s  %-5s  %-5s  %-8s  %-8s  %s\n", "Rank", "Score", "Gems", "Ponds", "Treasure", "Time", "Date")
	fmt.Printf("  %-4s  %-6s  %-5s  %-5s  %-8s  %-8s  %s\n", "----", "-----", "----", "-----", "--------", "----", "----")

	for i, r := range runs {
		treasure := "no"
		if r.Treasure {
			treasure = "yes"
		}
		elapsed := "-"
		if r.Won {
			elapsed = r.Elapsed.Round(100 * time.Millisecond).String()
		}
		fmt.Printf("  %-4d  %-6d  %-5s  %-5s  %-8s  %-8s  %s\n",
			i+1, r.Score,
			fmt.Sprintf("%d/%d", r.Gems, r.TotalGems),
			fmt.Sprintf("%d/%d", r.Ponds, r.TotalPonds),
			treasure, elapsed,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if stats, err := store.GetGameStats(layout.ID); err == nil {
		fmt.Printf("Runs: %d  Wins: %d  Best score: %d\n", stats.Runs, stats.Wins, stats.HighScore)
	}
}
