// grove is a terminal exploration game: walk, jump and swim through a
// grove to collect every gem, find the treasure and visit every pond.
//
// Usage:
//
//	grove list               - Show games and the active tuning
//	grove layouts            - List available layouts
//	grove play [layout]      - Play a layout
//	grove menu               - Pick layouts interactively
//	grove sim [layout]       - Let the autopilot play headless
//	grove serve              - Start SSH server for remote play
//	grove scores [layout]    - Show best runs for a layout
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set seed for tree scatter
//	--db <path>           - Set database path (default: ~/.grove/scores.db)
//	--config <path>       - Custom tuning YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--layouts <dir>       - Extra layout directory
//	--log <path>          - Write logs to a file
//	--spectate <addr>     - Stream frames over websocket
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-grove/internal/games/grove"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLayoutDir  string
	flagLogPath    string
	flagSpectate   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "grove",
	Short: "Grove - explore a terminal grove",
	Long: `Grove is a small exploration game for the terminal, seen from above.
Walk, run, jump and swim around a grove to collect every gem, find the
hidden treasure and visit every pond.

Available commands:
  list     - Show games and the active tuning
  layouts  - Show available layouts
  play     - Play a layout directly
  menu     - Interactive layout picker
  sim      - Headless autopilot run
  serve    - Start SSH server for remote play
  scores   - View best runs

Examples:
  grove play
  grove play glade --difficulty easy
  grove menu --layouts ./my-layouts
  grove sim meadow --seed 42
  grove serve --ssh :2222 --spectate :8080
  grove scores meadow`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		applyGameSettings()
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Scatter seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.grove/scores.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLayoutDir, "layouts", "", "Directory with extra layout YAML files")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagSpectate, "spectate", "", "Stream frames over websocket on this address (e.g. :8080)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(layoutsCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
