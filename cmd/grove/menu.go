package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-grove/internal/games/grove"
	"github.com/vovakirdan/tui-grove/internal/platform/tui"
	"github.com/vovakirdan/tui-grove/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a layout picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to pick a layout.
After a run, B or Esc returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Left/Right   - Change difficulty
  Enter/Space  - Play layout
  Tab          - Best runs
  Q            - Quit

Examples:
  grove menu
  grove menu --fps 30
  grove menu --layouts ./my-layouts`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	layouts, err := loadLayouts()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading layouts: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := newLogger("grove", false)
	defer closeLog()
	grove.SetLogger(logger)

	_, stopSpectator := startSpectator(logger)
	defer stopSpectator()

	store := openStore()
	cfg := runtimeConfig()

	difficulty := flagDifficulty
	for {
		menuResult, err := tui.RunMenu(store, cfg, layouts, difficulty)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		cfg = menuResult.Config
		difficulty = menuResult.Difficulty

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, layouts, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from scoreboard
		}

		if menuResult.LayoutID == "" {
			break
		}

		game, err := registry.Create(grove.ID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			break
		}
		if chooser, ok := game.(registry.LayoutChooser); ok {
			chooser.UseLayout(menuResult.LayoutID)
		}
		if chooser, ok := game.(registry.DifficultyChooser); ok {
			chooser.UseDifficulty(difficulty)
		}

		// Fresh scatter for each run unless pinned
		runCfg := cfg
		if runCfg.Seed == 0 {
			runCfg.Seed = time.Now().UnixNano()
		}

		backToMenu, err := tui.Run(game, store, runCfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
		if !backToMenu {
			break
		}
	}

	if store != nil {
		store.Close()
	}
}
