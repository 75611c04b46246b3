package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-grove/internal/games/grove"
	"github.com/vovakirdan/tui-grove/internal/platform/tui"
	"github.com/vovakirdan/tui-grove/internal/registry"
)

var flagAutopilot bool

var playCmd = &cobra.Command{
	Use:   "play [layout]",
	Short: "Play a layout",
	Long: `Start playing the given layout, or the default layout.

Controls:
  W/A/S/D          - Walk (hold Shift to run)
  Up/Down          - Walk forward/back
  Left/Right, Q/E  - Turn
  Space            - Jump (again in the air to double jump)
  P                - Pause and show objectives
  R                - Restart (after winning)
  B/Esc            - Back (from pause or win screen)
  Ctrl+C           - Quit

Difficulty options:
  easy   - Triple jump, lighter water
  normal - Double jump
  hard   - Less air control, heavier water
  fixed  - Exactly the tuning file

Examples:
  grove play
  grove play glade
  grove play meadow --difficulty hard
  grove play meadow --autopilot --spectate :8080`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagAutopilot, "autopilot", false, "Let the autopilot play")
}

func runPlay(_ *cobra.Command, args []string) {
	layoutID := ""
	if len(args) == 1 {
		layoutID = args[0]
	}

	logger, closeLog := newLogger("grove", false)
	defer closeLog()
	grove.SetLogger(logger)
	grove.SetAutopilot(flagAutopilot)

	_, stopSpectator := startSpectator(logger)
	defer stopSpectator()

	game, err := registry.Create(grove.ID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	if chooser, ok := game.(registry.LayoutChooser); ok {
		chooser.UseLayout(layoutID)
	}

	store := openStore()
	_, runErr := tui.Run(game, store, runtimeConfig())

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
	if g, ok := game.(*grove.Game); ok && g.Err() != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", g.Err())
		fmt.Fprintln(os.Stderr, "Run 'grove layouts' to see available layouts.")
		os.Exit(1)
	}
}
