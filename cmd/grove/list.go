package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-grove/internal/config"
	"github.com/vovakirdan/tui-grove/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show registered games and the active tuning",
	Long: `Shows the registered games and the movement tuning that --config and
--difficulty resolve to.`,
	Run: runList,
}

func runList(_ *cobra.Command, _ []string) {
	for _, g := range registry.List() {
		fmt.Printf("%s  %s\n", g.ID, g.Title)
	}
	fmt.Println()

	tuning, err := config.LoadGrove(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading tuning: %v\n", err)
		os.Exit(1)
	}
	preset := config.ParsePreset(flagDifficulty)
	config.ApplyGrovePreset(&tuning, preset)
	if preset == "" {
		preset = config.DifficultyNormal
	}

	p := tuning.Physics
	w := tuning.Water
	fmt.Printf("Tuning (%s):\n", preset)
	fmt.Printf("  jumps      %d (impulse %.1f, gravity %.1f)\n", p.MaxJumps, p.JumpImpulse, p.Gravity)
	fmt.Printf("  speed      walk %.1f  run %.1f  air control %.2f\n", p.WalkSpeed, p.RunSpeed, p.AirControl)
	fmt.Printf("  water      swim at %.1f  slow %.2f/%.2f/%.2f\n", w.SwimDepth, w.Shallow.Slow, w.Medium.Slow, w.Deep.Slow)
	fmt.Printf("  platforms  clearance %.1f  landing -%.1f/+%.1f\n",
		tuning.Collision.Clearance, tuning.Collision.LandingBelow, tuning.Collision.LandingAbove)
	fmt.Println()
	fmt.Println("Run 'grove layouts' to see the groves you can play.")
}
