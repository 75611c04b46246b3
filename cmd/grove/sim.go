package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-grove/internal/config"
	"github.com/vovakirdan/tui-grove/internal/levels"
	"github.com/vovakirdan/tui-grove/internal/progress"
	"github.com/vovakirdan/tui-grove/internal/session"
)

var (
	flagSimSeconds  float64
	flagSimRealtime bool
	flagSimRecord   bool
)

var simCmd = &cobra.Command{
	Use:   "sim [layout]",
	Short: "Let the autopilot play a layout headless",
	Long: `Run a layout without a terminal UI. The autopilot visits the nearest
outstanding gem, treasure or pond until the grove is won or the time
limit runs out. Progress is logged to stderr.

With --spectate the run is streamed over websocket; add --realtime to
pace it for a viewer.

Examples:
  grove sim
  grove sim glade --seed 7
  grove sim meadow --max-seconds 600 --record
  grove sim meadow --spectate :8080 --realtime`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSim,
}

func init() {
	simCmd.Flags().Float64Var(&flagSimSeconds, "max-seconds", 300, "Simulated time limit in seconds")
	simCmd.Flags().BoolVar(&flagSimRealtime, "realtime", false, "Pace the simulation at the tick rate")
	simCmd.Flags().BoolVar(&flagSimRecord, "record", false, "Save the run to the database")
}

func runSim(_ *cobra.Command, args []string) {
	layoutID := ""
	if len(args) == 1 {
		layoutID = args[0]
	}

	logger, closeLog := newLogger("grove-sim", true)
	defer closeLog()

	tuning, err := config.LoadGrove(flagConfig)
	if err != nil {
		logger.Warn("using default tuning", "err", err)
		tuning = config.DefaultGroveConfig()
	}
	config.ApplyGrovePreset(&tuning, config.ParsePreset(flagDifficulty))

	layout, err := levels.NewLoader(flagLayoutDir).LoadByID(layoutID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s, err := session.New(tuning, layout, session.WithSeed(seed), session.WithLogger(logger))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building grove: %v\n", err)
		os.Exit(1)
	}

	hub, stopSpectator := startSpectator(logger)
	defer stopSpectator()

	rate := flagFPS
	if rate <= 0 {
		rate = 60
	}
	dt := 1.0 / float64(rate)
	maxTicks := int(flagSimSeconds * float64(rate))

	var pace <-chan time.Time
	if flagSimRealtime {
		ticker := time.NewTicker(time.Second / time.Duration(rate))
		defer ticker.Stop()
		pace = ticker.C
	}

	pilot := session.NewPilot()
	logger.Info("sim started", "layout", layout.ID, "seed", seed, "limit", flagSimSeconds)
	for i := 0; i < maxTicks && !s.Won(); i++ {
		if pace != nil {
			<-pace
		}
		f := s.Update(dt, pilot.Intent(s))
		for _, e := range f.Events {
			if c, ok := e.(progress.CollectibleCollected); ok {
				logger.Info("collected", "kind", c.Kind, "value", c.Value, "score", f.Progress.Score)
			}
		}
		if hub != nil {
			hub.Observe(s, f)
		}
	}
	if hub != nil {
		hub.Forget(s)
	}

	sum := s.Summary()
	if sum.Won {
		logger.Info("sim finished", "layout", sum.LayoutID, "score", sum.Score, "elapsed", sum.Elapsed)
	} else {
		logger.Warn("sim timed out", "layout", sum.LayoutID, "targets", len(s.Targets()))
	}

	if flagSimRecord {
		if store := openStore(); store != nil {
			if _, err := store.SaveRun(sum); err != nil {
				logger.Error("cannot save run", "err", err)
			}
			store.Close()
		}
	}

	treasure := "no"
	if sum.Treasure {
		treasure = "yes"
	}
	fmt.Printf("Layout:   %s\n", sum.LayoutID)
	fmt.Printf("Won:      %v\n", sum.Won)
	fmt.Printf("Score:    %d\n", sum.Score)
	fmt.Printf("Gems:     %d/%d\n", sum.Gems, sum.TotalGems)
	fmt.Printf("Ponds:    %d/%d\n", sum.Ponds, sum.TotalPonds)
	fmt.Printf("Treasure: %s\n", treasure)
	fmt.Printf("Time:     %s\n", sum.Elapsed.Round(100*time.Millisecond))

	if !sum.Won {
		os.Exit(2)
	}
}
