// Package session owns one play-through of a grove: the built world, the
// player and the progress tracker, advanced together by Update.
package session

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tui-grove/internal/config"
	"github.com/vovakirdan/tui-grove/internal/core"
	"github.com/vovakirdan/tui-grove/internal/levels"
	"github.com/vovakirdan/tui-grove/internal/player"
	"github.com/vovakirdan/tui-grove/internal/progress"
	"github.com/vovakirdan/tui-grove/internal/world"
)

// Frame is everything the render and UI collaborators need after one
// Update.
type Frame struct {
	Tick     uint64
	Player   player.State
	Report   player.Report
	Progress progress.GameState
	Events   []progress.Event
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the structured logger. The default discards.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		s.logger = l
	}
}

// WithSeed sets the seed for terrain and scatter.
func WithSeed(seed int64) Option {
	return func(s *Session) {
		s.seed = seed
	}
}

// Session is the context object for one grove. All state is written from
// Update; the integrator writes the player, the tracker writes progress.
type Session struct {
	cfg    config.GroveConfig
	layout levels.Layout
	seed   int64
	logger *log.Logger

	scene      *levels.Scene
	integrator *player.Integrator
	tracker    *progress.Tracker
	player     player.State
	report     player.Report
	tick       uint64
}

// New builds the grove described by layout.
func New(cfg config.GroveConfig, layout levels.Layout, opts ...Option) (*Session, error) {
	s := &Session{
		cfg:    cfg,
		layout: layout,
		seed:   1,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.Reset(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reset rebuilds the world, the player and all progress from the layout.
// After the first build the existing world is cleared and refilled.
func (s *Session) Reset() error {
	var (
		scene *levels.Scene
		err   error
	)
	if s.scene != nil {
		scene, err = s.layout.Rebuild(s.scene.World, s.cfg, s.seed)
	} else {
		scene, err = s.layout.Build(s.cfg, s.seed)
	}
	if err != nil {
		return fmt.Errorf("session: build %s: %w", s.layout.ID, err)
	}

	s.scene = scene
	s.integrator = player.NewIntegrator(s.cfg, scene.World)
	s.integrator.SetSpawn(scene.Spawn, scene.SpawnYaw)
	s.tracker = progress.NewTracker(s.cfg.Pickup, scene.World.Ponds(), scene.Collectibles)
	s.player = player.NewState(scene.Spawn, scene.SpawnYaw)
	s.report = player.Report{Mode: s.player.Mode()}
	s.tick = 0

	st := s.tracker.State()
	s.logger.Info("grove built",
		"layout", s.layout.ID,
		"seed", s.seed,
		"obstacles", scene.World.Registry().Len(),
		"ponds", st.TotalPonds,
		"gems", st.TotalGems,
		"treasure", st.TotalTreasure,
	)
	return nil
}

// Update advances the grove by dt seconds. Once the grove is won the player
// can keep walking but progress no longer changes.
func (s *Session) Update(dt float64, in player.Intent) Frame {
	s.tick++
	s.report = s.integrator.Step(&s.player, in, dt)
	if s.report.Events.Has(player.EventRespawned) {
		s.logger.Warn("player fell out of the world, respawned", "spawn", s.integrator.Spawn())
	}

	events := s.tracker.Update(s.player.Position, dt)
	for _, e := range events {
		switch e := e.(type) {
		case progress.ObjectiveCompleted:
			s.logger.Info("objective completed", "objective", e.ID, "tick", s.tick)
		case progress.PondDiscovered:
			s.logger.Debug("pond discovered", "pond", e.Index, "visited", e.Visited, "total", e.Total)
		case progress.GameWon:
			s.logger.Info("grove won", "layout", s.layout.ID, "score", e.Score, "elapsed", e.Elapsed)
		}
	}

	return Frame{
		Tick:     s.tick,
		Player:   s.player,
		Report:   s.report,
		Progress: s.tracker.State(),
		Events:   events,
	}
}

// Player returns the current player state.
func (s *Session) Player() player.State {
	return s.player
}

// LastReport returns the integrator report of the latest Update.
func (s *Session) LastReport() player.Report {
	return s.report
}

// Progress returns a snapshot of the game state.
func (s *Session) Progress() progress.GameState {
	return s.tracker.State()
}

// Won reports whether the grove is complete.
func (s *Session) Won() bool {
	return s.tracker.State().Won()
}

// World returns the built world for rendering.
func (s *Session) World() *world.World {
	return s.scene.World
}

// Collectibles returns snapshots of every collectible.
func (s *Session) Collectibles() []progress.Collectible {
	return s.tracker.Collectibles()
}

// Layout returns the layout the session was built from.
func (s *Session) Layout() levels.Layout {
	return s.layout
}

// Tick returns the number of updates since the last reset.
func (s *Session) Tick() uint64 {
	return s.tick
}

// Summary reports the run for persistence.
func (s *Session) Summary() core.RunSummary {
	st := s.tracker.State()
	return core.RunSummary{
		LayoutID:   s.layout.ID,
		Score:      st.Score,
		Gems:       st.GemsCollected,
		TotalGems:  st.TotalGems,
		Ponds:      st.PondsVisited(),
		TotalPonds: st.TotalPonds,
		Treasure:   st.TreasureFound,
		Won:        st.Won(),
		Elapsed:    time.Duration(st.Elapsed * float64(time.Second)),
	}
}

// TargetKind says what a target is for.
type TargetKind string

const (
	TargetGem      TargetKind = "gem"
	TargetTreasure TargetKind = "treasure"
	TargetPond     TargetKind = "pond"
)

// Target is an outstanding goal on the ground plane.
type Target struct {
	Kind     TargetKind
	Position mgl64.Vec2
	Distance float64 // from the player when listed
}

// Targets lists outstanding goals nearest first: uncollected gems and
// treasure, and undiscovered ponds. It is empty once the grove is won.
func (s *Session) Targets() []Target {
	if s.Won() {
		return nil
	}
	pos := s.player.Planar()
	var targets []Target
	for _, c := range s.tracker.Collectibles() {
		if c.Collected() {
			continue
		}
		var kind TargetKind
		switch c.Kind {
		case progress.KindGem:
			kind = TargetGem
		case progress.KindTreasure:
			kind = TargetTreasure
		default:
			continue
		}
		xz := core.Planar(c.Position)
		targets = append(targets, Target{Kind: kind, Position: xz, Distance: core.PlanarDistance(pos, xz)})
	}
	for i, p := range s.tracker.Ponds() {
		if s.tracker.Visited(i) {
			continue
		}
		targets = append(targets, Target{Kind: TargetPond, Position: p.Center, Distance: core.PlanarDistance(pos, p.Center)})
	}
	sort.SliceStable(targets, func(i, j int) bool {
		return targets[i].Distance < targets[j].Distance
	})
	return targets
}
