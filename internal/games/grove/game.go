// Package grove adapts a grove session to the platform's Game interface:
// it maps actions to movement intent, steps the session at the tick rate
// and draws a top-down map with a HUD.
package grove

import (
	"io"
	"sync/atomic"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-grove/internal/config"
	"github.com/vovakirdan/tui-grove/internal/core"
	"github.com/vovakirdan/tui-grove/internal/levels"
	"github.com/vovakirdan/tui-grove/internal/player"
	"github.com/vovakirdan/tui-grove/internal/progress"
	"github.com/vovakirdan/tui-grove/internal/registry"
	"github.com/vovakirdan/tui-grove/internal/session"
)

// ID is the registry ID of the grove game.
const ID = "grove"

// Package-level settings, set by the CLI before games are created.
var (
	configPath       string
	difficultyPreset string
	layoutID         string
	layoutDir        string
	autopilot        bool
	logger           = log.New(io.Discard)
	spectator        atomic.Pointer[spectatorHook]
)

// Spectator receives every frame of every running session and hears when a
// session ends.
type Spectator interface {
	Observe(s *session.Session, f session.Frame)
	Forget(s *session.Session)
}

type spectatorHook struct {
	s Spectator
}

// SetConfigPath sets a custom tuning file.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset (easy, normal, hard, fixed).
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// SetLayout selects the layout by ID. Empty means the default layout.
func SetLayout(id string) {
	layoutID = id
}

// SetLayoutDir adds a directory of layout files to the built-ins.
func SetLayoutDir(dir string) {
	layoutDir = dir
}

// SetAutopilot makes new games play themselves.
func SetAutopilot(on bool) {
	autopilot = on
}

// SetLogger sets the logger handed to every session.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// SetSpectator registers the spectator fed by every game. nil removes it.
// Safe to call while games are stepping.
func SetSpectator(sp Spectator) {
	if sp == nil {
		spectator.Store(nil)
		return
	}
	spectator.Store(&spectatorHook{s: sp})
}

func currentSpectator() Spectator {
	if h := spectator.Load(); h != nil {
		return h.s
	}
	return nil
}

// Game is the grove game.
type Game struct {
	cfg     core.RuntimeConfig
	tuning  config.GroveConfig
	layout  string
	preset  string
	session *session.Session
	pilot   *session.Pilot
	err     error

	yaw       float64
	paused    bool
	pauseHeld bool
	last      session.Frame
	ticker    []tickerLine

	screenW int
	screenH int
}

// tickerLine is a recent event shown under the map.
type tickerLine struct {
	text  string
	ticks int // remaining display time
}

// New creates a grove game. Reset must be called before Step.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Grove"
}

// UseLayout selects the layout for this game only, overriding SetLayout.
// It takes effect on the next Reset.
func (g *Game) UseLayout(id string) {
	g.layout = id
}

// UseDifficulty selects the difficulty preset for this game only,
// overriding SetDifficultyPreset.
func (g *Game) UseDifficulty(preset string) {
	g.preset = preset
}

func (g *Game) selectedPreset() string {
	if g.preset != "" {
		return g.preset
	}
	return difficultyPreset
}

func (g *Game) selectedLayout() string {
	if g.layout != "" {
		return g.layout
	}
	return layoutID
}

// Reset loads the tuning and layout and builds a fresh session.
// A failure is kept and shown on screen instead of panicking.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = cfg
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.paused = false
	g.ticker = nil
	g.err = nil
	g.Close()

	tuning, err := config.LoadGrove(configPath)
	if err != nil {
		logger.Warn("using default tuning", "err", err)
		tuning = config.DefaultGroveConfig()
	}
	config.ApplyGrovePreset(&tuning, config.ParsePreset(g.selectedPreset()))
	g.tuning = tuning

	layout, err := levels.NewLoader(layoutDir).LoadByID(g.selectedLayout())
	if err != nil {
		g.err = err
		logger.Error("layout unavailable", "layout", g.selectedLayout(), "err", err)
		return
	}

	s, err := session.New(tuning, layout, session.WithSeed(cfg.Seed), session.WithLogger(logger))
	if err != nil {
		g.err = err
		logger.Error("grove build failed", "layout", layout.ID, "err", err)
		return
	}
	g.session = s
	g.yaw = s.Player().Yaw
	g.last = session.Frame{Player: s.Player(), Progress: s.Progress()}
	if autopilot {
		g.pilot = session.NewPilot()
	} else {
		g.pilot = nil
	}
}

// Step advances the grove by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session == nil {
		return core.StepResult{State: g.State()}
	}

	pause := in.Has(core.ActionPause)
	if pause && !g.pauseHeld {
		g.paused = !g.paused
	}
	g.pauseHeld = pause
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) && g.session.Won() {
		g.Reset(g.cfg)
		return core.StepResult{State: g.State()}
	}

	dt := g.cfg.TickDuration().Seconds()
	intent := g.intent(in, dt)
	frame := g.session.Update(dt, intent)
	g.last = frame
	g.record(frame)

	if sp := currentSpectator(); sp != nil {
		sp.Observe(g.session, frame)
	}
	return core.StepResult{State: g.State()}
}

// Close ends the running session and tells the spectator it is gone.
// Calling it again is a no-op.
func (g *Game) Close() {
	if g.session == nil {
		return
	}
	if sp := currentSpectator(); sp != nil {
		sp.Forget(g.session)
	}
	g.session = nil
}

// intent maps held actions to movement. Turning keys integrate the camera
// heading at the configured turn speed.
func (g *Game) intent(in core.InputFrame, dt float64) player.Intent {
	if g.pilot != nil {
		intent := g.pilot.Intent(g.session)
		g.yaw = intent.Yaw
		return intent
	}

	if in.Has(core.ActionTurnLeft) {
		g.yaw -= g.tuning.Physics.TurnSpeed * dt
	}
	if in.Has(core.ActionTurnRight) {
		g.yaw += g.tuning.Physics.TurnSpeed * dt
	}
	return player.Intent{
		Forward: in.Has(core.ActionForward),
		Back:    in.Has(core.ActionBackward),
		Left:    in.Has(core.ActionStrafeLeft),
		Right:   in.Has(core.ActionStrafeRight),
		Jump:    in.Has(core.ActionJump),
		Run:     in.Has(core.ActionRun),
		Yaw:     g.yaw,
	}
}

// tickerSeconds is how long an event stays on screen.
const tickerSeconds = 3

// record pushes notable events onto the ticker.
func (g *Game) record(f session.Frame) {
	rate := g.cfg.TickRate
	if rate <= 0 {
		rate = 60
	}
	kept := g.ticker[:0]
	for _, l := range g.ticker {
		if l.ticks--; l.ticks > 0 {
			kept = append(kept, l)
		}
	}
	g.ticker = kept

	push := func(text string) {
		g.ticker = append(g.ticker, tickerLine{text: text, ticks: tickerSeconds * rate})
		if len(g.ticker) > 3 {
			g.ticker = g.ticker[len(g.ticker)-3:]
		}
	}
	if f.Report.Events.Has(player.EventRespawned) {
		push("you fell out of the world")
	}
	for _, e := range f.Events {
		switch e.(type) {
		case progress.CollectibleCollected, progress.PondDiscovered, progress.ObjectiveCompleted, progress.GameWon:
			push(e.String())
		}
	}
}

// State returns the platform view of the game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{Paused: g.paused}
	}
	st := g.session.Progress()
	return core.GameState{
		Score:    st.Score,
		GameOver: st.Won(),
		Won:      st.Won(),
		Paused:   g.paused,
	}
}

// Summary reports the run for persistence.
func (g *Game) Summary() core.RunSummary {
	if g.session == nil {
		return core.RunSummary{LayoutID: g.selectedLayout()}
	}
	return g.session.Summary()
}

// Session exposes the running session, nil if the build failed.
func (g *Game) Session() *session.Session {
	return g.session
}

// Err returns the build error, if any.
func (g *Game) Err() error {
	return g.err
}
