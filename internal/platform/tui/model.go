package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-grove/internal/core"
	"github.com/vovakirdan/tui-grove/internal/registry"
	"github.com/vovakirdan/tui-grove/internal/storage"
)

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	held       *core.InputLatch
	taps       *core.InputLatch
	gameState  core.GameState
	quitting   bool
	backToMenu bool
	quitOnBack bool // Standalone programs exit; an SSH session returns to its menu
	runSaved   bool // Whether the current run has been saved
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		held:       core.NewInputLatch(holdTicks),
		taps:       core.NewInputLatch(tapTicks),
		quitOnBack: true,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()

	case tea.BlurMsg:
		// no key releases arrive while unfocused
		m.held.Reset()
		m.taps.Reset()
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToLatches(msg, m.held, m.taps) {
		m.saveRun()
		m.closeGame()
		m.quitting = true
		return m, tea.Quit
	}

	// Back to menu only from the pause or win screen
	if m.keyMapper.MapKeyToMenuAction(msg) == MenuActionBack && (m.gameState.GameOver || m.gameState.Paused) {
		m.saveRun()
		m.closeGame()
		m.backToMenu = true
		if m.quitOnBack {
			return m, tea.Quit
		}
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	frame := m.held.Frame()
	for a := range m.taps.Frame().Actions {
		frame.Set(a)
	}

	result := m.game.Step(frame)
	wasOver := m.gameState.GameOver
	m.gameState = result.State

	// The game restarted itself
	if wasOver && !m.gameState.GameOver {
		m.runSaved = false
		m.held.Reset()
	}
	if m.gameState.GameOver {
		m.saveRun()
	}

	return m, tickCmd(m.config.TickRate)
}

// saveRun stores the current run once. Unfinished runs are only kept when
// something was scored.
func (m *Model) saveRun() {
	if m.runSaved || m.store == nil {
		return
	}
	m.runSaved = true

	summary := core.RunSummary{LayoutID: m.game.ID(), Score: m.gameState.Score, Won: m.gameState.Won}
	if s, ok := m.game.(registry.RunSummarizer); ok {
		summary = s.Summary()
	}
	if !summary.Won && summary.Score == 0 {
		return
	}

	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveRun(summary)
}

// closeGame ends the game's run for games that hold resources past it.
func (m *Model) closeGame() {
	if c, ok := m.game.(registry.Closer); ok {
		c.Close()
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".grove", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given model. It reports
// whether the player asked to go back to the menu.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) (backToMenu bool, err error) {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
		tea.WithReportFocus(),
	)

	final, err := p.Run()
	if c, ok := game.(registry.Closer); ok {
		c.Close()
	}
	if err != nil {
		return false, err
	}
	if fm, ok := final.(Model); ok {
		return fm.BackToMenu(), nil
	}
	return false, nil
}
