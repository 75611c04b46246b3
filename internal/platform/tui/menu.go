package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-grove/internal/core"
	"github.com/vovakirdan/tui-grove/internal/levels"
	"github.com/vovakirdan/tui-grove/internal/storage"
)

// Difficulties cycled by the picker, in display order.
var Difficulties = []string{"easy", "normal", "hard"}

var difficultyNotes = map[string]string{
	"easy":   "triple jump, lighter water",
	"normal": "double jump",
	"hard":   "less air control, heavy deep water",
}

// MenuItem is one layout in the picker.
type MenuItem struct {
	LayoutID    string
	Title       string
	Description string
	Gems        int
	Ponds       int
	Treasure    int
	Best        string // empty when never played
}

// MenuModel is the Bubble Tea model for the layout picker.
type MenuModel struct {
	items      []MenuItem
	cursor     int
	difficulty int
	width      int
	height     int
	config     core.RuntimeConfig
	keyMapper  *KeyMapper

	quitting       bool
	selected       *MenuItem
	openScoreboard bool
}

// NewMenuModel builds the picker over layouts, starting at the named
// difficulty (normal when unknown).
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig, layouts []levels.Layout, difficulty string) MenuModel {
	items := make([]MenuItem, 0, len(layouts))
	for _, l := range layouts {
		gems, treasure, ponds := l.Counts()
		items = append(items, MenuItem{
			LayoutID:    l.ID,
			Title:       l.Title(),
			Description: l.Description,
			Gems:        gems,
			Ponds:       ponds,
			Treasure:    treasure,
			Best:        bestLine(store, l.ID),
		})
	}

	m := MenuModel{
		items:     items,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
	m.difficulty = 1
	for i, d := range Difficulties {
		if d == difficulty {
			m.difficulty = i
		}
	}
	return m
}

func bestLine(store *storage.Store, layoutID string) string {
	if store == nil {
		return ""
	}
	stats, err := store.GetGameStats(layoutID)
	if err != nil || stats.Runs == 0 {
		return ""
	}
	if stats.Wins == 0 {
		return fmt.Sprintf("Best %d, not finished yet", stats.HighScore)
	}
	return fmt.Sprintf("Best %d, fastest %s (%d of %d won)",
		stats.HighScore, formatElapsed(stats.BestTime), stats.Wins, stats.Runs)
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		m.cursor = (m.cursor - 1 + len(m.items)) % max(len(m.items), 1)

	case MenuActionDown:
		m.cursor = (m.cursor + 1) % max(len(m.items), 1)

	case MenuActionPrev:
		m.difficulty = (m.difficulty - 1 + len(Difficulties)) % len(Difficulties)

	case MenuActionNext:
		m.difficulty = (m.difficulty + 1) % len(Difficulties)

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}
	return m, nil
}

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	menuDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	menuActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuPanelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("22")).Padding(0, 2)
)

// View renders the picker: layouts on the left, the highlighted layout's
// objectives and best run on the right.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("  G R O V E  "), m.width))
	b.WriteString("\n\n")

	if len(m.items) == 0 {
		b.WriteString(centerText("No layouts found.", m.width))
		b.WriteString("\n")
	} else {
		body := lipgloss.JoinHorizontal(lipgloss.Top, m.listView(), "  ", m.detailView())
		for _, line := range strings.Split(body, "\n") {
			b.WriteString(centerText(line, m.width))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.difficultyView(), m.width))
	b.WriteString("\n\n")
	controls := "Up/Down: Layout  |  Left/Right: Difficulty  |  Enter: Play  |  Tab: Runs  |  Q: Quit"
	b.WriteString(centerText(menuDimStyle.Render(controls), m.width))
	b.WriteString("\n")
	return b.String()
}

func (m MenuModel) listView() string {
	lines := make([]string, 0, len(m.items))
	for i, item := range m.items {
		if i == m.cursor {
			lines = append(lines, menuActiveStyle.Render("> "+item.Title))
		} else {
			lines = append(lines, "  "+item.Title)
		}
	}
	return strings.Join(lines, "\n")
}

func (m MenuModel) detailView() string {
	item := m.items[m.cursor]
	lines := []string{menuActiveStyle.Render(item.Title)}
	if item.Description != "" {
		lines = append(lines, menuDimStyle.Render(item.Description))
	}
	lines = append(lines, "", fmt.Sprintf("Gems %d  Ponds %d  Treasure %d", item.Gems, item.Ponds, item.Treasure))
	if item.Best != "" {
		lines = append(lines, menuDimStyle.Render(item.Best))
	}
	return menuPanelStyle.Render(strings.Join(lines, "\n"))
}

func (m MenuModel) difficultyView() string {
	parts := make([]string, len(Difficulties))
	for i, d := range Difficulties {
		if i == m.difficulty {
			parts[i] = menuActiveStyle.Render("[" + d + "]")
		} else {
			parts[i] = menuDimStyle.Render(" " + d + " ")
		}
	}
	current := Difficulties[m.difficulty]
	return strings.Join(parts, " ") + menuDimStyle.Render("  "+difficultyNotes[current])
}

// Selected returns the chosen layout, or nil.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// Difficulty returns the highlighted difficulty preset.
func (m MenuModel) Difficulty() string {
	return Difficulties[m.difficulty]
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	LayoutID        string
	Difficulty      string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the picker until a layout is chosen or the user leaves.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig, layouts []levels.Layout, difficulty string) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(store, cfg, layouts, difficulty), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg, Difficulty: difficulty}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Difficulty: difficulty, Quit: true}, nil
	}

	result := MenuResult{
		Config:     m.Config(),
		Difficulty: m.Difficulty(),
	}
	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.IsQuitting() || m.Selected() == nil:
		result.Quit = true
	default:
		result.LayoutID = m.Selected().LayoutID
	}
	return result, nil
}
