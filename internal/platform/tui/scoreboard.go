package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-grove/internal/levels"
	"github.com/vovakirdan/tui-grove/internal/storage"
)

const (
	minWidthForSidebar = 100
	sidebarWidth       = 20
	maxRuns            = 100
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Next    key.Binding
	Prev    key.Binding
	WonOnly key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Next, k.Prev, k.WonOnly, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Next, k.Prev},
		{k.WonOnly, k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up/k", "scroll up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down/j", "scroll down")),
		Next:    key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/l", "next layout")),
		Prev:    key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab/h", "prev layout")),
		WonOnly: key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "won only")),
		Back:    key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

var (
	boardTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boardActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardFrameStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	boardEmptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(2, 4)
)

// formatElapsed renders a run time as m:ss.t.
func formatElapsed(d time.Duration) string {
	tenths := d.Milliseconds() / 100
	return fmt.Sprintf("%d:%02d.%d", tenths/600, tenths/10%60, tenths%10)
}

// ScoreboardModel shows the best runs of one layout at a time.
type ScoreboardModel struct {
	layouts []levels.Layout
	current int
	wonOnly bool
	store   *storage.Store
	runs    []storage.RunEntry
	stats   storage.GameStats

	table table.Model
	help  help.Model
	keys  ScoreboardKeyMap

	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard over layouts, starting at the first.
func NewScoreboardModel(store *storage.Store, layouts []levels.Layout, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		layouts: layouts,
		store:   store,
		help:    help.New(),
		keys:    DefaultScoreboardKeyMap(),
		width:   width,
		height:  height,
	}
	m.table = m.newTable()
	m.reload()
	return m
}

func (m *ScoreboardModel) newTable() table.Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: 5},
			{Title: "Score", Width: 6},
			{Title: "Gems", Width: 6},
			{Title: "Ponds", Width: 6},
			{Title: "Chest", Width: 5},
			{Title: "Time", Width: 8},
			{Title: "Date", Width: 12},
		}),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240")).BorderBottom(true).Bold(true)
	s.Selected = s.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("22")).Bold(false)
	t.SetStyles(s)
	return t
}

// reload fetches runs and stats for the current layout.
func (m *ScoreboardModel) reload() {
	m.runs = nil
	m.stats = storage.GameStats{}
	if m.store != nil && len(m.layouts) > 0 {
		id := m.layouts[m.current].ID
		if runs, err := m.store.BestRuns(id, maxRuns); err == nil {
			m.runs = runs
		}
		if stats, err := m.store.GetGameStats(id); err == nil {
			m.stats = *stats
		}
	}
	m.table.SetRows(m.rows())
	m.table.GotoTop()
}

func (m *ScoreboardModel) rows() []table.Row {
	rows := make([]table.Row, 0, len(m.runs))
	for _, r := range m.runs {
		if m.wonOnly && !r.Won {
			continue
		}
		chest, elapsed := "-", "-"
		if r.Treasure {
			chest = "yes"
		}
		if r.Won {
			elapsed = formatElapsed(r.Elapsed)
		}
		rows = append(rows, table.Row{
			fmt.Sprintf("#%d", len(rows)+1),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d/%d", r.Gems, r.TotalGems),
			fmt.Sprintf("%d/%d", r.Ponds, r.TotalPonds),
			chest,
			elapsed,
			r.CreatedAt.Format("Jan 02 15:04"),
		})
	}
	return rows
}

func (m *ScoreboardModel) step(delta int) {
	if len(m.layouts) == 0 {
		return
	}
	m.current = (m.current + delta + len(m.layouts)) % len(m.layouts)
	m.reload()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.step(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.step(-1)
			return m, nil
		case key.Matches(msg, m.keys.WonOnly):
			m.wonOnly = !m.wonOnly
			m.table.SetRows(m.rows())
			m.table.GotoTop()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.table.SetRows(m.rows())
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	title := "BEST RUNS"
	if len(m.layouts) > 0 {
		title += " - " + m.layouts[m.current].Title()
	}
	if m.wonOnly {
		title += " (won)"
	}

	var b strings.Builder
	b.WriteString(centerText(boardTitleStyle.Render(title), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(boardDimStyle.Render(m.statsLine()), m.width))
	b.WriteString("\n\n")

	board := boardFrameStyle.Render(m.tableView())
	if m.width >= minWidthForSidebar {
		board = lipgloss.JoinHorizontal(lipgloss.Top, m.sidebar(), "  ", board)
	} else if len(m.layouts) > 1 {
		b.WriteString(centerText(fmt.Sprintf("< %s >", m.layouts[m.current].Title()), m.width))
		b.WriteString("\n")
	}
	for _, line := range strings.Split(board, "\n") {
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(boardDimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m ScoreboardModel) statsLine() string {
	s := m.stats
	if s.Runs == 0 {
		return "No runs yet"
	}
	line := fmt.Sprintf("Runs %d  Wins %d  Best %d  Avg %.0f", s.Runs, s.Wins, s.HighScore, s.AvgScore)
	if s.Wins > 0 {
		line += "  Fastest " + formatElapsed(s.BestTime)
	}
	return line
}

func (m ScoreboardModel) sidebar() string {
	lines := []string{"Layouts", strings.Repeat("-", sidebarWidth-4)}
	for i, l := range m.layouts {
		name := l.Title()
		if n := sidebarWidth - 6; len(name) > n {
			name = name[:n-1] + "."
		}
		if i == m.current {
			lines = append(lines, boardActiveStyle.Render("> "+name))
		} else {
			lines = append(lines, "  "+name)
		}
	}
	return boardFrameStyle.Width(sidebarWidth).Render(strings.Join(lines, "\n"))
}

func (m ScoreboardModel) tableView() string {
	if len(m.table.Rows()) == 0 {
		msg := "No runs recorded yet.\nFinish a grove to set a time!"
		if m.wonOnly && len(m.runs) > 0 {
			msg = "No finished runs yet."
		}
		return boardEmptyStyle.Render(msg)
	}
	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen. It reports whether the user
// went back to the menu rather than quitting.
func RunScoreboard(store *storage.Store, layouts []levels.Layout, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, layouts, width, height), tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
