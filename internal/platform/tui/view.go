// Package tui provides the Bubble Tea integration for grove: the terminal
// loop, key latching, the layout picker, the run scoreboard and SSH serving.
package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-grove/internal/core"
)

// TickMsg drives one fixed simulation step.
type TickMsg time.Time

func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	return tea.Tick(time.Second/time.Duration(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// palette holds the ANSI 256 code for each screen color.
var palette = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorDarkGreen:     "22",
	core.ColorBrown:         "94",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

var styles = buildStyles()

func buildStyles() map[core.Color]lipgloss.Style {
	m := make(map[core.Color]lipgloss.Style, len(palette)+1)
	m[core.ColorDefault] = lipgloss.NewStyle()
	for c, code := range palette {
		m[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(code))
	}
	return m
}

// RenderScreen converts a Screen buffer to a styled string. Cells are
// emitted in runs of one color; blank cells join whatever run they sit in
// since their color is invisible.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		color := core.ColorDefault
		open := false
		flush := func() {
			if run.Len() == 0 {
				return
			}
			style, ok := styles[color]
			if !ok {
				style = styles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
			run.Reset()
		}
		for x := range s.Width() {
			cell := s.GetCell(x, y)
			if cell.Rune != ' ' && (!open || cell.Color != color) {
				flush()
				color = cell.Color
				open = true
			}
			run.WriteRune(cell.Rune)
		}
		flush()
	}
	return sb.String()
}
