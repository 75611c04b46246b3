package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-grove/internal/core"
	"github.com/vovakirdan/tui-grove/internal/levels"
)

func builtinMenu(t *testing.T, difficulty string) MenuModel {
	t.Helper()
	layouts, err := levels.Builtin()
	if err != nil {
		t.Fatalf("Builtin: %v", err)
	}
	return NewMenuModel(nil, core.RuntimeConfig{ScreenW: 100, ScreenH: 30}, layouts, difficulty)
}

func press(m MenuModel, msgs ...tea.KeyMsg) MenuModel {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(MenuModel)
	}
	return m
}

func TestMenuStartsAtRequestedDifficulty(t *testing.T) {
	if got := builtinMenu(t, "hard").Difficulty(); got != "hard" {
		t.Errorf("Difficulty = %q, want hard", got)
	}
	if got := builtinMenu(t, "bogus").Difficulty(); got != "normal" {
		t.Errorf("unknown difficulty = %q, want normal", got)
	}
}

func TestMenuCyclesDifficulty(t *testing.T) {
	m := builtinMenu(t, "normal")
	m = press(m, tea.KeyMsg{Type: tea.KeyRight})
	if m.Difficulty() != "hard" {
		t.Fatalf("right from normal = %q", m.Difficulty())
	}
	m = press(m, tea.KeyMsg{Type: tea.KeyRight})
	if m.Difficulty() != "easy" {
		t.Fatalf("right from hard should wrap, got %q", m.Difficulty())
	}
	m = press(m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.Difficulty() != "hard" {
		t.Fatalf("left from easy should wrap, got %q", m.Difficulty())
	}
}

func TestMenuSelectsHighlightedLayout(t *testing.T) {
	m := builtinMenu(t, "")
	if len(m.items) < 2 {
		t.Fatalf("expected at least two built-in layouts, got %d", len(m.items))
	}
	m = press(m, tea.KeyMsg{Type: tea.KeyUp})
	last := m.items[len(m.items)-1].LayoutID
	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.Selected() == nil {
		t.Fatal("Enter should select a layout")
	}
	if m.Selected().LayoutID != last {
		t.Errorf("up from the top should wrap to %q, got %q", last, m.Selected().LayoutID)
	}
}

func TestMenuViewShowsObjectives(t *testing.T) {
	view := builtinMenu(t, "easy").View()
	for _, want := range []string{"G R O V E", "Gems", "Ponds", "[easy]", "triple jump"} {
		if !strings.Contains(view, want) {
			t.Errorf("menu view missing %q", want)
		}
	}
}
