package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-grove/internal/core"
	"github.com/vovakirdan/tui-grove/internal/levels"
)

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "0:00.0"},
		{1500 * time.Millisecond, "0:01.5"},
		{83*time.Second + 250*time.Millisecond, "1:23.2"},
		{10 * time.Minute, "10:00.0"},
	}
	for _, tt := range tests {
		if got := formatElapsed(tt.in); got != tt.want {
			t.Errorf("formatElapsed(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScoreboardFiltersWonRuns(t *testing.T) {
	store := openStore(t)
	layouts, err := levels.Builtin()
	if err != nil {
		t.Fatalf("Builtin: %v", err)
	}
	id := layouts[0].ID
	runs := []core.RunSummary{
		{LayoutID: id, Score: 300, Won: true, Elapsed: 90 * time.Second},
		{LayoutID: id, Score: 500, Won: false},
		{LayoutID: id, Score: 200, Won: true, Elapsed: 60 * time.Second},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun: %v", err)
		}
	}

	m := NewScoreboardModel(store, layouts, 80, 30)
	if got := len(m.table.Rows()); got != 3 {
		t.Fatalf("rows = %d, want 3", got)
	}
	if !strings.Contains(m.View(), "Runs 3  Wins 2") {
		t.Errorf("stats line missing from view:\n%s", m.View())
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'w'}})
	m = next.(ScoreboardModel)
	if got := len(m.table.Rows()); got != 2 {
		t.Fatalf("won-only rows = %d, want 2", got)
	}
	if m.table.Rows()[0][0] != "#1" {
		t.Errorf("filtered ranks should restart at #1, got %q", m.table.Rows()[0][0])
	}
}

func TestScoreboardCyclesLayouts(t *testing.T) {
	layouts, err := levels.Builtin()
	if err != nil {
		t.Fatalf("Builtin: %v", err)
	}
	m := NewScoreboardModel(nil, layouts, 120, 30)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	if m.current != len(layouts)-1 {
		t.Errorf("shift+tab from first should wrap to last, got %d", m.current)
	}
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.current != 0 {
		t.Errorf("tab from last should wrap to first, got %d", m.current)
	}
	if !strings.Contains(m.View(), "No runs recorded yet.") {
		t.Error("empty board should say so")
	}
}
