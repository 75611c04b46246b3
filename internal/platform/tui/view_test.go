package tui

import (
	"regexp"
	"testing"

	"github.com/vovakirdan/tui-grove/internal/core"
)

var escapes = regexp.MustCompile("\x1b\\[[0-9;]*m")

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 3)
	s.DrawText(0, 0, "GROVE")
	s.SetColored(2, 1, '♣', core.ColorGreen)
	s.SetColored(3, 1, '~', core.ColorCyan)
	s.SetColored(11, 2, '$', core.ColorOrange)
	s.SetColored(5, 2, '?', core.Color(200))

	got := escapes.ReplaceAllString(RenderScreen(s), "")
	if got != s.String() {
		t.Fatalf("rendered text mismatch\n got %q\nwant %q", got, s.String())
	}
}

func TestPaletteCoversStyles(t *testing.T) {
	for c := range palette {
		if _, ok := styles[c]; !ok {
			t.Errorf("color %d has no style", c)
		}
	}
	if _, ok := styles[core.ColorDefault]; !ok {
		t.Error("default style missing")
	}
}
