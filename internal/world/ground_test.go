package world

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

var testWindow = LandingWindow{Below: 0.5, Above: 3.0}

func TestPlatformHeightScenario(t *testing.T) {
	r := NewRegistry()
	r.MustRegister(NewPlatform(KindGazebo, mgl64.Vec2{0, 0}, 5, 3))

	if got := r.PlatformHeight(mgl64.Vec2{1, 1}, 3.2, testWindow); got != 3 {
		t.Errorf("falling onto the platform: PlatformHeight = %v, expected 3", got)
	}
}

func TestPlatformHeightLandingWindow(t *testing.T) {
	r := NewRegistry()
	r.MustRegister(NewPlatform(KindGazebo, mgl64.Vec2{0, 0}, 5, 3))

	tests := []struct {
		name     string
		pos      mgl64.Vec2
		y        float64
		expected float64
	}{
		{"bottom edge of window", mgl64.Vec2{0, 0}, 2.5, 3},
		{"top edge of window", mgl64.Vec2{0, 0}, 6.0, 3},
		{"below the window", mgl64.Vec2{0, 0}, 2.4, 0},
		{"above the window", mgl64.Vec2{0, 0}, 6.1, 0},
		{"outside the footprint", mgl64.Vec2{5, 0}, 3.2, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.PlatformHeight(tc.pos, tc.y, testWindow); got != tc.expected {
				t.Errorf("PlatformHeight(%v, %v) = %v, expected %v", tc.pos, tc.y, got, tc.expected)
			}
		})
	}
}

func TestPlatformHeightIgnoresFootprints(t *testing.T) {
	r := NewRegistry()
	r.MustRegister(NewFootprint(KindTree, mgl64.Vec2{0, 0}, 5))

	if got := r.PlatformHeight(mgl64.Vec2{0, 0}, 1, testWindow); got != 0 {
		t.Errorf("footprints have no top, PlatformHeight = %v", got)
	}
}

func TestPlatformHeightPicksHighestCandidate(t *testing.T) {
	stack := []Obstacle{
		NewPlatform(KindPlatform, mgl64.Vec2{0, 0}, 6, 1.0),
		NewPlatform(KindPlatform, mgl64.Vec2{1, 0}, 4, 2.0),
		NewPlatform(KindPlatform, mgl64.Vec2{0, 1}, 3, 2.5),
		NewPlatform(KindPlatform, mgl64.Vec2{0, 0}, 2, 9.0), // window excludes it at y=3
		NewFootprint(KindTree, mgl64.Vec2{0.5, 0.5}, 1),
	}

	// Every insertion order must give the same answer
	for _, perm := range permutations(len(stack)) {
		r := NewRegistry()
		for _, i := range perm {
			r.MustRegister(stack[i])
		}
		got := r.PlatformHeight(mgl64.Vec2{0.2, 0.2}, 3, testWindow)
		if got != 2.5 {
			t.Fatalf("order %v: PlatformHeight = %v, expected 2.5", perm, got)
		}
		if got < 0 {
			t.Fatalf("order %v: PlatformHeight is negative", perm)
		}
	}
}

func TestBlockedIsOrderIndependent(t *testing.T) {
	obstacles := []Obstacle{
		NewFootprint(KindTree, mgl64.Vec2{2, 0}, 1),
		NewPlatform(KindBench, mgl64.Vec2{0, 0}, 2, 0.8),
		NewPlatform(KindGazebo, mgl64.Vec2{-1, 0}, 3, 2),
	}
	queries := []struct {
		pos mgl64.Vec2
		y   float64
	}{
		{mgl64.Vec2{0, 0}, 1.6},
		{mgl64.Vec2{0, 0}, 4},
		{mgl64.Vec2{1.5, 0}, 10},
		{mgl64.Vec2{-3, 0}, 2.4},
	}

	var want []bool
	for _, perm := range permutations(len(obstacles)) {
		r := NewRegistry()
		for _, i := range perm {
			r.MustRegister(obstacles[i])
		}
		var got []bool
		for _, q := range queries {
			got = append(got, r.Blocked(q.pos, q.y, testRules))
		}
		if want == nil {
			want = got
			continue
		}
		for i := range got {
			if got[i] != want[i] {
				t.Fatalf("order %v: query %d = %v, expected %v", perm, i, got[i], want[i])
			}
		}
	}
}

// permutations returns every ordering of [0, n).
func permutations(n int) [][]int {
	if n == 0 {
		return [][]int{{}}
	}
	var out [][]int
	for _, rest := range permutations(n - 1) {
		for i := 0; i <= len(rest); i++ {
			p := make([]int, 0, n)
			p = append(p, rest[:i]...)
			p = append(p, n-1)
			p = append(p, rest[i:]...)
			out = append(out, p)
		}
	}
	return out
}
