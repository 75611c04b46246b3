package world

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

var testRules = CollisionRules{PlayerRadius: 0.5, Clearance: 1.5, Boundary: 95}

func TestFootprintBlocksAtEveryHeight(t *testing.T) {
	r := NewRegistry()
	r.MustRegister(NewFootprint(KindTree, mgl64.Vec2{10, 0}, 2))

	for _, y := range []float64{-5, 0, 1, 3.5, 10, 1000} {
		// inside the radius sum (2.5) in several directions
		for _, pos := range []mgl64.Vec2{{10, 0}, {12.4, 0}, {10, -2.4}, {8.3, 1.2}} {
			if !r.Blocked(pos, y, testRules) {
				t.Errorf("footprint should block at %v, y=%v", pos, y)
			}
		}
	}

	if r.Blocked(mgl64.Vec2{12.6, 0}, 1, testRules) {
		t.Error("a position outside the radius sum should not be blocked")
	}
}

func TestBlockedScenarioPlayerInsideTree(t *testing.T) {
	r := NewRegistry()
	r.MustRegister(NewFootprint(KindTree, mgl64.Vec2{10, 0}, 2))

	if !r.Blocked(mgl64.Vec2{10.5, 0}, 1, testRules) {
		t.Error("moving onto a tree footprint should be blocked")
	}
}

func TestPlatformClearance(t *testing.T) {
	r := NewRegistry()
	r.MustRegister(NewPlatform(KindGazebo, mgl64.Vec2{0, 0}, 5, 3))

	tests := []struct {
		name    string
		pos     mgl64.Vec2
		y       float64
		blocked bool
	}{
		{"well above the top", mgl64.Vec2{0, 0}, 5, false},
		{"just above clearance", mgl64.Vec2{4, 0}, 4.51, false},
		{"exactly at clearance", mgl64.Vec2{4, 0}, 4.5, true},
		{"below the top", mgl64.Vec2{4, 0}, 1.6, true},
		{"standing on the top", mgl64.Vec2{0, 0}, 4.6, false},
		{"outside the footprint", mgl64.Vec2{6, 0}, 1.6, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Blocked(tc.pos, tc.y, testRules); got != tc.blocked {
				t.Errorf("Blocked(%v, %v) = %v, expected %v", tc.pos, tc.y, got, tc.blocked)
			}
		})
	}
}

func TestPlatformNeverBlocksAboveClearance(t *testing.T) {
	r := NewRegistry()
	tops := []float64{0.6, 1, 3, 7.5}
	for i, top := range tops {
		r.MustRegister(NewPlatform(KindPlatform, mgl64.Vec2{float64(i) * 30, 0}, 4, top))
	}

	for i, top := range tops {
		center := mgl64.Vec2{float64(i) * 30, 0}
		for _, dy := range []float64{0.01, 0.5, 20} {
			if r.Blocked(center, top+testRules.Clearance+dy, testRules) {
				t.Errorf("platform with top %v should not block at y=%v", top, top+testRules.Clearance+dy)
			}
		}
	}
}

func TestZeroTopPlatformAlwaysBlocks(t *testing.T) {
	r := NewRegistry()
	r.MustRegister(NewPlatform(KindPlatform, mgl64.Vec2{0, 0}, 2, 0))

	for _, y := range []float64{0, 1.6, 50} {
		if !r.Blocked(mgl64.Vec2{0.5, 0}, y, testRules) {
			t.Errorf("zero-top platform should block at y=%v", y)
		}
	}
}

func TestBlockedAtWorldBoundary(t *testing.T) {
	r := NewRegistry()

	tests := []struct {
		pos     mgl64.Vec2
		blocked bool
	}{
		{mgl64.Vec2{94.9, 0}, false},
		{mgl64.Vec2{95, -95}, false},
		{mgl64.Vec2{95.1, 0}, true},
		{mgl64.Vec2{0, -95.1}, true},
		{mgl64.Vec2{-1000, 1000}, true},
	}

	for _, tc := range tests {
		if got := r.Blocked(tc.pos, 1.6, testRules); got != tc.blocked {
			t.Errorf("Blocked(%v) = %v, expected %v", tc.pos, got, tc.blocked)
		}
	}
}
