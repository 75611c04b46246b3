package core

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestPlanarDropsHeight(t *testing.T) {
	p := Planar(mgl64.Vec3{3, 99, -4})
	if p != (mgl64.Vec2{3, -4}) {
		t.Errorf("Planar() = %v, expected [3 -4]", p)
	}
}

func TestPlanarDistance(t *testing.T) {
	tests := []struct {
		a, b     mgl64.Vec2
		expected float64
	}{
		{mgl64.Vec2{0, 0}, mgl64.Vec2{3, 4}, 5},
		{mgl64.Vec2{10, 0}, mgl64.Vec2{10, 0}, 0},
		{mgl64.Vec2{-1, -1}, mgl64.Vec2{1, 1}, math.Sqrt(8)},
	}

	for _, tc := range tests {
		got := PlanarDistance(tc.a, tc.b)
		if math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("PlanarDistance(%v, %v) = %f, expected %f", tc.a, tc.b, got, tc.expected)
		}
		if back := PlanarDistance(tc.b, tc.a); back != got {
			t.Errorf("PlanarDistance is not symmetric: %f vs %f", got, back)
		}
	}
}

func TestLerp(t *testing.T) {
	if Lerp(0, 10, 0.25) != 2.5 {
		t.Errorf("Lerp(0, 10, 0.25) = %f", Lerp(0, 10, 0.25))
	}
	if Lerp(4, 2, 1) != 2 {
		t.Errorf("Lerp(4, 2, 1) = %f", Lerp(4, 2, 1))
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}

	if ClampF(-0.5, 0, 1) != 0 || ClampF(1.5, 0, 1) != 1 || ClampF(0.25, 0, 1) != 0.25 {
		t.Error("ClampF should restrict to [0, 1]")
	}
}

func TestMinMaxAbs(t *testing.T) {
	if Min(5, 10) != 5 || Max(5, 10) != 10 {
		t.Error("Min/Max returned the wrong operand")
	}
	if Abs(-5) != 5 || Abs(0) != 0 {
		t.Error("Abs returned the wrong value")
	}
}
