package player

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tui-grove/internal/world"
)

func TestIntentBasis(t *testing.T) {
	tests := []struct {
		name string
		in   Intent
		want mgl64.Vec2
	}{
		{"forward at yaw 0", Intent{Forward: true}, mgl64.Vec2{0, -1}},
		{"back at yaw 0", Intent{Back: true}, mgl64.Vec2{0, 1}},
		{"right at yaw 0", Intent{Right: true}, mgl64.Vec2{1, 0}},
		{"forward facing east", Intent{Forward: true, Yaw: math.Pi / 2}, mgl64.Vec2{1, 0}},
		{"opposites cancel", Intent{Forward: true, Back: true}, mgl64.Vec2{}},
		{"nothing held", Intent{}, mgl64.Vec2{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.in.Wish()
			if !got.ApproxEqualThreshold(tc.want, 1e-9) {
				t.Errorf("Wish() = %v, expected %v", got, tc.want)
			}
		})
	}

	diag := Intent{Forward: true, Right: true}.Wish()
	if math.Abs(diag.Len()-1) > 1e-9 {
		t.Errorf("diagonal wish should be normalized, length %v", diag.Len())
	}
}

func TestYawTowardMatchesForward(t *testing.T) {
	from := mgl64.Vec2{3, 4}
	for _, to := range []mgl64.Vec2{{3, -10}, {20, 4}, {-5, 9}, {0, 0}} {
		yaw := YawToward(from, to)
		dir := to.Sub(from).Normalize()
		if !Forward(yaw).ApproxEqualThreshold(dir, 1e-9) {
			t.Errorf("Forward(YawToward(%v, %v)) = %v, expected %v", from, to, Forward(yaw), dir)
		}
	}
}

func TestAutopilotReachesTargetAroundTree(t *testing.T) {
	it, w, cfg := newFlat(t)
	w.Registry().MustRegister(world.NewFootprint(world.KindTree, mgl64.Vec2{0, -10}, 1))

	s := standing(cfg, 0, 0)
	target := mgl64.Vec2{0, -30}
	pilot := NewAutopilot()

	reached := false
	for i := 0; i < 60*30 && !reached; i++ {
		it.Step(&s, pilot.Steer(s, target), frame)
		reached = s.Planar().Sub(target).Len() < 1
	}

	if !reached {
		t.Errorf("autopilot did not reach %v, stopped at %v", target, s.Planar())
	}
}

func TestAutopilotStopsAtTarget(t *testing.T) {
	pilot := NewAutopilot()
	s := NewState(mgl64.Vec3{5, 1.6, 5}, 0)

	if in := pilot.Steer(s, mgl64.Vec2{5, 5}); in.Moving() {
		t.Errorf("intent at the target = %+v, expected no movement", in)
	}
	if in := pilot.Steer(s, mgl64.Vec2{5, -50}); !in.Forward || !in.Run {
		t.Errorf("intent far from the target = %+v, expected running forward", in)
	}
}
