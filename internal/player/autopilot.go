package player

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Autopilot steers a player toward a ground-plane target. It drives the
// headless simulation host and the spectator demo.
//
// When the distance to the target stops shrinking it pulses jump, and if
// that does not help it walks sideways for a while before trying again,
// alternating sides on each detour.
type Autopilot struct {
	RunDistance float64 // run while farther than this
	Patience    int     // frames without progress before jumping

	target  mgl64.Vec2
	best    float64
	stalled int
	detour  int // frames of sideways walking left
	side    float64
	pressed bool // jump was requested last frame
}

// NewAutopilot creates an autopilot with sensible defaults.
func NewAutopilot() *Autopilot {
	return &Autopilot{RunDistance: 12, Patience: 10, best: math.Inf(1), side: 1}
}

// Steer returns the intent for this frame.
func (a *Autopilot) Steer(s State, target mgl64.Vec2) Intent {
	if target != a.target {
		a.target = target
		a.best = math.Inf(1)
		a.stalled = 0
		a.detour = 0
	}

	pos := s.Planar()
	dist := pos.Sub(target).Len()
	toward := YawToward(pos, target)
	if dist < 0.1 {
		a.pressed = false
		return Intent{Yaw: toward}
	}

	if a.detour > 0 {
		a.pressed = false
		a.detour--
		if a.detour == 0 {
			a.best = math.Inf(1)
			a.stalled = 0
		}
		return Intent{Forward: true, Yaw: toward + a.side*math.Pi/2}
	}

	if dist < a.best-0.05 {
		a.best = dist
		a.stalled = 0
	} else {
		a.stalled++
	}

	in := Intent{
		Forward: true,
		Run:     dist > a.RunDistance,
		Yaw:     toward,
	}
	if a.stalled > a.Patience {
		// jump from the ground, and again at the apex for the most height
		want := s.Grounded || s.Swimming || (s.JumpCount > 0 && s.CanJump && s.Velocity[1] <= 0)
		in.Jump = want && !a.pressed
	}
	a.pressed = in.Jump
	if a.stalled > a.Patience*8 {
		a.detour = a.Patience * 3
		a.side = -a.side
	}
	return in
}

// Reset forgets the current target.
func (a *Autopilot) Reset() {
	a.target = mgl64.Vec2{}
	a.best = math.Inf(1)
	a.stalled = 0
	a.detour = 0
}
