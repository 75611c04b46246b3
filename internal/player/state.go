// Package player integrates player movement one frame at a time: gravity,
// friction, water resistance, collision and jumping.
package player

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tui-grove/internal/core"
)

// Mode is the derived movement mode of the player.
type Mode int

const (
	ModeGrounded Mode = iota
	ModeAirborne
	ModeSwimming
)

func (m Mode) String() string {
	switch m {
	case ModeGrounded:
		return "grounded"
	case ModeAirborne:
		return "airborne"
	case ModeSwimming:
		return "swimming"
	default:
		return "unknown"
	}
}

// State is the player's transform and movement flags. It is written only by
// the Integrator; everything else reads it.
type State struct {
	Position mgl64.Vec3 // eye position; feet are HalfHeight below
	Velocity mgl64.Vec3
	Yaw      float64 // radians, 0 faces -z

	Grounded  bool
	Swimming  bool
	InWater   bool
	JumpCount int  // jumps since the last ground touch
	CanJump   bool // false once JumpCount reaches the limit

	jumpHeld bool // jump was down last frame
}

// NewState places a player at rest at spawn.
func NewState(spawn mgl64.Vec3, yaw float64) State {
	return State{Position: spawn, Yaw: yaw, CanJump: true}
}

// Mode reports the current movement mode. Swimming wins over grounded.
func (s State) Mode() Mode {
	switch {
	case s.Swimming:
		return ModeSwimming
	case s.Grounded:
		return ModeGrounded
	default:
		return ModeAirborne
	}
}

// Planar returns the ground-plane position.
func (s State) Planar() mgl64.Vec2 {
	return core.Planar(s.Position)
}

// HorizontalSpeed returns the magnitude of the ground-plane velocity.
func (s State) HorizontalSpeed() float64 {
	return mgl64.Vec2{s.Velocity[0], s.Velocity[2]}.Len()
}
