package player

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Intent is what the player asked for this frame.
type Intent struct {
	Forward bool
	Back    bool
	Left    bool
	Right   bool
	Jump    bool
	Run     bool
	Yaw     float64 // camera heading in radians
}

// Forward returns the unit ground-plane direction for a heading.
// Yaw 0 faces -z (north); positive yaw turns toward +x (east).
func Forward(yaw float64) mgl64.Vec2 {
	return mgl64.Rotate2D(yaw).Mul2x1(mgl64.Vec2{0, -1})
}

// Right returns the unit ground-plane direction to the right of a heading.
func Right(yaw float64) mgl64.Vec2 {
	return mgl64.Rotate2D(yaw).Mul2x1(mgl64.Vec2{1, 0})
}

// YawToward returns the heading that faces from one ground-plane point to
// another.
func YawToward(from, to mgl64.Vec2) float64 {
	d := to.Sub(from)
	return math.Atan2(d[0], -d[1])
}

// Wish returns the normalized camera-relative movement direction, or the
// zero vector when no direction is held or opposite keys cancel.
func (in Intent) Wish() mgl64.Vec2 {
	var fwd, side float64
	if in.Forward {
		fwd++
	}
	if in.Back {
		fwd--
	}
	if in.Right {
		side++
	}
	if in.Left {
		side--
	}
	if fwd == 0 && side == 0 {
		return mgl64.Vec2{}
	}
	wish := Forward(in.Yaw).Mul(fwd).Add(Right(in.Yaw).Mul(side))
	return wish.Normalize()
}

// Moving reports whether any direction is held.
func (in Intent) Moving() bool {
	return in.Wish() != (mgl64.Vec2{})
}
