package world

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tui-grove/internal/core"
)

// CollisionRules parameterizes the blocking test.
type CollisionRules struct {
	PlayerRadius float64
	Clearance    float64 // height above a platform top at which its footprint no longer blocks
	Boundary     float64 // |x| or |z| beyond this is outside the world
}

// Blocked reports whether a player at height playerY may not occupy pos.
//
// Circle-vs-circle against every obstacle footprint. A walkable platform
// stops blocking once the player is more than Clearance above its top, which
// is what lets the player jump over it or come down onto it. Footprints
// block at every height.
func (r *Registry) Blocked(pos mgl64.Vec2, playerY float64, rules CollisionRules) bool {
	for _, o := range r.obstacles {
		if core.PlanarDistance(pos, o.Center) >= rules.PlayerRadius+o.Radius {
			continue
		}
		switch o.Shape {
		case ShapePlatform:
			if o.Walkable() && playerY > o.TopHeight+rules.Clearance {
				continue
			}
			return true
		default:
			return true
		}
	}
	return OutOfBounds(pos, rules.Boundary)
}

// OutOfBounds reports whether pos lies beyond the square world boundary.
func OutOfBounds(pos mgl64.Vec2, boundary float64) bool {
	return math.Abs(pos[0]) > boundary || math.Abs(pos[1]) > boundary
}
