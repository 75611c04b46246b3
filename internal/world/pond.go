package world

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tui-grove/internal/core"
)

// Pond is a circular body of water. Its bottom slopes linearly from
// MaxDepth at the center to zero at the rim.
type Pond struct {
	Center   mgl64.Vec2
	Radius   float64
	MaxDepth float64
}

// Contains reports whether pos is strictly inside the pond.
func (p Pond) Contains(pos mgl64.Vec2) bool {
	return core.PlanarDistance(pos, p.Center) < p.Radius
}

// DepthAt returns the water depth at pos, 0 outside the pond.
func (p Pond) DepthAt(pos mgl64.Vec2) float64 {
	if p.Radius <= 0 {
		return 0
	}
	d := core.PlanarDistance(pos, p.Center)
	if d >= p.Radius {
		return 0
	}
	return p.MaxDepth * (1 - d/p.Radius)
}

// NearestPond returns the index of the pond whose center is closest to pos
// and the planar distance to it. ok is false when there are no ponds.
func NearestPond(ponds []Pond, pos mgl64.Vec2) (index int, distance float64, ok bool) {
	index = -1
	distance = math.Inf(1)
	for i, p := range ponds {
		d := core.PlanarDistance(pos, p.Center)
		if d < distance {
			index, distance = i, d
		}
	}
	return index, distance, index >= 0
}
