package world

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tui-grove/internal/core"
)

// Terrain is the bare-ground collaborator: the height of the land at a
// ground-plane position, before ponds and platforms.
type Terrain interface {
	BaseHeight(x, z float64) float64
}

// FlatTerrain is level ground at a fixed height.
type FlatTerrain struct {
	Height float64
}

// BaseHeight implements Terrain.
func (t FlatTerrain) BaseHeight(x, z float64) float64 {
	return t.Height
}

// Clearing is a circle where rolling terrain is flattened to zero, so ponds,
// platforms and the spawn point sit on level ground.
type Clearing struct {
	Center mgl64.Vec2
	Radius float64
}

// clearingBlend is the width of the ring over which terrain eases back in.
const clearingBlend = 4.0

// RollingTerrain is gentle, deterministic value-noise ground. Heights stay
// within [0, Amplitude].
type RollingTerrain struct {
	Amplitude float64
	Scale     float64 // world units per noise cell
	Seed      int64
	Clearings []Clearing
}

// noise octave weights, summing to 1
var octaves = []struct{ freq, weight float64 }{
	{1.0, 0.5333},
	{2.0, 0.2667},
	{4.0, 0.1333},
	{8.0, 0.0667},
}

// BaseHeight implements Terrain.
func (t RollingTerrain) BaseHeight(x, z float64) float64 {
	if t.Amplitude <= 0 {
		return 0
	}
	scale := t.Scale
	if scale <= 0 {
		scale = 16
	}

	n := 0.0
	for _, o := range octaves {
		n += smoothNoise(x/scale*o.freq, z/scale*o.freq, t.Seed) * o.weight
	}
	h := core.ClampF(n, 0, 1) * t.Amplitude

	pos := mgl64.Vec2{x, z}
	for _, c := range t.Clearings {
		d := core.PlanarDistance(pos, c.Center) - c.Radius
		if d <= 0 {
			return 0
		}
		if d < clearingBlend {
			h *= smoothstep(d / clearingBlend)
		}
	}
	return h
}

// hashNoise returns a pseudo-random value in [0, 1) for a lattice point.
func hashNoise(x, z float64, seed int64) float64 {
	h := math.Sin(x*12.9898+z*78.233+float64(seed%10007)*0.618) * 43758.5453
	return h - math.Floor(h)
}

func smoothstep(t float64) float64 {
	return t * t * (3 - 2*t)
}

// smoothNoise bilinearly interpolates lattice noise with smoothstep easing.
func smoothNoise(x, z float64, seed int64) float64 {
	x0, z0 := math.Floor(x), math.Floor(z)
	sx, sz := smoothstep(x-x0), smoothstep(z-z0)

	n00 := hashNoise(x0, z0, seed)
	n10 := hashNoise(x0+1, z0, seed)
	n01 := hashNoise(x0, z0+1, seed)
	n11 := hashNoise(x0+1, z0+1, seed)

	return core.Lerp(core.Lerp(n00, n10, sx), core.Lerp(n01, n11, sx), sz)
}
