package world

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tui-grove/internal/config"
)

// Water describes the pond under a ground-plane position.
type Water struct {
	Pond    int     // index into World.Ponds
	Surface float64 // absolute height of the water surface
	Depth   float64 // surface minus pond bottom at this position
}

// World answers the per-frame questions of the movement integrator by
// combining the obstacle registry, the terrain collaborator and the ponds.
//
// Heights passed to the registry are measured from the local base terrain,
// so platform tops and clearance behave the same on a hillside as on flat
// ground. With flat terrain at 0 they equal raw world heights.
type World struct {
	registry *Registry
	terrain  Terrain
	ponds    []Pond
	rules    CollisionRules
	window   LandingWindow
}

// New creates an empty world over the given terrain.
func New(terrain Terrain, rules CollisionRules, window LandingWindow) *World {
	if terrain == nil {
		terrain = FlatTerrain{}
	}
	return &World{
		registry: NewRegistry(),
		terrain:  terrain,
		rules:    rules,
		window:   window,
	}
}

// NewFromConfig creates an empty world using the collision tuning in cfg.
func NewFromConfig(terrain Terrain, cfg config.GroveConfig) *World {
	rules := CollisionRules{
		PlayerRadius: cfg.Player.Radius,
		Clearance:    cfg.Collision.Clearance,
		Boundary:     cfg.Collision.Boundary,
	}
	window := LandingWindow{Below: cfg.Collision.LandingBelow, Above: cfg.Collision.LandingAbove}
	return New(terrain, rules, window)
}

// Registry returns the obstacle registry for world building.
func (w *World) Registry() *Registry {
	return w.registry
}

// Terrain returns the terrain collaborator.
func (w *World) Terrain() Terrain {
	return w.terrain
}

// Rules returns the collision rules in effect.
func (w *World) Rules() CollisionRules {
	return w.rules
}

// AddPond registers a pond zone.
func (w *World) AddPond(p Pond) error {
	if !(p.Radius > 0) || p.MaxDepth < 0 {
		return fmt.Errorf("world: invalid pond at %v: radius %v, depth %v", p.Center, p.Radius, p.MaxDepth)
	}
	w.ponds = append(w.ponds, p)
	return nil
}

// Ponds returns a copy of the pond zones.
func (w *World) Ponds() []Pond {
	out := make([]Pond, len(w.ponds))
	copy(out, w.ponds)
	return out
}

// Clear empties the registry and the ponds ahead of a rebuild.
func (w *World) Clear() {
	w.registry.Clear()
	w.ponds = w.ponds[:0]
}

// Blocked reports whether a player at absolute height y may not move to pos.
func (w *World) Blocked(pos mgl64.Vec2, y float64) bool {
	base := w.terrain.BaseHeight(pos[0], pos[1])
	return w.registry.Blocked(pos, y-base, w.rules)
}

// GroundHeight returns the absolute height of the surface a player at
// height y should rest on at pos: the pond bottom or bare terrain, raised
// to the highest platform being landed on.
func (w *World) GroundHeight(pos mgl64.Vec2, y float64) float64 {
	base := w.terrain.BaseHeight(pos[0], pos[1])
	ground := base
	if water, ok := w.WaterAt(pos); ok {
		ground = water.Surface - water.Depth
	}
	if top := w.registry.PlatformHeight(pos, y-base, w.window); top > 0 {
		ground = max(ground, base+top)
	}
	return ground
}

// WaterAt reports the water under pos, using the pond whose center is
// nearest. ok is false on dry land.
func (w *World) WaterAt(pos mgl64.Vec2) (Water, bool) {
	i, _, ok := NearestPond(w.ponds, pos)
	if !ok || !w.ponds[i].Contains(pos) {
		return Water{}, false
	}
	depth := w.ponds[i].DepthAt(pos)
	if depth <= 0 {
		return Water{}, false
	}
	return Water{
		Pond:    i,
		Surface: w.terrain.BaseHeight(pos[0], pos[1]),
		Depth:   depth,
	}, true
}
