package levels

import (
	"fmt"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tui-grove/internal/config"
	"github.com/vovakirdan/tui-grove/internal/core"
	"github.com/vovakirdan/tui-grove/internal/progress"
	"github.com/vovakirdan/tui-grove/internal/world"
)

// Clearing margins around hand-placed features on rolling terrain.
const (
	pondClearing     = 2.0
	platformClearing = 1.0
	spawnClearing    = 5.0
)

// Scene is a built grove: the populated world, the collectibles and where
// the player starts.
type Scene struct {
	Layout       Layout
	World        *world.World
	Collectibles []*progress.Collectible
	Spawn        mgl64.Vec3 // eye position
	SpawnYaw     float64
}

// Build populates a new world from the layout. seed drives terrain noise
// when the layout leaves it unset, and the scatter. Any invalid obstacle
// fails the build.
func (l Layout) Build(cfg config.GroveConfig, seed int64) (*Scene, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return l.populate(world.NewFromConfig(l.terrain(seed), cfg), cfg, seed)
}

// Rebuild empties w and populates it again. w keeps its terrain and
// collision rules, so it must come from an earlier Build of the same
// layout, tuning and seed.
func (l Layout) Rebuild(w *world.World, cfg config.GroveConfig, seed int64) (*Scene, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	w.Clear()
	return l.populate(w, cfg, seed)
}

func (l Layout) populate(w *world.World, cfg config.GroveConfig, seed int64) (*Scene, error) {
	for i, spec := range l.Obstacles {
		if err := w.Registry().Register(spec.obstacle()); err != nil {
			return nil, fmt.Errorf("levels: %s: obstacle %d: %w", l.ID, i, err)
		}
	}
	for i, p := range l.Ponds {
		if err := w.AddPond(world.Pond{Center: mgl64.Vec2{p.X, p.Z}, Radius: p.Radius, MaxDepth: p.Depth}); err != nil {
			return nil, fmt.Errorf("levels: %s: pond %d: %w", l.ID, i, err)
		}
	}
	if err := l.scatter(w, seed); err != nil {
		return nil, err
	}

	terrain := w.Terrain()
	items := make([]*progress.Collectible, 0, len(l.Collectibles))
	for i, c := range l.Collectibles {
		kind := progress.Kind(c.Kind)
		value := c.Value
		if value == 0 {
			value = kind.DefaultValue()
		}
		y := terrain.BaseHeight(c.X, c.Z) + c.Height
		items = append(items, progress.NewCollectible(i, kind, mgl64.Vec3{c.X, y, c.Z}, value))
	}

	spawnXZ := mgl64.Vec2{l.Spawn.X, l.Spawn.Z}
	ground := w.GroundHeight(spawnXZ, terrain.BaseHeight(l.Spawn.X, l.Spawn.Z))
	return &Scene{
		Layout:       l,
		World:        w,
		Collectibles: items,
		Spawn:        mgl64.Vec3{l.Spawn.X, ground + cfg.Player.HalfHeight, l.Spawn.Z},
		SpawnYaw:     l.Spawn.Yaw,
	}, nil
}

// terrain builds the terrain collaborator. Rolling terrain is flattened
// under ponds, platforms and the spawn so water and tops stay level.
func (l Layout) terrain(seed int64) world.Terrain {
	if l.Terrain.Kind != "rolling" || l.Terrain.Amplitude <= 0 {
		return world.FlatTerrain{}
	}
	t := world.RollingTerrain{
		Amplitude: l.Terrain.Amplitude,
		Scale:     l.Terrain.Scale,
		Seed:      l.Terrain.Seed,
	}
	if t.Seed == 0 {
		t.Seed = seed
	}
	t.Clearings = append(t.Clearings, world.Clearing{Center: mgl64.Vec2{l.Spawn.X, l.Spawn.Z}, Radius: spawnClearing})
	for _, p := range l.Ponds {
		t.Clearings = append(t.Clearings, world.Clearing{Center: mgl64.Vec2{p.X, p.Z}, Radius: p.Radius + pondClearing})
	}
	for _, o := range l.Obstacles {
		if o.Top != nil {
			t.Clearings = append(t.Clearings, world.Clearing{Center: mgl64.Vec2{o.X, o.Z}, Radius: o.Radius + platformClearing})
		}
	}
	return t
}

func (o ObstacleSpec) obstacle() world.Obstacle {
	kind := world.Kind(o.Kind)
	center := mgl64.Vec2{o.X, o.Z}
	if o.Top != nil {
		return world.NewPlatform(kind, center, o.Radius, *o.Top)
	}
	return world.NewFootprint(kind, center, o.Radius)
}

// scatter places seeded trees and rocks clear of everything placed by hand
// and of each other. The same seed always gives the same grove.
func (l Layout) scatter(w *world.World, seed int64) error {
	s := l.Scatter
	total := s.Trees + s.Rocks
	if total == 0 {
		return nil
	}
	rng := rand.New(rand.NewSource(seed))
	spawn := mgl64.Vec2{l.Spawn.X, l.Spawn.Z}

	free := func(pos mgl64.Vec2, r float64) bool {
		if core.PlanarDistance(pos, spawn) < spawnClearing+r+s.Clearance {
			return false
		}
		for _, p := range w.Ponds() {
			if core.PlanarDistance(pos, p.Center) < p.Radius+r+s.Clearance {
				return false
			}
		}
		for _, o := range w.Registry().All() {
			if core.PlanarDistance(pos, o.Center) < o.Radius+r+s.Clearance {
				return false
			}
		}
		for _, c := range l.Collectibles {
			if core.PlanarDistance(pos, mgl64.Vec2{c.X, c.Z}) < r+s.Clearance {
				return false
			}
		}
		return true
	}

	placed := 0
	for attempt := 0; attempt < total*30 && placed < total; attempt++ {
		r := s.MinRadius + rng.Float64()*(s.MaxRadius-s.MinRadius)
		pos := mgl64.Vec2{
			(rng.Float64()*2 - 1) * s.Extent,
			(rng.Float64()*2 - 1) * s.Extent,
		}
		if !free(pos, r) {
			continue
		}
		kind := world.KindTree
		if placed >= s.Trees {
			kind = world.KindRock
		}
		if err := w.Registry().Register(world.NewFootprint(kind, pos, r)); err != nil {
			return fmt.Errorf("levels: %s: scatter: %w", l.ID, err)
		}
		placed++
	}
	return nil
}

// Counts summarizes a layout for listings.
func (l Layout) Counts() (gems, treasure, ponds int) {
	for _, c := range l.Collectibles {
		switch c.Kind {
		case "gem":
			gems++
		case "treasure":
			treasure++
		}
	}
	return gems, treasure, len(l.Ponds)
}
