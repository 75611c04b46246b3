// Package levels loads grove layouts and builds worlds from them.
// A layout is plain data; Build turns it into a populated world, the
// collectibles and a spawn point, exactly once per session.
package levels

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrNotFound is returned when no layout has the requested ID.
var ErrNotFound = errors.New("levels: layout not found")

// Layout is a complete grove definition.
type Layout struct {
	ID           string            `yaml:"id"`
	Name         string            `yaml:"name"`
	Description  string            `yaml:"description,omitempty"`
	Spawn        SpawnSpec         `yaml:"spawn"`
	Terrain      TerrainSpec       `yaml:"terrain"`
	Obstacles    []ObstacleSpec    `yaml:"obstacles"`
	Ponds        []PondSpec        `yaml:"ponds"`
	Collectibles []CollectibleSpec `yaml:"collectibles"`
	Scatter      ScatterSpec       `yaml:"scatter,omitempty"`
	FilePath     string            `yaml:"-"`
}

// SpawnSpec is where the player starts, facing Yaw radians.
type SpawnSpec struct {
	X   float64 `yaml:"x"`
	Z   float64 `yaml:"z"`
	Yaw float64 `yaml:"yaw"`
}

// TerrainSpec selects the ground shape. Kind is "flat" or "rolling".
// A zero Seed takes the runtime seed.
type TerrainSpec struct {
	Kind      string  `yaml:"kind"`
	Amplitude float64 `yaml:"amplitude"`
	Scale     float64 `yaml:"scale"`
	Seed      int64   `yaml:"seed"`
}

// ObstacleSpec is one obstacle. Setting Top makes it a platform that can be
// stood on; without it the footprint blocks at every height.
type ObstacleSpec struct {
	Kind   string   `yaml:"kind"`
	X      float64  `yaml:"x"`
	Z      float64  `yaml:"z"`
	Radius float64  `yaml:"radius"`
	Top    *float64 `yaml:"top,omitempty"`
}

// PondSpec is one pond.
type PondSpec struct {
	X      float64 `yaml:"x"`
	Z      float64 `yaml:"z"`
	Radius float64 `yaml:"radius"`
	Depth  float64 `yaml:"depth"`
}

// CollectibleSpec is one pickup. Height is measured from the bare terrain;
// Value defaults by kind.
type CollectibleSpec struct {
	Kind   string  `yaml:"kind"`
	X      float64 `yaml:"x"`
	Z      float64 `yaml:"z"`
	Height float64 `yaml:"height"`
	Value  int     `yaml:"value,omitempty"`
}

// ScatterSpec asks for seeded filler obstacles across the grove.
type ScatterSpec struct {
	Trees     int     `yaml:"trees"`
	Rocks     int     `yaml:"rocks"`
	MinRadius float64 `yaml:"min_radius"`
	MaxRadius float64 `yaml:"max_radius"`
	Extent    float64 `yaml:"extent"`    // scatter within [-Extent, Extent] on both axes
	Clearance float64 `yaml:"clearance"` // minimum gap to anything placed by hand
}

// ParseYAML parses a layout file.
func ParseYAML(data []byte) (Layout, error) {
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if err := l.Validate(); err != nil {
		return Layout{}, err
	}
	return l, nil
}

// Validate checks the parts of a layout that Build does not.
// Obstacle geometry is checked when it is registered.
func (l Layout) Validate() error {
	if l.ID == "" {
		return fmt.Errorf("levels: layout has no id")
	}
	switch l.Terrain.Kind {
	case "", "flat", "rolling":
	default:
		return fmt.Errorf("levels: %s: unknown terrain kind %q", l.ID, l.Terrain.Kind)
	}
	for i, p := range l.Ponds {
		if p.Radius <= 0 || p.Depth < 0 {
			return fmt.Errorf("levels: %s: pond %d has radius %v and depth %v", l.ID, i, p.Radius, p.Depth)
		}
	}
	for i, c := range l.Collectibles {
		switch c.Kind {
		case "gem", "coin", "treasure":
		default:
			return fmt.Errorf("levels: %s: collectible %d has unknown kind %q", l.ID, i, c.Kind)
		}
	}
	if s := l.Scatter; s.Trees+s.Rocks > 0 && (s.MinRadius <= 0 || s.MaxRadius < s.MinRadius || s.Extent <= 0) {
		return fmt.Errorf("levels: %s: scatter needs 0 < min_radius <= max_radius and a positive extent", l.ID)
	}
	return nil
}

// Title returns the display name, falling back to the ID.
func (l Layout) Title() string {
	if l.Name != "" {
		return l.Name
	}
	return l.ID
}
