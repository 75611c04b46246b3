// Package world holds the static collision world: registered obstacles,
// the terrain collaborator, ponds, and the queries the movement integrator
// asks every frame.
package world

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrInvalidObstacle is returned when an obstacle violates its invariants.
// It always indicates a world-build defect.
var ErrInvalidObstacle = errors.New("world: invalid obstacle")

// Shape distinguishes obstacles that can be stood on from those that can't.
type Shape int

const (
	// ShapeFootprint blocks at every height.
	ShapeFootprint Shape = iota
	// ShapePlatform has a walkable top and can be jumped over or landed on.
	ShapePlatform
)

func (s Shape) String() string {
	switch s {
	case ShapeFootprint:
		return "footprint"
	case ShapePlatform:
		return "platform"
	default:
		return "unknown"
	}
}

// Kind tags what an obstacle is, for rendering and logging only.
type Kind string

const (
	KindTree      Kind = "tree"
	KindRock      Kind = "rock"
	KindBench     Kind = "bench"
	KindGazebo    Kind = "gazebo"
	KindStructure Kind = "structure"
	KindPlatform  Kind = "platform"
)

// Obstacle is an immutable circular footprint on the ground plane,
// optionally with a walkable top.
type Obstacle struct {
	Shape     Shape
	Kind      Kind
	Center    mgl64.Vec2 // (x, z)
	Radius    float64
	TopHeight float64 // only meaningful for ShapePlatform
}

// NewFootprint creates an obstacle that blocks at any height.
func NewFootprint(kind Kind, center mgl64.Vec2, radius float64) Obstacle {
	return Obstacle{Shape: ShapeFootprint, Kind: kind, Center: center, Radius: radius}
}

// NewPlatform creates an obstacle with a walkable top at topHeight.
func NewPlatform(kind Kind, center mgl64.Vec2, radius, topHeight float64) Obstacle {
	return Obstacle{Shape: ShapePlatform, Kind: kind, Center: center, Radius: radius, TopHeight: topHeight}
}

// Validate checks the obstacle invariants: a positive finite radius and, for
// platforms, a non-negative top.
func (o Obstacle) Validate() error {
	if !(o.Radius > 0) || math.IsInf(o.Radius, 0) {
		return fmt.Errorf("%w: %s at %v has radius %v", ErrInvalidObstacle, o.Kind, o.Center, o.Radius)
	}
	switch o.Shape {
	case ShapeFootprint:
	case ShapePlatform:
		if !(o.TopHeight >= 0) || math.IsInf(o.TopHeight, 0) {
			return fmt.Errorf("%w: %s at %v has top height %v", ErrInvalidObstacle, o.Kind, o.Center, o.TopHeight)
		}
	default:
		return fmt.Errorf("%w: unknown shape %d", ErrInvalidObstacle, o.Shape)
	}
	return nil
}

// Walkable reports whether the obstacle has a top the player can stand on.
// A platform with a zero top is just a footprint.
func (o Obstacle) Walkable() bool {
	return o.Shape == ShapePlatform && o.TopHeight > 0
}
