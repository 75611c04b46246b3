// Package progress tracks collectibles, pond discovery and the three
// objectives that together win a grove.
package progress

import (
	"errors"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tui-grove/internal/config"
)

// ErrAlreadyCollected is returned when Collect is called twice.
var ErrAlreadyCollected = errors.New("progress: already collected")

// Kind is the type of a collectible.
type Kind string

const (
	KindGem      Kind = "gem"
	KindCoin     Kind = "coin"
	KindTreasure Kind = "treasure"
)

// DefaultValue returns the score value used when a layout gives none.
func (k Kind) DefaultValue() int {
	switch k {
	case KindGem:
		return 10
	case KindCoin:
		return 5
	case KindTreasure:
		return 100
	default:
		return 0
	}
}

// Status is the lifecycle stage of a collectible.
type Status int

const (
	StatusActive     Status = iota // interactive, bobbing
	StatusCollecting               // collected, playing the removal animation
	StatusRemoved                  // gone from the scene
)

func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusCollecting:
		return "collecting"
	case StatusRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// Collectible is a pickup in the world. Position is where it is drawn;
// BaseHeight is the anchor it bobs around and is used for proximity.
type Collectible struct {
	ID         int
	Kind       Kind
	Position   mgl64.Vec3
	BaseHeight float64
	Value      int

	status Status
	age    float64 // seconds alive, drives the bob
	anim   float64 // seconds since collection
	scale  float64
}

// NewCollectible creates an active collectible resting at pos.
func NewCollectible(id int, kind Kind, pos mgl64.Vec3, value int) *Collectible {
	return &Collectible{
		ID:         id,
		Kind:       kind,
		Position:   pos,
		BaseHeight: pos[1],
		Value:      value,
		status:     StatusActive,
		age:        float64(id) * 0.7, // desynchronize neighbors
		scale:      1,
	}
}

// Status returns the lifecycle stage.
func (c *Collectible) Status() Status {
	return c.status
}

// Collected reports whether the collectible has been picked up.
func (c *Collectible) Collected() bool {
	return c.status != StatusActive
}

// Scale is the drawing scale, shrinking from 1 to 0 during removal.
func (c *Collectible) Scale() float64 {
	return c.scale
}

// Anchor is the rest position used for proximity tests.
func (c *Collectible) Anchor() mgl64.Vec3 {
	return mgl64.Vec3{c.Position[0], c.BaseHeight, c.Position[2]}
}

// Collect moves an active collectible into its removal animation. It is a
// one-way transition.
func (c *Collectible) Collect() error {
	if c.status != StatusActive {
		return ErrAlreadyCollected
	}
	c.status = StatusCollecting
	c.anim = 0
	return nil
}

// Animate advances the cosmetic animation and reports whether the
// collectible finished its removal during this call.
func (c *Collectible) Animate(dt float64, cfg config.PickupConfig) bool {
	switch c.status {
	case StatusActive:
		c.age += dt
		c.Position[1] = c.BaseHeight + cfg.BobAmplitude*math.Sin(c.age*cfg.BobSpeed)
	case StatusCollecting:
		c.anim += dt
		p := 1.0
		if cfg.RemovalDuration > 0 {
			p = math.Min(1, c.anim/cfg.RemovalDuration)
		}
		c.Position[1] = c.BaseHeight + cfg.RemovalRise*p
		c.scale = 1 - p
		if p >= 1 {
			c.status = StatusRemoved
			c.scale = 0
			return true
		}
	}
	return false
}
