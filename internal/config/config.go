// Package config provides YAML-based tuning for the grove simulation and
// named difficulty presets.
package config

// GroveConfig contains every tunable of the movement, collision, water and
// progression systems.
type GroveConfig struct {
	Physics   PhysicsConfig   `yaml:"physics"`
	Player    PlayerConfig    `yaml:"player"`
	Collision CollisionConfig `yaml:"collision"`
	Water     WaterConfig     `yaml:"water"`
	Pickup    PickupConfig    `yaml:"pickup"`
}

// PhysicsConfig defines movement integration parameters. Speeds are in world
// units per second, friction coefficients are per second.
type PhysicsConfig struct {
	Gravity         float64 `yaml:"gravity"`
	JumpImpulse     float64 `yaml:"jump_impulse"`
	SwimJumpImpulse float64 `yaml:"swim_jump_impulse"`
	MaxJumps        int     `yaml:"max_jumps"`
	WalkSpeed       float64 `yaml:"walk_speed"`
	RunSpeed        float64 `yaml:"run_speed"`
	GroundFriction  float64 `yaml:"ground_friction"`
	AirFriction     float64 `yaml:"air_friction"`
	AirControl      float64 `yaml:"air_control"` // < 1: airborne steering is weaker, not absent
	TurnSpeed       float64 `yaml:"turn_speed"`  // radians per second for keyboard turning
	MaxStep         float64 `yaml:"max_step"`    // largest dt integrated in one update
}

// PlayerConfig defines the player's body.
type PlayerConfig struct {
	HalfHeight      float64 `yaml:"half_height"` // eye height above the feet
	Radius          float64 `yaml:"radius"`
	GroundTolerance float64 `yaml:"ground_tolerance"`
	SafetyFloor     float64 `yaml:"safety_floor"` // below this the player respawns
}

// CollisionConfig holds the platform tuning constants. They are gameplay
// feel, not physical quantities, and may not suit obstacles of very
// different scale.
type CollisionConfig struct {
	Clearance    float64 `yaml:"clearance"`     // height above a platform top that clears its footprint
	LandingBelow float64 `yaml:"landing_below"` // landing window extends this far below the top
	LandingAbove float64 `yaml:"landing_above"` // and this far above it
	Boundary     float64 `yaml:"boundary"`      // |x| and |z| limit of the walkable world
}

// WaterConfig defines the depth-banded resistance policy.
type WaterConfig struct {
	SwimDepth    float64   `yaml:"swim_depth"`    // depth at which wading becomes swimming
	SurfaceReach float64   `yaml:"surface_reach"` // eyes within this of the surface may jump out
	Shallow      WaterBand `yaml:"shallow"`
	Medium       WaterBand `yaml:"medium"`
	Deep         DeepWater `yaml:"deep"`
}

// WaterBand is one depth band. Slow scales horizontal acceleration, Sink
// caps the descent speed while the body is under the surface.
type WaterBand struct {
	MaxDepth float64 `yaml:"max_depth"`
	Slow     float64 `yaml:"slow"`
	Sink     float64 `yaml:"sink"`
}

// DeepWater is the band past Medium.MaxDepth. Running trades a faster sink
// for less resistance.
type DeepWater struct {
	Slow    float64 `yaml:"slow"`
	Sink    float64 `yaml:"sink"`
	RunSlow float64 `yaml:"run_slow"`
	RunSink float64 `yaml:"run_sink"`
}

// PickupConfig defines collectible and pond discovery parameters.
type PickupConfig struct {
	Horizontal      float64 `yaml:"horizontal"`       // planar collection tolerance
	Vertical        float64 `yaml:"vertical"`         // vertical collection tolerance
	DiscoveryMargin float64 `yaml:"discovery_margin"` // added to a pond radius for discovery
	RemovalDuration float64 `yaml:"removal_duration"` // seconds of rise-and-shrink
	RemovalRise     float64 `yaml:"removal_rise"`
	BobAmplitude    float64 `yaml:"bob_amplitude"`
	BobSpeed        float64 `yaml:"bob_speed"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown strings return "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
