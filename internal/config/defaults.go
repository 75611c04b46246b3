package config

import (
	_ "embed"
)

//go:embed defaults/grove.yaml
var defaultGroveYAML []byte

// DefaultGroveConfig returns the built-in tuning. It mirrors
// defaults/grove.yaml and is used when the embedded YAML cannot be parsed.
func DefaultGroveConfig() GroveConfig {
	return GroveConfig{
		Physics: PhysicsConfig{
			Gravity:         30.0, // heavier than real gravity for snappy jumps
			JumpImpulse:     10.0,
			SwimJumpImpulse: 8.0,
			MaxJumps:        2,
			WalkSpeed:       8.0,
			RunSpeed:        14.0,
			GroundFriction:  10.0,
			AirFriction:     1.5,
			AirControl:      0.3,
			TurnSpeed:       3.0,
			MaxStep:         0.1,
		},
		Player: PlayerConfig{
			HalfHeight:      1.6,
			Radius:          0.5,
			GroundTolerance: 0.1,
			SafetyFloor:     -50.0,
		},
		Collision: CollisionConfig{
			Clearance:    1.5,
			LandingBelow: 0.5,
			LandingAbove: 3.0,
			Boundary:     95.0,
		},
		Water: WaterConfig{
			SwimDepth:    1.5,
			SurfaceReach: 1.5,
			Shallow:      WaterBand{MaxDepth: 0.5, Slow: 0.8, Sink: 0.5},
			Medium:       WaterBand{MaxDepth: 1.5, Slow: 0.6, Sink: 1.0},
			Deep:         DeepWater{Slow: 0.35, Sink: 1.5, RunSlow: 0.55, RunSink: 2.5},
		},
		Pickup: PickupConfig{
			Horizontal:      1.5,
			Vertical:        2.0,
			DiscoveryMargin: 2.0,
			RemovalDuration: 0.6,
			RemovalRise:     1.5,
			BobAmplitude:    0.25,
			BobSpeed:        2.0,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultGroveYAML
}
