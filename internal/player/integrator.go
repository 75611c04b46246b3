package player

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tui-grove/internal/config"
	"github.com/vovakirdan/tui-grove/internal/world"
)

// Environment is what the integrator asks of the world every frame.
// *world.World implements it.
type Environment interface {
	// Blocked reports whether a player at height y may not move to pos.
	Blocked(pos mgl64.Vec2, y float64) bool
	// GroundHeight returns the absolute height of the surface under pos for
	// a player currently at height y.
	GroundHeight(pos mgl64.Vec2, y float64) float64
	// WaterAt reports the pond under pos.
	WaterAt(pos mgl64.Vec2) (world.Water, bool)
}

// stickDistance is how far the ground may drop under a walking player
// before they leave it. It keeps slopes and pond banks walkable.
const stickDistance = 0.35

// Integrator advances a player State by one frame.
type Integrator struct {
	physics config.PhysicsConfig
	body    config.PlayerConfig
	water   config.WaterConfig
	env     Environment

	spawn    mgl64.Vec3
	spawnYaw float64
}

// NewIntegrator creates an integrator over env with the given tuning.
func NewIntegrator(cfg config.GroveConfig, env Environment) *Integrator {
	return &Integrator{
		physics: cfg.Physics,
		body:    cfg.Player,
		water:   cfg.Water,
		env:     env,
	}
}

// SetSpawn sets the safe position used for respawns.
func (it *Integrator) SetSpawn(pos mgl64.Vec3, yaw float64) {
	it.spawn = pos
	it.spawnYaw = yaw
}

// Spawn returns the respawn position.
func (it *Integrator) Spawn() mgl64.Vec3 {
	return it.spawn
}

// Respawn puts the player back at the spawn point at rest.
func (it *Integrator) Respawn(s *State) {
	held := s.jumpHeld
	*s = NewState(it.spawn, it.spawnYaw)
	s.jumpHeld = held
}

// Step integrates one frame of at most MaxStep seconds.
//
// Order matters: gravity, ground and water classification, friction,
// input acceleration, the horizontal move tested at the current height,
// the vertical move clamped to the ground, then jumping.
func (it *Integrator) Step(s *State, in Intent, dt float64) Report {
	if dt <= 0 {
		return Report{Mode: s.Mode()}
	}
	if it.physics.MaxStep > 0 && dt > it.physics.MaxStep {
		dt = it.physics.MaxStep
	}

	var rep Report
	half := it.body.HalfHeight
	wasGrounded, wasSwimming, wasInWater := s.Grounded, s.Swimming, s.InWater
	s.Yaw = in.Yaw

	s.Velocity[1] -= it.physics.Gravity * dt

	pos := s.Planar()
	ground := it.env.GroundHeight(pos, s.Position[1])
	water, inWater := it.env.WaterAt(pos)
	s.Swimming = it.swimming(s, water, inWater)
	s.Grounded = !s.Swimming && s.Position[1] <= ground+half+it.body.GroundTolerance
	supported := s.Grounded

	k := it.physics.GroundFriction
	if s.Mode() == ModeAirborne {
		k = it.physics.AirFriction
	}
	damp := math.Max(0, 1-k*dt)
	s.Velocity[0] *= damp
	s.Velocity[2] *= damp

	res := dry
	if inWater {
		res = resistanceFor(it.water, water.Depth, in.Run)
	}
	it.accelerate(s, in, res, dt)

	proposed := pos.Add(mgl64.Vec2{s.Velocity[0], s.Velocity[2]}.Mul(dt))
	if proposed != pos {
		if it.env.Blocked(proposed, s.Position[1]) {
			s.Velocity[0], s.Velocity[2] = 0, 0
			rep.Events |= EventBlocked
		} else {
			s.Position[0], s.Position[2] = proposed[0], proposed[1]
			pos = proposed
		}
	}

	water, inWater = it.env.WaterAt(pos)
	res = dry
	if inWater {
		res = resistanceFor(it.water, water.Depth, in.Run)
		submerged := s.Position[1]-half < water.Surface
		if submerged && res.Sink > 0 && s.Velocity[1] < -res.Sink {
			s.Velocity[1] = -res.Sink
		}
	}

	s.Position[1] += s.Velocity[1] * dt
	ground = it.env.GroundHeight(pos, s.Position[1])
	floor := ground + half
	stick := supported && !s.Swimming && s.Velocity[1] <= 0 && s.Position[1]-floor < stickDistance
	if s.Position[1] < floor || stick {
		s.Position[1] = floor
		if s.Velocity[1] < 0 {
			s.Velocity[1] = 0
		}
		s.JumpCount = 0
		s.CanJump = true
	}

	s.InWater = inWater
	s.Swimming = it.swimming(s, water, inWater)
	s.Grounded = !s.Swimming && s.Position[1] <= floor+it.body.GroundTolerance

	pressed := in.Jump && !s.jumpHeld
	s.jumpHeld = in.Jump
	if pressed && it.jump(s, water, inWater) {
		rep.Events |= EventJumped
	} else if in.Jump && s.Swimming && s.Position[1] < water.Surface {
		// holding jump under water treads upward
		s.Velocity[1] = math.Max(s.Velocity[1], res.Sink)
	}

	if s.Position[1] < it.body.SafetyFloor {
		it.Respawn(s)
		rep.Events |= EventRespawned
		inWater = false
	}

	if s.Grounded && !wasGrounded {
		rep.Events |= EventLanded
	}
	if s.InWater && !wasInWater {
		rep.Events |= EventEnteredWater
	}
	if !s.InWater && wasInWater {
		rep.Events |= EventLeftWater
	}
	if s.Swimming && !wasSwimming {
		rep.Events |= EventStartedSwimming
	}
	if !s.Swimming && wasSwimming {
		rep.Events |= EventStoppedSwimming
	}

	rep.Mode = s.Mode()
	rep.Ground = ground
	if inWater {
		rep.Band = res.Band
		rep.Depth = water.Depth
	}
	return rep
}

// accelerate adds input acceleration to the horizontal velocity. Input can
// only push the speed up to the current limit; momentum above it (a running
// jump) is kept but not increased.
func (it *Integrator) accelerate(s *State, in Intent, res Resistance, dt float64) {
	wish := in.Wish()
	if wish == (mgl64.Vec2{}) {
		return
	}
	speed := it.physics.WalkSpeed
	if in.Run {
		speed = it.physics.RunSpeed
	}
	control := 1.0
	if s.Mode() == ModeAirborne {
		control = it.physics.AirControl
	}

	before := mgl64.Vec2{s.Velocity[0], s.Velocity[2]}
	after := before.Add(wish.Mul(speed * it.physics.GroundFriction * control * res.Slow * dt))
	limit := speed * res.Slow
	if l := after.Len(); l > limit && l > before.Len() {
		after = after.Mul(math.Max(limit, before.Len()) / l)
	}
	s.Velocity[0], s.Velocity[2] = after[0], after[1]
}

// swimming classifies the player as swimming: water at least SwimDepth deep
// with the feet below the surface. A player who just jumped out stays out
// until they start falling.
func (it *Integrator) swimming(s *State, water world.Water, inWater bool) bool {
	if !inWater || water.Depth < it.water.SwimDepth {
		return false
	}
	if s.Position[1]-it.body.HalfHeight >= water.Surface {
		return false
	}
	return s.Swimming || s.Velocity[1] <= 0
}

// jump applies a jump request and reports whether it was honored.
func (it *Integrator) jump(s *State, water world.Water, inWater bool) bool {
	if s.Swimming {
		if !inWater || s.Position[1] < water.Surface-it.water.SurfaceReach {
			return false
		}
		s.Velocity[1] = it.physics.SwimJumpImpulse
		s.Swimming = false
		s.Grounded = false
		s.JumpCount = 1
		s.CanJump = it.physics.MaxJumps > 1
		return true
	}

	if !s.CanJump {
		return false
	}
	if !s.Grounded && (s.JumpCount == 0 || s.JumpCount >= it.physics.MaxJumps) {
		return false
	}
	s.Velocity[1] = it.physics.JumpImpulse
	s.JumpCount++
	s.Grounded = false
	s.CanJump = s.JumpCount < it.physics.MaxJumps
	return true
}
