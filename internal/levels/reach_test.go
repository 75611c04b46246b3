package levels

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tui-grove/internal/config"
	"github.com/vovakirdan/tui-grove/internal/core"
	"github.com/vovakirdan/tui-grove/internal/player"
	"github.com/vovakirdan/tui-grove/internal/world"
)

// raisedGem is a gem resting above a platform top.
type raisedGem struct {
	platform world.Obstacle
	gem      mgl64.Vec3
}

// raisedGems lists the gems of l that sit over a platform and above its
// top. Platform tops are flat, so positions are taken over flat ground.
func raisedGems(l Layout) []raisedGem {
	var out []raisedGem
	for _, c := range l.Collectibles {
		if c.Kind != "gem" {
			continue
		}
		for _, o := range l.Obstacles {
			if o.Top == nil || c.Height <= *o.Top {
				continue
			}
			if core.PlanarDistance(mgl64.Vec2{c.X, c.Z}, mgl64.Vec2{o.X, o.Z}) < o.Radius {
				out = append(out, raisedGem{platform: o.obstacle(), gem: mgl64.Vec3{c.X, c.Height, c.Z}})
			}
		}
	}
	return out
}

// runUp heads straight at the platform from well outside it, jumps once it
// is within jumpAt of the center and jumps again at the top of the arc.
// It reports whether the player came within pickup reach of gem.
func runUp(cfg config.GroveConfig, r raisedGem, jumpAt float64, run bool) bool {
	w := world.NewFromConfig(world.FlatTerrain{}, cfg)
	w.Registry().MustRegister(r.platform)
	it := player.NewIntegrator(cfg, w)

	start := r.platform.Center.Add(mgl64.Vec2{0, r.platform.Radius + 30})
	s := player.NewState(mgl64.Vec3{start[0], cfg.Player.HalfHeight, start[1]}, 0)
	gem := mgl64.Vec2{r.gem[0], r.gem[2]}

	const dt = 1.0 / 60
	jumps := 0
	for i := 0; i < 8*60; i++ {
		in := player.Intent{Forward: true, Run: run}
		switch {
		case jumps == 0 && s.Grounded && core.PlanarDistance(s.Planar(), r.platform.Center) <= jumpAt:
			in.Jump = true
			jumps++
		case jumps == 1 && !s.Grounded && s.Velocity[1] <= 0:
			in.Jump = true
			jumps++
		}
		it.Step(&s, in, dt)

		if core.PlanarDistance(s.Planar(), gem) < cfg.Pickup.Horizontal &&
			math.Abs(s.Position[1]-r.gem[1]) <= cfg.Pickup.Vertical {
			return true
		}
	}
	return false
}

// reachable tries walking and running approaches from a range of take-off
// distances.
func reachable(cfg config.GroveConfig, r raisedGem) bool {
	for _, run := range []bool{false, true} {
		for d := r.platform.Radius + 1; d <= r.platform.Radius+16; d += 0.25 {
			if runUp(cfg, r, d, run) {
				return true
			}
		}
	}
	return false
}

func meadowRaisedGems(t *testing.T) []raisedGem {
	t.Helper()
	l, err := NewLoader("").LoadByID("meadow")
	if err != nil {
		t.Fatalf("LoadByID(meadow) error = %v", err)
	}
	raised := raisedGems(l)
	if len(raised) < 2 {
		t.Fatalf("found %d raised gems, want the gazebo roof and the stepping stone", len(raised))
	}
	return raised
}

func TestMeadowRaisedGemsReachable(t *testing.T) {
	raised := meadowRaisedGems(t)

	presets := []config.DifficultyPreset{
		config.DifficultyEasy,
		config.DifficultyNormal,
		config.DifficultyHard,
		config.DifficultyFixed,
	}
	for _, preset := range presets {
		t.Run(string(preset), func(t *testing.T) {
			cfg := config.DefaultGroveConfig()
			config.ApplyGrovePreset(&cfg, preset)
			for _, r := range raised {
				if !reachable(cfg, r) {
					t.Errorf("gem at %v on the %s (top %.1f) is out of reach", r.gem, r.platform.Kind, r.platform.TopHeight)
				}
			}
		})
	}
}

func TestSingleJumpCannotReachGazeboRoof(t *testing.T) {
	cfg := config.DefaultGroveConfig()
	cfg.Physics.MaxJumps = 1

	for _, r := range meadowRaisedGems(t) {
		if r.platform.Kind != world.KindGazebo {
			continue
		}
		if reachable(cfg, r) {
			t.Error("a single jump should not clear the gazebo roof")
		}
		return
	}
	t.Fatal("meadow has no gem on the gazebo")
}
