package session

import (
	"github.com/vovakirdan/tui-grove/internal/player"
)

// targetBudget is how many updates the pilot spends on one target before
// moving it to the back of the queue.
const targetBudget = 60 * 40

// Pilot plays a session by itself, visiting outstanding targets nearest
// first. It backs the headless sim command and the spectator demo.
type Pilot struct {
	steer   *player.Autopilot
	current Target
	active  bool
	spent   int
	skipped map[Target]bool
}

// NewPilot creates a pilot.
func NewPilot() *Pilot {
	return &Pilot{steer: player.NewAutopilot(), skipped: make(map[Target]bool)}
}

// Current returns the target being approached, if any.
func (p *Pilot) Current() (Target, bool) {
	return p.current, p.active
}

// Intent chooses this frame's intent for s.
func (p *Pilot) Intent(s *Session) player.Intent {
	targets := s.Targets()
	if len(targets) == 0 {
		p.active = false
		return player.Intent{Yaw: s.Player().Yaw}
	}

	if !p.active || !contains(targets, p.current) || p.spent > targetBudget {
		if p.active && p.spent > targetBudget {
			p.skipped[key(p.current)] = true
		}
		p.current = p.pick(targets)
		p.active = true
		p.spent = 0
	}
	p.spent++
	return p.steer.Steer(s.Player(), p.current.Position)
}

// pick returns the nearest target not skipped, forgetting skips once
// every target has been skipped.
func (p *Pilot) pick(targets []Target) Target {
	for _, t := range targets {
		if !p.skipped[key(t)] {
			return t
		}
	}
	clear(p.skipped)
	return targets[0]
}

// key drops the distance so a target is identified by what and where.
func key(t Target) Target {
	t.Distance = 0
	return t
}

func contains(targets []Target, t Target) bool {
	for _, c := range targets {
		if key(c) == key(t) {
			return true
		}
	}
	return false
}
