package progress

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tui-grove/internal/config"
	"github.com/vovakirdan/tui-grove/internal/core"
	"github.com/vovakirdan/tui-grove/internal/world"
)

// Tracker owns the collectibles and the GameState of one session. It is the
// only writer of both.
type Tracker struct {
	cfg   config.PickupConfig
	ponds []world.Pond
	items []*Collectible
	state GameState
}

// NewTracker creates a tracker over the given ponds and collectibles.
// Totals are counted from the collectibles.
func NewTracker(cfg config.PickupConfig, ponds []world.Pond, items []*Collectible) *Tracker {
	gems, treasure := 0, 0
	for _, c := range items {
		switch c.Kind {
		case KindGem:
			gems++
		case KindTreasure:
			treasure++
		}
	}
	t := &Tracker{
		cfg:   cfg,
		ponds: ponds,
		items: items,
		state: newGameState(gems, treasure, len(ponds)),
	}
	return t
}

// Update runs one frame of progress for a player at pos and returns what
// happened, in order. After the win only the cosmetic animations advance.
func (t *Tracker) Update(pos mgl64.Vec3, dt float64) []Event {
	var events []Event

	for _, c := range t.items {
		if c.Animate(dt, t.cfg) {
			events = append(events, CollectibleRemoved{ID: c.ID})
		}
	}
	if t.state.Won() {
		return events
	}
	t.state.Elapsed += dt

	for _, c := range t.items {
		if c.Collected() || !t.inReach(pos, c) {
			continue
		}
		events = append(events, t.collect(c)...)
	}

	planar := core.Planar(pos)
	for i, p := range t.ponds {
		if _, seen := t.state.VisitedPonds[i]; seen {
			continue
		}
		if core.PlanarDistance(planar, p.Center) > p.Radius+t.cfg.DiscoveryMargin {
			continue
		}
		t.state.VisitedPonds[i] = struct{}{}
		events = append(events, PondDiscovered{Index: i, Visited: len(t.state.VisitedPonds), Total: t.state.TotalPonds})
	}

	return append(events, t.evaluate()...)
}

// inReach applies the horizontal and vertical pickup tolerances.
func (t *Tracker) inReach(pos mgl64.Vec3, c *Collectible) bool {
	anchor := c.Anchor()
	if core.PlanarDistance(core.Planar(pos), core.Planar(anchor)) > t.cfg.Horizontal {
		return false
	}
	return math.Abs(pos[1]-anchor[1]) <= t.cfg.Vertical
}

func (t *Tracker) collect(c *Collectible) []Event {
	if err := c.Collect(); err != nil {
		return nil
	}
	switch c.Kind {
	case KindGem:
		t.state.GemsCollected++
	case KindCoin:
		t.state.CoinsCollected++
	case KindTreasure:
		t.state.TreasureFound = true
	}
	t.state.Score += c.Value
	return []Event{
		CollectibleCollected{ID: c.ID, Kind: c.Kind, Value: c.Value},
		ScoreChanged{Score: t.state.Score, Delta: c.Value},
	}
}

// evaluate completes objectives whose predicates now hold and wins the
// session the first time all three are complete.
func (t *Tracker) evaluate() []Event {
	var events []Event
	done := map[ObjectiveID]bool{
		ObjectiveGems:     t.state.gemsDone(),
		ObjectiveTreasure: t.state.treasureDone(),
		ObjectivePonds:    t.state.pondsDone(),
	}
	all := true
	for i := range t.state.Objectives {
		o := &t.state.Objectives[i]
		if done[o.ID] && o.Complete() {
			events = append(events, ObjectiveCompleted{ID: o.ID, Description: o.Description})
		}
		all = all && o.Completed()
	}
	if all && t.state.Phase == PhasePlaying {
		t.state.Phase = PhaseWon
		events = append(events, GameWon{Score: t.state.Score, Elapsed: t.state.Elapsed})
	}
	return events
}

// State returns a snapshot of the game state.
func (t *Tracker) State() GameState {
	return t.state.clone()
}

// Collectibles returns snapshots of every collectible, removed ones included.
func (t *Tracker) Collectibles() []Collectible {
	out := make([]Collectible, len(t.items))
	for i, c := range t.items {
		out[i] = *c
	}
	return out
}

// Ponds returns the tracked pond zones.
func (t *Tracker) Ponds() []world.Pond {
	out := make([]world.Pond, len(t.ponds))
	copy(out, t.ponds)
	return out
}

// Visited reports whether pond i has been discovered.
func (t *Tracker) Visited(i int) bool {
	_, ok := t.state.VisitedPonds[i]
	return ok
}
