package player

import "strings"

// Event is a bit set of things that happened during one Step.
type Event uint16

const (
	EventJumped Event = 1 << iota
	EventLanded
	EventEnteredWater
	EventLeftWater
	EventStartedSwimming
	EventStoppedSwimming
	EventRespawned
	EventBlocked
)

var eventNames = []struct {
	e    Event
	name string
}{
	{EventJumped, "jumped"},
	{EventLanded, "landed"},
	{EventEnteredWater, "entered-water"},
	{EventLeftWater, "left-water"},
	{EventStartedSwimming, "started-swimming"},
	{EventStoppedSwimming, "stopped-swimming"},
	{EventRespawned, "respawned"},
	{EventBlocked, "blocked"},
}

// Has reports whether every bit of e2 is set in e.
func (e Event) Has(e2 Event) bool {
	return e&e2 == e2
}

func (e Event) String() string {
	if e == 0 {
		return "none"
	}
	var parts []string
	for _, n := range eventNames {
		if e.Has(n.e) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}

// Report summarizes one Step for the render and UI collaborators.
type Report struct {
	Events Event
	Mode   Mode
	Band   Band
	Depth  float64 // local water depth, 0 on dry land
	Ground float64 // absolute height of the surface under the player
}
