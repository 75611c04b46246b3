package player

import "github.com/vovakirdan/tui-grove/internal/config"

// Band is a water depth band.
type Band int

const (
	BandDry Band = iota
	BandShallow
	BandMedium
	BandDeep
)

func (b Band) String() string {
	switch b {
	case BandDry:
		return "dry"
	case BandShallow:
		return "shallow"
	case BandMedium:
		return "medium"
	case BandDeep:
		return "deep"
	default:
		return "unknown"
	}
}

// Resistance is the effect of water on movement at one position.
type Resistance struct {
	Band Band
	Slow float64 // multiplies horizontal acceleration
	Sink float64 // maximum descent speed while submerged, 0 means uncapped
}

// dry is the resistance of open ground.
var dry = Resistance{Band: BandDry, Slow: 1}

// resistanceFor applies the banded water policy. Depth is the local water
// depth; running only matters in deep water, where it trades a faster sink
// for less drag.
func resistanceFor(w config.WaterConfig, depth float64, running bool) Resistance {
	switch {
	case depth <= 0:
		return dry
	case depth <= w.Shallow.MaxDepth:
		return Resistance{Band: BandShallow, Slow: w.Shallow.Slow, Sink: w.Shallow.Sink}
	case depth <= w.Medium.MaxDepth:
		return Resistance{Band: BandMedium, Slow: w.Medium.Slow, Sink: w.Medium.Sink}
	case running:
		return Resistance{Band: BandDeep, Slow: w.Deep.RunSlow, Sink: w.Deep.RunSink}
	default:
		return Resistance{Band: BandDeep, Slow: w.Deep.Slow, Sink: w.Deep.Sink}
	}
}
