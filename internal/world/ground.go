package world

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tui-grove/internal/core"
)

// LandingWindow is the vertical range around a platform top in which a
// player counts as landing on it rather than passing beneath or far above.
type LandingWindow struct {
	Below float64 // window starts at top - Below
	Above float64 // and ends at top + Above
}

// Contains reports whether y lies within the window around top.
func (w LandingWindow) Contains(top, y float64) bool {
	return y >= top-w.Below && y <= top+w.Above
}

// PlatformHeight returns the highest platform top under pos that currentY
// is landing on, or 0 when none qualifies. Bare terrain is not considered;
// the result is the platform layer only.
//
// Taking the maximum keeps stacked or overlapping platforms resolving to
// the highest surface, whatever order they were registered in.
func (r *Registry) PlatformHeight(pos mgl64.Vec2, currentY float64, win LandingWindow) float64 {
	height := 0.0
	for _, o := range r.obstacles {
		if o.Shape != ShapePlatform {
			continue
		}
		if core.PlanarDistance(pos, o.Center) >= o.Radius {
			continue
		}
		if !win.Contains(o.TopHeight, currentY) {
			continue
		}
		if o.TopHeight > height {
			height = o.TopHeight
		}
	}
	return height
}
