package grove

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tui-grove/internal/core"
	"github.com/vovakirdan/tui-grove/internal/player"
	"github.com/vovakirdan/tui-grove/internal/progress"
	"github.com/vovakirdan/tui-grove/internal/world"
)

const (
	hudHeight    = 2
	footerHeight = 2
	minWidth     = 40
	minHeight    = 12

	// A terminal cell is about twice as tall as it is wide, so a row
	// covers twice the world distance of a column.
	unitsPerCol = 1.0
	unitsPerRow = 2.0
)

var headingArrows = []rune{'↑', '↗', '→', '↘', '↓', '↙', '←', '↖'}

// viewport maps world ground-plane positions to screen cells around the
// player.
type viewport struct {
	center  mgl64.Vec2
	originX int // screen column of center
	originY int // screen row of center
	top     int
	bottom  int // exclusive
	width   int
}

func (v viewport) toScreen(p mgl64.Vec2) (int, int) {
	x := v.originX + int(math.Round((p[0]-v.center[0])/unitsPerCol))
	y := v.originY + int(math.Round((p[1]-v.center[1])/unitsPerRow))
	return x, y
}

func (v viewport) toWorld(x, y int) mgl64.Vec2 {
	return mgl64.Vec2{
		v.center[0] + float64(x-v.originX)*unitsPerCol,
		v.center[1] + float64(y-v.originY)*unitsPerRow,
	}
}

func (v viewport) visible(x, y int) bool {
	return x >= 0 && x < v.width && y >= v.top && y < v.bottom
}

// Render draws the current state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.screenW, g.screenH = dst.Width(), dst.Height()

	if g.screenW < minWidth || g.screenH < minHeight {
		g.renderTooSmall(dst)
		return
	}
	if g.session == nil {
		g.renderError(dst)
		return
	}

	mapH := g.screenH - hudHeight - footerHeight
	v := viewport{
		center:  g.last.Player.Planar(),
		originX: g.screenW / 2,
		originY: hudHeight + mapH/2,
		top:     hudHeight,
		bottom:  hudHeight + mapH,
		width:   g.screenW,
	}

	g.renderGround(dst, v)
	g.renderObstacles(dst, v)
	g.renderCollectibles(dst, v)
	g.renderPlayer(dst, v)
	g.renderHUD(dst)
	g.renderFooter(dst)

	switch {
	case g.last.Progress.Won():
		g.renderWon(dst)
	case g.paused:
		g.renderPaused(dst)
	}
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minWidth, minHeight))
}

func (g *Game) renderError(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y-1, "Grove unavailable")
	if g.err != nil {
		msg := g.err.Error()
		if len(msg) > g.screenW-2 {
			msg = msg[:g.screenW-2]
		}
		dst.DrawTextCentered(y+1, msg)
	}
}

// renderGround shades terrain and water cell by cell.
func (g *Game) renderGround(dst *core.Screen, v viewport) {
	w := g.session.World()
	boundary := w.Rules().Boundary
	terrain := w.Terrain()

	for y := v.top; y < v.bottom; y++ {
		for x := 0; x < v.width; x++ {
			p := v.toWorld(x, y)
			if world.OutOfBounds(p, boundary) {
				dst.SetColored(x, y, '░', core.ColorGray)
				continue
			}
			if water, ok := w.WaterAt(p); ok {
				r, c := waterCell(water.Depth)
				dst.SetColored(x, y, r, c)
				continue
			}
			// sparse grass marks anchored to world cells so they scroll
			cx, cz := int(math.Floor(p[0]/unitsPerCol)), int(math.Floor(p[1]/unitsPerRow))
			if (cx+2*cz)%3 != 0 {
				continue
			}
			h := terrain.BaseHeight(p[0], p[1])
			switch {
			case h < 0.25:
				dst.SetColored(x, y, '.', core.ColorDarkGreen)
			case h < 0.6:
				dst.SetColored(x, y, ',', core.ColorGreen)
			default:
				dst.SetColored(x, y, ':', core.ColorBrightGreen)
			}
		}
	}
}

func waterCell(depth float64) (rune, core.Color) {
	switch {
	case depth < 0.5:
		return '~', core.ColorCyan
	case depth < 1.5:
		return '≈', core.ColorBlue
	default:
		return '≋', core.ColorBrightBlue
	}
}

// renderObstacles rasterizes each footprint over its screen bounding box.
func (g *Game) renderObstacles(dst *core.Screen, v viewport) {
	for _, o := range g.session.World().Registry().All() {
		cx, cy := v.toScreen(o.Center)
		rx := int(math.Ceil(o.Radius / unitsPerCol))
		ry := int(math.Ceil(o.Radius / unitsPerRow))
		for y := cy - ry; y <= cy+ry; y++ {
			for x := cx - rx; x <= cx+rx; x++ {
				if !v.visible(x, y) {
					continue
				}
				d := core.PlanarDistance(v.toWorld(x, y), o.Center)
				if d > o.Radius && !(x == cx && y == cy) {
					continue
				}
				r, c := obstacleCell(o, x == cx && y == cy, d > o.Radius-unitsPerCol)
				dst.SetColored(x, y, r, c)
			}
		}
	}
}

func obstacleCell(o world.Obstacle, center, rim bool) (rune, core.Color) {
	switch o.Kind {
	case world.KindTree:
		if center {
			return '♣', core.ColorGreen
		}
		return '*', core.ColorDarkGreen
	case world.KindRock:
		return '●', core.ColorGray
	case world.KindBench:
		return '=', core.ColorBrown
	case world.KindGazebo:
		if rim {
			return '#', core.ColorWhite
		}
		return '▒', core.ColorWhite
	case world.KindStructure:
		return '█', core.ColorGray
	default:
		if o.Walkable() {
			return '▒', core.ColorBrown
		}
		return '█', core.ColorGray
	}
}

func (g *Game) renderCollectibles(dst *core.Screen, v viewport) {
	for _, c := range g.session.Collectibles() {
		if c.Status() == progress.StatusRemoved {
			continue
		}
		x, y := v.toScreen(core.Planar(c.Position))
		if !v.visible(x, y) {
			continue
		}
		r, col := collectibleCell(c)
		dst.SetColored(x, y, r, col)
	}
}

func collectibleCell(c progress.Collectible) (rune, core.Color) {
	if c.Status() == progress.StatusCollecting {
		if c.Scale() > 0.5 {
			return '◇', core.ColorBrightWhite
		}
		return '·', core.ColorBrightWhite
	}
	switch c.Kind {
	case progress.KindGem:
		return '◆', core.ColorBrightMagenta
	case progress.KindTreasure:
		return '$', core.ColorOrange
	default:
		return 'o', core.ColorBrightYellow
	}
}

func (g *Game) renderPlayer(dst *core.Screen, v viewport) {
	octant := int(math.Round(g.last.Player.Yaw/(math.Pi/4))) % 8
	if octant < 0 {
		octant += 8
	}
	color := core.ColorBrightWhite
	switch g.last.Player.Mode() {
	case player.ModeAirborne:
		color = core.ColorBrightYellow
	case player.ModeSwimming:
		color = core.ColorBrightCyan
	}
	dst.SetColored(v.originX, v.originY, headingArrows[octant], color)
}

func (g *Game) renderHUD(dst *core.Screen) {
	st := g.last.Progress
	title := "GROVE · " + g.session.Layout().Title()
	dst.DrawTextColored(0, 0, title, core.ColorBrightGreen)

	right := fmt.Sprintf("Score %d  %5.1fs", st.Score, st.Elapsed)
	dst.DrawTextColored(g.screenW-len(right), 0, right, core.ColorBrightWhite)

	treasure := "no"
	if st.TreasureFound {
		treasure = "yes"
	}
	info := fmt.Sprintf("Gems %d/%d  Ponds %d/%d  Treasure %s  Objectives %d/3",
		st.GemsCollected, st.TotalGems, st.PondsVisited(), st.TotalPonds, treasure, st.CompletedObjectives())
	dst.DrawText(0, 1, info)

	mode := g.last.Player.Mode().String()
	if g.last.Report.Band != player.BandDry {
		mode += " · " + g.last.Report.Band.String() + " water"
	}
	if g.pilot != nil {
		mode = "autopilot · " + mode
	}
	dst.DrawTextColored(g.screenW-len([]rune(mode)), 1, mode, core.ColorCyan)
}

func (g *Game) renderFooter(dst *core.Screen) {
	lines := make([]string, 0, len(g.ticker))
	for _, l := range g.ticker {
		lines = append(lines, l.text)
	}
	dst.DrawTextColored(0, g.screenH-2, strings.Join(lines, " · "), core.ColorBrightYellow)
	dst.DrawTextColored(0, g.screenH-1, "WASD move  Q/E turn  Space jump  Shift run  P pause  Ctrl+C quit", core.ColorGray)
}

// renderBox draws a bordered panel with centered lines.
func (g *Game) renderBox(dst *core.Screen, lines []string) {
	w := 0
	for _, l := range lines {
		w = core.Max(w, len([]rune(l)))
	}
	w += 4
	h := len(lines) + 2
	r := core.NewRect((g.screenW-w)/2, (g.screenH-h)/2, w, h)
	dst.DrawRect(r, ' ')
	dst.DrawBox(r)
	for i, l := range lines {
		dst.DrawText(r.X+(w-len([]rune(l)))/2, r.Y+1+i, l)
	}
}

func (g *Game) renderWon(dst *core.Screen) {
	st := g.last.Progress
	g.renderBox(dst, []string{
		"GROVE COMPLETE!",
		"",
		fmt.Sprintf("Score: %d", st.Score),
		fmt.Sprintf("Time: %.1fs", st.Elapsed),
		"",
		"R restart · B menu",
	})
}

func (g *Game) renderPaused(dst *core.Screen) {
	lines := []string{"PAUSED", ""}
	for _, o := range g.last.Progress.Objectives {
		mark := "[ ]"
		if o.Completed() {
			mark = "[x]"
		}
		lines = append(lines, mark+" "+o.Description)
	}
	lines = append(lines, "", "P resume")
	g.renderBox(dst, lines)
}
