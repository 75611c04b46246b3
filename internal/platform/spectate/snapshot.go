// Package spectate streams grove frames to websocket clients, for an
// external renderer or a browser watching a run.
package spectate

import (
	"github.com/vovakirdan/tui-grove/internal/progress"
	"github.com/vovakirdan/tui-grove/internal/session"
)

// ProtocolVersion is sent with every message.
const ProtocolVersion = 1

// Message types.
const (
	TypeScene = "scene"
	TypeFrame = "frame"
)

// Vec3 is a world position.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Scene is the static part of a grove, sent once per session and to every
// new client.
type Scene struct {
	Ver       int        `json:"ver"`
	Type      string     `json:"type"`
	Session   int        `json:"session"`
	Layout    string     `json:"layout"`
	Title     string     `json:"title"`
	Obstacles []Obstacle `json:"obstacles"`
	Ponds     []Pond     `json:"ponds"`
}

// Obstacle is one footprint or platform.
type Obstacle struct {
	Kind   string  `json:"kind"`
	X      float64 `json:"x"`
	Z      float64 `json:"z"`
	Radius float64 `json:"radius"`
	Top    float64 `json:"top,omitempty"`
}

// Pond is one body of water.
type Pond struct {
	X      float64 `json:"x"`
	Z      float64 `json:"z"`
	Radius float64 `json:"radius"`
	Depth  float64 `json:"depth"`
}

// Frame is the dynamic state after one update.
type Frame struct {
	Ver          int           `json:"ver"`
	Type         string        `json:"type"`
	Session      int           `json:"session"`
	Tick         uint64        `json:"tick"`
	Player       Player        `json:"player"`
	Score        int           `json:"score"`
	Gems         [2]int        `json:"gems"`
	Ponds        [2]int        `json:"ponds"`
	Treasure     bool          `json:"treasure"`
	Won          bool          `json:"won"`
	Elapsed      float64       `json:"elapsed"`
	Collectibles []Collectible `json:"collectibles"`
	Events       []string      `json:"events,omitempty"`
}

// Player is the player's pose and movement mode.
type Player struct {
	Position Vec3    `json:"position"`
	Yaw      float64 `json:"yaw"`
	Mode     string  `json:"mode"`
	Band     string  `json:"band"`
}

// Collectible is a pickup that is still on screen.
type Collectible struct {
	ID     int     `json:"id"`
	Kind   string  `json:"kind"`
	Pos    Vec3    `json:"pos"`
	Scale  float64 `json:"scale"`
	Status string  `json:"status"`
}

// CaptureScene describes the static grove of s.
func CaptureScene(id int, s *session.Session) Scene {
	w := s.World()
	scene := Scene{
		Ver:     ProtocolVersion,
		Type:    TypeScene,
		Session: id,
		Layout:  s.Layout().ID,
		Title:   s.Layout().Title(),
	}
	for _, o := range w.Registry().All() {
		ob := Obstacle{Kind: string(o.Kind), X: o.Center.X(), Z: o.Center.Y(), Radius: o.Radius}
		if o.Walkable() {
			ob.Top = o.TopHeight
		}
		scene.Obstacles = append(scene.Obstacles, ob)
	}
	for _, p := range w.Ponds() {
		scene.Ponds = append(scene.Ponds, Pond{X: p.Center.X(), Z: p.Center.Y(), Radius: p.Radius, Depth: p.MaxDepth})
	}
	return scene
}

// CaptureFrame converts one session frame.
func CaptureFrame(id int, s *session.Session, f session.Frame) Frame {
	st := f.Progress
	pos := f.Player.Position
	out := Frame{
		Ver:     ProtocolVersion,
		Type:    TypeFrame,
		Session: id,
		Tick:    f.Tick,
		Player: Player{
			Position: Vec3{pos.X(), pos.Y(), pos.Z()},
			Yaw:      f.Player.Yaw,
			Mode:     f.Player.Mode().String(),
			Band:     f.Report.Band.String(),
		},
		Score:    st.Score,
		Gems:     [2]int{st.GemsCollected, st.TotalGems},
		Ponds:    [2]int{st.PondsVisited(), st.TotalPonds},
		Treasure: st.TreasureFound,
		Won:      st.Won(),
		Elapsed:  st.Elapsed,
	}
	for _, c := range s.Collectibles() {
		if c.Status() == progress.StatusRemoved {
			continue
		}
		p := c.Position
		out.Collectibles = append(out.Collectibles, Collectible{
			ID:     c.ID,
			Kind:   string(c.Kind),
			Pos:    Vec3{p.X(), p.Y(), p.Z()},
			Scale:  c.Scale(),
			Status: c.Status().String(),
		})
	}
	for _, e := range f.Events {
		out.Events = append(out.Events, e.String())
	}
	return out
}
