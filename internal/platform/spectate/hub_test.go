package spectate

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vovakirdan/tui-grove/internal/config"
	"github.com/vovakirdan/tui-grove/internal/levels"
	"github.com/vovakirdan/tui-grove/internal/player"
	"github.com/vovakirdan/tui-grove/internal/session"
)

func newSession(t *testing.T) *session.Session {
	t.Helper()
	layout, err := levels.NewLoader("").LoadByID("glade")
	if err != nil {
		t.Fatalf("LoadByID() error = %v", err)
	}
	s, err := session.New(config.DefaultGroveConfig(), layout)
	if err != nil {
		t.Fatalf("session.New() error = %v", err)
	}
	return s
}

func dial(t *testing.T, h *Hub) *websocket.Conn {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial() error = %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	deadline := time.Now().Add(2 * time.Second)
	for h.Clients() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("client never registered")
		}
		time.Sleep(5 * time.Millisecond)
	}
	return conn
}

func readJSON(t *testing.T, conn *websocket.Conn, v any) {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("ReadMessage() error = %v", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		t.Fatalf("Unmarshal(%s) error = %v", data, err)
	}
}

func TestHubStreamsSceneThenFrames(t *testing.T) {
	h := NewHub()
	defer h.Close()
	conn := dial(t, h)
	s := newSession(t)

	f := s.Update(1.0/60, player.Intent{Forward: true})
	h.Observe(s, f)

	var scene Scene
	readJSON(t, conn, &scene)
	if scene.Type != TypeScene || scene.Layout != "glade" || scene.Session != 1 {
		t.Errorf("scene header = %+v", scene)
	}
	if len(scene.Ponds) != 2 || len(scene.Obstacles) != 2 {
		t.Errorf("scene has %d ponds and %d obstacles, want 2 and 2", len(scene.Ponds), len(scene.Obstacles))
	}

	var frame Frame
	readJSON(t, conn, &frame)
	if frame.Type != TypeFrame || frame.Tick != 1 || frame.Session != 1 {
		t.Errorf("frame header = %+v", frame)
	}
	if frame.Gems != [2]int{0, 3} || frame.Ponds != [2]int{0, 2} {
		t.Errorf("frame progress gems %v ponds %v", frame.Gems, frame.Ponds)
	}
	if len(frame.Collectibles) != 5 {
		t.Errorf("frame has %d collectibles, want 5", len(frame.Collectibles))
	}
	if frame.Player.Mode == "" || frame.Player.Band != "dry" {
		t.Errorf("frame player = %+v", frame.Player)
	}
}

func TestHubThrottlesQuietFrames(t *testing.T) {
	h := NewHub(WithEvery(3))
	defer h.Close()
	conn := dial(t, h)
	s := newSession(t)

	for i := 0; i < 6; i++ {
		h.Observe(s, s.Update(1.0/60, player.Intent{}))
	}

	var scene Scene
	readJSON(t, conn, &scene)

	var ticks []uint64
	for i := 0; i < 2; i++ {
		var frame Frame
		readJSON(t, conn, &frame)
		ticks = append(ticks, frame.Tick)
	}
	if ticks[0] != 3 || ticks[1] != 6 {
		t.Errorf("published ticks = %v, want [3 6]", ticks)
	}
}

func TestHubReplaysSceneToLateClients(t *testing.T) {
	h := NewHub()
	defer h.Close()
	s := newSession(t)
	h.Observe(s, s.Update(1.0/60, player.Intent{}))

	conn := dial(t, h)
	var scene Scene
	readJSON(t, conn, &scene)
	if scene.Type != TypeScene || scene.Layout != "glade" {
		t.Errorf("late client got %+v, want the scene", scene)
	}
}

func TestHubCloseDisconnects(t *testing.T) {
	h := NewHub()
	conn := dial(t, h)

	if err := h.Publish(map[string]string{"type": "hello"}); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}
	var hello map[string]string
	readJSON(t, conn, &hello)
	if hello["type"] != "hello" {
		t.Errorf("got %v", hello)
	}

	h.Close()
	if h.Clients() != 0 {
		t.Errorf("Clients() = %d after Close", h.Clients())
	}
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	if _, _, err := conn.ReadMessage(); err == nil {
		t.Error("connection should close after Close")
	}
}

// replayedSessions dials a new client and returns the session IDs of the
// scenes it is sent before a marker message.
func replayedSessions(t *testing.T, h *Hub) []int {
	t.Helper()
	conn := dial(t, h)
	if err := h.Publish(map[string]string{"type": "marker"}); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}
	var ids []int
	for {
		var msg struct {
			Type    string `json:"type"`
			Session int    `json:"session"`
		}
		readJSON(t, conn, &msg)
		if msg.Type == "marker" {
			return ids
		}
		ids = append(ids, msg.Session)
	}
}

func TestHubForgottenSessionNotReplayed(t *testing.T) {
	h := NewHub()
	defer h.Close()
	done, live := newSession(t), newSession(t)
	h.Observe(done, done.Update(1.0/60, player.Intent{}))
	h.Observe(live, live.Update(1.0/60, player.Intent{}))

	h.Forget(done)
	h.Forget(done)
	if n := h.Sessions(); n != 1 {
		t.Errorf("Sessions() = %d after Forget, want 1", n)
	}

	ids := replayedSessions(t, h)
	if len(ids) != 1 || ids[0] != 2 {
		t.Errorf("late client got scenes for sessions %v, want [2]", ids)
	}
}

func TestHubDropsIdleSessions(t *testing.T) {
	tests := []struct {
		name    string
		elapsed time.Duration
		want    int
	}{
		{"recent", 30 * time.Second, 1},
		{"idle", 2 * time.Minute, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var clock atomic.Int64
			clock.Store(1000)
			h := NewHub(WithIdle(time.Minute))
			h.now = func() time.Time { return time.Unix(clock.Load(), 0) }
			defer h.Close()

			s := newSession(t)
			h.Observe(s, s.Update(1.0/60, player.Intent{}))
			clock.Add(int64(tt.elapsed / time.Second))

			if n := h.Sessions(); n != tt.want {
				t.Errorf("Sessions() = %d, want %d", n, tt.want)
			}
			if ids := replayedSessions(t, h); len(ids) != tt.want {
				t.Errorf("late client got %d scenes, want %d", len(ids), tt.want)
			}
		})
	}
}
