package spectate

import (
	"encoding/json"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/tui-grove/internal/session"
)

const (
	writeWait    = 5 * time.Second
	pingInterval = 20 * time.Second
	sendBuffer   = 64

	// defaultIdle is how long a session may go without a frame before its
	// scene is dropped.
	defaultIdle = 2 * time.Minute
	pruneEvery  = time.Second
)

// Hub fans frames out to every connected client. A client whose buffer is
// full is dropped rather than slowing the game loop.
type Hub struct {
	logger   *log.Logger
	upgrader websocket.Upgrader
	every    uint64
	idle     time.Duration
	now      func() time.Time

	mu       sync.Mutex
	clients  map[*client]struct{}
	sessions map[*session.Session]*tracked
	nextID   int
	pruned   time.Time
	closed   bool
}

// tracked is a live session: its feed ID, last published scene and when it
// was last seen.
type tracked struct {
	id    int
	scene []byte
	seen  time.Time
}

type client struct {
	conn *websocket.Conn
	send chan []byte
	once sync.Once
}

func (c *client) close() {
	c.once.Do(func() { close(c.send) })
}

// Option configures a Hub.
type Option func(*Hub)

// WithLogger sets the hub logger. The default discards.
func WithLogger(l *log.Logger) Option {
	return func(h *Hub) {
		h.logger = l
	}
}

// WithEvery publishes one frame in every n ticks. Frames carrying events
// are always published.
func WithEvery(n int) Option {
	return func(h *Hub) {
		if n > 0 {
			h.every = uint64(n)
		}
	}
}

// WithIdle drops a session that has not sent a frame for d. Sessions whose
// host vanished without calling Forget are cleaned up this way.
func WithIdle(d time.Duration) Option {
	return func(h *Hub) {
		if d > 0 {
			h.idle = d
		}
	}
}

// NewHub creates an empty hub.
func NewHub(opts ...Option) *Hub {
	h := &Hub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		logger:   log.New(io.Discard),
		every:    1,
		idle:     defaultIdle,
		now:      time.Now,
		clients:  make(map[*client]struct{}),
		sessions: make(map[*session.Session]*tracked),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Observe publishes a session frame. The first frame of a session, and the
// first frame after a restart, also publishes its scene.
func (h *Hub) Observe(s *session.Session, f session.Frame) {
	now := h.now()
	h.mu.Lock()
	h.pruneLocked(now)
	t, known := h.sessions[s]
	if !known {
		h.nextID++
		t = &tracked{id: h.nextID}
		h.sessions[s] = t
	}
	t.seen = now
	id := t.id
	h.mu.Unlock()

	if !known || f.Tick == 1 {
		scene, err := json.Marshal(CaptureScene(id, s))
		if err != nil {
			h.logger.Error("marshal scene", "err", err)
			return
		}
		h.mu.Lock()
		t.scene = scene
		h.mu.Unlock()
		h.broadcast(scene)
	}

	if f.Tick%h.every != 0 && len(f.Events) == 0 && !f.Progress.Won() {
		return
	}
	data, err := json.Marshal(CaptureFrame(id, s, f))
	if err != nil {
		h.logger.Error("marshal frame", "err", err)
		return
	}
	h.broadcast(data)
}

// Forget drops a finished session. Late clients no longer receive its scene.
func (h *Hub) Forget(s *session.Session) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if t, ok := h.sessions[s]; ok {
		delete(h.sessions, s)
		h.logger.Debug("session ended", "session", t.id)
	}
}

// Sessions returns the number of sessions being tracked.
func (h *Hub) Sessions() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.pruneLocked(h.now())
	return len(h.sessions)
}

// pruneLocked drops sessions idle for longer than h.idle. It runs at most
// once per pruneEvery.
func (h *Hub) pruneLocked(now time.Time) {
	if now.Sub(h.pruned) < pruneEvery {
		return
	}
	h.pruned = now
	for s, t := range h.sessions {
		if now.Sub(t.seen) > h.idle {
			delete(h.sessions, s)
			h.logger.Debug("session went idle", "session", t.id)
		}
	}
}

// Publish sends a JSON-encoded value to every client.
func (h *Hub) Publish(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	h.broadcast(data)
	return nil
}

func (h *Hub) broadcast(data []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		select {
		case c.send <- data:
		default:
			h.logger.Warn("dropping slow spectator", "remote", c.conn.RemoteAddr().String())
			delete(h.clients, c)
			c.close()
		}
	}
}

// Clients returns the number of connected clients.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// ServeHTTP upgrades the request and streams frames until the client
// disconnects.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("upgrade failed", "remote", r.RemoteAddr, "err", err)
		return
	}

	c := &client{conn: conn, send: make(chan []byte, sendBuffer)}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		conn.Close()
		return
	}
	h.pruned = time.Time{}
	h.pruneLocked(h.now())
	for _, t := range h.sessions {
		if t.scene == nil {
			continue
		}
		select {
		case c.send <- t.scene:
		default:
		}
	}
	h.clients[c] = struct{}{}
	h.mu.Unlock()

	h.logger.Info("spectator connected", "remote", conn.RemoteAddr().String())
	go h.writeLoop(c)
	h.readLoop(c)
}

// readLoop discards client messages and unregisters on disconnect.
func (h *Hub) readLoop(c *client) {
	defer func() {
		h.mu.Lock()
		if _, ok := h.clients[c]; ok {
			delete(h.clients, c)
			c.close()
		}
		h.mu.Unlock()
		h.logger.Info("spectator disconnected", "remote", c.conn.RemoteAddr().String())
	}()
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) writeLoop(c *client) {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case data, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// Close disconnects every client and refuses new ones.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for c := range h.clients {
		delete(h.clients, c)
		c.close()
	}
}
