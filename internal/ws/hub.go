package ws

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeTimeout = 10 * time.Second
	pongTimeout  = 60 * time.Second
	pingInterval = 30 * time.Second
	sendBuffer   = 64
)

// EchoPrefix is prepended to every message echoed back to a client.
const EchoPrefix = "Echo: "

// originChecker allows a handshake when its Origin header is listed in
// allowed. A "*" entry allows any origin; a request with no Origin header
// is not from a browser and is allowed.
func originChecker(allowed []string) func(r *http.Request) bool {
	set := make(map[string]struct{}, len(allowed))
	for _, o := range allowed {
		if o == "*" {
			return func(*http.Request) bool { return true }
		}
		set[o] = struct{}{}
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		_, ok := set[origin]
		return ok
	}
}

// Hooks carries callbacks injected by main. nil fields are no-ops.
type Hooks struct {
	OnConnect    func()
	OnDisconnect func()
}

type client struct {
	conn *websocket.Conn
	send chan []byte
	done chan struct{}
	once sync.Once
}

func (c *client) close() {
	c.once.Do(func() {
		close(c.done)
		c.conn.Close()
	})
}

// Hub tracks open WebSocket connections. Membership changes go through a
// single loop goroutine; Count may be called from anywhere.
type Hub struct {
	mu      sync.RWMutex
	clients map[*client]struct{}

	register   chan *client
	unregister chan *client
	stopCh     chan struct{}
	stopOnce   sync.Once

	upgrader websocket.Upgrader
	hooks    Hooks
	logger   *zap.Logger
}

// NewHub creates a hub that accepts handshakes from allowedOrigins, using
// the same rules as the CORS middleware.
func NewHub(logger *zap.Logger, allowedOrigins []string, hooks Hooks) *Hub {
	if hooks.OnConnect == nil {
		hooks.OnConnect = func() {}
	}
	if hooks.OnDisconnect == nil {
		hooks.OnDisconnect = func() {}
	}
	return &Hub{
		clients:    make(map[*client]struct{}),
		register:   make(chan *client),
		unregister: make(chan *client),
		stopCh:     make(chan struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(allowedOrigins),
		},
		hooks:  hooks,
		logger: logger,
	}
}

// Start launches the membership loop.
func (h *Hub) Start() {
	go h.run()
}

// Stop disconnects every client and ends the membership loop.
// Safe to call more than once.
func (h *Hub) Stop() {
	h.stopOnce.Do(func() { close(h.stopCh) })
}

// Count returns the number of connected clients.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) run() {
	for {
		select {
		case c := <-h.register:
			h.mu.Lock()
			h.clients[c] = struct{}{}
			h.mu.Unlock()
			h.hooks.OnConnect()
			h.logger.Debug("ws client registered", zap.String("remote_addr", c.conn.RemoteAddr().String()))
		case c := <-h.unregister:
			h.mu.Lock()
			_, ok := h.clients[c]
			delete(h.clients, c)
			h.mu.Unlock()
			if ok {
				c.close()
				h.hooks.OnDisconnect()
			}
		case <-h.stopCh:
			h.mu.Lock()
			for c := range h.clients {
				c.close()
				delete(h.clients, c)
				h.hooks.OnDisconnect()
			}
			h.mu.Unlock()
			h.logger.Info("ws hub stopped")
			return
		}
	}
}

// ServeWS upgrades the connection and echoes every message it receives
// back to the sender, prefixed with EchoPrefix.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	c := &client{
		conn: conn,
		send: make(chan []byte, sendBuffer),
		done: make(chan struct{}),
	}

	select {
	case h.register <- c:
	case <-h.stopCh:
		c.close()
		return
	}

	go h.writePump(c)
	go h.readPump(c)
}

func (h *Hub) readPump(c *client) {
	defer func() {
		select {
		case h.unregister <- c:
		case <-h.stopCh:
		}
		c.close()
	}()

	c.conn.SetReadDeadline(time.Now().Add(pongTimeout)) //nolint:errcheck
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongTimeout))
	})

	for {
		_, msg, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Warn("websocket read error", zap.Error(err))
			}
			return
		}

		reply := append([]byte(EchoPrefix), msg...)
		// Blocks while the client is behind; the write deadline bounds it.
		select {
		case c.send <- reply:
		case <-c.done:
			return
		}
	}
}

func (h *Hub) writePump(c *client) {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		c.close()
	}()

	for {
		select {
		case msg := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeTimeout)) //nolint:errcheck
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeTimeout)) //nolint:errcheck
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-c.done:
			return
		}
	}
}
