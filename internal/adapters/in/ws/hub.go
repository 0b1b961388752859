// Package ws broadcasts order events to connected staff displays over
// websockets. Displays are read-only consumers: inbound frames are
// discarded, every connected display receives every event.
package ws

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"comanda/internal/core/ports"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 90 * time.Second
	sendBuffer = 32
)

// Hub tracks the connected displays and fans events out to them. A display
// that cannot keep up has its connection dropped rather than slowing the
// rest down.
type Hub struct {
	mu       sync.Mutex
	conns    map[*connection]struct{}
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

// NewHub creates an empty hub.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		conns: make(map[*connection]struct{}),
		upgrader: websocket.Upgrader{
			// Displays live on kitchen tablets and arbitrary hosts.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		logger: logger.With("component", "ws_hub"),
	}
}

type connection struct {
	ws        *websocket.Conn
	send      chan []byte
	closeOnce sync.Once
}

func (c *connection) close() {
	c.closeOnce.Do(func() {
		close(c.send)
		_ = c.ws.Close()
	})
}

// Handle upgrades the request and serves the connection until the client
// goes away.
func (h *Hub) Handle(c echo.Context) error {
	ws, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	conn := &connection{
		ws:   ws,
		send: make(chan []byte, sendBuffer),
	}

	h.mu.Lock()
	h.conns[conn] = struct{}{}
	h.mu.Unlock()

	h.logger.InfoContext(c.Request().Context(), "display connected",
		"remote", ws.RemoteAddr().String())

	go h.writeLoop(conn)
	h.readLoop(conn)
	return nil
}

// Publish sends the event to every connected display. Marshals once and
// never blocks: a display with a full buffer is disconnected.
func (h *Hub) Publish(event ports.Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		h.logger.Error("failed to marshal event", "type", event.Type, "error", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.conns {
		select {
		case conn.send <- payload:
		default:
			delete(h.conns, conn)
			conn.close()
			h.logger.Warn("dropped slow display", "remote", conn.ws.RemoteAddr().String())
		}
	}
}

// Ping sends a control ping to every display and prunes the ones that no
// longer respond. Called periodically by the keepalive job.
func (h *Hub) Ping() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.conns {
		err := conn.ws.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
		if err != nil {
			delete(h.conns, conn)
			conn.close()
		}
	}
}

// ConnectionCount reports how many displays are connected.
func (h *Hub) ConnectionCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}

func (h *Hub) readLoop(conn *connection) {
	defer h.drop(conn)

	_ = conn.ws.SetReadDeadline(time.Now().Add(pongWait))
	conn.ws.SetPongHandler(func(string) error {
		return conn.ws.SetReadDeadline(time.Now().Add(pongWait))
	})

	// Displays never send application data; the loop only notices closes.
	for {
		if _, _, err := conn.ws.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) writeLoop(conn *connection) {
	for payload := range conn.send {
		_ = conn.ws.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.ws.WriteMessage(websocket.TextMessage, payload); err != nil {
			h.drop(conn)
			return
		}
	}
}

func (h *Hub) drop(conn *connection) {
	h.mu.Lock()
	_, present := h.conns[conn]
	delete(h.conns, conn)
	h.mu.Unlock()

	conn.close()
	if present {
		h.logger.Info("display disconnected", "remote", conn.ws.RemoteAddr().String())
	}
}
