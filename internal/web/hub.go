package web

import (
	"net/http"
	"sync"

	"github.com/bytedance/sonic"
	"github.com/gorilla/websocket"
)

// Hub tracks the connected WebSocket clients and fans broadcasts out
// to all of them.
type Hub struct {
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*client]bool
}

// client pairs a connection with a write lock; the read loop and
// broadcasts share the connection.
type client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *client) write(data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteMessage(websocket.TextMessage, data)
}

func (c *client) send(v any) error {
	data, err := sonic.Marshal(v)
	if err != nil {
		return err
	}
	return c.write(data)
}

// NewHub creates an empty hub. Origins are not checked; the API serves
// local tooling and demo frontends.
func NewHub() *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
		clients: make(map[*client]bool),
	}
}

// Count returns the number of connected clients.
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Broadcast sends one message to every connected client. Clients whose
// connection fails are dropped.
func (h *Hub) Broadcast(v any) {
	data, err := sonic.Marshal(v)
	if err != nil {
		webLog.Error().Err(err).Msg("failed to encode broadcast")
		return
	}

	for _, c := range h.snapshot() {
		if err := c.write(data); err != nil {
			webLog.Debug().Err(err).Msg("dropping client after failed write")
			h.remove(c)
		}
	}
}

func (h *Hub) snapshot() []*client {
	h.mu.Lock()
	defer h.mu.Unlock()
	clients := make([]*client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	return clients
}

func (h *Hub) add(conn *websocket.Conn) *client {
	c := &client{conn: conn}
	h.mu.Lock()
	h.clients[c] = true
	count := len(h.clients)
	h.mu.Unlock()

	webLog.Info().Int("clients", count).Msg("websocket client connected")
	return c
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	_, present := h.clients[c]
	delete(h.clients, c)
	count := len(h.clients)
	h.mu.Unlock()

	if present {
		c.conn.Close()
		webLog.Info().Int("clients", count).Msg("websocket client disconnected")
	}
}
