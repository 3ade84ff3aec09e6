package system

import (
	"encoding/json"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"go.uber.org/zap"
)

// ChangeEvent tells open console tabs that an entity changed and the
// matching list should be refetched. The console never pushes the data
// itself; lists are always reloaded from upstream.
type ChangeEvent struct {
	Entity string `json:"entity"`
	Action string `json:"action"`
	ID     string `json:"id,omitempty"`
}

// Broadcaster is the write-side interface controllers use after a
// successful mutation.
type Broadcaster interface {
	Broadcast(event ChangeEvent)
}

// Hub fans ChangeEvents out to every connected console tab.
type Hub struct {
	logger *zap.Logger

	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		logger: logger,
		conns:  make(map[*websocket.Conn]struct{}),
	}
}

func (h *Hub) register(c *websocket.Conn) {
	h.mu.Lock()
	h.conns[c] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) unregister(c *websocket.Conn) {
	h.mu.Lock()
	delete(h.conns, c)
	h.mu.Unlock()
}

// Broadcast sends the event to every connected tab. Slow or broken
// connections are dropped rather than blocking the caller.
func (h *Hub) Broadcast(event ChangeEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.conns {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			h.logger.Debug("dropping websocket client", zap.Error(err))
			conn.Close()
			delete(h.conns, conn)
		}
	}
}

// HandleConnection parks a console tab on the hub until it disconnects.
// Inbound messages are ignored; the socket is broadcast-only.
func (h *Hub) HandleConnection(c *websocket.Conn) {
	h.register(c)
	defer func() {
		h.unregister(c)
		c.Close()
	}()

	for {
		if _, _, err := c.ReadMessage(); err != nil {
			break
		}
	}
}
