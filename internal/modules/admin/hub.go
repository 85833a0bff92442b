package admin

import (
	"sync"

	"github.com/gorilla/websocket"

	"metagrow/internal/domain"
)

// Hub fans new submissions out to every open dashboard over websocket.
// Delivery is best-effort: a dead connection is dropped, never retried.
type Hub struct {
	mu     sync.Mutex
	nextID int64
	conns  map[int64]*websocket.Conn
}

func NewHub() *Hub {
	return &Hub{
		nextID: 1,
		conns:  make(map[int64]*websocket.Conn),
	}
}

func (h *Hub) register(conn *websocket.Conn) int64 {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextID
	h.nextID++
	h.conns[id] = conn
	return id
}

func (h *Hub) unregister(id int64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if conn, exists := h.conns[id]; exists && conn != nil {
		_ = conn.Close()
		delete(h.conns, id)
	}
}

// Publish pushes a stored submission to every connected dashboard.
func (h *Hub) Publish(c domain.Contact) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for id, conn := range h.conns {
		if conn == nil {
			delete(h.conns, id)
			continue
		}
		if err := conn.WriteJSON(c); err != nil {
			_ = conn.Close()
			delete(h.conns, id)
		}
	}
}

// ConnectionCount reports how many dashboards are listening.
func (h *Hub) ConnectionCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}

// Close drops every connection. Called once at shutdown.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for id, conn := range h.conns {
		if conn != nil {
			_ = conn.Close()
		}
		delete(h.conns, id)
	}
}
