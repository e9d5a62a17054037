package progress

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Hub keeps one websocket connection per user and fans progress events
// out to everyone watching a project.
type Hub struct {
	mutex       sync.RWMutex
	connections map[int64]*websocket.Conn
	watching    map[int64]map[int64]bool // projectID -> userIDs
}

func NewHub() *Hub {
	return &Hub{
		connections: make(map[int64]*websocket.Conn),
		watching:    make(map[int64]map[int64]bool),
	}
}

func (h *Hub) Register(userID, projectID int64, conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if oldConn, exists := h.connections[userID]; exists && oldConn != nil {
		_ = oldConn.Close()
	}
	h.connections[userID] = conn

	if h.watching[projectID] == nil {
		h.watching[projectID] = make(map[int64]bool)
	}
	h.watching[projectID][userID] = true
}

func (h *Hub) Unregister(userID int64) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if conn, exists := h.connections[userID]; exists && conn != nil {
		_ = conn.Close()
		delete(h.connections, userID)
	}
	for _, watchers := range h.watching {
		delete(watchers, userID)
	}
}

func (h *Hub) Broadcast(projectID int64, event Event) {
	h.mutex.RLock()
	conns := make(map[int64]*websocket.Conn)
	for userID := range h.watching[projectID] {
		if conn, ok := h.connections[userID]; ok && conn != nil {
			conns[userID] = conn
		}
	}
	h.mutex.RUnlock()

	for userID, conn := range conns {
		if err := conn.WriteJSON(event); err != nil {
			h.Unregister(userID)
		}
	}
}

func (h *Hub) IsOnline(userID int64) bool {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	_, exists := h.connections[userID]
	return exists
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for userID, conn := range h.connections {
		if conn != nil {
			_ = conn.Close()
		}
		delete(h.connections, userID)
	}
	for projectID := range h.watching {
		delete(h.watching, projectID)
	}
}
