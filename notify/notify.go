// Package notify pushes toast messages to connected clients. Delivery is
// best-effort: callers never learn whether a toast arrived.
package notify

import (
	"log"
	"net/http"
	"sync"
	"time"

	"electrofusion/middleware"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
)

// Toast mirrors the UI's toast payload.
type Toast struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Variant     string `json:"variant,omitempty"` // "" or "destructive"
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Hub tracks one websocket connection per user.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*websocket.Conn
}

func NewHub() *Hub {
	return &Hub{clients: make(map[string]*websocket.Conn)}
}

// HandleWebSocket upgrades the request and parks the connection until the
// client goes away.
func (h *Hub) HandleWebSocket(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := middleware.UserIDFromContext(r.Context())
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("notify: upgrade failed:", err)
		return
	}

	h.mu.Lock()
	if old, ok := h.clients[userID]; ok {
		old.Close()
	}
	h.clients[userID] = conn
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		if h.clients[userID] == conn {
			delete(h.clients, userID)
		}
		h.mu.Unlock()
		conn.Close()
	}()

	go func() {
		ticker := time.NewTicker(30 * time.Second)
		defer ticker.Stop()
		for range ticker.C {
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(5*time.Second)); err != nil {
				return
			}
		}
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}

// Push sends a toast to the user's connection, if any. Errors drop the
// connection and are otherwise ignored.
func (h *Hub) Push(userID string, toast Toast) {
	h.mu.RLock()
	conn, ok := h.clients[userID]
	h.mu.RUnlock()
	if !ok {
		return
	}

	if err := conn.WriteJSON(toast); err != nil {
		h.mu.Lock()
		if h.clients[userID] == conn {
			delete(h.clients, userID)
		}
		h.mu.Unlock()
		conn.Close()
	}
}

// Stop closes all connections. Called on server shutdown.
func (h *Hub) Stop() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, conn := range h.clients {
		conn.Close()
		delete(h.clients, id)
	}
}
