package services

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
)

type FeedClient struct {
	Conn *websocket.Conn
}

// FeedHub pushes the listing-changed event to connected browsers so already
// rendered listing pages know to refetch.
type FeedHub struct {
	mu      sync.RWMutex
	clients map[*FeedClient]struct{}
}

func NewFeedHub() *FeedHub {
	return &FeedHub{clients: make(map[*FeedClient]struct{})}
}

func (h *FeedHub) Register(c *FeedClient) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
}

func (h *FeedHub) Unregister(c *FeedClient) {
	h.mu.Lock()
	delete(h.clients, c)
	h.mu.Unlock()
	_ = c.Conn.Close()
}

// Len reports how many clients are connected.
func (h *FeedHub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// MealsChanged broadcasts the invalidation event to every client.
func (h *FeedHub) MealsChanged() {
	msg, _ := json.Marshal(map[string]any{"kind": "meals.changed"})
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		_ = c.Conn.WriteMessage(websocket.TextMessage, msg)
	}
}
