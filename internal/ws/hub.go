// Package ws fans chat updates out to connected UI clients over
// WebSocket, so status flips and message arrivals render live.
package ws

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/adesai/chatwave/backend/internal/model/chat"
)

// ChatEvent is the frame pushed to clients whenever a chat changes.
type ChatEvent struct {
	Event string    `json:"event"`
	Chat  chat.Chat `json:"chat"`
}

// Hub manages WebSocket connections and broadcasts chat updates.
type Hub struct {
	clients    map[*Client]bool
	clientsMu  sync.RWMutex
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
}

// NewHub creates a new Hub. Call Run on its own goroutine.
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 256),
	}
}

// Run starts the hub's main loop.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clientsMu.Lock()
			h.clients[client] = true
			h.clientsMu.Unlock()
			log.Printf("[ws] client connected: %s", client.conn.RemoteAddr())

		case client := <-h.unregister:
			h.clientsMu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.clientsMu.Unlock()
			log.Printf("[ws] client disconnected: %s", client.conn.RemoteAddr())

		case msg := <-h.broadcast:
			h.clientsMu.RLock()
			for client := range h.clients {
				select {
				case client.send <- msg:
				default:
					// Client buffer full, drop the connection.
					go func(c *Client) { h.unregister <- c }(client)
				}
			}
			h.clientsMu.RUnlock()
		}
	}
}

// Register adds a client and starts its pumps.
func (h *Hub) Register(client *Client) {
	h.register <- client
	go client.writePump()
	go client.readPump()
}

// ChatUpdated implements the chat service's Notifier: every mutation of
// a chat is serialized once and broadcast to all clients.
func (h *Hub) ChatUpdated(c chat.Chat) {
	data, err := json.Marshal(ChatEvent{Event: "chat", Chat: c})
	if err != nil {
		log.Printf("[ws] failed to marshal chat event: %v", err)
		return
	}
	select {
	case h.broadcast <- data:
	default:
		log.Printf("[ws] broadcast queue full, dropping chat event for %s", c.ID)
	}
}
