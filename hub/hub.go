// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package hub

import (
	"encoding/json"
	"log/slog"

	"github.com/gorilla/websocket"

	"github.com/danielhkuo/avatar-vote/models"
)

// Event names pushed to connected clients.
const (
	EventDataSync     = "data:sync"
	EventVotesUpdate  = "votes:update"
	EventVoteLog      = "vote:log"
	EventDataUpdate   = "data:update"
	EventStatusUpdate = "status:update"
	EventConfigUpdate = "config:update"
)

// data:update subtypes
const (
	TypeImageAdded   = "image:added"
	TypeImageDeleted = "image:deleted"
)

// Event is the wire envelope for every pushed message.
type Event struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// VotesUpdate announces one changed tally.
type VotesUpdate struct {
	ImageID     string `json:"imageId"`
	NewCount    int    `json:"newCount"`
	TotalVoters int    `json:"totalVoters"`
}

// DataUpdate announces a gallery change with the full image+vote state, so
// clients don't need a follow-up fetch.
type DataUpdate struct {
	Type    string         `json:"type"`
	Image   *models.Image  `json:"image,omitempty"`
	ImageID string         `json:"imageId,omitempty"`
	Images  []models.Image `json:"images"`
	Votes   map[string]int `json:"votes"`
}

// StatusUpdate announces an open/closed flip.
type StatusUpdate struct {
	Status string `json:"status"`
}

// ConfigUpdate announces a site name change.
type ConfigUpdate struct {
	SiteName string `json:"siteName"`
}

// Client is one connected session. The hub only ever writes and closes.
type Client interface {
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// Hub fans events out to every connected client. The run loop owns the
// client set, so registration, removal, and broadcast never race. Delivery
// is at-most-once: a client that fails a write is closed and dropped, and
// re-syncs on reconnect.
type Hub struct {
	clients    map[Client]bool
	broadcast  chan []byte
	register   chan Client
	unregister chan Client
}

func New() *Hub {
	return &Hub{
		clients:    make(map[Client]bool),
		broadcast:  make(chan []byte, 256),
		register:   make(chan Client),
		unregister: make(chan Client),
	}
}

// Run processes registrations and broadcasts until the process exits.
// Call it once, in its own goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				client.Close()
			}
		case message := <-h.broadcast:
			for client := range h.clients {
				if err := client.WriteMessage(websocket.TextMessage, message); err != nil {
					slog.Warn("dropping client after failed write", "error", err)
					client.Close()
					delete(h.clients, client)
				}
			}
		}
	}
}

// Register adds a client to the fan-out set.
func (h *Hub) Register(client Client) {
	h.register <- client
}

// Unregister removes and closes a client.
func (h *Hub) Unregister(client Client) {
	h.unregister <- client
}

// Publish broadcasts one event to every connected client. It never blocks
// the caller: if the broadcast queue is full the event is dropped, which
// at-most-once delivery permits.
func (h *Hub) Publish(event string, data any) {
	raw, err := json.Marshal(Event{Event: event, Data: data})
	if err != nil {
		slog.Error("failed to encode event", "event", event, "error", err)
		return
	}

	select {
	case h.broadcast <- raw:
	default:
		slog.Warn("broadcast queue full, dropping event", "event", event)
	}
}

// Marshal encodes an event envelope for direct delivery to one client
// (the connect-time data:sync).
func Marshal(event string, data any) ([]byte, error) {
	return json.Marshal(Event{Event: event, Data: data})
}
