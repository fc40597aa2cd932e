// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/danielhkuo/avatar-vote/hub"
	"github.com/danielhkuo/avatar-vote/ledger"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WebSocketHandler upgrades connections and feeds them to the hub.
type WebSocketHandler struct {
	hub    *hub.Hub
	ledger *ledger.Ledger
}

func NewWebSocketHandler(h *hub.Hub, l *ledger.Ledger) *WebSocketHandler {
	return &WebSocketHandler{hub: h, ledger: l}
}

// ServeHTTP implements the http.Handler interface
func (h *WebSocketHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("websocket upgrade failed", "error", err)
		return
	}

	// Sync the late joiner before it enters the fan-out set, so the first
	// message it sees is always the full current state.
	sync, err := hub.Marshal(hub.EventDataSync, h.ledger.ClientData())
	if err != nil {
		slog.Error("failed to encode data sync", "error", err)
		conn.Close()
		return
	}
	if err := conn.WriteMessage(websocket.TextMessage, sync); err != nil {
		conn.Close()
		return
	}

	h.hub.Register(conn)
	slog.Info("client connected", "remote", conn.RemoteAddr())

	defer func() {
		h.hub.Unregister(conn)
		slog.Info("client disconnected", "remote", conn.RemoteAddr())
	}()

	// Keep the connection alive until the client goes away. Inbound
	// messages are ignored; the socket is server-push only.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
