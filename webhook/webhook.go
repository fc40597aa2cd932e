// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package webhook

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/avatar-vote/models"
)

var ErrNotConfigured = errors.New("webhook url not configured")

// Payload is the JSON document POSTed to the webhook target.
type Payload struct {
	Type      string           `json:"type"`
	Data      *models.LogEntry `json:"data,omitempty"`
	Message   string           `json:"message,omitempty"`
	Timestamp time.Time        `json:"timestamp"`
}

// Notifier delivers vote notifications to an external automation listener.
// Delivery is asynchronous and best-effort: Notify hands the event to a
// worker goroutine and returns immediately, and failures are logged, never
// surfaced to the voter.
type Notifier struct {
	url     string
	enabled bool
	client  *http.Client
	queue   chan Payload
}

func New(url string, enabled bool) *Notifier {
	n := &Notifier{
		url:     url,
		enabled: enabled && url != "",
		client:  &http.Client{Timeout: 10 * time.Second},
		queue:   make(chan Payload, 64),
	}
	if n.enabled {
		go n.run()
	}
	return n
}

// Enabled reports whether vote notifications fire.
func (n *Notifier) Enabled() bool {
	return n.enabled
}

// Notify queues a vote notification. A full queue drops the event rather
// than delaying the vote path.
func (n *Notifier) Notify(entry models.LogEntry) {
	if !n.enabled {
		return
	}

	p := Payload{Type: "vote", Data: &entry, Timestamp: time.Now()}
	select {
	case n.queue <- p:
	default:
		slog.Warn("webhook queue full, dropping notification", "image_id", entry.ImageID)
	}
}

// Test sends a synchronous test payload, for the admin webhook-test
// endpoint. Unlike Notify it reports the outcome.
func (n *Notifier) Test() (string, error) {
	if n.url == "" {
		return "", ErrNotConfigured
	}
	return n.send(Payload{
		Type:      "test",
		Message:   "Webhook test from voting server",
		Timestamp: time.Now(),
	})
}

func (n *Notifier) run() {
	for p := range n.queue {
		if _, err := n.send(p); err != nil {
			slog.Warn("webhook notification failed", "error", err)
		}
	}
}

func (n *Notifier) send(p Payload) (string, error) {
	body, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("failed to encode webhook payload: %w", err)
	}

	resp, err := n.client.Post(n.url, "application/json", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("webhook request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("webhook returned HTTP %d: %s", resp.StatusCode, respBody)
	}
	return string(respBody), nil
}
