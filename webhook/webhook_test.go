// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package webhook

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/danielhkuo/avatar-vote/models"
)

func TestNotify_DeliversPayload(t *testing.T) {
	received := make(chan Payload, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var p Payload
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			t.Errorf("bad payload: %v", err)
		}
		received <- p
	}))
	defer srv.Close()

	n := New(srv.URL, true)
	n.Notify(models.LogEntry{ImageID: "img1", Action: models.ActionAdded, NewCount: 4})

	select {
	case p := <-received:
		if p.Type != "vote" {
			t.Errorf("type = %s, want vote", p.Type)
		}
		if p.Data == nil || p.Data.ImageID != "img1" || p.Data.NewCount != 4 {
			t.Errorf("data = %+v", p.Data)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("notification never delivered")
	}
}

func TestNotify_DisabledDoesNothing(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	n := New(srv.URL, false)
	n.Notify(models.LogEntry{ImageID: "img1"})

	time.Sleep(50 * time.Millisecond)
	if calls.Load() != 0 {
		t.Error("disabled notifier made a request")
	}
	if n.Enabled() {
		t.Error("Enabled() = true for disabled notifier")
	}
}

func TestNotify_NeverBlocksOnDeadTarget(t *testing.T) {
	// Unroutable target: deliveries fail, Notify must still return fast.
	n := New("http://127.0.0.1:1/webhook", true)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 200; i++ {
			n.Notify(models.LogEntry{ImageID: "img1"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Notify blocked the caller")
	}
}

func TestTest_ReportsOutcome(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var p Payload
		json.NewDecoder(r.Body).Decode(&p)
		if p.Type != "test" {
			t.Errorf("type = %s, want test", p.Type)
		}
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	n := New(srv.URL, true)
	body, err := n.Test()
	if err != nil {
		t.Fatalf("Test() error = %v", err)
	}
	if body != `{"ok":true}` {
		t.Errorf("body = %s", body)
	}
}

func TestTest_FailureStatuses(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	if _, err := New(srv.URL, true).Test(); err == nil {
		t.Error("expected error for HTTP 502")
	}

	if _, err := New("", false).Test(); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("error = %v, want ErrNotConfigured", err)
	}
}
