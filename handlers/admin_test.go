// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/danielhkuo/avatar-vote/auth"
	"github.com/danielhkuo/avatar-vote/models"
	"github.com/danielhkuo/avatar-vote/testutil"
)

func TestLogin(t *testing.T) {
	l, rec, h, n := testutil.SetupTestEnv(t)
	handler := NewAdminHandler(l, rec, h, n, testutil.GetTestConfig())

	t.Run("correct password", func(t *testing.T) {
		req := testutil.MakeRequest("POST", "/api/admin/login",
			models.LoginRequest{Password: testutil.TestAdminPassword}, nil)
		w := httptest.NewRecorder()
		handler.Login(w, req)

		testutil.AssertStatus(t, w, 200)
		var resp models.LoginResponse
		testutil.AssertJSON(t, w, &resp)
		if resp.Token == "" {
			t.Fatal("no token returned")
		}
		if resp.Status != models.StatusOpen {
			t.Errorf("status = %s, want open", resp.Status)
		}
		// The issued token must verify against the configured secret
		if err := auth.VerifyToken(testutil.TestTokenSecret, resp.Token, time.Now()); err != nil {
			t.Errorf("issued token does not verify: %v", err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		req := testutil.MakeRequest("POST", "/api/admin/login",
			models.LoginRequest{Password: "wrong"}, nil)
		w := httptest.NewRecorder()
		handler.Login(w, req)
		testutil.AssertStatus(t, w, 401)
	})

	t.Run("missing password", func(t *testing.T) {
		req := testutil.MakeRequest("POST", "/api/admin/login",
			models.LoginRequest{}, nil)
		w := httptest.NewRecorder()
		handler.Login(w, req)
		testutil.AssertStatus(t, w, 400)
	})
}

func TestCutoffAndReopen(t *testing.T) {
	l, rec, h, n := testutil.SetupTestEnv(t)
	handler := NewAdminHandler(l, rec, h, n, testutil.GetTestConfig())

	w := httptest.NewRecorder()
	handler.Cutoff(w, testutil.MakeRequest("POST", "/api/admin/cutoff", nil, nil))
	testutil.AssertStatus(t, w, 200)

	var resp models.StatusResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Status != models.StatusClosed {
		t.Errorf("status = %s, want closed", resp.Status)
	}
	if l.Status() != models.StatusClosed {
		t.Error("ledger status not closed")
	}

	// A vote while closed fails; after reopen it succeeds
	if _, err := l.ToggleVote("v1", "default_1"); err == nil {
		t.Error("vote succeeded while closed")
	}

	w = httptest.NewRecorder()
	handler.Reopen(w, testutil.MakeRequest("POST", "/api/admin/reopen", nil, nil))
	testutil.AssertStatus(t, w, 200)
	if _, err := l.ToggleVote("v1", "default_1"); err != nil {
		t.Errorf("vote failed after reopen: %v", err)
	}
}

func TestUpdateConfig(t *testing.T) {
	l, rec, h, n := testutil.SetupTestEnv(t)
	handler := NewAdminHandler(l, rec, h, n, testutil.GetTestConfig())

	tests := []struct {
		name       string
		siteName   string
		wantStatus int
		wantName   string
	}{
		{"plain", "Spring Festival Vote", 200, "Spring Festival Vote"},
		{"trimmed", "  padded  ", 200, "padded"},
		{"truncated", strings.Repeat("n", 80), 200, strings.Repeat("n", 50)},
		{"blank", "   ", 400, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/api/admin/config",
				models.UpdateConfigRequest{SiteName: tt.siteName}, nil)
			w := httptest.NewRecorder()
			handler.UpdateConfig(w, req)

			testutil.AssertStatus(t, w, tt.wantStatus)
			if tt.wantStatus == 200 {
				var resp models.UpdateConfigResponse
				testutil.AssertJSON(t, w, &resp)
				if resp.SiteName != tt.wantName {
					t.Errorf("siteName = %q, want %q", resp.SiteName, tt.wantName)
				}
			}
		})
	}
}

func TestGetLogs(t *testing.T) {
	l, rec, h, n := testutil.SetupTestEnv(t)
	adminHandler := NewAdminHandler(l, rec, h, n, testutil.GetTestConfig())
	votingHandler := NewVotingHandler(l, rec, h, n)

	// Generate six log entries through the real vote path
	for i := 0; i < 3; i++ {
		for _, id := range []string{"default_1", "default_2"} {
			req := testutil.MakeRequest("POST", "/api/vote",
				models.ToggleVoteRequest{ImageID: id, VisitorID: "v1"}, nil)
			votingHandler.ToggleVote(httptest.NewRecorder(), req)
		}
	}

	req := testutil.MakeRequest("GET", "/api/admin/logs?offset=0&limit=4", nil, nil)
	w := httptest.NewRecorder()
	adminHandler.GetLogs(w, req)

	testutil.AssertStatus(t, w, 200)
	var resp models.LogsResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Total != 6 {
		t.Errorf("total = %d, want 6", resp.Total)
	}
	if len(resp.Logs) != 4 {
		t.Errorf("page size = %d, want 4", len(resp.Logs))
	}
	if !resp.HasMore {
		t.Error("hasMore = false, want true")
	}
	// Entries carry current titles
	if resp.Logs[0].ImageTitle == "" {
		t.Error("log entry missing image title")
	}

	// Second page exhausts the log
	req = testutil.MakeRequest("GET", "/api/admin/logs?offset=4&limit=4", nil, nil)
	w = httptest.NewRecorder()
	adminHandler.GetLogs(w, req)
	testutil.AssertJSON(t, w, &resp)
	if len(resp.Logs) != 2 || resp.HasMore {
		t.Errorf("second page: len=%d hasMore=%v, want 2/false", len(resp.Logs), resp.HasMore)
	}
}

func TestTestWebhook_NotConfigured(t *testing.T) {
	l, rec, h, n := testutil.SetupTestEnv(t)
	handler := NewAdminHandler(l, rec, h, n, testutil.GetTestConfig())

	w := httptest.NewRecorder()
	handler.TestWebhook(w, testutil.MakeRequest("POST", "/api/admin/webhook/test", nil, nil))
	testutil.AssertStatus(t, w, 400)
}
