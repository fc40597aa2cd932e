// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/danielhkuo/avatar-vote/auth"
	"github.com/danielhkuo/avatar-vote/cliparse"
	"github.com/danielhkuo/avatar-vote/hub"
	"github.com/danielhkuo/avatar-vote/ledger"
	"github.com/danielhkuo/avatar-vote/store"
	"github.com/danielhkuo/avatar-vote/votelog"
	"github.com/danielhkuo/avatar-vote/webhook"
)

// TestTokenSecret signs admin tokens in tests.
const TestTokenSecret = "test-token-secret"

// TestAdminPassword is the admin password baked into test ledgers.
const TestAdminPassword = "test-password"

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          3000,
		DataFile:      "data.json",
		AdminPassword: TestAdminPassword,
		TokenSecret:   TestTokenSecret,
	}
}

// SetupTestLedger loads a ledger over a fresh temp data file with the three
// default images and the test admin password hashed in.
func SetupTestLedger(t *testing.T) *ledger.Ledger {
	t.Helper()

	path := filepath.Join(t.TempDir(), "data.json")
	l, err := ledger.Load(store.New(path))
	if err != nil {
		t.Fatalf("Failed to load test ledger: %v", err)
	}

	hash, err := auth.HashPassword(TestAdminPassword)
	if err != nil {
		t.Fatalf("Failed to hash test password: %v", err)
	}
	if err := l.SetPasswordHash(hash); err != nil {
		t.Fatalf("Failed to store test password hash: %v", err)
	}

	return l
}

// SetupTestEnv builds the full dependency set for handler tests: ledger,
// recorder, running hub, and a disabled webhook notifier.
func SetupTestEnv(t *testing.T) (*ledger.Ledger, *votelog.Recorder, *hub.Hub, *webhook.Notifier) {
	t.Helper()

	l := SetupTestLedger(t)
	rec := votelog.New()
	h := hub.New()
	go h.Run()
	n := webhook.New("", false)

	return l, rec, h, n
}

// AdminToken issues a valid bearer token for admin endpoints.
func AdminToken() string {
	return auth.IssueToken(TestTokenSecret, time.Now())
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AuthHeader builds the Authorization header map for admin requests.
func AuthHeader(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
