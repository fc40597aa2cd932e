// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/avatar-vote/models"
	"github.com/danielhkuo/avatar-vote/testutil"
)

func TestToggleVote_Handler(t *testing.T) {
	l, rec, h, n := testutil.SetupTestEnv(t)
	handler := NewVotingHandler(l, rec, h, n)

	// First toggle adds
	req := testutil.MakeRequest("POST", "/api/vote",
		models.ToggleVoteRequest{ImageID: "default_1", VisitorID: "v1"}, nil)
	w := httptest.NewRecorder()
	handler.ToggleVote(w, req)

	testutil.AssertStatus(t, w, 200)
	var resp models.ToggleVoteResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Action != models.ActionAdded || resp.NewCount != 1 {
		t.Errorf("got action=%s count=%d, want added/1", resp.Action, resp.NewCount)
	}
	if len(resp.UserVotes) != 1 || resp.UserVotes[0] != "default_1" {
		t.Errorf("userVotes = %v", resp.UserVotes)
	}

	// Second toggle removes
	req = testutil.MakeRequest("POST", "/api/vote",
		models.ToggleVoteRequest{ImageID: "default_1", VisitorID: "v1"}, nil)
	w = httptest.NewRecorder()
	handler.ToggleVote(w, req)

	testutil.AssertStatus(t, w, 200)
	testutil.AssertJSON(t, w, &resp)
	if resp.Action != models.ActionRemoved || resp.NewCount != 0 {
		t.Errorf("got action=%s count=%d, want removed/0", resp.Action, resp.NewCount)
	}

	// Both toggles were logged
	if rec.Len() != 2 {
		t.Errorf("recorded %d log entries, want 2", rec.Len())
	}
}

func TestToggleVote_Handler_Failures(t *testing.T) {
	l, rec, h, n := testutil.SetupTestEnv(t)
	handler := NewVotingHandler(l, rec, h, n)

	// Fill v1 to the limit
	for _, id := range []string{"default_1", "default_2", "default_3"} {
		req := testutil.MakeRequest("POST", "/api/vote",
			models.ToggleVoteRequest{ImageID: id, VisitorID: "v1"}, nil)
		handler.ToggleVote(httptest.NewRecorder(), req)
	}
	img, err := l.AddImage("http://example.com/extra.png", "extra")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name       string
		body       any
		wantStatus int
	}{
		{"missing fields", models.ToggleVoteRequest{ImageID: "default_1"}, 400},
		{"unknown image", models.ToggleVoteRequest{ImageID: "nope", VisitorID: "v1"}, 404},
		{"vote limit", models.ToggleVoteRequest{ImageID: img.ID, VisitorID: "v1"}, 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/api/vote", tt.body, nil)
			w := httptest.NewRecorder()
			handler.ToggleVote(w, req)
			testutil.AssertStatus(t, w, tt.wantStatus)
		})
	}

	t.Run("voting closed", func(t *testing.T) {
		if err := l.SetStatus(models.StatusClosed); err != nil {
			t.Fatal(err)
		}
		req := testutil.MakeRequest("POST", "/api/vote",
			models.ToggleVoteRequest{ImageID: "default_1", VisitorID: "v2"}, nil)
		w := httptest.NewRecorder()
		handler.ToggleVote(w, req)
		testutil.AssertStatus(t, w, 403)
	})
}

func TestGetUserVotes_Handler(t *testing.T) {
	l, rec, h, n := testutil.SetupTestEnv(t)
	handler := NewVotingHandler(l, rec, h, n)

	l.ToggleVote("v1", "default_2")

	req := testutil.MakeRequest("GET", "/api/user/v1", nil, nil)
	req.SetPathValue("visitorId", "v1")
	w := httptest.NewRecorder()
	handler.GetUserVotes(w, req)

	testutil.AssertStatus(t, w, 200)
	var resp models.UserVotesResponse
	testutil.AssertJSON(t, w, &resp)
	if len(resp.UserVotes) != 1 || resp.UserVotes[0] != "default_2" {
		t.Errorf("userVotes = %v", resp.UserVotes)
	}

	// Unknown visitor gets an empty list, not null
	req = testutil.MakeRequest("GET", "/api/user/ghost", nil, nil)
	req.SetPathValue("visitorId", "ghost")
	w = httptest.NewRecorder()
	handler.GetUserVotes(w, req)

	testutil.AssertStatus(t, w, 200)
	if body := w.Body.String(); body != "{\"userVotes\":[]}\n" {
		t.Errorf("body = %q, want empty array", body)
	}
}
