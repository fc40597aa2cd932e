// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/avatar-vote/models"
	"github.com/danielhkuo/avatar-vote/testutil"
)

func TestAddImage_Handler(t *testing.T) {
	l, _, h, _ := testutil.SetupTestEnv(t)
	handler := NewImageHandler(l, h)

	req := testutil.MakeRequest("POST", "/api/images",
		models.AddImageRequest{URL: "http://example.com/new.png", Title: "fresh"}, nil)
	w := httptest.NewRecorder()
	handler.AddImage(w, req)

	testutil.AssertStatus(t, w, 200)
	var resp models.AddImageResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Image.ID == "" || resp.Image.Title != "fresh" {
		t.Errorf("image = %+v", resp.Image)
	}

	// The gallery now holds four images
	if got := len(l.ClientData().Images); got != 4 {
		t.Errorf("gallery size = %d, want 4", got)
	}
}

func TestAddImage_Handler_Failures(t *testing.T) {
	l, _, h, _ := testutil.SetupTestEnv(t)
	handler := NewImageHandler(l, h)

	tests := []struct {
		name       string
		body       any
		wantStatus int
	}{
		{"missing url", models.AddImageRequest{Title: "no url"}, 400},
		{"blank url", models.AddImageRequest{URL: "   "}, 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/api/images", tt.body, nil)
			w := httptest.NewRecorder()
			handler.AddImage(w, req)
			testutil.AssertStatus(t, w, tt.wantStatus)
		})
	}

	t.Run("duplicate url", func(t *testing.T) {
		body := models.AddImageRequest{URL: "http://example.com/dup.png"}
		handler.AddImage(httptest.NewRecorder(), testutil.MakeRequest("POST", "/api/images", body, nil))

		w := httptest.NewRecorder()
		handler.AddImage(w, testutil.MakeRequest("POST", "/api/images", body, nil))
		testutil.AssertStatus(t, w, 400)
	})

	t.Run("voting closed", func(t *testing.T) {
		if err := l.SetStatus(models.StatusClosed); err != nil {
			t.Fatal(err)
		}
		req := testutil.MakeRequest("POST", "/api/images",
			models.AddImageRequest{URL: "http://example.com/late.png"}, nil)
		w := httptest.NewRecorder()
		handler.AddImage(w, req)
		testutil.AssertStatus(t, w, 403)
	})
}

func TestDeleteImage_Handler(t *testing.T) {
	l, _, h, _ := testutil.SetupTestEnv(t)
	handler := NewImageHandler(l, h)

	l.ToggleVote("v1", "default_1")

	req := testutil.MakeRequest("DELETE", "/api/images/default_1", nil, nil)
	req.SetPathValue("id", "default_1")
	w := httptest.NewRecorder()
	handler.DeleteImage(w, req)

	testutil.AssertStatus(t, w, 200)
	if got := len(l.ClientData().Images); got != 2 {
		t.Errorf("gallery size = %d, want 2", got)
	}
	if votes := l.UserVotes("v1"); len(votes) != 0 {
		t.Errorf("v1 still holds votes for deleted image: %v", votes)
	}

	// Deleting again is a 404
	req = testutil.MakeRequest("DELETE", "/api/images/default_1", nil, nil)
	req.SetPathValue("id", "default_1")
	w = httptest.NewRecorder()
	handler.DeleteImage(w, req)
	testutil.AssertStatus(t, w, 404)
}
