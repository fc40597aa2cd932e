// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/avatar-vote/hub"
	"github.com/danielhkuo/avatar-vote/ledger"
	"github.com/danielhkuo/avatar-vote/middleware"
	"github.com/danielhkuo/avatar-vote/models"
	"github.com/danielhkuo/avatar-vote/votelog"
	"github.com/danielhkuo/avatar-vote/webhook"
)

type VotingHandler struct {
	ledger   *ledger.Ledger
	log      *votelog.Recorder
	hub      *hub.Hub
	notifier *webhook.Notifier
}

func NewVotingHandler(l *ledger.Ledger, rec *votelog.Recorder, h *hub.Hub, n *webhook.Notifier) *VotingHandler {
	return &VotingHandler{ledger: l, log: rec, hub: h, notifier: n}
}

// ToggleVote handles POST /api/vote
func (h *VotingHandler) ToggleVote(w http.ResponseWriter, r *http.Request) {
	// Parse request
	var req models.ToggleVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.ImageID == "" || req.VisitorID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Missing imageId or visitorId")
		return
	}

	res, err := h.ledger.ToggleVote(req.VisitorID, req.ImageID)
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrVotingClosed):
			middleware.ErrorResponse(w, http.StatusForbidden, "投票已結束")
		case errors.Is(err, ledger.ErrImageNotFound):
			middleware.ErrorResponse(w, http.StatusNotFound, "Image not found")
		case errors.Is(err, ledger.ErrVoteLimitExceeded):
			middleware.ErrorResponse(w, http.StatusBadRequest, "最多只能投 3 票")
		default:
			slog.Error("failed to toggle vote", "error", err, "visitor_id", req.VisitorID)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save vote")
		}
		return
	}

	entry := models.LogEntry{
		Timestamp:      res.Timestamp,
		UserID:         req.VisitorID,
		ImageID:        req.ImageID,
		ImageTitle:     res.ImageTitle,
		Action:         res.Action,
		NewCount:       res.NewCount,
		Rank:           res.Rank,
		UserTotalVotes: res.UserTotalVotes,
	}
	h.log.Record(entry)

	// Fan out the new tally, then the log entry for admin views
	h.hub.Publish(hub.EventVotesUpdate, hub.VotesUpdate{
		ImageID:     req.ImageID,
		NewCount:    res.NewCount,
		TotalVoters: res.TotalVoters,
	})
	h.hub.Publish(hub.EventVoteLog, entry)

	// Webhook fires only on added votes, off the request path
	if res.Action == models.ActionAdded {
		h.notifier.Notify(entry)
	}

	slog.Info("vote toggled",
		"visitor_id", req.VisitorID,
		"image_id", req.ImageID,
		"action", res.Action,
		"new_count", res.NewCount,
	)

	middleware.JSONResponse(w, http.StatusOK, models.ToggleVoteResponse{
		Success:   true,
		Action:    res.Action,
		NewCount:  res.NewCount,
		UserVotes: res.UserVotes,
	})
}

// GetUserVotes handles GET /api/user/{visitorId}
func (h *VotingHandler) GetUserVotes(w http.ResponseWriter, r *http.Request) {
	visitorID := r.PathValue("visitorId")
	if visitorID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "visitorId is required")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.UserVotesResponse{
		UserVotes: h.ledger.UserVotes(visitorID),
	})
}
