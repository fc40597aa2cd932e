// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/danielhkuo/avatar-vote/auth"
	"github.com/danielhkuo/avatar-vote/cliparse"
	"github.com/danielhkuo/avatar-vote/hub"
	"github.com/danielhkuo/avatar-vote/ledger"
	"github.com/danielhkuo/avatar-vote/middleware"
	"github.com/danielhkuo/avatar-vote/models"
	"github.com/danielhkuo/avatar-vote/votelog"
	"github.com/danielhkuo/avatar-vote/webhook"
)

type AdminHandler struct {
	ledger   *ledger.Ledger
	log      *votelog.Recorder
	hub      *hub.Hub
	notifier *webhook.Notifier
	cfg      cliparse.Config
}

func NewAdminHandler(l *ledger.Ledger, rec *votelog.Recorder, h *hub.Hub, n *webhook.Notifier, cfg cliparse.Config) *AdminHandler {
	return &AdminHandler{ledger: l, log: rec, hub: h, notifier: n, cfg: cfg}
}

// Login handles POST /api/admin/login
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Password == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Missing password")
		return
	}

	if err := auth.CheckPassword(h.ledger.PasswordHash(), req.Password); err != nil {
		slog.Warn("rejected admin login", "remote", r.RemoteAddr)
		middleware.ErrorResponse(w, http.StatusUnauthorized, "密碼錯誤")
		return
	}

	token := auth.IssueToken(h.cfg.TokenSecret, time.Now())
	slog.Info("admin logged in", "remote", r.RemoteAddr)

	middleware.JSONResponse(w, http.StatusOK, models.LoginResponse{
		Success: true,
		Token:   token,
		Status:  h.ledger.Status(),
	})
}

// Cutoff handles POST /api/admin/cutoff
func (h *AdminHandler) Cutoff(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, models.StatusClosed)
}

// Reopen handles POST /api/admin/reopen
func (h *AdminHandler) Reopen(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, models.StatusOpen)
}

func (h *AdminHandler) setStatus(w http.ResponseWriter, status string) {
	if err := h.ledger.SetStatus(status); err != nil {
		slog.Error("failed to set status", "error", err, "status", status)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save status")
		return
	}

	h.hub.Publish(hub.EventStatusUpdate, hub.StatusUpdate{Status: status})
	slog.Info("voting status changed", "status", status)

	middleware.JSONResponse(w, http.StatusOK, models.StatusResponse{
		Success: true,
		Status:  status,
	})
}

// UpdateConfig handles POST /api/admin/config
func (h *AdminHandler) UpdateConfig(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateConfigRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	name, err := h.ledger.SetSiteName(req.SiteName)
	if err != nil {
		if errors.Is(err, ledger.ErrInvalidSiteName) {
			middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid siteName")
			return
		}
		slog.Error("failed to update site name", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save config")
		return
	}

	h.hub.Publish(hub.EventConfigUpdate, hub.ConfigUpdate{SiteName: name})
	slog.Info("site name updated", "site_name", name)

	middleware.JSONResponse(w, http.StatusOK, models.UpdateConfigResponse{
		Success:  true,
		SiteName: name,
	})
}

// GetLogs handles GET /api/admin/logs
func (h *AdminHandler) GetLogs(w http.ResponseWriter, r *http.Request) {
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		limit = 50
	}

	entries, total, hasMore := h.log.Query(offset, limit, h.ledger.ImageTitle)

	middleware.JSONResponse(w, http.StatusOK, models.LogsResponse{
		Logs:    entries,
		Total:   total,
		HasMore: hasMore,
	})
}

// TestWebhook handles POST /api/admin/webhook/test
func (h *AdminHandler) TestWebhook(w http.ResponseWriter, r *http.Request) {
	body, err := h.notifier.Test()
	if err != nil {
		if errors.Is(err, webhook.ErrNotConfigured) {
			middleware.ErrorResponse(w, http.StatusBadRequest, "Webhook URL not configured")
			return
		}
		slog.Warn("webhook test failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	middleware.JSONResponse(w, http.StatusOK, map[string]any{
		"success":         true,
		"webhookResponse": body,
	})
}
