// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/avatar-vote/hub"
	"github.com/danielhkuo/avatar-vote/ledger"
	"github.com/danielhkuo/avatar-vote/middleware"
	"github.com/danielhkuo/avatar-vote/models"
)

type ImageHandler struct {
	ledger *ledger.Ledger
	hub    *hub.Hub
}

func NewImageHandler(l *ledger.Ledger, h *hub.Hub) *ImageHandler {
	return &ImageHandler{ledger: l, hub: h}
}

// AddImage handles POST /api/images
func (h *ImageHandler) AddImage(w http.ResponseWriter, r *http.Request) {
	var req models.AddImageRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if strings.TrimSpace(req.URL) == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Missing url")
		return
	}

	img, err := h.ledger.AddImage(req.URL, req.Title)
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrVotingClosed):
			middleware.ErrorResponse(w, http.StatusForbidden, "投票已結束，無法添加圖片")
		case errors.Is(err, ledger.ErrDuplicateURL):
			middleware.ErrorResponse(w, http.StatusBadRequest, "此圖片已存在")
		default:
			slog.Error("failed to add image", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save image")
		}
		return
	}

	data := h.ledger.ClientData()
	h.hub.Publish(hub.EventDataUpdate, hub.DataUpdate{
		Type:   hub.TypeImageAdded,
		Image:  &img,
		Images: data.Images,
		Votes:  data.Votes,
	})

	slog.Info("image added", "image_id", img.ID, "title", img.Title)

	middleware.JSONResponse(w, http.StatusOK, models.AddImageResponse{
		Success: true,
		Image:   img,
	})
}

// DeleteImage handles DELETE /api/images/{id}
func (h *ImageHandler) DeleteImage(w http.ResponseWriter, r *http.Request) {
	imageID := r.PathValue("id")
	if imageID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id is required")
		return
	}

	if err := h.ledger.DeleteImage(imageID); err != nil {
		switch {
		case errors.Is(err, ledger.ErrVotingClosed):
			middleware.ErrorResponse(w, http.StatusForbidden, "投票已結束，無法刪除圖片")
		case errors.Is(err, ledger.ErrImageNotFound):
			middleware.ErrorResponse(w, http.StatusNotFound, "Image not found")
		default:
			slog.Error("failed to delete image", "error", err, "image_id", imageID)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete image")
		}
		return
	}

	data := h.ledger.ClientData()
	h.hub.Publish(hub.EventDataUpdate, hub.DataUpdate{
		Type:    hub.TypeImageDeleted,
		ImageID: imageID,
		Images:  data.Images,
		Votes:   data.Votes,
	})

	slog.Info("image deleted", "image_id", imageID)

	middleware.JSONResponse(w, http.StatusOK, map[string]bool{"success": true})
}
