// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/avatar-vote/ledger"
	"github.com/danielhkuo/avatar-vote/middleware"
	"github.com/danielhkuo/avatar-vote/models"
)

type DataHandler struct {
	ledger *ledger.Ledger
}

func NewDataHandler(l *ledger.Ledger) *DataHandler {
	return &DataHandler{ledger: l}
}

// GetData handles GET /api/data
func (h *DataHandler) GetData(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.ledger.ClientData())
}

// GetConfig handles GET /api/config
func (h *DataHandler) GetConfig(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.ConfigResponse{
		SiteName: h.ledger.SiteName(),
	})
}

// GetStats handles GET /api/stats
func (h *DataHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.ledger.Stats())
}
