// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/avatar-vote/cliparse"
	"github.com/danielhkuo/avatar-vote/handlers"
	"github.com/danielhkuo/avatar-vote/hub"
	"github.com/danielhkuo/avatar-vote/ledger"
	"github.com/danielhkuo/avatar-vote/middleware"
	"github.com/danielhkuo/avatar-vote/votelog"
	"github.com/danielhkuo/avatar-vote/webhook"
)

func NewRouter(l *ledger.Ledger, rec *votelog.Recorder, h *hub.Hub, n *webhook.Notifier, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	votingHandler := handlers.NewVotingHandler(l, rec, h, n)
	imageHandler := handlers.NewImageHandler(l, h)
	dataHandler := handlers.NewDataHandler(l)
	adminHandler := handlers.NewAdminHandler(l, rec, h, n, cfg)
	wsHandler := handlers.NewWebSocketHandler(h, l)
	proxyHandler := handlers.NewProxyHandler()

	admin := func(next http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.RequireAdmin(cfg.TokenSecret, next))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Public voting operations
	mux.HandleFunc("GET /api/data", middleware.WithLogging(dataHandler.GetData))
	mux.HandleFunc("GET /api/config", middleware.WithLogging(dataHandler.GetConfig))
	mux.HandleFunc("GET /api/stats", middleware.WithLogging(dataHandler.GetStats))
	mux.HandleFunc("GET /api/user/{visitorId}", middleware.WithLogging(votingHandler.GetUserVotes))
	mux.HandleFunc("POST /api/vote", middleware.WithLogging(votingHandler.ToggleVote))
	mux.HandleFunc("POST /api/images", middleware.WithLogging(imageHandler.AddImage))
	mux.HandleFunc("DELETE /api/images/{id}", middleware.WithLogging(imageHandler.DeleteImage))

	// Admin operations
	mux.HandleFunc("POST /api/admin/login", middleware.WithLogging(adminHandler.Login))
	mux.HandleFunc("POST /api/admin/cutoff", admin(adminHandler.Cutoff))
	mux.HandleFunc("POST /api/admin/reopen", admin(adminHandler.Reopen))
	mux.HandleFunc("POST /api/admin/config", admin(adminHandler.UpdateConfig))
	mux.HandleFunc("GET /api/admin/logs", admin(adminHandler.GetLogs))
	mux.HandleFunc("POST /api/admin/webhook/test", admin(adminHandler.TestWebhook))

	// Real-time updates and image passthrough
	mux.Handle("GET /ws", wsHandler)
	mux.HandleFunc("GET /api/proxy", middleware.WithLogging(proxyHandler.Fetch))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("avatar-vote API v1"))
	})

	return mux
}
