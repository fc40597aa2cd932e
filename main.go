package main

import (
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/avatar-vote/auth"
	"github.com/danielhkuo/avatar-vote/cliparse"
	"github.com/danielhkuo/avatar-vote/hub"
	"github.com/danielhkuo/avatar-vote/ledger"
	"github.com/danielhkuo/avatar-vote/middleware"
	"github.com/danielhkuo/avatar-vote/router"
	"github.com/danielhkuo/avatar-vote/store"
	"github.com/danielhkuo/avatar-vote/votelog"
	"github.com/danielhkuo/avatar-vote/webhook"
)

func main() {
	// Optional .env for local development
	_ = godotenv.Load()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Load the data file into the ledger
	st := store.New(cfg.DataFile)
	l, err := ledger.Load(st)
	if err != nil {
		slog.Error("failed to load data file", "error", err, "path", cfg.DataFile)
		os.Exit(1)
	}

	// Hash the admin password into the data file on first start
	if l.PasswordHash() == "" {
		hash, err := auth.HashPassword(cfg.AdminPassword)
		if err != nil {
			slog.Error("failed to hash admin password", "error", err)
			os.Exit(1)
		}
		if err := l.SetPasswordHash(hash); err != nil {
			slog.Error("failed to store admin password hash", "error", err)
			os.Exit(1)
		}
		slog.Info("Admin password initialized")
	}

	stats := l.Stats()
	slog.Info("Data loaded", "images", stats.TotalImages, "voters", stats.TotalVoters)

	// Start the broadcast hub and webhook notifier
	h := hub.New()
	go h.Run()
	notifier := webhook.New(cfg.WebhookURL, cfg.WebhookEnabled)
	if notifier.Enabled() {
		slog.Info("Webhook notifications enabled", "url", cfg.WebhookURL)
	}

	// Create router
	rec := votelog.New()
	mux := router.NewRouter(l, rec, h, notifier, cfg)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
