// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines all HTTP routes for the voting API.

NewRouter wires handlers into a single http.ServeMux using Go 1.22+ method
routing:

	mux := router.NewRouter(ledger, recorder, hub, notifier, cfg)

Public routes cover voting, the gallery, stats, the websocket, and the
image proxy. Admin routes (cutoff, reopen, config, logs, webhook test) are
wrapped with middleware.RequireAdmin so an invalid bearer token is rejected
before any handler runs. Every route also carries request logging.
*/
package router
