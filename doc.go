// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the avatar voting server.

Avatar Vote is a small real-time voting application: users browse a gallery
of candidate images, cast up to three votes each via an idempotent toggle,
and watch tallies update live over a websocket. An admin can close and
reopen voting, rename the site, and review a log of recent votes.

# Starting the Server

The server needs a token signing secret; everything else has defaults:

	TOKEN_SECRET=change-me go run main.go

Or with flags:

	go run main.go -p 3000 -f data.json -token-secret change-me

A .env file in the working directory is loaded automatically.

# Configuration

Required settings:

  - TOKEN_SECRET (--token-secret): secret for admin token signing

Optional settings:

  - PORT (-p): server port (default: 3000)
  - DATA_FILE (-f): JSON data file path (default: data.json)
  - ADMIN_PASSWORD (--admin-password): initial admin password, hashed into
    the data file on first start (default: admin123)
  - WEBHOOK_URL / WEBHOOK_ENABLED: optional vote notification webhook

# Architecture

The server uses a handler-based architecture with dependency injection:

  - store: atomic JSON file persistence
  - ledger: in-memory vote state, invariants, and durable commits
  - votelog: bounded in-memory vote log for the admin view
  - hub: websocket fan-out of real-time events
  - auth: password hashing and signed admin tokens
  - webhook: async vote notifications
  - handlers: HTTP request handlers
  - router: route definitions using Go 1.22+ routing
  - middleware: CORS, logging, admin gating, JSON helpers
  - models: request/response and domain types
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
