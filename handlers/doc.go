// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the voting API.

# Handler Types

Each handler is a struct with its dependencies injected via constructor:

  - VotingHandler: vote toggling and per-user vote lookup
  - ImageHandler: gallery additions and deletions
  - DataHandler: client data, site config, and stats reads
  - AdminHandler: login, cutoff/reopen, config, logs, webhook test
  - WebSocketHandler: real-time session establishment
  - ProxyHandler: hotlink-defeating image passthrough

	votingHandler := handlers.NewVotingHandler(l, rec, h, n)

# Vote Flow

POST /api/vote runs the full mutation pipeline in order: the ledger applies
and durably commits the toggle, the recorder logs it, the hub fans
votes:update and vote:log out to connected clients, and (for added votes)
the webhook notifier is handed the entry asynchronously. Only then does the
response go out.

# Admin Operations

Admin routes are wrapped with middleware.RequireAdmin at routing time;
handlers here assume the token was already verified. Login checks the
bcrypt password hash from the data file and mints a 24-hour token.

# Real-Time Sessions

GET /ws upgrades to a websocket. The handler sends one data:sync event with
the full current state, then registers the connection with the hub for
fan-out. A client that drops an event re-syncs by reconnecting.
*/
package handlers
