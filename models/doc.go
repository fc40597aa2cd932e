// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - ToggleVoteRequest: imageId, visitorId
  - AddImageRequest: url, title
  - LoginRequest: password
  - UpdateConfigRequest: siteName

# Response Types

Types for JSON responses:

  - ToggleVoteResponse: success, action, newCount, userVotes
  - AddImageResponse: success, image
  - LoginResponse: success, token, status
  - StatusResponse: success, status
  - UpdateConfigResponse: success, siteName
  - LogsResponse: logs, total, hasMore
  - ErrorResponse: error, message

# Domain Types

Internal data structures:

  - Image: one voting candidate (id, url, title)
  - Snapshot: the full persisted document
  - ClientData: state pushed to connected clients
  - LogEntry: one vote toggle for the admin log
  - Stats: current standings summary

# Constants

Status values:

	StatusOpen   = "open"
	StatusClosed = "closed"

Vote log actions:

	ActionAdded   = "added"
	ActionRemoved = "removed"

Limits:

	MaxVotesPerUser = 3
	MaxTitleLen     = 50
*/
package models
