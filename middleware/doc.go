// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and response helpers.

# Middleware

  - WithLogging: logs request start/completion with duration
  - RequireAdmin: verifies the Authorization bearer token before admin
    handlers run
  - CORS: allows cross-origin requests and answers preflights

# Helpers

  - JSONResponse: writes a JSON body with a status code
  - ErrorResponse: writes a models.ErrorResponse
  - ParseJSONBody: decodes a JSON request body

# Admin Gating

Admin routes wrap their handlers at routing time:

	mux.HandleFunc("POST /api/admin/cutoff",
		middleware.WithLogging(middleware.RequireAdmin(cfg.TokenSecret, h.Cutoff)))

A missing or malformed Authorization header, a bad signature, or an expired
token all yield 401 with a JSON error body; the handler never runs.
*/
package middleware
