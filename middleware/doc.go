// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides logging wrappers and response helpers.

# Update Logging

WithUpdateLogging wraps a telegram.HandlerFunc with structured logging:

	handler := middleware.WithUpdateLogging(next, cfg.LogSalt)

Each update logs its request id, the hashed owner id and the input kind
(never the text itself, which may be a transaction id). Outcomes map to
levels:

  - success: info
  - store or transport error: warn
  - conversation.ErrInvariant: error

# HTTP Logging

WithLogging wraps the health listener's handlers and logs method, path and
duration at debug level:

	mux.HandleFunc("GET /stats", middleware.WithLogging(statsHandler))

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
*/
package middleware
