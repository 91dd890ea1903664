// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/ballotcheck/conversation"
	"github.com/danielhkuo/ballotcheck/privacy"
	"github.com/danielhkuo/ballotcheck/telegram"
)

// WithLogging wraps a handler with request logging
func WithLogging(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		next(w, r)

		slog.Debug("request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}

// WithUpdateLogging wraps an update handler with logging. Owner ids are
// hashed with salt. Invariant violations log at error level, store
// failures at warn.
func WithUpdateLogging(next telegram.HandlerFunc, salt string) telegram.HandlerFunc {
	return func(ctx context.Context, u telegram.Update) (conversation.Reply, error) {
		start := time.Now()
		owner := privacy.HashOwner(u.OwnerID, salt)

		slog.Debug("update started",
			"request_id", u.RequestID,
			"owner", owner,
			"kind", u.Input.Kind.String(),
		)

		reply, err := next(ctx, u)

		duration := time.Since(start).Milliseconds()
		switch {
		case errors.Is(err, conversation.ErrInvariant):
			slog.Error("update rejected",
				"request_id", u.RequestID,
				"owner", owner,
				"error", err,
			)
		case err != nil:
			slog.Warn("update failed",
				"request_id", u.RequestID,
				"owner", owner,
				"duration_ms", duration,
				"error", err,
			)
		default:
			slog.Info("update handled",
				"request_id", u.RequestID,
				"owner", owner,
				"kind", u.Input.Kind.String(),
				"duration_ms", duration,
			)
		}

		return reply, err
	}
}

// JSONResponse writes a JSON response
func JSONResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}
