// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"context"
	"net/http"

	"github.com/danielhkuo/ballotcheck/cliparse"
	"github.com/danielhkuo/ballotcheck/conversation"
	"github.com/danielhkuo/ballotcheck/middleware"
	"github.com/danielhkuo/ballotcheck/models"
	"github.com/danielhkuo/ballotcheck/telegram"
)

// NewRouter builds the health listener's routes.
func NewRouter(sessions *conversation.Sessions) *http.ServeMux {
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	mux.HandleFunc("GET /stats", middleware.WithLogging(func(w http.ResponseWriter, r *http.Request) {
		middleware.JSONResponse(w, http.StatusOK, models.Stats{
			ActiveSessions: sessions.Len(),
		})
	}))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ballotcheck bot"))
	})

	return mux
}

// NewDispatcher builds the update handler chain: logging, then the
// owner's session.
func NewDispatcher(sessions *conversation.Sessions, cfg cliparse.Config) telegram.HandlerFunc {
	handle := func(ctx context.Context, u telegram.Update) (conversation.Reply, error) {
		return sessions.Handle(ctx, u.OwnerID, u.Input)
	}
	return middleware.WithUpdateLogging(handle, cfg.LogSalt)
}
