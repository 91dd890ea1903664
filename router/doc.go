// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router wires inbound traffic to handlers.

# Updates

NewDispatcher returns the telegram.HandlerFunc the bot runs for every
update: WithUpdateLogging around Sessions.Handle.

	dispatch := router.NewDispatcher(sessions, cfg)
	bot := telegram.New(api, dispatch)

# Health Listener

NewRouter returns the mux served on cfg.Port when it is set:

	GET /health  → "OK"
	GET /stats   → {"active_sessions": N}
	GET /        → "ballotcheck bot"
*/
package router
