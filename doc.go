// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the ballotcheck Telegram bot.

ballotcheck lets voters save the transaction ids (and, outside Moscow, the
voter keys) of their electronic ballots so they can check them later. Each
user talks to a small menu-driven state machine over inline keyboards.

# Starting the Bot

	BOT_TOKEN=123:abc DATABASE_URL=ballotcheck.db go run .

Or with PostgreSQL:

	go run . -token 123:abc -t postgres -d "postgres://..."

A .env file in the working directory is read on startup.

# Configuration

Required settings:

  - BOT_TOKEN (-token): Telegram bot token
  - DATABASE_URL (-d): connection string or SQLite path

Optional settings:

  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - MAX_RECORDS_PER_USER (-max-records): per-user cap (default: 10)
  - PORT (-p): health listener port (default: off)
  - LOG_SALT (-log-salt): salt for hashing user ids in logs
  - DEBUG (-debug): debug logging

# Architecture

  - conversation: per-user state machine, rendering and session registry
  - telegram: update conversion, per-user ordering, reply rendering
  - store: record persistence
  - router: health endpoints and the update dispatcher
  - middleware: logging and JSON helpers
  - models: record types
  - privacy: log-safe user ids
  - db: connection and schema creation
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
