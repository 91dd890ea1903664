// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

LoadEnv reads a .env file if one exists, then ParseFlags returns a Config:

	_ = cliparse.LoadEnv()
	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - BotToken: Telegram bot token (required)
  - DatabaseURL: connection string or SQLite path (required)
  - DatabaseType: "sqlite" or "postgres" (default: sqlite)
  - MaxRecordsPerUser: per-user record cap (default: 10)
  - Port: health listener port (default: 0, disabled)
  - LogSalt: salt for hashing user ids in logs
  - Debug: debug logging

# Environment Variables

Flags fall back to environment variables:

	BOT_TOKEN            → -token
	DATABASE_URL         → -d
	DATABASE_TYPE        → -t
	MAX_RECORDS_PER_USER → -max-records
	PORT                 → -p
	LOG_SALT             → -log-salt
	DEBUG                → -debug

CLI flags take precedence over environment variables, and variables already
in the environment take precedence over the .env file.

# Validation

ParseFlags returns an error if:

  - BOT_TOKEN or DATABASE_URL is missing
  - DATABASE_TYPE is not sqlite or postgres
  - MAX_RECORDS_PER_USER is not a positive integer
  - PORT or DEBUG cannot be parsed
*/
package cliparse
