// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package privacy keeps user identities out of logs.

# Owner Hashes

HashOwner replaces a Telegram user id with a salted HMAC-SHA256 digest:

	slog.Info("update handled", "owner", privacy.HashOwner(userID, cfg.LogSalt))

The digest is deterministic, so all log lines for one user share it, but the
id cannot be recovered without the salt. When no salt is configured the raw
id is logged, which is convenient in development.
*/
package privacy
