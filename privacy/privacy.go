// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package privacy

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
)

// HashOwner creates a one-way hash of a Telegram user id for logs.
// With an empty salt the id is returned as is.
func HashOwner(ownerID int64, salt string) string {
	id := strconv.FormatInt(ownerID, 10)
	if salt == "" {
		return id
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(id))
	sum := h.Sum(nil)
	// First 16 hex chars (64 bits) - enough to correlate log lines
	return hex.EncodeToString(sum[:8])
}
