// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package privacy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashOwner(t *testing.T) {
	tests := []struct {
		name    string
		ownerID int64
		salt    string
	}{
		{"standard", 123456789, "secret-salt"},
		{"zero id", 0, "salt"},
		{"negative id", -100200300, "salt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash := HashOwner(tt.ownerID, tt.salt)

			assert.Len(t, hash, 16)
			assert.Regexp(t, "^[0-9a-f]+$", hash)

			// Should be deterministic
			assert.Equal(t, hash, HashOwner(tt.ownerID, tt.salt))

			// Different inputs should produce different hashes
			assert.NotEqual(t, hash, HashOwner(tt.ownerID+1, tt.salt))
			assert.NotEqual(t, hash, HashOwner(tt.ownerID, tt.salt+"x"))
		})
	}
}

func TestHashOwnerWithoutSalt(t *testing.T) {
	assert.Equal(t, "42", HashOwner(42, ""))
}
