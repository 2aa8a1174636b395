package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashRefreshToken hashes a raw refresh token for storage. SHA-256 is enough
// here: the token is already high-entropy, so no key stretching is needed.
func HashRefreshToken(rawToken string) string {
	sum := sha256.Sum256([]byte(rawToken))
	return hex.EncodeToString(sum[:])
}
