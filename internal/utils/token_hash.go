package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashToken returns the SHA-256 hex digest of a token string. Only the digest
// of the refresh token is persisted server-side.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// CompareTokenHash compares a raw token string against a stored digest.
func CompareTokenHash(token string, storedHash string) bool {
	return storedHash != "" && HashToken(token) == storedHash
}
