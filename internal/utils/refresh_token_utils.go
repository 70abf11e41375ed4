package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashRefreshToken returns the SHA-256 hash of a raw refresh token. Only the
// hash is ever persisted.
func HashRefreshToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// CompareRefreshTokenHash compares a raw refresh token against a stored hash.
func CompareRefreshTokenHash(token, storedHash string) bool {
	return HashRefreshToken(token) == storedHash
}
