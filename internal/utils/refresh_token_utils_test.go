package utils_test

import (
	"testing"

	"github.com/fintrackhq/fintrack_backend/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashRefreshToken(t *testing.T) {
	hash := utils.HashRefreshToken("some-raw-token")

	assert.NotEqual(t, "some-raw-token", hash)
	assert.Len(t, hash, 64) // hex-encoded SHA-256

	// Deterministic so the stored hash can be compared later.
	assert.Equal(t, hash, utils.HashRefreshToken("some-raw-token"))
}

func TestCompareRefreshTokenHash(t *testing.T) {
	hash := utils.HashRefreshToken("some-raw-token")

	assert.True(t, utils.CompareRefreshTokenHash("some-raw-token", hash))
	assert.False(t, utils.CompareRefreshTokenHash("other-token", hash))
	assert.False(t, utils.CompareRefreshTokenHash("some-raw-token", "not-a-hash"))
}

func TestGenerateSecureRandomString(t *testing.T) {
	first, err := utils.GenerateSecureRandomString(32)
	require.NoError(t, err)
	second, err := utils.GenerateSecureRandomString(32)
	require.NoError(t, err)

	assert.NotEmpty(t, first)
	assert.NotEqual(t, first, second)
}
