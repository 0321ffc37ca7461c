package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashToken(t *testing.T) {
	hash := HashToken("some-refresh-token")

	assert.Len(t, hash, 64, "SHA-256 hex digest is 64 characters")
	assert.Equal(t, hash, HashToken("some-refresh-token"), "Hashing is deterministic")
	assert.NotEqual(t, hash, HashToken("some-other-token"))
}

func TestCompareTokenHash(t *testing.T) {
	token := "a-refresh-token"
	hash := HashToken(token)

	assert.True(t, CompareTokenHash(token, hash))
	assert.False(t, CompareTokenHash("different-token", hash))
	// An empty stored hash (no active session) never matches anything,
	// including the hash of an empty token.
	assert.False(t, CompareTokenHash("", ""))
	assert.False(t, CompareTokenHash(token, ""))
}

func TestGenerateAndParseJWT(t *testing.T) {
	token, err := GenerateJWT("user-123", "test-secret", time.Hour, "test-issuer")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseAndValidateJWT(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.Subject)
	assert.Equal(t, "test-issuer", claims.Issuer)

	_, err = ParseAndValidateJWT(token, "wrong-secret")
	assert.Error(t, err, "Signature check must fail with the wrong secret")

	expired, err := GenerateJWT("user-123", "test-secret", -time.Minute, "test-issuer")
	require.NoError(t, err)
	_, err = ParseAndValidateJWT(expired, "test-secret")
	assert.Error(t, err, "Expired token must fail validation")
}

func TestGenerateSecureRandomString(t *testing.T) {
	s, err := GenerateSecureRandomString(16)
	require.NoError(t, err)
	assert.Len(t, s, 32, "16 random bytes hex-encode to 32 characters")

	s2, err := GenerateSecureRandomString(16)
	require.NoError(t, err)
	assert.NotEqual(t, s, s2)

	_, err = GenerateSecureRandomString(0)
	assert.Error(t, err)
}
