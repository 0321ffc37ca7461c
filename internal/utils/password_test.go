package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-password")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "s3cret-password", hash, "Hash should never equal the plaintext")

	// bcrypt salts every hash, so hashing twice yields different digests.
	hash2, err := HashPassword("s3cret-password")
	require.NoError(t, err)
	assert.NotEqual(t, hash, hash2)
}

func TestCheckPasswordHash(t *testing.T) {
	hash, err := HashPassword("correct-password")
	require.NoError(t, err)

	assert.True(t, CheckPasswordHash("correct-password", hash))
	assert.False(t, CheckPasswordHash("wrong-password", hash))
	assert.False(t, CheckPasswordHash("correct-password", "not-a-bcrypt-hash"))
	assert.False(t, CheckPasswordHash("", hash))
}
