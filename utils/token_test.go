package utils

import (
	"testing"

	"api/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	config.JWTSecret = "test-secret"

	token, err := GenerateToken("user-123", false)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestParseToken_RejectsTamperedSecret(t *testing.T) {
	config.JWTSecret = "test-secret"
	token, err := GenerateToken("user-123", true)
	require.NoError(t, err)

	config.JWTSecret = "another-secret"
	_, err = ParseToken(token)
	assert.Error(t, err)
}

func TestParseToken_RejectsGarbage(t *testing.T) {
	config.JWTSecret = "test-secret"

	_, err := ParseToken("not-a-token")
	assert.Error(t, err)
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	require.NotEqual(t, "s3cret-pass", hash)

	assert.True(t, CheckPasswordHash("s3cret-pass", hash))
	assert.False(t, CheckPasswordHash("wrong-pass", hash))
}
