package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	digest, err := HashPassword("pw123", 10)
	require.NoError(t, err)

	assert.NotContains(t, digest, "pw123")
	assert.True(t, VerifyPassword("pw123", digest))
	assert.False(t, VerifyPassword("wrongpw", digest))
	assert.False(t, VerifyPassword("", digest))
}

func TestHashPasswordSaltsEveryDigest(t *testing.T) {
	first, err := HashPassword("same-password", 10)
	require.NoError(t, err)
	second, err := HashPassword("same-password", 10)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, VerifyPassword("same-password", first))
	assert.True(t, VerifyPassword("same-password", second))
}

func TestHashPasswordEnforcesMinimumCost(t *testing.T) {
	digest, err := HashPassword("pw123", 4)
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(digest))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, cost, bcrypt.DefaultCost)
}

func TestVerifyPasswordGarbageDigest(t *testing.T) {
	assert.False(t, VerifyPassword("pw123", "not-a-bcrypt-digest"))
	assert.False(t, VerifyPassword("pw123", ""))
}
