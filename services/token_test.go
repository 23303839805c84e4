package services

import (
	"testing"
	"time"

	"learnify/models"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUser() *models.User {
	user := &models.User{
		Name:  "Ada",
		Email: "a@x.com",
		Role:  "STUDENT",
	}
	user.ID = 42
	return user
}

func TestTokenIssueVerifyRoundTrip(t *testing.T) {
	tokens := NewTokenService([]byte("test-secret"), 24*time.Hour)

	token, err := tokens.Issue(testUser())
	require.NoError(t, err)

	identity, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), identity.UserID)
	assert.Equal(t, "Ada", identity.Name)
	assert.Equal(t, "STUDENT", identity.Role)
	assert.Equal(t, "a@x.com", identity.Email)
}

func TestTokenVerifyExpired(t *testing.T) {
	tokens := NewTokenService([]byte("test-secret"), -time.Minute)

	token, err := tokens.Issue(testUser())
	require.NoError(t, err)

	_, err = tokens.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenVerifyWrongSecret(t *testing.T) {
	issuer := NewTokenService([]byte("secret-one"), time.Hour)
	verifier := NewTokenService([]byte("secret-two"), time.Hour)

	token, err := issuer.Issue(testUser())
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenVerifyTampered(t *testing.T) {
	tokens := NewTokenService([]byte("test-secret"), time.Hour)

	token, err := tokens.Issue(testUser())
	require.NoError(t, err)

	_, err = tokens.Verify(token + "x")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenVerifyMalformed(t *testing.T) {
	tokens := NewTokenService([]byte("test-secret"), time.Hour)

	for _, bad := range []string{"", "garbage", "a.b", "a.b.c"} {
		_, err := tokens.Verify(bad)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}

func TestTokenVerifyRejectsUnsignedAlg(t *testing.T) {
	tokens := NewTokenService([]byte("test-secret"), time.Hour)

	claims := jwt.MapClaims{
		"userId": 42,
		"exp":    time.Now().Add(time.Hour).Unix(),
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = tokens.Verify(unsigned)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthenticateHeaderShapes(t *testing.T) {
	tokens := NewTokenService([]byte("test-secret"), time.Hour)

	token, err := tokens.Issue(testUser())
	require.NoError(t, err)

	_, err = tokens.Authenticate("")
	assert.ErrorIs(t, err, ErrMissingCredential)

	_, err = tokens.Authenticate(token)
	assert.ErrorIs(t, err, ErrMalformedCredential)

	_, err = tokens.Authenticate("Basic " + token)
	assert.ErrorIs(t, err, ErrMalformedCredential)

	_, err = tokens.Authenticate("Bearer ")
	assert.ErrorIs(t, err, ErrMalformedCredential)

	_, err = tokens.Authenticate("Bearer not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	identity, err := tokens.Authenticate("Bearer " + token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), identity.UserID)
}
