package services

import (
	"testing"

	"learnify/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterUser(t *testing.T) {
	db := testDB(t)

	user, err := RegisterUser(db, RegisterInput{
		Name:     "Ada",
		Email:    "A@X.com",
		Password: "pw123",
	}, 10)
	require.NoError(t, err)

	assert.Equal(t, "a@x.com", user.Email)
	assert.Equal(t, "STUDENT", user.Role)
	assert.NotEqual(t, "pw123", user.Password)
	assert.True(t, VerifyPassword("pw123", user.Password))
}

func TestRegisterUserDuplicateEmail(t *testing.T) {
	db := testDB(t)

	first, err := RegisterUser(db, RegisterInput{Name: "Ada", Email: "a@x.com", Password: "pw123"}, 10)
	require.NoError(t, err)

	_, err = RegisterUser(db, RegisterInput{Name: "Impostor", Email: "a@x.com", Password: "other"}, 10)
	assert.ErrorIs(t, err, ErrUserExists)

	// Normalization makes the duplicate check case-insensitive
	_, err = RegisterUser(db, RegisterInput{Name: "Impostor", Email: "A@X.COM", Password: "other"}, 10)
	assert.ErrorIs(t, err, ErrUserExists)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	// First registration must be untouched
	var stored models.User
	require.NoError(t, db.First(&stored, first.ID).Error)
	assert.Equal(t, "Ada", stored.Name)
	assert.True(t, VerifyPassword("pw123", stored.Password))
}

func TestAuthenticateUser(t *testing.T) {
	db := testDB(t)

	_, err := RegisterUser(db, RegisterInput{Name: "Ada", Email: "a@x.com", Password: "pw123"}, 10)
	require.NoError(t, err)

	_, err = AuthenticateUser(db, "a@x.com", "wrongpw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = AuthenticateUser(db, "nobody@x.com", "pw123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	user, err := AuthenticateUser(db, "a@x.com", "pw123")
	require.NoError(t, err)
	assert.Equal(t, "Ada", user.Name)
	assert.False(t, user.LastLogin.IsZero())

	// Case-insensitive on the lookup side too
	_, err = AuthenticateUser(db, "A@X.com", "pw123")
	require.NoError(t, err)
}
