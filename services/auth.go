package services

import (
	"errors"
	"log"
	"strings"
	"time"

	"learnify/models"

	"gorm.io/gorm"
)

// RegisterInput carries the validated registration payload.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// RegisterUser creates a new user with a hashed password. The unique index
// on email arbitrates duplicates, so concurrent registrations for the same
// address cannot both succeed.
func RegisterUser(db *gorm.DB, input RegisterInput, cost int) (*models.User, error) {
	hashed, err := HashPassword(input.Password, cost)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return nil, err
	}

	role := input.Role
	if role == "" {
		role = "STUDENT"
	}

	user := models.User{
		Name:     input.Name,
		Email:    strings.ToLower(strings.TrimSpace(input.Email)),
		Role:     role,
		Password: hashed,
	}

	if err := db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUserExists
		}
		return nil, err
	}

	return &user, nil
}

// UserByID fetches a live user record by id.
func UserByID(db *gorm.DB, id uint) (*models.User, error) {
	var user models.User
	err := db.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// AuthenticateUser checks the credentials against the stored hash. Unknown
// email and wrong password are indistinguishable to the caller.
func AuthenticateUser(db *gorm.DB, email, password string) (*models.User, error) {
	var user models.User
	err := db.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !VerifyPassword(password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	// Update last login time
	user.LastLogin = time.Now()
	if err := db.Model(&user).Update("last_login", user.LastLogin).Error; err != nil {
		log.Printf("Error saving last login time: %v", err)
	}

	return &user, nil
}
