package authController

import (
	"errors"
	"log"

	"learnify/config"
	"learnify/database"
	"learnify/middleware"
	"learnify/services"
	"learnify/utils"

	"github.com/gofiber/fiber/v2"
)

func Register(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedUser").(*struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     string `json:"role"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	user, err := services.RegisterUser(db, services.RegisterInput{
		Name:     reqData.Name,
		Email:    reqData.Email,
		Password: reqData.Password,
		Role:     reqData.Role,
	}, config.AppConfig.SaltRound)
	if err != nil {
		if errors.Is(err, services.ErrUserExists) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "User already exists", nil)
		}
		log.Printf("Error saving user to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register user!", nil)
	}

	go utils.SendWelcomeEmail(user.Email, user.Name)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Register Success", fiber.Map{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"role":  user.Role,
	})
}

func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	user, err := services.AuthenticateUser(db, reqData.Email, reqData.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			// Declined, not a fault: same body for unknown email and wrong password
			return middleware.JsonResponse(c, fiber.StatusOK, false, "Invalid email or password", nil)
		}
		log.Printf("Error in login: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to login!", nil)
	}

	token, err := services.Tokens.Issue(user)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login success", fiber.Map{
		"token": token,
		"user":  user,
	})
}
