package middleware

import (
	"errors"

	"learnify/services"

	"github.com/gofiber/fiber/v2"
)

// JWTMiddleware is a middleware to check for valid JWT token in the request
func JWTMiddleware(c *fiber.Ctx) error {
	identity, err := services.Tokens.Authenticate(c.Get("Authorization"))
	if err != nil {
		message := "Invalid or expired token"
		switch {
		case errors.Is(err, services.ErrMissingCredential):
			message = "Authorization header missing"
		case errors.Is(err, services.ErrMalformedCredential):
			message = "Invalid Authorization header format"
		}
		return JsonResponse(c, fiber.StatusUnauthorized, false, message, nil)
	}

	// Make the identity available to downstream handlers
	c.Locals("identity", identity)
	c.Locals("userId", identity.UserID)

	return c.Next()
}

func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Validation failed!", errors)
}
