package controllers

import (
	"errors"
	"log"

	"learnify/config"
	"learnify/database"
	"learnify/middleware"
	"learnify/services"

	"github.com/gofiber/fiber/v2"
)

func CompleteSection(c *fiber.Ctx) error {
	// Retrieve userId from JWT middleware
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedCompletion").(*struct {
		CourseID  uint `json:"courseId"`
		SectionID uint `json:"sectionId"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	err := services.CompleteSection(db, userID, reqData.CourseID, reqData.SectionID, config.AppConfig.RequireEnrollment)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCourseNotFound):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found", nil)
		case errors.Is(err, services.ErrSectionNotFound):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Section not found", nil)
		case errors.Is(err, services.ErrAlreadyCompleted):
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Section already completed by this user", nil)
		case errors.Is(err, services.ErrEnrollmentRequired):
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Enroll in the course before completing sections", nil)
		}
		log.Printf("Error completing section: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to complete section", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Section completed", nil)
}
