package controllers

import (
	"errors"
	"log"

	"learnify/database"
	"learnify/middleware"
	"learnify/services"
	"learnify/utils"

	"github.com/gofiber/fiber/v2"
)

func EnrollInCourse(c *fiber.Ctx) error {
	// Retrieve userId from JWT middleware
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	// Check if user exists
	user, err := services.UserByID(db, userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(uint)

	enrollment, err := services.Enroll(db, userID, courseID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCourseNotFound):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found", nil)
		case errors.Is(err, services.ErrAlreadyEnrolled):
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Already enrolled in this course", nil)
		}
		log.Printf("Error enrolling in course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll", nil)
	}

	go utils.SendEnrollmentEmail(user.Email, user.Name, enrollment.Course.Title)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Successfully enrolled", enrollment)
}

func GetUserEnrollments(c *fiber.Ctx) error {
	// Retrieve userId from JWT middleware
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	enrollments, err := services.EnrollmentsForUser(db, userID)
	if err != nil {
		log.Printf("Error fetching user's enrollments: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch user's courses", nil)
	}

	// Retrieve validated pagination request, if any
	reqData, ok := c.Locals("validatedEnrollmentList").(*struct {
		Page  *int `json:"page"`
		Limit *int `json:"limit"`
	})
	if !ok {
		response := map[string]interface{}{
			"enrollments": enrollments,
			"pagination": map[string]interface{}{
				"total": int64(len(enrollments)),
				"page":  1,
				"limit": len(enrollments),
			},
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully.", response)
	}

	page := *reqData.Page
	limit := *reqData.Limit
	total := int64(len(enrollments))

	start := (page - 1) * limit
	if start > len(enrollments) {
		start = len(enrollments)
	}
	end := start + limit
	if end > len(enrollments) {
		end = len(enrollments)
	}

	response := map[string]interface{}{
		"enrollments": enrollments[start:end],
		"pagination": map[string]interface{}{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully.", response)
}
