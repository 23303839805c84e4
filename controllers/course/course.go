package controllers

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"

	"learnify/config"
	"learnify/database"
	"learnify/middleware"
	"learnify/services"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func CreateCourse(c *fiber.Ctx) error {
	identity, ok := c.Locals("identity").(*services.Identity)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	// Check if user exists
	educator, err := services.UserByID(db, identity.UserID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	input, ok := c.Locals("validatedCourse").(*services.CourseInput)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	// Save one uploaded content file per section
	form, err := c.MultipartForm()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid multipart form!", nil)
	}

	files := form.File["s_content"]
	if len(files) != len(input.Sections) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Each section needs exactly one content file!", nil)
	}

	for i, file := range files {
		stored := uuid.New().String() + filepath.Ext(file.Filename)
		dest := filepath.Join(config.AppConfig.UploadDir, stored)
		if err := c.SaveFile(file, dest); err != nil {
			log.Printf("Error saving uploaded file: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to store course content!", nil)
		}
		input.Sections[i].ContentFile = stored
		input.Sections[i].ContentPath = fmt.Sprintf("/uploads/%s", stored)
	}

	course, err := services.CreateCourse(db, educator, *input)
	if err != nil {
		log.Printf("Error creating course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully", course)
}

func GetAllCourses(c *fiber.Ctx) error {
	courses, err := services.ListCourses(database.Database.Db)
	if err != nil {
		log.Printf("Error fetching courses: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully.", courses)
}

func GetEducatorCourses(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courses, err := services.ListCoursesByEducator(database.Database.Db, userID)
	if err != nil {
		log.Printf("Error fetching courses for educator: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully.", courses)
}

func GetCourseContent(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	sections, err := services.CourseContent(database.Database.Db, courseID)
	if err != nil {
		if errors.Is(err, services.ErrCourseNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found", nil)
		}
		log.Printf("Error fetching course content: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course content", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course content fetched successfully.", sections)
}

func DeleteCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	if err := services.DeleteCourse(database.Database.Db, courseID); err != nil {
		if errors.Is(err, services.ErrCourseNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found", nil)
		}
		log.Printf("Error deleting course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error deleting course", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully", nil)
}
