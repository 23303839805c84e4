package courseValidator

import (
	"strconv"
	"strings"

	"learnify/middleware"
	"learnify/services"

	"github.com/gofiber/fiber/v2"
)

// CourseID validates the :id path parameter and stores it as uint.
func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseIDStr := strings.TrimSpace(c.Params("id"))
		if courseIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course ID is required!", nil)
		}

		// Validate CourseID is a valid integer
		courseID, err := strconv.Atoi(courseIDStr)
		if err != nil || courseID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		c.Locals("courseID", uint(courseID))
		return c.Next()
	}
}

// CreateCourse validates the multipart course-creation form. Section
// titles, descriptions and content files are parallel arrays; content
// files are checked in the controller where they are saved.
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		form, err := c.MultipartForm()
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid multipart form!", nil)
		}

		errors := make(map[string]string)

		title := strings.TrimSpace(c.FormValue("title"))
		if title == "" {
			errors["title"] = "Title is required!"
		}

		price := 0.0
		if priceStr := strings.TrimSpace(c.FormValue("price")); priceStr != "" {
			price, err = strconv.ParseFloat(priceStr, 64)
			if err != nil || price < 0 {
				errors["price"] = "Price must be a non-negative number!"
			}
		}

		sectionTitles := form.Value["s_title"]
		sectionDescriptions := form.Value["s_description"]

		if len(sectionTitles) == 0 {
			errors["s_title"] = "At least one section is required!"
		}
		if len(sectionDescriptions) != len(sectionTitles) {
			errors["s_description"] = "Each section needs a description!"
		}
		for _, sectionTitle := range sectionTitles {
			if strings.TrimSpace(sectionTitle) == "" {
				errors["s_title"] = "Section titles cannot be empty!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		input := &services.CourseInput{
			Title:       title,
			Description: c.FormValue("description"),
			Categories:  form.Value["categories"],
			Price:       price,
		}
		for i, sectionTitle := range sectionTitles {
			input.Sections = append(input.Sections, services.SectionInput{
				Title:       sectionTitle,
				Description: sectionDescriptions[i],
			})
		}

		c.Locals("validatedCourse", input)
		return c.Next()
	}
}

// CompleteSection validates the completion payload.
func CompleteSection() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CourseID  uint `json:"courseId"`
			SectionID uint `json:"sectionId"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.CourseID == 0 {
			errors["courseId"] = "Course ID is required!"
		}
		if reqData.SectionID == 0 {
			errors["sectionId"] = "Section ID is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCompletion", reqData)
		return c.Next()
	}
}

// EnrollmentList validates optional page/limit query parameters.
func EnrollmentList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page  *int `json:"page"`
			Limit *int `json:"limit"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		// Pagination is optional; without it the controller returns everything
		if reqData.Page == nil && reqData.Limit == nil {
			return c.Next()
		}

		errors := make(map[string]string)

		// Validate Page
		if reqData.Page == nil || *reqData.Page < 1 {
			errors["page"] = "Page must be greater than 0!"
		}

		// Validate Limit
		if reqData.Limit == nil || *reqData.Limit < 1 {
			errors["limit"] = "Limit must be greater than 0!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedEnrollmentList", reqData)
		return c.Next()
	}
}
