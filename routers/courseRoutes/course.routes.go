package courseRoutes

import (
	controllers "learnify/controllers/course"
	"learnify/middleware"
	validators "learnify/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up all course, enrollment and progress routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/course")

	// Course listing is public; authoring requires an authenticated educator
	courseGroup.Get("/list", controllers.GetAllCourses)
	courseGroup.Post("/add", middleware.JWTMiddleware, validators.CreateCourse(), controllers.CreateCourse)
	courseGroup.Get("/educator", middleware.JWTMiddleware, controllers.GetEducatorCourses)
	courseGroup.Delete("/:id", middleware.JWTMiddleware, validators.CourseID(), controllers.DeleteCourse)

	// Enrollment
	courseGroup.Post("/:id/enroll", middleware.JWTMiddleware, validators.CourseID(), controllers.EnrollInCourse)

	// Content viewing (for enrolled users)
	courseGroup.Get("/:id/content", middleware.JWTMiddleware, validators.CourseID(), controllers.GetCourseContent)

	// Section completion
	courseGroup.Post("/section/complete", middleware.JWTMiddleware, validators.CompleteSection(), controllers.CompleteSection)

	// User enrollments
	userGroup := app.Group("/user")
	userGroup.Get("/enrollments", middleware.JWTMiddleware, validators.EnrollmentList(), controllers.GetUserEnrollments)
}
