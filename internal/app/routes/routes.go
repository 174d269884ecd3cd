package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coursecat/api/internal/app/controllers"
	"github.com/coursecat/api/internal/app/models/dto"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	userController *controllers.UserController,
	areaController *controllers.AreaController,
	instructorController *controllers.InstructorController,
	courseController *controllers.CourseController,
) {
	// --- User routes ---
	users := router.Group("/users")
	{
		users.POST("/", userController.Register)
		users.POST("/login/", userController.Login)
	}

	// --- Area routes ---
	// Creation and listing live on separate singular/plural prefixes.
	router.POST("/area/", areaController.CreateArea)
	router.GET("/areas/", areaController.GetAreas)

	// --- Instructor routes ---
	instructor := router.Group("/instructor")
	{
		instructor.POST("/", instructorController.CreateInstructor)
		instructor.PATCH("/", instructorController.UpdateInstructor)
		instructor.DELETE("/:id", instructorController.DeleteInstructor)
	}
	router.GET("/instructors/", instructorController.GetInstructors)

	// --- Course routes ---
	course := router.Group("/course")
	{
		course.POST("/", courseController.CreateCourse)
		course.PATCH("/", courseController.UpdateCourse)
		course.DELETE("/:id", courseController.DeleteCourse)
	}
	courses := router.Group("/courses")
	{
		courses.GET("/", courseController.GetCourses)
		courses.GET("/:area_id", courseController.GetCoursesByArea)
	}

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})
}
