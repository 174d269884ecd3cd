package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/coursecat/api/internal/app/models"
	"github.com/coursecat/api/internal/app/models/dto"
	"github.com/coursecat/api/internal/app/services"
	"github.com/coursecat/api/internal/middleware"
	"github.com/coursecat/api/internal/pkg/helpers"
	"github.com/coursecat/api/internal/pkg/logger"
)

// CourseController handles course operations
type CourseController struct {
	courseService *services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService *services.CourseService) *CourseController {
	return &CourseController{
		courseService: courseService,
	}
}

// CreateCourse handles course creation from a multipart form
// @Summary Create a new course
// @Description Creates a course with optional banner image and intro video
// @Tags courses
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Course name"
// @Param description formData string false "Course description"
// @Param instructor_id formData int true "Instructor ID"
// @Param area_id formData int false "Area ID"
// @Param banner formData file false "Banner image"
// @Param video formData file false "Intro video"
// @Success 200 {object} dto.APIResponse{data=dto.CourseResponse} "Course created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or course already exists"
// @Router /course/ [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var form dto.CreateCourseForm
	if err := ctx.ShouldBind(&form); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	banner, err := readFormFile(ctx, "banner")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	video, err := readFormFile(ctx, "video")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	course := models.Course{
		Name:         form.Name,
		Description:  form.Description,
		Banner:       banner,
		Video:        video,
		InstructorID: form.InstructorID,
		AreaID:       form.AreaID,
	}

	if err := c.courseService.CreateCourse(ctx.Request.Context(), &course); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	logger.Info().Int64("courseId", course.ID).Str("name", course.Name).Msg("Course created")

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.FromCourse(&course)))
}

// GetCourses retrieves courses with pagination
// @Summary List courses
// @Description Retrieves courses with offset/limit pagination (limit capped at 100)
// @Tags courses
// @Produce json
// @Param offset query int false "Pagination offset (default: 0)"
// @Param limit query int false "Page size (default/max: 100)"
// @Success 200 {object} dto.APIResponse{data=dto.CourseListResponse} "Courses retrieved successfully"
// @Router /courses/ [get]
func (c *CourseController) GetCourses(ctx *gin.Context) {
	offset, limit := helpers.ParseOffsetLimit(ctx)

	courses, err := c.courseService.GetCourses(ctx.Request.Context(), offset, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(toCourseListResponse(courses)))
}

// GetCoursesByArea retrieves the courses linked to an area
// @Summary List courses by area
// @Description Retrieves courses belonging to an area. An unknown area yields an empty list.
// @Tags courses
// @Produce json
// @Param area_id path int true "Area ID"
// @Param offset query int false "Pagination offset (default: 0)"
// @Param limit query int false "Page size (default/max: 100)"
// @Success 200 {object} dto.APIResponse{data=dto.CourseListResponse} "Courses retrieved successfully"
// @Router /courses/{area_id} [get]
func (c *CourseController) GetCoursesByArea(ctx *gin.Context) {
	areaID, err := strconv.ParseInt(ctx.Param("area_id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid area ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	offset, limit := helpers.ParseOffsetLimit(ctx)

	courses, err := c.courseService.GetCoursesByArea(ctx.Request.Context(), areaID, offset, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(toCourseListResponse(courses)))
}

func toCourseListResponse(courses []*models.Course) dto.CourseListResponse {
	resp := dto.CourseListResponse{Courses: make([]dto.CourseResponse, 0, len(courses))}
	for _, course := range courses {
		resp.Courses = append(resp.Courses, dto.FromCourse(course))
	}
	return resp
}

// UpdateCourse applies a partial update to a course
// @Summary Update a course
// @Description Applies a partial update; omitted fields keep their current values
// @Tags courses
// @Accept json
// @Produce json
// @Param course_id query int true "Course ID"
// @Param request body dto.UpdateCourseRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.CourseResponse} "Course updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /course/ [patch]
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Query("course_id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid course_id parameter")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.UpdateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	course, err := c.courseService.UpdateCourse(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.FromCourse(course)))
}

// DeleteCourse deletes a course
// @Summary Delete a course
// @Description Deletes a course by ID
// @Tags courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Course deleted successfully"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /course/{id} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid course ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.courseService.DeleteCourse(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	logger.Info().Int64("courseId", id).Msg("Course deleted")

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{
		Message: "Course deleted successfully",
	}))
}
