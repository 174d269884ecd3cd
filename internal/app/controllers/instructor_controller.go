package controllers

import (
	"fmt"
	"io"
	"mime/multipart"
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

// InstructorController handles instructor operations
type InstructorController struct {
	instructorService *services.InstructorService
}

// NewInstructorController creates a new InstructorController
func NewInstructorController(instructorService *services.InstructorService) *InstructorController {
	return &InstructorController{
		instructorService: instructorService,
	}
}

// readFormFile reads the bytes of an optional multipart file field.
// A missing field yields a nil slice, not an error.
func readFormFile(ctx *gin.Context, field string) ([]byte, error) {
	fileHeader, err := ctx.FormFile(field)
	if err != nil {
		if err == http.ErrMissingFile {
			return nil, nil
		}
		return nil, fmt.Errorf("error reading %s file: %w", field, err)
	}
	return readFileHeader(fileHeader, field)
}

func readFileHeader(fileHeader *multipart.FileHeader, field string) ([]byte, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("error opening %s file: %w", field, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("error reading %s file: %w", field, err)
	}
	return data, nil
}

// CreateInstructor handles instructor creation from a multipart form
// @Summary Create a new instructor
// @Description Creates an instructor with optional profile/banner images and area links
// @Tags instructors
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Instructor name"
// @Param biography formData string false "Instructor biography"
// @Param areas_id formData []int false "Linked area IDs"
// @Param user_id formData int false "Linked user ID"
// @Param pfp formData file false "Profile picture"
// @Param banner formData file false "Banner image"
// @Success 200 {object} dto.APIResponse{data=dto.InstructorResponse} "Instructor created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or instructor already exists"
// @Router /instructor/ [post]
func (c *InstructorController) CreateInstructor(ctx *gin.Context) {
	var form dto.CreateInstructorForm
	if err := ctx.ShouldBind(&form); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	pfp, err := readFormFile(ctx, "pfp")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	banner, err := readFormFile(ctx, "banner")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	instructor := models.Instructor{
		Name:      form.Name,
		Biography: form.Biography,
		Pfp:       pfp,
		Banner:    banner,
		UserID:    form.UserID,
	}

	if err := c.instructorService.CreateInstructor(ctx.Request.Context(), &instructor, form.AreasID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	logger.Info().Int64("instructorId", instructor.ID).Str("name", instructor.Name).Msg("Instructor created")

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.FromInstructor(&instructor)))
}

// GetInstructors retrieves instructors with pagination
// @Summary List instructors
// @Description Retrieves instructors with offset/limit pagination (limit capped at 100), areas included
// @Tags instructors
// @Produce json
// @Param offset query int false "Pagination offset (default: 0)"
// @Param limit query int false "Page size (default/max: 100)"
// @Success 200 {object} dto.APIResponse{data=dto.InstructorListResponse} "Instructors retrieved successfully"
// @Router /instructors/ [get]
func (c *InstructorController) GetInstructors(ctx *gin.Context) {
	offset, limit := helpers.ParseOffsetLimit(ctx)

	instructors, err := c.instructorService.GetInstructors(ctx.Request.Context(), offset, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := dto.InstructorListResponse{Instructors: make([]dto.InstructorResponse, 0, len(instructors))}
	for _, instructor := range instructors {
		resp.Instructors = append(resp.Instructors, dto.FromInstructor(instructor))
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// UpdateInstructor applies a partial update to an instructor
// @Summary Update an instructor
// @Description Applies a partial update; omitted fields keep their current values
// @Tags instructors
// @Accept json
// @Produce json
// @Param instructor_id query int true "Instructor ID"
// @Param request body dto.UpdateInstructorRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.InstructorResponse} "Instructor updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Instructor not found"
// @Router /instructor/ [patch]
func (c *InstructorController) UpdateInstructor(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Query("instructor_id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid instructor_id parameter")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.UpdateInstructorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	instructor, err := c.instructorService.UpdateInstructor(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.FromInstructor(instructor)))
}

// DeleteInstructor deletes an instructor
// @Summary Delete an instructor
// @Description Deletes an instructor and its area links. Refused while courses still reference it.
// @Tags instructors
// @Produce json
// @Param id path int true "Instructor ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Instructor deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Instructor is attached to courses"
// @Failure 404 {object} dto.ErrorResponse "Instructor not found"
// @Router /instructor/{id} [delete]
func (c *InstructorController) DeleteInstructor(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid instructor ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.instructorService.DeleteInstructor(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	logger.Info().Int64("instructorId", id).Msg("Instructor deleted")

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{
		Message: "Instructor deleted successfully",
	}))
}
