package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coursecat/api/internal/app/models"
	"github.com/coursecat/api/internal/app/models/dto"
	"github.com/coursecat/api/internal/app/services"
	"github.com/coursecat/api/internal/middleware"
	"github.com/coursecat/api/internal/pkg/helpers"
)

// AreaController handles action area operations
type AreaController struct {
	areaService *services.AreaService
}

// NewAreaController creates a new AreaController
func NewAreaController(areaService *services.AreaService) *AreaController {
	return &AreaController{
		areaService: areaService,
	}
}

// CreateArea handles area creation
// @Summary Create a new area
// @Description Creates a new action area (category)
// @Tags areas
// @Accept json
// @Produce json
// @Param request body dto.CreateAreaRequest true "Area information"
// @Success 200 {object} dto.APIResponse{data=dto.AreaResponse} "Area created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or area already exists"
// @Router /area/ [post]
func (c *AreaController) CreateArea(ctx *gin.Context) {
	var req dto.CreateAreaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	area := models.Area{Name: req.Name}
	if err := c.areaService.CreateArea(ctx.Request.Context(), &area); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.AreaResponse{
		ID:   area.ID,
		Name: area.Name,
	}))
}

// GetAreas retrieves areas with pagination
// @Summary List areas
// @Description Retrieves areas with offset/limit pagination (limit capped at 100)
// @Tags areas
// @Produce json
// @Param offset query int false "Pagination offset (default: 0)"
// @Param limit query int false "Page size (default/max: 100)"
// @Success 200 {object} dto.APIResponse{data=dto.AreaListResponse} "Areas retrieved successfully"
// @Router /areas/ [get]
func (c *AreaController) GetAreas(ctx *gin.Context) {
	offset, limit := helpers.ParseOffsetLimit(ctx)

	areas, err := c.areaService.GetAreas(ctx.Request.Context(), offset, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := dto.AreaListResponse{Areas: make([]dto.AreaResponse, 0, len(areas))}
	for _, area := range areas {
		resp.Areas = append(resp.Areas, dto.AreaResponse{ID: area.ID, Name: area.Name})
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}
