package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/coursecat/api/internal/app/models"
	"github.com/coursecat/api/internal/pkg/apperrors"
	"github.com/coursecat/api/internal/pkg/helpers"
)

// AreaService handles action area operations
type AreaService struct {
	areaStore AreaStore
}

// NewAreaService creates a new area service instance
func NewAreaService(areaStore AreaStore) *AreaService {
	return &AreaService{
		areaStore: areaStore,
	}
}

// CreateArea creates a new area
func (s *AreaService) CreateArea(ctx context.Context, area *models.Area) error {
	if strings.TrimSpace(area.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}

	exists, err := s.areaStore.ExistsByName(ctx, area.Name)
	if err != nil {
		return fmt.Errorf("error checking area: %w", err)
	}
	if exists {
		return apperrors.ErrAreaAlreadyExists
	}

	return s.areaStore.Create(ctx, area)
}

// GetAreas retrieves areas with offset/limit pagination
func (s *AreaService) GetAreas(ctx context.Context, offset, limit int) ([]*models.Area, error) {
	offset, limit = helpers.ClampOffsetLimit(offset, limit)

	areas, err := s.areaStore.List(ctx, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("error retrieving areas: %w", err)
	}

	return areas, nil
}
