package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/coursecat/api/internal/app/models"
	"github.com/coursecat/api/internal/app/models/dto"
	"github.com/coursecat/api/internal/pkg/apperrors"
	"github.com/coursecat/api/internal/pkg/helpers"
)

// InstructorService handles instructor operations
type InstructorService struct {
	instructorStore InstructorStore
	areaStore       AreaStore
	userStore       UserStore
}

// NewInstructorService creates a new instructor service instance
func NewInstructorService(instructorStore InstructorStore, areaStore AreaStore, userStore UserStore) *InstructorService {
	return &InstructorService{
		instructorStore: instructorStore,
		areaStore:       areaStore,
		userStore:       userStore,
	}
}

// validateAreaIDs ensures every referenced area exists
func (s *InstructorService) validateAreaIDs(ctx context.Context, areaIDs []int64) error {
	for _, areaID := range areaIDs {
		exists, err := s.areaStore.ExistsByID(ctx, areaID)
		if err != nil {
			return fmt.Errorf("error checking area: %w", err)
		}
		if !exists {
			return apperrors.NewBadRequestError(fmt.Sprintf("Area %d not found", areaID))
		}
	}
	return nil
}

// CreateInstructor creates an instructor together with its area links.
// The instructor row and all join rows are committed atomically.
func (s *InstructorService) CreateInstructor(ctx context.Context, instructor *models.Instructor, areaIDs []int64) error {
	if strings.TrimSpace(instructor.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}

	exists, err := s.instructorStore.ExistsByName(ctx, instructor.Name)
	if err != nil {
		return fmt.Errorf("error checking instructor: %w", err)
	}
	if exists {
		return apperrors.ErrInstructorAlreadyExists
	}

	if instructor.UserID != nil {
		if _, err := s.userStore.GetByID(ctx, *instructor.UserID); err != nil {
			if errors.Is(err, apperrors.ErrUserNotFound) {
				return apperrors.NewBadRequestError("User not found")
			}
			return fmt.Errorf("error checking user: %w", err)
		}
	}

	if err := s.validateAreaIDs(ctx, areaIDs); err != nil {
		return err
	}

	if err := s.instructorStore.CreateWithAreas(ctx, instructor, areaIDs); err != nil {
		return err
	}

	areas, err := s.loadAreas(ctx, areaIDs)
	if err != nil {
		return err
	}
	instructor.Areas = areas

	return nil
}

func (s *InstructorService) loadAreas(ctx context.Context, areaIDs []int64) ([]*models.Area, error) {
	areas := make([]*models.Area, 0, len(areaIDs))
	for _, areaID := range areaIDs {
		area, err := s.areaStore.GetByID(ctx, areaID)
		if err != nil {
			return nil, fmt.Errorf("error retrieving area: %w", err)
		}
		areas = append(areas, area)
	}
	return areas, nil
}

// GetInstructors retrieves instructors with offset/limit pagination,
// areas included
func (s *InstructorService) GetInstructors(ctx context.Context, offset, limit int) ([]*models.Instructor, error) {
	offset, limit = helpers.ClampOffsetLimit(offset, limit)

	instructors, err := s.instructorStore.List(ctx, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("error retrieving instructors: %w", err)
	}

	return instructors, nil
}

// UpdateInstructor applies a partial update to an existing instructor.
// Fields absent from the request keep their current values; when an
// areas_id set is present it replaces the instructor's area links.
func (s *InstructorService) UpdateInstructor(ctx context.Context, id int64, req *dto.UpdateInstructorRequest) (*models.Instructor, error) {
	instructor, err := s.instructorStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != instructor.Name {
		exists, err := s.instructorStore.ExistsByName(ctx, *req.Name)
		if err != nil {
			return nil, fmt.Errorf("error checking instructor: %w", err)
		}
		if exists {
			return nil, apperrors.ErrInstructorAlreadyExists
		}
	}

	// Every part of the patch is validated before anything is written,
	// so a rejected patch leaves the instructor untouched.
	if req.AreasID != nil {
		if err := s.validateAreaIDs(ctx, *req.AreasID); err != nil {
			return nil, err
		}
	}

	if err := req.ApplyTo(instructor); err != nil {
		return nil, fmt.Errorf("%w: invalid binary field encoding", apperrors.ErrValidationFailed)
	}

	if err := s.instructorStore.Update(ctx, instructor); err != nil {
		return nil, err
	}

	if req.AreasID != nil {
		if err := s.instructorStore.ReplaceAreas(ctx, id, *req.AreasID); err != nil {
			return nil, err
		}
	}

	return s.instructorStore.GetByID(ctx, id)
}

// DeleteInstructor deletes an instructor. The delete is refused while
// any course still references the instructor; area join rows are removed
// together with the instructor row.
func (s *InstructorService) DeleteInstructor(ctx context.Context, id int64) error {
	if _, err := s.instructorStore.GetByID(ctx, id); err != nil {
		return err
	}

	count, err := s.instructorStore.CountCourses(ctx, id)
	if err != nil {
		return fmt.Errorf("error checking instructor courses: %w", err)
	}
	if count > 0 {
		return apperrors.ErrInstructorHasCourses
	}

	return s.instructorStore.Delete(ctx, id)
}
