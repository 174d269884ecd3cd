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

// CourseService handles course operations
type CourseService struct {
	courseStore     CourseStore
	instructorStore InstructorStore
	areaStore       AreaStore
}

// NewCourseService creates a new course service instance
func NewCourseService(courseStore CourseStore, instructorStore InstructorStore, areaStore AreaStore) *CourseService {
	return &CourseService{
		courseStore:     courseStore,
		instructorStore: instructorStore,
		areaStore:       areaStore,
	}
}

// validateReferences ensures the instructor (required) and area (optional)
// referenced by a course exist
func (s *CourseService) validateReferences(ctx context.Context, instructorID int64, areaID *int64) error {
	if _, err := s.instructorStore.GetByID(ctx, instructorID); err != nil {
		if errors.Is(err, apperrors.ErrInstructorNotFound) {
			return apperrors.NewBadRequestError("Instructor not found")
		}
		return fmt.Errorf("error checking instructor: %w", err)
	}

	if areaID != nil {
		exists, err := s.areaStore.ExistsByID(ctx, *areaID)
		if err != nil {
			return fmt.Errorf("error checking area: %w", err)
		}
		if !exists {
			return apperrors.NewBadRequestError("Area not found")
		}
	}

	return nil
}

// CreateCourse creates a new course
func (s *CourseService) CreateCourse(ctx context.Context, course *models.Course) error {
	if strings.TrimSpace(course.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}

	exists, err := s.courseStore.ExistsByName(ctx, course.Name)
	if err != nil {
		return fmt.Errorf("error checking course: %w", err)
	}
	if exists {
		return apperrors.ErrCourseAlreadyExists
	}

	if err := s.validateReferences(ctx, course.InstructorID, course.AreaID); err != nil {
		return err
	}

	return s.courseStore.Create(ctx, course)
}

// GetCourses retrieves courses with offset/limit pagination
func (s *CourseService) GetCourses(ctx context.Context, offset, limit int) ([]*models.Course, error) {
	offset, limit = helpers.ClampOffsetLimit(offset, limit)

	courses, err := s.courseStore.List(ctx, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}

	return courses, nil
}

// GetCoursesByArea retrieves courses belonging to an area with offset/limit
// pagination. An unknown area yields an empty list, not an error.
func (s *CourseService) GetCoursesByArea(ctx context.Context, areaID int64, offset, limit int) ([]*models.Course, error) {
	offset, limit = helpers.ClampOffsetLimit(offset, limit)

	courses, err := s.courseStore.ListByArea(ctx, areaID, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses by area: %w", err)
	}

	return courses, nil
}

// UpdateCourse applies a partial update to an existing course. Fields
// absent from the request keep their current values.
func (s *CourseService) UpdateCourse(ctx context.Context, id int64, req *dto.UpdateCourseRequest) (*models.Course, error) {
	course, err := s.courseStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != course.Name {
		exists, err := s.courseStore.ExistsByName(ctx, *req.Name)
		if err != nil {
			return nil, fmt.Errorf("error checking course: %w", err)
		}
		if exists {
			return nil, apperrors.ErrCourseAlreadyExists
		}
	}

	if err := req.ApplyTo(course); err != nil {
		return nil, fmt.Errorf("%w: invalid binary field encoding", apperrors.ErrValidationFailed)
	}

	if req.InstructorID != nil || req.AreaID != nil {
		if err := s.validateReferences(ctx, course.InstructorID, course.AreaID); err != nil {
			return nil, err
		}
	}

	if err := s.courseStore.Update(ctx, course); err != nil {
		return nil, err
	}

	return course, nil
}

// DeleteCourse deletes a course by ID
func (s *CourseService) DeleteCourse(ctx context.Context, id int64) error {
	if _, err := s.courseStore.GetByID(ctx, id); err != nil {
		return err
	}

	return s.courseStore.Delete(ctx, id)
}
