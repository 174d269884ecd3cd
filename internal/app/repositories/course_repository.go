package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/coursecat/api/internal/app/models"
	"github.com/coursecat/api/internal/pkg/apperrors"
	"github.com/coursecat/api/internal/pkg/dberrors"
)

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
	}
}

// Create creates a new course
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	query := `
		INSERT INTO courses (name, description, banner, video, instructor_id, area_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		course.Name,
		course.Description,
		course.Banner,
		course.Video,
		course.InstructorID,
		course.AreaID,
	).Scan(&course.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrCourseAlreadyExists
		}
		return fmt.Errorf("error creating course: %w", err)
	}

	return nil
}

// GetByID retrieves a course by ID
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	query := `
		SELECT id, name, description, banner, video, instructor_id, area_id
		FROM courses
		WHERE id = $1
	`

	var course models.Course
	err := r.db.QueryRow(ctx, query, id).Scan(
		&course.ID,
		&course.Name,
		&course.Description,
		&course.Banner,
		&course.Video,
		&course.InstructorID,
		&course.AreaID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	return &course, nil
}

// ExistsByName checks if a course exists by name
func (r *CourseRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM courses WHERE name = $1)`,
		name).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking course existence: %w", err)
	}

	return exists, nil
}

// List retrieves courses ordered by id, applying offset and limit
func (r *CourseRepository) List(ctx context.Context, offset, limit int) ([]*models.Course, error) {
	query := `
		SELECT id, name, description, banner, video, instructor_id, area_id
		FROM courses
		ORDER BY id
		OFFSET $1 LIMIT $2
	`

	return r.queryCourses(ctx, query, offset, limit)
}

// ListByArea retrieves courses belonging to an area ordered by id,
// applying offset and limit
func (r *CourseRepository) ListByArea(ctx context.Context, areaID int64, offset, limit int) ([]*models.Course, error) {
	query := `
		SELECT id, name, description, banner, video, instructor_id, area_id
		FROM courses
		WHERE area_id = $1
		ORDER BY id
		OFFSET $2 LIMIT $3
	`

	return r.queryCourses(ctx, query, areaID, offset, limit)
}

func (r *CourseRepository) queryCourses(ctx context.Context, query string, args ...interface{}) ([]*models.Course, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		var course models.Course
		if err := rows.Scan(
			&course.ID,
			&course.Name,
			&course.Description,
			&course.Banner,
			&course.Video,
			&course.InstructorID,
			&course.AreaID,
		); err != nil {
			return nil, err
		}
		courses = append(courses, &course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

// Update persists all columns of an existing course row
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	query := `
		UPDATE courses
		SET name = $1, description = $2, banner = $3, video = $4, instructor_id = $5, area_id = $6
		WHERE id = $7
	`

	cmdTag, err := r.db.Exec(ctx, query,
		course.Name,
		course.Description,
		course.Banner,
		course.Video,
		course.InstructorID,
		course.AreaID,
		course.ID,
	)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrCourseAlreadyExists
		}
		return fmt.Errorf("error updating course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// Delete deletes a course by ID
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}
