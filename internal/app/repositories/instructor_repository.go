package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/coursecat/api/internal/app/models"
	"github.com/coursecat/api/internal/db"
	"github.com/coursecat/api/internal/pkg/apperrors"
	"github.com/coursecat/api/internal/pkg/dberrors"
)

// InstructorRepository handles database operations for instructors and
// their area associations
type InstructorRepository struct {
	db *pgxpool.Pool
}

// NewInstructorRepository creates a new instructor repository
func NewInstructorRepository(db *pgxpool.Pool) *InstructorRepository {
	return &InstructorRepository{
		db: db,
	}
}

// CreateWithAreas creates an instructor together with its area join rows
// in a single transaction, so a failure on any join insert rolls back the
// instructor row as well.
func (r *InstructorRepository) CreateWithAreas(ctx context.Context, instructor *models.Instructor, areaIDs []int64) error {
	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		query := `
			INSERT INTO instructors (name, biography, pfp, banner, user_id)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`

		err := tx.QueryRow(ctx, query,
			instructor.Name,
			instructor.Biography,
			instructor.Pfp,
			instructor.Banner,
			instructor.UserID,
		).Scan(&instructor.ID)
		if err != nil {
			return err
		}

		for _, areaID := range areaIDs {
			_, err := tx.Exec(ctx, `
				INSERT INTO instructor_areas (instructor_id, area_id)
				VALUES ($1, $2)`,
				instructor.ID, areaID)
			if err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "instructors_name_key") {
			return apperrors.ErrInstructorAlreadyExists
		}
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrConflict
		}
		return fmt.Errorf("error creating instructor: %w", err)
	}

	return nil
}

// GetByID retrieves an instructor by ID including its areas
func (r *InstructorRepository) GetByID(ctx context.Context, id int64) (*models.Instructor, error) {
	query := `
		SELECT id, name, biography, pfp, banner, user_id
		FROM instructors
		WHERE id = $1
	`

	var instructor models.Instructor
	err := r.db.QueryRow(ctx, query, id).Scan(
		&instructor.ID,
		&instructor.Name,
		&instructor.Biography,
		&instructor.Pfp,
		&instructor.Banner,
		&instructor.UserID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrInstructorNotFound
		}
		return nil, fmt.Errorf("error retrieving instructor: %w", err)
	}

	areas, err := r.GetAreas(ctx, id)
	if err != nil {
		return nil, err
	}
	instructor.Areas = areas

	return &instructor, nil
}

// ExistsByName checks if an instructor exists by name
func (r *InstructorRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM instructors WHERE name = $1)`,
		name).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking instructor existence: %w", err)
	}

	return exists, nil
}

// List retrieves instructors ordered by id, applying offset and limit.
// Areas are loaded for every returned instructor.
func (r *InstructorRepository) List(ctx context.Context, offset, limit int) ([]*models.Instructor, error) {
	query := `
		SELECT id, name, biography, pfp, banner, user_id
		FROM instructors
		ORDER BY id
		OFFSET $1 LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, offset, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var instructors []*models.Instructor
	for rows.Next() {
		var instructor models.Instructor
		if err := rows.Scan(
			&instructor.ID,
			&instructor.Name,
			&instructor.Biography,
			&instructor.Pfp,
			&instructor.Banner,
			&instructor.UserID,
		); err != nil {
			return nil, err
		}
		instructors = append(instructors, &instructor)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, instructor := range instructors {
		areas, err := r.GetAreas(ctx, instructor.ID)
		if err != nil {
			return nil, err
		}
		instructor.Areas = areas
	}

	return instructors, nil
}

// GetAreas retrieves the areas associated with an instructor
func (r *InstructorRepository) GetAreas(ctx context.Context, instructorID int64) ([]*models.Area, error) {
	query := `
		SELECT a.id, a.name
		FROM areas a
		JOIN instructor_areas ia ON ia.area_id = a.id
		WHERE ia.instructor_id = $1
		ORDER BY a.id
	`

	rows, err := r.db.Query(ctx, query, instructorID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving instructor areas: %w", err)
	}
	defer rows.Close()

	areas := make([]*models.Area, 0)
	for rows.Next() {
		var area models.Area
		if err := rows.Scan(&area.ID, &area.Name); err != nil {
			return nil, err
		}
		areas = append(areas, &area)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return areas, nil
}

// Update persists all columns of an existing instructor row
func (r *InstructorRepository) Update(ctx context.Context, instructor *models.Instructor) error {
	query := `
		UPDATE instructors
		SET name = $1, biography = $2, pfp = $3, banner = $4, user_id = $5
		WHERE id = $6
	`

	cmdTag, err := r.db.Exec(ctx, query,
		instructor.Name,
		instructor.Biography,
		instructor.Pfp,
		instructor.Banner,
		instructor.UserID,
		instructor.ID,
	)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrInstructorAlreadyExists
		}
		return fmt.Errorf("error updating instructor: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrInstructorNotFound
	}

	return nil
}

// ReplaceAreas replaces the instructor's area join rows with the given set
// in a single transaction.
func (r *InstructorRepository) ReplaceAreas(ctx context.Context, instructorID int64, areaIDs []int64) error {
	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `DELETE FROM instructor_areas WHERE instructor_id = $1`, instructorID)
		if err != nil {
			return err
		}

		for _, areaID := range areaIDs {
			_, err := tx.Exec(ctx, `
				INSERT INTO instructor_areas (instructor_id, area_id)
				VALUES ($1, $2)`,
				instructorID, areaID)
			if err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("error replacing instructor areas: %w", err)
	}

	return nil
}

// CountCourses returns the number of courses referencing the instructor
func (r *InstructorRepository) CountCourses(ctx context.Context, instructorID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM courses WHERE instructor_id = $1`,
		instructorID).Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("error counting instructor courses: %w", err)
	}

	return count, nil
}

// Delete removes an instructor and its area join rows in a single
// transaction. The caller must have verified that no courses reference
// the instructor.
func (r *InstructorRepository) Delete(ctx context.Context, id int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `DELETE FROM instructor_areas WHERE instructor_id = $1`, id)
		if err != nil {
			return fmt.Errorf("error deleting instructor areas: %w", err)
		}

		cmdTag, err := tx.Exec(ctx, `DELETE FROM instructors WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("error deleting instructor: %w", err)
		}

		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrInstructorNotFound
		}

		return nil
	})
}
