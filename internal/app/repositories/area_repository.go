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

// AreaRepository handles database operations for action areas
type AreaRepository struct {
	db *pgxpool.Pool
}

// NewAreaRepository creates a new area repository
func NewAreaRepository(db *pgxpool.Pool) *AreaRepository {
	return &AreaRepository{
		db: db,
	}
}

// Create creates a new area
func (r *AreaRepository) Create(ctx context.Context, area *models.Area) error {
	query := `
		INSERT INTO areas (name)
		VALUES ($1)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, area.Name).Scan(&area.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrAreaAlreadyExists
		}
		return fmt.Errorf("error creating area: %w", err)
	}

	return nil
}

// GetByID retrieves an area by ID
func (r *AreaRepository) GetByID(ctx context.Context, id int64) (*models.Area, error) {
	query := `
		SELECT id, name
		FROM areas
		WHERE id = $1
	`

	var area models.Area
	err := r.db.QueryRow(ctx, query, id).Scan(&area.ID, &area.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAreaNotFound
		}
		return nil, fmt.Errorf("error retrieving area: %w", err)
	}

	return &area, nil
}

// ExistsByName checks if an area exists by name
func (r *AreaRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM areas WHERE name = $1)`,
		name).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking area existence: %w", err)
	}

	return exists, nil
}

// ExistsByID checks if an area exists by ID
func (r *AreaRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM areas WHERE id = $1)`,
		id).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking area existence: %w", err)
	}

	return exists, nil
}

// List retrieves areas ordered by id, applying offset and limit
func (r *AreaRepository) List(ctx context.Context, offset, limit int) ([]*models.Area, error) {
	query := `
		SELECT id, name
		FROM areas
		ORDER BY id
		OFFSET $1 LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, offset, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var areas []*models.Area
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
